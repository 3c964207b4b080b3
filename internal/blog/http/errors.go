package http

import (
	"errors"
	"net/http"

	"github.com/aussiebroadwan/ngxblog/internal/blog/service"
	"github.com/aussiebroadwan/ngxblog/pkg/httpx"
	"github.com/aussiebroadwan/ngxblog/pkg/slogx"
)

// writeServiceError maps a service error onto a status code and the
// field-keyed error body.
func writeServiceError(w http.ResponseWriter, r *http.Request, err error) {
	var ve *service.ValidationError
	var pe *service.PolicyError

	switch {
	case errors.As(err, &ve):
		httpx.WriteErrors(w, http.StatusUnprocessableEntity, ve.Fields)
	case errors.As(err, &pe):
		httpx.WriteError(w, http.StatusUnprocessableEntity, "newpassword", pe.Error())
	case errors.Is(err, service.ErrInvalidCredentials):
		httpx.WriteError(w, http.StatusUnprocessableEntity, "email or password", "is invalid")
	case errors.Is(err, service.ErrEmailTaken):
		httpx.WriteError(w, http.StatusUnprocessableEntity, "email", "has already been taken")
	case errors.Is(err, service.ErrWrongPassword):
		httpx.WriteError(w, http.StatusUnprocessableEntity, "password", "is invalid")
	case errors.Is(err, service.ErrResetNotFound):
		httpx.WriteError(w, http.StatusNotFound, "resetId", "is invalid or has already been used")
	case errors.Is(err, service.ErrDocumentNotFound):
		httpx.WriteError(w, http.StatusNotFound, "id", "not found")
	case errors.Is(err, service.ErrNotAuthor):
		httpx.WriteError(w, http.StatusForbidden, "author", "only the author may modify this article")
	case errors.Is(err, service.ErrStorageDisabled):
		httpx.WriteError(w, http.StatusServiceUnavailable, "upload", "storage is not configured")
	default:
		slogx.FromContext(r.Context()).Error("request failed", "error", err)
		httpx.WriteError(w, http.StatusInternalServerError, "server", err.Error())
	}
}

// writeDecodeError reports a body that could not be parsed.
func writeDecodeError(w http.ResponseWriter, err error) {
	var mbe *http.MaxBytesError
	if errors.As(err, &mbe) {
		httpx.WriteError(w, http.StatusRequestEntityTooLarge, "body", "is too large")
		return
	}
	httpx.WriteError(w, http.StatusBadRequest, "body", "is malformed")
}
