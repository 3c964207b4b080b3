package http

import (
	"net/http"

	"github.com/aussiebroadwan/ngxblog/internal/blog/service"
	"github.com/aussiebroadwan/ngxblog/pkg/blogsdk"
	"github.com/aussiebroadwan/ngxblog/pkg/httpx"
	"github.com/aussiebroadwan/ngxblog/pkg/slogx"
)

type ResetHandler struct {
	ResetService *service.ResetService
}

// HandleRequest starts a password reset.
//
//	@Summary		Request password reset
//	@Description	Emails a reset link when the address is registered and no reset is pending.
//	@Description	Always answers 200 so callers cannot probe which emails exist.
//	@Tags			Password reset
//	@Accept			json,x-www-form-urlencoded
//	@Produce		json
//	@Param			request	body	blogsdk.ResetPasswordRequest	true	"Email"
//	@Success		200		"Empty object"
//	@Router			/api/resetPassword [post].
func (h *ResetHandler) HandleRequest(w http.ResponseWriter, r *http.Request) {
	var req blogsdk.ResetPasswordRequest
	if !decodeInto(w, r, &req) {
		return
	}

	if req.Email != "" {
		if err := h.ResetService.StartReset(r.Context(), req.Email); err != nil {
			slogx.FromContext(r.Context()).Info("password reset not started", "error", err)
		}
	}

	httpx.WriteJSON(w, http.StatusOK, struct{}{})
}

// HandleCheck reports whether a reset id is pending.
//
//	@Summary		Check reset id
//	@Tags			Password reset
//	@Produce		json
//	@Param			resetId	path		string	true	"Reset id from the email link"
//	@Success		200		{object}	blogsdk.ExistResponse
//	@Failure		404		{object}	blogsdk.ExistResponse
//	@Router			/api/isResetIdOk/{resetId} [get].
func (h *ResetHandler) HandleCheck(w http.ResponseWriter, r *http.Request) {
	ok, err := h.ResetService.IsTokenValid(r.Context(), r.PathValue("resetId"))
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	if !ok {
		httpx.WriteJSON(w, http.StatusNotFound, blogsdk.ExistResponse{Exist: false})
		return
	}
	httpx.WriteJSON(w, http.StatusOK, blogsdk.ExistResponse{Exist: true})
}

// HandleChange sets a new password with a reset id.
//
//	@Summary		Complete password reset
//	@Description	Sets the password of the account holding resetId and clears the id. Each id works once.
//	@Tags			Password reset
//	@Accept			json,x-www-form-urlencoded
//	@Produce		json
//	@Param			request	body		blogsdk.ResetChangePasswordRequest	true	"New password and reset id"
//	@Success		200		{object}	blogsdk.ResultResponse
//	@Failure		404		{object}	blogsdk.ErrorResponse	"Unknown or already used reset id"
//	@Failure		422		{object}	blogsdk.ErrorResponse	"Blank field"
//	@Router			/api/resetChangePassword [post].
func (h *ResetHandler) HandleChange(w http.ResponseWriter, r *http.Request) {
	var req blogsdk.ResetChangePasswordRequest
	if !decodeInto(w, r, &req) {
		return
	}

	if err := h.ResetService.ConsumeToken(r.Context(), req.ResetID, req.Password); err != nil {
		writeServiceError(w, r, err)
		return
	}

	httpx.WriteJSON(w, http.StatusOK, blogsdk.ResultResponse{Result: "Success!"})
}
