package http

import (
	"bytes"
	"errors"
	"io"
	"net/http"

	"github.com/aussiebroadwan/ngxblog/internal/blog/service"
	"github.com/aussiebroadwan/ngxblog/pkg/httpx"
)

// uploadField is the multipart field carrying the file.
const uploadField = "img"

// multipartOverhead leaves room for part headers and boundaries around a
// maximum size file.
const multipartOverhead = 1 << 20

type UploadHandler struct {
	UploadService *service.UploadService
}

// ServeHTTP stores an uploaded image.
//
//	@Summary		Upload image
//	@Description	Stores the "img" multipart file (at most 20 MiB) in object storage and returns its public URL.
//	@Tags			Uploads
//	@Security		BearerAuth
//	@Accept			multipart/form-data
//	@Produce		json
//	@Param			img	formData	file	true	"Image file"
//	@Success		200	{string}	string					"Public URL"
//	@Failure		413	{object}	blogsdk.ErrorResponse	"File too large"
//	@Failure		422	{object}	blogsdk.ErrorResponse	"No file"
//	@Failure		503	{object}	blogsdk.ErrorResponse	"Storage not configured"
//	@Router			/api/upload [post].
func (h *UploadHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, service.MaxUploadBytes+multipartOverhead)

	mr, err := r.MultipartReader()
	if err != nil {
		httpx.WriteError(w, http.StatusBadRequest, "body", "must be multipart/form-data")
		return
	}

	for {
		part, err := mr.NextPart()
		if errors.Is(err, io.EOF) {
			httpx.WriteError(w, http.StatusUnprocessableEntity, uploadField, "can't be blank")
			return
		}
		if err != nil {
			writeDecodeError(w, err)
			return
		}
		if part.FormName() != uploadField || part.FileName() == "" {
			_ = part.Close()
			continue
		}

		content, err := io.ReadAll(io.LimitReader(part, service.MaxUploadBytes+1))
		_ = part.Close()
		if err != nil {
			writeDecodeError(w, err)
			return
		}
		if len(content) > service.MaxUploadBytes {
			httpx.WriteError(w, http.StatusRequestEntityTooLarge, uploadField, "is too large")
			return
		}

		contentType := part.Header.Get("Content-Type")
		if contentType == "" {
			contentType = "application/octet-stream"
		}

		location, err := h.UploadService.Upload(r.Context(), part.FileName(), contentType, bytes.NewReader(content), int64(len(content)))
		if err != nil {
			writeServiceError(w, r, err)
			return
		}
		httpx.WriteJSON(w, http.StatusOK, location)
		return
	}
}
