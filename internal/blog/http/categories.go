package http

import (
	"net/http"

	"github.com/aussiebroadwan/ngxblog/internal/blog/domain"
	"github.com/aussiebroadwan/ngxblog/internal/blog/service"
	"github.com/aussiebroadwan/ngxblog/pkg/blogsdk"
	"github.com/aussiebroadwan/ngxblog/pkg/httpx"
)

type CategoriesHandler struct {
	DocumentService *service.DocumentService
}

// HandleList godoc
//
//	@Summary	List categories
//	@Tags		Categories
//	@Security	BearerAuth
//	@Produce	json
//	@Success	200	{array}		blogsdk.DocumentEntry
//	@Failure	401	{object}	blogsdk.ErrorResponse
//	@Router		/api/categories [get].
func (h *CategoriesHandler) HandleList(w http.ResponseWriter, r *http.Request) {
	docs, err := h.DocumentService.List(r.Context(), domain.Categories)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, entries(docs))
}

// HandleAdd godoc
//
//	@Summary	Add category
//	@Tags		Categories
//	@Security	BearerAuth
//	@Accept		json,x-www-form-urlencoded
//	@Produce	json
//	@Param		request	body		blogsdk.Document	true	"Category"
//	@Success	200		{object}	blogsdk.IDResponse
//	@Failure	422		{object}	blogsdk.ErrorResponse
//	@Router		/api/categories [post].
func (h *CategoriesHandler) HandleAdd(w http.ResponseWriter, r *http.Request) {
	data, ok := decodeBody(w, r)
	if !ok {
		return
	}

	d, err := h.DocumentService.Add(r.Context(), domain.Categories, data)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, blogsdk.IDResponse{ID: d.ID})
}

// HandleUpdate godoc
//
//	@Summary		Update category
//	@Description	Merges the body into the category named by its id field and echoes the body.
//	@Tags			Categories
//	@Security		BearerAuth
//	@Accept			json,x-www-form-urlencoded
//	@Produce		json
//	@Param			request	body		blogsdk.Document	true	"Fields to merge, including id"
//	@Success		200		{object}	blogsdk.Document
//	@Failure		404		{object}	blogsdk.ErrorResponse
//	@Failure		422		{object}	blogsdk.ErrorResponse
//	@Router			/api/categories [put].
func (h *CategoriesHandler) HandleUpdate(w http.ResponseWriter, r *http.Request) {
	data, ok := decodeBody(w, r)
	if !ok {
		return
	}

	if err := h.DocumentService.Merge(r.Context(), domain.Categories, stringField(data, "id"), data); err != nil {
		writeServiceError(w, r, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, data)
}
