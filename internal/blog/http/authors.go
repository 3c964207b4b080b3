package http

import (
	"net/http"
	"strings"

	"github.com/aussiebroadwan/ngxblog/internal/blog/domain"
	"github.com/aussiebroadwan/ngxblog/internal/blog/service"
	"github.com/aussiebroadwan/ngxblog/pkg/blogsdk"
	"github.com/aussiebroadwan/ngxblog/pkg/httpx"
)

type AuthorsHandler struct {
	DocumentService *service.DocumentService
}

// HandleList godoc
//
//	@Summary	List authors
//	@Tags		Authors
//	@Security	BearerAuth
//	@Produce	json
//	@Success	200	{array}		blogsdk.DocumentEntry
//	@Failure	401	{object}	blogsdk.ErrorResponse
//	@Router		/api/authors [get].
func (h *AuthorsHandler) HandleList(w http.ResponseWriter, r *http.Request) {
	docs, err := h.DocumentService.List(r.Context(), domain.Authors)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, entries(docs))
}

// HandleFind godoc
//
//	@Summary	Find authors by name
//	@Tags		Authors
//	@Security	BearerAuth
//	@Produce	json
//	@Param		firstname	query		string	false	"First name"
//	@Param		lastname	query		string	false	"Last name"
//	@Success	200			{array}		blogsdk.Document
//	@Failure	422			{object}	blogsdk.ErrorResponse	"Both names blank"
//	@Router		/api/author [get].
func (h *AuthorsHandler) HandleFind(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	var filters []domain.Filter
	for _, field := range []string{"firstname", "lastname"} {
		if v := strings.TrimSpace(q.Get(field)); v != "" {
			filters = append(filters, domain.Filter{Field: field, Value: v})
		}
	}
	if len(filters) == 0 {
		httpx.WriteError(w, http.StatusUnprocessableEntity, "firstname or lastname", "can't be blank")
		return
	}

	docs, err := h.DocumentService.Find(r.Context(), domain.Authors, filters...)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, flatten(docs))
}

// HandleGet godoc
//
//	@Summary	Get author
//	@Tags		Authors
//	@Security	BearerAuth
//	@Produce	json
//	@Param		id	path		string	true	"Author id"
//	@Success	200	{object}	blogsdk.AuthorDetail
//	@Failure	404	{object}	blogsdk.ErrorResponse
//	@Router		/api/authors/{id} [get].
func (h *AuthorsHandler) HandleGet(w http.ResponseWriter, r *http.Request) {
	d, err := h.DocumentService.Get(r.Context(), domain.Authors, r.PathValue("id"))
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	httpx.WriteJSON(w, http.StatusOK, blogsdk.AuthorDetail{
		ID:           d.ID,
		FirstName:    d.Data["firstname"],
		LastName:     d.Data["lastname"],
		Email:        d.Data["email"],
		Profile:      d.Data["profile"],
		ThumbnailURL: d.Data["thumbnail_url"],
	})
}

// HandleAdd godoc
//
//	@Summary	Add author
//	@Tags		Authors
//	@Security	BearerAuth
//	@Accept		json,x-www-form-urlencoded
//	@Produce	json
//	@Param		request	body		blogsdk.Document	true	"Author"
//	@Success	200		{string}	string				"Author name added"
//	@Failure	422		{object}	blogsdk.ErrorResponse
//	@Router		/api/authors [post].
func (h *AuthorsHandler) HandleAdd(w http.ResponseWriter, r *http.Request) {
	data, ok := decodeBody(w, r)
	if !ok {
		return
	}

	if _, err := h.DocumentService.Add(r.Context(), domain.Authors, data); err != nil {
		writeServiceError(w, r, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, "Author name added")
}

// HandleUpdate godoc
//
//	@Summary		Update author
//	@Description	Merges the body into the author named by its id field and echoes the body.
//	@Tags			Authors
//	@Security		BearerAuth
//	@Accept			json,x-www-form-urlencoded
//	@Produce		json
//	@Param			request	body		blogsdk.Document	true	"Fields to merge, including id"
//	@Success		200		{object}	blogsdk.Document
//	@Failure		404		{object}	blogsdk.ErrorResponse
//	@Failure		422		{object}	blogsdk.ErrorResponse
//	@Router			/api/authors [put].
func (h *AuthorsHandler) HandleUpdate(w http.ResponseWriter, r *http.Request) {
	data, ok := decodeBody(w, r)
	if !ok {
		return
	}

	if err := h.DocumentService.Merge(r.Context(), domain.Authors, stringField(data, "id"), data); err != nil {
		writeServiceError(w, r, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, data)
}

// HandleDelete godoc
//
//	@Summary	Delete author
//	@Tags		Authors
//	@Security	BearerAuth
//	@Produce	json
//	@Param		id	query	string	true	"Author id"
//	@Success	200	"Empty object"
//	@Failure	422	{object}	blogsdk.ErrorResponse
//	@Router		/api/authors [delete].
func (h *AuthorsHandler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	if err := h.DocumentService.Delete(r.Context(), domain.Authors, r.URL.Query().Get("id")); err != nil {
		writeServiceError(w, r, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, struct{}{})
}
