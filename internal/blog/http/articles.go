package http

import (
	"net/http"
	"strings"

	"github.com/aussiebroadwan/ngxblog/internal/blog/domain"
	"github.com/aussiebroadwan/ngxblog/internal/blog/service"
	"github.com/aussiebroadwan/ngxblog/pkg/httpx"
)

type ArticlesHandler struct {
	DocumentService *service.DocumentService
}

// HandleList godoc
//
//	@Summary		List articles
//	@Description	Public list of every article. A token is optional but must be valid when sent.
//	@Tags			Articles
//	@Produce		json
//	@Param			author	query		string	false	"Only articles by this username"
//	@Success		200		{array}		blogsdk.Document
//	@Failure		401		{object}	blogsdk.ErrorResponse	"Invalid token"
//	@Router			/api/articles [get].
func (h *ArticlesHandler) HandleList(w http.ResponseWriter, r *http.Request) {
	var (
		docs []domain.Document
		err  error
	)
	if author := strings.TrimSpace(r.URL.Query().Get("author")); author != "" {
		docs, err = h.DocumentService.Find(r.Context(), domain.Articles, domain.Filter{Field: "author", Value: author})
	} else {
		docs, err = h.DocumentService.List(r.Context(), domain.Articles)
	}
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, flatten(docs))
}

// HandleListMine godoc
//
//	@Summary	List my articles
//	@Tags		Articles
//	@Security	BearerAuth
//	@Produce	json
//	@Success	200	{array}		blogsdk.Document
//	@Failure	401	{object}	blogsdk.ErrorResponse
//	@Router		/api/articlesByAuthor [get].
func (h *ArticlesHandler) HandleListMine(w http.ResponseWriter, r *http.Request) {
	id, ok := identity(w, r)
	if !ok {
		return
	}

	docs, err := h.DocumentService.Find(r.Context(), domain.Articles, domain.Filter{Field: "author", Value: id.Username})
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, flatten(docs))
}

// HandleFind godoc
//
//	@Summary	Find articles by title
//	@Tags		Articles
//	@Security	BearerAuth
//	@Produce	json
//	@Param		title	query		string	true	"Exact title"
//	@Success	200		{array}		blogsdk.Document
//	@Failure	422		{object}	blogsdk.ErrorResponse	"Blank title"
//	@Router		/api/article [get].
func (h *ArticlesHandler) HandleFind(w http.ResponseWriter, r *http.Request) {
	title := strings.TrimSpace(r.URL.Query().Get("title"))
	if title == "" {
		httpx.WriteError(w, http.StatusUnprocessableEntity, "title", "can't be blank")
		return
	}

	docs, err := h.DocumentService.Find(r.Context(), domain.Articles, domain.Filter{Field: "title", Value: title})
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, flatten(docs))
}

// HandleAdd godoc
//
//	@Summary		Add article
//	@Description	Stores an article authored by the caller. Any author in the body is replaced.
//	@Tags			Articles
//	@Security		BearerAuth
//	@Accept			json,x-www-form-urlencoded
//	@Produce		json
//	@Param			request	body		blogsdk.Document	true	"Article"
//	@Success		200		{string}	string				"Article added"
//	@Failure		422		{object}	blogsdk.ErrorResponse
//	@Router			/api/articles [post].
func (h *ArticlesHandler) HandleAdd(w http.ResponseWriter, r *http.Request) {
	id, ok := identity(w, r)
	if !ok {
		return
	}
	data, ok := decodeBody(w, r)
	if !ok {
		return
	}

	if _, err := h.DocumentService.AddArticle(r.Context(), id.Username, data); err != nil {
		writeServiceError(w, r, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, "Article added")
}

// HandleUpdate godoc
//
//	@Summary		Update article
//	@Description	Merges the body into an article written by the caller and echoes the body.
//	@Tags			Articles
//	@Security		BearerAuth
//	@Accept			json,x-www-form-urlencoded
//	@Produce		json
//	@Param			id		path		string				true	"Article id"
//	@Param			request	body		blogsdk.Document	true	"Fields to merge"
//	@Success		200		{object}	blogsdk.Document
//	@Failure		403		{object}	blogsdk.ErrorResponse	"Not the author"
//	@Failure		404		{object}	blogsdk.ErrorResponse
//	@Failure		422		{object}	blogsdk.ErrorResponse
//	@Router			/api/article/{id} [put].
func (h *ArticlesHandler) HandleUpdate(w http.ResponseWriter, r *http.Request) {
	id, ok := identity(w, r)
	if !ok {
		return
	}
	data, ok := decodeBody(w, r)
	if !ok {
		return
	}

	if err := h.DocumentService.MergeArticle(r.Context(), id.Username, r.PathValue("id"), data); err != nil {
		writeServiceError(w, r, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, data)
}

// HandleDelete godoc
//
//	@Summary	Delete article
//	@Tags		Articles
//	@Security	BearerAuth
//	@Produce	json
//	@Param		id	path	string	true	"Article id"
//	@Success	200	"Empty object"
//	@Failure	403	{object}	blogsdk.ErrorResponse	"Not the author"
//	@Router		/api/delete/articles/{id} [delete].
func (h *ArticlesHandler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	id, ok := identity(w, r)
	if !ok {
		return
	}

	if err := h.DocumentService.DeleteArticle(r.Context(), id.Username, r.PathValue("id")); err != nil {
		writeServiceError(w, r, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, struct{}{})
}
