package http_test

import (
	"net/http"
	"testing"

	"github.com/aussiebroadwan/ngxblog/pkg/blogsdk"
	"github.com/stretchr/testify/require"
)

func TestDocumentsRequireAuth(t *testing.T) {
	env := newTestEnv(t)

	for _, route := range []struct{ method, path string }{
		{http.MethodGet, "/api/authors"},
		{http.MethodGet, "/api/author?firstname=a"},
		{http.MethodGet, "/api/authors/x"},
		{http.MethodPost, "/api/authors"},
		{http.MethodPut, "/api/authors"},
		{http.MethodDelete, "/api/authors?id=x"},
		{http.MethodGet, "/api/articlesByAuthor"},
		{http.MethodGet, "/api/article?title=a"},
		{http.MethodPost, "/api/articles"},
		{http.MethodPut, "/api/article/x"},
		{http.MethodDelete, "/api/delete/articles/x"},
		{http.MethodGet, "/api/categories"},
		{http.MethodPost, "/api/categories"},
		{http.MethodPut, "/api/categories"},
	} {
		t.Run(route.method+" "+route.path, func(t *testing.T) {
			rec := env.do(route.method, route.path, "", nil)
			require.Equal(t, http.StatusUnauthorized, rec.Code)
		})
	}
}

func TestAuthors(t *testing.T) {
	env := newTestEnv(t)
	token := env.register("ada@example.com")

	rec := env.do(http.MethodPost, "/api/authors", token, map[string]any{
		"firstname": "Grace", "lastname": "Hopper", "email": "grace@example.com", "profile": "Admiral",
	})
	require.Equal(t, http.StatusOK, rec.Code)
	require.JSONEq(t, `"Author name added"`, rec.Body.String())

	rec = env.do(http.MethodGet, "/api/authors", token, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	var list []blogsdk.DocumentEntry
	decode(t, rec, &list)
	require.Len(t, list, 1)
	id := list[0].ID
	require.Equal(t, "Grace", list[0].Result["firstname"])

	t.Run("get subset", func(t *testing.T) {
		rec := env.do(http.MethodGet, "/api/authors/"+id, token, nil)
		require.Equal(t, http.StatusOK, rec.Code)
		require.JSONEq(t, `{"id":"`+id+`","firstname":"Grace","lastname":"Hopper","email":"grace@example.com","profile":"Admiral","thumbnail_url":null}`, rec.Body.String())
	})

	t.Run("get missing", func(t *testing.T) {
		rec := env.do(http.MethodGet, "/api/authors/nope", token, nil)
		require.Equal(t, http.StatusNotFound, rec.Code)
	})

	t.Run("find by name", func(t *testing.T) {
		rec := env.do(http.MethodGet, "/api/author?firstname=Grace&lastname=Hopper", token, nil)
		require.Equal(t, http.StatusOK, rec.Code)
		var found []blogsdk.Document
		decode(t, rec, &found)
		require.Len(t, found, 1)

		rec = env.do(http.MethodGet, "/api/author?firstname=Ada", token, nil)
		require.Equal(t, http.StatusOK, rec.Code)
		require.JSONEq(t, `[]`, rec.Body.String())
	})

	t.Run("find needs a name", func(t *testing.T) {
		rec := env.do(http.MethodGet, "/api/author?firstname=&lastname=", token, nil)
		require.Equal(t, http.StatusUnprocessableEntity, rec.Code)
	})

	t.Run("update merges and echoes", func(t *testing.T) {
		rec := env.do(http.MethodPut, "/api/authors", token, map[string]any{"id": id, "profile": "Rear Admiral"})
		require.Equal(t, http.StatusOK, rec.Code)
		require.JSONEq(t, `{"id":"`+id+`","profile":"Rear Admiral"}`, rec.Body.String())

		rec = env.do(http.MethodGet, "/api/authors/"+id, token, nil)
		var got blogsdk.AuthorDetail
		decode(t, rec, &got)
		require.Equal(t, "Rear Admiral", got.Profile)
		require.Equal(t, "Grace", got.FirstName)
	})

	t.Run("update needs id", func(t *testing.T) {
		rec := env.do(http.MethodPut, "/api/authors", token, map[string]any{"profile": "x"})
		require.Equal(t, http.StatusUnprocessableEntity, rec.Code)
		require.Equal(t, map[string]string{"id": "can't be blank"}, errorsOf(t, rec))
	})

	t.Run("update unknown", func(t *testing.T) {
		rec := env.do(http.MethodPut, "/api/authors", token, map[string]any{"id": "nope", "profile": "x"})
		require.Equal(t, http.StatusNotFound, rec.Code)
	})

	t.Run("non-string field rejected", func(t *testing.T) {
		rec := env.do(http.MethodPost, "/api/authors", token, map[string]any{"firstname": 42})
		require.Equal(t, http.StatusUnprocessableEntity, rec.Code)
		require.Contains(t, errorsOf(t, rec), "firstname")
	})

	t.Run("delete is idempotent", func(t *testing.T) {
		for range 2 {
			rec := env.do(http.MethodDelete, "/api/authors?id="+id, token, nil)
			require.Equal(t, http.StatusOK, rec.Code)
			require.JSONEq(t, `{}`, rec.Body.String())
		}

		rec := env.do(http.MethodGet, "/api/authors", token, nil)
		require.JSONEq(t, `[]`, rec.Body.String())
	})
}

func TestArticles(t *testing.T) {
	env := newTestEnv(t)
	ada := env.register("ada@example.com")
	bob := env.register("bob@example.com")

	rec := env.do(http.MethodPost, "/api/articles", ada, map[string]any{
		"title": "Notes", "body": "Analytical engine", "author": "someone-else@example.com",
	})
	require.Equal(t, http.StatusOK, rec.Code)
	require.JSONEq(t, `"Article added"`, rec.Body.String())

	rec = env.do(http.MethodPost, "/api/articles", bob, map[string]any{"title": "Bob's post"})
	require.Equal(t, http.StatusOK, rec.Code)

	t.Run("public list", func(t *testing.T) {
		rec := env.do(http.MethodGet, "/api/articles", "", nil)
		require.Equal(t, http.StatusOK, rec.Code)
		var all []blogsdk.Document
		decode(t, rec, &all)
		require.Len(t, all, 2)
	})

	t.Run("public list rejects a bad token", func(t *testing.T) {
		rec := env.do(http.MethodGet, "/api/articles", "garbage", nil)
		require.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("list filtered by author", func(t *testing.T) {
		rec := env.do(http.MethodGet, "/api/articles?author=bob@example.com", "", nil)
		var bobs []blogsdk.Document
		decode(t, rec, &bobs)
		require.Len(t, bobs, 1)
		require.Equal(t, "Bob's post", bobs[0]["title"])
	})

	var articleID string
	t.Run("author is forced to the caller", func(t *testing.T) {
		rec := env.do(http.MethodGet, "/api/articlesByAuthor", ada, nil)
		require.Equal(t, http.StatusOK, rec.Code)
		var mine []blogsdk.Document
		decode(t, rec, &mine)
		require.Len(t, mine, 1)
		require.Equal(t, "ada@example.com", mine[0]["author"])
		articleID, _ = mine[0]["id"].(string)
		require.NotEmpty(t, articleID)
	})

	t.Run("find by title", func(t *testing.T) {
		rec := env.do(http.MethodGet, "/api/article?title=Notes", ada, nil)
		var found []blogsdk.Document
		decode(t, rec, &found)
		require.Len(t, found, 1)

		rec = env.do(http.MethodGet, "/api/article?title=", ada, nil)
		require.Equal(t, http.StatusUnprocessableEntity, rec.Code)
		require.Equal(t, map[string]string{"title": "can't be blank"}, errorsOf(t, rec))
	})

	t.Run("non-author cannot edit", func(t *testing.T) {
		rec := env.do(http.MethodPut, "/api/article/"+articleID, bob, map[string]any{"title": "Hijacked"})
		require.Equal(t, http.StatusForbidden, rec.Code)
	})

	t.Run("author cannot be reassigned", func(t *testing.T) {
		rec := env.do(http.MethodPut, "/api/article/"+articleID, ada, map[string]any{"author": "bob@example.com"})
		require.Equal(t, http.StatusUnprocessableEntity, rec.Code)
		require.Equal(t, map[string]string{"author": "cannot be changed"}, errorsOf(t, rec))
	})

	t.Run("author edits", func(t *testing.T) {
		rec := env.do(http.MethodPut, "/api/article/"+articleID, ada, map[string]any{"title": "Notes, revised"})
		require.Equal(t, http.StatusOK, rec.Code)
		require.JSONEq(t, `{"title":"Notes, revised"}`, rec.Body.String())

		rec = env.do(http.MethodGet, "/api/article?title=Notes,%20revised", ada, nil)
		var found []blogsdk.Document
		decode(t, rec, &found)
		require.Len(t, found, 1)
		require.Equal(t, "Analytical engine", found[0]["body"])
	})

	t.Run("edit missing article", func(t *testing.T) {
		rec := env.do(http.MethodPut, "/api/article/nope", ada, map[string]any{"title": "x"})
		require.Equal(t, http.StatusNotFound, rec.Code)
	})

	t.Run("non-author cannot delete", func(t *testing.T) {
		rec := env.do(http.MethodDelete, "/api/delete/articles/"+articleID, bob, nil)
		require.Equal(t, http.StatusForbidden, rec.Code)
	})

	t.Run("author deletes", func(t *testing.T) {
		rec := env.do(http.MethodDelete, "/api/delete/articles/"+articleID, ada, nil)
		require.Equal(t, http.StatusOK, rec.Code)

		rec = env.do(http.MethodGet, "/api/articlesByAuthor", ada, nil)
		require.JSONEq(t, `[]`, rec.Body.String())
	})
}

func TestCategories(t *testing.T) {
	env := newTestEnv(t)
	token := env.register("ada@example.com")

	rec := env.do(http.MethodPost, "/api/categories", token, map[string]any{"name": "Science"})
	require.Equal(t, http.StatusOK, rec.Code)
	var created blogsdk.IDResponse
	decode(t, rec, &created)
	require.NotEmpty(t, created.ID)

	rec = env.do(http.MethodPut, "/api/categories", token, map[string]any{"id": created.ID, "name": "Sciences"})
	require.Equal(t, http.StatusOK, rec.Code)

	rec = env.do(http.MethodGet, "/api/categories", token, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	var list []blogsdk.DocumentEntry
	decode(t, rec, &list)
	require.Len(t, list, 1)
	require.Equal(t, created.ID, list[0].ID)
	require.Equal(t, "Sciences", list[0].Result["name"])
}
