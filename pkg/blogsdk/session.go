package blogsdk

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/textproto"
	"net/url"
)

// Session performs authenticated requests with a bearer token.
type Session struct {
	client *SDKClient
	token  string
}

// Token returns the session's bearer token.
func (s *Session) Token() string {
	return s.token
}

func (s *Session) do(ctx context.Context, method, path string, in, out any) error {
	return s.client.doJSON(ctx, method, path, s.token, in, out)
}

// CurrentUser returns the account the token was issued to.
func (s *Session) CurrentUser(ctx context.Context) (*CurrentUserResponse, error) {
	var out CurrentUserResponse
	if err := s.do(ctx, http.MethodGet, "/api/user", nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// ChangePassword replaces the password after checking the current one.
func (s *Session) ChangePassword(ctx context.Context, current, next string) error {
	return s.do(ctx, http.MethodPost, "/api/changePassword", ChangePasswordRequest{Password: current, NewPassword: next}, nil)
}

// ============================================================================
// Authors
// ============================================================================

func (s *Session) ListAuthors(ctx context.Context) ([]DocumentEntry, error) {
	var out []DocumentEntry
	err := s.do(ctx, http.MethodGet, "/api/authors", nil, &out)
	return out, err
}

func (s *Session) GetAuthor(ctx context.Context, id string) (*AuthorDetail, error) {
	var out AuthorDetail
	if err := s.do(ctx, http.MethodGet, "/api/authors/"+url.PathEscape(id), nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// FindAuthors matches authors by first and/or last name.
func (s *Session) FindAuthors(ctx context.Context, firstname, lastname string) ([]Document, error) {
	q := url.Values{}
	if firstname != "" {
		q.Set("firstname", firstname)
	}
	if lastname != "" {
		q.Set("lastname", lastname)
	}

	var out []Document
	err := s.do(ctx, http.MethodGet, "/api/author?"+q.Encode(), nil, &out)
	return out, err
}

func (s *Session) AddAuthor(ctx context.Context, author Document) error {
	return s.do(ctx, http.MethodPost, "/api/authors", author, nil)
}

// UpdateAuthor merges patch into the author named by patch["id"].
func (s *Session) UpdateAuthor(ctx context.Context, patch Document) error {
	return s.do(ctx, http.MethodPut, "/api/authors", patch, nil)
}

func (s *Session) DeleteAuthor(ctx context.Context, id string) error {
	return s.do(ctx, http.MethodDelete, "/api/authors?id="+url.QueryEscape(id), nil, nil)
}

// ============================================================================
// Articles
// ============================================================================

func (s *Session) ListArticles(ctx context.Context) ([]Document, error) {
	var out []Document
	err := s.do(ctx, http.MethodGet, "/api/articles", nil, &out)
	return out, err
}

// ArticlesByAuthor lists the articles written by the session's user.
func (s *Session) ArticlesByAuthor(ctx context.Context) ([]Document, error) {
	var out []Document
	err := s.do(ctx, http.MethodGet, "/api/articlesByAuthor", nil, &out)
	return out, err
}

func (s *Session) FindArticles(ctx context.Context, title string) ([]Document, error) {
	var out []Document
	err := s.do(ctx, http.MethodGet, "/api/article?title="+url.QueryEscape(title), nil, &out)
	return out, err
}

func (s *Session) AddArticle(ctx context.Context, article Document) error {
	return s.do(ctx, http.MethodPost, "/api/articles", article, nil)
}

func (s *Session) UpdateArticle(ctx context.Context, id string, patch Document) error {
	return s.do(ctx, http.MethodPut, "/api/article/"+url.PathEscape(id), patch, nil)
}

func (s *Session) DeleteArticle(ctx context.Context, id string) error {
	return s.do(ctx, http.MethodDelete, "/api/delete/articles/"+url.PathEscape(id), nil, nil)
}

// ============================================================================
// Categories
// ============================================================================

func (s *Session) ListCategories(ctx context.Context) ([]DocumentEntry, error) {
	var out []DocumentEntry
	err := s.do(ctx, http.MethodGet, "/api/categories", nil, &out)
	return out, err
}

// AddCategory creates a category and returns its id.
func (s *Session) AddCategory(ctx context.Context, category Document) (string, error) {
	var out IDResponse
	if err := s.do(ctx, http.MethodPost, "/api/categories", category, &out); err != nil {
		return "", err
	}
	return out.ID, nil
}

func (s *Session) UpdateCategory(ctx context.Context, patch Document) error {
	return s.do(ctx, http.MethodPut, "/api/categories", patch, nil)
}

// ============================================================================
// Uploads
// ============================================================================

// Upload sends a file as the "img" multipart field and returns its public
// URL.
func (s *Session) Upload(ctx context.Context, filename, contentType string, content io.Reader) (string, error) {
	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)

	h := make(textproto.MIMEHeader)
	h.Set("Content-Disposition", fmt.Sprintf(`form-data; name="img"; filename=%q`, filename))
	h.Set("Content-Type", contentType)
	part, err := mw.CreatePart(h)
	if err != nil {
		return "", fmt.Errorf("failed to create part: %w", err)
	}
	if _, err := io.Copy(part, content); err != nil {
		return "", fmt.Errorf("failed to write part: %w", err)
	}
	if err := mw.Close(); err != nil {
		return "", fmt.Errorf("failed to close multipart body: %w", err)
	}

	resp, err := s.client.doRequest(ctx, http.MethodPost, "/api/upload", s.token, &buf, map[string]string{
		"Content-Type": mw.FormDataContentType(),
	})
	if err != nil {
		return "", err
	}

	var location string
	if err := decodeJSON(resp, &location, http.StatusOK); err != nil {
		return "", err
	}
	return location, nil
}
