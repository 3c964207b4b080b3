package service

import (
	"context"
	"errors"
	"maps"
	"time"

	"github.com/aussiebroadwan/ngxblog/internal/blog/domain"
	"github.com/aussiebroadwan/ngxblog/internal/blog/store"
	"github.com/aussiebroadwan/ngxblog/pkg/idx"
	"github.com/aussiebroadwan/ngxblog/pkg/slogx"
)

// authorField holds the username that owns an article.
const authorField = "author"

type DocumentService struct {
	Store   store.Store
	Schemas *Schemas

	Now func() time.Time
}

func (s *DocumentService) now() time.Time {
	if s.Now != nil {
		return s.Now().UTC()
	}
	return time.Now().UTC()
}

func (s *DocumentService) List(ctx context.Context, c domain.Collection) ([]domain.Document, error) {
	return s.Store.Documents().List(ctx, c)
}

// Find returns documents matching every filter. Invalid field names are
// reported as validation errors.
func (s *DocumentService) Find(ctx context.Context, c domain.Collection, filters ...domain.Filter) ([]domain.Document, error) {
	docs, err := s.Store.Documents().Find(ctx, c, filters...)
	if errors.Is(err, store.ErrInvalidField) {
		return nil, invalid("filter", "has an invalid field name")
	}
	return docs, err
}

func (s *DocumentService) Get(ctx context.Context, c domain.Collection, id string) (domain.Document, error) {
	d, err := s.Store.Documents().Get(ctx, c, id)
	if errors.Is(err, store.ErrNotFound) {
		return domain.Document{}, ErrDocumentNotFound
	}
	return d, err
}

// Add validates data and stores it under a new id.
func (s *DocumentService) Add(ctx context.Context, c domain.Collection, data map[string]any) (domain.Document, error) {
	data, err := cleanData(data)
	if err != nil {
		return domain.Document{}, err
	}
	if err := s.Schemas.Validate(c, data); err != nil {
		return domain.Document{}, err
	}

	d := domain.Document{
		ID:         idx.New().String(),
		Collection: c,
		Data:       data,
		CreatedAt:  s.now(),
	}
	if err := s.Store.Documents().Insert(ctx, d); err != nil {
		slogx.FromContext(ctx).Error("failed to insert document", "collection", c, "error", err)
		return domain.Document{}, err
	}
	return d, nil
}

// AddArticle stores an article owned by username, whatever author the
// payload claims.
func (s *DocumentService) AddArticle(ctx context.Context, username string, data map[string]any) (domain.Document, error) {
	data = maps.Clone(data)
	if data == nil {
		data = map[string]any{}
	}
	data[authorField] = username
	return s.Add(ctx, domain.Articles, data)
}

// Merge overwrites the top-level fields in patch and keeps the rest.
func (s *DocumentService) Merge(ctx context.Context, c domain.Collection, id string, patch map[string]any) error {
	if id == "" {
		return invalid("id", msgBlank)
	}
	patch, err := cleanData(patch)
	if err != nil {
		return err
	}
	if err := s.Schemas.Validate(c, patch); err != nil {
		return err
	}
	return s.merge(ctx, s.Store, c, id, patch)
}

func (s *DocumentService) merge(ctx context.Context, st store.Store, c domain.Collection, id string, patch map[string]any) error {
	err := st.Documents().Merge(ctx, c, id, patch, s.now())
	switch {
	case errors.Is(err, store.ErrNotFound):
		return ErrDocumentNotFound
	case errors.Is(err, store.ErrInvalidField):
		return invalid("document", "has an invalid field name")
	}
	return err
}

// MergeArticle merges patch into an article owned by username. The owner
// check and the write share a transaction.
func (s *DocumentService) MergeArticle(ctx context.Context, username, id string, patch map[string]any) error {
	patch, err := cleanData(patch)
	if err != nil {
		return err
	}
	if author, ok := patch[authorField]; ok {
		if author != username {
			return invalid(authorField, "cannot be changed")
		}
		delete(patch, authorField)
	}
	if err := s.Schemas.Validate(domain.Articles, patch); err != nil {
		return err
	}

	return s.Store.WithTx(ctx, func(tx store.Tx) error {
		if err := s.checkAuthor(ctx, tx, username, id); err != nil {
			return err
		}
		return s.merge(ctx, tx, domain.Articles, id, patch)
	})
}

// Delete removes a document. Missing documents are not an error.
func (s *DocumentService) Delete(ctx context.Context, c domain.Collection, id string) error {
	if id == "" {
		return invalid("id", msgBlank)
	}
	return s.Store.Documents().Delete(ctx, c, id)
}

// DeleteArticle removes an article owned by username.
func (s *DocumentService) DeleteArticle(ctx context.Context, username, id string) error {
	return s.Store.WithTx(ctx, func(tx store.Tx) error {
		err := s.checkAuthor(ctx, tx, username, id)
		if errors.Is(err, ErrDocumentNotFound) {
			return nil
		}
		if err != nil {
			return err
		}
		return tx.Documents().Delete(ctx, domain.Articles, id)
	})
}

func (s *DocumentService) checkAuthor(ctx context.Context, tx store.Tx, username, id string) error {
	d, err := tx.Documents().Get(ctx, domain.Articles, id)
	if errors.Is(err, store.ErrNotFound) {
		return ErrDocumentNotFound
	}
	if err != nil {
		return err
	}
	if author, _ := d.Data[authorField].(string); author != username {
		return ErrNotAuthor
	}
	return nil
}

// cleanData copies data without its id (ids live beside the payload) or
// null values, and rejects field names that can't be stored.
func cleanData(data map[string]any) (map[string]any, error) {
	data = maps.Clone(data)
	delete(data, "id")

	out, err := store.CleanPatch(data)
	if errors.Is(err, store.ErrInvalidField) {
		return nil, invalid("document", "has an invalid field name")
	}
	return out, err
}
