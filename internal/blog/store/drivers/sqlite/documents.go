package sqlite

import (
	"context"
	"encoding/json"
	"fmt"
	"maps"
	"slices"
	"strings"
	"time"

	"github.com/aussiebroadwan/ngxblog/internal/blog/domain"
	"github.com/aussiebroadwan/ngxblog/internal/blog/store"
	"github.com/vinovest/sqlx"
)

type documentsRepo struct {
	db sqlx.ExtContext
}

type documentRow struct {
	ID         string    `db:"id"`
	Collection string    `db:"collection"`
	Data       string    `db:"data"`
	CreatedAt  time.Time `db:"created_at"`
	UpdatedAt  time.Time `db:"updated_at"`
}

const documentColumns = `id, collection, data, created_at, updated_at`

func mapDocument(row documentRow) (domain.Document, error) {
	data := map[string]any{}
	if err := json.Unmarshal([]byte(row.Data), &data); err != nil {
		return domain.Document{}, fmt.Errorf("decode document %s/%s: %w", row.Collection, row.ID, err)
	}
	return domain.Document{
		ID:         row.ID,
		Collection: domain.Collection(row.Collection),
		Data:       data,
		CreatedAt:  row.CreatedAt,
		UpdatedAt:  row.UpdatedAt,
	}, nil
}

func mapDocuments(rows []documentRow) ([]domain.Document, error) {
	docs := make([]domain.Document, 0, len(rows))
	for _, row := range rows {
		d, err := mapDocument(row)
		if err != nil {
			return nil, err
		}
		docs = append(docs, d)
	}
	return docs, nil
}

func (r *documentsRepo) List(ctx context.Context, c domain.Collection) ([]domain.Document, error) {
	return r.Find(ctx, c)
}

func (r *documentsRepo) Find(ctx context.Context, c domain.Collection, filters ...domain.Filter) ([]domain.Document, error) {
	if err := store.ValidateFilters(filters); err != nil {
		return nil, err
	}

	var sb strings.Builder
	sb.WriteString(`SELECT ` + documentColumns + ` FROM documents WHERE collection = ?`)
	args := []any{c.String()}
	for _, f := range filters {
		sb.WriteString(` AND json_extract(data, ?) = ?`)
		args = append(args, "$."+f.Field, f.Value)
	}
	sb.WriteString(` ORDER BY id`)

	var rows []documentRow
	if err := sqlx.SelectContext(ctx, r.db, &rows, sb.String(), args...); err != nil {
		return nil, err
	}
	return mapDocuments(rows)
}

func (r *documentsRepo) Get(ctx context.Context, c domain.Collection, id string) (domain.Document, error) {
	var row documentRow
	err := sqlx.GetContext(ctx, r.db, &row,
		`SELECT `+documentColumns+` FROM documents WHERE collection = ? AND id = ?`, c.String(), id)
	if err != nil {
		return domain.Document{}, mapNotFound(err)
	}
	return mapDocument(row)
}

func (r *documentsRepo) Insert(ctx context.Context, d domain.Document) error {
	raw, err := json.Marshal(d.Data)
	if err != nil {
		return fmt.Errorf("encode document: %w", err)
	}

	now := time.Now().UTC()
	if d.CreatedAt.IsZero() {
		d.CreatedAt = now
	}

	_, err = r.db.ExecContext(ctx, `
		INSERT INTO documents (id, collection, data, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?)`,
		d.ID, d.Collection.String(), string(raw), d.CreatedAt, d.CreatedAt,
	)
	return mapConstraint(err)
}

// Merge removes every patched key and then applies the patch with
// json_patch. Removing first stops json_patch from merging nested objects,
// which keeps the merge shallow.
func (r *documentsRepo) Merge(ctx context.Context, c domain.Collection, id string, patch map[string]any, at time.Time) error {
	patch, err := store.CleanPatch(patch)
	if err != nil {
		return err
	}
	raw, err := json.Marshal(patch)
	if err != nil {
		return fmt.Errorf("encode patch: %w", err)
	}

	keys := slices.Sorted(maps.Keys(patch))
	removeArgs := strings.Repeat(", ?", len(keys))

	args := make([]any, 0, len(keys)+4)
	for _, k := range keys {
		args = append(args, "$."+k)
	}
	args = append(args, string(raw), at.UTC(), c.String(), id)

	res, err := r.db.ExecContext(ctx, `
		UPDATE documents
		SET data = json_patch(json_remove(data`+removeArgs+`), ?), updated_at = ?
		WHERE collection = ? AND id = ?`,
		args...,
	)
	if err != nil {
		return err
	}
	return requireRow(res)
}

func (r *documentsRepo) Delete(ctx context.Context, c domain.Collection, id string) error {
	_, err := r.db.ExecContext(ctx, `DELETE FROM documents WHERE collection = ? AND id = ?`, c.String(), id)
	return err
}
