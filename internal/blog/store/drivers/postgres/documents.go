package postgres

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/aussiebroadwan/ngxblog/internal/blog/domain"
	"github.com/aussiebroadwan/ngxblog/internal/blog/store"
	"github.com/jackc/pgx/v5"
	"github.com/samber/oops"
)

type documentsRepo struct {
	db querier
}

const documentColumns = `id, collection, data, created_at, updated_at`

func scanDocument(row pgx.Row) (domain.Document, error) {
	var (
		d    domain.Document
		coll string
		raw  []byte
	)
	if err := row.Scan(&d.ID, &coll, &raw, &d.CreatedAt, &d.UpdatedAt); err != nil {
		return domain.Document{}, err
	}
	d.Collection = domain.Collection(coll)
	d.Data = map[string]any{}
	if err := json.Unmarshal(raw, &d.Data); err != nil {
		return domain.Document{}, oops.Code("DOCUMENT_CORRUPT").With("id", d.ID).Wrap(err)
	}
	return d, nil
}

func (r *documentsRepo) List(ctx context.Context, c domain.Collection) ([]domain.Document, error) {
	return r.Find(ctx, c)
}

// Find matches filters with data->>$n so field names are bound as
// parameters rather than spliced into the query.
func (r *documentsRepo) Find(ctx context.Context, c domain.Collection, filters ...domain.Filter) ([]domain.Document, error) {
	if err := store.ValidateFilters(filters); err != nil {
		return nil, err
	}

	var sb strings.Builder
	sb.WriteString(`SELECT ` + documentColumns + ` FROM documents WHERE collection = $1`)
	args := []any{c.String()}
	for _, f := range filters {
		fmt.Fprintf(&sb, ` AND data->>$%d = $%d`, len(args)+1, len(args)+2)
		args = append(args, f.Field, f.Value)
	}
	sb.WriteString(` ORDER BY id`)

	rows, err := r.db.Query(ctx, sb.String(), args...)
	if err != nil {
		return nil, mapErr("DOCUMENT_QUERY_FAILED", "find documents", err)
	}
	defer rows.Close()

	docs := []domain.Document{}
	for rows.Next() {
		d, err := scanDocument(rows)
		if err != nil {
			return nil, mapErr("DOCUMENT_SCAN_FAILED", "scan document", err)
		}
		docs = append(docs, d)
	}
	if err := rows.Err(); err != nil {
		return nil, mapErr("DOCUMENT_QUERY_FAILED", "iterate documents", err)
	}
	return docs, nil
}

func (r *documentsRepo) Get(ctx context.Context, c domain.Collection, id string) (domain.Document, error) {
	row := r.db.QueryRow(ctx,
		`SELECT `+documentColumns+` FROM documents WHERE collection = $1 AND id = $2`, c.String(), id)
	d, err := scanDocument(row)
	if err != nil {
		return domain.Document{}, mapErr("DOCUMENT_QUERY_FAILED", "get document", err)
	}
	return d, nil
}

func (r *documentsRepo) Insert(ctx context.Context, d domain.Document) error {
	raw, err := json.Marshal(d.Data)
	if err != nil {
		return oops.Code("DOCUMENT_ENCODE_FAILED").Wrap(err)
	}

	if d.CreatedAt.IsZero() {
		d.CreatedAt = time.Now().UTC()
	}

	_, err = r.db.Exec(ctx, `
		INSERT INTO documents (id, collection, data, created_at, updated_at)
		VALUES ($1, $2, $3::jsonb, $4, $4)`,
		d.ID, d.Collection.String(), raw, d.CreatedAt,
	)
	return mapErr("DOCUMENT_INSERT_FAILED", "insert document", err)
}

// Merge uses jsonb concatenation, which replaces top-level keys only.
func (r *documentsRepo) Merge(ctx context.Context, c domain.Collection, id string, patch map[string]any, at time.Time) error {
	patch, err := store.CleanPatch(patch)
	if err != nil {
		return err
	}
	raw, err := json.Marshal(patch)
	if err != nil {
		return oops.Code("DOCUMENT_ENCODE_FAILED").Wrap(err)
	}

	tag, err := r.db.Exec(ctx, `
		UPDATE documents SET data = data || $1::jsonb, updated_at = $2
		WHERE collection = $3 AND id = $4`,
		raw, at.UTC(), c.String(), id,
	)
	if err != nil {
		return mapErr("DOCUMENT_UPDATE_FAILED", "merge document", err)
	}
	if tag.RowsAffected() == 0 {
		return store.ErrNotFound
	}
	return nil
}

func (r *documentsRepo) Delete(ctx context.Context, c domain.Collection, id string) error {
	_, err := r.db.Exec(ctx, `DELETE FROM documents WHERE collection = $1 AND id = $2`, c.String(), id)
	return mapErr("DOCUMENT_DELETE_FAILED", "delete document", err)
}
