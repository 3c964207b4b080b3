package store

import (
	"context"
	"errors"
	"time"

	"github.com/aussiebroadwan/ngxblog/internal/blog/domain"
)

var (
	ErrNotFound      = errors.New("store: not found")
	ErrAlreadyExists = errors.New("store: already exists")
	ErrInvalidField  = errors.New("store: invalid field name")
)

// Store is the root data access interface. Concrete drivers (sqlite, postgres)
// implement this. It exposes sub-repositories so transactions can't be
// nested by accident.
type Store interface {
	Users() Users
	Documents() Documents

	ApplyMigrations() error

	// Tx starts a read/write transaction and returns a Tx-scoped Store.
	// The caller MUST call Commit() or Rollback() on the returned Tx.
	Tx(ctx context.Context) (Tx, error)

	// WithTx runs fn in a transaction, committing when fn returns nil and
	// rolling back otherwise.
	WithTx(ctx context.Context, fn func(tx Tx) error) error

	// Close releases any underlying resources.
	Close() error

	// Ping verifies the database connection is still alive.
	Ping(ctx context.Context) error
}

// Tx is a transactional store. It embeds the same repos but adds Commit/Rollback.
type Tx interface {
	Store
	Commit() error
	Rollback() error
}

type Users interface {
	// CreateUser inserts a new user. A duplicate email yields ErrAlreadyExists.
	CreateUser(ctx context.Context, u domain.User) error

	GetUserByID(ctx context.Context, id string) (domain.User, error)
	GetUserByEmail(ctx context.Context, email string) (domain.User, error)

	// UpdatePassword replaces hash and salt together and bumps updated_at.
	UpdatePassword(ctx context.Context, userID, hash, salt string) error

	// SetResetID stores resetID for email only when no reset is pending.
	// It reports false when nothing was written (unknown email or already
	// pending), in one conditional statement.
	SetResetID(ctx context.Context, email, resetID string, at time.Time) (bool, error)

	// CountByResetID counts users currently holding resetID.
	CountByResetID(ctx context.Context, resetID string) (int, error)

	// ConsumeResetID sets the new hash and salt and clears reset_id in one
	// statement keyed on resetID. It reports false when no row matched, so of
	// two racing callers at most one sees true.
	ConsumeResetID(ctx context.Context, resetID, hash, salt string) (bool, error)

	// ClearStaleResetIDs clears resets requested before cutoff.
	ClearStaleResetIDs(ctx context.Context, cutoff time.Time) (int64, error)
}

type Documents interface {
	// List returns every document in c ordered by id (creation order).
	List(ctx context.Context, c domain.Collection) ([]domain.Document, error)

	// Find returns documents in c matching every filter.
	Find(ctx context.Context, c domain.Collection, filters ...domain.Filter) ([]domain.Document, error)

	Get(ctx context.Context, c domain.Collection, id string) (domain.Document, error)

	// Insert stores d. Its id must already be set.
	Insert(ctx context.Context, d domain.Document) error

	// Merge overwrites the top-level keys in patch and keeps the rest.
	// Returns ErrNotFound when the document doesn't exist.
	Merge(ctx context.Context, c domain.Collection, id string, patch map[string]any, at time.Time) error

	// Delete removes a document. Deleting a missing document is not an error.
	Delete(ctx context.Context, c domain.Collection, id string) error
}

// ValidateFilters rejects filters whose field can't be used in a JSON path.
func ValidateFilters(filters []domain.Filter) error {
	for _, f := range filters {
		if !domain.ValidFieldName(f.Field) {
			return ErrInvalidField
		}
	}
	return nil
}

// CleanPatch validates patch keys and drops null values at every object
// level. SQLite's json_patch deletes nested nulls while jsonb concatenation
// stores them, so stripping them up front keeps both drivers identical.
func CleanPatch(patch map[string]any) (map[string]any, error) {
	for k := range patch {
		if !domain.ValidFieldName(k) {
			return nil, ErrInvalidField
		}
	}
	return dropNulls(patch), nil
}

func dropNulls(m map[string]any) map[string]any {
	out := make(map[string]any, len(m))
	for k, v := range m {
		switch v := v.(type) {
		case nil:
			continue
		case map[string]any:
			out[k] = dropNulls(v)
		default:
			out[k] = v
		}
	}
	return out
}
