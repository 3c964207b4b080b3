package postgres_test

import (
	"context"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/aussiebroadwan/ngxblog/internal/blog/domain"
	"github.com/aussiebroadwan/ngxblog/internal/blog/store"
	"github.com/aussiebroadwan/ngxblog/internal/blog/store/drivers/postgres"
	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newMock(t *testing.T) (pgxmock.PgxPoolIface, *postgres.Store) {
	t.Helper()

	mock, err := pgxmock.NewPool()
	require.NoError(t, err, "failed to create mock")
	t.Cleanup(func() {
		assert.NoError(t, mock.ExpectationsWereMet())
		mock.Close()
	})

	return mock, postgres.New(mock)
}

var userCols = []string{"id", "email", "password_hash", "salt", "fullname", "reset_id", "reset_requested_at", "created_at", "updated_at"}

func TestUsers_CreateUser(t *testing.T) {
	tests := []struct {
		name    string
		setup   func(mock pgxmock.PgxPoolIface)
		wantErr error
	}{
		{
			name: "inserted",
			setup: func(mock pgxmock.PgxPoolIface) {
				mock.ExpectExec(regexp.QuoteMeta(`INSERT INTO users`)).
					WithArgs("u1", "a@x.com", "hash", "salt", "Jane", pgxmock.AnyArg(), pgxmock.AnyArg()).
					WillReturnResult(pgxmock.NewResult("INSERT", 1))
			},
		},
		{
			name: "duplicate email",
			setup: func(mock pgxmock.PgxPoolIface) {
				mock.ExpectExec(regexp.QuoteMeta(`INSERT INTO users`)).
					WithArgs("u1", "a@x.com", "hash", "salt", "Jane", pgxmock.AnyArg(), pgxmock.AnyArg()).
					WillReturnError(&pgconn.PgError{Code: pgerrcode.UniqueViolation, ConstraintName: "users_email_key"})
			},
			wantErr: store.ErrAlreadyExists,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mock, s := newMock(t)
			tt.setup(mock)

			err := s.Users().CreateUser(context.Background(), domain.User{
				ID: "u1", Email: "a@x.com", PasswordHash: "hash", Salt: "salt", FullName: "Jane",
			})
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
		})
	}
}

func TestUsers_GetUserByEmail(t *testing.T) {
	t.Run("found", func(t *testing.T) {
		mock, s := newMock(t)
		now := time.Now().UTC()
		resetID := "r1"

		mock.ExpectQuery(regexp.QuoteMeta(`FROM users WHERE email = $1`)).
			WithArgs("a@x.com").
			WillReturnRows(pgxmock.NewRows(userCols).
				AddRow("u1", "a@x.com", "hash", "salt", "Jane", &resetID, &now, now, now))

		u, err := s.Users().GetUserByEmail(context.Background(), "a@x.com")
		require.NoError(t, err)
		require.Equal(t, "u1", u.ID)
		require.True(t, u.ResetPending())
		require.Equal(t, "r1", *u.ResetID)
	})

	t.Run("not found", func(t *testing.T) {
		mock, s := newMock(t)
		mock.ExpectQuery(regexp.QuoteMeta(`FROM users WHERE email = $1`)).
			WithArgs("nobody@x.com").
			WillReturnRows(pgxmock.NewRows(userCols))

		_, err := s.Users().GetUserByEmail(context.Background(), "nobody@x.com")
		require.ErrorIs(t, err, store.ErrNotFound)
	})

	t.Run("database error", func(t *testing.T) {
		mock, s := newMock(t)
		mock.ExpectQuery(regexp.QuoteMeta(`FROM users WHERE email = $1`)).
			WithArgs("a@x.com").
			WillReturnError(errors.New("connection refused"))

		_, err := s.Users().GetUserByEmail(context.Background(), "a@x.com")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "connection refused")
		assert.NotErrorIs(t, err, store.ErrNotFound)
	})
}

func TestUsers_ResetStatements(t *testing.T) {
	ctx := context.Background()

	t.Run("set only when none pending", func(t *testing.T) {
		mock, s := newMock(t)
		at := time.Now()
		mock.ExpectExec(regexp.QuoteMeta(`WHERE email = $3 AND reset_id IS NULL`)).
			WithArgs("r1", at.UTC(), "a@x.com").
			WillReturnResult(pgxmock.NewResult("UPDATE", 0))

		ok, err := s.Users().SetResetID(ctx, "a@x.com", "r1", at)
		require.NoError(t, err)
		require.False(t, ok)
	})

	t.Run("consume", func(t *testing.T) {
		mock, s := newMock(t)
		mock.ExpectExec(regexp.QuoteMeta(`reset_id = NULL`)).
			WithArgs("h", "s", pgxmock.AnyArg(), "r1").
			WillReturnResult(pgxmock.NewResult("UPDATE", 1))

		ok, err := s.Users().ConsumeResetID(ctx, "r1", "h", "s")
		require.NoError(t, err)
		require.True(t, ok)
	})

	t.Run("count", func(t *testing.T) {
		mock, s := newMock(t)
		mock.ExpectQuery(regexp.QuoteMeta(`SELECT count(*) FROM users WHERE reset_id = $1`)).
			WithArgs("r1").
			WillReturnRows(pgxmock.NewRows([]string{"count"}).AddRow(1))

		n, err := s.Users().CountByResetID(ctx, "r1")
		require.NoError(t, err)
		require.Equal(t, 1, n)
	})

	t.Run("expire stale", func(t *testing.T) {
		mock, s := newMock(t)
		cutoff := time.Now().Add(-time.Hour)
		mock.ExpectExec(regexp.QuoteMeta(`reset_requested_at < $2`)).
			WithArgs(pgxmock.AnyArg(), cutoff.UTC()).
			WillReturnResult(pgxmock.NewResult("UPDATE", 3))

		n, err := s.Users().ClearStaleResetIDs(ctx, cutoff)
		require.NoError(t, err)
		require.EqualValues(t, 3, n)
	})
}

func TestDocuments_Find(t *testing.T) {
	mock, s := newMock(t)
	now := time.Now().UTC()

	mock.ExpectQuery(regexp.QuoteMeta(`WHERE collection = $1 AND data->>$2 = $3 ORDER BY id`)).
		WithArgs("articles", "author", "a@x.com").
		WillReturnRows(pgxmock.NewRows([]string{"id", "collection", "data", "created_at", "updated_at"}).
			AddRow("d1", "articles", []byte(`{"title":"Hello","author":"a@x.com"}`), now, now))

	docs, err := s.Documents().Find(context.Background(), domain.Articles, domain.Filter{Field: "author", Value: "a@x.com"})
	require.NoError(t, err)
	require.Len(t, docs, 1)
	require.Equal(t, "Hello", docs[0].Data["title"])
	require.Equal(t, domain.Articles, docs[0].Collection)
}

func TestDocuments_FindRejectsBadField(t *testing.T) {
	_, s := newMock(t)

	_, err := s.Documents().Find(context.Background(), domain.Articles, domain.Filter{Field: "x'; DROP TABLE documents", Value: "y"})
	require.ErrorIs(t, err, store.ErrInvalidField)
}

func TestDocuments_Merge(t *testing.T) {
	ctx := context.Background()
	at := time.Now()

	t.Run("missing document", func(t *testing.T) {
		mock, s := newMock(t)
		mock.ExpectExec(regexp.QuoteMeta(`SET data = data || $1::jsonb`)).
			WithArgs([]byte(`{"title":"x"}`), at.UTC(), "articles", "d1").
			WillReturnResult(pgxmock.NewResult("UPDATE", 0))

		err := s.Documents().Merge(ctx, domain.Articles, "d1", map[string]any{"title": "x", "drop": nil}, at)
		require.ErrorIs(t, err, store.ErrNotFound)
	})

	t.Run("merged", func(t *testing.T) {
		mock, s := newMock(t)
		mock.ExpectExec(regexp.QuoteMeta(`SET data = data || $1::jsonb`)).
			WithArgs([]byte(`{"title":"x"}`), at.UTC(), "articles", "d1").
			WillReturnResult(pgxmock.NewResult("UPDATE", 1))

		require.NoError(t, s.Documents().Merge(ctx, domain.Articles, "d1", map[string]any{"title": "x"}, at))
	})

	t.Run("nested nulls dropped", func(t *testing.T) {
		mock, s := newMock(t)
		mock.ExpectExec(regexp.QuoteMeta(`SET data = data || $1::jsonb`)).
			WithArgs([]byte(`{"meta":{"b":"keep"}}`), at.UTC(), "articles", "d1").
			WillReturnResult(pgxmock.NewResult("UPDATE", 1))

		patch := map[string]any{"meta": map[string]any{"a": nil, "b": "keep"}}
		require.NoError(t, s.Documents().Merge(ctx, domain.Articles, "d1", patch, at))
	})
}

func TestWithTx(t *testing.T) {
	ctx := context.Background()

	t.Run("commits on success", func(t *testing.T) {
		mock, s := newMock(t)
		mock.ExpectBegin()
		mock.ExpectExec(regexp.QuoteMeta(`DELETE FROM documents`)).
			WithArgs("authors", "a1").
			WillReturnResult(pgxmock.NewResult("DELETE", 1))
		mock.ExpectCommit()

		err := s.WithTx(ctx, func(tx store.Tx) error {
			return tx.Documents().Delete(ctx, domain.Authors, "a1")
		})
		require.NoError(t, err)
	})

	t.Run("rolls back on error", func(t *testing.T) {
		mock, s := newMock(t)
		mock.ExpectBegin()
		mock.ExpectRollback()

		boom := errors.New("boom")
		err := s.WithTx(ctx, func(tx store.Tx) error { return boom })
		require.ErrorIs(t, err, boom)
	})
}

func TestApplyMigrations_RequiresURL(t *testing.T) {
	_, s := newMock(t)
	require.Error(t, s.ApplyMigrations())
}
