package sqlite

import (
	"context"
	"database/sql"
	"time"

	"github.com/aussiebroadwan/ngxblog/internal/blog/domain"
	"github.com/aussiebroadwan/ngxblog/internal/blog/store"
	"github.com/vinovest/sqlx"
)

type usersRepo struct {
	db sqlx.ExtContext
}

type userRow struct {
	ID               string         `db:"id"`
	Email            string         `db:"email"`
	PasswordHash     string         `db:"password_hash"`
	Salt             string         `db:"salt"`
	FullName         string         `db:"fullname"`
	ResetID          sql.NullString `db:"reset_id"`
	ResetRequestedAt sql.NullInt64  `db:"reset_requested_at"`
	CreatedAt        time.Time      `db:"created_at"`
	UpdatedAt        time.Time      `db:"updated_at"`
}

const userColumns = `id, email, password_hash, salt, fullname, reset_id, reset_requested_at, created_at, updated_at`

func mapUser(row userRow) domain.User {
	return domain.User{
		ID:               row.ID,
		Email:            row.Email,
		FullName:         row.FullName,
		PasswordHash:     row.PasswordHash,
		Salt:             row.Salt,
		ResetID:          mapNullString(row.ResetID),
		ResetRequestedAt: mapNullUnix(row.ResetRequestedAt),
		CreatedAt:        row.CreatedAt,
		UpdatedAt:        row.UpdatedAt,
	}
}

func (r *usersRepo) CreateUser(ctx context.Context, u domain.User) error {
	now := time.Now().UTC()
	if u.CreatedAt.IsZero() {
		u.CreatedAt = now
	}
	if u.UpdatedAt.IsZero() {
		u.UpdatedAt = u.CreatedAt
	}

	_, err := r.db.ExecContext(ctx, `
		INSERT INTO users (id, email, password_hash, salt, fullname, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?)`,
		u.ID, u.Email, u.PasswordHash, u.Salt, u.FullName, u.CreatedAt, u.UpdatedAt,
	)
	return mapConstraint(err)
}

func (r *usersRepo) GetUserByID(ctx context.Context, id string) (domain.User, error) {
	var row userRow
	if err := sqlx.GetContext(ctx, r.db, &row, `SELECT `+userColumns+` FROM users WHERE id = ?`, id); err != nil {
		return domain.User{}, mapNotFound(err)
	}
	return mapUser(row), nil
}

func (r *usersRepo) GetUserByEmail(ctx context.Context, email string) (domain.User, error) {
	var row userRow
	if err := sqlx.GetContext(ctx, r.db, &row, `SELECT `+userColumns+` FROM users WHERE email = ?`, email); err != nil {
		return domain.User{}, mapNotFound(err)
	}
	return mapUser(row), nil
}

func (r *usersRepo) UpdatePassword(ctx context.Context, userID, hash, salt string) error {
	res, err := r.db.ExecContext(ctx, `
		UPDATE users SET password_hash = ?, salt = ?, updated_at = ?
		WHERE id = ?`,
		hash, salt, time.Now().UTC(), userID,
	)
	if err != nil {
		return err
	}
	return requireRow(res)
}

func (r *usersRepo) SetResetID(ctx context.Context, email, resetID string, at time.Time) (bool, error) {
	res, err := r.db.ExecContext(ctx, `
		UPDATE users SET reset_id = ?, reset_requested_at = ?, updated_at = ?
		WHERE email = ? AND reset_id IS NULL`,
		resetID, at.Unix(), at.UTC(), email,
	)
	if err != nil {
		return false, mapConstraint(err)
	}
	return affected(res)
}

func (r *usersRepo) CountByResetID(ctx context.Context, resetID string) (int, error) {
	var n int
	err := sqlx.GetContext(ctx, r.db, &n, `SELECT count(*) FROM users WHERE reset_id = ?`, resetID)
	return n, err
}

func (r *usersRepo) ConsumeResetID(ctx context.Context, resetID, hash, salt string) (bool, error) {
	res, err := r.db.ExecContext(ctx, `
		UPDATE users
		SET password_hash = ?, salt = ?, reset_id = NULL, reset_requested_at = NULL, updated_at = ?
		WHERE reset_id = ?`,
		hash, salt, time.Now().UTC(), resetID,
	)
	if err != nil {
		return false, err
	}
	return affected(res)
}

func (r *usersRepo) ClearStaleResetIDs(ctx context.Context, cutoff time.Time) (int64, error) {
	res, err := r.db.ExecContext(ctx, `
		UPDATE users SET reset_id = NULL, reset_requested_at = NULL, updated_at = ?
		WHERE reset_id IS NOT NULL AND reset_requested_at < ?`,
		time.Now().UTC(), cutoff.Unix(),
	)
	if err != nil {
		return 0, err
	}
	return res.RowsAffected()
}

func affected(res sql.Result) (bool, error) {
	n, err := res.RowsAffected()
	if err != nil {
		return false, err
	}
	return n == 1, nil
}

func requireRow(res sql.Result) error {
	ok, err := affected(res)
	if err != nil {
		return err
	}
	if !ok {
		return store.ErrNotFound
	}
	return nil
}
