package postgres

import (
	"context"
	"time"

	"github.com/aussiebroadwan/ngxblog/internal/blog/domain"
	"github.com/aussiebroadwan/ngxblog/internal/blog/store"
)

type usersRepo struct {
	db querier
}

const userColumns = `id, email, password_hash, salt, fullname, reset_id, reset_requested_at, created_at, updated_at`

func (r *usersRepo) getUser(ctx context.Context, op, where string, arg any) (domain.User, error) {
	var u domain.User
	err := r.db.QueryRow(ctx, `SELECT `+userColumns+` FROM users WHERE `+where+` = $1`, arg).Scan(
		&u.ID, &u.Email, &u.PasswordHash, &u.Salt, &u.FullName,
		&u.ResetID, &u.ResetRequestedAt, &u.CreatedAt, &u.UpdatedAt,
	)
	if err != nil {
		return domain.User{}, mapErr("USER_QUERY_FAILED", op, err)
	}
	return u, nil
}

func (r *usersRepo) CreateUser(ctx context.Context, u domain.User) error {
	now := time.Now().UTC()
	if u.CreatedAt.IsZero() {
		u.CreatedAt = now
	}
	if u.UpdatedAt.IsZero() {
		u.UpdatedAt = u.CreatedAt
	}

	_, err := r.db.Exec(ctx, `
		INSERT INTO users (id, email, password_hash, salt, fullname, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`,
		u.ID, u.Email, u.PasswordHash, u.Salt, u.FullName, u.CreatedAt, u.UpdatedAt,
	)
	return mapErr("USER_CREATE_FAILED", "create user", err)
}

func (r *usersRepo) GetUserByID(ctx context.Context, id string) (domain.User, error) {
	return r.getUser(ctx, "get user by id", "id", id)
}

func (r *usersRepo) GetUserByEmail(ctx context.Context, email string) (domain.User, error) {
	return r.getUser(ctx, "get user by email", "email", email)
}

func (r *usersRepo) UpdatePassword(ctx context.Context, userID, hash, salt string) error {
	tag, err := r.db.Exec(ctx, `
		UPDATE users SET password_hash = $1, salt = $2, updated_at = $3
		WHERE id = $4`,
		hash, salt, time.Now().UTC(), userID,
	)
	if err != nil {
		return mapErr("USER_UPDATE_FAILED", "update password", err)
	}
	if tag.RowsAffected() == 0 {
		return store.ErrNotFound
	}
	return nil
}

func (r *usersRepo) SetResetID(ctx context.Context, email, resetID string, at time.Time) (bool, error) {
	tag, err := r.db.Exec(ctx, `
		UPDATE users SET reset_id = $1, reset_requested_at = $2, updated_at = $2
		WHERE email = $3 AND reset_id IS NULL`,
		resetID, at.UTC(), email,
	)
	if err != nil {
		return false, mapErr("RESET_SET_FAILED", "set reset id", err)
	}
	return tag.RowsAffected() == 1, nil
}

func (r *usersRepo) CountByResetID(ctx context.Context, resetID string) (int, error) {
	var n int
	err := r.db.QueryRow(ctx, `SELECT count(*) FROM users WHERE reset_id = $1`, resetID).Scan(&n)
	if err != nil {
		return 0, mapErr("RESET_QUERY_FAILED", "count reset id", err)
	}
	return n, nil
}

func (r *usersRepo) ConsumeResetID(ctx context.Context, resetID, hash, salt string) (bool, error) {
	tag, err := r.db.Exec(ctx, `
		UPDATE users
		SET password_hash = $1, salt = $2, reset_id = NULL, reset_requested_at = NULL, updated_at = $3
		WHERE reset_id = $4`,
		hash, salt, time.Now().UTC(), resetID,
	)
	if err != nil {
		return false, mapErr("RESET_CONSUME_FAILED", "consume reset id", err)
	}
	return tag.RowsAffected() == 1, nil
}

func (r *usersRepo) ClearStaleResetIDs(ctx context.Context, cutoff time.Time) (int64, error) {
	tag, err := r.db.Exec(ctx, `
		UPDATE users SET reset_id = NULL, reset_requested_at = NULL, updated_at = $1
		WHERE reset_id IS NOT NULL AND reset_requested_at < $2`,
		time.Now().UTC(), cutoff.UTC(),
	)
	if err != nil {
		return 0, mapErr("RESET_EXPIRE_FAILED", "clear stale reset ids", err)
	}
	return tag.RowsAffected(), nil
}
