package domain

import "time"

type User struct {
	ID           string
	Email        string // unique, also the session username
	FullName     string
	PasswordHash string // hex PBKDF2-SHA512
	Salt         string // hex, unique per hashing event

	// ResetID is set only while a password reset is pending.
	ResetID          *string
	ResetRequestedAt *time.Time

	CreatedAt time.Time
	UpdatedAt time.Time
}

// ResetPending reports whether a reset token is outstanding.
func (u User) ResetPending() bool {
	return u.ResetID != nil
}
