package jwtx

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// DefaultSessionTTL is how long a login token stays valid. There is no
// refresh flow, so clients log in again once it lapses.
const DefaultSessionTTL = 60 * 24 * time.Hour

// Identity is who a session token was issued to.
type Identity struct {
	ID       string `json:"id"`
	Username string `json:"username"`
}

// Claims are the session-token claims: {id, username, exp}. The registered
// claims are embedded so iat is carried too, but only exp is enforced.
type Claims struct {
	jwt.RegisteredClaims

	// UserID is the user's primary key. It is serialised as "id" which is
	// distinct from the registered "jti".
	UserID string `json:"id"`

	// Username is the login name, used to scope article ownership.
	Username string `json:"username"`
}

// NewSessionClaims builds claims for identity expiring ttl after now.
func NewSessionClaims(identity Identity, ttl time.Duration, now time.Time) Claims {
	return Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		},
		UserID:   identity.ID,
		Username: identity.Username,
	}
}

// Identity returns the identity carried by the claims.
func (c *Claims) Identity() Identity {
	return Identity{ID: c.UserID, Username: c.Username}
}

// ValidateIdentity makes sure both identity fields are present.
func (c *Claims) ValidateIdentity() error {
	if c.UserID == "" || c.Username == "" {
		return ErrMissingClaim
	}
	return nil
}
