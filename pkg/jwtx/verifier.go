package jwtx

import (
	"errors"
)

// Verifier validates a JWT and gives you back the claims if it's legit.
// Implementations never consult a store, so a verified token can't be told
// apart from a revoked one.
type Verifier interface {
	Verify(token string) (Claims, error)
}

var (
	ErrMalformed    = errors.New("jwtx: malformed token")
	ErrInvalidSig   = errors.New("jwtx: invalid signature")
	ErrExpired      = errors.New("jwtx: token expired")
	ErrMissingClaim = errors.New("jwtx: missing required claim")
	ErrEmptySecret  = errors.New("jwtx: empty signing secret")
)
