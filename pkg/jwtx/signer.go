package jwtx

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Signer is our interface for anything that can sign session tokens.
type Signer interface {
	Alg() string
	Sign(Claims) (string, error)
	Issue(identity Identity, now time.Time) (string, error)
}

// HS256Signer signs tokens with a shared secret.
type HS256Signer struct {
	secret []byte
	ttl    time.Duration
}

// NewSignerHS256 creates a signer issuing tokens valid for ttl. A zero ttl
// falls back to DefaultSessionTTL.
func NewSignerHS256(secret []byte, ttl time.Duration) (*HS256Signer, error) {
	if len(secret) == 0 {
		return nil, ErrEmptySecret
	}
	if ttl <= 0 {
		ttl = DefaultSessionTTL
	}
	return &HS256Signer{secret: secret, ttl: ttl}, nil
}

func (s *HS256Signer) Alg() string { return jwt.SigningMethodHS256.Alg() }

// Sign takes your claims and turns them into a compact JWT string.
func (s *HS256Signer) Sign(claims Claims) (string, error) {
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.secret)
}

// Issue signs a fresh session token for identity. No I/O happens here.
func (s *HS256Signer) Issue(identity Identity, now time.Time) (string, error) {
	return s.Sign(NewSessionClaims(identity, s.ttl, now))
}

// NewHS256 builds a matching signer and verifier pair from one secret.
func NewHS256(secret []byte, ttl time.Duration) (*HS256Signer, *HS256Verifier, error) {
	signer, err := NewSignerHS256(secret, ttl)
	if err != nil {
		return nil, nil, err
	}
	verifier, err := NewVerifierHS256(secret)
	if err != nil {
		return nil, nil, err
	}
	return signer, verifier, nil
}
