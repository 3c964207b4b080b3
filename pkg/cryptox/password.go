package cryptox

import (
	"crypto/rand"
	"crypto/sha512"
	"crypto/subtle"
	"encoding/hex"
	"errors"
	"fmt"

	"golang.org/x/crypto/pbkdf2"
)

// Minimum accepted parameters. Records written by the legacy service use
// exactly these values so they verify unchanged.
const (
	MinIterations = 100_000
	MinKeyLength  = 64
	MinSaltLength = 16
)

// ErrInvalidHasherParams is returned by NewHasher when a parameter is below
// the accepted minimum. Callers treat it as a configuration error.
var ErrInvalidHasherParams = errors.New("cryptox: invalid hasher parameters")

// PasswordHash is what gets stored next to a user record. Both fields are
// hex strings and the salt is unique per hashing event.
type PasswordHash struct {
	Salt string
	Hash string
}

// Hasher derives PBKDF2-HMAC-SHA512 password hashes.
//
// The salt is a hex string of SaltLength characters and its ASCII bytes
// (not the decoded bytes) are fed to the KDF. The derived key is KeyLength
// bytes and is stored hex encoded.
type Hasher struct {
	Iterations int
	KeyLength  int
	SaltLength int
}

// DefaultHasher matches the parameters used by existing user records.
var DefaultHasher = Hasher{
	Iterations: MinIterations,
	KeyLength:  MinKeyLength,
	SaltLength: MinSaltLength,
}

// NewHasher validates the parameters and returns a Hasher.
func NewHasher(iterations, keyLength, saltLength int) (Hasher, error) {
	if iterations < MinIterations {
		return Hasher{}, fmt.Errorf("%w: iterations %d < %d", ErrInvalidHasherParams, iterations, MinIterations)
	}
	if keyLength < MinKeyLength {
		return Hasher{}, fmt.Errorf("%w: key length %d < %d", ErrInvalidHasherParams, keyLength, MinKeyLength)
	}
	if saltLength < MinSaltLength {
		return Hasher{}, fmt.Errorf("%w: salt length %d < %d", ErrInvalidHasherParams, saltLength, MinSaltLength)
	}
	return Hasher{Iterations: iterations, KeyLength: keyLength, SaltLength: saltLength}, nil
}

// Hash generates a fresh salt and derives the hash of plaintext with it.
func (h Hasher) Hash(plaintext string) (PasswordHash, error) {
	salt, err := h.newSalt()
	if err != nil {
		return PasswordHash{}, err
	}
	return PasswordHash{
		Salt: salt,
		Hash: h.derive(plaintext, salt),
	}, nil
}

// Verify recomputes the hash with salt and compares it in constant time.
// Malformed input never panics, it just fails to verify.
func (h Hasher) Verify(plaintext, storedHash, salt string) bool {
	if salt == "" || storedHash == "" {
		return false
	}

	expected, err := hex.DecodeString(storedHash)
	if err != nil || len(expected) != h.KeyLength {
		return false
	}

	computed := pbkdf2.Key([]byte(plaintext), []byte(salt), h.Iterations, h.KeyLength, sha512.New)
	return subtle.ConstantTimeCompare(computed, expected) == 1
}

func (h Hasher) derive(plaintext, salt string) string {
	key := pbkdf2.Key([]byte(plaintext), []byte(salt), h.Iterations, h.KeyLength, sha512.New)
	return hex.EncodeToString(key)
}

func (h Hasher) newSalt() (string, error) {
	buf := make([]byte, (h.SaltLength+1)/2)
	if _, err := rand.Read(buf); err != nil {
		return "", fmt.Errorf("failed to generate salt: %w", err)
	}
	return hex.EncodeToString(buf)[:h.SaltLength], nil
}

// HashPassword hashes with DefaultHasher.
func HashPassword(password string) (PasswordHash, error) {
	return DefaultHasher.Hash(password)
}

// VerifyPassword verifies with DefaultHasher.
func VerifyPassword(password, storedHash, salt string) bool {
	return DefaultHasher.Verify(password, storedHash, salt)
}
