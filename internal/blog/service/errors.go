package service

import (
	"errors"
	"maps"
	"slices"
	"strings"
)

var (
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrWrongPassword      = errors.New("current password is invalid")
	ErrEmailTaken         = errors.New("email already registered")
	ErrUserNotFound       = errors.New("user not found")
	ErrResetNotFound      = errors.New("reset id not found")
	ErrDocumentNotFound   = errors.New("document not found")
	ErrNotAuthor          = errors.New("only the author may modify this article")
	ErrStorageDisabled    = errors.New("upload storage not configured")
)

// ValidationError carries field-keyed messages such as
// {"email": "can't be blank"}.
type ValidationError struct {
	Fields map[string]string
}

func (e *ValidationError) Error() string {
	parts := make([]string, 0, len(e.Fields))
	for _, k := range slices.Sorted(maps.Keys(e.Fields)) {
		parts = append(parts, k+" "+e.Fields[k])
	}
	return "validation failed: " + strings.Join(parts, ", ")
}

func invalid(field, msg string) *ValidationError {
	return &ValidationError{Fields: map[string]string{field: msg}}
}

const msgBlank = "can't be blank"

// requireFields reports the first blank field in order, matching how
// clients display one message at a time.
func requireFields(pairs ...string) error {
	for i := 0; i+1 < len(pairs); i += 2 {
		if strings.TrimSpace(pairs[i+1]) == "" {
			return invalid(pairs[i], msgBlank)
		}
	}
	return nil
}
