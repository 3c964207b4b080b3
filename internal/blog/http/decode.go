package http

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/aussiebroadwan/ngxblog/pkg/httpx"
	"github.com/aussiebroadwan/ngxblog/pkg/jwtx"
)

// decodeBody reads a JSON or form body. An empty body decodes as an empty
// object so required-field checks report it.
func decodeBody(w http.ResponseWriter, r *http.Request) (map[string]any, bool) {
	fields, err := httpx.DecodeFields(w, r)
	if errors.Is(err, httpx.ErrEmptyBody) {
		return map[string]any{}, true
	}
	if err != nil {
		writeDecodeError(w, err)
		return nil, false
	}
	return fields, true
}

// decodeInto is decodeBody for a typed request.
func decodeInto(w http.ResponseWriter, r *http.Request, dst any) bool {
	err := httpx.Decode(w, r, dst)
	if err == nil || errors.Is(err, httpx.ErrEmptyBody) {
		return true
	}
	writeDecodeError(w, err)
	return false
}

// stringField returns fields[key] as a string. Numbers keep their literal
// form.
func stringField(fields map[string]any, key string) string {
	switch v := fields[key].(type) {
	case nil:
		return ""
	case string:
		return v
	default:
		return fmt.Sprint(v)
	}
}

// identity returns the caller's identity, writing a 401 when there is none.
func identity(w http.ResponseWriter, r *http.Request) (jwtx.Identity, bool) {
	id, ok := httpx.IdentityFromContext(r.Context())
	if !ok || id.Username == "" {
		httpx.WriteError(w, http.StatusUnauthorized, "token", "missing bearer token")
		return jwtx.Identity{}, false
	}
	return id, true
}
