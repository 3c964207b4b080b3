package httpx

import (
	"errors"
	"net/http"
	"strings"

	"github.com/aussiebroadwan/ngxblog/pkg/jwtx"
	"github.com/aussiebroadwan/ngxblog/pkg/slogx"
)

// RequireAuth rejects requests without a valid bearer token. The wrapped
// handler only runs with an identity in context.
func RequireAuth(v jwtx.Verifier) Middleware {
	return authn(v, true)
}

// OptionalAuth lets anonymous requests through without an identity, but a
// token that is present and invalid is still rejected.
func OptionalAuth(v jwtx.Verifier) Middleware {
	return authn(v, false)
}

func authn(v jwtx.Verifier, required bool) Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := r.Context()
			log := slogx.FromContext(ctx)

			authz := r.Header.Get("Authorization")
			if authz == "" {
				if required {
					writeBearerError(w, "", "missing bearer token")
					return
				}
				next.ServeHTTP(w, r)
				return
			}

			scheme, raw, ok := strings.Cut(authz, " ")
			raw = strings.TrimSpace(raw)
			if !ok || !strings.EqualFold(scheme, "Bearer") || raw == "" {
				writeBearerError(w, "invalid_request", "authorization header must be Bearer <token>")
				return
			}

			claims, err := v.Verify(raw)
			if err != nil {
				desc := "token verification failed"
				if errors.Is(err, jwtx.ErrExpired) {
					desc = "token expired"
				}
				log.Warn("jwt verify failed", "err", err)
				writeBearerError(w, "invalid_token", desc)
				return
			}

			// Inject into context for downstream handlers.
			ctx = WithIdentity(ctx, claims.Identity(), raw)
			ctx = slogx.WithUserID(ctx, claims.UserID)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// RFC 6750-compliant error response for bearer auth. The body uses the same
// field-keyed error shape as every other 4xx from this API.
func writeBearerError(w http.ResponseWriter, code, desc string) {
	challenge := `Bearer realm="api"`
	if code != "" {
		challenge += `, error="` + code + `", error_description="` + desc + `"`
	}
	w.Header().Set("WWW-Authenticate", challenge)
	WriteErrors(w, http.StatusUnauthorized, Errors{"token": desc})
}
