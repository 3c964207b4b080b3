package httpx

import (
	"context"

	"github.com/aussiebroadwan/ngxblog/pkg/jwtx"
)

type ctxKey string

const (
	CtxKeyIdentity ctxKey = "identity"
	CtxKeyToken    ctxKey = "token"
)

// IdentityFromContext returns the identity the auth gate attached, if any.
func IdentityFromContext(ctx context.Context) (jwtx.Identity, bool) {
	id, ok := ctx.Value(CtxKeyIdentity).(jwtx.Identity)
	return id, ok
}

// TokenFromContext returns the raw bearer token of an authenticated request.
func TokenFromContext(ctx context.Context) string {
	tok, _ := ctx.Value(CtxKeyToken).(string)
	return tok
}

// WithIdentity attaches an identity and its token. The auth gate is the only
// production caller; tests use it to skip signing.
func WithIdentity(ctx context.Context, id jwtx.Identity, token string) context.Context {
	ctx = context.WithValue(ctx, CtxKeyIdentity, id)
	ctx = context.WithValue(ctx, CtxKeyToken, token)
	return ctx
}
