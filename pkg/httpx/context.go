package httpx

import (
	"context"

	"github.com/softwareone-platform/mpt-finops-api-modifier/pkg/jwtx"
)

type ctxKey string

const (
	CtxKeyToken  ctxKey = "token"
	CtxKeyUserID ctxKey = "user_id" // the caller's sub claim
	CtxKeyClaims ctxKey = "claims"
)

func contextWithAuth(ctx context.Context, raw string, c jwtx.Claims) context.Context {
	ctx = context.WithValue(ctx, CtxKeyToken, raw)
	ctx = context.WithValue(ctx, CtxKeyUserID, c.Subject)
	ctx = context.WithValue(ctx, CtxKeyClaims, c)
	return ctx
}

// TokenFromContext returns the bearer token accepted by JWTBearer.
func TokenFromContext(ctx context.Context) (string, bool) {
	v, ok := ctx.Value(CtxKeyToken).(string)
	return v, ok && v != ""
}

// ClaimsFromContext returns the claims of the accepted bearer token.
func ClaimsFromContext(ctx context.Context) (jwtx.Claims, bool) {
	v, ok := ctx.Value(CtxKeyClaims).(jwtx.Claims)
	return v, ok
}
