package httpx

import (
	"log/slog"
	"net/http"
	"strings"

	"github.com/softwareone-platform/mpt-finops-api-modifier/pkg/jwtx"
	"github.com/softwareone-platform/mpt-finops-api-modifier/pkg/slogx"
)

const (
	TitleInvalidScheme = "Invalid authorization scheme."
	TitleInvalidToken  = "Invalid token or expired token."

	reasonInvalidToken = "The token is invalid or has expired."
)

// JWTBearer only lets through requests carrying a valid "Bearer <jwt>"
// Authorization header. The raw token and its claims are added to the request
// context.
func JWTBearer(v jwtx.Verifier) Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := r.Context()
			log := slogx.FromContext(ctx)

			raw, ok := bearerToken(r.Header.Get("Authorization"))
			if !ok {
				writeBearerError(w, "invalid_request", TitleInvalidScheme, TitleInvalidScheme)
				return
			}

			claims, err := v.Verify(raw)
			if err != nil {
				log.Warn("jwt verify failed", slog.String("error", err.Error()))
				writeBearerError(w, "invalid_token", TitleInvalidToken, reasonInvalidToken)
				return
			}

			next.ServeHTTP(w, r.WithContext(contextWithAuth(ctx, raw, claims)))
		})
	}
}

// bearerToken extracts the credentials of a Bearer Authorization header.
// The scheme is matched case-insensitively.
func bearerToken(header string) (string, bool) {
	scheme, token, ok := strings.Cut(strings.TrimSpace(header), " ")
	if !ok || !strings.EqualFold(scheme, "Bearer") {
		return "", false
	}
	token = strings.TrimSpace(token)
	return token, token != ""
}

// RFC 6750 challenge plus the usual error envelope.
func writeBearerError(w http.ResponseWriter, code, title, reason string) {
	w.Header().Set("WWW-Authenticate", `Bearer error="`+code+`"`)
	WriteProblem(w, NewProblem(http.StatusUnauthorized, title, Reason(reason)))
}
