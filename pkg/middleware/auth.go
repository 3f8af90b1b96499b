package middleware

import (
	"context"
	"net/http"
	"strings"

	"github.com/shashiranjanraj/gearbay/pkg/auth"
	"github.com/shashiranjanraj/gearbay/pkg/response"
)

// claimsKey is the unexported context key for the verified identity claims.
type claimsKey struct{}

// ClaimsFromCtx returns the identity claims stored by Authenticated.
func ClaimsFromCtx(ctx context.Context) (*auth.Claims, bool) {
	c, ok := ctx.Value(claimsKey{}).(*auth.Claims)
	return c, ok
}

// WithClaims stores verified claims in ctx. Exported for handler tests.
func WithClaims(ctx context.Context, c *auth.Claims) context.Context {
	return context.WithValue(ctx, claimsKey{}, c)
}

// Authenticated rejects requests without a valid identity token.
//
// A missing Authorization header is the unauthenticated case (401);
// a present but malformed, tampered, or expired token is forbidden (403).
// On success the decoded claims are available downstream via ClaimsFromCtx.
func Authenticated(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		header := r.Header.Get("Authorization")
		if header == "" {
			response.Unauthorized(w)
			return
		}

		token := strings.TrimPrefix(header, "Bearer ")
		claims, err := auth.Verify(token)
		if err != nil {
			response.Forbidden(w)
			return
		}

		next.ServeHTTP(w, r.WithContext(WithClaims(r.Context(), claims)))
	})
}
