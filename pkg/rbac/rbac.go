// Package rbac provides the role check applied in front of admin-only routes.
package rbac

import (
	"context"
	"net/http"

	"github.com/shashiranjanraj/gearbay/pkg/middleware"
	"github.com/shashiranjanraj/gearbay/pkg/response"
)

// RoleLookup resolves the current role for an email. It is called on EVERY
// admin-gated request — roles are never cached, so a revocation takes
// effect on the next call.
type RoleLookup func(ctx context.Context, email string) (string, error)

// RequireAdmin returns middleware that allows only callers whose live role
// is "admin". It must run after middleware.Authenticated, which puts the
// verified claims in the request context.
func RequireAdmin(lookup RoleLookup) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			claims, ok := middleware.ClaimsFromCtx(r.Context())
			if !ok {
				response.Unauthorized(w)
				return
			}

			role, err := lookup(r.Context(), claims.Email)
			if err != nil || role != "admin" {
				response.ForbiddenRole(w)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}
