package rbac

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/shashiranjanraj/gearbay/pkg/auth"
	"github.com/shashiranjanraj/gearbay/pkg/middleware"
)

func adminRequest(email string) *http.Request {
	req := httptest.NewRequest(http.MethodGet, "/orders/all", nil)
	if email == "" {
		return req
	}
	ctx := middleware.WithClaims(req.Context(), &auth.Claims{Email: email, UID: "uid-1"})
	return req.WithContext(ctx)
}

func guard(lookup RoleLookup) http.Handler {
	return RequireAdmin(lookup)(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))
}

func TestRequireAdminPassesAdmins(t *testing.T) {
	h := guard(func(_ context.Context, email string) (string, error) {
		return "admin", nil
	})

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, adminRequest("boss@example.com"))
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestRequireAdminRejectsCustomers(t *testing.T) {
	h := guard(func(_ context.Context, email string) (string, error) {
		return "customer", nil
	})

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, adminRequest("pat@example.com"))
	assert.Equal(t, http.StatusForbidden, rec.Code)
	assert.JSONEq(t, `{"message":"forbidden"}`, rec.Body.String())
}

func TestRequireAdminRejectsUnknownUsers(t *testing.T) {
	h := guard(func(_ context.Context, email string) (string, error) {
		return "", errors.New("not found")
	})

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, adminRequest("ghost@example.com"))
	assert.Equal(t, http.StatusForbidden, rec.Code)
	assert.JSONEq(t, `{"message":"forbidden"}`, rec.Body.String())
}

func TestRequireAdminNeedsClaims(t *testing.T) {
	h := guard(func(_ context.Context, email string) (string, error) {
		return "admin", nil
	})

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, adminRequest(""))
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

// The guard consults the lookup on every request, so a role change is
// effective immediately.
func TestRequireAdminLookupIsLive(t *testing.T) {
	role := "admin"
	h := guard(func(_ context.Context, email string) (string, error) {
		return role, nil
	})

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, adminRequest("boss@example.com"))
	assert.Equal(t, http.StatusOK, rec.Code)

	role = "customer"
	rec = httptest.NewRecorder()
	h.ServeHTTP(rec, adminRequest("boss@example.com"))
	assert.Equal(t, http.StatusForbidden, rec.Code)
}
