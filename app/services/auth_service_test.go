package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/shashiranjanraj/gearbay/app/models"
	"github.com/shashiranjanraj/gearbay/pkg/auth"
)

func TestUpsertProfileIssuesToken(t *testing.T) {
	users := newFakeUserStore()
	svc := NewAuthService(users)

	user, token, err := svc.UpsertProfile(context.Background(), models.User{
		Email: "pat@example.com",
		Name:  "Pat",
	})
	require.NoError(t, err)
	assert.Equal(t, models.RoleCustomer, user.Role)
	assert.NotEmpty(t, user.UID)

	claims, err := auth.Verify(token)
	require.NoError(t, err)
	assert.Equal(t, "pat@example.com", claims.Email)
	assert.Equal(t, user.UID, claims.UID)
}

func TestUpsertProfileKeepsRoleOnRefresh(t *testing.T) {
	users := newFakeUserStore()
	svc := NewAuthService(users)

	_, _, err := svc.UpsertProfile(context.Background(), models.User{Email: "pat@example.com"})
	require.NoError(t, err)
	require.NoError(t, users.SetRole(context.Background(), "pat@example.com", models.RoleAdmin))

	user, _, err := svc.UpsertProfile(context.Background(), models.User{
		Email: "pat@example.com",
		Name:  "Pat Updated",
	})
	require.NoError(t, err)
	assert.Equal(t, models.RoleAdmin, user.Role)
	assert.Equal(t, "Pat Updated", user.Name)
}

func TestUpsertProfileKeepsUIDOnRefresh(t *testing.T) {
	users := newFakeUserStore()
	svc := NewAuthService(users)

	first, _, err := svc.UpsertProfile(context.Background(), models.User{Email: "pat@example.com"})
	require.NoError(t, err)

	// The identity key anchors order ownership: a refreshed profile
	// must never mint a new one.
	second, _, err := svc.UpsertProfile(context.Background(), models.User{Email: "pat@example.com"})
	require.NoError(t, err)
	assert.Equal(t, first.UID, second.UID)
}

func TestGrantAdminElevatesAndIssuesToken(t *testing.T) {
	users := newFakeUserStore()
	svc := NewAuthService(users)

	_, _, err := svc.UpsertProfile(context.Background(), models.User{Email: "pat@example.com"})
	require.NoError(t, err)

	token, err := svc.GrantAdmin(context.Background(), "pat@example.com")
	require.NoError(t, err)
	assert.NotEmpty(t, token)

	isAdmin, err := svc.IsAdmin(context.Background(), "pat@example.com")
	require.NoError(t, err)
	assert.True(t, isAdmin)
}

func TestGrantAdminUnknownUser(t *testing.T) {
	svc := NewAuthService(newFakeUserStore())

	_, err := svc.GrantAdmin(context.Background(), "ghost@example.com")
	assert.Error(t, err)
}

func TestRoleReadsAreLive(t *testing.T) {
	users := newFakeUserStore()
	svc := NewAuthService(users)

	_, _, err := svc.UpsertProfile(context.Background(), models.User{Email: "pat@example.com"})
	require.NoError(t, err)
	_, err = svc.GrantAdmin(context.Background(), "pat@example.com")
	require.NoError(t, err)

	// Revocation is visible on the very next check.
	require.NoError(t, svc.RevokeAdmin(context.Background(), "pat@example.com"))
	isAdmin, err := svc.IsAdmin(context.Background(), "pat@example.com")
	require.NoError(t, err)
	assert.False(t, isAdmin)
}

func TestIsAdminUnknownUser(t *testing.T) {
	svc := NewAuthService(newFakeUserStore())

	isAdmin, err := svc.IsAdmin(context.Background(), "ghost@example.com")
	require.NoError(t, err)
	assert.False(t, isAdmin)
}
