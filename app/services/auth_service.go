package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/shashiranjanraj/gearbay/app/models"
	"github.com/shashiranjanraj/gearbay/pkg/auth"
	"github.com/shashiranjanraj/gearbay/pkg/store"
)

// Token lifetimes differ per flow: the profile upsert hands out a
// day-long token, the admin grant a short-lived one.
const (
	profileTokenTTL = 24 * time.Hour
	adminTokenTTL   = time.Hour
)

// UserStore is the slice of the user repository the auth service needs.
type UserStore interface {
	FindByEmail(ctx context.Context, email string) (models.User, error)
	Upsert(ctx context.Context, user models.User) (models.User, error)
	SetRole(ctx context.Context, email, role string) error
	Delete(ctx context.Context, email string) error
}

// AuthService owns identity issuance and the role reads behind the
// admin guard.
type AuthService struct {
	users UserStore
}

func NewAuthService(users UserStore) *AuthService {
	return &AuthService{users: users}
}

// UpsertProfile creates or refreshes the user record keyed by email and
// issues an identity token for it.
func (s *AuthService) UpsertProfile(ctx context.Context, user models.User) (models.User, string, error) {
	stored, err := s.users.Upsert(ctx, user)
	if err != nil {
		return models.User{}, "", fmt.Errorf("auth: upsert profile: %w", err)
	}

	token, err := auth.Issue(stored.Email, stored.UID, profileTokenTTL)
	if err != nil {
		return models.User{}, "", fmt.Errorf("auth: issue token: %w", err)
	}
	return stored, token, nil
}

// GrantAdmin elevates the target user to the admin role and issues a
// short-lived token for them. The caller must already have passed the
// admin guard.
func (s *AuthService) GrantAdmin(ctx context.Context, email string) (string, error) {
	target, err := s.users.FindByEmail(ctx, email)
	if err != nil {
		return "", fmt.Errorf("auth: grant admin: %w", err)
	}

	if err := s.users.SetRole(ctx, email, models.RoleAdmin); err != nil {
		return "", fmt.Errorf("auth: grant admin: %w", err)
	}

	token, err := auth.Issue(target.Email, target.UID, adminTokenTTL)
	if err != nil {
		return "", fmt.Errorf("auth: issue token: %w", err)
	}
	return token, nil
}

// RevokeAdmin demotes the target user back to customer.
func (s *AuthService) RevokeAdmin(ctx context.Context, email string) error {
	if err := s.users.SetRole(ctx, email, models.RoleCustomer); err != nil {
		return fmt.Errorf("auth: revoke admin: %w", err)
	}
	return nil
}

// Role reads the current role for an email directly from the store.
// Called by the admin guard on every request — never cached, so a
// revocation is effective immediately.
func (s *AuthService) Role(ctx context.Context, email string) (string, error) {
	user, err := s.users.FindByEmail(ctx, email)
	if err != nil {
		return "", err
	}
	return user.Role, nil
}

// IsAdmin reports whether the email currently holds the admin role.
// An unknown user is simply not an admin.
func (s *AuthService) IsAdmin(ctx context.Context, email string) (bool, error) {
	role, err := s.Role(ctx, email)
	if errors.Is(err, store.ErrNotFound) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return role == models.RoleAdmin, nil
}

// RemoveUser hard-deletes a user record. Admin-initiated only.
func (s *AuthService) RemoveUser(ctx context.Context, email string) error {
	return s.users.Delete(ctx, email)
}
