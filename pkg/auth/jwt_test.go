package auth_test

import (
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/shashiranjanraj/gearbay/pkg/auth"
	"github.com/stretchr/testify/require"
)

func TestIssueVerifyRoundTrip(t *testing.T) {
	token, err := auth.Issue("jane@example.com", "u-42", time.Hour)
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := auth.Verify(token)
	require.NoError(t, err)
	require.Equal(t, "jane@example.com", claims.Email)
	require.Equal(t, "u-42", claims.UID)
}

func TestVerifyExpired(t *testing.T) {
	token, err := auth.Issue("jane@example.com", "u-42", -time.Minute)
	require.NoError(t, err)

	_, err = auth.Verify(token)
	require.Error(t, err)
	require.True(t, errors.Is(err, auth.ErrInvalidToken))
}

func TestVerifyTampered(t *testing.T) {
	token, err := auth.Issue("jane@example.com", "u-42", time.Hour)
	require.NoError(t, err)

	// Flip a character in the signature segment.
	parts := strings.Split(token, ".")
	require.Len(t, parts, 3)
	sig := []byte(parts[2])
	if sig[0] == 'A' {
		sig[0] = 'B'
	} else {
		sig[0] = 'A'
	}
	parts[2] = string(sig)

	_, err = auth.Verify(strings.Join(parts, "."))
	require.ErrorIs(t, err, auth.ErrInvalidToken)
}

func TestVerifyGarbage(t *testing.T) {
	_, err := auth.Verify("not-a-token")
	require.ErrorIs(t, err, auth.ErrInvalidToken)
}

func TestPerCallTTL(t *testing.T) {
	short, err := auth.Issue("a@b.c", "u1", time.Minute)
	require.NoError(t, err)
	long, err := auth.Issue("a@b.c", "u1", 24*time.Hour)
	require.NoError(t, err)

	cs, err := auth.Verify(short)
	require.NoError(t, err)
	cl, err := auth.Verify(long)
	require.NoError(t, err)

	require.True(t, cl.ExpiresAt.After(cs.ExpiresAt.Time))
}
