// Package auth issues and verifies the signed identity tokens that every
// protected route depends on. Tokens are stateless HS256 JWTs carrying the
// caller's email and uid; the signing secret is process-wide configuration.
package auth

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/shashiranjanraj/gearbay/config"
)

// Claims holds the typed identity payload embedded in every token.
type Claims struct {
	Email string `json:"email"`
	UID   string `json:"uid"`
	jwt.RegisteredClaims
}

// ErrInvalidToken is returned when a token fails signature, shape, or
// expiry checks.
var ErrInvalidToken = errors.New("auth: invalid token")

func secret() []byte {
	return []byte(config.TokenSecret())
}

// Issue creates a signed token for the given identity, valid for ttl.
// The TTL is per-call: the profile upsert flow issues day-long tokens
// while the admin grant flow issues short-lived ones.
func Issue(email, uid string, ttl time.Duration) (string, error) {
	now := time.Now()
	claims := Claims{
		Email: email,
		UID:   uid,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
			IssuedAt:  jwt.NewNumericDate(now),
		},
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(secret())
}

// Verify parses and validates a token string, returning its claims.
// Any failure — malformed token, bad signature, expiry — yields
// ErrInvalidToken wrapped around the parser's error.
func Verify(token string) (*Claims, error) {
	parsed, err := jwt.ParseWithClaims(token, &Claims{}, func(tok *jwt.Token) (interface{}, error) {
		if _, ok := tok.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}
		return secret(), nil
	})
	if err != nil {
		return nil, errors.Join(ErrInvalidToken, err)
	}

	claims, ok := parsed.Claims.(*Claims)
	if !ok || !parsed.Valid {
		return nil, ErrInvalidToken
	}

	return claims, nil
}
