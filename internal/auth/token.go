package auth

import (
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v4"

	apperrors "taskconnect/internal/errors"
)

// TokenIssuer issues and validates the signed bearer tokens that carry a
// caller's identity. The signing key and TTL are fixed at construction;
// tokens are stateless and cannot be revoked before expiry.
type TokenIssuer struct {
	secret []byte
	ttl    time.Duration
}

// Claims are the JWT claims carried by an access token.
type Claims struct {
	jwt.RegisteredClaims
}

// NewTokenIssuer creates a token issuer with the given secret and TTL.
func NewTokenIssuer(secret string, ttl time.Duration) *TokenIssuer {
	return &TokenIssuer{
		secret: []byte(secret),
		ttl:    ttl,
	}
}

// TTL returns the configured token lifetime.
func (t *TokenIssuer) TTL() time.Duration {
	return t.ttl
}

// Issue signs a new token whose subject is the given username.
func (t *TokenIssuer) Issue(username string) (string, error) {
	now := time.Now()
	claims := &Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   username,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(t.ttl)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(t.secret)
}

// Validate verifies raw and returns the embedded subject. An optional
// "Bearer " prefix is stripped first. Signature mismatch, malformed
// payload, missing subject, and expiry all produce the same error so the
// caller cannot learn which part of the token failed.
func (t *TokenIssuer) Validate(raw string) (string, error) {
	raw = strings.TrimPrefix(raw, "Bearer ")

	token, err := jwt.ParseWithClaims(raw, &Claims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, apperrors.ErrInvalidToken
		}
		return t.secret, nil
	})
	if err != nil {
		return "", apperrors.ErrInvalidToken
	}

	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid || claims.Subject == "" {
		return "", apperrors.ErrInvalidToken
	}

	return claims.Subject, nil
}
