package auth

import (
	"strings"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apperrors "taskconnect/internal/errors"
)

func TestTokenIssuer_RoundTrip(t *testing.T) {
	issuer := NewTokenIssuer("test-secret", 30*time.Minute)

	token, err := issuer.Issue("alice")
	require.NoError(t, err)
	require.NotEmpty(t, token)

	subject, err := issuer.Validate(token)
	require.NoError(t, err)
	assert.Equal(t, "alice", subject)
}

func TestTokenIssuer_TTL(t *testing.T) {
	issuer := NewTokenIssuer("test-secret", 15*time.Minute)
	assert.Equal(t, 15*time.Minute, issuer.TTL())
}

func TestTokenIssuer_BearerPrefix(t *testing.T) {
	issuer := NewTokenIssuer("test-secret", 30*time.Minute)

	token, err := issuer.Issue("alice")
	require.NoError(t, err)

	subject, err := issuer.Validate("Bearer " + token)
	require.NoError(t, err)
	assert.Equal(t, "alice", subject)
}

func TestTokenIssuer_Expired(t *testing.T) {
	issuer := NewTokenIssuer("test-secret", -time.Minute)

	token, err := issuer.Issue("alice")
	require.NoError(t, err)

	_, err = issuer.Validate(token)
	assert.ErrorIs(t, err, apperrors.ErrInvalidToken)
}

func TestTokenIssuer_Tampered(t *testing.T) {
	issuer := NewTokenIssuer("test-secret", 30*time.Minute)

	token, err := issuer.Issue("alice")
	require.NoError(t, err)

	// Flip one byte of the signed payload; any change must break validation.
	parts := strings.Split(token, ".")
	require.Len(t, parts, 3)
	payload := []byte(parts[1])
	for i := range payload {
		flipped := byte('A')
		if payload[i] == 'A' {
			flipped = 'B'
		}
		mutated := append([]byte{}, payload...)
		mutated[i] = flipped
		tampered := parts[0] + "." + string(mutated) + "." + parts[2]

		subject, err := issuer.Validate(tampered)
		assert.ErrorIs(t, err, apperrors.ErrInvalidToken, "byte %d", i)
		assert.Empty(t, subject)
	}
}

func TestTokenIssuer_WrongKey(t *testing.T) {
	issuer := NewTokenIssuer("test-secret", 30*time.Minute)
	other := NewTokenIssuer("other-secret", 30*time.Minute)

	token, err := other.Issue("alice")
	require.NoError(t, err)

	_, err = issuer.Validate(token)
	assert.ErrorIs(t, err, apperrors.ErrInvalidToken)
}

func TestTokenIssuer_MissingSubject(t *testing.T) {
	issuer := NewTokenIssuer("test-secret", 30*time.Minute)

	// Correctly signed token without a sub claim.
	raw := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.RegisteredClaims{
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
	})
	token, err := raw.SignedString([]byte("test-secret"))
	require.NoError(t, err)

	_, err = issuer.Validate(token)
	assert.ErrorIs(t, err, apperrors.ErrInvalidToken)
}

func TestTokenIssuer_RejectsUnsignedAlg(t *testing.T) {
	issuer := NewTokenIssuer("test-secret", 30*time.Minute)

	raw := jwt.NewWithClaims(jwt.SigningMethodNone, jwt.RegisteredClaims{
		Subject:   "alice",
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
	})
	token, err := raw.SignedString(jwt.UnsafeAllowNoneSignatureType)
	require.NoError(t, err)

	_, err = issuer.Validate(token)
	assert.ErrorIs(t, err, apperrors.ErrInvalidToken)
}

func TestTokenIssuer_ExpiredMatchesTamperedErrorSurface(t *testing.T) {
	valid := NewTokenIssuer("test-secret", 30*time.Minute)
	expired := NewTokenIssuer("test-secret", -time.Minute)

	expiredToken, err := expired.Issue("alice")
	require.NoError(t, err)
	_, expiredErr := valid.Validate(expiredToken)

	goodToken, err := valid.Issue("alice")
	require.NoError(t, err)
	corrupted := goodToken[:len(goodToken)-2] + "xx"
	_, corruptErr := valid.Validate(corrupted)

	// Callers must not be able to tell why a token failed.
	assert.Equal(t, expiredErr, corruptErr)
}

func TestTokenIssuer_Garbage(t *testing.T) {
	issuer := NewTokenIssuer("test-secret", 30*time.Minute)

	for _, raw := range []string{"", "not-a-token", "a.b.c", "Bearer "} {
		_, err := issuer.Validate(raw)
		assert.ErrorIs(t, err, apperrors.ErrInvalidToken, "input %q", raw)
	}
}
