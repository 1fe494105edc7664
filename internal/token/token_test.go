package token

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSigner_RoundTrip(t *testing.T) {
	s := NewSigner("secret", "dotapost", time.Hour)

	raw, err := s.Issue("user-1", "session-1", time.Now())
	require.NoError(t, err)

	id, err := s.Parse(raw)
	require.NoError(t, err)
	assert.Equal(t, "user-1", id.UserID)
	assert.Equal(t, "session-1", id.SessionID)
}

func TestSigner_NoSession(t *testing.T) {
	s := NewSigner("secret", "dotapost", 0)

	raw, err := s.Issue("user-1", "", time.Now())
	require.NoError(t, err)

	id, err := s.Parse(raw)
	require.NoError(t, err)
	assert.Equal(t, "nosession", id.Session())
}

func TestSigner_Rejects(t *testing.T) {
	s := NewSigner("secret", "dotapost", time.Hour)

	expired, err := s.Issue("user-1", "s", time.Now().Add(-2*time.Hour))
	require.NoError(t, err)

	otherKey, err := NewSigner("other", "dotapost", time.Hour).Issue("user-1", "s", time.Now())
	require.NoError(t, err)

	otherIssuer, err := NewSigner("secret", "someone-else", time.Hour).Issue("user-1", "s", time.Now())
	require.NoError(t, err)

	noSubject, err := NewSigner("secret", "dotapost", time.Hour).Issue("", "s", time.Now())
	require.NoError(t, err)

	none, err := jwt.NewWithClaims(jwt.SigningMethodNone, jwt.MapClaims{"sub": "user-1", "iss": "dotapost"}).
		SignedString(jwt.UnsafeAllowNoneSignatureType)
	require.NoError(t, err)

	tests := map[string]string{
		"expired":      expired,
		"wrong key":    otherKey,
		"wrong issuer": otherIssuer,
		"no subject":   noSubject,
		"alg none":     none,
		"garbage":      "not-a-token",
	}

	for name, raw := range tests {
		t.Run(name, func(t *testing.T) {
			_, err := s.Parse(raw)
			assert.ErrorIs(t, err, ErrInvalid)
		})
	}
}
