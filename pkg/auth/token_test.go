package auth

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func signedToken(t *testing.T, claims jwt.MapClaims) string {
	t.Helper()
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("test-secret"))
	require.NoError(t, err)
	return token
}

func TestTokenExpired(t *testing.T) {
	now := time.Now()

	t.Run("Should accept a token expiring in the future", func(t *testing.T) {
		token := signedToken(t, jwt.MapClaims{"exp": now.Add(time.Hour).Unix()})
		assert.False(t, TokenExpired(token, now))
	})

	t.Run("Should reject a token expiring in the past", func(t *testing.T) {
		token := signedToken(t, jwt.MapClaims{"exp": now.Add(-time.Hour).Unix()})
		assert.True(t, TokenExpired(token, now))
	})

	t.Run("Should treat garbage as expired", func(t *testing.T) {
		assert.True(t, TokenExpired("not-a-jwt", now))
		assert.True(t, TokenExpired("", now))
	})

	t.Run("Should leave tokens without exp to the backend", func(t *testing.T) {
		token := signedToken(t, jwt.MapClaims{"sub": "user1"})
		assert.False(t, TokenExpired(token, now))
	})
}

func TestTokenExpiry(t *testing.T) {
	t.Run("Should read the exp claim without verifying the signature", func(t *testing.T) {
		exp := time.Now().Add(30 * time.Minute).Truncate(time.Second)
		token := signedToken(t, jwt.MapClaims{"exp": exp.Unix()})

		got, err := TokenExpiry(token)
		require.NoError(t, err)
		assert.True(t, got.Equal(exp))
	})
}
