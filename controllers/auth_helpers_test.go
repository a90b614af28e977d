// File: /controllers/auth_helpers_test.go
package controllers

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSignToken(t *testing.T) {
	secret := "test-secret"
	tokenString, err := signToken(secret, "user-123", "skipper@example.com")
	require.NoError(t, err)

	token, err := jwt.Parse(tokenString, func(t *jwt.Token) (interface{}, error) {
		return []byte(secret), nil
	})
	require.NoError(t, err)
	require.True(t, token.Valid)

	claims, ok := token.Claims.(jwt.MapClaims)
	require.True(t, ok)
	assert.Equal(t, "user-123", claims["user_id"])
	assert.Equal(t, "skipper@example.com", claims["email"])

	exp, ok := claims["exp"].(float64)
	require.True(t, ok)
	assert.Greater(t, int64(exp), time.Now().Add(6*24*time.Hour).Unix())
}

func TestSignTokenRejectsWrongSecret(t *testing.T) {
	tokenString, err := signToken("test-secret", "user-123", "skipper@example.com")
	require.NoError(t, err)

	_, err = jwt.Parse(tokenString, func(t *jwt.Token) (interface{}, error) {
		return []byte("other-secret"), nil
	})
	assert.Error(t, err)
}

func TestGenerateVerificationToken(t *testing.T) {
	token := generateVerificationToken()
	assert.Len(t, token, 48)
	assert.Regexp(t, "^[0-9a-f]+$", token)

	// Tokens are unique per call
	assert.NotEqual(t, token, generateVerificationToken())
}
