package utils

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateAndParseJWT(t *testing.T) {
	token, err := GenerateJWT("pat@example.com", "secret", time.Hour)
	require.NoError(t, err)
	require.NotEmpty(t, token)

	email, err := ParseJWT(token, "secret")
	require.NoError(t, err)
	assert.Equal(t, "pat@example.com", email)
}

func TestParseJWTRejectsWrongSecret(t *testing.T) {
	token, err := GenerateJWT("pat@example.com", "secret", time.Hour)
	require.NoError(t, err)

	_, err = ParseJWT(token, "not-the-secret")
	assert.Error(t, err)
}

func TestParseJWTRejectsExpiredToken(t *testing.T) {
	token, err := GenerateJWT("pat@example.com", "secret", -time.Minute)
	require.NoError(t, err)

	_, err = ParseJWT(token, "secret")
	assert.Error(t, err)
}

func TestParseJWTRejectsGarbage(t *testing.T) {
	_, err := ParseJWT("not-a-token", "secret")
	assert.Error(t, err)
}
