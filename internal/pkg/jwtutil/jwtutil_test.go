package jwtutil

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestGenerateAndParseToken(t *testing.T) {
	token, err := GenerateToken("test-secret", time.Hour, 42, "alice")
	assert.NoError(t, err)
	assert.NotEmpty(t, token)

	claims, err := ParseToken("test-secret", token)
	assert.NoError(t, err)
	assert.Equal(t, uint(42), claims.UserID)
	assert.Equal(t, "alice", claims.Username)
}

func TestParseTokenWrongSecret(t *testing.T) {
	token, err := GenerateToken("test-secret", time.Hour, 42, "alice")
	assert.NoError(t, err)

	claims, err := ParseToken("other-secret", token)
	assert.ErrorIs(t, err, ErrInvalidToken)
	assert.Nil(t, claims)
}

func TestParseTokenExpired(t *testing.T) {
	token, err := GenerateToken("test-secret", -time.Minute, 42, "alice")
	assert.NoError(t, err)

	claims, err := ParseToken("test-secret", token)
	assert.ErrorIs(t, err, ErrInvalidToken)
	assert.Nil(t, claims)
}

func TestParseTokenGarbage(t *testing.T) {
	claims, err := ParseToken("test-secret", "not-a-token")
	assert.ErrorIs(t, err, ErrInvalidToken)
	assert.Nil(t, claims)
}

func TestParseTokenZeroUserID(t *testing.T) {
	token, err := GenerateToken("test-secret", time.Hour, 0, "nobody")
	assert.NoError(t, err)

	claims, err := ParseToken("test-secret", token)
	assert.ErrorIs(t, err, ErrInvalidToken)
	assert.Nil(t, claims)
}
