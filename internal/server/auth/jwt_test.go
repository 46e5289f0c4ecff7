package auth

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/okarpov/datafreezer/internal/common"
)

var secret = []byte("test-secret")

func TestGenerateAndParse(t *testing.T) {
	token, expiresAt, err := GenerateToken("bob", secret, time.Hour)
	require.NoError(t, err)
	require.NotEmpty(t, token)

	assert.WithinDuration(t, time.Now().Add(time.Hour), expiresAt, 5*time.Second)

	username, err := GetUsernameFromToken(token, secret)
	require.NoError(t, err)
	assert.Equal(t, "bob", username)
}

func TestExpiredToken(t *testing.T) {
	token, _, err := GenerateToken("bob", secret, -time.Minute)
	require.NoError(t, err)

	_, err = GetUsernameFromToken(token, secret)
	assert.ErrorIs(t, err, common.ErrTokenExpired)
}

func TestWrongSecret(t *testing.T) {
	token, _, err := GenerateToken("bob", secret, time.Hour)
	require.NoError(t, err)

	_, err = GetUsernameFromToken(token, []byte("other"))
	assert.ErrorIs(t, err, common.ErrInvalidToken)
}

func TestGarbageToken(t *testing.T) {
	_, err := GetUsernameFromToken("not-a-token", secret)
	assert.ErrorIs(t, err, common.ErrInvalidToken)
}
