package utils

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSessionToken_RoundTrip(t *testing.T) {
	secret := []byte("test-secret")
	token, claims, err := GenerateSessionToken(secret, "admin-1", "superadmin", time.Hour)
	require.NoError(t, err)
	assert.NotEmpty(t, claims.ID)

	got, err := VerifySessionToken(secret, token)
	require.NoError(t, err)
	assert.Equal(t, "admin-1", got.AdminID())
	assert.Equal(t, "superadmin", got.Role)
	assert.Equal(t, claims.ID, got.ID)
}

func TestSessionToken_Rejects(t *testing.T) {
	secret := []byte("test-secret")

	expired, _, err := GenerateSessionToken(secret, "admin-1", "admin", -time.Minute)
	require.NoError(t, err)
	_, err = VerifySessionToken(secret, expired)
	assert.Error(t, err)

	valid, _, err := GenerateSessionToken(secret, "admin-1", "admin", time.Hour)
	require.NoError(t, err)
	_, err = VerifySessionToken([]byte("other-secret"), valid)
	assert.Error(t, err)

	// a raw admin id is not a session
	_, err = VerifySessionToken(secret, "admin-1")
	assert.Error(t, err)

	_, _, err = GenerateSessionToken(nil, "admin-1", "admin", time.Hour)
	assert.Error(t, err)
}

func TestPassword(t *testing.T) {
	hash, err := HashPassword("admin123")
	require.NoError(t, err)
	assert.NotEqual(t, "admin123", hash)
	assert.True(t, CheckPassword(hash, "admin123"))
	assert.False(t, CheckPassword(hash, "admin124"))
}
