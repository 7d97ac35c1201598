package utils

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestJWTManager_RoundTrip(t *testing.T) {
	m := NewJWTManager("secret", "plus-control-api", time.Hour)
	id := uuid.New()

	token, err := m.GenerateAccessToken(id, "ana@pluscontrol.cl", "operator")
	require.NoError(t, err)

	claims, err := m.ValidateAccessToken(token)
	require.NoError(t, err)
	assert.Equal(t, id, claims.UserID)
	assert.Equal(t, "operator", claims.Role)
}

func TestJWTManager_RejectsForeignIssuerAndSecret(t *testing.T) {
	m := NewJWTManager("secret", "plus-control-api", time.Hour)
	other := NewJWTManager("secret", "someone-else", time.Hour)
	wrongKey := NewJWTManager("other-secret", "plus-control-api", time.Hour)

	token, err := other.GenerateAccessToken(uuid.New(), "x@y.cl", "admin")
	require.NoError(t, err)
	_, err = m.ValidateAccessToken(token)
	assert.Error(t, err)

	token, err = wrongKey.GenerateAccessToken(uuid.New(), "x@y.cl", "admin")
	require.NoError(t, err)
	_, err = m.ValidateAccessToken(token)
	assert.Error(t, err)
}

func TestJWTManager_Expired(t *testing.T) {
	m := NewJWTManager("secret", "plus-control-api", time.Minute)
	m.now = func() time.Time { return time.Now().Add(-time.Hour) }

	token, err := m.GenerateAccessToken(uuid.New(), "x@y.cl", "admin")
	require.NoError(t, err)

	_, err = m.ValidateAccessToken(token)
	assert.Error(t, err)
}

func TestPasswordHash(t *testing.T) {
	hash, err := HashPassword("s3cret")
	require.NoError(t, err)
	assert.True(t, CheckPasswordHash("s3cret", hash))
	assert.False(t, CheckPasswordHash("wrong", hash))
}
