package jwt

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateAndValidateToken(t *testing.T) {
	m := NewManager("test-secret", time.Hour)

	token, expiresAt, err := m.GenerateToken("admin")
	require.NoError(t, err)
	assert.NotEmpty(t, token)
	assert.WithinDuration(t, time.Now().Add(time.Hour), expiresAt, time.Minute)

	claims, err := m.ValidateToken(token)
	require.NoError(t, err)
	assert.Equal(t, "admin", claims.Username)
	assert.Equal(t, "admin", claims.Role)
}

func TestValidateRejectsWrongSecret(t *testing.T) {
	token, _, err := NewManager("secret-a", time.Hour).GenerateToken("admin")
	require.NoError(t, err)

	_, err = NewManager("secret-b", time.Hour).ValidateToken(token)
	assert.Error(t, err)
}

func TestValidateRejectsExpiredToken(t *testing.T) {
	token, _, err := NewManager("test-secret", -time.Minute).GenerateToken("admin")
	require.NoError(t, err)

	_, err = NewManager("test-secret", -time.Minute).ValidateToken(token)
	assert.Error(t, err)
}

func TestValidateRejectsGarbage(t *testing.T) {
	_, err := NewManager("test-secret", time.Hour).ValidateToken("not-a-token")
	assert.Error(t, err)
}
