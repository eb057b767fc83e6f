package jwt

import (
	"testing"
	"time"

	"healthhub/config"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestService(secret string, expiry time.Duration) *JWTService {
	return NewJWTService(config.JWTConfig{
		Secret:        secret,
		SessionExpiry: expiry,
	})
}

func TestGenerateAndValidateSessionToken(t *testing.T) {
	service := newTestService("test-secret", time.Hour)
	accountID := uuid.New()

	token, tokenID, err := service.GenerateSessionToken(accountID, "doctor", "doc@example.com")
	require.NoError(t, err)
	assert.NotEmpty(t, token)
	assert.NotEmpty(t, tokenID)

	claims, err := service.ValidateToken(token)
	require.NoError(t, err)
	assert.Equal(t, accountID, claims.AccountID)
	assert.Equal(t, "doctor", claims.Role)
	assert.Equal(t, "doc@example.com", claims.Email)
	assert.Equal(t, tokenID, claims.TokenID)
}

func TestValidateTokenWrongSecret(t *testing.T) {
	service := newTestService("secret-one", time.Hour)
	other := newTestService("secret-two", time.Hour)

	token, _, err := service.GenerateSessionToken(uuid.New(), "patient", "p@example.com")
	require.NoError(t, err)

	_, err = other.ValidateToken(token)
	assert.Error(t, err)
}

func TestValidateExpiredToken(t *testing.T) {
	service := newTestService("test-secret", -time.Minute)

	token, _, err := service.GenerateSessionToken(uuid.New(), "patient", "p@example.com")
	require.NoError(t, err)

	_, err = service.ValidateToken(token)
	assert.Error(t, err)
}

func TestValidateGarbageToken(t *testing.T) {
	service := newTestService("test-secret", time.Hour)

	_, err := service.ValidateToken("not-a-token")
	assert.Error(t, err)
}

func TestTokenIDsAreUnique(t *testing.T) {
	service := newTestService("test-secret", time.Hour)
	accountID := uuid.New()

	_, first, err := service.GenerateSessionToken(accountID, "staff", "s@example.com")
	require.NoError(t, err)
	_, second, err := service.GenerateSessionToken(accountID, "staff", "s@example.com")
	require.NoError(t, err)

	assert.NotEqual(t, first, second)
}
