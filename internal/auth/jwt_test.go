package auth

import (
	"testing"
	"time"

	"github.com/erick-chung/near-you/internal/domain"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestJWTManager_RoundTrip(t *testing.T) {
	manager := NewJWTManager("test-secret", 15*time.Minute)
	userID := uuid.New()

	token, err := manager.GenerateAccessToken(userID)
	require.NoError(t, err)

	parsed, err := manager.VerifyAccessToken(token)
	require.NoError(t, err)
	assert.Equal(t, userID, parsed)
}

func TestJWTManager_RejectsWrongSecret(t *testing.T) {
	token, err := NewJWTManager("secret-a", 15*time.Minute).GenerateAccessToken(uuid.New())
	require.NoError(t, err)

	_, err = NewJWTManager("secret-b", 15*time.Minute).VerifyAccessToken(token)
	assert.Equal(t, domain.KindUnauthorized, domain.KindOf(err))
}

func TestJWTManager_RejectsExpiredToken(t *testing.T) {
	manager := NewJWTManager("test-secret", -time.Minute)
	token, err := manager.GenerateAccessToken(uuid.New())
	require.NoError(t, err)

	_, err = manager.VerifyAccessToken(token)
	assert.Equal(t, domain.KindUnauthorized, domain.KindOf(err))
}

func TestJWTManager_RejectsGarbage(t *testing.T) {
	_, err := NewJWTManager("test-secret", time.Minute).VerifyAccessToken("not-a-token")
	assert.Equal(t, domain.KindUnauthorized, domain.KindOf(err))
}
