package auth

import (
	"testing"
	"time"

	"bazaar/config"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func createTestJWTService(t *testing.T, secret string) *jwtService {
	t.Helper()

	cfg := &config.Config{}
	cfg.SecretKey.Access = secret

	svc, err := NewJWTService(cfg)
	require.NoError(t, err)

	return svc.(*jwtService)
}

func TestJWTService_RoundTrip(t *testing.T) {
	svc := createTestJWTService(t, "test-secret")
	userID := uuid.New()

	token, err := svc.GenerateToken(userID, "seller")
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := svc.ValidateToken(token)

	require.NoError(t, err)
	assert.Equal(t, userID, claims.UserID)
	assert.Equal(t, "seller", claims.UserType)
}

func TestJWTService_RejectsWrongSecret(t *testing.T) {
	issuer := createTestJWTService(t, "issuer-secret")
	verifier := createTestJWTService(t, "other-secret")

	token, err := issuer.GenerateToken(uuid.New(), "buyer")
	require.NoError(t, err)

	_, err = verifier.ValidateToken(token)

	assert.Error(t, err)
}

func TestJWTService_RejectsGarbage(t *testing.T) {
	svc := createTestJWTService(t, "test-secret")

	_, err := svc.ValidateToken("not.a.token")

	assert.Error(t, err)
}

func TestJWTService_RejectsExpiredToken(t *testing.T) {
	svc := createTestJWTService(t, "test-secret")
	svc.accessTTL = -time.Minute

	token, err := svc.GenerateToken(uuid.New(), "buyer")
	require.NoError(t, err)

	_, err = svc.ValidateToken(token)

	assert.Error(t, err)
}

func TestNewJWTService_RequiresSecret(t *testing.T) {
	_, err := NewJWTService(&config.Config{})

	assert.Error(t, err)
}
