package auth

import (
	"testing"
	"time"

	"habitrack/config"
	"habitrack/internal/domain/service"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestConfig(access, refresh string) *config.Config {
	cfg := &config.Config{
		Auth: &config.AuthConfig{AccessTTL: time.Minute, RefreshTTL: time.Hour},
	}
	cfg.SecretKey.Access = access
	cfg.SecretKey.Refresh = refresh

	return cfg
}

func TestJWTService_GenerateAndValidateTokens(t *testing.T) {
	jwtSvc, err := NewJWTService(newTestConfig("test_access_secret_key_very_long", "test_refresh_secret_key_very_long"))
	require.NoError(t, err)

	userID := uuid.New()

	accessToken, refreshToken, err := jwtSvc.GenerateTokens(userID)
	require.NoError(t, err)
	assert.NotEmpty(t, accessToken)
	assert.NotEmpty(t, refreshToken)
	assert.NotEqual(t, accessToken, refreshToken)

	accessClaims, err := jwtSvc.ValidateToken(accessToken)
	require.NoError(t, err)
	assert.Equal(t, userID, accessClaims.UserID)
	assert.Equal(t, service.TokenTypeAccess, accessClaims.Type)

	refreshClaims, err := jwtSvc.ValidateToken(refreshToken)
	require.NoError(t, err)
	assert.Equal(t, userID, refreshClaims.UserID)
	assert.Equal(t, service.TokenTypeRefresh, refreshClaims.Type)

	assert.Equal(t, time.Hour, jwtSvc.GetRefreshTokenDuration())
}

func TestJWTService_InvalidToken(t *testing.T) {
	jwtSvc, err := NewJWTService(newTestConfig("a", "b"))
	require.NoError(t, err)

	claims, err := jwtSvc.ValidateToken("clearly-not-a-jwt-token-format")
	assert.Error(t, err)
	assert.Nil(t, claims)
	assert.Contains(t, err.Error(), "failed to parse token structure")
}

func TestJWTService_RejectsForeignSignature(t *testing.T) {
	issuer, err := NewJWTService(newTestConfig("issuer-access", "issuer-refresh"))
	require.NoError(t, err)
	verifier, err := NewJWTService(newTestConfig("other-access", "other-refresh"))
	require.NoError(t, err)

	accessToken, _, err := issuer.GenerateTokens(uuid.New())
	require.NoError(t, err)

	_, err = verifier.ValidateToken(accessToken)
	assert.Error(t, err)
}

func TestJWTService_RejectsExpiredToken(t *testing.T) {
	tokenSvc, err := NewJWTService(newTestConfig("access", "refresh"))
	require.NoError(t, err)

	jwtSvc := tokenSvc.(*jwtService)
	jwtSvc.now = func() time.Time { return time.Now().Add(-2 * time.Minute) }

	accessToken, _, err := jwtSvc.GenerateTokens(uuid.New())
	require.NoError(t, err)

	jwtSvc.now = time.Now
	_, err = jwtSvc.ValidateToken(accessToken)
	assert.Error(t, err)
}

func TestJWTService_EmptySecrets(t *testing.T) {
	jwtSvc, err := NewJWTService(newTestConfig("", ""))
	assert.Error(t, err)
	assert.Nil(t, jwtSvc)
	assert.Contains(t, err.Error(), "jwt secrets must be provided")
}

func TestJWTService_HashToken(t *testing.T) {
	jwtSvc, err := NewJWTService(newTestConfig("a", "b"))
	require.NoError(t, err)

	first := jwtSvc.HashToken("token")
	assert.Len(t, first, 64)
	assert.Equal(t, first, jwtSvc.HashToken("token"))
	assert.NotEqual(t, first, jwtSvc.HashToken("other"))
}
