package server

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/biocom/careers-api/internal/config"
)

func setupTestJWTService(_ *testing.T, expirationHours int) *JWTService {
	cfg := &config.JWTConfig{
		Secret:          "test-secret-key-for-jwt-signing-minimum-32-bytes",
		ExpirationHours: expirationHours,
	}
	return NewJWTService(cfg)
}

func TestJWTService_GenerateToken(t *testing.T) {
	service := setupTestJWTService(t, 24)

	token, err := service.GenerateToken("admin", AdminRole)
	require.NoError(t, err)
	require.NotEmpty(t, token)

	parts := strings.Split(token, ".")
	assert.Equal(t, 3, len(parts), "JWT should have 3 parts separated by dots")
}

func TestJWTService_GenerateToken_ContainsPrincipal(t *testing.T) {
	service := setupTestJWTService(t, 24)

	token, err := service.GenerateToken("admin", AdminRole)
	require.NoError(t, err)

	claims, err := service.ValidateToken(token)
	require.NoError(t, err)
	assert.Equal(t, "admin", claims.Username)
	assert.Equal(t, AdminRole, claims.Role)
	assert.NotEqual(t, claims.SessionID.String(), "00000000-0000-0000-0000-000000000000")
}

func TestJWTService_GenerateToken_FreshSessionIDs(t *testing.T) {
	service := setupTestJWTService(t, 24)

	token1, err := service.GenerateToken("admin", AdminRole)
	require.NoError(t, err)
	token2, err := service.GenerateToken("admin", AdminRole)
	require.NoError(t, err)

	claims1, err := service.ValidateToken(token1)
	require.NoError(t, err)
	claims2, err := service.ValidateToken(token2)
	require.NoError(t, err)
	assert.NotEqual(t, claims1.SessionID, claims2.SessionID)
}

func TestJWTService_ValidateToken_Rejections(t *testing.T) {
	service := setupTestJWTService(t, 24)

	t.Run("empty token", func(t *testing.T) {
		_, err := service.ValidateToken("")
		assert.Error(t, err)
	})

	t.Run("garbage token", func(t *testing.T) {
		_, err := service.ValidateToken("not.a.jwt")
		assert.Error(t, err)
	})

	t.Run("token signed with a different secret", func(t *testing.T) {
		other := NewJWTService(&config.JWTConfig{
			Secret:          "a-completely-different-secret-also-32-bytes!",
			ExpirationHours: 24,
		})
		token, err := other.GenerateToken("admin", AdminRole)
		require.NoError(t, err)

		_, err = service.ValidateToken(token)
		assert.Error(t, err)
	})

	t.Run("tampered token", func(t *testing.T) {
		token, err := service.GenerateToken("admin", AdminRole)
		require.NoError(t, err)

		parts := strings.Split(token, ".")
		tampered := parts[0] + "." + parts[1] + "." + "AAAA" + parts[2][4:]
		_, err = service.ValidateToken(tampered)
		assert.Error(t, err)
	})
}

func TestJWTService_AsTokenValidator(t *testing.T) {
	service := setupTestJWTService(t, 24)
	validator := service.AsTokenValidator()

	token, err := service.GenerateToken("admin", AdminRole)
	require.NoError(t, err)

	session, err := validator.ValidateToken(token)
	require.NoError(t, err)
	assert.Equal(t, "admin", session.GetUsername())
	assert.Equal(t, AdminRole, session.GetRole())
}
