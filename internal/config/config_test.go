package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewServerConfig(t *testing.T) {
	t.Run("defaults", func(t *testing.T) {
		cfg, err := NewServerConfig()
		require.NoError(t, err)
		assert.Equal(t, 8080, cfg.Port)
		assert.Empty(t, cfg.DatabaseURL)
		assert.Empty(t, cfg.SQLitePath)
		assert.Zero(t, cfg.LatencyUnit)
	})

	t.Run("reads the environment", func(t *testing.T) {
		t.Setenv("PORT", "9090")
		t.Setenv("DATABASE_URL", "postgres://localhost/careers")
		t.Setenv("CAREERS_DB_PATH", "/var/lib/careers.db")
		t.Setenv("SEED_FILE", "seed/jobs.json")
		t.Setenv("SIMULATED_LATENCY_MS", "100")

		cfg, err := NewServerConfig()
		require.NoError(t, err)
		assert.Equal(t, 9090, cfg.Port)
		assert.Equal(t, "postgres://localhost/careers", cfg.DatabaseURL)
		assert.Equal(t, "/var/lib/careers.db", cfg.SQLitePath)
		assert.Equal(t, "seed/jobs.json", cfg.SeedFile)
		assert.Equal(t, 100*time.Millisecond, cfg.LatencyUnit)
	})

	t.Run("rejects a non-numeric port", func(t *testing.T) {
		t.Setenv("PORT", "eighty")
		_, err := NewServerConfig()
		assert.Error(t, err)
	})

	t.Run("rejects an out-of-range port", func(t *testing.T) {
		t.Setenv("PORT", "70000")
		_, err := NewServerConfig()
		assert.Error(t, err)
	})

	t.Run("rejects negative latency", func(t *testing.T) {
		t.Setenv("SIMULATED_LATENCY_MS", "-50")
		_, err := NewServerConfig()
		assert.Error(t, err)
	})
}

func TestNewJWTConfig(t *testing.T) {
	t.Run("requires JWT_SECRET", func(t *testing.T) {
		t.Setenv("JWT_SECRET", "")
		_, err := NewJWTConfig()
		assert.Error(t, err)
	})

	t.Run("defaults expiration to 24 hours", func(t *testing.T) {
		t.Setenv("JWT_SECRET", "test-secret-key-for-jwt-signing-32-bytes!")
		cfg, err := NewJWTConfig()
		require.NoError(t, err)
		assert.Equal(t, 24, cfg.ExpirationHours)
	})

	t.Run("rejects zero expiration", func(t *testing.T) {
		t.Setenv("JWT_SECRET", "test-secret-key-for-jwt-signing-32-bytes!")
		t.Setenv("JWT_EXPIRATION_HOURS", "0")
		_, err := NewJWTConfig()
		assert.Error(t, err)
	})
}

func TestPasswordConfig(t *testing.T) {
	t.Run("rejects out-of-range bcrypt cost", func(t *testing.T) {
		t.Setenv("BCRYPT_COST", "4")
		_, err := NewPasswordConfig()
		assert.Error(t, err)
	})

	t.Run("hash verifies and a wrong password does not", func(t *testing.T) {
		c := &PasswordConfig{BcryptCost: 10}
		hash, err := c.HashPassword("pw-one")
		require.NoError(t, err)
		assert.True(t, c.VerifyPassword("pw-one", hash))
		assert.False(t, c.VerifyPassword("pw-two", hash))
	})
}

func TestNewAdminConfig(t *testing.T) {
	passwords := &PasswordConfig{BcryptCost: 10}

	t.Run("requires some credential", func(t *testing.T) {
		t.Setenv("ADMIN_PASSWORD_HASH", "")
		t.Setenv("ADMIN_PASSWORD", "")
		_, err := NewAdminConfig(passwords)
		assert.Error(t, err)
	})

	t.Run("dev password is hashed at startup", func(t *testing.T) {
		t.Setenv("ADMIN_PASSWORD_HASH", "")
		t.Setenv("ADMIN_PASSWORD", "dev-only")
		cfg, err := NewAdminConfig(passwords)
		require.NoError(t, err)
		assert.Equal(t, "admin", cfg.Username)
		assert.NotEqual(t, "dev-only", cfg.PasswordHash)
		assert.True(t, passwords.VerifyPassword("dev-only", cfg.PasswordHash))
	})

	t.Run("explicit hash wins over plain password", func(t *testing.T) {
		hash, err := passwords.HashPassword("real")
		require.NoError(t, err)
		t.Setenv("ADMIN_PASSWORD_HASH", hash)
		t.Setenv("ADMIN_PASSWORD", "ignored")
		cfg, err := NewAdminConfig(passwords)
		require.NoError(t, err)
		assert.Equal(t, hash, cfg.PasswordHash)
	})

	t.Run("username override", func(t *testing.T) {
		t.Setenv("ADMIN_USERNAME", "operator")
		t.Setenv("ADMIN_PASSWORD", "dev-only")
		cfg, err := NewAdminConfig(passwords)
		require.NoError(t, err)
		assert.Equal(t, "operator", cfg.Username)
	})
}
