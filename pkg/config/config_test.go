package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("KARTZY_JWT_SECRET", "test-secret")

	cfg, err := Load()
	require.NoError(t, err)

	require.Equal(t, "development", cfg.App.Env)
	require.Equal(t, "5000", cfg.App.Port)
	require.Equal(t, 12, cfg.Catalog.DefaultPageSize)
	require.Equal(t, 100, cfg.Catalog.MaxPageSize)
	require.Equal(t, 720*time.Hour, cfg.Cart.SnapshotTTL)
	require.Equal(t, "kartzy", cfg.JWT.Issuer)
	require.Equal(t, 1440, cfg.JWT.ExpirationMinutes)
	require.False(t, cfg.Redis.Enabled())
	require.Contains(t, cfg.CORS.AllowedOrigins, "http://localhost:3000")
}

func TestLoadRequiresJWTSecret(t *testing.T) {
	t.Setenv("KARTZY_JWT_SECRET", "")

	_, err := Load()
	require.Error(t, err)
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("KARTZY_JWT_SECRET", "test-secret")
	t.Setenv("KARTZY_APP_ENV", "production")
	t.Setenv("KARTZY_REDIS_ADDR", "localhost:6379")
	t.Setenv("KARTZY_CATALOG_DEFAULT_PAGE_SIZE", "24")
	t.Setenv("KARTZY_AUTH_RATE_LIMIT_LOGIN_WINDOW", "30s")

	cfg, err := Load()
	require.NoError(t, err)

	require.Equal(t, "production", cfg.App.Env)
	require.True(t, cfg.Redis.Enabled())
	require.Equal(t, 24, cfg.Catalog.DefaultPageSize)
	require.Equal(t, 30*time.Second, cfg.AuthRateLimit.LoginWindow)
}
