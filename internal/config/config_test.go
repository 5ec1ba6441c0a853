package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

var configKeys = []string{
	"APP_NAME", "APP_ENV", "PORT", "LOG_LEVEL", "DATABASE_URL", "REDIS_URL",
	"SHUTDOWN_TIMEOUT_SECONDS", "SHUTDOWN_TIMEOUT", "IDEMPOTENCY_TTL_SECONDS", "IDEMPOTENCY_TTL",
	"JWT_SECRET", "SESSION_TTL", "ADMIN_USERNAME", "ADMIN_PASSWORD", "ADMIN_PASSWORD_HASH",
	"LOGIN_ATTEMPTS_PER_MINUTE",
}

func clearEnv(t *testing.T) {
	t.Helper()
	for _, k := range configKeys {
		t.Setenv(k, "")
	}
}

func TestFromEnvDevDefaults(t *testing.T) {
	clearEnv(t)

	cfg, err := FromEnv()
	require.NoError(t, err)
	require.True(t, cfg.IsDev())
	require.Equal(t, "RegDesk", cfg.AppName)
	require.Equal(t, ":8080", cfg.Address())
	require.Equal(t, "admin", cfg.AdminUsername)
	require.Equal(t, "admin123", cfg.AdminPassword)
	require.NotEmpty(t, cfg.JWTSecret)
	require.Equal(t, 8*time.Hour, cfg.SessionTTL)
	require.Equal(t, 5, cfg.LoginAttempts)
}

func TestFromEnvProductionRequiresSecrets(t *testing.T) {
	clearEnv(t)
	t.Setenv("APP_ENV", "production")
	t.Setenv("DATABASE_URL", "postgres://localhost/regdesk")
	t.Setenv("REDIS_URL", "redis://localhost:6379/0")

	_, err := FromEnv()
	require.ErrorContains(t, err, "JWT_SECRET")

	t.Setenv("JWT_SECRET", "s3cret")
	_, err = FromEnv()
	require.ErrorContains(t, err, "ADMIN_PASSWORD")

	t.Setenv("ADMIN_PASSWORD_HASH", "$2a$10$abcdefghijklmnopqrstuv")
	cfg, err := FromEnv()
	require.NoError(t, err)
	require.Empty(t, cfg.AdminPassword)
}

func TestFromEnvProductionRequiresStores(t *testing.T) {
	clearEnv(t)
	t.Setenv("APP_ENV", "production")

	_, err := FromEnv()
	require.ErrorContains(t, err, "DATABASE_URL")
}

func TestFromEnvDurations(t *testing.T) {
	clearEnv(t)
	t.Setenv("SHUTDOWN_TIMEOUT_SECONDS", "3")
	t.Setenv("IDEMPOTENCY_TTL", "90m")
	t.Setenv("SESSION_TTL", "15m")
	t.Setenv("PORT", ":9090")

	cfg, err := FromEnv()
	require.NoError(t, err)
	require.Equal(t, 3*time.Second, cfg.ShutdownPeriod)
	require.Equal(t, 90*time.Minute, cfg.IdempotencyTTL)
	require.Equal(t, 15*time.Minute, cfg.SessionTTL)
	require.Equal(t, ":9090", cfg.Address())
}

func TestFromEnvInvalidValues(t *testing.T) {
	clearEnv(t)
	t.Setenv("SHUTDOWN_TIMEOUT_SECONDS", "soon")
	_, err := FromEnv()
	require.Error(t, err)

	clearEnv(t)
	t.Setenv("SESSION_TTL", "-5m")
	_, err = FromEnv()
	require.Error(t, err)

	clearEnv(t)
	t.Setenv("LOGIN_ATTEMPTS_PER_MINUTE", "many")
	_, err = FromEnv()
	require.Error(t, err)
}
