package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func clearEnv(t *testing.T) {
	t.Helper()
	for _, k := range []string{
		"DB_DSN", "SERVER_PORT", "SESSION_SECRET", "LOG_FILE", "LOG_LEVEL",
		"LOGIN_REDIRECT_DELAY", "SECURE_COOKIES", "CSRF_ENABLED",
	} {
		t.Setenv(k, "")
	}
}

func TestLoadDefaults(t *testing.T) {
	clearEnv(t)
	t.Setenv("SESSION_SECRET", "s3cret")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "8080", cfg.ServerPort)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.Equal(t, 600*time.Millisecond, cfg.LoginRedirectDelay)
	assert.True(t, cfg.CSRFEnabled)
	assert.False(t, cfg.SecureCookies)
	assert.Empty(t, cfg.DBDSN)
}

func TestLoadRequiresSessionSecret(t *testing.T) {
	clearEnv(t)

	_, err := Load()
	assert.EqualError(t, err, "SESSION_SECRET is not set")
}

func TestLoadOverrides(t *testing.T) {
	clearEnv(t)
	t.Setenv("SESSION_SECRET", "s3cret")
	t.Setenv("SERVER_PORT", "9000")
	t.Setenv("LOGIN_REDIRECT_DELAY", "1s")
	t.Setenv("SECURE_COOKIES", "true")
	t.Setenv("CSRF_ENABLED", "false")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "9000", cfg.ServerPort)
	assert.Equal(t, time.Second, cfg.LoginRedirectDelay)
	assert.True(t, cfg.SecureCookies)
	assert.False(t, cfg.CSRFEnabled)
}

func TestLoadRejectsBadValues(t *testing.T) {
	clearEnv(t)
	t.Setenv("SESSION_SECRET", "s3cret")

	t.Setenv("LOGIN_REDIRECT_DELAY", "soon")
	_, err := Load()
	assert.Error(t, err)

	t.Setenv("LOGIN_REDIRECT_DELAY", "-1s")
	_, err = Load()
	assert.Error(t, err)

	t.Setenv("LOGIN_REDIRECT_DELAY", "")
	t.Setenv("CSRF_ENABLED", "maybe")
	_, err = Load()
	assert.ErrorContains(t, err, "CSRF_ENABLED")
}
