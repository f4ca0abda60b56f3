package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	DBDSN         string
	ServerPort    string
	SessionSecret string

	LogFile  string
	LogLevel string

	LoginRedirectDelay time.Duration
	SecureCookies      bool
	CSRFEnabled        bool
}

// Load reads .env (if any) and the process environment.
func Load() (*Config, error) {
	_ = godotenv.Load()

	cfg := &Config{
		DBDSN:              os.Getenv("DB_DSN"),
		ServerPort:         os.Getenv("SERVER_PORT"),
		SessionSecret:      os.Getenv("SESSION_SECRET"),
		LogFile:            os.Getenv("LOG_FILE"),
		LogLevel:           os.Getenv("LOG_LEVEL"),
		LoginRedirectDelay: 600 * time.Millisecond,
		CSRFEnabled:        true,
	}

	if cfg.ServerPort == "" {
		cfg.ServerPort = "8080"
	}
	if cfg.LogLevel == "" {
		cfg.LogLevel = "info"
	}
	if cfg.SessionSecret == "" {
		return nil, errors.New("SESSION_SECRET is not set")
	}

	if v := os.Getenv("LOGIN_REDIRECT_DELAY"); v != "" {
		d, err := time.ParseDuration(v)
		if err != nil {
			return nil, fmt.Errorf("LOGIN_REDIRECT_DELAY: %w", err)
		}
		if d < 0 {
			return nil, fmt.Errorf("LOGIN_REDIRECT_DELAY must not be negative, got %s", d)
		}
		cfg.LoginRedirectDelay = d
	}

	var err error
	if cfg.SecureCookies, err = envBool("SECURE_COOKIES", false); err != nil {
		return nil, err
	}
	if cfg.CSRFEnabled, err = envBool("CSRF_ENABLED", true); err != nil {
		return nil, err
	}

	return cfg, nil
}

func envBool(key string, def bool) (bool, error) {
	v := os.Getenv(key)
	if v == "" {
		return def, nil
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		return false, fmt.Errorf("%s: %w", key, err)
	}
	return b, nil
}
