// Package config resolves process configuration from the environment once
// at startup.
package config

import (
	"errors"
	"fmt"
	"os"
	"time"
)

const (
	defaultPort     = "5000"
	defaultTokenTTL = 24 * time.Hour
)

var ErrSecretRequired = errors.New("JWT_SECRET must be set")

type Config struct {
	Port        string
	DatabaseURL string
	JWTSecret   string
	TokenTTL    time.Duration
	Environment string
}

// Load reads configuration from the process environment. The signing
// secret is mandatory: without it no token this process issues could ever
// be verified, so startup fails instead.
func Load() (*Config, error) {
	cfg := &Config{
		Port:        getEnv("PORT", defaultPort),
		DatabaseURL: os.Getenv("DATABASE_URL"),
		JWTSecret:   os.Getenv("JWT_SECRET"),
		TokenTTL:    defaultTokenTTL,
		Environment: getEnv("APP_ENV", "production"),
	}

	if cfg.JWTSecret == "" {
		return nil, ErrSecretRequired
	}

	if raw := os.Getenv("TOKEN_TTL"); raw != "" {
		ttl, err := time.ParseDuration(raw)
		if err != nil {
			return nil, fmt.Errorf("invalid TOKEN_TTL: %w", err)
		}
		cfg.TokenTTL = ttl
	}

	return cfg, nil
}

// Development reports whether error responses should include stack traces.
func (c *Config) Development() bool {
	return c.Environment == "development"
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
