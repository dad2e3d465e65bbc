// Package config loads runtime configuration from the environment.
package config

import (
	"time"

	"github.com/caarlos0/env/v11"

	"github.com/critfall/dmscreen/internal/errors"
)

// Config holds everything the CLI needs to reach the DM screen API and
// the local Redis used for token persistence.
type Config struct {
	// APIURL is the base URL of the DM screen REST API
	APIURL string `env:"DMSCREEN_API_URL" envDefault:"http://localhost:3000"`

	// RedisAddr is the Redis endpoint for persisted session tokens
	RedisAddr string `env:"DMSCREEN_REDIS_ADDR" envDefault:"localhost:6379"`

	// Profile names the persisted-token slot
	Profile string `env:"DMSCREEN_PROFILE" envDefault:"default"`

	// HTTPTimeout bounds each request to the API
	HTTPTimeout time.Duration `env:"DMSCREEN_HTTP_TIMEOUT" envDefault:"10s"`

	// TokenTTL bounds how long a persisted token is reused before a fresh
	// login is required
	TokenTTL time.Duration `env:"DMSCREEN_TOKEN_TTL" envDefault:"24h"`
}

// Load reads the configuration from the environment
func Load() (*Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return nil, errors.Wrap(err, "failed to parse environment")
	}

	vb := errors.NewValidationBuilder()
	errors.ValidateRequired("DMSCREEN_API_URL", cfg.APIURL, vb)
	errors.ValidateRequired("DMSCREEN_REDIS_ADDR", cfg.RedisAddr, vb)
	if err := vb.Build(); err != nil {
		return nil, err
	}

	return &cfg, nil
}
