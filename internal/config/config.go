// Package config loads application configuration from environment
// variables.
package config

import (
	"fmt"
	"time"

	"github.com/kelseyhightower/envconfig"
)

// Config holds all application configuration loaded from environment variables.
type Config struct {
	// General
	Environment string `envconfig:"ENVIRONMENT" default:"development"`
	LogLevel    string `envconfig:"LOG_LEVEL" default:"info"`
	HTTPPort    int    `envconfig:"HTTP_PORT" default:"8080"`
	CORSOrigins string `envconfig:"CORS_ORIGINS"`

	// Redis
	RedisAddr            string        `envconfig:"REDIS_ADDR" default:"localhost:6379"`
	RedisPoolSize        int           `envconfig:"REDIS_POOL_SIZE" default:"10"`
	RedisMinIdleConns    int           `envconfig:"REDIS_MIN_IDLE_CONNS" default:"2"`
	RedisConnMaxIdleTime time.Duration `envconfig:"REDIS_CONN_MAX_IDLE_TIME" default:"5m"`
	RedisUseTLS          bool          `envconfig:"REDIS_USE_TLS" default:"false"`

	// Autosave
	AutoSaveInterval time.Duration `envconfig:"AUTOSAVE_INTERVAL" default:"1m"`

	// Shutdown
	ShutdownTimeout time.Duration `envconfig:"SHUTDOWN_TIMEOUT" default:"30s"`
}

// Load reads configuration from the environment.
func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate checks the loaded values for obvious misconfiguration.
func (c *Config) Validate() error {
	if c.HTTPPort <= 0 || c.HTTPPort > 65535 {
		return fmt.Errorf("invalid HTTP_PORT %d", c.HTTPPort)
	}
	if c.RedisAddr == "" {
		return fmt.Errorf("REDIS_ADDR is required")
	}
	if c.AutoSaveInterval < time.Second {
		return fmt.Errorf("AUTOSAVE_INTERVAL %s is below one second", c.AutoSaveInterval)
	}
	return nil
}

// IsProduction returns true when running with the production environment.
func (c *Config) IsProduction() bool {
	return c.Environment == "production"
}

// ListenAddr returns the address the HTTP server binds to.
func (c *Config) ListenAddr() string {
	return fmt.Sprintf(":%d", c.HTTPPort)
}
