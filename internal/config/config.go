// Package config loads service configuration from defaults, an optional
// YAML file and TOOLKIT_* environment variables.
package config

import (
	"time"

	"github.com/devtoolkit/devtoolkit-go/internal/crypto"
)

type Config struct {
	// Port is the HTTP listen port.
	Port string `koanf:"port"`

	// Env is "development" or "production"; it selects the log encoder.
	Env string `koanf:"env"`

	// LogLevel controls verbosity: debug, info, warn, error.
	LogLevel string `koanf:"log_level"`

	// RandomSource selects the generator byte stream: "crypto" or "math".
	RandomSource string `koanf:"random_source"`

	// MaxBodyBytes caps request bodies.
	MaxBodyBytes int64 `koanf:"max_body_bytes"`

	ReadTimeout     time.Duration `koanf:"read_timeout"`
	WriteTimeout    time.Duration `koanf:"write_timeout"`
	IdleTimeout     time.Duration `koanf:"idle_timeout"`
	ShutdownTimeout time.Duration `koanf:"shutdown_timeout"`
}

// New returns a Config populated with defaults.
func New() *Config {
	return &Config{
		Port:            "8080",
		Env:             "development",
		LogLevel:        "info",
		RandomSource:    crypto.SourceCrypto,
		MaxBodyBytes:    1 << 20, // 1MB
		ReadTimeout:     10 * time.Second,
		WriteTimeout:    10 * time.Second,
		IdleTimeout:     60 * time.Second,
		ShutdownTimeout: 10 * time.Second,
	}
}

// IsProduction reports whether the service runs in production mode.
func (c *Config) IsProduction() bool {
	return c.Env == "production"
}
