package config

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/joho/godotenv"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"

	"github.com/devtoolkit/devtoolkit-go/internal/crypto"
)

const (
	envPrefix     = "TOOLKIT_"
	configPathEnv = "TOOLKIT_CONFIG"
)

// Load builds a Config by layering, low to high precedence:
//  1. defaults (New())
//  2. YAML file named by TOOLKIT_CONFIG, if set
//  3. TOOLKIT_* environment variables (a .env file is loaded into the environment first)
func Load(_ context.Context) (*Config, error) {
	// Missing .env is normal outside local development.
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("%w: .env: %w", ErrLoadConfig, err)
	}

	k := koanf.New(".")

	if path := os.Getenv(configPathEnv); path != "" {
		if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
			return nil, fmt.Errorf("%w: %s: %w", ErrLoadConfig, path, err)
		}
	}

	// TOOLKIT_LOG_LEVEL -> log_level
	envProvider := env.Provider(envPrefix, ".", func(s string) string {
		return strings.ToLower(strings.TrimPrefix(s, envPrefix))
	})
	if err := k.Load(envProvider, nil); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrLoadConfig, err)
	}

	cfg := *New()
	if err := k.UnmarshalWithConf("", &cfg, koanf.UnmarshalConf{Tag: "koanf"}); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrLoadConfig, err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate checks the values Load cannot default away.
func (c *Config) Validate() error {
	switch {
	case c.Port == "":
		return fmt.Errorf("%w: port must not be empty", ErrInvalidConfig)
	case c.MaxBodyBytes <= 0:
		return fmt.Errorf("%w: max_body_bytes must be positive", ErrInvalidConfig)
	case c.RandomSource != crypto.SourceCrypto && c.RandomSource != crypto.SourceMath:
		return fmt.Errorf("%w: random_source must be %q or %q, got %q",
			ErrInvalidConfig, crypto.SourceCrypto, crypto.SourceMath, c.RandomSource)
	}
	return nil
}
