// Package logger holds the process-wide zap logger.
package logger

import (
	"go.uber.org/zap"
)

// Log is a no-op until Initialize is called, so packages can log safely in tests.
var Log *zap.Logger = zap.NewNop()

// Initialize builds Log at the given level. The development environment gets
// the human-readable console encoder, everything else gets JSON.
func Initialize(level, env string) error {
	lvl, err := zap.ParseAtomicLevel(level)
	if err != nil {
		return err
	}

	cfg := zap.NewProductionConfig()
	if env == "development" {
		cfg = zap.NewDevelopmentConfig()
	}
	cfg.Level = lvl

	zl, err := cfg.Build()
	if err != nil {
		return err
	}

	Log = zl
	return nil
}
