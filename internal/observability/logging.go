// Package observability builds the process logger.
package observability

import (
	"fmt"

	"go.uber.org/zap"
)

// NewLogger builds a zap logger for the given level and format. Format
// "json" yields production output; anything else is console output for
// a human at a terminal.
func NewLogger(level, format string) (*zap.Logger, error) {
	atomic, err := zap.ParseAtomicLevel(level)
	if err != nil {
		return nil, fmt.Errorf("unknown log level %q: %w", level, err)
	}

	var cfg zap.Config
	if format == "json" {
		cfg = zap.NewProductionConfig()
	} else {
		cfg = zap.NewDevelopmentConfig()
	}
	cfg.Level = atomic

	logger, err := cfg.Build()
	if err != nil {
		return nil, fmt.Errorf("failed to build logger: %w", err)
	}
	return logger, nil
}
