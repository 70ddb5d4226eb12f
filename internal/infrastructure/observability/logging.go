// Package observability builds the game's zap logger from the logging
// section of the application settings.
package observability

import (
	"fmt"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/younwookim/catfight/internal/infrastructure/config"
)

// LoggerName prefixes every entry
const LoggerName = "catfight"

// NewLogger creates the process logger.
//
// cfg.Level is one of the levels AppConfig.Validate accepts (debug, info,
// warn, error). "console" gives colored development output with stack traces
// from warn up; "json" gives production output with sampling off, so bursts
// of per-hit debug entries are kept whole.
func NewLogger(cfg config.LoggingConfig) (*zap.Logger, error) {
	level, err := zapcore.ParseLevel(cfg.Level)
	if err != nil {
		return nil, fmt.Errorf("parsing log level %q: %w", cfg.Level, err)
	}

	var zapCfg zap.Config
	switch cfg.Format {
	case "console":
		zapCfg = zap.NewDevelopmentConfig()
		zapCfg.EncoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder
	case "json":
		zapCfg = zap.NewProductionConfig()
		zapCfg.Sampling = nil
	default:
		return nil, fmt.Errorf("unknown log format %q, want console or json", cfg.Format)
	}

	zapCfg.Level = zap.NewAtomicLevelAt(level)
	zapCfg.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder

	logger, err := zapCfg.Build()
	if err != nil {
		return nil, fmt.Errorf("building logger: %w", err)
	}
	return logger.Named(LoggerName), nil
}
