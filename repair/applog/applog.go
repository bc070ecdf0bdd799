// Package applog wires up the structured logger cmd/repair uses to
// report when each command starts and finishes, without the core repair
// package itself taking a logging dependency. The construction phases
// inside Compress are not logged.
package applog

import (
	"fmt"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// New builds a SugaredLogger at the given level ("debug", "info", "warn",
// or "error"; empty defaults to "info").
func New(level string) (*zap.SugaredLogger, error) {
	if level == "" {
		level = "info"
	}
	var zl zapcore.Level
	if err := zl.UnmarshalText([]byte(level)); err != nil {
		return nil, fmt.Errorf("applog: invalid log level %q: %w", level, err)
	}

	cfg := zap.NewProductionConfig()
	cfg.Level = zap.NewAtomicLevelAt(zl)
	cfg.EncoderConfig.TimeKey = "ts"
	cfg.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder

	logger, err := cfg.Build()
	if err != nil {
		return nil, fmt.Errorf("applog: building logger: %w", err)
	}
	return logger.Sugar(), nil
}

// Noop returns a logger that discards everything, used by tests and by
// callers that don't want construction phases logged at all.
func Noop() *zap.SugaredLogger {
	return zap.NewNop().Sugar()
}
