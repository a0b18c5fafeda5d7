// Package logger holds the process-wide structured logger.
package logger

import (
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

const serviceName = "dev-connect"

// Log is the global SugaredLogger instance.
// It discards everything until Initialize or Set is called.
var Log *zap.SugaredLogger = zap.NewNop().Sugar()

// Initialize installs a JSON production logger at the given level.
func Initialize(level string) error {
	lvl, err := zapcore.ParseLevel(level)
	if err != nil {
		return err
	}

	cfg := zap.NewProductionConfig()
	cfg.Level = zap.NewAtomicLevelAt(lvl)
	cfg.EncoderConfig.TimeKey = "ts"
	cfg.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder

	l, err := cfg.Build()
	if err != nil {
		return err
	}
	Set(l)
	return nil
}

// Set replaces the global logger, tagging every entry with the service name.
func Set(l *zap.Logger) {
	Log = l.Sugar().With("service", serviceName)
}

// Sync flushes buffered log entries. Errors from syncing stderr are ignored.
func Sync() {
	_ = Log.Sync()
}
