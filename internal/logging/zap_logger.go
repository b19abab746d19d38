package logging

import (
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/vvka-141/fman/pkg/fman"
)

// ZapLogger adapts a zap logger to fman.Logger. Verbose maps to the debug
// level and is dropped unless verbose is enabled.
type ZapLogger struct {
	sugar   *zap.SugaredLogger
	verbose bool
}

// NewZapLogger wraps an existing zap logger.
func NewZapLogger(logger *zap.Logger, verbose bool) *ZapLogger {
	return &ZapLogger{
		sugar:   logger.Sugar(),
		verbose: verbose,
	}
}

// NewFileLogger builds a JSON zap logger that appends to path.
func NewFileLogger(path string, verbose bool) (*ZapLogger, error) {
	level := zapcore.InfoLevel
	if verbose {
		level = zapcore.DebugLevel
	}

	config := zap.NewProductionConfig()
	config.Level = zap.NewAtomicLevelAt(level)
	config.OutputPaths = []string{path}
	config.ErrorOutputPaths = []string{path}
	config.DisableStacktrace = true
	config.Sampling = nil

	logger, err := config.Build(zap.AddCallerSkip(1))
	if err != nil {
		return nil, err
	}
	return NewZapLogger(logger, verbose), nil
}

// Verbose logs detailed diagnostic information if verbose mode is enabled.
func (l *ZapLogger) Verbose(format string, args ...interface{}) {
	if !l.verbose {
		return
	}
	l.sugar.Debugf(format, args...)
}

// Info logs informational messages about normal operations.
func (l *ZapLogger) Info(format string, args ...interface{}) {
	l.sugar.Infof(format, args...)
}

// Error logs error messages.
func (l *ZapLogger) Error(format string, args ...interface{}) {
	l.sugar.Errorf(format, args...)
}

// Sync flushes buffered entries.
func (l *ZapLogger) Sync() error {
	return l.sugar.Sync()
}

var _ fman.Logger = (*ZapLogger)(nil)
