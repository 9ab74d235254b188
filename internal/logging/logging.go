// Package logging configures the launcher's file logger. The TUI owns the
// terminal while gantry runs, so diagnostics go to a rotating log file
// instead of stderr.
package logging

import (
	"fmt"
	"os"
	"path/filepath"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	lumberjack "gopkg.in/natefinch/lumberjack.v2"
)

// Options control where and how much the launcher logs.
type Options struct {
	Path  string // log file path; empty logs to stderr
	Level string // "debug", "info", "warn", "error"; empty means info
}

// New builds a SugaredLogger writing to a size-rotated file. The returned
// close function flushes buffered entries.
func New(opts Options) (*zap.SugaredLogger, func(), error) {
	writeSyncer := zapcore.AddSync(os.Stderr)

	if opts.Path != "" {
		if err := os.MkdirAll(filepath.Dir(opts.Path), 0o755); err != nil {
			return nil, nil, fmt.Errorf("create log dir: %w", err)
		}
		rotator := &lumberjack.Logger{
			Filename:   opts.Path,
			MaxSize:    10, // megabytes
			MaxBackups: 3,
			MaxAge:     14, // days
			Compress:   true,
		}
		writeSyncer = zapcore.AddSync(rotator)
	}

	encoderConfig := zap.NewProductionEncoderConfig()
	encoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	encoder := zapcore.NewConsoleEncoder(encoderConfig)

	core := zapcore.NewCore(encoder, writeSyncer, parseLevel(opts.Level))
	logger := zap.New(core)
	sugar := logger.Sugar()
	return sugar, func() { _ = logger.Sync() }, nil
}

func parseLevel(level string) zapcore.Level {
	switch level {
	case "debug":
		return zapcore.DebugLevel
	case "warn":
		return zapcore.WarnLevel
	case "error":
		return zapcore.ErrorLevel
	default:
		return zapcore.InfoLevel
	}
}
