// Package logger builds the run logger. Records go to the project's log file
// when its log directory exists and to stdout in verbose mode.
package logger

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/testvibe/testvibe/internal/config"
)

// New creates the logger for cfg. The returned close function flushes and
// releases the log file.
func New(cfg *config.Config) (*zap.Logger, func() error, error) {
	return build(cfg, os.Stdout)
}

func build(cfg *config.Config, stdout io.Writer) (*zap.Logger, func() error, error) {
	level := zap.NewAtomicLevelAt(zapcore.InfoLevel)
	if cfg.Debug {
		level.SetLevel(zapcore.DebugLevel)
	}

	encoderCfg := zap.NewProductionEncoderConfig()
	encoderCfg.EncodeTime = zapcore.ISO8601TimeEncoder
	encoderCfg.EncodeLevel = zapcore.CapitalLevelEncoder

	var cores []zapcore.Core
	closeFn := func() error { return nil }

	logPath := cfg.GetLogPath()
	if config.Exists(filepath.Dir(logPath)) {
		f, err := os.OpenFile(logPath, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0644)
		if err != nil {
			return nil, nil, fmt.Errorf("open log file: %w", err)
		}
		cores = append(cores, zapcore.NewCore(zapcore.NewConsoleEncoder(encoderCfg), zapcore.AddSync(f), level))
		closeFn = f.Close
	}

	if cfg.Flags.Verbose {
		cores = append(cores, zapcore.NewCore(zapcore.NewConsoleEncoder(encoderCfg), zapcore.AddSync(stdout), level))
	}

	if len(cores) == 0 {
		return zap.NewNop(), closeFn, nil
	}

	log := zap.New(zapcore.NewTee(cores...))
	return log, func() error {
		_ = log.Sync()
		return closeFn()
	}, nil
}
