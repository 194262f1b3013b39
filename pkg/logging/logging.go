package logging

import (
	"fmt"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

const TimeFormat = "2006-01-02 15:04:05"

// NewLogger returns a console-encoded logger appending to dest. The terminal
// is owned by the interface, so nothing is written to stdout or stderr except
// zap's own errors.
func NewLogger(dest string, name string, debug bool) (*zap.Logger, error) {
	level := zap.InfoLevel
	if debug {
		level = zap.DebugLevel
	}

	config := zap.NewDevelopmentConfig()
	config.Development = debug
	config.Level = zap.NewAtomicLevelAt(level)
	config.DisableStacktrace = !debug
	config.EncoderConfig.EncodeTime = zapcore.TimeEncoderOfLayout(TimeFormat)
	config.OutputPaths = []string{dest}
	config.ErrorOutputPaths = []string{"stderr"}

	logger, err := config.Build()
	if err != nil {
		return nil, fmt.Errorf("failed to open log %s: %w", dest, err)
	}

	return logger.Named(name), nil
}

// NewConsoleLogger returns a logger writing to stderr, for processes that do
// not draw to the terminal.
func NewConsoleLogger(name string, debug bool) (*zap.Logger, error) {
	config := zap.NewProductionConfig()
	config.Encoding = "console"
	config.EncoderConfig.EncodeTime = zapcore.TimeEncoderOfLayout(TimeFormat)
	config.EncoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder
	if debug {
		config.Level = zap.NewAtomicLevelAt(zap.DebugLevel)
	}

	logger, err := config.Build()
	if err != nil {
		return nil, fmt.Errorf("failed to create logger: %w", err)
	}

	return logger.Named(name), nil
}
