// Package dlogger exposes a simple zap logger, with log levels
package dlogger

import (
	"io"
	"os"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

const (
	// LogLevelInfo sets the log level to info
	LogLevelInfo = "info"

	// LogLevelDebug sets the log level to debug
	LogLevelDebug = "debug"

	// LogLevelNone sets logger to no logging
	LogLevelNone = "none"
)

// GetLogger returns a zap logger with the specified level.
//
// Messages go to stderr with a console encoder: the GitHub Actions runner
// renders the job log as plain text, which makes JSON lines hard to read.
func GetLogger(logLevel string) (*zap.Logger, error) {
	return NewLogger(logLevel, os.Stderr)
}

// NewLogger builds a console logger writing to w
func NewLogger(logLevel string, w io.Writer) (*zap.Logger, error) {
	if logLevel == LogLevelNone {
		return zap.NewNop(), nil
	}
	var lvl zapcore.Level
	err := lvl.UnmarshalText([]byte(logLevel))
	if err != nil {
		return nil, err
	}

	encoderConfig := zap.NewDevelopmentEncoderConfig()
	encoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	encoderConfig.EncodeCaller = nil
	encoderConfig.CallerKey = ""

	core := zapcore.NewCore(
		zapcore.NewConsoleEncoder(encoderConfig),
		zapcore.Lock(zapcore.AddSync(w)),
		zap.NewAtomicLevelAt(lvl),
	)
	return zap.New(core), nil
}

// MustGetLogger returns a zap logger with the specified level or panics
func MustGetLogger(logLevel string) *zap.Logger {
	l, err := GetLogger(logLevel)
	if err != nil {
		panic(err)
	}
	return l
}
