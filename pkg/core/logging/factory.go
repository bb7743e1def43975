// ============================================================================
// mCalc - Terminal Calculator
// ============================================================================
//
// Package:     logging
// Description: Factory functions for creating structured loggers
// Author:      Mike Stoffels
// Created:     2026-10-19
// License:     MIT
// ============================================================================

package logging

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
)

// Output formats
const (
	FormatJSON = "json"
	FormatText = "text"
)

// LoggerConfig holds configuration for creating loggers
type LoggerConfig struct {
	// Service name, added to every record
	ServiceName string

	// Log level (debug, info, warn, error)
	Level string

	// Output format: "json" or "text" (default: json)
	Format string

	// Output destination; nil discards all records
	Output io.Writer

	// Additional outputs
	AdditionalOutputs []io.Writer
}

// DefaultLoggerConfig returns a default configuration writing JSON to stderr
func DefaultLoggerConfig(serviceName string) LoggerConfig {
	return LoggerConfig{
		ServiceName: serviceName,
		Level:       "info",
		Format:      FormatJSON,
		Output:      os.Stderr,
	}
}

// Logger wraps slog with key-value helpers
type Logger struct {
	*slog.Logger
	level Level
}

// NewLogger creates a logger from cfg
func NewLogger(cfg LoggerConfig) *Logger {
	level, _ := ParseLevel(cfg.Level)

	var output io.Writer = io.Discard
	if cfg.Output != nil {
		output = cfg.Output
	}
	if len(cfg.AdditionalOutputs) > 0 {
		writers := append([]io.Writer{output}, cfg.AdditionalOutputs...)
		output = io.MultiWriter(writers...)
	}

	opts := &slog.HandlerOptions{Level: level.slogLevel()}

	var handler slog.Handler
	if cfg.Format == FormatText {
		handler = slog.NewTextHandler(output, opts)
	} else {
		handler = slog.NewJSONHandler(output, opts)
	}

	if cfg.ServiceName != "" {
		handler = handler.WithAttrs([]slog.Attr{slog.String("service", cfg.ServiceName)})
	}

	return &Logger{
		Logger: slog.New(handler),
		level:  level,
	}
}

// Nop returns a logger that discards everything
func Nop() *Logger {
	cfg := DefaultLoggerConfig("")
	cfg.Output = io.Discard
	return NewLogger(cfg)
}

// OpenLogFile opens path for appending, creating parent directories as
// needed. An empty path yields io.Discard and a no-op closer.
func OpenLogFile(path string) (io.WriteCloser, error) {
	if path == "" {
		return nopCloser{io.Discard}, nil
	}

	path = os.ExpandEnv(path)
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("failed to create log directory: %w", err)
		}
	}

	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, fmt.Errorf("failed to open log file: %w", err)
	}
	return f, nil
}

type nopCloser struct {
	io.Writer
}

func (nopCloser) Close() error { return nil }

// Level returns the minimum level of the logger
func (l *Logger) Level() Level {
	return l.level
}

// With returns a logger that adds keysAndValues to every record
func (l *Logger) With(keysAndValues ...interface{}) *Logger {
	return &Logger{
		Logger: l.Logger.With(toArgs(keysAndValues...)...),
		level:  l.level,
	}
}

// Debug logs a debug message with key-value pairs
func (l *Logger) Debug(msg string, keysAndValues ...interface{}) {
	l.Logger.Debug(msg, toArgs(keysAndValues...)...)
}

// Info logs an info message with key-value pairs
func (l *Logger) Info(msg string, keysAndValues ...interface{}) {
	l.Logger.Info(msg, toArgs(keysAndValues...)...)
}

// Warn logs a warning message with key-value pairs
func (l *Logger) Warn(msg string, keysAndValues ...interface{}) {
	l.Logger.Warn(msg, toArgs(keysAndValues...)...)
}

// Error logs an error message with key-value pairs
func (l *Logger) Error(msg string, keysAndValues ...interface{}) {
	l.Logger.Error(msg, toArgs(keysAndValues...)...)
}

// toArgs converts key-value pairs to slog arguments. slog.Attr values are
// passed through; pairs whose key is not a string and a trailing orphan
// value are dropped.
func toArgs(keysAndValues ...interface{}) []any {
	if len(keysAndValues) == 0 {
		return nil
	}

	args := make([]any, 0, len(keysAndValues))
	for i := 0; i < len(keysAndValues); {
		switch key := keysAndValues[i].(type) {
		case slog.Attr:
			args = append(args, key)
			i++
		case string:
			if i+1 >= len(keysAndValues) {
				return args
			}
			args = append(args, key, keysAndValues[i+1])
			i += 2
		default:
			i += 2
		}
	}
	return args
}
