package logger

import (
	"context"
	"fmt"
	"os"
	"strings"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

type ctxKey struct{}

var defaultLogger *zap.Logger

func init() {
	// JSON at info level until Init is called with the configured values.
	l, err := zap.NewProductionConfig().Build()
	if err != nil {
		l = zap.NewNop()
	}
	defaultLogger = l
}

// Init replaces the default logger. format is "json" or "console".
func Init(level, format string) error {
	lvl, err := zapcore.ParseLevel(strings.ToLower(level))
	if err != nil {
		return fmt.Errorf("parse log level %q: %w", level, err)
	}

	var cfg zap.Config
	switch format {
	case "", "json":
		cfg = zap.NewProductionConfig()
	case "console":
		cfg = zap.NewDevelopmentConfig()
	default:
		return fmt.Errorf("unknown log format %q", format)
	}
	cfg.Level = zap.NewAtomicLevelAt(lvl)
	cfg.EncoderConfig.TimeKey = "time"
	cfg.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder

	l, err := cfg.Build()
	if err != nil {
		return fmt.Errorf("build logger: %w", err)
	}
	defaultLogger = l
	return nil
}

// SetLogger allows setting a custom logger (useful for testing)
func SetLogger(logger *zap.Logger) {
	defaultLogger = logger
}

// GetLogger returns the default logger
func GetLogger() *zap.Logger {
	return defaultLogger
}

// Sync flushes buffered entries.
func Sync() {
	_ = defaultLogger.Sync()
}

// Info logs an info message with optional fields
func Info(msg string, fields ...zap.Field) {
	defaultLogger.Info(msg, fields...)
}

// Error logs an error message with optional fields
func Error(msg string, fields ...zap.Field) {
	defaultLogger.Error(msg, fields...)
}

// Warn logs a warning message with optional fields
func Warn(msg string, fields ...zap.Field) {
	defaultLogger.Warn(msg, fields...)
}

// Debug logs a debug message with optional fields
func Debug(msg string, fields ...zap.Field) {
	defaultLogger.Debug(msg, fields...)
}

// Fatal logs a fatal message and exits
func Fatal(msg string, fields ...zap.Field) {
	defaultLogger.Error(msg, fields...)
	_ = defaultLogger.Sync()
	os.Exit(1)
}

// WithRequestID adds request_id to logger context
func WithRequestID(requestID string) *zap.Logger {
	return defaultLogger.With(zap.String("request_id", requestID))
}

// WithFields creates a logger with multiple fields
func WithFields(fields ...zap.Field) *zap.Logger {
	return defaultLogger.With(fields...)
}

// ContextWithRequestID stores the request id for FromContext.
func ContextWithRequestID(ctx context.Context, requestID string) context.Context {
	return context.WithValue(ctx, ctxKey{}, requestID)
}

// RequestIDFromContext returns the request id stored in ctx, if any.
func RequestIDFromContext(ctx context.Context) string {
	id, _ := ctx.Value(ctxKey{}).(string)
	return id
}

// FromContext returns the default logger tagged with the request id carried by ctx.
func FromContext(ctx context.Context) *zap.Logger {
	if id := RequestIDFromContext(ctx); id != "" {
		return WithRequestID(id)
	}
	return defaultLogger
}
