package logger

import (
	"context"
	"sync"

	"go.uber.org/zap"
)

type contextKey string

// RequestIDKey is where the request-ID middleware stores the ID in the
// request context; the *Ctx functions pick it up from there.
const RequestIDKey contextKey = "request_id"

var (
	globalLogger *ZapLogger
	once         sync.Once
	mu           sync.RWMutex
)

// SetGlobalLogger sets the global logger instance. Called once at startup.
func SetGlobalLogger(logger *ZapLogger) {
	mu.Lock()
	defer mu.Unlock()
	globalLogger = logger
}

// GetGlobalLogger returns the global logger, falling back to a default
// production logger when none has been set.
func GetGlobalLogger() *ZapLogger {
	mu.RLock()
	defer mu.RUnlock()

	if globalLogger == nil {
		once.Do(func() {
			defaultLogger, _ := zap.NewProduction()
			globalLogger = &ZapLogger{
				Logger: defaultLogger,
				sugar:  defaultLogger.Sugar(),
			}
		})
	}
	return globalLogger
}

// Global logger convenience functions

func Info(msg string, fields ...Field) {
	GetGlobalLogger().Info(msg, fields...)
}

func Warn(msg string, fields ...Field) {
	GetGlobalLogger().Warn(msg, fields...)
}

func Error(msg string, fields ...Field) {
	GetGlobalLogger().Error(msg, fields...)
}

func Debug(msg string, fields ...Field) {
	GetGlobalLogger().Debug(msg, fields...)
}

func Fatal(msg string, fields ...Field) {
	GetGlobalLogger().Fatal(msg, fields...)
}

// WithError returns a logger with an error field using the global logger.
func WithError(err error) *zap.Logger {
	return GetGlobalLogger().WithError(err)
}

// Sugar returns the sugared logger from the global logger.
func Sugar() *zap.SugaredLogger {
	return GetGlobalLogger().Sugar()
}

// Context-aware logging: attaches the request ID when the context carries one.

func fromCtx(ctx context.Context) *zap.Logger {
	l := GetGlobalLogger().Logger
	if id, ok := ctx.Value(RequestIDKey).(string); ok && id != "" {
		return l.With(zap.String("request_id", id))
	}
	return l
}

func InfoCtx(ctx context.Context, msg string, fields ...Field) {
	fromCtx(ctx).Info(msg, fields...)
}

func WarnCtx(ctx context.Context, msg string, fields ...Field) {
	fromCtx(ctx).Warn(msg, fields...)
}

func ErrorCtx(ctx context.Context, msg string, fields ...Field) {
	fromCtx(ctx).Error(msg, fields...)
}

func DebugCtx(ctx context.Context, msg string, fields ...Field) {
	fromCtx(ctx).Debug(msg, fields...)
}
