// Package logging provides the process-wide structured logger: slog with a
// text handler on the console and a JSON handler on a weekly rotating file,
// plus the HTTP access-log middleware and package-level helpers.
package logging

import (
	"context"
	"errors"
	"log/slog"
	"os"
	"time"

	"github.com/almroth/fasskollen/config"
)

// LoggingService owns the process-wide logger and the rotating file sink
// behind it.
type LoggingService struct {
	Logger   *slog.Logger
	rotating *RotatingLogger
}

var DefaultLoggingService *LoggingService

// fallbackLogger catches messages emitted before InitLogger runs.
var fallbackLogger = slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
	Level: slog.LevelDebug,
}))

// InitLogger initializes the global logger from the loaded configuration.
func InitLogger(cfg *config.Config) {
	DefaultLoggingService = newLoggingService("logs", cfg.Env, cfg.LogLevel, false, cfg.LogRetentionWeeks, cfg.MaxLogFileSize)
	slog.SetDefault(DefaultLoggingService.Logger)
}

// InitLoggerWithRetention initializes the global logger with explicit
// settings. An empty logDir disables the file sink entirely.
func InitLoggerWithRetention(logDir string, retentionWeeks int) {
	DefaultLoggingService = newLoggingService(logDir, config.EnvDevelopment, "", false, retentionWeeks, defaultMaxFileSize)
	slog.SetDefault(DefaultLoggingService.Logger)
}

// Close flushes and closes the rotating file sink, if any.
func (s *LoggingService) Close() error {
	if s == nil || s.rotating == nil {
		return nil
	}
	return s.rotating.Close()
}

// Close closes the global logging service. Safe to call before InitLogger.
func Close() error {
	return DefaultLoggingService.Close()
}

// newLoggingService builds a logger that writes text to the console and
// JSON to a rotating weekly file. When the log directory cannot be used,
// the service degrades to console-only logging.
func newLoggingService(logDir string, env config.Environment, logLevel string, verbose bool, retentionWeeks int, maxFileSize int64) *LoggingService {
	consoleHandler := slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
		Level: GetConsoleLogLevel(env, logLevel, verbose),
	})

	if logDir == "" {
		return &LoggingService{Logger: slog.New(consoleHandler)}
	}

	if err := os.MkdirAll(logDir, 0755); err != nil {
		logger := slog.New(consoleHandler)
		logger.Error("Failed to create logs directory", "error", err)
		return &LoggingService{Logger: logger}
	}

	rotating := NewRotatingLoggerWithSizeLimit(logDir, retentionWeeks, maxFileSize)

	rotating.mu.Lock()
	rotateErr := rotating.rotateTo(weekKey(time.Now()))
	rotating.mu.Unlock()
	if rotateErr != nil {
		logger := slog.New(consoleHandler)
		logger.Error("Failed to initialize rotating logger", "error", rotateErr)
		return &LoggingService{Logger: logger}
	}

	rotating.StartCleanup()

	fileHandler := slog.NewJSONHandler(rotating, &slog.HandlerOptions{
		Level: GetFileLogLevel(),
	})

	tee := &teeHandler{
		handlers: []slog.Handler{consoleHandler, fileHandler},
	}

	return &LoggingService{
		Logger:   slog.New(tee),
		rotating: rotating,
	}
}

// Package-level helpers so callers log without threading a logger through
// every constructor.

func Info(msg string, args ...any)  { activeLogger().Info(msg, args...) }
func Warn(msg string, args ...any)  { activeLogger().Warn(msg, args...) }
func Error(msg string, args ...any) { activeLogger().Error(msg, args...) }
func Debug(msg string, args ...any) { activeLogger().Debug(msg, args...) }

// activeLogger returns the service logger once InitLogger has run, the
// stderr fallback before that.
func activeLogger() *slog.Logger {
	if DefaultLoggingService != nil && DefaultLoggingService.Logger != nil {
		return DefaultLoggingService.Logger
	}
	return fallbackLogger
}

// teeHandler fans every record out to all child handlers.
type teeHandler struct {
	handlers []slog.Handler
}

func (th *teeHandler) Enabled(ctx context.Context, level slog.Level) bool {
	for _, h := range th.handlers {
		if h.Enabled(ctx, level) {
			return true
		}
	}
	return false
}

// Handle delivers the record to every enabled child. A failing file sink
// must not stop the console line, so errors are collected, not short-circuited.
func (th *teeHandler) Handle(ctx context.Context, r slog.Record) error {
	var errs []error
	for _, h := range th.handlers {
		if h.Enabled(ctx, r.Level) {
			if err := h.Handle(ctx, r.Clone()); err != nil {
				errs = append(errs, err)
			}
		}
	}
	return errors.Join(errs...)
}

func (th *teeHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	children := make([]slog.Handler, len(th.handlers))
	for i, h := range th.handlers {
		children[i] = h.WithAttrs(attrs)
	}
	return &teeHandler{handlers: children}
}

func (th *teeHandler) WithGroup(name string) slog.Handler {
	children := make([]slog.Handler, len(th.handlers))
	for i, h := range th.handlers {
		children[i] = h.WithGroup(name)
	}
	return &teeHandler{handlers: children}
}
