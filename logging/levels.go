package logging

import (
	"log/slog"
	"strings"

	"github.com/almroth/fasskollen/config"
)

// parseLogLevel maps a LOG_LEVEL string onto a slog level. Unknown values
// fall back to info.
func parseLogLevel(s string) slog.Level {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// GetConsoleLogLevel decides how chatty the console handler should be.
// Test runs stay quiet regardless of LOG_LEVEL so test output remains
// readable; other environments honor the override when one is set.
func GetConsoleLogLevel(env config.Environment, logLevel string, verbose bool) slog.Level {
	if env == config.EnvTest {
		if verbose {
			return slog.LevelInfo
		}
		return slog.LevelError
	}

	if logLevel != "" {
		return parseLogLevel(logLevel)
	}

	if env == config.EnvDevelopment {
		return slog.LevelInfo
	}
	return slog.LevelWarn
}

// GetFileLogLevel returns the level for the rotating file handler. The
// file always captures everything; filtering happens on the console side.
func GetFileLogLevel() slog.Level {
	return slog.LevelDebug
}
