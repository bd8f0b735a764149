package logging

import (
	"log/slog"
	"testing"

	"github.com/almroth/fasskollen/config"
)

// ResetForTest swaps the global logging service for one rooted in a test
// directory and restores the previous one when the test finishes.
func ResetForTest(t *testing.T, logDir string, env config.Environment, logLevel string, retentionWeeks int, maxFileSize int64) {
	t.Helper()

	prev := DefaultLoggingService
	prevDefault := slog.Default()

	svc := newLoggingService(logDir, env, logLevel, testing.Verbose(), retentionWeeks, maxFileSize)
	DefaultLoggingService = svc
	slog.SetDefault(svc.Logger)

	t.Cleanup(func() {
		if err := svc.Close(); err != nil {
			t.Logf("Failed to close logging service: %v", err)
		}
		DefaultLoggingService = prev
		slog.SetDefault(prevDefault)
	})
}
