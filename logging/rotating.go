package logging

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strconv"
	"strings"
	"sync"
	"sync/atomic"
	"time"
)

const defaultMaxFileSize = 100 * 1024 * 1024

// rotatedNamePattern matches size-rotated log files like app-2026-W34_01.log.
var rotatedNamePattern = regexp.MustCompile(`app-\d{4}-W\d{2}_(\d{2})\.log$`)

// RotatingLogger is an io.Writer that appends to one log file per ISO week,
// spilling into numbered files when a file reaches the size cap, and sweeps
// files past the retention window.
type RotatingLogger struct {
	logDir         string
	currentFile    *os.File
	currentWeek    string
	retention      time.Duration
	maxFileSize    int64
	currentSize    atomic.Int64
	mu             sync.RWMutex
	ctx            context.Context
	cancel         context.CancelFunc
	cleanupStarted atomic.Bool
	cleanupDone    chan struct{}
}

// NewRotatingLogger creates a rotating logger with the default 100MB size cap.
func NewRotatingLogger(logDir string, retentionWeeks int) *RotatingLogger {
	return NewRotatingLoggerWithSizeLimit(logDir, retentionWeeks, defaultMaxFileSize)
}

// NewRotatingLoggerWithSizeLimit creates a rotating logger with an explicit
// per-file size cap in bytes.
func NewRotatingLoggerWithSizeLimit(logDir string, retentionWeeks int, maxFileSize int64) *RotatingLogger {
	ctx, cancel := context.WithCancel(context.Background())
	return &RotatingLogger{
		logDir:      logDir,
		retention:   time.Duration(retentionWeeks) * 7 * 24 * time.Hour,
		maxFileSize: maxFileSize,
		ctx:         ctx,
		cancel:      cancel,
		cleanupDone: make(chan struct{}),
	}
}

// weekKey renders t's ISO week as YYYY-Www, the unit log files rotate on.
func weekKey(t time.Time) string {
	year, week := t.ISOWeek()
	return fmt.Sprintf("%d-W%02d", year, week)
}

func logBaseName(week string) string {
	return fmt.Sprintf("app-%s.log", week)
}

func logNumberedName(week string, n int) string {
	return fmt.Sprintf("app-%s_%02d.log", week, n)
}

// rotateTo switches the writer to the right file for targetWeek. The caller
// must hold the write lock.
func (rl *RotatingLogger) rotateTo(targetWeek string) error {
	if rl.currentFile != nil {
		if err := rl.currentFile.Close(); err != nil {
			fmt.Fprintf(os.Stderr, "logging: failed to close log file during rotation: %v\n", err)
		}
		rl.currentFile = nil
	}

	sizeRotation := rl.maxFileSize > 0 && rl.currentSize.Load() >= rl.maxFileSize
	name, fresh, err := rl.pickLogFile(targetWeek, sizeRotation)
	if err != nil {
		return err
	}

	path := filepath.Join(rl.logDir, name)
	file, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0666)
	if err != nil {
		return fmt.Errorf("failed to open log file %s: %w", path, err)
	}

	rl.currentFile = file
	rl.currentWeek = targetWeek

	if fresh {
		rl.currentSize.Store(0)
	} else if info, err := os.Stat(path); err == nil {
		// Resuming an existing file: size counting continues where it left off
		rl.currentSize.Store(info.Size())
	}

	return nil
}

// pickLogFile chooses the file name for targetWeek. fresh reports whether
// the name is brand new, so the size counter starts at zero.
func (rl *RotatingLogger) pickLogFile(targetWeek string, sizeRotation bool) (name string, fresh bool, err error) {
	base := logBaseName(targetWeek)

	if !sizeRotation {
		info, statErr := os.Stat(filepath.Join(rl.logDir, base))
		if statErr != nil || rl.maxFileSize == 0 || info.Size() < rl.maxFileSize {
			return base, false, nil
		}
		// Base file from an earlier run already hit the cap; spill over
	}

	highest, lastPath, lastSize := rl.highestNumberedFile(targetWeek)
	if lastPath != "" && lastSize < rl.maxFileSize {
		return filepath.Base(lastPath), false, nil
	}

	return logNumberedName(targetWeek, highest+1), true, nil
}

// highestNumberedFile scans targetWeek's spill files and returns the largest
// index along with that file's path and size.
func (rl *RotatingLogger) highestNumberedFile(targetWeek string) (int, string, int64) {
	prefix := strings.TrimSuffix(logBaseName(targetWeek), ".log")
	matches, _ := filepath.Glob(filepath.Join(rl.logDir, prefix+"_??.log"))

	var highest int
	var lastPath string
	var lastSize int64

	for _, match := range matches {
		if n, size := numberedFileInfo(match); n > highest {
			highest = n
			lastPath = match
			lastSize = size
		}
	}

	return highest, lastPath, lastSize
}

// numberedFileInfo extracts the spill index from a file name and stats its
// current size.
func numberedFileInfo(path string) (int, int64) {
	m := rotatedNamePattern.FindStringSubmatch(filepath.Base(path))
	if len(m) < 2 {
		return 0, 0
	}

	n, _ := strconv.Atoi(m[1])

	info, err := os.Stat(path)
	if err != nil {
		return n, 0
	}
	return n, info.Size()
}

// Write appends p to the current week's file, rotating first when the week
// changed or the size cap would be crossed.
func (rl *RotatingLogger) Write(p []byte) (n int, err error) {
	rl.mu.Lock()
	defer rl.mu.Unlock()

	week := weekKey(time.Now())
	rotate := rl.currentWeek != week

	if !rotate && rl.maxFileSize > 0 {
		size := rl.currentSize.Load()
		if size >= rl.maxFileSize || size+int64(len(p)) > rl.maxFileSize {
			rotate = true
			// Pin the counter at the cap so rotateTo picks a spill file
			rl.currentSize.Store(rl.maxFileSize)
		}
	}

	if rotate {
		if err = rl.rotateTo(week); err != nil {
			return 0, err
		}
	}

	if rl.currentFile == nil {
		return 0, fmt.Errorf("no log file available")
	}

	n, err = rl.currentFile.Write(p)
	rl.currentSize.Add(int64(n))
	return n, err
}

// StartCleanup starts the daily retention sweep in the background.
// Close stops it. Calling StartCleanup more than once is a no-op.
func (rl *RotatingLogger) StartCleanup() {
	if !rl.cleanupStarted.CompareAndSwap(false, true) {
		return
	}

	go func() {
		ticker := time.NewTicker(24 * time.Hour)
		defer ticker.Stop()
		defer close(rl.cleanupDone)

		for {
			select {
			case <-rl.ctx.Done():
				return
			case <-ticker.C:
				if err := rl.sweepExpiredLogs(); err != nil {
					// Console only, logging here would recurse into the sink
					fmt.Fprintf(os.Stderr, "logging: retention sweep failed: %v\n", err)
				}
			}
		}
	}()
}

// sweepExpiredLogs deletes log files whose modification time fell out of the
// retention window.
func (rl *RotatingLogger) sweepExpiredLogs() error {
	entries, err := os.ReadDir(rl.logDir)
	if err != nil {
		return fmt.Errorf("failed to read log directory: %w", err)
	}

	cutoff := time.Now().Add(-rl.retention)
	deleted := 0

	for _, entry := range entries {
		name := entry.Name()
		if entry.IsDir() || !strings.HasPrefix(name, "app-") || !strings.HasSuffix(name, ".log") {
			continue
		}

		info, err := entry.Info()
		if err != nil {
			continue
		}

		if info.ModTime().Before(cutoff) {
			if os.Remove(filepath.Join(rl.logDir, name)) == nil {
				deleted++
			}
		}
	}

	if deleted > 0 {
		fmt.Printf("Cleaned up %d old log files\n", deleted)
	}

	return nil
}

// Close stops the background sweep and closes the current file.
func (rl *RotatingLogger) Close() error {
	rl.cancel()

	// Only wait for the sweep goroutine if it was ever started
	if rl.cleanupStarted.Load() {
		select {
		case <-rl.cleanupDone:
		case <-time.After(5 * time.Second):
			fmt.Fprintln(os.Stderr, "logging: retention sweep did not shut down gracefully")
		}
	}

	rl.mu.Lock()
	defer rl.mu.Unlock()

	if rl.currentFile != nil {
		err := rl.currentFile.Close()
		rl.currentFile = nil
		return err
	}
	return nil
}
