package logging

import (
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"sync"
	"testing"
	"time"
)

func TestWeekKey(t *testing.T) {
	testCases := []struct {
		name     string
		date     time.Time
		expected string
	}{
		{"mid-year", time.Date(2026, 3, 3, 12, 0, 0, 0, time.UTC), "2026-W10"},
		{"december day in next iso year", time.Date(2025, 12, 29, 0, 0, 0, 0, time.UTC), "2026-W01"},
		{"january day in previous iso year", time.Date(2027, 1, 1, 23, 59, 0, 0, time.UTC), "2026-W53"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			if got := weekKey(tc.date); got != tc.expected {
				t.Errorf("weekKey(%s) = %q, want %q", tc.date.Format("2006-01-02"), got, tc.expected)
			}
		})
	}
}

func TestRotatingLoggerWriteCreatesWeekFile(t *testing.T) {
	dir := t.TempDir()

	rl := NewRotatingLogger(dir, 1)
	defer func() { _ = rl.Close() }()

	// First write performs the initial rotation on demand
	msg := "first line of the week"
	if _, err := rl.Write([]byte(msg)); err != nil {
		t.Fatalf("Write failed: %v", err)
	}

	path := filepath.Join(dir, logBaseName(weekKey(time.Now())))
	content, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("Expected week file %s: %v", path, err)
	}
	if !strings.Contains(string(content), msg) {
		t.Errorf("Week file does not contain written message: %q", content)
	}
}

func TestRotatingLoggerWeekChange(t *testing.T) {
	dir := t.TempDir()

	rl := NewRotatingLogger(dir, 1)
	defer func() { _ = rl.Close() }()

	// Pretend the logger was last used in an earlier week
	rl.mu.Lock()
	err := rl.rotateTo("2026-W01")
	rl.mu.Unlock()
	if err != nil {
		t.Fatalf("rotateTo failed: %v", err)
	}

	// The next write must notice the week change and move to a new file
	if _, err := rl.Write([]byte("fresh week")); err != nil {
		t.Fatalf("Write failed: %v", err)
	}

	oldPath := filepath.Join(dir, logBaseName("2026-W01"))
	if _, err := os.Stat(oldPath); err != nil {
		t.Errorf("Old week file disappeared: %v", err)
	}

	newPath := filepath.Join(dir, logBaseName(weekKey(time.Now())))
	content, err := os.ReadFile(newPath)
	if err != nil {
		t.Fatalf("Expected current week file %s: %v", newPath, err)
	}
	if !strings.Contains(string(content), "fresh week") {
		t.Errorf("Current week file does not contain the write: %q", content)
	}
}

func TestRotatingLoggerSizeSpill(t *testing.T) {
	dir := t.TempDir()

	rl := NewRotatingLoggerWithSizeLimit(dir, 1, 100)
	defer func() { _ = rl.Close() }()

	if _, err := rl.Write([]byte("fits in the cap")); err != nil {
		t.Fatalf("Small write failed: %v", err)
	}
	if _, err := rl.Write([]byte(strings.Repeat("x", 120))); err != nil {
		t.Fatalf("Oversized write failed: %v", err)
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		t.Fatalf("Failed to read log directory: %v", err)
	}

	spillPattern := regexp.MustCompile(`_\d{2}\.log$`)
	var logFiles, spillFiles int
	for _, entry := range entries {
		if strings.HasPrefix(entry.Name(), "app-") && strings.HasSuffix(entry.Name(), ".log") {
			logFiles++
			if spillPattern.MatchString(entry.Name()) {
				spillFiles++
			}
		}
	}

	if logFiles < 2 {
		t.Errorf("Expected base file plus spill file, got %d log files", logFiles)
	}
	if spillFiles < 1 {
		t.Error("Expected at least one numbered spill file")
	}
}

func TestRotatingLoggerResumesExistingFile(t *testing.T) {
	week := weekKey(time.Now())

	t.Run("below cap continues counting", func(t *testing.T) {
		dir := t.TempDir()
		base := filepath.Join(dir, logBaseName(week))
		if err := os.WriteFile(base, []byte(strings.Repeat("x", 512)), 0666); err != nil {
			t.Fatalf("Seeding log file failed: %v", err)
		}

		rl := NewRotatingLoggerWithSizeLimit(dir, 1, 1024)
		defer func() { _ = rl.Close() }()

		rl.mu.Lock()
		err := rl.rotateTo(week)
		rl.mu.Unlock()
		if err != nil {
			t.Fatalf("rotateTo failed: %v", err)
		}

		if rl.currentFile.Name() != base {
			t.Errorf("Expected to resume %s, got %s", base, rl.currentFile.Name())
		}
		if got := rl.currentSize.Load(); got != 512 {
			t.Errorf("Expected size counter 512, got %d", got)
		}

		if _, err := rl.Write([]byte("y")); err != nil {
			t.Fatalf("Write failed: %v", err)
		}
		if got := rl.currentSize.Load(); got != 513 {
			t.Errorf("Expected size counter 513 after write, got %d", got)
		}
	})

	t.Run("at cap opens spill file", func(t *testing.T) {
		dir := t.TempDir()
		base := filepath.Join(dir, logBaseName(week))
		if err := os.WriteFile(base, []byte(strings.Repeat("x", 2048)), 0666); err != nil {
			t.Fatalf("Seeding log file failed: %v", err)
		}

		rl := NewRotatingLoggerWithSizeLimit(dir, 1, 1024)
		defer func() { _ = rl.Close() }()

		rl.mu.Lock()
		err := rl.rotateTo(week)
		rl.mu.Unlock()
		if err != nil {
			t.Fatalf("rotateTo failed: %v", err)
		}

		if rl.currentFile.Name() == base {
			t.Error("Expected a spill file, still writing to the full base file")
		}
		if !strings.Contains(rl.currentFile.Name(), "_01.") {
			t.Errorf("Expected first spill file, got %s", rl.currentFile.Name())
		}
		if got := rl.currentSize.Load(); got != 0 {
			t.Errorf("Expected zero size counter for spill file, got %d", got)
		}
	})
}

func TestRotatingLoggerInvalidDir(t *testing.T) {
	rl := NewRotatingLogger("/nonexistent/log/dir", 1)

	rl.mu.Lock()
	err := rl.rotateTo(weekKey(time.Now()))
	rl.mu.Unlock()
	if err == nil {
		t.Error("Expected rotation into a nonexistent directory to fail")
	}

	if _, err := rl.Write([]byte("dropped")); err == nil {
		t.Error("Expected write without a usable directory to fail")
	}

	if err := rl.Close(); err != nil {
		t.Errorf("Close must succeed even without a log file: %v", err)
	}
}

func TestRotatingLoggerEmptyAndLargeWrites(t *testing.T) {
	rl := NewRotatingLogger(t.TempDir(), 1)
	defer func() { _ = rl.Close() }()

	if _, err := rl.Write(nil); err != nil {
		t.Errorf("Empty write failed: %v", err)
	}
	if _, err := rl.Write([]byte(strings.Repeat("x", 10_000))); err != nil {
		t.Errorf("Large write failed: %v", err)
	}
}

func TestRotatingLoggerConcurrentWrites(t *testing.T) {
	t.Run("plain", func(t *testing.T) {
		dir := t.TempDir()
		rl := NewRotatingLogger(dir, 1)
		defer func() { _ = rl.Close() }()

		var wg sync.WaitGroup
		for i := 0; i < 10; i++ {
			wg.Add(1)
			go func(id int) {
				defer wg.Done()
				for j := 0; j < 5; j++ {
					line := fmt.Sprintf("writer %d line %d\n", id, j)
					if _, err := rl.Write([]byte(line)); err != nil {
						t.Errorf("Concurrent write failed: %v", err)
					}
				}
			}(i)
		}
		wg.Wait()

		content, err := os.ReadFile(filepath.Join(dir, logBaseName(weekKey(time.Now()))))
		if err != nil {
			t.Fatalf("Failed to read week file: %v", err)
		}
		if len(content) == 0 {
			t.Error("Week file is empty after concurrent writes")
		}
	})

	t.Run("with size spills", func(t *testing.T) {
		dir := t.TempDir()
		rl := NewRotatingLoggerWithSizeLimit(dir, 1, 1000)
		defer func() { _ = rl.Close() }()

		var wg sync.WaitGroup
		for i := 0; i < 20; i++ {
			wg.Add(1)
			go func(id int) {
				defer wg.Done()
				line := fmt.Sprintf("writer %d: %s\n", id, strings.Repeat("x", 100))
				for j := 0; j < 100; j++ {
					if _, err := rl.Write([]byte(line)); err != nil {
						t.Errorf("Concurrent write failed: %v", err)
					}
				}
			}(i)
		}
		wg.Wait()

		entries, err := os.ReadDir(dir)
		if err != nil {
			t.Fatalf("Failed to read log directory: %v", err)
		}
		if len(entries) < 2 {
			t.Errorf("Expected spill files under heavy writes, got %d files", len(entries))
		}
	})
}

func TestSweepExpiredLogs(t *testing.T) {
	dir := t.TempDir()
	rl := NewRotatingLogger(dir, 1)
	defer func() { _ = rl.Close() }()

	stale := filepath.Join(dir, logBaseName("2026-W01"))
	fresh := filepath.Join(dir, logBaseName(weekKey(time.Now())))
	stray := filepath.Join(dir, "notes.txt")

	for _, path := range []string{stale, fresh, stray} {
		if err := os.WriteFile(path, []byte("content"), 0666); err != nil {
			t.Fatalf("Failed to create %s: %v", path, err)
		}
	}

	fourWeeksAgo := time.Now().AddDate(0, 0, -28)
	for _, path := range []string{stale, stray} {
		if err := os.Chtimes(path, fourWeeksAgo, fourWeeksAgo); err != nil {
			t.Fatalf("Failed to age %s: %v", path, err)
		}
	}

	if err := rl.sweepExpiredLogs(); err != nil {
		t.Fatalf("Sweep failed: %v", err)
	}

	if _, err := os.Stat(stale); !os.IsNotExist(err) {
		t.Error("Expected the expired log file to be removed")
	}
	if _, err := os.Stat(fresh); err != nil {
		t.Errorf("Current log file was removed: %v", err)
	}
	if _, err := os.Stat(stray); err != nil {
		t.Errorf("Sweep touched a non-log file: %v", err)
	}
}

func TestStartCleanupIsIdempotent(t *testing.T) {
	rl := NewRotatingLogger(t.TempDir(), 1)

	rl.StartCleanup()
	rl.StartCleanup() // second call must be a no-op, not a second goroutine

	if err := rl.Close(); err != nil {
		t.Fatalf("Close with running sweep failed: %v", err)
	}
}

func TestCloseWithoutStartCleanup(t *testing.T) {
	rl := NewRotatingLogger(t.TempDir(), 1)

	start := time.Now()
	if err := rl.Close(); err != nil {
		t.Fatalf("Close failed: %v", err)
	}
	if elapsed := time.Since(start); elapsed > time.Second {
		t.Errorf("Close blocked %v waiting for a sweep that never started", elapsed)
	}
}
