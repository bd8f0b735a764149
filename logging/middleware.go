package logging

import (
	"log/slog"
	"net/http"
	"sync"
	"time"

	"github.com/go-chi/chi/v5/middleware"
)

// probePaths are hit by orchestration and scrapers every few seconds;
// logging them would drown out real traffic.
var probePaths = map[string]bool{
	"/health":  true,
	"/metrics": true,
}

// statusRecorder captures the status line and body size for the access log.
type statusRecorder struct {
	http.ResponseWriter
	status int
	bytes  int
}

func (sr *statusRecorder) reset(w http.ResponseWriter) {
	sr.ResponseWriter = w
	sr.status = http.StatusOK
	sr.bytes = 0
}

func (sr *statusRecorder) WriteHeader(status int) {
	sr.status = status
	sr.ResponseWriter.WriteHeader(status)
}

func (sr *statusRecorder) Write(p []byte) (int, error) {
	n, err := sr.ResponseWriter.Write(p)
	sr.bytes += n
	return n, err
}

// recorderPool reuses statusRecorder values between requests to keep
// per-request allocations off the hot path.
var recorderPool = sync.Pool{
	New: func() any { return new(statusRecorder) },
}

// LoggingMiddleware emits one structured access-log line per request.
func LoggingMiddleware(logger *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if probePaths[r.URL.Path] {
				next.ServeHTTP(w, r)
				return
			}

			sr := recorderPool.Get().(*statusRecorder)
			sr.reset(w)
			start := time.Now()

			next.ServeHTTP(sr, r)

			requestID, _ := r.Context().Value(middleware.RequestIDKey).(string)
			if requestID == "" {
				requestID = "unknown"
			}

			attrs := make([]slog.Attr, 0, 9)
			attrs = append(attrs,
				slog.String("request_id", requestID),
				slog.String("method", r.Method),
				slog.String("path", r.URL.Path),
			)
			if r.URL.RawQuery != "" {
				attrs = append(attrs, slog.String("query", r.URL.RawQuery))
			}
			attrs = append(attrs,
				slog.String("remote_addr", r.RemoteAddr),
				slog.String("user_agent", r.UserAgent()),
				slog.Int("status_code", sr.status),
				slog.Int("bytes_written", sr.bytes),
				slog.Int64("duration_ms", time.Since(start).Milliseconds()),
			)

			logger.LogAttrs(r.Context(), slog.LevelInfo, "HTTP request", attrs...)

			recorderPool.Put(sr)
		})
	}
}
