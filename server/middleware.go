package server

import (
	"context"
	"fmt"
	"net"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/almroth/fasskollen/config"
	"github.com/almroth/fasskollen/handlers"
	"github.com/almroth/fasskollen/logging"
	"github.com/almroth/fasskollen/metrics"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/google/uuid"
	"github.com/juju/ratelimit"
	"github.com/patrickmn/go-cache"
)

// RequestIDMiddleware attaches a request id to the context and the response.
// Inbound X-Request-ID values are kept so ids stay stable across proxies.
func RequestIDMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := r.Header.Get("X-Request-ID")
		if id == "" {
			id = uuid.NewString()
		}

		w.Header().Set("X-Request-ID", id)
		ctx := context.WithValue(r.Context(), middleware.RequestIDKey, id)

		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// RealIPMiddleware rewrites RemoteAddr to the client address. Rate-limit
// buckets key on RemoteAddr, so it must not vary per connection.
func RealIPMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		r.RemoteAddr = clientAddr(r)
		next.ServeHTTP(w, r)
	})
}

// clientAddr picks the address limiting and logging should see: the first
// hop from X-Forwarded-For when a proxy filled it in, otherwise the peer
// address with its port stripped.
func clientAddr(r *http.Request) string {
	if xff := r.Header.Get("X-Forwarded-For"); xff != "" {
		first, _, _ := strings.Cut(xff, ",")
		return strings.TrimSpace(first)
	}
	if host, _, err := net.SplitHostPort(r.RemoteAddr); err == nil {
		return host
	}
	return r.RemoteAddr
}

// RequestSizeMiddleware rejects requests whose declared body size or summed
// header size exceeds the configured caps. Bodies that arrive without a
// declared length are capped at read time instead.
func RequestSizeMiddleware(cfg *config.Config) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if r.ContentLength > cfg.MaxRequestBody {
				logging.Warn("Oversized request body rejected",
					"content_length", r.ContentLength,
					"limit", cfg.MaxRequestBody,
					"remote_addr", r.RemoteAddr,
					"user_agent", r.UserAgent())

				handlers.RespondWithError(w, r, http.StatusRequestEntityTooLarge,
					fmt.Sprintf("Request body too large, the limit is %d bytes", cfg.MaxRequestBody))
				return
			}

			if size := headerBytes(r.Header); size > cfg.MaxHeaderSize {
				logging.Warn("Oversized request headers rejected",
					"header_size", size,
					"limit", cfg.MaxHeaderSize,
					"remote_addr", r.RemoteAddr,
					"user_agent", r.UserAgent())

				handlers.RespondWithError(w, r, http.StatusRequestHeaderFieldsTooLarge,
					fmt.Sprintf("Request headers too large, the limit is %d bytes", cfg.MaxHeaderSize))
				return
			}

			r.Body = http.MaxBytesReader(w, r.Body, cfg.MaxRequestBody)
			next.ServeHTTP(w, r)
		})
	}
}

// headerBytes sums key and value lengths across all headers, close enough
// to the wire size to serve as a cap.
func headerBytes(h http.Header) int64 {
	var n int64
	for key, values := range h {
		n += int64(len(key))
		for _, v := range values {
			n += int64(len(v))
		}
	}
	return n
}

// Bucket store expiry: clients idle longer than this start over with a
// fresh bucket, active clients keep their spend history.
const (
	bucketTTL           = 5 * time.Minute
	bucketSweepInterval = 10 * time.Minute
)

// RateLimiter manages per-client token buckets. Buckets live in an
// expiring cache so idle clients cost nothing after the TTL.
type RateLimiter struct {
	buckets *cache.Cache
	rate    float64
	burst   int64
}

// NewRateLimiter creates a rate limiter filling each client bucket at rate
// tokens per second up to burst capacity.
func NewRateLimiter(rate float64, burst int64) *RateLimiter {
	return &RateLimiter{
		buckets: cache.New(bucketTTL, bucketSweepInterval),
		rate:    rate,
		burst:   burst,
	}
}

func (rl *RateLimiter) getBucket(clientIP string) *ratelimit.Bucket {
	if cached, ok := rl.buckets.Get(clientIP); ok {
		bucket := cached.(*ratelimit.Bucket)
		// Sliding expiry: refresh the TTL so active clients never lose
		// their spend history mid-burst.
		rl.buckets.SetDefault(clientIP, bucket)
		return bucket
	}

	bucket := ratelimit.NewBucketWithRate(rl.rate, rl.burst)
	// Add refuses to clobber, so concurrent first requests converge on a
	// single bucket per client.
	if err := rl.buckets.Add(clientIP, bucket, cache.DefaultExpiration); err != nil {
		if cached, ok := rl.buckets.Get(clientIP); ok {
			bucket = cached.(*ratelimit.Bucket)
		}
	}

	metrics.RateLimiterBucketsTotal.Set(float64(rl.buckets.ItemCount()))
	return bucket
}

// tokenCost prices each endpoint by the work it causes. The index page,
// favicon and the scrape endpoint are free so probes and dashboards never
// eat into a client's budget.
var tokenCost = map[string]int64{
	"/":            0,
	"/favicon.ico": 0,
	"/metrics":     0,
	"/health":      5,
	"/medications": 100,
}

const defaultTokenCost = 20

func getTokenCost(r *http.Request) int64 {
	path := r.URL.Path
	if cost, ok := tokenCost[path]; ok {
		return cost
	}
	// Fuzzy resolution costs more than a direct key or code fetch, which
	// pay the default.
	if strings.HasPrefix(path, "/resolve/") || strings.HasPrefix(path, "/report/") {
		return 25
	}
	return defaultTokenCost
}

// RateLimitMiddleware spends tokens from the per-client bucket before a
// request reaches its handler. Clients that run dry get a 429 and a hint
// to come back once the bucket has refilled.
func RateLimitMiddleware(limiter *RateLimiter) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			bucket := limiter.getBucket(r.RemoteAddr)
			cost := getTokenCost(r)

			header := w.Header()
			header.Set("X-RateLimit-Limit", strconv.FormatInt(limiter.burst, 10))
			header.Set("X-RateLimit-Rate", strconv.FormatFloat(limiter.rate, 'f', -1, 64))

			if bucket.TakeAvailable(cost) < cost {
				logging.Warn("Rate limit exceeded",
					"client_ip", r.RemoteAddr,
					"path", r.URL.Path,
					"cost", cost)

				header.Set("X-RateLimit-Remaining", "0")
				header.Set("Retry-After", "60")
				handlers.RespondWithError(w, r, http.StatusTooManyRequests,
					"Rate limit exceeded, retry after the bucket refills")
				return
			}

			header.Set("X-RateLimit-Remaining", strconv.FormatInt(bucket.Available(), 10))
			next.ServeHTTP(w, r)
		})
	}
}
