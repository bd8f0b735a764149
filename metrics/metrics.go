// Package metrics exposes the service's Prometheus instrumentation.
// HTTP traffic is tracked per method and route pattern, and the lookup
// pipeline reports which tier resolved each query. Everything registers
// against the default registry at startup, so the /metrics endpoint
// only needs the stock promhttp handler.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Latency buckets skew low because lookups hit an in-memory table; the
// upper tail is there to catch stalls, not normal traffic.
var requestBuckets = []float64{.001, .005, .01, .025, .05, .1, .25, .5, 1, 2.5, 5}

var (
	HTTPRequestTotals = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "http_request_total",
		Help: "HTTP requests served, by method, route and status.",
	}, []string{"method", "path", "status"})

	HTTPRequestDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "http_request_duration_seconds",
		Help:    "Time spent serving HTTP requests.",
		Buckets: requestBuckets,
	}, []string{"method", "path"})

	HTTPRequestInFlight = promauto.NewGauge(prometheus.GaugeOpts{
		Name: "http_request_in_flight",
		Help: "Requests currently being served.",
	})

	LookupTotals = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "medication_lookup_total",
		Help: "Medication lookups, by the tier that matched (key, brand, substring or none).",
	}, []string{"tier"})

	TableRecords = promauto.NewGauge(prometheus.GaugeOpts{
		Name: "medication_table_records",
		Help: "Records in the compiled-in medication table.",
	})

	RateLimiterBucketsTotal = promauto.NewGauge(prometheus.GaugeOpts{
		Name: "rate_limiter_buckets_total",
		Help: "Client IPs holding a live rate limiter bucket (5 minute idle expiry).",
	})
)
