// Package scheduler provides the periodic status heartbeat for the service.
// The medication table is compiled into the binary and never refreshed at
// runtime, so the scheduler's job is limited to liveness reporting and
// keeping the table gauge current.
package scheduler

import (
	"fmt"
	"time"

	"github.com/almroth/fasskollen/interfaces"
	"github.com/almroth/fasskollen/logging"
	"github.com/almroth/fasskollen/metrics"
	"github.com/go-co-op/gocron"
	"github.com/prometheus/client_golang/prometheus"
	dto "github.com/prometheus/client_model/go"
)

// Compile-time check to ensure Heartbeat implements interfaces.Heartbeat
var _ interfaces.Heartbeat = (*Heartbeat)(nil)

// Heartbeat logs an hourly status line so long-running deployments leave a
// trace in the logs even when idle.
type Heartbeat struct {
	catalog   interfaces.Catalog
	scheduler *gocron.Scheduler
}

// NewHeartbeat creates a new heartbeat with injected dependencies
func NewHeartbeat(catalog interfaces.Catalog) *Heartbeat {
	return &Heartbeat{
		catalog:   catalog,
		scheduler: gocron.NewScheduler(time.Local),
	}
}

// Start validates the wiring and begins the hourly heartbeat.
func (h *Heartbeat) Start() error {
	if h.catalog == nil {
		return fmt.Errorf("heartbeat requires a catalog")
	}

	table := h.catalog.Table()
	if table == nil || table.Len() == 0 {
		logging.Error("Medication table is empty, refusing to start")
		return fmt.Errorf("medication table is empty")
	}

	metrics.TableRecords.Set(float64(table.Len()))

	logging.Info("Medication table loaded",
		"records", table.Len(),
		"brands", table.BrandCount(),
		"fingerprint", h.catalog.Fingerprint(),
	)

	// Beat at the top of every hour
	_, err := h.scheduler.Cron("0 * * * *").Do(h.beat)
	if err != nil {
		logging.Error("Failed to schedule heartbeat", "error", err)
		return fmt.Errorf("failed to schedule heartbeat: %w", err)
	}

	h.scheduler.StartAsync()

	return nil
}

// Stop stops the scheduler.
func (h *Heartbeat) Stop() {
	h.scheduler.Stop()
}

func (h *Heartbeat) beat() {
	uptime := time.Since(h.catalog.ServerStartTime())
	requests, lookups, buckets := metricsSnapshot()

	logging.Info("Heartbeat",
		"uptime", uptime.Round(time.Second).String(),
		"records", h.catalog.Table().Len(),
		"fingerprint", h.catalog.Fingerprint(),
		"requests_total", requests,
		"lookups_total", lookups,
		"rate_limiter_buckets", buckets,
	)
}

// metricsSnapshot reads request, lookup and rate limiter totals from the
// default Prometheus registry so the heartbeat line carries traffic counts
// alongside uptime.
func metricsSnapshot() (requests, lookups, buckets int64) {
	families, err := prometheus.DefaultGatherer.Gather()
	if err != nil {
		logging.Warn("Failed to gather metrics for heartbeat", "error", err)
		return 0, 0, 0
	}

	requests = int64(sumCounter(families, "http_request_total"))
	lookups = int64(sumCounter(families, "medication_lookup_total"))
	buckets = int64(gaugeValue(families, "rate_limiter_buckets_total"))
	return requests, lookups, buckets
}

func sumCounter(families []*dto.MetricFamily, name string) float64 {
	for _, family := range families {
		if family.GetName() != name {
			continue
		}
		var total float64
		for _, metric := range family.GetMetric() {
			total += metric.GetCounter().GetValue()
		}
		return total
	}
	return 0
}

func gaugeValue(families []*dto.MetricFamily, name string) float64 {
	for _, family := range families {
		if family.GetName() != name {
			continue
		}
		for _, metric := range family.GetMetric() {
			return metric.GetGauge().GetValue()
		}
	}
	return 0
}

// NextBeat returns the next top-of-hour heartbeat time.
func NextBeat() time.Time {
	now := time.Now()
	return time.Date(now.Year(), now.Month(), now.Day(), now.Hour(), 0, 0, 0, now.Location()).Add(time.Hour)
}
