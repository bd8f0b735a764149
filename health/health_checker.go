// Package health answers the question a load balancer asks: can this
// process serve lookups right now.
package health

import (
	"fmt"
	"net/http"
	"time"

	"github.com/almroth/fasskollen/interfaces"
	"github.com/almroth/fasskollen/scheduler"
)

var _ interfaces.HealthChecker = (*Checker)(nil)

// Checker reports on the catalog backing the service.
type Checker struct {
	catalog interfaces.Catalog
}

// NewHealthChecker returns a Checker bound to the given catalog.
func NewHealthChecker(catalog interfaces.Catalog) interfaces.HealthChecker {
	return &Checker{catalog: catalog}
}

// HealthCheck backs the /health endpoint. The medication table is
// compiled in, so the only unhealthy condition is an empty or missing
// table.
func (c *Checker) HealthCheck() (status string, data map[string]any, httpStatus int) {
	table := c.catalog.Table()
	uptime := time.Since(c.catalog.ServerStartTime())

	records, brands := 0, 0
	if table != nil {
		records = table.Len()
		brands = table.BrandCount()
	}

	status, httpStatus = "healthy", http.StatusOK
	if records == 0 {
		status, httpStatus = "unhealthy", http.StatusServiceUnavailable
	}

	data = map[string]any{
		"records":        records,
		"brands":         brands,
		"fingerprint":    c.catalog.Fingerprint(),
		"built_at":       c.catalog.BuiltAt().Format(time.RFC3339),
		"uptime":         formatUptime(uptime),
		"uptime_seconds": uptime.Seconds(),
		"next_heartbeat": scheduler.NextBeat().Format(time.RFC3339),
	}

	return status, data, httpStatus
}

// formatUptime renders a duration as "1d 2h 3m 4s", dropping leading
// units that are zero.
func formatUptime(d time.Duration) string {
	total := int(d.Seconds())
	days := total / 86400
	hours := total % 86400 / 3600
	minutes := total % 3600 / 60
	seconds := total % 60

	switch {
	case days > 0:
		return fmt.Sprintf("%dd %dh %dm %ds", days, hours, minutes, seconds)
	case hours > 0:
		return fmt.Sprintf("%dh %dm %ds", hours, minutes, seconds)
	case minutes > 0:
		return fmt.Sprintf("%dm %ds", minutes, seconds)
	default:
		return fmt.Sprintf("%ds", seconds)
	}
}
