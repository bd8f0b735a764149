// Package interfaces defines the core abstractions of the fasskollen
// service to improve testability, maintainability, and separation of
// concerns.
package interfaces

import (
	"net/http"
	"time"

	"github.com/almroth/fasskollen/medications"
)

// Catalog defines the contract for read access to the medication data.
// The underlying table is compiled in and immutable, so every method is a
// pure read, safe for concurrent use without synchronization.
type Catalog interface {
	// Table returns the full medication table.
	Table() *medications.Table

	// Records returns every record in curated order.
	Records() []medications.Record

	// Resolve maps a free-text name onto a record via the tiered matcher.
	Resolve(query string) (*medications.Record, medications.MatchTier, bool)

	// Fingerprint returns the stable content hash of the data set.
	Fingerprint() string

	// BuiltAt returns when the table was assembled in this process.
	BuiltAt() time.Time

	// ServerStartTime returns when the process started serving.
	ServerStartTime() time.Time
}

// QueryValidator defines the contract for validating user-supplied input
// before it reaches the resolver. The resolver itself accepts any string;
// validation is a service-surface concern.
type QueryValidator interface {
	// ValidateQuery checks a free-text medication name.
	ValidateQuery(input string) error

	// ValidateATC checks the shape of an ATC classification code and
	// returns its canonical uppercase form.
	ValidateATC(input string) (string, error)
}

// HTTPHandler defines the contract for the HTTP endpoint handlers.
type HTTPHandler interface {
	// ServeHTTP implements the http.Handler interface
	ServeHTTP(w http.ResponseWriter, r *http.Request)

	// Specific endpoint handlers
	ServeIndex(w http.ResponseWriter, r *http.Request)
	ServeMedications(w http.ResponseWriter, r *http.Request)
	ServeMedicationByKey(w http.ResponseWriter, r *http.Request)
	ResolveMedication(w http.ResponseWriter, r *http.Request)
	ServeMedicationsByATC(w http.ResponseWriter, r *http.Request)
	ServeReport(w http.ResponseWriter, r *http.Request)
	HealthCheck(w http.ResponseWriter, r *http.Request)
}

// HealthChecker defines the contract for health check functionality.
type HealthChecker interface {
	// HealthCheck returns the current service status, the data fields for
	// the health endpoint body, and the HTTP status code to serve it with.
	HealthCheck() (status string, data map[string]any, httpStatus int)
}

// Heartbeat defines the contract for the periodic status logger.
type Heartbeat interface {
	// Lifecycle management
	Start() error
	Stop()
}
