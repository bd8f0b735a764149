// Package data provides the process-wide read view of the medication table.
// The table is compiled in and never changes, so the catalog is a plain
// immutable snapshot: no atomics or locking are needed for concurrent reads.
package data

import (
	"time"

	"github.com/almroth/fasskollen/interfaces"
	"github.com/almroth/fasskollen/medications"
)

// Compile-time check to ensure Catalog implements interfaces.Catalog
var _ interfaces.Catalog = (*Catalog)(nil)

// Catalog wraps the immutable table together with process metadata used by
// health reporting and HTTP caching.
type Catalog struct {
	table           *medications.Table
	builtAt         time.Time
	serverStartTime time.Time
}

// NewCatalog creates a catalog over the given table, stamping both the
// build time and the server start time with the current time.
func NewCatalog(table *medications.Table) *Catalog {
	now := time.Now()
	return &Catalog{
		table:           table,
		builtAt:         now,
		serverStartTime: now,
	}
}

// NewDefaultCatalog creates a catalog over the compiled-in table.
func NewDefaultCatalog() *Catalog {
	return NewCatalog(medications.Default())
}

// Table returns the full medication table.
func (c *Catalog) Table() *medications.Table {
	return c.table
}

// Records returns every record in curated order.
func (c *Catalog) Records() []medications.Record {
	return c.table.Records()
}

// Resolve maps a free-text name onto a record via the tiered matcher.
func (c *Catalog) Resolve(query string) (*medications.Record, medications.MatchTier, bool) {
	return c.table.Resolve(query)
}

// Fingerprint returns the stable content hash of the data set.
func (c *Catalog) Fingerprint() string {
	return c.table.Fingerprint()
}

// BuiltAt returns when the table was assembled in this process.
func (c *Catalog) BuiltAt() time.Time {
	return c.builtAt
}

// ServerStartTime returns when the process started serving.
func (c *Catalog) ServerStartTime() time.Time {
	return c.serverStartTime
}
