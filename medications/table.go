package medications

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"strings"
)

// Table is an immutable, ordered collection of medication records with
// case-insensitive key and brand indexes. Build it once with NewTable;
// every method is a pure read and safe for concurrent use.
type Table struct {
	records     []Record
	byKey       map[string]int
	byBrand     map[string]int
	folded      []foldedEntry
	fingerprint string
}

// foldedEntry caches the diacritic-folded comparison forms of one record,
// computed at build time so the substring tier never re-folds table data.
type foldedEntry struct {
	key    string
	brands []string
}

// NewTable builds an indexed table from records, validating the invariants
// the resolver relies on: canonical lowercase keys, unique keys, non-empty
// globally unique brand names, complete display text.
func NewTable(records []Record) (*Table, error) {
	t := &Table{
		records: make([]Record, len(records)),
		byKey:   make(map[string]int, len(records)),
		byBrand: make(map[string]int),
		folded:  make([]foldedEntry, len(records)),
	}
	copy(t.records, records)

	for i, rec := range t.records {
		if rec.Key == "" {
			return nil, fmt.Errorf("record %d: empty key", i)
		}
		if rec.Key != Normalize(rec.Key) {
			return nil, fmt.Errorf("record %q: key must be lowercase and trimmed", rec.Key)
		}
		if _, dup := t.byKey[rec.Key]; dup {
			return nil, fmt.Errorf("record %q: duplicate key", rec.Key)
		}
		if rec.Use == "" || rec.Dose == "" {
			return nil, fmt.Errorf("record %q: missing use or dose text", rec.Key)
		}
		if rec.ATC == "" {
			return nil, fmt.Errorf("record %q: missing atc code", rec.Key)
		}
		if rec.OTC.Kind == OTCConditional && rec.OTC.Note == "" {
			return nil, fmt.Errorf("record %q: conditional otc status without note", rec.Key)
		}
		t.byKey[rec.Key] = i

		entry := foldedEntry{key: Fold(rec.Key), brands: make([]string, len(rec.Brands))}
		for j, brand := range rec.Brands {
			normalized := Normalize(brand)
			if normalized == "" {
				return nil, fmt.Errorf("record %q: empty brand name", rec.Key)
			}
			if prev, dup := t.byBrand[normalized]; dup {
				return nil, fmt.Errorf("record %q: brand %q already belongs to %q",
					rec.Key, brand, t.records[prev].Key)
			}
			t.byBrand[normalized] = i
			entry.brands[j] = Fold(brand)
		}
		t.folded[i] = entry
	}

	t.fingerprint = fingerprintRecords(t.records)
	return t, nil
}

// MustNewTable is NewTable for compiled-in data, where a validation failure
// is a programming error caught at process start.
func MustNewTable(records []Record) *Table {
	t, err := NewTable(records)
	if err != nil {
		panic(fmt.Sprintf("medications: invalid table: %v", err))
	}
	return t
}

// Records returns every record in curated order. The returned slice is
// shared; callers must treat it as read-only.
func (t *Table) Records() []Record {
	return t.records
}

// Keys returns every canonical key in table order.
func (t *Table) Keys() []string {
	keys := make([]string, len(t.records))
	for i, rec := range t.records {
		keys[i] = rec.Key
	}
	return keys
}

// BrandCount returns the total number of brand names across all records.
func (t *Table) BrandCount() int {
	return len(t.byBrand)
}

// Len returns the number of records.
func (t *Table) Len() int {
	return len(t.records)
}

// Fingerprint returns a short stable hash of the table contents, used as
// the data version by HTTP caching and health reporting.
func (t *Table) Fingerprint() string {
	return t.fingerprint
}

func fingerprintRecords(records []Record) string {
	h := sha256.New()
	for _, rec := range records {
		fmt.Fprintf(h, "%s|%s|%s|%s|%s|%s|%s\n",
			rec.Key, strings.Join(rec.Brands, ","), rec.Use, rec.Dose,
			rec.OTC, rec.Warnings, rec.ATC)
	}
	return hex.EncodeToString(h.Sum(nil))[:16]
}
