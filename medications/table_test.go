package medications

import (
	"strings"
	"testing"
)

func validTestRecords() []Record {
	return []Record{
		{
			Key:    "paracetamol",
			Brands: []string{"Alvedon", "Panodil"},
			Use:    "Smärtstillande och febernedsättande.",
			Dose:   "500–1000 mg var 4–6 timme.",
			OTC:    OTCStatus{Kind: OTCYes},
			ATC:    "N02BE01",
		},
		{
			Key:    "omeprazol",
			Brands: []string{"Losec"},
			Use:    "Protonpumpshämmare mot halsbränna.",
			Dose:   "20 mg en gång dagligen.",
			OTC:    OTCStatus{Kind: OTCConditional, Note: "Receptfritt för korttidsbehandling."},
			ATC:    "A02BC01",
		},
	}
}

func TestNewTable_Valid(t *testing.T) {
	table, err := NewTable(validTestRecords())
	if err != nil {
		t.Fatalf("Expected no error for valid records, got: %v", err)
	}

	if table.Len() != 2 {
		t.Errorf("Expected 2 records, got %d", table.Len())
	}
	if table.BrandCount() != 3 {
		t.Errorf("Expected 3 brands, got %d", table.BrandCount())
	}
	if table.Fingerprint() == "" {
		t.Error("Expected a non-empty fingerprint")
	}
}

func TestNewTable_InvalidRecords(t *testing.T) {
	testCases := []struct {
		name          string
		mutate        func([]Record) []Record
		expectedError string
	}{
		{
			name:          "empty key",
			mutate:        func(r []Record) []Record { r[0].Key = ""; return r },
			expectedError: "empty key",
		},
		{
			name:          "uppercase key",
			mutate:        func(r []Record) []Record { r[0].Key = "Paracetamol"; return r },
			expectedError: "key must be lowercase and trimmed",
		},
		{
			name:          "padded key",
			mutate:        func(r []Record) []Record { r[0].Key = " paracetamol"; return r },
			expectedError: "key must be lowercase and trimmed",
		},
		{
			name:          "duplicate key",
			mutate:        func(r []Record) []Record { r[1].Key = "paracetamol"; return r },
			expectedError: "duplicate key",
		},
		{
			name:          "missing use text",
			mutate:        func(r []Record) []Record { r[0].Use = ""; return r },
			expectedError: "missing use or dose text",
		},
		{
			name:          "missing dose text",
			mutate:        func(r []Record) []Record { r[1].Dose = ""; return r },
			expectedError: "missing use or dose text",
		},
		{
			name:          "missing atc code",
			mutate:        func(r []Record) []Record { r[0].ATC = ""; return r },
			expectedError: "missing atc code",
		},
		{
			name: "conditional status without note",
			mutate: func(r []Record) []Record {
				r[1].OTC = OTCStatus{Kind: OTCConditional}
				return r
			},
			expectedError: "conditional otc status without note",
		},
		{
			name:          "empty brand name",
			mutate:        func(r []Record) []Record { r[0].Brands = []string{"Alvedon", "  "}; return r },
			expectedError: "empty brand name",
		},
		{
			name:          "brand owned by two records",
			mutate:        func(r []Record) []Record { r[1].Brands = []string{"alvedon"}; return r },
			expectedError: "already belongs to",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := NewTable(tc.mutate(validTestRecords()))
			if err == nil {
				t.Fatal("Expected an error, got nil")
			}
			if !strings.Contains(err.Error(), tc.expectedError) {
				t.Errorf("Expected error containing %q, got %q", tc.expectedError, err.Error())
			}
		})
	}
}

func TestNewTable_DoesNotAliasInput(t *testing.T) {
	records := validTestRecords()
	table, err := NewTable(records)
	if err != nil {
		t.Fatalf("Expected no error, got: %v", err)
	}

	records[0].Key = "mutated"

	if _, ok := table.Lookup("paracetamol"); !ok {
		t.Error("Mutating the input slice must not affect the built table")
	}
}

func TestMustNewTable_PanicsOnInvalidData(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("Expected MustNewTable to panic on invalid records")
		}
	}()

	records := validTestRecords()
	records[0].Key = "NOT-CANONICAL"
	MustNewTable(records)
}

func TestTableKeys(t *testing.T) {
	table, err := NewTable(validTestRecords())
	if err != nil {
		t.Fatalf("Expected no error, got: %v", err)
	}

	keys := table.Keys()
	if len(keys) != 2 || keys[0] != "paracetamol" || keys[1] != "omeprazol" {
		t.Errorf("Expected keys in table order, got %v", keys)
	}
}

func TestFingerprint_StableAndContentSensitive(t *testing.T) {
	first, err := NewTable(validTestRecords())
	if err != nil {
		t.Fatalf("Expected no error, got: %v", err)
	}
	second, err := NewTable(validTestRecords())
	if err != nil {
		t.Fatalf("Expected no error, got: %v", err)
	}

	if first.Fingerprint() != second.Fingerprint() {
		t.Error("Identical content must produce identical fingerprints")
	}

	changed := validTestRecords()
	changed[0].Dose = "650 mg var 4–6 timme."
	third, err := NewTable(changed)
	if err != nil {
		t.Fatalf("Expected no error, got: %v", err)
	}

	if first.Fingerprint() == third.Fingerprint() {
		t.Error("Changed content must change the fingerprint")
	}
}

// ============================================================================
// COMPILED-IN TABLE INTEGRITY
// ============================================================================

func TestDefaultTable_Builds(t *testing.T) {
	table := Default()

	if table.Len() < 50 {
		t.Errorf("Expected the curated table to hold at least 50 records, got %d", table.Len())
	}
	if table.BrandCount() <= table.Len() {
		t.Errorf("Expected more brands than records, got %d brands for %d records",
			table.BrandCount(), table.Len())
	}
}

func TestDefaultTable_KeysAreCanonicalAndSorted(t *testing.T) {
	keys := Default().Keys()

	for i, key := range keys {
		if key != Normalize(key) {
			t.Errorf("Key %q is not canonical", key)
		}
		if i > 0 && keys[i-1] >= key {
			t.Errorf("Keys must be strictly ascending, got %q before %q", keys[i-1], key)
		}
	}
}

func TestDefaultTable_EveryRecordComplete(t *testing.T) {
	for _, rec := range Default().Records() {
		t.Run(rec.Key, func(t *testing.T) {
			if len(rec.Brands) == 0 {
				t.Error("Expected at least one brand")
			}
			if rec.Use == "" || rec.Dose == "" {
				t.Error("Expected use and dose text")
			}
			if rec.Warnings == "" {
				t.Error("Expected warnings text for every curated record")
			}
			if len(rec.ATC) != 7 {
				t.Errorf("Expected a 7-character ATC code, got %q", rec.ATC)
			}
		})
	}
}
