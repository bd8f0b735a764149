// Package medications holds the compiled-in Swedish medication table and the
// resolver that maps free-text names onto it. The table is constant for the
// process lifetime; every operation is a pure read.
package medications

import (
	"encoding/json"
	"fmt"
)

// OTCKind classifies the prescription status of a record.
type OTCKind int

const (
	// OTCNo marks prescription-only medications. It is the zero value, so
	// an uninitialized status never claims a medication is sold freely.
	OTCNo OTCKind = iota
	// OTCYes marks medications sold over the counter without restrictions.
	OTCYes
	// OTCConditional marks medications sold over the counter only under the
	// conditions described in the note (age limits, pack sizes, strengths).
	OTCConditional
)

// OTCStatus is the tri-state prescription status of a medication.
// Conditional statuses carry the condition text in Note; Yes and No leave
// it empty.
type OTCStatus struct {
	Kind OTCKind
	Note string
}

// MarshalJSON encodes the status the way the source data writes it: plain
// true or false for the unconditional kinds, the condition text for
// conditional ones.
func (s OTCStatus) MarshalJSON() ([]byte, error) {
	switch s.Kind {
	case OTCYes:
		return []byte("true"), nil
	case OTCNo:
		return []byte("false"), nil
	case OTCConditional:
		return json.Marshal(s.Note)
	default:
		return nil, fmt.Errorf("unknown otc kind: %d", s.Kind)
	}
}

// UnmarshalJSON accepts the same heterogeneous form: a JSON bool or a
// non-empty condition string.
func (s *OTCStatus) UnmarshalJSON(data []byte) error {
	// Unmarshaling null into a bool is a silent no-op, so reject it before
	// it can masquerade as prescription-only.
	if string(data) == "null" {
		return fmt.Errorf("otc status cannot be null")
	}

	var b bool
	if err := json.Unmarshal(data, &b); err == nil {
		if b {
			*s = OTCStatus{Kind: OTCYes}
		} else {
			*s = OTCStatus{Kind: OTCNo}
		}
		return nil
	}

	var note string
	if err := json.Unmarshal(data, &note); err != nil {
		return fmt.Errorf("otc status must be a bool or a string: %w", err)
	}
	if note == "" {
		return fmt.Errorf("conditional otc status requires a non-empty note")
	}
	*s = OTCStatus{Kind: OTCConditional, Note: note}
	return nil
}

// String renders the Swedish display text used by the report.
func (s OTCStatus) String() string {
	switch s.Kind {
	case OTCYes:
		return "Receptfritt"
	case OTCConditional:
		return s.Note
	default:
		return "Receptbelagt"
	}
}

// MatchTier identifies which resolution tier produced a match.
type MatchTier int

const (
	TierNone MatchTier = iota
	TierKey
	TierBrand
	TierSubstring
)

// String returns the wire name of the tier, also used as a metric label.
func (t MatchTier) String() string {
	switch t {
	case TierKey:
		return "key"
	case TierBrand:
		return "brand"
	case TierSubstring:
		return "substring"
	default:
		return "none"
	}
}

// MarshalText makes tiers encode as their wire names in JSON envelopes.
func (t MatchTier) MarshalText() ([]byte, error) {
	return []byte(t.String()), nil
}

// Record is one curated medication entry. Key is the canonical substance
// name, always lowercase and unique within the table. Brands preserves the
// curated display order. Use, Dose and Warnings are display-only free text;
// ATC is the classification code as published, not validated against any
// authority.
type Record struct {
	Key      string    `json:"key"`
	Brands   []string  `json:"brands"`
	Use      string    `json:"use"`
	Dose     string    `json:"dose"`
	OTC      OTCStatus `json:"otc"`
	Warnings string    `json:"warnings,omitempty"`
	ATC      string    `json:"atc"`
}
