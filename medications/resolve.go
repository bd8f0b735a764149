package medications

import "strings"

// Lookup returns the record whose canonical key equals key exactly. The
// argument is expected in canonical form already; callers resolving user
// input should go through Resolve or normalize first.
func (t *Table) Lookup(key string) (*Record, bool) {
	i, ok := t.byKey[key]
	if !ok {
		return nil, false
	}
	return &t.records[i], true
}

// Resolve finds the record for a free-text medication name. Matching runs
// in three tiers, each completed across the whole table before relaxing to
// the next: exact canonical key, exact brand name, then substring
// containment of the query in a key or brand with diacritics folded. Ties
// within a tier go to the earliest record in table order.
//
// The boolean reports whether anything matched. A miss is a normal outcome,
// not an error; callers fall back to a FASS search link.
func (t *Table) Resolve(query string) (*Record, MatchTier, bool) {
	normalized := Normalize(query)
	if normalized == "" {
		return nil, TierNone, false
	}

	if i, ok := t.byKey[normalized]; ok {
		return &t.records[i], TierKey, true
	}

	if i, ok := t.byBrand[normalized]; ok {
		return &t.records[i], TierBrand, true
	}

	// An empty folded query would be contained in everything.
	folded := Fold(query)
	if folded == "" {
		return nil, TierNone, false
	}
	for i := range t.folded {
		if t.containsFolded(i, folded) {
			return &t.records[i], TierSubstring, true
		}
	}

	return nil, TierNone, false
}

// ByATC returns every record carrying the given ATC code, compared
// case-insensitively, in table order.
func (t *Table) ByATC(code string) []Record {
	trimmed := strings.TrimSpace(code)
	if trimmed == "" {
		return nil
	}
	var matches []Record
	for _, rec := range t.records {
		if strings.EqualFold(rec.ATC, trimmed) {
			matches = append(matches, rec)
		}
	}
	return matches
}

func (t *Table) containsFolded(i int, folded string) bool {
	if strings.Contains(t.folded[i].key, folded) {
		return true
	}
	for _, brand := range t.folded[i].brands {
		if strings.Contains(brand, folded) {
			return true
		}
	}
	return false
}
