package medications

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// removeMarks strips combining diacritical marks after NFD decomposition.
// The transformer value is stateless and safe to share; the chain built
// around it in Fold is not, so each call assembles its own.
var removeMarks = runes.Remove(runes.In(unicode.Mn))

// Normalize produces the comparison form used by the exact match tiers:
// whitespace-trimmed and lowercased. Diacritics are left untouched, so
// "Kåvepenin" normalizes to "kåvepenin", not "kavepenin".
func Normalize(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}

// Fold normalizes and then strips diacritical marks, the comparison form of
// the relaxed substring tier. Folding lets plain-ASCII input match Swedish
// names: "kavepenin" folds equal to "kåvepenin", "jarn" to "järn".
func Fold(s string) string {
	folded, _, err := transform.String(transform.Chain(norm.NFD, removeMarks, norm.NFC), Normalize(s))
	if err != nil {
		// Mark removal cannot fail on valid UTF-8; keep the unfolded form
		// for anything pathological rather than dropping the query.
		return Normalize(s)
	}
	return folded
}
