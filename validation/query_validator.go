// Package validation provides input validation for the fasskollen service
// surface. The resolver itself accepts any string; these checks protect the
// HTTP endpoints from junk and abuse before a query reaches it.
package validation

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/almroth/fasskollen/interfaces"
)

// Pre-compiled regex patterns, compiled once at package initialization.
var (
	// Query validation: alphanumeric + Swedish letters + safe punctuation
	queryRegex = regexp.MustCompile(`^[a-zA-Z0-9\s\-\.\+'åäöÅÄÖéÉ]+$`)

	// ATC codes are a fixed seven-character shape: anatomical group letter
	// (A-V), two digits, two letters, two digits. Group membership is not
	// checked against any authority, only the shape.
	atcRegex = regexp.MustCompile(`^[A-V]\d{2}[A-Z]{2}\d{2}$`)

	// Hostile substrings, checked lowercased before the charset regex so
	// the rejection reason stays specific. Plain strings.Contains beats a
	// combined regex here by a wide margin.
	dangerousPatterns = []string{
		// Script and markup injection
		"<script", "</script>", "javascript:", "vbscript:",
		"onload=", "onerror=", "onclick=", "onmouseover=",
		"onfocus=", "onblur=", "onchange=", "onsubmit=",
		"eval(", "expression(", "url(", "import ", "@import",
		"binding(", "behavior(",
		// SQL
		"' or ", "\" or ", "union select", "drop table",
		"delete from", "insert into", "update set",
		"--", "/*", "*/", "xp_", "sp_", "exec(", "execute(",
		// Shell metacharacters
		"; ", "| ", "& ", "`", "$(", "${",
		// Path traversal and local files
		"../", "..\\", "%2e%2e", "file://",
	}
)

// QueryValidatorImpl implements the interfaces.QueryValidator interface
type QueryValidatorImpl struct{}

// NewQueryValidator creates a new query validator
func NewQueryValidator() interfaces.QueryValidator {
	return &QueryValidatorImpl{}
}

// ValidateQuery checks a free-text medication name before resolution.
func (v *QueryValidatorImpl) ValidateQuery(input string) error {
	if strings.TrimSpace(input) == "" {
		return fmt.Errorf("query cannot be empty")
	}

	if len(input) < 3 {
		return fmt.Errorf("query too short: minimum 3 characters")
	}

	if len(input) > 50 {
		return fmt.Errorf("query too long: maximum 50 characters")
	}

	// Word count cap keeps pathological many-word queries away from the
	// substring scan.
	words := strings.Fields(input)
	if len(words) > 6 {
		return fmt.Errorf("query too complex: maximum 6 words allowed")
	}

	lower := strings.ToLower(input)
	for _, pattern := range dangerousPatterns {
		if strings.Contains(lower, pattern) {
			return fmt.Errorf("query contains potentially dangerous content")
		}
	}

	if !queryRegex.MatchString(input) {
		return fmt.Errorf("query contains invalid characters. Only letters, numbers, spaces, hyphens, apostrophes, periods, plus sign, and Swedish letters are allowed")
	}

	if v.hasExcessiveRepetition(input) {
		return fmt.Errorf("query contains excessive character repetition")
	}

	return nil
}

// ValidateATC checks the shape of an ATC classification code and returns
// its canonical uppercase form.
func (v *QueryValidatorImpl) ValidateATC(input string) (string, error) {
	trimmed := strings.TrimSpace(input)
	if trimmed == "" {
		return "", fmt.Errorf("atc code cannot be empty")
	}

	canonical := strings.ToUpper(trimmed)
	if !atcRegex.MatchString(canonical) {
		return "", fmt.Errorf("invalid atc code format: expected letter, two digits, two letters, two digits")
	}

	return canonical, nil
}

// maxRun is the longest accepted run of one repeated byte. No real product
// name comes close; keyboard mashing does.
const maxRun = 10

// hasExcessiveRepetition reports whether any byte repeats more than maxRun
// times in a row.
func (v *QueryValidatorImpl) hasExcessiveRepetition(input string) bool {
	run := 1
	for i := 1; i < len(input); i++ {
		if input[i] != input[i-1] {
			run = 1
			continue
		}
		run++
		if run > maxRun {
			return true
		}
	}
	return false
}
