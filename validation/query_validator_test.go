package validation

import (
	"strings"
	"testing"
)

func TestNewQueryValidator(t *testing.T) {
	validator := NewQueryValidator()

	if validator == nil {
		t.Fatal("NewQueryValidator returned nil")
	}

	if _, ok := validator.(*QueryValidatorImpl); !ok {
		t.Error("NewQueryValidator should return *QueryValidatorImpl")
	}
}

func TestValidateQuery_Valid(t *testing.T) {
	validator := NewQueryValidator()

	validQueries := []string{
		"alvedon",
		"Alvedon 500mg",
		"paracetamol",
		"Kåvepenin",
		"JÄRN",
		"acetylsalicylsyra + koffein",
		"nässpray",
		"barn's medicin",
		"st. johannesört",
	}

	for _, query := range validQueries {
		t.Run(query, func(t *testing.T) {
			if err := validator.ValidateQuery(query); err != nil {
				t.Errorf("Expected no error for valid query %q, got: %v", query, err)
			}
		})
	}
}

func TestValidateQuery_Empty(t *testing.T) {
	validator := NewQueryValidator()

	emptyQueries := []string{"", "   ", "\t", "\n", "  \t \n "}

	for _, query := range emptyQueries {
		t.Run("empty", func(t *testing.T) {
			err := validator.ValidateQuery(query)
			if err == nil {
				t.Fatal("Expected error for empty query")
			}
			if err.Error() != "query cannot be empty" {
				t.Errorf("Expected empty-query error, got %q", err.Error())
			}
		})
	}
}

func TestValidateQuery_Length(t *testing.T) {
	validator := NewQueryValidator()

	if err := validator.ValidateQuery("ab"); err == nil {
		t.Error("Expected error for a 2-character query")
	}

	long := strings.Repeat("a", 51)
	err := validator.ValidateQuery(long)
	if err == nil {
		t.Fatal("Expected error for a 51-character query")
	}
	if err.Error() != "query too long: maximum 50 characters" {
		t.Errorf("Expected length error, got %q", err.Error())
	}
}

func TestValidateQuery_TooManyWords(t *testing.T) {
	validator := NewQueryValidator()

	err := validator.ValidateQuery("en två tre fyra fem sex sju")
	if err == nil {
		t.Fatal("Expected error for a 7-word query")
	}
	if err.Error() != "query too complex: maximum 6 words allowed" {
		t.Errorf("Expected word-count error, got %q", err.Error())
	}
}

func TestValidateQuery_DangerousPatterns(t *testing.T) {
	validator := NewQueryValidator()

	dangerousQueries := []string{
		"<script>alert('x')</script>",
		"javascript:alert('x')",
		"alvedon' or '1'='1",
		"alvedon; drop table",
		"../../../etc/passwd",
		"$(whoami)",
		"alvedon -- kommentar",
	}

	for _, query := range dangerousQueries {
		t.Run(query, func(t *testing.T) {
			err := validator.ValidateQuery(query)
			if err == nil {
				t.Errorf("Expected error for dangerous query %q", query)
			}
		})
	}
}

func TestValidateQuery_InvalidCharacters(t *testing.T) {
	validator := NewQueryValidator()

	invalidQueries := []string{
		"alvedon@fass",
		"alvedon#500",
		"alvedon%20",
		"alvedon=bra",
		"alvedon?",
		"alvedon!",
		"alvedon/panodil",
		"alvedon(500)",
	}

	for _, query := range invalidQueries {
		t.Run(query, func(t *testing.T) {
			err := validator.ValidateQuery(query)
			if err == nil {
				t.Fatalf("Expected error for invalid characters in %q", query)
			}
			if !strings.Contains(err.Error(), "invalid characters") &&
				!strings.Contains(err.Error(), "dangerous content") {
				t.Errorf("Expected a charset or dangerous-content error, got %q", err.Error())
			}
		})
	}
}

func TestValidateQuery_ExcessiveRepetition(t *testing.T) {
	validator := NewQueryValidator()

	err := validator.ValidateQuery("aaaaaaaaaaaa")
	if err == nil {
		t.Fatal("Expected error for 12 repeated characters")
	}
	if err.Error() != "query contains excessive character repetition" {
		t.Errorf("Expected repetition error, got %q", err.Error())
	}

	// 10 in a row is still allowed.
	if err := validator.ValidateQuery("aaaaaaaaaa"); err != nil {
		t.Errorf("Expected no error for 10 repeated characters, got: %v", err)
	}
}

func TestValidateATC_Valid(t *testing.T) {
	validator := NewQueryValidator()

	testCases := []struct {
		input    string
		expected string
	}{
		{"N02BE01", "N02BE01"},
		{"n02be01", "N02BE01"},
		{" A02BC01 ", "A02BC01"},
	}

	for _, tc := range testCases {
		t.Run(tc.input, func(t *testing.T) {
			canonical, err := validator.ValidateATC(tc.input)
			if err != nil {
				t.Fatalf("Expected no error for %q, got: %v", tc.input, err)
			}
			if canonical != tc.expected {
				t.Errorf("Expected canonical form %q, got %q", tc.expected, canonical)
			}
		})
	}
}

func TestValidateATC_Invalid(t *testing.T) {
	validator := NewQueryValidator()

	invalidCodes := []string{
		"",
		"   ",
		"N02BE",
		"N02BE011",
		"102BE01",
		"N02B E01",
		"N02BEXX",
		"NN2BE01",
		"Z02BE01", // first letter past the A-V anatomical range
		"alvedon",
	}

	for _, code := range invalidCodes {
		t.Run("invalid_"+code, func(t *testing.T) {
			if _, err := validator.ValidateATC(code); err == nil {
				t.Errorf("Expected error for invalid atc code %q", code)
			}
		})
	}
}

func BenchmarkValidateQuery(b *testing.B) {
	validator := NewQueryValidator()

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if err := validator.ValidateQuery("Kåvepenin 800mg"); err != nil {
			b.Logf("Validation failed: %v", err)
		}
	}
}
