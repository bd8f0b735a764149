// Package report renders resolution outcomes as fixed-structure Markdown
// text. It formats what the resolver produced and never re-derives any
// lookup logic of its own.
package report

import (
	"fmt"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/almroth/fasskollen/medications"
)

// disclaimer closes every report. Fixed wording, part of the output contract.
const disclaimer = "*Denna översikt är förenklad egenvårdsinformation och ersätter inte FASS eller hälso- och sjukvårdens bedömning. Kontrollera alltid aktuell information på fass.se.*"

// titleCase renders a canonical key as a Swedish display title. Casers keep
// internal state, so each call builds its own.
func titleCase(key string) string {
	return cases.Title(language.Swedish).String(key)
}

// RenderRecord renders the full report for a resolved record: title, brand
// line, detail block, FASS link and disclaimer footer.
func RenderRecord(rec *medications.Record, searchURL string) string {
	var b strings.Builder

	fmt.Fprintf(&b, "# %s\n\n", titleCase(rec.Key))
	fmt.Fprintf(&b, "**Varumärken:** %s\n\n", strings.Join(rec.Brands, ", "))

	fmt.Fprintf(&b, "- **Användning:** %s\n", rec.Use)
	fmt.Fprintf(&b, "- **Dosering (vuxna):** %s\n", rec.Dose)
	fmt.Fprintf(&b, "- **Recept:** %s\n", rec.OTC)
	fmt.Fprintf(&b, "- **ATC-kod:** %s\n", rec.ATC)
	if rec.Warnings != "" {
		fmt.Fprintf(&b, "- **Varningar:** %s\n", rec.Warnings)
	}
	b.WriteString("\n")

	fmt.Fprintf(&b, "Mer information: %s\n\n", searchURL)
	b.WriteString("---\n")
	b.WriteString(disclaimer)
	b.WriteString("\n")

	return b.String()
}

// RenderNotFound renders the fallback report for a query that matched
// nothing: title quoting the query, a no-match line, the FASS search link
// and the same disclaimer footer.
func RenderNotFound(query string, searchURL string) string {
	var b strings.Builder

	fmt.Fprintf(&b, "# Ingen träff: %q\n\n", query)
	b.WriteString("Ingen post i tabellen matchar sökningen.\n\n")
	fmt.Fprintf(&b, "Sök på FASS: %s\n\n", searchURL)
	b.WriteString("---\n")
	b.WriteString(disclaimer)
	b.WriteString("\n")

	return b.String()
}

// RenderList renders one line per record with key, brands and prescription
// status, in table order. Used by the list flag and the help key listing.
func RenderList(records []medications.Record) string {
	var b strings.Builder
	for _, rec := range records {
		fmt.Fprintf(&b, "%-22s %s [%s]\n", rec.Key, strings.Join(rec.Brands, ", "), rec.OTC)
	}
	return b.String()
}
