// Package dashboard derives the visible records, facet options, statistics
// and chart buckets of the catalog dashboard from records plus filter state.
// Every function here is pure: inputs are never mutated and results are
// recomputed from scratch on each call.
package dashboard

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// fold lower-cases s for case-insensitive comparisons. A Caser keeps state,
// so one is built per call.
func fold(s string) string {
	if s == "" {
		return ""
	}
	return cases.Lower(language.Spanish).String(s)
}

func containsFold(haystack, foldedNeedle string) bool {
	return strings.Contains(fold(haystack), foldedNeedle)
}

// capitalize upper-cases the first rune only: "marzo de 2025" -> "Marzo de 2025".
func capitalize(s string) string {
	r, size := utf8.DecodeRuneInString(s)
	if r == utf8.RuneError {
		return s
	}
	return string(unicode.ToUpper(r)) + s[size:]
}
