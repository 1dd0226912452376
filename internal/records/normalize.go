package records

import (
	"strconv"
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

var stripAccents = transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)

// Digits strips every non-digit rune. Applied symmetrically to stored and
// user-supplied identifiers so formatting (dashes, dots, spaces) never
// causes a false negative on match.
func Digits(s string) string {
	var b strings.Builder
	for _, r := range s {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// FoldKey lowercases and strips accents for case/accent-insensitive
// comparisons (e.g. "Sí" -> "si").
func FoldKey(s string) string {
	folded, _, err := transform.String(stripAccents, strings.ToLower(s))
	if err != nil {
		return strings.ToLower(s)
	}
	return folded
}

// NormSpaces collapses runs of whitespace to single spaces and trims.
func NormSpaces(s string) string {
	return strings.Join(strings.Fields(s), " ")
}

// ParseLenientInt parses an integer out of free-form text, keeping only
// digits and a leading minus. Returns ok=false when nothing parseable
// remains, so an unreadable age contributes no classification signal.
func ParseLenientInt(s string) (int, bool) {
	var b strings.Builder
	for _, r := range s {
		if (r >= '0' && r <= '9') || (r == '-' && b.Len() == 0) {
			b.WriteRune(r)
		}
	}
	n, err := strconv.Atoi(b.String())
	if err != nil {
		return 0, false
	}
	return n, true
}
