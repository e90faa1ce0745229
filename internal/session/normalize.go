package session

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// normalizeText prepares free-text answers for comparison: Unicode NFD
// decomposition, combining-mark removal, whitespace trim, lowercase.
// Applied identically to the submission and the canonical answer.
func normalizeText(s string) string {
	strip := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)))
	out, _, err := transform.String(strip, s)
	if err != nil {
		out = s
	}
	return strings.ToLower(strings.TrimSpace(out))
}
