package util

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// combiningDiacritics is the Combining Diacritical Marks block (U+0300..U+036F).
var combiningDiacritics = &unicode.RangeTable{
	R16: []unicode.Range16{{Lo: 0x0300, Hi: 0x036f, Stride: 1}},
}

// NormalizeSearchText lowercases and trims s, then strips combining
// diacritical marks after canonical decomposition ("São Paulo" -> "sao paulo").
func NormalizeSearchText(s string) string {
	s = strings.TrimSpace(strings.ToLower(s))
	if s == "" {
		return ""
	}
	stripped, _, err := transform.String(transform.Chain(norm.NFD, runes.Remove(runes.In(combiningDiacritics))), s)
	if err != nil {
		return s
	}
	return stripped
}

// ContainsFold reports whether needle, already normalized, occurs in the
// normalized form of haystack.
func ContainsFold(haystack, needle string) bool {
	return strings.Contains(NormalizeSearchText(haystack), needle)
}
