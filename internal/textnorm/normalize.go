// Package textnorm canonicalizes free text so Vietnamese and English
// catalog names can be compared regardless of case, diacritics, and
// punctuation.
package textnorm

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// Normalize lower-cases the input, decomposes it (NFD) and strips
// combining marks, drops every rune that is neither a word character
// nor whitespace, and collapses runs of whitespace into single spaces.
// It is total: any input, including the empty string, yields a valid
// (possibly empty) result.
func Normalize(s string) string {
	s = strings.ToLower(s)

	// NFD splits precomposed characters into base rune + combining
	// marks so the marks can be removed ("Sơn Tùng" -> "son tung").
	stripper := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)))
	if stripped, _, err := transform.String(stripper, s); err == nil {
		s = stripped
	}

	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		switch {
		case unicode.IsLetter(r) || unicode.IsDigit(r) || r == '_':
			b.WriteRune(r)
		case unicode.IsSpace(r):
			b.WriteRune(' ')
		}
	}

	return strings.Join(strings.Fields(b.String()), " ")
}
