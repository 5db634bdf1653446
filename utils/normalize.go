package utils

import (
	"strings"
	"unicode"
)

// Normalize strips everything that is not a word character or whitespace,
// lower-cases, and trims. Persian letters count as word characters, so
// normalization never destroys the script the language detector relies on.
// Idempotent: Normalize(Normalize(s)) == Normalize(s).
func Normalize(text string) string {
	var b strings.Builder
	b.Grow(len(text))
	for _, r := range text {
		if unicode.IsLetter(r) || unicode.IsDigit(r) || r == '_' || unicode.IsSpace(r) {
			b.WriteRune(r)
		}
	}
	return strings.TrimSpace(strings.ToLower(b.String()))
}
