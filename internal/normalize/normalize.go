// Package normalize prepares raw extracted text for tokenization.
package normalize

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// foldMarks decomposes characters and strips combining marks so that
// accented input survives the safe-charset filter as plain letters.
var foldMarks = transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)

// Clean collapses whitespace runs to single spaces, folds diacritics,
// and drops every character outside the safe set of alphanumerics,
// spaces and basic punctuation. The result carries no leading or
// trailing whitespace. Clean is idempotent.
func Clean(text string) string {
	if folded, _, err := transform.String(foldMarks, text); err == nil {
		text = folded
	}

	var b strings.Builder
	b.Grow(len(text))
	pendingSpace := false
	for _, r := range text {
		if unicode.IsSpace(r) {
			pendingSpace = true
			continue
		}
		if !safeRune(r) {
			continue
		}
		if pendingSpace && b.Len() > 0 {
			b.WriteByte(' ')
		}
		pendingSpace = false
		b.WriteRune(r)
	}
	return b.String()
}

func safeRune(r rune) bool {
	if unicode.IsLetter(r) || unicode.IsDigit(r) {
		return true
	}
	switch r {
	case '.', ',', '!', '?', ';', ':', '-', '(', ')':
		return true
	}
	return false
}
