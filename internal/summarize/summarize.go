// Package summarize implements the two sentence-selection algorithms:
// frequency-weighted extraction and budgeted keyword selection.
package summarize

import (
	"fmt"
	"unicode"

	"github.com/hyperifyio/gosummarize/internal/stopwords"
	"github.com/hyperifyio/gosummarize/internal/token"
)

// Summarizer runs both algorithms over a shared tokenizer and stopword
// provider. Safe for concurrent use; it holds no mutable state.
type Summarizer struct {
	tok   *token.Tokenizer
	stops stopwords.Provider
}

// New builds a Summarizer. The stopword provider defaults to the one
// matching the tokenizer's mode when nil.
func New(tok *token.Tokenizer, stops stopwords.Provider) *Summarizer {
	if stops == nil {
		stops = stopwords.ForMode(tok.Mode())
	}
	return &Summarizer{tok: tok, stops: stops}
}

// qualifies keeps a token for frequency scoring: alphanumeric, longer
// than two runes, not a stopword.
func (s *Summarizer) qualifies(word string) bool {
	runes := 0
	for _, r := range word {
		if !unicode.IsLetter(r) && !unicode.IsDigit(r) {
			return false
		}
		runes++
	}
	if runes <= 2 {
		return false
	}
	return !s.stops.IsStopword(word)
}

// recoverToError converts a panic inside a summarizer into an error so
// the boundary never raises. Callers receive a describable failure and
// the presentation layer decides how to render it.
func recoverToError(err *error) {
	if r := recover(); r != nil {
		*err = fmt.Errorf("summarization failed: %v", r)
	}
}
