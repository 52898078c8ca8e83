// Package textstat derives display statistics from document and
// summary text using cheap, deterministic heuristics.
package textstat

import (
	"strings"
	"unicode/utf8"
)

// readingWordsPerMinute is the assumed average reading speed.
const readingWordsPerMinute = 200

// Words counts whitespace-separated fields. This is the raw word count
// used for budget accounting, deliberately independent of tokenizer
// mode; display statistics use the tokenizer's own counts instead.
func Words(text string) int {
	return len(strings.Fields(text))
}

// Chars counts runes.
func Chars(text string) int {
	return utf8.RuneCountInString(text)
}

// ReadingMinutes estimates reading time for a word count, never less
// than one minute.
func ReadingMinutes(words int) int {
	m := words / readingWordsPerMinute
	if m < 1 {
		m = 1
	}
	return m
}

// CompressionPercent reports how much shorter the summary is than the
// original, as a percentage. Zero original words yields zero.
func CompressionPercent(originalWords, summaryWords int) float64 {
	if originalWords <= 0 {
		return 0
	}
	return (1 - float64(summaryWords)/float64(originalWords)) * 100
}
