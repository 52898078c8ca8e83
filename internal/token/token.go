// Package token splits document text into sentences and word tokens.
//
// Two modes exist: a linguistic mode backed by a punkt-trained sentence
// boundary detector, and a simple regex mode that is always available.
// The mode is fixed when a Tokenizer is constructed; a runtime failure
// on the linguistic path falls back to the simple result for that call
// only and is never surfaced to the caller.
package token

import (
	"regexp"
	"strings"

	"gopkg.in/neurosnap/sentences.v1"
	"gopkg.in/neurosnap/sentences.v1/english"
)

// Mode identifies which boundary detection backend a Tokenizer uses.
type Mode string

const (
	ModeLinguistic Mode = "linguistic"
	ModeSimple     Mode = "simple"
)

// minSentenceChars is the shortest trimmed fragment the simple splitter
// keeps. Shorter fragments are almost always abbreviation debris.
const minSentenceChars = 10

var (
	// sentenceBoundary marks a split point: terminal punctuation,
	// whitespace, then an uppercase letter opening the next sentence.
	sentenceBoundary = regexp.MustCompile(`[.!?]\s+[A-Z]`)

	// simpleWord matches runs of two or more ASCII letters.
	simpleWord = regexp.MustCompile(`\b[a-zA-Z]{2,}\b`)

	// richWord additionally admits non-ASCII letters and internal
	// apostrophes, so contractions survive as single tokens.
	richWord = regexp.MustCompile(`\p{L}+(?:['’]\p{L}+)*`)
)

// Tokenizer provides sentence and word segmentation in a fixed mode.
type Tokenizer struct {
	mode Mode
	sent *sentences.DefaultSentenceTokenizer
}

// New builds a Tokenizer, preferring the linguistic backend. When the
// backend cannot be initialised the Tokenizer downgrades to simple mode
// for its whole lifetime.
func New() *Tokenizer {
	st, err := english.NewSentenceTokenizer(nil)
	if err != nil || st == nil {
		return &Tokenizer{mode: ModeSimple}
	}
	return &Tokenizer{mode: ModeLinguistic, sent: st}
}

// NewSimple builds a Tokenizer locked to simple mode, regardless of
// backend availability. Useful for deterministic tests and the
// -simple flag.
func NewSimple() *Tokenizer {
	return &Tokenizer{mode: ModeSimple}
}

// Mode reports which backend this Tokenizer runs on.
func (t *Tokenizer) Mode() Mode {
	return t.mode
}

// Sentences splits text into sentence strings.
func (t *Tokenizer) Sentences(text string) []string {
	if t.mode == ModeLinguistic {
		if out, ok := t.linguisticSentences(text); ok {
			return out
		}
	}
	return simpleSentences(text)
}

// Words splits text into lowercase word tokens.
func (t *Tokenizer) Words(text string) []string {
	if t.mode == ModeLinguistic {
		if out, ok := richWords(text); ok {
			return out
		}
	}
	return simpleWord.FindAllString(strings.ToLower(text), -1)
}

// SentenceCount reports how many sentences text tokenizes into.
func (t *Tokenizer) SentenceCount(text string) int {
	return len(t.Sentences(text))
}

// WordCount reports how many word tokens text tokenizes into.
func (t *Tokenizer) WordCount(text string) int {
	return len(t.Words(text))
}

func (t *Tokenizer) linguisticSentences(text string) (out []string, ok bool) {
	defer func() {
		if recover() != nil {
			out, ok = nil, false
		}
	}()
	for _, s := range t.sent.Tokenize(text) {
		if trimmed := strings.TrimSpace(s.Text); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out, true
}

func richWords(text string) (out []string, ok bool) {
	defer func() {
		if recover() != nil {
			out, ok = nil, false
		}
	}()
	out = richWord.FindAllString(strings.ToLower(text), -1)
	return out, true
}

// simpleSentences splits on whitespace that follows terminal
// punctuation and precedes an uppercase letter, discarding fragments of
// ten characters or fewer.
func simpleSentences(text string) []string {
	var out []string
	start := 0
	for _, m := range sentenceBoundary.FindAllStringIndex(text, -1) {
		// The match covers "<punct><spaces><upper>". The fragment ends
		// just after the punctuation; the next one starts at the
		// uppercase letter.
		end := m[0] + 1
		appendFragment(&out, text[start:end])
		start = m[1] - 1
	}
	appendFragment(&out, text[start:])
	return out
}

func appendFragment(out *[]string, frag string) {
	frag = strings.TrimSpace(frag)
	if len(frag) > minSentenceChars {
		*out = append(*out, frag)
	}
}
