package summarize

import (
	"fmt"
	"sort"
	"strings"

	"github.com/hyperifyio/gosummarize/internal/normalize"
)

// positional bonus windows, as fractions of the sentence index range.
const (
	openingWindow = 0.3
	closingWindow = 0.7
	openingBonus  = 1.2
	closingBonus  = 1.1
)

// Extractive selects the sentenceCount highest-scoring sentences by
// average word frequency and re-emits them in document order. When the
// document has no more sentences than requested it is returned
// unchanged (normalized and rejoined).
func (s *Summarizer) Extractive(text string, sentenceCount int) (summary string, err error) {
	defer recoverToError(&err)

	if sentenceCount < 1 {
		return "", fmt.Errorf("sentence count must be at least 1, got %d", sentenceCount)
	}

	cleaned := normalize.Clean(text)
	sents := s.tok.Sentences(cleaned)
	if len(sents) <= sentenceCount {
		return strings.Join(sents, " "), nil
	}

	// Document-wide frequency of qualifying tokens.
	freq := make(map[string]int)
	for _, sent := range sents {
		for _, w := range s.tok.Words(sent) {
			if s.qualifies(w) {
				freq[w]++
			}
		}
	}

	type scored struct {
		idx   int
		score float64
	}
	ranked := make([]scored, 0, len(sents))
	n := float64(len(sents))
	for i, sent := range sents {
		sum, count := 0, 0
		for _, w := range s.tok.Words(sent) {
			if f, ok := freq[w]; ok {
				sum += f
				count++
			}
		}
		if count == 0 {
			// No qualifying tokens; never selected.
			continue
		}
		score := float64(sum) / float64(count)
		// Both windows can apply when the document is very short;
		// the checks are deliberately independent.
		if float64(i) < n*openingWindow {
			score *= openingBonus
		}
		if float64(i) > n*closingWindow {
			score *= closingBonus
		}
		ranked = append(ranked, scored{idx: i, score: score})
	}

	// Highest score first; stable sort keeps document order on ties.
	sort.SliceStable(ranked, func(a, b int) bool {
		return ranked[a].score > ranked[b].score
	})
	if sentenceCount > len(ranked) {
		sentenceCount = len(ranked)
	}

	picked := make([]int, 0, sentenceCount)
	for _, r := range ranked[:sentenceCount] {
		picked = append(picked, r.idx)
	}
	sort.Ints(picked)

	parts := make([]string, 0, len(picked))
	for _, idx := range picked {
		parts = append(parts, sents[idx])
	}
	return strings.Join(parts, " "), nil
}
