package summarize

import (
	"fmt"
	"sort"
	"strings"

	"github.com/hyperifyio/gosummarize/internal/normalize"
	"github.com/hyperifyio/gosummarize/internal/textstat"
)

const (
	// importantWordLimit caps the keyword set used to score sentences.
	importantWordLimit = 30

	// Candidate sentences must have a raw word count in this range.
	minCandidateWords = 5
	maxCandidateWords = 50

	// truncateFillRatio and truncateMinRemaining gate the truncation
	// fallback once the next sentence would overflow the budget.
	truncateFillRatio    = 0.8
	truncateMinRemaining = 10

	ellipsis = "..."
)

// Budgeted assembles a summary under a word-count ceiling by greedily
// taking sentences in keyword-density order, possibly truncating the
// final one. Output sentences stay in selection order, not document
// order. A document already within the budget is returned unchanged
// (normalized).
func (s *Summarizer) Budgeted(text string, targetWords int) (summary string, err error) {
	defer recoverToError(&err)

	if targetWords < 1 {
		return "", fmt.Errorf("target word count must be at least 1, got %d", targetWords)
	}

	cleaned := normalize.Clean(text)
	if textstat.Words(cleaned) <= targetWords {
		return cleaned, nil
	}

	important := s.importantWords(cleaned)
	sents := s.tok.Sentences(cleaned)

	type candidate struct {
		text   string
		score  float64
		length int
	}
	candidates := make([]candidate, 0, len(sents))
	for _, sent := range sents {
		distinct := make(map[string]struct{})
		for _, w := range s.tok.Words(sent) {
			distinct[w] = struct{}{}
		}
		overlap := 0
		for w := range distinct {
			if _, ok := important[w]; ok {
				overlap++
			}
		}
		length := textstat.Words(sent)
		if length < minCandidateWords || length > maxCandidateWords || overlap == 0 {
			continue
		}
		candidates = append(candidates, candidate{
			text:   sent,
			score:  float64(overlap) / float64(length),
			length: length,
		})
	}

	// Density descending; stable sort keeps document order on ties.
	sort.SliceStable(candidates, func(a, b int) bool {
		return candidates[a].score > candidates[b].score
	})

	var parts []string
	total := 0
	for _, c := range candidates {
		if total+c.length <= targetWords {
			parts = append(parts, c.text)
			total += c.length
			continue
		}
		remaining := targetWords - total
		if float64(total) < float64(targetWords)*truncateFillRatio && remaining >= truncateMinRemaining {
			words := strings.Fields(c.text)
			parts = append(parts, strings.Join(words[:remaining-1], " ")+ellipsis)
		}
		break
	}
	return strings.Join(parts, " "), nil
}

// importantWords returns the most frequent qualifying tokens of the
// whole document. Ties between equal counts resolve by first
// occurrence, which keeps selection deterministic.
func (s *Summarizer) importantWords(cleaned string) map[string]struct{} {
	counts := make(map[string]int)
	var order []string
	for _, w := range s.tok.Words(cleaned) {
		if !s.qualifies(w) {
			continue
		}
		if _, seen := counts[w]; !seen {
			order = append(order, w)
		}
		counts[w]++
	}
	sort.SliceStable(order, func(a, b int) bool {
		return counts[order[a]] > counts[order[b]]
	})
	limit := importantWordLimit
	if limit > len(order) {
		limit = len(order)
	}
	important := make(map[string]struct{}, limit)
	for _, w := range order[:limit] {
		important[w] = struct{}{}
	}
	return important
}
