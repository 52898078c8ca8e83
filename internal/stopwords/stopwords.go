// Package stopwords answers whether a word is a common English
// function word that should be excluded from relevance scoring.
package stopwords

import (
	snowball "github.com/kljensen/snowball/english"

	"github.com/hyperifyio/gosummarize/internal/token"
)

// Provider reports stopword membership. Implementations never fail and
// are always backed by a non-empty word list.
type Provider interface {
	IsStopword(word string) bool
}

// ForMode returns the provider matching a tokenizer mode: the snowball
// English corpus in linguistic mode, the built-in list otherwise.
func ForMode(mode token.Mode) Provider {
	if mode == token.ModeLinguistic {
		return Corpus{}
	}
	return Basic{}
}

// Corpus delegates to the snowball English stopword list.
type Corpus struct{}

func (Corpus) IsStopword(word string) bool {
	return snowball.IsStopWord(word)
}

// Basic answers from the built-in fallback list.
type Basic struct{}

func (Basic) IsStopword(word string) bool {
	_, ok := basicSet[word]
	return ok
}

// Builtin returns a copy of the fallback stopword set.
func Builtin() map[string]struct{} {
	out := make(map[string]struct{}, len(basicSet))
	for w := range basicSet {
		out[w] = struct{}{}
	}
	return out
}

var basicSet = makeSet(
	"i", "me", "my", "myself", "we", "our", "ours", "ourselves", "you", "your", "yours",
	"yourself", "yourselves", "he", "him", "his", "himself", "she", "her", "hers",
	"herself", "it", "its", "itself", "they", "them", "their", "theirs", "themselves",
	"what", "which", "who", "whom", "this", "that", "these", "those", "am", "is", "are",
	"was", "were", "be", "been", "being", "have", "has", "had", "having", "do", "does",
	"did", "doing", "a", "an", "the", "and", "but", "if", "or", "because", "as", "until",
	"while", "of", "at", "by", "for", "with", "through", "during", "before", "after",
	"above", "below", "up", "down", "in", "out", "on", "off", "over", "under", "again",
	"further", "then", "once", "here", "there", "when", "where", "why", "how", "all",
	"any", "both", "each", "few", "more", "most", "other", "some", "such", "no", "nor",
	"not", "only", "own", "same", "so", "than", "too", "very", "can", "will", "just",
	"should", "now", "could", "would", "may", "might", "must", "shall",
)

func makeSet(words ...string) map[string]struct{} {
	m := make(map[string]struct{}, len(words))
	for _, w := range words {
		m[w] = struct{}{}
	}
	return m
}
