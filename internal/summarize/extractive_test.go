package summarize

import (
	"fmt"
	"strings"
	"testing"

	"github.com/hyperifyio/gosummarize/internal/normalize"
	"github.com/hyperifyio/gosummarize/internal/token"
)

func newSimpleSummarizer() *Summarizer {
	return New(token.NewSimple(), nil)
}

func TestExtractive_SingleShortSentence(t *testing.T) {
	s := newSimpleSummarizer()
	got, err := s.Extractive("Short text.", 5)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != "Short text." {
		t.Fatalf("got %q, want the input back unchanged", got)
	}
}

func TestExtractive_FewerSentencesThanRequested(t *testing.T) {
	s := newSimpleSummarizer()
	in := "The first sentence covers basics. The second sentence adds detail. The third sentence concludes things."
	got, err := s.Extractive(in, 5)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != in {
		t.Fatalf("short-circuit should return all sentences joined in order:\n got %q\nwant %q", got, in)
	}
}

func TestExtractive_FiftySentences(t *testing.T) {
	s := newSimpleSummarizer()
	var b strings.Builder
	for i := 0; i < 50; i++ {
		fmt.Fprintf(&b, "Topic item number %d concerns energy systems and turbine efficiency always. ", i)
	}
	got, err := s.Extractive(b.String(), 5)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	tok := token.NewSimple()
	outSents := tok.Sentences(got)
	if len(outSents) != 5 {
		t.Fatalf("expected exactly 5 sentences, got %d", len(outSents))
	}
	assertDocumentOrder(t, b.String(), got)
}

func TestExtractive_OrderPreserved(t *testing.T) {
	s := newSimpleSummarizer()
	in := "Reactors generate power constantly for cities. The weather stayed calm and mild yesterday evening. Power reactors require careful monitoring always. Some birds migrated south earlier than usual. Reactor power output depends on cooling capacity."
	got, err := s.Extractive(in, 3)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	assertDocumentOrder(t, in, got)
}

func TestExtractive_DuplicateSentencesSelectedByIndex(t *testing.T) {
	s := newSimpleSummarizer()
	dup := "Rockets launch satellites into orbit using powerful engines."
	mid := "Bread stays tasty sometimes generally speaking indeed."
	in := dup + " " + mid + " " + dup
	got, err := s.Extractive(in, 2)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := dup + " " + dup
	if got != want {
		t.Fatalf("duplicate sentences should rank independently:\n got %q\nwant %q", got, want)
	}
}

func TestExtractive_Deterministic(t *testing.T) {
	s := newSimpleSummarizer()
	var b strings.Builder
	for i := 0; i < 20; i++ {
		fmt.Fprintf(&b, "Observation round %d recorded pressure readings and valve temperatures carefully. ", i)
	}
	first, err := s.Extractive(b.String(), 4)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	for i := 0; i < 5; i++ {
		again, err := s.Extractive(b.String(), 4)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if again != first {
			t.Fatalf("selection not deterministic: %q vs %q", first, again)
		}
	}
}

func TestExtractive_InvalidCount(t *testing.T) {
	s := newSimpleSummarizer()
	if _, err := s.Extractive("Whatever text goes here today.", 0); err == nil {
		t.Fatal("expected an error for sentence count below 1")
	}
}

// assertDocumentOrder verifies every summary sentence appears in the
// input and that their relative order matches the input order.
func assertDocumentOrder(t *testing.T, input, summary string) {
	t.Helper()
	cleaned := normalize.Clean(input)
	tok := token.NewSimple()
	pos := 0
	for _, sent := range tok.Sentences(summary) {
		idx := strings.Index(cleaned[pos:], sent)
		if idx < 0 {
			t.Fatalf("summary sentence out of order or missing from input: %q", sent)
		}
		pos += idx + len(sent)
	}
}
