package app

import (
	"strings"
	"testing"
	"time"
)

func TestBuildReport_Layout(t *testing.T) {
	report := BuildReport(ReportData{
		SourceFile:    "paper.pdf",
		Method:        MethodExtractive,
		TokenizerMode: "simple",
		GeneratedAt:   time.Date(2026, 3, 14, 9, 26, 53, 0, time.UTC),
		OriginalWords: 2000,
		SummaryWords:  500,
		Summary:       "The condensed findings go here.",
	})

	for _, want := range []string{
		"SUMMARY REPORT",
		"Original file: paper.pdf",
		"Summarization method: extractive",
		"Tokenizer mode: simple",
		"Generated on: 2026-03-14 09:26:53",
		"- Original length: 2000 words",
		"- Summary length: 500 words",
		"- Compression ratio: 75.0%",
		"- Reading time: ~2 minute(s)",
		"The condensed findings go here.",
		"Generated by gosummarize",
	} {
		if !strings.Contains(report, want) {
			t.Fatalf("report missing %q:\n%s", want, report)
		}
	}
}

func TestBuildReport_Stable(t *testing.T) {
	d := ReportData{
		SourceFile:    "a.txt",
		Method:        MethodBudgeted,
		TokenizerMode: "linguistic",
		GeneratedAt:   time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC),
		OriginalWords: 100,
		SummaryWords:  10,
		Summary:       "Short.",
	}
	if BuildReport(d) != BuildReport(d) {
		t.Fatal("report rendering should be deterministic for fixed data")
	}
}
