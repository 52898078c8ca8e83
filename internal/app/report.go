package app

import (
	"fmt"
	"strings"
	"time"

	"github.com/hyperifyio/gosummarize/internal/textstat"
)

const reportRule = "=================================================="

// ReportData carries everything the plain-text report needs.
type ReportData struct {
	SourceFile    string
	Method        string
	TokenizerMode string
	GeneratedAt   time.Time
	OriginalWords int
	SummaryWords  int
	Summary       string
}

// BuildReport renders the timestamped summary report artifact.
func BuildReport(d ReportData) string {
	var b strings.Builder

	b.WriteString("SUMMARY REPORT\n")
	b.WriteString(reportRule + "\n\n")
	fmt.Fprintf(&b, "Original file: %s\n", d.SourceFile)
	fmt.Fprintf(&b, "Summarization method: %s\n", d.Method)
	fmt.Fprintf(&b, "Tokenizer mode: %s\n", d.TokenizerMode)
	fmt.Fprintf(&b, "Generated on: %s\n", d.GeneratedAt.Format("2006-01-02 15:04:05"))

	b.WriteString("\nDOCUMENT STATISTICS:\n")
	fmt.Fprintf(&b, "- Original length: %d words\n", d.OriginalWords)
	fmt.Fprintf(&b, "- Summary length: %d words\n", d.SummaryWords)
	fmt.Fprintf(&b, "- Compression ratio: %.1f%%\n", textstat.CompressionPercent(d.OriginalWords, d.SummaryWords))
	fmt.Fprintf(&b, "- Reading time: ~%d minute(s)\n", textstat.ReadingMinutes(d.SummaryWords))

	b.WriteString("\nSUMMARY:\n")
	b.WriteString(reportRule + "\n\n")
	b.WriteString(d.Summary)
	b.WriteString("\n\n" + reportRule + "\n")
	b.WriteString("Generated by gosummarize\n")

	return b.String()
}
