package app

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/hyperifyio/gosummarize/internal/htmltext"
	"github.com/hyperifyio/gosummarize/internal/normalize"
	"github.com/hyperifyio/gosummarize/internal/pdftext"
	"github.com/hyperifyio/gosummarize/internal/summarize"
	"github.com/hyperifyio/gosummarize/internal/textstat"
	"github.com/hyperifyio/gosummarize/internal/token"
)

// Caller-distinguishable failure conditions. Everything below the
// summarizer boundary is recovered locally; these two cross it.
var (
	// ErrExtraction means the input could not be read or parsed at all.
	ErrExtraction = errors.New("could not extract text from input")
	// ErrEmptyDocument means extraction succeeded but produced no text.
	ErrEmptyDocument = errors.New("document contains no readable text")
)

// minAdvisableWords is the document size below which summarization
// quality is poor enough to warrant a warning.
const minAdvisableWords = 100

// previewChars bounds the extracted-text preview in dry-run output.
const previewChars = 1500

type App struct {
	cfg Config
	tok *token.Tokenizer
	sum *summarize.Summarizer
}

// New validates the configuration, applies defaults, and initialises
// the tokenizer (linguistic when available, unless forced simple).
func New(cfg Config) (*App, error) {
	if strings.TrimSpace(cfg.InputPath) == "" {
		return nil, errors.New("input path is required")
	}
	if cfg.OutputPath == "" {
		cfg.OutputPath = "summary.txt"
	}
	if cfg.Method == "" {
		cfg.Method = MethodExtractive
	}
	if cfg.Method != MethodExtractive && cfg.Method != MethodBudgeted {
		return nil, fmt.Errorf("unknown method %q (want %s or %s)", cfg.Method, MethodExtractive, MethodBudgeted)
	}
	if cfg.Sentences == 0 {
		cfg.Sentences = DefaultSentences
	}
	if cfg.Sentences < 1 {
		return nil, fmt.Errorf("sentences must be at least 1, got %d", cfg.Sentences)
	}
	if cfg.TargetWords == 0 {
		cfg.TargetWords = DefaultTargetWords
	}
	if cfg.TargetWords < 1 {
		return nil, fmt.Errorf("words must be at least 1, got %d", cfg.TargetWords)
	}

	var tok *token.Tokenizer
	if cfg.ForceSimple {
		tok = token.NewSimple()
	} else {
		tok = token.New()
	}
	log.Info().Str("mode", string(tok.Mode())).Msg("tokenizer initialised")

	return &App{
		cfg: cfg,
		tok: tok,
		sum: summarize.New(tok, nil),
	}, nil
}

// TokenizerMode exposes the active mode for status display.
func (a *App) TokenizerMode() token.Mode {
	return a.tok.Mode()
}

// Run extracts, summarizes, and writes the configured artifacts.
func (a *App) Run(ctx context.Context) error {
	text, err := a.extract()
	if err != nil {
		return err
	}
	if normalize.Clean(text) == "" {
		return ErrEmptyDocument
	}

	// Display statistics derive from the active tokenizer, so counts
	// track the mode the summary was produced with. Raw whitespace
	// counts are only used inside the budgeted algorithm itself.
	origWords := a.tok.WordCount(text)
	origSentences := a.tok.SentenceCount(text)
	log.Info().
		Int("words", origWords).
		Int("sentences", origSentences).
		Int("chars", textstat.Chars(text)).
		Msg("text extracted")
	if origWords < minAdvisableWords {
		log.Warn().Int("words", origWords).Msg("document may be too short for effective summarization")
	}

	if a.cfg.DryRun {
		return a.writeDryRun(text, origWords, origSentences)
	}

	if err := ctx.Err(); err != nil {
		return err
	}

	summary := a.summarize(text)
	summaryWords := a.tok.WordCount(summary)
	log.Info().
		Int("words", summaryWords).
		Float64("compression", textstat.CompressionPercent(origWords, summaryWords)).
		Msg("summary generated")

	if err := os.WriteFile(a.cfg.OutputPath, []byte(summary+"\n"), 0o644); err != nil {
		return fmt.Errorf("write summary: %w", err)
	}
	log.Info().Str("out", a.cfg.OutputPath).Msg("wrote summary")

	if !a.cfg.WriteReport && !a.cfg.EnablePDF {
		return nil
	}

	report := BuildReport(ReportData{
		SourceFile:    filepath.Base(a.cfg.InputPath),
		Method:        a.cfg.Method,
		TokenizerMode: string(a.tok.Mode()),
		GeneratedAt:   time.Now(),
		OriginalWords: origWords,
		SummaryWords:  summaryWords,
		Summary:       summary,
	})
	if a.cfg.WriteReport {
		path := reportPath(a.cfg.OutputPath, ".txt")
		if err := os.WriteFile(path, []byte(report), 0o644); err != nil {
			return fmt.Errorf("write report: %w", err)
		}
		log.Info().Str("out", path).Msg("wrote report")
	}
	if a.cfg.EnablePDF {
		path := reportPath(a.cfg.OutputPath, ".pdf")
		if err := writeReportPDF(report, path); err != nil {
			return fmt.Errorf("write pdf report: %w", err)
		}
		log.Info().Str("out", path).Msg("wrote pdf report")
	}
	return nil
}

// summarize runs the configured method. A summarizer failure becomes a
// displayable string here, at the presentation boundary, keeping the
// soft-fail contract: the caller always receives renderable text.
func (a *App) summarize(text string) string {
	var (
		summary string
		err     error
	)
	switch a.cfg.Method {
	case MethodBudgeted:
		summary, err = a.sum.Budgeted(text, a.cfg.TargetWords)
	default:
		summary, err = a.sum.Extractive(text, a.cfg.Sentences)
	}
	if err != nil {
		log.Warn().Err(err).Msg("summarization failed")
		return "Error during summarization: " + err.Error()
	}
	return summary
}

// extract picks the extraction path by file extension: .pdf and
// .html/.htm have dedicated extractors, anything else is read as
// plain text.
func (a *App) extract() (string, error) {
	switch strings.ToLower(filepath.Ext(a.cfg.InputPath)) {
	case ".pdf":
		text, err := pdftext.Extract(a.cfg.InputPath)
		if errors.Is(err, pdftext.ErrNoContent) {
			return "", ErrEmptyDocument
		}
		if err != nil {
			return "", fmt.Errorf("%w: %v", ErrExtraction, err)
		}
		return text, nil
	case ".html", ".htm":
		data, err := os.ReadFile(a.cfg.InputPath)
		if err != nil {
			return "", fmt.Errorf("%w: %v", ErrExtraction, err)
		}
		text := htmltext.Extract(data)
		if strings.TrimSpace(text) == "" {
			return "", ErrEmptyDocument
		}
		return text, nil
	default:
		data, err := os.ReadFile(a.cfg.InputPath)
		if err != nil {
			return "", fmt.Errorf("%w: %v", ErrExtraction, err)
		}
		return string(data), nil
	}
}

func (a *App) writeDryRun(text string, words, sentences int) error {
	preview := text
	truncated := false
	if len(preview) > previewChars {
		preview = preview[:previewChars]
		truncated = true
	}

	var b strings.Builder
	fmt.Fprintf(&b, "# gosummarize (dry run)\n\n")
	fmt.Fprintf(&b, "Input: %s\n", a.cfg.InputPath)
	fmt.Fprintf(&b, "Tokenizer mode: %s\n", a.tok.Mode())
	fmt.Fprintf(&b, "Method: %s\n", a.cfg.Method)
	fmt.Fprintf(&b, "Words: %d\nSentences: %d\nCharacters: %d\n", words, sentences, textstat.Chars(text))
	fmt.Fprintf(&b, "Estimated reading time: %d minute(s)\n", textstat.ReadingMinutes(words))
	b.WriteString("\nPreview:\n\n")
	b.WriteString(preview)
	if truncated {
		fmt.Fprintf(&b, "\n\n... (%d more characters)\n", len(text)-previewChars)
	} else {
		b.WriteString("\n")
	}

	if err := os.WriteFile(a.cfg.OutputPath, []byte(b.String()), 0o644); err != nil {
		return fmt.Errorf("write dry-run output: %w", err)
	}
	log.Info().Str("out", a.cfg.OutputPath).Msg("wrote dry-run output")
	return nil
}

// reportPath derives the report file name from the summary output path:
// summary.txt becomes summary_report.txt or summary_report.pdf.
func reportPath(outputPath, ext string) string {
	base := strings.TrimSuffix(outputPath, filepath.Ext(outputPath))
	return base + "_report" + ext
}
