// Package pdftext extracts plain text from PDF files. Layout-aware
// parsing (tables, columns, images) is out of scope; pages are read as
// flat text streams and joined.
package pdftext

import (
	"errors"
	"fmt"
	"strings"

	"github.com/ledongthuc/pdf"
	"github.com/rs/zerolog/log"
)

// ErrNoContent signals a PDF that parsed cleanly but yielded no
// extractable text. Callers must treat this differently from a parse
// failure: the file is valid, just empty of text.
var ErrNoContent = errors.New("no text content found in pdf")

// Extract reads every page of the PDF at path and returns the joined
// plain text. Pages that fail to decode are skipped with a warning;
// extraction only fails outright when the file itself cannot be read.
func Extract(path string) (string, error) {
	if strings.TrimSpace(path) == "" {
		return "", errors.New("empty pdf path")
	}

	f, r, err := pdf.Open(path)
	if err != nil {
		return "", fmt.Errorf("open pdf %s: %w", path, err)
	}
	defer f.Close()

	var b strings.Builder
	total := r.NumPage()
	skipped := 0
	for n := 1; n <= total; n++ {
		page := r.Page(n)
		if page.V.IsNull() {
			skipped++
			continue
		}
		text, err := page.GetPlainText(nil)
		if err != nil {
			log.Warn().Err(err).Int("page", n).Str("file", path).Msg("page extraction failed; skipping")
			skipped++
			continue
		}
		text = strings.TrimSpace(text)
		if text == "" {
			skipped++
			continue
		}
		if b.Len() > 0 {
			b.WriteString("\n\n")
		}
		b.WriteString(text)
	}

	if skipped > 0 {
		log.Debug().Int("skipped", skipped).Int("total", total).Str("file", path).Msg("pages without text")
	}
	if b.Len() == 0 {
		return "", ErrNoContent
	}
	return b.String(), nil
}
