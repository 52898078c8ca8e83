package app

import (
	"bufio"
	"strings"

	"github.com/jung-kurt/gofpdf"
)

// writeReportPDF renders the plain-text report as a minimal PDF. The
// first line becomes the title; everything else flows as body text.
func writeReportPDF(report string, outPath string) error {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetFont("Helvetica", "", 11)
	pdf.AddPage()

	first := true
	scanner := bufio.NewScanner(strings.NewReader(report))
	scanner.Buffer(make([]byte, 0, 64*1024), 4*1024*1024)
	for scanner.Scan() {
		line := strings.TrimRight(scanner.Text(), " ")
		if line == "" {
			pdf.Ln(4)
			continue
		}
		if first {
			pdf.SetFont("Helvetica", "B", 14)
			pdf.CellFormat(0, 8, line, "", 1, "L", false, 0, "")
			pdf.SetFont("Helvetica", "", 11)
			first = false
			continue
		}
		pdf.MultiCell(0, 5, line, "", "L", false)
	}

	return pdf.OutputFileAndClose(outPath)
}
