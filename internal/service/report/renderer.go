package report

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/go-pdf/fpdf"
)

// Renderer lays out plain text as a document.
type Renderer interface {
	Render(text string) ([]byte, error)
}

// PDFLayout controls page geometry and typography of PDFRenderer.
type PDFLayout struct {
	PageSize     string
	BottomMargin float64
	FontFamily   string
	FontSize     float64
	LineHeight   float64
}

// DefaultLayout is A4 with a 15mm bottom margin and 12pt Courier on 10mm lines.
var DefaultLayout = PDFLayout{
	PageSize:     "A4",
	BottomMargin: 15,
	FontFamily:   "Courier",
	FontSize:     12,
	LineHeight:   10,
}

// PDFRenderer renders text into an in-memory PDF, one block per input line.
type PDFRenderer struct {
	layout PDFLayout
}

var _ Renderer = (*PDFRenderer)(nil)

// NewPDFRenderer returns a renderer using layout.
func NewPDFRenderer(layout PDFLayout) *PDFRenderer {
	return &PDFRenderer{layout: layout}
}

// Render splits text on newlines and writes each line as a full-width cell,
// wrapping long lines and breaking pages automatically at the bottom margin.
func (r *PDFRenderer) Render(text string) ([]byte, error) {
	pdf := r.layoutText(text)

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("render pdf: %w", err)
	}
	return buf.Bytes(), nil
}

func (r *PDFRenderer) layoutText(text string) *fpdf.Fpdf {
	l := r.layout

	pdf := fpdf.New("P", "mm", l.PageSize, "")
	pdf.SetAutoPageBreak(true, l.BottomMargin)
	pdf.AddPage()
	pdf.SetFont(l.FontFamily, "", l.FontSize)

	// Core fonts are cp1252 encoded.
	tr := pdf.UnicodeTranslatorFromDescriptor("")

	for _, line := range strings.Split(text, "\n") {
		if line == "" {
			pdf.Ln(l.LineHeight)
			continue
		}
		pdf.MultiCell(0, l.LineHeight, tr(line), "", "", false)
	}
	return pdf
}
