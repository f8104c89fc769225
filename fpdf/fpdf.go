// Package fpdf exports review reports as PDF documents using go-pdf/fpdf.
package fpdf

import (
	"bytes"
	"fmt"
	"path"
	"strings"
	"time"

	"github.com/fwojciec/codereview"
	"github.com/go-pdf/fpdf"
)

// Compile-time interface verification.
var _ codereview.Exporter = (*Exporter)(nil)

const fontFamily = "Helvetica"

// Exporter renders reports as A4 PDF documents.
type Exporter struct {
	now func() time.Time
}

// Option configures an Exporter.
type Option func(*Exporter)

// WithClock sets the clock used for the document's creation date.
// A fixed clock makes the output byte-identical across exports.
func WithClock(now func() time.Time) Option {
	return func(e *Exporter) {
		e.now = now
	}
}

// NewExporter creates an Exporter.
func NewExporter(opts ...Option) *Exporter {
	e := &Exporter{now: time.Now}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Export lays out and renders the report.
func (e *Exporter) Export(r *codereview.Report) (*codereview.Document, error) {
	if r == nil {
		return nil, codereview.ErrNoReport
	}

	pages := Layout(r, NewTypesetter())

	pdf := fpdf.New("P", "mm", "A4", "")
	pdf.SetAutoPageBreak(false, 0)
	pdf.SetCatalogSort(true)
	now := e.now()
	pdf.SetCreationDate(now)
	pdf.SetModificationDate(now)
	pdf.SetTitle(Title, true)

	for _, page := range pages {
		pdf.AddPage()
		for _, item := range page.Items {
			style := ""
			if item.Bold {
				style = "B"
			}
			pdf.SetFont(fontFamily, style, item.Size)
			pdf.Text(item.X, item.Y, item.Text)
		}
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("render pdf: %w", err)
	}

	return &codereview.Document{
		Name:  FileName(r.FileName),
		Pages: len(pages),
		Data:  buf.Bytes(),
	}, nil
}

// FileName returns the document name for a reviewed file:
// "CodeReview_" followed by the file's base name and ".pdf".
func FileName(fileName string) string {
	base := path.Base(strings.ReplaceAll(fileName, `\`, "/"))
	if base == "." || base == "/" {
		base = "report"
	}
	return "CodeReview_" + base + ".pdf"
}

// helvetica measures body text with fpdf's core font metrics.
type helvetica struct {
	pdf    *fpdf.Fpdf
	encode func(string) string
}

// NewTypesetter returns the typesetter used by Export: cp1252 encoding and
// Helvetica metrics at the body size.
func NewTypesetter() Typesetter {
	pdf := fpdf.New("P", "mm", "A4", "")
	pdf.SetFont(fontFamily, "", BodySize)
	return &helvetica{
		pdf:    pdf,
		encode: pdf.UnicodeTranslatorFromDescriptor(""),
	}
}

func (h *helvetica) Encode(s string) string {
	return h.encode(s)
}

// Wrap encodes s and splits it at word boundaries. Explicit newlines always
// break. The result always has at least one line.
func (h *helvetica) Wrap(s string, width float64) []string {
	raw := h.pdf.SplitLines([]byte(h.encode(s)), width)
	if len(raw) == 0 {
		return []string{""}
	}
	lines := make([]string, len(raw))
	for i, b := range raw {
		lines[i] = string(b)
	}
	return lines
}
