package pdfcat

import (
	"bytes"
	"context"
	"fmt"

	"github.com/go-pdf/fpdf"
)

// creator is written into the Creator field of generated pages.
const creator = "go-pdfcat"

// FPDFRenderer draws pages natively with fpdf. It needs no external
// process and places text at exact coordinates.
type FPDFRenderer struct{}

// NewFPDFRenderer creates an FPDFRenderer.
func NewFPDFRenderer() *FPDFRenderer {
	return &FPDFRenderer{}
}

// RenderLabel draws title at the top-left header and bottom-left footer positions.
func (r *FPDFRenderer) RenderLabel(ctx context.Context, title string) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	pdf := newPage()
	tr := pdf.UnicodeTranslatorFromDescriptor("")
	text := tr(title)

	pdf.SetFont(fontFamily, "", labelFontSize)
	pdf.Text(labelX, fromBottom(labelHeaderY), text)
	pdf.Text(labelX, fromBottom(labelFooterY), text)

	return output(pdf)
}

// RenderTOC draws the centered heading then every laid-out line.
func (r *FPDFRenderer) RenderTOC(ctx context.Context, page TOCPage) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	pdf := newPage()
	tr := pdf.UnicodeTranslatorFromDescriptor("")

	pdf.SetFont(fontFamily, "", tocTitleFontSize)
	title := tr(page.Title)
	titleX := PageWidth/2 - pdf.GetStringWidth(title)/2
	pdf.Text(titleX, fromBottom(tocTitleY), title)

	pdf.SetFontSize(tocEntryFontSize)
	for _, line := range page.Lines {
		pdf.Text(line.X, fromBottom(line.Y), tr(line.Text))
	}

	return output(pdf)
}

// Close is a no-op; FPDFRenderer holds no resources.
func (r *FPDFRenderer) Close() error {
	return nil
}

// newPage starts a one-page Letter document measured in points.
// Content streams stay uncompressed so page text can be inspected.
func newPage() *fpdf.Fpdf {
	pdf := fpdf.New("P", "pt", "Letter", "")
	pdf.SetCompression(false)
	pdf.SetAutoPageBreak(false, 0)
	pdf.SetMargins(0, 0, 0)
	pdf.SetCreator(creator, false)
	pdf.SetCatalogSort(true)
	pdf.AddPage()
	return pdf
}

// fromBottom converts a bottom-left y coordinate to fpdf's top-left origin.
func fromBottom(y float64) float64 {
	return PageHeight - y
}

func output(pdf *fpdf.Fpdf) ([]byte, error) {
	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrRenderPage, err)
	}
	return buf.Bytes(), nil
}
