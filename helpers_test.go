package pdfcat

// Notes:
// - Fixture PDFs are drawn with fpdf so tests need no binary testdata
// - Every fixture page carries a "<marker> p<n>" line for later lookup
// - pageContents decodes each output page's content stream through pdfcpu;
//   fpdf writes text as "(...) Tj" so a page can be matched by its strings

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/go-pdf/fpdf"
	"github.com/pdfcpu/pdfcpu/pkg/api"
	"github.com/pdfcpu/pdfcpu/pkg/pdfcpu"
)

// ---------------------------------------------------------------------------
// Fixtures
// ---------------------------------------------------------------------------

// fixturePDF builds an uncompressed PDF with the given number of pages.
func fixturePDF(t *testing.T, marker string, pages int) []byte {
	t.Helper()

	if pages < 1 {
		t.Fatalf("fixturePDF: pages must be >= 1, got %d", pages)
	}

	pdf := fpdf.New("P", "pt", "Letter", "")
	pdf.SetCompression(false)
	pdf.SetFont("Helvetica", "", 12)
	for i := 1; i <= pages; i++ {
		pdf.AddPage()
		pdf.Text(72, 72, fixtureLine(marker, i))
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		t.Fatalf("fixturePDF: %v", err)
	}
	return buf.Bytes()
}

// fixtureLine is the text drawn on page n of a fixture.
func fixtureLine(marker string, n int) string {
	return fmt.Sprintf("%s p%d", marker, n)
}

// writeFixture writes a fixture PDF named name into dir.
func writeFixture(t *testing.T, dir, name string, pages int) string {
	t.Helper()

	path := filepath.Join(dir, name)
	marker := strings.TrimSuffix(name, filepath.Ext(name))
	if err := os.WriteFile(path, fixturePDF(t, marker, pages), 0o644); err != nil {
		t.Fatalf("writeFixture: %v", err)
	}
	return path
}

// ---------------------------------------------------------------------------
// Inspection
// ---------------------------------------------------------------------------

// pageContents returns the decoded content stream of every page, in order.
func pageContents(t *testing.T, data []byte) []string {
	t.Helper()

	ctx, err := api.ReadAndValidate(bytes.NewReader(data), pdfConfig())
	if err != nil {
		t.Fatalf("pageContents: reading PDF: %v", err)
	}

	contents := make([]string, 0, ctx.PageCount)
	for i := 1; i <= ctx.PageCount; i++ {
		r, err := pdfcpu.ExtractPageContent(ctx, i)
		if err != nil {
			t.Fatalf("pageContents: page %d: %v", i, err)
		}
		if r == nil {
			contents = append(contents, "")
			continue
		}
		b, err := io.ReadAll(r)
		if err != nil {
			t.Fatalf("pageContents: page %d: %v", i, err)
		}
		contents = append(contents, string(b))
	}
	return contents
}

// hasText reports whether a page content stream draws exactly s.
func hasText(content, s string) bool {
	return strings.Contains(content, "("+s+")")
}

// countPages returns the page count of a PDF.
func countPages(t *testing.T, data []byte) int {
	t.Helper()

	n, err := api.PageCount(bytes.NewReader(data), pdfConfig())
	if err != nil {
		t.Fatalf("countPages: %v", err)
	}
	return n
}
