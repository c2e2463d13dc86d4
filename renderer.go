package pdfcat

import (
	"context"
	"fmt"
	"strings"
	"time"
)

// Renderer produces the generated pages. Each call returns a complete
// single-page PDF document.
type Renderer interface {
	// RenderLabel draws title as both header and footer of one page.
	RenderLabel(ctx context.Context, title string) ([]byte, error)
	// RenderTOC draws a laid-out table of contents.
	RenderTOC(ctx context.Context, page TOCPage) ([]byte, error)
	Close() error
}

// Renderer backend names.
const (
	RendererFPDF   = "fpdf"
	RendererChrome = "chrome"
)

// DefaultRenderer is the backend used when none is configured.
const DefaultRenderer = RendererFPDF

// Compile-time interface checks.
var (
	_ Renderer = (*FPDFRenderer)(nil)
	_ Renderer = (*ChromeRenderer)(nil)
)

// RendererNames lists the accepted backend names.
func RendererNames() []string {
	return []string{RendererFPDF, RendererChrome}
}

// NewRenderer returns the backend registered under name (case-insensitive).
// timeout only applies to the chrome backend.
func NewRenderer(name string, timeout time.Duration) (Renderer, error) {
	switch strings.ToLower(name) {
	case "", RendererFPDF:
		return NewFPDFRenderer(), nil
	case RendererChrome:
		return NewChromeRenderer(timeout), nil
	}
	return nil, fmt.Errorf("%w: %q (want one of %s)", ErrUnknownRenderer, name, strings.Join(RendererNames(), ", "))
}
