package pdfcat

import (
	"bytes"
	"context"
	"fmt"
	"html/template"
	"io"
	"os"
	"time"

	"github.com/go-rod/rod"
	"github.com/go-rod/rod/lib/launcher"
	"github.com/go-rod/rod/lib/proto"

	"github.com/alnah/go-pdfcat/internal/assets"
	"github.com/alnah/go-pdfcat/internal/fileutil"
	"github.com/alnah/go-pdfcat/internal/hints"
)

// Paper size in inches for Chrome's print settings (US Letter).
const (
	paperWidthInches  = PageWidth / 72
	paperHeightInches = PageHeight / 72
)

// DefaultTimeout bounds a single browser render.
const DefaultTimeout = 30 * time.Second

// htmlRenderer abstracts rendering a local HTML file to PDF to enable testing without a browser.
type htmlRenderer interface {
	RenderFromFile(ctx context.Context, filePath string) ([]byte, error)
	Close() error
}

var _ htmlRenderer = (*rodRenderer)(nil)

// ChromeRenderer draws pages from HTML templates in headless Chrome.
// Positions match FPDFRenderer; glyph metrics come from the browser's fonts.
type ChromeRenderer struct {
	loader   assets.TemplateLoader
	renderer htmlRenderer
}

// NewChromeRenderer creates a ChromeRenderer. The browser starts lazily on first render.
func NewChromeRenderer(timeout time.Duration) *ChromeRenderer {
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	return &ChromeRenderer{
		loader:   assets.NewEmbeddedLoader(),
		renderer: newRodRenderer(timeout),
	}
}

// labelData feeds templates/label.html.
type labelData struct {
	Title    string
	X        float64
	HeaderY  float64
	FooterY  float64
	FontSize float64
}

// tocData feeds templates/toc.html.
type tocData struct {
	Title         string
	TitleY        float64
	TitleFontSize float64
	EntryFontSize float64
	Lines         []TOCLine
}

// RenderLabel renders the header/trailer page for title.
func (r *ChromeRenderer) RenderLabel(ctx context.Context, title string) ([]byte, error) {
	return r.render(ctx, assets.LabelTemplate, labelData{
		Title:    title,
		X:        labelX,
		HeaderY:  labelHeaderY,
		FooterY:  labelFooterY,
		FontSize: labelFontSize,
	})
}

// RenderTOC renders the table of contents page.
func (r *ChromeRenderer) RenderTOC(ctx context.Context, page TOCPage) ([]byte, error) {
	return r.render(ctx, assets.TOCTemplate, tocData{
		Title:         page.Title,
		TitleY:        tocTitleY,
		TitleFontSize: tocTitleFontSize,
		EntryFontSize: tocEntryFontSize,
		Lines:         page.Lines,
	})
}

// Close releases browser resources.
func (r *ChromeRenderer) Close() error {
	if r.renderer != nil {
		return r.renderer.Close()
	}
	return nil
}

func (r *ChromeRenderer) render(ctx context.Context, name string, data any) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	htmlContent, err := r.executeTemplate(name, data)
	if err != nil {
		return nil, err
	}

	tmpPath, cleanup, err := fileutil.WriteTempFile(htmlContent, "html")
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrRenderPage, err)
	}
	defer cleanup()

	return r.renderer.RenderFromFile(ctx, tmpPath)
}

func (r *ChromeRenderer) executeTemplate(name string, data any) (string, error) {
	tmpl, err := r.loader.LoadTemplate(name)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrRenderPage, err)
	}
	return executeTemplate(tmpl, data)
}

func executeTemplate(tmpl *template.Template, data any) (string, error) {
	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, data); err != nil {
		return "", fmt.Errorf("%w: %s: %v", ErrRenderPage, tmpl.Name(), err)
	}
	return buf.String(), nil
}

// rodRenderer implements htmlRenderer using go-rod.
// Rod automatically downloads Chromium on first run if not found.
type rodRenderer struct {
	browser *rod.Browser
	timeout time.Duration
}

// newRodRenderer creates a rodRenderer with the given timeout.
func newRodRenderer(timeout time.Duration) *rodRenderer {
	return &rodRenderer{timeout: timeout}
}

// ensureBrowser lazily connects to the browser.
func (r *rodRenderer) ensureBrowser() error {
	if r.browser != nil {
		return nil
	}

	l := launcher.New()

	// Use pre-installed browser if specified (Docker/containerized environments)
	if bin := os.Getenv("ROD_BROWSER_BIN"); bin != "" {
		l = l.Bin(bin)
	}

	// NoSandbox required for CI and containerized environments
	if os.Getenv("CI") == "true" || os.Getenv("ROD_BROWSER_BIN") != "" || os.Getenv("ROD_NO_SANDBOX") == "1" {
		l = l.NoSandbox(true)
	}

	u, err := l.Launch()
	if err != nil {
		return fmt.Errorf("%w: %v%s", ErrBrowserConnect, err, hints.ForBrowserConnect())
	}

	r.browser = rod.New().ControlURL(u)
	if err := r.browser.Connect(); err != nil {
		r.browser = nil
		return fmt.Errorf("%w: %v%s", ErrBrowserConnect, err, hints.ForBrowserConnect())
	}
	return nil
}

// Close releases browser resources.
func (r *rodRenderer) Close() error {
	if r.browser != nil {
		err := r.browser.Close()
		r.browser = nil
		return err
	}
	return nil
}

// RenderFromFile opens a local HTML file in headless Chrome and prints its first page to PDF.
func (r *rodRenderer) RenderFromFile(ctx context.Context, filePath string) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	if err := r.ensureBrowser(); err != nil {
		return nil, err
	}

	page, err := r.browser.Page(proto.TargetCreateTarget{URL: "file://" + filePath})
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrPageCreate, err)
	}
	defer page.Close()

	// Wait for page to load with timeout from context or default
	timeout := r.timeout
	if deadline, ok := ctx.Deadline(); ok {
		timeout = time.Until(deadline)
		if timeout <= 0 {
			return nil, context.DeadlineExceeded
		}
	}

	if err := page.Timeout(timeout).WaitLoad(); err != nil {
		return nil, fmt.Errorf("%w: %v%s", ErrPageLoad, err, hints.ForTimeout())
	}

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	reader, err := page.PDF(printOptions())
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrPDFGeneration, err)
	}

	pdfBuf, err := io.ReadAll(reader)
	if err != nil {
		return nil, fmt.Errorf("%w: reading PDF stream: %v", ErrPDFGeneration, err)
	}

	return pdfBuf, nil
}

// printOptions prints exactly one borderless Letter page.
func printOptions() *proto.PagePrintToPDF {
	return &proto.PagePrintToPDF{
		PaperWidth:      floatPtr(paperWidthInches),
		PaperHeight:     floatPtr(paperHeightInches),
		MarginTop:       floatPtr(0),
		MarginBottom:    floatPtr(0),
		MarginLeft:      floatPtr(0),
		MarginRight:     floatPtr(0),
		PageRanges:      "1",
		PrintBackground: true,
	}
}

// floatPtr returns a pointer to a float64 value.
func floatPtr(v float64) *float64 {
	return &v
}
