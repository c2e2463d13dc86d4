package pdfcat

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/alnah/go-pdfcat/internal/fileutil"
)

// outputPermissions is rw-r--r--: owner read+write, others read.
const outputPermissions = 0o644

// Assembler concatenates a directory of PDF files behind a generated table
// of contents. Create with New, run with Assemble or AssembleFile, and
// Close when done.
type Assembler struct {
	cfg      assemblerConfig
	renderer Renderer
	logger   *slog.Logger
}

// New creates an Assembler. Without options it renders with fpdf, adds no
// bookmarks, and logs nothing.
func New(opts ...Option) (*Assembler, error) {
	a := &Assembler{
		cfg: assemblerConfig{
			renderer: DefaultRenderer,
			timeout:  DefaultTimeout,
			tocTitle: DefaultTOCTitle,
		},
	}

	for _, opt := range opts {
		opt(a)
	}

	if a.logger == nil {
		a.logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}

	if err := validateTOCTitle(a.cfg.tocTitle); err != nil {
		return nil, err
	}

	// Create renderer if not injected (e.g., by tests)
	if a.renderer == nil {
		r, err := NewRenderer(a.cfg.renderer, a.cfg.timeout)
		if err != nil {
			return nil, err
		}
		a.renderer = r
	}

	return a, nil
}

// Close releases renderer resources.
func (a *Assembler) Close() error {
	if a.renderer != nil {
		return a.renderer.Close()
	}
	return nil
}

// Assemble builds the combined document for every PDF in inputDir.
// The page order is [TOC][header, content..., trailer] per document, in
// lexicographic filename order. It returns ErrNoInput for a directory
// without PDF files and ErrTOCOverflow when the entries exceed one page.
func (a *Assembler) Assemble(ctx context.Context, inputDir string) (*Result, error) {
	docs, err := Discover(inputDir)
	if err != nil {
		return nil, err
	}
	if len(docs) == 0 {
		return nil, fmt.Errorf("%w: %s", ErrNoInput, inputDir)
	}

	// Page numbers do not change line count, so overflow is known up front.
	if _, err := LayoutTOC(a.cfg.tocTitle, placeholderEntries(docs)); err != nil {
		return nil, err
	}

	a.logger.Info("assembling", "dir", inputDir, "documents", len(docs))

	var acc assembly
	for _, doc := range docs {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		content, err := loadDocument(doc)
		if err != nil {
			return nil, err
		}

		label, err := a.renderLabel(ctx, doc.Title)
		if err != nil {
			return nil, err
		}

		var entry TOCEntry
		acc, entry = acc.addDocument(doc.Title, label, content)
		a.logger.Debug("document added",
			"title", doc.Title,
			"content_pages", content.Pages,
			"header_page", entry.Page)
	}

	toc, err := a.renderTOC(ctx, acc.entries)
	if err != nil {
		return nil, err
	}
	seq := acc.withTOC(toc)

	data, err := mergeSequence(seq)
	if err != nil {
		return nil, err
	}

	if a.cfg.bookmarks {
		data, err = addOutline(data, acc.entries)
		if err != nil {
			return nil, err
		}
	}

	a.logger.Info("assembled", "documents", len(docs), "pages", seq.Pages())

	return &Result{PDF: data, Entries: acc.entries, Pages: seq.Pages()}, nil
}

// AssembleFile runs Assemble and writes the result to outputPath, replacing
// any existing file. Nothing is written when assembly fails.
func (a *Assembler) AssembleFile(ctx context.Context, inputDir, outputPath string) (*Result, error) {
	result, err := a.Assemble(ctx, inputDir)
	if err != nil {
		return nil, err
	}

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	if err := fileutil.WriteFileAtomic(outputPath, result.PDF, outputPermissions); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrWriteOutput, err)
	}

	a.logger.Debug("output written", "path", outputPath, "bytes", len(result.PDF))
	return result, nil
}

// loadDocument reads an input PDF completely; the file is closed before returning.
func loadDocument(doc InputDocument) (Segment, error) {
	data, err := os.ReadFile(doc.Path) // #nosec G304 -- path comes from the listed input directory
	if err != nil {
		return Segment{}, fmt.Errorf("%w: %w", ErrReadDocument, err)
	}

	seg, err := newSegment(data)
	if err != nil {
		return Segment{}, fmt.Errorf("%w: %s: %v", ErrReadDocument, doc.Path, err)
	}
	return seg, nil
}

func (a *Assembler) renderLabel(ctx context.Context, title string) (Segment, error) {
	data, err := a.renderer.RenderLabel(ctx, title)
	if err != nil {
		return Segment{}, fmt.Errorf("rendering label for %q: %w", title, err)
	}
	return singlePage(data, "label")
}

func (a *Assembler) renderTOC(ctx context.Context, entries []TOCEntry) (Segment, error) {
	page, err := LayoutTOC(a.cfg.tocTitle, entries)
	if err != nil {
		return Segment{}, err
	}

	data, err := a.renderer.RenderTOC(ctx, page)
	if err != nil {
		return Segment{}, fmt.Errorf("rendering table of contents: %w", err)
	}
	return singlePage(data, "table of contents")
}
