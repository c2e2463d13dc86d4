// Package pdfcat concatenates a directory of PDF files into a single PDF
// with a generated table of contents.
//
// # Quick Start
//
// Create an assembler, run it on a directory, and close when done:
//
//	a, err := pdfcat.New()
//	if err != nil {
//	    log.Fatal(err)
//	}
//	defer a.Close()
//
//	result, err := a.AssembleFile(ctx, "reports/", "combined.pdf")
//	if errors.Is(err, pdfcat.ErrNoInput) {
//	    // nothing to do
//	}
//
// # Output Layout
//
// The assembled document is laid out as:
//
//	page 1                 table of contents
//	then, per input file   header page, content pages, trailer page
//
// Input files are every "*.pdf" (case-insensitive) directly inside the
// directory, in lexicographic filename order. The header and trailer pages
// are one rendered page carrying the file's name without extension, placed
// at both positions. Each TOC line reads "{title} - Page {n}", where n is
// the page number of that document's header page in the final output.
//
// The table of contents must fit on one page (MaxTOCEntries lines).
// Larger inputs fail with ErrTOCOverflow before any file is read.
//
// # Configuration
//
// Use functional options to customize the assembler:
//
//	a, err := pdfcat.New(
//	    pdfcat.WithRenderer(pdfcat.RendererChrome),
//	    pdfcat.WithTimeout(time.Minute),
//	    pdfcat.WithBookmarks(true),
//	    pdfcat.WithLogger(slog.Default()),
//	)
//
// # Renderers
//
// The default "fpdf" renderer draws pages natively. The "chrome" renderer
// prints HTML templates in headless Chrome through go-rod, which downloads a
// managed Chromium on first run. Set ROD_BROWSER_BIN to use a custom binary
// and ROD_NO_SANDBOX=1 in containers.
package pdfcat
