package pdfcat

import "errors"

// Sentinel errors for library operations.
var (
	// ErrNoInput reports an input directory without any PDF file.
	// It is an expected condition, not a fault: nothing is written.
	ErrNoInput = errors.New("no PDF files found in the input directory")

	// ErrTOCOverflow reports a table of contents that does not fit on one page.
	ErrTOCOverflow = errors.New("table of contents is bigger than one page")

	ErrReadDocument = errors.New("failed to read input document")
	ErrWriteOutput  = errors.New("failed to write output file")
	ErrMerge        = errors.New("failed to assemble pages")
	ErrRenderPage   = errors.New("page rendering failed")

	// Browser errors, chrome renderer only.
	ErrBrowserConnect = errors.New("failed to connect to browser")
	ErrPageCreate     = errors.New("failed to create browser page")
	ErrPageLoad       = errors.New("failed to load page")
	ErrPDFGeneration  = errors.New("PDF generation failed")

	// Option validation errors.
	ErrUnknownRenderer = errors.New("unknown renderer")
	ErrInvalidTOCTitle = errors.New("invalid TOC title")
)
