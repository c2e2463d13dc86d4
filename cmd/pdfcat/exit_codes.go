package main

import (
	"errors"
	"os"

	"github.com/alnah/go-pdfcat"
	"github.com/alnah/go-pdfcat/internal/config"
)

// Exit codes for the pdfcat CLI.
// Follows Unix conventions: 0=success, 1=general, 2=usage, and custom codes < 126.
const (
	ExitSuccess  = 0 // Combined, or nothing to combine
	ExitGeneral  = 1 // General/unexpected error
	ExitUsage    = 2 // Invalid arguments, flags, or config
	ExitIO       = 3 // Unreadable input, unwritable output
	ExitBrowser  = 4 // Browser/Chrome errors
	ExitOverflow = 5 // Table of contents does not fit on one page
)

// exitCodeFor returns the appropriate exit code for an error.
// It uses errors.Is to check wrapped errors, so callers must use fmt.Errorf("%w", err).
func exitCodeFor(err error) int {
	if err == nil {
		return ExitSuccess
	}

	// An empty input directory is reported, not failed
	if errors.Is(err, pdfcat.ErrNoInput) {
		return ExitSuccess
	}

	if errors.Is(err, pdfcat.ErrTOCOverflow) {
		return ExitOverflow
	}

	// Browser errors (exit 4)
	if errors.Is(err, pdfcat.ErrBrowserConnect) ||
		errors.Is(err, pdfcat.ErrPageCreate) ||
		errors.Is(err, pdfcat.ErrPageLoad) ||
		errors.Is(err, pdfcat.ErrPDFGeneration) {
		return ExitBrowser
	}

	// Usage/config/validation errors (exit 2)
	if errors.Is(err, ErrUsage) ||
		errors.Is(err, ErrInvalidTimeout) ||
		errors.Is(err, config.ErrConfigNotFound) ||
		errors.Is(err, config.ErrConfigParse) ||
		errors.Is(err, config.ErrEmptyConfigName) ||
		errors.Is(err, config.ErrFieldTooLong) ||
		errors.Is(err, config.ErrInvalidValue) ||
		errors.Is(err, pdfcat.ErrUnknownRenderer) ||
		errors.Is(err, pdfcat.ErrInvalidTOCTitle) {
		return ExitUsage
	}

	// I/O errors (exit 3)
	if errors.Is(err, os.ErrNotExist) ||
		errors.Is(err, os.ErrPermission) ||
		errors.Is(err, pdfcat.ErrReadDocument) ||
		errors.Is(err, pdfcat.ErrWriteOutput) {
		return ExitIO
	}

	return ExitGeneral
}
