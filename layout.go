package pdfcat

import (
	"fmt"
	"strings"
	"unicode/utf8"
)

// US Letter page in PDF points.
const (
	PageWidth  = 612.0
	PageHeight = 792.0
)

// Coordinates below use the PDF convention: origin at the bottom-left corner.
const (
	fontFamily = "Helvetica"

	labelFontSize = 12
	labelX        = 50
	labelHeaderY  = 750
	labelFooterY  = 50

	tocTitleFontSize = 16
	tocTitleY        = 750
	tocEntryFontSize = 12
	tocFirstLineY    = 700
	tocLineHeight    = 14
	tocLeftMargin    = 75
	tocBottomMargin  = 100
)

// DefaultTOCTitle heads the table of contents page.
const DefaultTOCTitle = "Table of Contents"

// MaxTOCTitleLength bounds the TOC heading, in characters.
const MaxTOCTitleLength = 100

// MaxTOCEntries is the number of entries that fit on the single TOC page.
// The cursor moves down after every line, and a cursor below the bottom
// margin is an overflow even after the last entry.
const MaxTOCEntries = (tocFirstLineY - tocBottomMargin) / tocLineHeight

// TOCLine is a positioned line of text on the TOC page.
type TOCLine struct {
	Text string
	X, Y float64
}

// TOCPage is the laid-out table of contents, ready for a Renderer.
type TOCPage struct {
	Title string
	Lines []TOCLine
}

// FormatTOCEntry renders an entry as "{title} - Page {n}".
func FormatTOCEntry(e TOCEntry) string {
	return fmt.Sprintf("%s - Page %d", e.Title, e.Page)
}

// LayoutTOC places one line per entry, top to bottom, at a fixed line height.
// It fails with ErrTOCOverflow instead of spilling onto a second page.
func LayoutTOC(title string, entries []TOCEntry) (TOCPage, error) {
	if err := validateTOCTitle(title); err != nil {
		return TOCPage{}, err
	}

	page := TOCPage{Title: title, Lines: make([]TOCLine, 0, len(entries))}
	y := tocFirstLineY
	for i, entry := range entries {
		page.Lines = append(page.Lines, TOCLine{
			Text: FormatTOCEntry(entry),
			X:    tocLeftMargin,
			Y:    float64(y),
		})
		y -= tocLineHeight
		if y < tocBottomMargin {
			return TOCPage{}, fmt.Errorf("%w: entry %d of %d (%q), at most %d entries fit",
				ErrTOCOverflow, i+1, len(entries), entry.Title, MaxTOCEntries)
		}
	}

	return page, nil
}

// validateTOCTitle rejects headings that would break the fixed layout.
func validateTOCTitle(title string) error {
	if strings.TrimSpace(title) == "" {
		return fmt.Errorf("%w: empty", ErrInvalidTOCTitle)
	}
	if n := utf8.RuneCountInString(title); n > MaxTOCTitleLength {
		return fmt.Errorf("%w: %d chars (max %d)", ErrInvalidTOCTitle, n, MaxTOCTitleLength)
	}
	if strings.ContainsAny(title, "\r\n") {
		return fmt.Errorf("%w: must be a single line", ErrInvalidTOCTitle)
	}
	return nil
}
