package pdfcat

import (
	"bytes"
	"io"
	"slices"
)

// Segment is an immutable run of pages spliced into the output as a unit.
// Data holds a complete PDF file; Pages is its page count.
type Segment struct {
	Data  []byte
	Pages int
}

// reader returns a fresh reader over the segment bytes.
// The same Segment may be read several times, once per position it occupies.
func (s Segment) reader() io.ReadSeeker {
	return bytes.NewReader(s.Data)
}

// InputDocument is a source PDF discovered in the input directory.
type InputDocument struct {
	Title   string // filename without extension
	Path    string
	Ordinal int // position in the sorted listing
}

// TOCEntry is one line of the table of contents.
// Page is the 1-based position of the document's header page in the final output.
type TOCEntry struct {
	Title string
	Page  int
}

// PageSequence is an ordered, immutable list of segments.
// Append and Prepend return new sequences and leave the receiver untouched.
type PageSequence struct {
	segments []Segment
	pages    int
}

// Append returns a sequence with seg added at the end.
func (s PageSequence) Append(seg Segment) PageSequence {
	return PageSequence{
		segments: append(slices.Clip(s.segments), seg),
		pages:    s.pages + seg.Pages,
	}
}

// Prepend returns a sequence with seg added at the front.
func (s PageSequence) Prepend(seg Segment) PageSequence {
	segments := make([]Segment, 0, len(s.segments)+1)
	segments = append(segments, seg)
	segments = append(segments, s.segments...)
	return PageSequence{segments: segments, pages: s.pages + seg.Pages}
}

// Pages returns the total number of pages in the sequence.
func (s PageSequence) Pages() int { return s.pages }

// Len returns the number of segments.
func (s PageSequence) Len() int { return len(s.segments) }

// Segments returns a copy of the segments in order.
func (s PageSequence) Segments() []Segment {
	return slices.Clone(s.segments)
}

// Result is the outcome of an assembly run.
type Result struct {
	PDF     []byte     // the assembled document
	Entries []TOCEntry // table of contents, in output order
	Pages   int        // total page count, TOC included
}
