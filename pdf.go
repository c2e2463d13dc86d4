package pdfcat

import (
	"bytes"
	"fmt"
	"io"

	"github.com/pdfcpu/pdfcpu/pkg/api"
	"github.com/pdfcpu/pdfcpu/pkg/pdfcpu"
	"github.com/pdfcpu/pdfcpu/pkg/pdfcpu/model"
)

// pdfcpu never reads or creates its config directory in the user's home.
func init() {
	api.DisableConfigDir()
}

// pdfConfig returns a relaxed pdfcpu configuration. Input documents are not
// validated beyond what reading them requires.
func pdfConfig() *model.Configuration {
	conf := model.NewDefaultConfiguration()
	conf.ValidationMode = model.ValidationRelaxed
	conf.CreateBookmarks = false
	return conf
}

// newSegment counts the pages of a complete PDF file.
func newSegment(data []byte) (Segment, error) {
	pages, err := api.PageCount(bytes.NewReader(data), pdfConfig())
	if err != nil {
		return Segment{}, err
	}
	return Segment{Data: data, Pages: pages}, nil
}

// singlePage wraps a rendered page and checks it is exactly one page long.
func singlePage(data []byte, what string) (Segment, error) {
	seg, err := newSegment(data)
	if err != nil {
		return Segment{}, fmt.Errorf("%w: %s page: %v", ErrRenderPage, what, err)
	}
	if seg.Pages != 1 {
		return Segment{}, fmt.Errorf("%w: %s page has %d pages, want 1", ErrRenderPage, what, seg.Pages)
	}
	return seg, nil
}

// mergeSequence concatenates every segment, in order, into one PDF file.
// Empty segments contribute nothing and are skipped.
func mergeSequence(seq PageSequence) ([]byte, error) {
	readers := make([]io.ReadSeeker, 0, seq.Len())
	for _, seg := range seq.Segments() {
		if seg.Pages == 0 {
			continue
		}
		readers = append(readers, seg.reader())
	}
	if len(readers) == 0 {
		return nil, fmt.Errorf("%w: nothing to merge", ErrMerge)
	}

	var buf bytes.Buffer
	if err := api.MergeRaw(readers, &buf, false, pdfConfig()); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMerge, err)
	}
	return buf.Bytes(), nil
}

// addOutline adds one top-level bookmark per entry, pointing at its header page.
func addOutline(data []byte, entries []TOCEntry) ([]byte, error) {
	if len(entries) == 0 {
		return data, nil
	}

	bookmarks := make([]pdfcpu.Bookmark, 0, len(entries))
	for _, e := range entries {
		bookmarks = append(bookmarks, pdfcpu.Bookmark{Title: e.Title, PageFrom: e.Page})
	}

	var buf bytes.Buffer
	if err := api.AddBookmarks(bytes.NewReader(data), &buf, bookmarks, true, pdfConfig()); err != nil {
		return nil, fmt.Errorf("%w: adding bookmarks: %v", ErrMerge, err)
	}
	return buf.Bytes(), nil
}
