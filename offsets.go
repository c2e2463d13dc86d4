package pdfcat

import "slices"

// headerOffset turns "pages appended so far" into the 1-based header page:
// one for the TOC page inserted in front at the end, one for the header itself.
const headerOffset = 2

// pagesPerLabel counts the header and trailer pages around each document.
const pagesPerLabel = 2

// HeaderPages computes where each document's header page lands in the output,
// given the content page count of every document in order:
//
//	page(i) = 2 + sum over j < i of (2 + contentPages[j])
func HeaderPages(contentPages []int) []int {
	pages := make([]int, len(contentPages))
	appended := 0
	for i, n := range contentPages {
		pages[i] = appended + headerOffset
		appended += pagesPerLabel + n
	}
	return pages
}

// assembly is the accumulator folded over the sorted documents. The page
// counter is the sequence length itself, so an entry can never drift from
// the pages actually appended.
type assembly struct {
	seq     PageSequence
	entries []TOCEntry
}

// addDocument records the TOC entry for the next header page, then appends
// header, content and trailer. label is placed twice as the same value.
func (a assembly) addDocument(title string, label, content Segment) (assembly, TOCEntry) {
	entry := TOCEntry{Title: title, Page: a.seq.Pages() + headerOffset}
	return assembly{
		seq:     a.seq.Append(label).Append(content).Append(label),
		entries: append(slices.Clip(a.entries), entry),
	}, entry
}

// withTOC inserts the table of contents page at the front.
func (a assembly) withTOC(toc Segment) PageSequence {
	return a.seq.Prepend(toc)
}

// placeholderEntries lists one entry per document before page numbers are
// known, so the TOC can be checked for overflow before any file is read.
func placeholderEntries(docs []InputDocument) []TOCEntry {
	entries := make([]TOCEntry, len(docs))
	for i, doc := range docs {
		entries[i] = TOCEntry{Title: doc.Title}
	}
	return entries
}
