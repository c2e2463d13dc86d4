package pdfcat

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
)

// pdfExtension is matched case-insensitively against file names.
const pdfExtension = ".pdf"

// Discover lists the PDF files directly inside dir, in lexicographic filename
// order. Subdirectories and non-PDF files are skipped; there is no recursion.
// An empty result is not an error here; Assemble turns it into ErrNoInput.
func Discover(dir string) ([]InputDocument, error) {
	// os.ReadDir returns entries sorted by filename.
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("%w: listing %s: %w", ErrReadDocument, dir, err)
	}

	var docs []InputDocument
	for _, entry := range entries {
		name := entry.Name()
		if !hasPDFExtension(name) {
			continue
		}

		path := filepath.Join(dir, name)
		isDir, err := isDirectory(path, entry)
		if err != nil {
			return nil, fmt.Errorf("%w: %s: %w", ErrReadDocument, path, err)
		}
		if isDir {
			continue
		}

		docs = append(docs, InputDocument{
			Title:   titleFromName(name),
			Path:    path,
			Ordinal: len(docs),
		})
	}

	return docs, nil
}

// hasPDFExtension reports whether name ends in ".pdf", ignoring case.
func hasPDFExtension(name string) bool {
	return strings.HasSuffix(strings.ToLower(name), pdfExtension)
}

// isDirectory resolves symlinks so a link to a directory is skipped too.
func isDirectory(path string, entry fs.DirEntry) (bool, error) {
	if entry.Type()&fs.ModeSymlink == 0 {
		return entry.IsDir(), nil
	}
	info, err := os.Stat(path)
	if err != nil {
		return false, err
	}
	return info.IsDir(), nil
}

// titleFromName strips the final extension: "report.v2.pdf" -> "report.v2".
// A bare ".pdf" keeps its name, like a dotfile.
func titleFromName(name string) string {
	title := strings.TrimSuffix(name, filepath.Ext(name))
	if title == "" {
		return name
	}
	return title
}
