package main

import (
	"bytes"
	"strings"
	"testing"
)

func TestPrintUsage(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	printUsage(&buf)
	out := buf.String()

	for _, want := range []string{
		"Usage: pdfcat [flags] <input_directory> <output_file>",
		"--renderer",
		"--timeout",
		"--bookmarks",
		"--toc-title",
		"--config",
		"--version",
		"5 TOC overflow",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("usage missing %q", want)
		}
	}
}
