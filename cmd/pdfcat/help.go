package main

import (
	"fmt"
	"io"
)

// printUsage prints the command usage message.
func printUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: pdfcat [flags] <input_directory> <output_file>")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Combine every PDF in a directory into one file, behind a table of contents.")
	fmt.Fprintln(w, "Files are taken in filename order; each is framed by a header and a trailer")
	fmt.Fprintln(w, "page carrying its name.")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Arguments:")
	fmt.Fprintln(w, "  input_directory    Directory holding the *.pdf files (not recursive)")
	fmt.Fprintln(w, "  output_file        Combined PDF, overwritten if it exists")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Flags:")
	fmt.Fprintln(w, "  -c, --config <name>     Config file name or path")
	fmt.Fprintln(w, "  -r, --renderer <s>      Page renderer: fpdf (default), chrome")
	fmt.Fprintln(w, "  -t, --timeout <dur>     Chrome render timeout (default: 30s)")
	fmt.Fprintln(w, "      --bookmarks         Add a PDF outline entry per document")
	fmt.Fprintln(w, "      --toc-title <s>     Table of contents heading")
	fmt.Fprintln(w, "  -q, --quiet             Only show errors")
	fmt.Fprintln(w, "  -v, --verbose           Log every document")
	fmt.Fprintln(w, "      --version           Show version information")
	fmt.Fprintln(w, "  -h, --help              Show this help")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Environment:")
	fmt.Fprintln(w, "  PDFCAT_CONFIG, PDFCAT_RENDERER, PDFCAT_TIMEOUT   Defaults for the flags above")
	fmt.Fprintln(w, "  ROD_BROWSER_BIN                                  Chrome binary for --renderer chrome")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Exit codes:")
	fmt.Fprintln(w, "  0 success or no input, 1 general, 2 usage, 3 I/O, 4 browser, 5 TOC overflow")
}
