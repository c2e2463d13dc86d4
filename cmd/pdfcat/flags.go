package main

import (
	"io"

	flag "github.com/spf13/pflag"
)

// commonFlags holds the output verbosity and config flags.
type commonFlags struct {
	config  string
	quiet   bool
	verbose bool
}

// assembleFlags holds flags that shape the combined document.
type assembleFlags struct {
	renderer  string
	timeout   string
	bookmarks bool
	tocTitle  string
}

// cliFlags holds every flag of the pdfcat command.
type cliFlags struct {
	common   commonFlags
	assemble assembleFlags
	version  bool
	help     bool
}

// addCommonFlags adds common flags to a FlagSet.
func addCommonFlags(fs *flag.FlagSet, f *commonFlags) {
	fs.StringVarP(&f.config, "config", "c", "", "config file name or path")
	fs.BoolVarP(&f.quiet, "quiet", "q", false, "only show errors")
	fs.BoolVarP(&f.verbose, "verbose", "v", false, "log every document")
}

// addAssembleFlags adds document assembly flags to a FlagSet.
func addAssembleFlags(fs *flag.FlagSet, f *assembleFlags) {
	fs.StringVarP(&f.renderer, "renderer", "r", "", "page renderer: fpdf, chrome")
	fs.StringVarP(&f.timeout, "timeout", "t", "", "chrome render timeout (e.g., 30s, 2m)")
	fs.BoolVar(&f.bookmarks, "bookmarks", false, "add a PDF outline entry per document")
	fs.StringVar(&f.tocTitle, "toc-title", "", "table of contents heading")
}

// parseFlags parses command-line flags and returns the positional args.
// Usage output is left to the caller.
func parseFlags(args []string) (*cliFlags, []string, error) {
	fs := flag.NewFlagSet("pdfcat", flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	fs.Usage = func() {}

	f := &cliFlags{}
	addCommonFlags(fs, &f.common)
	addAssembleFlags(fs, &f.assemble)
	fs.BoolVar(&f.version, "version", false, "show version information")
	fs.BoolVarP(&f.help, "help", "h", false, "show help")

	if err := fs.Parse(args); err != nil {
		return nil, nil, err
	}

	return f, fs.Args(), nil
}
