package pdfcat

import (
	"log/slog"
	"time"
)

// Option configures an Assembler.
type Option func(*Assembler)

// assemblerConfig holds internal configuration for Assembler.
type assemblerConfig struct {
	renderer  string
	timeout   time.Duration
	bookmarks bool
	tocTitle  string
}

// WithRenderer selects the page rendering backend by name ("fpdf" or "chrome").
// Unknown names make New fail with ErrUnknownRenderer.
func WithRenderer(name string) Option {
	return func(a *Assembler) {
		a.cfg.renderer = name
	}
}

// WithCustomRenderer installs a Renderer directly, bypassing WithRenderer.
// The Assembler takes ownership and closes it in Close.
func WithCustomRenderer(r Renderer) Option {
	return func(a *Assembler) {
		a.renderer = r
	}
}

// WithTimeout sets the per-page render timeout of the chrome backend.
// Panics if d <= 0 (programmer error, similar to time.NewTicker).
func WithTimeout(d time.Duration) Option {
	if d <= 0 {
		panic("pdfcat: WithTimeout duration must be positive")
	}
	return func(a *Assembler) {
		a.cfg.timeout = d
	}
}

// WithBookmarks adds a PDF outline with one bookmark per document.
func WithBookmarks(enabled bool) Option {
	return func(a *Assembler) {
		a.cfg.bookmarks = enabled
	}
}

// WithTOCTitle replaces the "Table of Contents" heading.
func WithTOCTitle(title string) Option {
	return func(a *Assembler) {
		a.cfg.tocTitle = title
	}
}

// WithLogger sets the logger for progress messages. Nil restores the silent default.
func WithLogger(logger *slog.Logger) Option {
	return func(a *Assembler) {
		a.logger = logger
	}
}
