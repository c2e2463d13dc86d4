// Package config loads the optional pdfcat YAML configuration file.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/adrg/xdg"

	"github.com/alnah/go-pdfcat/internal/fileutil"
	"github.com/alnah/go-pdfcat/internal/hints"
	"github.com/alnah/go-pdfcat/internal/yamlutil"
)

// Sentinel errors for config operations.
var (
	ErrConfigNotFound  = errors.New("config file not found")
	ErrEmptyConfigName = errors.New("config name cannot be empty")
	ErrConfigParse     = errors.New("failed to parse config")
	ErrFieldTooLong    = errors.New("field exceeds maximum length")
	ErrInvalidValue    = errors.New("invalid config value")
)

// Field length limits.
const (
	MaxRendererLength = 20
	MaxTimeoutLength  = 20  // "30s", "2m30s"
	MaxTOCTitleLength = 100 // TOC heading
)

// appName names the directory searched under the XDG config dirs.
const appName = "go-pdfcat"

// Renderer names accepted in the renderer field.
var validRenderers = []string{"fpdf", "chrome"}

// Config holds all settings that can be set from a file.
// Zero values mean "use the built-in default".
type Config struct {
	Renderer  string    `yaml:"renderer"`  // "fpdf" (default) or "chrome"
	Bookmarks bool      `yaml:"bookmarks"` // add an outline entry per document
	Timeout   string    `yaml:"timeout"`   // chrome render timeout, e.g. "30s"
	TOC       TOCConfig `yaml:"toc"`
}

// TOCConfig defines table of contents options.
type TOCConfig struct {
	Title string `yaml:"title"` // Empty = "Table of Contents"
}

// DefaultConfig returns a configuration that reproduces the bare CLI behavior.
func DefaultConfig() *Config {
	return &Config{}
}

// Validate checks field lengths and enumerated values.
// Called automatically by LoadConfig, but available for configs built in code.
func (c *Config) Validate() error {
	if err := validateFieldLength("renderer", c.Renderer, MaxRendererLength); err != nil {
		return err
	}
	if c.Renderer != "" && !isValidRenderer(c.Renderer) {
		return fmt.Errorf("%w: renderer %q (must be %s)", ErrInvalidValue, c.Renderer, strings.Join(validRenderers, " or "))
	}

	if err := validateFieldLength("timeout", c.Timeout, MaxTimeoutLength); err != nil {
		return err
	}
	if _, err := c.TimeoutDuration(); err != nil {
		return err
	}

	if err := validateFieldLength("toc.title", c.TOC.Title, MaxTOCTitleLength); err != nil {
		return err
	}
	if strings.ContainsAny(c.TOC.Title, "\r\n") {
		return fmt.Errorf("%w: toc.title must be a single line", ErrInvalidValue)
	}

	return nil
}

// TimeoutDuration parses Timeout. It returns 0 when Timeout is empty.
func (c *Config) TimeoutDuration() (time.Duration, error) {
	if c.Timeout == "" {
		return 0, nil
	}
	d, err := time.ParseDuration(c.Timeout)
	if err != nil {
		return 0, fmt.Errorf("%w: timeout %q: %v", ErrInvalidValue, c.Timeout, err)
	}
	if d <= 0 {
		return 0, fmt.Errorf("%w: timeout %q must be positive", ErrInvalidValue, c.Timeout)
	}
	return d, nil
}

func isValidRenderer(name string) bool {
	for _, r := range validRenderers {
		if strings.EqualFold(name, r) {
			return true
		}
	}
	return false
}

// validateFieldLength checks if a field exceeds its maximum allowed length.
func validateFieldLength(fieldName, value string, maxLength int) error {
	if n := utf8.RuneCountInString(value); n > maxLength {
		return fmt.Errorf("%w: %s (%d chars, max %d)", ErrFieldTooLong, fieldName, n, maxLength)
	}
	return nil
}

// LoadConfig loads configuration from a file path or config name.
// If nameOrPath contains a path separator, it's treated as a file path.
// Otherwise, it's treated as a config name and searched in SearchPaths.
// Returns error if the file is not found (no silent fallback).
func LoadConfig(nameOrPath string) (*Config, error) {
	if nameOrPath == "" {
		return nil, ErrEmptyConfigName
	}

	configPath := nameOrPath
	if !fileutil.IsFilePath(nameOrPath) {
		var err error
		configPath, err = resolveConfigPath(nameOrPath)
		if err != nil {
			return nil, err
		}
	}

	data, err := os.ReadFile(configPath) // #nosec G304 -- config path is user-provided
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", ErrConfigNotFound, configPath)
		}
		return nil, fmt.Errorf("reading config file: %w", err)
	}

	cfg := DefaultConfig()
	if err := yamlutil.UnmarshalStrict(data, cfg); err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrConfigParse, configPath, err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// SearchPaths lists, in lookup order, where a config name is looked for:
// the current directory first, then the XDG config directories.
func SearchPaths(name string) []string {
	extensions := []string{".yaml", ".yml"}
	dirs := append([]string{xdg.ConfigHome}, xdg.ConfigDirs...)

	paths := make([]string, 0, len(extensions)*(len(dirs)+1))
	for _, ext := range extensions {
		paths = append(paths, name+ext)
	}
	for _, dir := range dirs {
		for _, ext := range extensions {
			paths = append(paths, filepath.Join(dir, appName, name+ext))
		}
	}
	return paths
}

// resolveConfigPath returns the first existing file among SearchPaths.
func resolveConfigPath(name string) (string, error) {
	paths := SearchPaths(name)
	for _, p := range paths {
		if fileutil.FileExists(p) {
			return p, nil
		}
	}
	return "", fmt.Errorf("%w: tried %s%s", ErrConfigNotFound, strings.Join(paths, ", "), hints.ForConfigNotFound(paths))
}
