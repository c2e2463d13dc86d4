package assets

import (
	"embed"
	"fmt"
	"html/template"
)

//go:embed templates/*.html
var templates embed.FS

// EmbeddedLoader loads templates from the embedded filesystem.
type EmbeddedLoader struct{}

// NewEmbeddedLoader creates an EmbeddedLoader.
func NewEmbeddedLoader() *EmbeddedLoader {
	return &EmbeddedLoader{}
}

// LoadTemplate loads and parses an HTML template from embedded assets.
func (e *EmbeddedLoader) LoadTemplate(name string) (*template.Template, error) {
	if err := ValidateAssetName(name); err != nil {
		return nil, err
	}

	content, err := templates.ReadFile("templates/" + name + ".html")
	if err != nil {
		return nil, fmt.Errorf("%w: %q", ErrTemplateNotFound, name)
	}

	tmpl, err := template.New(name).Parse(string(content))
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrTemplateParse, name, err)
	}

	return tmpl, nil
}

// Compile-time interface check.
var _ TemplateLoader = (*EmbeddedLoader)(nil)
