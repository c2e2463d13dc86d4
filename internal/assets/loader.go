package assets

import "html/template"

// Template names.
const (
	LabelTemplate = "label"
	TOCTemplate   = "toc"
)

// TemplateLoader defines the contract for loading page templates.
type TemplateLoader interface {
	// LoadTemplate loads and parses an HTML template by name (without .html extension).
	// Returns ErrTemplateNotFound if the template doesn't exist.
	// Returns ErrInvalidAssetName if the name contains invalid characters.
	LoadTemplate(name string) (*template.Template, error)
}
