// Package assets provides the HTML templates used by the browser renderer.
//
// Templates are embedded at compile time and parsed with html/template, so
// document titles are escaped before they reach the browser:
//
//	templates/
//	├── label.html   # header/trailer page: title at two fixed positions
//	└── toc.html     # table of contents: centered heading and entry lines
//
// Template names are validated to prevent path traversal.
package assets
