package html

import (
	"embed"
	"io/fs"
)

//go:embed templates/*.tmpl
var embeddedTemplates embed.FS

const (
	// IndexName is the file name of the generated index page.
	IndexName = "index.html"

	pageTemplate  = "templates/page.tmpl"
	indexTemplate = "templates/index.tmpl"
)

// TemplatesFS exposes the embedded page and index templates so callers can
// copy and customise them.
func TemplatesFS() fs.FS {
	return embeddedTemplates
}
