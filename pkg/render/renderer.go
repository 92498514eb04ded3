package render

import (
	"context"

	"github.com/goliatone/go-glossgen/pkg/glossary"
)

// Page is the input for a single term page.
type Page struct {
	Term       string
	Definition string
	// Terms is the full set of known terms used for cross-linking, including
	// Term itself.
	Terms glossary.TermSet
}

// Index is the input for the index page. Terms must already be sorted.
type Index struct {
	Terms []string
}

// Renderer converts glossary pages into bytes (HTML in the built-in
// implementation).
type Renderer interface {
	Name() string
	RenderPage(ctx context.Context, page Page) ([]byte, error)
	RenderIndex(ctx context.Context, index Index) ([]byte, error)
}
