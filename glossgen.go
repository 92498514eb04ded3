// Package glossgen turns a plain-text glossary into a folder of cross-linked
// HTML pages. The root package re-exports the common entry points; the
// pipeline stages live under pkg/.
package glossgen

import (
	"context"
	"io/fs"

	"github.com/goliatone/go-glossgen/pkg/glossary"
	"github.com/goliatone/go-glossgen/pkg/orchestrator"
	"github.com/goliatone/go-glossgen/pkg/renderers/html"
)

// Entry aliases glossary.Entry.
type Entry = glossary.Entry

// Result aliases orchestrator.Result.
type Result = orchestrator.Result

// NewOrchestrator exposes the orchestrator constructor from the module root.
func NewOrchestrator(options ...orchestrator.Option) *orchestrator.Orchestrator {
	return orchestrator.New(options...)
}

// NewParser constructs a glossary source parser.
func NewParser(options ...glossary.ParseOption) *glossary.Parser {
	return glossary.NewParser(options...)
}

// Generate reads inputPath and writes index.html plus one page per term into
// the existing folder outputDir.
func Generate(ctx context.Context, inputPath, outputDir string, options ...orchestrator.Option) (Result, error) {
	return orchestrator.New(options...).Generate(ctx, orchestrator.Request{
		InputPath: inputPath,
		OutputDir: outputDir,
	})
}

// EmbeddedTemplates exposes the built-in page and index templates so callers
// can copy and customise them.
func EmbeddedTemplates() fs.FS {
	return html.TemplatesFS()
}
