package orchestrator

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"time"

	"github.com/goliatone/go-glossgen/pkg/glossary"
	"github.com/goliatone/go-glossgen/pkg/output"
	"github.com/goliatone/go-glossgen/pkg/render"
	"github.com/goliatone/go-glossgen/pkg/renderers/html"
)

// Option customises the orchestrator configuration.
type Option func(*Orchestrator)

// WithParser injects a custom glossary parser.
func WithParser(parser *glossary.Parser) Option {
	return func(o *Orchestrator) {
		o.parser = parser
	}
}

// WithRenderer injects the renderer used for the index and term pages.
func WithRenderer(renderer render.Renderer) Option {
	return func(o *Orchestrator) {
		o.renderer = renderer
	}
}

// WithLogger routes pipeline progress to logger. Nil keeps the discard logger.
func WithLogger(logger *slog.Logger) Option {
	return func(o *Orchestrator) {
		if logger != nil {
			o.logger = logger
		}
	}
}

// Orchestrator runs the pipeline sequentially. Any error aborts the run and
// may leave a partially written output folder.
type Orchestrator struct {
	parser        *glossary.Parser
	renderer      render.Renderer
	logger        *slog.Logger
	initialiseErr error
}

// New constructs an Orchestrator. Missing dependencies fall back to the
// built-in parser and HTML renderer.
func New(options ...Option) *Orchestrator {
	o := &Orchestrator{}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(o)
	}
	o.applyDefaults()
	return o
}

func (o *Orchestrator) applyDefaults() {
	if o.logger == nil {
		o.logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	if o.parser == nil {
		o.parser = glossary.NewParser(glossary.WithDuplicateHandler(func(term string, line int) {
			o.logger.Debug("duplicate term replaced", "term", term, "line", line)
		}))
	}
	if o.renderer == nil {
		renderer, err := html.New()
		if err != nil {
			o.initialiseErr = fmt.Errorf("orchestrator: init html renderer: %w", err)
			return
		}
		o.renderer = renderer
	}
}

// Request names the glossary source and the existing folder receiving output.
type Request struct {
	InputPath string
	OutputDir string
}

// Result summarises a completed run.
type Result struct {
	// Entries holds the glossary in the order pages were written.
	Entries []glossary.Entry
	// Files lists written paths: the index first, then one page per entry.
	Files    []string
	Duration time.Duration
}

// Generate parses req.InputPath, sorts the entries, then writes index.html
// followed by one page per term into req.OutputDir.
func (o *Orchestrator) Generate(ctx context.Context, req Request) (Result, error) {
	if ctx == nil {
		return Result{}, errors.New("orchestrator: context is required")
	}
	if err := ctx.Err(); err != nil {
		return Result{}, err
	}
	if err := o.initialiseErr; err != nil {
		return Result{}, err
	}
	if req.InputPath == "" {
		return Result{}, errors.New("orchestrator: input path is required")
	}
	if req.OutputDir == "" {
		return Result{}, errors.New("orchestrator: output folder is required")
	}

	started := time.Now()

	parsed, err := o.parser.ParseFile(ctx, req.InputPath)
	if err != nil {
		return Result{}, err
	}
	entries := parsed.Entries()
	terms := glossary.Terms(entries)
	o.logger.Info("glossary parsed", "input", req.InputPath, "terms", len(entries))

	folder, err := output.Open(req.OutputDir)
	if err != nil {
		return Result{}, err
	}

	result := Result{
		Entries: entries,
		Files:   make([]string, 0, len(entries)+1),
	}

	index, err := o.renderer.RenderIndex(ctx, render.Index{Terms: terms})
	if err != nil {
		return Result{}, fmt.Errorf("orchestrator: render index: %w", err)
	}
	path, err := folder.WriteFile(ctx, html.IndexName, index)
	if err != nil {
		return Result{}, err
	}
	result.Files = append(result.Files, path)
	o.logger.Debug("page written", "path", path)

	termSet := glossary.NewTermSet(terms...)
	for _, entry := range entries {
		page, err := o.renderer.RenderPage(ctx, render.Page{
			Term:       entry.Term,
			Definition: entry.Definition,
			Terms:      termSet,
		})
		if err != nil {
			return Result{}, fmt.Errorf("orchestrator: render page %q: %w", entry.Term, err)
		}
		path, err := folder.WriteFile(ctx, glossary.PageName(entry.Term), page)
		if err != nil {
			return Result{}, err
		}
		result.Files = append(result.Files, path)
		o.logger.Debug("page written", "path", path)
	}

	result.Duration = time.Since(started)
	o.logger.Info("glossary generated",
		"output", folder.Root(),
		"files", len(result.Files),
		"duration_ms", result.Duration.Milliseconds(),
	)
	return result, nil
}
