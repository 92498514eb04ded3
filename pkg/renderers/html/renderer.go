package html

import (
	"context"
	"fmt"
	"io/fs"
	"os"
	"strings"

	"github.com/goliatone/go-glossgen/pkg/glossary"
	"github.com/goliatone/go-glossgen/pkg/render"
	"github.com/goliatone/go-glossgen/pkg/render/markup"
	rendertemplate "github.com/goliatone/go-glossgen/pkg/render/template"
	gotemplate "github.com/goliatone/go-glossgen/pkg/render/template/gotemplate"
)

const (
	defaultTitle   = "Glossary"
	defaultHeading = "Index"
)

type Option func(*config)

type config struct {
	templateFS       fs.FS
	templateRenderer rendertemplate.TemplateRenderer
	policy           markup.Policy
	title            string
	heading          string
}

// WithTemplatesFS supplies an alternate template bundle via fs.FS. The bundle
// must provide templates/page.tmpl and templates/index.tmpl.
func WithTemplatesFS(files fs.FS) Option {
	return func(cfg *config) {
		cfg.templateFS = files
	}
}

// WithTemplatesDir loads templates from a directory on disk. The directory
// must hold templates/page.tmpl and templates/index.tmpl.
func WithTemplatesDir(path string) Option {
	return func(cfg *config) {
		if path == "" {
			return
		}
		cfg.templateFS = os.DirFS(path)
	}
}

// WithTemplateRenderer injects a custom template renderer implementation.
func WithTemplateRenderer(renderer rendertemplate.TemplateRenderer) Option {
	return func(cfg *config) {
		if renderer != nil {
			cfg.templateRenderer = renderer
		}
	}
}

// WithMarkup selects how terms and definitions are written into pages.
func WithMarkup(policy markup.Policy) Option {
	return func(cfg *config) {
		if policy != nil {
			cfg.policy = policy
		}
	}
}

// WithTitle overrides the index page title and top heading.
func WithTitle(title string) Option {
	return func(cfg *config) {
		if strings.TrimSpace(title) != "" {
			cfg.title = title
		}
	}
}

// WithHeading overrides the heading above the term list.
func WithHeading(heading string) Option {
	return func(cfg *config) {
		if strings.TrimSpace(heading) != "" {
			cfg.heading = heading
		}
	}
}

// Renderer writes the glossary as plain HTML pages.
type Renderer struct {
	templates rendertemplate.TemplateRenderer
	policy    markup.Policy
	title     string
	heading   string
}

var _ render.Renderer = (*Renderer)(nil)

// New constructs the HTML renderer applying any provided options.
func New(options ...Option) (*Renderer, error) {
	cfg := config{
		templateFS: TemplatesFS(),
		title:      defaultTitle,
		heading:    defaultHeading,
	}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(&cfg)
	}

	if cfg.templateFS == nil {
		cfg.templateFS = TemplatesFS()
	}
	if cfg.policy == nil {
		policy, err := markup.For(markup.ModeRaw)
		if err != nil {
			return nil, fmt.Errorf("html renderer: %w", err)
		}
		cfg.policy = policy
	}

	renderer := cfg.templateRenderer
	if renderer == nil {
		engine, err := gotemplate.New(
			gotemplate.WithFS(cfg.templateFS),
			gotemplate.WithExtension(".tmpl"),
		)
		if err != nil {
			return nil, fmt.Errorf("html renderer: configure template renderer: %w", err)
		}
		renderer = engine
	}

	return &Renderer{
		templates: renderer,
		policy:    cfg.policy,
		title:     cfg.title,
		heading:   cfg.heading,
	}, nil
}

func (r *Renderer) Name() string {
	return "html"
}

// RenderPage renders one term page. Every definition token that exactly
// matches a known term becomes a link to that term's page.
func (r *Renderer) RenderPage(ctx context.Context, page render.Page) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if r.templates == nil {
		return nil, fmt.Errorf("html renderer: template renderer is nil")
	}

	segments := glossary.CrossLink(page.Definition, page.Terms)
	items := make([]map[string]any, len(segments))
	for i, seg := range segments {
		item := map[string]any{
			"text": r.policy.Text(seg.Text),
			"link": seg.Link,
		}
		if seg.Link {
			item["href"] = r.policy.Attr(glossary.PageName(seg.Text))
		}
		items[i] = item
	}

	result, err := r.templates.RenderTemplate(pageTemplate, map[string]any{
		"term":     r.policy.Text(page.Term),
		"segments": items,
	})
	if err != nil {
		return nil, fmt.Errorf("html renderer: render page %q: %w", page.Term, err)
	}
	return finish(result), nil
}

// RenderIndex renders the index page listing terms in the order given.
func (r *Renderer) RenderIndex(ctx context.Context, index render.Index) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if r.templates == nil {
		return nil, fmt.Errorf("html renderer: template renderer is nil")
	}

	terms := make([]map[string]any, len(index.Terms))
	for i, term := range index.Terms {
		terms[i] = map[string]any{
			"text": r.policy.Text(term),
			"href": r.policy.Attr(glossary.PageName(term)),
		}
	}

	result, err := r.templates.RenderTemplate(indexTemplate, map[string]any{
		"title":   r.policy.Text(r.title),
		"heading": r.policy.Text(r.heading),
		"terms":   terms,
	})
	if err != nil {
		return nil, fmt.Errorf("html renderer: render index: %w", err)
	}
	return finish(result), nil
}

// finish normalises template output to end in exactly one newline regardless
// of how the template file itself ends.
func finish(rendered string) []byte {
	return []byte(strings.TrimRight(rendered, "\n") + "\n")
}
