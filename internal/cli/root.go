package cli

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/goliatone/go-glossgen/internal/config"
	"github.com/goliatone/go-glossgen/pkg/glossary"
	"github.com/goliatone/go-glossgen/pkg/orchestrator"
	"github.com/goliatone/go-glossgen/pkg/prompt"
	"github.com/goliatone/go-glossgen/pkg/render/markup"
	"github.com/goliatone/go-glossgen/pkg/renderers/html"
)

// Streams carries the process stdio so commands can be driven from tests.
type Streams struct {
	In  io.Reader
	Out io.Writer
	Err io.Writer
}

// DefaultStreams returns the process stdio.
func DefaultStreams() Streams {
	return Streams{In: os.Stdin, Out: os.Stdout, Err: os.Stderr}
}

type rootFlags struct {
	configPath string
	verbose    bool
	overrides  config.Config
}

// NewRootCommand builds the glossgen command. Paths not supplied through flags
// or the config file are prompted for on In.
func NewRootCommand(streams Streams) *cobra.Command {
	var flags rootFlags

	cmd := &cobra.Command{
		Use:   "glossgen",
		Short: "Generate a cross-linked HTML glossary from a term/definition file",
		Long: "glossgen reads a text file of term and definition blocks separated by blank\n" +
			"lines and writes index.html plus one page per term into an existing folder.",
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return run(cmd, streams, flags)
		},
	}

	f := cmd.Flags()
	f.StringVarP(&flags.configPath, "config", "c", "", "optional JSON or YAML settings file")
	f.StringVarP(&flags.overrides.Input, "input", "i", "", "glossary source file")
	f.StringVarP(&flags.overrides.Output, "output", "o", "", "existing folder receiving the HTML pages")
	f.StringVar(&flags.overrides.Title, "title", "", "index page title (default \"Glossary\")")
	f.StringVar(&flags.overrides.Heading, "heading", "", "heading above the term list (default \"Index\")")
	f.StringVar(&flags.overrides.Markup, "markup", "", "text handling: raw, escape or sanitize (default raw)")
	f.StringVar(&flags.overrides.Templates, "templates", "", "folder holding templates/page.tmpl and templates/index.tmpl")
	f.BoolVar(&flags.overrides.Lenient, "lenient", false, "accept a final entry without a trailing blank line")
	f.BoolVarP(&flags.verbose, "verbose", "v", false, "log every written file")

	return cmd
}

func run(cmd *cobra.Command, streams Streams, flags rootFlags) error {
	ctx := cmd.Context()

	var cfg config.Config
	if flags.configPath != "" {
		loaded, err := config.Load(flags.configPath)
		if err != nil {
			return err
		}
		cfg = loaded
	}
	cfg = cfg.Merge(flags.overrides)
	if err := cfg.Validate(); err != nil {
		return err
	}

	input, output, err := prompt.Paths(ctx, prompt.NewDriver(streams.In, streams.Out), cfg.Input, cfg.Output)
	if err != nil {
		return err
	}

	logger := newLogger(streams.Err, flags.verbose)

	mode, err := cfg.MarkupMode()
	if err != nil {
		return err
	}
	policy, err := markup.For(mode)
	if err != nil {
		return err
	}
	renderer, err := html.New(
		html.WithMarkup(policy),
		html.WithTitle(cfg.Title),
		html.WithHeading(cfg.Heading),
		html.WithTemplatesDir(cfg.Templates),
	)
	if err != nil {
		return err
	}

	parserOpts := []glossary.ParseOption{
		glossary.WithDuplicateHandler(func(term string, line int) {
			logger.Warn("duplicate term replaced", "term", term, "line", line)
		}),
	}
	if cfg.Lenient {
		parserOpts = append(parserOpts, glossary.WithLenientEOF())
	}

	gen := orchestrator.New(
		orchestrator.WithParser(glossary.NewParser(parserOpts...)),
		orchestrator.WithRenderer(renderer),
		orchestrator.WithLogger(logger),
	)

	result, err := gen.Generate(ctx, orchestrator.Request{InputPath: input, OutputDir: output})
	if err != nil {
		return err
	}

	_, err = fmt.Fprintln(streams.Out, RenderSummary(output, result))
	return err
}

func newLogger(w io.Writer, verbose bool) *slog.Logger {
	if w == nil {
		w = io.Discard
	}
	level := slog.LevelInfo
	if verbose {
		level = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))
}
