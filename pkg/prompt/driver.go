// Package prompt asks the user for the glossary input file and output folder.
// Terminals get survey prompts; piped stdin is read one line per question.
package prompt

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/AlecAivazis/survey/v2"
	"github.com/AlecAivazis/survey/v2/terminal"
	"github.com/mattn/go-isatty"
)

var (
	// ErrAborted signals the user aborted input (e.g., Ctrl+C).
	ErrAborted = errors.New("prompt: aborted")
	// ErrNoInput is returned when stdin closes before an answer is read.
	ErrNoInput = errors.New("prompt: no input")
)

// InputConfig configures a basic text input prompt.
type InputConfig struct {
	Message   string
	Default   string
	Help      string
	Validator func(string) error
}

// Driver abstracts the prompt implementation so callers can be tested without
// a real terminal.
type Driver interface {
	Input(ctx context.Context, cfg InputConfig) (string, error)
}

// NewDriver returns a survey-backed driver when in is a terminal file and a
// line reader otherwise.
func NewDriver(in io.Reader, out io.Writer) Driver {
	inFile, inOK := in.(*os.File)
	outFile, outOK := out.(*os.File)
	if inOK && outOK && isTerminal(inFile) {
		return &surveyDriver{in: inFile, out: outFile}
	}
	if in == nil {
		in = os.Stdin
	}
	return NewLineDriver(in, out)
}

func isTerminal(f *os.File) bool {
	fd := f.Fd()
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}

type surveyDriver struct {
	in  *os.File
	out *os.File
}

func (d *surveyDriver) Input(ctx context.Context, cfg InputConfig) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	var out string
	prompt := &survey.Input{
		Message: cfg.Message,
		Help:    cfg.Help,
		Default: cfg.Default,
	}
	opts := []survey.AskOpt{survey.WithStdio(d.in, d.out, d.out)}
	if cfg.Validator != nil {
		opts = append(opts, survey.WithValidator(func(ans any) error {
			s, _ := ans.(string)
			return cfg.Validator(s)
		}))
	}
	if err := survey.AskOne(prompt, &out, opts...); err != nil {
		return "", translateSurveyErr(err)
	}
	return out, nil
}

func translateSurveyErr(err error) error {
	if errors.Is(err, terminal.InterruptErr) {
		return ErrAborted
	}
	return err
}

// LineDriver prints the message and reads a single line per prompt.
type LineDriver struct {
	r   *bufio.Reader
	out io.Writer
}

// NewLineDriver builds a driver over arbitrary streams.
func NewLineDriver(in io.Reader, out io.Writer) *LineDriver {
	if out == nil {
		out = io.Discard
	}
	return &LineDriver{r: bufio.NewReader(in), out: out}
}

// Input writes the message followed by a space and returns the line without
// its terminator. Surrounding spaces are kept. An empty answer falls back to
// cfg.Default.
func (d *LineDriver) Input(ctx context.Context, cfg InputConfig) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	if _, err := fmt.Fprint(d.out, cfg.Message+" "); err != nil {
		return "", err
	}

	line, err := d.r.ReadString('\n')
	if err != nil && !errors.Is(err, io.EOF) {
		return "", fmt.Errorf("prompt: read answer: %w", err)
	}
	if errors.Is(err, io.EOF) && line == "" {
		return "", ErrNoInput
	}

	answer := strings.TrimSuffix(strings.TrimSuffix(line, "\n"), "\r")
	if answer == "" {
		answer = cfg.Default
	}
	if cfg.Validator != nil {
		if verr := cfg.Validator(answer); verr != nil {
			return "", verr
		}
	}
	return answer, nil
}
