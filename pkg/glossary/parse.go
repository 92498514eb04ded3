package glossary

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
)

var (
	// ErrMissingDefinition is returned when a term line is the last line of the
	// input.
	ErrMissingDefinition = errors.New("glossary: term has no definition")
	// ErrUnterminatedEntry is returned when the final definition block is not
	// followed by a blank line.
	ErrUnterminatedEntry = errors.New("glossary: entry not terminated by a blank line")
)

// ParseOption configures a Parser.
type ParseOption func(*Parser)

// WithDuplicateHandler registers a callback invoked whenever a term appears a
// second time. The later definition still replaces the earlier one.
func WithDuplicateHandler(fn func(term string, line int)) ParseOption {
	return func(p *Parser) {
		p.onDuplicate = fn
	}
}

// WithLenientEOF accepts a final entry that runs into end of input without the
// trailing blank line.
func WithLenientEOF() ParseOption {
	return func(p *Parser) {
		p.lenientEOF = true
	}
}

// Parser reads the glossary source format: a term line, one or more definition
// lines, then a blank line, repeated until end of input. No validation beyond
// that is performed.
type Parser struct {
	onDuplicate func(term string, line int)
	lenientEOF  bool
}

// NewParser constructs a Parser with the supplied options.
func NewParser(options ...ParseOption) *Parser {
	p := &Parser{}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(p)
	}
	return p
}

// Parse reads r to exhaustion using a default Parser.
func Parse(r io.Reader) (Glossary, error) {
	return NewParser().Parse(r)
}

// Parse reads r to exhaustion and returns the term to definition mapping.
func (p *Parser) Parse(r io.Reader) (Glossary, error) {
	lines := newLineReader(r)
	out := make(Glossary)

	for {
		term, ok, err := lines.next()
		if err != nil {
			return nil, err
		}
		if !ok {
			return out, nil
		}
		termLine := lines.number

		first, ok, err := lines.next()
		if err != nil {
			return nil, err
		}
		if !ok {
			return nil, fmt.Errorf("line %d: %q: %w", termLine, term, ErrMissingDefinition)
		}

		var definition strings.Builder
		line := first
		for line != "" {
			definition.WriteString(line)
			line, ok, err = lines.next()
			if err != nil {
				return nil, err
			}
			if !ok {
				if !p.lenientEOF {
					return nil, fmt.Errorf("line %d: %q: %w", termLine, term, ErrUnterminatedEntry)
				}
				break
			}
		}

		if out.Add(term, definition.String()) && p.onDuplicate != nil {
			p.onDuplicate(term, termLine)
		}
		if !ok {
			return out, nil
		}
	}
}

// ParseFile opens path and parses it. The file is closed before returning.
func (p *Parser) ParseFile(ctx context.Context, path string) (Glossary, error) {
	if strings.TrimSpace(path) == "" {
		return nil, errors.New("glossary: input path is required")
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, fmt.Errorf("glossary: resolve %s: %w", path, err)
	}
	file, err := os.Open(abs)
	if err != nil {
		return nil, fmt.Errorf("glossary: open input: %w", err)
	}
	defer file.Close()

	out, err := p.Parse(file)
	if err != nil {
		return nil, fmt.Errorf("glossary: parse %s: %w", path, err)
	}
	return out, nil
}

type lineReader struct {
	r      *bufio.Reader
	number int
	done   bool
}

func newLineReader(r io.Reader) *lineReader {
	return &lineReader{r: bufio.NewReader(r)}
}

// next returns the following line without its terminator. ok is false once the
// input is exhausted.
func (l *lineReader) next() (string, bool, error) {
	if l.done {
		return "", false, nil
	}
	line, err := l.r.ReadString('\n')
	if err != nil && !errors.Is(err, io.EOF) {
		return "", false, fmt.Errorf("glossary: read line %d: %w", l.number+1, err)
	}
	if errors.Is(err, io.EOF) {
		l.done = true
		if line == "" {
			return "", false, nil
		}
	}
	l.number++
	line = strings.TrimSuffix(line, "\n")
	line = strings.TrimSuffix(line, "\r")
	return line, true, nil
}
