// Package markup decides how glossary text reaches the generated HTML. The
// default Raw policy writes terms and definitions verbatim, so "<" or "&" in
// the source can break page structure; Escape and Sanitize are opt-in.
package markup

import (
	"fmt"
	"html"
	"strings"
	"sync"

	"github.com/microcosm-cc/bluemonday"
)

// Mode names a text policy.
type Mode string

const (
	// ModeRaw writes text unchanged.
	ModeRaw Mode = "raw"
	// ModeEscape HTML-escapes every special character.
	ModeEscape Mode = "escape"
	// ModeSanitize keeps simple inline formatting and drops every other tag.
	ModeSanitize Mode = "sanitize"
)

// Policy transforms glossary text before it is placed into a page. Text is
// used for element content and Attr for attribute values such as link
// targets, which must keep naming the file written for the raw term.
type Policy interface {
	Mode() Mode
	Text(s string) string
	Attr(s string) string
}

// ParseMode resolves a user-supplied mode name. The empty string selects Raw.
func ParseMode(raw string) (Mode, error) {
	switch Mode(strings.ToLower(strings.TrimSpace(raw))) {
	case "", ModeRaw:
		return ModeRaw, nil
	case ModeEscape:
		return ModeEscape, nil
	case ModeSanitize:
		return ModeSanitize, nil
	default:
		return "", fmt.Errorf("markup: unknown mode %q (want raw, escape or sanitize)", raw)
	}
}

// For returns the policy implementing mode.
func For(mode Mode) (Policy, error) {
	switch mode {
	case "", ModeRaw:
		return rawPolicy{}, nil
	case ModeEscape:
		return escapePolicy{}, nil
	case ModeSanitize:
		return sanitizePolicy{policy: inlineSanitizer()}, nil
	default:
		return nil, fmt.Errorf("markup: unknown mode %q", mode)
	}
}

type rawPolicy struct{}

func (rawPolicy) Mode() Mode           { return ModeRaw }
func (rawPolicy) Text(s string) string { return s }
func (rawPolicy) Attr(s string) string { return s }

type escapePolicy struct{}

func (escapePolicy) Mode() Mode           { return ModeEscape }
func (escapePolicy) Text(s string) string { return html.EscapeString(s) }
func (escapePolicy) Attr(s string) string { return html.EscapeString(s) }

type sanitizePolicy struct {
	policy *bluemonday.Policy
}

func (sanitizePolicy) Mode() Mode { return ModeSanitize }

func (p sanitizePolicy) Text(s string) string {
	return p.policy.Sanitize(s)
}

// Attr escapes rather than sanitizes so a tag-bearing term still links to
// its own page.
func (sanitizePolicy) Attr(s string) string {
	return html.EscapeString(s)
}

var (
	inlinePolicyOnce sync.Once
	inlinePolicy     *bluemonday.Policy
)

func inlineSanitizer() *bluemonday.Policy {
	inlinePolicyOnce.Do(func() {
		policy := bluemonday.StrictPolicy()
		policy.AllowElements("b", "i", "em", "strong", "code", "sub", "sup")
		inlinePolicy = policy
	})
	return inlinePolicy
}
