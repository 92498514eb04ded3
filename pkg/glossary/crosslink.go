package glossary

import "strings"

// Segment is a single definition token. Link is set when Text names a known
// term and should point at that term's page.
type Segment struct {
	Text string
	Link bool
}

// CrossLink splits definition on runs of ASCII whitespace and flags every
// token that exactly matches a member of terms. Substrings never match: with
// the term "term", the token "terms" stays plain text. Non-ASCII spaces such
// as U+00A0 are part of the token.
func CrossLink(definition string, terms TermSet) []Segment {
	tokens := strings.FieldsFunc(definition, isSeparator)
	segments := make([]Segment, 0, len(tokens))
	for _, token := range tokens {
		segments = append(segments, Segment{Text: token, Link: terms.Has(token)})
	}
	return segments
}

// PageName returns the file name of the page generated for term.
func PageName(term string) string {
	return term + ".html"
}

func isSeparator(r rune) bool {
	switch r {
	case ' ', '\t', '\n', '\v', '\f', '\r':
		return true
	default:
		return false
	}
}
