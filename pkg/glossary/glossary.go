package glossary

import "sort"

// Entry pairs a term with its definition. Multi-line definitions are stored
// with their source lines joined without a separator.
type Entry struct {
	Term       string `json:"term"`
	Definition string `json:"definition"`
}

// Glossary maps each term to its definition. Later duplicates replace earlier
// ones.
type Glossary map[string]string

// Add inserts or replaces the definition for term and reports whether an
// existing definition was replaced.
func (g Glossary) Add(term, definition string) bool {
	_, replaced := g[term]
	g[term] = definition
	return replaced
}

// Entries drains the glossary into a slice ordered by term.
func (g Glossary) Entries() []Entry {
	entries := make([]Entry, 0, len(g))
	for term, definition := range g {
		entries = append(entries, Entry{Term: term, Definition: definition})
	}
	SortEntries(entries)
	return entries
}

// Terms returns the terms of the provided entries in their current order.
func Terms(entries []Entry) []string {
	out := make([]string, len(entries))
	for i, entry := range entries {
		out[i] = entry.Term
	}
	return out
}

// SortEntries orders entries by term using byte-wise string comparison. It is
// not locale aware: "Zebra" sorts before "apple".
func SortEntries(entries []Entry) {
	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].Term < entries[j].Term
	})
}

// TermSet answers exact, case-sensitive membership queries for known terms.
type TermSet map[string]struct{}

// NewTermSet builds a set from the provided terms.
func NewTermSet(terms ...string) TermSet {
	set := make(TermSet, len(terms))
	for _, term := range terms {
		set[term] = struct{}{}
	}
	return set
}

// Has reports whether token equals a known term.
func (s TermSet) Has(token string) bool {
	_, ok := s[token]
	return ok
}
