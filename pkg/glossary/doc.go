// Package glossary parses the line-oriented term/definition format, orders the
// parsed entries by term and splits definitions into cross-linkable segments.
// Rendering lives in pkg/renderers/html; file output in pkg/output.
package glossary
