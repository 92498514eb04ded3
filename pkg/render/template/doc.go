// Package template defines the engine seam the glossary renderers depend on.
// The pongo2-backed implementation lives in the gotemplate subpackage.
package template
