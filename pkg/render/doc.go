// Package render declares the renderer contract shared by the orchestrator and
// the built-in HTML renderer, along with the page and index view inputs.
package render
