// Package orchestrator wires the parse → sort → render → write pipeline that
// turns a glossary source file into a folder of cross-linked HTML pages.
package orchestrator
