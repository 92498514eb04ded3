package cli

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/goliatone/go-glossgen/pkg/orchestrator"
)

var (
	colorGreen = lipgloss.Color("#8ec07c")
	colorDim   = lipgloss.Color("#928374")

	styleOK   = lipgloss.NewStyle().Foreground(colorGreen).Bold(true)
	styleDim  = lipgloss.NewStyle().Foreground(colorDim)
	styleTerm = lipgloss.NewStyle().Bold(true)
)

// maxListedTerms caps how many terms the summary names before eliding.
const maxListedTerms = 8

// RenderSummary describes a completed run for the terminal.
func RenderSummary(outputDir string, result orchestrator.Result) string {
	var b strings.Builder

	b.WriteString(styleOK.Render("✓ glossary written"))
	b.WriteString(" ")
	b.WriteString(styleDim.Render(fmt.Sprintf("%d terms, %d files → %s", len(result.Entries), len(result.Files), outputDir)))

	for i, entry := range result.Entries {
		if i == maxListedTerms {
			b.WriteString("\n  ")
			b.WriteString(styleDim.Render(fmt.Sprintf("… and %d more", len(result.Entries)-maxListedTerms)))
			break
		}
		b.WriteString("\n  ")
		b.WriteString(styleTerm.Render(entry.Term))
	}
	return b.String()
}
