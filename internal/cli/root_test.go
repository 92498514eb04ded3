package cli_test

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/goliatone/go-glossgen/internal/cli"
	"github.com/goliatone/go-glossgen/pkg/glossary"
	"github.com/goliatone/go-glossgen/pkg/orchestrator"
	"github.com/goliatone/go-glossgen/pkg/output"
	"github.com/goliatone/go-glossgen/pkg/prompt"
	"github.com/goliatone/go-glossgen/pkg/testsupport"
)

const fruits = "banana\nA yellow fruit\n\napple\nA red fruit, not a banana\n\n"

func execute(t *testing.T, stdin string, args ...string) (string, string, error) {
	t.Helper()
	var out, errOut bytes.Buffer
	cmd := cli.NewRootCommand(cli.Streams{In: strings.NewReader(stdin), Out: &out, Err: &errOut})
	cmd.SetArgs(args)
	err := cmd.ExecuteContext(context.Background())
	return out.String(), errOut.String(), err
}

func TestRoot_PromptsForPaths(t *testing.T) {
	input := testsupport.WriteInput(t, fruits)
	outDir := t.TempDir()

	stdout, _, err := execute(t, input+"\n"+outDir+"\n")
	require.NoError(t, err)

	assert.Contains(t, stdout, prompt.InputMessage)
	assert.Contains(t, stdout, prompt.OutputMessage)
	assert.Contains(t, stdout, "2 terms, 3 files")

	tree := testsupport.ReadTree(t, outDir)
	require.Len(t, tree, 3)
	assert.Contains(t, tree["apple.html"], `not a <a href="banana.html">banana</a> <hr />`)
	assert.Less(t, strings.Index(tree["index.html"], "apple.html"), strings.Index(tree["index.html"], "banana.html"))
}

func TestRoot_FlagsSkipPrompts(t *testing.T) {
	input := testsupport.WriteInput(t, fruits)
	outDir := t.TempDir()

	stdout, _, err := execute(t, "", "--input", input, "--output", outDir, "--title", "Fruit")
	require.NoError(t, err)

	assert.NotContains(t, stdout, prompt.InputMessage)
	index, err := os.ReadFile(filepath.Join(outDir, "index.html"))
	require.NoError(t, err)
	assert.Contains(t, string(index), "<h1>Fruit</h1>")
}

func TestRoot_ConfigFileWithFlagOverride(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "words.txt"), []byte("a&b\nx < y\n\n"), 0o644))
	require.NoError(t, os.Mkdir(filepath.Join(dir, "site"), 0o755))
	cfgPath := filepath.Join(dir, "glossgen.yaml")
	require.NoError(t, os.WriteFile(cfgPath, []byte("input: words.txt\noutput: site\nmarkup: raw\n"), 0o644))

	_, _, err := execute(t, "", "--config", cfgPath, "--markup", "escape")
	require.NoError(t, err)

	page, err := os.ReadFile(filepath.Join(dir, "site", "a&b.html"))
	require.NoError(t, err)
	assert.Contains(t, string(page), "<title>a&amp;b</title>")
	assert.Contains(t, string(page), "x &lt; y <hr />")
}

func TestRoot_MissingOutputFolder(t *testing.T) {
	input := testsupport.WriteInput(t, fruits)

	_, _, err := execute(t, "", "-i", input, "-o", filepath.Join(t.TempDir(), "absent"))
	require.ErrorIs(t, err, output.ErrFolderMissing)
}

func TestRoot_LenientFlag(t *testing.T) {
	input := testsupport.WriteInput(t, "alpha\nfirst letter")
	outDir := t.TempDir()

	_, _, err := execute(t, "", "-i", input, "-o", outDir)
	require.ErrorIs(t, err, glossary.ErrUnterminatedEntry)

	_, _, err = execute(t, "", "-i", input, "-o", outDir, "--lenient")
	require.NoError(t, err)
	assert.FileExists(t, filepath.Join(outDir, "alpha.html"))
}

func TestRoot_VerboseLogsDuplicates(t *testing.T) {
	input := testsupport.WriteInput(t, "x\none\n\nx\ntwo\n\n")

	_, stderr, err := execute(t, "", "-i", input, "-o", t.TempDir(), "-v")
	require.NoError(t, err)
	assert.Contains(t, stderr, "duplicate term replaced")
	assert.Contains(t, stderr, "page written")
}

func TestRoot_LogsSummaryAtInfo(t *testing.T) {
	input := testsupport.WriteInput(t, fruits)

	_, stderr, err := execute(t, "", "-i", input, "-o", t.TempDir())
	require.NoError(t, err)
	assert.Contains(t, stderr, "level=INFO")
	assert.Contains(t, stderr, "glossary generated")
	assert.NotContains(t, stderr, "page written")
}

func TestRoot_TemplatesFolder(t *testing.T) {
	input := testsupport.WriteInput(t, fruits)
	outDir := t.TempDir()
	theme := t.TempDir()
	require.NoError(t, os.Mkdir(filepath.Join(theme, "templates"), 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(theme, "templates", "page.tmpl"), []byte("<h1>{{ term }}</h1>"), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(theme, "templates", "index.tmpl"), []byte("{{ terms|length }} terms"), 0o644))

	_, _, err := execute(t, "", "-i", input, "-o", outDir, "--templates", theme)
	require.NoError(t, err)

	tree := testsupport.ReadTree(t, outDir)
	assert.Equal(t, "2 terms\n", tree["index.html"])
	assert.Equal(t, "<h1>apple</h1>\n", tree["apple.html"])
}

func TestRoot_RejectsUnknownMarkup(t *testing.T) {
	_, _, err := execute(t, "", "-i", "x", "-o", "y", "--markup", "html")
	require.Error(t, err)
}

func TestRenderSummary_ElidesLongLists(t *testing.T) {
	var entries []glossary.Entry
	for _, term := range strings.Split("a b c d e f g h i j", " ") {
		entries = append(entries, glossary.Entry{Term: term})
	}

	got := cli.RenderSummary("site", orchestrator.Result{Entries: entries, Files: make([]string, 11)})

	assert.Contains(t, got, "10 terms, 11 files")
	assert.Contains(t, got, "and 2 more")
	assert.NotContains(t, got, "\n  i")
}
