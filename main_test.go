package main

import (
	"bytes"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// assertOrder checks that each part appears in out, after the previous one.
func assertOrder(t *testing.T, out string, parts ...string) {
	t.Helper()
	last := -1
	for _, part := range parts {
		idx := strings.Index(out, part)
		require.GreaterOrEqual(t, idx, 0, "expected output to contain %q\n\n%s", part, out)
		require.Greater(t, idx, last, "expected %q to appear later in the output\n\n%s", part, out)
		last = idx
	}
}

func TestReportEndToEnd(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, run([]string{"./testdata/example"}, &buf))
	out := buf.String()

	assertOrder(t, out,
		"# Project Documentation",
		"_Generated on ",
		"# File: `example.go`",
		"## `Answer`",
		"Answer documents an exported constant; see `Greeter`.",
		"## `Greeter`",
		"## `Greeter.Name`",
		"## `NewGreeter(string)`",
		"### Parameters",
		"| `name` | The default recipient name. |",
		"### Returns",
		"A ready-to-use greeter.",
		"## `Greeter.Greet(string, bool)`",
		"[the style guide](https://example.com/style)",
		"| `name` | The recipient name; falls back to `Greeter.Name` when empty. |",
		"| `polite` | Adds an honorific when set. |",
		"```go\ng := NewGreeter(\"dev\")\nfmt.Println(g.Greet(\"\", true))\n```",
		"# File: `malformed.go`",
		noCommentsPlaceholder,
		"# File: `plain.go`",
		"# File: `subpkg/sub.go`",
		"## `Message`",
	)

	// Malformed fragments are skipped, prose-only comments never render, and
	// raw tags never leak into the report.
	assert.NotContains(t, out, "Broken")
	assert.NotContains(t, out, "internalLimit")
	assert.NotContains(t, out, "Plain is documented")
	assert.NotContains(t, out, "<summary>")

	// Every member section closes with a rule, and the placeholder files get
	// one too: Answer, Greeter, Name, NewGreeter, Greet, Message, plus two
	// placeholder separators.
	assert.Equal(t, 8, strings.Count(out, "\n---\n"))
}

func TestUnexportedFlag(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, run([]string{"-u", "./testdata/example"}, &buf))
	assert.Contains(t, buf.String(), "## `internalLimit`")
}

func TestOutputFlagWritesFile(t *testing.T) {
	tmp := t.TempDir()
	target := filepath.Join(tmp, "docs", "API.md")
	require.NoError(t, run([]string{"-o", target, "./testdata/example"}, io.Discard))
	content, err := os.ReadFile(target)
	require.NoError(t, err)
	assert.Contains(t, string(content), "# Project Documentation")
	assert.Contains(t, string(content), "## `Greeter.Greet(string, bool)`")
}

func TestConfigFileSetsTitle(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, run([]string{"--config", "testdata/config/docxml.yaml", "./testdata/example"}, &buf))
	assert.Contains(t, buf.String(), "# Example Docs")
}

func TestWatchRequiresOutput(t *testing.T) {
	err := run([]string{"--watch", "./testdata/example"}, io.Discard)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "--watch requires")
}

func TestTooManyArguments(t *testing.T) {
	err := run([]string{"./a", "./b"}, io.Discard)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "at most one package root")
}

func TestHelpFlag(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, run([]string{"--help"}, &buf))
	out := buf.String()
	assert.Contains(t, out, "go-docxml [flags] [package-root]")
	assert.Contains(t, out, "--watch")
	assert.Contains(t, out, "completion  Generate shell completion scripts")
}

func TestCompletionCommand(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, run([]string{"completion", "bash"}, &buf))
	require.NotZero(t, buf.Len())
	assert.Contains(t, buf.String(), "__start_go-docxml")
}

func TestGenDocsCommand(t *testing.T) {
	tmp := t.TempDir()
	require.NoError(t, run([]string{"gen-docs", tmp}, io.Discard))
	files, err := os.ReadDir(tmp)
	require.NoError(t, err)
	require.NotEmpty(t, files)
	var foundRoot bool
	for _, f := range files {
		if f.Name() == "go-docxml.md" {
			foundRoot = true
			break
		}
	}
	assert.True(t, foundRoot, "expected go-docxml.md in docs output, got %v", files)
}
