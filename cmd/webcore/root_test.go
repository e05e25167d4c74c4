package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func execute(t *testing.T, args ...string) (string, string, error) {
	cmd := newRootCmd()
	var out, errout bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&errout)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), errout.String(), err
}

func writeFile(t *testing.T, name, content string) string {
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestSampleTree(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "webcore.cmd")
	defer teardown()
	//
	out, _, err := execute(t)
	require.NoError(t, err)
	t.Logf("output:\n%s", out)
	assert.Contains(t, out, "<div>#main.note")
	assert.Contains(t, out, "color: #336699")
	assert.Contains(t, out, "margin-top: 12px")
}

func TestFormats(t *testing.T) {
	out, _, err := execute(t, "--format", "dot")
	require.NoError(t, err)
	assert.Contains(t, out, "digraph g {")
	out, _, err = execute(t, "--format", "html")
	require.NoError(t, err)
	assert.Contains(t, out, `<div class="note" id="main">`)
	out, _, err = execute(t, "--format", "css")
	require.NoError(t, err)
	assert.Contains(t, out, "#main { margin-top: 12px; }")
	_, _, err = execute(t, "--format", "pdf")
	assert.Error(t, err)
}

func TestStylesheetFlags(t *testing.T) {
	doc := writeFile(t, "doc.html", `<p class="x">hi</p>`)
	css1 := writeFile(t, "a.css", `p { color: red; }`)
	css2 := writeFile(t, "b.css", `p { color: blue; } .x { display: block; }`)
	for _, engine := range []string{"native", "douceur"} {
		out, _, err := execute(t, "--engine", engine, "--css", css1, "--css", css2, doc)
		require.NoError(t, err, engine)
		assert.Contains(t, out, "color: blue", engine)
		assert.Contains(t, out, "display: block", engine)
	}
	_, _, err := execute(t, "--engine", "gecko", doc)
	assert.Error(t, err)
	_, _, err = execute(t, "--css", "does-not-exist.css", doc)
	assert.Error(t, err)
}

func TestParseErrorIsReported(t *testing.T) {
	doc := writeFile(t, "bad.html", `<p>unclosed`)
	_, errout, err := execute(t, doc)
	require.Error(t, err)
	assert.Contains(t, errout, "error:")
}

func TestConfigFile(t *testing.T) {
	css := writeFile(t, "a.css", `em { font-style: italic; }`)
	cfg := writeFile(t, "webcore.yaml", "css:\n  - "+css+"\nformat: css\ntrace: info\n")
	out, _, err := execute(t, "--config", cfg)
	require.NoError(t, err)
	assert.Contains(t, out, "em { font-style: italic; }")
	// command line flags win over the config file
	out, _, err = execute(t, "--config", cfg, "--format", "tree")
	require.NoError(t, err)
	assert.Contains(t, out, "font-style: italic")
	assert.NotContains(t, out, "em { font-style")
	_, _, err = execute(t, "--config", writeFile(t, "bad.yaml", "css: [unclosed"))
	assert.Error(t, err)
	_, _, err = execute(t, "--trace", "verbose")
	assert.Error(t, err)
}

func TestMergeConfig(t *testing.T) {
	base := defaultConfig()
	merged := base.merge(Config{Engine: "douceur"})
	assert.Equal(t, "douceur", merged.Engine)
	assert.Equal(t, "tree", merged.Format)
	assert.Equal(t, "error", merged.Trace)
	assert.Empty(t, merged.CSS)
}
