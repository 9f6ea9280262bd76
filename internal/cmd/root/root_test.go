package root

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewCmdRoot(t *testing.T) {
	cmd := NewCmdRoot()

	assert.Equal(t, "sui", cmd.Use)
	for _, name := range []string{"config", "output", "no-color", "documentation", "log-level", "log-format"} {
		assert.NotNil(t, cmd.PersistentFlags().Lookup(name), name)
	}

	var names []string
	for _, sub := range cmd.Commands() {
		names = append(names, sub.Name())
	}
	assert.Subset(t, names, []string{
		"init", "config", "lint", "complete", "resolve", "preview",
		"lens", "component", "docs", "completion",
	})
}

func TestRoot_Version(t *testing.T) {
	cmd := NewCmdRoot()
	buf := new(bytes.Buffer)
	cmd.SetOut(buf)
	cmd.SetArgs([]string{"--version"})

	require.NoError(t, cmd.Execute())
	assert.Contains(t, buf.String(), "sui version dev")
}

func TestRoot_InvalidOutputFormat(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	cmd := NewCmdRoot()
	cmd.SetArgs([]string{"-o", "xml", "component", "list"})

	err := cmd.Execute()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid output format")
}

func TestRoot_InvalidLogLevel(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	cmd := NewCmdRoot()
	cmd.SetArgs([]string{"--log-level", "chatty", "component", "list"})

	err := cmd.Execute()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid log level")
}

func TestRoot_LintEndToEnd(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", dir)

	raw := filepath.Join(dir, "docgen.json")
	require.NoError(t, os.WriteFile(raw, []byte(`[
		{"name": "Facet"},
		{"name": "Facet.options.field", "type": "IFieldOption", "miscAttributes": {"required": true}}
	]`), 0644))
	page := filepath.Join(dir, "index.html")
	require.NoError(t, os.WriteFile(page, []byte(`<div class="CoveoFacet" data-field="@author"></div>`), 0644))

	build := NewCmdRoot()
	build.SetArgs([]string{"-o", "plain", "--no-color", "docs", "build", raw})
	require.NoError(t, build.Execute())

	lint := NewCmdRoot()
	lint.SetArgs([]string{"-o", "plain", "--no-color", "lint", page})
	require.NoError(t, lint.Execute())
}
