package cmdutil

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/open-cli-collective/searchui-cli/internal/config"
	"github.com/open-cli-collective/searchui-cli/internal/view"
	"github.com/open-cli-collective/searchui-cli/pkg/document"
	"github.com/open-cli-collective/searchui-cli/pkg/schema"
)

const testDocumentation = `[
	{"name": "Searchbox", "comment": "A search box."},
	{"name": "Searchbox.options.enableSearchAsYouType", "type": "boolean"}
]`

func testCommand() *cobra.Command {
	cmd := &cobra.Command{Use: "test"}
	cmd.Flags().StringP("config", "c", "", "")
	cmd.Flags().StringP("output", "o", "table", "")
	cmd.Flags().Bool("no-color", false, "")
	cmd.Flags().StringP("documentation", "d", "", "")
	return cmd
}

func TestGlobalFlags(t *testing.T) {
	cmd := testCommand()
	require.NoError(t, cmd.Flags().Parse([]string{"-o", "json", "--no-color", "-d", "docs.json"}))

	g := GlobalFlags(cmd)
	assert.Equal(t, "json", g.Output)
	assert.True(t, g.NoColor)
	assert.Equal(t, "docs.json", g.Documentation)
	assert.True(t, g.outputSet)
}

func TestGlobal_Renderer(t *testing.T) {
	tests := []struct {
		name      string
		output    string
		outputSet bool
		cfg       *config.Config
		want      view.Format
		wantErr   bool
	}{
		{"default", "table", false, &config.Config{}, view.FormatTable, false},
		{"config wins over default", "table", false, &config.Config{OutputFormat: "json"}, view.FormatJSON, false},
		{"flag wins over config", "plain", true, &config.Config{OutputFormat: "json"}, view.FormatPlain, false},
		{"invalid", "xml", true, nil, "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g := &Global{Output: tt.output, NoColor: true, outputSet: tt.outputSet}
			r, err := g.Renderer(tt.cfg)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, r.Format())
		})
	}
}

func TestGlobal_DocumentationPath(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())

	g := &Global{}
	assert.Equal(t, config.DefaultDocumentationPath(), g.DocumentationPath(nil))
	assert.Equal(t, "cfg.json", g.DocumentationPath(&config.Config{Documentation: "cfg.json"}))

	g.Documentation = "flag.json"
	assert.Equal(t, "flag.json", g.DocumentationPath(&config.Config{Documentation: "cfg.json"}))
}

func TestGlobal_NewSession(t *testing.T) {
	tmpDir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", tmpDir)
	docsPath := filepath.Join(tmpDir, "documentation.json")
	require.NoError(t, os.WriteFile(docsPath, []byte(testDocumentation), 0644))

	g := &Global{Output: "plain", NoColor: true, Documentation: docsPath}
	s, err := g.NewSession()
	require.NoError(t, err)
	assert.Equal(t, 1, s.Store.Len())
	assert.NotNil(t, s.Engine)
	assert.Equal(t, view.FormatPlain, s.Renderer.Format())
}

func TestLoadStore_Missing(t *testing.T) {
	_, err := LoadStore(filepath.Join(t.TempDir(), "nope.json"))
	require.Error(t, err)
	assert.True(t, errors.Is(err, schema.ErrNoDocumentation))
	assert.Contains(t, err.Error(), "sui docs build")
}

func TestReadDocument(t *testing.T) {
	path := filepath.Join(t.TempDir(), "page.cmp")
	require.NoError(t, os.WriteFile(path, []byte("<div></div>"), 0644))

	doc, err := ReadDocument(path)
	require.NoError(t, err)
	assert.Equal(t, "aura", doc.LanguageID())
	assert.Equal(t, "<div></div>", doc.Text())
	assert.Contains(t, doc.URI(), "file://")

	_, err = ReadDocument(filepath.Join(t.TempDir(), "missing.html"))
	require.Error(t, err)
}

func TestPosition(t *testing.T) {
	pos, err := Position(3, 7)
	require.NoError(t, err)
	assert.Equal(t, document.Position{Line: 2, Character: 6}, pos)

	_, err = Position(0, 1)
	require.Error(t, err)
}

func TestSession_DocsBaseURL(t *testing.T) {
	store, err := schema.Parse([]byte(testDocumentation), nil)
	require.NoError(t, err)

	s := NewSessionWith(store, view.NewRenderer(view.FormatPlain, true))
	assert.Equal(t, "https://coveo.github.io/search-ui/components/", s.DocsBaseURL())

	s.Config.DocsBaseURL = "https://docs.example.com/"
	assert.Equal(t, "https://docs.example.com/", s.DocsBaseURL())
}
