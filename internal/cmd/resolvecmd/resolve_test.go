package resolvecmd

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/open-cli-collective/searchui-cli/internal/cmdutil"
	"github.com/open-cli-collective/searchui-cli/internal/view"
	"github.com/open-cli-collective/searchui-cli/pkg/schema"
)

const testDocumentation = `[
	{"name": "Searchbox"},
	{"name": "Searchbox.options.enableSearchAsYouType", "type": "boolean"},
	{"name": "ResultLink"},
	{"name": "ResultLink.options.alwaysOpenInNewWindow", "type": "boolean"}
]`

func testSession(t *testing.T, format view.Format) (*cmdutil.Session, *bytes.Buffer) {
	t.Helper()
	store, err := schema.Parse([]byte(testDocumentation), nil)
	require.NoError(t, err)

	var buf bytes.Buffer
	renderer := view.NewRenderer(format, true)
	renderer.SetWriter(&buf)
	return cmdutil.NewSessionWith(store, renderer), &buf
}

func writeMarkup(t *testing.T, markup string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "index.html")
	require.NoError(t, os.WriteFile(path, []byte(markup), 0644))
	return path
}

// at returns the one-based line and column of the offset-th byte after the
// first occurrence of needle in markup.
func at(t *testing.T, markup, needle string, offset int) (int, int) {
	t.Helper()
	idx := strings.Index(markup, needle)
	require.GreaterOrEqual(t, idx, 0, "needle %q not found", needle)
	idx += offset
	line := strings.Count(markup[:idx], "\n")
	col := idx - (strings.LastIndex(markup[:idx], "\n") + 1)
	return line + 1, col + 1
}

func TestRunResolve(t *testing.T) {
	const markup = `<div class="CoveoSearchbox" data-enable-search-as-you-type="true"></div>
<script type="text/html" class="result-template">
  <div><a class="CoveoResultLink" data-always-open-in-new-window="false"></a></div>
</script>
<p>nothing</p>`

	tests := []struct {
		name      string
		needle    string
		offset    int
		state     string
		component string
		option    string
		url       string
	}{
		{
			name: "option outside template", needle: "data-enable", offset: 2,
			state: "option", component: "Searchbox", option: "enableSearchAsYouType",
			url: "https://coveo.github.io/search-ui/components/searchbox.html#options.enablesearchasyoutype",
		},
		{
			name: "component outside template", needle: "<div class=\"CoveoSearchbox\"", offset: 2,
			state: "component", component: "Searchbox",
			url: "https://coveo.github.io/search-ui/components/searchbox.html",
		},
		{
			name: "option in template", needle: "data-always", offset: 3,
			state: "option-in-template", component: "ResultLink", option: "alwaysOpenInNewWindow",
			url: "https://coveo.github.io/search-ui/components/resultlink.html#options.alwaysopeninnewwindow",
		},
		{
			name: "template attribute", needle: "type=\"text/html\"", offset: 7,
			state: "template-attribute",
		},
		{
			name: "nothing", needle: "nothing", offset: 1,
			state: "none",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			session, buf := testSession(t, view.FormatJSON)
			path := writeMarkup(t, markup)
			line, col := at(t, markup, tt.needle, tt.offset)

			require.NoError(t, runResolve(&resolveOptions{file: path, line: line, col: col}, session))

			var res result
			require.NoError(t, json.Unmarshal(buf.Bytes(), &res))
			assert.Equal(t, tt.state, res.State)
			assert.Equal(t, tt.component, res.Component)
			assert.Equal(t, tt.option, res.Option)
			assert.Equal(t, tt.url, res.URL)
		})
	}
}

func TestRunResolve_ElementRangeInOuterDocument(t *testing.T) {
	const markup = "<script type=\"text/html\" class=\"result-template\">\n  <a class=\"CoveoResultLink\"></a>\n</script>"
	session, buf := testSession(t, view.FormatJSON)
	path := writeMarkup(t, markup)
	line, col := at(t, markup, "CoveoResultLink", 1)

	require.NoError(t, runResolve(&resolveOptions{file: path, line: line, col: col}, session))

	var res result
	require.NoError(t, json.Unmarshal(buf.Bytes(), &res))
	require.NotNil(t, res.Element)
	assert.Equal(t, 1, res.Element.Start.Line)
	assert.Equal(t, 2, res.Element.Start.Character)
	require.NotNil(t, res.Template)
	assert.Equal(t, 0, res.Template.Start.Line)
}

func TestRunResolve_TableOutput(t *testing.T) {
	const markup = `<div class="CoveoSearchbox" data-enable-search-as-you-type="true"></div>`
	session, buf := testSession(t, view.FormatTable)
	session.Config.DocsBaseURL = "https://docs.example.com/components"
	path := writeMarkup(t, markup)
	line, col := at(t, markup, "data-enable", 2)

	require.NoError(t, runResolve(&resolveOptions{file: path, line: line, col: col}, session))

	out := buf.String()
	assert.Contains(t, out, "State: option")
	assert.Contains(t, out, "Component: Searchbox")
	assert.Contains(t, out, "Type: boolean")
	assert.Contains(t, out, "Documentation: https://docs.example.com/components/searchbox.html#options.enablesearchasyoutype")
}
