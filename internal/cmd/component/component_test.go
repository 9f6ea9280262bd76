package component

import (
	"bytes"
	"encoding/json"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/open-cli-collective/searchui-cli/internal/cmdutil"
	"github.com/open-cli-collective/searchui-cli/internal/view"
	"github.com/open-cli-collective/searchui-cli/pkg/schema"
)

const testDocumentation = `[
	{"name": "Searchbox", "comment": "<p>The Searchbox component.</p><p>More details.</p>"},
	{"name": "Searchbox.options.enableSearchAsYouType", "type": "boolean", "miscAttributes": {"defaultValue": false}},
	{"name": "Facet", "comment": "Displays a facet."},
	{"name": "Facet.options.field", "type": "IFieldOption", "miscAttributes": {"required": true}},
	{"name": "DynamicFacet"},
	{"name": "QueryEvents"}
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

func TestNewCmdComponent(t *testing.T) {
	cmd := NewCmdComponent()

	assert.Equal(t, "component", cmd.Use)
	assert.Len(t, cmd.Commands(), 2)
}

func TestRunList(t *testing.T) {
	session, buf := testSession(t, view.FormatTable)

	require.NoError(t, runList(&listOptions{}, session))

	out := buf.String()
	assert.Contains(t, out, "CoveoSearchbox")
	assert.Contains(t, out, "The Searchbox component.")
	assert.NotContains(t, out, "More details.")
	assert.NotContains(t, out, "QueryEvents")
}

func TestRunList_FilterJSON(t *testing.T) {
	session, buf := testSession(t, view.FormatJSON)

	require.NoError(t, runList(&listOptions{filter: "FACET"}, session))

	var items []listItem
	require.NoError(t, json.Unmarshal(buf.Bytes(), &items))
	require.Len(t, items, 2)
	assert.Equal(t, "DynamicFacet", items[0].Name)
	assert.Equal(t, "Facet", items[1].Name)
	assert.Equal(t, 1, items[1].Options)
	assert.Equal(t, "CoveoFacet", items[1].Class)
}

func TestRunList_NoMatch(t *testing.T) {
	session, buf := testSession(t, view.FormatPlain)

	require.NoError(t, runList(&listOptions{filter: "pager"}, session))
	assert.Contains(t, buf.String(), "No components found.")
}

func TestRunView(t *testing.T) {
	tests := []struct {
		name     string
		lookup   string
		opts     viewOptions
		format   view.Format
		contains []string
	}{
		{
			name:     "markdown",
			lookup:   "Searchbox",
			format:   view.FormatPlain,
			contains: []string{"# Searchbox", "data-enable-search-as-you-type", "Documentation: https://coveo.github.io/search-ui/components/searchbox.html"},
		},
		{
			name:     "markup class, any case",
			lookup:   "coveofacet",
			format:   view.FormatPlain,
			contains: []string{"# Facet", "data-field"},
		},
		{
			name:     "html",
			lookup:   "Facet",
			opts:     viewOptions{html: true},
			format:   view.FormatPlain,
			contains: []string{"<h1>Facet</h1>", "<table>"},
		},
		{
			name:     "json",
			lookup:   "Facet",
			format:   view.FormatJSON,
			contains: []string{`"name": "Facet"`, `"isComponent": true`},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			session, buf := testSession(t, tt.format)
			opts := tt.opts

			require.NoError(t, runView(tt.lookup, &opts, session))
			for _, want := range tt.contains {
				assert.Contains(t, buf.String(), want)
			}
		})
	}
}

func TestRunView_Unknown(t *testing.T) {
	session, _ := testSession(t, view.FormatPlain)

	err := runView("Nope", &viewOptions{}, session)
	require.Error(t, err)
	assert.True(t, errors.Is(err, schema.ErrUnknownComponent))
}
