package view

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/open-cli-collective/searchui-cli/pkg/diagnose"
	"github.com/open-cli-collective/searchui-cli/pkg/document"
)

func sampleDiagnostics() []FileDiagnostics {
	return []FileDiagnostics{
		{
			Path: "index.html",
			Diagnostics: []diagnose.Diagnostic{
				{
					Range: document.Range{
						Start: document.Position{Line: 2, Character: 4},
						End:   document.Position{Line: 2, Character: 20},
					},
					Message:  `Missing required option "field" (data-field).`,
					Severity: diagnose.SeverityError,
					Source:   diagnose.Source,
				},
			},
		},
		{Path: "clean.html"},
	}
}

func TestRenderer_RenderDiagnostics_Plain(t *testing.T) {
	var buf bytes.Buffer
	r := NewRenderer(FormatPlain, true)
	r.SetWriter(&buf)

	require.NoError(t, r.RenderDiagnostics(sampleDiagnostics()))

	assert.Equal(t, "index.html:3:5: error: Missing required option \"field\" (data-field).\n", buf.String())
}

func TestRenderer_RenderDiagnostics_TableNoColor(t *testing.T) {
	var buf bytes.Buffer
	r := NewRenderer(FormatTable, true)
	r.SetWriter(&buf)

	require.NoError(t, r.RenderDiagnostics(sampleDiagnostics()))

	assert.Contains(t, buf.String(), "index.html:3:5: error:")
	assert.NotContains(t, buf.String(), "clean.html")
}

func TestRenderer_RenderDiagnostics_JSON(t *testing.T) {
	var buf bytes.Buffer
	r := NewRenderer(FormatJSON, true)
	r.SetWriter(&buf)

	require.NoError(t, r.RenderDiagnostics(sampleDiagnostics()))

	var decoded []map[string]interface{}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &decoded))
	require.Len(t, decoded, 2)
	assert.Equal(t, "index.html", decoded[0]["path"])
}
