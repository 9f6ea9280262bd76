package view

import (
	"fmt"

	"github.com/fatih/color"

	"github.com/open-cli-collective/searchui-cli/pkg/diagnose"
)

// FileDiagnostics groups the diagnostics of one file.
type FileDiagnostics struct {
	Path        string                `json:"path"`
	Diagnostics []diagnose.Diagnostic `json:"diagnostics"`
}

// RenderDiagnostics prints diagnostics as path:line:col lines, or as JSON.
func (r *Renderer) RenderDiagnostics(files []FileDiagnostics) error {
	if r.format == FormatJSON {
		return r.RenderJSON(files)
	}

	red := color.New(color.FgRed)
	yellow := color.New(color.FgYellow)
	for _, f := range files {
		for _, d := range f.Diagnostics {
			label := string(d.Severity)
			if r.format == FormatTable {
				switch d.Severity {
				case diagnose.SeverityError:
					label = red.Sprint(label)
				case diagnose.SeverityWarning:
					label = yellow.Sprint(label)
				}
			}
			fmt.Fprintf(r.writer, "%s:%s: %s: %s\n", f.Path, d.Range.Start, label, d.Message)
		}
	}
	return nil
}
