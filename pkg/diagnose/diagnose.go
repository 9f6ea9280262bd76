// Package diagnose validates component options and result template structure.
package diagnose

import (
	"sort"

	"github.com/open-cli-collective/searchui-cli/pkg/document"
	"github.com/open-cli-collective/searchui-cli/pkg/resolve"
)

// Severity of a diagnostic.
type Severity string

const (
	SeverityError   Severity = "error"
	SeverityWarning Severity = "warning"
)

// Source tags every diagnostic produced by this package.
const Source = "searchui"

// Diagnostic is one finding attached to a document range.
type Diagnostic struct {
	Range    document.Range `json:"range"`
	Message  string         `json:"message"`
	Severity Severity       `json:"severity"`
	Source   string         `json:"source"`
}

func newError(rng document.Range, message string) Diagnostic {
	return Diagnostic{Range: rng, Message: message, Severity: SeverityError, Source: Source}
}

// Engine runs the option and template checks over documents.
type Engine struct {
	resolver *resolve.Engine
}

// New creates a diagnostics engine on top of a resolution engine.
func New(resolver *resolve.Engine) *Engine {
	return &Engine{resolver: resolver}
}

// Diagnose runs every check over doc. Findings are ordered by position.
func (e *Engine) Diagnose(doc document.Snapshot) []Diagnostic {
	diags := append(e.Options(doc), e.Templates(doc)...)
	sort.SliceStable(diags, func(i, j int) bool {
		return diags[i].Range.Start.Before(diags[j].Range.Start)
	})
	return diags
}

// Count returns the number of diagnostics of each severity.
func Count(diags []Diagnostic) (errors, warnings int) {
	for _, d := range diags {
		switch d.Severity {
		case SeverityError:
			errors++
		case SeverityWarning:
			warnings++
		}
	}
	return errors, warnings
}
