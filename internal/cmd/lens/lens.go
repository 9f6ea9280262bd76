// Package lens provides the lens command.
package lens

import (
	"sort"

	"github.com/spf13/cobra"

	"github.com/open-cli-collective/searchui-cli/internal/cmdutil"
	"github.com/open-cli-collective/searchui-cli/internal/view"
	"github.com/open-cli-collective/searchui-cli/pkg/docs"
	"github.com/open-cli-collective/searchui-cli/pkg/document"
)

type lensOptions struct {
	file string
}

// Lens is a documentation link attached to a component element.
type Lens struct {
	Component  string         `json:"component"`
	Range      document.Range `json:"range"`
	InTemplate bool           `json:"inTemplate,omitempty"`
	URL        string         `json:"url"`
}

// NewCmdLens creates the lens command.
func NewCmdLens() *cobra.Command {
	opts := &lensOptions{}

	cmd := &cobra.Command{
		Use:   "lens FILE",
		Short: "List components in a file with documentation links",
		Long: `List every documented component instantiated in a markup file, including
those inside result templates, with a link to its online reference.`,
		Example: `  # Components of a page
  sui lens index.html`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			opts.file = args[0]
			session, err := cmdutil.GlobalFlags(cmd).NewSession()
			if err != nil {
				return err
			}
			return runLens(opts, session)
		},
	}

	return cmd
}

func runLens(opts *lensOptions, session *cmdutil.Session) error {
	doc, err := cmdutil.ReadDocument(opts.file)
	if err != nil {
		return err
	}

	lenses := findLenses(session, doc)

	renderer := session.Renderer
	if renderer.Format() == view.FormatJSON {
		if lenses == nil {
			lenses = []Lens{}
		}
		return renderer.RenderJSON(lenses)
	}

	if len(lenses) == 0 {
		renderer.RenderText("No components found.")
		return nil
	}

	headers := []string{"POSITION", "COMPONENT", "TEMPLATE", "DOCUMENTATION"}
	rows := make([][]string, 0, len(lenses))
	for _, l := range lenses {
		inTemplate := ""
		if l.InTemplate {
			inTemplate = "yes"
		}
		rows = append(rows, []string{l.Range.Start.String(), l.Component, inTemplate, l.URL})
	}
	renderer.RenderTable(headers, rows)
	return nil
}

func findLenses(session *cmdutil.Session, doc document.Snapshot) []Lens {
	engine := session.Engine
	baseURL := session.DocsBaseURL()

	var lenses []Lens
	add := func(sym document.Symbol, rng document.Range, inTemplate bool) {
		component, ok := engine.Component(sym)
		if !ok {
			return
		}
		lenses = append(lenses, Lens{
			Component:  component.Name,
			Range:      rng,
			InTemplate: inTemplate,
			URL:        docs.ComponentURL(baseURL, component.Name),
		})
	}

	for _, sym := range engine.ComponentSymbols(doc) {
		add(sym, sym.Range, false)
	}
	for _, region := range engine.Templates(doc) {
		for _, sym := range engine.ComponentSymbols(region.Virtual()) {
			add(sym, region.ToOuter(doc, sym.Range), true)
		}
	}

	sort.SliceStable(lenses, func(i, j int) bool {
		return lenses[i].Range.Start.Before(lenses[j].Range.Start)
	})
	return lenses
}
