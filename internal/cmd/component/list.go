package component

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/open-cli-collective/searchui-cli/internal/cmdutil"
	"github.com/open-cli-collective/searchui-cli/internal/view"
	"github.com/open-cli-collective/searchui-cli/pkg/docs"
	"github.com/open-cli-collective/searchui-cli/pkg/schema"
)

type listOptions struct {
	filter string
}

type listItem struct {
	Name    string `json:"name"`
	Class   string `json:"class"`
	Options int    `json:"options"`
	Summary string `json:"summary,omitempty"`
}

// NewCmdList creates the component list command.
func NewCmdList() *cobra.Command {
	opts := &listOptions{}

	cmd := &cobra.Command{
		Use:     "list",
		Aliases: []string{"ls"},
		Short:   "List documented components",
		Long:    `List every documented component with its markup class and option count.`,
		Example: `  # List all components
  sui component list

  # Only facets
  sui component list --filter facet

  # Output as JSON
  sui component list -o json`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			session, err := cmdutil.GlobalFlags(cmd).NewSession()
			if err != nil {
				return err
			}
			return runList(opts, session)
		},
	}

	cmd.Flags().StringVarP(&opts.filter, "filter", "f", "", "Only list components whose name contains this text")

	return cmd
}

func runList(opts *listOptions, session *cmdutil.Session) error {
	filter := strings.ToLower(opts.filter)

	var items []listItem
	for _, c := range session.Store.ListComponents() {
		if filter != "" && !strings.Contains(strings.ToLower(c.Name), filter) {
			continue
		}
		items = append(items, listItem{
			Name:    c.Name,
			Class:   schema.MarkupClass(c.Name),
			Options: len(c.Options),
			Summary: summary(c.Comment),
		})
	}

	renderer := session.Renderer
	if renderer.Format() == view.FormatJSON {
		if items == nil {
			items = []listItem{}
		}
		return renderer.RenderJSON(items)
	}

	if len(items) == 0 {
		renderer.RenderText("No components found.")
		return nil
	}

	headers := []string{"NAME", "CLASS", "OPTIONS", "DESCRIPTION"}
	rows := make([][]string, 0, len(items))
	for _, item := range items {
		rows = append(rows, []string{
			item.Name,
			item.Class,
			fmt.Sprintf("%d", item.Options),
			view.Truncate(item.Summary, 60),
		})
	}
	renderer.RenderTable(headers, rows)

	return nil
}

// summary returns the first line of a documentation comment as text.
func summary(comment string) string {
	text := docs.Text(comment)
	if i := strings.IndexByte(text, '\n'); i >= 0 {
		text = text[:i]
	}
	return strings.TrimSpace(text)
}
