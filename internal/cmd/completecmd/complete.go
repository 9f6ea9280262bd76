// Package completecmd provides the complete command.
package completecmd

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/open-cli-collective/searchui-cli/internal/cmdutil"
	"github.com/open-cli-collective/searchui-cli/internal/view"
	"github.com/open-cli-collective/searchui-cli/pkg/complete"
)

type completeOptions struct {
	file string
	line int
	col  int
}

// NewCmdComplete creates the complete command.
func NewCmdComplete() *cobra.Command {
	opts := &completeOptions{}

	cmd := &cobra.Command{
		Use:   "complete FILE",
		Short: "List completion candidates at a position",
		Long: `List what an editor would offer at a position in a markup file:
component names in class attributes, option attributes inside a component,
option values, and result template attributes.`,
		Example: `  # Values for the attribute under line 12, column 40
  sui complete index.html --line 12 --col 40

  # As JSON, for editor integrations
  sui complete index.html -l 12 --col 40 -o json`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			opts.file = args[0]
			session, err := cmdutil.GlobalFlags(cmd).NewSession()
			if err != nil {
				return err
			}
			return runComplete(opts, session)
		},
	}

	cmdutil.AddPositionFlags(cmd, &opts.line, &opts.col)

	return cmd
}

func runComplete(opts *completeOptions, session *cmdutil.Session) error {
	pos, err := cmdutil.Position(opts.line, opts.col)
	if err != nil {
		return err
	}
	doc, err := cmdutil.ReadDocument(opts.file)
	if err != nil {
		return err
	}

	items := complete.NewProvider(session.Engine).Complete(doc, pos)
	zap.S().Debugw("completion", "file", opts.file, "position", pos.String(), "items", len(items))

	renderer := session.Renderer
	if renderer.Format() == view.FormatJSON {
		if items == nil {
			items = []complete.Item{}
		}
		return renderer.RenderJSON(items)
	}

	if len(items) == 0 {
		renderer.RenderText(fmt.Sprintf("No completions at %s.", pos))
		return nil
	}

	headers := []string{"LABEL", "KIND", "INSERT", "DETAIL"}
	rows := make([][]string, 0, len(items))
	for _, item := range items {
		rows = append(rows, []string{
			item.Label,
			string(item.Kind),
			view.Truncate(item.InsertText, 40),
			view.Truncate(item.Detail, 50),
		})
	}
	renderer.RenderTable(headers, rows)

	return nil
}
