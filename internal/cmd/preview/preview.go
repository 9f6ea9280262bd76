// Package preview provides the preview command.
package preview

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/open-cli-collective/searchui-cli/internal/cmdutil"
	"github.com/open-cli-collective/searchui-cli/internal/view"
	"github.com/open-cli-collective/searchui-cli/pkg/docs"
	"github.com/open-cli-collective/searchui-cli/pkg/resolve"
	"github.com/open-cli-collective/searchui-cli/pkg/schema"
)

type previewOptions struct {
	file   string
	line   int
	col    int
	output string
}

// NewCmdPreview creates the preview command.
func NewCmdPreview() *cobra.Command {
	opts := &previewOptions{}

	cmd := &cobra.Command{
		Use:   "preview FILE",
		Short: "Render an HTML preview of the component at a position",
		Long: `Render a standalone HTML page naming the component under a position and
showing its markup. Positions that are not on a component produce a page
saying so.`,
		Example: `  # Print the preview page
  sui preview index.html --line 3 --col 12

  # Write it to a file
  sui preview index.html -l 3 --col 12 --out preview.html`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			opts.file = args[0]
			session, err := cmdutil.GlobalFlags(cmd).NewSession()
			if err != nil {
				return err
			}
			return runPreview(opts, session)
		},
	}

	cmdutil.AddPositionFlags(cmd, &opts.line, &opts.col)
	cmd.Flags().StringVar(&opts.output, "out", "", "Write the page to a file instead of stdout")

	return cmd
}

func runPreview(opts *previewOptions, session *cmdutil.Session) error {
	pos, err := cmdutil.Position(opts.line, opts.col)
	if err != nil {
		return err
	}
	doc, err := cmdutil.ReadDocument(opts.file)
	if err != nil {
		return err
	}

	var (
		component *schema.Entity
		markup    string
	)
	b := session.Engine.Resolve(doc, pos)
	switch b.State {
	case resolve.StateNone, resolve.StateTemplateAttribute:
	default:
		component = b.Component
		markup = b.Document.GetText(b.Symbol.Range)
	}

	page, err := docs.PreviewHTML(component, markup)
	if err != nil {
		return err
	}

	if opts.output != "" {
		if err := os.WriteFile(opts.output, []byte(page), 0644); err != nil {
			return fmt.Errorf("failed to write preview: %w", err)
		}
		if session.Renderer.Format() != view.FormatJSON {
			session.Renderer.Success(fmt.Sprintf("Preview written to %s", opts.output))
		}
		return nil
	}

	if session.Renderer.Format() == view.FormatJSON {
		name := ""
		if component != nil {
			name = component.Name
		}
		return session.Renderer.RenderJSON(map[string]string{
			"component": name,
			"html":      page,
		})
	}
	session.Renderer.RenderText(page)
	return nil
}
