// Package resolvecmd provides the resolve command.
package resolvecmd

import (
	"github.com/spf13/cobra"

	"github.com/open-cli-collective/searchui-cli/internal/cmdutil"
	"github.com/open-cli-collective/searchui-cli/internal/view"
	"github.com/open-cli-collective/searchui-cli/pkg/docs"
	"github.com/open-cli-collective/searchui-cli/pkg/document"
	"github.com/open-cli-collective/searchui-cli/pkg/resolve"
)

type resolveOptions struct {
	file string
	line int
	col  int
}

// result is the rendered form of a binding.
type result struct {
	State     string          `json:"state"`
	Component string          `json:"component,omitempty"`
	Option    string          `json:"option,omitempty"`
	Type      string          `json:"type,omitempty"`
	Attribute string          `json:"attribute,omitempty"`
	Value     string          `json:"value,omitempty"`
	Element   *document.Range `json:"element,omitempty"`
	Template  *document.Range `json:"template,omitempty"`
	URL       string          `json:"url,omitempty"`
}

// NewCmdResolve creates the resolve command.
func NewCmdResolve() *cobra.Command {
	opts := &resolveOptions{}

	cmd := &cobra.Command{
		Use:   "resolve FILE",
		Short: "Show which component or option a position refers to",
		Long: `Resolve a position in a markup file to the documented component or option
it refers to, and print a link to its online reference.`,
		Example: `  # What is under line 3, column 30?
  sui resolve index.html --line 3 --col 30`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			opts.file = args[0]
			session, err := cmdutil.GlobalFlags(cmd).NewSession()
			if err != nil {
				return err
			}
			return runResolve(opts, session)
		},
	}

	cmdutil.AddPositionFlags(cmd, &opts.line, &opts.col)

	return cmd
}

func runResolve(opts *resolveOptions, session *cmdutil.Session) error {
	pos, err := cmdutil.Position(opts.line, opts.col)
	if err != nil {
		return err
	}
	doc, err := cmdutil.ReadDocument(opts.file)
	if err != nil {
		return err
	}

	res := newResult(session.Engine.Resolve(doc, pos), doc, session.DocsBaseURL())

	renderer := session.Renderer
	if renderer.Format() == view.FormatJSON {
		return renderer.RenderJSON(res)
	}

	renderer.RenderKeyValue("State", res.State)
	if res.State == resolve.StateNone.String() {
		return nil
	}
	if res.Component != "" {
		renderer.RenderKeyValue("Component", res.Component)
	}
	if res.Option != "" {
		renderer.RenderKeyValue("Option", res.Option)
		renderer.RenderKeyValue("Type", res.Type)
	}
	if res.Attribute != "" {
		renderer.RenderKeyValue("Attribute", res.Attribute)
		renderer.RenderKeyValue("Value", res.Value)
	}
	if res.Template != nil {
		renderer.RenderKeyValue("Template", res.Template.String())
	}
	if res.URL != "" {
		renderer.RenderKeyValue("Documentation", res.URL)
	}
	return nil
}

// newResult flattens b. Ranges are reported in the coordinates of doc even
// when the binding was computed inside a template body.
func newResult(b resolve.Binding, doc document.Snapshot, baseURL string) result {
	res := result{State: b.State.String()}
	if b.State == resolve.StateNone {
		return res
	}

	if b.Attribute != nil {
		res.Attribute = b.Attribute.Name
		res.Value = b.Attribute.Value
	}

	if b.Template != nil {
		tmpl := b.Template.Symbol.Range
		res.Template = &tmpl
	}

	if b.Component != nil {
		res.Component = b.Component.Name
		element := b.Symbol.Range
		if b.State.InTemplate() && b.Template != nil {
			element = b.Template.ToOuter(doc, element)
		}
		res.Element = &element
		res.URL = docs.ComponentURL(baseURL, b.Component.Name)
	}

	if b.Option != nil {
		res.Option = b.Option.Name
		res.Type = b.Option.Type
		if b.Component != nil {
			res.URL = docs.OptionURL(baseURL, b.Component.Name, b.Option.Name)
		}
	}

	return res
}
