package component

import (
	"fmt"
	"os/exec"
	"runtime"

	"github.com/spf13/cobra"

	"github.com/open-cli-collective/searchui-cli/internal/cmdutil"
	"github.com/open-cli-collective/searchui-cli/internal/view"
	"github.com/open-cli-collective/searchui-cli/pkg/docs"
	"github.com/open-cli-collective/searchui-cli/pkg/schema"
)

type viewOptions struct {
	html bool
	web  bool
}

// NewCmdView creates the component view command.
func NewCmdView() *cobra.Command {
	opts := &viewOptions{}

	cmd := &cobra.Command{
		Use:   "view <name>",
		Short: "View a component's documentation",
		Long: `View a component's description and options.

The name may be given with or without the Coveo prefix, in any case.`,
		Example: `  # View a component
  sui component view Facet

  # Markup class names work too
  sui component view CoveoSearchbox

  # Render as HTML
  sui component view facet --html > facet.html

  # Open the online reference
  sui component view Facet --web`,
		Args:              cobra.ExactArgs(1),
		ValidArgsFunction: completeComponentNames,
		RunE: func(cmd *cobra.Command, args []string) error {
			session, err := cmdutil.GlobalFlags(cmd).NewSession()
			if err != nil {
				return err
			}
			return runView(args[0], opts, session)
		},
	}

	cmd.Flags().BoolVar(&opts.html, "html", false, "Render the documentation page as HTML")
	cmd.Flags().BoolVarP(&opts.web, "web", "w", false, "Open the online reference instead of displaying")

	return cmd
}

func runView(name string, opts *viewOptions, session *cmdutil.Session) error {
	component, ok := session.Store.FindComponent(name)
	if !ok {
		return fmt.Errorf("%w: %s (see 'sui component list')", schema.ErrUnknownComponent, name)
	}

	if opts.web {
		return openBrowser(docs.ComponentURL(session.DocsBaseURL(), component.Name))
	}

	renderer := session.Renderer
	if renderer.Format() == view.FormatJSON {
		return renderer.RenderJSON(component)
	}

	if opts.html {
		page, err := docs.ComponentHTML(component)
		if err != nil {
			return err
		}
		renderer.RenderText(page)
		return nil
	}

	renderer.RenderText(docs.ComponentMarkdown(component))
	renderer.RenderKeyValue("Documentation", docs.ComponentURL(session.DocsBaseURL(), component.Name))
	return nil
}

// completeComponentNames offers documented component names for shell completion.
func completeComponentNames(cmd *cobra.Command, args []string, _ string) ([]string, cobra.ShellCompDirective) {
	if len(args) > 0 {
		return nil, cobra.ShellCompDirectiveNoFileComp
	}
	session, err := cmdutil.GlobalFlags(cmd).NewSession()
	if err != nil {
		return nil, cobra.ShellCompDirectiveNoFileComp
	}
	var names []string
	for _, c := range session.Store.ListComponents() {
		names = append(names, c.Name)
	}
	return names, cobra.ShellCompDirectiveNoFileComp
}

func openBrowser(url string) error {
	var cmd *exec.Cmd

	switch runtime.GOOS {
	case "darwin":
		cmd = exec.Command("open", url)
	case "linux":
		cmd = exec.Command("xdg-open", url)
	case "windows":
		cmd = exec.Command("rundll32", "url.dll,FileProtocolHandler", url)
	default:
		return fmt.Errorf("unsupported platform")
	}

	return cmd.Start()
}
