// Package root provides the root command for the sui CLI.
package root

import (
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/open-cli-collective/searchui-cli/internal/cmd/completecmd"
	"github.com/open-cli-collective/searchui-cli/internal/cmd/completion"
	"github.com/open-cli-collective/searchui-cli/internal/cmd/component"
	"github.com/open-cli-collective/searchui-cli/internal/cmd/configcmd"
	"github.com/open-cli-collective/searchui-cli/internal/cmd/docscmd"
	initcmd "github.com/open-cli-collective/searchui-cli/internal/cmd/init"
	"github.com/open-cli-collective/searchui-cli/internal/cmd/lens"
	"github.com/open-cli-collective/searchui-cli/internal/cmd/lint"
	"github.com/open-cli-collective/searchui-cli/internal/cmd/preview"
	"github.com/open-cli-collective/searchui-cli/internal/cmd/resolvecmd"
	"github.com/open-cli-collective/searchui-cli/internal/logging"
	"github.com/open-cli-collective/searchui-cli/internal/version"
	"github.com/open-cli-collective/searchui-cli/internal/view"
)

// NewCmdRoot creates the root command for sui.
func NewCmdRoot() *cobra.Command {
	logConfig := &logging.Config{}

	cmd := &cobra.Command{
		Use:   "sui",
		Short: "Markup intelligence for Coveo search UI pages",
		Long: `sui checks and explains HTML pages built with Coveo search UI components.

It validates component options and result templates, lists completion
candidates at a position, resolves elements to their documentation, and
renders component reference pages, all from a local documentation file.

Get started by running: sui init`,
		SilenceUsage:  true,
		SilenceErrors: true,
		Version:       version.Version,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			if _, err := logConfig.Install(os.Stderr); err != nil {
				return err
			}
			output, _ := cmd.Flags().GetString("output")
			return view.ValidateFormat(output)
		},
	}

	// Global flags
	cmd.PersistentFlags().StringP("config", "c", "", "config file (default: ~/.config/sui/config.yml)")
	cmd.PersistentFlags().StringP("output", "o", "table", "output format: "+strings.Join(view.ValidFormats(), ", "))
	cmd.PersistentFlags().Bool("no-color", false, "disable colored output")
	cmd.PersistentFlags().StringP("documentation", "d", "", "documentation file (default: from config)")
	logConfig.RegisterFlags(cmd.PersistentFlags())

	_ = cmd.RegisterFlagCompletionFunc("output",
		cobra.FixedCompletions(view.ValidFormats(), cobra.ShellCompDirectiveNoFileComp))
	_ = logConfig.RegisterCompletions(cmd)

	cmd.SetVersionTemplate(version.Info() + "\n")

	// Subcommands
	cmd.AddCommand(initcmd.NewCmdInit())
	cmd.AddCommand(configcmd.NewCmdConfig())
	cmd.AddCommand(lint.NewCmdLint())
	cmd.AddCommand(completecmd.NewCmdComplete())
	cmd.AddCommand(resolvecmd.NewCmdResolve())
	cmd.AddCommand(preview.NewCmdPreview())
	cmd.AddCommand(lens.NewCmdLens())
	cmd.AddCommand(component.NewCmdComponent())
	cmd.AddCommand(docscmd.NewCmdDocs())
	cmd.AddCommand(completion.NewCmdCompletion())

	return cmd
}
