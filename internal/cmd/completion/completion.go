// Package completion provides shell completion generation commands.
package completion

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"
)

type shell struct {
	name    string
	install string
	gen     func(root *cobra.Command, w io.Writer) error
}

var shells = []shell{
	{
		name: "bash",
		install: `  # Current session
  source <(sui completion bash)

  # Every session (Linux)
  sui completion bash | sudo tee /etc/bash_completion.d/sui > /dev/null

  # Every session (macOS with Homebrew bash-completion)
  sui completion bash > $(brew --prefix)/etc/bash_completion.d/sui`,
		gen: func(root *cobra.Command, w io.Writer) error {
			return root.GenBashCompletionV2(w, true)
		},
	},
	{
		name: "zsh",
		install: `  # Enable completion once, if not already done
  echo "autoload -U compinit; compinit" >> ~/.zshrc

  # Current session
  source <(sui completion zsh)

  # Every session
  sui completion zsh > "${fpath[1]}/_sui"`,
		gen: func(root *cobra.Command, w io.Writer) error {
			return root.GenZshCompletion(w)
		},
	},
	{
		name: "fish",
		install: `  # Current session
  sui completion fish | source

  # Every session
  sui completion fish > ~/.config/fish/completions/sui.fish`,
		gen: func(root *cobra.Command, w io.Writer) error {
			return root.GenFishCompletion(w, true)
		},
	},
	{
		name: "powershell",
		install: `  # Current session
  sui completion powershell | Out-String | Invoke-Expression

  # Every session
  sui completion powershell >> $PROFILE`,
		gen: func(root *cobra.Command, w io.Writer) error {
			return root.GenPowerShellCompletionWithDesc(w)
		},
	},
}

// NewCmdCompletion creates the completion command.
func NewCmdCompletion() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "completion",
		Short: "Generate shell completion scripts",
		Long: `Generate shell completion scripts for sui.

Besides commands and flags, the scripts complete documented component names
for 'sui component view'. See each sub-command's help for installation.`,
	}

	for _, sh := range shells {
		cmd.AddCommand(newCmdShell(sh))
	}

	return cmd
}

func newCmdShell(sh shell) *cobra.Command {
	return &cobra.Command{
		Use:                   sh.name,
		Short:                 fmt.Sprintf("Generate %s completion script", sh.name),
		Long:                  fmt.Sprintf("Generate %s completion script for sui.\n\nTo load completions:\n\n%s", sh.name, sh.install),
		Example:               sh.install,
		Args:                  cobra.NoArgs,
		DisableFlagsInUseLine: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return sh.gen(cmd.Root(), cmd.OutOrStdout())
		},
	}
}
