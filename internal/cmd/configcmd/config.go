// Package configcmd provides config management commands.
package configcmd

import (
	"github.com/spf13/cobra"

	"github.com/open-cli-collective/searchui-cli/internal/config"
)

// NewCmdConfig creates the config command.
func NewCmdConfig() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Manage sui configuration",
		Long:  `Commands for viewing, testing, and clearing sui configuration.`,
	}

	cmd.AddCommand(NewCmdShow())
	cmd.AddCommand(NewCmdTest())
	cmd.AddCommand(NewCmdClear())

	return cmd
}

// envVars lists the environment variables that override the config file.
var envVars = []string{"SUI_DOCUMENTATION", "SUI_DOCUMENTATION_URL", "SUI_DOCS_BASE_URL", "SUI_OUTPUT"}

func configPath(cmd *cobra.Command) string {
	if path, _ := cmd.Flags().GetString("config"); path != "" {
		return path
	}
	return config.DefaultConfigPath()
}
