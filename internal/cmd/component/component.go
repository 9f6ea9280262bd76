// Package component provides commands for browsing component documentation.
package component

import (
	"github.com/spf13/cobra"
)

// NewCmdComponent creates the component command.
func NewCmdComponent() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "component",
		Aliases: []string{"components"},
		Short:   "Browse component documentation",
		Long:    `Commands for listing documented components and viewing their options.`,
	}

	cmd.AddCommand(NewCmdList())
	cmd.AddCommand(NewCmdView())

	return cmd
}
