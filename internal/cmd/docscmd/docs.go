// Package docscmd provides commands that produce the documentation file.
package docscmd

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/open-cli-collective/searchui-cli/internal/view"
	"github.com/open-cli-collective/searchui-cli/pkg/schema"
)

// NewCmdDocs creates the docs command.
func NewCmdDocs() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "docs",
		Short: "Build or download component documentation",
		Long: `Commands that produce the documentation file every analysis command reads.

The file is written to the configured documentation path, by default
~/.config/sui/documentation.json.`,
	}

	cmd.AddCommand(NewCmdBuild())
	cmd.AddCommand(NewCmdFetch())

	return cmd
}

// save writes the documentation held by store to path and reports it.
func save(store *schema.Store, path string, renderer *view.Renderer) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("failed to create documentation directory: %w", err)
	}
	if err := schema.WriteFile(path, store.Entities()); err != nil {
		return err
	}

	summary := struct {
		Path       string `json:"path"`
		Entities   int    `json:"entities"`
		Components int    `json:"components"`
	}{path, store.Len(), len(store.ListComponents())}

	if renderer.Format() == view.FormatJSON {
		return renderer.RenderJSON(summary)
	}
	renderer.Success(fmt.Sprintf("Wrote %d entities (%d components) to %s",
		summary.Entities, summary.Components, summary.Path))
	return nil
}
