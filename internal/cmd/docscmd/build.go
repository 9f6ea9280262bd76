package docscmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/open-cli-collective/searchui-cli/internal/cmdutil"
	"github.com/open-cli-collective/searchui-cli/internal/view"
	"github.com/open-cli-collective/searchui-cli/pkg/schema"
)

type buildOptions struct {
	input string
	out   string
}

// NewCmdBuild creates the docs build command.
func NewCmdBuild() *cobra.Command {
	opts := &buildOptions{}

	cmd := &cobra.Command{
		Use:   "build <raw.json>",
		Short: "Build the documentation file from raw documentation entries",
		Long: `Build the documentation file from a flat JSON array of raw entries, as
produced by the search UI documentation generator. Option entries named
"<Component>.options.<option>" are attached to their component.`,
		Example: `  # Build into the default location
  sui docs build docgen.json

  # Build somewhere else
  sui docs build docgen.json --out ./documentation.json`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			opts.input = args[0]
			g := cmdutil.GlobalFlags(cmd)
			cfg, err := g.Config()
			if err != nil {
				return err
			}
			renderer, err := g.Renderer(cfg)
			if err != nil {
				return err
			}
			if opts.out == "" {
				opts.out = g.DocumentationPath(cfg)
			}
			return runBuild(opts, renderer)
		},
	}

	cmd.Flags().StringVar(&opts.out, "out", "", "Output path (default: configured documentation path)")

	return cmd
}

func runBuild(opts *buildOptions, renderer *view.Renderer) error {
	data, err := os.ReadFile(opts.input)
	if err != nil {
		return fmt.Errorf("failed to read raw documentation: %w", err)
	}

	zap.S().Debugw("building documentation", "input", opts.input, "bytes", len(data))
	store, err := schema.Parse(data, zap.L())
	if err != nil {
		return err
	}

	return save(store, opts.out, renderer)
}
