package docscmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/open-cli-collective/searchui-cli/api"
	"github.com/open-cli-collective/searchui-cli/internal/cmdutil"
	"github.com/open-cli-collective/searchui-cli/internal/view"
)

type fetchOptions struct {
	url string
	out string
}

// NewCmdFetch creates the docs fetch command.
func NewCmdFetch() *cobra.Command {
	opts := &fetchOptions{}

	cmd := &cobra.Command{
		Use:   "fetch",
		Short: "Download documentation from a URL",
		Long: `Download raw documentation entries, or a prebuilt documentation file, and
write the built documentation file.

The URL defaults to documentation_url from the configuration.`,
		Example: `  # Use the configured URL
  sui docs fetch

  # Fetch from an explicit URL
  sui docs fetch --url https://example.com/searchui/docgen.json`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			g := cmdutil.GlobalFlags(cmd)
			cfg, err := g.Config()
			if err != nil {
				return err
			}
			renderer, err := g.Renderer(cfg)
			if err != nil {
				return err
			}
			if opts.url == "" {
				opts.url = cfg.DocumentationURL
			}
			if opts.out == "" {
				opts.out = g.DocumentationPath(cfg)
			}
			return runFetch(cmd.Context(), opts, renderer, nil)
		},
	}

	cmd.Flags().StringVar(&opts.url, "url", "", "Documentation URL (default: documentation_url from config)")
	cmd.Flags().StringVar(&opts.out, "out", "", "Output path (default: configured documentation path)")

	return cmd
}

func runFetch(ctx context.Context, opts *fetchOptions, renderer *view.Renderer, client *api.Client) error {
	if client == nil {
		if opts.url == "" {
			return fmt.Errorf("no documentation URL: pass --url or set documentation_url (run 'sui init')")
		}
		client = api.NewClient(opts.url)
	}
	if ctx == nil {
		ctx = context.Background()
	}

	zap.S().Debugw("fetching documentation", "url", opts.url)
	docs, err := client.FetchDocumentation(ctx, "", zap.L())
	if err != nil {
		return err
	}
	zap.S().Debugw("documentation fetched", "bytes", len(docs.Raw))

	return save(docs.Store, opts.out, renderer)
}
