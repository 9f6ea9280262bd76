package configcmd

import (
	"context"
	"fmt"
	"time"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/open-cli-collective/searchui-cli/api"
	"github.com/open-cli-collective/searchui-cli/internal/config"
	"github.com/open-cli-collective/searchui-cli/pkg/schema"
)

const testTimeout = 10 * time.Second

// NewCmdTest creates the config test command.
func NewCmdTest() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "test",
		Short: "Check that the configured documentation is usable",
		Long: `Check that the documentation file loads and, when a documentation URL is
configured, that it can be downloaded and parsed.`,
		Example: `  # Test configuration
  sui config test`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			noColor, _ := cmd.Flags().GetBool("no-color")
			return runTest(configPath(cmd), noColor, nil)
		},
	}

	return cmd
}

func runTest(configPath string, noColor bool, client *api.Client, cfgs ...*config.Config) error {
	if noColor {
		color.NoColor = true
	}

	var cfg *config.Config
	if len(cfgs) > 0 && cfgs[0] != nil {
		cfg = cfgs[0]
	} else {
		var err error
		cfg, err = config.LoadWithEnv(configPath)
		if err != nil {
			return fmt.Errorf("failed to load config: %w (run 'sui init' to configure)", err)
		}
	}
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid config: %w (run 'sui init' to configure)", err)
	}

	green := color.New(color.FgGreen)
	red := color.New(color.FgRed)
	yellow := color.New(color.FgYellow)

	path := cfg.DocumentationPath()
	fmt.Printf("Loading documentation from %s...\n", path)
	store, err := schema.LoadFile(path, zap.L())
	if err != nil {
		_, _ = red.Println("✗ Documentation unavailable:", err)
		fmt.Println("\nBuild it with: sui docs build <docgen.json>")
		fmt.Println("Or download it with: sui docs fetch")
		return fmt.Errorf("documentation unavailable: %w", err)
	}
	_, _ = green.Printf("✓ %d components documented\n", len(store.ListComponents()))

	if cfg.DocumentationURL == "" {
		_, _ = yellow.Println("! No documentation URL configured, skipping download check")
		return nil
	}

	fmt.Printf("Fetching %s...\n", cfg.DocumentationURL)
	if client == nil {
		client = api.NewClient(cfg.DocumentationURL)
	}
	ctx, cancel := context.WithTimeout(context.Background(), testTimeout)
	defer cancel()

	remote, err := client.FetchDocumentation(ctx, "", zap.L())
	if err != nil {
		_, _ = red.Println("✗ Download failed:", err)
		fmt.Println("\nCheck the URL with: sui config show")
		fmt.Println("Reconfigure with: sui init")
		return fmt.Errorf("download failed: %w", err)
	}
	_, _ = green.Printf("✓ Remote documentation parsed (%d components)\n", len(remote.Store.ListComponents()))

	return nil
}
