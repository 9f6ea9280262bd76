// Package init provides the init command for sui.
package init

import (
	"context"
	"fmt"
	"net/url"
	"os"
	"time"

	"github.com/charmbracelet/huh"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/open-cli-collective/searchui-cli/api"
	"github.com/open-cli-collective/searchui-cli/internal/config"
	"github.com/open-cli-collective/searchui-cli/internal/view"
	"github.com/open-cli-collective/searchui-cli/pkg/docs"
)

const verifyTimeout = 10 * time.Second

// NewCmdInit creates the init command.
func NewCmdInit() *cobra.Command {
	var (
		documentationURL string
		documentation    string
		noVerify         bool
	)

	cmd := &cobra.Command{
		Use:   "init",
		Short: "Initialize sui configuration",
		Long: `Initialize sui with the location of the search UI component documentation.

This command will guide you through setting the documentation file path,
an optional URL to download it from, the online reference root used for
links, and the default output format. The configuration will be saved to
~/.config/sui/config.yml.`,
		Example: `  # Interactive setup
  sui init

  # Pre-populate the documentation URL
  sui init --documentation-url https://example.com/searchui/docgen.json`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			configPath, _ := cmd.Flags().GetString("config")
			if configPath == "" {
				configPath = config.DefaultConfigPath()
			}
			return runInit(configPath, documentationURL, documentation, noVerify)
		},
	}

	cmd.Flags().StringVar(&documentationURL, "documentation-url", "", "URL of the raw documentation JSON")
	cmd.Flags().StringVar(&documentation, "documentation-path", "", "Path of the documentation file")
	cmd.Flags().BoolVar(&noVerify, "no-verify", false, "Skip documentation URL verification")

	return cmd
}

func runInit(configPath, prefillURL, prefillPath string, noVerify bool) error {
	// Check if config already exists
	if _, err := os.Stat(configPath); err == nil {
		var overwrite bool
		err := huh.NewConfirm().
			Title("Configuration already exists").
			Description(fmt.Sprintf("Overwrite %s?", configPath)).
			Value(&overwrite).
			Run()
		if err != nil {
			return err
		}
		if !overwrite {
			fmt.Println("Initialization cancelled.")
			return nil
		}
	}

	cfg := &config.Config{
		Documentation:    prefillPath,
		DocumentationURL: prefillURL,
		DocsBaseURL:      docs.DefaultBaseURL,
		OutputFormat:     string(view.FormatTable),
	}
	if cfg.Documentation == "" {
		cfg.Documentation = config.DefaultDocumentationPath()
	}

	formats := make([]huh.Option[string], 0, len(view.ValidFormats()))
	for _, f := range view.ValidFormats() {
		formats = append(formats, huh.NewOption(f, f))
	}

	// Build the form
	form := huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Documentation file").
				Description("Where the built component documentation is read from").
				Value(&cfg.Documentation).
				Validate(func(s string) error {
					if s == "" {
						return fmt.Errorf("documentation path is required")
					}
					return nil
				}),
			huh.NewInput().
				Title("Documentation URL (optional)").
				Description("Raw documentation JSON downloaded by 'sui docs fetch'").
				Placeholder("https://example.com/searchui/docgen.json").
				Value(&cfg.DocumentationURL).
				Validate(validateOptionalURL),
			huh.NewInput().
				Title("Online reference").
				Description("Root of the component reference used for links").
				Value(&cfg.DocsBaseURL).
				Validate(validateOptionalURL),
			huh.NewSelect[string]().
				Title("Output format").
				Options(formats...).
				Value(&cfg.OutputFormat),
		),
	)

	if err := form.Run(); err != nil {
		return err
	}

	// Validate
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}

	// Verify the documentation URL unless skipped
	if !noVerify && cfg.DocumentationURL != "" {
		fmt.Print("Verifying documentation URL... ")
		components, err := verifyDocumentationURL(cfg.DocumentationURL)
		if err != nil {
			fmt.Println("failed!")
			return fmt.Errorf("documentation verification failed: %w", err)
		}
		fmt.Printf("found %d components.\n", components)
	}

	// Save configuration
	if err := cfg.Save(configPath); err != nil {
		return err
	}

	fmt.Printf("\nConfiguration saved to %s\n", configPath)
	fmt.Println("\nYou're all set! Try running:")
	if cfg.DocumentationURL != "" {
		fmt.Println("  sui docs fetch")
	} else {
		fmt.Println("  sui docs build <docgen.json>")
	}
	fmt.Println("  sui lint index.html")

	return nil
}

func validateOptionalURL(s string) error {
	if s == "" {
		return nil
	}
	u, err := url.Parse(s)
	if err != nil || (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return fmt.Errorf("must be an http(s) URL")
	}
	return nil
}

// verifyDocumentationURL downloads and parses the documentation at rawURL
// and returns how many components it documents.
func verifyDocumentationURL(rawURL string) (int, error) {
	ctx, cancel := context.WithTimeout(context.Background(), verifyTimeout)
	defer cancel()

	fetched, err := api.NewClient(rawURL).FetchDocumentation(ctx, "", zap.L())
	if err != nil {
		return 0, err
	}
	components := len(fetched.Store.ListComponents())
	if components == 0 {
		return 0, fmt.Errorf("no components documented at %s", rawURL)
	}
	return components, nil
}
