package configcmd

import (
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/open-cli-collective/searchui-cli/internal/config"
)

// NewCmdShow creates the config show command.
func NewCmdShow() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "show",
		Short: "Display current configuration",
		Long:  `Display the current sui configuration with value source indicators.`,
		Example: `  # Show current config
  sui config show`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			noColor, _ := cmd.Flags().GetBool("no-color")
			return runShow(configPath(cmd), noColor)
		},
	}

	return cmd
}

func runShow(configPath string, noColor bool) error {
	if noColor {
		color.NoColor = true
	}

	// Load file config (may not exist)
	fileCfg, fileErr := config.Load(configPath)
	if fileErr != nil {
		fileCfg = &config.Config{}
	}

	// Load full config with env overrides
	cfg, _ := config.LoadWithEnv(configPath)

	bold := color.New(color.Bold)
	dim := color.New(color.Faint)

	printField := func(label, value, fileValue, envVar, fallback string) {
		_, _ = bold.Printf("%-16s", label+":")

		source := "config"
		switch {
		case value == "" && fallback != "":
			value = fallback
			source = "default"
		case value == "":
			_, _ = dim.Println("-")
			return
		case os.Getenv(envVar) != "" && os.Getenv(envVar) == value:
			source = envVar
		case fileErr != nil || fileValue != value:
			source = "-"
		}

		fmt.Print(value)
		_, _ = dim.Printf("  (source: %s)\n", source)
	}

	printField("Documentation", cfg.Documentation, fileCfg.Documentation, "SUI_DOCUMENTATION", config.DefaultDocumentationPath())
	printField("Docs URL", cfg.DocumentationURL, fileCfg.DocumentationURL, "SUI_DOCUMENTATION_URL", "")
	printField("Reference", cfg.DocsBaseURL, fileCfg.DocsBaseURL, "SUI_DOCS_BASE_URL", "")
	printField("Output", cfg.OutputFormat, fileCfg.OutputFormat, "SUI_OUTPUT", "table")

	fmt.Println()
	_, _ = dim.Printf("Config file: %s\n", configPath)
	if fileErr != nil {
		_, _ = dim.Println("(file not found)")
	}

	return nil
}
