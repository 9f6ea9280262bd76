// Package cmdutil holds the loading and flag plumbing shared by sui commands.
package cmdutil

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/open-cli-collective/searchui-cli/internal/config"
	"github.com/open-cli-collective/searchui-cli/internal/view"
	"github.com/open-cli-collective/searchui-cli/pkg/docs"
	"github.com/open-cli-collective/searchui-cli/pkg/document"
	"github.com/open-cli-collective/searchui-cli/pkg/resolve"
	"github.com/open-cli-collective/searchui-cli/pkg/schema"
)

// Global holds the values of the root command's persistent flags.
type Global struct {
	ConfigPath    string
	Output        string
	NoColor       bool
	Documentation string

	outputSet bool
}

// GlobalFlags reads the persistent flags visible to cmd.
func GlobalFlags(cmd *cobra.Command) *Global {
	g := &Global{}
	g.ConfigPath, _ = cmd.Flags().GetString("config")
	g.Output, _ = cmd.Flags().GetString("output")
	g.NoColor, _ = cmd.Flags().GetBool("no-color")
	g.Documentation, _ = cmd.Flags().GetString("documentation")
	g.outputSet = cmd.Flags().Changed("output")
	return g
}

// Config loads the configuration file with environment overrides applied.
func (g *Global) Config() (*config.Config, error) {
	path := g.ConfigPath
	if path == "" {
		path = config.DefaultConfigPath()
	}
	cfg, err := config.LoadWithEnv(path)
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w (run 'sui init' to configure)", err)
	}
	return cfg, nil
}

// Renderer builds an output renderer. An explicit --output wins over the
// configured format.
func (g *Global) Renderer(cfg *config.Config) (*view.Renderer, error) {
	format := g.Output
	if !g.outputSet && cfg != nil && cfg.OutputFormat != "" {
		format = cfg.OutputFormat
	}
	if err := view.ValidateFormat(format); err != nil {
		return nil, err
	}
	if format == "" {
		format = string(view.FormatTable)
	}
	return view.NewRenderer(view.Format(format), g.NoColor), nil
}

// DocumentationPath returns the documentation file to load: the flag, then
// the configuration, then the default location.
func (g *Global) DocumentationPath(cfg *config.Config) string {
	if g.Documentation != "" {
		return g.Documentation
	}
	if cfg != nil {
		return cfg.DocumentationPath()
	}
	return config.DefaultDocumentationPath()
}

// LoadStore loads the documentation store from path.
func LoadStore(path string) (*schema.Store, error) {
	zap.S().Debugw("loading documentation", "path", path)
	store, err := schema.LoadFile(path, zap.L())
	if err != nil {
		if errors.Is(err, schema.ErrNoDocumentation) {
			return nil, fmt.Errorf("%w (run 'sui docs build' or 'sui docs fetch' first)", err)
		}
		return nil, fmt.Errorf("failed to load documentation: %w", err)
	}
	zap.S().Debugw("documentation ready", "entities", store.Len())
	return store, nil
}

// Session bundles what most analysis commands need.
type Session struct {
	Config   *config.Config
	Renderer *view.Renderer
	Store    *schema.Store
	Engine   *resolve.Engine
}

// NewSession loads configuration and documentation and builds the
// resolution engine over the host symbol provider.
func (g *Global) NewSession() (*Session, error) {
	cfg, err := g.Config()
	if err != nil {
		return nil, err
	}
	renderer, err := g.Renderer(cfg)
	if err != nil {
		return nil, err
	}
	store, err := LoadStore(g.DocumentationPath(cfg))
	if err != nil {
		return nil, err
	}
	s := NewSessionWith(store, renderer)
	s.Config = cfg
	return s, nil
}

// NewSessionWith builds a session around an already loaded store.
func NewSessionWith(store *schema.Store, renderer *view.Renderer) *Session {
	return &Session{
		Config:   &config.Config{},
		Renderer: renderer,
		Store:    store,
		Engine:   resolve.New(store, document.HTMLSymbols{}),
	}
}

// DocsBaseURL returns the online reference root for documentation links.
func (s *Session) DocsBaseURL() string {
	if s.Config != nil && s.Config.DocsBaseURL != "" {
		return s.Config.DocsBaseURL
	}
	return docs.DefaultBaseURL
}

// ReadDocument reads a markup file into a document snapshot.
func ReadDocument(path string) (*document.Document, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}
	uri := path
	if abs, err := filepath.Abs(path); err == nil {
		uri = "file://" + filepath.ToSlash(abs)
	}
	return document.New(uri, document.LanguageFromPath(path), string(data)), nil
}

// Position converts a one-based line and column, as editors display them,
// into a document position.
func Position(line, col int) (document.Position, error) {
	if line < 1 || col < 1 {
		return document.Position{}, fmt.Errorf("line and column are one-based (got %d:%d)", line, col)
	}
	return document.Position{Line: line - 1, Character: col - 1}, nil
}

// AddPositionFlags registers --line and --col on cmd.
func AddPositionFlags(cmd *cobra.Command, line, col *int) {
	cmd.Flags().IntVarP(line, "line", "l", 0, "Line number (1-based)")
	cmd.Flags().IntVar(col, "col", 0, "Column number (1-based)")
	_ = cmd.MarkFlagRequired("line")
	_ = cmd.MarkFlagRequired("col")
}
