// Package config provides configuration management for sui.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"
)

// Config holds the sui configuration.
type Config struct {
	// Documentation is the path of the component documentation JSON.
	Documentation string `yaml:"documentation,omitempty"`
	// DocumentationURL is where `sui docs fetch` downloads documentation from.
	DocumentationURL string `yaml:"documentation_url,omitempty" validate:"omitempty,url,startswith=http"`
	// DocsBaseURL is the root of the online component reference.
	DocsBaseURL  string `yaml:"docs_base_url,omitempty" validate:"omitempty,url,startswith=http"`
	OutputFormat string `yaml:"output_format,omitempty" validate:"omitempty,oneof=table json plain"`
}

var validate = newValidator()

// newValidator reports fields by their yaml key.
func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(field reflect.StructField) string {
		name, _, _ := strings.Cut(field.Tag.Get("yaml"), ",")
		return name
	})
	return v
}

// Validate checks field formats.
func (c *Config) Validate() error {
	err := validate.Struct(c)
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return err
	}
	msgs := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		msgs = append(msgs, fieldMessage(fe))
	}
	return errors.New(strings.Join(msgs, "; "))
}

func fieldMessage(fe validator.FieldError) string {
	name := fe.Field()
	switch fe.Tag() {
	case "url", "startswith":
		return fmt.Sprintf("%s must be an http(s) URL", name)
	case "oneof":
		return fmt.Sprintf("%s must be one of: %s", name, fe.Param())
	default:
		return fmt.Sprintf("%s is invalid", name)
	}
}

// LoadFromEnv loads configuration from environment variables.
// Environment variables override existing values only if set and non-empty.
func (c *Config) LoadFromEnv() {
	if v := os.Getenv("SUI_DOCUMENTATION"); v != "" {
		c.Documentation = v
	}
	if v := os.Getenv("SUI_DOCUMENTATION_URL"); v != "" {
		c.DocumentationURL = v
	}
	if v := os.Getenv("SUI_DOCS_BASE_URL"); v != "" {
		c.DocsBaseURL = v
	}
	if v := os.Getenv("SUI_OUTPUT"); v != "" {
		c.OutputFormat = v
	}
}

// DefaultConfigPath returns the default configuration file path.
func DefaultConfigPath() string {
	return filepath.Join(configDir(), "config.yml")
}

// DefaultDocumentationPath returns where `sui docs` writes documentation
// when no path is configured.
func DefaultDocumentationPath() string {
	return filepath.Join(configDir(), "documentation.json")
}

func configDir() string {
	// Try XDG config directory first
	if xdgConfig := os.Getenv("XDG_CONFIG_HOME"); xdgConfig != "" {
		return filepath.Join(xdgConfig, "sui")
	}

	home, err := os.UserHomeDir()
	if err != nil {
		return filepath.Join(".", ".sui")
	}

	return filepath.Join(home, ".config", "sui")
}

// DocumentationPath returns the configured documentation path or the default.
func (c *Config) DocumentationPath() string {
	if c.Documentation != "" {
		return c.Documentation
	}
	return DefaultDocumentationPath()
}

// Save writes the configuration to the specified path.
func (c *Config) Save(path string) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	// Write with restricted permissions (user read/write only)
	if err := os.WriteFile(path, data, 0600); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}

// Load reads the configuration from the specified path.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	return &cfg, nil
}

// LoadWithEnv loads configuration from file and overrides with environment variables.
func LoadWithEnv(path string) (*Config, error) {
	cfg, err := Load(path)
	if err != nil {
		// If file doesn't exist, start with empty config
		cfg = &Config{}
	}

	cfg.LoadFromEnv()
	return cfg, nil
}
