package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConfig_Validate(t *testing.T) {
	tests := []struct {
		name    string
		config  Config
		wantErr bool
		errMsg  string
	}{
		{
			name:    "empty config",
			config:  Config{},
			wantErr: false,
		},
		{
			name: "valid config",
			config: Config{
				Documentation:    "/tmp/docs.json",
				DocumentationURL: "https://example.com/docs.json",
				DocsBaseURL:      "https://coveo.github.io/search-ui/components/",
				OutputFormat:     "json",
			},
			wantErr: false,
		},
		{
			name:    "invalid documentation URL",
			config:  Config{DocumentationURL: "not a url"},
			wantErr: true,
			errMsg:  "documentation_url must be an http(s) URL",
		},
		{
			name:    "non http docs base URL",
			config:  Config{DocsBaseURL: "ftp://example.com/"},
			wantErr: true,
			errMsg:  "docs_base_url must be an http(s) URL",
		},
		{
			name:    "invalid output format",
			config:  Config{OutputFormat: "xml"},
			wantErr: true,
			errMsg:  "output_format must be one of: table json plain",
		},
		{
			name:    "errors name yaml keys",
			config:  Config{DocumentationURL: "nope", OutputFormat: "yaml"},
			wantErr: true,
			errMsg:  "documentation_url must be an http(s) URL; output_format must be one of",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.config.Validate()
			if tt.wantErr {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.errMsg)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestConfig_LoadFromEnv(t *testing.T) {
	t.Run("loads all env vars", func(t *testing.T) {
		t.Setenv("SUI_DOCUMENTATION", "/env/docs.json")
		t.Setenv("SUI_DOCUMENTATION_URL", "https://env.example.com/docs.json")
		t.Setenv("SUI_DOCS_BASE_URL", "https://env.example.com/components/")
		t.Setenv("SUI_OUTPUT", "plain")

		cfg := &Config{}
		cfg.LoadFromEnv()

		assert.Equal(t, "/env/docs.json", cfg.Documentation)
		assert.Equal(t, "https://env.example.com/docs.json", cfg.DocumentationURL)
		assert.Equal(t, "https://env.example.com/components/", cfg.DocsBaseURL)
		assert.Equal(t, "plain", cfg.OutputFormat)
	})

	t.Run("empty env vars keep existing values", func(t *testing.T) {
		t.Setenv("SUI_DOCUMENTATION", "/override.json")
		t.Setenv("SUI_DOCUMENTATION_URL", "")
		t.Setenv("SUI_DOCS_BASE_URL", "")
		t.Setenv("SUI_OUTPUT", "")

		cfg := &Config{
			Documentation:    "/original.json",
			DocumentationURL: "https://original.example.com/docs.json",
		}
		cfg.LoadFromEnv()

		assert.Equal(t, "/override.json", cfg.Documentation)
		assert.Equal(t, "https://original.example.com/docs.json", cfg.DocumentationURL)
	})
}

func TestDefaultConfigPath(t *testing.T) {
	t.Run("xdg config home", func(t *testing.T) {
		dir := t.TempDir()
		t.Setenv("XDG_CONFIG_HOME", dir)

		assert.Equal(t, filepath.Join(dir, "sui", "config.yml"), DefaultConfigPath())
		assert.Equal(t, filepath.Join(dir, "sui", "documentation.json"), DefaultDocumentationPath())
	})

	t.Run("home directory", func(t *testing.T) {
		t.Setenv("XDG_CONFIG_HOME", "")
		home, err := os.UserHomeDir()
		require.NoError(t, err)

		path := DefaultConfigPath()
		assert.True(t, strings.HasPrefix(path, home))
		assert.Contains(t, path, "sui")
		assert.Equal(t, ".yml", filepath.Ext(path))
	})
}

func TestConfig_DocumentationPath(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", "/xdg")

	assert.Equal(t, "/custom.json", (&Config{Documentation: "/custom.json"}).DocumentationPath())
	assert.Equal(t, filepath.Join("/xdg", "sui", "documentation.json"), (&Config{}).DocumentationPath())
}

func TestConfig_Save_and_Load(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "nested", "config.yml")

	original := Config{
		Documentation:    "/tmp/docs.json",
		DocumentationURL: "https://example.com/docs.json",
		OutputFormat:     "json",
	}

	err := original.Save(configPath)
	require.NoError(t, err)

	info, err := os.Stat(configPath)
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0600), info.Mode().Perm())

	loaded, err := Load(configPath)
	require.NoError(t, err)
	assert.Equal(t, original, *loaded)
}

func TestLoad_FileNotFound(t *testing.T) {
	_, err := Load("/nonexistent/path/config.yml")
	require.Error(t, err)
}

func TestLoadWithEnv_MissingFile(t *testing.T) {
	t.Setenv("SUI_OUTPUT", "json")

	cfg, err := LoadWithEnv(filepath.Join(t.TempDir(), "missing.yml"))
	require.NoError(t, err)
	assert.Equal(t, "json", cfg.OutputFormat)
}
