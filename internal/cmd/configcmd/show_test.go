package configcmd

import (
	"path/filepath"
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/open-cli-collective/searchui-cli/internal/config"
)

func TestRunShow_WithConfigFile(t *testing.T) {
	configPath := filepath.Join(t.TempDir(), "config.yml")
	cfg := &config.Config{
		Documentation:    "/tmp/documentation.json",
		DocumentationURL: "https://example.com/docgen.json",
		OutputFormat:     "plain",
	}
	require.NoError(t, cfg.Save(configPath))

	t.Setenv("SUI_OUTPUT", "json")

	err := runShow(configPath, true)
	require.NoError(t, err)
}

func TestRunShow_NoConfigFile(t *testing.T) {
	// Clear env vars
	for _, v := range envVars {
		t.Setenv(v, "")
	}
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())

	err := runShow(filepath.Join(t.TempDir(), "config.yml"), true)
	require.NoError(t, err)
}

func TestConfigPath(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", "/xdg")

	cmd := &cobra.Command{Use: "test"}
	cmd.Flags().String("config", "", "")
	assert.Equal(t, filepath.Join("/xdg", "sui", "config.yml"), configPath(cmd))

	require.NoError(t, cmd.Flags().Set("config", "/custom.yml"))
	assert.Equal(t, "/custom.yml", configPath(cmd))
}

func TestNewCmdConfig(t *testing.T) {
	cmd := NewCmdConfig()

	assert.Equal(t, "config", cmd.Use)
	assert.Len(t, cmd.Commands(), 3)
}
