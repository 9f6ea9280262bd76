package configcmd

import (
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/open-cli-collective/searchui-cli/internal/config"
)

const documentation = `[{"name": "Searchbox"}, {"name": "Facet"}]`

func testConfig(t *testing.T, documentationURL string) *config.Config {
	t.Helper()
	path := filepath.Join(t.TempDir(), "documentation.json")
	require.NoError(t, os.WriteFile(path, []byte(documentation), 0644))
	return &config.Config{
		Documentation:    path,
		DocumentationURL: documentationURL,
	}
}

func TestRunTest_LocalOnly(t *testing.T) {
	err := runTest("", true, nil, testConfig(t, ""))
	require.NoError(t, err)
}

func TestRunTest_MissingDocumentation(t *testing.T) {
	cfg := &config.Config{Documentation: filepath.Join(t.TempDir(), "missing.json")}

	err := runTest("", true, nil, cfg)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "documentation unavailable")
}

func TestRunTest_InvalidConfig(t *testing.T) {
	cfg := testConfig(t, "")
	cfg.OutputFormat = "xml"

	err := runTest("", true, nil, cfg)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid config")
}

func TestRunTest_RemoteSuccess(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(documentation))
	}))
	defer server.Close()

	err := runTest("", true, nil, testConfig(t, server.URL+"/docgen.json"))
	require.NoError(t, err)
}

func TestRunTest_RemoteNotFound(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))
	defer server.Close()

	err := runTest("", true, nil, testConfig(t, server.URL+"/docgen.json"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "download failed")
	assert.Contains(t, err.Error(), "status 404")
}

func TestRunTest_RemoteGarbage(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("<html>not json</html>"))
	}))
	defer server.Close()

	err := runTest("", true, nil, testConfig(t, server.URL+"/docgen.json"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "download failed")
}
