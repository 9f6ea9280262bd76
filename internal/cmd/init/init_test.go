package init

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/open-cli-collective/searchui-cli/api"
	"github.com/open-cli-collective/searchui-cli/pkg/schema"
)

func TestNewCmdInit(t *testing.T) {
	cmd := NewCmdInit()

	assert.Equal(t, "init", cmd.Use)
	assert.NotNil(t, cmd.Flags().Lookup("documentation-url"))
	assert.NotNil(t, cmd.Flags().Lookup("documentation-path"))
	assert.NotNil(t, cmd.Flags().Lookup("no-verify"))
}

func TestVerifyDocumentationURL_Success(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/docgen.json", r.URL.Path)
		assert.Equal(t, "application/json", r.Header.Get("Accept"))

		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`[{"name": "Searchbox"}, {"name": "Facet"}, {"name": "IQuery"}]`))
	}))
	defer server.Close()

	components, err := verifyDocumentationURL(server.URL + "/docgen.json")
	require.NoError(t, err)
	assert.Equal(t, 2, components)
}

func TestVerifyDocumentationURL_NoComponents(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`[]`))
	}))
	defer server.Close()

	_, err := verifyDocumentationURL(server.URL)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no components documented")
}

func TestVerifyDocumentationURL_StatusCodes(t *testing.T) {
	tests := []struct {
		name       string
		statusCode int
		body       string
		errContain string
	}{
		{"404 not found", http.StatusNotFound, `{"message": "Not Found"}`, "Not Found (status 404)"},
		{"403 forbidden", http.StatusForbidden, "", "status 403"},
		{"500 server error", http.StatusInternalServerError, "boom", "boom (status 500)"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.statusCode)
				w.Write([]byte(tt.body))
			}))
			defer server.Close()

			_, err := verifyDocumentationURL(server.URL)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.errContain)

			var errResp *api.ErrorResponse
			assert.True(t, errors.As(err, &errResp))
		})
	}
}

func TestVerifyDocumentationURL_EmptyBody(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))
	defer server.Close()

	_, err := verifyDocumentationURL(server.URL)
	assert.True(t, errors.Is(err, schema.ErrNoDocumentation))
}

func TestVerifyDocumentationURL_NetworkError(t *testing.T) {
	_, err := verifyDocumentationURL("http://localhost:99999/docgen.json")
	require.Error(t, err)
}

func TestValidateOptionalURL(t *testing.T) {
	tests := []struct {
		input   string
		wantErr bool
	}{
		{"", false},
		{"https://example.com/docs.json", false},
		{"http://localhost:8080", false},
		{"ftp://example.com", true},
		{"example.com", true},
		{"https://", true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			err := validateOptionalURL(tt.input)
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
