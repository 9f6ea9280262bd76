package api

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewClient(t *testing.T) {
	client := NewClient("https://example.com/docs/")

	assert.NotNil(t, client)
	assert.Equal(t, "https://example.com/docs", client.baseURL)
	assert.Contains(t, client.userAgent, "sui/")
}

func TestClient_Headers(t *testing.T) {
	var capturedHeaders http.Header

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		capturedHeaders = r.Header.Clone()
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`[]`))
	}))
	defer server.Close()

	client := NewClient(server.URL)
	_, err := client.Get(context.Background(), "/test")
	require.NoError(t, err)

	assert.Equal(t, "application/json", capturedHeaders.Get("Accept"))
	assert.Contains(t, capturedHeaders.Get("User-Agent"), "sui/")
}

func TestClient_ErrorResponse(t *testing.T) {
	tests := []struct {
		name           string
		statusCode     int
		responseBody   string
		expectedErrMsg string
	}{
		{
			name:           "404 json message",
			statusCode:     404,
			responseBody:   `{"message": "No such file"}`,
			expectedErrMsg: "No such file (status 404)",
		},
		{
			name:           "500 plain text",
			statusCode:     500,
			responseBody:   "upstream exploded\n",
			expectedErrMsg: "upstream exploded (status 500)",
		},
		{
			name:           "403 empty body",
			statusCode:     403,
			responseBody:   "",
			expectedErrMsg: "request failed with status 403",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.statusCode)
				w.Write([]byte(tt.responseBody))
			}))
			defer server.Close()

			client := NewClient(server.URL)
			_, err := client.Get(context.Background(), "/test")

			require.Error(t, err)
			assert.Equal(t, tt.expectedErrMsg, err.Error())

			var errResp *ErrorResponse
			require.True(t, errors.As(err, &errResp))
			assert.Equal(t, tt.statusCode, errResp.StatusCode)
		})
	}
}

func TestClient_ContextCancellation(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		// Slow response
		<-r.Context().Done()
	}))
	defer server.Close()

	client := NewClient(server.URL)

	ctx, cancel := context.WithCancel(context.Background())
	cancel() // Cancel immediately

	_, err := client.Get(ctx, "/test")
	require.Error(t, err)
}

func TestClient_URLConstruction(t *testing.T) {
	var capturedPath string

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		capturedPath = r.URL.Path
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{}`))
	}))
	defer server.Close()

	tests := []struct {
		baseURL      string
		inputPath    string
		expectedPath string
	}{
		{server.URL, "/docgen.json", "/docgen.json"},
		{server.URL, "docgen.json", "/docgen.json"},
		{server.URL + "/data/documentation.json", "", "/data/documentation.json"},
	}

	for _, tt := range tests {
		client := NewClient(tt.baseURL)
		_, err := client.Get(context.Background(), tt.inputPath)
		require.NoError(t, err)
		assert.Equal(t, tt.expectedPath, capturedPath)
	}
}
