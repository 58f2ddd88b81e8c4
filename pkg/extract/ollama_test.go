package extract

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOllama_Generate(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/generate", r.URL.Path)

		var req ollamaRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, "llama3", req.Model)
		assert.False(t, req.Stream)
		assert.Equal(t, FormatJSON, req.Format)
		require.NotNil(t, req.Options)
		assert.Equal(t, 0.1, req.Options.Temperature)

		_, _ = w.Write([]byte(`{"model": "llama3", "response": "{\"make\": \"Honda\"}"}`))
	}))
	defer srv.Close()

	b := NewOllamaBackend(srv.URL, "llama3")

	resp, err := b.Generate(context.Background(), GenerateRequest{
		Prompt:      "extract",
		Format:      FormatJSON,
		Temperature: 0.1,
	})
	require.NoError(t, err)
	assert.Equal(t, `{"make": "Honda"}`, resp.Content)
	assert.Equal(t, "llama3", resp.Model)
}

func TestOllama_ErrorStatus(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
		_, _ = w.Write([]byte("model not found"))
	}))
	defer srv.Close()

	b := NewOllamaBackend(srv.URL, "llama3")
	_, err := b.Generate(context.Background(), GenerateRequest{Prompt: "extract"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "status 500")
}
