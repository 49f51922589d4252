package llm

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClient_Generate(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "Bearer test-key", r.Header.Get("Authorization"))
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))

		var req chatRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, "gpt-4o", req.Model)
		require.Len(t, req.Messages, 2)
		assert.Equal(t, "system", req.Messages[0].Role)
		assert.Equal(t, "be helpful", req.Messages[0].Content)
		assert.Equal(t, "user", req.Messages[1].Role)
		assert.Equal(t, "write something", req.Messages[1].Content)

		_ = json.NewEncoder(w).Encode(map[string]any{
			"choices": []map[string]any{
				{"message": map[string]string{"role": "assistant", "content": "Hello"}},
			},
		})
	}))
	defer server.Close()

	client := NewClient(server.URL, "test-key")

	text, err := client.Generate(context.Background(), GenerationRequest{
		Model:        "gpt-4o",
		SystemPrompt: "be helpful",
		UserPrompt:   "write something",
	})
	require.NoError(t, err)
	assert.Equal(t, "Hello", text)
}

func TestClient_GenerateAPIError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusTooManyRequests)
		_, _ = w.Write([]byte(`{"error":{"message":"rate limited"}}`))
	}))
	defer server.Close()

	client := NewClient(server.URL, "test-key")

	_, err := client.Generate(context.Background(), GenerationRequest{Model: "m", UserPrompt: "p"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "429")
	assert.Contains(t, err.Error(), "rate limited")
}

func TestClient_GenerateEmptyChoices(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(`{"choices":[]}`))
	}))
	defer server.Close()

	client := NewClient(server.URL, "")

	_, err := client.Generate(context.Background(), GenerationRequest{Model: "m", UserPrompt: "p"})
	assert.ErrorContains(t, err, "no choices")
}

func TestClient_GenerateNoEndpoint(t *testing.T) {
	client := NewClient("", "key")

	_, err := client.Generate(context.Background(), GenerationRequest{Model: "m", UserPrompt: "p"})
	assert.ErrorContains(t, err, "misconfigured")
}
