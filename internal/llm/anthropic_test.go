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

func TestNewAnthropicClient(t *testing.T) {
	_, err := newAnthropicClient(Config{})
	require.Error(t, err)

	client, err := newAnthropicClient(Config{APIKey: "test-key"})
	require.NoError(t, err)
	ac, ok := client.(*anthropicClient)
	require.True(t, ok)
	assert.Equal(t, anthropicBaseURL, ac.baseURL)
	assert.Equal(t, 20, ac.maxTokens)
}

func TestAnthropicClient_Complete(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/v1/messages", r.URL.Path)
		assert.Equal(t, "test-key", r.Header.Get("x-api-key"))
		assert.Equal(t, "2023-06-01", r.Header.Get("anthropic-version"))

		var body map[string]any
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, systemPrompt, body["system"])

		_, _ = w.Write([]byte(`{"id":"msg","content":[{"type":"text","text":"` + "```json\\n{\\\"label\\\": 2}\\n```" + `"}]}`))
	}))
	defer server.Close()

	client, err := newAnthropicClient(Config{APIKey: "test-key", BaseURL: server.URL})
	require.NoError(t, err)

	content, err := client.Complete(context.Background(), systemPrompt, "no power since morning")
	require.NoError(t, err)
	assert.Equal(t, "```json\n{\"label\": 2}\n```", content)
}

func TestAnthropicClient_EmptyContent(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(`{"id":"msg","content":[]}`))
	}))
	defer server.Close()

	client, err := newAnthropicClient(Config{APIKey: "k", BaseURL: server.URL})
	require.NoError(t, err)

	_, err = client.Complete(context.Background(), "s", "p")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no content")
}
