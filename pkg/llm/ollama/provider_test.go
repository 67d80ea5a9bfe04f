package ollama

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"medicine-chatbot-be/pkg/llm"
)

func TestOllamaProvider_Generate(t *testing.T) {
	var captured chatRequest
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/chat", r.URL.Path)
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&captured))
		_ = json.NewEncoder(w).Encode(chatResponse{
			Message: llm.Message{Role: "assistant", Content: "Aspirin, Warfarin"},
			Done:    true,
		})
	}))
	defer srv.Close()

	p := NewOllamaProvider(srv.URL, "llama3")
	out, err := p.Generate(context.Background(), "extract", llm.WithTemperature(0.01), llm.WithMaxTokens(100))

	require.NoError(t, err)
	assert.Equal(t, "Aspirin, Warfarin", out)
	assert.Equal(t, "llama3", captured.Model)
	assert.False(t, captured.Stream)
	require.NotNil(t, captured.Options)
	assert.InDelta(t, 0.01, captured.Options.Temperature, 1e-9)
	assert.Equal(t, 100, captured.Options.NumPredict)
	require.Len(t, captured.Messages, 1)
	assert.Equal(t, "user", captured.Messages[0].Role)
}

func TestOllamaProvider_ErrorStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "model not found", http.StatusNotFound)
	}))
	defer srv.Close()

	p := NewOllamaProvider(srv.URL, "missing")
	_, err := p.Generate(context.Background(), "hi")

	require.Error(t, err)
	assert.Contains(t, err.Error(), "status 404")
}
