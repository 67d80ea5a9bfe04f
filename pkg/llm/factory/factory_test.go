package factory

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"medicine-chatbot-be/pkg/llm/huggingface"
	"medicine-chatbot-be/pkg/llm/ollama"
)

func TestNewLLMProvider(t *testing.T) {
	ctx := context.Background()

	t.Run("ollama defaults base url", func(t *testing.T) {
		p, err := NewLLMProvider(ctx, Params{Provider: "ollama", Model: "llama3"})
		require.NoError(t, err)
		op, ok := p.(*ollama.OllamaProvider)
		require.True(t, ok)
		assert.Equal(t, "http://localhost:11434", op.BaseURL)
	})

	t.Run("huggingface", func(t *testing.T) {
		p, err := NewLLMProvider(ctx, Params{Provider: "huggingface", Model: "m", APIKey: "k"})
		require.NoError(t, err)
		assert.IsType(t, &huggingface.HuggingFaceProvider{}, p)
	})

	t.Run("gemini without key fails", func(t *testing.T) {
		_, err := NewLLMProvider(ctx, Params{Provider: "gemini"})
		assert.Error(t, err)
	})

	t.Run("unknown provider", func(t *testing.T) {
		_, err := NewLLMProvider(ctx, Params{Provider: "openai"})
		assert.EqualError(t, err, "unsupported LLM provider: openai")
	})
}
