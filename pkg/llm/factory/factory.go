package factory

import (
	"context"
	"fmt"

	"medicine-chatbot-be/pkg/llm"
	"medicine-chatbot-be/pkg/llm/gemini"
	"medicine-chatbot-be/pkg/llm/huggingface"
	"medicine-chatbot-be/pkg/llm/ollama"
)

// Params carries everything any provider might need; each provider reads its own fields.
type Params struct {
	Provider string
	Model    string
	BaseURL  string
	APIKey   string
}

func NewLLMProvider(ctx context.Context, p Params) (llm.LLMProvider, error) {
	switch p.Provider {
	case "ollama":
		baseURL := p.BaseURL
		if baseURL == "" {
			baseURL = "http://localhost:11434"
		}
		return ollama.NewOllamaProvider(baseURL, p.Model), nil
	case "huggingface":
		return huggingface.NewHuggingFaceProvider(p.APIKey, p.BaseURL, p.Model), nil
	case "gemini":
		provider, err := gemini.NewGeminiProvider(ctx, p.APIKey, p.Model)
		if err != nil {
			return nil, err
		}
		return provider, nil
	default:
		return nil, fmt.Errorf("unsupported LLM provider: %s", p.Provider)
	}
}
