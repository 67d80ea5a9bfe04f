// Package testutil holds scripted collaborators shared by package tests.
package testutil

import (
	"context"
	"errors"
	"strings"
	"sync"

	"medicine-chatbot-be/pkg/embedding"
	"medicine-chatbot-be/pkg/llm"
)

// Rule answers any prompt containing Contains.
type Rule struct {
	Contains string
	Reply    string
	Err      error
}

// FakeGenerator replies by the first rule whose marker appears in the prompt.
type FakeGenerator struct {
	mu      sync.Mutex
	rules   []Rule
	Default string
	Prompts []string
	Options []llm.Options
}

var _ llm.LLMProvider = &FakeGenerator{}

func NewFakeGenerator(rules ...Rule) *FakeGenerator {
	return &FakeGenerator{rules: rules}
}

func (g *FakeGenerator) On(contains, reply string) *FakeGenerator {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.rules = append(g.rules, Rule{Contains: contains, Reply: reply})
	return g
}

func (g *FakeGenerator) Fail(contains string, err error) *FakeGenerator {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.rules = append(g.rules, Rule{Contains: contains, Err: err})
	return g
}

func (g *FakeGenerator) Chat(ctx context.Context, history []llm.Message, opts ...llm.Option) (string, error) {
	var prompt string
	if len(history) > 0 {
		prompt = history[len(history)-1].Content
	}
	return g.Generate(ctx, prompt, opts...)
}

func (g *FakeGenerator) Generate(ctx context.Context, prompt string, opts ...llm.Option) (string, error) {
	g.mu.Lock()
	defer g.mu.Unlock()

	g.Prompts = append(g.Prompts, prompt)
	g.Options = append(g.Options, *llm.Apply(llm.Options{}, opts...))

	for _, r := range g.rules {
		if strings.Contains(prompt, r.Contains) {
			return r.Reply, r.Err
		}
	}
	return g.Default, nil
}

// PromptsContaining returns recorded prompts that include marker.
func (g *FakeGenerator) PromptsContaining(marker string) []string {
	g.mu.Lock()
	defer g.mu.Unlock()
	var out []string
	for _, p := range g.Prompts {
		if strings.Contains(p, marker) {
			out = append(out, p)
		}
	}
	return out
}

// FakeEmbedder returns a fixed vector, or Err when set.
type FakeEmbedder struct {
	Vector []float32
	Err    error
	Calls  int
}

var _ embedding.EmbeddingProvider = &FakeEmbedder{}

func (e *FakeEmbedder) Generate(ctx context.Context, text string, taskType string) (*embedding.EmbeddingResponse, error) {
	e.Calls++
	if e.Err != nil {
		return nil, e.Err
	}
	if len(e.Vector) == 0 {
		return nil, errors.New("no vector configured")
	}
	return &embedding.EmbeddingResponse{
		Embedding: embedding.EmbeddingResponseEmbedding{Values: e.Vector},
	}, nil
}
