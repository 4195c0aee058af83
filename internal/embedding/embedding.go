// Package embedding wraps the langchaingo embedders behind a small
// Encoder interface so the pipeline and its tests do not depend on a
// concrete provider.
package embedding

import (
	"context"
	"fmt"
	"strings"

	"faq-chatbot/internal/config"

	"github.com/rs/zerolog/log"
	"github.com/tmc/langchaingo/embeddings"
	"github.com/tmc/langchaingo/llms/ollama"
	"github.com/tmc/langchaingo/llms/openai"
)

// Encoder maps text to a fixed-dimensional vector. Implementations must
// be deterministic for a given model and safe for concurrent use.
type Encoder interface {
	Embed(ctx context.Context, text string) ([]float32, error)
}

type langchainEncoder struct {
	impl  *embeddings.EmbedderImpl
	model string
}

func (e *langchainEncoder) Embed(ctx context.Context, text string) ([]float32, error) {
	vec, err := e.impl.EmbedQuery(ctx, text)
	if err != nil {
		return nil, fmt.Errorf("embed query (%d chars): %w", len(text), err)
	}
	return vec, nil
}

// NewEncoder builds the encoder selected by the config provider field.
func NewEncoder(cfg *config.EmbeddingConfig) (Encoder, error) {
	switch cfg.Provider {
	case "ollama":
		return NewOllamaEncoder(cfg)
	case "openai":
		return NewOpenAIEncoder(cfg)
	default:
		return nil, fmt.Errorf("unknown embedding provider: %q", cfg.Provider)
	}
}

func NewOllamaEncoder(cfg *config.EmbeddingConfig) (Encoder, error) {
	log.Debug().
		Str("base_url", cfg.BaseURL).
		Str("embedding_model", cfg.Model).
		Msg("Initializing ollama embedder")

	llm, err := ollama.New(
		ollama.WithServerURL(cfg.BaseURL),
		ollama.WithModel(cfg.Model),
	)
	if err != nil {
		return nil, fmt.Errorf("init ollama: %w", err)
	}
	embedder, err := embeddings.NewEmbedder(llm)
	if err != nil {
		return nil, fmt.Errorf("create embedder: %w", err)
	}
	return &langchainEncoder{impl: embedder, model: cfg.Model}, nil
}

// NewOpenAIEncoder targets any OpenAI-compatible endpoint (OpenRouter
// included); the key may carry a "Bearer " prefix from copy-paste.
func NewOpenAIEncoder(cfg *config.EmbeddingConfig) (Encoder, error) {
	log.Debug().
		Str("base_url", cfg.BaseURL).
		Str("embedding_model", cfg.Model).
		Msg("Initializing openai embedder")

	llm, err := openai.New(
		openai.WithBaseURL(cfg.BaseURL),
		openai.WithToken(strings.TrimPrefix(cfg.APIKey, "Bearer ")),
		openai.WithModel(cfg.Model),
	)
	if err != nil {
		return nil, fmt.Errorf("init openai: %w", err)
	}
	embedder, err := embeddings.NewEmbedder(llm)
	if err != nil {
		return nil, fmt.Errorf("create embedder: %w", err)
	}
	return &langchainEncoder{impl: embedder, model: cfg.Model}, nil
}

// EmbedAll encodes texts one by one, preserving input order.
func EmbedAll(ctx context.Context, enc Encoder, texts []string) ([][]float32, error) {
	if len(texts) == 0 {
		return nil, nil
	}
	vectors := make([][]float32, 0, len(texts))
	for _, text := range texts {
		vec, err := enc.Embed(ctx, text)
		if err != nil {
			return nil, err
		}
		vectors = append(vectors, vec)
	}
	return vectors, nil
}
