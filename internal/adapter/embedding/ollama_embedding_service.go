package embedding

import (
	"context"
	"fmt"

	"mentorloop/internal/domain"

	"github.com/tmc/langchaingo/embeddings"
	"github.com/tmc/langchaingo/llms/ollama"
)

// OllamaEmbeddingService generates embeddings through a local Ollama
// server. Unlike the OpenAI variant it does not cache vectors: local
// embedding calls are cheap enough to repeat.
type OllamaEmbeddingService struct {
	embedder embeddings.Embedder
}

var _ domain.EmbeddingService = (*OllamaEmbeddingService)(nil)

func NewOllamaEmbeddingService(serverURL, modelName string) (*OllamaEmbeddingService, error) {
	if serverURL == "" {
		return nil, fmt.Errorf("ollama server URL cannot be empty")
	}
	if modelName == "" {
		return nil, fmt.Errorf("ollama model name cannot be empty")
	}

	llm, err := ollama.New(
		ollama.WithServerURL(serverURL),
		ollama.WithModel(modelName),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create ollama client: %w", err)
	}

	embedder, err := embeddings.NewEmbedder(llm)
	if err != nil {
		return nil, fmt.Errorf("failed to create embedder from ollama client: %w", err)
	}

	return &OllamaEmbeddingService{embedder: embedder}, nil
}

func (s *OllamaEmbeddingService) Generate(ctx context.Context, text string) ([]float32, error) {
	if text == "" {
		return nil, fmt.Errorf("input text cannot be empty for embedding")
	}

	vector, err := s.embedder.EmbedQuery(ctx, text)
	if err != nil {
		return nil, fmt.Errorf("ollama embedding failed: %w", err)
	}
	return vector, nil
}

// Embedder exposes the underlying langchaingo embedder for the vector
// store backends.
func (s *OllamaEmbeddingService) Embedder() embeddings.Embedder {
	return s.embedder
}
