package vectorstore

import (
	"context"
	"fmt"

	"mentorloop/internal/logger"

	"github.com/tmc/langchaingo/embeddings"
	"github.com/tmc/langchaingo/vectorstores"
	"github.com/tmc/langchaingo/vectorstores/chroma"
	"go.uber.org/zap"
)

// ChromaProvider maps each exercise to a Chroma collection.
type ChromaProvider struct {
	chromaURL   string
	indexPrefix string
	embedder    embeddings.Embedder
}

// NewChromaProvider creates a provider for the Chroma server at chromaURL.
func NewChromaProvider(chromaURL, indexPrefix string, embedder embeddings.Embedder) (*ChromaProvider, error) {
	if chromaURL == "" {
		return nil, fmt.Errorf("chroma URL cannot be empty")
	}
	if embedder == nil {
		return nil, fmt.Errorf("embedder cannot be nil")
	}
	return &ChromaProvider{
		chromaURL:   chromaURL,
		indexPrefix: indexPrefix,
		embedder:    embedder,
	}, nil
}

var _ Provider = (*ChromaProvider)(nil)

// StoreFor implements Provider.
func (p *ChromaProvider) StoreFor(ctx context.Context, exerciseID string) (vectorstores.VectorStore, error) {
	store, err := chroma.New(
		chroma.WithChromaURL(p.chromaURL),
		chroma.WithEmbedder(p.embedder),
		chroma.WithNameSpace(IndexName(p.indexPrefix, exerciseID)),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to open chroma collection for exercise %s: %w", exerciseID, err)
	}
	return store, nil
}

// Drop implements Provider.
func (p *ChromaProvider) Drop(ctx context.Context, exerciseID string) error {
	store, err := chroma.New(
		chroma.WithChromaURL(p.chromaURL),
		chroma.WithEmbedder(p.embedder),
		chroma.WithNameSpace(IndexName(p.indexPrefix, exerciseID)),
	)
	if err != nil {
		return fmt.Errorf("failed to open chroma collection for exercise %s: %w", exerciseID, err)
	}
	if err := store.RemoveCollection(); err != nil {
		// A missing collection is fine; anything else is surfaced.
		logger.Get().Warn("Failed to remove chroma collection",
			zap.String("exerciseID", exerciseID),
			zap.Error(err))
	}
	return nil
}
