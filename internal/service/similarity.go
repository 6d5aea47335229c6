package service

import (
	"context"
	"fmt"

	"mentorloop/internal/domain"
	"mentorloop/internal/util"
)

// embeddingSimilarityScorer scores two texts by embedding both and
// taking their cosine similarity.
type embeddingSimilarityScorer struct {
	embeddingService domain.EmbeddingService
}

// NewEmbeddingSimilarityScorer creates a scorer backed by the given
// embedding service.
func NewEmbeddingSimilarityScorer(embeddingService domain.EmbeddingService) (domain.SimilarityScorer, error) {
	if embeddingService == nil {
		return nil, fmt.Errorf("embedding service cannot be nil")
	}
	return &embeddingSimilarityScorer{embeddingService: embeddingService}, nil
}

// Score implements domain.SimilarityScorer.
func (s *embeddingSimilarityScorer) Score(ctx context.Context, a, b string) (float64, error) {
	vecA, err := s.embeddingService.Generate(ctx, a)
	if err != nil {
		return 0, fmt.Errorf("failed to embed first text: %w", err)
	}
	vecB, err := s.embeddingService.Generate(ctx, b)
	if err != nil {
		return 0, fmt.Errorf("failed to embed second text: %w", err)
	}
	return util.CosineSimilarity(vecA, vecB)
}
