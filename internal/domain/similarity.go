package domain

import "context"

// SimilarityScorer returns a semantic similarity score for two texts.
// Scores are on the same scale as the configured correctness threshold
// (cosine similarity of embeddings, [-1, 1] in theory, [0, 1] in practice).
type SimilarityScorer interface {
	Score(ctx context.Context, a, b string) (float64, error)
}
