package domain

import "context"

// EmbeddingService is the port for turning text into a vector. The
// similarity gate and the hint cache both depend on it; the vector
// index side uses the backend's native embedder instead.
type EmbeddingService interface {
	Generate(ctx context.Context, text string) ([]float32, error)
}
