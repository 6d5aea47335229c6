package vectorstore

import (
	"context"
	"fmt"
	"strings"

	"github.com/tmc/langchaingo/vectorstores"
)

// Provider hands out one vector index per exercise. Indexes are cheap
// handles; backends create them lazily on first write.
type Provider interface {
	// StoreFor returns the vector store bound to the exercise's index.
	StoreFor(ctx context.Context, exerciseID string) (vectorstores.VectorStore, error)

	// Drop removes the exercise's index and its documents. Dropping a
	// missing index is not an error.
	Drop(ctx context.Context, exerciseID string) error
}

// IndexName derives the backend index/collection name for an exercise.
func IndexName(prefix, exerciseID string) string {
	return fmt.Sprintf("%s_%s", prefix, strings.ToLower(exerciseID))
}
