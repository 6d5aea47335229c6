package service

import (
	"context"
	"fmt"
	"io"

	"mentorloop/internal/adapter/vectorstore"
	"mentorloop/internal/domain"
	"mentorloop/internal/logger"

	"github.com/tmc/langchaingo/documentloaders"
	"github.com/tmc/langchaingo/textsplitter"
	"go.uber.org/zap"
)

const (
	materialChunkSize    = 5000
	materialChunkOverlap = 200
)

// materialChunkSeparators split on paragraph and sentence boundaries
// first and fall back to smaller units only for oversized runs.
var materialChunkSeparators = []string{"\n\n", "\n", ".", "!", "?", ",", " ", ""}

// materialIndexer implements domain.MaterialIndexer: it loads a
// reference PDF, splits it into overlapping chunks and writes them to
// the exercise's vector index.
type materialIndexer struct {
	provider vectorstore.Provider
}

// NewMaterialIndexer creates an indexer over the given vector store
// provider.
func NewMaterialIndexer(provider vectorstore.Provider) (domain.MaterialIndexer, error) {
	if provider == nil {
		return nil, fmt.Errorf("vector store provider cannot be nil")
	}
	return &materialIndexer{provider: provider}, nil
}

// IndexMaterial implements domain.MaterialIndexer. It returns the
// number of chunks written.
func (idx *materialIndexer) IndexMaterial(ctx context.Context, exerciseID string, pdf io.ReaderAt, size int64) (int, error) {
	loader := documentloaders.NewPDF(pdf, size)
	splitter := textsplitter.NewRecursiveCharacter(
		textsplitter.WithChunkSize(materialChunkSize),
		textsplitter.WithChunkOverlap(materialChunkOverlap),
		textsplitter.WithSeparators(materialChunkSeparators),
	)

	docs, err := loader.LoadAndSplit(ctx, splitter)
	if err != nil {
		return 0, domain.NewIndexingError("load and split PDF", err)
	}
	if len(docs) == 0 {
		return 0, domain.NewIndexingError("load and split PDF", fmt.Errorf("no text extracted from material"))
	}

	store, err := idx.provider.StoreFor(ctx, exerciseID)
	if err != nil {
		return 0, domain.NewIndexingError("open vector index", err)
	}

	if _, err := store.AddDocuments(ctx, docs); err != nil {
		return 0, domain.NewIndexingError("store chunks", err)
	}

	logger.Get().Info("Indexed reference material",
		zap.String("exerciseID", exerciseID),
		zap.Int("chunks", len(docs)))
	return len(docs), nil
}

// DropIndex implements domain.MaterialIndexer.
func (idx *materialIndexer) DropIndex(ctx context.Context, exerciseID string) error {
	return idx.provider.Drop(ctx, exerciseID)
}
