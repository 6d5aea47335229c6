package domain

import (
	"context"
	"io"
)

// MaterialIndexer turns a reference PDF into a searchable per-exercise
// index. Re-indexing an exercise replaces its previous index content.
type MaterialIndexer interface {
	IndexMaterial(ctx context.Context, exerciseID string, pdf io.ReaderAt, size int64) (int, error)
	DropIndex(ctx context.Context, exerciseID string) error
}
