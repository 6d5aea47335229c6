package domain

import (
	"context"
	"io"
)

// FileStorage persists reference-material objects (PDFs) keyed by name.
type FileStorage interface {
	Upload(ctx context.Context, key string, reader io.Reader, size int64, contentType string) error
	Download(ctx context.Context, key string) (io.ReadCloser, int64, error)
	Delete(ctx context.Context, key string) error
}
