package storage

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"mentorloop/internal/domain"
)

// LocalStorage keeps material files on the local filesystem under a
// configured root directory. Suitable for development and single-node
// deployments.
type LocalStorage struct {
	root string
}

func NewLocalStorage(root string) (*LocalStorage, error) {
	if root == "" {
		return nil, fmt.Errorf("local storage path cannot be empty")
	}
	if err := os.MkdirAll(root, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create local storage directory: %w", err)
	}
	return &LocalStorage{root: root}, nil
}

var _ domain.FileStorage = (*LocalStorage)(nil)

// resolve joins key under root and rejects path traversal.
func (s *LocalStorage) resolve(key string) (string, error) {
	cleaned := filepath.Clean(key)
	if cleaned == "." || strings.HasPrefix(cleaned, "..") || filepath.IsAbs(cleaned) {
		return "", domain.NewInvalidInputError(fmt.Sprintf("invalid storage key: %q", key))
	}
	return filepath.Join(s.root, cleaned), nil
}

func (s *LocalStorage) Upload(ctx context.Context, key string, reader io.Reader, size int64, contentType string) error {
	dst, err := s.resolve(key)
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(dst), 0o755); err != nil {
		return domain.NewStorageError("upload", err)
	}

	out, err := os.Create(dst)
	if err != nil {
		return domain.NewStorageError("upload", err)
	}
	defer out.Close()

	if _, err := io.Copy(out, reader); err != nil {
		return domain.NewStorageError("upload", err)
	}
	return nil
}

func (s *LocalStorage) Download(ctx context.Context, key string) (io.ReadCloser, int64, error) {
	path, err := s.resolve(key)
	if err != nil {
		return nil, 0, err
	}

	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, 0, domain.NewNotFoundError(fmt.Sprintf("material not found: %s", key))
		}
		return nil, 0, domain.NewStorageError("download", err)
	}

	info, err := f.Stat()
	if err != nil {
		f.Close()
		return nil, 0, domain.NewStorageError("download", err)
	}
	return f, info.Size(), nil
}

func (s *LocalStorage) Delete(ctx context.Context, key string) error {
	path, err := s.resolve(key)
	if err != nil {
		return err
	}
	if err := os.Remove(path); err != nil && !os.IsNotExist(err) {
		return domain.NewStorageError("delete", err)
	}
	return nil
}
