package vectorstore

import (
	"context"
	"fmt"
	"strings"

	"github.com/redis/go-redis/v9"
	"github.com/tmc/langchaingo/embeddings"
	"github.com/tmc/langchaingo/vectorstores"
	"github.com/tmc/langchaingo/vectorstores/redisvector"
)

// RedisProvider maps each exercise to a RediSearch vector index.
type RedisProvider struct {
	connURL     string
	indexPrefix string
	embedder    embeddings.Embedder
	client      *redis.Client
}

// NewRedisProvider creates a provider backed by the Redis instance that
// client talks to. connURL must be a redis:// URL for the same instance;
// redisvector manages its own connection from it.
func NewRedisProvider(connURL, indexPrefix string, embedder embeddings.Embedder, client *redis.Client) (*RedisProvider, error) {
	if connURL == "" {
		return nil, fmt.Errorf("redis connection URL cannot be empty")
	}
	if embedder == nil {
		return nil, fmt.Errorf("embedder cannot be nil")
	}
	if client == nil {
		return nil, fmt.Errorf("redis client cannot be nil")
	}
	return &RedisProvider{
		connURL:     connURL,
		indexPrefix: indexPrefix,
		embedder:    embedder,
		client:      client,
	}, nil
}

var _ Provider = (*RedisProvider)(nil)

// StoreFor implements Provider.
func (p *RedisProvider) StoreFor(ctx context.Context, exerciseID string) (vectorstores.VectorStore, error) {
	store, err := redisvector.New(ctx,
		redisvector.WithConnectionURL(p.connURL),
		redisvector.WithIndexName(IndexName(p.indexPrefix, exerciseID), true),
		redisvector.WithEmbedder(p.embedder),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to open redis vector index for exercise %s: %w", exerciseID, err)
	}
	return store, nil
}

// Drop implements Provider. The DD flag removes the indexed documents
// along with the index so re-indexing starts clean.
func (p *RedisProvider) Drop(ctx context.Context, exerciseID string) error {
	name := IndexName(p.indexPrefix, exerciseID)
	if err := p.client.Do(ctx, "FT.DROPINDEX", name, "DD").Err(); err != nil {
		if strings.Contains(strings.ToLower(err.Error()), "unknown index") ||
			strings.Contains(strings.ToLower(err.Error()), "no such index") {
			return nil
		}
		return fmt.Errorf("failed to drop redis vector index %s: %w", name, err)
	}
	return nil
}
