package embedding

import (
	"bytes"
	"context"
	"encoding/gob"
	"fmt"
	"time"

	"mentorloop/internal/cache"
	"mentorloop/internal/domain"

	"github.com/tmc/langchaingo/embeddings"
	openaiLLM "github.com/tmc/langchaingo/llms/openai"
	"golang.org/x/sync/singleflight"
)

const embeddingCacheTTL = 168 * time.Hour // 7 days

// OpenAIEmbeddingService implements the domain.EmbeddingService
// interface using OpenAI. Embeddings are cached (gob-encoded) and
// concurrent requests for the same text are collapsed via singleflight,
// since every cache miss costs an API call.
type OpenAIEmbeddingService struct {
	embedder embeddings.Embedder
	cache    domain.Cache
	sfGroup  singleflight.Group
}

// NewOpenAIEmbeddingService creates a new OpenAIEmbeddingService.
// cache may be nil, in which case every call hits the API.
func NewOpenAIEmbeddingService(apiKey, modelName string, cacheClient domain.Cache) (*OpenAIEmbeddingService, error) {
	if apiKey == "" {
		return nil, fmt.Errorf("openai API key cannot be empty")
	}
	if modelName == "" {
		modelName = "text-embedding-ada-002"
	}

	llm, err := openaiLLM.New(
		openaiLLM.WithToken(apiKey),
		openaiLLM.WithModel(modelName),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create LangchainGo OpenAI LLM client for embedder: %w", err)
	}

	embedder, err := embeddings.NewEmbedder(llm)
	if err != nil {
		return nil, fmt.Errorf("failed to create generic embedder from OpenAI LLM: %w", err)
	}

	return &OpenAIEmbeddingService{
		embedder: embedder,
		cache:    cacheClient,
	}, nil
}

var _ domain.EmbeddingService = (*OpenAIEmbeddingService)(nil)

// Generate creates an embedding for the given text using the OpenAI embedder.
func (s *OpenAIEmbeddingService) Generate(ctx context.Context, text string) ([]float32, error) {
	if text == "" {
		return nil, fmt.Errorf("input text cannot be empty for embedding")
	}

	cacheKey := cache.GenerateCacheKey("embedding", "openai", hashString(text))

	if s.cache != nil {
		cachedDataString, err := s.cache.Get(ctx, cacheKey)
		if err == nil {
			var vector []float32
			decoder := gob.NewDecoder(bytes.NewReader([]byte(cachedDataString)))
			if errDecode := decoder.Decode(&vector); errDecode == nil {
				return vector, nil
			}
			// Undecodable entry: fall through and regenerate.
		}
	}

	res, err, _ := s.sfGroup.Do(cacheKey, func() (interface{}, error) {
		vector, fetchErr := s.embedder.EmbedQuery(ctx, text)
		if fetchErr != nil {
			return nil, fmt.Errorf("failed to generate embedding using OpenAI: %w", fetchErr)
		}
		if vector == nil {
			return nil, fmt.Errorf("received nil embedding from OpenAI without error")
		}

		if s.cache != nil {
			var buffer bytes.Buffer
			if errEncode := gob.NewEncoder(&buffer).Encode(vector); errEncode == nil {
				// Caching is best effort; the embedding is still returned.
				_ = s.cache.Set(ctx, cacheKey, buffer.String(), embeddingCacheTTL)
			}
		}
		return vector, nil
	})
	if err != nil {
		return nil, err
	}

	if vector, ok := res.([]float32); ok {
		return vector, nil
	}
	return nil, fmt.Errorf("unexpected type from singleflight.Do for openai embedding: %T", res)
}

// Embedder exposes the underlying langchaingo embedder for components
// that integrate with vector stores directly.
func (s *OpenAIEmbeddingService) Embedder() embeddings.Embedder {
	return s.embedder
}
