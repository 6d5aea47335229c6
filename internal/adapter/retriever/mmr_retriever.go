package retriever

import (
	"context"
	"fmt"

	"mentorloop/internal/adapter/vectorstore"
	"mentorloop/internal/config"
	"mentorloop/internal/domain"
	"mentorloop/internal/logger"
	"mentorloop/internal/util"

	"github.com/tmc/langchaingo/embeddings"
	"github.com/tmc/langchaingo/schema"
	"go.uber.org/zap"
)

// MMRRetriever fetches candidate chunks from the exercise's vector index
// and re-ranks them with maximal marginal relevance so the returned
// context covers the material instead of repeating the closest chunk.
type MMRRetriever struct {
	provider vectorstore.Provider
	embedder embeddings.Embedder
	fetchK   int
	selectK  int
	contextK int
	lambda   float64
}

// NewMMRRetriever creates a retriever over the given vector store provider.
func NewMMRRetriever(provider vectorstore.Provider, embedder embeddings.Embedder, cfg config.RetrieverConfig) (*MMRRetriever, error) {
	if provider == nil {
		return nil, fmt.Errorf("vector store provider cannot be nil")
	}
	if embedder == nil {
		return nil, fmt.Errorf("embedder cannot be nil")
	}
	if cfg.FetchK <= 0 || cfg.SelectK <= 0 || cfg.ContextK <= 0 {
		return nil, fmt.Errorf("retriever fetch_k, select_k and context_k must be positive")
	}
	if cfg.SelectK > cfg.FetchK {
		return nil, fmt.Errorf("retriever select_k cannot exceed fetch_k")
	}
	return &MMRRetriever{
		provider: provider,
		embedder: embedder,
		fetchK:   cfg.FetchK,
		selectK:  cfg.SelectK,
		contextK: cfg.ContextK,
		lambda:   cfg.MMRLambda,
	}, nil
}

var _ domain.ContextRetriever = (*MMRRetriever)(nil)

// Retrieve implements domain.ContextRetriever.
func (r *MMRRetriever) Retrieve(ctx context.Context, exerciseID string, query string) ([]string, error) {
	store, err := r.provider.StoreFor(ctx, exerciseID)
	if err != nil {
		return nil, domain.NewIndexingError("open vector index", err)
	}

	candidates, err := store.SimilaritySearch(ctx, query, r.fetchK)
	if err != nil {
		return nil, domain.NewIndexingError("similarity search", err)
	}
	if len(candidates) == 0 {
		logger.Get().Warn("No indexed material found for exercise",
			zap.String("exerciseID", exerciseID))
		return []string{}, nil
	}

	selected, err := r.rerank(ctx, query, candidates)
	if err != nil {
		return nil, err
	}

	if len(selected) > r.contextK {
		selected = selected[:r.contextK]
	}
	return selected, nil
}

// rerank applies greedy maximal marginal relevance over the candidate
// documents, balancing query relevance against diversity by lambda.
func (r *MMRRetriever) rerank(ctx context.Context, query string, candidates []schema.Document) ([]string, error) {
	if len(candidates) <= 1 {
		out := make([]string, 0, len(candidates))
		for _, doc := range candidates {
			out = append(out, doc.PageContent)
		}
		return out, nil
	}

	queryVec, err := r.embedder.EmbedQuery(ctx, query)
	if err != nil {
		return nil, domain.NewLLMServiceError(fmt.Errorf("failed to embed query: %w", err))
	}

	texts := make([]string, len(candidates))
	for i, doc := range candidates {
		texts[i] = doc.PageContent
	}
	docVecs, err := r.embedder.EmbedDocuments(ctx, texts)
	if err != nil {
		return nil, domain.NewLLMServiceError(fmt.Errorf("failed to embed candidate chunks: %w", err))
	}
	if len(docVecs) != len(candidates) {
		return nil, domain.NewInternalError("mmr rerank", fmt.Errorf("embedder returned %d vectors for %d chunks", len(docVecs), len(candidates)))
	}

	queryScores := make([]float64, len(candidates))
	for i, vec := range docVecs {
		score, err := util.CosineSimilarity(queryVec, vec)
		if err != nil {
			return nil, domain.NewInternalError("mmr rerank", err)
		}
		queryScores[i] = score
	}

	limit := r.selectK
	if limit > len(candidates) {
		limit = len(candidates)
	}

	selected := make([]int, 0, limit)
	remaining := make(map[int]struct{}, len(candidates))
	for i := range candidates {
		remaining[i] = struct{}{}
	}

	for len(selected) < limit {
		bestIdx := -1
		bestScore := 0.0
		for i := range remaining {
			maxRedundancy := 0.0
			for _, j := range selected {
				sim, err := util.CosineSimilarity(docVecs[i], docVecs[j])
				if err != nil {
					return nil, domain.NewInternalError("mmr rerank", err)
				}
				if sim > maxRedundancy {
					maxRedundancy = sim
				}
			}
			score := r.lambda*queryScores[i] - (1-r.lambda)*maxRedundancy
			if bestIdx == -1 || score > bestScore {
				bestIdx = i
				bestScore = score
			}
		}
		selected = append(selected, bestIdx)
		delete(remaining, bestIdx)
	}

	out := make([]string, len(selected))
	for n, i := range selected {
		out[n] = texts[i]
	}
	return out, nil
}
