package service

import (
	"context"
	"encoding/json"
	"fmt"

	"mentorloop/internal/cache"
	"mentorloop/internal/config"
	"mentorloop/internal/domain"
	"mentorloop/internal/logger"
	"mentorloop/internal/util"

	"go.uber.org/zap"
)

// CachedHint is one stored hint together with the embedding of the
// student answer that produced it.
type CachedHint struct {
	Hint       string    `json:"hint"`
	Embedding  []float32 `json:"embedding"`
	UserAnswer string    `json:"user_answer,omitempty"`
}

// HintCacheService reuses generated hints across students. Hints are
// keyed per exercise and guidance tier; a cached hint is served when a
// new answer's embedding is close enough to the answer that produced it.
type HintCacheService interface {
	GetHint(ctx context.Context, exerciseID string, tier HintTier, answerEmbedding []float32) (string, bool)
	PutHint(ctx context.Context, exerciseID string, tier HintTier, userAnswer string, answerEmbedding []float32, hint string) error
	// InvalidateExercise drops every cached hint for the exercise, for
	// all tiers. Called when the exercise or its material changes.
	InvalidateExercise(ctx context.Context, exerciseID string) error
}

type hintCacheServiceImpl struct {
	cache domain.Cache
	cfg   config.HintCacheConfig
}

// NewHintCacheService creates a new hint cache over the given cache.
func NewHintCacheService(c domain.Cache, cfg config.HintCacheConfig) HintCacheService {
	return &hintCacheServiceImpl{cache: c, cfg: cfg}
}

func hintCacheKey(exerciseID string, tier HintTier) string {
	return cache.GenerateCacheKey("hint", "exercise", exerciseID, fmt.Sprintf("tier%d", tier))
}

// GetHint returns a previously generated hint for a semantically
// similar answer, if one exists. Cache failures are logged and treated
// as misses; they never fail the evaluation.
func (s *hintCacheServiceImpl) GetHint(ctx context.Context, exerciseID string, tier HintTier, answerEmbedding []float32) (string, bool) {
	if !s.cfg.Enabled || s.cache == nil || len(answerEmbedding) == 0 {
		return "", false
	}

	key := hintCacheKey(exerciseID, tier)
	entries, err := s.cache.HGetAll(ctx, key)
	if err != nil {
		if err != domain.ErrCacheMiss {
			logger.Get().Warn("Hint cache lookup failed",
				zap.Error(err),
				zap.String("key", key))
		}
		return "", false
	}

	for _, raw := range entries {
		var entry CachedHint
		if err := json.Unmarshal([]byte(raw), &entry); err != nil {
			logger.Get().Warn("Failed to unmarshal cached hint",
				zap.Error(err),
				zap.String("key", key))
			continue
		}
		if len(entry.Embedding) == 0 || entry.Hint == "" {
			continue
		}

		similarity, err := util.CosineSimilarity(answerEmbedding, entry.Embedding)
		if err != nil {
			continue
		}
		if similarity >= s.cfg.SimilarityThreshold {
			logger.Get().Debug("Hint cache hit",
				zap.String("exerciseID", exerciseID),
				zap.Int("tier", int(tier)),
				zap.Float64("similarity", similarity))
			return entry.Hint, true
		}
	}
	return "", false
}

// PutHint stores a freshly generated hint for later reuse.
func (s *hintCacheServiceImpl) PutHint(ctx context.Context, exerciseID string, tier HintTier, userAnswer string, answerEmbedding []float32, hint string) error {
	if !s.cfg.Enabled || s.cache == nil || hint == "" || len(answerEmbedding) == 0 {
		return nil
	}

	entry := CachedHint{
		Hint:       hint,
		Embedding:  answerEmbedding,
		UserAnswer: userAnswer,
	}
	data, err := json.Marshal(entry)
	if err != nil {
		return fmt.Errorf("failed to marshal hint cache entry: %w", err)
	}

	key := hintCacheKey(exerciseID, tier)
	if err := s.cache.HSet(ctx, key, util.NewULID(), string(data)); err != nil {
		return fmt.Errorf("failed to store hint cache entry: %w", err)
	}
	if s.cfg.Expiration > 0 {
		if err := s.cache.Expire(ctx, key, s.cfg.Expiration); err != nil {
			logger.Get().Warn("Failed to set hint cache expiration",
				zap.Error(err),
				zap.String("key", key))
		}
	}
	return nil
}

// InvalidateExercise removes cached hints for every tier of the
// exercise. Hints reference the indexed material, so they must not
// outlive it.
func (s *hintCacheServiceImpl) InvalidateExercise(ctx context.Context, exerciseID string) error {
	if s.cache == nil {
		return nil
	}

	for _, tier := range []HintTier{TierFirstAttempt, TierMakingProgress, TierStructuredBreakdown} {
		key := hintCacheKey(exerciseID, tier)
		if err := s.cache.Delete(ctx, key); err != nil {
			return fmt.Errorf("failed to invalidate hint cache for %s: %w", key, err)
		}
	}
	return nil
}
