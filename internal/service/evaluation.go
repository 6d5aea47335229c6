package service

import (
	"context"
	"fmt"
	"strings"

	"mentorloop/internal/domain"
	"mentorloop/internal/logger"

	"go.uber.org/zap"
)

// EvaluationService judges a student answer against an exercise and
// advances the session's progress accordingly.
type EvaluationService interface {
	Evaluate(ctx context.Context, exercise *domain.Exercise, userAnswer string, progress *domain.Progress) *domain.EvaluationResult
}

type evaluationServiceImpl struct {
	scorer           domain.SimilarityScorer
	embeddingService domain.EmbeddingService
	retriever        domain.ContextRetriever
	generator        domain.HintGenerator
	hintCache        HintCacheService
	threshold        float64
}

// NewEvaluationService wires the evaluation pipeline. hintCache may be
// nil; hints are then always generated fresh.
func NewEvaluationService(
	scorer domain.SimilarityScorer,
	embeddingService domain.EmbeddingService,
	retriever domain.ContextRetriever,
	generator domain.HintGenerator,
	hintCache HintCacheService,
	threshold float64,
) (EvaluationService, error) {
	if scorer == nil {
		return nil, fmt.Errorf("similarity scorer cannot be nil")
	}
	if retriever == nil {
		return nil, fmt.Errorf("context retriever cannot be nil")
	}
	if generator == nil {
		return nil, fmt.Errorf("hint generator cannot be nil")
	}
	if threshold <= 0 || threshold >= 1 {
		return nil, fmt.Errorf("similarity threshold must be in (0, 1), got %f", threshold)
	}
	return &evaluationServiceImpl{
		scorer:           scorer,
		embeddingService: embeddingService,
		retriever:        retriever,
		generator:        generator,
		hintCache:        hintCache,
		threshold:        threshold,
	}, nil
}

// Evaluate runs one evaluation turn. Progress is mutated only on the
// two success paths: the first correct answer marks completion, and a
// successfully produced hint records an attempt. Every failure leaves
// progress exactly as it was and returns a fixed user-safe message.
func (s *evaluationServiceImpl) Evaluate(ctx context.Context, exercise *domain.Exercise, userAnswer string, progress *domain.Progress) *domain.EvaluationResult {
	similarity, err := s.scorer.Score(ctx, exercise.CorrectAnswer, userAnswer)
	if err != nil {
		logger.Get().Error("Similarity scoring failed",
			zap.Error(err),
			zap.String("exerciseID", exercise.ID))
		return s.failure(MsgProcessingFailure, 0, progress)
	}

	if similarity > s.threshold {
		return s.handleCorrectAnswer(similarity, progress)
	}

	return s.handleIncorrectAnswer(ctx, exercise, userAnswer, similarity, progress)
}

func (s *evaluationServiceImpl) handleCorrectAnswer(similarity float64, progress *domain.Progress) *domain.EvaluationResult {
	if progress.Completed {
		return &domain.EvaluationResult{
			Outcome:    domain.OutcomeAlreadyCompleted,
			Message:    alreadyCompletedMessage(),
			Similarity: similarity,
			Attempts:   progress.Attempts,
			Completed:  true,
		}
	}

	message := congratulationFor(progress.Attempts)
	progress.MarkCompleted()
	return &domain.EvaluationResult{
		Outcome:    domain.OutcomeCorrect,
		Message:    message,
		Similarity: similarity,
		Attempts:   progress.Attempts,
		Completed:  true,
	}
}

func (s *evaluationServiceImpl) handleIncorrectAnswer(ctx context.Context, exercise *domain.Exercise, userAnswer string, similarity float64, progress *domain.Progress) *domain.EvaluationResult {
	tier := TierForAttempts(progress.Attempts)

	var answerEmbedding []float32
	if s.hintCache != nil && s.embeddingService != nil {
		vec, err := s.embeddingService.Generate(ctx, userAnswer)
		if err != nil {
			logger.Get().Warn("Failed to embed answer for hint cache, skipping cache",
				zap.Error(err),
				zap.String("exerciseID", exercise.ID))
		} else {
			answerEmbedding = vec
		}
	}

	hint, cached := "", false
	if s.hintCache != nil {
		hint, cached = s.hintCache.GetHint(ctx, exercise.ID, tier, answerEmbedding)
	}

	if !cached {
		passages, err := s.retriever.Retrieve(ctx, exercise.ID, exercise.Question)
		if err != nil {
			logger.Get().Error("Context retrieval failed",
				zap.Error(err),
				zap.String("exerciseID", exercise.ID))
			return s.failure(MsgProcessingFailure, similarity, progress)
		}
		contextBlock := strings.Join(passages, "\n")

		prompt, err := renderHintPrompt(tier, contextBlock, exercise.Question, userAnswer, progress.Attempts, progress.HintsGiven)
		if err != nil {
			logger.Get().Error("Failed to render hint prompt",
				zap.Error(err),
				zap.String("exerciseID", exercise.ID))
			return s.failure(MsgProcessingFailure, similarity, progress)
		}

		generated, err := s.generator.GenerateHint(ctx, prompt)
		if err != nil {
			logger.Get().Error("Hint generation failed",
				zap.Error(err),
				zap.String("exerciseID", exercise.ID),
				zap.Int("attempts", progress.Attempts))
			return s.failure(MsgFeedbackFailure, similarity, progress)
		}
		hint = strings.TrimSpace(generated)

		if s.hintCache != nil {
			if err := s.hintCache.PutHint(ctx, exercise.ID, tier, userAnswer, answerEmbedding, hint); err != nil {
				logger.Get().Warn("Failed to cache hint",
					zap.Error(err),
					zap.String("exerciseID", exercise.ID))
			}
		}
	}

	encouragement := encouragementFor(progress.Attempts)
	progress.RecordAttempt(hint)

	return &domain.EvaluationResult{
		Outcome:    domain.OutcomeHint,
		Message:    encouragement + "\n\n" + hint,
		Similarity: similarity,
		Attempts:   progress.Attempts,
		Completed:  false,
	}
}

func (s *evaluationServiceImpl) failure(message string, similarity float64, progress *domain.Progress) *domain.EvaluationResult {
	return &domain.EvaluationResult{
		Outcome:    domain.OutcomeFailure,
		Message:    message,
		Similarity: similarity,
		Attempts:   progress.Attempts,
		Completed:  progress.Completed,
	}
}
