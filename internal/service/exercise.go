package service

import (
	"bytes"
	"context"
	"fmt"
	"io"

	"mentorloop/internal/domain"
	"mentorloop/internal/dto"
	"mentorloop/internal/logger"

	"go.uber.org/zap"
)

// ExerciseService covers the authoring side: exercise CRUD plus
// attaching and indexing reference material.
type ExerciseService interface {
	CreateExercise(ctx context.Context, req *dto.CreateExerciseRequest) (*dto.ExerciseResponse, error)
	GetExercise(ctx context.Context, id string) (*dto.ExerciseResponse, error)
	ListExercises(ctx context.Context) ([]*dto.ExerciseSummary, error)
	UpdateExercise(ctx context.Context, id string, req *dto.UpdateExerciseRequest) (*dto.ExerciseResponse, error)
	DeleteExercise(ctx context.Context, id string) error
	AttachMaterial(ctx context.Context, exerciseID, filename string, material io.Reader, size int64) (*dto.MaterialUploadResponse, error)
	ReindexMaterial(ctx context.Context, exerciseID string) (*dto.MaterialUploadResponse, error)
}

type exerciseServiceImpl struct {
	repo      domain.ExerciseRepository
	storage   domain.FileStorage
	indexer   domain.MaterialIndexer
	hintCache HintCacheService
}

// NewExerciseService creates a new exercise authoring service. The hint
// cache may be nil; it is only used to invalidate stale hints when an
// exercise changes.
func NewExerciseService(repo domain.ExerciseRepository, storage domain.FileStorage, indexer domain.MaterialIndexer, hintCache HintCacheService) (ExerciseService, error) {
	if repo == nil {
		return nil, fmt.Errorf("exercise repository cannot be nil")
	}
	if storage == nil {
		return nil, fmt.Errorf("file storage cannot be nil")
	}
	if indexer == nil {
		return nil, fmt.Errorf("material indexer cannot be nil")
	}
	return &exerciseServiceImpl{repo: repo, storage: storage, indexer: indexer, hintCache: hintCache}, nil
}

// dropCachedHints is best effort; stale hints expire on their own.
func (s *exerciseServiceImpl) dropCachedHints(ctx context.Context, exerciseID string) {
	if s.hintCache == nil {
		return
	}
	if err := s.hintCache.InvalidateExercise(ctx, exerciseID); err != nil {
		logger.Get().Warn("Failed to invalidate cached hints",
			zap.Error(err),
			zap.String("exerciseID", exerciseID))
	}
}

func toExerciseResponse(e *domain.Exercise) *dto.ExerciseResponse {
	return &dto.ExerciseResponse{
		ID:            e.ID,
		Title:         e.Title,
		Question:      e.Question,
		CorrectAnswer: e.CorrectAnswer,
		HasMaterial:   e.MaterialKey != "",
		CreatedAt:     e.CreatedAt,
		UpdatedAt:     e.UpdatedAt,
	}
}

func (s *exerciseServiceImpl) CreateExercise(ctx context.Context, req *dto.CreateExerciseRequest) (*dto.ExerciseResponse, error) {
	exercise := domain.NewExercise(req.Title, req.Question, req.CorrectAnswer)
	if err := exercise.Validate(); err != nil {
		return nil, err
	}

	if err := s.repo.SaveExercise(ctx, exercise); err != nil {
		return nil, domain.NewInternalError("create exercise", err)
	}

	logger.Get().Info("Created exercise",
		zap.String("exerciseID", exercise.ID),
		zap.String("title", exercise.Title))
	return toExerciseResponse(exercise), nil
}

func (s *exerciseServiceImpl) GetExercise(ctx context.Context, id string) (*dto.ExerciseResponse, error) {
	exercise, err := s.repo.GetExerciseByID(ctx, id)
	if err != nil {
		return nil, domain.NewInternalError("get exercise", err)
	}
	if exercise == nil {
		return nil, domain.NewExerciseNotFoundError(id)
	}
	return toExerciseResponse(exercise), nil
}

func (s *exerciseServiceImpl) ListExercises(ctx context.Context) ([]*dto.ExerciseSummary, error) {
	exercises, err := s.repo.GetAllExercises(ctx)
	if err != nil {
		return nil, domain.NewInternalError("list exercises", err)
	}

	summaries := make([]*dto.ExerciseSummary, len(exercises))
	for i, e := range exercises {
		summaries[i] = &dto.ExerciseSummary{
			ID:       e.ID,
			Title:    e.Title,
			Question: e.Question,
		}
	}
	return summaries, nil
}

func (s *exerciseServiceImpl) UpdateExercise(ctx context.Context, id string, req *dto.UpdateExerciseRequest) (*dto.ExerciseResponse, error) {
	exercise, err := s.repo.GetExerciseByID(ctx, id)
	if err != nil {
		return nil, domain.NewInternalError("update exercise", err)
	}
	if exercise == nil {
		return nil, domain.NewExerciseNotFoundError(id)
	}

	exercise.Title = req.Title
	exercise.Question = req.Question
	exercise.CorrectAnswer = req.CorrectAnswer
	if err := exercise.Validate(); err != nil {
		return nil, err
	}

	if err := s.repo.UpdateExercise(ctx, exercise); err != nil {
		return nil, domain.NewInternalError("update exercise", err)
	}

	// Hints were generated against the previous question/answer.
	s.dropCachedHints(ctx, id)
	return toExerciseResponse(exercise), nil
}

func (s *exerciseServiceImpl) DeleteExercise(ctx context.Context, id string) error {
	exercise, err := s.repo.GetExerciseByID(ctx, id)
	if err != nil {
		return domain.NewInternalError("delete exercise", err)
	}
	if exercise == nil {
		return domain.NewExerciseNotFoundError(id)
	}

	if err := s.repo.DeleteExercise(ctx, id); err != nil {
		return domain.NewInternalError("delete exercise", err)
	}

	// Index and material cleanup is best effort; the exercise row is
	// already soft-deleted.
	if err := s.indexer.DropIndex(ctx, id); err != nil {
		logger.Get().Warn("Failed to drop index for deleted exercise",
			zap.Error(err),
			zap.String("exerciseID", id))
	}
	if exercise.MaterialKey != "" {
		if err := s.storage.Delete(ctx, exercise.MaterialKey); err != nil {
			logger.Get().Warn("Failed to delete material for deleted exercise",
				zap.Error(err),
				zap.String("exerciseID", id),
				zap.String("materialKey", exercise.MaterialKey))
		}
	}
	s.dropCachedHints(ctx, id)
	return nil
}

func (s *exerciseServiceImpl) AttachMaterial(ctx context.Context, exerciseID, filename string, material io.Reader, size int64) (*dto.MaterialUploadResponse, error) {
	exercise, err := s.repo.GetExerciseByID(ctx, exerciseID)
	if err != nil {
		return nil, domain.NewInternalError("attach material", err)
	}
	if exercise == nil {
		return nil, domain.NewExerciseNotFoundError(exerciseID)
	}

	// The PDF loader needs random access, so the upload is buffered
	// once and shared between storage and indexing.
	data, err := io.ReadAll(io.LimitReader(material, size))
	if err != nil {
		return nil, domain.NewStorageError("read material", err)
	}
	if int64(len(data)) != size {
		return nil, domain.NewInvalidInputError(fmt.Sprintf("material truncated: expected %d bytes, read %d", size, len(data)))
	}

	key := exerciseID + "/" + filename
	if err := s.storage.Upload(ctx, key, bytes.NewReader(data), size, "application/pdf"); err != nil {
		return nil, err
	}

	// Replacing material drops the previous index first so stale
	// chunks cannot leak into retrieval.
	if exercise.MaterialKey != "" {
		if err := s.indexer.DropIndex(ctx, exerciseID); err != nil {
			logger.Get().Warn("Failed to drop previous index before re-indexing",
				zap.Error(err),
				zap.String("exerciseID", exerciseID))
		}
	}

	chunks, err := s.indexer.IndexMaterial(ctx, exerciseID, bytes.NewReader(data), size)
	if err != nil {
		return nil, err
	}

	if exercise.MaterialKey != "" && exercise.MaterialKey != key {
		if err := s.storage.Delete(ctx, exercise.MaterialKey); err != nil {
			logger.Get().Warn("Failed to delete replaced material",
				zap.Error(err),
				zap.String("materialKey", exercise.MaterialKey))
		}
	}

	exercise.MaterialKey = key
	if err := s.repo.UpdateExercise(ctx, exercise); err != nil {
		return nil, domain.NewInternalError("attach material", err)
	}

	// Hints quote the indexed material, which just changed.
	s.dropCachedHints(ctx, exerciseID)

	return &dto.MaterialUploadResponse{ExerciseID: exerciseID, Chunks: chunks}, nil
}

func (s *exerciseServiceImpl) ReindexMaterial(ctx context.Context, exerciseID string) (*dto.MaterialUploadResponse, error) {
	exercise, err := s.repo.GetExerciseByID(ctx, exerciseID)
	if err != nil {
		return nil, domain.NewInternalError("reindex material", err)
	}
	if exercise == nil {
		return nil, domain.NewExerciseNotFoundError(exerciseID)
	}
	if exercise.MaterialKey == "" {
		return nil, domain.NewInvalidInputError(fmt.Sprintf("exercise %s has no material attached", exerciseID))
	}

	reader, size, err := s.storage.Download(ctx, exercise.MaterialKey)
	if err != nil {
		return nil, err
	}
	defer reader.Close()

	data, err := io.ReadAll(reader)
	if err != nil {
		return nil, domain.NewStorageError("read material", err)
	}
	if size == 0 {
		size = int64(len(data))
	}

	if err := s.indexer.DropIndex(ctx, exerciseID); err != nil {
		logger.Get().Warn("Failed to drop index before re-indexing",
			zap.Error(err),
			zap.String("exerciseID", exerciseID))
	}

	chunks, err := s.indexer.IndexMaterial(ctx, exerciseID, bytes.NewReader(data), size)
	if err != nil {
		return nil, err
	}
	return &dto.MaterialUploadResponse{ExerciseID: exerciseID, Chunks: chunks}, nil
}
