package service

import (
	"context"
	"io"

	"mentorloop/internal/domain"

	"github.com/stretchr/testify/mock"
)

// MockSimilarityScorer is a mock for domain.SimilarityScorer
type MockSimilarityScorer struct {
	mock.Mock
}

func (m *MockSimilarityScorer) Score(ctx context.Context, a, b string) (float64, error) {
	args := m.Called(ctx, a, b)
	return args.Get(0).(float64), args.Error(1)
}

// MockEmbeddingService is a mock for domain.EmbeddingService
type MockEmbeddingService struct {
	mock.Mock
}

func (m *MockEmbeddingService) Generate(ctx context.Context, text string) ([]float32, error) {
	args := m.Called(ctx, text)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]float32), args.Error(1)
}

// MockContextRetriever is a mock for domain.ContextRetriever
type MockContextRetriever struct {
	mock.Mock
}

func (m *MockContextRetriever) Retrieve(ctx context.Context, exerciseID, query string) ([]string, error) {
	args := m.Called(ctx, exerciseID, query)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]string), args.Error(1)
}

// MockHintGenerator is a mock for domain.HintGenerator
type MockHintGenerator struct {
	mock.Mock
}

func (m *MockHintGenerator) GenerateHint(ctx context.Context, prompt string) (string, error) {
	args := m.Called(ctx, prompt)
	return args.String(0), args.Error(1)
}

// MockExerciseRepository is a mock for domain.ExerciseRepository
type MockExerciseRepository struct {
	mock.Mock
}

func (m *MockExerciseRepository) GetExerciseByID(ctx context.Context, id string) (*domain.Exercise, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Exercise), args.Error(1)
}

func (m *MockExerciseRepository) GetAllExercises(ctx context.Context) ([]*domain.Exercise, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.Exercise), args.Error(1)
}

func (m *MockExerciseRepository) SaveExercise(ctx context.Context, exercise *domain.Exercise) error {
	args := m.Called(ctx, exercise)
	return args.Error(0)
}

func (m *MockExerciseRepository) UpdateExercise(ctx context.Context, exercise *domain.Exercise) error {
	args := m.Called(ctx, exercise)
	return args.Error(0)
}

func (m *MockExerciseRepository) DeleteExercise(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

// MockFileStorage is a mock for domain.FileStorage
type MockFileStorage struct {
	mock.Mock
}

func (m *MockFileStorage) Upload(ctx context.Context, key string, reader io.Reader, size int64, contentType string) error {
	args := m.Called(ctx, key, reader, size, contentType)
	return args.Error(0)
}

func (m *MockFileStorage) Download(ctx context.Context, key string) (io.ReadCloser, int64, error) {
	args := m.Called(ctx, key)
	if args.Get(0) == nil {
		return nil, 0, args.Error(2)
	}
	return args.Get(0).(io.ReadCloser), args.Get(1).(int64), args.Error(2)
}

func (m *MockFileStorage) Delete(ctx context.Context, key string) error {
	args := m.Called(ctx, key)
	return args.Error(0)
}

// MockMaterialIndexer is a mock for domain.MaterialIndexer
type MockMaterialIndexer struct {
	mock.Mock
}

func (m *MockMaterialIndexer) IndexMaterial(ctx context.Context, exerciseID string, pdf io.ReaderAt, size int64) (int, error) {
	args := m.Called(ctx, exerciseID, pdf, size)
	return args.Int(0), args.Error(1)
}

func (m *MockMaterialIndexer) DropIndex(ctx context.Context, exerciseID string) error {
	args := m.Called(ctx, exerciseID)
	return args.Error(0)
}

// MockHintCacheService is a mock for HintCacheService
type MockHintCacheService struct {
	mock.Mock
}

func (m *MockHintCacheService) GetHint(ctx context.Context, exerciseID string, tier HintTier, answerEmbedding []float32) (string, bool) {
	args := m.Called(ctx, exerciseID, tier, answerEmbedding)
	return args.String(0), args.Bool(1)
}

func (m *MockHintCacheService) PutHint(ctx context.Context, exerciseID string, tier HintTier, userAnswer string, answerEmbedding []float32, hint string) error {
	args := m.Called(ctx, exerciseID, tier, userAnswer, answerEmbedding, hint)
	return args.Error(0)
}

func (m *MockHintCacheService) InvalidateExercise(ctx context.Context, exerciseID string) error {
	args := m.Called(ctx, exerciseID)
	return args.Error(0)
}
