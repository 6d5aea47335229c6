package handler_test

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"mime/multipart"
	"net/http/httptest"
	"strings"
	"testing"

	"mentorloop/internal/domain"
	"mentorloop/internal/dto"
	"mentorloop/internal/handler"
	"mentorloop/internal/middleware"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
)

// MockExerciseService
type MockExerciseService struct {
	CreateExerciseFunc  func(ctx context.Context, req *dto.CreateExerciseRequest) (*dto.ExerciseResponse, error)
	GetExerciseFunc     func(ctx context.Context, id string) (*dto.ExerciseResponse, error)
	ListExercisesFunc   func(ctx context.Context) ([]*dto.ExerciseSummary, error)
	UpdateExerciseFunc  func(ctx context.Context, id string, req *dto.UpdateExerciseRequest) (*dto.ExerciseResponse, error)
	DeleteExerciseFunc  func(ctx context.Context, id string) error
	AttachMaterialFunc  func(ctx context.Context, exerciseID, filename string, material io.Reader, size int64) (*dto.MaterialUploadResponse, error)
	ReindexMaterialFunc func(ctx context.Context, exerciseID string) (*dto.MaterialUploadResponse, error)
}

func (m *MockExerciseService) CreateExercise(ctx context.Context, req *dto.CreateExerciseRequest) (*dto.ExerciseResponse, error) {
	if m.CreateExerciseFunc != nil {
		return m.CreateExerciseFunc(ctx, req)
	}
	panic("MockExerciseService.CreateExerciseFunc not implemented")
}
func (m *MockExerciseService) GetExercise(ctx context.Context, id string) (*dto.ExerciseResponse, error) {
	if m.GetExerciseFunc != nil {
		return m.GetExerciseFunc(ctx, id)
	}
	panic("MockExerciseService.GetExerciseFunc not implemented")
}
func (m *MockExerciseService) ListExercises(ctx context.Context) ([]*dto.ExerciseSummary, error) {
	if m.ListExercisesFunc != nil {
		return m.ListExercisesFunc(ctx)
	}
	panic("MockExerciseService.ListExercisesFunc not implemented")
}
func (m *MockExerciseService) UpdateExercise(ctx context.Context, id string, req *dto.UpdateExerciseRequest) (*dto.ExerciseResponse, error) {
	if m.UpdateExerciseFunc != nil {
		return m.UpdateExerciseFunc(ctx, id, req)
	}
	panic("MockExerciseService.UpdateExerciseFunc not implemented")
}
func (m *MockExerciseService) DeleteExercise(ctx context.Context, id string) error {
	if m.DeleteExerciseFunc != nil {
		return m.DeleteExerciseFunc(ctx, id)
	}
	panic("MockExerciseService.DeleteExerciseFunc not implemented")
}
func (m *MockExerciseService) AttachMaterial(ctx context.Context, exerciseID, filename string, material io.Reader, size int64) (*dto.MaterialUploadResponse, error) {
	if m.AttachMaterialFunc != nil {
		return m.AttachMaterialFunc(ctx, exerciseID, filename, material, size)
	}
	panic("MockExerciseService.AttachMaterialFunc not implemented")
}
func (m *MockExerciseService) ReindexMaterial(ctx context.Context, exerciseID string) (*dto.MaterialUploadResponse, error) {
	if m.ReindexMaterialFunc != nil {
		return m.ReindexMaterialFunc(ctx, exerciseID)
	}
	panic("MockExerciseService.ReindexMaterialFunc not implemented")
}

func setupExerciseApp(svc *MockExerciseService) *fiber.App {
	app := fiber.New(fiber.Config{ErrorHandler: middleware.ErrorHandler()})
	h := handler.NewExerciseHandler(svc)
	app.Post("/exercises", h.CreateExercise)
	app.Get("/exercises", h.ListExercises)
	app.Get("/exercises/:id", h.GetExercise)
	app.Put("/exercises/:id", h.UpdateExercise)
	app.Delete("/exercises/:id", h.DeleteExercise)
	app.Post("/exercises/:id/material", h.UploadMaterial)
	app.Post("/exercises/:id/reindex", h.ReindexMaterial)
	return app
}

func TestCreateExercise_Created(t *testing.T) {
	svc := &MockExerciseService{
		CreateExerciseFunc: func(_ context.Context, req *dto.CreateExerciseRequest) (*dto.ExerciseResponse, error) {
			return &dto.ExerciseResponse{ID: validExerciseID, Title: req.Title}, nil
		},
	}
	app := setupExerciseApp(svc)

	body, _ := json.Marshal(dto.CreateExerciseRequest{
		Title:         "Goroutines",
		Question:      "What is a goroutine?",
		CorrectAnswer: "A lightweight thread managed by the Go runtime",
	})
	req := httptest.NewRequest("POST", "/exercises", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req)
	assert.NoError(t, err)
	assert.Equal(t, fiber.StatusCreated, resp.StatusCode)
}

func TestCreateExercise_MissingFields(t *testing.T) {
	app := setupExerciseApp(&MockExerciseService{})

	body, _ := json.Marshal(dto.CreateExerciseRequest{Title: "only a title"})
	req := httptest.NewRequest("POST", "/exercises", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req)
	assert.NoError(t, err)
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)

	var got middleware.ValidationErrorResponse
	assert.NoError(t, json.NewDecoder(resp.Body).Decode(&got))
	assert.Equal(t, string(domain.CodeValidation), got.Code)
	assert.Len(t, got.Errors, 2)
}

func TestGetExercise_NotFound(t *testing.T) {
	svc := &MockExerciseService{
		GetExerciseFunc: func(_ context.Context, id string) (*dto.ExerciseResponse, error) {
			return nil, domain.NewExerciseNotFoundError(id)
		},
	}
	app := setupExerciseApp(svc)

	req := httptest.NewRequest("GET", "/exercises/"+validExerciseID, nil)
	resp, err := app.Test(req)
	assert.NoError(t, err)
	assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)
}

func TestListExercises(t *testing.T) {
	svc := &MockExerciseService{
		ListExercisesFunc: func(_ context.Context) ([]*dto.ExerciseSummary, error) {
			return []*dto.ExerciseSummary{{ID: validExerciseID, Title: "Goroutines"}}, nil
		},
	}
	app := setupExerciseApp(svc)

	req := httptest.NewRequest("GET", "/exercises", nil)
	resp, err := app.Test(req)
	assert.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	var got []dto.ExerciseSummary
	assert.NoError(t, json.NewDecoder(resp.Body).Decode(&got))
	assert.Len(t, got, 1)
}

func TestUploadMaterial(t *testing.T) {
	svc := &MockExerciseService{
		AttachMaterialFunc: func(_ context.Context, exerciseID, filename string, material io.Reader, size int64) (*dto.MaterialUploadResponse, error) {
			assert.Equal(t, validExerciseID, exerciseID)
			assert.Equal(t, "notes.pdf", filename)
			return &dto.MaterialUploadResponse{ExerciseID: exerciseID, Chunks: 4}, nil
		},
	}
	app := setupExerciseApp(svc)

	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)
	part, err := writer.CreateFormFile("material", "notes.pdf")
	assert.NoError(t, err)
	_, err = io.Copy(part, strings.NewReader("%PDF-1.4 fake"))
	assert.NoError(t, err)
	assert.NoError(t, writer.Close())

	req := httptest.NewRequest("POST", "/exercises/"+validExerciseID+"/material", &buf)
	req.Header.Set("Content-Type", writer.FormDataContentType())

	resp, err := app.Test(req)
	assert.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	var got dto.MaterialUploadResponse
	assert.NoError(t, json.NewDecoder(resp.Body).Decode(&got))
	assert.Equal(t, 4, got.Chunks)
}

func TestUploadMaterial_MissingFile(t *testing.T) {
	app := setupExerciseApp(&MockExerciseService{})

	req := httptest.NewRequest("POST", "/exercises/"+validExerciseID+"/material", nil)
	resp, err := app.Test(req)
	assert.NoError(t, err)
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
}

func TestDeleteExercise(t *testing.T) {
	svc := &MockExerciseService{
		DeleteExerciseFunc: func(_ context.Context, id string) error { return nil },
	}
	app := setupExerciseApp(svc)

	req := httptest.NewRequest("DELETE", "/exercises/"+validExerciseID, nil)
	resp, err := app.Test(req)
	assert.NoError(t, err)
	assert.Equal(t, fiber.StatusNoContent, resp.StatusCode)
}
