package handler_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http/httptest"
	"testing"

	"mentorloop/internal/domain"
	"mentorloop/internal/dto"
	"mentorloop/internal/handler"
	"mentorloop/internal/middleware"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
)

const validSessionID = "01HGW2N8M5NVKWJRZPXEBDEC5V"
const validExerciseID = "01HGW2N8M5NVKWJRZPXEBDEC5W"

// --- Manual Mocks ---

// MockSessionService
type MockSessionService struct {
	StartSessionFunc func(ctx context.Context, exerciseID string) (*dto.SessionResponse, error)
	GetSessionFunc   func(sessionID string) (*dto.SessionResponse, error)
	SubmitAnswerFunc func(ctx context.Context, sessionID, answer string) (*dto.SubmitAnswerResponse, error)
	ResetSessionFunc func(sessionID string) (*dto.SessionResponse, error)
	EndSessionFunc   func(sessionID string) error
}

func (m *MockSessionService) StartSession(ctx context.Context, exerciseID string) (*dto.SessionResponse, error) {
	if m.StartSessionFunc != nil {
		return m.StartSessionFunc(ctx, exerciseID)
	}
	panic("MockSessionService.StartSessionFunc not implemented")
}
func (m *MockSessionService) GetSession(sessionID string) (*dto.SessionResponse, error) {
	if m.GetSessionFunc != nil {
		return m.GetSessionFunc(sessionID)
	}
	panic("MockSessionService.GetSessionFunc not implemented")
}
func (m *MockSessionService) SubmitAnswer(ctx context.Context, sessionID, answer string) (*dto.SubmitAnswerResponse, error) {
	if m.SubmitAnswerFunc != nil {
		return m.SubmitAnswerFunc(ctx, sessionID, answer)
	}
	panic("MockSessionService.SubmitAnswerFunc not implemented")
}
func (m *MockSessionService) ResetSession(sessionID string) (*dto.SessionResponse, error) {
	if m.ResetSessionFunc != nil {
		return m.ResetSessionFunc(sessionID)
	}
	panic("MockSessionService.ResetSessionFunc not implemented")
}
func (m *MockSessionService) EndSession(sessionID string) error {
	if m.EndSessionFunc != nil {
		return m.EndSessionFunc(sessionID)
	}
	panic("MockSessionService.EndSessionFunc not implemented")
}

func setupSessionApp(svc *MockSessionService) *fiber.App {
	app := fiber.New(fiber.Config{ErrorHandler: middleware.ErrorHandler()})
	h := handler.NewSessionHandler(svc)
	app.Post("/sessions", h.StartSession)
	app.Get("/sessions/:id", h.GetSession)
	app.Post("/sessions/:id/answers", h.SubmitAnswer)
	app.Post("/sessions/:id/reset", h.ResetSession)
	app.Delete("/sessions/:id", h.EndSession)
	return app
}

func TestStartSession_Created(t *testing.T) {
	svc := &MockSessionService{
		StartSessionFunc: func(_ context.Context, exerciseID string) (*dto.SessionResponse, error) {
			return &dto.SessionResponse{SessionID: validSessionID, ExerciseID: exerciseID, HintsGiven: []string{}}, nil
		},
	}
	app := setupSessionApp(svc)

	body, _ := json.Marshal(dto.StartSessionRequest{ExerciseID: validExerciseID})
	req := httptest.NewRequest("POST", "/sessions", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req)
	assert.NoError(t, err)
	assert.Equal(t, fiber.StatusCreated, resp.StatusCode)

	var got dto.SessionResponse
	assert.NoError(t, json.NewDecoder(resp.Body).Decode(&got))
	assert.Equal(t, validSessionID, got.SessionID)
	assert.Equal(t, validExerciseID, got.ExerciseID)
}

func TestStartSession_InvalidExerciseID(t *testing.T) {
	app := setupSessionApp(&MockSessionService{})

	body, _ := json.Marshal(dto.StartSessionRequest{ExerciseID: "nope"})
	req := httptest.NewRequest("POST", "/sessions", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req)
	assert.NoError(t, err)
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
}

func TestSubmitAnswer_ReturnsOutcome(t *testing.T) {
	svc := &MockSessionService{
		SubmitAnswerFunc: func(_ context.Context, sessionID, answer string) (*dto.SubmitAnswerResponse, error) {
			assert.Equal(t, validSessionID, sessionID)
			assert.Equal(t, "a goroutine is a lightweight thread", answer)
			return &dto.SubmitAnswerResponse{
				Outcome:   string(domain.OutcomeCorrect),
				Message:   "congratulations",
				Completed: true,
			}, nil
		},
	}
	app := setupSessionApp(svc)

	body, _ := json.Marshal(dto.SubmitAnswerRequest{Answer: "a goroutine is a lightweight thread"})
	req := httptest.NewRequest("POST", "/sessions/"+validSessionID+"/answers", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req)
	assert.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	var got dto.SubmitAnswerResponse
	assert.NoError(t, json.NewDecoder(resp.Body).Decode(&got))
	assert.Equal(t, string(domain.OutcomeCorrect), got.Outcome)
	assert.True(t, got.Completed)
}

func TestSubmitAnswer_EmptyAnswerRejected(t *testing.T) {
	app := setupSessionApp(&MockSessionService{})

	body, _ := json.Marshal(dto.SubmitAnswerRequest{Answer: "  "})
	req := httptest.NewRequest("POST", "/sessions/"+validSessionID+"/answers", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req)
	assert.NoError(t, err)
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
}

func TestGetSession_NotFound(t *testing.T) {
	svc := &MockSessionService{
		GetSessionFunc: func(sessionID string) (*dto.SessionResponse, error) {
			return nil, domain.NewSessionNotFoundError(sessionID)
		},
	}
	app := setupSessionApp(svc)

	req := httptest.NewRequest("GET", "/sessions/"+validSessionID, nil)
	resp, err := app.Test(req)
	assert.NoError(t, err)
	assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)
}

func TestEndSession_NoContent(t *testing.T) {
	svc := &MockSessionService{
		EndSessionFunc: func(sessionID string) error { return nil },
	}
	app := setupSessionApp(svc)

	req := httptest.NewRequest("DELETE", "/sessions/"+validSessionID, nil)
	resp, err := app.Test(req)
	assert.NoError(t, err)
	assert.Equal(t, fiber.StatusNoContent, resp.StatusCode)
}
