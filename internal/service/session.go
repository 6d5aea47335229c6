package service

import (
	"context"
	"fmt"
	"sync"
	"time"

	"mentorloop/internal/domain"
	"mentorloop/internal/dto"
	"mentorloop/internal/logger"
	"mentorloop/internal/util"

	"go.uber.org/zap"
)

// learningSession couples one student's progress to one exercise.
// Progress has a single writer: the per-session mutex serializes
// evaluation turns that arrive concurrently for the same session.
type learningSession struct {
	mu         sync.Mutex
	id         string
	exerciseID string
	progress   *domain.Progress
	createdAt  time.Time
}

// SessionService manages learning sessions and routes answer
// submissions through the evaluator. Sessions are process-held; they
// vanish on restart, which matches their lifetime (one sitting).
type SessionService interface {
	StartSession(ctx context.Context, exerciseID string) (*dto.SessionResponse, error)
	GetSession(sessionID string) (*dto.SessionResponse, error)
	SubmitAnswer(ctx context.Context, sessionID, answer string) (*dto.SubmitAnswerResponse, error)
	ResetSession(sessionID string) (*dto.SessionResponse, error)
	EndSession(sessionID string) error
}

type sessionServiceImpl struct {
	mu        sync.RWMutex
	sessions  map[string]*learningSession
	repo      domain.ExerciseRepository
	evaluator EvaluationService
}

// NewSessionService creates a new in-memory session registry.
func NewSessionService(repo domain.ExerciseRepository, evaluator EvaluationService) (SessionService, error) {
	if repo == nil {
		return nil, fmt.Errorf("exercise repository cannot be nil")
	}
	if evaluator == nil {
		return nil, fmt.Errorf("evaluation service cannot be nil")
	}
	return &sessionServiceImpl{
		sessions:  make(map[string]*learningSession),
		repo:      repo,
		evaluator: evaluator,
	}, nil
}

func toSessionResponse(s *learningSession) *dto.SessionResponse {
	hints := make([]string, len(s.progress.HintsGiven))
	copy(hints, s.progress.HintsGiven)
	return &dto.SessionResponse{
		SessionID:  s.id,
		ExerciseID: s.exerciseID,
		Completed:  s.progress.Completed,
		Attempts:   s.progress.Attempts,
		HintsGiven: hints,
		CreatedAt:  s.createdAt,
	}
}

func (s *sessionServiceImpl) StartSession(ctx context.Context, exerciseID string) (*dto.SessionResponse, error) {
	exercise, err := s.repo.GetExerciseByID(ctx, exerciseID)
	if err != nil {
		return nil, domain.NewInternalError("start session", err)
	}
	if exercise == nil {
		return nil, domain.NewExerciseNotFoundError(exerciseID)
	}

	session := &learningSession{
		id:         util.NewULID(),
		exerciseID: exerciseID,
		progress:   domain.NewProgress(),
		createdAt:  time.Now(),
	}

	s.mu.Lock()
	s.sessions[session.id] = session
	s.mu.Unlock()

	logger.Get().Info("Started learning session",
		zap.String("sessionID", session.id),
		zap.String("exerciseID", exerciseID))

	session.mu.Lock()
	defer session.mu.Unlock()
	return toSessionResponse(session), nil
}

func (s *sessionServiceImpl) lookup(sessionID string) (*learningSession, error) {
	s.mu.RLock()
	session, ok := s.sessions[sessionID]
	s.mu.RUnlock()
	if !ok {
		return nil, domain.NewSessionNotFoundError(sessionID)
	}
	return session, nil
}

func (s *sessionServiceImpl) GetSession(sessionID string) (*dto.SessionResponse, error) {
	session, err := s.lookup(sessionID)
	if err != nil {
		return nil, err
	}
	session.mu.Lock()
	defer session.mu.Unlock()
	return toSessionResponse(session), nil
}

func (s *sessionServiceImpl) SubmitAnswer(ctx context.Context, sessionID, answer string) (*dto.SubmitAnswerResponse, error) {
	session, err := s.lookup(sessionID)
	if err != nil {
		return nil, err
	}

	exercise, err := s.repo.GetExerciseByID(ctx, session.exerciseID)
	if err != nil {
		return nil, domain.NewInternalError("submit answer", err)
	}
	if exercise == nil {
		return nil, domain.NewExerciseNotFoundError(session.exerciseID)
	}

	session.mu.Lock()
	defer session.mu.Unlock()

	result := s.evaluator.Evaluate(ctx, exercise, answer, session.progress)
	return &dto.SubmitAnswerResponse{
		Outcome:    string(result.Outcome),
		Message:    result.Message,
		Similarity: result.Similarity,
		Attempts:   result.Attempts,
		Completed:  result.Completed,
	}, nil
}

// ResetSession discards accumulated progress but keeps the session ID,
// so a student can start the same exercise over.
func (s *sessionServiceImpl) ResetSession(sessionID string) (*dto.SessionResponse, error) {
	session, err := s.lookup(sessionID)
	if err != nil {
		return nil, err
	}

	session.mu.Lock()
	defer session.mu.Unlock()
	session.progress = domain.NewProgress()
	return toSessionResponse(session), nil
}

func (s *sessionServiceImpl) EndSession(sessionID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.sessions[sessionID]; !ok {
		return domain.NewSessionNotFoundError(sessionID)
	}
	delete(s.sessions, sessionID)
	return nil
}
