package dto

import "time"

// StartSessionRequest begins a learning session for one exercise.
type StartSessionRequest struct {
	ExerciseID string `json:"exercise_id" example:"01HGW2N8M5NVKWJRZPXEBDEC5V"`
}

// SessionResponse is the current state of a learning session.
type SessionResponse struct {
	SessionID  string    `json:"session_id"`
	ExerciseID string    `json:"exercise_id"`
	Completed  bool      `json:"completed"`
	Attempts   int       `json:"attempts"`
	HintsGiven []string  `json:"hints_given"`
	CreatedAt  time.Time `json:"created_at"`
}

// SubmitAnswerRequest carries one answer attempt.
type SubmitAnswerRequest struct {
	Answer string `json:"answer" example:"A goroutine is a lightweight thread"`
}

// SubmitAnswerResponse is the structured result of one evaluation turn.
// Outcome is one of "correct", "already_completed", "hint", "failure".
type SubmitAnswerResponse struct {
	Outcome    string  `json:"outcome"`
	Message    string  `json:"message"`
	Similarity float64 `json:"similarity"`
	Attempts   int     `json:"attempts"`
	Completed  bool    `json:"completed"`
}
