package dto

import "time"

// CreateExerciseRequest is the payload for authoring a new exercise.
type CreateExerciseRequest struct {
	Title         string `json:"title" example:"Goroutines"`
	Question      string `json:"question" example:"What is a goroutine?"`
	CorrectAnswer string `json:"correct_answer" example:"A lightweight thread managed by the Go runtime"`
}

// UpdateExerciseRequest is the payload for editing an exercise.
type UpdateExerciseRequest struct {
	Title         string `json:"title"`
	Question      string `json:"question"`
	CorrectAnswer string `json:"correct_answer"`
}

// ExerciseResponse is the teacher-facing view of an exercise. It
// includes the correct answer, so it is only returned on
// authenticated authoring routes.
type ExerciseResponse struct {
	ID            string    `json:"id"`
	Title         string    `json:"title"`
	Question      string    `json:"question"`
	CorrectAnswer string    `json:"correct_answer"`
	HasMaterial   bool      `json:"has_material"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

// ExerciseSummary is the student-facing view: no correct answer.
type ExerciseSummary struct {
	ID       string `json:"id"`
	Title    string `json:"title"`
	Question string `json:"question"`
}

// MaterialUploadResponse reports the result of attaching a reference
// PDF to an exercise.
type MaterialUploadResponse struct {
	ExerciseID string `json:"exercise_id"`
	Chunks     int    `json:"chunks"`
}
