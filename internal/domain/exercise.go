package domain

import (
	"time"
)

// Exercise represents a teacher-authored exercise: a question, the
// correct answer used by the similarity gate, and a handle to the
// reference material indexed for retrieval.
type Exercise struct {
	ID            string
	Title         string
	Question      string
	CorrectAnswer string
	MaterialKey   string // object key of the reference PDF in file storage
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// NewExercise creates a new Exercise instance
func NewExercise(title, question, correctAnswer string) *Exercise {
	now := time.Now()
	return &Exercise{
		Title:         title,
		Question:      question,
		CorrectAnswer: correctAnswer,
		CreatedAt:     now,
		UpdatedAt:     now,
	}
}

// Validate validates the exercise
func (e *Exercise) Validate() error {
	if e.Title == "" {
		return NewValidationError("title is required")
	}
	if e.Question == "" {
		return NewValidationError("question is required")
	}
	if e.CorrectAnswer == "" {
		return NewValidationError("correct answer is required")
	}
	return nil
}
