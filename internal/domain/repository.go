package domain

import "context"

// ExerciseRepository defines the interface for exercise persistence
type ExerciseRepository interface {
	// GetExerciseByID retrieves an exercise by its ID
	GetExerciseByID(ctx context.Context, id string) (*Exercise, error)

	// GetAllExercises returns all exercises that are not deleted
	GetAllExercises(ctx context.Context) ([]*Exercise, error)

	// SaveExercise persists a new exercise and assigns its ID
	SaveExercise(ctx context.Context, exercise *Exercise) error

	// UpdateExercise updates an existing exercise
	UpdateExercise(ctx context.Context, exercise *Exercise) error

	// DeleteExercise soft-deletes an exercise
	DeleteExercise(ctx context.Context, id string) error
}
