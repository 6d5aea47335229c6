package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"mentorloop/internal/domain"
	"mentorloop/internal/repository/models"
	"mentorloop/internal/util"

	"github.com/jmoiron/sqlx"
)

// ExerciseDatabaseAdapter implements domain.ExerciseRepository using sqlx.DB
type ExerciseDatabaseAdapter struct {
	db *sqlx.DB
}

// NewExerciseDatabaseAdapter creates a new instance of ExerciseDatabaseAdapter
func NewExerciseDatabaseAdapter(db *sqlx.DB) domain.ExerciseRepository {
	return &ExerciseDatabaseAdapter{db: db}
}

func toDomainExercise(m *models.Exercise) *domain.Exercise {
	return &domain.Exercise{
		ID:            m.ID,
		Title:         m.Title,
		Question:      m.Question,
		CorrectAnswer: m.CorrectAnswer,
		MaterialKey:   m.MaterialKey.String,
		CreatedAt:     m.CreatedAt,
		UpdatedAt:     m.UpdatedAt,
	}
}

func toModelMaterialKey(key string) sql.NullString {
	return sql.NullString{String: key, Valid: key != ""}
}

// GetExerciseByID implements domain.ExerciseRepository
func (a *ExerciseDatabaseAdapter) GetExerciseByID(ctx context.Context, id string) (*domain.Exercise, error) {
	var m models.Exercise
	query := `SELECT
		id "id",
		title "title",
		question "question",
		correct_answer "correct_answer",
		material_key "material_key",
		created_at "created_at",
		updated_at "updated_at",
		deleted_at "deleted_at"
	FROM exercises
	WHERE id = :1
	AND deleted_at IS NULL`

	err := a.db.GetContext(ctx, &m, query, id)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get exercise by ID %s: %w", id, err)
	}
	return toDomainExercise(&m), nil
}

// GetAllExercises implements domain.ExerciseRepository
func (a *ExerciseDatabaseAdapter) GetAllExercises(ctx context.Context) ([]*domain.Exercise, error) {
	var modelExercises []models.Exercise
	query := `SELECT
		id "id",
		title "title",
		question "question",
		correct_answer "correct_answer",
		material_key "material_key",
		created_at "created_at",
		updated_at "updated_at",
		deleted_at "deleted_at"
	FROM exercises
	WHERE deleted_at IS NULL
	ORDER BY created_at`

	err := a.db.SelectContext(ctx, &modelExercises, query)
	if err != nil {
		return nil, fmt.Errorf("failed to get all exercises: %w", err)
	}

	exercises := make([]*domain.Exercise, len(modelExercises))
	for i := range modelExercises {
		exercises[i] = toDomainExercise(&modelExercises[i])
	}
	return exercises, nil
}

// SaveExercise implements domain.ExerciseRepository
func (a *ExerciseDatabaseAdapter) SaveExercise(ctx context.Context, exercise *domain.Exercise) error {
	if exercise == nil {
		return fmt.Errorf("cannot save nil exercise")
	}
	if exercise.ID == "" {
		exercise.ID = util.NewULID()
	}
	now := time.Now()
	exercise.CreatedAt = now
	exercise.UpdatedAt = now

	query := `INSERT INTO exercises (
		id, title, question, correct_answer, material_key, created_at, updated_at
	) VALUES (
		:1, :2, :3, :4, :5, :6, :7
	)`

	_, err := a.db.ExecContext(ctx, query,
		exercise.ID,
		exercise.Title,
		exercise.Question,
		exercise.CorrectAnswer,
		toModelMaterialKey(exercise.MaterialKey),
		exercise.CreatedAt,
		exercise.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to save exercise: %w", err)
	}
	return nil
}

// UpdateExercise implements domain.ExerciseRepository
func (a *ExerciseDatabaseAdapter) UpdateExercise(ctx context.Context, exercise *domain.Exercise) error {
	if exercise == nil || exercise.ID == "" {
		return fmt.Errorf("cannot update exercise without ID")
	}
	exercise.UpdatedAt = time.Now()

	query := `UPDATE exercises SET
		title = :1,
		question = :2,
		correct_answer = :3,
		material_key = :4,
		updated_at = :5
	WHERE id = :6
	AND deleted_at IS NULL`

	// Oracle reports RowsAffected as 0 for some statements, so a
	// missing row is detected with a follow-up read instead.
	_, err := a.db.ExecContext(ctx, query,
		exercise.Title,
		exercise.Question,
		exercise.CorrectAnswer,
		toModelMaterialKey(exercise.MaterialKey),
		exercise.UpdatedAt,
		exercise.ID,
	)
	if err != nil {
		return fmt.Errorf("failed to update exercise %s: %w", exercise.ID, err)
	}
	return nil
}

// DeleteExercise implements domain.ExerciseRepository
func (a *ExerciseDatabaseAdapter) DeleteExercise(ctx context.Context, id string) error {
	query := `UPDATE exercises SET
		deleted_at = :1
	WHERE id = :2
	AND deleted_at IS NULL`

	_, err := a.db.ExecContext(ctx, query, time.Now(), id)
	if err != nil {
		return fmt.Errorf("failed to delete exercise %s: %w", id, err)
	}
	return nil
}
