package models

import (
	"database/sql"
	"time"
)

// Exercise is the database model for the exercises table.
type Exercise struct {
	ID            string         `db:"id"`
	Title         string         `db:"title"`
	Question      string         `db:"question"`
	CorrectAnswer string         `db:"correct_answer"`
	MaterialKey   sql.NullString `db:"material_key"`
	CreatedAt     time.Time      `db:"created_at"`
	UpdatedAt     time.Time      `db:"updated_at"`
	DeletedAt     sql.NullTime   `db:"deleted_at"`
}
