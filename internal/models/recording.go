package models

import (
	"time"

	"github.com/google/uuid"
)

type Recording struct {
	ID              uuid.UUID `json:"id" db:"id"`
	Title           string    `json:"title" db:"title"`
	VideoURL        string    `json:"video_url,omitempty" db:"video_url"`
	DurationSeconds int       `json:"duration_seconds,omitempty" db:"duration_seconds"`
	CreatedAt       time.Time `json:"created_at" db:"created_at"`
}
