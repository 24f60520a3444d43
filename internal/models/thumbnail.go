package models

import (
	"time"

	"github.com/google/uuid"
)

type Thumbnail struct {
	ID        uuid.UUID `json:"id" db:"id"`
	Title     string    `json:"title" db:"title"`
	Subtitle  string    `json:"subtitle,omitempty" db:"subtitle"`
	Style     string    `json:"style,omitempty" db:"style"` // bold, neon, comic, clean
	Emoji     string    `json:"emoji,omitempty" db:"emoji"`
	CreatedAt time.Time `json:"created_at" db:"created_at"`
	UpdatedAt time.Time `json:"updated_at" db:"updated_at"`
}
