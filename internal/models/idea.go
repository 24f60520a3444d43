package models

import (
	"time"

	"github.com/google/uuid"
)

type Idea struct {
	ID          uuid.UUID `json:"id" db:"id"`
	Title       string    `json:"title" db:"title"`
	Description string    `json:"description,omitempty" db:"description"`
	Category    string    `json:"category,omitempty" db:"category"`
	Tags        []string  `json:"tags,omitempty" db:"tags"`
	Favorite    bool      `json:"favorite" db:"favorite"`
	CreatedAt   time.Time `json:"created_at" db:"created_at"`
	UpdatedAt   time.Time `json:"updated_at" db:"updated_at"`
}

// IdeaMatch is a similarity-search hit for an idea.
type IdeaMatch struct {
	Idea  Idea    `json:"idea"`
	Score float64 `json:"score"`
}
