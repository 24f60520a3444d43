package models

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
)

// ScriptStep is one beat of a video script (hook, talking point, outro).
type ScriptStep struct {
	Heading string `json:"heading"`
	Content string `json:"content"`
	Seconds int    `json:"seconds,omitempty"`
}

type Script struct {
	ID        uuid.UUID       `json:"id" db:"id"`
	Title     string          `json:"title" db:"title"`
	Hook      string          `json:"hook,omitempty" db:"hook"`
	Steps     json.RawMessage `json:"steps" db:"steps"`
	Status    string          `json:"status" db:"status"` // draft, ready, recorded
	CreatedAt time.Time       `json:"created_at" db:"created_at"`
	UpdatedAt time.Time       `json:"updated_at" db:"updated_at"`
}
