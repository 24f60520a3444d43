package models

import (
	"time"

	"github.com/google/uuid"
)

const (
	ProjectStatusDraft     = "draft"
	ProjectStatusExporting = "exporting"
	ProjectStatusExported  = "exported"
)

// VideoProject collects recordings into a publishable video. Actual media
// merging happens in external tooling; the export worker only tracks status.
type VideoProject struct {
	ID           uuid.UUID   `json:"id" db:"id"`
	Title        string      `json:"title" db:"title"`
	RecordingIDs []uuid.UUID `json:"recording_ids,omitempty" db:"recording_ids"`
	Status       string      `json:"status" db:"status"` // draft, exporting, exported
	CreatedAt    time.Time   `json:"created_at" db:"created_at"`
	UpdatedAt    time.Time   `json:"updated_at" db:"updated_at"`
}
