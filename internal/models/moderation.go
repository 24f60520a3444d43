package models

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
)

// ModerationEvent records a rejected write for internal review. Reason tags
// live here and in the logs only; clients get the fixed friendly message.
type ModerationEvent struct {
	ID           uuid.UUID       `json:"id" db:"id"`
	ResourceType string          `json:"resource_type" db:"resource_type"`
	Reasons      []string        `json:"reasons" db:"reasons"`
	Details      json.RawMessage `json:"details,omitempty" db:"details"`
	IPAddress    string          `json:"ip_address,omitempty" db:"ip_address"`
	CreatedAt    time.Time       `json:"created_at" db:"created_at"`
}
