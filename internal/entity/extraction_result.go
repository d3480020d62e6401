package entity

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
)

// ExtractionResult is one persisted payload for one definition on one file.
// Rows are immutable; reruns append new rows rather than updating old ones.
type ExtractionResult struct {
	ID               uuid.UUID       `json:"id"`
	FileID           uuid.UUID       `json:"file_id"`
	SessionID        uuid.UUID       `json:"session_id"`
	DefinitionID     uuid.UUID       `json:"definition_id"`
	ExtractionType   string          `json:"extraction_type"` // copy of the definition json_key
	Content          json.RawMessage `json:"content"`
	Confidence       *float32        `json:"confidence,omitempty"`
	ProcessingTimeMs *int64          `json:"processing_time_ms,omitempty"`
	Model            string          `json:"model"`
	CreatedAt        time.Time       `json:"created_at"`
}

// Summarization is one persisted prose summary for one file.
type Summarization struct {
	ID         uuid.UUID  `json:"id"`
	FileID     uuid.UUID  `json:"file_id"`
	SessionID  uuid.UUID  `json:"session_id"`
	TemplateID *uuid.UUID `json:"template_id,omitempty"`
	Model      string     `json:"model"`
	Prompt     string     `json:"prompt"`
	Content    string     `json:"content"`
	CreatedAt  time.Time  `json:"created_at"`
}
