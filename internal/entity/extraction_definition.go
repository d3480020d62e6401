package entity

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
)

// ExtractionDefinition represents an operator-authored extraction template
// for data transfer between layers. The pipeline only reads these.
type ExtractionDefinition struct {
	ID             uuid.UUID       `json:"id"`
	Name           string          `json:"name"`
	JSONKey        string          `json:"json_key"`
	JSONSchema     json.RawMessage `json:"json_schema"`
	AIInstructions string          `json:"ai_instructions"`
	OutputType     string          `json:"output_type"`
	Category       string          `json:"category"`
	IsActive       bool            `json:"is_active"`
	SortOrder      int             `json:"sort_order"`
	CreatedAt      time.Time       `json:"created_at"`
	UpdatedAt      time.Time       `json:"updated_at"`
}
