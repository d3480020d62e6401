package entity

import (
	"time"

	"github.com/google/uuid"
)

// SummarizationPrompt represents an operator-authored summary instruction
// for data transfer between layers.
type SummarizationPrompt struct {
	ID        uuid.UUID `json:"id"`
	Name      string    `json:"name"`
	Prompt    string    `json:"prompt"`
	IsDefault bool      `json:"is_default"`
	IsActive  bool      `json:"is_active"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
