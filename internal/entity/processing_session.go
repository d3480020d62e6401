package entity

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
)

// ProcessingSession is the audit record of one end-to-end pipeline run.
type ProcessingSession struct {
	ID                      uuid.UUID       `json:"id"`
	FileID                  uuid.UUID       `json:"file_id"`
	SummarizationPromptID   *uuid.UUID      `json:"summarization_prompt_id,omitempty"`
	ExtractionDefinitionIDs []uuid.UUID     `json:"extraction_definition_ids"`
	SystemPrompt            string          `json:"system_prompt"`
	AIResponse              *string         `json:"ai_response,omitempty"`
	ParsedResponse          json.RawMessage `json:"parsed_response,omitempty"`
	Status                  string          `json:"status"`
	ErrorMessage            *string         `json:"error_message,omitempty"`
	ProcessingTimeMs        int64           `json:"processing_time_ms"`
	TokenCount              *int            `json:"token_count,omitempty"`
	Model                   string          `json:"model"`
	CreatedAt               time.Time       `json:"created_at"`
	CompletedAt             *time.Time      `json:"completed_at,omitempty"`
}
