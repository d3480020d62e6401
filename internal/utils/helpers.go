package utils

import (
	"github.com/jide-alade/voicenotes-tracker/gen/ent"
	"github.com/jide-alade/voicenotes-tracker/internal/entity"
)

func ToExtractionDefinition(e *ent.ExtractionDefinition) *entity.ExtractionDefinition {
	return &entity.ExtractionDefinition{
		ID:             e.ID,
		Name:           e.Name,
		JSONKey:        e.JSONKey,
		JSONSchema:     e.JSONSchema,
		AIInstructions: e.AiInstructions,
		OutputType:     e.OutputType,
		Category:       e.Category,
		IsActive:       e.IsActive,
		SortOrder:      e.SortOrder,
		CreatedAt:      e.CreatedAt,
		UpdatedAt:      e.UpdatedAt,
	}
}

func ToSummarizationPrompt(e *ent.SummarizationPrompt) *entity.SummarizationPrompt {
	return &entity.SummarizationPrompt{
		ID:        e.ID,
		Name:      e.Name,
		Prompt:    e.Prompt,
		IsDefault: e.IsDefault,
		IsActive:  e.IsActive,
		CreatedAt: e.CreatedAt,
		UpdatedAt: e.UpdatedAt,
	}
}

func ToTranscriptFile(e *ent.TranscriptFile) *entity.TranscriptFile {
	return &entity.TranscriptFile{
		ID:                 e.ID,
		Filename:           e.Filename,
		SourcePath:         e.SourcePath,
		TranscriptText:     e.TranscriptText,
		TranscriptSegments: e.TranscriptSegments,
		Language:           e.Language,
		DurationSeconds:    e.DurationSeconds,
		UploadedAt:         e.UploadedAt,
	}
}

func ToProcessingSession(e *ent.ProcessingSession) *entity.ProcessingSession {
	return &entity.ProcessingSession{
		ID:                      e.ID,
		FileID:                  e.FileID,
		SummarizationPromptID:   e.SummarizationPromptID,
		ExtractionDefinitionIDs: e.ExtractionSelection,
		SystemPrompt:            e.SystemPrompt,
		AIResponse:              e.AiResponse,
		ParsedResponse:          e.ParsedResponse,
		Status:                  e.Status,
		ErrorMessage:            e.ErrorMessage,
		ProcessingTimeMs:        e.ProcessingTimeMs,
		TokenCount:              e.TokenCount,
		Model:                   e.Model,
		CreatedAt:               e.CreatedAt,
		CompletedAt:             e.CompletedAt,
	}
}

func ToExtractionResult(e *ent.ExtractionResult) *entity.ExtractionResult {
	return &entity.ExtractionResult{
		ID:               e.ID,
		FileID:           e.FileID,
		SessionID:        e.SessionID,
		DefinitionID:     e.DefinitionID,
		ExtractionType:   e.ExtractionType,
		Content:          e.Content,
		Confidence:       e.Confidence,
		ProcessingTimeMs: e.ProcessingTimeMs,
		Model:            e.Model,
		CreatedAt:        e.CreatedAt,
	}
}

func ToSummarization(e *ent.Summarization) *entity.Summarization {
	return &entity.Summarization{
		ID:         e.ID,
		FileID:     e.FileID,
		SessionID:  e.SessionID,
		TemplateID: e.TemplateID,
		Model:      e.Model,
		Prompt:     e.Prompt,
		Content:    e.Content,
		CreatedAt:  e.CreatedAt,
	}
}
