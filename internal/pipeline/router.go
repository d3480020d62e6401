package pipeline

import (
	"context"
	"encoding/json"
	"log/slog"

	"github.com/google/uuid"

	"github.com/jide-alade/voicenotes-tracker/internal/entity"
	"github.com/jide-alade/voicenotes-tracker/internal/llm"
	"github.com/jide-alade/voicenotes-tracker/internal/repository"
)

// Router dispatches each validated key to its storage table using the
// extraction map, without re-querying the template store. Writes are
// independent per key: a failure on one key never rolls back siblings.
type Router struct {
	results repository.ResultRepository
	logger  *slog.Logger
}

func NewRouter(results repository.ResultRepository, logger *slog.Logger) *Router {
	if logger == nil {
		logger = slog.Default()
	}
	return &Router{results: results, logger: logger}
}

// Route writes one extraction result row for one key.
func (r *Router) Route(ctx context.Context, fileID, sessionID uuid.UUID, model string, key string, binding llm.KeyBinding, value json.RawMessage, elapsedMs int64) (*entity.ExtractionResult, error) {
	row, err := r.results.InsertExtractionResult(ctx, &repository.InsertResultRequest{
		FileID:           fileID,
		SessionID:        sessionID,
		DefinitionID:     binding.DefinitionID,
		ExtractionType:   key,
		Content:          value,
		Model:            model,
		ProcessingTimeMs: &elapsedMs,
	})
	if err != nil {
		return nil, err
	}
	r.logger.Debug("pipeline.route.result_written",
		"result_id", row.ID, "json_key", key, "category", string(binding.Category))
	return row, nil
}

// RouteSummary writes the summarization record for the reserved summary key.
func (r *Router) RouteSummary(ctx context.Context, fileID, sessionID uuid.UUID, templateID *uuid.UUID, model, prompt, content string) (*entity.Summarization, error) {
	row, err := r.results.InsertSummarization(ctx, &repository.InsertSummarizationRequest{
		FileID:     fileID,
		SessionID:  sessionID,
		TemplateID: templateID,
		Model:      model,
		Prompt:     prompt,
		Content:    content,
	})
	if err != nil {
		return nil, err
	}
	r.logger.Debug("pipeline.route.summary_written", "summarization_id", row.ID)
	return row, nil
}
