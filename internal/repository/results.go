package repository

import (
	"context"
	"encoding/json"
	"log/slog"

	"github.com/google/uuid"

	"github.com/jide-alade/voicenotes-tracker/gen/ent"
	"github.com/jide-alade/voicenotes-tracker/gen/ent/extractionresult"
	"github.com/jide-alade/voicenotes-tracker/gen/ent/summarization"
	"github.com/jide-alade/voicenotes-tracker/internal/entity"
	"github.com/jide-alade/voicenotes-tracker/internal/utils"
)

// InsertResultRequest wraps parameters for one extraction result row.
type InsertResultRequest struct {
	FileID           uuid.UUID
	SessionID        uuid.UUID
	DefinitionID     uuid.UUID
	ExtractionType   string
	Content          json.RawMessage
	Model            string
	ProcessingTimeMs *int64
}

// InsertSummarizationRequest wraps parameters for one summarization row.
type InsertSummarizationRequest struct {
	FileID     uuid.UUID
	SessionID  uuid.UUID
	TemplateID *uuid.UUID
	Model      string
	Prompt     string
	Content    string
}

// ResultRepository persists extraction results and summarizations.
// Writes are simple inserts; rows are never updated after creation.
type ResultRepository interface {
	InsertExtractionResult(ctx context.Context, req *InsertResultRequest) (*entity.ExtractionResult, error)
	InsertSummarization(ctx context.Context, req *InsertSummarizationRequest) (*entity.Summarization, error)
	ListExtractionResultsByFile(ctx context.Context, fileID uuid.UUID) ([]*entity.ExtractionResult, error)
	ListSummarizationsByFile(ctx context.Context, fileID uuid.UUID) ([]*entity.Summarization, error)
}

type resultRepo struct {
	ent    *ent.Client
	logger *slog.Logger
}

func NewResultRepository(entc *ent.Client, logger *slog.Logger) ResultRepository {
	return &resultRepo{
		ent:    entc,
		logger: logger,
	}
}

func (r *resultRepo) InsertExtractionResult(ctx context.Context, req *InsertResultRequest) (*entity.ExtractionResult, error) {
	builder := r.ent.ExtractionResult.Create().
		SetFileID(req.FileID).
		SetSessionID(req.SessionID).
		SetDefinitionID(req.DefinitionID).
		SetExtractionType(req.ExtractionType).
		SetContent(req.Content).
		SetModel(req.Model)
	if req.ProcessingTimeMs != nil {
		builder = builder.SetProcessingTimeMs(*req.ProcessingTimeMs)
	}
	row, err := builder.Save(ctx)
	if err != nil {
		r.logger.Error("failed to insert extraction result",
			"file_id", req.FileID, "definition_id", req.DefinitionID,
			"extraction_type", req.ExtractionType, "error", err)
		return nil, err
	}
	return utils.ToExtractionResult(row), nil
}

func (r *resultRepo) InsertSummarization(ctx context.Context, req *InsertSummarizationRequest) (*entity.Summarization, error) {
	builder := r.ent.Summarization.Create().
		SetFileID(req.FileID).
		SetSessionID(req.SessionID).
		SetModel(req.Model).
		SetPrompt(req.Prompt).
		SetContent(req.Content)
	if req.TemplateID != nil {
		builder = builder.SetTemplateID(*req.TemplateID)
	}
	row, err := builder.Save(ctx)
	if err != nil {
		r.logger.Error("failed to insert summarization", "file_id", req.FileID, "error", err)
		return nil, err
	}
	return utils.ToSummarization(row), nil
}

func (r *resultRepo) ListExtractionResultsByFile(ctx context.Context, fileID uuid.UUID) ([]*entity.ExtractionResult, error) {
	rows, err := r.ent.ExtractionResult.Query().
		Where(extractionresult.FileID(fileID)).
		Order(extractionresult.ByCreatedAt()).
		All(ctx)
	if err != nil {
		r.logger.Error("failed to list extraction results", "file_id", fileID, "error", err)
		return nil, err
	}

	result := make([]*entity.ExtractionResult, len(rows))
	for i, row := range rows {
		result[i] = utils.ToExtractionResult(row)
	}
	return result, nil
}

func (r *resultRepo) ListSummarizationsByFile(ctx context.Context, fileID uuid.UUID) ([]*entity.Summarization, error) {
	rows, err := r.ent.Summarization.Query().
		Where(summarization.FileID(fileID)).
		Order(summarization.ByCreatedAt()).
		All(ctx)
	if err != nil {
		r.logger.Error("failed to list summarizations", "file_id", fileID, "error", err)
		return nil, err
	}

	result := make([]*entity.Summarization, len(rows))
	for i, row := range rows {
		result[i] = utils.ToSummarization(row)
	}
	return result, nil
}
