package repository

import (
	"context"
	"encoding/json"
	"log/slog"

	"github.com/google/uuid"

	"github.com/jide-alade/voicenotes-tracker/gen/ent"
	"github.com/jide-alade/voicenotes-tracker/gen/ent/extractiondefinition"
	"github.com/jide-alade/voicenotes-tracker/gen/ent/summarizationprompt"
	"github.com/jide-alade/voicenotes-tracker/internal/entity"
	"github.com/jide-alade/voicenotes-tracker/internal/utils"
)

// CreateDefinitionRequest wraps parameters for creating an extraction definition.
type CreateDefinitionRequest struct {
	Name           string
	JSONKey        string
	JSONSchema     json.RawMessage
	AIInstructions string
	OutputType     string
	Category       string
	SortOrder      int
}

// CreatePromptRequest wraps parameters for creating a summarization prompt.
type CreatePromptRequest struct {
	Name      string
	Prompt    string
	IsDefault bool
}

// TemplateRepository is the template store: pure data access over
// operator-authored extraction definitions and summarization prompts.
type TemplateRepository interface {
	GetExtractionDefinition(ctx context.Context, id uuid.UUID) (*entity.ExtractionDefinition, error)
	FindActiveDefinitionsByIDs(ctx context.Context, ids []uuid.UUID) ([]*entity.ExtractionDefinition, error)
	ListExtractionDefinitions(ctx context.Context) ([]*entity.ExtractionDefinition, error)
	CreateExtractionDefinition(ctx context.Context, req *CreateDefinitionRequest) (*entity.ExtractionDefinition, error)

	GetSummarizationPrompt(ctx context.Context, id uuid.UUID) (*entity.SummarizationPrompt, error)
	GetDefaultSummarizationPrompt(ctx context.Context) (*entity.SummarizationPrompt, error)
	ListSummarizationPrompts(ctx context.Context) ([]*entity.SummarizationPrompt, error)
	CreateSummarizationPrompt(ctx context.Context, req *CreatePromptRequest) (*entity.SummarizationPrompt, error)
}

type templateRepository struct {
	client *ent.Client
	logger *slog.Logger
}

func NewTemplateRepository(client *ent.Client, logger *slog.Logger) TemplateRepository {
	return &templateRepository{
		client: client,
		logger: logger,
	}
}

func (r *templateRepository) GetExtractionDefinition(ctx context.Context, id uuid.UUID) (*entity.ExtractionDefinition, error) {
	row, err := r.client.ExtractionDefinition.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	return utils.ToExtractionDefinition(row), nil
}

func (r *templateRepository) FindActiveDefinitionsByIDs(ctx context.Context, ids []uuid.UUID) ([]*entity.ExtractionDefinition, error) {
	rows, err := r.client.ExtractionDefinition.Query().
		Where(
			extractiondefinition.IDIn(ids...),
			extractiondefinition.IsActive(true),
		).
		All(ctx)
	if err != nil {
		r.logger.Error("failed to resolve extraction definitions", "count", len(ids), "error", err)
		return nil, err
	}

	result := make([]*entity.ExtractionDefinition, len(rows))
	for i, row := range rows {
		result[i] = utils.ToExtractionDefinition(row)
	}
	return result, nil
}

func (r *templateRepository) ListExtractionDefinitions(ctx context.Context) ([]*entity.ExtractionDefinition, error) {
	rows, err := r.client.ExtractionDefinition.Query().
		Order(extractiondefinition.BySortOrder(), extractiondefinition.ByName()).
		All(ctx)
	if err != nil {
		return nil, err
	}

	result := make([]*entity.ExtractionDefinition, len(rows))
	for i, row := range rows {
		result[i] = utils.ToExtractionDefinition(row)
	}
	return result, nil
}

func (r *templateRepository) CreateExtractionDefinition(ctx context.Context, req *CreateDefinitionRequest) (*entity.ExtractionDefinition, error) {
	row, err := r.client.ExtractionDefinition.Create().
		SetName(req.Name).
		SetJSONKey(req.JSONKey).
		SetJSONSchema(req.JSONSchema).
		SetAiInstructions(req.AIInstructions).
		SetOutputType(req.OutputType).
		SetCategory(req.Category).
		SetSortOrder(req.SortOrder).
		Save(ctx)
	if err != nil {
		r.logger.Error("failed to create extraction definition", "name", req.Name, "json_key", req.JSONKey, "error", err)
		return nil, err
	}
	r.logger.Info("extraction definition created", "definition_id", row.ID, "json_key", row.JSONKey)
	return utils.ToExtractionDefinition(row), nil
}

func (r *templateRepository) GetSummarizationPrompt(ctx context.Context, id uuid.UUID) (*entity.SummarizationPrompt, error) {
	row, err := r.client.SummarizationPrompt.Query().
		Where(
			summarizationprompt.ID(id),
			summarizationprompt.IsActive(true),
		).
		Only(ctx)
	if err != nil {
		return nil, err
	}
	return utils.ToSummarizationPrompt(row), nil
}

func (r *templateRepository) GetDefaultSummarizationPrompt(ctx context.Context) (*entity.SummarizationPrompt, error) {
	row, err := r.client.SummarizationPrompt.Query().
		Where(
			summarizationprompt.IsDefault(true),
			summarizationprompt.IsActive(true),
		).
		First(ctx)
	if err != nil {
		return nil, err
	}
	return utils.ToSummarizationPrompt(row), nil
}

func (r *templateRepository) ListSummarizationPrompts(ctx context.Context) ([]*entity.SummarizationPrompt, error) {
	rows, err := r.client.SummarizationPrompt.Query().
		Order(summarizationprompt.ByName()).
		All(ctx)
	if err != nil {
		return nil, err
	}

	result := make([]*entity.SummarizationPrompt, len(rows))
	for i, row := range rows {
		result[i] = utils.ToSummarizationPrompt(row)
	}
	return result, nil
}

func (r *templateRepository) CreateSummarizationPrompt(ctx context.Context, req *CreatePromptRequest) (*entity.SummarizationPrompt, error) {
	row, err := r.client.SummarizationPrompt.Create().
		SetName(req.Name).
		SetPrompt(req.Prompt).
		SetIsDefault(req.IsDefault).
		Save(ctx)
	if err != nil {
		r.logger.Error("failed to create summarization prompt", "name", req.Name, "error", err)
		return nil, err
	}
	r.logger.Info("summarization prompt created", "prompt_id", row.ID)
	return utils.ToSummarizationPrompt(row), nil
}
