package server

import (
	"context"
	"encoding/json"
	"log/slog"

	"github.com/jide-alade/voicenotes-tracker/constants"
	voicenotesv1 "github.com/jide-alade/voicenotes-tracker/gen/voicenotes/v1"
	"github.com/jide-alade/voicenotes-tracker/internal/common"
	"github.com/jide-alade/voicenotes-tracker/internal/entity"
	"github.com/jide-alade/voicenotes-tracker/internal/repository"
)

// TemplatesService manages extraction definitions and summarization prompts.
type TemplatesService struct {
	voicenotesv1.UnimplementedTemplatesServiceServer
	templates repository.TemplateRepository
	logger    *slog.Logger
}

func NewTemplatesService(templates repository.TemplateRepository, logger *slog.Logger) *TemplatesService {
	if logger == nil {
		logger = slog.Default()
	}
	return &TemplatesService{templates: templates, logger: logger}
}

func (s *TemplatesService) CreateExtractionDefinition(ctx context.Context, req *voicenotesv1.CreateExtractionDefinitionRequest) (*voicenotesv1.CreateExtractionDefinitionResponse, error) {
	v := common.NewValidator().
		Field("name", req.GetName(), common.Required, common.MaxLength(255)).
		Field("json_key", req.GetJsonKey(), common.Required, common.MaxLength(64)).
		Field("category", req.GetCategory(), common.Required, common.OneOf(constants.TemplateCategories...)).
		Field("output_type", req.GetOutputType(), common.Required, common.OneOf(constants.OutputTypes...)).
		Field("ai_instructions", req.GetAiInstructions(), common.Required)
	if err := common.ValidateAndReturnError(v); err != nil {
		return nil, err
	}
	if req.GetJsonKey() == constants.SummaryKey {
		return nil, common.InvalidArgumentErrorf("json_key %q is reserved", constants.SummaryKey)
	}

	var schema json.RawMessage
	if raw := req.GetJsonSchema(); raw != "" {
		if !json.Valid([]byte(raw)) {
			return nil, common.InvalidArgumentError("json_schema is not valid JSON")
		}
		schema = json.RawMessage(raw)
	}

	def, err := s.templates.CreateExtractionDefinition(ctx, &repository.CreateDefinitionRequest{
		Name:           req.GetName(),
		JSONKey:        req.GetJsonKey(),
		JSONSchema:     schema,
		AIInstructions: req.GetAiInstructions(),
		OutputType:     req.GetOutputType(),
		Category:       req.GetCategory(),
		SortOrder:      int(req.GetSortOrder()),
	})
	if err != nil {
		s.logger.Error("server.create_definition.failed", "name", req.GetName(), "error", err)
		return nil, common.InternalError("failed to create extraction definition")
	}
	return &voicenotesv1.CreateExtractionDefinitionResponse{Definition: toDefinitionPB(def)}, nil
}

func (s *TemplatesService) ListExtractionDefinitions(ctx context.Context, _ *voicenotesv1.ListExtractionDefinitionsRequest) (*voicenotesv1.ListExtractionDefinitionsResponse, error) {
	defs, err := s.templates.ListExtractionDefinitions(ctx)
	if err != nil {
		s.logger.Error("server.list_definitions.failed", "error", err)
		return nil, common.InternalError("failed to list extraction definitions")
	}
	out := make([]*voicenotesv1.ExtractionDefinition, 0, len(defs))
	for _, d := range defs {
		out = append(out, toDefinitionPB(d))
	}
	return &voicenotesv1.ListExtractionDefinitionsResponse{Definitions: out}, nil
}

func (s *TemplatesService) CreateSummarizationPrompt(ctx context.Context, req *voicenotesv1.CreateSummarizationPromptRequest) (*voicenotesv1.CreateSummarizationPromptResponse, error) {
	v := common.NewValidator().
		Field("name", req.GetName(), common.Required, common.MaxLength(255)).
		Field("prompt", req.GetPrompt(), common.Required)
	if err := common.ValidateAndReturnError(v); err != nil {
		return nil, err
	}

	prompt, err := s.templates.CreateSummarizationPrompt(ctx, &repository.CreatePromptRequest{
		Name:      req.GetName(),
		Prompt:    req.GetPrompt(),
		IsDefault: req.GetIsDefault(),
	})
	if err != nil {
		s.logger.Error("server.create_prompt.failed", "name", req.GetName(), "error", err)
		return nil, common.InternalError("failed to create summarization prompt")
	}
	return &voicenotesv1.CreateSummarizationPromptResponse{Prompt: toPromptPB(prompt)}, nil
}

func (s *TemplatesService) ListSummarizationPrompts(ctx context.Context, _ *voicenotesv1.ListSummarizationPromptsRequest) (*voicenotesv1.ListSummarizationPromptsResponse, error) {
	prompts, err := s.templates.ListSummarizationPrompts(ctx)
	if err != nil {
		s.logger.Error("server.list_prompts.failed", "error", err)
		return nil, common.InternalError("failed to list summarization prompts")
	}
	out := make([]*voicenotesv1.SummarizationPrompt, 0, len(prompts))
	for _, p := range prompts {
		out = append(out, toPromptPB(p))
	}
	return &voicenotesv1.ListSummarizationPromptsResponse{Prompts: out}, nil
}

func toDefinitionPB(d *entity.ExtractionDefinition) *voicenotesv1.ExtractionDefinition {
	return &voicenotesv1.ExtractionDefinition{
		Id:             d.ID.String(),
		Name:           d.Name,
		JsonKey:        d.JSONKey,
		Category:       d.Category,
		OutputType:     d.OutputType,
		AiInstructions: d.AIInstructions,
		JsonSchema:     string(d.JSONSchema),
		SortOrder:      int32(d.SortOrder),
		IsActive:       d.IsActive,
	}
}

func toPromptPB(p *entity.SummarizationPrompt) *voicenotesv1.SummarizationPrompt {
	return &voicenotesv1.SummarizationPrompt{
		Id:        p.ID.String(),
		Name:      p.Name,
		Prompt:    p.Prompt,
		IsDefault: p.IsDefault,
		IsActive:  p.IsActive,
	}
}
