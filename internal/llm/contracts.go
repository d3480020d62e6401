package llm

import (
	"context"
	"encoding/json"

	"github.com/google/uuid"

	"github.com/jide-alade/voicenotes-tracker/constants"
	"github.com/jide-alade/voicenotes-tracker/internal/entity"
)

// Selection names the templates an operator picked for one run.
type Selection struct {
	SummarizationPromptID     *uuid.UUID
	ExtractionDefinitionIDs   []uuid.UUID
	CustomSummarizationPrompt string
}

// KeyBinding maps one response key to the definition it came from, so the
// router can dispatch parsed values without re-querying the template store.
type KeyBinding struct {
	DefinitionID uuid.UUID
	OutputType   constants.OutputType
	Category     constants.TemplateCategory
	Schema       json.RawMessage
}

// Composition is the output of the schema composer: one system prompt, one
// unified JSON schema, and the dispatch table for the parsed response.
type Composition struct {
	SystemPrompt string
	Schema       map[string]any
	// Keys is the extraction map: json_key -> binding.
	Keys map[string]KeyBinding
	// KeyOrder preserves the deterministic composition order of Keys.
	KeyOrder []string
	// DefinitionIDs are the resolved extraction ids, in KeyOrder.
	DefinitionIDs []uuid.UUID

	SummarySelected       bool
	SummaryPrompt         string
	SummarizationPromptID *uuid.UUID
}

// TemplateSource is the slice of the template store the composer depends on.
type TemplateSource interface {
	FindActiveDefinitionsByIDs(ctx context.Context, ids []uuid.UUID) ([]*entity.ExtractionDefinition, error)
	GetSummarizationPrompt(ctx context.Context, id uuid.UUID) (*entity.SummarizationPrompt, error)
}

// GenerationRequest is one schema-constrained call to the text backend.
type GenerationRequest struct {
	Prompt       string
	SystemPrompt string
	JSONSchema   map[string]any
	Model        string
	MaxTokens    int
	Temperature  float32
}

// Generator is the text-generation backend interface the pipeline depends on.
// Implementations must not retry internally; retry policy belongs to callers.
type Generator interface {
	Generate(ctx context.Context, req GenerationRequest) (string, error)
}
