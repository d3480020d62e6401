package llm

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"sort"
	"strings"

	"github.com/google/uuid"

	"github.com/jide-alade/voicenotes-tracker/constants"
	"github.com/jide-alade/voicenotes-tracker/internal/entity"
)

// promptPreamble instructs the model to bind every answer to the schema.
// Kept as a single constant so identical selections compose byte-identical
// prompts.
const promptPreamble = "You are an assistant that analyzes voice note transcripts. " +
	"Return ONLY a single JSON object that matches the provided JSON Schema. " +
	"Each top-level key is described below; produce a value for every key you can. " +
	"Never output null. If you cannot produce a value for a key, omit the key entirely. " +
	"Do not wrap the response in code fences or add any text outside the JSON object."

// Composer builds the system prompt, the unified JSON schema, and the
// extraction map for one selection of templates. Pure over its inputs and
// the template store's current state.
type Composer struct {
	templates TemplateSource
	logger    *slog.Logger
}

func NewComposer(templates TemplateSource, logger *slog.Logger) *Composer {
	if logger == nil {
		logger = slog.Default()
	}
	return &Composer{templates: templates, logger: logger}
}

// Compose resolves the selection against the template store and produces the
// Composition for one run. It fails fast: an empty selection or any
// unresolved id aborts with no partial schema.
func (c *Composer) Compose(ctx context.Context, sel Selection) (*Composition, error) {
	customPrompt := strings.TrimSpace(sel.CustomSummarizationPrompt)
	if len(sel.ExtractionDefinitionIDs) == 0 && sel.SummarizationPromptID == nil && customPrompt == "" {
		return nil, ErrEmptySelection
	}

	var defs []*entity.ExtractionDefinition
	if len(sel.ExtractionDefinitionIDs) > 0 {
		found, err := c.templates.FindActiveDefinitionsByIDs(ctx, sel.ExtractionDefinitionIDs)
		if err != nil {
			return nil, fmt.Errorf("resolve extraction definitions: %w", err)
		}
		byID := make(map[uuid.UUID]*entity.ExtractionDefinition, len(found))
		for _, d := range found {
			byID[d.ID] = d
		}
		var missing []uuid.UUID
		seen := make(map[uuid.UUID]struct{}, len(sel.ExtractionDefinitionIDs))
		for _, id := range sel.ExtractionDefinitionIDs {
			if _, dup := seen[id]; dup {
				continue
			}
			seen[id] = struct{}{}
			d, ok := byID[id]
			if !ok {
				missing = append(missing, id)
				continue
			}
			defs = append(defs, d)
		}
		if len(missing) > 0 {
			sort.Slice(missing, func(i, j int) bool { return missing[i].String() < missing[j].String() })
			return nil, &UnknownTemplateError{IDs: missing}
		}
	}

	// Deterministic order: sort_order, then id. Identical selections must
	// compose byte-identical prompts.
	sort.SliceStable(defs, func(i, j int) bool {
		if defs[i].SortOrder != defs[j].SortOrder {
			return defs[i].SortOrder < defs[j].SortOrder
		}
		return defs[i].ID.String() < defs[j].ID.String()
	})

	comp := &Composition{
		Keys: make(map[string]KeyBinding, len(defs)),
	}

	// Summarization instruction: custom text overrides the stored prompt.
	if customPrompt != "" {
		// The overridden id is still recorded on the session and the
		// summarization row, so it must resolve like any other template.
		if sel.SummarizationPromptID != nil {
			sp, err := c.templates.GetSummarizationPrompt(ctx, *sel.SummarizationPromptID)
			if err != nil || sp == nil {
				return nil, &UnknownTemplateError{IDs: []uuid.UUID{*sel.SummarizationPromptID}}
			}
		}
		comp.SummarySelected = true
		comp.SummaryPrompt = customPrompt
		comp.SummarizationPromptID = sel.SummarizationPromptID
	} else if sel.SummarizationPromptID != nil {
		sp, err := c.templates.GetSummarizationPrompt(ctx, *sel.SummarizationPromptID)
		if err != nil || sp == nil {
			return nil, &UnknownTemplateError{IDs: []uuid.UUID{*sel.SummarizationPromptID}}
		}
		comp.SummarySelected = true
		comp.SummaryPrompt = strings.TrimSpace(sp.Prompt)
		comp.SummarizationPromptID = sel.SummarizationPromptID
	}

	var b strings.Builder
	b.WriteString(promptPreamble)
	b.WriteString("\n")

	props := make(map[string]any, len(defs)+1)
	if comp.SummarySelected {
		b.WriteString("\n### ")
		b.WriteString(constants.SummaryKey)
		b.WriteString(" (Summary)\n")
		b.WriteString(comp.SummaryPrompt)
		b.WriteString("\n")
		props[constants.SummaryKey] = map[string]any{"type": "string"}
	}

	for _, d := range defs {
		b.WriteString("\n### ")
		b.WriteString(d.JSONKey)
		b.WriteString(" (")
		b.WriteString(d.Name)
		b.WriteString(")\n")
		b.WriteString(strings.TrimSpace(d.AIInstructions))
		b.WriteString("\n")

		props[d.JSONKey] = c.propertySchema(d)
		comp.Keys[d.JSONKey] = KeyBinding{
			DefinitionID: d.ID,
			OutputType:   constants.OutputType(d.OutputType),
			Category:     constants.TemplateCategory(d.Category),
			Schema:       d.JSONSchema,
		}
		comp.KeyOrder = append(comp.KeyOrder, d.JSONKey)
		comp.DefinitionIDs = append(comp.DefinitionIDs, d.ID)
	}

	comp.SystemPrompt = b.String()
	// Presence is enforced by the parser, not the schema: backends routinely
	// omit keys and the run must not hard-fail on that.
	comp.Schema = map[string]any{
		"type":       "object",
		"properties": props,
	}

	c.logger.Debug("llm.compose.ok",
		"extraction_keys", len(comp.KeyOrder),
		"summary_selected", comp.SummarySelected,
		"prompt_bytes", len(comp.SystemPrompt),
	)
	return comp, nil
}

// propertySchema decodes the stored schema fragment for one definition,
// falling back to a minimal type-only schema when the fragment is unusable.
func (c *Composer) propertySchema(d *entity.ExtractionDefinition) any {
	if len(d.JSONSchema) > 0 {
		var frag map[string]any
		if err := json.Unmarshal(d.JSONSchema, &frag); err == nil && len(frag) > 0 {
			return frag
		}
		c.logger.Warn("llm.compose.bad_schema_fragment", "json_key", d.JSONKey, "definition_id", d.ID)
	}
	switch constants.OutputType(d.OutputType) {
	case constants.OutputArray:
		return map[string]any{"type": "array"}
	case constants.OutputObject:
		return map[string]any{"type": "object"}
	default:
		return map[string]any{"type": "string"}
	}
}
