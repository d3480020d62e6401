package llm

import (
	"context"
	"encoding/json"
	"errors"
	"strings"
	"testing"

	"github.com/google/uuid"

	"github.com/jide-alade/voicenotes-tracker/internal/entity"
)

// mockTemplateSource is an in-memory template store for composer tests.
type mockTemplateSource struct {
	defs    map[uuid.UUID]*entity.ExtractionDefinition
	prompts map[uuid.UUID]*entity.SummarizationPrompt
}

func (m *mockTemplateSource) FindActiveDefinitionsByIDs(_ context.Context, ids []uuid.UUID) ([]*entity.ExtractionDefinition, error) {
	var out []*entity.ExtractionDefinition
	seen := make(map[uuid.UUID]bool)
	for _, id := range ids {
		if seen[id] {
			continue
		}
		seen[id] = true
		if d, ok := m.defs[id]; ok && d.IsActive {
			out = append(out, d)
		}
	}
	return out, nil
}

func (m *mockTemplateSource) GetSummarizationPrompt(_ context.Context, id uuid.UUID) (*entity.SummarizationPrompt, error) {
	if p, ok := m.prompts[id]; ok && p.IsActive {
		return p, nil
	}
	return nil, errors.New("summarization prompt not found")
}

func testDefinition(key, name string, outputType string, sortOrder int) *entity.ExtractionDefinition {
	return &entity.ExtractionDefinition{
		ID:             uuid.New(),
		Name:           name,
		JSONKey:        key,
		AIInstructions: "Extract every " + key + " mentioned in the transcript.",
		OutputType:     outputType,
		Category:       "extraction",
		IsActive:       true,
		SortOrder:      sortOrder,
	}
}

func newMockSource(defs ...*entity.ExtractionDefinition) *mockTemplateSource {
	m := &mockTemplateSource{
		defs:    make(map[uuid.UUID]*entity.ExtractionDefinition),
		prompts: make(map[uuid.UUID]*entity.SummarizationPrompt),
	}
	for _, d := range defs {
		m.defs[d.ID] = d
	}
	return m
}

func TestComposer_Compose_EmptySelection(t *testing.T) {
	c := NewComposer(newMockSource(), nil)

	_, err := c.Compose(context.Background(), Selection{})
	if !errors.Is(err, ErrEmptySelection) {
		t.Fatalf("Compose() error = %v, want ErrEmptySelection", err)
	}

	// Whitespace-only custom prompt is still an empty selection.
	_, err = c.Compose(context.Background(), Selection{CustomSummarizationPrompt: "   \n"})
	if !errors.Is(err, ErrEmptySelection) {
		t.Fatalf("Compose() with blank custom prompt error = %v, want ErrEmptySelection", err)
	}
}

func TestComposer_Compose_UnknownTemplate(t *testing.T) {
	known := testDefinition("tasks", "Tasks", "array", 1)
	c := NewComposer(newMockSource(known), nil)

	missing1 := uuid.New()
	missing2 := uuid.New()
	_, err := c.Compose(context.Background(), Selection{
		ExtractionDefinitionIDs: []uuid.UUID{known.ID, missing1, missing2},
	})

	var unknown *UnknownTemplateError
	if !errors.As(err, &unknown) {
		t.Fatalf("Compose() error = %v, want UnknownTemplateError", err)
	}
	if len(unknown.IDs) != 2 {
		t.Fatalf("UnknownTemplateError reports %d ids, want 2", len(unknown.IDs))
	}
	for i := 1; i < len(unknown.IDs); i++ {
		if unknown.IDs[i-1].String() > unknown.IDs[i].String() {
			t.Errorf("missing ids not sorted: %v", unknown.IDs)
		}
	}
}

func TestComposer_Compose_InactiveDefinitionIsUnknown(t *testing.T) {
	inactive := testDefinition("tasks", "Tasks", "array", 1)
	inactive.IsActive = false
	c := NewComposer(newMockSource(inactive), nil)

	_, err := c.Compose(context.Background(), Selection{
		ExtractionDefinitionIDs: []uuid.UUID{inactive.ID},
	})
	var unknown *UnknownTemplateError
	if !errors.As(err, &unknown) {
		t.Fatalf("Compose() error = %v, want UnknownTemplateError for inactive definition", err)
	}
}

func TestComposer_Compose_Deterministic(t *testing.T) {
	tasks := testDefinition("tasks", "Tasks", "array", 1)
	ideas := testDefinition("ideas", "Ideas", "array", 2)
	mood := testDefinition("mood", "Mood", "value", 2)
	src := newMockSource(tasks, ideas, mood)
	promptID := uuid.New()
	src.prompts[promptID] = &entity.SummarizationPrompt{
		ID: promptID, Name: "Standard", Prompt: "Summarize the note in two sentences.", IsActive: true,
	}
	c := NewComposer(src, nil)

	selections := [][]uuid.UUID{
		{tasks.ID, ideas.ID, mood.ID},
		{mood.ID, tasks.ID, ideas.ID},
		{ideas.ID, mood.ID, tasks.ID, tasks.ID}, // duplicate id collapses
	}

	var first *Composition
	for i, ids := range selections {
		comp, err := c.Compose(context.Background(), Selection{
			SummarizationPromptID:   &promptID,
			ExtractionDefinitionIDs: ids,
		})
		if err != nil {
			t.Fatalf("Compose() selection %d: %v", i, err)
		}
		if first == nil {
			first = comp
			continue
		}
		if comp.SystemPrompt != first.SystemPrompt {
			t.Errorf("selection %d composed a different prompt", i)
		}
		if len(comp.KeyOrder) != len(first.KeyOrder) {
			t.Fatalf("selection %d key count = %d, want %d", i, len(comp.KeyOrder), len(first.KeyOrder))
		}
		for j := range comp.KeyOrder {
			if comp.KeyOrder[j] != first.KeyOrder[j] {
				t.Errorf("selection %d key order %v, want %v", i, comp.KeyOrder, first.KeyOrder)
				break
			}
		}
	}

	// sort_order ties break on id, so the order of ideas/mood is fixed
	// by their generated ids but tasks always comes first.
	if first.KeyOrder[0] != "tasks" {
		t.Errorf("first key = %q, want tasks (lowest sort_order)", first.KeyOrder[0])
	}
}

func TestComposer_Compose_SchemaUnion(t *testing.T) {
	tasks := testDefinition("tasks", "Tasks", "array", 1)
	tasks.JSONSchema = json.RawMessage(`{"type":"array","items":{"type":"object","properties":{"title":{"type":"string"}}}}`)
	mood := testDefinition("mood", "Mood", "value", 2)
	src := newMockSource(tasks, mood)
	c := NewComposer(src, nil)

	comp, err := c.Compose(context.Background(), Selection{
		ExtractionDefinitionIDs:   []uuid.UUID{tasks.ID, mood.ID},
		CustomSummarizationPrompt: "Summarize briefly.",
	})
	if err != nil {
		t.Fatalf("Compose() error: %v", err)
	}

	props, ok := comp.Schema["properties"].(map[string]any)
	if !ok {
		t.Fatalf("schema has no properties map: %v", comp.Schema)
	}
	for _, key := range []string{"tasks", "mood", "summary"} {
		if _, ok := props[key]; !ok {
			t.Errorf("schema properties missing %q", key)
		}
	}
	if _, ok := comp.Schema["required"]; ok {
		t.Error("schema must not declare required keys; presence is enforced by the parser")
	}

	// Stored fragments are embedded verbatim in the unified schema.
	frag, ok := props["tasks"].(map[string]any)
	if !ok || frag["type"] != "array" {
		t.Errorf("tasks fragment not embedded: %v", props["tasks"])
	}
}

func TestComposer_Compose_CustomPromptOverridesStored(t *testing.T) {
	src := newMockSource()
	promptID := uuid.New()
	src.prompts[promptID] = &entity.SummarizationPrompt{
		ID: promptID, Name: "Standard", Prompt: "Stored prompt text.", IsActive: true,
	}
	c := NewComposer(src, nil)

	comp, err := c.Compose(context.Background(), Selection{
		SummarizationPromptID:     &promptID,
		CustomSummarizationPrompt: "Use exactly three bullet points.",
	})
	if err != nil {
		t.Fatalf("Compose() error: %v", err)
	}
	if comp.SummaryPrompt != "Use exactly three bullet points." {
		t.Errorf("SummaryPrompt = %q, want the custom text", comp.SummaryPrompt)
	}
	if strings.Contains(comp.SystemPrompt, "Stored prompt text.") {
		t.Error("system prompt still contains the overridden stored prompt")
	}
	if comp.SummarizationPromptID == nil || *comp.SummarizationPromptID != promptID {
		t.Error("stored prompt id should still be recorded for the session")
	}
}

func TestComposer_Compose_CustomPromptStillResolvesStoredID(t *testing.T) {
	c := NewComposer(newMockSource(), nil)

	// The overridden id lands on the session and the summarization row,
	// so a nonexistent id must fail fast, not at write time.
	missing := uuid.New()
	_, err := c.Compose(context.Background(), Selection{
		SummarizationPromptID:     &missing,
		CustomSummarizationPrompt: "Use exactly three bullet points.",
	})
	var unknown *UnknownTemplateError
	if !errors.As(err, &unknown) {
		t.Fatalf("Compose() error = %v, want UnknownTemplateError", err)
	}
	if len(unknown.IDs) != 1 || unknown.IDs[0] != missing {
		t.Errorf("UnknownTemplateError ids = %v, want [%s]", unknown.IDs, missing)
	}
}

func TestComposer_Compose_SummaryOnly(t *testing.T) {
	c := NewComposer(newMockSource(), nil)

	comp, err := c.Compose(context.Background(), Selection{
		CustomSummarizationPrompt: "One paragraph summary.",
	})
	if err != nil {
		t.Fatalf("Compose() error: %v", err)
	}
	if !comp.SummarySelected {
		t.Fatal("SummarySelected = false")
	}
	if len(comp.KeyOrder) != 0 || len(comp.DefinitionIDs) != 0 {
		t.Errorf("summary-only selection has extraction keys: %v", comp.KeyOrder)
	}
	props := comp.Schema["properties"].(map[string]any)
	if len(props) != 1 {
		t.Errorf("schema properties = %v, want only summary", props)
	}
}
