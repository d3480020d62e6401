package llm

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/google/uuid"

	"github.com/jide-alade/voicenotes-tracker/constants"
)

func testComposition(withSummary bool) *Composition {
	comp := &Composition{
		Keys:            make(map[string]KeyBinding),
		SummarySelected: withSummary,
	}
	add := func(key string, t constants.OutputType) {
		id := uuid.New()
		comp.Keys[key] = KeyBinding{
			DefinitionID: id,
			OutputType:   t,
			Category:     constants.CategoryExtraction,
		}
		comp.KeyOrder = append(comp.KeyOrder, key)
		comp.DefinitionIDs = append(comp.DefinitionIDs, id)
	}
	add("tasks", constants.OutputArray)
	add("metrics", constants.OutputObject)
	add("mood", constants.OutputValue)
	return comp
}

func keyByName(t *testing.T, out *ParseOutcome, key string) KeyResult {
	t.Helper()
	for _, kr := range out.Keys {
		if kr.Key == key {
			return kr
		}
	}
	t.Fatalf("outcome has no key %q", key)
	return KeyResult{}
}

func TestParseResponse_ValidResponse(t *testing.T) {
	comp := testComposition(true)
	raw := `{"tasks":[{"title":"buy milk"}],"metrics":{"steps":4000},"mood":"tired","summary":"A short errand note."}`

	out := ParseResponse(comp, raw, nil)

	if out.Warning != "" {
		t.Errorf("Warning = %q, want empty for a fully valid response", out.Warning)
	}
	if len(out.Keys) != 3 {
		t.Fatalf("len(Keys) = %d, want 3", len(out.Keys))
	}
	for _, kr := range out.Keys {
		if kr.FellBack {
			t.Errorf("key %q fell back on a valid response", kr.Key)
		}
	}
	if out.Summary != "A short errand note." || out.SummaryFellBack {
		t.Errorf("Summary = %q fellBack=%v", out.Summary, out.SummaryFellBack)
	}
}

func TestParseResponse_FallbackTyping(t *testing.T) {
	tests := []struct {
		name string
		raw  string
	}{
		{"empty response", ""},
		{"whitespace only", "   \n\t "},
		{"invalid json", "I could not process this transcript, sorry!"},
		{"truncated json", `{"tasks":[{"title":"bu`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			comp := testComposition(true)
			out := ParseResponse(comp, tt.raw, nil)

			if len(out.Keys) != len(comp.KeyOrder) {
				t.Fatalf("len(Keys) = %d, want %d: every key gets a fallback row", len(out.Keys), len(comp.KeyOrder))
			}
			if got := string(keyByName(t, out, "tasks").Value); got != "[]" {
				t.Errorf("array fallback = %s, want []", got)
			}
			if got := string(keyByName(t, out, "metrics").Value); got != "{}" {
				t.Errorf("object fallback = %s, want {}", got)
			}
			if got := string(keyByName(t, out, "mood").Value); got != `""` {
				t.Errorf("value fallback = %s, want \"\"", got)
			}
			if !out.SummaryFellBack {
				t.Error("summary should fall back with the rest")
			}
			if out.Warning == "" {
				t.Error("degraded run must carry a warning")
			}
		})
	}
}

func TestParseResponse_PartialKeyIsolation(t *testing.T) {
	comp := testComposition(false)
	// tasks valid; metrics has the wrong shape; mood missing entirely.
	raw := `{"tasks":["call dentist"],"metrics":[1,2,3]}`

	out := ParseResponse(comp, raw, nil)

	tasks := keyByName(t, out, "tasks")
	if tasks.FellBack {
		t.Error("valid key tasks must not fall back because siblings failed")
	}
	if string(tasks.Value) != `["call dentist"]` {
		t.Errorf("tasks value = %s", tasks.Value)
	}

	if kr := keyByName(t, out, "metrics"); !kr.FellBack || string(kr.Value) != "{}" {
		t.Errorf("metrics = %s fellBack=%v, want {} fallback", kr.Value, kr.FellBack)
	}
	if kr := keyByName(t, out, "mood"); !kr.FellBack || string(kr.Value) != `""` {
		t.Errorf("mood = %s fellBack=%v, want \"\" fallback", kr.Value, kr.FellBack)
	}

	if !strings.Contains(out.Warning, "metrics") || !strings.Contains(out.Warning, "mood") {
		t.Errorf("Warning = %q, want it to name the defaulted keys", out.Warning)
	}
	if strings.Contains(out.Warning, "tasks") {
		t.Errorf("Warning = %q names the valid key tasks", out.Warning)
	}
}

func TestParseResponse_NullIsNotAValue(t *testing.T) {
	comp := testComposition(false)
	raw := `{"tasks":null,"metrics":{"steps":1},"mood":null}`

	out := ParseResponse(comp, raw, nil)

	if kr := keyByName(t, out, "tasks"); !kr.FellBack {
		t.Error("null array must default")
	}
	if kr := keyByName(t, out, "mood"); !kr.FellBack {
		t.Error("null scalar must default")
	}
	if kr := keyByName(t, out, "metrics"); kr.FellBack {
		t.Error("valid object defaulted alongside null siblings")
	}
}

func TestParseResponse_SchemaFragmentRejectsValue(t *testing.T) {
	comp := testComposition(false)
	binding := comp.Keys["tasks"]
	binding.Schema = json.RawMessage(`{"type":"array","items":{"type":"object","required":["title"],"properties":{"title":{"type":"string"}}}}`)
	comp.Keys["tasks"] = binding

	// Right shape, wrong items: fails the stored fragment.
	out := ParseResponse(comp, `{"tasks":["just a string"],"metrics":{},"mood":"ok"}`, nil)
	if kr := keyByName(t, out, "tasks"); !kr.FellBack {
		t.Error("value violating the schema fragment must default")
	}

	out = ParseResponse(comp, `{"tasks":[{"title":"pay rent"}],"metrics":{},"mood":"ok"}`, nil)
	if kr := keyByName(t, out, "tasks"); kr.FellBack {
		t.Errorf("conforming value defaulted: %s", kr.Value)
	}
}

func TestCleanModelJSON(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want string
	}{
		{"bare json", `{"a":1}`, `{"a":1}`},
		{"fenced", "```\n{\"a\":1}\n```", `{"a":1}`},
		{"fenced with language", "```json\n{\"a\":1}\n```", `{"a":1}`},
		{"surrounding whitespace", "  \n{\"a\":1}\n ", `{"a":1}`},
		{"empty", "", ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := CleanModelJSON(tt.raw); got != tt.want {
				t.Errorf("CleanModelJSON(%q) = %q, want %q", tt.raw, got, tt.want)
			}
		})
	}
}
