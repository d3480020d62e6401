package llm

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"strings"

	"github.com/jide-alade/voicenotes-tracker/constants"
)

// KeyResult is one validated-or-substituted payload for one selected key.
type KeyResult struct {
	Key      string
	Binding  KeyBinding
	Value    json.RawMessage
	FellBack bool
}

// ParseOutcome collects the per-key results of one response. A bad key never
// invalidates its siblings; each key either carries the model's value or the
// canonical empty value for its output type.
type ParseOutcome struct {
	Keys            []KeyResult
	Summary         string
	SummaryFellBack bool
	// Warning annotates degraded runs; empty when every key validated.
	Warning string
}

// ParseResponse parses and validates the raw backend response against the
// composition's extraction map. Malformed or missing content is the designed
// fallback path, not an error: the outcome always contains one typed result
// per selected key.
func ParseResponse(comp *Composition, raw string, logger *slog.Logger) *ParseOutcome {
	if logger == nil {
		logger = slog.Default()
	}

	clean := CleanModelJSON(raw)

	var parsed map[string]json.RawMessage
	if clean == "" {
		logger.Warn("llm.parse.empty_response", "keys", len(comp.KeyOrder))
		return fallbackOutcome(comp, "empty response from model; all keys defaulted")
	}
	if err := json.Unmarshal([]byte(clean), &parsed); err != nil {
		logger.Warn("llm.parse.invalid_json", "error", err, "raw_bytes", len(raw))
		return fallbackOutcome(comp, "response was not valid JSON; all keys defaulted")
	}

	out := &ParseOutcome{Keys: make([]KeyResult, 0, len(comp.KeyOrder))}
	var defaulted []string

	for _, key := range comp.KeyOrder {
		binding := comp.Keys[key]
		value, ok := validateKey(parsed[key], binding)
		if !ok {
			defaulted = append(defaulted, key)
			value = json.RawMessage(constants.EmptyJSONValue(binding.OutputType))
		}
		out.Keys = append(out.Keys, KeyResult{
			Key:      key,
			Binding:  binding,
			Value:    value,
			FellBack: !ok,
		})
	}

	if comp.SummarySelected {
		if s, ok := decodeString(parsed[constants.SummaryKey]); ok {
			out.Summary = s
		} else {
			out.SummaryFellBack = true
			defaulted = append(defaulted, constants.SummaryKey)
		}
	}

	if len(defaulted) > 0 {
		out.Warning = fmt.Sprintf("%d key(s) missing or malformed, defaulted: %s",
			len(defaulted), strings.Join(defaulted, ", "))
		logger.Warn("llm.parse.keys_defaulted", "keys", defaulted)
	}
	return out
}

func fallbackOutcome(comp *Composition, warning string) *ParseOutcome {
	out := &ParseOutcome{
		Keys:    make([]KeyResult, 0, len(comp.KeyOrder)),
		Warning: warning,
	}
	for _, key := range comp.KeyOrder {
		binding := comp.Keys[key]
		out.Keys = append(out.Keys, KeyResult{
			Key:      key,
			Binding:  binding,
			Value:    json.RawMessage(constants.EmptyJSONValue(binding.OutputType)),
			FellBack: true,
		})
	}
	if comp.SummarySelected {
		out.SummaryFellBack = true
	}
	return out
}

// validateKey checks presence, the declared output shape, and the stored
// schema fragment. Any miss means the caller substitutes the empty value.
func validateKey(value json.RawMessage, binding KeyBinding) (json.RawMessage, bool) {
	if len(value) == 0 {
		return nil, false
	}
	if !shapeMatches(value, binding.OutputType) {
		return nil, false
	}
	if len(binding.Schema) > 0 {
		if err := ValidateJSONAgainstRawSchema(binding.Schema, value); err != nil {
			return nil, false
		}
	}
	return value, true
}

// shapeMatches checks the first JSON token against the declared output type:
// array -> '[', object -> '{', value -> any non-null scalar.
func shapeMatches(value json.RawMessage, t constants.OutputType) bool {
	s := strings.TrimSpace(string(value))
	if s == "" || s == "null" {
		return false
	}
	switch t {
	case constants.OutputArray:
		return s[0] == '['
	case constants.OutputObject:
		return s[0] == '{'
	default:
		return s[0] != '[' && s[0] != '{'
	}
}

func decodeString(value json.RawMessage) (string, bool) {
	if len(value) == 0 {
		return "", false
	}
	var s string
	if err := json.Unmarshal(value, &s); err != nil {
		return "", false
	}
	return s, true
}

// CleanModelJSON strips Markdown code fences and surrounding noise that
// models emit despite instructions to return bare JSON.
func CleanModelJSON(raw string) string {
	s := strings.TrimSpace(raw)
	if !strings.HasPrefix(s, "```") {
		return s
	}
	// Drop the first line (``` or ```json).
	if idx := strings.Index(s, "\n"); idx != -1 {
		s = s[idx+1:]
	} else {
		return s
	}
	s = strings.TrimSpace(s)
	if idx := strings.LastIndex(s, "```"); idx != -1 {
		s = s[:idx]
	}
	return strings.TrimSpace(s)
}
