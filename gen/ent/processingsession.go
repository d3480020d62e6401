// Code generated by ent, DO NOT EDIT.

package ent

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/google/uuid"
	"github.com/jide-alade/voicenotes-tracker/gen/ent/processingsession"
	"github.com/jide-alade/voicenotes-tracker/gen/ent/transcriptfile"
)

// ProcessingSession is the model entity for the ProcessingSession schema.
type ProcessingSession struct {
	config `json:"-"`
	// ID of the ent.
	ID uuid.UUID `json:"id,omitempty"`
	// FileID holds the value of the "file_id" field.
	FileID uuid.UUID `json:"file_id,omitempty"`
	// SummarizationPromptID holds the value of the "summarization_prompt_id" field.
	SummarizationPromptID *uuid.UUID `json:"summarization_prompt_id,omitempty"`
	// ExtractionSelection holds the value of the "extraction_selection" field.
	ExtractionSelection []uuid.UUID `json:"extraction_selection,omitempty"`
	// SystemPrompt holds the value of the "system_prompt" field.
	SystemPrompt string `json:"system_prompt,omitempty"`
	// AiResponse holds the value of the "ai_response" field.
	AiResponse *string `json:"ai_response,omitempty"`
	// ParsedResponse holds the value of the "parsed_response" field.
	ParsedResponse json.RawMessage `json:"parsed_response,omitempty"`
	// Status holds the value of the "status" field.
	Status string `json:"status,omitempty"`
	// ErrorMessage holds the value of the "error_message" field.
	ErrorMessage *string `json:"error_message,omitempty"`
	// ProcessingTimeMs holds the value of the "processing_time_ms" field.
	ProcessingTimeMs int64 `json:"processing_time_ms,omitempty"`
	// TokenCount holds the value of the "token_count" field.
	TokenCount *int `json:"token_count,omitempty"`
	// Model holds the value of the "model" field.
	Model string `json:"model,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// CompletedAt holds the value of the "completed_at" field.
	CompletedAt *time.Time `json:"completed_at,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the ProcessingSessionQuery when eager-loading is set.
	Edges        ProcessingSessionEdges `json:"edges"`
	selectValues sql.SelectValues
}

// ProcessingSessionEdges holds the relations/edges for other nodes in the graph.
type ProcessingSessionEdges struct {
	// File holds the value of the file edge.
	File *TranscriptFile `json:"file,omitempty"`
	// Results holds the value of the results edge.
	Results []*ExtractionResult `json:"results,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [2]bool
}

// FileOrErr returns the File value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e ProcessingSessionEdges) FileOrErr() (*TranscriptFile, error) {
	if e.File != nil {
		return e.File, nil
	} else if e.loadedTypes[0] {
		return nil, &NotFoundError{label: transcriptfile.Label}
	}
	return nil, &NotLoadedError{edge: "file"}
}

// ResultsOrErr returns the Results value or an error if the edge
// was not loaded in eager-loading.
func (e ProcessingSessionEdges) ResultsOrErr() ([]*ExtractionResult, error) {
	if e.loadedTypes[1] {
		return e.Results, nil
	}
	return nil, &NotLoadedError{edge: "results"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*ProcessingSession) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case processingsession.FieldSummarizationPromptID:
			values[i] = &sql.NullScanner{S: new(uuid.UUID)}
		case processingsession.FieldExtractionSelection, processingsession.FieldParsedResponse:
			values[i] = new([]byte)
		case processingsession.FieldProcessingTimeMs, processingsession.FieldTokenCount:
			values[i] = new(sql.NullInt64)
		case processingsession.FieldSystemPrompt, processingsession.FieldAiResponse, processingsession.FieldStatus, processingsession.FieldErrorMessage, processingsession.FieldModel:
			values[i] = new(sql.NullString)
		case processingsession.FieldCreatedAt, processingsession.FieldCompletedAt:
			values[i] = new(sql.NullTime)
		case processingsession.FieldID, processingsession.FieldFileID:
			values[i] = new(uuid.UUID)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the ProcessingSession fields.
func (_m *ProcessingSession) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case processingsession.FieldID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value != nil {
				_m.ID = *value
			}
		case processingsession.FieldFileID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field file_id", values[i])
			} else if value != nil {
				_m.FileID = *value
			}
		case processingsession.FieldSummarizationPromptID:
			if value, ok := values[i].(*sql.NullScanner); !ok {
				return fmt.Errorf("unexpected type %T for field summarization_prompt_id", values[i])
			} else if value.Valid {
				_m.SummarizationPromptID = new(uuid.UUID)
				*_m.SummarizationPromptID = *value.S.(*uuid.UUID)
			}
		case processingsession.FieldExtractionSelection:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field extraction_selection", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.ExtractionSelection); err != nil {
					return fmt.Errorf("unmarshal field extraction_selection: %w", err)
				}
			}
		case processingsession.FieldSystemPrompt:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field system_prompt", values[i])
			} else if value.Valid {
				_m.SystemPrompt = value.String
			}
		case processingsession.FieldAiResponse:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field ai_response", values[i])
			} else if value.Valid {
				_m.AiResponse = new(string)
				*_m.AiResponse = value.String
			}
		case processingsession.FieldParsedResponse:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field parsed_response", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.ParsedResponse); err != nil {
					return fmt.Errorf("unmarshal field parsed_response: %w", err)
				}
			}
		case processingsession.FieldStatus:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field status", values[i])
			} else if value.Valid {
				_m.Status = value.String
			}
		case processingsession.FieldErrorMessage:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field error_message", values[i])
			} else if value.Valid {
				_m.ErrorMessage = new(string)
				*_m.ErrorMessage = value.String
			}
		case processingsession.FieldProcessingTimeMs:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field processing_time_ms", values[i])
			} else if value.Valid {
				_m.ProcessingTimeMs = value.Int64
			}
		case processingsession.FieldTokenCount:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field token_count", values[i])
			} else if value.Valid {
				_m.TokenCount = new(int)
				*_m.TokenCount = int(value.Int64)
			}
		case processingsession.FieldModel:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field model", values[i])
			} else if value.Valid {
				_m.Model = value.String
			}
		case processingsession.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		case processingsession.FieldCompletedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field completed_at", values[i])
			} else if value.Valid {
				_m.CompletedAt = new(time.Time)
				*_m.CompletedAt = value.Time
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the ProcessingSession.
// This includes values selected through modifiers, order, etc.
func (_m *ProcessingSession) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryFile queries the "file" edge of the ProcessingSession entity.
func (_m *ProcessingSession) QueryFile() *TranscriptFileQuery {
	return NewProcessingSessionClient(_m.config).QueryFile(_m)
}

// QueryResults queries the "results" edge of the ProcessingSession entity.
func (_m *ProcessingSession) QueryResults() *ExtractionResultQuery {
	return NewProcessingSessionClient(_m.config).QueryResults(_m)
}

// Update returns a builder for updating this ProcessingSession.
// Note that you need to call ProcessingSession.Unwrap() before calling this method if this ProcessingSession
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *ProcessingSession) Update() *ProcessingSessionUpdateOne {
	return NewProcessingSessionClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the ProcessingSession entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *ProcessingSession) Unwrap() *ProcessingSession {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: ProcessingSession is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *ProcessingSession) String() string {
	var builder strings.Builder
	builder.WriteString("ProcessingSession(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("file_id=")
	builder.WriteString(fmt.Sprintf("%v", _m.FileID))
	builder.WriteString(", ")
	if v := _m.SummarizationPromptID; v != nil {
		builder.WriteString("summarization_prompt_id=")
		builder.WriteString(fmt.Sprintf("%v", *v))
	}
	builder.WriteString(", ")
	builder.WriteString("extraction_selection=")
	builder.WriteString(fmt.Sprintf("%v", _m.ExtractionSelection))
	builder.WriteString(", ")
	builder.WriteString("system_prompt=")
	builder.WriteString(_m.SystemPrompt)
	builder.WriteString(", ")
	if v := _m.AiResponse; v != nil {
		builder.WriteString("ai_response=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	builder.WriteString("parsed_response=")
	builder.WriteString(fmt.Sprintf("%v", _m.ParsedResponse))
	builder.WriteString(", ")
	builder.WriteString("status=")
	builder.WriteString(_m.Status)
	builder.WriteString(", ")
	if v := _m.ErrorMessage; v != nil {
		builder.WriteString("error_message=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	builder.WriteString("processing_time_ms=")
	builder.WriteString(fmt.Sprintf("%v", _m.ProcessingTimeMs))
	builder.WriteString(", ")
	if v := _m.TokenCount; v != nil {
		builder.WriteString("token_count=")
		builder.WriteString(fmt.Sprintf("%v", *v))
	}
	builder.WriteString(", ")
	builder.WriteString("model=")
	builder.WriteString(_m.Model)
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	if v := _m.CompletedAt; v != nil {
		builder.WriteString("completed_at=")
		builder.WriteString(v.Format(time.ANSIC))
	}
	builder.WriteByte(')')
	return builder.String()
}

// ProcessingSessions is a parsable slice of ProcessingSession.
type ProcessingSessions []*ProcessingSession
