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
	"github.com/jide-alade/voicenotes-tracker/gen/ent/extractiondefinition"
	"github.com/jide-alade/voicenotes-tracker/gen/ent/extractionresult"
	"github.com/jide-alade/voicenotes-tracker/gen/ent/processingsession"
	"github.com/jide-alade/voicenotes-tracker/gen/ent/transcriptfile"
)

// ExtractionResult is the model entity for the ExtractionResult schema.
type ExtractionResult struct {
	config `json:"-"`
	// ID of the ent.
	ID uuid.UUID `json:"id,omitempty"`
	// FileID holds the value of the "file_id" field.
	FileID uuid.UUID `json:"file_id,omitempty"`
	// SessionID holds the value of the "session_id" field.
	SessionID uuid.UUID `json:"session_id,omitempty"`
	// DefinitionID holds the value of the "definition_id" field.
	DefinitionID uuid.UUID `json:"definition_id,omitempty"`
	// ExtractionType holds the value of the "extraction_type" field.
	ExtractionType string `json:"extraction_type,omitempty"`
	// Content holds the value of the "content" field.
	Content json.RawMessage `json:"content,omitempty"`
	// Confidence holds the value of the "confidence" field.
	Confidence *float32 `json:"confidence,omitempty"`
	// ProcessingTimeMs holds the value of the "processing_time_ms" field.
	ProcessingTimeMs *int64 `json:"processing_time_ms,omitempty"`
	// Model holds the value of the "model" field.
	Model string `json:"model,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the ExtractionResultQuery when eager-loading is set.
	Edges        ExtractionResultEdges `json:"edges"`
	selectValues sql.SelectValues
}

// ExtractionResultEdges holds the relations/edges for other nodes in the graph.
type ExtractionResultEdges struct {
	// File holds the value of the file edge.
	File *TranscriptFile `json:"file,omitempty"`
	// Session holds the value of the session edge.
	Session *ProcessingSession `json:"session,omitempty"`
	// Definition holds the value of the definition edge.
	Definition *ExtractionDefinition `json:"definition,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [3]bool
}

// FileOrErr returns the File value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e ExtractionResultEdges) FileOrErr() (*TranscriptFile, error) {
	if e.File != nil {
		return e.File, nil
	} else if e.loadedTypes[0] {
		return nil, &NotFoundError{label: transcriptfile.Label}
	}
	return nil, &NotLoadedError{edge: "file"}
}

// SessionOrErr returns the Session value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e ExtractionResultEdges) SessionOrErr() (*ProcessingSession, error) {
	if e.Session != nil {
		return e.Session, nil
	} else if e.loadedTypes[1] {
		return nil, &NotFoundError{label: processingsession.Label}
	}
	return nil, &NotLoadedError{edge: "session"}
}

// DefinitionOrErr returns the Definition value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e ExtractionResultEdges) DefinitionOrErr() (*ExtractionDefinition, error) {
	if e.Definition != nil {
		return e.Definition, nil
	} else if e.loadedTypes[2] {
		return nil, &NotFoundError{label: extractiondefinition.Label}
	}
	return nil, &NotLoadedError{edge: "definition"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*ExtractionResult) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case extractionresult.FieldContent:
			values[i] = new([]byte)
		case extractionresult.FieldConfidence:
			values[i] = new(sql.NullFloat64)
		case extractionresult.FieldProcessingTimeMs:
			values[i] = new(sql.NullInt64)
		case extractionresult.FieldExtractionType, extractionresult.FieldModel:
			values[i] = new(sql.NullString)
		case extractionresult.FieldCreatedAt:
			values[i] = new(sql.NullTime)
		case extractionresult.FieldID, extractionresult.FieldFileID, extractionresult.FieldSessionID, extractionresult.FieldDefinitionID:
			values[i] = new(uuid.UUID)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the ExtractionResult fields.
func (_m *ExtractionResult) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case extractionresult.FieldID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value != nil {
				_m.ID = *value
			}
		case extractionresult.FieldFileID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field file_id", values[i])
			} else if value != nil {
				_m.FileID = *value
			}
		case extractionresult.FieldSessionID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field session_id", values[i])
			} else if value != nil {
				_m.SessionID = *value
			}
		case extractionresult.FieldDefinitionID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field definition_id", values[i])
			} else if value != nil {
				_m.DefinitionID = *value
			}
		case extractionresult.FieldExtractionType:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field extraction_type", values[i])
			} else if value.Valid {
				_m.ExtractionType = value.String
			}
		case extractionresult.FieldContent:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field content", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.Content); err != nil {
					return fmt.Errorf("unmarshal field content: %w", err)
				}
			}
		case extractionresult.FieldConfidence:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field confidence", values[i])
			} else if value.Valid {
				_m.Confidence = new(float32)
				*_m.Confidence = float32(value.Float64)
			}
		case extractionresult.FieldProcessingTimeMs:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field processing_time_ms", values[i])
			} else if value.Valid {
				_m.ProcessingTimeMs = new(int64)
				*_m.ProcessingTimeMs = value.Int64
			}
		case extractionresult.FieldModel:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field model", values[i])
			} else if value.Valid {
				_m.Model = value.String
			}
		case extractionresult.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the ExtractionResult.
// This includes values selected through modifiers, order, etc.
func (_m *ExtractionResult) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryFile queries the "file" edge of the ExtractionResult entity.
func (_m *ExtractionResult) QueryFile() *TranscriptFileQuery {
	return NewExtractionResultClient(_m.config).QueryFile(_m)
}

// QuerySession queries the "session" edge of the ExtractionResult entity.
func (_m *ExtractionResult) QuerySession() *ProcessingSessionQuery {
	return NewExtractionResultClient(_m.config).QuerySession(_m)
}

// QueryDefinition queries the "definition" edge of the ExtractionResult entity.
func (_m *ExtractionResult) QueryDefinition() *ExtractionDefinitionQuery {
	return NewExtractionResultClient(_m.config).QueryDefinition(_m)
}

// Update returns a builder for updating this ExtractionResult.
// Note that you need to call ExtractionResult.Unwrap() before calling this method if this ExtractionResult
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *ExtractionResult) Update() *ExtractionResultUpdateOne {
	return NewExtractionResultClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the ExtractionResult entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *ExtractionResult) Unwrap() *ExtractionResult {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: ExtractionResult is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *ExtractionResult) String() string {
	var builder strings.Builder
	builder.WriteString("ExtractionResult(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("file_id=")
	builder.WriteString(fmt.Sprintf("%v", _m.FileID))
	builder.WriteString(", ")
	builder.WriteString("session_id=")
	builder.WriteString(fmt.Sprintf("%v", _m.SessionID))
	builder.WriteString(", ")
	builder.WriteString("definition_id=")
	builder.WriteString(fmt.Sprintf("%v", _m.DefinitionID))
	builder.WriteString(", ")
	builder.WriteString("extraction_type=")
	builder.WriteString(_m.ExtractionType)
	builder.WriteString(", ")
	builder.WriteString("content=")
	builder.WriteString(fmt.Sprintf("%v", _m.Content))
	builder.WriteString(", ")
	if v := _m.Confidence; v != nil {
		builder.WriteString("confidence=")
		builder.WriteString(fmt.Sprintf("%v", *v))
	}
	builder.WriteString(", ")
	if v := _m.ProcessingTimeMs; v != nil {
		builder.WriteString("processing_time_ms=")
		builder.WriteString(fmt.Sprintf("%v", *v))
	}
	builder.WriteString(", ")
	builder.WriteString("model=")
	builder.WriteString(_m.Model)
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// ExtractionResults is a parsable slice of ExtractionResult.
type ExtractionResults []*ExtractionResult
