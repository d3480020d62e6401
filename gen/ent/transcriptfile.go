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
	"github.com/jide-alade/voicenotes-tracker/gen/ent/transcriptfile"
)

// TranscriptFile is the model entity for the TranscriptFile schema.
type TranscriptFile struct {
	config `json:"-"`
	// ID of the ent.
	ID uuid.UUID `json:"id,omitempty"`
	// Filename holds the value of the "filename" field.
	Filename string `json:"filename,omitempty"`
	// SourcePath holds the value of the "source_path" field.
	SourcePath string `json:"source_path,omitempty"`
	// TranscriptText holds the value of the "transcript_text" field.
	TranscriptText *string `json:"transcript_text,omitempty"`
	// TranscriptSegments holds the value of the "transcript_segments" field.
	TranscriptSegments json.RawMessage `json:"transcript_segments,omitempty"`
	// Language holds the value of the "language" field.
	Language *string `json:"language,omitempty"`
	// DurationSeconds holds the value of the "duration_seconds" field.
	DurationSeconds *float64 `json:"duration_seconds,omitempty"`
	// UploadedAt holds the value of the "uploaded_at" field.
	UploadedAt time.Time `json:"uploaded_at,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the TranscriptFileQuery when eager-loading is set.
	Edges        TranscriptFileEdges `json:"edges"`
	selectValues sql.SelectValues
}

// TranscriptFileEdges holds the relations/edges for other nodes in the graph.
type TranscriptFileEdges struct {
	// Sessions holds the value of the sessions edge.
	Sessions []*ProcessingSession `json:"sessions,omitempty"`
	// Results holds the value of the results edge.
	Results []*ExtractionResult `json:"results,omitempty"`
	// Summarizations holds the value of the summarizations edge.
	Summarizations []*Summarization `json:"summarizations,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [3]bool
}

// SessionsOrErr returns the Sessions value or an error if the edge
// was not loaded in eager-loading.
func (e TranscriptFileEdges) SessionsOrErr() ([]*ProcessingSession, error) {
	if e.loadedTypes[0] {
		return e.Sessions, nil
	}
	return nil, &NotLoadedError{edge: "sessions"}
}

// ResultsOrErr returns the Results value or an error if the edge
// was not loaded in eager-loading.
func (e TranscriptFileEdges) ResultsOrErr() ([]*ExtractionResult, error) {
	if e.loadedTypes[1] {
		return e.Results, nil
	}
	return nil, &NotLoadedError{edge: "results"}
}

// SummarizationsOrErr returns the Summarizations value or an error if the edge
// was not loaded in eager-loading.
func (e TranscriptFileEdges) SummarizationsOrErr() ([]*Summarization, error) {
	if e.loadedTypes[2] {
		return e.Summarizations, nil
	}
	return nil, &NotLoadedError{edge: "summarizations"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*TranscriptFile) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case transcriptfile.FieldTranscriptSegments:
			values[i] = new([]byte)
		case transcriptfile.FieldDurationSeconds:
			values[i] = new(sql.NullFloat64)
		case transcriptfile.FieldFilename, transcriptfile.FieldSourcePath, transcriptfile.FieldTranscriptText, transcriptfile.FieldLanguage:
			values[i] = new(sql.NullString)
		case transcriptfile.FieldUploadedAt:
			values[i] = new(sql.NullTime)
		case transcriptfile.FieldID:
			values[i] = new(uuid.UUID)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the TranscriptFile fields.
func (_m *TranscriptFile) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case transcriptfile.FieldID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value != nil {
				_m.ID = *value
			}
		case transcriptfile.FieldFilename:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field filename", values[i])
			} else if value.Valid {
				_m.Filename = value.String
			}
		case transcriptfile.FieldSourcePath:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field source_path", values[i])
			} else if value.Valid {
				_m.SourcePath = value.String
			}
		case transcriptfile.FieldTranscriptText:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field transcript_text", values[i])
			} else if value.Valid {
				_m.TranscriptText = new(string)
				*_m.TranscriptText = value.String
			}
		case transcriptfile.FieldTranscriptSegments:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field transcript_segments", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.TranscriptSegments); err != nil {
					return fmt.Errorf("unmarshal field transcript_segments: %w", err)
				}
			}
		case transcriptfile.FieldLanguage:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field language", values[i])
			} else if value.Valid {
				_m.Language = new(string)
				*_m.Language = value.String
			}
		case transcriptfile.FieldDurationSeconds:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field duration_seconds", values[i])
			} else if value.Valid {
				_m.DurationSeconds = new(float64)
				*_m.DurationSeconds = value.Float64
			}
		case transcriptfile.FieldUploadedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field uploaded_at", values[i])
			} else if value.Valid {
				_m.UploadedAt = value.Time
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the TranscriptFile.
// This includes values selected through modifiers, order, etc.
func (_m *TranscriptFile) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QuerySessions queries the "sessions" edge of the TranscriptFile entity.
func (_m *TranscriptFile) QuerySessions() *ProcessingSessionQuery {
	return NewTranscriptFileClient(_m.config).QuerySessions(_m)
}

// QueryResults queries the "results" edge of the TranscriptFile entity.
func (_m *TranscriptFile) QueryResults() *ExtractionResultQuery {
	return NewTranscriptFileClient(_m.config).QueryResults(_m)
}

// QuerySummarizations queries the "summarizations" edge of the TranscriptFile entity.
func (_m *TranscriptFile) QuerySummarizations() *SummarizationQuery {
	return NewTranscriptFileClient(_m.config).QuerySummarizations(_m)
}

// Update returns a builder for updating this TranscriptFile.
// Note that you need to call TranscriptFile.Unwrap() before calling this method if this TranscriptFile
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *TranscriptFile) Update() *TranscriptFileUpdateOne {
	return NewTranscriptFileClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the TranscriptFile entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *TranscriptFile) Unwrap() *TranscriptFile {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: TranscriptFile is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *TranscriptFile) String() string {
	var builder strings.Builder
	builder.WriteString("TranscriptFile(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("filename=")
	builder.WriteString(_m.Filename)
	builder.WriteString(", ")
	builder.WriteString("source_path=")
	builder.WriteString(_m.SourcePath)
	builder.WriteString(", ")
	if v := _m.TranscriptText; v != nil {
		builder.WriteString("transcript_text=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	builder.WriteString("transcript_segments=")
	builder.WriteString(fmt.Sprintf("%v", _m.TranscriptSegments))
	builder.WriteString(", ")
	if v := _m.Language; v != nil {
		builder.WriteString("language=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	if v := _m.DurationSeconds; v != nil {
		builder.WriteString("duration_seconds=")
		builder.WriteString(fmt.Sprintf("%v", *v))
	}
	builder.WriteString(", ")
	builder.WriteString("uploaded_at=")
	builder.WriteString(_m.UploadedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// TranscriptFiles is a parsable slice of TranscriptFile.
type TranscriptFiles []*TranscriptFile
