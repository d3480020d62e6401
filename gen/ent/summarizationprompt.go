// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/google/uuid"
	"github.com/jide-alade/voicenotes-tracker/gen/ent/summarizationprompt"
)

// SummarizationPrompt is the model entity for the SummarizationPrompt schema.
type SummarizationPrompt struct {
	config `json:"-"`
	// ID of the ent.
	ID uuid.UUID `json:"id,omitempty"`
	// Name holds the value of the "name" field.
	Name string `json:"name,omitempty"`
	// Prompt holds the value of the "prompt" field.
	Prompt string `json:"prompt,omitempty"`
	// IsDefault holds the value of the "is_default" field.
	IsDefault bool `json:"is_default,omitempty"`
	// IsActive holds the value of the "is_active" field.
	IsActive bool `json:"is_active,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// UpdatedAt holds the value of the "updated_at" field.
	UpdatedAt time.Time `json:"updated_at,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the SummarizationPromptQuery when eager-loading is set.
	Edges        SummarizationPromptEdges `json:"edges"`
	selectValues sql.SelectValues
}

// SummarizationPromptEdges holds the relations/edges for other nodes in the graph.
type SummarizationPromptEdges struct {
	// Summarizations holds the value of the summarizations edge.
	Summarizations []*Summarization `json:"summarizations,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [1]bool
}

// SummarizationsOrErr returns the Summarizations value or an error if the edge
// was not loaded in eager-loading.
func (e SummarizationPromptEdges) SummarizationsOrErr() ([]*Summarization, error) {
	if e.loadedTypes[0] {
		return e.Summarizations, nil
	}
	return nil, &NotLoadedError{edge: "summarizations"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*SummarizationPrompt) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case summarizationprompt.FieldIsDefault, summarizationprompt.FieldIsActive:
			values[i] = new(sql.NullBool)
		case summarizationprompt.FieldName, summarizationprompt.FieldPrompt:
			values[i] = new(sql.NullString)
		case summarizationprompt.FieldCreatedAt, summarizationprompt.FieldUpdatedAt:
			values[i] = new(sql.NullTime)
		case summarizationprompt.FieldID:
			values[i] = new(uuid.UUID)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the SummarizationPrompt fields.
func (_m *SummarizationPrompt) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case summarizationprompt.FieldID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value != nil {
				_m.ID = *value
			}
		case summarizationprompt.FieldName:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field name", values[i])
			} else if value.Valid {
				_m.Name = value.String
			}
		case summarizationprompt.FieldPrompt:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field prompt", values[i])
			} else if value.Valid {
				_m.Prompt = value.String
			}
		case summarizationprompt.FieldIsDefault:
			if value, ok := values[i].(*sql.NullBool); !ok {
				return fmt.Errorf("unexpected type %T for field is_default", values[i])
			} else if value.Valid {
				_m.IsDefault = value.Bool
			}
		case summarizationprompt.FieldIsActive:
			if value, ok := values[i].(*sql.NullBool); !ok {
				return fmt.Errorf("unexpected type %T for field is_active", values[i])
			} else if value.Valid {
				_m.IsActive = value.Bool
			}
		case summarizationprompt.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		case summarizationprompt.FieldUpdatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field updated_at", values[i])
			} else if value.Valid {
				_m.UpdatedAt = value.Time
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the SummarizationPrompt.
// This includes values selected through modifiers, order, etc.
func (_m *SummarizationPrompt) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QuerySummarizations queries the "summarizations" edge of the SummarizationPrompt entity.
func (_m *SummarizationPrompt) QuerySummarizations() *SummarizationQuery {
	return NewSummarizationPromptClient(_m.config).QuerySummarizations(_m)
}

// Update returns a builder for updating this SummarizationPrompt.
// Note that you need to call SummarizationPrompt.Unwrap() before calling this method if this SummarizationPrompt
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *SummarizationPrompt) Update() *SummarizationPromptUpdateOne {
	return NewSummarizationPromptClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the SummarizationPrompt entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *SummarizationPrompt) Unwrap() *SummarizationPrompt {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: SummarizationPrompt is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *SummarizationPrompt) String() string {
	var builder strings.Builder
	builder.WriteString("SummarizationPrompt(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("name=")
	builder.WriteString(_m.Name)
	builder.WriteString(", ")
	builder.WriteString("prompt=")
	builder.WriteString(_m.Prompt)
	builder.WriteString(", ")
	builder.WriteString("is_default=")
	builder.WriteString(fmt.Sprintf("%v", _m.IsDefault))
	builder.WriteString(", ")
	builder.WriteString("is_active=")
	builder.WriteString(fmt.Sprintf("%v", _m.IsActive))
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("updated_at=")
	builder.WriteString(_m.UpdatedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// SummarizationPrompts is a parsable slice of SummarizationPrompt.
type SummarizationPrompts []*SummarizationPrompt
