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
)

// ExtractionDefinition is the model entity for the ExtractionDefinition schema.
type ExtractionDefinition struct {
	config `json:"-"`
	// ID of the ent.
	ID uuid.UUID `json:"id,omitempty"`
	// Name holds the value of the "name" field.
	Name string `json:"name,omitempty"`
	// JSONKey holds the value of the "json_key" field.
	JSONKey string `json:"json_key,omitempty"`
	// JSONSchema holds the value of the "json_schema" field.
	JSONSchema json.RawMessage `json:"json_schema,omitempty"`
	// AiInstructions holds the value of the "ai_instructions" field.
	AiInstructions string `json:"ai_instructions,omitempty"`
	// OutputType holds the value of the "output_type" field.
	OutputType string `json:"output_type,omitempty"`
	// Category holds the value of the "category" field.
	Category string `json:"category,omitempty"`
	// IsActive holds the value of the "is_active" field.
	IsActive bool `json:"is_active,omitempty"`
	// SortOrder holds the value of the "sort_order" field.
	SortOrder int `json:"sort_order,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// UpdatedAt holds the value of the "updated_at" field.
	UpdatedAt time.Time `json:"updated_at,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the ExtractionDefinitionQuery when eager-loading is set.
	Edges        ExtractionDefinitionEdges `json:"edges"`
	selectValues sql.SelectValues
}

// ExtractionDefinitionEdges holds the relations/edges for other nodes in the graph.
type ExtractionDefinitionEdges struct {
	// Results holds the value of the results edge.
	Results []*ExtractionResult `json:"results,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [1]bool
}

// ResultsOrErr returns the Results value or an error if the edge
// was not loaded in eager-loading.
func (e ExtractionDefinitionEdges) ResultsOrErr() ([]*ExtractionResult, error) {
	if e.loadedTypes[0] {
		return e.Results, nil
	}
	return nil, &NotLoadedError{edge: "results"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*ExtractionDefinition) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case extractiondefinition.FieldJSONSchema:
			values[i] = new([]byte)
		case extractiondefinition.FieldIsActive:
			values[i] = new(sql.NullBool)
		case extractiondefinition.FieldSortOrder:
			values[i] = new(sql.NullInt64)
		case extractiondefinition.FieldName, extractiondefinition.FieldJSONKey, extractiondefinition.FieldAiInstructions, extractiondefinition.FieldOutputType, extractiondefinition.FieldCategory:
			values[i] = new(sql.NullString)
		case extractiondefinition.FieldCreatedAt, extractiondefinition.FieldUpdatedAt:
			values[i] = new(sql.NullTime)
		case extractiondefinition.FieldID:
			values[i] = new(uuid.UUID)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the ExtractionDefinition fields.
func (_m *ExtractionDefinition) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case extractiondefinition.FieldID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value != nil {
				_m.ID = *value
			}
		case extractiondefinition.FieldName:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field name", values[i])
			} else if value.Valid {
				_m.Name = value.String
			}
		case extractiondefinition.FieldJSONKey:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field json_key", values[i])
			} else if value.Valid {
				_m.JSONKey = value.String
			}
		case extractiondefinition.FieldJSONSchema:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field json_schema", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.JSONSchema); err != nil {
					return fmt.Errorf("unmarshal field json_schema: %w", err)
				}
			}
		case extractiondefinition.FieldAiInstructions:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field ai_instructions", values[i])
			} else if value.Valid {
				_m.AiInstructions = value.String
			}
		case extractiondefinition.FieldOutputType:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field output_type", values[i])
			} else if value.Valid {
				_m.OutputType = value.String
			}
		case extractiondefinition.FieldCategory:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field category", values[i])
			} else if value.Valid {
				_m.Category = value.String
			}
		case extractiondefinition.FieldIsActive:
			if value, ok := values[i].(*sql.NullBool); !ok {
				return fmt.Errorf("unexpected type %T for field is_active", values[i])
			} else if value.Valid {
				_m.IsActive = value.Bool
			}
		case extractiondefinition.FieldSortOrder:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field sort_order", values[i])
			} else if value.Valid {
				_m.SortOrder = int(value.Int64)
			}
		case extractiondefinition.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		case extractiondefinition.FieldUpdatedAt:
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

// Value returns the ent.Value that was dynamically selected and assigned to the ExtractionDefinition.
// This includes values selected through modifiers, order, etc.
func (_m *ExtractionDefinition) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryResults queries the "results" edge of the ExtractionDefinition entity.
func (_m *ExtractionDefinition) QueryResults() *ExtractionResultQuery {
	return NewExtractionDefinitionClient(_m.config).QueryResults(_m)
}

// Update returns a builder for updating this ExtractionDefinition.
// Note that you need to call ExtractionDefinition.Unwrap() before calling this method if this ExtractionDefinition
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *ExtractionDefinition) Update() *ExtractionDefinitionUpdateOne {
	return NewExtractionDefinitionClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the ExtractionDefinition entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *ExtractionDefinition) Unwrap() *ExtractionDefinition {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: ExtractionDefinition is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *ExtractionDefinition) String() string {
	var builder strings.Builder
	builder.WriteString("ExtractionDefinition(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("name=")
	builder.WriteString(_m.Name)
	builder.WriteString(", ")
	builder.WriteString("json_key=")
	builder.WriteString(_m.JSONKey)
	builder.WriteString(", ")
	builder.WriteString("json_schema=")
	builder.WriteString(fmt.Sprintf("%v", _m.JSONSchema))
	builder.WriteString(", ")
	builder.WriteString("ai_instructions=")
	builder.WriteString(_m.AiInstructions)
	builder.WriteString(", ")
	builder.WriteString("output_type=")
	builder.WriteString(_m.OutputType)
	builder.WriteString(", ")
	builder.WriteString("category=")
	builder.WriteString(_m.Category)
	builder.WriteString(", ")
	builder.WriteString("is_active=")
	builder.WriteString(fmt.Sprintf("%v", _m.IsActive))
	builder.WriteString(", ")
	builder.WriteString("sort_order=")
	builder.WriteString(fmt.Sprintf("%v", _m.SortOrder))
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("updated_at=")
	builder.WriteString(_m.UpdatedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// ExtractionDefinitions is a parsable slice of ExtractionDefinition.
type ExtractionDefinitions []*ExtractionDefinition
