// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/google/uuid"
	"github.com/jide-alade/voicenotes-tracker/gen/ent/extractiondefinition"
	"github.com/jide-alade/voicenotes-tracker/gen/ent/extractionresult"
	"github.com/jide-alade/voicenotes-tracker/gen/ent/predicate"
	"github.com/jide-alade/voicenotes-tracker/gen/ent/processingsession"
	"github.com/jide-alade/voicenotes-tracker/gen/ent/summarization"
	"github.com/jide-alade/voicenotes-tracker/gen/ent/summarizationprompt"
	"github.com/jide-alade/voicenotes-tracker/gen/ent/transcriptfile"
)

const (
	// Operation types.
	OpCreate    = ent.OpCreate
	OpDelete    = ent.OpDelete
	OpDeleteOne = ent.OpDeleteOne
	OpUpdate    = ent.OpUpdate
	OpUpdateOne = ent.OpUpdateOne

	// Node types.
	TypeExtractionDefinition = "ExtractionDefinition"
	TypeExtractionResult     = "ExtractionResult"
	TypeProcessingSession    = "ProcessingSession"
	TypeSummarization        = "Summarization"
	TypeSummarizationPrompt  = "SummarizationPrompt"
	TypeTranscriptFile       = "TranscriptFile"
)

// ExtractionDefinitionMutation represents an operation that mutates the ExtractionDefinition nodes in the graph.
type ExtractionDefinitionMutation struct {
	config
	op                Op
	typ               string
	id                *uuid.UUID
	name              *string
	json_key          *string
	json_schema       *json.RawMessage
	appendjson_schema json.RawMessage
	ai_instructions   *string
	output_type       *string
	category          *string
	is_active         *bool
	sort_order        *int
	addsort_order     *int
	created_at        *time.Time
	updated_at        *time.Time
	clearedFields     map[string]struct{}
	results           map[uuid.UUID]struct{}
	removedresults    map[uuid.UUID]struct{}
	clearedresults    bool
	done              bool
	oldValue          func(context.Context) (*ExtractionDefinition, error)
	predicates        []predicate.ExtractionDefinition
}

var _ ent.Mutation = (*ExtractionDefinitionMutation)(nil)

// extractiondefinitionOption allows management of the mutation configuration using functional options.
type extractiondefinitionOption func(*ExtractionDefinitionMutation)

// newExtractionDefinitionMutation creates new mutation for the ExtractionDefinition entity.
func newExtractionDefinitionMutation(c config, op Op, opts ...extractiondefinitionOption) *ExtractionDefinitionMutation {
	m := &ExtractionDefinitionMutation{
		config:        c,
		op:            op,
		typ:           TypeExtractionDefinition,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withExtractionDefinitionID sets the ID field of the mutation.
func withExtractionDefinitionID(id uuid.UUID) extractiondefinitionOption {
	return func(m *ExtractionDefinitionMutation) {
		var (
			err   error
			once  sync.Once
			value *ExtractionDefinition
		)
		m.oldValue = func(ctx context.Context) (*ExtractionDefinition, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().ExtractionDefinition.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withExtractionDefinition sets the old ExtractionDefinition of the mutation.
func withExtractionDefinition(node *ExtractionDefinition) extractiondefinitionOption {
	return func(m *ExtractionDefinitionMutation) {
		m.oldValue = func(context.Context) (*ExtractionDefinition, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m ExtractionDefinitionMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m ExtractionDefinitionMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of ExtractionDefinition entities.
func (m *ExtractionDefinitionMutation) SetID(id uuid.UUID) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *ExtractionDefinitionMutation) ID() (id uuid.UUID, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *ExtractionDefinitionMutation) IDs(ctx context.Context) ([]uuid.UUID, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []uuid.UUID{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().ExtractionDefinition.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetName sets the "name" field.
func (m *ExtractionDefinitionMutation) SetName(s string) {
	m.name = &s
}

// Name returns the value of the "name" field in the mutation.
func (m *ExtractionDefinitionMutation) Name() (r string, exists bool) {
	v := m.name
	if v == nil {
		return
	}
	return *v, true
}

// OldName returns the old "name" field's value of the ExtractionDefinition entity.
// If the ExtractionDefinition object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ExtractionDefinitionMutation) OldName(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldName is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldName requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldName: %w", err)
	}
	return oldValue.Name, nil
}

// ResetName resets all changes to the "name" field.
func (m *ExtractionDefinitionMutation) ResetName() {
	m.name = nil
}

// SetJSONKey sets the "json_key" field.
func (m *ExtractionDefinitionMutation) SetJSONKey(s string) {
	m.json_key = &s
}

// JSONKey returns the value of the "json_key" field in the mutation.
func (m *ExtractionDefinitionMutation) JSONKey() (r string, exists bool) {
	v := m.json_key
	if v == nil {
		return
	}
	return *v, true
}

// OldJSONKey returns the old "json_key" field's value of the ExtractionDefinition entity.
// If the ExtractionDefinition object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ExtractionDefinitionMutation) OldJSONKey(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldJSONKey is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldJSONKey requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldJSONKey: %w", err)
	}
	return oldValue.JSONKey, nil
}

// ResetJSONKey resets all changes to the "json_key" field.
func (m *ExtractionDefinitionMutation) ResetJSONKey() {
	m.json_key = nil
}

// SetJSONSchema sets the "json_schema" field.
func (m *ExtractionDefinitionMutation) SetJSONSchema(jm json.RawMessage) {
	m.json_schema = &jm
	m.appendjson_schema = nil
}

// JSONSchema returns the value of the "json_schema" field in the mutation.
func (m *ExtractionDefinitionMutation) JSONSchema() (r json.RawMessage, exists bool) {
	v := m.json_schema
	if v == nil {
		return
	}
	return *v, true
}

// OldJSONSchema returns the old "json_schema" field's value of the ExtractionDefinition entity.
// If the ExtractionDefinition object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ExtractionDefinitionMutation) OldJSONSchema(ctx context.Context) (v json.RawMessage, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldJSONSchema is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldJSONSchema requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldJSONSchema: %w", err)
	}
	return oldValue.JSONSchema, nil
}

// AppendJSONSchema adds jm to the "json_schema" field.
func (m *ExtractionDefinitionMutation) AppendJSONSchema(jm json.RawMessage) {
	m.appendjson_schema = append(m.appendjson_schema, jm...)
}

// AppendedJSONSchema returns the list of values that were appended to the "json_schema" field in this mutation.
func (m *ExtractionDefinitionMutation) AppendedJSONSchema() (json.RawMessage, bool) {
	if len(m.appendjson_schema) == 0 {
		return nil, false
	}
	return m.appendjson_schema, true
}

// ClearJSONSchema clears the value of the "json_schema" field.
func (m *ExtractionDefinitionMutation) ClearJSONSchema() {
	m.json_schema = nil
	m.appendjson_schema = nil
	m.clearedFields[extractiondefinition.FieldJSONSchema] = struct{}{}
}

// JSONSchemaCleared returns if the "json_schema" field was cleared in this mutation.
func (m *ExtractionDefinitionMutation) JSONSchemaCleared() bool {
	_, ok := m.clearedFields[extractiondefinition.FieldJSONSchema]
	return ok
}

// ResetJSONSchema resets all changes to the "json_schema" field.
func (m *ExtractionDefinitionMutation) ResetJSONSchema() {
	m.json_schema = nil
	m.appendjson_schema = nil
	delete(m.clearedFields, extractiondefinition.FieldJSONSchema)
}

// SetAiInstructions sets the "ai_instructions" field.
func (m *ExtractionDefinitionMutation) SetAiInstructions(s string) {
	m.ai_instructions = &s
}

// AiInstructions returns the value of the "ai_instructions" field in the mutation.
func (m *ExtractionDefinitionMutation) AiInstructions() (r string, exists bool) {
	v := m.ai_instructions
	if v == nil {
		return
	}
	return *v, true
}

// OldAiInstructions returns the old "ai_instructions" field's value of the ExtractionDefinition entity.
// If the ExtractionDefinition object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ExtractionDefinitionMutation) OldAiInstructions(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAiInstructions is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAiInstructions requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAiInstructions: %w", err)
	}
	return oldValue.AiInstructions, nil
}

// ResetAiInstructions resets all changes to the "ai_instructions" field.
func (m *ExtractionDefinitionMutation) ResetAiInstructions() {
	m.ai_instructions = nil
}

// SetOutputType sets the "output_type" field.
func (m *ExtractionDefinitionMutation) SetOutputType(s string) {
	m.output_type = &s
}

// OutputType returns the value of the "output_type" field in the mutation.
func (m *ExtractionDefinitionMutation) OutputType() (r string, exists bool) {
	v := m.output_type
	if v == nil {
		return
	}
	return *v, true
}

// OldOutputType returns the old "output_type" field's value of the ExtractionDefinition entity.
// If the ExtractionDefinition object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ExtractionDefinitionMutation) OldOutputType(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldOutputType is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldOutputType requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldOutputType: %w", err)
	}
	return oldValue.OutputType, nil
}

// ResetOutputType resets all changes to the "output_type" field.
func (m *ExtractionDefinitionMutation) ResetOutputType() {
	m.output_type = nil
}

// SetCategory sets the "category" field.
func (m *ExtractionDefinitionMutation) SetCategory(s string) {
	m.category = &s
}

// Category returns the value of the "category" field in the mutation.
func (m *ExtractionDefinitionMutation) Category() (r string, exists bool) {
	v := m.category
	if v == nil {
		return
	}
	return *v, true
}

// OldCategory returns the old "category" field's value of the ExtractionDefinition entity.
// If the ExtractionDefinition object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ExtractionDefinitionMutation) OldCategory(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCategory is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCategory requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCategory: %w", err)
	}
	return oldValue.Category, nil
}

// ResetCategory resets all changes to the "category" field.
func (m *ExtractionDefinitionMutation) ResetCategory() {
	m.category = nil
}

// SetIsActive sets the "is_active" field.
func (m *ExtractionDefinitionMutation) SetIsActive(b bool) {
	m.is_active = &b
}

// IsActive returns the value of the "is_active" field in the mutation.
func (m *ExtractionDefinitionMutation) IsActive() (r bool, exists bool) {
	v := m.is_active
	if v == nil {
		return
	}
	return *v, true
}

// OldIsActive returns the old "is_active" field's value of the ExtractionDefinition entity.
// If the ExtractionDefinition object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ExtractionDefinitionMutation) OldIsActive(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldIsActive is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldIsActive requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldIsActive: %w", err)
	}
	return oldValue.IsActive, nil
}

// ResetIsActive resets all changes to the "is_active" field.
func (m *ExtractionDefinitionMutation) ResetIsActive() {
	m.is_active = nil
}

// SetSortOrder sets the "sort_order" field.
func (m *ExtractionDefinitionMutation) SetSortOrder(i int) {
	m.sort_order = &i
	m.addsort_order = nil
}

// SortOrder returns the value of the "sort_order" field in the mutation.
func (m *ExtractionDefinitionMutation) SortOrder() (r int, exists bool) {
	v := m.sort_order
	if v == nil {
		return
	}
	return *v, true
}

// OldSortOrder returns the old "sort_order" field's value of the ExtractionDefinition entity.
// If the ExtractionDefinition object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ExtractionDefinitionMutation) OldSortOrder(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSortOrder is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSortOrder requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSortOrder: %w", err)
	}
	return oldValue.SortOrder, nil
}

// AddSortOrder adds i to the "sort_order" field.
func (m *ExtractionDefinitionMutation) AddSortOrder(i int) {
	if m.addsort_order != nil {
		*m.addsort_order += i
	} else {
		m.addsort_order = &i
	}
}

// AddedSortOrder returns the value that was added to the "sort_order" field in this mutation.
func (m *ExtractionDefinitionMutation) AddedSortOrder() (r int, exists bool) {
	v := m.addsort_order
	if v == nil {
		return
	}
	return *v, true
}

// ResetSortOrder resets all changes to the "sort_order" field.
func (m *ExtractionDefinitionMutation) ResetSortOrder() {
	m.sort_order = nil
	m.addsort_order = nil
}

// SetCreatedAt sets the "created_at" field.
func (m *ExtractionDefinitionMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *ExtractionDefinitionMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the ExtractionDefinition entity.
// If the ExtractionDefinition object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ExtractionDefinitionMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *ExtractionDefinitionMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *ExtractionDefinitionMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *ExtractionDefinitionMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the ExtractionDefinition entity.
// If the ExtractionDefinition object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ExtractionDefinitionMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedAt: %w", err)
	}
	return oldValue.UpdatedAt, nil
}

// ResetUpdatedAt resets all changes to the "updated_at" field.
func (m *ExtractionDefinitionMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// AddResultIDs adds the "results" edge to the ExtractionResult entity by ids.
func (m *ExtractionDefinitionMutation) AddResultIDs(ids ...uuid.UUID) {
	if m.results == nil {
		m.results = make(map[uuid.UUID]struct{})
	}
	for i := range ids {
		m.results[ids[i]] = struct{}{}
	}
}

// ClearResults clears the "results" edge to the ExtractionResult entity.
func (m *ExtractionDefinitionMutation) ClearResults() {
	m.clearedresults = true
}

// ResultsCleared reports if the "results" edge to the ExtractionResult entity was cleared.
func (m *ExtractionDefinitionMutation) ResultsCleared() bool {
	return m.clearedresults
}

// RemoveResultIDs removes the "results" edge to the ExtractionResult entity by IDs.
func (m *ExtractionDefinitionMutation) RemoveResultIDs(ids ...uuid.UUID) {
	if m.removedresults == nil {
		m.removedresults = make(map[uuid.UUID]struct{})
	}
	for i := range ids {
		delete(m.results, ids[i])
		m.removedresults[ids[i]] = struct{}{}
	}
}

// RemovedResults returns the removed IDs of the "results" edge to the ExtractionResult entity.
func (m *ExtractionDefinitionMutation) RemovedResultsIDs() (ids []uuid.UUID) {
	for id := range m.removedresults {
		ids = append(ids, id)
	}
	return
}

// ResultsIDs returns the "results" edge IDs in the mutation.
func (m *ExtractionDefinitionMutation) ResultsIDs() (ids []uuid.UUID) {
	for id := range m.results {
		ids = append(ids, id)
	}
	return
}

// ResetResults resets all changes to the "results" edge.
func (m *ExtractionDefinitionMutation) ResetResults() {
	m.results = nil
	m.clearedresults = false
	m.removedresults = nil
}

// Where appends a list predicates to the ExtractionDefinitionMutation builder.
func (m *ExtractionDefinitionMutation) Where(ps ...predicate.ExtractionDefinition) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the ExtractionDefinitionMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *ExtractionDefinitionMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.ExtractionDefinition, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *ExtractionDefinitionMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *ExtractionDefinitionMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (ExtractionDefinition).
func (m *ExtractionDefinitionMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *ExtractionDefinitionMutation) Fields() []string {
	fields := make([]string, 0, 10)
	if m.name != nil {
		fields = append(fields, extractiondefinition.FieldName)
	}
	if m.json_key != nil {
		fields = append(fields, extractiondefinition.FieldJSONKey)
	}
	if m.json_schema != nil {
		fields = append(fields, extractiondefinition.FieldJSONSchema)
	}
	if m.ai_instructions != nil {
		fields = append(fields, extractiondefinition.FieldAiInstructions)
	}
	if m.output_type != nil {
		fields = append(fields, extractiondefinition.FieldOutputType)
	}
	if m.category != nil {
		fields = append(fields, extractiondefinition.FieldCategory)
	}
	if m.is_active != nil {
		fields = append(fields, extractiondefinition.FieldIsActive)
	}
	if m.sort_order != nil {
		fields = append(fields, extractiondefinition.FieldSortOrder)
	}
	if m.created_at != nil {
		fields = append(fields, extractiondefinition.FieldCreatedAt)
	}
	if m.updated_at != nil {
		fields = append(fields, extractiondefinition.FieldUpdatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *ExtractionDefinitionMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case extractiondefinition.FieldName:
		return m.Name()
	case extractiondefinition.FieldJSONKey:
		return m.JSONKey()
	case extractiondefinition.FieldJSONSchema:
		return m.JSONSchema()
	case extractiondefinition.FieldAiInstructions:
		return m.AiInstructions()
	case extractiondefinition.FieldOutputType:
		return m.OutputType()
	case extractiondefinition.FieldCategory:
		return m.Category()
	case extractiondefinition.FieldIsActive:
		return m.IsActive()
	case extractiondefinition.FieldSortOrder:
		return m.SortOrder()
	case extractiondefinition.FieldCreatedAt:
		return m.CreatedAt()
	case extractiondefinition.FieldUpdatedAt:
		return m.UpdatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *ExtractionDefinitionMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case extractiondefinition.FieldName:
		return m.OldName(ctx)
	case extractiondefinition.FieldJSONKey:
		return m.OldJSONKey(ctx)
	case extractiondefinition.FieldJSONSchema:
		return m.OldJSONSchema(ctx)
	case extractiondefinition.FieldAiInstructions:
		return m.OldAiInstructions(ctx)
	case extractiondefinition.FieldOutputType:
		return m.OldOutputType(ctx)
	case extractiondefinition.FieldCategory:
		return m.OldCategory(ctx)
	case extractiondefinition.FieldIsActive:
		return m.OldIsActive(ctx)
	case extractiondefinition.FieldSortOrder:
		return m.OldSortOrder(ctx)
	case extractiondefinition.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case extractiondefinition.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown ExtractionDefinition field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ExtractionDefinitionMutation) SetField(name string, value ent.Value) error {
	switch name {
	case extractiondefinition.FieldName:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetName(v)
		return nil
	case extractiondefinition.FieldJSONKey:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetJSONKey(v)
		return nil
	case extractiondefinition.FieldJSONSchema:
		v, ok := value.(json.RawMessage)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetJSONSchema(v)
		return nil
	case extractiondefinition.FieldAiInstructions:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAiInstructions(v)
		return nil
	case extractiondefinition.FieldOutputType:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetOutputType(v)
		return nil
	case extractiondefinition.FieldCategory:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCategory(v)
		return nil
	case extractiondefinition.FieldIsActive:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetIsActive(v)
		return nil
	case extractiondefinition.FieldSortOrder:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSortOrder(v)
		return nil
	case extractiondefinition.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case extractiondefinition.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown ExtractionDefinition field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *ExtractionDefinitionMutation) AddedFields() []string {
	var fields []string
	if m.addsort_order != nil {
		fields = append(fields, extractiondefinition.FieldSortOrder)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *ExtractionDefinitionMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case extractiondefinition.FieldSortOrder:
		return m.AddedSortOrder()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ExtractionDefinitionMutation) AddField(name string, value ent.Value) error {
	switch name {
	case extractiondefinition.FieldSortOrder:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddSortOrder(v)
		return nil
	}
	return fmt.Errorf("unknown ExtractionDefinition numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *ExtractionDefinitionMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(extractiondefinition.FieldJSONSchema) {
		fields = append(fields, extractiondefinition.FieldJSONSchema)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *ExtractionDefinitionMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *ExtractionDefinitionMutation) ClearField(name string) error {
	switch name {
	case extractiondefinition.FieldJSONSchema:
		m.ClearJSONSchema()
		return nil
	}
	return fmt.Errorf("unknown ExtractionDefinition nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *ExtractionDefinitionMutation) ResetField(name string) error {
	switch name {
	case extractiondefinition.FieldName:
		m.ResetName()
		return nil
	case extractiondefinition.FieldJSONKey:
		m.ResetJSONKey()
		return nil
	case extractiondefinition.FieldJSONSchema:
		m.ResetJSONSchema()
		return nil
	case extractiondefinition.FieldAiInstructions:
		m.ResetAiInstructions()
		return nil
	case extractiondefinition.FieldOutputType:
		m.ResetOutputType()
		return nil
	case extractiondefinition.FieldCategory:
		m.ResetCategory()
		return nil
	case extractiondefinition.FieldIsActive:
		m.ResetIsActive()
		return nil
	case extractiondefinition.FieldSortOrder:
		m.ResetSortOrder()
		return nil
	case extractiondefinition.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case extractiondefinition.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	}
	return fmt.Errorf("unknown ExtractionDefinition field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *ExtractionDefinitionMutation) AddedEdges() []string {
	edges := make([]string, 0, 1)
	if m.results != nil {
		edges = append(edges, extractiondefinition.EdgeResults)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *ExtractionDefinitionMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case extractiondefinition.EdgeResults:
		ids := make([]ent.Value, 0, len(m.results))
		for id := range m.results {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *ExtractionDefinitionMutation) RemovedEdges() []string {
	edges := make([]string, 0, 1)
	if m.removedresults != nil {
		edges = append(edges, extractiondefinition.EdgeResults)
	}
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *ExtractionDefinitionMutation) RemovedIDs(name string) []ent.Value {
	switch name {
	case extractiondefinition.EdgeResults:
		ids := make([]ent.Value, 0, len(m.removedresults))
		for id := range m.removedresults {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *ExtractionDefinitionMutation) ClearedEdges() []string {
	edges := make([]string, 0, 1)
	if m.clearedresults {
		edges = append(edges, extractiondefinition.EdgeResults)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *ExtractionDefinitionMutation) EdgeCleared(name string) bool {
	switch name {
	case extractiondefinition.EdgeResults:
		return m.clearedresults
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *ExtractionDefinitionMutation) ClearEdge(name string) error {
	switch name {
	}
	return fmt.Errorf("unknown ExtractionDefinition unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *ExtractionDefinitionMutation) ResetEdge(name string) error {
	switch name {
	case extractiondefinition.EdgeResults:
		m.ResetResults()
		return nil
	}
	return fmt.Errorf("unknown ExtractionDefinition edge %s", name)
}

// ExtractionResultMutation represents an operation that mutates the ExtractionResult nodes in the graph.
type ExtractionResultMutation struct {
	config
	op                    Op
	typ                   string
	id                    *uuid.UUID
	extraction_type       *string
	content               *json.RawMessage
	appendcontent         json.RawMessage
	confidence            *float32
	addconfidence         *float32
	processing_time_ms    *int64
	addprocessing_time_ms *int64
	model                 *string
	created_at            *time.Time
	clearedFields         map[string]struct{}
	file                  *uuid.UUID
	clearedfile           bool
	session               *uuid.UUID
	clearedsession        bool
	definition            *uuid.UUID
	cleareddefinition     bool
	done                  bool
	oldValue              func(context.Context) (*ExtractionResult, error)
	predicates            []predicate.ExtractionResult
}

var _ ent.Mutation = (*ExtractionResultMutation)(nil)

// extractionresultOption allows management of the mutation configuration using functional options.
type extractionresultOption func(*ExtractionResultMutation)

// newExtractionResultMutation creates new mutation for the ExtractionResult entity.
func newExtractionResultMutation(c config, op Op, opts ...extractionresultOption) *ExtractionResultMutation {
	m := &ExtractionResultMutation{
		config:        c,
		op:            op,
		typ:           TypeExtractionResult,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withExtractionResultID sets the ID field of the mutation.
func withExtractionResultID(id uuid.UUID) extractionresultOption {
	return func(m *ExtractionResultMutation) {
		var (
			err   error
			once  sync.Once
			value *ExtractionResult
		)
		m.oldValue = func(ctx context.Context) (*ExtractionResult, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().ExtractionResult.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withExtractionResult sets the old ExtractionResult of the mutation.
func withExtractionResult(node *ExtractionResult) extractionresultOption {
	return func(m *ExtractionResultMutation) {
		m.oldValue = func(context.Context) (*ExtractionResult, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m ExtractionResultMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m ExtractionResultMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of ExtractionResult entities.
func (m *ExtractionResultMutation) SetID(id uuid.UUID) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *ExtractionResultMutation) ID() (id uuid.UUID, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *ExtractionResultMutation) IDs(ctx context.Context) ([]uuid.UUID, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []uuid.UUID{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().ExtractionResult.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetFileID sets the "file_id" field.
func (m *ExtractionResultMutation) SetFileID(u uuid.UUID) {
	m.file = &u
}

// FileID returns the value of the "file_id" field in the mutation.
func (m *ExtractionResultMutation) FileID() (r uuid.UUID, exists bool) {
	v := m.file
	if v == nil {
		return
	}
	return *v, true
}

// OldFileID returns the old "file_id" field's value of the ExtractionResult entity.
// If the ExtractionResult object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ExtractionResultMutation) OldFileID(ctx context.Context) (v uuid.UUID, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldFileID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldFileID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldFileID: %w", err)
	}
	return oldValue.FileID, nil
}

// ResetFileID resets all changes to the "file_id" field.
func (m *ExtractionResultMutation) ResetFileID() {
	m.file = nil
}

// SetSessionID sets the "session_id" field.
func (m *ExtractionResultMutation) SetSessionID(u uuid.UUID) {
	m.session = &u
}

// SessionID returns the value of the "session_id" field in the mutation.
func (m *ExtractionResultMutation) SessionID() (r uuid.UUID, exists bool) {
	v := m.session
	if v == nil {
		return
	}
	return *v, true
}

// OldSessionID returns the old "session_id" field's value of the ExtractionResult entity.
// If the ExtractionResult object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ExtractionResultMutation) OldSessionID(ctx context.Context) (v uuid.UUID, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSessionID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSessionID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSessionID: %w", err)
	}
	return oldValue.SessionID, nil
}

// ResetSessionID resets all changes to the "session_id" field.
func (m *ExtractionResultMutation) ResetSessionID() {
	m.session = nil
}

// SetDefinitionID sets the "definition_id" field.
func (m *ExtractionResultMutation) SetDefinitionID(u uuid.UUID) {
	m.definition = &u
}

// DefinitionID returns the value of the "definition_id" field in the mutation.
func (m *ExtractionResultMutation) DefinitionID() (r uuid.UUID, exists bool) {
	v := m.definition
	if v == nil {
		return
	}
	return *v, true
}

// OldDefinitionID returns the old "definition_id" field's value of the ExtractionResult entity.
// If the ExtractionResult object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ExtractionResultMutation) OldDefinitionID(ctx context.Context) (v uuid.UUID, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDefinitionID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDefinitionID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDefinitionID: %w", err)
	}
	return oldValue.DefinitionID, nil
}

// ResetDefinitionID resets all changes to the "definition_id" field.
func (m *ExtractionResultMutation) ResetDefinitionID() {
	m.definition = nil
}

// SetExtractionType sets the "extraction_type" field.
func (m *ExtractionResultMutation) SetExtractionType(s string) {
	m.extraction_type = &s
}

// ExtractionType returns the value of the "extraction_type" field in the mutation.
func (m *ExtractionResultMutation) ExtractionType() (r string, exists bool) {
	v := m.extraction_type
	if v == nil {
		return
	}
	return *v, true
}

// OldExtractionType returns the old "extraction_type" field's value of the ExtractionResult entity.
// If the ExtractionResult object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ExtractionResultMutation) OldExtractionType(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldExtractionType is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldExtractionType requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldExtractionType: %w", err)
	}
	return oldValue.ExtractionType, nil
}

// ResetExtractionType resets all changes to the "extraction_type" field.
func (m *ExtractionResultMutation) ResetExtractionType() {
	m.extraction_type = nil
}

// SetContent sets the "content" field.
func (m *ExtractionResultMutation) SetContent(jm json.RawMessage) {
	m.content = &jm
	m.appendcontent = nil
}

// Content returns the value of the "content" field in the mutation.
func (m *ExtractionResultMutation) Content() (r json.RawMessage, exists bool) {
	v := m.content
	if v == nil {
		return
	}
	return *v, true
}

// OldContent returns the old "content" field's value of the ExtractionResult entity.
// If the ExtractionResult object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ExtractionResultMutation) OldContent(ctx context.Context) (v json.RawMessage, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldContent is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldContent requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldContent: %w", err)
	}
	return oldValue.Content, nil
}

// AppendContent adds jm to the "content" field.
func (m *ExtractionResultMutation) AppendContent(jm json.RawMessage) {
	m.appendcontent = append(m.appendcontent, jm...)
}

// AppendedContent returns the list of values that were appended to the "content" field in this mutation.
func (m *ExtractionResultMutation) AppendedContent() (json.RawMessage, bool) {
	if len(m.appendcontent) == 0 {
		return nil, false
	}
	return m.appendcontent, true
}

// ResetContent resets all changes to the "content" field.
func (m *ExtractionResultMutation) ResetContent() {
	m.content = nil
	m.appendcontent = nil
}

// SetConfidence sets the "confidence" field.
func (m *ExtractionResultMutation) SetConfidence(f float32) {
	m.confidence = &f
	m.addconfidence = nil
}

// Confidence returns the value of the "confidence" field in the mutation.
func (m *ExtractionResultMutation) Confidence() (r float32, exists bool) {
	v := m.confidence
	if v == nil {
		return
	}
	return *v, true
}

// OldConfidence returns the old "confidence" field's value of the ExtractionResult entity.
// If the ExtractionResult object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ExtractionResultMutation) OldConfidence(ctx context.Context) (v *float32, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldConfidence is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldConfidence requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldConfidence: %w", err)
	}
	return oldValue.Confidence, nil
}

// AddConfidence adds f to the "confidence" field.
func (m *ExtractionResultMutation) AddConfidence(f float32) {
	if m.addconfidence != nil {
		*m.addconfidence += f
	} else {
		m.addconfidence = &f
	}
}

// AddedConfidence returns the value that was added to the "confidence" field in this mutation.
func (m *ExtractionResultMutation) AddedConfidence() (r float32, exists bool) {
	v := m.addconfidence
	if v == nil {
		return
	}
	return *v, true
}

// ClearConfidence clears the value of the "confidence" field.
func (m *ExtractionResultMutation) ClearConfidence() {
	m.confidence = nil
	m.addconfidence = nil
	m.clearedFields[extractionresult.FieldConfidence] = struct{}{}
}

// ConfidenceCleared returns if the "confidence" field was cleared in this mutation.
func (m *ExtractionResultMutation) ConfidenceCleared() bool {
	_, ok := m.clearedFields[extractionresult.FieldConfidence]
	return ok
}

// ResetConfidence resets all changes to the "confidence" field.
func (m *ExtractionResultMutation) ResetConfidence() {
	m.confidence = nil
	m.addconfidence = nil
	delete(m.clearedFields, extractionresult.FieldConfidence)
}

// SetProcessingTimeMs sets the "processing_time_ms" field.
func (m *ExtractionResultMutation) SetProcessingTimeMs(i int64) {
	m.processing_time_ms = &i
	m.addprocessing_time_ms = nil
}

// ProcessingTimeMs returns the value of the "processing_time_ms" field in the mutation.
func (m *ExtractionResultMutation) ProcessingTimeMs() (r int64, exists bool) {
	v := m.processing_time_ms
	if v == nil {
		return
	}
	return *v, true
}

// OldProcessingTimeMs returns the old "processing_time_ms" field's value of the ExtractionResult entity.
// If the ExtractionResult object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ExtractionResultMutation) OldProcessingTimeMs(ctx context.Context) (v *int64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldProcessingTimeMs is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldProcessingTimeMs requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldProcessingTimeMs: %w", err)
	}
	return oldValue.ProcessingTimeMs, nil
}

// AddProcessingTimeMs adds i to the "processing_time_ms" field.
func (m *ExtractionResultMutation) AddProcessingTimeMs(i int64) {
	if m.addprocessing_time_ms != nil {
		*m.addprocessing_time_ms += i
	} else {
		m.addprocessing_time_ms = &i
	}
}

// AddedProcessingTimeMs returns the value that was added to the "processing_time_ms" field in this mutation.
func (m *ExtractionResultMutation) AddedProcessingTimeMs() (r int64, exists bool) {
	v := m.addprocessing_time_ms
	if v == nil {
		return
	}
	return *v, true
}

// ClearProcessingTimeMs clears the value of the "processing_time_ms" field.
func (m *ExtractionResultMutation) ClearProcessingTimeMs() {
	m.processing_time_ms = nil
	m.addprocessing_time_ms = nil
	m.clearedFields[extractionresult.FieldProcessingTimeMs] = struct{}{}
}

// ProcessingTimeMsCleared returns if the "processing_time_ms" field was cleared in this mutation.
func (m *ExtractionResultMutation) ProcessingTimeMsCleared() bool {
	_, ok := m.clearedFields[extractionresult.FieldProcessingTimeMs]
	return ok
}

// ResetProcessingTimeMs resets all changes to the "processing_time_ms" field.
func (m *ExtractionResultMutation) ResetProcessingTimeMs() {
	m.processing_time_ms = nil
	m.addprocessing_time_ms = nil
	delete(m.clearedFields, extractionresult.FieldProcessingTimeMs)
}

// SetModel sets the "model" field.
func (m *ExtractionResultMutation) SetModel(s string) {
	m.model = &s
}

// Model returns the value of the "model" field in the mutation.
func (m *ExtractionResultMutation) Model() (r string, exists bool) {
	v := m.model
	if v == nil {
		return
	}
	return *v, true
}

// OldModel returns the old "model" field's value of the ExtractionResult entity.
// If the ExtractionResult object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ExtractionResultMutation) OldModel(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldModel is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldModel requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldModel: %w", err)
	}
	return oldValue.Model, nil
}

// ResetModel resets all changes to the "model" field.
func (m *ExtractionResultMutation) ResetModel() {
	m.model = nil
}

// SetCreatedAt sets the "created_at" field.
func (m *ExtractionResultMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *ExtractionResultMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the ExtractionResult entity.
// If the ExtractionResult object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ExtractionResultMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *ExtractionResultMutation) ResetCreatedAt() {
	m.created_at = nil
}

// ClearFile clears the "file" edge to the TranscriptFile entity.
func (m *ExtractionResultMutation) ClearFile() {
	m.clearedfile = true
	m.clearedFields[extractionresult.FieldFileID] = struct{}{}
}

// FileCleared reports if the "file" edge to the TranscriptFile entity was cleared.
func (m *ExtractionResultMutation) FileCleared() bool {
	return m.clearedfile
}

// FileIDs returns the "file" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// FileID instead. It exists only for internal usage by the builders.
func (m *ExtractionResultMutation) FileIDs() (ids []uuid.UUID) {
	if id := m.file; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetFile resets all changes to the "file" edge.
func (m *ExtractionResultMutation) ResetFile() {
	m.file = nil
	m.clearedfile = false
}

// ClearSession clears the "session" edge to the ProcessingSession entity.
func (m *ExtractionResultMutation) ClearSession() {
	m.clearedsession = true
	m.clearedFields[extractionresult.FieldSessionID] = struct{}{}
}

// SessionCleared reports if the "session" edge to the ProcessingSession entity was cleared.
func (m *ExtractionResultMutation) SessionCleared() bool {
	return m.clearedsession
}

// SessionIDs returns the "session" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// SessionID instead. It exists only for internal usage by the builders.
func (m *ExtractionResultMutation) SessionIDs() (ids []uuid.UUID) {
	if id := m.session; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetSession resets all changes to the "session" edge.
func (m *ExtractionResultMutation) ResetSession() {
	m.session = nil
	m.clearedsession = false
}

// ClearDefinition clears the "definition" edge to the ExtractionDefinition entity.
func (m *ExtractionResultMutation) ClearDefinition() {
	m.cleareddefinition = true
	m.clearedFields[extractionresult.FieldDefinitionID] = struct{}{}
}

// DefinitionCleared reports if the "definition" edge to the ExtractionDefinition entity was cleared.
func (m *ExtractionResultMutation) DefinitionCleared() bool {
	return m.cleareddefinition
}

// DefinitionIDs returns the "definition" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// DefinitionID instead. It exists only for internal usage by the builders.
func (m *ExtractionResultMutation) DefinitionIDs() (ids []uuid.UUID) {
	if id := m.definition; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetDefinition resets all changes to the "definition" edge.
func (m *ExtractionResultMutation) ResetDefinition() {
	m.definition = nil
	m.cleareddefinition = false
}

// Where appends a list predicates to the ExtractionResultMutation builder.
func (m *ExtractionResultMutation) Where(ps ...predicate.ExtractionResult) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the ExtractionResultMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *ExtractionResultMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.ExtractionResult, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *ExtractionResultMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *ExtractionResultMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (ExtractionResult).
func (m *ExtractionResultMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *ExtractionResultMutation) Fields() []string {
	fields := make([]string, 0, 9)
	if m.file != nil {
		fields = append(fields, extractionresult.FieldFileID)
	}
	if m.session != nil {
		fields = append(fields, extractionresult.FieldSessionID)
	}
	if m.definition != nil {
		fields = append(fields, extractionresult.FieldDefinitionID)
	}
	if m.extraction_type != nil {
		fields = append(fields, extractionresult.FieldExtractionType)
	}
	if m.content != nil {
		fields = append(fields, extractionresult.FieldContent)
	}
	if m.confidence != nil {
		fields = append(fields, extractionresult.FieldConfidence)
	}
	if m.processing_time_ms != nil {
		fields = append(fields, extractionresult.FieldProcessingTimeMs)
	}
	if m.model != nil {
		fields = append(fields, extractionresult.FieldModel)
	}
	if m.created_at != nil {
		fields = append(fields, extractionresult.FieldCreatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *ExtractionResultMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case extractionresult.FieldFileID:
		return m.FileID()
	case extractionresult.FieldSessionID:
		return m.SessionID()
	case extractionresult.FieldDefinitionID:
		return m.DefinitionID()
	case extractionresult.FieldExtractionType:
		return m.ExtractionType()
	case extractionresult.FieldContent:
		return m.Content()
	case extractionresult.FieldConfidence:
		return m.Confidence()
	case extractionresult.FieldProcessingTimeMs:
		return m.ProcessingTimeMs()
	case extractionresult.FieldModel:
		return m.Model()
	case extractionresult.FieldCreatedAt:
		return m.CreatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *ExtractionResultMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case extractionresult.FieldFileID:
		return m.OldFileID(ctx)
	case extractionresult.FieldSessionID:
		return m.OldSessionID(ctx)
	case extractionresult.FieldDefinitionID:
		return m.OldDefinitionID(ctx)
	case extractionresult.FieldExtractionType:
		return m.OldExtractionType(ctx)
	case extractionresult.FieldContent:
		return m.OldContent(ctx)
	case extractionresult.FieldConfidence:
		return m.OldConfidence(ctx)
	case extractionresult.FieldProcessingTimeMs:
		return m.OldProcessingTimeMs(ctx)
	case extractionresult.FieldModel:
		return m.OldModel(ctx)
	case extractionresult.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown ExtractionResult field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ExtractionResultMutation) SetField(name string, value ent.Value) error {
	switch name {
	case extractionresult.FieldFileID:
		v, ok := value.(uuid.UUID)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetFileID(v)
		return nil
	case extractionresult.FieldSessionID:
		v, ok := value.(uuid.UUID)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSessionID(v)
		return nil
	case extractionresult.FieldDefinitionID:
		v, ok := value.(uuid.UUID)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDefinitionID(v)
		return nil
	case extractionresult.FieldExtractionType:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetExtractionType(v)
		return nil
	case extractionresult.FieldContent:
		v, ok := value.(json.RawMessage)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetContent(v)
		return nil
	case extractionresult.FieldConfidence:
		v, ok := value.(float32)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetConfidence(v)
		return nil
	case extractionresult.FieldProcessingTimeMs:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetProcessingTimeMs(v)
		return nil
	case extractionresult.FieldModel:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetModel(v)
		return nil
	case extractionresult.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown ExtractionResult field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *ExtractionResultMutation) AddedFields() []string {
	var fields []string
	if m.addconfidence != nil {
		fields = append(fields, extractionresult.FieldConfidence)
	}
	if m.addprocessing_time_ms != nil {
		fields = append(fields, extractionresult.FieldProcessingTimeMs)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *ExtractionResultMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case extractionresult.FieldConfidence:
		return m.AddedConfidence()
	case extractionresult.FieldProcessingTimeMs:
		return m.AddedProcessingTimeMs()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ExtractionResultMutation) AddField(name string, value ent.Value) error {
	switch name {
	case extractionresult.FieldConfidence:
		v, ok := value.(float32)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddConfidence(v)
		return nil
	case extractionresult.FieldProcessingTimeMs:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddProcessingTimeMs(v)
		return nil
	}
	return fmt.Errorf("unknown ExtractionResult numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *ExtractionResultMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(extractionresult.FieldConfidence) {
		fields = append(fields, extractionresult.FieldConfidence)
	}
	if m.FieldCleared(extractionresult.FieldProcessingTimeMs) {
		fields = append(fields, extractionresult.FieldProcessingTimeMs)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *ExtractionResultMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *ExtractionResultMutation) ClearField(name string) error {
	switch name {
	case extractionresult.FieldConfidence:
		m.ClearConfidence()
		return nil
	case extractionresult.FieldProcessingTimeMs:
		m.ClearProcessingTimeMs()
		return nil
	}
	return fmt.Errorf("unknown ExtractionResult nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *ExtractionResultMutation) ResetField(name string) error {
	switch name {
	case extractionresult.FieldFileID:
		m.ResetFileID()
		return nil
	case extractionresult.FieldSessionID:
		m.ResetSessionID()
		return nil
	case extractionresult.FieldDefinitionID:
		m.ResetDefinitionID()
		return nil
	case extractionresult.FieldExtractionType:
		m.ResetExtractionType()
		return nil
	case extractionresult.FieldContent:
		m.ResetContent()
		return nil
	case extractionresult.FieldConfidence:
		m.ResetConfidence()
		return nil
	case extractionresult.FieldProcessingTimeMs:
		m.ResetProcessingTimeMs()
		return nil
	case extractionresult.FieldModel:
		m.ResetModel()
		return nil
	case extractionresult.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	}
	return fmt.Errorf("unknown ExtractionResult field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *ExtractionResultMutation) AddedEdges() []string {
	edges := make([]string, 0, 3)
	if m.file != nil {
		edges = append(edges, extractionresult.EdgeFile)
	}
	if m.session != nil {
		edges = append(edges, extractionresult.EdgeSession)
	}
	if m.definition != nil {
		edges = append(edges, extractionresult.EdgeDefinition)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *ExtractionResultMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case extractionresult.EdgeFile:
		if id := m.file; id != nil {
			return []ent.Value{*id}
		}
	case extractionresult.EdgeSession:
		if id := m.session; id != nil {
			return []ent.Value{*id}
		}
	case extractionresult.EdgeDefinition:
		if id := m.definition; id != nil {
			return []ent.Value{*id}
		}
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *ExtractionResultMutation) RemovedEdges() []string {
	edges := make([]string, 0, 3)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *ExtractionResultMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *ExtractionResultMutation) ClearedEdges() []string {
	edges := make([]string, 0, 3)
	if m.clearedfile {
		edges = append(edges, extractionresult.EdgeFile)
	}
	if m.clearedsession {
		edges = append(edges, extractionresult.EdgeSession)
	}
	if m.cleareddefinition {
		edges = append(edges, extractionresult.EdgeDefinition)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *ExtractionResultMutation) EdgeCleared(name string) bool {
	switch name {
	case extractionresult.EdgeFile:
		return m.clearedfile
	case extractionresult.EdgeSession:
		return m.clearedsession
	case extractionresult.EdgeDefinition:
		return m.cleareddefinition
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *ExtractionResultMutation) ClearEdge(name string) error {
	switch name {
	case extractionresult.EdgeFile:
		m.ClearFile()
		return nil
	case extractionresult.EdgeSession:
		m.ClearSession()
		return nil
	case extractionresult.EdgeDefinition:
		m.ClearDefinition()
		return nil
	}
	return fmt.Errorf("unknown ExtractionResult unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *ExtractionResultMutation) ResetEdge(name string) error {
	switch name {
	case extractionresult.EdgeFile:
		m.ResetFile()
		return nil
	case extractionresult.EdgeSession:
		m.ResetSession()
		return nil
	case extractionresult.EdgeDefinition:
		m.ResetDefinition()
		return nil
	}
	return fmt.Errorf("unknown ExtractionResult edge %s", name)
}

// ProcessingSessionMutation represents an operation that mutates the ProcessingSession nodes in the graph.
type ProcessingSessionMutation struct {
	config
	op                         Op
	typ                        string
	id                         *uuid.UUID
	summarization_prompt_id    *uuid.UUID
	extraction_selection       *[]uuid.UUID
	appendextraction_selection []uuid.UUID
	system_prompt              *string
	ai_response                *string
	parsed_response            *json.RawMessage
	appendparsed_response      json.RawMessage
	status                     *string
	error_message              *string
	processing_time_ms         *int64
	addprocessing_time_ms      *int64
	token_count                *int
	addtoken_count             *int
	model                      *string
	created_at                 *time.Time
	completed_at               *time.Time
	clearedFields              map[string]struct{}
	file                       *uuid.UUID
	clearedfile                bool
	results                    map[uuid.UUID]struct{}
	removedresults             map[uuid.UUID]struct{}
	clearedresults             bool
	done                       bool
	oldValue                   func(context.Context) (*ProcessingSession, error)
	predicates                 []predicate.ProcessingSession
}

var _ ent.Mutation = (*ProcessingSessionMutation)(nil)

// processingsessionOption allows management of the mutation configuration using functional options.
type processingsessionOption func(*ProcessingSessionMutation)

// newProcessingSessionMutation creates new mutation for the ProcessingSession entity.
func newProcessingSessionMutation(c config, op Op, opts ...processingsessionOption) *ProcessingSessionMutation {
	m := &ProcessingSessionMutation{
		config:        c,
		op:            op,
		typ:           TypeProcessingSession,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withProcessingSessionID sets the ID field of the mutation.
func withProcessingSessionID(id uuid.UUID) processingsessionOption {
	return func(m *ProcessingSessionMutation) {
		var (
			err   error
			once  sync.Once
			value *ProcessingSession
		)
		m.oldValue = func(ctx context.Context) (*ProcessingSession, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().ProcessingSession.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withProcessingSession sets the old ProcessingSession of the mutation.
func withProcessingSession(node *ProcessingSession) processingsessionOption {
	return func(m *ProcessingSessionMutation) {
		m.oldValue = func(context.Context) (*ProcessingSession, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m ProcessingSessionMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m ProcessingSessionMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of ProcessingSession entities.
func (m *ProcessingSessionMutation) SetID(id uuid.UUID) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *ProcessingSessionMutation) ID() (id uuid.UUID, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *ProcessingSessionMutation) IDs(ctx context.Context) ([]uuid.UUID, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []uuid.UUID{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().ProcessingSession.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetFileID sets the "file_id" field.
func (m *ProcessingSessionMutation) SetFileID(u uuid.UUID) {
	m.file = &u
}

// FileID returns the value of the "file_id" field in the mutation.
func (m *ProcessingSessionMutation) FileID() (r uuid.UUID, exists bool) {
	v := m.file
	if v == nil {
		return
	}
	return *v, true
}

// OldFileID returns the old "file_id" field's value of the ProcessingSession entity.
// If the ProcessingSession object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ProcessingSessionMutation) OldFileID(ctx context.Context) (v uuid.UUID, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldFileID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldFileID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldFileID: %w", err)
	}
	return oldValue.FileID, nil
}

// ResetFileID resets all changes to the "file_id" field.
func (m *ProcessingSessionMutation) ResetFileID() {
	m.file = nil
}

// SetSummarizationPromptID sets the "summarization_prompt_id" field.
func (m *ProcessingSessionMutation) SetSummarizationPromptID(u uuid.UUID) {
	m.summarization_prompt_id = &u
}

// SummarizationPromptID returns the value of the "summarization_prompt_id" field in the mutation.
func (m *ProcessingSessionMutation) SummarizationPromptID() (r uuid.UUID, exists bool) {
	v := m.summarization_prompt_id
	if v == nil {
		return
	}
	return *v, true
}

// OldSummarizationPromptID returns the old "summarization_prompt_id" field's value of the ProcessingSession entity.
// If the ProcessingSession object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ProcessingSessionMutation) OldSummarizationPromptID(ctx context.Context) (v *uuid.UUID, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSummarizationPromptID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSummarizationPromptID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSummarizationPromptID: %w", err)
	}
	return oldValue.SummarizationPromptID, nil
}

// ClearSummarizationPromptID clears the value of the "summarization_prompt_id" field.
func (m *ProcessingSessionMutation) ClearSummarizationPromptID() {
	m.summarization_prompt_id = nil
	m.clearedFields[processingsession.FieldSummarizationPromptID] = struct{}{}
}

// SummarizationPromptIDCleared returns if the "summarization_prompt_id" field was cleared in this mutation.
func (m *ProcessingSessionMutation) SummarizationPromptIDCleared() bool {
	_, ok := m.clearedFields[processingsession.FieldSummarizationPromptID]
	return ok
}

// ResetSummarizationPromptID resets all changes to the "summarization_prompt_id" field.
func (m *ProcessingSessionMutation) ResetSummarizationPromptID() {
	m.summarization_prompt_id = nil
	delete(m.clearedFields, processingsession.FieldSummarizationPromptID)
}

// SetExtractionSelection sets the "extraction_selection" field.
func (m *ProcessingSessionMutation) SetExtractionSelection(u []uuid.UUID) {
	m.extraction_selection = &u
	m.appendextraction_selection = nil
}

// ExtractionSelection returns the value of the "extraction_selection" field in the mutation.
func (m *ProcessingSessionMutation) ExtractionSelection() (r []uuid.UUID, exists bool) {
	v := m.extraction_selection
	if v == nil {
		return
	}
	return *v, true
}

// OldExtractionSelection returns the old "extraction_selection" field's value of the ProcessingSession entity.
// If the ProcessingSession object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ProcessingSessionMutation) OldExtractionSelection(ctx context.Context) (v []uuid.UUID, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldExtractionSelection is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldExtractionSelection requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldExtractionSelection: %w", err)
	}
	return oldValue.ExtractionSelection, nil
}

// AppendExtractionSelection adds u to the "extraction_selection" field.
func (m *ProcessingSessionMutation) AppendExtractionSelection(u []uuid.UUID) {
	m.appendextraction_selection = append(m.appendextraction_selection, u...)
}

// AppendedExtractionSelection returns the list of values that were appended to the "extraction_selection" field in this mutation.
func (m *ProcessingSessionMutation) AppendedExtractionSelection() ([]uuid.UUID, bool) {
	if len(m.appendextraction_selection) == 0 {
		return nil, false
	}
	return m.appendextraction_selection, true
}

// ResetExtractionSelection resets all changes to the "extraction_selection" field.
func (m *ProcessingSessionMutation) ResetExtractionSelection() {
	m.extraction_selection = nil
	m.appendextraction_selection = nil
}

// SetSystemPrompt sets the "system_prompt" field.
func (m *ProcessingSessionMutation) SetSystemPrompt(s string) {
	m.system_prompt = &s
}

// SystemPrompt returns the value of the "system_prompt" field in the mutation.
func (m *ProcessingSessionMutation) SystemPrompt() (r string, exists bool) {
	v := m.system_prompt
	if v == nil {
		return
	}
	return *v, true
}

// OldSystemPrompt returns the old "system_prompt" field's value of the ProcessingSession entity.
// If the ProcessingSession object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ProcessingSessionMutation) OldSystemPrompt(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSystemPrompt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSystemPrompt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSystemPrompt: %w", err)
	}
	return oldValue.SystemPrompt, nil
}

// ResetSystemPrompt resets all changes to the "system_prompt" field.
func (m *ProcessingSessionMutation) ResetSystemPrompt() {
	m.system_prompt = nil
}

// SetAiResponse sets the "ai_response" field.
func (m *ProcessingSessionMutation) SetAiResponse(s string) {
	m.ai_response = &s
}

// AiResponse returns the value of the "ai_response" field in the mutation.
func (m *ProcessingSessionMutation) AiResponse() (r string, exists bool) {
	v := m.ai_response
	if v == nil {
		return
	}
	return *v, true
}

// OldAiResponse returns the old "ai_response" field's value of the ProcessingSession entity.
// If the ProcessingSession object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ProcessingSessionMutation) OldAiResponse(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAiResponse is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAiResponse requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAiResponse: %w", err)
	}
	return oldValue.AiResponse, nil
}

// ClearAiResponse clears the value of the "ai_response" field.
func (m *ProcessingSessionMutation) ClearAiResponse() {
	m.ai_response = nil
	m.clearedFields[processingsession.FieldAiResponse] = struct{}{}
}

// AiResponseCleared returns if the "ai_response" field was cleared in this mutation.
func (m *ProcessingSessionMutation) AiResponseCleared() bool {
	_, ok := m.clearedFields[processingsession.FieldAiResponse]
	return ok
}

// ResetAiResponse resets all changes to the "ai_response" field.
func (m *ProcessingSessionMutation) ResetAiResponse() {
	m.ai_response = nil
	delete(m.clearedFields, processingsession.FieldAiResponse)
}

// SetParsedResponse sets the "parsed_response" field.
func (m *ProcessingSessionMutation) SetParsedResponse(jm json.RawMessage) {
	m.parsed_response = &jm
	m.appendparsed_response = nil
}

// ParsedResponse returns the value of the "parsed_response" field in the mutation.
func (m *ProcessingSessionMutation) ParsedResponse() (r json.RawMessage, exists bool) {
	v := m.parsed_response
	if v == nil {
		return
	}
	return *v, true
}

// OldParsedResponse returns the old "parsed_response" field's value of the ProcessingSession entity.
// If the ProcessingSession object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ProcessingSessionMutation) OldParsedResponse(ctx context.Context) (v json.RawMessage, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldParsedResponse is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldParsedResponse requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldParsedResponse: %w", err)
	}
	return oldValue.ParsedResponse, nil
}

// AppendParsedResponse adds jm to the "parsed_response" field.
func (m *ProcessingSessionMutation) AppendParsedResponse(jm json.RawMessage) {
	m.appendparsed_response = append(m.appendparsed_response, jm...)
}

// AppendedParsedResponse returns the list of values that were appended to the "parsed_response" field in this mutation.
func (m *ProcessingSessionMutation) AppendedParsedResponse() (json.RawMessage, bool) {
	if len(m.appendparsed_response) == 0 {
		return nil, false
	}
	return m.appendparsed_response, true
}

// ClearParsedResponse clears the value of the "parsed_response" field.
func (m *ProcessingSessionMutation) ClearParsedResponse() {
	m.parsed_response = nil
	m.appendparsed_response = nil
	m.clearedFields[processingsession.FieldParsedResponse] = struct{}{}
}

// ParsedResponseCleared returns if the "parsed_response" field was cleared in this mutation.
func (m *ProcessingSessionMutation) ParsedResponseCleared() bool {
	_, ok := m.clearedFields[processingsession.FieldParsedResponse]
	return ok
}

// ResetParsedResponse resets all changes to the "parsed_response" field.
func (m *ProcessingSessionMutation) ResetParsedResponse() {
	m.parsed_response = nil
	m.appendparsed_response = nil
	delete(m.clearedFields, processingsession.FieldParsedResponse)
}

// SetStatus sets the "status" field.
func (m *ProcessingSessionMutation) SetStatus(s string) {
	m.status = &s
}

// Status returns the value of the "status" field in the mutation.
func (m *ProcessingSessionMutation) Status() (r string, exists bool) {
	v := m.status
	if v == nil {
		return
	}
	return *v, true
}

// OldStatus returns the old "status" field's value of the ProcessingSession entity.
// If the ProcessingSession object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ProcessingSessionMutation) OldStatus(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStatus is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStatus requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStatus: %w", err)
	}
	return oldValue.Status, nil
}

// ResetStatus resets all changes to the "status" field.
func (m *ProcessingSessionMutation) ResetStatus() {
	m.status = nil
}

// SetErrorMessage sets the "error_message" field.
func (m *ProcessingSessionMutation) SetErrorMessage(s string) {
	m.error_message = &s
}

// ErrorMessage returns the value of the "error_message" field in the mutation.
func (m *ProcessingSessionMutation) ErrorMessage() (r string, exists bool) {
	v := m.error_message
	if v == nil {
		return
	}
	return *v, true
}

// OldErrorMessage returns the old "error_message" field's value of the ProcessingSession entity.
// If the ProcessingSession object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ProcessingSessionMutation) OldErrorMessage(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldErrorMessage is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldErrorMessage requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldErrorMessage: %w", err)
	}
	return oldValue.ErrorMessage, nil
}

// ClearErrorMessage clears the value of the "error_message" field.
func (m *ProcessingSessionMutation) ClearErrorMessage() {
	m.error_message = nil
	m.clearedFields[processingsession.FieldErrorMessage] = struct{}{}
}

// ErrorMessageCleared returns if the "error_message" field was cleared in this mutation.
func (m *ProcessingSessionMutation) ErrorMessageCleared() bool {
	_, ok := m.clearedFields[processingsession.FieldErrorMessage]
	return ok
}

// ResetErrorMessage resets all changes to the "error_message" field.
func (m *ProcessingSessionMutation) ResetErrorMessage() {
	m.error_message = nil
	delete(m.clearedFields, processingsession.FieldErrorMessage)
}

// SetProcessingTimeMs sets the "processing_time_ms" field.
func (m *ProcessingSessionMutation) SetProcessingTimeMs(i int64) {
	m.processing_time_ms = &i
	m.addprocessing_time_ms = nil
}

// ProcessingTimeMs returns the value of the "processing_time_ms" field in the mutation.
func (m *ProcessingSessionMutation) ProcessingTimeMs() (r int64, exists bool) {
	v := m.processing_time_ms
	if v == nil {
		return
	}
	return *v, true
}

// OldProcessingTimeMs returns the old "processing_time_ms" field's value of the ProcessingSession entity.
// If the ProcessingSession object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ProcessingSessionMutation) OldProcessingTimeMs(ctx context.Context) (v int64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldProcessingTimeMs is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldProcessingTimeMs requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldProcessingTimeMs: %w", err)
	}
	return oldValue.ProcessingTimeMs, nil
}

// AddProcessingTimeMs adds i to the "processing_time_ms" field.
func (m *ProcessingSessionMutation) AddProcessingTimeMs(i int64) {
	if m.addprocessing_time_ms != nil {
		*m.addprocessing_time_ms += i
	} else {
		m.addprocessing_time_ms = &i
	}
}

// AddedProcessingTimeMs returns the value that was added to the "processing_time_ms" field in this mutation.
func (m *ProcessingSessionMutation) AddedProcessingTimeMs() (r int64, exists bool) {
	v := m.addprocessing_time_ms
	if v == nil {
		return
	}
	return *v, true
}

// ResetProcessingTimeMs resets all changes to the "processing_time_ms" field.
func (m *ProcessingSessionMutation) ResetProcessingTimeMs() {
	m.processing_time_ms = nil
	m.addprocessing_time_ms = nil
}

// SetTokenCount sets the "token_count" field.
func (m *ProcessingSessionMutation) SetTokenCount(i int) {
	m.token_count = &i
	m.addtoken_count = nil
}

// TokenCount returns the value of the "token_count" field in the mutation.
func (m *ProcessingSessionMutation) TokenCount() (r int, exists bool) {
	v := m.token_count
	if v == nil {
		return
	}
	return *v, true
}

// OldTokenCount returns the old "token_count" field's value of the ProcessingSession entity.
// If the ProcessingSession object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ProcessingSessionMutation) OldTokenCount(ctx context.Context) (v *int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTokenCount is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTokenCount requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTokenCount: %w", err)
	}
	return oldValue.TokenCount, nil
}

// AddTokenCount adds i to the "token_count" field.
func (m *ProcessingSessionMutation) AddTokenCount(i int) {
	if m.addtoken_count != nil {
		*m.addtoken_count += i
	} else {
		m.addtoken_count = &i
	}
}

// AddedTokenCount returns the value that was added to the "token_count" field in this mutation.
func (m *ProcessingSessionMutation) AddedTokenCount() (r int, exists bool) {
	v := m.addtoken_count
	if v == nil {
		return
	}
	return *v, true
}

// ClearTokenCount clears the value of the "token_count" field.
func (m *ProcessingSessionMutation) ClearTokenCount() {
	m.token_count = nil
	m.addtoken_count = nil
	m.clearedFields[processingsession.FieldTokenCount] = struct{}{}
}

// TokenCountCleared returns if the "token_count" field was cleared in this mutation.
func (m *ProcessingSessionMutation) TokenCountCleared() bool {
	_, ok := m.clearedFields[processingsession.FieldTokenCount]
	return ok
}

// ResetTokenCount resets all changes to the "token_count" field.
func (m *ProcessingSessionMutation) ResetTokenCount() {
	m.token_count = nil
	m.addtoken_count = nil
	delete(m.clearedFields, processingsession.FieldTokenCount)
}

// SetModel sets the "model" field.
func (m *ProcessingSessionMutation) SetModel(s string) {
	m.model = &s
}

// Model returns the value of the "model" field in the mutation.
func (m *ProcessingSessionMutation) Model() (r string, exists bool) {
	v := m.model
	if v == nil {
		return
	}
	return *v, true
}

// OldModel returns the old "model" field's value of the ProcessingSession entity.
// If the ProcessingSession object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ProcessingSessionMutation) OldModel(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldModel is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldModel requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldModel: %w", err)
	}
	return oldValue.Model, nil
}

// ResetModel resets all changes to the "model" field.
func (m *ProcessingSessionMutation) ResetModel() {
	m.model = nil
}

// SetCreatedAt sets the "created_at" field.
func (m *ProcessingSessionMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *ProcessingSessionMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the ProcessingSession entity.
// If the ProcessingSession object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ProcessingSessionMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *ProcessingSessionMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetCompletedAt sets the "completed_at" field.
func (m *ProcessingSessionMutation) SetCompletedAt(t time.Time) {
	m.completed_at = &t
}

// CompletedAt returns the value of the "completed_at" field in the mutation.
func (m *ProcessingSessionMutation) CompletedAt() (r time.Time, exists bool) {
	v := m.completed_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCompletedAt returns the old "completed_at" field's value of the ProcessingSession entity.
// If the ProcessingSession object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ProcessingSessionMutation) OldCompletedAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCompletedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCompletedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCompletedAt: %w", err)
	}
	return oldValue.CompletedAt, nil
}

// ClearCompletedAt clears the value of the "completed_at" field.
func (m *ProcessingSessionMutation) ClearCompletedAt() {
	m.completed_at = nil
	m.clearedFields[processingsession.FieldCompletedAt] = struct{}{}
}

// CompletedAtCleared returns if the "completed_at" field was cleared in this mutation.
func (m *ProcessingSessionMutation) CompletedAtCleared() bool {
	_, ok := m.clearedFields[processingsession.FieldCompletedAt]
	return ok
}

// ResetCompletedAt resets all changes to the "completed_at" field.
func (m *ProcessingSessionMutation) ResetCompletedAt() {
	m.completed_at = nil
	delete(m.clearedFields, processingsession.FieldCompletedAt)
}

// ClearFile clears the "file" edge to the TranscriptFile entity.
func (m *ProcessingSessionMutation) ClearFile() {
	m.clearedfile = true
	m.clearedFields[processingsession.FieldFileID] = struct{}{}
}

// FileCleared reports if the "file" edge to the TranscriptFile entity was cleared.
func (m *ProcessingSessionMutation) FileCleared() bool {
	return m.clearedfile
}

// FileIDs returns the "file" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// FileID instead. It exists only for internal usage by the builders.
func (m *ProcessingSessionMutation) FileIDs() (ids []uuid.UUID) {
	if id := m.file; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetFile resets all changes to the "file" edge.
func (m *ProcessingSessionMutation) ResetFile() {
	m.file = nil
	m.clearedfile = false
}

// AddResultIDs adds the "results" edge to the ExtractionResult entity by ids.
func (m *ProcessingSessionMutation) AddResultIDs(ids ...uuid.UUID) {
	if m.results == nil {
		m.results = make(map[uuid.UUID]struct{})
	}
	for i := range ids {
		m.results[ids[i]] = struct{}{}
	}
}

// ClearResults clears the "results" edge to the ExtractionResult entity.
func (m *ProcessingSessionMutation) ClearResults() {
	m.clearedresults = true
}

// ResultsCleared reports if the "results" edge to the ExtractionResult entity was cleared.
func (m *ProcessingSessionMutation) ResultsCleared() bool {
	return m.clearedresults
}

// RemoveResultIDs removes the "results" edge to the ExtractionResult entity by IDs.
func (m *ProcessingSessionMutation) RemoveResultIDs(ids ...uuid.UUID) {
	if m.removedresults == nil {
		m.removedresults = make(map[uuid.UUID]struct{})
	}
	for i := range ids {
		delete(m.results, ids[i])
		m.removedresults[ids[i]] = struct{}{}
	}
}

// RemovedResults returns the removed IDs of the "results" edge to the ExtractionResult entity.
func (m *ProcessingSessionMutation) RemovedResultsIDs() (ids []uuid.UUID) {
	for id := range m.removedresults {
		ids = append(ids, id)
	}
	return
}

// ResultsIDs returns the "results" edge IDs in the mutation.
func (m *ProcessingSessionMutation) ResultsIDs() (ids []uuid.UUID) {
	for id := range m.results {
		ids = append(ids, id)
	}
	return
}

// ResetResults resets all changes to the "results" edge.
func (m *ProcessingSessionMutation) ResetResults() {
	m.results = nil
	m.clearedresults = false
	m.removedresults = nil
}

// Where appends a list predicates to the ProcessingSessionMutation builder.
func (m *ProcessingSessionMutation) Where(ps ...predicate.ProcessingSession) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the ProcessingSessionMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *ProcessingSessionMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.ProcessingSession, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *ProcessingSessionMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *ProcessingSessionMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (ProcessingSession).
func (m *ProcessingSessionMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *ProcessingSessionMutation) Fields() []string {
	fields := make([]string, 0, 13)
	if m.file != nil {
		fields = append(fields, processingsession.FieldFileID)
	}
	if m.summarization_prompt_id != nil {
		fields = append(fields, processingsession.FieldSummarizationPromptID)
	}
	if m.extraction_selection != nil {
		fields = append(fields, processingsession.FieldExtractionSelection)
	}
	if m.system_prompt != nil {
		fields = append(fields, processingsession.FieldSystemPrompt)
	}
	if m.ai_response != nil {
		fields = append(fields, processingsession.FieldAiResponse)
	}
	if m.parsed_response != nil {
		fields = append(fields, processingsession.FieldParsedResponse)
	}
	if m.status != nil {
		fields = append(fields, processingsession.FieldStatus)
	}
	if m.error_message != nil {
		fields = append(fields, processingsession.FieldErrorMessage)
	}
	if m.processing_time_ms != nil {
		fields = append(fields, processingsession.FieldProcessingTimeMs)
	}
	if m.token_count != nil {
		fields = append(fields, processingsession.FieldTokenCount)
	}
	if m.model != nil {
		fields = append(fields, processingsession.FieldModel)
	}
	if m.created_at != nil {
		fields = append(fields, processingsession.FieldCreatedAt)
	}
	if m.completed_at != nil {
		fields = append(fields, processingsession.FieldCompletedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *ProcessingSessionMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case processingsession.FieldFileID:
		return m.FileID()
	case processingsession.FieldSummarizationPromptID:
		return m.SummarizationPromptID()
	case processingsession.FieldExtractionSelection:
		return m.ExtractionSelection()
	case processingsession.FieldSystemPrompt:
		return m.SystemPrompt()
	case processingsession.FieldAiResponse:
		return m.AiResponse()
	case processingsession.FieldParsedResponse:
		return m.ParsedResponse()
	case processingsession.FieldStatus:
		return m.Status()
	case processingsession.FieldErrorMessage:
		return m.ErrorMessage()
	case processingsession.FieldProcessingTimeMs:
		return m.ProcessingTimeMs()
	case processingsession.FieldTokenCount:
		return m.TokenCount()
	case processingsession.FieldModel:
		return m.Model()
	case processingsession.FieldCreatedAt:
		return m.CreatedAt()
	case processingsession.FieldCompletedAt:
		return m.CompletedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *ProcessingSessionMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case processingsession.FieldFileID:
		return m.OldFileID(ctx)
	case processingsession.FieldSummarizationPromptID:
		return m.OldSummarizationPromptID(ctx)
	case processingsession.FieldExtractionSelection:
		return m.OldExtractionSelection(ctx)
	case processingsession.FieldSystemPrompt:
		return m.OldSystemPrompt(ctx)
	case processingsession.FieldAiResponse:
		return m.OldAiResponse(ctx)
	case processingsession.FieldParsedResponse:
		return m.OldParsedResponse(ctx)
	case processingsession.FieldStatus:
		return m.OldStatus(ctx)
	case processingsession.FieldErrorMessage:
		return m.OldErrorMessage(ctx)
	case processingsession.FieldProcessingTimeMs:
		return m.OldProcessingTimeMs(ctx)
	case processingsession.FieldTokenCount:
		return m.OldTokenCount(ctx)
	case processingsession.FieldModel:
		return m.OldModel(ctx)
	case processingsession.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case processingsession.FieldCompletedAt:
		return m.OldCompletedAt(ctx)
	}
	return nil, fmt.Errorf("unknown ProcessingSession field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ProcessingSessionMutation) SetField(name string, value ent.Value) error {
	switch name {
	case processingsession.FieldFileID:
		v, ok := value.(uuid.UUID)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetFileID(v)
		return nil
	case processingsession.FieldSummarizationPromptID:
		v, ok := value.(uuid.UUID)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSummarizationPromptID(v)
		return nil
	case processingsession.FieldExtractionSelection:
		v, ok := value.([]uuid.UUID)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetExtractionSelection(v)
		return nil
	case processingsession.FieldSystemPrompt:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSystemPrompt(v)
		return nil
	case processingsession.FieldAiResponse:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAiResponse(v)
		return nil
	case processingsession.FieldParsedResponse:
		v, ok := value.(json.RawMessage)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetParsedResponse(v)
		return nil
	case processingsession.FieldStatus:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStatus(v)
		return nil
	case processingsession.FieldErrorMessage:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetErrorMessage(v)
		return nil
	case processingsession.FieldProcessingTimeMs:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetProcessingTimeMs(v)
		return nil
	case processingsession.FieldTokenCount:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTokenCount(v)
		return nil
	case processingsession.FieldModel:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetModel(v)
		return nil
	case processingsession.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case processingsession.FieldCompletedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCompletedAt(v)
		return nil
	}
	return fmt.Errorf("unknown ProcessingSession field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *ProcessingSessionMutation) AddedFields() []string {
	var fields []string
	if m.addprocessing_time_ms != nil {
		fields = append(fields, processingsession.FieldProcessingTimeMs)
	}
	if m.addtoken_count != nil {
		fields = append(fields, processingsession.FieldTokenCount)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *ProcessingSessionMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case processingsession.FieldProcessingTimeMs:
		return m.AddedProcessingTimeMs()
	case processingsession.FieldTokenCount:
		return m.AddedTokenCount()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ProcessingSessionMutation) AddField(name string, value ent.Value) error {
	switch name {
	case processingsession.FieldProcessingTimeMs:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddProcessingTimeMs(v)
		return nil
	case processingsession.FieldTokenCount:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddTokenCount(v)
		return nil
	}
	return fmt.Errorf("unknown ProcessingSession numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *ProcessingSessionMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(processingsession.FieldSummarizationPromptID) {
		fields = append(fields, processingsession.FieldSummarizationPromptID)
	}
	if m.FieldCleared(processingsession.FieldAiResponse) {
		fields = append(fields, processingsession.FieldAiResponse)
	}
	if m.FieldCleared(processingsession.FieldParsedResponse) {
		fields = append(fields, processingsession.FieldParsedResponse)
	}
	if m.FieldCleared(processingsession.FieldErrorMessage) {
		fields = append(fields, processingsession.FieldErrorMessage)
	}
	if m.FieldCleared(processingsession.FieldTokenCount) {
		fields = append(fields, processingsession.FieldTokenCount)
	}
	if m.FieldCleared(processingsession.FieldCompletedAt) {
		fields = append(fields, processingsession.FieldCompletedAt)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *ProcessingSessionMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *ProcessingSessionMutation) ClearField(name string) error {
	switch name {
	case processingsession.FieldSummarizationPromptID:
		m.ClearSummarizationPromptID()
		return nil
	case processingsession.FieldAiResponse:
		m.ClearAiResponse()
		return nil
	case processingsession.FieldParsedResponse:
		m.ClearParsedResponse()
		return nil
	case processingsession.FieldErrorMessage:
		m.ClearErrorMessage()
		return nil
	case processingsession.FieldTokenCount:
		m.ClearTokenCount()
		return nil
	case processingsession.FieldCompletedAt:
		m.ClearCompletedAt()
		return nil
	}
	return fmt.Errorf("unknown ProcessingSession nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *ProcessingSessionMutation) ResetField(name string) error {
	switch name {
	case processingsession.FieldFileID:
		m.ResetFileID()
		return nil
	case processingsession.FieldSummarizationPromptID:
		m.ResetSummarizationPromptID()
		return nil
	case processingsession.FieldExtractionSelection:
		m.ResetExtractionSelection()
		return nil
	case processingsession.FieldSystemPrompt:
		m.ResetSystemPrompt()
		return nil
	case processingsession.FieldAiResponse:
		m.ResetAiResponse()
		return nil
	case processingsession.FieldParsedResponse:
		m.ResetParsedResponse()
		return nil
	case processingsession.FieldStatus:
		m.ResetStatus()
		return nil
	case processingsession.FieldErrorMessage:
		m.ResetErrorMessage()
		return nil
	case processingsession.FieldProcessingTimeMs:
		m.ResetProcessingTimeMs()
		return nil
	case processingsession.FieldTokenCount:
		m.ResetTokenCount()
		return nil
	case processingsession.FieldModel:
		m.ResetModel()
		return nil
	case processingsession.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case processingsession.FieldCompletedAt:
		m.ResetCompletedAt()
		return nil
	}
	return fmt.Errorf("unknown ProcessingSession field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *ProcessingSessionMutation) AddedEdges() []string {
	edges := make([]string, 0, 2)
	if m.file != nil {
		edges = append(edges, processingsession.EdgeFile)
	}
	if m.results != nil {
		edges = append(edges, processingsession.EdgeResults)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *ProcessingSessionMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case processingsession.EdgeFile:
		if id := m.file; id != nil {
			return []ent.Value{*id}
		}
	case processingsession.EdgeResults:
		ids := make([]ent.Value, 0, len(m.results))
		for id := range m.results {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *ProcessingSessionMutation) RemovedEdges() []string {
	edges := make([]string, 0, 2)
	if m.removedresults != nil {
		edges = append(edges, processingsession.EdgeResults)
	}
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *ProcessingSessionMutation) RemovedIDs(name string) []ent.Value {
	switch name {
	case processingsession.EdgeResults:
		ids := make([]ent.Value, 0, len(m.removedresults))
		for id := range m.removedresults {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *ProcessingSessionMutation) ClearedEdges() []string {
	edges := make([]string, 0, 2)
	if m.clearedfile {
		edges = append(edges, processingsession.EdgeFile)
	}
	if m.clearedresults {
		edges = append(edges, processingsession.EdgeResults)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *ProcessingSessionMutation) EdgeCleared(name string) bool {
	switch name {
	case processingsession.EdgeFile:
		return m.clearedfile
	case processingsession.EdgeResults:
		return m.clearedresults
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *ProcessingSessionMutation) ClearEdge(name string) error {
	switch name {
	case processingsession.EdgeFile:
		m.ClearFile()
		return nil
	}
	return fmt.Errorf("unknown ProcessingSession unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *ProcessingSessionMutation) ResetEdge(name string) error {
	switch name {
	case processingsession.EdgeFile:
		m.ResetFile()
		return nil
	case processingsession.EdgeResults:
		m.ResetResults()
		return nil
	}
	return fmt.Errorf("unknown ProcessingSession edge %s", name)
}

// SummarizationMutation represents an operation that mutates the Summarization nodes in the graph.
type SummarizationMutation struct {
	config
	op              Op
	typ             string
	id              *uuid.UUID
	session_id      *uuid.UUID
	model           *string
	prompt          *string
	content         *string
	created_at      *time.Time
	clearedFields   map[string]struct{}
	file            *uuid.UUID
	clearedfile     bool
	template        *uuid.UUID
	clearedtemplate bool
	done            bool
	oldValue        func(context.Context) (*Summarization, error)
	predicates      []predicate.Summarization
}

var _ ent.Mutation = (*SummarizationMutation)(nil)

// summarizationOption allows management of the mutation configuration using functional options.
type summarizationOption func(*SummarizationMutation)

// newSummarizationMutation creates new mutation for the Summarization entity.
func newSummarizationMutation(c config, op Op, opts ...summarizationOption) *SummarizationMutation {
	m := &SummarizationMutation{
		config:        c,
		op:            op,
		typ:           TypeSummarization,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withSummarizationID sets the ID field of the mutation.
func withSummarizationID(id uuid.UUID) summarizationOption {
	return func(m *SummarizationMutation) {
		var (
			err   error
			once  sync.Once
			value *Summarization
		)
		m.oldValue = func(ctx context.Context) (*Summarization, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Summarization.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withSummarization sets the old Summarization of the mutation.
func withSummarization(node *Summarization) summarizationOption {
	return func(m *SummarizationMutation) {
		m.oldValue = func(context.Context) (*Summarization, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m SummarizationMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m SummarizationMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of Summarization entities.
func (m *SummarizationMutation) SetID(id uuid.UUID) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *SummarizationMutation) ID() (id uuid.UUID, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *SummarizationMutation) IDs(ctx context.Context) ([]uuid.UUID, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []uuid.UUID{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Summarization.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetFileID sets the "file_id" field.
func (m *SummarizationMutation) SetFileID(u uuid.UUID) {
	m.file = &u
}

// FileID returns the value of the "file_id" field in the mutation.
func (m *SummarizationMutation) FileID() (r uuid.UUID, exists bool) {
	v := m.file
	if v == nil {
		return
	}
	return *v, true
}

// OldFileID returns the old "file_id" field's value of the Summarization entity.
// If the Summarization object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SummarizationMutation) OldFileID(ctx context.Context) (v uuid.UUID, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldFileID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldFileID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldFileID: %w", err)
	}
	return oldValue.FileID, nil
}

// ResetFileID resets all changes to the "file_id" field.
func (m *SummarizationMutation) ResetFileID() {
	m.file = nil
}

// SetSessionID sets the "session_id" field.
func (m *SummarizationMutation) SetSessionID(u uuid.UUID) {
	m.session_id = &u
}

// SessionID returns the value of the "session_id" field in the mutation.
func (m *SummarizationMutation) SessionID() (r uuid.UUID, exists bool) {
	v := m.session_id
	if v == nil {
		return
	}
	return *v, true
}

// OldSessionID returns the old "session_id" field's value of the Summarization entity.
// If the Summarization object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SummarizationMutation) OldSessionID(ctx context.Context) (v uuid.UUID, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSessionID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSessionID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSessionID: %w", err)
	}
	return oldValue.SessionID, nil
}

// ResetSessionID resets all changes to the "session_id" field.
func (m *SummarizationMutation) ResetSessionID() {
	m.session_id = nil
}

// SetTemplateID sets the "template_id" field.
func (m *SummarizationMutation) SetTemplateID(u uuid.UUID) {
	m.template = &u
}

// TemplateID returns the value of the "template_id" field in the mutation.
func (m *SummarizationMutation) TemplateID() (r uuid.UUID, exists bool) {
	v := m.template
	if v == nil {
		return
	}
	return *v, true
}

// OldTemplateID returns the old "template_id" field's value of the Summarization entity.
// If the Summarization object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SummarizationMutation) OldTemplateID(ctx context.Context) (v *uuid.UUID, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTemplateID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTemplateID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTemplateID: %w", err)
	}
	return oldValue.TemplateID, nil
}

// ClearTemplateID clears the value of the "template_id" field.
func (m *SummarizationMutation) ClearTemplateID() {
	m.template = nil
	m.clearedFields[summarization.FieldTemplateID] = struct{}{}
}

// TemplateIDCleared returns if the "template_id" field was cleared in this mutation.
func (m *SummarizationMutation) TemplateIDCleared() bool {
	_, ok := m.clearedFields[summarization.FieldTemplateID]
	return ok
}

// ResetTemplateID resets all changes to the "template_id" field.
func (m *SummarizationMutation) ResetTemplateID() {
	m.template = nil
	delete(m.clearedFields, summarization.FieldTemplateID)
}

// SetModel sets the "model" field.
func (m *SummarizationMutation) SetModel(s string) {
	m.model = &s
}

// Model returns the value of the "model" field in the mutation.
func (m *SummarizationMutation) Model() (r string, exists bool) {
	v := m.model
	if v == nil {
		return
	}
	return *v, true
}

// OldModel returns the old "model" field's value of the Summarization entity.
// If the Summarization object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SummarizationMutation) OldModel(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldModel is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldModel requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldModel: %w", err)
	}
	return oldValue.Model, nil
}

// ResetModel resets all changes to the "model" field.
func (m *SummarizationMutation) ResetModel() {
	m.model = nil
}

// SetPrompt sets the "prompt" field.
func (m *SummarizationMutation) SetPrompt(s string) {
	m.prompt = &s
}

// Prompt returns the value of the "prompt" field in the mutation.
func (m *SummarizationMutation) Prompt() (r string, exists bool) {
	v := m.prompt
	if v == nil {
		return
	}
	return *v, true
}

// OldPrompt returns the old "prompt" field's value of the Summarization entity.
// If the Summarization object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SummarizationMutation) OldPrompt(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPrompt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPrompt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPrompt: %w", err)
	}
	return oldValue.Prompt, nil
}

// ResetPrompt resets all changes to the "prompt" field.
func (m *SummarizationMutation) ResetPrompt() {
	m.prompt = nil
}

// SetContent sets the "content" field.
func (m *SummarizationMutation) SetContent(s string) {
	m.content = &s
}

// Content returns the value of the "content" field in the mutation.
func (m *SummarizationMutation) Content() (r string, exists bool) {
	v := m.content
	if v == nil {
		return
	}
	return *v, true
}

// OldContent returns the old "content" field's value of the Summarization entity.
// If the Summarization object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SummarizationMutation) OldContent(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldContent is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldContent requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldContent: %w", err)
	}
	return oldValue.Content, nil
}

// ResetContent resets all changes to the "content" field.
func (m *SummarizationMutation) ResetContent() {
	m.content = nil
}

// SetCreatedAt sets the "created_at" field.
func (m *SummarizationMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *SummarizationMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the Summarization entity.
// If the Summarization object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SummarizationMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *SummarizationMutation) ResetCreatedAt() {
	m.created_at = nil
}

// ClearFile clears the "file" edge to the TranscriptFile entity.
func (m *SummarizationMutation) ClearFile() {
	m.clearedfile = true
	m.clearedFields[summarization.FieldFileID] = struct{}{}
}

// FileCleared reports if the "file" edge to the TranscriptFile entity was cleared.
func (m *SummarizationMutation) FileCleared() bool {
	return m.clearedfile
}

// FileIDs returns the "file" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// FileID instead. It exists only for internal usage by the builders.
func (m *SummarizationMutation) FileIDs() (ids []uuid.UUID) {
	if id := m.file; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetFile resets all changes to the "file" edge.
func (m *SummarizationMutation) ResetFile() {
	m.file = nil
	m.clearedfile = false
}

// ClearTemplate clears the "template" edge to the SummarizationPrompt entity.
func (m *SummarizationMutation) ClearTemplate() {
	m.clearedtemplate = true
	m.clearedFields[summarization.FieldTemplateID] = struct{}{}
}

// TemplateCleared reports if the "template" edge to the SummarizationPrompt entity was cleared.
func (m *SummarizationMutation) TemplateCleared() bool {
	return m.TemplateIDCleared() || m.clearedtemplate
}

// TemplateIDs returns the "template" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// TemplateID instead. It exists only for internal usage by the builders.
func (m *SummarizationMutation) TemplateIDs() (ids []uuid.UUID) {
	if id := m.template; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetTemplate resets all changes to the "template" edge.
func (m *SummarizationMutation) ResetTemplate() {
	m.template = nil
	m.clearedtemplate = false
}

// Where appends a list predicates to the SummarizationMutation builder.
func (m *SummarizationMutation) Where(ps ...predicate.Summarization) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the SummarizationMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *SummarizationMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Summarization, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *SummarizationMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *SummarizationMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Summarization).
func (m *SummarizationMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *SummarizationMutation) Fields() []string {
	fields := make([]string, 0, 7)
	if m.file != nil {
		fields = append(fields, summarization.FieldFileID)
	}
	if m.session_id != nil {
		fields = append(fields, summarization.FieldSessionID)
	}
	if m.template != nil {
		fields = append(fields, summarization.FieldTemplateID)
	}
	if m.model != nil {
		fields = append(fields, summarization.FieldModel)
	}
	if m.prompt != nil {
		fields = append(fields, summarization.FieldPrompt)
	}
	if m.content != nil {
		fields = append(fields, summarization.FieldContent)
	}
	if m.created_at != nil {
		fields = append(fields, summarization.FieldCreatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *SummarizationMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case summarization.FieldFileID:
		return m.FileID()
	case summarization.FieldSessionID:
		return m.SessionID()
	case summarization.FieldTemplateID:
		return m.TemplateID()
	case summarization.FieldModel:
		return m.Model()
	case summarization.FieldPrompt:
		return m.Prompt()
	case summarization.FieldContent:
		return m.Content()
	case summarization.FieldCreatedAt:
		return m.CreatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *SummarizationMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case summarization.FieldFileID:
		return m.OldFileID(ctx)
	case summarization.FieldSessionID:
		return m.OldSessionID(ctx)
	case summarization.FieldTemplateID:
		return m.OldTemplateID(ctx)
	case summarization.FieldModel:
		return m.OldModel(ctx)
	case summarization.FieldPrompt:
		return m.OldPrompt(ctx)
	case summarization.FieldContent:
		return m.OldContent(ctx)
	case summarization.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown Summarization field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *SummarizationMutation) SetField(name string, value ent.Value) error {
	switch name {
	case summarization.FieldFileID:
		v, ok := value.(uuid.UUID)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetFileID(v)
		return nil
	case summarization.FieldSessionID:
		v, ok := value.(uuid.UUID)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSessionID(v)
		return nil
	case summarization.FieldTemplateID:
		v, ok := value.(uuid.UUID)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTemplateID(v)
		return nil
	case summarization.FieldModel:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetModel(v)
		return nil
	case summarization.FieldPrompt:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPrompt(v)
		return nil
	case summarization.FieldContent:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetContent(v)
		return nil
	case summarization.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown Summarization field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *SummarizationMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *SummarizationMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *SummarizationMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown Summarization numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *SummarizationMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(summarization.FieldTemplateID) {
		fields = append(fields, summarization.FieldTemplateID)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *SummarizationMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *SummarizationMutation) ClearField(name string) error {
	switch name {
	case summarization.FieldTemplateID:
		m.ClearTemplateID()
		return nil
	}
	return fmt.Errorf("unknown Summarization nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *SummarizationMutation) ResetField(name string) error {
	switch name {
	case summarization.FieldFileID:
		m.ResetFileID()
		return nil
	case summarization.FieldSessionID:
		m.ResetSessionID()
		return nil
	case summarization.FieldTemplateID:
		m.ResetTemplateID()
		return nil
	case summarization.FieldModel:
		m.ResetModel()
		return nil
	case summarization.FieldPrompt:
		m.ResetPrompt()
		return nil
	case summarization.FieldContent:
		m.ResetContent()
		return nil
	case summarization.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	}
	return fmt.Errorf("unknown Summarization field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *SummarizationMutation) AddedEdges() []string {
	edges := make([]string, 0, 2)
	if m.file != nil {
		edges = append(edges, summarization.EdgeFile)
	}
	if m.template != nil {
		edges = append(edges, summarization.EdgeTemplate)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *SummarizationMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case summarization.EdgeFile:
		if id := m.file; id != nil {
			return []ent.Value{*id}
		}
	case summarization.EdgeTemplate:
		if id := m.template; id != nil {
			return []ent.Value{*id}
		}
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *SummarizationMutation) RemovedEdges() []string {
	edges := make([]string, 0, 2)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *SummarizationMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *SummarizationMutation) ClearedEdges() []string {
	edges := make([]string, 0, 2)
	if m.clearedfile {
		edges = append(edges, summarization.EdgeFile)
	}
	if m.clearedtemplate {
		edges = append(edges, summarization.EdgeTemplate)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *SummarizationMutation) EdgeCleared(name string) bool {
	switch name {
	case summarization.EdgeFile:
		return m.clearedfile
	case summarization.EdgeTemplate:
		return m.clearedtemplate
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *SummarizationMutation) ClearEdge(name string) error {
	switch name {
	case summarization.EdgeFile:
		m.ClearFile()
		return nil
	case summarization.EdgeTemplate:
		m.ClearTemplate()
		return nil
	}
	return fmt.Errorf("unknown Summarization unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *SummarizationMutation) ResetEdge(name string) error {
	switch name {
	case summarization.EdgeFile:
		m.ResetFile()
		return nil
	case summarization.EdgeTemplate:
		m.ResetTemplate()
		return nil
	}
	return fmt.Errorf("unknown Summarization edge %s", name)
}

// SummarizationPromptMutation represents an operation that mutates the SummarizationPrompt nodes in the graph.
type SummarizationPromptMutation struct {
	config
	op                    Op
	typ                   string
	id                    *uuid.UUID
	name                  *string
	prompt                *string
	is_default            *bool
	is_active             *bool
	created_at            *time.Time
	updated_at            *time.Time
	clearedFields         map[string]struct{}
	summarizations        map[uuid.UUID]struct{}
	removedsummarizations map[uuid.UUID]struct{}
	clearedsummarizations bool
	done                  bool
	oldValue              func(context.Context) (*SummarizationPrompt, error)
	predicates            []predicate.SummarizationPrompt
}

var _ ent.Mutation = (*SummarizationPromptMutation)(nil)

// summarizationpromptOption allows management of the mutation configuration using functional options.
type summarizationpromptOption func(*SummarizationPromptMutation)

// newSummarizationPromptMutation creates new mutation for the SummarizationPrompt entity.
func newSummarizationPromptMutation(c config, op Op, opts ...summarizationpromptOption) *SummarizationPromptMutation {
	m := &SummarizationPromptMutation{
		config:        c,
		op:            op,
		typ:           TypeSummarizationPrompt,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withSummarizationPromptID sets the ID field of the mutation.
func withSummarizationPromptID(id uuid.UUID) summarizationpromptOption {
	return func(m *SummarizationPromptMutation) {
		var (
			err   error
			once  sync.Once
			value *SummarizationPrompt
		)
		m.oldValue = func(ctx context.Context) (*SummarizationPrompt, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().SummarizationPrompt.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withSummarizationPrompt sets the old SummarizationPrompt of the mutation.
func withSummarizationPrompt(node *SummarizationPrompt) summarizationpromptOption {
	return func(m *SummarizationPromptMutation) {
		m.oldValue = func(context.Context) (*SummarizationPrompt, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m SummarizationPromptMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m SummarizationPromptMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of SummarizationPrompt entities.
func (m *SummarizationPromptMutation) SetID(id uuid.UUID) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *SummarizationPromptMutation) ID() (id uuid.UUID, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *SummarizationPromptMutation) IDs(ctx context.Context) ([]uuid.UUID, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []uuid.UUID{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().SummarizationPrompt.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetName sets the "name" field.
func (m *SummarizationPromptMutation) SetName(s string) {
	m.name = &s
}

// Name returns the value of the "name" field in the mutation.
func (m *SummarizationPromptMutation) Name() (r string, exists bool) {
	v := m.name
	if v == nil {
		return
	}
	return *v, true
}

// OldName returns the old "name" field's value of the SummarizationPrompt entity.
// If the SummarizationPrompt object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SummarizationPromptMutation) OldName(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldName is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldName requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldName: %w", err)
	}
	return oldValue.Name, nil
}

// ResetName resets all changes to the "name" field.
func (m *SummarizationPromptMutation) ResetName() {
	m.name = nil
}

// SetPrompt sets the "prompt" field.
func (m *SummarizationPromptMutation) SetPrompt(s string) {
	m.prompt = &s
}

// Prompt returns the value of the "prompt" field in the mutation.
func (m *SummarizationPromptMutation) Prompt() (r string, exists bool) {
	v := m.prompt
	if v == nil {
		return
	}
	return *v, true
}

// OldPrompt returns the old "prompt" field's value of the SummarizationPrompt entity.
// If the SummarizationPrompt object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SummarizationPromptMutation) OldPrompt(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPrompt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPrompt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPrompt: %w", err)
	}
	return oldValue.Prompt, nil
}

// ResetPrompt resets all changes to the "prompt" field.
func (m *SummarizationPromptMutation) ResetPrompt() {
	m.prompt = nil
}

// SetIsDefault sets the "is_default" field.
func (m *SummarizationPromptMutation) SetIsDefault(b bool) {
	m.is_default = &b
}

// IsDefault returns the value of the "is_default" field in the mutation.
func (m *SummarizationPromptMutation) IsDefault() (r bool, exists bool) {
	v := m.is_default
	if v == nil {
		return
	}
	return *v, true
}

// OldIsDefault returns the old "is_default" field's value of the SummarizationPrompt entity.
// If the SummarizationPrompt object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SummarizationPromptMutation) OldIsDefault(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldIsDefault is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldIsDefault requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldIsDefault: %w", err)
	}
	return oldValue.IsDefault, nil
}

// ResetIsDefault resets all changes to the "is_default" field.
func (m *SummarizationPromptMutation) ResetIsDefault() {
	m.is_default = nil
}

// SetIsActive sets the "is_active" field.
func (m *SummarizationPromptMutation) SetIsActive(b bool) {
	m.is_active = &b
}

// IsActive returns the value of the "is_active" field in the mutation.
func (m *SummarizationPromptMutation) IsActive() (r bool, exists bool) {
	v := m.is_active
	if v == nil {
		return
	}
	return *v, true
}

// OldIsActive returns the old "is_active" field's value of the SummarizationPrompt entity.
// If the SummarizationPrompt object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SummarizationPromptMutation) OldIsActive(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldIsActive is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldIsActive requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldIsActive: %w", err)
	}
	return oldValue.IsActive, nil
}

// ResetIsActive resets all changes to the "is_active" field.
func (m *SummarizationPromptMutation) ResetIsActive() {
	m.is_active = nil
}

// SetCreatedAt sets the "created_at" field.
func (m *SummarizationPromptMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *SummarizationPromptMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the SummarizationPrompt entity.
// If the SummarizationPrompt object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SummarizationPromptMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *SummarizationPromptMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *SummarizationPromptMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *SummarizationPromptMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the SummarizationPrompt entity.
// If the SummarizationPrompt object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SummarizationPromptMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedAt: %w", err)
	}
	return oldValue.UpdatedAt, nil
}

// ResetUpdatedAt resets all changes to the "updated_at" field.
func (m *SummarizationPromptMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// AddSummarizationIDs adds the "summarizations" edge to the Summarization entity by ids.
func (m *SummarizationPromptMutation) AddSummarizationIDs(ids ...uuid.UUID) {
	if m.summarizations == nil {
		m.summarizations = make(map[uuid.UUID]struct{})
	}
	for i := range ids {
		m.summarizations[ids[i]] = struct{}{}
	}
}

// ClearSummarizations clears the "summarizations" edge to the Summarization entity.
func (m *SummarizationPromptMutation) ClearSummarizations() {
	m.clearedsummarizations = true
}

// SummarizationsCleared reports if the "summarizations" edge to the Summarization entity was cleared.
func (m *SummarizationPromptMutation) SummarizationsCleared() bool {
	return m.clearedsummarizations
}

// RemoveSummarizationIDs removes the "summarizations" edge to the Summarization entity by IDs.
func (m *SummarizationPromptMutation) RemoveSummarizationIDs(ids ...uuid.UUID) {
	if m.removedsummarizations == nil {
		m.removedsummarizations = make(map[uuid.UUID]struct{})
	}
	for i := range ids {
		delete(m.summarizations, ids[i])
		m.removedsummarizations[ids[i]] = struct{}{}
	}
}

// RemovedSummarizations returns the removed IDs of the "summarizations" edge to the Summarization entity.
func (m *SummarizationPromptMutation) RemovedSummarizationsIDs() (ids []uuid.UUID) {
	for id := range m.removedsummarizations {
		ids = append(ids, id)
	}
	return
}

// SummarizationsIDs returns the "summarizations" edge IDs in the mutation.
func (m *SummarizationPromptMutation) SummarizationsIDs() (ids []uuid.UUID) {
	for id := range m.summarizations {
		ids = append(ids, id)
	}
	return
}

// ResetSummarizations resets all changes to the "summarizations" edge.
func (m *SummarizationPromptMutation) ResetSummarizations() {
	m.summarizations = nil
	m.clearedsummarizations = false
	m.removedsummarizations = nil
}

// Where appends a list predicates to the SummarizationPromptMutation builder.
func (m *SummarizationPromptMutation) Where(ps ...predicate.SummarizationPrompt) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the SummarizationPromptMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *SummarizationPromptMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.SummarizationPrompt, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *SummarizationPromptMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *SummarizationPromptMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (SummarizationPrompt).
func (m *SummarizationPromptMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *SummarizationPromptMutation) Fields() []string {
	fields := make([]string, 0, 6)
	if m.name != nil {
		fields = append(fields, summarizationprompt.FieldName)
	}
	if m.prompt != nil {
		fields = append(fields, summarizationprompt.FieldPrompt)
	}
	if m.is_default != nil {
		fields = append(fields, summarizationprompt.FieldIsDefault)
	}
	if m.is_active != nil {
		fields = append(fields, summarizationprompt.FieldIsActive)
	}
	if m.created_at != nil {
		fields = append(fields, summarizationprompt.FieldCreatedAt)
	}
	if m.updated_at != nil {
		fields = append(fields, summarizationprompt.FieldUpdatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *SummarizationPromptMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case summarizationprompt.FieldName:
		return m.Name()
	case summarizationprompt.FieldPrompt:
		return m.Prompt()
	case summarizationprompt.FieldIsDefault:
		return m.IsDefault()
	case summarizationprompt.FieldIsActive:
		return m.IsActive()
	case summarizationprompt.FieldCreatedAt:
		return m.CreatedAt()
	case summarizationprompt.FieldUpdatedAt:
		return m.UpdatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *SummarizationPromptMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case summarizationprompt.FieldName:
		return m.OldName(ctx)
	case summarizationprompt.FieldPrompt:
		return m.OldPrompt(ctx)
	case summarizationprompt.FieldIsDefault:
		return m.OldIsDefault(ctx)
	case summarizationprompt.FieldIsActive:
		return m.OldIsActive(ctx)
	case summarizationprompt.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case summarizationprompt.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown SummarizationPrompt field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *SummarizationPromptMutation) SetField(name string, value ent.Value) error {
	switch name {
	case summarizationprompt.FieldName:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetName(v)
		return nil
	case summarizationprompt.FieldPrompt:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPrompt(v)
		return nil
	case summarizationprompt.FieldIsDefault:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetIsDefault(v)
		return nil
	case summarizationprompt.FieldIsActive:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetIsActive(v)
		return nil
	case summarizationprompt.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case summarizationprompt.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown SummarizationPrompt field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *SummarizationPromptMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *SummarizationPromptMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *SummarizationPromptMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown SummarizationPrompt numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *SummarizationPromptMutation) ClearedFields() []string {
	return nil
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *SummarizationPromptMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *SummarizationPromptMutation) ClearField(name string) error {
	return fmt.Errorf("unknown SummarizationPrompt nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *SummarizationPromptMutation) ResetField(name string) error {
	switch name {
	case summarizationprompt.FieldName:
		m.ResetName()
		return nil
	case summarizationprompt.FieldPrompt:
		m.ResetPrompt()
		return nil
	case summarizationprompt.FieldIsDefault:
		m.ResetIsDefault()
		return nil
	case summarizationprompt.FieldIsActive:
		m.ResetIsActive()
		return nil
	case summarizationprompt.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case summarizationprompt.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	}
	return fmt.Errorf("unknown SummarizationPrompt field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *SummarizationPromptMutation) AddedEdges() []string {
	edges := make([]string, 0, 1)
	if m.summarizations != nil {
		edges = append(edges, summarizationprompt.EdgeSummarizations)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *SummarizationPromptMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case summarizationprompt.EdgeSummarizations:
		ids := make([]ent.Value, 0, len(m.summarizations))
		for id := range m.summarizations {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *SummarizationPromptMutation) RemovedEdges() []string {
	edges := make([]string, 0, 1)
	if m.removedsummarizations != nil {
		edges = append(edges, summarizationprompt.EdgeSummarizations)
	}
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *SummarizationPromptMutation) RemovedIDs(name string) []ent.Value {
	switch name {
	case summarizationprompt.EdgeSummarizations:
		ids := make([]ent.Value, 0, len(m.removedsummarizations))
		for id := range m.removedsummarizations {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *SummarizationPromptMutation) ClearedEdges() []string {
	edges := make([]string, 0, 1)
	if m.clearedsummarizations {
		edges = append(edges, summarizationprompt.EdgeSummarizations)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *SummarizationPromptMutation) EdgeCleared(name string) bool {
	switch name {
	case summarizationprompt.EdgeSummarizations:
		return m.clearedsummarizations
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *SummarizationPromptMutation) ClearEdge(name string) error {
	switch name {
	}
	return fmt.Errorf("unknown SummarizationPrompt unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *SummarizationPromptMutation) ResetEdge(name string) error {
	switch name {
	case summarizationprompt.EdgeSummarizations:
		m.ResetSummarizations()
		return nil
	}
	return fmt.Errorf("unknown SummarizationPrompt edge %s", name)
}

// TranscriptFileMutation represents an operation that mutates the TranscriptFile nodes in the graph.
type TranscriptFileMutation struct {
	config
	op                        Op
	typ                       string
	id                        *uuid.UUID
	filename                  *string
	source_path               *string
	transcript_text           *string
	transcript_segments       *json.RawMessage
	appendtranscript_segments json.RawMessage
	language                  *string
	duration_seconds          *float64
	addduration_seconds       *float64
	uploaded_at               *time.Time
	clearedFields             map[string]struct{}
	sessions                  map[uuid.UUID]struct{}
	removedsessions           map[uuid.UUID]struct{}
	clearedsessions           bool
	results                   map[uuid.UUID]struct{}
	removedresults            map[uuid.UUID]struct{}
	clearedresults            bool
	summarizations            map[uuid.UUID]struct{}
	removedsummarizations     map[uuid.UUID]struct{}
	clearedsummarizations     bool
	done                      bool
	oldValue                  func(context.Context) (*TranscriptFile, error)
	predicates                []predicate.TranscriptFile
}

var _ ent.Mutation = (*TranscriptFileMutation)(nil)

// transcriptfileOption allows management of the mutation configuration using functional options.
type transcriptfileOption func(*TranscriptFileMutation)

// newTranscriptFileMutation creates new mutation for the TranscriptFile entity.
func newTranscriptFileMutation(c config, op Op, opts ...transcriptfileOption) *TranscriptFileMutation {
	m := &TranscriptFileMutation{
		config:        c,
		op:            op,
		typ:           TypeTranscriptFile,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withTranscriptFileID sets the ID field of the mutation.
func withTranscriptFileID(id uuid.UUID) transcriptfileOption {
	return func(m *TranscriptFileMutation) {
		var (
			err   error
			once  sync.Once
			value *TranscriptFile
		)
		m.oldValue = func(ctx context.Context) (*TranscriptFile, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().TranscriptFile.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withTranscriptFile sets the old TranscriptFile of the mutation.
func withTranscriptFile(node *TranscriptFile) transcriptfileOption {
	return func(m *TranscriptFileMutation) {
		m.oldValue = func(context.Context) (*TranscriptFile, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m TranscriptFileMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m TranscriptFileMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of TranscriptFile entities.
func (m *TranscriptFileMutation) SetID(id uuid.UUID) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *TranscriptFileMutation) ID() (id uuid.UUID, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *TranscriptFileMutation) IDs(ctx context.Context) ([]uuid.UUID, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []uuid.UUID{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().TranscriptFile.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetFilename sets the "filename" field.
func (m *TranscriptFileMutation) SetFilename(s string) {
	m.filename = &s
}

// Filename returns the value of the "filename" field in the mutation.
func (m *TranscriptFileMutation) Filename() (r string, exists bool) {
	v := m.filename
	if v == nil {
		return
	}
	return *v, true
}

// OldFilename returns the old "filename" field's value of the TranscriptFile entity.
// If the TranscriptFile object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TranscriptFileMutation) OldFilename(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldFilename is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldFilename requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldFilename: %w", err)
	}
	return oldValue.Filename, nil
}

// ResetFilename resets all changes to the "filename" field.
func (m *TranscriptFileMutation) ResetFilename() {
	m.filename = nil
}

// SetSourcePath sets the "source_path" field.
func (m *TranscriptFileMutation) SetSourcePath(s string) {
	m.source_path = &s
}

// SourcePath returns the value of the "source_path" field in the mutation.
func (m *TranscriptFileMutation) SourcePath() (r string, exists bool) {
	v := m.source_path
	if v == nil {
		return
	}
	return *v, true
}

// OldSourcePath returns the old "source_path" field's value of the TranscriptFile entity.
// If the TranscriptFile object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TranscriptFileMutation) OldSourcePath(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSourcePath is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSourcePath requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSourcePath: %w", err)
	}
	return oldValue.SourcePath, nil
}

// ResetSourcePath resets all changes to the "source_path" field.
func (m *TranscriptFileMutation) ResetSourcePath() {
	m.source_path = nil
}

// SetTranscriptText sets the "transcript_text" field.
func (m *TranscriptFileMutation) SetTranscriptText(s string) {
	m.transcript_text = &s
}

// TranscriptText returns the value of the "transcript_text" field in the mutation.
func (m *TranscriptFileMutation) TranscriptText() (r string, exists bool) {
	v := m.transcript_text
	if v == nil {
		return
	}
	return *v, true
}

// OldTranscriptText returns the old "transcript_text" field's value of the TranscriptFile entity.
// If the TranscriptFile object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TranscriptFileMutation) OldTranscriptText(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTranscriptText is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTranscriptText requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTranscriptText: %w", err)
	}
	return oldValue.TranscriptText, nil
}

// ClearTranscriptText clears the value of the "transcript_text" field.
func (m *TranscriptFileMutation) ClearTranscriptText() {
	m.transcript_text = nil
	m.clearedFields[transcriptfile.FieldTranscriptText] = struct{}{}
}

// TranscriptTextCleared returns if the "transcript_text" field was cleared in this mutation.
func (m *TranscriptFileMutation) TranscriptTextCleared() bool {
	_, ok := m.clearedFields[transcriptfile.FieldTranscriptText]
	return ok
}

// ResetTranscriptText resets all changes to the "transcript_text" field.
func (m *TranscriptFileMutation) ResetTranscriptText() {
	m.transcript_text = nil
	delete(m.clearedFields, transcriptfile.FieldTranscriptText)
}

// SetTranscriptSegments sets the "transcript_segments" field.
func (m *TranscriptFileMutation) SetTranscriptSegments(jm json.RawMessage) {
	m.transcript_segments = &jm
	m.appendtranscript_segments = nil
}

// TranscriptSegments returns the value of the "transcript_segments" field in the mutation.
func (m *TranscriptFileMutation) TranscriptSegments() (r json.RawMessage, exists bool) {
	v := m.transcript_segments
	if v == nil {
		return
	}
	return *v, true
}

// OldTranscriptSegments returns the old "transcript_segments" field's value of the TranscriptFile entity.
// If the TranscriptFile object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TranscriptFileMutation) OldTranscriptSegments(ctx context.Context) (v json.RawMessage, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTranscriptSegments is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTranscriptSegments requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTranscriptSegments: %w", err)
	}
	return oldValue.TranscriptSegments, nil
}

// AppendTranscriptSegments adds jm to the "transcript_segments" field.
func (m *TranscriptFileMutation) AppendTranscriptSegments(jm json.RawMessage) {
	m.appendtranscript_segments = append(m.appendtranscript_segments, jm...)
}

// AppendedTranscriptSegments returns the list of values that were appended to the "transcript_segments" field in this mutation.
func (m *TranscriptFileMutation) AppendedTranscriptSegments() (json.RawMessage, bool) {
	if len(m.appendtranscript_segments) == 0 {
		return nil, false
	}
	return m.appendtranscript_segments, true
}

// ClearTranscriptSegments clears the value of the "transcript_segments" field.
func (m *TranscriptFileMutation) ClearTranscriptSegments() {
	m.transcript_segments = nil
	m.appendtranscript_segments = nil
	m.clearedFields[transcriptfile.FieldTranscriptSegments] = struct{}{}
}

// TranscriptSegmentsCleared returns if the "transcript_segments" field was cleared in this mutation.
func (m *TranscriptFileMutation) TranscriptSegmentsCleared() bool {
	_, ok := m.clearedFields[transcriptfile.FieldTranscriptSegments]
	return ok
}

// ResetTranscriptSegments resets all changes to the "transcript_segments" field.
func (m *TranscriptFileMutation) ResetTranscriptSegments() {
	m.transcript_segments = nil
	m.appendtranscript_segments = nil
	delete(m.clearedFields, transcriptfile.FieldTranscriptSegments)
}

// SetLanguage sets the "language" field.
func (m *TranscriptFileMutation) SetLanguage(s string) {
	m.language = &s
}

// Language returns the value of the "language" field in the mutation.
func (m *TranscriptFileMutation) Language() (r string, exists bool) {
	v := m.language
	if v == nil {
		return
	}
	return *v, true
}

// OldLanguage returns the old "language" field's value of the TranscriptFile entity.
// If the TranscriptFile object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TranscriptFileMutation) OldLanguage(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLanguage is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLanguage requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLanguage: %w", err)
	}
	return oldValue.Language, nil
}

// ClearLanguage clears the value of the "language" field.
func (m *TranscriptFileMutation) ClearLanguage() {
	m.language = nil
	m.clearedFields[transcriptfile.FieldLanguage] = struct{}{}
}

// LanguageCleared returns if the "language" field was cleared in this mutation.
func (m *TranscriptFileMutation) LanguageCleared() bool {
	_, ok := m.clearedFields[transcriptfile.FieldLanguage]
	return ok
}

// ResetLanguage resets all changes to the "language" field.
func (m *TranscriptFileMutation) ResetLanguage() {
	m.language = nil
	delete(m.clearedFields, transcriptfile.FieldLanguage)
}

// SetDurationSeconds sets the "duration_seconds" field.
func (m *TranscriptFileMutation) SetDurationSeconds(f float64) {
	m.duration_seconds = &f
	m.addduration_seconds = nil
}

// DurationSeconds returns the value of the "duration_seconds" field in the mutation.
func (m *TranscriptFileMutation) DurationSeconds() (r float64, exists bool) {
	v := m.duration_seconds
	if v == nil {
		return
	}
	return *v, true
}

// OldDurationSeconds returns the old "duration_seconds" field's value of the TranscriptFile entity.
// If the TranscriptFile object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TranscriptFileMutation) OldDurationSeconds(ctx context.Context) (v *float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDurationSeconds is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDurationSeconds requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDurationSeconds: %w", err)
	}
	return oldValue.DurationSeconds, nil
}

// AddDurationSeconds adds f to the "duration_seconds" field.
func (m *TranscriptFileMutation) AddDurationSeconds(f float64) {
	if m.addduration_seconds != nil {
		*m.addduration_seconds += f
	} else {
		m.addduration_seconds = &f
	}
}

// AddedDurationSeconds returns the value that was added to the "duration_seconds" field in this mutation.
func (m *TranscriptFileMutation) AddedDurationSeconds() (r float64, exists bool) {
	v := m.addduration_seconds
	if v == nil {
		return
	}
	return *v, true
}

// ClearDurationSeconds clears the value of the "duration_seconds" field.
func (m *TranscriptFileMutation) ClearDurationSeconds() {
	m.duration_seconds = nil
	m.addduration_seconds = nil
	m.clearedFields[transcriptfile.FieldDurationSeconds] = struct{}{}
}

// DurationSecondsCleared returns if the "duration_seconds" field was cleared in this mutation.
func (m *TranscriptFileMutation) DurationSecondsCleared() bool {
	_, ok := m.clearedFields[transcriptfile.FieldDurationSeconds]
	return ok
}

// ResetDurationSeconds resets all changes to the "duration_seconds" field.
func (m *TranscriptFileMutation) ResetDurationSeconds() {
	m.duration_seconds = nil
	m.addduration_seconds = nil
	delete(m.clearedFields, transcriptfile.FieldDurationSeconds)
}

// SetUploadedAt sets the "uploaded_at" field.
func (m *TranscriptFileMutation) SetUploadedAt(t time.Time) {
	m.uploaded_at = &t
}

// UploadedAt returns the value of the "uploaded_at" field in the mutation.
func (m *TranscriptFileMutation) UploadedAt() (r time.Time, exists bool) {
	v := m.uploaded_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUploadedAt returns the old "uploaded_at" field's value of the TranscriptFile entity.
// If the TranscriptFile object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TranscriptFileMutation) OldUploadedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUploadedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUploadedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUploadedAt: %w", err)
	}
	return oldValue.UploadedAt, nil
}

// ResetUploadedAt resets all changes to the "uploaded_at" field.
func (m *TranscriptFileMutation) ResetUploadedAt() {
	m.uploaded_at = nil
}

// AddSessionIDs adds the "sessions" edge to the ProcessingSession entity by ids.
func (m *TranscriptFileMutation) AddSessionIDs(ids ...uuid.UUID) {
	if m.sessions == nil {
		m.sessions = make(map[uuid.UUID]struct{})
	}
	for i := range ids {
		m.sessions[ids[i]] = struct{}{}
	}
}

// ClearSessions clears the "sessions" edge to the ProcessingSession entity.
func (m *TranscriptFileMutation) ClearSessions() {
	m.clearedsessions = true
}

// SessionsCleared reports if the "sessions" edge to the ProcessingSession entity was cleared.
func (m *TranscriptFileMutation) SessionsCleared() bool {
	return m.clearedsessions
}

// RemoveSessionIDs removes the "sessions" edge to the ProcessingSession entity by IDs.
func (m *TranscriptFileMutation) RemoveSessionIDs(ids ...uuid.UUID) {
	if m.removedsessions == nil {
		m.removedsessions = make(map[uuid.UUID]struct{})
	}
	for i := range ids {
		delete(m.sessions, ids[i])
		m.removedsessions[ids[i]] = struct{}{}
	}
}

// RemovedSessions returns the removed IDs of the "sessions" edge to the ProcessingSession entity.
func (m *TranscriptFileMutation) RemovedSessionsIDs() (ids []uuid.UUID) {
	for id := range m.removedsessions {
		ids = append(ids, id)
	}
	return
}

// SessionsIDs returns the "sessions" edge IDs in the mutation.
func (m *TranscriptFileMutation) SessionsIDs() (ids []uuid.UUID) {
	for id := range m.sessions {
		ids = append(ids, id)
	}
	return
}

// ResetSessions resets all changes to the "sessions" edge.
func (m *TranscriptFileMutation) ResetSessions() {
	m.sessions = nil
	m.clearedsessions = false
	m.removedsessions = nil
}

// AddResultIDs adds the "results" edge to the ExtractionResult entity by ids.
func (m *TranscriptFileMutation) AddResultIDs(ids ...uuid.UUID) {
	if m.results == nil {
		m.results = make(map[uuid.UUID]struct{})
	}
	for i := range ids {
		m.results[ids[i]] = struct{}{}
	}
}

// ClearResults clears the "results" edge to the ExtractionResult entity.
func (m *TranscriptFileMutation) ClearResults() {
	m.clearedresults = true
}

// ResultsCleared reports if the "results" edge to the ExtractionResult entity was cleared.
func (m *TranscriptFileMutation) ResultsCleared() bool {
	return m.clearedresults
}

// RemoveResultIDs removes the "results" edge to the ExtractionResult entity by IDs.
func (m *TranscriptFileMutation) RemoveResultIDs(ids ...uuid.UUID) {
	if m.removedresults == nil {
		m.removedresults = make(map[uuid.UUID]struct{})
	}
	for i := range ids {
		delete(m.results, ids[i])
		m.removedresults[ids[i]] = struct{}{}
	}
}

// RemovedResults returns the removed IDs of the "results" edge to the ExtractionResult entity.
func (m *TranscriptFileMutation) RemovedResultsIDs() (ids []uuid.UUID) {
	for id := range m.removedresults {
		ids = append(ids, id)
	}
	return
}

// ResultsIDs returns the "results" edge IDs in the mutation.
func (m *TranscriptFileMutation) ResultsIDs() (ids []uuid.UUID) {
	for id := range m.results {
		ids = append(ids, id)
	}
	return
}

// ResetResults resets all changes to the "results" edge.
func (m *TranscriptFileMutation) ResetResults() {
	m.results = nil
	m.clearedresults = false
	m.removedresults = nil
}

// AddSummarizationIDs adds the "summarizations" edge to the Summarization entity by ids.
func (m *TranscriptFileMutation) AddSummarizationIDs(ids ...uuid.UUID) {
	if m.summarizations == nil {
		m.summarizations = make(map[uuid.UUID]struct{})
	}
	for i := range ids {
		m.summarizations[ids[i]] = struct{}{}
	}
}

// ClearSummarizations clears the "summarizations" edge to the Summarization entity.
func (m *TranscriptFileMutation) ClearSummarizations() {
	m.clearedsummarizations = true
}

// SummarizationsCleared reports if the "summarizations" edge to the Summarization entity was cleared.
func (m *TranscriptFileMutation) SummarizationsCleared() bool {
	return m.clearedsummarizations
}

// RemoveSummarizationIDs removes the "summarizations" edge to the Summarization entity by IDs.
func (m *TranscriptFileMutation) RemoveSummarizationIDs(ids ...uuid.UUID) {
	if m.removedsummarizations == nil {
		m.removedsummarizations = make(map[uuid.UUID]struct{})
	}
	for i := range ids {
		delete(m.summarizations, ids[i])
		m.removedsummarizations[ids[i]] = struct{}{}
	}
}

// RemovedSummarizations returns the removed IDs of the "summarizations" edge to the Summarization entity.
func (m *TranscriptFileMutation) RemovedSummarizationsIDs() (ids []uuid.UUID) {
	for id := range m.removedsummarizations {
		ids = append(ids, id)
	}
	return
}

// SummarizationsIDs returns the "summarizations" edge IDs in the mutation.
func (m *TranscriptFileMutation) SummarizationsIDs() (ids []uuid.UUID) {
	for id := range m.summarizations {
		ids = append(ids, id)
	}
	return
}

// ResetSummarizations resets all changes to the "summarizations" edge.
func (m *TranscriptFileMutation) ResetSummarizations() {
	m.summarizations = nil
	m.clearedsummarizations = false
	m.removedsummarizations = nil
}

// Where appends a list predicates to the TranscriptFileMutation builder.
func (m *TranscriptFileMutation) Where(ps ...predicate.TranscriptFile) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the TranscriptFileMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *TranscriptFileMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.TranscriptFile, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *TranscriptFileMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *TranscriptFileMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (TranscriptFile).
func (m *TranscriptFileMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *TranscriptFileMutation) Fields() []string {
	fields := make([]string, 0, 7)
	if m.filename != nil {
		fields = append(fields, transcriptfile.FieldFilename)
	}
	if m.source_path != nil {
		fields = append(fields, transcriptfile.FieldSourcePath)
	}
	if m.transcript_text != nil {
		fields = append(fields, transcriptfile.FieldTranscriptText)
	}
	if m.transcript_segments != nil {
		fields = append(fields, transcriptfile.FieldTranscriptSegments)
	}
	if m.language != nil {
		fields = append(fields, transcriptfile.FieldLanguage)
	}
	if m.duration_seconds != nil {
		fields = append(fields, transcriptfile.FieldDurationSeconds)
	}
	if m.uploaded_at != nil {
		fields = append(fields, transcriptfile.FieldUploadedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *TranscriptFileMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case transcriptfile.FieldFilename:
		return m.Filename()
	case transcriptfile.FieldSourcePath:
		return m.SourcePath()
	case transcriptfile.FieldTranscriptText:
		return m.TranscriptText()
	case transcriptfile.FieldTranscriptSegments:
		return m.TranscriptSegments()
	case transcriptfile.FieldLanguage:
		return m.Language()
	case transcriptfile.FieldDurationSeconds:
		return m.DurationSeconds()
	case transcriptfile.FieldUploadedAt:
		return m.UploadedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *TranscriptFileMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case transcriptfile.FieldFilename:
		return m.OldFilename(ctx)
	case transcriptfile.FieldSourcePath:
		return m.OldSourcePath(ctx)
	case transcriptfile.FieldTranscriptText:
		return m.OldTranscriptText(ctx)
	case transcriptfile.FieldTranscriptSegments:
		return m.OldTranscriptSegments(ctx)
	case transcriptfile.FieldLanguage:
		return m.OldLanguage(ctx)
	case transcriptfile.FieldDurationSeconds:
		return m.OldDurationSeconds(ctx)
	case transcriptfile.FieldUploadedAt:
		return m.OldUploadedAt(ctx)
	}
	return nil, fmt.Errorf("unknown TranscriptFile field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *TranscriptFileMutation) SetField(name string, value ent.Value) error {
	switch name {
	case transcriptfile.FieldFilename:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetFilename(v)
		return nil
	case transcriptfile.FieldSourcePath:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSourcePath(v)
		return nil
	case transcriptfile.FieldTranscriptText:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTranscriptText(v)
		return nil
	case transcriptfile.FieldTranscriptSegments:
		v, ok := value.(json.RawMessage)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTranscriptSegments(v)
		return nil
	case transcriptfile.FieldLanguage:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLanguage(v)
		return nil
	case transcriptfile.FieldDurationSeconds:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDurationSeconds(v)
		return nil
	case transcriptfile.FieldUploadedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUploadedAt(v)
		return nil
	}
	return fmt.Errorf("unknown TranscriptFile field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *TranscriptFileMutation) AddedFields() []string {
	var fields []string
	if m.addduration_seconds != nil {
		fields = append(fields, transcriptfile.FieldDurationSeconds)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *TranscriptFileMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case transcriptfile.FieldDurationSeconds:
		return m.AddedDurationSeconds()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *TranscriptFileMutation) AddField(name string, value ent.Value) error {
	switch name {
	case transcriptfile.FieldDurationSeconds:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddDurationSeconds(v)
		return nil
	}
	return fmt.Errorf("unknown TranscriptFile numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *TranscriptFileMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(transcriptfile.FieldTranscriptText) {
		fields = append(fields, transcriptfile.FieldTranscriptText)
	}
	if m.FieldCleared(transcriptfile.FieldTranscriptSegments) {
		fields = append(fields, transcriptfile.FieldTranscriptSegments)
	}
	if m.FieldCleared(transcriptfile.FieldLanguage) {
		fields = append(fields, transcriptfile.FieldLanguage)
	}
	if m.FieldCleared(transcriptfile.FieldDurationSeconds) {
		fields = append(fields, transcriptfile.FieldDurationSeconds)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *TranscriptFileMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *TranscriptFileMutation) ClearField(name string) error {
	switch name {
	case transcriptfile.FieldTranscriptText:
		m.ClearTranscriptText()
		return nil
	case transcriptfile.FieldTranscriptSegments:
		m.ClearTranscriptSegments()
		return nil
	case transcriptfile.FieldLanguage:
		m.ClearLanguage()
		return nil
	case transcriptfile.FieldDurationSeconds:
		m.ClearDurationSeconds()
		return nil
	}
	return fmt.Errorf("unknown TranscriptFile nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *TranscriptFileMutation) ResetField(name string) error {
	switch name {
	case transcriptfile.FieldFilename:
		m.ResetFilename()
		return nil
	case transcriptfile.FieldSourcePath:
		m.ResetSourcePath()
		return nil
	case transcriptfile.FieldTranscriptText:
		m.ResetTranscriptText()
		return nil
	case transcriptfile.FieldTranscriptSegments:
		m.ResetTranscriptSegments()
		return nil
	case transcriptfile.FieldLanguage:
		m.ResetLanguage()
		return nil
	case transcriptfile.FieldDurationSeconds:
		m.ResetDurationSeconds()
		return nil
	case transcriptfile.FieldUploadedAt:
		m.ResetUploadedAt()
		return nil
	}
	return fmt.Errorf("unknown TranscriptFile field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *TranscriptFileMutation) AddedEdges() []string {
	edges := make([]string, 0, 3)
	if m.sessions != nil {
		edges = append(edges, transcriptfile.EdgeSessions)
	}
	if m.results != nil {
		edges = append(edges, transcriptfile.EdgeResults)
	}
	if m.summarizations != nil {
		edges = append(edges, transcriptfile.EdgeSummarizations)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *TranscriptFileMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case transcriptfile.EdgeSessions:
		ids := make([]ent.Value, 0, len(m.sessions))
		for id := range m.sessions {
			ids = append(ids, id)
		}
		return ids
	case transcriptfile.EdgeResults:
		ids := make([]ent.Value, 0, len(m.results))
		for id := range m.results {
			ids = append(ids, id)
		}
		return ids
	case transcriptfile.EdgeSummarizations:
		ids := make([]ent.Value, 0, len(m.summarizations))
		for id := range m.summarizations {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *TranscriptFileMutation) RemovedEdges() []string {
	edges := make([]string, 0, 3)
	if m.removedsessions != nil {
		edges = append(edges, transcriptfile.EdgeSessions)
	}
	if m.removedresults != nil {
		edges = append(edges, transcriptfile.EdgeResults)
	}
	if m.removedsummarizations != nil {
		edges = append(edges, transcriptfile.EdgeSummarizations)
	}
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *TranscriptFileMutation) RemovedIDs(name string) []ent.Value {
	switch name {
	case transcriptfile.EdgeSessions:
		ids := make([]ent.Value, 0, len(m.removedsessions))
		for id := range m.removedsessions {
			ids = append(ids, id)
		}
		return ids
	case transcriptfile.EdgeResults:
		ids := make([]ent.Value, 0, len(m.removedresults))
		for id := range m.removedresults {
			ids = append(ids, id)
		}
		return ids
	case transcriptfile.EdgeSummarizations:
		ids := make([]ent.Value, 0, len(m.removedsummarizations))
		for id := range m.removedsummarizations {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *TranscriptFileMutation) ClearedEdges() []string {
	edges := make([]string, 0, 3)
	if m.clearedsessions {
		edges = append(edges, transcriptfile.EdgeSessions)
	}
	if m.clearedresults {
		edges = append(edges, transcriptfile.EdgeResults)
	}
	if m.clearedsummarizations {
		edges = append(edges, transcriptfile.EdgeSummarizations)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *TranscriptFileMutation) EdgeCleared(name string) bool {
	switch name {
	case transcriptfile.EdgeSessions:
		return m.clearedsessions
	case transcriptfile.EdgeResults:
		return m.clearedresults
	case transcriptfile.EdgeSummarizations:
		return m.clearedsummarizations
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *TranscriptFileMutation) ClearEdge(name string) error {
	switch name {
	}
	return fmt.Errorf("unknown TranscriptFile unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *TranscriptFileMutation) ResetEdge(name string) error {
	switch name {
	case transcriptfile.EdgeSessions:
		m.ResetSessions()
		return nil
	case transcriptfile.EdgeResults:
		m.ResetResults()
		return nil
	case transcriptfile.EdgeSummarizations:
		m.ResetSummarizations()
		return nil
	}
	return fmt.Errorf("unknown TranscriptFile edge %s", name)
}
