// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/google/uuid"
	"github.com/jide-alade/voicenotes-tracker/gen/ent/extractionresult"
	"github.com/jide-alade/voicenotes-tracker/gen/ent/processingsession"
	"github.com/jide-alade/voicenotes-tracker/gen/ent/transcriptfile"
)

// ProcessingSessionCreate is the builder for creating a ProcessingSession entity.
type ProcessingSessionCreate struct {
	config
	mutation *ProcessingSessionMutation
	hooks    []Hook
}

// SetFileID sets the "file_id" field.
func (_c *ProcessingSessionCreate) SetFileID(v uuid.UUID) *ProcessingSessionCreate {
	_c.mutation.SetFileID(v)
	return _c
}

// SetSummarizationPromptID sets the "summarization_prompt_id" field.
func (_c *ProcessingSessionCreate) SetSummarizationPromptID(v uuid.UUID) *ProcessingSessionCreate {
	_c.mutation.SetSummarizationPromptID(v)
	return _c
}

// SetNillableSummarizationPromptID sets the "summarization_prompt_id" field if the given value is not nil.
func (_c *ProcessingSessionCreate) SetNillableSummarizationPromptID(v *uuid.UUID) *ProcessingSessionCreate {
	if v != nil {
		_c.SetSummarizationPromptID(*v)
	}
	return _c
}

// SetExtractionSelection sets the "extraction_selection" field.
func (_c *ProcessingSessionCreate) SetExtractionSelection(v []uuid.UUID) *ProcessingSessionCreate {
	_c.mutation.SetExtractionSelection(v)
	return _c
}

// SetSystemPrompt sets the "system_prompt" field.
func (_c *ProcessingSessionCreate) SetSystemPrompt(v string) *ProcessingSessionCreate {
	_c.mutation.SetSystemPrompt(v)
	return _c
}

// SetAiResponse sets the "ai_response" field.
func (_c *ProcessingSessionCreate) SetAiResponse(v string) *ProcessingSessionCreate {
	_c.mutation.SetAiResponse(v)
	return _c
}

// SetNillableAiResponse sets the "ai_response" field if the given value is not nil.
func (_c *ProcessingSessionCreate) SetNillableAiResponse(v *string) *ProcessingSessionCreate {
	if v != nil {
		_c.SetAiResponse(*v)
	}
	return _c
}

// SetParsedResponse sets the "parsed_response" field.
func (_c *ProcessingSessionCreate) SetParsedResponse(v json.RawMessage) *ProcessingSessionCreate {
	_c.mutation.SetParsedResponse(v)
	return _c
}

// SetStatus sets the "status" field.
func (_c *ProcessingSessionCreate) SetStatus(v string) *ProcessingSessionCreate {
	_c.mutation.SetStatus(v)
	return _c
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_c *ProcessingSessionCreate) SetNillableStatus(v *string) *ProcessingSessionCreate {
	if v != nil {
		_c.SetStatus(*v)
	}
	return _c
}

// SetErrorMessage sets the "error_message" field.
func (_c *ProcessingSessionCreate) SetErrorMessage(v string) *ProcessingSessionCreate {
	_c.mutation.SetErrorMessage(v)
	return _c
}

// SetNillableErrorMessage sets the "error_message" field if the given value is not nil.
func (_c *ProcessingSessionCreate) SetNillableErrorMessage(v *string) *ProcessingSessionCreate {
	if v != nil {
		_c.SetErrorMessage(*v)
	}
	return _c
}

// SetProcessingTimeMs sets the "processing_time_ms" field.
func (_c *ProcessingSessionCreate) SetProcessingTimeMs(v int64) *ProcessingSessionCreate {
	_c.mutation.SetProcessingTimeMs(v)
	return _c
}

// SetNillableProcessingTimeMs sets the "processing_time_ms" field if the given value is not nil.
func (_c *ProcessingSessionCreate) SetNillableProcessingTimeMs(v *int64) *ProcessingSessionCreate {
	if v != nil {
		_c.SetProcessingTimeMs(*v)
	}
	return _c
}

// SetTokenCount sets the "token_count" field.
func (_c *ProcessingSessionCreate) SetTokenCount(v int) *ProcessingSessionCreate {
	_c.mutation.SetTokenCount(v)
	return _c
}

// SetNillableTokenCount sets the "token_count" field if the given value is not nil.
func (_c *ProcessingSessionCreate) SetNillableTokenCount(v *int) *ProcessingSessionCreate {
	if v != nil {
		_c.SetTokenCount(*v)
	}
	return _c
}

// SetModel sets the "model" field.
func (_c *ProcessingSessionCreate) SetModel(v string) *ProcessingSessionCreate {
	_c.mutation.SetModel(v)
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *ProcessingSessionCreate) SetCreatedAt(v time.Time) *ProcessingSessionCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *ProcessingSessionCreate) SetNillableCreatedAt(v *time.Time) *ProcessingSessionCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetCompletedAt sets the "completed_at" field.
func (_c *ProcessingSessionCreate) SetCompletedAt(v time.Time) *ProcessingSessionCreate {
	_c.mutation.SetCompletedAt(v)
	return _c
}

// SetNillableCompletedAt sets the "completed_at" field if the given value is not nil.
func (_c *ProcessingSessionCreate) SetNillableCompletedAt(v *time.Time) *ProcessingSessionCreate {
	if v != nil {
		_c.SetCompletedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *ProcessingSessionCreate) SetID(v uuid.UUID) *ProcessingSessionCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetNillableID sets the "id" field if the given value is not nil.
func (_c *ProcessingSessionCreate) SetNillableID(v *uuid.UUID) *ProcessingSessionCreate {
	if v != nil {
		_c.SetID(*v)
	}
	return _c
}

// SetFile sets the "file" edge to the TranscriptFile entity.
func (_c *ProcessingSessionCreate) SetFile(v *TranscriptFile) *ProcessingSessionCreate {
	return _c.SetFileID(v.ID)
}

// AddResultIDs adds the "results" edge to the ExtractionResult entity by IDs.
func (_c *ProcessingSessionCreate) AddResultIDs(ids ...uuid.UUID) *ProcessingSessionCreate {
	_c.mutation.AddResultIDs(ids...)
	return _c
}

// AddResults adds the "results" edges to the ExtractionResult entity.
func (_c *ProcessingSessionCreate) AddResults(v ...*ExtractionResult) *ProcessingSessionCreate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddResultIDs(ids...)
}

// Mutation returns the ProcessingSessionMutation object of the builder.
func (_c *ProcessingSessionCreate) Mutation() *ProcessingSessionMutation {
	return _c.mutation
}

// Save creates the ProcessingSession in the database.
func (_c *ProcessingSessionCreate) Save(ctx context.Context) (*ProcessingSession, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *ProcessingSessionCreate) SaveX(ctx context.Context) *ProcessingSession {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ProcessingSessionCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ProcessingSessionCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *ProcessingSessionCreate) defaults() {
	if _, ok := _c.mutation.Status(); !ok {
		v := processingsession.DefaultStatus
		_c.mutation.SetStatus(v)
	}
	if _, ok := _c.mutation.ProcessingTimeMs(); !ok {
		v := processingsession.DefaultProcessingTimeMs
		_c.mutation.SetProcessingTimeMs(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := processingsession.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.ID(); !ok {
		v := processingsession.DefaultID()
		_c.mutation.SetID(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *ProcessingSessionCreate) check() error {
	if _, ok := _c.mutation.FileID(); !ok {
		return &ValidationError{Name: "file_id", err: errors.New(`ent: missing required field "ProcessingSession.file_id"`)}
	}
	if _, ok := _c.mutation.ExtractionSelection(); !ok {
		return &ValidationError{Name: "extraction_selection", err: errors.New(`ent: missing required field "ProcessingSession.extraction_selection"`)}
	}
	if _, ok := _c.mutation.SystemPrompt(); !ok {
		return &ValidationError{Name: "system_prompt", err: errors.New(`ent: missing required field "ProcessingSession.system_prompt"`)}
	}
	if _, ok := _c.mutation.Status(); !ok {
		return &ValidationError{Name: "status", err: errors.New(`ent: missing required field "ProcessingSession.status"`)}
	}
	if v, ok := _c.mutation.Status(); ok {
		if err := processingsession.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "ProcessingSession.status": %w`, err)}
		}
	}
	if _, ok := _c.mutation.ProcessingTimeMs(); !ok {
		return &ValidationError{Name: "processing_time_ms", err: errors.New(`ent: missing required field "ProcessingSession.processing_time_ms"`)}
	}
	if _, ok := _c.mutation.Model(); !ok {
		return &ValidationError{Name: "model", err: errors.New(`ent: missing required field "ProcessingSession.model"`)}
	}
	if v, ok := _c.mutation.Model(); ok {
		if err := processingsession.ModelValidator(v); err != nil {
			return &ValidationError{Name: "model", err: fmt.Errorf(`ent: validator failed for field "ProcessingSession.model": %w`, err)}
		}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "ProcessingSession.created_at"`)}
	}
	if len(_c.mutation.FileIDs()) == 0 {
		return &ValidationError{Name: "file", err: errors.New(`ent: missing required edge "ProcessingSession.file"`)}
	}
	return nil
}

func (_c *ProcessingSessionCreate) sqlSave(ctx context.Context) (*ProcessingSession, error) {
	if err := _c.check(); err != nil {
		return nil, err
	}
	_node, _spec := _c.createSpec()
	if err := sqlgraph.CreateNode(ctx, _c.driver, _spec); err != nil {
		if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	if _spec.ID.Value != nil {
		if id, ok := _spec.ID.Value.(*uuid.UUID); ok {
			_node.ID = *id
		} else if err := _node.ID.Scan(_spec.ID.Value); err != nil {
			return nil, err
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *ProcessingSessionCreate) createSpec() (*ProcessingSession, *sqlgraph.CreateSpec) {
	var (
		_node = &ProcessingSession{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(processingsession.Table, sqlgraph.NewFieldSpec(processingsession.FieldID, field.TypeUUID))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = &id
	}
	if value, ok := _c.mutation.SummarizationPromptID(); ok {
		_spec.SetField(processingsession.FieldSummarizationPromptID, field.TypeUUID, value)
		_node.SummarizationPromptID = &value
	}
	if value, ok := _c.mutation.ExtractionSelection(); ok {
		_spec.SetField(processingsession.FieldExtractionSelection, field.TypeJSON, value)
		_node.ExtractionSelection = value
	}
	if value, ok := _c.mutation.SystemPrompt(); ok {
		_spec.SetField(processingsession.FieldSystemPrompt, field.TypeString, value)
		_node.SystemPrompt = value
	}
	if value, ok := _c.mutation.AiResponse(); ok {
		_spec.SetField(processingsession.FieldAiResponse, field.TypeString, value)
		_node.AiResponse = &value
	}
	if value, ok := _c.mutation.ParsedResponse(); ok {
		_spec.SetField(processingsession.FieldParsedResponse, field.TypeJSON, value)
		_node.ParsedResponse = value
	}
	if value, ok := _c.mutation.Status(); ok {
		_spec.SetField(processingsession.FieldStatus, field.TypeString, value)
		_node.Status = value
	}
	if value, ok := _c.mutation.ErrorMessage(); ok {
		_spec.SetField(processingsession.FieldErrorMessage, field.TypeString, value)
		_node.ErrorMessage = &value
	}
	if value, ok := _c.mutation.ProcessingTimeMs(); ok {
		_spec.SetField(processingsession.FieldProcessingTimeMs, field.TypeInt64, value)
		_node.ProcessingTimeMs = value
	}
	if value, ok := _c.mutation.TokenCount(); ok {
		_spec.SetField(processingsession.FieldTokenCount, field.TypeInt, value)
		_node.TokenCount = &value
	}
	if value, ok := _c.mutation.Model(); ok {
		_spec.SetField(processingsession.FieldModel, field.TypeString, value)
		_node.Model = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(processingsession.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.CompletedAt(); ok {
		_spec.SetField(processingsession.FieldCompletedAt, field.TypeTime, value)
		_node.CompletedAt = &value
	}
	if nodes := _c.mutation.FileIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   processingsession.FileTable,
			Columns: []string{processingsession.FileColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(transcriptfile.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_node.FileID = nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	if nodes := _c.mutation.ResultsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   processingsession.ResultsTable,
			Columns: []string{processingsession.ResultsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(extractionresult.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// ProcessingSessionCreateBulk is the builder for creating many ProcessingSession entities in bulk.
type ProcessingSessionCreateBulk struct {
	config
	err      error
	builders []*ProcessingSessionCreate
}

// Save creates the ProcessingSession entities in the database.
func (_c *ProcessingSessionCreateBulk) Save(ctx context.Context) ([]*ProcessingSession, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*ProcessingSession, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*ProcessingSessionMutation)
				if !ok {
					return nil, fmt.Errorf("unexpected mutation type %T", m)
				}
				if err := builder.check(); err != nil {
					return nil, err
				}
				builder.mutation = mutation
				var err error
				nodes[i], specs[i] = builder.createSpec()
				if i < len(mutators)-1 {
					_, err = mutators[i+1].Mutate(root, _c.builders[i+1].mutation)
				} else {
					spec := &sqlgraph.BatchCreateSpec{Nodes: specs}
					// Invoke the actual operation on the latest mutation in the chain.
					if err = sqlgraph.BatchCreate(ctx, _c.driver, spec); err != nil {
						if sqlgraph.IsConstraintError(err) {
							err = &ConstraintError{msg: err.Error(), wrap: err}
						}
					}
				}
				if err != nil {
					return nil, err
				}
				mutation.id = &nodes[i].ID
				mutation.done = true
				return nodes[i], nil
			})
			for i := len(builder.hooks) - 1; i >= 0; i-- {
				mut = builder.hooks[i](mut)
			}
			mutators[i] = mut
		}(i, ctx)
	}
	if len(mutators) > 0 {
		if _, err := mutators[0].Mutate(ctx, _c.builders[0].mutation); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

// SaveX is like Save, but panics if an error occurs.
func (_c *ProcessingSessionCreateBulk) SaveX(ctx context.Context) []*ProcessingSession {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ProcessingSessionCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ProcessingSessionCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
