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
	"github.com/jide-alade/voicenotes-tracker/gen/ent/extractiondefinition"
	"github.com/jide-alade/voicenotes-tracker/gen/ent/extractionresult"
	"github.com/jide-alade/voicenotes-tracker/gen/ent/processingsession"
	"github.com/jide-alade/voicenotes-tracker/gen/ent/transcriptfile"
)

// ExtractionResultCreate is the builder for creating a ExtractionResult entity.
type ExtractionResultCreate struct {
	config
	mutation *ExtractionResultMutation
	hooks    []Hook
}

// SetFileID sets the "file_id" field.
func (_c *ExtractionResultCreate) SetFileID(v uuid.UUID) *ExtractionResultCreate {
	_c.mutation.SetFileID(v)
	return _c
}

// SetSessionID sets the "session_id" field.
func (_c *ExtractionResultCreate) SetSessionID(v uuid.UUID) *ExtractionResultCreate {
	_c.mutation.SetSessionID(v)
	return _c
}

// SetDefinitionID sets the "definition_id" field.
func (_c *ExtractionResultCreate) SetDefinitionID(v uuid.UUID) *ExtractionResultCreate {
	_c.mutation.SetDefinitionID(v)
	return _c
}

// SetExtractionType sets the "extraction_type" field.
func (_c *ExtractionResultCreate) SetExtractionType(v string) *ExtractionResultCreate {
	_c.mutation.SetExtractionType(v)
	return _c
}

// SetContent sets the "content" field.
func (_c *ExtractionResultCreate) SetContent(v json.RawMessage) *ExtractionResultCreate {
	_c.mutation.SetContent(v)
	return _c
}

// SetConfidence sets the "confidence" field.
func (_c *ExtractionResultCreate) SetConfidence(v float32) *ExtractionResultCreate {
	_c.mutation.SetConfidence(v)
	return _c
}

// SetNillableConfidence sets the "confidence" field if the given value is not nil.
func (_c *ExtractionResultCreate) SetNillableConfidence(v *float32) *ExtractionResultCreate {
	if v != nil {
		_c.SetConfidence(*v)
	}
	return _c
}

// SetProcessingTimeMs sets the "processing_time_ms" field.
func (_c *ExtractionResultCreate) SetProcessingTimeMs(v int64) *ExtractionResultCreate {
	_c.mutation.SetProcessingTimeMs(v)
	return _c
}

// SetNillableProcessingTimeMs sets the "processing_time_ms" field if the given value is not nil.
func (_c *ExtractionResultCreate) SetNillableProcessingTimeMs(v *int64) *ExtractionResultCreate {
	if v != nil {
		_c.SetProcessingTimeMs(*v)
	}
	return _c
}

// SetModel sets the "model" field.
func (_c *ExtractionResultCreate) SetModel(v string) *ExtractionResultCreate {
	_c.mutation.SetModel(v)
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *ExtractionResultCreate) SetCreatedAt(v time.Time) *ExtractionResultCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *ExtractionResultCreate) SetNillableCreatedAt(v *time.Time) *ExtractionResultCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *ExtractionResultCreate) SetID(v uuid.UUID) *ExtractionResultCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetNillableID sets the "id" field if the given value is not nil.
func (_c *ExtractionResultCreate) SetNillableID(v *uuid.UUID) *ExtractionResultCreate {
	if v != nil {
		_c.SetID(*v)
	}
	return _c
}

// SetFile sets the "file" edge to the TranscriptFile entity.
func (_c *ExtractionResultCreate) SetFile(v *TranscriptFile) *ExtractionResultCreate {
	return _c.SetFileID(v.ID)
}

// SetSession sets the "session" edge to the ProcessingSession entity.
func (_c *ExtractionResultCreate) SetSession(v *ProcessingSession) *ExtractionResultCreate {
	return _c.SetSessionID(v.ID)
}

// SetDefinition sets the "definition" edge to the ExtractionDefinition entity.
func (_c *ExtractionResultCreate) SetDefinition(v *ExtractionDefinition) *ExtractionResultCreate {
	return _c.SetDefinitionID(v.ID)
}

// Mutation returns the ExtractionResultMutation object of the builder.
func (_c *ExtractionResultCreate) Mutation() *ExtractionResultMutation {
	return _c.mutation
}

// Save creates the ExtractionResult in the database.
func (_c *ExtractionResultCreate) Save(ctx context.Context) (*ExtractionResult, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *ExtractionResultCreate) SaveX(ctx context.Context) *ExtractionResult {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ExtractionResultCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ExtractionResultCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *ExtractionResultCreate) defaults() {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := extractionresult.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.ID(); !ok {
		v := extractionresult.DefaultID()
		_c.mutation.SetID(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *ExtractionResultCreate) check() error {
	if _, ok := _c.mutation.FileID(); !ok {
		return &ValidationError{Name: "file_id", err: errors.New(`ent: missing required field "ExtractionResult.file_id"`)}
	}
	if _, ok := _c.mutation.SessionID(); !ok {
		return &ValidationError{Name: "session_id", err: errors.New(`ent: missing required field "ExtractionResult.session_id"`)}
	}
	if _, ok := _c.mutation.DefinitionID(); !ok {
		return &ValidationError{Name: "definition_id", err: errors.New(`ent: missing required field "ExtractionResult.definition_id"`)}
	}
	if _, ok := _c.mutation.ExtractionType(); !ok {
		return &ValidationError{Name: "extraction_type", err: errors.New(`ent: missing required field "ExtractionResult.extraction_type"`)}
	}
	if v, ok := _c.mutation.ExtractionType(); ok {
		if err := extractionresult.ExtractionTypeValidator(v); err != nil {
			return &ValidationError{Name: "extraction_type", err: fmt.Errorf(`ent: validator failed for field "ExtractionResult.extraction_type": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Content(); !ok {
		return &ValidationError{Name: "content", err: errors.New(`ent: missing required field "ExtractionResult.content"`)}
	}
	if _, ok := _c.mutation.Model(); !ok {
		return &ValidationError{Name: "model", err: errors.New(`ent: missing required field "ExtractionResult.model"`)}
	}
	if v, ok := _c.mutation.Model(); ok {
		if err := extractionresult.ModelValidator(v); err != nil {
			return &ValidationError{Name: "model", err: fmt.Errorf(`ent: validator failed for field "ExtractionResult.model": %w`, err)}
		}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "ExtractionResult.created_at"`)}
	}
	if len(_c.mutation.FileIDs()) == 0 {
		return &ValidationError{Name: "file", err: errors.New(`ent: missing required edge "ExtractionResult.file"`)}
	}
	if len(_c.mutation.SessionIDs()) == 0 {
		return &ValidationError{Name: "session", err: errors.New(`ent: missing required edge "ExtractionResult.session"`)}
	}
	if len(_c.mutation.DefinitionIDs()) == 0 {
		return &ValidationError{Name: "definition", err: errors.New(`ent: missing required edge "ExtractionResult.definition"`)}
	}
	return nil
}

func (_c *ExtractionResultCreate) sqlSave(ctx context.Context) (*ExtractionResult, error) {
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

func (_c *ExtractionResultCreate) createSpec() (*ExtractionResult, *sqlgraph.CreateSpec) {
	var (
		_node = &ExtractionResult{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(extractionresult.Table, sqlgraph.NewFieldSpec(extractionresult.FieldID, field.TypeUUID))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = &id
	}
	if value, ok := _c.mutation.ExtractionType(); ok {
		_spec.SetField(extractionresult.FieldExtractionType, field.TypeString, value)
		_node.ExtractionType = value
	}
	if value, ok := _c.mutation.Content(); ok {
		_spec.SetField(extractionresult.FieldContent, field.TypeJSON, value)
		_node.Content = value
	}
	if value, ok := _c.mutation.Confidence(); ok {
		_spec.SetField(extractionresult.FieldConfidence, field.TypeFloat32, value)
		_node.Confidence = &value
	}
	if value, ok := _c.mutation.ProcessingTimeMs(); ok {
		_spec.SetField(extractionresult.FieldProcessingTimeMs, field.TypeInt64, value)
		_node.ProcessingTimeMs = &value
	}
	if value, ok := _c.mutation.Model(); ok {
		_spec.SetField(extractionresult.FieldModel, field.TypeString, value)
		_node.Model = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(extractionresult.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if nodes := _c.mutation.FileIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   extractionresult.FileTable,
			Columns: []string{extractionresult.FileColumn},
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
	if nodes := _c.mutation.SessionIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   extractionresult.SessionTable,
			Columns: []string{extractionresult.SessionColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(processingsession.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_node.SessionID = nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	if nodes := _c.mutation.DefinitionIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   extractionresult.DefinitionTable,
			Columns: []string{extractionresult.DefinitionColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(extractiondefinition.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_node.DefinitionID = nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// ExtractionResultCreateBulk is the builder for creating many ExtractionResult entities in bulk.
type ExtractionResultCreateBulk struct {
	config
	err      error
	builders []*ExtractionResultCreate
}

// Save creates the ExtractionResult entities in the database.
func (_c *ExtractionResultCreateBulk) Save(ctx context.Context) ([]*ExtractionResult, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*ExtractionResult, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*ExtractionResultMutation)
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
func (_c *ExtractionResultCreateBulk) SaveX(ctx context.Context) []*ExtractionResult {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ExtractionResultCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ExtractionResultCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
