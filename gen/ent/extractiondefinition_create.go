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
)

// ExtractionDefinitionCreate is the builder for creating a ExtractionDefinition entity.
type ExtractionDefinitionCreate struct {
	config
	mutation *ExtractionDefinitionMutation
	hooks    []Hook
}

// SetName sets the "name" field.
func (_c *ExtractionDefinitionCreate) SetName(v string) *ExtractionDefinitionCreate {
	_c.mutation.SetName(v)
	return _c
}

// SetJSONKey sets the "json_key" field.
func (_c *ExtractionDefinitionCreate) SetJSONKey(v string) *ExtractionDefinitionCreate {
	_c.mutation.SetJSONKey(v)
	return _c
}

// SetJSONSchema sets the "json_schema" field.
func (_c *ExtractionDefinitionCreate) SetJSONSchema(v json.RawMessage) *ExtractionDefinitionCreate {
	_c.mutation.SetJSONSchema(v)
	return _c
}

// SetAiInstructions sets the "ai_instructions" field.
func (_c *ExtractionDefinitionCreate) SetAiInstructions(v string) *ExtractionDefinitionCreate {
	_c.mutation.SetAiInstructions(v)
	return _c
}

// SetOutputType sets the "output_type" field.
func (_c *ExtractionDefinitionCreate) SetOutputType(v string) *ExtractionDefinitionCreate {
	_c.mutation.SetOutputType(v)
	return _c
}

// SetCategory sets the "category" field.
func (_c *ExtractionDefinitionCreate) SetCategory(v string) *ExtractionDefinitionCreate {
	_c.mutation.SetCategory(v)
	return _c
}

// SetNillableCategory sets the "category" field if the given value is not nil.
func (_c *ExtractionDefinitionCreate) SetNillableCategory(v *string) *ExtractionDefinitionCreate {
	if v != nil {
		_c.SetCategory(*v)
	}
	return _c
}

// SetIsActive sets the "is_active" field.
func (_c *ExtractionDefinitionCreate) SetIsActive(v bool) *ExtractionDefinitionCreate {
	_c.mutation.SetIsActive(v)
	return _c
}

// SetNillableIsActive sets the "is_active" field if the given value is not nil.
func (_c *ExtractionDefinitionCreate) SetNillableIsActive(v *bool) *ExtractionDefinitionCreate {
	if v != nil {
		_c.SetIsActive(*v)
	}
	return _c
}

// SetSortOrder sets the "sort_order" field.
func (_c *ExtractionDefinitionCreate) SetSortOrder(v int) *ExtractionDefinitionCreate {
	_c.mutation.SetSortOrder(v)
	return _c
}

// SetNillableSortOrder sets the "sort_order" field if the given value is not nil.
func (_c *ExtractionDefinitionCreate) SetNillableSortOrder(v *int) *ExtractionDefinitionCreate {
	if v != nil {
		_c.SetSortOrder(*v)
	}
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *ExtractionDefinitionCreate) SetCreatedAt(v time.Time) *ExtractionDefinitionCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *ExtractionDefinitionCreate) SetNillableCreatedAt(v *time.Time) *ExtractionDefinitionCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *ExtractionDefinitionCreate) SetUpdatedAt(v time.Time) *ExtractionDefinitionCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *ExtractionDefinitionCreate) SetNillableUpdatedAt(v *time.Time) *ExtractionDefinitionCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *ExtractionDefinitionCreate) SetID(v uuid.UUID) *ExtractionDefinitionCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetNillableID sets the "id" field if the given value is not nil.
func (_c *ExtractionDefinitionCreate) SetNillableID(v *uuid.UUID) *ExtractionDefinitionCreate {
	if v != nil {
		_c.SetID(*v)
	}
	return _c
}

// AddResultIDs adds the "results" edge to the ExtractionResult entity by IDs.
func (_c *ExtractionDefinitionCreate) AddResultIDs(ids ...uuid.UUID) *ExtractionDefinitionCreate {
	_c.mutation.AddResultIDs(ids...)
	return _c
}

// AddResults adds the "results" edges to the ExtractionResult entity.
func (_c *ExtractionDefinitionCreate) AddResults(v ...*ExtractionResult) *ExtractionDefinitionCreate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddResultIDs(ids...)
}

// Mutation returns the ExtractionDefinitionMutation object of the builder.
func (_c *ExtractionDefinitionCreate) Mutation() *ExtractionDefinitionMutation {
	return _c.mutation
}

// Save creates the ExtractionDefinition in the database.
func (_c *ExtractionDefinitionCreate) Save(ctx context.Context) (*ExtractionDefinition, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *ExtractionDefinitionCreate) SaveX(ctx context.Context) *ExtractionDefinition {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ExtractionDefinitionCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ExtractionDefinitionCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *ExtractionDefinitionCreate) defaults() {
	if _, ok := _c.mutation.Category(); !ok {
		v := extractiondefinition.DefaultCategory
		_c.mutation.SetCategory(v)
	}
	if _, ok := _c.mutation.IsActive(); !ok {
		v := extractiondefinition.DefaultIsActive
		_c.mutation.SetIsActive(v)
	}
	if _, ok := _c.mutation.SortOrder(); !ok {
		v := extractiondefinition.DefaultSortOrder
		_c.mutation.SetSortOrder(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := extractiondefinition.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		v := extractiondefinition.DefaultUpdatedAt()
		_c.mutation.SetUpdatedAt(v)
	}
	if _, ok := _c.mutation.ID(); !ok {
		v := extractiondefinition.DefaultID()
		_c.mutation.SetID(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *ExtractionDefinitionCreate) check() error {
	if _, ok := _c.mutation.Name(); !ok {
		return &ValidationError{Name: "name", err: errors.New(`ent: missing required field "ExtractionDefinition.name"`)}
	}
	if v, ok := _c.mutation.Name(); ok {
		if err := extractiondefinition.NameValidator(v); err != nil {
			return &ValidationError{Name: "name", err: fmt.Errorf(`ent: validator failed for field "ExtractionDefinition.name": %w`, err)}
		}
	}
	if _, ok := _c.mutation.JSONKey(); !ok {
		return &ValidationError{Name: "json_key", err: errors.New(`ent: missing required field "ExtractionDefinition.json_key"`)}
	}
	if v, ok := _c.mutation.JSONKey(); ok {
		if err := extractiondefinition.JSONKeyValidator(v); err != nil {
			return &ValidationError{Name: "json_key", err: fmt.Errorf(`ent: validator failed for field "ExtractionDefinition.json_key": %w`, err)}
		}
	}
	if _, ok := _c.mutation.AiInstructions(); !ok {
		return &ValidationError{Name: "ai_instructions", err: errors.New(`ent: missing required field "ExtractionDefinition.ai_instructions"`)}
	}
	if v, ok := _c.mutation.AiInstructions(); ok {
		if err := extractiondefinition.AiInstructionsValidator(v); err != nil {
			return &ValidationError{Name: "ai_instructions", err: fmt.Errorf(`ent: validator failed for field "ExtractionDefinition.ai_instructions": %w`, err)}
		}
	}
	if _, ok := _c.mutation.OutputType(); !ok {
		return &ValidationError{Name: "output_type", err: errors.New(`ent: missing required field "ExtractionDefinition.output_type"`)}
	}
	if v, ok := _c.mutation.OutputType(); ok {
		if err := extractiondefinition.OutputTypeValidator(v); err != nil {
			return &ValidationError{Name: "output_type", err: fmt.Errorf(`ent: validator failed for field "ExtractionDefinition.output_type": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Category(); !ok {
		return &ValidationError{Name: "category", err: errors.New(`ent: missing required field "ExtractionDefinition.category"`)}
	}
	if v, ok := _c.mutation.Category(); ok {
		if err := extractiondefinition.CategoryValidator(v); err != nil {
			return &ValidationError{Name: "category", err: fmt.Errorf(`ent: validator failed for field "ExtractionDefinition.category": %w`, err)}
		}
	}
	if _, ok := _c.mutation.IsActive(); !ok {
		return &ValidationError{Name: "is_active", err: errors.New(`ent: missing required field "ExtractionDefinition.is_active"`)}
	}
	if _, ok := _c.mutation.SortOrder(); !ok {
		return &ValidationError{Name: "sort_order", err: errors.New(`ent: missing required field "ExtractionDefinition.sort_order"`)}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "ExtractionDefinition.created_at"`)}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`ent: missing required field "ExtractionDefinition.updated_at"`)}
	}
	return nil
}

func (_c *ExtractionDefinitionCreate) sqlSave(ctx context.Context) (*ExtractionDefinition, error) {
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

func (_c *ExtractionDefinitionCreate) createSpec() (*ExtractionDefinition, *sqlgraph.CreateSpec) {
	var (
		_node = &ExtractionDefinition{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(extractiondefinition.Table, sqlgraph.NewFieldSpec(extractiondefinition.FieldID, field.TypeUUID))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = &id
	}
	if value, ok := _c.mutation.Name(); ok {
		_spec.SetField(extractiondefinition.FieldName, field.TypeString, value)
		_node.Name = value
	}
	if value, ok := _c.mutation.JSONKey(); ok {
		_spec.SetField(extractiondefinition.FieldJSONKey, field.TypeString, value)
		_node.JSONKey = value
	}
	if value, ok := _c.mutation.JSONSchema(); ok {
		_spec.SetField(extractiondefinition.FieldJSONSchema, field.TypeJSON, value)
		_node.JSONSchema = value
	}
	if value, ok := _c.mutation.AiInstructions(); ok {
		_spec.SetField(extractiondefinition.FieldAiInstructions, field.TypeString, value)
		_node.AiInstructions = value
	}
	if value, ok := _c.mutation.OutputType(); ok {
		_spec.SetField(extractiondefinition.FieldOutputType, field.TypeString, value)
		_node.OutputType = value
	}
	if value, ok := _c.mutation.Category(); ok {
		_spec.SetField(extractiondefinition.FieldCategory, field.TypeString, value)
		_node.Category = value
	}
	if value, ok := _c.mutation.IsActive(); ok {
		_spec.SetField(extractiondefinition.FieldIsActive, field.TypeBool, value)
		_node.IsActive = value
	}
	if value, ok := _c.mutation.SortOrder(); ok {
		_spec.SetField(extractiondefinition.FieldSortOrder, field.TypeInt, value)
		_node.SortOrder = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(extractiondefinition.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(extractiondefinition.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	if nodes := _c.mutation.ResultsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   extractiondefinition.ResultsTable,
			Columns: []string{extractiondefinition.ResultsColumn},
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

// ExtractionDefinitionCreateBulk is the builder for creating many ExtractionDefinition entities in bulk.
type ExtractionDefinitionCreateBulk struct {
	config
	err      error
	builders []*ExtractionDefinitionCreate
}

// Save creates the ExtractionDefinition entities in the database.
func (_c *ExtractionDefinitionCreateBulk) Save(ctx context.Context) ([]*ExtractionDefinition, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*ExtractionDefinition, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*ExtractionDefinitionMutation)
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
func (_c *ExtractionDefinitionCreateBulk) SaveX(ctx context.Context) []*ExtractionDefinition {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ExtractionDefinitionCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ExtractionDefinitionCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
