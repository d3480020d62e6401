// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/google/uuid"
	"github.com/jide-alade/voicenotes-tracker/gen/ent/summarization"
	"github.com/jide-alade/voicenotes-tracker/gen/ent/summarizationprompt"
)

// SummarizationPromptCreate is the builder for creating a SummarizationPrompt entity.
type SummarizationPromptCreate struct {
	config
	mutation *SummarizationPromptMutation
	hooks    []Hook
}

// SetName sets the "name" field.
func (_c *SummarizationPromptCreate) SetName(v string) *SummarizationPromptCreate {
	_c.mutation.SetName(v)
	return _c
}

// SetPrompt sets the "prompt" field.
func (_c *SummarizationPromptCreate) SetPrompt(v string) *SummarizationPromptCreate {
	_c.mutation.SetPrompt(v)
	return _c
}

// SetIsDefault sets the "is_default" field.
func (_c *SummarizationPromptCreate) SetIsDefault(v bool) *SummarizationPromptCreate {
	_c.mutation.SetIsDefault(v)
	return _c
}

// SetNillableIsDefault sets the "is_default" field if the given value is not nil.
func (_c *SummarizationPromptCreate) SetNillableIsDefault(v *bool) *SummarizationPromptCreate {
	if v != nil {
		_c.SetIsDefault(*v)
	}
	return _c
}

// SetIsActive sets the "is_active" field.
func (_c *SummarizationPromptCreate) SetIsActive(v bool) *SummarizationPromptCreate {
	_c.mutation.SetIsActive(v)
	return _c
}

// SetNillableIsActive sets the "is_active" field if the given value is not nil.
func (_c *SummarizationPromptCreate) SetNillableIsActive(v *bool) *SummarizationPromptCreate {
	if v != nil {
		_c.SetIsActive(*v)
	}
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *SummarizationPromptCreate) SetCreatedAt(v time.Time) *SummarizationPromptCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *SummarizationPromptCreate) SetNillableCreatedAt(v *time.Time) *SummarizationPromptCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *SummarizationPromptCreate) SetUpdatedAt(v time.Time) *SummarizationPromptCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *SummarizationPromptCreate) SetNillableUpdatedAt(v *time.Time) *SummarizationPromptCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *SummarizationPromptCreate) SetID(v uuid.UUID) *SummarizationPromptCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetNillableID sets the "id" field if the given value is not nil.
func (_c *SummarizationPromptCreate) SetNillableID(v *uuid.UUID) *SummarizationPromptCreate {
	if v != nil {
		_c.SetID(*v)
	}
	return _c
}

// AddSummarizationIDs adds the "summarizations" edge to the Summarization entity by IDs.
func (_c *SummarizationPromptCreate) AddSummarizationIDs(ids ...uuid.UUID) *SummarizationPromptCreate {
	_c.mutation.AddSummarizationIDs(ids...)
	return _c
}

// AddSummarizations adds the "summarizations" edges to the Summarization entity.
func (_c *SummarizationPromptCreate) AddSummarizations(v ...*Summarization) *SummarizationPromptCreate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddSummarizationIDs(ids...)
}

// Mutation returns the SummarizationPromptMutation object of the builder.
func (_c *SummarizationPromptCreate) Mutation() *SummarizationPromptMutation {
	return _c.mutation
}

// Save creates the SummarizationPrompt in the database.
func (_c *SummarizationPromptCreate) Save(ctx context.Context) (*SummarizationPrompt, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *SummarizationPromptCreate) SaveX(ctx context.Context) *SummarizationPrompt {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *SummarizationPromptCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *SummarizationPromptCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *SummarizationPromptCreate) defaults() {
	if _, ok := _c.mutation.IsDefault(); !ok {
		v := summarizationprompt.DefaultIsDefault
		_c.mutation.SetIsDefault(v)
	}
	if _, ok := _c.mutation.IsActive(); !ok {
		v := summarizationprompt.DefaultIsActive
		_c.mutation.SetIsActive(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := summarizationprompt.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		v := summarizationprompt.DefaultUpdatedAt()
		_c.mutation.SetUpdatedAt(v)
	}
	if _, ok := _c.mutation.ID(); !ok {
		v := summarizationprompt.DefaultID()
		_c.mutation.SetID(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *SummarizationPromptCreate) check() error {
	if _, ok := _c.mutation.Name(); !ok {
		return &ValidationError{Name: "name", err: errors.New(`ent: missing required field "SummarizationPrompt.name"`)}
	}
	if v, ok := _c.mutation.Name(); ok {
		if err := summarizationprompt.NameValidator(v); err != nil {
			return &ValidationError{Name: "name", err: fmt.Errorf(`ent: validator failed for field "SummarizationPrompt.name": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Prompt(); !ok {
		return &ValidationError{Name: "prompt", err: errors.New(`ent: missing required field "SummarizationPrompt.prompt"`)}
	}
	if v, ok := _c.mutation.Prompt(); ok {
		if err := summarizationprompt.PromptValidator(v); err != nil {
			return &ValidationError{Name: "prompt", err: fmt.Errorf(`ent: validator failed for field "SummarizationPrompt.prompt": %w`, err)}
		}
	}
	if _, ok := _c.mutation.IsDefault(); !ok {
		return &ValidationError{Name: "is_default", err: errors.New(`ent: missing required field "SummarizationPrompt.is_default"`)}
	}
	if _, ok := _c.mutation.IsActive(); !ok {
		return &ValidationError{Name: "is_active", err: errors.New(`ent: missing required field "SummarizationPrompt.is_active"`)}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "SummarizationPrompt.created_at"`)}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`ent: missing required field "SummarizationPrompt.updated_at"`)}
	}
	return nil
}

func (_c *SummarizationPromptCreate) sqlSave(ctx context.Context) (*SummarizationPrompt, error) {
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

func (_c *SummarizationPromptCreate) createSpec() (*SummarizationPrompt, *sqlgraph.CreateSpec) {
	var (
		_node = &SummarizationPrompt{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(summarizationprompt.Table, sqlgraph.NewFieldSpec(summarizationprompt.FieldID, field.TypeUUID))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = &id
	}
	if value, ok := _c.mutation.Name(); ok {
		_spec.SetField(summarizationprompt.FieldName, field.TypeString, value)
		_node.Name = value
	}
	if value, ok := _c.mutation.Prompt(); ok {
		_spec.SetField(summarizationprompt.FieldPrompt, field.TypeString, value)
		_node.Prompt = value
	}
	if value, ok := _c.mutation.IsDefault(); ok {
		_spec.SetField(summarizationprompt.FieldIsDefault, field.TypeBool, value)
		_node.IsDefault = value
	}
	if value, ok := _c.mutation.IsActive(); ok {
		_spec.SetField(summarizationprompt.FieldIsActive, field.TypeBool, value)
		_node.IsActive = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(summarizationprompt.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(summarizationprompt.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	if nodes := _c.mutation.SummarizationsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   summarizationprompt.SummarizationsTable,
			Columns: []string{summarizationprompt.SummarizationsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(summarization.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// SummarizationPromptCreateBulk is the builder for creating many SummarizationPrompt entities in bulk.
type SummarizationPromptCreateBulk struct {
	config
	err      error
	builders []*SummarizationPromptCreate
}

// Save creates the SummarizationPrompt entities in the database.
func (_c *SummarizationPromptCreateBulk) Save(ctx context.Context) ([]*SummarizationPrompt, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*SummarizationPrompt, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*SummarizationPromptMutation)
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
func (_c *SummarizationPromptCreateBulk) SaveX(ctx context.Context) []*SummarizationPrompt {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *SummarizationPromptCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *SummarizationPromptCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
