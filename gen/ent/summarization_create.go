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
	"github.com/jide-alade/voicenotes-tracker/gen/ent/transcriptfile"
)

// SummarizationCreate is the builder for creating a Summarization entity.
type SummarizationCreate struct {
	config
	mutation *SummarizationMutation
	hooks    []Hook
}

// SetFileID sets the "file_id" field.
func (_c *SummarizationCreate) SetFileID(v uuid.UUID) *SummarizationCreate {
	_c.mutation.SetFileID(v)
	return _c
}

// SetSessionID sets the "session_id" field.
func (_c *SummarizationCreate) SetSessionID(v uuid.UUID) *SummarizationCreate {
	_c.mutation.SetSessionID(v)
	return _c
}

// SetTemplateID sets the "template_id" field.
func (_c *SummarizationCreate) SetTemplateID(v uuid.UUID) *SummarizationCreate {
	_c.mutation.SetTemplateID(v)
	return _c
}

// SetNillableTemplateID sets the "template_id" field if the given value is not nil.
func (_c *SummarizationCreate) SetNillableTemplateID(v *uuid.UUID) *SummarizationCreate {
	if v != nil {
		_c.SetTemplateID(*v)
	}
	return _c
}

// SetModel sets the "model" field.
func (_c *SummarizationCreate) SetModel(v string) *SummarizationCreate {
	_c.mutation.SetModel(v)
	return _c
}

// SetPrompt sets the "prompt" field.
func (_c *SummarizationCreate) SetPrompt(v string) *SummarizationCreate {
	_c.mutation.SetPrompt(v)
	return _c
}

// SetContent sets the "content" field.
func (_c *SummarizationCreate) SetContent(v string) *SummarizationCreate {
	_c.mutation.SetContent(v)
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *SummarizationCreate) SetCreatedAt(v time.Time) *SummarizationCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *SummarizationCreate) SetNillableCreatedAt(v *time.Time) *SummarizationCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *SummarizationCreate) SetID(v uuid.UUID) *SummarizationCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetNillableID sets the "id" field if the given value is not nil.
func (_c *SummarizationCreate) SetNillableID(v *uuid.UUID) *SummarizationCreate {
	if v != nil {
		_c.SetID(*v)
	}
	return _c
}

// SetFile sets the "file" edge to the TranscriptFile entity.
func (_c *SummarizationCreate) SetFile(v *TranscriptFile) *SummarizationCreate {
	return _c.SetFileID(v.ID)
}

// SetTemplate sets the "template" edge to the SummarizationPrompt entity.
func (_c *SummarizationCreate) SetTemplate(v *SummarizationPrompt) *SummarizationCreate {
	return _c.SetTemplateID(v.ID)
}

// Mutation returns the SummarizationMutation object of the builder.
func (_c *SummarizationCreate) Mutation() *SummarizationMutation {
	return _c.mutation
}

// Save creates the Summarization in the database.
func (_c *SummarizationCreate) Save(ctx context.Context) (*Summarization, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *SummarizationCreate) SaveX(ctx context.Context) *Summarization {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *SummarizationCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *SummarizationCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *SummarizationCreate) defaults() {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := summarization.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.ID(); !ok {
		v := summarization.DefaultID()
		_c.mutation.SetID(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *SummarizationCreate) check() error {
	if _, ok := _c.mutation.FileID(); !ok {
		return &ValidationError{Name: "file_id", err: errors.New(`ent: missing required field "Summarization.file_id"`)}
	}
	if _, ok := _c.mutation.SessionID(); !ok {
		return &ValidationError{Name: "session_id", err: errors.New(`ent: missing required field "Summarization.session_id"`)}
	}
	if _, ok := _c.mutation.Model(); !ok {
		return &ValidationError{Name: "model", err: errors.New(`ent: missing required field "Summarization.model"`)}
	}
	if v, ok := _c.mutation.Model(); ok {
		if err := summarization.ModelValidator(v); err != nil {
			return &ValidationError{Name: "model", err: fmt.Errorf(`ent: validator failed for field "Summarization.model": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Prompt(); !ok {
		return &ValidationError{Name: "prompt", err: errors.New(`ent: missing required field "Summarization.prompt"`)}
	}
	if _, ok := _c.mutation.Content(); !ok {
		return &ValidationError{Name: "content", err: errors.New(`ent: missing required field "Summarization.content"`)}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "Summarization.created_at"`)}
	}
	if len(_c.mutation.FileIDs()) == 0 {
		return &ValidationError{Name: "file", err: errors.New(`ent: missing required edge "Summarization.file"`)}
	}
	return nil
}

func (_c *SummarizationCreate) sqlSave(ctx context.Context) (*Summarization, error) {
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

func (_c *SummarizationCreate) createSpec() (*Summarization, *sqlgraph.CreateSpec) {
	var (
		_node = &Summarization{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(summarization.Table, sqlgraph.NewFieldSpec(summarization.FieldID, field.TypeUUID))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = &id
	}
	if value, ok := _c.mutation.SessionID(); ok {
		_spec.SetField(summarization.FieldSessionID, field.TypeUUID, value)
		_node.SessionID = value
	}
	if value, ok := _c.mutation.Model(); ok {
		_spec.SetField(summarization.FieldModel, field.TypeString, value)
		_node.Model = value
	}
	if value, ok := _c.mutation.Prompt(); ok {
		_spec.SetField(summarization.FieldPrompt, field.TypeString, value)
		_node.Prompt = value
	}
	if value, ok := _c.mutation.Content(); ok {
		_spec.SetField(summarization.FieldContent, field.TypeString, value)
		_node.Content = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(summarization.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if nodes := _c.mutation.FileIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   summarization.FileTable,
			Columns: []string{summarization.FileColumn},
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
	if nodes := _c.mutation.TemplateIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   summarization.TemplateTable,
			Columns: []string{summarization.TemplateColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(summarizationprompt.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_node.TemplateID = &nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// SummarizationCreateBulk is the builder for creating many Summarization entities in bulk.
type SummarizationCreateBulk struct {
	config
	err      error
	builders []*SummarizationCreate
}

// Save creates the Summarization entities in the database.
func (_c *SummarizationCreateBulk) Save(ctx context.Context) ([]*Summarization, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*Summarization, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*SummarizationMutation)
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
func (_c *SummarizationCreateBulk) SaveX(ctx context.Context) []*Summarization {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *SummarizationCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *SummarizationCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
