// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/google/uuid"
	"github.com/jide-alade/voicenotes-tracker/gen/ent/predicate"
	"github.com/jide-alade/voicenotes-tracker/gen/ent/summarization"
	"github.com/jide-alade/voicenotes-tracker/gen/ent/summarizationprompt"
)

// SummarizationPromptUpdate is the builder for updating SummarizationPrompt entities.
type SummarizationPromptUpdate struct {
	config
	hooks    []Hook
	mutation *SummarizationPromptMutation
}

// Where appends a list predicates to the SummarizationPromptUpdate builder.
func (_u *SummarizationPromptUpdate) Where(ps ...predicate.SummarizationPrompt) *SummarizationPromptUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetName sets the "name" field.
func (_u *SummarizationPromptUpdate) SetName(v string) *SummarizationPromptUpdate {
	_u.mutation.SetName(v)
	return _u
}

// SetNillableName sets the "name" field if the given value is not nil.
func (_u *SummarizationPromptUpdate) SetNillableName(v *string) *SummarizationPromptUpdate {
	if v != nil {
		_u.SetName(*v)
	}
	return _u
}

// SetPrompt sets the "prompt" field.
func (_u *SummarizationPromptUpdate) SetPrompt(v string) *SummarizationPromptUpdate {
	_u.mutation.SetPrompt(v)
	return _u
}

// SetNillablePrompt sets the "prompt" field if the given value is not nil.
func (_u *SummarizationPromptUpdate) SetNillablePrompt(v *string) *SummarizationPromptUpdate {
	if v != nil {
		_u.SetPrompt(*v)
	}
	return _u
}

// SetIsDefault sets the "is_default" field.
func (_u *SummarizationPromptUpdate) SetIsDefault(v bool) *SummarizationPromptUpdate {
	_u.mutation.SetIsDefault(v)
	return _u
}

// SetNillableIsDefault sets the "is_default" field if the given value is not nil.
func (_u *SummarizationPromptUpdate) SetNillableIsDefault(v *bool) *SummarizationPromptUpdate {
	if v != nil {
		_u.SetIsDefault(*v)
	}
	return _u
}

// SetIsActive sets the "is_active" field.
func (_u *SummarizationPromptUpdate) SetIsActive(v bool) *SummarizationPromptUpdate {
	_u.mutation.SetIsActive(v)
	return _u
}

// SetNillableIsActive sets the "is_active" field if the given value is not nil.
func (_u *SummarizationPromptUpdate) SetNillableIsActive(v *bool) *SummarizationPromptUpdate {
	if v != nil {
		_u.SetIsActive(*v)
	}
	return _u
}

// SetCreatedAt sets the "created_at" field.
func (_u *SummarizationPromptUpdate) SetCreatedAt(v time.Time) *SummarizationPromptUpdate {
	_u.mutation.SetCreatedAt(v)
	return _u
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_u *SummarizationPromptUpdate) SetNillableCreatedAt(v *time.Time) *SummarizationPromptUpdate {
	if v != nil {
		_u.SetCreatedAt(*v)
	}
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *SummarizationPromptUpdate) SetUpdatedAt(v time.Time) *SummarizationPromptUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// AddSummarizationIDs adds the "summarizations" edge to the Summarization entity by IDs.
func (_u *SummarizationPromptUpdate) AddSummarizationIDs(ids ...uuid.UUID) *SummarizationPromptUpdate {
	_u.mutation.AddSummarizationIDs(ids...)
	return _u
}

// AddSummarizations adds the "summarizations" edges to the Summarization entity.
func (_u *SummarizationPromptUpdate) AddSummarizations(v ...*Summarization) *SummarizationPromptUpdate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddSummarizationIDs(ids...)
}

// Mutation returns the SummarizationPromptMutation object of the builder.
func (_u *SummarizationPromptUpdate) Mutation() *SummarizationPromptMutation {
	return _u.mutation
}

// ClearSummarizations clears all "summarizations" edges to the Summarization entity.
func (_u *SummarizationPromptUpdate) ClearSummarizations() *SummarizationPromptUpdate {
	_u.mutation.ClearSummarizations()
	return _u
}

// RemoveSummarizationIDs removes the "summarizations" edge to Summarization entities by IDs.
func (_u *SummarizationPromptUpdate) RemoveSummarizationIDs(ids ...uuid.UUID) *SummarizationPromptUpdate {
	_u.mutation.RemoveSummarizationIDs(ids...)
	return _u
}

// RemoveSummarizations removes "summarizations" edges to Summarization entities.
func (_u *SummarizationPromptUpdate) RemoveSummarizations(v ...*Summarization) *SummarizationPromptUpdate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveSummarizationIDs(ids...)
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *SummarizationPromptUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *SummarizationPromptUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *SummarizationPromptUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *SummarizationPromptUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *SummarizationPromptUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := summarizationprompt.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *SummarizationPromptUpdate) check() error {
	if v, ok := _u.mutation.Name(); ok {
		if err := summarizationprompt.NameValidator(v); err != nil {
			return &ValidationError{Name: "name", err: fmt.Errorf(`ent: validator failed for field "SummarizationPrompt.name": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Prompt(); ok {
		if err := summarizationprompt.PromptValidator(v); err != nil {
			return &ValidationError{Name: "prompt", err: fmt.Errorf(`ent: validator failed for field "SummarizationPrompt.prompt": %w`, err)}
		}
	}
	return nil
}

func (_u *SummarizationPromptUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(summarizationprompt.Table, summarizationprompt.Columns, sqlgraph.NewFieldSpec(summarizationprompt.FieldID, field.TypeUUID))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Name(); ok {
		_spec.SetField(summarizationprompt.FieldName, field.TypeString, value)
	}
	if value, ok := _u.mutation.Prompt(); ok {
		_spec.SetField(summarizationprompt.FieldPrompt, field.TypeString, value)
	}
	if value, ok := _u.mutation.IsDefault(); ok {
		_spec.SetField(summarizationprompt.FieldIsDefault, field.TypeBool, value)
	}
	if value, ok := _u.mutation.IsActive(); ok {
		_spec.SetField(summarizationprompt.FieldIsActive, field.TypeBool, value)
	}
	if value, ok := _u.mutation.CreatedAt(); ok {
		_spec.SetField(summarizationprompt.FieldCreatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(summarizationprompt.FieldUpdatedAt, field.TypeTime, value)
	}
	if _u.mutation.SummarizationsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedSummarizationsIDs(); len(nodes) > 0 && !_u.mutation.SummarizationsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.SummarizationsIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{summarizationprompt.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// SummarizationPromptUpdateOne is the builder for updating a single SummarizationPrompt entity.
type SummarizationPromptUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *SummarizationPromptMutation
}

// SetName sets the "name" field.
func (_u *SummarizationPromptUpdateOne) SetName(v string) *SummarizationPromptUpdateOne {
	_u.mutation.SetName(v)
	return _u
}

// SetNillableName sets the "name" field if the given value is not nil.
func (_u *SummarizationPromptUpdateOne) SetNillableName(v *string) *SummarizationPromptUpdateOne {
	if v != nil {
		_u.SetName(*v)
	}
	return _u
}

// SetPrompt sets the "prompt" field.
func (_u *SummarizationPromptUpdateOne) SetPrompt(v string) *SummarizationPromptUpdateOne {
	_u.mutation.SetPrompt(v)
	return _u
}

// SetNillablePrompt sets the "prompt" field if the given value is not nil.
func (_u *SummarizationPromptUpdateOne) SetNillablePrompt(v *string) *SummarizationPromptUpdateOne {
	if v != nil {
		_u.SetPrompt(*v)
	}
	return _u
}

// SetIsDefault sets the "is_default" field.
func (_u *SummarizationPromptUpdateOne) SetIsDefault(v bool) *SummarizationPromptUpdateOne {
	_u.mutation.SetIsDefault(v)
	return _u
}

// SetNillableIsDefault sets the "is_default" field if the given value is not nil.
func (_u *SummarizationPromptUpdateOne) SetNillableIsDefault(v *bool) *SummarizationPromptUpdateOne {
	if v != nil {
		_u.SetIsDefault(*v)
	}
	return _u
}

// SetIsActive sets the "is_active" field.
func (_u *SummarizationPromptUpdateOne) SetIsActive(v bool) *SummarizationPromptUpdateOne {
	_u.mutation.SetIsActive(v)
	return _u
}

// SetNillableIsActive sets the "is_active" field if the given value is not nil.
func (_u *SummarizationPromptUpdateOne) SetNillableIsActive(v *bool) *SummarizationPromptUpdateOne {
	if v != nil {
		_u.SetIsActive(*v)
	}
	return _u
}

// SetCreatedAt sets the "created_at" field.
func (_u *SummarizationPromptUpdateOne) SetCreatedAt(v time.Time) *SummarizationPromptUpdateOne {
	_u.mutation.SetCreatedAt(v)
	return _u
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_u *SummarizationPromptUpdateOne) SetNillableCreatedAt(v *time.Time) *SummarizationPromptUpdateOne {
	if v != nil {
		_u.SetCreatedAt(*v)
	}
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *SummarizationPromptUpdateOne) SetUpdatedAt(v time.Time) *SummarizationPromptUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// AddSummarizationIDs adds the "summarizations" edge to the Summarization entity by IDs.
func (_u *SummarizationPromptUpdateOne) AddSummarizationIDs(ids ...uuid.UUID) *SummarizationPromptUpdateOne {
	_u.mutation.AddSummarizationIDs(ids...)
	return _u
}

// AddSummarizations adds the "summarizations" edges to the Summarization entity.
func (_u *SummarizationPromptUpdateOne) AddSummarizations(v ...*Summarization) *SummarizationPromptUpdateOne {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddSummarizationIDs(ids...)
}

// Mutation returns the SummarizationPromptMutation object of the builder.
func (_u *SummarizationPromptUpdateOne) Mutation() *SummarizationPromptMutation {
	return _u.mutation
}

// ClearSummarizations clears all "summarizations" edges to the Summarization entity.
func (_u *SummarizationPromptUpdateOne) ClearSummarizations() *SummarizationPromptUpdateOne {
	_u.mutation.ClearSummarizations()
	return _u
}

// RemoveSummarizationIDs removes the "summarizations" edge to Summarization entities by IDs.
func (_u *SummarizationPromptUpdateOne) RemoveSummarizationIDs(ids ...uuid.UUID) *SummarizationPromptUpdateOne {
	_u.mutation.RemoveSummarizationIDs(ids...)
	return _u
}

// RemoveSummarizations removes "summarizations" edges to Summarization entities.
func (_u *SummarizationPromptUpdateOne) RemoveSummarizations(v ...*Summarization) *SummarizationPromptUpdateOne {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveSummarizationIDs(ids...)
}

// Where appends a list predicates to the SummarizationPromptUpdate builder.
func (_u *SummarizationPromptUpdateOne) Where(ps ...predicate.SummarizationPrompt) *SummarizationPromptUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *SummarizationPromptUpdateOne) Select(field string, fields ...string) *SummarizationPromptUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated SummarizationPrompt entity.
func (_u *SummarizationPromptUpdateOne) Save(ctx context.Context) (*SummarizationPrompt, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *SummarizationPromptUpdateOne) SaveX(ctx context.Context) *SummarizationPrompt {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *SummarizationPromptUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *SummarizationPromptUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *SummarizationPromptUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := summarizationprompt.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *SummarizationPromptUpdateOne) check() error {
	if v, ok := _u.mutation.Name(); ok {
		if err := summarizationprompt.NameValidator(v); err != nil {
			return &ValidationError{Name: "name", err: fmt.Errorf(`ent: validator failed for field "SummarizationPrompt.name": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Prompt(); ok {
		if err := summarizationprompt.PromptValidator(v); err != nil {
			return &ValidationError{Name: "prompt", err: fmt.Errorf(`ent: validator failed for field "SummarizationPrompt.prompt": %w`, err)}
		}
	}
	return nil
}

func (_u *SummarizationPromptUpdateOne) sqlSave(ctx context.Context) (_node *SummarizationPrompt, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(summarizationprompt.Table, summarizationprompt.Columns, sqlgraph.NewFieldSpec(summarizationprompt.FieldID, field.TypeUUID))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "SummarizationPrompt.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, summarizationprompt.FieldID)
		for _, f := range fields {
			if !summarizationprompt.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != summarizationprompt.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, f)
			}
		}
	}
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Name(); ok {
		_spec.SetField(summarizationprompt.FieldName, field.TypeString, value)
	}
	if value, ok := _u.mutation.Prompt(); ok {
		_spec.SetField(summarizationprompt.FieldPrompt, field.TypeString, value)
	}
	if value, ok := _u.mutation.IsDefault(); ok {
		_spec.SetField(summarizationprompt.FieldIsDefault, field.TypeBool, value)
	}
	if value, ok := _u.mutation.IsActive(); ok {
		_spec.SetField(summarizationprompt.FieldIsActive, field.TypeBool, value)
	}
	if value, ok := _u.mutation.CreatedAt(); ok {
		_spec.SetField(summarizationprompt.FieldCreatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(summarizationprompt.FieldUpdatedAt, field.TypeTime, value)
	}
	if _u.mutation.SummarizationsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedSummarizationsIDs(); len(nodes) > 0 && !_u.mutation.SummarizationsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.SummarizationsIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &SummarizationPrompt{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{summarizationprompt.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
