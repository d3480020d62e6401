// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/google/uuid"
	"github.com/jide-alade/voicenotes-tracker/gen/ent/predicate"
	"github.com/jide-alade/voicenotes-tracker/gen/ent/summarization"
	"github.com/jide-alade/voicenotes-tracker/gen/ent/summarizationprompt"
	"github.com/jide-alade/voicenotes-tracker/gen/ent/transcriptfile"
)

// SummarizationUpdate is the builder for updating Summarization entities.
type SummarizationUpdate struct {
	config
	hooks    []Hook
	mutation *SummarizationMutation
}

// Where appends a list predicates to the SummarizationUpdate builder.
func (_u *SummarizationUpdate) Where(ps ...predicate.Summarization) *SummarizationUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetFileID sets the "file_id" field.
func (_u *SummarizationUpdate) SetFileID(v uuid.UUID) *SummarizationUpdate {
	_u.mutation.SetFileID(v)
	return _u
}

// SetNillableFileID sets the "file_id" field if the given value is not nil.
func (_u *SummarizationUpdate) SetNillableFileID(v *uuid.UUID) *SummarizationUpdate {
	if v != nil {
		_u.SetFileID(*v)
	}
	return _u
}

// SetSessionID sets the "session_id" field.
func (_u *SummarizationUpdate) SetSessionID(v uuid.UUID) *SummarizationUpdate {
	_u.mutation.SetSessionID(v)
	return _u
}

// SetNillableSessionID sets the "session_id" field if the given value is not nil.
func (_u *SummarizationUpdate) SetNillableSessionID(v *uuid.UUID) *SummarizationUpdate {
	if v != nil {
		_u.SetSessionID(*v)
	}
	return _u
}

// SetTemplateID sets the "template_id" field.
func (_u *SummarizationUpdate) SetTemplateID(v uuid.UUID) *SummarizationUpdate {
	_u.mutation.SetTemplateID(v)
	return _u
}

// SetNillableTemplateID sets the "template_id" field if the given value is not nil.
func (_u *SummarizationUpdate) SetNillableTemplateID(v *uuid.UUID) *SummarizationUpdate {
	if v != nil {
		_u.SetTemplateID(*v)
	}
	return _u
}

// ClearTemplateID clears the value of the "template_id" field.
func (_u *SummarizationUpdate) ClearTemplateID() *SummarizationUpdate {
	_u.mutation.ClearTemplateID()
	return _u
}

// SetModel sets the "model" field.
func (_u *SummarizationUpdate) SetModel(v string) *SummarizationUpdate {
	_u.mutation.SetModel(v)
	return _u
}

// SetNillableModel sets the "model" field if the given value is not nil.
func (_u *SummarizationUpdate) SetNillableModel(v *string) *SummarizationUpdate {
	if v != nil {
		_u.SetModel(*v)
	}
	return _u
}

// SetPrompt sets the "prompt" field.
func (_u *SummarizationUpdate) SetPrompt(v string) *SummarizationUpdate {
	_u.mutation.SetPrompt(v)
	return _u
}

// SetNillablePrompt sets the "prompt" field if the given value is not nil.
func (_u *SummarizationUpdate) SetNillablePrompt(v *string) *SummarizationUpdate {
	if v != nil {
		_u.SetPrompt(*v)
	}
	return _u
}

// SetContent sets the "content" field.
func (_u *SummarizationUpdate) SetContent(v string) *SummarizationUpdate {
	_u.mutation.SetContent(v)
	return _u
}

// SetNillableContent sets the "content" field if the given value is not nil.
func (_u *SummarizationUpdate) SetNillableContent(v *string) *SummarizationUpdate {
	if v != nil {
		_u.SetContent(*v)
	}
	return _u
}

// SetFile sets the "file" edge to the TranscriptFile entity.
func (_u *SummarizationUpdate) SetFile(v *TranscriptFile) *SummarizationUpdate {
	return _u.SetFileID(v.ID)
}

// SetTemplate sets the "template" edge to the SummarizationPrompt entity.
func (_u *SummarizationUpdate) SetTemplate(v *SummarizationPrompt) *SummarizationUpdate {
	return _u.SetTemplateID(v.ID)
}

// Mutation returns the SummarizationMutation object of the builder.
func (_u *SummarizationUpdate) Mutation() *SummarizationMutation {
	return _u.mutation
}

// ClearFile clears the "file" edge to the TranscriptFile entity.
func (_u *SummarizationUpdate) ClearFile() *SummarizationUpdate {
	_u.mutation.ClearFile()
	return _u
}

// ClearTemplate clears the "template" edge to the SummarizationPrompt entity.
func (_u *SummarizationUpdate) ClearTemplate() *SummarizationUpdate {
	_u.mutation.ClearTemplate()
	return _u
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *SummarizationUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *SummarizationUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *SummarizationUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *SummarizationUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *SummarizationUpdate) check() error {
	if v, ok := _u.mutation.Model(); ok {
		if err := summarization.ModelValidator(v); err != nil {
			return &ValidationError{Name: "model", err: fmt.Errorf(`ent: validator failed for field "Summarization.model": %w`, err)}
		}
	}
	if _u.mutation.FileCleared() && len(_u.mutation.FileIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "Summarization.file"`)
	}
	return nil
}

func (_u *SummarizationUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(summarization.Table, summarization.Columns, sqlgraph.NewFieldSpec(summarization.FieldID, field.TypeUUID))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.SessionID(); ok {
		_spec.SetField(summarization.FieldSessionID, field.TypeUUID, value)
	}
	if value, ok := _u.mutation.Model(); ok {
		_spec.SetField(summarization.FieldModel, field.TypeString, value)
	}
	if value, ok := _u.mutation.Prompt(); ok {
		_spec.SetField(summarization.FieldPrompt, field.TypeString, value)
	}
	if value, ok := _u.mutation.Content(); ok {
		_spec.SetField(summarization.FieldContent, field.TypeString, value)
	}
	if _u.mutation.FileCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.FileIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.TemplateCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.TemplateIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{summarization.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// SummarizationUpdateOne is the builder for updating a single Summarization entity.
type SummarizationUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *SummarizationMutation
}

// SetFileID sets the "file_id" field.
func (_u *SummarizationUpdateOne) SetFileID(v uuid.UUID) *SummarizationUpdateOne {
	_u.mutation.SetFileID(v)
	return _u
}

// SetNillableFileID sets the "file_id" field if the given value is not nil.
func (_u *SummarizationUpdateOne) SetNillableFileID(v *uuid.UUID) *SummarizationUpdateOne {
	if v != nil {
		_u.SetFileID(*v)
	}
	return _u
}

// SetSessionID sets the "session_id" field.
func (_u *SummarizationUpdateOne) SetSessionID(v uuid.UUID) *SummarizationUpdateOne {
	_u.mutation.SetSessionID(v)
	return _u
}

// SetNillableSessionID sets the "session_id" field if the given value is not nil.
func (_u *SummarizationUpdateOne) SetNillableSessionID(v *uuid.UUID) *SummarizationUpdateOne {
	if v != nil {
		_u.SetSessionID(*v)
	}
	return _u
}

// SetTemplateID sets the "template_id" field.
func (_u *SummarizationUpdateOne) SetTemplateID(v uuid.UUID) *SummarizationUpdateOne {
	_u.mutation.SetTemplateID(v)
	return _u
}

// SetNillableTemplateID sets the "template_id" field if the given value is not nil.
func (_u *SummarizationUpdateOne) SetNillableTemplateID(v *uuid.UUID) *SummarizationUpdateOne {
	if v != nil {
		_u.SetTemplateID(*v)
	}
	return _u
}

// ClearTemplateID clears the value of the "template_id" field.
func (_u *SummarizationUpdateOne) ClearTemplateID() *SummarizationUpdateOne {
	_u.mutation.ClearTemplateID()
	return _u
}

// SetModel sets the "model" field.
func (_u *SummarizationUpdateOne) SetModel(v string) *SummarizationUpdateOne {
	_u.mutation.SetModel(v)
	return _u
}

// SetNillableModel sets the "model" field if the given value is not nil.
func (_u *SummarizationUpdateOne) SetNillableModel(v *string) *SummarizationUpdateOne {
	if v != nil {
		_u.SetModel(*v)
	}
	return _u
}

// SetPrompt sets the "prompt" field.
func (_u *SummarizationUpdateOne) SetPrompt(v string) *SummarizationUpdateOne {
	_u.mutation.SetPrompt(v)
	return _u
}

// SetNillablePrompt sets the "prompt" field if the given value is not nil.
func (_u *SummarizationUpdateOne) SetNillablePrompt(v *string) *SummarizationUpdateOne {
	if v != nil {
		_u.SetPrompt(*v)
	}
	return _u
}

// SetContent sets the "content" field.
func (_u *SummarizationUpdateOne) SetContent(v string) *SummarizationUpdateOne {
	_u.mutation.SetContent(v)
	return _u
}

// SetNillableContent sets the "content" field if the given value is not nil.
func (_u *SummarizationUpdateOne) SetNillableContent(v *string) *SummarizationUpdateOne {
	if v != nil {
		_u.SetContent(*v)
	}
	return _u
}

// SetFile sets the "file" edge to the TranscriptFile entity.
func (_u *SummarizationUpdateOne) SetFile(v *TranscriptFile) *SummarizationUpdateOne {
	return _u.SetFileID(v.ID)
}

// SetTemplate sets the "template" edge to the SummarizationPrompt entity.
func (_u *SummarizationUpdateOne) SetTemplate(v *SummarizationPrompt) *SummarizationUpdateOne {
	return _u.SetTemplateID(v.ID)
}

// Mutation returns the SummarizationMutation object of the builder.
func (_u *SummarizationUpdateOne) Mutation() *SummarizationMutation {
	return _u.mutation
}

// ClearFile clears the "file" edge to the TranscriptFile entity.
func (_u *SummarizationUpdateOne) ClearFile() *SummarizationUpdateOne {
	_u.mutation.ClearFile()
	return _u
}

// ClearTemplate clears the "template" edge to the SummarizationPrompt entity.
func (_u *SummarizationUpdateOne) ClearTemplate() *SummarizationUpdateOne {
	_u.mutation.ClearTemplate()
	return _u
}

// Where appends a list predicates to the SummarizationUpdate builder.
func (_u *SummarizationUpdateOne) Where(ps ...predicate.Summarization) *SummarizationUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *SummarizationUpdateOne) Select(field string, fields ...string) *SummarizationUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated Summarization entity.
func (_u *SummarizationUpdateOne) Save(ctx context.Context) (*Summarization, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *SummarizationUpdateOne) SaveX(ctx context.Context) *Summarization {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *SummarizationUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *SummarizationUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *SummarizationUpdateOne) check() error {
	if v, ok := _u.mutation.Model(); ok {
		if err := summarization.ModelValidator(v); err != nil {
			return &ValidationError{Name: "model", err: fmt.Errorf(`ent: validator failed for field "Summarization.model": %w`, err)}
		}
	}
	if _u.mutation.FileCleared() && len(_u.mutation.FileIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "Summarization.file"`)
	}
	return nil
}

func (_u *SummarizationUpdateOne) sqlSave(ctx context.Context) (_node *Summarization, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(summarization.Table, summarization.Columns, sqlgraph.NewFieldSpec(summarization.FieldID, field.TypeUUID))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "Summarization.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, summarization.FieldID)
		for _, f := range fields {
			if !summarization.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != summarization.FieldID {
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
	if value, ok := _u.mutation.SessionID(); ok {
		_spec.SetField(summarization.FieldSessionID, field.TypeUUID, value)
	}
	if value, ok := _u.mutation.Model(); ok {
		_spec.SetField(summarization.FieldModel, field.TypeString, value)
	}
	if value, ok := _u.mutation.Prompt(); ok {
		_spec.SetField(summarization.FieldPrompt, field.TypeString, value)
	}
	if value, ok := _u.mutation.Content(); ok {
		_spec.SetField(summarization.FieldContent, field.TypeString, value)
	}
	if _u.mutation.FileCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.FileIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.TemplateCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.TemplateIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &Summarization{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{summarization.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
