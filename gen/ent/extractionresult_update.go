// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/dialect/sql/sqljson"
	"entgo.io/ent/schema/field"
	"github.com/google/uuid"
	"github.com/jide-alade/voicenotes-tracker/gen/ent/extractiondefinition"
	"github.com/jide-alade/voicenotes-tracker/gen/ent/extractionresult"
	"github.com/jide-alade/voicenotes-tracker/gen/ent/predicate"
	"github.com/jide-alade/voicenotes-tracker/gen/ent/processingsession"
	"github.com/jide-alade/voicenotes-tracker/gen/ent/transcriptfile"
)

// ExtractionResultUpdate is the builder for updating ExtractionResult entities.
type ExtractionResultUpdate struct {
	config
	hooks    []Hook
	mutation *ExtractionResultMutation
}

// Where appends a list predicates to the ExtractionResultUpdate builder.
func (_u *ExtractionResultUpdate) Where(ps ...predicate.ExtractionResult) *ExtractionResultUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetFileID sets the "file_id" field.
func (_u *ExtractionResultUpdate) SetFileID(v uuid.UUID) *ExtractionResultUpdate {
	_u.mutation.SetFileID(v)
	return _u
}

// SetNillableFileID sets the "file_id" field if the given value is not nil.
func (_u *ExtractionResultUpdate) SetNillableFileID(v *uuid.UUID) *ExtractionResultUpdate {
	if v != nil {
		_u.SetFileID(*v)
	}
	return _u
}

// SetSessionID sets the "session_id" field.
func (_u *ExtractionResultUpdate) SetSessionID(v uuid.UUID) *ExtractionResultUpdate {
	_u.mutation.SetSessionID(v)
	return _u
}

// SetNillableSessionID sets the "session_id" field if the given value is not nil.
func (_u *ExtractionResultUpdate) SetNillableSessionID(v *uuid.UUID) *ExtractionResultUpdate {
	if v != nil {
		_u.SetSessionID(*v)
	}
	return _u
}

// SetDefinitionID sets the "definition_id" field.
func (_u *ExtractionResultUpdate) SetDefinitionID(v uuid.UUID) *ExtractionResultUpdate {
	_u.mutation.SetDefinitionID(v)
	return _u
}

// SetNillableDefinitionID sets the "definition_id" field if the given value is not nil.
func (_u *ExtractionResultUpdate) SetNillableDefinitionID(v *uuid.UUID) *ExtractionResultUpdate {
	if v != nil {
		_u.SetDefinitionID(*v)
	}
	return _u
}

// SetExtractionType sets the "extraction_type" field.
func (_u *ExtractionResultUpdate) SetExtractionType(v string) *ExtractionResultUpdate {
	_u.mutation.SetExtractionType(v)
	return _u
}

// SetNillableExtractionType sets the "extraction_type" field if the given value is not nil.
func (_u *ExtractionResultUpdate) SetNillableExtractionType(v *string) *ExtractionResultUpdate {
	if v != nil {
		_u.SetExtractionType(*v)
	}
	return _u
}

// SetContent sets the "content" field.
func (_u *ExtractionResultUpdate) SetContent(v json.RawMessage) *ExtractionResultUpdate {
	_u.mutation.SetContent(v)
	return _u
}

// AppendContent appends value to the "content" field.
func (_u *ExtractionResultUpdate) AppendContent(v json.RawMessage) *ExtractionResultUpdate {
	_u.mutation.AppendContent(v)
	return _u
}

// SetConfidence sets the "confidence" field.
func (_u *ExtractionResultUpdate) SetConfidence(v float32) *ExtractionResultUpdate {
	_u.mutation.ResetConfidence()
	_u.mutation.SetConfidence(v)
	return _u
}

// SetNillableConfidence sets the "confidence" field if the given value is not nil.
func (_u *ExtractionResultUpdate) SetNillableConfidence(v *float32) *ExtractionResultUpdate {
	if v != nil {
		_u.SetConfidence(*v)
	}
	return _u
}

// AddConfidence adds value to the "confidence" field.
func (_u *ExtractionResultUpdate) AddConfidence(v float32) *ExtractionResultUpdate {
	_u.mutation.AddConfidence(v)
	return _u
}

// ClearConfidence clears the value of the "confidence" field.
func (_u *ExtractionResultUpdate) ClearConfidence() *ExtractionResultUpdate {
	_u.mutation.ClearConfidence()
	return _u
}

// SetProcessingTimeMs sets the "processing_time_ms" field.
func (_u *ExtractionResultUpdate) SetProcessingTimeMs(v int64) *ExtractionResultUpdate {
	_u.mutation.ResetProcessingTimeMs()
	_u.mutation.SetProcessingTimeMs(v)
	return _u
}

// SetNillableProcessingTimeMs sets the "processing_time_ms" field if the given value is not nil.
func (_u *ExtractionResultUpdate) SetNillableProcessingTimeMs(v *int64) *ExtractionResultUpdate {
	if v != nil {
		_u.SetProcessingTimeMs(*v)
	}
	return _u
}

// AddProcessingTimeMs adds value to the "processing_time_ms" field.
func (_u *ExtractionResultUpdate) AddProcessingTimeMs(v int64) *ExtractionResultUpdate {
	_u.mutation.AddProcessingTimeMs(v)
	return _u
}

// ClearProcessingTimeMs clears the value of the "processing_time_ms" field.
func (_u *ExtractionResultUpdate) ClearProcessingTimeMs() *ExtractionResultUpdate {
	_u.mutation.ClearProcessingTimeMs()
	return _u
}

// SetModel sets the "model" field.
func (_u *ExtractionResultUpdate) SetModel(v string) *ExtractionResultUpdate {
	_u.mutation.SetModel(v)
	return _u
}

// SetNillableModel sets the "model" field if the given value is not nil.
func (_u *ExtractionResultUpdate) SetNillableModel(v *string) *ExtractionResultUpdate {
	if v != nil {
		_u.SetModel(*v)
	}
	return _u
}

// SetFile sets the "file" edge to the TranscriptFile entity.
func (_u *ExtractionResultUpdate) SetFile(v *TranscriptFile) *ExtractionResultUpdate {
	return _u.SetFileID(v.ID)
}

// SetSession sets the "session" edge to the ProcessingSession entity.
func (_u *ExtractionResultUpdate) SetSession(v *ProcessingSession) *ExtractionResultUpdate {
	return _u.SetSessionID(v.ID)
}

// SetDefinition sets the "definition" edge to the ExtractionDefinition entity.
func (_u *ExtractionResultUpdate) SetDefinition(v *ExtractionDefinition) *ExtractionResultUpdate {
	return _u.SetDefinitionID(v.ID)
}

// Mutation returns the ExtractionResultMutation object of the builder.
func (_u *ExtractionResultUpdate) Mutation() *ExtractionResultMutation {
	return _u.mutation
}

// ClearFile clears the "file" edge to the TranscriptFile entity.
func (_u *ExtractionResultUpdate) ClearFile() *ExtractionResultUpdate {
	_u.mutation.ClearFile()
	return _u
}

// ClearSession clears the "session" edge to the ProcessingSession entity.
func (_u *ExtractionResultUpdate) ClearSession() *ExtractionResultUpdate {
	_u.mutation.ClearSession()
	return _u
}

// ClearDefinition clears the "definition" edge to the ExtractionDefinition entity.
func (_u *ExtractionResultUpdate) ClearDefinition() *ExtractionResultUpdate {
	_u.mutation.ClearDefinition()
	return _u
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *ExtractionResultUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ExtractionResultUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *ExtractionResultUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ExtractionResultUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ExtractionResultUpdate) check() error {
	if v, ok := _u.mutation.ExtractionType(); ok {
		if err := extractionresult.ExtractionTypeValidator(v); err != nil {
			return &ValidationError{Name: "extraction_type", err: fmt.Errorf(`ent: validator failed for field "ExtractionResult.extraction_type": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Model(); ok {
		if err := extractionresult.ModelValidator(v); err != nil {
			return &ValidationError{Name: "model", err: fmt.Errorf(`ent: validator failed for field "ExtractionResult.model": %w`, err)}
		}
	}
	if _u.mutation.FileCleared() && len(_u.mutation.FileIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "ExtractionResult.file"`)
	}
	if _u.mutation.SessionCleared() && len(_u.mutation.SessionIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "ExtractionResult.session"`)
	}
	if _u.mutation.DefinitionCleared() && len(_u.mutation.DefinitionIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "ExtractionResult.definition"`)
	}
	return nil
}

func (_u *ExtractionResultUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(extractionresult.Table, extractionresult.Columns, sqlgraph.NewFieldSpec(extractionresult.FieldID, field.TypeUUID))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.ExtractionType(); ok {
		_spec.SetField(extractionresult.FieldExtractionType, field.TypeString, value)
	}
	if value, ok := _u.mutation.Content(); ok {
		_spec.SetField(extractionresult.FieldContent, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedContent(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, extractionresult.FieldContent, value)
		})
	}
	if value, ok := _u.mutation.Confidence(); ok {
		_spec.SetField(extractionresult.FieldConfidence, field.TypeFloat32, value)
	}
	if value, ok := _u.mutation.AddedConfidence(); ok {
		_spec.AddField(extractionresult.FieldConfidence, field.TypeFloat32, value)
	}
	if _u.mutation.ConfidenceCleared() {
		_spec.ClearField(extractionresult.FieldConfidence, field.TypeFloat32)
	}
	if value, ok := _u.mutation.ProcessingTimeMs(); ok {
		_spec.SetField(extractionresult.FieldProcessingTimeMs, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.AddedProcessingTimeMs(); ok {
		_spec.AddField(extractionresult.FieldProcessingTimeMs, field.TypeInt64, value)
	}
	if _u.mutation.ProcessingTimeMsCleared() {
		_spec.ClearField(extractionresult.FieldProcessingTimeMs, field.TypeInt64)
	}
	if value, ok := _u.mutation.Model(); ok {
		_spec.SetField(extractionresult.FieldModel, field.TypeString, value)
	}
	if _u.mutation.FileCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.FileIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.SessionCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.SessionIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.DefinitionCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.DefinitionIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{extractionresult.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// ExtractionResultUpdateOne is the builder for updating a single ExtractionResult entity.
type ExtractionResultUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *ExtractionResultMutation
}

// SetFileID sets the "file_id" field.
func (_u *ExtractionResultUpdateOne) SetFileID(v uuid.UUID) *ExtractionResultUpdateOne {
	_u.mutation.SetFileID(v)
	return _u
}

// SetNillableFileID sets the "file_id" field if the given value is not nil.
func (_u *ExtractionResultUpdateOne) SetNillableFileID(v *uuid.UUID) *ExtractionResultUpdateOne {
	if v != nil {
		_u.SetFileID(*v)
	}
	return _u
}

// SetSessionID sets the "session_id" field.
func (_u *ExtractionResultUpdateOne) SetSessionID(v uuid.UUID) *ExtractionResultUpdateOne {
	_u.mutation.SetSessionID(v)
	return _u
}

// SetNillableSessionID sets the "session_id" field if the given value is not nil.
func (_u *ExtractionResultUpdateOne) SetNillableSessionID(v *uuid.UUID) *ExtractionResultUpdateOne {
	if v != nil {
		_u.SetSessionID(*v)
	}
	return _u
}

// SetDefinitionID sets the "definition_id" field.
func (_u *ExtractionResultUpdateOne) SetDefinitionID(v uuid.UUID) *ExtractionResultUpdateOne {
	_u.mutation.SetDefinitionID(v)
	return _u
}

// SetNillableDefinitionID sets the "definition_id" field if the given value is not nil.
func (_u *ExtractionResultUpdateOne) SetNillableDefinitionID(v *uuid.UUID) *ExtractionResultUpdateOne {
	if v != nil {
		_u.SetDefinitionID(*v)
	}
	return _u
}

// SetExtractionType sets the "extraction_type" field.
func (_u *ExtractionResultUpdateOne) SetExtractionType(v string) *ExtractionResultUpdateOne {
	_u.mutation.SetExtractionType(v)
	return _u
}

// SetNillableExtractionType sets the "extraction_type" field if the given value is not nil.
func (_u *ExtractionResultUpdateOne) SetNillableExtractionType(v *string) *ExtractionResultUpdateOne {
	if v != nil {
		_u.SetExtractionType(*v)
	}
	return _u
}

// SetContent sets the "content" field.
func (_u *ExtractionResultUpdateOne) SetContent(v json.RawMessage) *ExtractionResultUpdateOne {
	_u.mutation.SetContent(v)
	return _u
}

// AppendContent appends value to the "content" field.
func (_u *ExtractionResultUpdateOne) AppendContent(v json.RawMessage) *ExtractionResultUpdateOne {
	_u.mutation.AppendContent(v)
	return _u
}

// SetConfidence sets the "confidence" field.
func (_u *ExtractionResultUpdateOne) SetConfidence(v float32) *ExtractionResultUpdateOne {
	_u.mutation.ResetConfidence()
	_u.mutation.SetConfidence(v)
	return _u
}

// SetNillableConfidence sets the "confidence" field if the given value is not nil.
func (_u *ExtractionResultUpdateOne) SetNillableConfidence(v *float32) *ExtractionResultUpdateOne {
	if v != nil {
		_u.SetConfidence(*v)
	}
	return _u
}

// AddConfidence adds value to the "confidence" field.
func (_u *ExtractionResultUpdateOne) AddConfidence(v float32) *ExtractionResultUpdateOne {
	_u.mutation.AddConfidence(v)
	return _u
}

// ClearConfidence clears the value of the "confidence" field.
func (_u *ExtractionResultUpdateOne) ClearConfidence() *ExtractionResultUpdateOne {
	_u.mutation.ClearConfidence()
	return _u
}

// SetProcessingTimeMs sets the "processing_time_ms" field.
func (_u *ExtractionResultUpdateOne) SetProcessingTimeMs(v int64) *ExtractionResultUpdateOne {
	_u.mutation.ResetProcessingTimeMs()
	_u.mutation.SetProcessingTimeMs(v)
	return _u
}

// SetNillableProcessingTimeMs sets the "processing_time_ms" field if the given value is not nil.
func (_u *ExtractionResultUpdateOne) SetNillableProcessingTimeMs(v *int64) *ExtractionResultUpdateOne {
	if v != nil {
		_u.SetProcessingTimeMs(*v)
	}
	return _u
}

// AddProcessingTimeMs adds value to the "processing_time_ms" field.
func (_u *ExtractionResultUpdateOne) AddProcessingTimeMs(v int64) *ExtractionResultUpdateOne {
	_u.mutation.AddProcessingTimeMs(v)
	return _u
}

// ClearProcessingTimeMs clears the value of the "processing_time_ms" field.
func (_u *ExtractionResultUpdateOne) ClearProcessingTimeMs() *ExtractionResultUpdateOne {
	_u.mutation.ClearProcessingTimeMs()
	return _u
}

// SetModel sets the "model" field.
func (_u *ExtractionResultUpdateOne) SetModel(v string) *ExtractionResultUpdateOne {
	_u.mutation.SetModel(v)
	return _u
}

// SetNillableModel sets the "model" field if the given value is not nil.
func (_u *ExtractionResultUpdateOne) SetNillableModel(v *string) *ExtractionResultUpdateOne {
	if v != nil {
		_u.SetModel(*v)
	}
	return _u
}

// SetFile sets the "file" edge to the TranscriptFile entity.
func (_u *ExtractionResultUpdateOne) SetFile(v *TranscriptFile) *ExtractionResultUpdateOne {
	return _u.SetFileID(v.ID)
}

// SetSession sets the "session" edge to the ProcessingSession entity.
func (_u *ExtractionResultUpdateOne) SetSession(v *ProcessingSession) *ExtractionResultUpdateOne {
	return _u.SetSessionID(v.ID)
}

// SetDefinition sets the "definition" edge to the ExtractionDefinition entity.
func (_u *ExtractionResultUpdateOne) SetDefinition(v *ExtractionDefinition) *ExtractionResultUpdateOne {
	return _u.SetDefinitionID(v.ID)
}

// Mutation returns the ExtractionResultMutation object of the builder.
func (_u *ExtractionResultUpdateOne) Mutation() *ExtractionResultMutation {
	return _u.mutation
}

// ClearFile clears the "file" edge to the TranscriptFile entity.
func (_u *ExtractionResultUpdateOne) ClearFile() *ExtractionResultUpdateOne {
	_u.mutation.ClearFile()
	return _u
}

// ClearSession clears the "session" edge to the ProcessingSession entity.
func (_u *ExtractionResultUpdateOne) ClearSession() *ExtractionResultUpdateOne {
	_u.mutation.ClearSession()
	return _u
}

// ClearDefinition clears the "definition" edge to the ExtractionDefinition entity.
func (_u *ExtractionResultUpdateOne) ClearDefinition() *ExtractionResultUpdateOne {
	_u.mutation.ClearDefinition()
	return _u
}

// Where appends a list predicates to the ExtractionResultUpdate builder.
func (_u *ExtractionResultUpdateOne) Where(ps ...predicate.ExtractionResult) *ExtractionResultUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *ExtractionResultUpdateOne) Select(field string, fields ...string) *ExtractionResultUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated ExtractionResult entity.
func (_u *ExtractionResultUpdateOne) Save(ctx context.Context) (*ExtractionResult, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ExtractionResultUpdateOne) SaveX(ctx context.Context) *ExtractionResult {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *ExtractionResultUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ExtractionResultUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ExtractionResultUpdateOne) check() error {
	if v, ok := _u.mutation.ExtractionType(); ok {
		if err := extractionresult.ExtractionTypeValidator(v); err != nil {
			return &ValidationError{Name: "extraction_type", err: fmt.Errorf(`ent: validator failed for field "ExtractionResult.extraction_type": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Model(); ok {
		if err := extractionresult.ModelValidator(v); err != nil {
			return &ValidationError{Name: "model", err: fmt.Errorf(`ent: validator failed for field "ExtractionResult.model": %w`, err)}
		}
	}
	if _u.mutation.FileCleared() && len(_u.mutation.FileIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "ExtractionResult.file"`)
	}
	if _u.mutation.SessionCleared() && len(_u.mutation.SessionIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "ExtractionResult.session"`)
	}
	if _u.mutation.DefinitionCleared() && len(_u.mutation.DefinitionIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "ExtractionResult.definition"`)
	}
	return nil
}

func (_u *ExtractionResultUpdateOne) sqlSave(ctx context.Context) (_node *ExtractionResult, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(extractionresult.Table, extractionresult.Columns, sqlgraph.NewFieldSpec(extractionresult.FieldID, field.TypeUUID))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "ExtractionResult.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, extractionresult.FieldID)
		for _, f := range fields {
			if !extractionresult.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != extractionresult.FieldID {
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
	if value, ok := _u.mutation.ExtractionType(); ok {
		_spec.SetField(extractionresult.FieldExtractionType, field.TypeString, value)
	}
	if value, ok := _u.mutation.Content(); ok {
		_spec.SetField(extractionresult.FieldContent, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedContent(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, extractionresult.FieldContent, value)
		})
	}
	if value, ok := _u.mutation.Confidence(); ok {
		_spec.SetField(extractionresult.FieldConfidence, field.TypeFloat32, value)
	}
	if value, ok := _u.mutation.AddedConfidence(); ok {
		_spec.AddField(extractionresult.FieldConfidence, field.TypeFloat32, value)
	}
	if _u.mutation.ConfidenceCleared() {
		_spec.ClearField(extractionresult.FieldConfidence, field.TypeFloat32)
	}
	if value, ok := _u.mutation.ProcessingTimeMs(); ok {
		_spec.SetField(extractionresult.FieldProcessingTimeMs, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.AddedProcessingTimeMs(); ok {
		_spec.AddField(extractionresult.FieldProcessingTimeMs, field.TypeInt64, value)
	}
	if _u.mutation.ProcessingTimeMsCleared() {
		_spec.ClearField(extractionresult.FieldProcessingTimeMs, field.TypeInt64)
	}
	if value, ok := _u.mutation.Model(); ok {
		_spec.SetField(extractionresult.FieldModel, field.TypeString, value)
	}
	if _u.mutation.FileCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.FileIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.SessionCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.SessionIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.DefinitionCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.DefinitionIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &ExtractionResult{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{extractionresult.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
