// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/dialect/sql/sqljson"
	"entgo.io/ent/schema/field"
	"github.com/google/uuid"
	"github.com/jide-alade/voicenotes-tracker/gen/ent/extractiondefinition"
	"github.com/jide-alade/voicenotes-tracker/gen/ent/extractionresult"
	"github.com/jide-alade/voicenotes-tracker/gen/ent/predicate"
)

// ExtractionDefinitionUpdate is the builder for updating ExtractionDefinition entities.
type ExtractionDefinitionUpdate struct {
	config
	hooks    []Hook
	mutation *ExtractionDefinitionMutation
}

// Where appends a list predicates to the ExtractionDefinitionUpdate builder.
func (_u *ExtractionDefinitionUpdate) Where(ps ...predicate.ExtractionDefinition) *ExtractionDefinitionUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetName sets the "name" field.
func (_u *ExtractionDefinitionUpdate) SetName(v string) *ExtractionDefinitionUpdate {
	_u.mutation.SetName(v)
	return _u
}

// SetNillableName sets the "name" field if the given value is not nil.
func (_u *ExtractionDefinitionUpdate) SetNillableName(v *string) *ExtractionDefinitionUpdate {
	if v != nil {
		_u.SetName(*v)
	}
	return _u
}

// SetJSONKey sets the "json_key" field.
func (_u *ExtractionDefinitionUpdate) SetJSONKey(v string) *ExtractionDefinitionUpdate {
	_u.mutation.SetJSONKey(v)
	return _u
}

// SetNillableJSONKey sets the "json_key" field if the given value is not nil.
func (_u *ExtractionDefinitionUpdate) SetNillableJSONKey(v *string) *ExtractionDefinitionUpdate {
	if v != nil {
		_u.SetJSONKey(*v)
	}
	return _u
}

// SetJSONSchema sets the "json_schema" field.
func (_u *ExtractionDefinitionUpdate) SetJSONSchema(v json.RawMessage) *ExtractionDefinitionUpdate {
	_u.mutation.SetJSONSchema(v)
	return _u
}

// AppendJSONSchema appends value to the "json_schema" field.
func (_u *ExtractionDefinitionUpdate) AppendJSONSchema(v json.RawMessage) *ExtractionDefinitionUpdate {
	_u.mutation.AppendJSONSchema(v)
	return _u
}

// ClearJSONSchema clears the value of the "json_schema" field.
func (_u *ExtractionDefinitionUpdate) ClearJSONSchema() *ExtractionDefinitionUpdate {
	_u.mutation.ClearJSONSchema()
	return _u
}

// SetAiInstructions sets the "ai_instructions" field.
func (_u *ExtractionDefinitionUpdate) SetAiInstructions(v string) *ExtractionDefinitionUpdate {
	_u.mutation.SetAiInstructions(v)
	return _u
}

// SetNillableAiInstructions sets the "ai_instructions" field if the given value is not nil.
func (_u *ExtractionDefinitionUpdate) SetNillableAiInstructions(v *string) *ExtractionDefinitionUpdate {
	if v != nil {
		_u.SetAiInstructions(*v)
	}
	return _u
}

// SetOutputType sets the "output_type" field.
func (_u *ExtractionDefinitionUpdate) SetOutputType(v string) *ExtractionDefinitionUpdate {
	_u.mutation.SetOutputType(v)
	return _u
}

// SetNillableOutputType sets the "output_type" field if the given value is not nil.
func (_u *ExtractionDefinitionUpdate) SetNillableOutputType(v *string) *ExtractionDefinitionUpdate {
	if v != nil {
		_u.SetOutputType(*v)
	}
	return _u
}

// SetCategory sets the "category" field.
func (_u *ExtractionDefinitionUpdate) SetCategory(v string) *ExtractionDefinitionUpdate {
	_u.mutation.SetCategory(v)
	return _u
}

// SetNillableCategory sets the "category" field if the given value is not nil.
func (_u *ExtractionDefinitionUpdate) SetNillableCategory(v *string) *ExtractionDefinitionUpdate {
	if v != nil {
		_u.SetCategory(*v)
	}
	return _u
}

// SetIsActive sets the "is_active" field.
func (_u *ExtractionDefinitionUpdate) SetIsActive(v bool) *ExtractionDefinitionUpdate {
	_u.mutation.SetIsActive(v)
	return _u
}

// SetNillableIsActive sets the "is_active" field if the given value is not nil.
func (_u *ExtractionDefinitionUpdate) SetNillableIsActive(v *bool) *ExtractionDefinitionUpdate {
	if v != nil {
		_u.SetIsActive(*v)
	}
	return _u
}

// SetSortOrder sets the "sort_order" field.
func (_u *ExtractionDefinitionUpdate) SetSortOrder(v int) *ExtractionDefinitionUpdate {
	_u.mutation.ResetSortOrder()
	_u.mutation.SetSortOrder(v)
	return _u
}

// SetNillableSortOrder sets the "sort_order" field if the given value is not nil.
func (_u *ExtractionDefinitionUpdate) SetNillableSortOrder(v *int) *ExtractionDefinitionUpdate {
	if v != nil {
		_u.SetSortOrder(*v)
	}
	return _u
}

// AddSortOrder adds value to the "sort_order" field.
func (_u *ExtractionDefinitionUpdate) AddSortOrder(v int) *ExtractionDefinitionUpdate {
	_u.mutation.AddSortOrder(v)
	return _u
}

// SetCreatedAt sets the "created_at" field.
func (_u *ExtractionDefinitionUpdate) SetCreatedAt(v time.Time) *ExtractionDefinitionUpdate {
	_u.mutation.SetCreatedAt(v)
	return _u
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_u *ExtractionDefinitionUpdate) SetNillableCreatedAt(v *time.Time) *ExtractionDefinitionUpdate {
	if v != nil {
		_u.SetCreatedAt(*v)
	}
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *ExtractionDefinitionUpdate) SetUpdatedAt(v time.Time) *ExtractionDefinitionUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// AddResultIDs adds the "results" edge to the ExtractionResult entity by IDs.
func (_u *ExtractionDefinitionUpdate) AddResultIDs(ids ...uuid.UUID) *ExtractionDefinitionUpdate {
	_u.mutation.AddResultIDs(ids...)
	return _u
}

// AddResults adds the "results" edges to the ExtractionResult entity.
func (_u *ExtractionDefinitionUpdate) AddResults(v ...*ExtractionResult) *ExtractionDefinitionUpdate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddResultIDs(ids...)
}

// Mutation returns the ExtractionDefinitionMutation object of the builder.
func (_u *ExtractionDefinitionUpdate) Mutation() *ExtractionDefinitionMutation {
	return _u.mutation
}

// ClearResults clears all "results" edges to the ExtractionResult entity.
func (_u *ExtractionDefinitionUpdate) ClearResults() *ExtractionDefinitionUpdate {
	_u.mutation.ClearResults()
	return _u
}

// RemoveResultIDs removes the "results" edge to ExtractionResult entities by IDs.
func (_u *ExtractionDefinitionUpdate) RemoveResultIDs(ids ...uuid.UUID) *ExtractionDefinitionUpdate {
	_u.mutation.RemoveResultIDs(ids...)
	return _u
}

// RemoveResults removes "results" edges to ExtractionResult entities.
func (_u *ExtractionDefinitionUpdate) RemoveResults(v ...*ExtractionResult) *ExtractionDefinitionUpdate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveResultIDs(ids...)
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *ExtractionDefinitionUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ExtractionDefinitionUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *ExtractionDefinitionUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ExtractionDefinitionUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *ExtractionDefinitionUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := extractiondefinition.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ExtractionDefinitionUpdate) check() error {
	if v, ok := _u.mutation.Name(); ok {
		if err := extractiondefinition.NameValidator(v); err != nil {
			return &ValidationError{Name: "name", err: fmt.Errorf(`ent: validator failed for field "ExtractionDefinition.name": %w`, err)}
		}
	}
	if v, ok := _u.mutation.JSONKey(); ok {
		if err := extractiondefinition.JSONKeyValidator(v); err != nil {
			return &ValidationError{Name: "json_key", err: fmt.Errorf(`ent: validator failed for field "ExtractionDefinition.json_key": %w`, err)}
		}
	}
	if v, ok := _u.mutation.AiInstructions(); ok {
		if err := extractiondefinition.AiInstructionsValidator(v); err != nil {
			return &ValidationError{Name: "ai_instructions", err: fmt.Errorf(`ent: validator failed for field "ExtractionDefinition.ai_instructions": %w`, err)}
		}
	}
	if v, ok := _u.mutation.OutputType(); ok {
		if err := extractiondefinition.OutputTypeValidator(v); err != nil {
			return &ValidationError{Name: "output_type", err: fmt.Errorf(`ent: validator failed for field "ExtractionDefinition.output_type": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Category(); ok {
		if err := extractiondefinition.CategoryValidator(v); err != nil {
			return &ValidationError{Name: "category", err: fmt.Errorf(`ent: validator failed for field "ExtractionDefinition.category": %w`, err)}
		}
	}
	return nil
}

func (_u *ExtractionDefinitionUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(extractiondefinition.Table, extractiondefinition.Columns, sqlgraph.NewFieldSpec(extractiondefinition.FieldID, field.TypeUUID))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Name(); ok {
		_spec.SetField(extractiondefinition.FieldName, field.TypeString, value)
	}
	if value, ok := _u.mutation.JSONKey(); ok {
		_spec.SetField(extractiondefinition.FieldJSONKey, field.TypeString, value)
	}
	if value, ok := _u.mutation.JSONSchema(); ok {
		_spec.SetField(extractiondefinition.FieldJSONSchema, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedJSONSchema(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, extractiondefinition.FieldJSONSchema, value)
		})
	}
	if _u.mutation.JSONSchemaCleared() {
		_spec.ClearField(extractiondefinition.FieldJSONSchema, field.TypeJSON)
	}
	if value, ok := _u.mutation.AiInstructions(); ok {
		_spec.SetField(extractiondefinition.FieldAiInstructions, field.TypeString, value)
	}
	if value, ok := _u.mutation.OutputType(); ok {
		_spec.SetField(extractiondefinition.FieldOutputType, field.TypeString, value)
	}
	if value, ok := _u.mutation.Category(); ok {
		_spec.SetField(extractiondefinition.FieldCategory, field.TypeString, value)
	}
	if value, ok := _u.mutation.IsActive(); ok {
		_spec.SetField(extractiondefinition.FieldIsActive, field.TypeBool, value)
	}
	if value, ok := _u.mutation.SortOrder(); ok {
		_spec.SetField(extractiondefinition.FieldSortOrder, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedSortOrder(); ok {
		_spec.AddField(extractiondefinition.FieldSortOrder, field.TypeInt, value)
	}
	if value, ok := _u.mutation.CreatedAt(); ok {
		_spec.SetField(extractiondefinition.FieldCreatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(extractiondefinition.FieldUpdatedAt, field.TypeTime, value)
	}
	if _u.mutation.ResultsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedResultsIDs(); len(nodes) > 0 && !_u.mutation.ResultsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.ResultsIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{extractiondefinition.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// ExtractionDefinitionUpdateOne is the builder for updating a single ExtractionDefinition entity.
type ExtractionDefinitionUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *ExtractionDefinitionMutation
}

// SetName sets the "name" field.
func (_u *ExtractionDefinitionUpdateOne) SetName(v string) *ExtractionDefinitionUpdateOne {
	_u.mutation.SetName(v)
	return _u
}

// SetNillableName sets the "name" field if the given value is not nil.
func (_u *ExtractionDefinitionUpdateOne) SetNillableName(v *string) *ExtractionDefinitionUpdateOne {
	if v != nil {
		_u.SetName(*v)
	}
	return _u
}

// SetJSONKey sets the "json_key" field.
func (_u *ExtractionDefinitionUpdateOne) SetJSONKey(v string) *ExtractionDefinitionUpdateOne {
	_u.mutation.SetJSONKey(v)
	return _u
}

// SetNillableJSONKey sets the "json_key" field if the given value is not nil.
func (_u *ExtractionDefinitionUpdateOne) SetNillableJSONKey(v *string) *ExtractionDefinitionUpdateOne {
	if v != nil {
		_u.SetJSONKey(*v)
	}
	return _u
}

// SetJSONSchema sets the "json_schema" field.
func (_u *ExtractionDefinitionUpdateOne) SetJSONSchema(v json.RawMessage) *ExtractionDefinitionUpdateOne {
	_u.mutation.SetJSONSchema(v)
	return _u
}

// AppendJSONSchema appends value to the "json_schema" field.
func (_u *ExtractionDefinitionUpdateOne) AppendJSONSchema(v json.RawMessage) *ExtractionDefinitionUpdateOne {
	_u.mutation.AppendJSONSchema(v)
	return _u
}

// ClearJSONSchema clears the value of the "json_schema" field.
func (_u *ExtractionDefinitionUpdateOne) ClearJSONSchema() *ExtractionDefinitionUpdateOne {
	_u.mutation.ClearJSONSchema()
	return _u
}

// SetAiInstructions sets the "ai_instructions" field.
func (_u *ExtractionDefinitionUpdateOne) SetAiInstructions(v string) *ExtractionDefinitionUpdateOne {
	_u.mutation.SetAiInstructions(v)
	return _u
}

// SetNillableAiInstructions sets the "ai_instructions" field if the given value is not nil.
func (_u *ExtractionDefinitionUpdateOne) SetNillableAiInstructions(v *string) *ExtractionDefinitionUpdateOne {
	if v != nil {
		_u.SetAiInstructions(*v)
	}
	return _u
}

// SetOutputType sets the "output_type" field.
func (_u *ExtractionDefinitionUpdateOne) SetOutputType(v string) *ExtractionDefinitionUpdateOne {
	_u.mutation.SetOutputType(v)
	return _u
}

// SetNillableOutputType sets the "output_type" field if the given value is not nil.
func (_u *ExtractionDefinitionUpdateOne) SetNillableOutputType(v *string) *ExtractionDefinitionUpdateOne {
	if v != nil {
		_u.SetOutputType(*v)
	}
	return _u
}

// SetCategory sets the "category" field.
func (_u *ExtractionDefinitionUpdateOne) SetCategory(v string) *ExtractionDefinitionUpdateOne {
	_u.mutation.SetCategory(v)
	return _u
}

// SetNillableCategory sets the "category" field if the given value is not nil.
func (_u *ExtractionDefinitionUpdateOne) SetNillableCategory(v *string) *ExtractionDefinitionUpdateOne {
	if v != nil {
		_u.SetCategory(*v)
	}
	return _u
}

// SetIsActive sets the "is_active" field.
func (_u *ExtractionDefinitionUpdateOne) SetIsActive(v bool) *ExtractionDefinitionUpdateOne {
	_u.mutation.SetIsActive(v)
	return _u
}

// SetNillableIsActive sets the "is_active" field if the given value is not nil.
func (_u *ExtractionDefinitionUpdateOne) SetNillableIsActive(v *bool) *ExtractionDefinitionUpdateOne {
	if v != nil {
		_u.SetIsActive(*v)
	}
	return _u
}

// SetSortOrder sets the "sort_order" field.
func (_u *ExtractionDefinitionUpdateOne) SetSortOrder(v int) *ExtractionDefinitionUpdateOne {
	_u.mutation.ResetSortOrder()
	_u.mutation.SetSortOrder(v)
	return _u
}

// SetNillableSortOrder sets the "sort_order" field if the given value is not nil.
func (_u *ExtractionDefinitionUpdateOne) SetNillableSortOrder(v *int) *ExtractionDefinitionUpdateOne {
	if v != nil {
		_u.SetSortOrder(*v)
	}
	return _u
}

// AddSortOrder adds value to the "sort_order" field.
func (_u *ExtractionDefinitionUpdateOne) AddSortOrder(v int) *ExtractionDefinitionUpdateOne {
	_u.mutation.AddSortOrder(v)
	return _u
}

// SetCreatedAt sets the "created_at" field.
func (_u *ExtractionDefinitionUpdateOne) SetCreatedAt(v time.Time) *ExtractionDefinitionUpdateOne {
	_u.mutation.SetCreatedAt(v)
	return _u
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_u *ExtractionDefinitionUpdateOne) SetNillableCreatedAt(v *time.Time) *ExtractionDefinitionUpdateOne {
	if v != nil {
		_u.SetCreatedAt(*v)
	}
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *ExtractionDefinitionUpdateOne) SetUpdatedAt(v time.Time) *ExtractionDefinitionUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// AddResultIDs adds the "results" edge to the ExtractionResult entity by IDs.
func (_u *ExtractionDefinitionUpdateOne) AddResultIDs(ids ...uuid.UUID) *ExtractionDefinitionUpdateOne {
	_u.mutation.AddResultIDs(ids...)
	return _u
}

// AddResults adds the "results" edges to the ExtractionResult entity.
func (_u *ExtractionDefinitionUpdateOne) AddResults(v ...*ExtractionResult) *ExtractionDefinitionUpdateOne {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddResultIDs(ids...)
}

// Mutation returns the ExtractionDefinitionMutation object of the builder.
func (_u *ExtractionDefinitionUpdateOne) Mutation() *ExtractionDefinitionMutation {
	return _u.mutation
}

// ClearResults clears all "results" edges to the ExtractionResult entity.
func (_u *ExtractionDefinitionUpdateOne) ClearResults() *ExtractionDefinitionUpdateOne {
	_u.mutation.ClearResults()
	return _u
}

// RemoveResultIDs removes the "results" edge to ExtractionResult entities by IDs.
func (_u *ExtractionDefinitionUpdateOne) RemoveResultIDs(ids ...uuid.UUID) *ExtractionDefinitionUpdateOne {
	_u.mutation.RemoveResultIDs(ids...)
	return _u
}

// RemoveResults removes "results" edges to ExtractionResult entities.
func (_u *ExtractionDefinitionUpdateOne) RemoveResults(v ...*ExtractionResult) *ExtractionDefinitionUpdateOne {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveResultIDs(ids...)
}

// Where appends a list predicates to the ExtractionDefinitionUpdate builder.
func (_u *ExtractionDefinitionUpdateOne) Where(ps ...predicate.ExtractionDefinition) *ExtractionDefinitionUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *ExtractionDefinitionUpdateOne) Select(field string, fields ...string) *ExtractionDefinitionUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated ExtractionDefinition entity.
func (_u *ExtractionDefinitionUpdateOne) Save(ctx context.Context) (*ExtractionDefinition, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ExtractionDefinitionUpdateOne) SaveX(ctx context.Context) *ExtractionDefinition {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *ExtractionDefinitionUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ExtractionDefinitionUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *ExtractionDefinitionUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := extractiondefinition.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ExtractionDefinitionUpdateOne) check() error {
	if v, ok := _u.mutation.Name(); ok {
		if err := extractiondefinition.NameValidator(v); err != nil {
			return &ValidationError{Name: "name", err: fmt.Errorf(`ent: validator failed for field "ExtractionDefinition.name": %w`, err)}
		}
	}
	if v, ok := _u.mutation.JSONKey(); ok {
		if err := extractiondefinition.JSONKeyValidator(v); err != nil {
			return &ValidationError{Name: "json_key", err: fmt.Errorf(`ent: validator failed for field "ExtractionDefinition.json_key": %w`, err)}
		}
	}
	if v, ok := _u.mutation.AiInstructions(); ok {
		if err := extractiondefinition.AiInstructionsValidator(v); err != nil {
			return &ValidationError{Name: "ai_instructions", err: fmt.Errorf(`ent: validator failed for field "ExtractionDefinition.ai_instructions": %w`, err)}
		}
	}
	if v, ok := _u.mutation.OutputType(); ok {
		if err := extractiondefinition.OutputTypeValidator(v); err != nil {
			return &ValidationError{Name: "output_type", err: fmt.Errorf(`ent: validator failed for field "ExtractionDefinition.output_type": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Category(); ok {
		if err := extractiondefinition.CategoryValidator(v); err != nil {
			return &ValidationError{Name: "category", err: fmt.Errorf(`ent: validator failed for field "ExtractionDefinition.category": %w`, err)}
		}
	}
	return nil
}

func (_u *ExtractionDefinitionUpdateOne) sqlSave(ctx context.Context) (_node *ExtractionDefinition, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(extractiondefinition.Table, extractiondefinition.Columns, sqlgraph.NewFieldSpec(extractiondefinition.FieldID, field.TypeUUID))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "ExtractionDefinition.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, extractiondefinition.FieldID)
		for _, f := range fields {
			if !extractiondefinition.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != extractiondefinition.FieldID {
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
		_spec.SetField(extractiondefinition.FieldName, field.TypeString, value)
	}
	if value, ok := _u.mutation.JSONKey(); ok {
		_spec.SetField(extractiondefinition.FieldJSONKey, field.TypeString, value)
	}
	if value, ok := _u.mutation.JSONSchema(); ok {
		_spec.SetField(extractiondefinition.FieldJSONSchema, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedJSONSchema(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, extractiondefinition.FieldJSONSchema, value)
		})
	}
	if _u.mutation.JSONSchemaCleared() {
		_spec.ClearField(extractiondefinition.FieldJSONSchema, field.TypeJSON)
	}
	if value, ok := _u.mutation.AiInstructions(); ok {
		_spec.SetField(extractiondefinition.FieldAiInstructions, field.TypeString, value)
	}
	if value, ok := _u.mutation.OutputType(); ok {
		_spec.SetField(extractiondefinition.FieldOutputType, field.TypeString, value)
	}
	if value, ok := _u.mutation.Category(); ok {
		_spec.SetField(extractiondefinition.FieldCategory, field.TypeString, value)
	}
	if value, ok := _u.mutation.IsActive(); ok {
		_spec.SetField(extractiondefinition.FieldIsActive, field.TypeBool, value)
	}
	if value, ok := _u.mutation.SortOrder(); ok {
		_spec.SetField(extractiondefinition.FieldSortOrder, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedSortOrder(); ok {
		_spec.AddField(extractiondefinition.FieldSortOrder, field.TypeInt, value)
	}
	if value, ok := _u.mutation.CreatedAt(); ok {
		_spec.SetField(extractiondefinition.FieldCreatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(extractiondefinition.FieldUpdatedAt, field.TypeTime, value)
	}
	if _u.mutation.ResultsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedResultsIDs(); len(nodes) > 0 && !_u.mutation.ResultsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.ResultsIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &ExtractionDefinition{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{extractiondefinition.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
