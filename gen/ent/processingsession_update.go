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
	"github.com/jide-alade/voicenotes-tracker/gen/ent/extractionresult"
	"github.com/jide-alade/voicenotes-tracker/gen/ent/predicate"
	"github.com/jide-alade/voicenotes-tracker/gen/ent/processingsession"
	"github.com/jide-alade/voicenotes-tracker/gen/ent/transcriptfile"
)

// ProcessingSessionUpdate is the builder for updating ProcessingSession entities.
type ProcessingSessionUpdate struct {
	config
	hooks    []Hook
	mutation *ProcessingSessionMutation
}

// Where appends a list predicates to the ProcessingSessionUpdate builder.
func (_u *ProcessingSessionUpdate) Where(ps ...predicate.ProcessingSession) *ProcessingSessionUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetFileID sets the "file_id" field.
func (_u *ProcessingSessionUpdate) SetFileID(v uuid.UUID) *ProcessingSessionUpdate {
	_u.mutation.SetFileID(v)
	return _u
}

// SetNillableFileID sets the "file_id" field if the given value is not nil.
func (_u *ProcessingSessionUpdate) SetNillableFileID(v *uuid.UUID) *ProcessingSessionUpdate {
	if v != nil {
		_u.SetFileID(*v)
	}
	return _u
}

// SetSummarizationPromptID sets the "summarization_prompt_id" field.
func (_u *ProcessingSessionUpdate) SetSummarizationPromptID(v uuid.UUID) *ProcessingSessionUpdate {
	_u.mutation.SetSummarizationPromptID(v)
	return _u
}

// SetNillableSummarizationPromptID sets the "summarization_prompt_id" field if the given value is not nil.
func (_u *ProcessingSessionUpdate) SetNillableSummarizationPromptID(v *uuid.UUID) *ProcessingSessionUpdate {
	if v != nil {
		_u.SetSummarizationPromptID(*v)
	}
	return _u
}

// ClearSummarizationPromptID clears the value of the "summarization_prompt_id" field.
func (_u *ProcessingSessionUpdate) ClearSummarizationPromptID() *ProcessingSessionUpdate {
	_u.mutation.ClearSummarizationPromptID()
	return _u
}

// SetExtractionSelection sets the "extraction_selection" field.
func (_u *ProcessingSessionUpdate) SetExtractionSelection(v []uuid.UUID) *ProcessingSessionUpdate {
	_u.mutation.SetExtractionSelection(v)
	return _u
}

// AppendExtractionSelection appends value to the "extraction_selection" field.
func (_u *ProcessingSessionUpdate) AppendExtractionSelection(v []uuid.UUID) *ProcessingSessionUpdate {
	_u.mutation.AppendExtractionSelection(v)
	return _u
}

// SetSystemPrompt sets the "system_prompt" field.
func (_u *ProcessingSessionUpdate) SetSystemPrompt(v string) *ProcessingSessionUpdate {
	_u.mutation.SetSystemPrompt(v)
	return _u
}

// SetNillableSystemPrompt sets the "system_prompt" field if the given value is not nil.
func (_u *ProcessingSessionUpdate) SetNillableSystemPrompt(v *string) *ProcessingSessionUpdate {
	if v != nil {
		_u.SetSystemPrompt(*v)
	}
	return _u
}

// SetAiResponse sets the "ai_response" field.
func (_u *ProcessingSessionUpdate) SetAiResponse(v string) *ProcessingSessionUpdate {
	_u.mutation.SetAiResponse(v)
	return _u
}

// SetNillableAiResponse sets the "ai_response" field if the given value is not nil.
func (_u *ProcessingSessionUpdate) SetNillableAiResponse(v *string) *ProcessingSessionUpdate {
	if v != nil {
		_u.SetAiResponse(*v)
	}
	return _u
}

// ClearAiResponse clears the value of the "ai_response" field.
func (_u *ProcessingSessionUpdate) ClearAiResponse() *ProcessingSessionUpdate {
	_u.mutation.ClearAiResponse()
	return _u
}

// SetParsedResponse sets the "parsed_response" field.
func (_u *ProcessingSessionUpdate) SetParsedResponse(v json.RawMessage) *ProcessingSessionUpdate {
	_u.mutation.SetParsedResponse(v)
	return _u
}

// AppendParsedResponse appends value to the "parsed_response" field.
func (_u *ProcessingSessionUpdate) AppendParsedResponse(v json.RawMessage) *ProcessingSessionUpdate {
	_u.mutation.AppendParsedResponse(v)
	return _u
}

// ClearParsedResponse clears the value of the "parsed_response" field.
func (_u *ProcessingSessionUpdate) ClearParsedResponse() *ProcessingSessionUpdate {
	_u.mutation.ClearParsedResponse()
	return _u
}

// SetStatus sets the "status" field.
func (_u *ProcessingSessionUpdate) SetStatus(v string) *ProcessingSessionUpdate {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *ProcessingSessionUpdate) SetNillableStatus(v *string) *ProcessingSessionUpdate {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetErrorMessage sets the "error_message" field.
func (_u *ProcessingSessionUpdate) SetErrorMessage(v string) *ProcessingSessionUpdate {
	_u.mutation.SetErrorMessage(v)
	return _u
}

// SetNillableErrorMessage sets the "error_message" field if the given value is not nil.
func (_u *ProcessingSessionUpdate) SetNillableErrorMessage(v *string) *ProcessingSessionUpdate {
	if v != nil {
		_u.SetErrorMessage(*v)
	}
	return _u
}

// ClearErrorMessage clears the value of the "error_message" field.
func (_u *ProcessingSessionUpdate) ClearErrorMessage() *ProcessingSessionUpdate {
	_u.mutation.ClearErrorMessage()
	return _u
}

// SetProcessingTimeMs sets the "processing_time_ms" field.
func (_u *ProcessingSessionUpdate) SetProcessingTimeMs(v int64) *ProcessingSessionUpdate {
	_u.mutation.ResetProcessingTimeMs()
	_u.mutation.SetProcessingTimeMs(v)
	return _u
}

// SetNillableProcessingTimeMs sets the "processing_time_ms" field if the given value is not nil.
func (_u *ProcessingSessionUpdate) SetNillableProcessingTimeMs(v *int64) *ProcessingSessionUpdate {
	if v != nil {
		_u.SetProcessingTimeMs(*v)
	}
	return _u
}

// AddProcessingTimeMs adds value to the "processing_time_ms" field.
func (_u *ProcessingSessionUpdate) AddProcessingTimeMs(v int64) *ProcessingSessionUpdate {
	_u.mutation.AddProcessingTimeMs(v)
	return _u
}

// SetTokenCount sets the "token_count" field.
func (_u *ProcessingSessionUpdate) SetTokenCount(v int) *ProcessingSessionUpdate {
	_u.mutation.ResetTokenCount()
	_u.mutation.SetTokenCount(v)
	return _u
}

// SetNillableTokenCount sets the "token_count" field if the given value is not nil.
func (_u *ProcessingSessionUpdate) SetNillableTokenCount(v *int) *ProcessingSessionUpdate {
	if v != nil {
		_u.SetTokenCount(*v)
	}
	return _u
}

// AddTokenCount adds value to the "token_count" field.
func (_u *ProcessingSessionUpdate) AddTokenCount(v int) *ProcessingSessionUpdate {
	_u.mutation.AddTokenCount(v)
	return _u
}

// ClearTokenCount clears the value of the "token_count" field.
func (_u *ProcessingSessionUpdate) ClearTokenCount() *ProcessingSessionUpdate {
	_u.mutation.ClearTokenCount()
	return _u
}

// SetModel sets the "model" field.
func (_u *ProcessingSessionUpdate) SetModel(v string) *ProcessingSessionUpdate {
	_u.mutation.SetModel(v)
	return _u
}

// SetNillableModel sets the "model" field if the given value is not nil.
func (_u *ProcessingSessionUpdate) SetNillableModel(v *string) *ProcessingSessionUpdate {
	if v != nil {
		_u.SetModel(*v)
	}
	return _u
}

// SetCreatedAt sets the "created_at" field.
func (_u *ProcessingSessionUpdate) SetCreatedAt(v time.Time) *ProcessingSessionUpdate {
	_u.mutation.SetCreatedAt(v)
	return _u
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_u *ProcessingSessionUpdate) SetNillableCreatedAt(v *time.Time) *ProcessingSessionUpdate {
	if v != nil {
		_u.SetCreatedAt(*v)
	}
	return _u
}

// SetCompletedAt sets the "completed_at" field.
func (_u *ProcessingSessionUpdate) SetCompletedAt(v time.Time) *ProcessingSessionUpdate {
	_u.mutation.SetCompletedAt(v)
	return _u
}

// SetNillableCompletedAt sets the "completed_at" field if the given value is not nil.
func (_u *ProcessingSessionUpdate) SetNillableCompletedAt(v *time.Time) *ProcessingSessionUpdate {
	if v != nil {
		_u.SetCompletedAt(*v)
	}
	return _u
}

// ClearCompletedAt clears the value of the "completed_at" field.
func (_u *ProcessingSessionUpdate) ClearCompletedAt() *ProcessingSessionUpdate {
	_u.mutation.ClearCompletedAt()
	return _u
}

// SetFile sets the "file" edge to the TranscriptFile entity.
func (_u *ProcessingSessionUpdate) SetFile(v *TranscriptFile) *ProcessingSessionUpdate {
	return _u.SetFileID(v.ID)
}

// AddResultIDs adds the "results" edge to the ExtractionResult entity by IDs.
func (_u *ProcessingSessionUpdate) AddResultIDs(ids ...uuid.UUID) *ProcessingSessionUpdate {
	_u.mutation.AddResultIDs(ids...)
	return _u
}

// AddResults adds the "results" edges to the ExtractionResult entity.
func (_u *ProcessingSessionUpdate) AddResults(v ...*ExtractionResult) *ProcessingSessionUpdate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddResultIDs(ids...)
}

// Mutation returns the ProcessingSessionMutation object of the builder.
func (_u *ProcessingSessionUpdate) Mutation() *ProcessingSessionMutation {
	return _u.mutation
}

// ClearFile clears the "file" edge to the TranscriptFile entity.
func (_u *ProcessingSessionUpdate) ClearFile() *ProcessingSessionUpdate {
	_u.mutation.ClearFile()
	return _u
}

// ClearResults clears all "results" edges to the ExtractionResult entity.
func (_u *ProcessingSessionUpdate) ClearResults() *ProcessingSessionUpdate {
	_u.mutation.ClearResults()
	return _u
}

// RemoveResultIDs removes the "results" edge to ExtractionResult entities by IDs.
func (_u *ProcessingSessionUpdate) RemoveResultIDs(ids ...uuid.UUID) *ProcessingSessionUpdate {
	_u.mutation.RemoveResultIDs(ids...)
	return _u
}

// RemoveResults removes "results" edges to ExtractionResult entities.
func (_u *ProcessingSessionUpdate) RemoveResults(v ...*ExtractionResult) *ProcessingSessionUpdate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveResultIDs(ids...)
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *ProcessingSessionUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ProcessingSessionUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *ProcessingSessionUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ProcessingSessionUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ProcessingSessionUpdate) check() error {
	if v, ok := _u.mutation.Status(); ok {
		if err := processingsession.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "ProcessingSession.status": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Model(); ok {
		if err := processingsession.ModelValidator(v); err != nil {
			return &ValidationError{Name: "model", err: fmt.Errorf(`ent: validator failed for field "ProcessingSession.model": %w`, err)}
		}
	}
	if _u.mutation.FileCleared() && len(_u.mutation.FileIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "ProcessingSession.file"`)
	}
	return nil
}

func (_u *ProcessingSessionUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(processingsession.Table, processingsession.Columns, sqlgraph.NewFieldSpec(processingsession.FieldID, field.TypeUUID))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.SummarizationPromptID(); ok {
		_spec.SetField(processingsession.FieldSummarizationPromptID, field.TypeUUID, value)
	}
	if _u.mutation.SummarizationPromptIDCleared() {
		_spec.ClearField(processingsession.FieldSummarizationPromptID, field.TypeUUID)
	}
	if value, ok := _u.mutation.ExtractionSelection(); ok {
		_spec.SetField(processingsession.FieldExtractionSelection, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedExtractionSelection(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, processingsession.FieldExtractionSelection, value)
		})
	}
	if value, ok := _u.mutation.SystemPrompt(); ok {
		_spec.SetField(processingsession.FieldSystemPrompt, field.TypeString, value)
	}
	if value, ok := _u.mutation.AiResponse(); ok {
		_spec.SetField(processingsession.FieldAiResponse, field.TypeString, value)
	}
	if _u.mutation.AiResponseCleared() {
		_spec.ClearField(processingsession.FieldAiResponse, field.TypeString)
	}
	if value, ok := _u.mutation.ParsedResponse(); ok {
		_spec.SetField(processingsession.FieldParsedResponse, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedParsedResponse(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, processingsession.FieldParsedResponse, value)
		})
	}
	if _u.mutation.ParsedResponseCleared() {
		_spec.ClearField(processingsession.FieldParsedResponse, field.TypeJSON)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(processingsession.FieldStatus, field.TypeString, value)
	}
	if value, ok := _u.mutation.ErrorMessage(); ok {
		_spec.SetField(processingsession.FieldErrorMessage, field.TypeString, value)
	}
	if _u.mutation.ErrorMessageCleared() {
		_spec.ClearField(processingsession.FieldErrorMessage, field.TypeString)
	}
	if value, ok := _u.mutation.ProcessingTimeMs(); ok {
		_spec.SetField(processingsession.FieldProcessingTimeMs, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.AddedProcessingTimeMs(); ok {
		_spec.AddField(processingsession.FieldProcessingTimeMs, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.TokenCount(); ok {
		_spec.SetField(processingsession.FieldTokenCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedTokenCount(); ok {
		_spec.AddField(processingsession.FieldTokenCount, field.TypeInt, value)
	}
	if _u.mutation.TokenCountCleared() {
		_spec.ClearField(processingsession.FieldTokenCount, field.TypeInt)
	}
	if value, ok := _u.mutation.Model(); ok {
		_spec.SetField(processingsession.FieldModel, field.TypeString, value)
	}
	if value, ok := _u.mutation.CreatedAt(); ok {
		_spec.SetField(processingsession.FieldCreatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.CompletedAt(); ok {
		_spec.SetField(processingsession.FieldCompletedAt, field.TypeTime, value)
	}
	if _u.mutation.CompletedAtCleared() {
		_spec.ClearField(processingsession.FieldCompletedAt, field.TypeTime)
	}
	if _u.mutation.FileCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.FileIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.ResultsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedResultsIDs(); len(nodes) > 0 && !_u.mutation.ResultsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.ResultsIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{processingsession.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// ProcessingSessionUpdateOne is the builder for updating a single ProcessingSession entity.
type ProcessingSessionUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *ProcessingSessionMutation
}

// SetFileID sets the "file_id" field.
func (_u *ProcessingSessionUpdateOne) SetFileID(v uuid.UUID) *ProcessingSessionUpdateOne {
	_u.mutation.SetFileID(v)
	return _u
}

// SetNillableFileID sets the "file_id" field if the given value is not nil.
func (_u *ProcessingSessionUpdateOne) SetNillableFileID(v *uuid.UUID) *ProcessingSessionUpdateOne {
	if v != nil {
		_u.SetFileID(*v)
	}
	return _u
}

// SetSummarizationPromptID sets the "summarization_prompt_id" field.
func (_u *ProcessingSessionUpdateOne) SetSummarizationPromptID(v uuid.UUID) *ProcessingSessionUpdateOne {
	_u.mutation.SetSummarizationPromptID(v)
	return _u
}

// SetNillableSummarizationPromptID sets the "summarization_prompt_id" field if the given value is not nil.
func (_u *ProcessingSessionUpdateOne) SetNillableSummarizationPromptID(v *uuid.UUID) *ProcessingSessionUpdateOne {
	if v != nil {
		_u.SetSummarizationPromptID(*v)
	}
	return _u
}

// ClearSummarizationPromptID clears the value of the "summarization_prompt_id" field.
func (_u *ProcessingSessionUpdateOne) ClearSummarizationPromptID() *ProcessingSessionUpdateOne {
	_u.mutation.ClearSummarizationPromptID()
	return _u
}

// SetExtractionSelection sets the "extraction_selection" field.
func (_u *ProcessingSessionUpdateOne) SetExtractionSelection(v []uuid.UUID) *ProcessingSessionUpdateOne {
	_u.mutation.SetExtractionSelection(v)
	return _u
}

// AppendExtractionSelection appends value to the "extraction_selection" field.
func (_u *ProcessingSessionUpdateOne) AppendExtractionSelection(v []uuid.UUID) *ProcessingSessionUpdateOne {
	_u.mutation.AppendExtractionSelection(v)
	return _u
}

// SetSystemPrompt sets the "system_prompt" field.
func (_u *ProcessingSessionUpdateOne) SetSystemPrompt(v string) *ProcessingSessionUpdateOne {
	_u.mutation.SetSystemPrompt(v)
	return _u
}

// SetNillableSystemPrompt sets the "system_prompt" field if the given value is not nil.
func (_u *ProcessingSessionUpdateOne) SetNillableSystemPrompt(v *string) *ProcessingSessionUpdateOne {
	if v != nil {
		_u.SetSystemPrompt(*v)
	}
	return _u
}

// SetAiResponse sets the "ai_response" field.
func (_u *ProcessingSessionUpdateOne) SetAiResponse(v string) *ProcessingSessionUpdateOne {
	_u.mutation.SetAiResponse(v)
	return _u
}

// SetNillableAiResponse sets the "ai_response" field if the given value is not nil.
func (_u *ProcessingSessionUpdateOne) SetNillableAiResponse(v *string) *ProcessingSessionUpdateOne {
	if v != nil {
		_u.SetAiResponse(*v)
	}
	return _u
}

// ClearAiResponse clears the value of the "ai_response" field.
func (_u *ProcessingSessionUpdateOne) ClearAiResponse() *ProcessingSessionUpdateOne {
	_u.mutation.ClearAiResponse()
	return _u
}

// SetParsedResponse sets the "parsed_response" field.
func (_u *ProcessingSessionUpdateOne) SetParsedResponse(v json.RawMessage) *ProcessingSessionUpdateOne {
	_u.mutation.SetParsedResponse(v)
	return _u
}

// AppendParsedResponse appends value to the "parsed_response" field.
func (_u *ProcessingSessionUpdateOne) AppendParsedResponse(v json.RawMessage) *ProcessingSessionUpdateOne {
	_u.mutation.AppendParsedResponse(v)
	return _u
}

// ClearParsedResponse clears the value of the "parsed_response" field.
func (_u *ProcessingSessionUpdateOne) ClearParsedResponse() *ProcessingSessionUpdateOne {
	_u.mutation.ClearParsedResponse()
	return _u
}

// SetStatus sets the "status" field.
func (_u *ProcessingSessionUpdateOne) SetStatus(v string) *ProcessingSessionUpdateOne {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *ProcessingSessionUpdateOne) SetNillableStatus(v *string) *ProcessingSessionUpdateOne {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetErrorMessage sets the "error_message" field.
func (_u *ProcessingSessionUpdateOne) SetErrorMessage(v string) *ProcessingSessionUpdateOne {
	_u.mutation.SetErrorMessage(v)
	return _u
}

// SetNillableErrorMessage sets the "error_message" field if the given value is not nil.
func (_u *ProcessingSessionUpdateOne) SetNillableErrorMessage(v *string) *ProcessingSessionUpdateOne {
	if v != nil {
		_u.SetErrorMessage(*v)
	}
	return _u
}

// ClearErrorMessage clears the value of the "error_message" field.
func (_u *ProcessingSessionUpdateOne) ClearErrorMessage() *ProcessingSessionUpdateOne {
	_u.mutation.ClearErrorMessage()
	return _u
}

// SetProcessingTimeMs sets the "processing_time_ms" field.
func (_u *ProcessingSessionUpdateOne) SetProcessingTimeMs(v int64) *ProcessingSessionUpdateOne {
	_u.mutation.ResetProcessingTimeMs()
	_u.mutation.SetProcessingTimeMs(v)
	return _u
}

// SetNillableProcessingTimeMs sets the "processing_time_ms" field if the given value is not nil.
func (_u *ProcessingSessionUpdateOne) SetNillableProcessingTimeMs(v *int64) *ProcessingSessionUpdateOne {
	if v != nil {
		_u.SetProcessingTimeMs(*v)
	}
	return _u
}

// AddProcessingTimeMs adds value to the "processing_time_ms" field.
func (_u *ProcessingSessionUpdateOne) AddProcessingTimeMs(v int64) *ProcessingSessionUpdateOne {
	_u.mutation.AddProcessingTimeMs(v)
	return _u
}

// SetTokenCount sets the "token_count" field.
func (_u *ProcessingSessionUpdateOne) SetTokenCount(v int) *ProcessingSessionUpdateOne {
	_u.mutation.ResetTokenCount()
	_u.mutation.SetTokenCount(v)
	return _u
}

// SetNillableTokenCount sets the "token_count" field if the given value is not nil.
func (_u *ProcessingSessionUpdateOne) SetNillableTokenCount(v *int) *ProcessingSessionUpdateOne {
	if v != nil {
		_u.SetTokenCount(*v)
	}
	return _u
}

// AddTokenCount adds value to the "token_count" field.
func (_u *ProcessingSessionUpdateOne) AddTokenCount(v int) *ProcessingSessionUpdateOne {
	_u.mutation.AddTokenCount(v)
	return _u
}

// ClearTokenCount clears the value of the "token_count" field.
func (_u *ProcessingSessionUpdateOne) ClearTokenCount() *ProcessingSessionUpdateOne {
	_u.mutation.ClearTokenCount()
	return _u
}

// SetModel sets the "model" field.
func (_u *ProcessingSessionUpdateOne) SetModel(v string) *ProcessingSessionUpdateOne {
	_u.mutation.SetModel(v)
	return _u
}

// SetNillableModel sets the "model" field if the given value is not nil.
func (_u *ProcessingSessionUpdateOne) SetNillableModel(v *string) *ProcessingSessionUpdateOne {
	if v != nil {
		_u.SetModel(*v)
	}
	return _u
}

// SetCreatedAt sets the "created_at" field.
func (_u *ProcessingSessionUpdateOne) SetCreatedAt(v time.Time) *ProcessingSessionUpdateOne {
	_u.mutation.SetCreatedAt(v)
	return _u
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_u *ProcessingSessionUpdateOne) SetNillableCreatedAt(v *time.Time) *ProcessingSessionUpdateOne {
	if v != nil {
		_u.SetCreatedAt(*v)
	}
	return _u
}

// SetCompletedAt sets the "completed_at" field.
func (_u *ProcessingSessionUpdateOne) SetCompletedAt(v time.Time) *ProcessingSessionUpdateOne {
	_u.mutation.SetCompletedAt(v)
	return _u
}

// SetNillableCompletedAt sets the "completed_at" field if the given value is not nil.
func (_u *ProcessingSessionUpdateOne) SetNillableCompletedAt(v *time.Time) *ProcessingSessionUpdateOne {
	if v != nil {
		_u.SetCompletedAt(*v)
	}
	return _u
}

// ClearCompletedAt clears the value of the "completed_at" field.
func (_u *ProcessingSessionUpdateOne) ClearCompletedAt() *ProcessingSessionUpdateOne {
	_u.mutation.ClearCompletedAt()
	return _u
}

// SetFile sets the "file" edge to the TranscriptFile entity.
func (_u *ProcessingSessionUpdateOne) SetFile(v *TranscriptFile) *ProcessingSessionUpdateOne {
	return _u.SetFileID(v.ID)
}

// AddResultIDs adds the "results" edge to the ExtractionResult entity by IDs.
func (_u *ProcessingSessionUpdateOne) AddResultIDs(ids ...uuid.UUID) *ProcessingSessionUpdateOne {
	_u.mutation.AddResultIDs(ids...)
	return _u
}

// AddResults adds the "results" edges to the ExtractionResult entity.
func (_u *ProcessingSessionUpdateOne) AddResults(v ...*ExtractionResult) *ProcessingSessionUpdateOne {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddResultIDs(ids...)
}

// Mutation returns the ProcessingSessionMutation object of the builder.
func (_u *ProcessingSessionUpdateOne) Mutation() *ProcessingSessionMutation {
	return _u.mutation
}

// ClearFile clears the "file" edge to the TranscriptFile entity.
func (_u *ProcessingSessionUpdateOne) ClearFile() *ProcessingSessionUpdateOne {
	_u.mutation.ClearFile()
	return _u
}

// ClearResults clears all "results" edges to the ExtractionResult entity.
func (_u *ProcessingSessionUpdateOne) ClearResults() *ProcessingSessionUpdateOne {
	_u.mutation.ClearResults()
	return _u
}

// RemoveResultIDs removes the "results" edge to ExtractionResult entities by IDs.
func (_u *ProcessingSessionUpdateOne) RemoveResultIDs(ids ...uuid.UUID) *ProcessingSessionUpdateOne {
	_u.mutation.RemoveResultIDs(ids...)
	return _u
}

// RemoveResults removes "results" edges to ExtractionResult entities.
func (_u *ProcessingSessionUpdateOne) RemoveResults(v ...*ExtractionResult) *ProcessingSessionUpdateOne {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveResultIDs(ids...)
}

// Where appends a list predicates to the ProcessingSessionUpdate builder.
func (_u *ProcessingSessionUpdateOne) Where(ps ...predicate.ProcessingSession) *ProcessingSessionUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *ProcessingSessionUpdateOne) Select(field string, fields ...string) *ProcessingSessionUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated ProcessingSession entity.
func (_u *ProcessingSessionUpdateOne) Save(ctx context.Context) (*ProcessingSession, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ProcessingSessionUpdateOne) SaveX(ctx context.Context) *ProcessingSession {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *ProcessingSessionUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ProcessingSessionUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ProcessingSessionUpdateOne) check() error {
	if v, ok := _u.mutation.Status(); ok {
		if err := processingsession.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "ProcessingSession.status": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Model(); ok {
		if err := processingsession.ModelValidator(v); err != nil {
			return &ValidationError{Name: "model", err: fmt.Errorf(`ent: validator failed for field "ProcessingSession.model": %w`, err)}
		}
	}
	if _u.mutation.FileCleared() && len(_u.mutation.FileIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "ProcessingSession.file"`)
	}
	return nil
}

func (_u *ProcessingSessionUpdateOne) sqlSave(ctx context.Context) (_node *ProcessingSession, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(processingsession.Table, processingsession.Columns, sqlgraph.NewFieldSpec(processingsession.FieldID, field.TypeUUID))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "ProcessingSession.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, processingsession.FieldID)
		for _, f := range fields {
			if !processingsession.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != processingsession.FieldID {
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
	if value, ok := _u.mutation.SummarizationPromptID(); ok {
		_spec.SetField(processingsession.FieldSummarizationPromptID, field.TypeUUID, value)
	}
	if _u.mutation.SummarizationPromptIDCleared() {
		_spec.ClearField(processingsession.FieldSummarizationPromptID, field.TypeUUID)
	}
	if value, ok := _u.mutation.ExtractionSelection(); ok {
		_spec.SetField(processingsession.FieldExtractionSelection, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedExtractionSelection(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, processingsession.FieldExtractionSelection, value)
		})
	}
	if value, ok := _u.mutation.SystemPrompt(); ok {
		_spec.SetField(processingsession.FieldSystemPrompt, field.TypeString, value)
	}
	if value, ok := _u.mutation.AiResponse(); ok {
		_spec.SetField(processingsession.FieldAiResponse, field.TypeString, value)
	}
	if _u.mutation.AiResponseCleared() {
		_spec.ClearField(processingsession.FieldAiResponse, field.TypeString)
	}
	if value, ok := _u.mutation.ParsedResponse(); ok {
		_spec.SetField(processingsession.FieldParsedResponse, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedParsedResponse(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, processingsession.FieldParsedResponse, value)
		})
	}
	if _u.mutation.ParsedResponseCleared() {
		_spec.ClearField(processingsession.FieldParsedResponse, field.TypeJSON)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(processingsession.FieldStatus, field.TypeString, value)
	}
	if value, ok := _u.mutation.ErrorMessage(); ok {
		_spec.SetField(processingsession.FieldErrorMessage, field.TypeString, value)
	}
	if _u.mutation.ErrorMessageCleared() {
		_spec.ClearField(processingsession.FieldErrorMessage, field.TypeString)
	}
	if value, ok := _u.mutation.ProcessingTimeMs(); ok {
		_spec.SetField(processingsession.FieldProcessingTimeMs, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.AddedProcessingTimeMs(); ok {
		_spec.AddField(processingsession.FieldProcessingTimeMs, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.TokenCount(); ok {
		_spec.SetField(processingsession.FieldTokenCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedTokenCount(); ok {
		_spec.AddField(processingsession.FieldTokenCount, field.TypeInt, value)
	}
	if _u.mutation.TokenCountCleared() {
		_spec.ClearField(processingsession.FieldTokenCount, field.TypeInt)
	}
	if value, ok := _u.mutation.Model(); ok {
		_spec.SetField(processingsession.FieldModel, field.TypeString, value)
	}
	if value, ok := _u.mutation.CreatedAt(); ok {
		_spec.SetField(processingsession.FieldCreatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.CompletedAt(); ok {
		_spec.SetField(processingsession.FieldCompletedAt, field.TypeTime, value)
	}
	if _u.mutation.CompletedAtCleared() {
		_spec.ClearField(processingsession.FieldCompletedAt, field.TypeTime)
	}
	if _u.mutation.FileCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.FileIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.ResultsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedResultsIDs(); len(nodes) > 0 && !_u.mutation.ResultsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.ResultsIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &ProcessingSession{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{processingsession.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
