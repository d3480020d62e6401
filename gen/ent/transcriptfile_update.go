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
	"github.com/jide-alade/voicenotes-tracker/gen/ent/summarization"
	"github.com/jide-alade/voicenotes-tracker/gen/ent/transcriptfile"
)

// TranscriptFileUpdate is the builder for updating TranscriptFile entities.
type TranscriptFileUpdate struct {
	config
	hooks    []Hook
	mutation *TranscriptFileMutation
}

// Where appends a list predicates to the TranscriptFileUpdate builder.
func (_u *TranscriptFileUpdate) Where(ps ...predicate.TranscriptFile) *TranscriptFileUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetFilename sets the "filename" field.
func (_u *TranscriptFileUpdate) SetFilename(v string) *TranscriptFileUpdate {
	_u.mutation.SetFilename(v)
	return _u
}

// SetNillableFilename sets the "filename" field if the given value is not nil.
func (_u *TranscriptFileUpdate) SetNillableFilename(v *string) *TranscriptFileUpdate {
	if v != nil {
		_u.SetFilename(*v)
	}
	return _u
}

// SetSourcePath sets the "source_path" field.
func (_u *TranscriptFileUpdate) SetSourcePath(v string) *TranscriptFileUpdate {
	_u.mutation.SetSourcePath(v)
	return _u
}

// SetNillableSourcePath sets the "source_path" field if the given value is not nil.
func (_u *TranscriptFileUpdate) SetNillableSourcePath(v *string) *TranscriptFileUpdate {
	if v != nil {
		_u.SetSourcePath(*v)
	}
	return _u
}

// SetTranscriptText sets the "transcript_text" field.
func (_u *TranscriptFileUpdate) SetTranscriptText(v string) *TranscriptFileUpdate {
	_u.mutation.SetTranscriptText(v)
	return _u
}

// SetNillableTranscriptText sets the "transcript_text" field if the given value is not nil.
func (_u *TranscriptFileUpdate) SetNillableTranscriptText(v *string) *TranscriptFileUpdate {
	if v != nil {
		_u.SetTranscriptText(*v)
	}
	return _u
}

// ClearTranscriptText clears the value of the "transcript_text" field.
func (_u *TranscriptFileUpdate) ClearTranscriptText() *TranscriptFileUpdate {
	_u.mutation.ClearTranscriptText()
	return _u
}

// SetTranscriptSegments sets the "transcript_segments" field.
func (_u *TranscriptFileUpdate) SetTranscriptSegments(v json.RawMessage) *TranscriptFileUpdate {
	_u.mutation.SetTranscriptSegments(v)
	return _u
}

// AppendTranscriptSegments appends value to the "transcript_segments" field.
func (_u *TranscriptFileUpdate) AppendTranscriptSegments(v json.RawMessage) *TranscriptFileUpdate {
	_u.mutation.AppendTranscriptSegments(v)
	return _u
}

// ClearTranscriptSegments clears the value of the "transcript_segments" field.
func (_u *TranscriptFileUpdate) ClearTranscriptSegments() *TranscriptFileUpdate {
	_u.mutation.ClearTranscriptSegments()
	return _u
}

// SetLanguage sets the "language" field.
func (_u *TranscriptFileUpdate) SetLanguage(v string) *TranscriptFileUpdate {
	_u.mutation.SetLanguage(v)
	return _u
}

// SetNillableLanguage sets the "language" field if the given value is not nil.
func (_u *TranscriptFileUpdate) SetNillableLanguage(v *string) *TranscriptFileUpdate {
	if v != nil {
		_u.SetLanguage(*v)
	}
	return _u
}

// ClearLanguage clears the value of the "language" field.
func (_u *TranscriptFileUpdate) ClearLanguage() *TranscriptFileUpdate {
	_u.mutation.ClearLanguage()
	return _u
}

// SetDurationSeconds sets the "duration_seconds" field.
func (_u *TranscriptFileUpdate) SetDurationSeconds(v float64) *TranscriptFileUpdate {
	_u.mutation.ResetDurationSeconds()
	_u.mutation.SetDurationSeconds(v)
	return _u
}

// SetNillableDurationSeconds sets the "duration_seconds" field if the given value is not nil.
func (_u *TranscriptFileUpdate) SetNillableDurationSeconds(v *float64) *TranscriptFileUpdate {
	if v != nil {
		_u.SetDurationSeconds(*v)
	}
	return _u
}

// AddDurationSeconds adds value to the "duration_seconds" field.
func (_u *TranscriptFileUpdate) AddDurationSeconds(v float64) *TranscriptFileUpdate {
	_u.mutation.AddDurationSeconds(v)
	return _u
}

// ClearDurationSeconds clears the value of the "duration_seconds" field.
func (_u *TranscriptFileUpdate) ClearDurationSeconds() *TranscriptFileUpdate {
	_u.mutation.ClearDurationSeconds()
	return _u
}

// SetUploadedAt sets the "uploaded_at" field.
func (_u *TranscriptFileUpdate) SetUploadedAt(v time.Time) *TranscriptFileUpdate {
	_u.mutation.SetUploadedAt(v)
	return _u
}

// SetNillableUploadedAt sets the "uploaded_at" field if the given value is not nil.
func (_u *TranscriptFileUpdate) SetNillableUploadedAt(v *time.Time) *TranscriptFileUpdate {
	if v != nil {
		_u.SetUploadedAt(*v)
	}
	return _u
}

// AddSessionIDs adds the "sessions" edge to the ProcessingSession entity by IDs.
func (_u *TranscriptFileUpdate) AddSessionIDs(ids ...uuid.UUID) *TranscriptFileUpdate {
	_u.mutation.AddSessionIDs(ids...)
	return _u
}

// AddSessions adds the "sessions" edges to the ProcessingSession entity.
func (_u *TranscriptFileUpdate) AddSessions(v ...*ProcessingSession) *TranscriptFileUpdate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddSessionIDs(ids...)
}

// AddResultIDs adds the "results" edge to the ExtractionResult entity by IDs.
func (_u *TranscriptFileUpdate) AddResultIDs(ids ...uuid.UUID) *TranscriptFileUpdate {
	_u.mutation.AddResultIDs(ids...)
	return _u
}

// AddResults adds the "results" edges to the ExtractionResult entity.
func (_u *TranscriptFileUpdate) AddResults(v ...*ExtractionResult) *TranscriptFileUpdate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddResultIDs(ids...)
}

// AddSummarizationIDs adds the "summarizations" edge to the Summarization entity by IDs.
func (_u *TranscriptFileUpdate) AddSummarizationIDs(ids ...uuid.UUID) *TranscriptFileUpdate {
	_u.mutation.AddSummarizationIDs(ids...)
	return _u
}

// AddSummarizations adds the "summarizations" edges to the Summarization entity.
func (_u *TranscriptFileUpdate) AddSummarizations(v ...*Summarization) *TranscriptFileUpdate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddSummarizationIDs(ids...)
}

// Mutation returns the TranscriptFileMutation object of the builder.
func (_u *TranscriptFileUpdate) Mutation() *TranscriptFileMutation {
	return _u.mutation
}

// ClearSessions clears all "sessions" edges to the ProcessingSession entity.
func (_u *TranscriptFileUpdate) ClearSessions() *TranscriptFileUpdate {
	_u.mutation.ClearSessions()
	return _u
}

// RemoveSessionIDs removes the "sessions" edge to ProcessingSession entities by IDs.
func (_u *TranscriptFileUpdate) RemoveSessionIDs(ids ...uuid.UUID) *TranscriptFileUpdate {
	_u.mutation.RemoveSessionIDs(ids...)
	return _u
}

// RemoveSessions removes "sessions" edges to ProcessingSession entities.
func (_u *TranscriptFileUpdate) RemoveSessions(v ...*ProcessingSession) *TranscriptFileUpdate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveSessionIDs(ids...)
}

// ClearResults clears all "results" edges to the ExtractionResult entity.
func (_u *TranscriptFileUpdate) ClearResults() *TranscriptFileUpdate {
	_u.mutation.ClearResults()
	return _u
}

// RemoveResultIDs removes the "results" edge to ExtractionResult entities by IDs.
func (_u *TranscriptFileUpdate) RemoveResultIDs(ids ...uuid.UUID) *TranscriptFileUpdate {
	_u.mutation.RemoveResultIDs(ids...)
	return _u
}

// RemoveResults removes "results" edges to ExtractionResult entities.
func (_u *TranscriptFileUpdate) RemoveResults(v ...*ExtractionResult) *TranscriptFileUpdate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveResultIDs(ids...)
}

// ClearSummarizations clears all "summarizations" edges to the Summarization entity.
func (_u *TranscriptFileUpdate) ClearSummarizations() *TranscriptFileUpdate {
	_u.mutation.ClearSummarizations()
	return _u
}

// RemoveSummarizationIDs removes the "summarizations" edge to Summarization entities by IDs.
func (_u *TranscriptFileUpdate) RemoveSummarizationIDs(ids ...uuid.UUID) *TranscriptFileUpdate {
	_u.mutation.RemoveSummarizationIDs(ids...)
	return _u
}

// RemoveSummarizations removes "summarizations" edges to Summarization entities.
func (_u *TranscriptFileUpdate) RemoveSummarizations(v ...*Summarization) *TranscriptFileUpdate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveSummarizationIDs(ids...)
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *TranscriptFileUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *TranscriptFileUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *TranscriptFileUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *TranscriptFileUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *TranscriptFileUpdate) check() error {
	if v, ok := _u.mutation.Filename(); ok {
		if err := transcriptfile.FilenameValidator(v); err != nil {
			return &ValidationError{Name: "filename", err: fmt.Errorf(`ent: validator failed for field "TranscriptFile.filename": %w`, err)}
		}
	}
	if v, ok := _u.mutation.SourcePath(); ok {
		if err := transcriptfile.SourcePathValidator(v); err != nil {
			return &ValidationError{Name: "source_path", err: fmt.Errorf(`ent: validator failed for field "TranscriptFile.source_path": %w`, err)}
		}
	}
	return nil
}

func (_u *TranscriptFileUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(transcriptfile.Table, transcriptfile.Columns, sqlgraph.NewFieldSpec(transcriptfile.FieldID, field.TypeUUID))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Filename(); ok {
		_spec.SetField(transcriptfile.FieldFilename, field.TypeString, value)
	}
	if value, ok := _u.mutation.SourcePath(); ok {
		_spec.SetField(transcriptfile.FieldSourcePath, field.TypeString, value)
	}
	if value, ok := _u.mutation.TranscriptText(); ok {
		_spec.SetField(transcriptfile.FieldTranscriptText, field.TypeString, value)
	}
	if _u.mutation.TranscriptTextCleared() {
		_spec.ClearField(transcriptfile.FieldTranscriptText, field.TypeString)
	}
	if value, ok := _u.mutation.TranscriptSegments(); ok {
		_spec.SetField(transcriptfile.FieldTranscriptSegments, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedTranscriptSegments(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, transcriptfile.FieldTranscriptSegments, value)
		})
	}
	if _u.mutation.TranscriptSegmentsCleared() {
		_spec.ClearField(transcriptfile.FieldTranscriptSegments, field.TypeJSON)
	}
	if value, ok := _u.mutation.Language(); ok {
		_spec.SetField(transcriptfile.FieldLanguage, field.TypeString, value)
	}
	if _u.mutation.LanguageCleared() {
		_spec.ClearField(transcriptfile.FieldLanguage, field.TypeString)
	}
	if value, ok := _u.mutation.DurationSeconds(); ok {
		_spec.SetField(transcriptfile.FieldDurationSeconds, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedDurationSeconds(); ok {
		_spec.AddField(transcriptfile.FieldDurationSeconds, field.TypeFloat64, value)
	}
	if _u.mutation.DurationSecondsCleared() {
		_spec.ClearField(transcriptfile.FieldDurationSeconds, field.TypeFloat64)
	}
	if value, ok := _u.mutation.UploadedAt(); ok {
		_spec.SetField(transcriptfile.FieldUploadedAt, field.TypeTime, value)
	}
	if _u.mutation.SessionsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   transcriptfile.SessionsTable,
			Columns: []string{transcriptfile.SessionsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(processingsession.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedSessionsIDs(); len(nodes) > 0 && !_u.mutation.SessionsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   transcriptfile.SessionsTable,
			Columns: []string{transcriptfile.SessionsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(processingsession.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.SessionsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   transcriptfile.SessionsTable,
			Columns: []string{transcriptfile.SessionsColumn},
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
	if _u.mutation.ResultsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   transcriptfile.ResultsTable,
			Columns: []string{transcriptfile.ResultsColumn},
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
			Table:   transcriptfile.ResultsTable,
			Columns: []string{transcriptfile.ResultsColumn},
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
			Table:   transcriptfile.ResultsTable,
			Columns: []string{transcriptfile.ResultsColumn},
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
	if _u.mutation.SummarizationsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   transcriptfile.SummarizationsTable,
			Columns: []string{transcriptfile.SummarizationsColumn},
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
			Table:   transcriptfile.SummarizationsTable,
			Columns: []string{transcriptfile.SummarizationsColumn},
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
			Table:   transcriptfile.SummarizationsTable,
			Columns: []string{transcriptfile.SummarizationsColumn},
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
			err = &NotFoundError{transcriptfile.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// TranscriptFileUpdateOne is the builder for updating a single TranscriptFile entity.
type TranscriptFileUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *TranscriptFileMutation
}

// SetFilename sets the "filename" field.
func (_u *TranscriptFileUpdateOne) SetFilename(v string) *TranscriptFileUpdateOne {
	_u.mutation.SetFilename(v)
	return _u
}

// SetNillableFilename sets the "filename" field if the given value is not nil.
func (_u *TranscriptFileUpdateOne) SetNillableFilename(v *string) *TranscriptFileUpdateOne {
	if v != nil {
		_u.SetFilename(*v)
	}
	return _u
}

// SetSourcePath sets the "source_path" field.
func (_u *TranscriptFileUpdateOne) SetSourcePath(v string) *TranscriptFileUpdateOne {
	_u.mutation.SetSourcePath(v)
	return _u
}

// SetNillableSourcePath sets the "source_path" field if the given value is not nil.
func (_u *TranscriptFileUpdateOne) SetNillableSourcePath(v *string) *TranscriptFileUpdateOne {
	if v != nil {
		_u.SetSourcePath(*v)
	}
	return _u
}

// SetTranscriptText sets the "transcript_text" field.
func (_u *TranscriptFileUpdateOne) SetTranscriptText(v string) *TranscriptFileUpdateOne {
	_u.mutation.SetTranscriptText(v)
	return _u
}

// SetNillableTranscriptText sets the "transcript_text" field if the given value is not nil.
func (_u *TranscriptFileUpdateOne) SetNillableTranscriptText(v *string) *TranscriptFileUpdateOne {
	if v != nil {
		_u.SetTranscriptText(*v)
	}
	return _u
}

// ClearTranscriptText clears the value of the "transcript_text" field.
func (_u *TranscriptFileUpdateOne) ClearTranscriptText() *TranscriptFileUpdateOne {
	_u.mutation.ClearTranscriptText()
	return _u
}

// SetTranscriptSegments sets the "transcript_segments" field.
func (_u *TranscriptFileUpdateOne) SetTranscriptSegments(v json.RawMessage) *TranscriptFileUpdateOne {
	_u.mutation.SetTranscriptSegments(v)
	return _u
}

// AppendTranscriptSegments appends value to the "transcript_segments" field.
func (_u *TranscriptFileUpdateOne) AppendTranscriptSegments(v json.RawMessage) *TranscriptFileUpdateOne {
	_u.mutation.AppendTranscriptSegments(v)
	return _u
}

// ClearTranscriptSegments clears the value of the "transcript_segments" field.
func (_u *TranscriptFileUpdateOne) ClearTranscriptSegments() *TranscriptFileUpdateOne {
	_u.mutation.ClearTranscriptSegments()
	return _u
}

// SetLanguage sets the "language" field.
func (_u *TranscriptFileUpdateOne) SetLanguage(v string) *TranscriptFileUpdateOne {
	_u.mutation.SetLanguage(v)
	return _u
}

// SetNillableLanguage sets the "language" field if the given value is not nil.
func (_u *TranscriptFileUpdateOne) SetNillableLanguage(v *string) *TranscriptFileUpdateOne {
	if v != nil {
		_u.SetLanguage(*v)
	}
	return _u
}

// ClearLanguage clears the value of the "language" field.
func (_u *TranscriptFileUpdateOne) ClearLanguage() *TranscriptFileUpdateOne {
	_u.mutation.ClearLanguage()
	return _u
}

// SetDurationSeconds sets the "duration_seconds" field.
func (_u *TranscriptFileUpdateOne) SetDurationSeconds(v float64) *TranscriptFileUpdateOne {
	_u.mutation.ResetDurationSeconds()
	_u.mutation.SetDurationSeconds(v)
	return _u
}

// SetNillableDurationSeconds sets the "duration_seconds" field if the given value is not nil.
func (_u *TranscriptFileUpdateOne) SetNillableDurationSeconds(v *float64) *TranscriptFileUpdateOne {
	if v != nil {
		_u.SetDurationSeconds(*v)
	}
	return _u
}

// AddDurationSeconds adds value to the "duration_seconds" field.
func (_u *TranscriptFileUpdateOne) AddDurationSeconds(v float64) *TranscriptFileUpdateOne {
	_u.mutation.AddDurationSeconds(v)
	return _u
}

// ClearDurationSeconds clears the value of the "duration_seconds" field.
func (_u *TranscriptFileUpdateOne) ClearDurationSeconds() *TranscriptFileUpdateOne {
	_u.mutation.ClearDurationSeconds()
	return _u
}

// SetUploadedAt sets the "uploaded_at" field.
func (_u *TranscriptFileUpdateOne) SetUploadedAt(v time.Time) *TranscriptFileUpdateOne {
	_u.mutation.SetUploadedAt(v)
	return _u
}

// SetNillableUploadedAt sets the "uploaded_at" field if the given value is not nil.
func (_u *TranscriptFileUpdateOne) SetNillableUploadedAt(v *time.Time) *TranscriptFileUpdateOne {
	if v != nil {
		_u.SetUploadedAt(*v)
	}
	return _u
}

// AddSessionIDs adds the "sessions" edge to the ProcessingSession entity by IDs.
func (_u *TranscriptFileUpdateOne) AddSessionIDs(ids ...uuid.UUID) *TranscriptFileUpdateOne {
	_u.mutation.AddSessionIDs(ids...)
	return _u
}

// AddSessions adds the "sessions" edges to the ProcessingSession entity.
func (_u *TranscriptFileUpdateOne) AddSessions(v ...*ProcessingSession) *TranscriptFileUpdateOne {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddSessionIDs(ids...)
}

// AddResultIDs adds the "results" edge to the ExtractionResult entity by IDs.
func (_u *TranscriptFileUpdateOne) AddResultIDs(ids ...uuid.UUID) *TranscriptFileUpdateOne {
	_u.mutation.AddResultIDs(ids...)
	return _u
}

// AddResults adds the "results" edges to the ExtractionResult entity.
func (_u *TranscriptFileUpdateOne) AddResults(v ...*ExtractionResult) *TranscriptFileUpdateOne {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddResultIDs(ids...)
}

// AddSummarizationIDs adds the "summarizations" edge to the Summarization entity by IDs.
func (_u *TranscriptFileUpdateOne) AddSummarizationIDs(ids ...uuid.UUID) *TranscriptFileUpdateOne {
	_u.mutation.AddSummarizationIDs(ids...)
	return _u
}

// AddSummarizations adds the "summarizations" edges to the Summarization entity.
func (_u *TranscriptFileUpdateOne) AddSummarizations(v ...*Summarization) *TranscriptFileUpdateOne {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddSummarizationIDs(ids...)
}

// Mutation returns the TranscriptFileMutation object of the builder.
func (_u *TranscriptFileUpdateOne) Mutation() *TranscriptFileMutation {
	return _u.mutation
}

// ClearSessions clears all "sessions" edges to the ProcessingSession entity.
func (_u *TranscriptFileUpdateOne) ClearSessions() *TranscriptFileUpdateOne {
	_u.mutation.ClearSessions()
	return _u
}

// RemoveSessionIDs removes the "sessions" edge to ProcessingSession entities by IDs.
func (_u *TranscriptFileUpdateOne) RemoveSessionIDs(ids ...uuid.UUID) *TranscriptFileUpdateOne {
	_u.mutation.RemoveSessionIDs(ids...)
	return _u
}

// RemoveSessions removes "sessions" edges to ProcessingSession entities.
func (_u *TranscriptFileUpdateOne) RemoveSessions(v ...*ProcessingSession) *TranscriptFileUpdateOne {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveSessionIDs(ids...)
}

// ClearResults clears all "results" edges to the ExtractionResult entity.
func (_u *TranscriptFileUpdateOne) ClearResults() *TranscriptFileUpdateOne {
	_u.mutation.ClearResults()
	return _u
}

// RemoveResultIDs removes the "results" edge to ExtractionResult entities by IDs.
func (_u *TranscriptFileUpdateOne) RemoveResultIDs(ids ...uuid.UUID) *TranscriptFileUpdateOne {
	_u.mutation.RemoveResultIDs(ids...)
	return _u
}

// RemoveResults removes "results" edges to ExtractionResult entities.
func (_u *TranscriptFileUpdateOne) RemoveResults(v ...*ExtractionResult) *TranscriptFileUpdateOne {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveResultIDs(ids...)
}

// ClearSummarizations clears all "summarizations" edges to the Summarization entity.
func (_u *TranscriptFileUpdateOne) ClearSummarizations() *TranscriptFileUpdateOne {
	_u.mutation.ClearSummarizations()
	return _u
}

// RemoveSummarizationIDs removes the "summarizations" edge to Summarization entities by IDs.
func (_u *TranscriptFileUpdateOne) RemoveSummarizationIDs(ids ...uuid.UUID) *TranscriptFileUpdateOne {
	_u.mutation.RemoveSummarizationIDs(ids...)
	return _u
}

// RemoveSummarizations removes "summarizations" edges to Summarization entities.
func (_u *TranscriptFileUpdateOne) RemoveSummarizations(v ...*Summarization) *TranscriptFileUpdateOne {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveSummarizationIDs(ids...)
}

// Where appends a list predicates to the TranscriptFileUpdate builder.
func (_u *TranscriptFileUpdateOne) Where(ps ...predicate.TranscriptFile) *TranscriptFileUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *TranscriptFileUpdateOne) Select(field string, fields ...string) *TranscriptFileUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated TranscriptFile entity.
func (_u *TranscriptFileUpdateOne) Save(ctx context.Context) (*TranscriptFile, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *TranscriptFileUpdateOne) SaveX(ctx context.Context) *TranscriptFile {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *TranscriptFileUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *TranscriptFileUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *TranscriptFileUpdateOne) check() error {
	if v, ok := _u.mutation.Filename(); ok {
		if err := transcriptfile.FilenameValidator(v); err != nil {
			return &ValidationError{Name: "filename", err: fmt.Errorf(`ent: validator failed for field "TranscriptFile.filename": %w`, err)}
		}
	}
	if v, ok := _u.mutation.SourcePath(); ok {
		if err := transcriptfile.SourcePathValidator(v); err != nil {
			return &ValidationError{Name: "source_path", err: fmt.Errorf(`ent: validator failed for field "TranscriptFile.source_path": %w`, err)}
		}
	}
	return nil
}

func (_u *TranscriptFileUpdateOne) sqlSave(ctx context.Context) (_node *TranscriptFile, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(transcriptfile.Table, transcriptfile.Columns, sqlgraph.NewFieldSpec(transcriptfile.FieldID, field.TypeUUID))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "TranscriptFile.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, transcriptfile.FieldID)
		for _, f := range fields {
			if !transcriptfile.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != transcriptfile.FieldID {
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
	if value, ok := _u.mutation.Filename(); ok {
		_spec.SetField(transcriptfile.FieldFilename, field.TypeString, value)
	}
	if value, ok := _u.mutation.SourcePath(); ok {
		_spec.SetField(transcriptfile.FieldSourcePath, field.TypeString, value)
	}
	if value, ok := _u.mutation.TranscriptText(); ok {
		_spec.SetField(transcriptfile.FieldTranscriptText, field.TypeString, value)
	}
	if _u.mutation.TranscriptTextCleared() {
		_spec.ClearField(transcriptfile.FieldTranscriptText, field.TypeString)
	}
	if value, ok := _u.mutation.TranscriptSegments(); ok {
		_spec.SetField(transcriptfile.FieldTranscriptSegments, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedTranscriptSegments(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, transcriptfile.FieldTranscriptSegments, value)
		})
	}
	if _u.mutation.TranscriptSegmentsCleared() {
		_spec.ClearField(transcriptfile.FieldTranscriptSegments, field.TypeJSON)
	}
	if value, ok := _u.mutation.Language(); ok {
		_spec.SetField(transcriptfile.FieldLanguage, field.TypeString, value)
	}
	if _u.mutation.LanguageCleared() {
		_spec.ClearField(transcriptfile.FieldLanguage, field.TypeString)
	}
	if value, ok := _u.mutation.DurationSeconds(); ok {
		_spec.SetField(transcriptfile.FieldDurationSeconds, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedDurationSeconds(); ok {
		_spec.AddField(transcriptfile.FieldDurationSeconds, field.TypeFloat64, value)
	}
	if _u.mutation.DurationSecondsCleared() {
		_spec.ClearField(transcriptfile.FieldDurationSeconds, field.TypeFloat64)
	}
	if value, ok := _u.mutation.UploadedAt(); ok {
		_spec.SetField(transcriptfile.FieldUploadedAt, field.TypeTime, value)
	}
	if _u.mutation.SessionsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   transcriptfile.SessionsTable,
			Columns: []string{transcriptfile.SessionsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(processingsession.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedSessionsIDs(); len(nodes) > 0 && !_u.mutation.SessionsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   transcriptfile.SessionsTable,
			Columns: []string{transcriptfile.SessionsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(processingsession.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.SessionsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   transcriptfile.SessionsTable,
			Columns: []string{transcriptfile.SessionsColumn},
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
	if _u.mutation.ResultsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   transcriptfile.ResultsTable,
			Columns: []string{transcriptfile.ResultsColumn},
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
			Table:   transcriptfile.ResultsTable,
			Columns: []string{transcriptfile.ResultsColumn},
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
			Table:   transcriptfile.ResultsTable,
			Columns: []string{transcriptfile.ResultsColumn},
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
	if _u.mutation.SummarizationsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   transcriptfile.SummarizationsTable,
			Columns: []string{transcriptfile.SummarizationsColumn},
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
			Table:   transcriptfile.SummarizationsTable,
			Columns: []string{transcriptfile.SummarizationsColumn},
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
			Table:   transcriptfile.SummarizationsTable,
			Columns: []string{transcriptfile.SummarizationsColumn},
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
	_node = &TranscriptFile{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{transcriptfile.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
