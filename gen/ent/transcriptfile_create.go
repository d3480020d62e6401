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
	"github.com/jide-alade/voicenotes-tracker/gen/ent/extractionresult"
	"github.com/jide-alade/voicenotes-tracker/gen/ent/processingsession"
	"github.com/jide-alade/voicenotes-tracker/gen/ent/summarization"
	"github.com/jide-alade/voicenotes-tracker/gen/ent/transcriptfile"
)

// TranscriptFileCreate is the builder for creating a TranscriptFile entity.
type TranscriptFileCreate struct {
	config
	mutation *TranscriptFileMutation
	hooks    []Hook
}

// SetFilename sets the "filename" field.
func (_c *TranscriptFileCreate) SetFilename(v string) *TranscriptFileCreate {
	_c.mutation.SetFilename(v)
	return _c
}

// SetSourcePath sets the "source_path" field.
func (_c *TranscriptFileCreate) SetSourcePath(v string) *TranscriptFileCreate {
	_c.mutation.SetSourcePath(v)
	return _c
}

// SetTranscriptText sets the "transcript_text" field.
func (_c *TranscriptFileCreate) SetTranscriptText(v string) *TranscriptFileCreate {
	_c.mutation.SetTranscriptText(v)
	return _c
}

// SetNillableTranscriptText sets the "transcript_text" field if the given value is not nil.
func (_c *TranscriptFileCreate) SetNillableTranscriptText(v *string) *TranscriptFileCreate {
	if v != nil {
		_c.SetTranscriptText(*v)
	}
	return _c
}

// SetTranscriptSegments sets the "transcript_segments" field.
func (_c *TranscriptFileCreate) SetTranscriptSegments(v json.RawMessage) *TranscriptFileCreate {
	_c.mutation.SetTranscriptSegments(v)
	return _c
}

// SetLanguage sets the "language" field.
func (_c *TranscriptFileCreate) SetLanguage(v string) *TranscriptFileCreate {
	_c.mutation.SetLanguage(v)
	return _c
}

// SetNillableLanguage sets the "language" field if the given value is not nil.
func (_c *TranscriptFileCreate) SetNillableLanguage(v *string) *TranscriptFileCreate {
	if v != nil {
		_c.SetLanguage(*v)
	}
	return _c
}

// SetDurationSeconds sets the "duration_seconds" field.
func (_c *TranscriptFileCreate) SetDurationSeconds(v float64) *TranscriptFileCreate {
	_c.mutation.SetDurationSeconds(v)
	return _c
}

// SetNillableDurationSeconds sets the "duration_seconds" field if the given value is not nil.
func (_c *TranscriptFileCreate) SetNillableDurationSeconds(v *float64) *TranscriptFileCreate {
	if v != nil {
		_c.SetDurationSeconds(*v)
	}
	return _c
}

// SetUploadedAt sets the "uploaded_at" field.
func (_c *TranscriptFileCreate) SetUploadedAt(v time.Time) *TranscriptFileCreate {
	_c.mutation.SetUploadedAt(v)
	return _c
}

// SetNillableUploadedAt sets the "uploaded_at" field if the given value is not nil.
func (_c *TranscriptFileCreate) SetNillableUploadedAt(v *time.Time) *TranscriptFileCreate {
	if v != nil {
		_c.SetUploadedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *TranscriptFileCreate) SetID(v uuid.UUID) *TranscriptFileCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetNillableID sets the "id" field if the given value is not nil.
func (_c *TranscriptFileCreate) SetNillableID(v *uuid.UUID) *TranscriptFileCreate {
	if v != nil {
		_c.SetID(*v)
	}
	return _c
}

// AddSessionIDs adds the "sessions" edge to the ProcessingSession entity by IDs.
func (_c *TranscriptFileCreate) AddSessionIDs(ids ...uuid.UUID) *TranscriptFileCreate {
	_c.mutation.AddSessionIDs(ids...)
	return _c
}

// AddSessions adds the "sessions" edges to the ProcessingSession entity.
func (_c *TranscriptFileCreate) AddSessions(v ...*ProcessingSession) *TranscriptFileCreate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddSessionIDs(ids...)
}

// AddResultIDs adds the "results" edge to the ExtractionResult entity by IDs.
func (_c *TranscriptFileCreate) AddResultIDs(ids ...uuid.UUID) *TranscriptFileCreate {
	_c.mutation.AddResultIDs(ids...)
	return _c
}

// AddResults adds the "results" edges to the ExtractionResult entity.
func (_c *TranscriptFileCreate) AddResults(v ...*ExtractionResult) *TranscriptFileCreate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddResultIDs(ids...)
}

// AddSummarizationIDs adds the "summarizations" edge to the Summarization entity by IDs.
func (_c *TranscriptFileCreate) AddSummarizationIDs(ids ...uuid.UUID) *TranscriptFileCreate {
	_c.mutation.AddSummarizationIDs(ids...)
	return _c
}

// AddSummarizations adds the "summarizations" edges to the Summarization entity.
func (_c *TranscriptFileCreate) AddSummarizations(v ...*Summarization) *TranscriptFileCreate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddSummarizationIDs(ids...)
}

// Mutation returns the TranscriptFileMutation object of the builder.
func (_c *TranscriptFileCreate) Mutation() *TranscriptFileMutation {
	return _c.mutation
}

// Save creates the TranscriptFile in the database.
func (_c *TranscriptFileCreate) Save(ctx context.Context) (*TranscriptFile, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *TranscriptFileCreate) SaveX(ctx context.Context) *TranscriptFile {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *TranscriptFileCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *TranscriptFileCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *TranscriptFileCreate) defaults() {
	if _, ok := _c.mutation.UploadedAt(); !ok {
		v := transcriptfile.DefaultUploadedAt()
		_c.mutation.SetUploadedAt(v)
	}
	if _, ok := _c.mutation.ID(); !ok {
		v := transcriptfile.DefaultID()
		_c.mutation.SetID(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *TranscriptFileCreate) check() error {
	if _, ok := _c.mutation.Filename(); !ok {
		return &ValidationError{Name: "filename", err: errors.New(`ent: missing required field "TranscriptFile.filename"`)}
	}
	if v, ok := _c.mutation.Filename(); ok {
		if err := transcriptfile.FilenameValidator(v); err != nil {
			return &ValidationError{Name: "filename", err: fmt.Errorf(`ent: validator failed for field "TranscriptFile.filename": %w`, err)}
		}
	}
	if _, ok := _c.mutation.SourcePath(); !ok {
		return &ValidationError{Name: "source_path", err: errors.New(`ent: missing required field "TranscriptFile.source_path"`)}
	}
	if v, ok := _c.mutation.SourcePath(); ok {
		if err := transcriptfile.SourcePathValidator(v); err != nil {
			return &ValidationError{Name: "source_path", err: fmt.Errorf(`ent: validator failed for field "TranscriptFile.source_path": %w`, err)}
		}
	}
	if _, ok := _c.mutation.UploadedAt(); !ok {
		return &ValidationError{Name: "uploaded_at", err: errors.New(`ent: missing required field "TranscriptFile.uploaded_at"`)}
	}
	return nil
}

func (_c *TranscriptFileCreate) sqlSave(ctx context.Context) (*TranscriptFile, error) {
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

func (_c *TranscriptFileCreate) createSpec() (*TranscriptFile, *sqlgraph.CreateSpec) {
	var (
		_node = &TranscriptFile{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(transcriptfile.Table, sqlgraph.NewFieldSpec(transcriptfile.FieldID, field.TypeUUID))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = &id
	}
	if value, ok := _c.mutation.Filename(); ok {
		_spec.SetField(transcriptfile.FieldFilename, field.TypeString, value)
		_node.Filename = value
	}
	if value, ok := _c.mutation.SourcePath(); ok {
		_spec.SetField(transcriptfile.FieldSourcePath, field.TypeString, value)
		_node.SourcePath = value
	}
	if value, ok := _c.mutation.TranscriptText(); ok {
		_spec.SetField(transcriptfile.FieldTranscriptText, field.TypeString, value)
		_node.TranscriptText = &value
	}
	if value, ok := _c.mutation.TranscriptSegments(); ok {
		_spec.SetField(transcriptfile.FieldTranscriptSegments, field.TypeJSON, value)
		_node.TranscriptSegments = value
	}
	if value, ok := _c.mutation.Language(); ok {
		_spec.SetField(transcriptfile.FieldLanguage, field.TypeString, value)
		_node.Language = &value
	}
	if value, ok := _c.mutation.DurationSeconds(); ok {
		_spec.SetField(transcriptfile.FieldDurationSeconds, field.TypeFloat64, value)
		_node.DurationSeconds = &value
	}
	if value, ok := _c.mutation.UploadedAt(); ok {
		_spec.SetField(transcriptfile.FieldUploadedAt, field.TypeTime, value)
		_node.UploadedAt = value
	}
	if nodes := _c.mutation.SessionsIDs(); len(nodes) > 0 {
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
		_spec.Edges = append(_spec.Edges, edge)
	}
	if nodes := _c.mutation.ResultsIDs(); len(nodes) > 0 {
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
		_spec.Edges = append(_spec.Edges, edge)
	}
	if nodes := _c.mutation.SummarizationsIDs(); len(nodes) > 0 {
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
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// TranscriptFileCreateBulk is the builder for creating many TranscriptFile entities in bulk.
type TranscriptFileCreateBulk struct {
	config
	err      error
	builders []*TranscriptFileCreate
}

// Save creates the TranscriptFile entities in the database.
func (_c *TranscriptFileCreateBulk) Save(ctx context.Context) ([]*TranscriptFile, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*TranscriptFile, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*TranscriptFileMutation)
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
func (_c *TranscriptFileCreateBulk) SaveX(ctx context.Context) []*TranscriptFile {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *TranscriptFileCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *TranscriptFileCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
