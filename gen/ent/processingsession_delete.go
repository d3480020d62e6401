// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/jide-alade/voicenotes-tracker/gen/ent/predicate"
	"github.com/jide-alade/voicenotes-tracker/gen/ent/processingsession"
)

// ProcessingSessionDelete is the builder for deleting a ProcessingSession entity.
type ProcessingSessionDelete struct {
	config
	hooks    []Hook
	mutation *ProcessingSessionMutation
}

// Where appends a list predicates to the ProcessingSessionDelete builder.
func (_d *ProcessingSessionDelete) Where(ps ...predicate.ProcessingSession) *ProcessingSessionDelete {
	_d.mutation.Where(ps...)
	return _d
}

// Exec executes the deletion query and returns how many vertices were deleted.
func (_d *ProcessingSessionDelete) Exec(ctx context.Context) (int, error) {
	return withHooks(ctx, _d.sqlExec, _d.mutation, _d.hooks)
}

// ExecX is like Exec, but panics if an error occurs.
func (_d *ProcessingSessionDelete) ExecX(ctx context.Context) int {
	n, err := _d.Exec(ctx)
	if err != nil {
		panic(err)
	}
	return n
}

func (_d *ProcessingSessionDelete) sqlExec(ctx context.Context) (int, error) {
	_spec := sqlgraph.NewDeleteSpec(processingsession.Table, sqlgraph.NewFieldSpec(processingsession.FieldID, field.TypeUUID))
	if ps := _d.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	affected, err := sqlgraph.DeleteNodes(ctx, _d.driver, _spec)
	if err != nil && sqlgraph.IsConstraintError(err) {
		err = &ConstraintError{msg: err.Error(), wrap: err}
	}
	_d.mutation.done = true
	return affected, err
}

// ProcessingSessionDeleteOne is the builder for deleting a single ProcessingSession entity.
type ProcessingSessionDeleteOne struct {
	_d *ProcessingSessionDelete
}

// Where appends a list predicates to the ProcessingSessionDelete builder.
func (_d *ProcessingSessionDeleteOne) Where(ps ...predicate.ProcessingSession) *ProcessingSessionDeleteOne {
	_d._d.mutation.Where(ps...)
	return _d
}

// Exec executes the deletion query.
func (_d *ProcessingSessionDeleteOne) Exec(ctx context.Context) error {
	n, err := _d._d.Exec(ctx)
	switch {
	case err != nil:
		return err
	case n == 0:
		return &NotFoundError{processingsession.Label}
	default:
		return nil
	}
}

// ExecX is like Exec, but panics if an error occurs.
func (_d *ProcessingSessionDeleteOne) ExecX(ctx context.Context) {
	if err := _d.Exec(ctx); err != nil {
		panic(err)
	}
}
