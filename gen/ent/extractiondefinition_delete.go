// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/jide-alade/voicenotes-tracker/gen/ent/extractiondefinition"
	"github.com/jide-alade/voicenotes-tracker/gen/ent/predicate"
)

// ExtractionDefinitionDelete is the builder for deleting a ExtractionDefinition entity.
type ExtractionDefinitionDelete struct {
	config
	hooks    []Hook
	mutation *ExtractionDefinitionMutation
}

// Where appends a list predicates to the ExtractionDefinitionDelete builder.
func (_d *ExtractionDefinitionDelete) Where(ps ...predicate.ExtractionDefinition) *ExtractionDefinitionDelete {
	_d.mutation.Where(ps...)
	return _d
}

// Exec executes the deletion query and returns how many vertices were deleted.
func (_d *ExtractionDefinitionDelete) Exec(ctx context.Context) (int, error) {
	return withHooks(ctx, _d.sqlExec, _d.mutation, _d.hooks)
}

// ExecX is like Exec, but panics if an error occurs.
func (_d *ExtractionDefinitionDelete) ExecX(ctx context.Context) int {
	n, err := _d.Exec(ctx)
	if err != nil {
		panic(err)
	}
	return n
}

func (_d *ExtractionDefinitionDelete) sqlExec(ctx context.Context) (int, error) {
	_spec := sqlgraph.NewDeleteSpec(extractiondefinition.Table, sqlgraph.NewFieldSpec(extractiondefinition.FieldID, field.TypeUUID))
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

// ExtractionDefinitionDeleteOne is the builder for deleting a single ExtractionDefinition entity.
type ExtractionDefinitionDeleteOne struct {
	_d *ExtractionDefinitionDelete
}

// Where appends a list predicates to the ExtractionDefinitionDelete builder.
func (_d *ExtractionDefinitionDeleteOne) Where(ps ...predicate.ExtractionDefinition) *ExtractionDefinitionDeleteOne {
	_d._d.mutation.Where(ps...)
	return _d
}

// Exec executes the deletion query.
func (_d *ExtractionDefinitionDeleteOne) Exec(ctx context.Context) error {
	n, err := _d._d.Exec(ctx)
	switch {
	case err != nil:
		return err
	case n == 0:
		return &NotFoundError{extractiondefinition.Label}
	default:
		return nil
	}
}

// ExecX is like Exec, but panics if an error occurs.
func (_d *ExtractionDefinitionDeleteOne) ExecX(ctx context.Context) {
	if err := _d.Exec(ctx); err != nil {
		panic(err)
	}
}
