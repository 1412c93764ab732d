// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/cortexops/playbookd/ent/playbookexecution"
	"github.com/cortexops/playbookd/ent/predicate"
)

// PlaybookExecutionDelete is the builder for deleting a PlaybookExecution entity.
type PlaybookExecutionDelete struct {
	config
	hooks    []Hook
	mutation *PlaybookExecutionMutation
}

// Where appends a list predicates to the PlaybookExecutionDelete builder.
func (_d *PlaybookExecutionDelete) Where(ps ...predicate.PlaybookExecution) *PlaybookExecutionDelete {
	_d.mutation.Where(ps...)
	return _d
}

// Exec executes the deletion query and returns how many vertices were deleted.
func (_d *PlaybookExecutionDelete) Exec(ctx context.Context) (int, error) {
	return withHooks(ctx, _d.sqlExec, _d.mutation, _d.hooks)
}

// ExecX is like Exec, but panics if an error occurs.
func (_d *PlaybookExecutionDelete) ExecX(ctx context.Context) int {
	n, err := _d.Exec(ctx)
	if err != nil {
		panic(err)
	}
	return n
}

func (_d *PlaybookExecutionDelete) sqlExec(ctx context.Context) (int, error) {
	_spec := sqlgraph.NewDeleteSpec(playbookexecution.Table, sqlgraph.NewFieldSpec(playbookexecution.FieldID, field.TypeString))
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

// PlaybookExecutionDeleteOne is the builder for deleting a single PlaybookExecution entity.
type PlaybookExecutionDeleteOne struct {
	_d *PlaybookExecutionDelete
}

// Where appends a list predicates to the PlaybookExecutionDelete builder.
func (_d *PlaybookExecutionDeleteOne) Where(ps ...predicate.PlaybookExecution) *PlaybookExecutionDeleteOne {
	_d._d.mutation.Where(ps...)
	return _d
}

// Exec executes the deletion query.
func (_d *PlaybookExecutionDeleteOne) Exec(ctx context.Context) error {
	n, err := _d._d.Exec(ctx)
	switch {
	case err != nil:
		return err
	case n == 0:
		return &NotFoundError{playbookexecution.Label}
	default:
		return nil
	}
}

// ExecX is like Exec, but panics if an error occurs.
func (_d *PlaybookExecutionDeleteOne) ExecX(ctx context.Context) {
	if err := _d.Exec(ctx); err != nil {
		panic(err)
	}
}
