// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/cortexops/playbookd/ent/predicate"
	"github.com/cortexops/playbookd/ent/runnerheartbeat"
)

// RunnerHeartbeatDelete is the builder for deleting a RunnerHeartbeat entity.
type RunnerHeartbeatDelete struct {
	config
	hooks    []Hook
	mutation *RunnerHeartbeatMutation
}

// Where appends a list predicates to the RunnerHeartbeatDelete builder.
func (_d *RunnerHeartbeatDelete) Where(ps ...predicate.RunnerHeartbeat) *RunnerHeartbeatDelete {
	_d.mutation.Where(ps...)
	return _d
}

// Exec executes the deletion query and returns how many vertices were deleted.
func (_d *RunnerHeartbeatDelete) Exec(ctx context.Context) (int, error) {
	return withHooks(ctx, _d.sqlExec, _d.mutation, _d.hooks)
}

// ExecX is like Exec, but panics if an error occurs.
func (_d *RunnerHeartbeatDelete) ExecX(ctx context.Context) int {
	n, err := _d.Exec(ctx)
	if err != nil {
		panic(err)
	}
	return n
}

func (_d *RunnerHeartbeatDelete) sqlExec(ctx context.Context) (int, error) {
	_spec := sqlgraph.NewDeleteSpec(runnerheartbeat.Table, sqlgraph.NewFieldSpec(runnerheartbeat.FieldID, field.TypeString))
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

// RunnerHeartbeatDeleteOne is the builder for deleting a single RunnerHeartbeat entity.
type RunnerHeartbeatDeleteOne struct {
	_d *RunnerHeartbeatDelete
}

// Where appends a list predicates to the RunnerHeartbeatDelete builder.
func (_d *RunnerHeartbeatDeleteOne) Where(ps ...predicate.RunnerHeartbeat) *RunnerHeartbeatDeleteOne {
	_d._d.mutation.Where(ps...)
	return _d
}

// Exec executes the deletion query.
func (_d *RunnerHeartbeatDeleteOne) Exec(ctx context.Context) error {
	n, err := _d._d.Exec(ctx)
	switch {
	case err != nil:
		return err
	case n == 0:
		return &NotFoundError{runnerheartbeat.Label}
	default:
		return nil
	}
}

// ExecX is like Exec, but panics if an error occurs.
func (_d *RunnerHeartbeatDeleteOne) ExecX(ctx context.Context) {
	if err := _d.Exec(ctx); err != nil {
		panic(err)
	}
}
