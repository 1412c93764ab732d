// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/cortexops/playbookd/ent/predicate"
	"github.com/cortexops/playbookd/ent/runnerheartbeat"
)

// RunnerHeartbeatUpdate is the builder for updating RunnerHeartbeat entities.
type RunnerHeartbeatUpdate struct {
	config
	hooks    []Hook
	mutation *RunnerHeartbeatMutation
}

// Where appends a list predicates to the RunnerHeartbeatUpdate builder.
func (_u *RunnerHeartbeatUpdate) Where(ps ...predicate.RunnerHeartbeat) *RunnerHeartbeatUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetHeartbeatAt sets the "heartbeat_at" field.
func (_u *RunnerHeartbeatUpdate) SetHeartbeatAt(v time.Time) *RunnerHeartbeatUpdate {
	_u.mutation.SetHeartbeatAt(v)
	return _u
}

// SetNillableHeartbeatAt sets the "heartbeat_at" field if the given value is not nil.
func (_u *RunnerHeartbeatUpdate) SetNillableHeartbeatAt(v *time.Time) *RunnerHeartbeatUpdate {
	if v != nil {
		_u.SetHeartbeatAt(*v)
	}
	return _u
}

// Mutation returns the RunnerHeartbeatMutation object of the builder.
func (_u *RunnerHeartbeatUpdate) Mutation() *RunnerHeartbeatMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *RunnerHeartbeatUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *RunnerHeartbeatUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *RunnerHeartbeatUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *RunnerHeartbeatUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

func (_u *RunnerHeartbeatUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	_spec := sqlgraph.NewUpdateSpec(runnerheartbeat.Table, runnerheartbeat.Columns, sqlgraph.NewFieldSpec(runnerheartbeat.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.HeartbeatAt(); ok {
		_spec.SetField(runnerheartbeat.FieldHeartbeatAt, field.TypeTime, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{runnerheartbeat.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// RunnerHeartbeatUpdateOne is the builder for updating a single RunnerHeartbeat entity.
type RunnerHeartbeatUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *RunnerHeartbeatMutation
}

// SetHeartbeatAt sets the "heartbeat_at" field.
func (_u *RunnerHeartbeatUpdateOne) SetHeartbeatAt(v time.Time) *RunnerHeartbeatUpdateOne {
	_u.mutation.SetHeartbeatAt(v)
	return _u
}

// SetNillableHeartbeatAt sets the "heartbeat_at" field if the given value is not nil.
func (_u *RunnerHeartbeatUpdateOne) SetNillableHeartbeatAt(v *time.Time) *RunnerHeartbeatUpdateOne {
	if v != nil {
		_u.SetHeartbeatAt(*v)
	}
	return _u
}

// Mutation returns the RunnerHeartbeatMutation object of the builder.
func (_u *RunnerHeartbeatUpdateOne) Mutation() *RunnerHeartbeatMutation {
	return _u.mutation
}

// Where appends a list predicates to the RunnerHeartbeatUpdate builder.
func (_u *RunnerHeartbeatUpdateOne) Where(ps ...predicate.RunnerHeartbeat) *RunnerHeartbeatUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *RunnerHeartbeatUpdateOne) Select(field string, fields ...string) *RunnerHeartbeatUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated RunnerHeartbeat entity.
func (_u *RunnerHeartbeatUpdateOne) Save(ctx context.Context) (*RunnerHeartbeat, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *RunnerHeartbeatUpdateOne) SaveX(ctx context.Context) *RunnerHeartbeat {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *RunnerHeartbeatUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *RunnerHeartbeatUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

func (_u *RunnerHeartbeatUpdateOne) sqlSave(ctx context.Context) (_node *RunnerHeartbeat, err error) {
	_spec := sqlgraph.NewUpdateSpec(runnerheartbeat.Table, runnerheartbeat.Columns, sqlgraph.NewFieldSpec(runnerheartbeat.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "RunnerHeartbeat.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, runnerheartbeat.FieldID)
		for _, f := range fields {
			if !runnerheartbeat.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != runnerheartbeat.FieldID {
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
	if value, ok := _u.mutation.HeartbeatAt(); ok {
		_spec.SetField(runnerheartbeat.FieldHeartbeatAt, field.TypeTime, value)
	}
	_node = &RunnerHeartbeat{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{runnerheartbeat.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
