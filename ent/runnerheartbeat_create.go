// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect"
	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/cortexops/playbookd/ent/runnerheartbeat"
)

// RunnerHeartbeatCreate is the builder for creating a RunnerHeartbeat entity.
type RunnerHeartbeatCreate struct {
	config
	mutation *RunnerHeartbeatMutation
	hooks    []Hook
	conflict []sql.ConflictOption
}

// SetHeartbeatAt sets the "heartbeat_at" field.
func (_c *RunnerHeartbeatCreate) SetHeartbeatAt(v time.Time) *RunnerHeartbeatCreate {
	_c.mutation.SetHeartbeatAt(v)
	return _c
}

// SetNillableHeartbeatAt sets the "heartbeat_at" field if the given value is not nil.
func (_c *RunnerHeartbeatCreate) SetNillableHeartbeatAt(v *time.Time) *RunnerHeartbeatCreate {
	if v != nil {
		_c.SetHeartbeatAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *RunnerHeartbeatCreate) SetID(v string) *RunnerHeartbeatCreate {
	_c.mutation.SetID(v)
	return _c
}

// Mutation returns the RunnerHeartbeatMutation object of the builder.
func (_c *RunnerHeartbeatCreate) Mutation() *RunnerHeartbeatMutation {
	return _c.mutation
}

// Save creates the RunnerHeartbeat in the database.
func (_c *RunnerHeartbeatCreate) Save(ctx context.Context) (*RunnerHeartbeat, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *RunnerHeartbeatCreate) SaveX(ctx context.Context) *RunnerHeartbeat {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *RunnerHeartbeatCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *RunnerHeartbeatCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *RunnerHeartbeatCreate) defaults() {
	if _, ok := _c.mutation.HeartbeatAt(); !ok {
		v := runnerheartbeat.DefaultHeartbeatAt()
		_c.mutation.SetHeartbeatAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *RunnerHeartbeatCreate) check() error {
	if _, ok := _c.mutation.HeartbeatAt(); !ok {
		return &ValidationError{Name: "heartbeat_at", err: errors.New(`ent: missing required field "RunnerHeartbeat.heartbeat_at"`)}
	}
	return nil
}

func (_c *RunnerHeartbeatCreate) sqlSave(ctx context.Context) (*RunnerHeartbeat, error) {
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
		if id, ok := _spec.ID.Value.(string); ok {
			_node.ID = id
		} else {
			return nil, fmt.Errorf("unexpected RunnerHeartbeat.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *RunnerHeartbeatCreate) createSpec() (*RunnerHeartbeat, *sqlgraph.CreateSpec) {
	var (
		_node = &RunnerHeartbeat{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(runnerheartbeat.Table, sqlgraph.NewFieldSpec(runnerheartbeat.FieldID, field.TypeString))
	)
	_spec.OnConflict = _c.conflict
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.HeartbeatAt(); ok {
		_spec.SetField(runnerheartbeat.FieldHeartbeatAt, field.TypeTime, value)
		_node.HeartbeatAt = value
	}
	return _node, _spec
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.RunnerHeartbeat.Create().
//		SetHeartbeatAt(v).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.RunnerHeartbeatUpsert) {
//			SetHeartbeatAt(v+v).
//		}).
//		Exec(ctx)
func (_c *RunnerHeartbeatCreate) OnConflict(opts ...sql.ConflictOption) *RunnerHeartbeatUpsertOne {
	_c.conflict = opts
	return &RunnerHeartbeatUpsertOne{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.RunnerHeartbeat.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *RunnerHeartbeatCreate) OnConflictColumns(columns ...string) *RunnerHeartbeatUpsertOne {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &RunnerHeartbeatUpsertOne{
		create: _c,
	}
}

type (
	// RunnerHeartbeatUpsertOne is the builder for "upsert"-ing
	//  one RunnerHeartbeat node.
	RunnerHeartbeatUpsertOne struct {
		create *RunnerHeartbeatCreate
	}

	// RunnerHeartbeatUpsert is the "OnConflict" setter.
	RunnerHeartbeatUpsert struct {
		*sql.UpdateSet
	}
)

// SetHeartbeatAt sets the "heartbeat_at" field.
func (u *RunnerHeartbeatUpsert) SetHeartbeatAt(v time.Time) *RunnerHeartbeatUpsert {
	u.Set(runnerheartbeat.FieldHeartbeatAt, v)
	return u
}

// UpdateHeartbeatAt sets the "heartbeat_at" field to the value that was provided on create.
func (u *RunnerHeartbeatUpsert) UpdateHeartbeatAt() *RunnerHeartbeatUpsert {
	u.SetExcluded(runnerheartbeat.FieldHeartbeatAt)
	return u
}

// UpdateNewValues updates the mutable fields using the new values that were set on create except the ID field.
// Using this option is equivalent to using:
//
//	client.RunnerHeartbeat.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(runnerheartbeat.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *RunnerHeartbeatUpsertOne) UpdateNewValues() *RunnerHeartbeatUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		if _, exists := u.create.mutation.ID(); exists {
			s.SetIgnore(runnerheartbeat.FieldID)
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.RunnerHeartbeat.Create().
//	    OnConflict(sql.ResolveWithIgnore()).
//	    Exec(ctx)
func (u *RunnerHeartbeatUpsertOne) Ignore() *RunnerHeartbeatUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *RunnerHeartbeatUpsertOne) DoNothing() *RunnerHeartbeatUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the RunnerHeartbeatCreate.OnConflict
// documentation for more info.
func (u *RunnerHeartbeatUpsertOne) Update(set func(*RunnerHeartbeatUpsert)) *RunnerHeartbeatUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&RunnerHeartbeatUpsert{UpdateSet: update})
	}))
	return u
}

// SetHeartbeatAt sets the "heartbeat_at" field.
func (u *RunnerHeartbeatUpsertOne) SetHeartbeatAt(v time.Time) *RunnerHeartbeatUpsertOne {
	return u.Update(func(s *RunnerHeartbeatUpsert) {
		s.SetHeartbeatAt(v)
	})
}

// UpdateHeartbeatAt sets the "heartbeat_at" field to the value that was provided on create.
func (u *RunnerHeartbeatUpsertOne) UpdateHeartbeatAt() *RunnerHeartbeatUpsertOne {
	return u.Update(func(s *RunnerHeartbeatUpsert) {
		s.UpdateHeartbeatAt()
	})
}

// Exec executes the query.
func (u *RunnerHeartbeatUpsertOne) Exec(ctx context.Context) error {
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for RunnerHeartbeatCreate.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *RunnerHeartbeatUpsertOne) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}

// Exec executes the UPSERT query and returns the inserted/updated ID.
func (u *RunnerHeartbeatUpsertOne) ID(ctx context.Context) (id string, err error) {
	if u.create.driver.Dialect() == dialect.MySQL {
		// In case of "ON CONFLICT", there is no way to get back non-numeric ID
		// fields from the database since MySQL does not support the RETURNING clause.
		return id, errors.New("ent: RunnerHeartbeatUpsertOne.ID is not supported by MySQL driver. Use RunnerHeartbeatUpsertOne.Exec instead")
	}
	node, err := u.create.Save(ctx)
	if err != nil {
		return id, err
	}
	return node.ID, nil
}

// IDX is like ID, but panics if an error occurs.
func (u *RunnerHeartbeatUpsertOne) IDX(ctx context.Context) string {
	id, err := u.ID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// RunnerHeartbeatCreateBulk is the builder for creating many RunnerHeartbeat entities in bulk.
type RunnerHeartbeatCreateBulk struct {
	config
	err      error
	builders []*RunnerHeartbeatCreate
	conflict []sql.ConflictOption
}

// Save creates the RunnerHeartbeat entities in the database.
func (_c *RunnerHeartbeatCreateBulk) Save(ctx context.Context) ([]*RunnerHeartbeat, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*RunnerHeartbeat, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*RunnerHeartbeatMutation)
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
					spec.OnConflict = _c.conflict
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
func (_c *RunnerHeartbeatCreateBulk) SaveX(ctx context.Context) []*RunnerHeartbeat {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *RunnerHeartbeatCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *RunnerHeartbeatCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.RunnerHeartbeat.CreateBulk(builders...).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.RunnerHeartbeatUpsert) {
//			SetHeartbeatAt(v+v).
//		}).
//		Exec(ctx)
func (_c *RunnerHeartbeatCreateBulk) OnConflict(opts ...sql.ConflictOption) *RunnerHeartbeatUpsertBulk {
	_c.conflict = opts
	return &RunnerHeartbeatUpsertBulk{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.RunnerHeartbeat.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *RunnerHeartbeatCreateBulk) OnConflictColumns(columns ...string) *RunnerHeartbeatUpsertBulk {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &RunnerHeartbeatUpsertBulk{
		create: _c,
	}
}

// RunnerHeartbeatUpsertBulk is the builder for "upsert"-ing
// a bulk of RunnerHeartbeat nodes.
type RunnerHeartbeatUpsertBulk struct {
	create *RunnerHeartbeatCreateBulk
}

// UpdateNewValues updates the mutable fields using the new values that
// were set on create. Using this option is equivalent to using:
//
//	client.RunnerHeartbeat.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(runnerheartbeat.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *RunnerHeartbeatUpsertBulk) UpdateNewValues() *RunnerHeartbeatUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		for _, b := range u.create.builders {
			if _, exists := b.mutation.ID(); exists {
				s.SetIgnore(runnerheartbeat.FieldID)
			}
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.RunnerHeartbeat.Create().
//		OnConflict(sql.ResolveWithIgnore()).
//		Exec(ctx)
func (u *RunnerHeartbeatUpsertBulk) Ignore() *RunnerHeartbeatUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *RunnerHeartbeatUpsertBulk) DoNothing() *RunnerHeartbeatUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the RunnerHeartbeatCreateBulk.OnConflict
// documentation for more info.
func (u *RunnerHeartbeatUpsertBulk) Update(set func(*RunnerHeartbeatUpsert)) *RunnerHeartbeatUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&RunnerHeartbeatUpsert{UpdateSet: update})
	}))
	return u
}

// SetHeartbeatAt sets the "heartbeat_at" field.
func (u *RunnerHeartbeatUpsertBulk) SetHeartbeatAt(v time.Time) *RunnerHeartbeatUpsertBulk {
	return u.Update(func(s *RunnerHeartbeatUpsert) {
		s.SetHeartbeatAt(v)
	})
}

// UpdateHeartbeatAt sets the "heartbeat_at" field to the value that was provided on create.
func (u *RunnerHeartbeatUpsertBulk) UpdateHeartbeatAt() *RunnerHeartbeatUpsertBulk {
	return u.Update(func(s *RunnerHeartbeatUpsert) {
		s.UpdateHeartbeatAt()
	})
}

// Exec executes the query.
func (u *RunnerHeartbeatUpsertBulk) Exec(ctx context.Context) error {
	if u.create.err != nil {
		return u.create.err
	}
	for i, b := range u.create.builders {
		if len(b.conflict) != 0 {
			return fmt.Errorf("ent: OnConflict was set for builder %d. Set it on the RunnerHeartbeatCreateBulk instead", i)
		}
	}
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for RunnerHeartbeatCreateBulk.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *RunnerHeartbeatUpsertBulk) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}
