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
	"github.com/cortexops/playbookd/ent/mindevent"
)

// MindEventCreate is the builder for creating a MindEvent entity.
type MindEventCreate struct {
	config
	mutation *MindEventMutation
	hooks    []Hook
	conflict []sql.ConflictOption
}

// SetWorkspaceID sets the "workspace_id" field.
func (_c *MindEventCreate) SetWorkspaceID(v string) *MindEventCreate {
	_c.mutation.SetWorkspaceID(v)
	return _c
}

// SetProfileID sets the "profile_id" field.
func (_c *MindEventCreate) SetProfileID(v string) *MindEventCreate {
	_c.mutation.SetProfileID(v)
	return _c
}

// SetNillableProfileID sets the "profile_id" field if the given value is not nil.
func (_c *MindEventCreate) SetNillableProfileID(v *string) *MindEventCreate {
	if v != nil {
		_c.SetProfileID(*v)
	}
	return _c
}

// SetThreadID sets the "thread_id" field.
func (_c *MindEventCreate) SetThreadID(v string) *MindEventCreate {
	_c.mutation.SetThreadID(v)
	return _c
}

// SetNillableThreadID sets the "thread_id" field if the given value is not nil.
func (_c *MindEventCreate) SetNillableThreadID(v *string) *MindEventCreate {
	if v != nil {
		_c.SetThreadID(*v)
	}
	return _c
}

// SetEntityIds sets the "entity_ids" field.
func (_c *MindEventCreate) SetEntityIds(v []string) *MindEventCreate {
	_c.mutation.SetEntityIds(v)
	return _c
}

// SetActor sets the "actor" field.
func (_c *MindEventCreate) SetActor(v mindevent.Actor) *MindEventCreate {
	_c.mutation.SetActor(v)
	return _c
}

// SetEventType sets the "event_type" field.
func (_c *MindEventCreate) SetEventType(v string) *MindEventCreate {
	_c.mutation.SetEventType(v)
	return _c
}

// SetPayload sets the "payload" field.
func (_c *MindEventCreate) SetPayload(v map[string]interface{}) *MindEventCreate {
	_c.mutation.SetPayload(v)
	return _c
}

// SetMetadata sets the "metadata" field.
func (_c *MindEventCreate) SetMetadata(v map[string]interface{}) *MindEventCreate {
	_c.mutation.SetMetadata(v)
	return _c
}

// SetTimestamp sets the "timestamp" field.
func (_c *MindEventCreate) SetTimestamp(v time.Time) *MindEventCreate {
	_c.mutation.SetTimestamp(v)
	return _c
}

// SetNillableTimestamp sets the "timestamp" field if the given value is not nil.
func (_c *MindEventCreate) SetNillableTimestamp(v *time.Time) *MindEventCreate {
	if v != nil {
		_c.SetTimestamp(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *MindEventCreate) SetID(v string) *MindEventCreate {
	_c.mutation.SetID(v)
	return _c
}

// Mutation returns the MindEventMutation object of the builder.
func (_c *MindEventCreate) Mutation() *MindEventMutation {
	return _c.mutation
}

// Save creates the MindEvent in the database.
func (_c *MindEventCreate) Save(ctx context.Context) (*MindEvent, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *MindEventCreate) SaveX(ctx context.Context) *MindEvent {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *MindEventCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *MindEventCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *MindEventCreate) defaults() {
	if _, ok := _c.mutation.Timestamp(); !ok {
		v := mindevent.DefaultTimestamp()
		_c.mutation.SetTimestamp(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *MindEventCreate) check() error {
	if _, ok := _c.mutation.WorkspaceID(); !ok {
		return &ValidationError{Name: "workspace_id", err: errors.New(`ent: missing required field "MindEvent.workspace_id"`)}
	}
	if _, ok := _c.mutation.Actor(); !ok {
		return &ValidationError{Name: "actor", err: errors.New(`ent: missing required field "MindEvent.actor"`)}
	}
	if v, ok := _c.mutation.Actor(); ok {
		if err := mindevent.ActorValidator(v); err != nil {
			return &ValidationError{Name: "actor", err: fmt.Errorf(`ent: validator failed for field "MindEvent.actor": %w`, err)}
		}
	}
	if _, ok := _c.mutation.EventType(); !ok {
		return &ValidationError{Name: "event_type", err: errors.New(`ent: missing required field "MindEvent.event_type"`)}
	}
	if _, ok := _c.mutation.Timestamp(); !ok {
		return &ValidationError{Name: "timestamp", err: errors.New(`ent: missing required field "MindEvent.timestamp"`)}
	}
	return nil
}

func (_c *MindEventCreate) sqlSave(ctx context.Context) (*MindEvent, error) {
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
			return nil, fmt.Errorf("unexpected MindEvent.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *MindEventCreate) createSpec() (*MindEvent, *sqlgraph.CreateSpec) {
	var (
		_node = &MindEvent{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(mindevent.Table, sqlgraph.NewFieldSpec(mindevent.FieldID, field.TypeString))
	)
	_spec.OnConflict = _c.conflict
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.WorkspaceID(); ok {
		_spec.SetField(mindevent.FieldWorkspaceID, field.TypeString, value)
		_node.WorkspaceID = value
	}
	if value, ok := _c.mutation.ProfileID(); ok {
		_spec.SetField(mindevent.FieldProfileID, field.TypeString, value)
		_node.ProfileID = &value
	}
	if value, ok := _c.mutation.ThreadID(); ok {
		_spec.SetField(mindevent.FieldThreadID, field.TypeString, value)
		_node.ThreadID = &value
	}
	if value, ok := _c.mutation.EntityIds(); ok {
		_spec.SetField(mindevent.FieldEntityIds, field.TypeJSON, value)
		_node.EntityIds = value
	}
	if value, ok := _c.mutation.Actor(); ok {
		_spec.SetField(mindevent.FieldActor, field.TypeEnum, value)
		_node.Actor = value
	}
	if value, ok := _c.mutation.EventType(); ok {
		_spec.SetField(mindevent.FieldEventType, field.TypeString, value)
		_node.EventType = value
	}
	if value, ok := _c.mutation.Payload(); ok {
		_spec.SetField(mindevent.FieldPayload, field.TypeJSON, value)
		_node.Payload = value
	}
	if value, ok := _c.mutation.Metadata(); ok {
		_spec.SetField(mindevent.FieldMetadata, field.TypeJSON, value)
		_node.Metadata = value
	}
	if value, ok := _c.mutation.Timestamp(); ok {
		_spec.SetField(mindevent.FieldTimestamp, field.TypeTime, value)
		_node.Timestamp = value
	}
	return _node, _spec
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.MindEvent.Create().
//		SetWorkspaceID(v).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.MindEventUpsert) {
//			SetWorkspaceID(v+v).
//		}).
//		Exec(ctx)
func (_c *MindEventCreate) OnConflict(opts ...sql.ConflictOption) *MindEventUpsertOne {
	_c.conflict = opts
	return &MindEventUpsertOne{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.MindEvent.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *MindEventCreate) OnConflictColumns(columns ...string) *MindEventUpsertOne {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &MindEventUpsertOne{
		create: _c,
	}
}

type (
	// MindEventUpsertOne is the builder for "upsert"-ing
	//  one MindEvent node.
	MindEventUpsertOne struct {
		create *MindEventCreate
	}

	// MindEventUpsert is the "OnConflict" setter.
	MindEventUpsert struct {
		*sql.UpdateSet
	}
)

// SetWorkspaceID sets the "workspace_id" field.
func (u *MindEventUpsert) SetWorkspaceID(v string) *MindEventUpsert {
	u.Set(mindevent.FieldWorkspaceID, v)
	return u
}

// UpdateWorkspaceID sets the "workspace_id" field to the value that was provided on create.
func (u *MindEventUpsert) UpdateWorkspaceID() *MindEventUpsert {
	u.SetExcluded(mindevent.FieldWorkspaceID)
	return u
}

// SetProfileID sets the "profile_id" field.
func (u *MindEventUpsert) SetProfileID(v string) *MindEventUpsert {
	u.Set(mindevent.FieldProfileID, v)
	return u
}

// UpdateProfileID sets the "profile_id" field to the value that was provided on create.
func (u *MindEventUpsert) UpdateProfileID() *MindEventUpsert {
	u.SetExcluded(mindevent.FieldProfileID)
	return u
}

// ClearProfileID clears the value of the "profile_id" field.
func (u *MindEventUpsert) ClearProfileID() *MindEventUpsert {
	u.SetNull(mindevent.FieldProfileID)
	return u
}

// SetThreadID sets the "thread_id" field.
func (u *MindEventUpsert) SetThreadID(v string) *MindEventUpsert {
	u.Set(mindevent.FieldThreadID, v)
	return u
}

// UpdateThreadID sets the "thread_id" field to the value that was provided on create.
func (u *MindEventUpsert) UpdateThreadID() *MindEventUpsert {
	u.SetExcluded(mindevent.FieldThreadID)
	return u
}

// ClearThreadID clears the value of the "thread_id" field.
func (u *MindEventUpsert) ClearThreadID() *MindEventUpsert {
	u.SetNull(mindevent.FieldThreadID)
	return u
}

// SetEntityIds sets the "entity_ids" field.
func (u *MindEventUpsert) SetEntityIds(v []string) *MindEventUpsert {
	u.Set(mindevent.FieldEntityIds, v)
	return u
}

// UpdateEntityIds sets the "entity_ids" field to the value that was provided on create.
func (u *MindEventUpsert) UpdateEntityIds() *MindEventUpsert {
	u.SetExcluded(mindevent.FieldEntityIds)
	return u
}

// ClearEntityIds clears the value of the "entity_ids" field.
func (u *MindEventUpsert) ClearEntityIds() *MindEventUpsert {
	u.SetNull(mindevent.FieldEntityIds)
	return u
}

// SetActor sets the "actor" field.
func (u *MindEventUpsert) SetActor(v mindevent.Actor) *MindEventUpsert {
	u.Set(mindevent.FieldActor, v)
	return u
}

// UpdateActor sets the "actor" field to the value that was provided on create.
func (u *MindEventUpsert) UpdateActor() *MindEventUpsert {
	u.SetExcluded(mindevent.FieldActor)
	return u
}

// SetEventType sets the "event_type" field.
func (u *MindEventUpsert) SetEventType(v string) *MindEventUpsert {
	u.Set(mindevent.FieldEventType, v)
	return u
}

// UpdateEventType sets the "event_type" field to the value that was provided on create.
func (u *MindEventUpsert) UpdateEventType() *MindEventUpsert {
	u.SetExcluded(mindevent.FieldEventType)
	return u
}

// SetPayload sets the "payload" field.
func (u *MindEventUpsert) SetPayload(v map[string]interface{}) *MindEventUpsert {
	u.Set(mindevent.FieldPayload, v)
	return u
}

// UpdatePayload sets the "payload" field to the value that was provided on create.
func (u *MindEventUpsert) UpdatePayload() *MindEventUpsert {
	u.SetExcluded(mindevent.FieldPayload)
	return u
}

// ClearPayload clears the value of the "payload" field.
func (u *MindEventUpsert) ClearPayload() *MindEventUpsert {
	u.SetNull(mindevent.FieldPayload)
	return u
}

// SetMetadata sets the "metadata" field.
func (u *MindEventUpsert) SetMetadata(v map[string]interface{}) *MindEventUpsert {
	u.Set(mindevent.FieldMetadata, v)
	return u
}

// UpdateMetadata sets the "metadata" field to the value that was provided on create.
func (u *MindEventUpsert) UpdateMetadata() *MindEventUpsert {
	u.SetExcluded(mindevent.FieldMetadata)
	return u
}

// ClearMetadata clears the value of the "metadata" field.
func (u *MindEventUpsert) ClearMetadata() *MindEventUpsert {
	u.SetNull(mindevent.FieldMetadata)
	return u
}

// SetTimestamp sets the "timestamp" field.
func (u *MindEventUpsert) SetTimestamp(v time.Time) *MindEventUpsert {
	u.Set(mindevent.FieldTimestamp, v)
	return u
}

// UpdateTimestamp sets the "timestamp" field to the value that was provided on create.
func (u *MindEventUpsert) UpdateTimestamp() *MindEventUpsert {
	u.SetExcluded(mindevent.FieldTimestamp)
	return u
}

// UpdateNewValues updates the mutable fields using the new values that were set on create except the ID field.
// Using this option is equivalent to using:
//
//	client.MindEvent.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(mindevent.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *MindEventUpsertOne) UpdateNewValues() *MindEventUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		if _, exists := u.create.mutation.ID(); exists {
			s.SetIgnore(mindevent.FieldID)
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.MindEvent.Create().
//	    OnConflict(sql.ResolveWithIgnore()).
//	    Exec(ctx)
func (u *MindEventUpsertOne) Ignore() *MindEventUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *MindEventUpsertOne) DoNothing() *MindEventUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the MindEventCreate.OnConflict
// documentation for more info.
func (u *MindEventUpsertOne) Update(set func(*MindEventUpsert)) *MindEventUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&MindEventUpsert{UpdateSet: update})
	}))
	return u
}

// SetWorkspaceID sets the "workspace_id" field.
func (u *MindEventUpsertOne) SetWorkspaceID(v string) *MindEventUpsertOne {
	return u.Update(func(s *MindEventUpsert) {
		s.SetWorkspaceID(v)
	})
}

// UpdateWorkspaceID sets the "workspace_id" field to the value that was provided on create.
func (u *MindEventUpsertOne) UpdateWorkspaceID() *MindEventUpsertOne {
	return u.Update(func(s *MindEventUpsert) {
		s.UpdateWorkspaceID()
	})
}

// SetProfileID sets the "profile_id" field.
func (u *MindEventUpsertOne) SetProfileID(v string) *MindEventUpsertOne {
	return u.Update(func(s *MindEventUpsert) {
		s.SetProfileID(v)
	})
}

// UpdateProfileID sets the "profile_id" field to the value that was provided on create.
func (u *MindEventUpsertOne) UpdateProfileID() *MindEventUpsertOne {
	return u.Update(func(s *MindEventUpsert) {
		s.UpdateProfileID()
	})
}

// ClearProfileID clears the value of the "profile_id" field.
func (u *MindEventUpsertOne) ClearProfileID() *MindEventUpsertOne {
	return u.Update(func(s *MindEventUpsert) {
		s.ClearProfileID()
	})
}

// SetThreadID sets the "thread_id" field.
func (u *MindEventUpsertOne) SetThreadID(v string) *MindEventUpsertOne {
	return u.Update(func(s *MindEventUpsert) {
		s.SetThreadID(v)
	})
}

// UpdateThreadID sets the "thread_id" field to the value that was provided on create.
func (u *MindEventUpsertOne) UpdateThreadID() *MindEventUpsertOne {
	return u.Update(func(s *MindEventUpsert) {
		s.UpdateThreadID()
	})
}

// ClearThreadID clears the value of the "thread_id" field.
func (u *MindEventUpsertOne) ClearThreadID() *MindEventUpsertOne {
	return u.Update(func(s *MindEventUpsert) {
		s.ClearThreadID()
	})
}

// SetEntityIds sets the "entity_ids" field.
func (u *MindEventUpsertOne) SetEntityIds(v []string) *MindEventUpsertOne {
	return u.Update(func(s *MindEventUpsert) {
		s.SetEntityIds(v)
	})
}

// UpdateEntityIds sets the "entity_ids" field to the value that was provided on create.
func (u *MindEventUpsertOne) UpdateEntityIds() *MindEventUpsertOne {
	return u.Update(func(s *MindEventUpsert) {
		s.UpdateEntityIds()
	})
}

// ClearEntityIds clears the value of the "entity_ids" field.
func (u *MindEventUpsertOne) ClearEntityIds() *MindEventUpsertOne {
	return u.Update(func(s *MindEventUpsert) {
		s.ClearEntityIds()
	})
}

// SetActor sets the "actor" field.
func (u *MindEventUpsertOne) SetActor(v mindevent.Actor) *MindEventUpsertOne {
	return u.Update(func(s *MindEventUpsert) {
		s.SetActor(v)
	})
}

// UpdateActor sets the "actor" field to the value that was provided on create.
func (u *MindEventUpsertOne) UpdateActor() *MindEventUpsertOne {
	return u.Update(func(s *MindEventUpsert) {
		s.UpdateActor()
	})
}

// SetEventType sets the "event_type" field.
func (u *MindEventUpsertOne) SetEventType(v string) *MindEventUpsertOne {
	return u.Update(func(s *MindEventUpsert) {
		s.SetEventType(v)
	})
}

// UpdateEventType sets the "event_type" field to the value that was provided on create.
func (u *MindEventUpsertOne) UpdateEventType() *MindEventUpsertOne {
	return u.Update(func(s *MindEventUpsert) {
		s.UpdateEventType()
	})
}

// SetPayload sets the "payload" field.
func (u *MindEventUpsertOne) SetPayload(v map[string]interface{}) *MindEventUpsertOne {
	return u.Update(func(s *MindEventUpsert) {
		s.SetPayload(v)
	})
}

// UpdatePayload sets the "payload" field to the value that was provided on create.
func (u *MindEventUpsertOne) UpdatePayload() *MindEventUpsertOne {
	return u.Update(func(s *MindEventUpsert) {
		s.UpdatePayload()
	})
}

// ClearPayload clears the value of the "payload" field.
func (u *MindEventUpsertOne) ClearPayload() *MindEventUpsertOne {
	return u.Update(func(s *MindEventUpsert) {
		s.ClearPayload()
	})
}

// SetMetadata sets the "metadata" field.
func (u *MindEventUpsertOne) SetMetadata(v map[string]interface{}) *MindEventUpsertOne {
	return u.Update(func(s *MindEventUpsert) {
		s.SetMetadata(v)
	})
}

// UpdateMetadata sets the "metadata" field to the value that was provided on create.
func (u *MindEventUpsertOne) UpdateMetadata() *MindEventUpsertOne {
	return u.Update(func(s *MindEventUpsert) {
		s.UpdateMetadata()
	})
}

// ClearMetadata clears the value of the "metadata" field.
func (u *MindEventUpsertOne) ClearMetadata() *MindEventUpsertOne {
	return u.Update(func(s *MindEventUpsert) {
		s.ClearMetadata()
	})
}

// SetTimestamp sets the "timestamp" field.
func (u *MindEventUpsertOne) SetTimestamp(v time.Time) *MindEventUpsertOne {
	return u.Update(func(s *MindEventUpsert) {
		s.SetTimestamp(v)
	})
}

// UpdateTimestamp sets the "timestamp" field to the value that was provided on create.
func (u *MindEventUpsertOne) UpdateTimestamp() *MindEventUpsertOne {
	return u.Update(func(s *MindEventUpsert) {
		s.UpdateTimestamp()
	})
}

// Exec executes the query.
func (u *MindEventUpsertOne) Exec(ctx context.Context) error {
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for MindEventCreate.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *MindEventUpsertOne) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}

// Exec executes the UPSERT query and returns the inserted/updated ID.
func (u *MindEventUpsertOne) ID(ctx context.Context) (id string, err error) {
	if u.create.driver.Dialect() == dialect.MySQL {
		// In case of "ON CONFLICT", there is no way to get back non-numeric ID
		// fields from the database since MySQL does not support the RETURNING clause.
		return id, errors.New("ent: MindEventUpsertOne.ID is not supported by MySQL driver. Use MindEventUpsertOne.Exec instead")
	}
	node, err := u.create.Save(ctx)
	if err != nil {
		return id, err
	}
	return node.ID, nil
}

// IDX is like ID, but panics if an error occurs.
func (u *MindEventUpsertOne) IDX(ctx context.Context) string {
	id, err := u.ID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// MindEventCreateBulk is the builder for creating many MindEvent entities in bulk.
type MindEventCreateBulk struct {
	config
	err      error
	builders []*MindEventCreate
	conflict []sql.ConflictOption
}

// Save creates the MindEvent entities in the database.
func (_c *MindEventCreateBulk) Save(ctx context.Context) ([]*MindEvent, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*MindEvent, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*MindEventMutation)
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
func (_c *MindEventCreateBulk) SaveX(ctx context.Context) []*MindEvent {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *MindEventCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *MindEventCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.MindEvent.CreateBulk(builders...).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.MindEventUpsert) {
//			SetWorkspaceID(v+v).
//		}).
//		Exec(ctx)
func (_c *MindEventCreateBulk) OnConflict(opts ...sql.ConflictOption) *MindEventUpsertBulk {
	_c.conflict = opts
	return &MindEventUpsertBulk{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.MindEvent.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *MindEventCreateBulk) OnConflictColumns(columns ...string) *MindEventUpsertBulk {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &MindEventUpsertBulk{
		create: _c,
	}
}

// MindEventUpsertBulk is the builder for "upsert"-ing
// a bulk of MindEvent nodes.
type MindEventUpsertBulk struct {
	create *MindEventCreateBulk
}

// UpdateNewValues updates the mutable fields using the new values that
// were set on create. Using this option is equivalent to using:
//
//	client.MindEvent.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(mindevent.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *MindEventUpsertBulk) UpdateNewValues() *MindEventUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		for _, b := range u.create.builders {
			if _, exists := b.mutation.ID(); exists {
				s.SetIgnore(mindevent.FieldID)
			}
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.MindEvent.Create().
//		OnConflict(sql.ResolveWithIgnore()).
//		Exec(ctx)
func (u *MindEventUpsertBulk) Ignore() *MindEventUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *MindEventUpsertBulk) DoNothing() *MindEventUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the MindEventCreateBulk.OnConflict
// documentation for more info.
func (u *MindEventUpsertBulk) Update(set func(*MindEventUpsert)) *MindEventUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&MindEventUpsert{UpdateSet: update})
	}))
	return u
}

// SetWorkspaceID sets the "workspace_id" field.
func (u *MindEventUpsertBulk) SetWorkspaceID(v string) *MindEventUpsertBulk {
	return u.Update(func(s *MindEventUpsert) {
		s.SetWorkspaceID(v)
	})
}

// UpdateWorkspaceID sets the "workspace_id" field to the value that was provided on create.
func (u *MindEventUpsertBulk) UpdateWorkspaceID() *MindEventUpsertBulk {
	return u.Update(func(s *MindEventUpsert) {
		s.UpdateWorkspaceID()
	})
}

// SetProfileID sets the "profile_id" field.
func (u *MindEventUpsertBulk) SetProfileID(v string) *MindEventUpsertBulk {
	return u.Update(func(s *MindEventUpsert) {
		s.SetProfileID(v)
	})
}

// UpdateProfileID sets the "profile_id" field to the value that was provided on create.
func (u *MindEventUpsertBulk) UpdateProfileID() *MindEventUpsertBulk {
	return u.Update(func(s *MindEventUpsert) {
		s.UpdateProfileID()
	})
}

// ClearProfileID clears the value of the "profile_id" field.
func (u *MindEventUpsertBulk) ClearProfileID() *MindEventUpsertBulk {
	return u.Update(func(s *MindEventUpsert) {
		s.ClearProfileID()
	})
}

// SetThreadID sets the "thread_id" field.
func (u *MindEventUpsertBulk) SetThreadID(v string) *MindEventUpsertBulk {
	return u.Update(func(s *MindEventUpsert) {
		s.SetThreadID(v)
	})
}

// UpdateThreadID sets the "thread_id" field to the value that was provided on create.
func (u *MindEventUpsertBulk) UpdateThreadID() *MindEventUpsertBulk {
	return u.Update(func(s *MindEventUpsert) {
		s.UpdateThreadID()
	})
}

// ClearThreadID clears the value of the "thread_id" field.
func (u *MindEventUpsertBulk) ClearThreadID() *MindEventUpsertBulk {
	return u.Update(func(s *MindEventUpsert) {
		s.ClearThreadID()
	})
}

// SetEntityIds sets the "entity_ids" field.
func (u *MindEventUpsertBulk) SetEntityIds(v []string) *MindEventUpsertBulk {
	return u.Update(func(s *MindEventUpsert) {
		s.SetEntityIds(v)
	})
}

// UpdateEntityIds sets the "entity_ids" field to the value that was provided on create.
func (u *MindEventUpsertBulk) UpdateEntityIds() *MindEventUpsertBulk {
	return u.Update(func(s *MindEventUpsert) {
		s.UpdateEntityIds()
	})
}

// ClearEntityIds clears the value of the "entity_ids" field.
func (u *MindEventUpsertBulk) ClearEntityIds() *MindEventUpsertBulk {
	return u.Update(func(s *MindEventUpsert) {
		s.ClearEntityIds()
	})
}

// SetActor sets the "actor" field.
func (u *MindEventUpsertBulk) SetActor(v mindevent.Actor) *MindEventUpsertBulk {
	return u.Update(func(s *MindEventUpsert) {
		s.SetActor(v)
	})
}

// UpdateActor sets the "actor" field to the value that was provided on create.
func (u *MindEventUpsertBulk) UpdateActor() *MindEventUpsertBulk {
	return u.Update(func(s *MindEventUpsert) {
		s.UpdateActor()
	})
}

// SetEventType sets the "event_type" field.
func (u *MindEventUpsertBulk) SetEventType(v string) *MindEventUpsertBulk {
	return u.Update(func(s *MindEventUpsert) {
		s.SetEventType(v)
	})
}

// UpdateEventType sets the "event_type" field to the value that was provided on create.
func (u *MindEventUpsertBulk) UpdateEventType() *MindEventUpsertBulk {
	return u.Update(func(s *MindEventUpsert) {
		s.UpdateEventType()
	})
}

// SetPayload sets the "payload" field.
func (u *MindEventUpsertBulk) SetPayload(v map[string]interface{}) *MindEventUpsertBulk {
	return u.Update(func(s *MindEventUpsert) {
		s.SetPayload(v)
	})
}

// UpdatePayload sets the "payload" field to the value that was provided on create.
func (u *MindEventUpsertBulk) UpdatePayload() *MindEventUpsertBulk {
	return u.Update(func(s *MindEventUpsert) {
		s.UpdatePayload()
	})
}

// ClearPayload clears the value of the "payload" field.
func (u *MindEventUpsertBulk) ClearPayload() *MindEventUpsertBulk {
	return u.Update(func(s *MindEventUpsert) {
		s.ClearPayload()
	})
}

// SetMetadata sets the "metadata" field.
func (u *MindEventUpsertBulk) SetMetadata(v map[string]interface{}) *MindEventUpsertBulk {
	return u.Update(func(s *MindEventUpsert) {
		s.SetMetadata(v)
	})
}

// UpdateMetadata sets the "metadata" field to the value that was provided on create.
func (u *MindEventUpsertBulk) UpdateMetadata() *MindEventUpsertBulk {
	return u.Update(func(s *MindEventUpsert) {
		s.UpdateMetadata()
	})
}

// ClearMetadata clears the value of the "metadata" field.
func (u *MindEventUpsertBulk) ClearMetadata() *MindEventUpsertBulk {
	return u.Update(func(s *MindEventUpsert) {
		s.ClearMetadata()
	})
}

// SetTimestamp sets the "timestamp" field.
func (u *MindEventUpsertBulk) SetTimestamp(v time.Time) *MindEventUpsertBulk {
	return u.Update(func(s *MindEventUpsert) {
		s.SetTimestamp(v)
	})
}

// UpdateTimestamp sets the "timestamp" field to the value that was provided on create.
func (u *MindEventUpsertBulk) UpdateTimestamp() *MindEventUpsertBulk {
	return u.Update(func(s *MindEventUpsert) {
		s.UpdateTimestamp()
	})
}

// Exec executes the query.
func (u *MindEventUpsertBulk) Exec(ctx context.Context) error {
	if u.create.err != nil {
		return u.create.err
	}
	for i, b := range u.create.builders {
		if len(b.conflict) != 0 {
			return fmt.Errorf("ent: OnConflict was set for builder %d. Set it on the MindEventCreateBulk instead", i)
		}
	}
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for MindEventCreateBulk.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *MindEventUpsertBulk) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}
