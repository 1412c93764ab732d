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
	"github.com/cortexops/playbookd/ent/suggestionpreference"
)

// SuggestionPreferenceCreate is the builder for creating a SuggestionPreference entity.
type SuggestionPreferenceCreate struct {
	config
	mutation *SuggestionPreferenceMutation
	hooks    []Hook
	conflict []sql.ConflictOption
}

// SetWorkspaceID sets the "workspace_id" field.
func (_c *SuggestionPreferenceCreate) SetWorkspaceID(v string) *SuggestionPreferenceCreate {
	_c.mutation.SetWorkspaceID(v)
	return _c
}

// SetUserID sets the "user_id" field.
func (_c *SuggestionPreferenceCreate) SetUserID(v string) *SuggestionPreferenceCreate {
	_c.mutation.SetUserID(v)
	return _c
}

// SetPackID sets the "pack_id" field.
func (_c *SuggestionPreferenceCreate) SetPackID(v string) *SuggestionPreferenceCreate {
	_c.mutation.SetPackID(v)
	return _c
}

// SetTaskType sets the "task_type" field.
func (_c *SuggestionPreferenceCreate) SetTaskType(v string) *SuggestionPreferenceCreate {
	_c.mutation.SetTaskType(v)
	return _c
}

// SetAutoSuggestEnabled sets the "auto_suggest_enabled" field.
func (_c *SuggestionPreferenceCreate) SetAutoSuggestEnabled(v bool) *SuggestionPreferenceCreate {
	_c.mutation.SetAutoSuggestEnabled(v)
	return _c
}

// SetNillableAutoSuggestEnabled sets the "auto_suggest_enabled" field if the given value is not nil.
func (_c *SuggestionPreferenceCreate) SetNillableAutoSuggestEnabled(v *bool) *SuggestionPreferenceCreate {
	if v != nil {
		_c.SetAutoSuggestEnabled(*v)
	}
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *SuggestionPreferenceCreate) SetUpdatedAt(v time.Time) *SuggestionPreferenceCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *SuggestionPreferenceCreate) SetNillableUpdatedAt(v *time.Time) *SuggestionPreferenceCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *SuggestionPreferenceCreate) SetID(v string) *SuggestionPreferenceCreate {
	_c.mutation.SetID(v)
	return _c
}

// Mutation returns the SuggestionPreferenceMutation object of the builder.
func (_c *SuggestionPreferenceCreate) Mutation() *SuggestionPreferenceMutation {
	return _c.mutation
}

// Save creates the SuggestionPreference in the database.
func (_c *SuggestionPreferenceCreate) Save(ctx context.Context) (*SuggestionPreference, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *SuggestionPreferenceCreate) SaveX(ctx context.Context) *SuggestionPreference {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *SuggestionPreferenceCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *SuggestionPreferenceCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *SuggestionPreferenceCreate) defaults() {
	if _, ok := _c.mutation.AutoSuggestEnabled(); !ok {
		v := suggestionpreference.DefaultAutoSuggestEnabled
		_c.mutation.SetAutoSuggestEnabled(v)
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		v := suggestionpreference.DefaultUpdatedAt()
		_c.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *SuggestionPreferenceCreate) check() error {
	if _, ok := _c.mutation.WorkspaceID(); !ok {
		return &ValidationError{Name: "workspace_id", err: errors.New(`ent: missing required field "SuggestionPreference.workspace_id"`)}
	}
	if _, ok := _c.mutation.UserID(); !ok {
		return &ValidationError{Name: "user_id", err: errors.New(`ent: missing required field "SuggestionPreference.user_id"`)}
	}
	if _, ok := _c.mutation.PackID(); !ok {
		return &ValidationError{Name: "pack_id", err: errors.New(`ent: missing required field "SuggestionPreference.pack_id"`)}
	}
	if _, ok := _c.mutation.TaskType(); !ok {
		return &ValidationError{Name: "task_type", err: errors.New(`ent: missing required field "SuggestionPreference.task_type"`)}
	}
	if _, ok := _c.mutation.AutoSuggestEnabled(); !ok {
		return &ValidationError{Name: "auto_suggest_enabled", err: errors.New(`ent: missing required field "SuggestionPreference.auto_suggest_enabled"`)}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`ent: missing required field "SuggestionPreference.updated_at"`)}
	}
	return nil
}

func (_c *SuggestionPreferenceCreate) sqlSave(ctx context.Context) (*SuggestionPreference, error) {
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
			return nil, fmt.Errorf("unexpected SuggestionPreference.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *SuggestionPreferenceCreate) createSpec() (*SuggestionPreference, *sqlgraph.CreateSpec) {
	var (
		_node = &SuggestionPreference{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(suggestionpreference.Table, sqlgraph.NewFieldSpec(suggestionpreference.FieldID, field.TypeString))
	)
	_spec.OnConflict = _c.conflict
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.WorkspaceID(); ok {
		_spec.SetField(suggestionpreference.FieldWorkspaceID, field.TypeString, value)
		_node.WorkspaceID = value
	}
	if value, ok := _c.mutation.UserID(); ok {
		_spec.SetField(suggestionpreference.FieldUserID, field.TypeString, value)
		_node.UserID = value
	}
	if value, ok := _c.mutation.PackID(); ok {
		_spec.SetField(suggestionpreference.FieldPackID, field.TypeString, value)
		_node.PackID = value
	}
	if value, ok := _c.mutation.TaskType(); ok {
		_spec.SetField(suggestionpreference.FieldTaskType, field.TypeString, value)
		_node.TaskType = value
	}
	if value, ok := _c.mutation.AutoSuggestEnabled(); ok {
		_spec.SetField(suggestionpreference.FieldAutoSuggestEnabled, field.TypeBool, value)
		_node.AutoSuggestEnabled = value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(suggestionpreference.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	return _node, _spec
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.SuggestionPreference.Create().
//		SetWorkspaceID(v).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.SuggestionPreferenceUpsert) {
//			SetWorkspaceID(v+v).
//		}).
//		Exec(ctx)
func (_c *SuggestionPreferenceCreate) OnConflict(opts ...sql.ConflictOption) *SuggestionPreferenceUpsertOne {
	_c.conflict = opts
	return &SuggestionPreferenceUpsertOne{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.SuggestionPreference.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *SuggestionPreferenceCreate) OnConflictColumns(columns ...string) *SuggestionPreferenceUpsertOne {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &SuggestionPreferenceUpsertOne{
		create: _c,
	}
}

type (
	// SuggestionPreferenceUpsertOne is the builder for "upsert"-ing
	//  one SuggestionPreference node.
	SuggestionPreferenceUpsertOne struct {
		create *SuggestionPreferenceCreate
	}

	// SuggestionPreferenceUpsert is the "OnConflict" setter.
	SuggestionPreferenceUpsert struct {
		*sql.UpdateSet
	}
)

// SetWorkspaceID sets the "workspace_id" field.
func (u *SuggestionPreferenceUpsert) SetWorkspaceID(v string) *SuggestionPreferenceUpsert {
	u.Set(suggestionpreference.FieldWorkspaceID, v)
	return u
}

// UpdateWorkspaceID sets the "workspace_id" field to the value that was provided on create.
func (u *SuggestionPreferenceUpsert) UpdateWorkspaceID() *SuggestionPreferenceUpsert {
	u.SetExcluded(suggestionpreference.FieldWorkspaceID)
	return u
}

// SetUserID sets the "user_id" field.
func (u *SuggestionPreferenceUpsert) SetUserID(v string) *SuggestionPreferenceUpsert {
	u.Set(suggestionpreference.FieldUserID, v)
	return u
}

// UpdateUserID sets the "user_id" field to the value that was provided on create.
func (u *SuggestionPreferenceUpsert) UpdateUserID() *SuggestionPreferenceUpsert {
	u.SetExcluded(suggestionpreference.FieldUserID)
	return u
}

// SetPackID sets the "pack_id" field.
func (u *SuggestionPreferenceUpsert) SetPackID(v string) *SuggestionPreferenceUpsert {
	u.Set(suggestionpreference.FieldPackID, v)
	return u
}

// UpdatePackID sets the "pack_id" field to the value that was provided on create.
func (u *SuggestionPreferenceUpsert) UpdatePackID() *SuggestionPreferenceUpsert {
	u.SetExcluded(suggestionpreference.FieldPackID)
	return u
}

// SetTaskType sets the "task_type" field.
func (u *SuggestionPreferenceUpsert) SetTaskType(v string) *SuggestionPreferenceUpsert {
	u.Set(suggestionpreference.FieldTaskType, v)
	return u
}

// UpdateTaskType sets the "task_type" field to the value that was provided on create.
func (u *SuggestionPreferenceUpsert) UpdateTaskType() *SuggestionPreferenceUpsert {
	u.SetExcluded(suggestionpreference.FieldTaskType)
	return u
}

// SetAutoSuggestEnabled sets the "auto_suggest_enabled" field.
func (u *SuggestionPreferenceUpsert) SetAutoSuggestEnabled(v bool) *SuggestionPreferenceUpsert {
	u.Set(suggestionpreference.FieldAutoSuggestEnabled, v)
	return u
}

// UpdateAutoSuggestEnabled sets the "auto_suggest_enabled" field to the value that was provided on create.
func (u *SuggestionPreferenceUpsert) UpdateAutoSuggestEnabled() *SuggestionPreferenceUpsert {
	u.SetExcluded(suggestionpreference.FieldAutoSuggestEnabled)
	return u
}

// SetUpdatedAt sets the "updated_at" field.
func (u *SuggestionPreferenceUpsert) SetUpdatedAt(v time.Time) *SuggestionPreferenceUpsert {
	u.Set(suggestionpreference.FieldUpdatedAt, v)
	return u
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *SuggestionPreferenceUpsert) UpdateUpdatedAt() *SuggestionPreferenceUpsert {
	u.SetExcluded(suggestionpreference.FieldUpdatedAt)
	return u
}

// UpdateNewValues updates the mutable fields using the new values that were set on create except the ID field.
// Using this option is equivalent to using:
//
//	client.SuggestionPreference.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(suggestionpreference.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *SuggestionPreferenceUpsertOne) UpdateNewValues() *SuggestionPreferenceUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		if _, exists := u.create.mutation.ID(); exists {
			s.SetIgnore(suggestionpreference.FieldID)
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.SuggestionPreference.Create().
//	    OnConflict(sql.ResolveWithIgnore()).
//	    Exec(ctx)
func (u *SuggestionPreferenceUpsertOne) Ignore() *SuggestionPreferenceUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *SuggestionPreferenceUpsertOne) DoNothing() *SuggestionPreferenceUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the SuggestionPreferenceCreate.OnConflict
// documentation for more info.
func (u *SuggestionPreferenceUpsertOne) Update(set func(*SuggestionPreferenceUpsert)) *SuggestionPreferenceUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&SuggestionPreferenceUpsert{UpdateSet: update})
	}))
	return u
}

// SetWorkspaceID sets the "workspace_id" field.
func (u *SuggestionPreferenceUpsertOne) SetWorkspaceID(v string) *SuggestionPreferenceUpsertOne {
	return u.Update(func(s *SuggestionPreferenceUpsert) {
		s.SetWorkspaceID(v)
	})
}

// UpdateWorkspaceID sets the "workspace_id" field to the value that was provided on create.
func (u *SuggestionPreferenceUpsertOne) UpdateWorkspaceID() *SuggestionPreferenceUpsertOne {
	return u.Update(func(s *SuggestionPreferenceUpsert) {
		s.UpdateWorkspaceID()
	})
}

// SetUserID sets the "user_id" field.
func (u *SuggestionPreferenceUpsertOne) SetUserID(v string) *SuggestionPreferenceUpsertOne {
	return u.Update(func(s *SuggestionPreferenceUpsert) {
		s.SetUserID(v)
	})
}

// UpdateUserID sets the "user_id" field to the value that was provided on create.
func (u *SuggestionPreferenceUpsertOne) UpdateUserID() *SuggestionPreferenceUpsertOne {
	return u.Update(func(s *SuggestionPreferenceUpsert) {
		s.UpdateUserID()
	})
}

// SetPackID sets the "pack_id" field.
func (u *SuggestionPreferenceUpsertOne) SetPackID(v string) *SuggestionPreferenceUpsertOne {
	return u.Update(func(s *SuggestionPreferenceUpsert) {
		s.SetPackID(v)
	})
}

// UpdatePackID sets the "pack_id" field to the value that was provided on create.
func (u *SuggestionPreferenceUpsertOne) UpdatePackID() *SuggestionPreferenceUpsertOne {
	return u.Update(func(s *SuggestionPreferenceUpsert) {
		s.UpdatePackID()
	})
}

// SetTaskType sets the "task_type" field.
func (u *SuggestionPreferenceUpsertOne) SetTaskType(v string) *SuggestionPreferenceUpsertOne {
	return u.Update(func(s *SuggestionPreferenceUpsert) {
		s.SetTaskType(v)
	})
}

// UpdateTaskType sets the "task_type" field to the value that was provided on create.
func (u *SuggestionPreferenceUpsertOne) UpdateTaskType() *SuggestionPreferenceUpsertOne {
	return u.Update(func(s *SuggestionPreferenceUpsert) {
		s.UpdateTaskType()
	})
}

// SetAutoSuggestEnabled sets the "auto_suggest_enabled" field.
func (u *SuggestionPreferenceUpsertOne) SetAutoSuggestEnabled(v bool) *SuggestionPreferenceUpsertOne {
	return u.Update(func(s *SuggestionPreferenceUpsert) {
		s.SetAutoSuggestEnabled(v)
	})
}

// UpdateAutoSuggestEnabled sets the "auto_suggest_enabled" field to the value that was provided on create.
func (u *SuggestionPreferenceUpsertOne) UpdateAutoSuggestEnabled() *SuggestionPreferenceUpsertOne {
	return u.Update(func(s *SuggestionPreferenceUpsert) {
		s.UpdateAutoSuggestEnabled()
	})
}

// SetUpdatedAt sets the "updated_at" field.
func (u *SuggestionPreferenceUpsertOne) SetUpdatedAt(v time.Time) *SuggestionPreferenceUpsertOne {
	return u.Update(func(s *SuggestionPreferenceUpsert) {
		s.SetUpdatedAt(v)
	})
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *SuggestionPreferenceUpsertOne) UpdateUpdatedAt() *SuggestionPreferenceUpsertOne {
	return u.Update(func(s *SuggestionPreferenceUpsert) {
		s.UpdateUpdatedAt()
	})
}

// Exec executes the query.
func (u *SuggestionPreferenceUpsertOne) Exec(ctx context.Context) error {
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for SuggestionPreferenceCreate.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *SuggestionPreferenceUpsertOne) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}

// Exec executes the UPSERT query and returns the inserted/updated ID.
func (u *SuggestionPreferenceUpsertOne) ID(ctx context.Context) (id string, err error) {
	if u.create.driver.Dialect() == dialect.MySQL {
		// In case of "ON CONFLICT", there is no way to get back non-numeric ID
		// fields from the database since MySQL does not support the RETURNING clause.
		return id, errors.New("ent: SuggestionPreferenceUpsertOne.ID is not supported by MySQL driver. Use SuggestionPreferenceUpsertOne.Exec instead")
	}
	node, err := u.create.Save(ctx)
	if err != nil {
		return id, err
	}
	return node.ID, nil
}

// IDX is like ID, but panics if an error occurs.
func (u *SuggestionPreferenceUpsertOne) IDX(ctx context.Context) string {
	id, err := u.ID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// SuggestionPreferenceCreateBulk is the builder for creating many SuggestionPreference entities in bulk.
type SuggestionPreferenceCreateBulk struct {
	config
	err      error
	builders []*SuggestionPreferenceCreate
	conflict []sql.ConflictOption
}

// Save creates the SuggestionPreference entities in the database.
func (_c *SuggestionPreferenceCreateBulk) Save(ctx context.Context) ([]*SuggestionPreference, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*SuggestionPreference, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*SuggestionPreferenceMutation)
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
func (_c *SuggestionPreferenceCreateBulk) SaveX(ctx context.Context) []*SuggestionPreference {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *SuggestionPreferenceCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *SuggestionPreferenceCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.SuggestionPreference.CreateBulk(builders...).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.SuggestionPreferenceUpsert) {
//			SetWorkspaceID(v+v).
//		}).
//		Exec(ctx)
func (_c *SuggestionPreferenceCreateBulk) OnConflict(opts ...sql.ConflictOption) *SuggestionPreferenceUpsertBulk {
	_c.conflict = opts
	return &SuggestionPreferenceUpsertBulk{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.SuggestionPreference.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *SuggestionPreferenceCreateBulk) OnConflictColumns(columns ...string) *SuggestionPreferenceUpsertBulk {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &SuggestionPreferenceUpsertBulk{
		create: _c,
	}
}

// SuggestionPreferenceUpsertBulk is the builder for "upsert"-ing
// a bulk of SuggestionPreference nodes.
type SuggestionPreferenceUpsertBulk struct {
	create *SuggestionPreferenceCreateBulk
}

// UpdateNewValues updates the mutable fields using the new values that
// were set on create. Using this option is equivalent to using:
//
//	client.SuggestionPreference.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(suggestionpreference.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *SuggestionPreferenceUpsertBulk) UpdateNewValues() *SuggestionPreferenceUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		for _, b := range u.create.builders {
			if _, exists := b.mutation.ID(); exists {
				s.SetIgnore(suggestionpreference.FieldID)
			}
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.SuggestionPreference.Create().
//		OnConflict(sql.ResolveWithIgnore()).
//		Exec(ctx)
func (u *SuggestionPreferenceUpsertBulk) Ignore() *SuggestionPreferenceUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *SuggestionPreferenceUpsertBulk) DoNothing() *SuggestionPreferenceUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the SuggestionPreferenceCreateBulk.OnConflict
// documentation for more info.
func (u *SuggestionPreferenceUpsertBulk) Update(set func(*SuggestionPreferenceUpsert)) *SuggestionPreferenceUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&SuggestionPreferenceUpsert{UpdateSet: update})
	}))
	return u
}

// SetWorkspaceID sets the "workspace_id" field.
func (u *SuggestionPreferenceUpsertBulk) SetWorkspaceID(v string) *SuggestionPreferenceUpsertBulk {
	return u.Update(func(s *SuggestionPreferenceUpsert) {
		s.SetWorkspaceID(v)
	})
}

// UpdateWorkspaceID sets the "workspace_id" field to the value that was provided on create.
func (u *SuggestionPreferenceUpsertBulk) UpdateWorkspaceID() *SuggestionPreferenceUpsertBulk {
	return u.Update(func(s *SuggestionPreferenceUpsert) {
		s.UpdateWorkspaceID()
	})
}

// SetUserID sets the "user_id" field.
func (u *SuggestionPreferenceUpsertBulk) SetUserID(v string) *SuggestionPreferenceUpsertBulk {
	return u.Update(func(s *SuggestionPreferenceUpsert) {
		s.SetUserID(v)
	})
}

// UpdateUserID sets the "user_id" field to the value that was provided on create.
func (u *SuggestionPreferenceUpsertBulk) UpdateUserID() *SuggestionPreferenceUpsertBulk {
	return u.Update(func(s *SuggestionPreferenceUpsert) {
		s.UpdateUserID()
	})
}

// SetPackID sets the "pack_id" field.
func (u *SuggestionPreferenceUpsertBulk) SetPackID(v string) *SuggestionPreferenceUpsertBulk {
	return u.Update(func(s *SuggestionPreferenceUpsert) {
		s.SetPackID(v)
	})
}

// UpdatePackID sets the "pack_id" field to the value that was provided on create.
func (u *SuggestionPreferenceUpsertBulk) UpdatePackID() *SuggestionPreferenceUpsertBulk {
	return u.Update(func(s *SuggestionPreferenceUpsert) {
		s.UpdatePackID()
	})
}

// SetTaskType sets the "task_type" field.
func (u *SuggestionPreferenceUpsertBulk) SetTaskType(v string) *SuggestionPreferenceUpsertBulk {
	return u.Update(func(s *SuggestionPreferenceUpsert) {
		s.SetTaskType(v)
	})
}

// UpdateTaskType sets the "task_type" field to the value that was provided on create.
func (u *SuggestionPreferenceUpsertBulk) UpdateTaskType() *SuggestionPreferenceUpsertBulk {
	return u.Update(func(s *SuggestionPreferenceUpsert) {
		s.UpdateTaskType()
	})
}

// SetAutoSuggestEnabled sets the "auto_suggest_enabled" field.
func (u *SuggestionPreferenceUpsertBulk) SetAutoSuggestEnabled(v bool) *SuggestionPreferenceUpsertBulk {
	return u.Update(func(s *SuggestionPreferenceUpsert) {
		s.SetAutoSuggestEnabled(v)
	})
}

// UpdateAutoSuggestEnabled sets the "auto_suggest_enabled" field to the value that was provided on create.
func (u *SuggestionPreferenceUpsertBulk) UpdateAutoSuggestEnabled() *SuggestionPreferenceUpsertBulk {
	return u.Update(func(s *SuggestionPreferenceUpsert) {
		s.UpdateAutoSuggestEnabled()
	})
}

// SetUpdatedAt sets the "updated_at" field.
func (u *SuggestionPreferenceUpsertBulk) SetUpdatedAt(v time.Time) *SuggestionPreferenceUpsertBulk {
	return u.Update(func(s *SuggestionPreferenceUpsert) {
		s.SetUpdatedAt(v)
	})
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *SuggestionPreferenceUpsertBulk) UpdateUpdatedAt() *SuggestionPreferenceUpsertBulk {
	return u.Update(func(s *SuggestionPreferenceUpsert) {
		s.UpdateUpdatedAt()
	})
}

// Exec executes the query.
func (u *SuggestionPreferenceUpsertBulk) Exec(ctx context.Context) error {
	if u.create.err != nil {
		return u.create.err
	}
	for i, b := range u.create.builders {
		if len(b.conflict) != 0 {
			return fmt.Errorf("ent: OnConflict was set for builder %d. Set it on the SuggestionPreferenceCreateBulk instead", i)
		}
	}
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for SuggestionPreferenceCreateBulk.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *SuggestionPreferenceUpsertBulk) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}
