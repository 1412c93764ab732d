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
	"github.com/cortexops/playbookd/ent/workspace"
)

// WorkspaceCreate is the builder for creating a Workspace entity.
type WorkspaceCreate struct {
	config
	mutation *WorkspaceMutation
	hooks    []Hook
	conflict []sql.ConflictOption
}

// SetOwnerID sets the "owner_id" field.
func (_c *WorkspaceCreate) SetOwnerID(v string) *WorkspaceCreate {
	_c.mutation.SetOwnerID(v)
	return _c
}

// SetDefaultLocale sets the "default_locale" field.
func (_c *WorkspaceCreate) SetDefaultLocale(v string) *WorkspaceCreate {
	_c.mutation.SetDefaultLocale(v)
	return _c
}

// SetNillableDefaultLocale sets the "default_locale" field if the given value is not nil.
func (_c *WorkspaceCreate) SetNillableDefaultLocale(v *string) *WorkspaceCreate {
	if v != nil {
		_c.SetDefaultLocale(*v)
	}
	return _c
}

// SetStorageRoot sets the "storage_root" field.
func (_c *WorkspaceCreate) SetStorageRoot(v string) *WorkspaceCreate {
	_c.mutation.SetStorageRoot(v)
	return _c
}

// SetNillableStorageRoot sets the "storage_root" field if the given value is not nil.
func (_c *WorkspaceCreate) SetNillableStorageRoot(v *string) *WorkspaceCreate {
	if v != nil {
		_c.SetStorageRoot(*v)
	}
	return _c
}

// SetAutoExecutionConfig sets the "auto_execution_config" field.
func (_c *WorkspaceCreate) SetAutoExecutionConfig(v map[string]interface{}) *WorkspaceCreate {
	_c.mutation.SetAutoExecutionConfig(v)
	return _c
}

// SetMode sets the "mode" field.
func (_c *WorkspaceCreate) SetMode(v workspace.Mode) *WorkspaceCreate {
	_c.mutation.SetMode(v)
	return _c
}

// SetNillableMode sets the "mode" field if the given value is not nil.
func (_c *WorkspaceCreate) SetNillableMode(v *workspace.Mode) *WorkspaceCreate {
	if v != nil {
		_c.SetMode(*v)
	}
	return _c
}

// SetPriority sets the "priority" field.
func (_c *WorkspaceCreate) SetPriority(v workspace.Priority) *WorkspaceCreate {
	_c.mutation.SetPriority(v)
	return _c
}

// SetNillablePriority sets the "priority" field if the given value is not nil.
func (_c *WorkspaceCreate) SetNillablePriority(v *workspace.Priority) *WorkspaceCreate {
	if v != nil {
		_c.SetPriority(*v)
	}
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *WorkspaceCreate) SetCreatedAt(v time.Time) *WorkspaceCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *WorkspaceCreate) SetNillableCreatedAt(v *time.Time) *WorkspaceCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *WorkspaceCreate) SetID(v string) *WorkspaceCreate {
	_c.mutation.SetID(v)
	return _c
}

// Mutation returns the WorkspaceMutation object of the builder.
func (_c *WorkspaceCreate) Mutation() *WorkspaceMutation {
	return _c.mutation
}

// Save creates the Workspace in the database.
func (_c *WorkspaceCreate) Save(ctx context.Context) (*Workspace, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *WorkspaceCreate) SaveX(ctx context.Context) *Workspace {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *WorkspaceCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *WorkspaceCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *WorkspaceCreate) defaults() {
	if _, ok := _c.mutation.DefaultLocale(); !ok {
		v := workspace.DefaultDefaultLocale
		_c.mutation.SetDefaultLocale(v)
	}
	if _, ok := _c.mutation.Mode(); !ok {
		v := workspace.DefaultMode
		_c.mutation.SetMode(v)
	}
	if _, ok := _c.mutation.Priority(); !ok {
		v := workspace.DefaultPriority
		_c.mutation.SetPriority(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := workspace.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *WorkspaceCreate) check() error {
	if _, ok := _c.mutation.OwnerID(); !ok {
		return &ValidationError{Name: "owner_id", err: errors.New(`ent: missing required field "Workspace.owner_id"`)}
	}
	if _, ok := _c.mutation.DefaultLocale(); !ok {
		return &ValidationError{Name: "default_locale", err: errors.New(`ent: missing required field "Workspace.default_locale"`)}
	}
	if _, ok := _c.mutation.Mode(); !ok {
		return &ValidationError{Name: "mode", err: errors.New(`ent: missing required field "Workspace.mode"`)}
	}
	if v, ok := _c.mutation.Mode(); ok {
		if err := workspace.ModeValidator(v); err != nil {
			return &ValidationError{Name: "mode", err: fmt.Errorf(`ent: validator failed for field "Workspace.mode": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Priority(); !ok {
		return &ValidationError{Name: "priority", err: errors.New(`ent: missing required field "Workspace.priority"`)}
	}
	if v, ok := _c.mutation.Priority(); ok {
		if err := workspace.PriorityValidator(v); err != nil {
			return &ValidationError{Name: "priority", err: fmt.Errorf(`ent: validator failed for field "Workspace.priority": %w`, err)}
		}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "Workspace.created_at"`)}
	}
	return nil
}

func (_c *WorkspaceCreate) sqlSave(ctx context.Context) (*Workspace, error) {
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
			return nil, fmt.Errorf("unexpected Workspace.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *WorkspaceCreate) createSpec() (*Workspace, *sqlgraph.CreateSpec) {
	var (
		_node = &Workspace{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(workspace.Table, sqlgraph.NewFieldSpec(workspace.FieldID, field.TypeString))
	)
	_spec.OnConflict = _c.conflict
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.OwnerID(); ok {
		_spec.SetField(workspace.FieldOwnerID, field.TypeString, value)
		_node.OwnerID = value
	}
	if value, ok := _c.mutation.DefaultLocale(); ok {
		_spec.SetField(workspace.FieldDefaultLocale, field.TypeString, value)
		_node.DefaultLocale = value
	}
	if value, ok := _c.mutation.StorageRoot(); ok {
		_spec.SetField(workspace.FieldStorageRoot, field.TypeString, value)
		_node.StorageRoot = value
	}
	if value, ok := _c.mutation.AutoExecutionConfig(); ok {
		_spec.SetField(workspace.FieldAutoExecutionConfig, field.TypeJSON, value)
		_node.AutoExecutionConfig = value
	}
	if value, ok := _c.mutation.Mode(); ok {
		_spec.SetField(workspace.FieldMode, field.TypeEnum, value)
		_node.Mode = value
	}
	if value, ok := _c.mutation.Priority(); ok {
		_spec.SetField(workspace.FieldPriority, field.TypeEnum, value)
		_node.Priority = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(workspace.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	return _node, _spec
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.Workspace.Create().
//		SetOwnerID(v).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.WorkspaceUpsert) {
//			SetOwnerID(v+v).
//		}).
//		Exec(ctx)
func (_c *WorkspaceCreate) OnConflict(opts ...sql.ConflictOption) *WorkspaceUpsertOne {
	_c.conflict = opts
	return &WorkspaceUpsertOne{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.Workspace.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *WorkspaceCreate) OnConflictColumns(columns ...string) *WorkspaceUpsertOne {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &WorkspaceUpsertOne{
		create: _c,
	}
}

type (
	// WorkspaceUpsertOne is the builder for "upsert"-ing
	//  one Workspace node.
	WorkspaceUpsertOne struct {
		create *WorkspaceCreate
	}

	// WorkspaceUpsert is the "OnConflict" setter.
	WorkspaceUpsert struct {
		*sql.UpdateSet
	}
)

// SetOwnerID sets the "owner_id" field.
func (u *WorkspaceUpsert) SetOwnerID(v string) *WorkspaceUpsert {
	u.Set(workspace.FieldOwnerID, v)
	return u
}

// UpdateOwnerID sets the "owner_id" field to the value that was provided on create.
func (u *WorkspaceUpsert) UpdateOwnerID() *WorkspaceUpsert {
	u.SetExcluded(workspace.FieldOwnerID)
	return u
}

// SetDefaultLocale sets the "default_locale" field.
func (u *WorkspaceUpsert) SetDefaultLocale(v string) *WorkspaceUpsert {
	u.Set(workspace.FieldDefaultLocale, v)
	return u
}

// UpdateDefaultLocale sets the "default_locale" field to the value that was provided on create.
func (u *WorkspaceUpsert) UpdateDefaultLocale() *WorkspaceUpsert {
	u.SetExcluded(workspace.FieldDefaultLocale)
	return u
}

// SetStorageRoot sets the "storage_root" field.
func (u *WorkspaceUpsert) SetStorageRoot(v string) *WorkspaceUpsert {
	u.Set(workspace.FieldStorageRoot, v)
	return u
}

// UpdateStorageRoot sets the "storage_root" field to the value that was provided on create.
func (u *WorkspaceUpsert) UpdateStorageRoot() *WorkspaceUpsert {
	u.SetExcluded(workspace.FieldStorageRoot)
	return u
}

// ClearStorageRoot clears the value of the "storage_root" field.
func (u *WorkspaceUpsert) ClearStorageRoot() *WorkspaceUpsert {
	u.SetNull(workspace.FieldStorageRoot)
	return u
}

// SetAutoExecutionConfig sets the "auto_execution_config" field.
func (u *WorkspaceUpsert) SetAutoExecutionConfig(v map[string]interface{}) *WorkspaceUpsert {
	u.Set(workspace.FieldAutoExecutionConfig, v)
	return u
}

// UpdateAutoExecutionConfig sets the "auto_execution_config" field to the value that was provided on create.
func (u *WorkspaceUpsert) UpdateAutoExecutionConfig() *WorkspaceUpsert {
	u.SetExcluded(workspace.FieldAutoExecutionConfig)
	return u
}

// ClearAutoExecutionConfig clears the value of the "auto_execution_config" field.
func (u *WorkspaceUpsert) ClearAutoExecutionConfig() *WorkspaceUpsert {
	u.SetNull(workspace.FieldAutoExecutionConfig)
	return u
}

// SetMode sets the "mode" field.
func (u *WorkspaceUpsert) SetMode(v workspace.Mode) *WorkspaceUpsert {
	u.Set(workspace.FieldMode, v)
	return u
}

// UpdateMode sets the "mode" field to the value that was provided on create.
func (u *WorkspaceUpsert) UpdateMode() *WorkspaceUpsert {
	u.SetExcluded(workspace.FieldMode)
	return u
}

// SetPriority sets the "priority" field.
func (u *WorkspaceUpsert) SetPriority(v workspace.Priority) *WorkspaceUpsert {
	u.Set(workspace.FieldPriority, v)
	return u
}

// UpdatePriority sets the "priority" field to the value that was provided on create.
func (u *WorkspaceUpsert) UpdatePriority() *WorkspaceUpsert {
	u.SetExcluded(workspace.FieldPriority)
	return u
}

// UpdateNewValues updates the mutable fields using the new values that were set on create except the ID field.
// Using this option is equivalent to using:
//
//	client.Workspace.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(workspace.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *WorkspaceUpsertOne) UpdateNewValues() *WorkspaceUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		if _, exists := u.create.mutation.ID(); exists {
			s.SetIgnore(workspace.FieldID)
		}
		if _, exists := u.create.mutation.CreatedAt(); exists {
			s.SetIgnore(workspace.FieldCreatedAt)
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.Workspace.Create().
//	    OnConflict(sql.ResolveWithIgnore()).
//	    Exec(ctx)
func (u *WorkspaceUpsertOne) Ignore() *WorkspaceUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *WorkspaceUpsertOne) DoNothing() *WorkspaceUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the WorkspaceCreate.OnConflict
// documentation for more info.
func (u *WorkspaceUpsertOne) Update(set func(*WorkspaceUpsert)) *WorkspaceUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&WorkspaceUpsert{UpdateSet: update})
	}))
	return u
}

// SetOwnerID sets the "owner_id" field.
func (u *WorkspaceUpsertOne) SetOwnerID(v string) *WorkspaceUpsertOne {
	return u.Update(func(s *WorkspaceUpsert) {
		s.SetOwnerID(v)
	})
}

// UpdateOwnerID sets the "owner_id" field to the value that was provided on create.
func (u *WorkspaceUpsertOne) UpdateOwnerID() *WorkspaceUpsertOne {
	return u.Update(func(s *WorkspaceUpsert) {
		s.UpdateOwnerID()
	})
}

// SetDefaultLocale sets the "default_locale" field.
func (u *WorkspaceUpsertOne) SetDefaultLocale(v string) *WorkspaceUpsertOne {
	return u.Update(func(s *WorkspaceUpsert) {
		s.SetDefaultLocale(v)
	})
}

// UpdateDefaultLocale sets the "default_locale" field to the value that was provided on create.
func (u *WorkspaceUpsertOne) UpdateDefaultLocale() *WorkspaceUpsertOne {
	return u.Update(func(s *WorkspaceUpsert) {
		s.UpdateDefaultLocale()
	})
}

// SetStorageRoot sets the "storage_root" field.
func (u *WorkspaceUpsertOne) SetStorageRoot(v string) *WorkspaceUpsertOne {
	return u.Update(func(s *WorkspaceUpsert) {
		s.SetStorageRoot(v)
	})
}

// UpdateStorageRoot sets the "storage_root" field to the value that was provided on create.
func (u *WorkspaceUpsertOne) UpdateStorageRoot() *WorkspaceUpsertOne {
	return u.Update(func(s *WorkspaceUpsert) {
		s.UpdateStorageRoot()
	})
}

// ClearStorageRoot clears the value of the "storage_root" field.
func (u *WorkspaceUpsertOne) ClearStorageRoot() *WorkspaceUpsertOne {
	return u.Update(func(s *WorkspaceUpsert) {
		s.ClearStorageRoot()
	})
}

// SetAutoExecutionConfig sets the "auto_execution_config" field.
func (u *WorkspaceUpsertOne) SetAutoExecutionConfig(v map[string]interface{}) *WorkspaceUpsertOne {
	return u.Update(func(s *WorkspaceUpsert) {
		s.SetAutoExecutionConfig(v)
	})
}

// UpdateAutoExecutionConfig sets the "auto_execution_config" field to the value that was provided on create.
func (u *WorkspaceUpsertOne) UpdateAutoExecutionConfig() *WorkspaceUpsertOne {
	return u.Update(func(s *WorkspaceUpsert) {
		s.UpdateAutoExecutionConfig()
	})
}

// ClearAutoExecutionConfig clears the value of the "auto_execution_config" field.
func (u *WorkspaceUpsertOne) ClearAutoExecutionConfig() *WorkspaceUpsertOne {
	return u.Update(func(s *WorkspaceUpsert) {
		s.ClearAutoExecutionConfig()
	})
}

// SetMode sets the "mode" field.
func (u *WorkspaceUpsertOne) SetMode(v workspace.Mode) *WorkspaceUpsertOne {
	return u.Update(func(s *WorkspaceUpsert) {
		s.SetMode(v)
	})
}

// UpdateMode sets the "mode" field to the value that was provided on create.
func (u *WorkspaceUpsertOne) UpdateMode() *WorkspaceUpsertOne {
	return u.Update(func(s *WorkspaceUpsert) {
		s.UpdateMode()
	})
}

// SetPriority sets the "priority" field.
func (u *WorkspaceUpsertOne) SetPriority(v workspace.Priority) *WorkspaceUpsertOne {
	return u.Update(func(s *WorkspaceUpsert) {
		s.SetPriority(v)
	})
}

// UpdatePriority sets the "priority" field to the value that was provided on create.
func (u *WorkspaceUpsertOne) UpdatePriority() *WorkspaceUpsertOne {
	return u.Update(func(s *WorkspaceUpsert) {
		s.UpdatePriority()
	})
}

// Exec executes the query.
func (u *WorkspaceUpsertOne) Exec(ctx context.Context) error {
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for WorkspaceCreate.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *WorkspaceUpsertOne) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}

// Exec executes the UPSERT query and returns the inserted/updated ID.
func (u *WorkspaceUpsertOne) ID(ctx context.Context) (id string, err error) {
	if u.create.driver.Dialect() == dialect.MySQL {
		// In case of "ON CONFLICT", there is no way to get back non-numeric ID
		// fields from the database since MySQL does not support the RETURNING clause.
		return id, errors.New("ent: WorkspaceUpsertOne.ID is not supported by MySQL driver. Use WorkspaceUpsertOne.Exec instead")
	}
	node, err := u.create.Save(ctx)
	if err != nil {
		return id, err
	}
	return node.ID, nil
}

// IDX is like ID, but panics if an error occurs.
func (u *WorkspaceUpsertOne) IDX(ctx context.Context) string {
	id, err := u.ID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// WorkspaceCreateBulk is the builder for creating many Workspace entities in bulk.
type WorkspaceCreateBulk struct {
	config
	err      error
	builders []*WorkspaceCreate
	conflict []sql.ConflictOption
}

// Save creates the Workspace entities in the database.
func (_c *WorkspaceCreateBulk) Save(ctx context.Context) ([]*Workspace, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*Workspace, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*WorkspaceMutation)
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
func (_c *WorkspaceCreateBulk) SaveX(ctx context.Context) []*Workspace {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *WorkspaceCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *WorkspaceCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.Workspace.CreateBulk(builders...).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.WorkspaceUpsert) {
//			SetOwnerID(v+v).
//		}).
//		Exec(ctx)
func (_c *WorkspaceCreateBulk) OnConflict(opts ...sql.ConflictOption) *WorkspaceUpsertBulk {
	_c.conflict = opts
	return &WorkspaceUpsertBulk{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.Workspace.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *WorkspaceCreateBulk) OnConflictColumns(columns ...string) *WorkspaceUpsertBulk {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &WorkspaceUpsertBulk{
		create: _c,
	}
}

// WorkspaceUpsertBulk is the builder for "upsert"-ing
// a bulk of Workspace nodes.
type WorkspaceUpsertBulk struct {
	create *WorkspaceCreateBulk
}

// UpdateNewValues updates the mutable fields using the new values that
// were set on create. Using this option is equivalent to using:
//
//	client.Workspace.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(workspace.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *WorkspaceUpsertBulk) UpdateNewValues() *WorkspaceUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		for _, b := range u.create.builders {
			if _, exists := b.mutation.ID(); exists {
				s.SetIgnore(workspace.FieldID)
			}
			if _, exists := b.mutation.CreatedAt(); exists {
				s.SetIgnore(workspace.FieldCreatedAt)
			}
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.Workspace.Create().
//		OnConflict(sql.ResolveWithIgnore()).
//		Exec(ctx)
func (u *WorkspaceUpsertBulk) Ignore() *WorkspaceUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *WorkspaceUpsertBulk) DoNothing() *WorkspaceUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the WorkspaceCreateBulk.OnConflict
// documentation for more info.
func (u *WorkspaceUpsertBulk) Update(set func(*WorkspaceUpsert)) *WorkspaceUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&WorkspaceUpsert{UpdateSet: update})
	}))
	return u
}

// SetOwnerID sets the "owner_id" field.
func (u *WorkspaceUpsertBulk) SetOwnerID(v string) *WorkspaceUpsertBulk {
	return u.Update(func(s *WorkspaceUpsert) {
		s.SetOwnerID(v)
	})
}

// UpdateOwnerID sets the "owner_id" field to the value that was provided on create.
func (u *WorkspaceUpsertBulk) UpdateOwnerID() *WorkspaceUpsertBulk {
	return u.Update(func(s *WorkspaceUpsert) {
		s.UpdateOwnerID()
	})
}

// SetDefaultLocale sets the "default_locale" field.
func (u *WorkspaceUpsertBulk) SetDefaultLocale(v string) *WorkspaceUpsertBulk {
	return u.Update(func(s *WorkspaceUpsert) {
		s.SetDefaultLocale(v)
	})
}

// UpdateDefaultLocale sets the "default_locale" field to the value that was provided on create.
func (u *WorkspaceUpsertBulk) UpdateDefaultLocale() *WorkspaceUpsertBulk {
	return u.Update(func(s *WorkspaceUpsert) {
		s.UpdateDefaultLocale()
	})
}

// SetStorageRoot sets the "storage_root" field.
func (u *WorkspaceUpsertBulk) SetStorageRoot(v string) *WorkspaceUpsertBulk {
	return u.Update(func(s *WorkspaceUpsert) {
		s.SetStorageRoot(v)
	})
}

// UpdateStorageRoot sets the "storage_root" field to the value that was provided on create.
func (u *WorkspaceUpsertBulk) UpdateStorageRoot() *WorkspaceUpsertBulk {
	return u.Update(func(s *WorkspaceUpsert) {
		s.UpdateStorageRoot()
	})
}

// ClearStorageRoot clears the value of the "storage_root" field.
func (u *WorkspaceUpsertBulk) ClearStorageRoot() *WorkspaceUpsertBulk {
	return u.Update(func(s *WorkspaceUpsert) {
		s.ClearStorageRoot()
	})
}

// SetAutoExecutionConfig sets the "auto_execution_config" field.
func (u *WorkspaceUpsertBulk) SetAutoExecutionConfig(v map[string]interface{}) *WorkspaceUpsertBulk {
	return u.Update(func(s *WorkspaceUpsert) {
		s.SetAutoExecutionConfig(v)
	})
}

// UpdateAutoExecutionConfig sets the "auto_execution_config" field to the value that was provided on create.
func (u *WorkspaceUpsertBulk) UpdateAutoExecutionConfig() *WorkspaceUpsertBulk {
	return u.Update(func(s *WorkspaceUpsert) {
		s.UpdateAutoExecutionConfig()
	})
}

// ClearAutoExecutionConfig clears the value of the "auto_execution_config" field.
func (u *WorkspaceUpsertBulk) ClearAutoExecutionConfig() *WorkspaceUpsertBulk {
	return u.Update(func(s *WorkspaceUpsert) {
		s.ClearAutoExecutionConfig()
	})
}

// SetMode sets the "mode" field.
func (u *WorkspaceUpsertBulk) SetMode(v workspace.Mode) *WorkspaceUpsertBulk {
	return u.Update(func(s *WorkspaceUpsert) {
		s.SetMode(v)
	})
}

// UpdateMode sets the "mode" field to the value that was provided on create.
func (u *WorkspaceUpsertBulk) UpdateMode() *WorkspaceUpsertBulk {
	return u.Update(func(s *WorkspaceUpsert) {
		s.UpdateMode()
	})
}

// SetPriority sets the "priority" field.
func (u *WorkspaceUpsertBulk) SetPriority(v workspace.Priority) *WorkspaceUpsertBulk {
	return u.Update(func(s *WorkspaceUpsert) {
		s.SetPriority(v)
	})
}

// UpdatePriority sets the "priority" field to the value that was provided on create.
func (u *WorkspaceUpsertBulk) UpdatePriority() *WorkspaceUpsertBulk {
	return u.Update(func(s *WorkspaceUpsert) {
		s.UpdatePriority()
	})
}

// Exec executes the query.
func (u *WorkspaceUpsertBulk) Exec(ctx context.Context) error {
	if u.create.err != nil {
		return u.create.err
	}
	for i, b := range u.create.builders {
		if len(b.conflict) != 0 {
			return fmt.Errorf("ent: OnConflict was set for builder %d. Set it on the WorkspaceCreateBulk instead", i)
		}
	}
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for WorkspaceCreateBulk.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *WorkspaceUpsertBulk) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}
