// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/cortexops/playbookd/ent/predicate"
	"github.com/cortexops/playbookd/ent/workspace"
)

// WorkspaceUpdate is the builder for updating Workspace entities.
type WorkspaceUpdate struct {
	config
	hooks    []Hook
	mutation *WorkspaceMutation
}

// Where appends a list predicates to the WorkspaceUpdate builder.
func (_u *WorkspaceUpdate) Where(ps ...predicate.Workspace) *WorkspaceUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetOwnerID sets the "owner_id" field.
func (_u *WorkspaceUpdate) SetOwnerID(v string) *WorkspaceUpdate {
	_u.mutation.SetOwnerID(v)
	return _u
}

// SetNillableOwnerID sets the "owner_id" field if the given value is not nil.
func (_u *WorkspaceUpdate) SetNillableOwnerID(v *string) *WorkspaceUpdate {
	if v != nil {
		_u.SetOwnerID(*v)
	}
	return _u
}

// SetDefaultLocale sets the "default_locale" field.
func (_u *WorkspaceUpdate) SetDefaultLocale(v string) *WorkspaceUpdate {
	_u.mutation.SetDefaultLocale(v)
	return _u
}

// SetNillableDefaultLocale sets the "default_locale" field if the given value is not nil.
func (_u *WorkspaceUpdate) SetNillableDefaultLocale(v *string) *WorkspaceUpdate {
	if v != nil {
		_u.SetDefaultLocale(*v)
	}
	return _u
}

// SetStorageRoot sets the "storage_root" field.
func (_u *WorkspaceUpdate) SetStorageRoot(v string) *WorkspaceUpdate {
	_u.mutation.SetStorageRoot(v)
	return _u
}

// SetNillableStorageRoot sets the "storage_root" field if the given value is not nil.
func (_u *WorkspaceUpdate) SetNillableStorageRoot(v *string) *WorkspaceUpdate {
	if v != nil {
		_u.SetStorageRoot(*v)
	}
	return _u
}

// ClearStorageRoot clears the value of the "storage_root" field.
func (_u *WorkspaceUpdate) ClearStorageRoot() *WorkspaceUpdate {
	_u.mutation.ClearStorageRoot()
	return _u
}

// SetAutoExecutionConfig sets the "auto_execution_config" field.
func (_u *WorkspaceUpdate) SetAutoExecutionConfig(v map[string]interface{}) *WorkspaceUpdate {
	_u.mutation.SetAutoExecutionConfig(v)
	return _u
}

// ClearAutoExecutionConfig clears the value of the "auto_execution_config" field.
func (_u *WorkspaceUpdate) ClearAutoExecutionConfig() *WorkspaceUpdate {
	_u.mutation.ClearAutoExecutionConfig()
	return _u
}

// SetMode sets the "mode" field.
func (_u *WorkspaceUpdate) SetMode(v workspace.Mode) *WorkspaceUpdate {
	_u.mutation.SetMode(v)
	return _u
}

// SetNillableMode sets the "mode" field if the given value is not nil.
func (_u *WorkspaceUpdate) SetNillableMode(v *workspace.Mode) *WorkspaceUpdate {
	if v != nil {
		_u.SetMode(*v)
	}
	return _u
}

// SetPriority sets the "priority" field.
func (_u *WorkspaceUpdate) SetPriority(v workspace.Priority) *WorkspaceUpdate {
	_u.mutation.SetPriority(v)
	return _u
}

// SetNillablePriority sets the "priority" field if the given value is not nil.
func (_u *WorkspaceUpdate) SetNillablePriority(v *workspace.Priority) *WorkspaceUpdate {
	if v != nil {
		_u.SetPriority(*v)
	}
	return _u
}

// Mutation returns the WorkspaceMutation object of the builder.
func (_u *WorkspaceUpdate) Mutation() *WorkspaceMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *WorkspaceUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *WorkspaceUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *WorkspaceUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *WorkspaceUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *WorkspaceUpdate) check() error {
	if v, ok := _u.mutation.Mode(); ok {
		if err := workspace.ModeValidator(v); err != nil {
			return &ValidationError{Name: "mode", err: fmt.Errorf(`ent: validator failed for field "Workspace.mode": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Priority(); ok {
		if err := workspace.PriorityValidator(v); err != nil {
			return &ValidationError{Name: "priority", err: fmt.Errorf(`ent: validator failed for field "Workspace.priority": %w`, err)}
		}
	}
	return nil
}

func (_u *WorkspaceUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(workspace.Table, workspace.Columns, sqlgraph.NewFieldSpec(workspace.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.OwnerID(); ok {
		_spec.SetField(workspace.FieldOwnerID, field.TypeString, value)
	}
	if value, ok := _u.mutation.DefaultLocale(); ok {
		_spec.SetField(workspace.FieldDefaultLocale, field.TypeString, value)
	}
	if value, ok := _u.mutation.StorageRoot(); ok {
		_spec.SetField(workspace.FieldStorageRoot, field.TypeString, value)
	}
	if _u.mutation.StorageRootCleared() {
		_spec.ClearField(workspace.FieldStorageRoot, field.TypeString)
	}
	if value, ok := _u.mutation.AutoExecutionConfig(); ok {
		_spec.SetField(workspace.FieldAutoExecutionConfig, field.TypeJSON, value)
	}
	if _u.mutation.AutoExecutionConfigCleared() {
		_spec.ClearField(workspace.FieldAutoExecutionConfig, field.TypeJSON)
	}
	if value, ok := _u.mutation.Mode(); ok {
		_spec.SetField(workspace.FieldMode, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.Priority(); ok {
		_spec.SetField(workspace.FieldPriority, field.TypeEnum, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{workspace.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// WorkspaceUpdateOne is the builder for updating a single Workspace entity.
type WorkspaceUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *WorkspaceMutation
}

// SetOwnerID sets the "owner_id" field.
func (_u *WorkspaceUpdateOne) SetOwnerID(v string) *WorkspaceUpdateOne {
	_u.mutation.SetOwnerID(v)
	return _u
}

// SetNillableOwnerID sets the "owner_id" field if the given value is not nil.
func (_u *WorkspaceUpdateOne) SetNillableOwnerID(v *string) *WorkspaceUpdateOne {
	if v != nil {
		_u.SetOwnerID(*v)
	}
	return _u
}

// SetDefaultLocale sets the "default_locale" field.
func (_u *WorkspaceUpdateOne) SetDefaultLocale(v string) *WorkspaceUpdateOne {
	_u.mutation.SetDefaultLocale(v)
	return _u
}

// SetNillableDefaultLocale sets the "default_locale" field if the given value is not nil.
func (_u *WorkspaceUpdateOne) SetNillableDefaultLocale(v *string) *WorkspaceUpdateOne {
	if v != nil {
		_u.SetDefaultLocale(*v)
	}
	return _u
}

// SetStorageRoot sets the "storage_root" field.
func (_u *WorkspaceUpdateOne) SetStorageRoot(v string) *WorkspaceUpdateOne {
	_u.mutation.SetStorageRoot(v)
	return _u
}

// SetNillableStorageRoot sets the "storage_root" field if the given value is not nil.
func (_u *WorkspaceUpdateOne) SetNillableStorageRoot(v *string) *WorkspaceUpdateOne {
	if v != nil {
		_u.SetStorageRoot(*v)
	}
	return _u
}

// ClearStorageRoot clears the value of the "storage_root" field.
func (_u *WorkspaceUpdateOne) ClearStorageRoot() *WorkspaceUpdateOne {
	_u.mutation.ClearStorageRoot()
	return _u
}

// SetAutoExecutionConfig sets the "auto_execution_config" field.
func (_u *WorkspaceUpdateOne) SetAutoExecutionConfig(v map[string]interface{}) *WorkspaceUpdateOne {
	_u.mutation.SetAutoExecutionConfig(v)
	return _u
}

// ClearAutoExecutionConfig clears the value of the "auto_execution_config" field.
func (_u *WorkspaceUpdateOne) ClearAutoExecutionConfig() *WorkspaceUpdateOne {
	_u.mutation.ClearAutoExecutionConfig()
	return _u
}

// SetMode sets the "mode" field.
func (_u *WorkspaceUpdateOne) SetMode(v workspace.Mode) *WorkspaceUpdateOne {
	_u.mutation.SetMode(v)
	return _u
}

// SetNillableMode sets the "mode" field if the given value is not nil.
func (_u *WorkspaceUpdateOne) SetNillableMode(v *workspace.Mode) *WorkspaceUpdateOne {
	if v != nil {
		_u.SetMode(*v)
	}
	return _u
}

// SetPriority sets the "priority" field.
func (_u *WorkspaceUpdateOne) SetPriority(v workspace.Priority) *WorkspaceUpdateOne {
	_u.mutation.SetPriority(v)
	return _u
}

// SetNillablePriority sets the "priority" field if the given value is not nil.
func (_u *WorkspaceUpdateOne) SetNillablePriority(v *workspace.Priority) *WorkspaceUpdateOne {
	if v != nil {
		_u.SetPriority(*v)
	}
	return _u
}

// Mutation returns the WorkspaceMutation object of the builder.
func (_u *WorkspaceUpdateOne) Mutation() *WorkspaceMutation {
	return _u.mutation
}

// Where appends a list predicates to the WorkspaceUpdate builder.
func (_u *WorkspaceUpdateOne) Where(ps ...predicate.Workspace) *WorkspaceUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *WorkspaceUpdateOne) Select(field string, fields ...string) *WorkspaceUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated Workspace entity.
func (_u *WorkspaceUpdateOne) Save(ctx context.Context) (*Workspace, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *WorkspaceUpdateOne) SaveX(ctx context.Context) *Workspace {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *WorkspaceUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *WorkspaceUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *WorkspaceUpdateOne) check() error {
	if v, ok := _u.mutation.Mode(); ok {
		if err := workspace.ModeValidator(v); err != nil {
			return &ValidationError{Name: "mode", err: fmt.Errorf(`ent: validator failed for field "Workspace.mode": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Priority(); ok {
		if err := workspace.PriorityValidator(v); err != nil {
			return &ValidationError{Name: "priority", err: fmt.Errorf(`ent: validator failed for field "Workspace.priority": %w`, err)}
		}
	}
	return nil
}

func (_u *WorkspaceUpdateOne) sqlSave(ctx context.Context) (_node *Workspace, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(workspace.Table, workspace.Columns, sqlgraph.NewFieldSpec(workspace.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "Workspace.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, workspace.FieldID)
		for _, f := range fields {
			if !workspace.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != workspace.FieldID {
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
	if value, ok := _u.mutation.OwnerID(); ok {
		_spec.SetField(workspace.FieldOwnerID, field.TypeString, value)
	}
	if value, ok := _u.mutation.DefaultLocale(); ok {
		_spec.SetField(workspace.FieldDefaultLocale, field.TypeString, value)
	}
	if value, ok := _u.mutation.StorageRoot(); ok {
		_spec.SetField(workspace.FieldStorageRoot, field.TypeString, value)
	}
	if _u.mutation.StorageRootCleared() {
		_spec.ClearField(workspace.FieldStorageRoot, field.TypeString)
	}
	if value, ok := _u.mutation.AutoExecutionConfig(); ok {
		_spec.SetField(workspace.FieldAutoExecutionConfig, field.TypeJSON, value)
	}
	if _u.mutation.AutoExecutionConfigCleared() {
		_spec.ClearField(workspace.FieldAutoExecutionConfig, field.TypeJSON)
	}
	if value, ok := _u.mutation.Mode(); ok {
		_spec.SetField(workspace.FieldMode, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.Priority(); ok {
		_spec.SetField(workspace.FieldPriority, field.TypeEnum, value)
	}
	_node = &Workspace{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{workspace.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
