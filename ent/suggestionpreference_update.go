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
	"github.com/cortexops/playbookd/ent/suggestionpreference"
)

// SuggestionPreferenceUpdate is the builder for updating SuggestionPreference entities.
type SuggestionPreferenceUpdate struct {
	config
	hooks    []Hook
	mutation *SuggestionPreferenceMutation
}

// Where appends a list predicates to the SuggestionPreferenceUpdate builder.
func (_u *SuggestionPreferenceUpdate) Where(ps ...predicate.SuggestionPreference) *SuggestionPreferenceUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetWorkspaceID sets the "workspace_id" field.
func (_u *SuggestionPreferenceUpdate) SetWorkspaceID(v string) *SuggestionPreferenceUpdate {
	_u.mutation.SetWorkspaceID(v)
	return _u
}

// SetNillableWorkspaceID sets the "workspace_id" field if the given value is not nil.
func (_u *SuggestionPreferenceUpdate) SetNillableWorkspaceID(v *string) *SuggestionPreferenceUpdate {
	if v != nil {
		_u.SetWorkspaceID(*v)
	}
	return _u
}

// SetUserID sets the "user_id" field.
func (_u *SuggestionPreferenceUpdate) SetUserID(v string) *SuggestionPreferenceUpdate {
	_u.mutation.SetUserID(v)
	return _u
}

// SetNillableUserID sets the "user_id" field if the given value is not nil.
func (_u *SuggestionPreferenceUpdate) SetNillableUserID(v *string) *SuggestionPreferenceUpdate {
	if v != nil {
		_u.SetUserID(*v)
	}
	return _u
}

// SetPackID sets the "pack_id" field.
func (_u *SuggestionPreferenceUpdate) SetPackID(v string) *SuggestionPreferenceUpdate {
	_u.mutation.SetPackID(v)
	return _u
}

// SetNillablePackID sets the "pack_id" field if the given value is not nil.
func (_u *SuggestionPreferenceUpdate) SetNillablePackID(v *string) *SuggestionPreferenceUpdate {
	if v != nil {
		_u.SetPackID(*v)
	}
	return _u
}

// SetTaskType sets the "task_type" field.
func (_u *SuggestionPreferenceUpdate) SetTaskType(v string) *SuggestionPreferenceUpdate {
	_u.mutation.SetTaskType(v)
	return _u
}

// SetNillableTaskType sets the "task_type" field if the given value is not nil.
func (_u *SuggestionPreferenceUpdate) SetNillableTaskType(v *string) *SuggestionPreferenceUpdate {
	if v != nil {
		_u.SetTaskType(*v)
	}
	return _u
}

// SetAutoSuggestEnabled sets the "auto_suggest_enabled" field.
func (_u *SuggestionPreferenceUpdate) SetAutoSuggestEnabled(v bool) *SuggestionPreferenceUpdate {
	_u.mutation.SetAutoSuggestEnabled(v)
	return _u
}

// SetNillableAutoSuggestEnabled sets the "auto_suggest_enabled" field if the given value is not nil.
func (_u *SuggestionPreferenceUpdate) SetNillableAutoSuggestEnabled(v *bool) *SuggestionPreferenceUpdate {
	if v != nil {
		_u.SetAutoSuggestEnabled(*v)
	}
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *SuggestionPreferenceUpdate) SetUpdatedAt(v time.Time) *SuggestionPreferenceUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_u *SuggestionPreferenceUpdate) SetNillableUpdatedAt(v *time.Time) *SuggestionPreferenceUpdate {
	if v != nil {
		_u.SetUpdatedAt(*v)
	}
	return _u
}

// Mutation returns the SuggestionPreferenceMutation object of the builder.
func (_u *SuggestionPreferenceUpdate) Mutation() *SuggestionPreferenceMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *SuggestionPreferenceUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *SuggestionPreferenceUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *SuggestionPreferenceUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *SuggestionPreferenceUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

func (_u *SuggestionPreferenceUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	_spec := sqlgraph.NewUpdateSpec(suggestionpreference.Table, suggestionpreference.Columns, sqlgraph.NewFieldSpec(suggestionpreference.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.WorkspaceID(); ok {
		_spec.SetField(suggestionpreference.FieldWorkspaceID, field.TypeString, value)
	}
	if value, ok := _u.mutation.UserID(); ok {
		_spec.SetField(suggestionpreference.FieldUserID, field.TypeString, value)
	}
	if value, ok := _u.mutation.PackID(); ok {
		_spec.SetField(suggestionpreference.FieldPackID, field.TypeString, value)
	}
	if value, ok := _u.mutation.TaskType(); ok {
		_spec.SetField(suggestionpreference.FieldTaskType, field.TypeString, value)
	}
	if value, ok := _u.mutation.AutoSuggestEnabled(); ok {
		_spec.SetField(suggestionpreference.FieldAutoSuggestEnabled, field.TypeBool, value)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(suggestionpreference.FieldUpdatedAt, field.TypeTime, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{suggestionpreference.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// SuggestionPreferenceUpdateOne is the builder for updating a single SuggestionPreference entity.
type SuggestionPreferenceUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *SuggestionPreferenceMutation
}

// SetWorkspaceID sets the "workspace_id" field.
func (_u *SuggestionPreferenceUpdateOne) SetWorkspaceID(v string) *SuggestionPreferenceUpdateOne {
	_u.mutation.SetWorkspaceID(v)
	return _u
}

// SetNillableWorkspaceID sets the "workspace_id" field if the given value is not nil.
func (_u *SuggestionPreferenceUpdateOne) SetNillableWorkspaceID(v *string) *SuggestionPreferenceUpdateOne {
	if v != nil {
		_u.SetWorkspaceID(*v)
	}
	return _u
}

// SetUserID sets the "user_id" field.
func (_u *SuggestionPreferenceUpdateOne) SetUserID(v string) *SuggestionPreferenceUpdateOne {
	_u.mutation.SetUserID(v)
	return _u
}

// SetNillableUserID sets the "user_id" field if the given value is not nil.
func (_u *SuggestionPreferenceUpdateOne) SetNillableUserID(v *string) *SuggestionPreferenceUpdateOne {
	if v != nil {
		_u.SetUserID(*v)
	}
	return _u
}

// SetPackID sets the "pack_id" field.
func (_u *SuggestionPreferenceUpdateOne) SetPackID(v string) *SuggestionPreferenceUpdateOne {
	_u.mutation.SetPackID(v)
	return _u
}

// SetNillablePackID sets the "pack_id" field if the given value is not nil.
func (_u *SuggestionPreferenceUpdateOne) SetNillablePackID(v *string) *SuggestionPreferenceUpdateOne {
	if v != nil {
		_u.SetPackID(*v)
	}
	return _u
}

// SetTaskType sets the "task_type" field.
func (_u *SuggestionPreferenceUpdateOne) SetTaskType(v string) *SuggestionPreferenceUpdateOne {
	_u.mutation.SetTaskType(v)
	return _u
}

// SetNillableTaskType sets the "task_type" field if the given value is not nil.
func (_u *SuggestionPreferenceUpdateOne) SetNillableTaskType(v *string) *SuggestionPreferenceUpdateOne {
	if v != nil {
		_u.SetTaskType(*v)
	}
	return _u
}

// SetAutoSuggestEnabled sets the "auto_suggest_enabled" field.
func (_u *SuggestionPreferenceUpdateOne) SetAutoSuggestEnabled(v bool) *SuggestionPreferenceUpdateOne {
	_u.mutation.SetAutoSuggestEnabled(v)
	return _u
}

// SetNillableAutoSuggestEnabled sets the "auto_suggest_enabled" field if the given value is not nil.
func (_u *SuggestionPreferenceUpdateOne) SetNillableAutoSuggestEnabled(v *bool) *SuggestionPreferenceUpdateOne {
	if v != nil {
		_u.SetAutoSuggestEnabled(*v)
	}
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *SuggestionPreferenceUpdateOne) SetUpdatedAt(v time.Time) *SuggestionPreferenceUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_u *SuggestionPreferenceUpdateOne) SetNillableUpdatedAt(v *time.Time) *SuggestionPreferenceUpdateOne {
	if v != nil {
		_u.SetUpdatedAt(*v)
	}
	return _u
}

// Mutation returns the SuggestionPreferenceMutation object of the builder.
func (_u *SuggestionPreferenceUpdateOne) Mutation() *SuggestionPreferenceMutation {
	return _u.mutation
}

// Where appends a list predicates to the SuggestionPreferenceUpdate builder.
func (_u *SuggestionPreferenceUpdateOne) Where(ps ...predicate.SuggestionPreference) *SuggestionPreferenceUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *SuggestionPreferenceUpdateOne) Select(field string, fields ...string) *SuggestionPreferenceUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated SuggestionPreference entity.
func (_u *SuggestionPreferenceUpdateOne) Save(ctx context.Context) (*SuggestionPreference, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *SuggestionPreferenceUpdateOne) SaveX(ctx context.Context) *SuggestionPreference {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *SuggestionPreferenceUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *SuggestionPreferenceUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

func (_u *SuggestionPreferenceUpdateOne) sqlSave(ctx context.Context) (_node *SuggestionPreference, err error) {
	_spec := sqlgraph.NewUpdateSpec(suggestionpreference.Table, suggestionpreference.Columns, sqlgraph.NewFieldSpec(suggestionpreference.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "SuggestionPreference.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, suggestionpreference.FieldID)
		for _, f := range fields {
			if !suggestionpreference.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != suggestionpreference.FieldID {
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
	if value, ok := _u.mutation.WorkspaceID(); ok {
		_spec.SetField(suggestionpreference.FieldWorkspaceID, field.TypeString, value)
	}
	if value, ok := _u.mutation.UserID(); ok {
		_spec.SetField(suggestionpreference.FieldUserID, field.TypeString, value)
	}
	if value, ok := _u.mutation.PackID(); ok {
		_spec.SetField(suggestionpreference.FieldPackID, field.TypeString, value)
	}
	if value, ok := _u.mutation.TaskType(); ok {
		_spec.SetField(suggestionpreference.FieldTaskType, field.TypeString, value)
	}
	if value, ok := _u.mutation.AutoSuggestEnabled(); ok {
		_spec.SetField(suggestionpreference.FieldAutoSuggestEnabled, field.TypeBool, value)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(suggestionpreference.FieldUpdatedAt, field.TypeTime, value)
	}
	_node = &SuggestionPreference{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{suggestionpreference.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
