// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/dialect/sql/sqljson"
	"entgo.io/ent/schema/field"
	"github.com/cortexops/playbookd/ent/mindevent"
	"github.com/cortexops/playbookd/ent/predicate"
)

// MindEventUpdate is the builder for updating MindEvent entities.
type MindEventUpdate struct {
	config
	hooks    []Hook
	mutation *MindEventMutation
}

// Where appends a list predicates to the MindEventUpdate builder.
func (_u *MindEventUpdate) Where(ps ...predicate.MindEvent) *MindEventUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetWorkspaceID sets the "workspace_id" field.
func (_u *MindEventUpdate) SetWorkspaceID(v string) *MindEventUpdate {
	_u.mutation.SetWorkspaceID(v)
	return _u
}

// SetNillableWorkspaceID sets the "workspace_id" field if the given value is not nil.
func (_u *MindEventUpdate) SetNillableWorkspaceID(v *string) *MindEventUpdate {
	if v != nil {
		_u.SetWorkspaceID(*v)
	}
	return _u
}

// SetProfileID sets the "profile_id" field.
func (_u *MindEventUpdate) SetProfileID(v string) *MindEventUpdate {
	_u.mutation.SetProfileID(v)
	return _u
}

// SetNillableProfileID sets the "profile_id" field if the given value is not nil.
func (_u *MindEventUpdate) SetNillableProfileID(v *string) *MindEventUpdate {
	if v != nil {
		_u.SetProfileID(*v)
	}
	return _u
}

// ClearProfileID clears the value of the "profile_id" field.
func (_u *MindEventUpdate) ClearProfileID() *MindEventUpdate {
	_u.mutation.ClearProfileID()
	return _u
}

// SetThreadID sets the "thread_id" field.
func (_u *MindEventUpdate) SetThreadID(v string) *MindEventUpdate {
	_u.mutation.SetThreadID(v)
	return _u
}

// SetNillableThreadID sets the "thread_id" field if the given value is not nil.
func (_u *MindEventUpdate) SetNillableThreadID(v *string) *MindEventUpdate {
	if v != nil {
		_u.SetThreadID(*v)
	}
	return _u
}

// ClearThreadID clears the value of the "thread_id" field.
func (_u *MindEventUpdate) ClearThreadID() *MindEventUpdate {
	_u.mutation.ClearThreadID()
	return _u
}

// SetEntityIds sets the "entity_ids" field.
func (_u *MindEventUpdate) SetEntityIds(v []string) *MindEventUpdate {
	_u.mutation.SetEntityIds(v)
	return _u
}

// AppendEntityIds appends value to the "entity_ids" field.
func (_u *MindEventUpdate) AppendEntityIds(v []string) *MindEventUpdate {
	_u.mutation.AppendEntityIds(v)
	return _u
}

// ClearEntityIds clears the value of the "entity_ids" field.
func (_u *MindEventUpdate) ClearEntityIds() *MindEventUpdate {
	_u.mutation.ClearEntityIds()
	return _u
}

// SetActor sets the "actor" field.
func (_u *MindEventUpdate) SetActor(v mindevent.Actor) *MindEventUpdate {
	_u.mutation.SetActor(v)
	return _u
}

// SetNillableActor sets the "actor" field if the given value is not nil.
func (_u *MindEventUpdate) SetNillableActor(v *mindevent.Actor) *MindEventUpdate {
	if v != nil {
		_u.SetActor(*v)
	}
	return _u
}

// SetEventType sets the "event_type" field.
func (_u *MindEventUpdate) SetEventType(v string) *MindEventUpdate {
	_u.mutation.SetEventType(v)
	return _u
}

// SetNillableEventType sets the "event_type" field if the given value is not nil.
func (_u *MindEventUpdate) SetNillableEventType(v *string) *MindEventUpdate {
	if v != nil {
		_u.SetEventType(*v)
	}
	return _u
}

// SetPayload sets the "payload" field.
func (_u *MindEventUpdate) SetPayload(v map[string]interface{}) *MindEventUpdate {
	_u.mutation.SetPayload(v)
	return _u
}

// ClearPayload clears the value of the "payload" field.
func (_u *MindEventUpdate) ClearPayload() *MindEventUpdate {
	_u.mutation.ClearPayload()
	return _u
}

// SetMetadata sets the "metadata" field.
func (_u *MindEventUpdate) SetMetadata(v map[string]interface{}) *MindEventUpdate {
	_u.mutation.SetMetadata(v)
	return _u
}

// ClearMetadata clears the value of the "metadata" field.
func (_u *MindEventUpdate) ClearMetadata() *MindEventUpdate {
	_u.mutation.ClearMetadata()
	return _u
}

// SetTimestamp sets the "timestamp" field.
func (_u *MindEventUpdate) SetTimestamp(v time.Time) *MindEventUpdate {
	_u.mutation.SetTimestamp(v)
	return _u
}

// SetNillableTimestamp sets the "timestamp" field if the given value is not nil.
func (_u *MindEventUpdate) SetNillableTimestamp(v *time.Time) *MindEventUpdate {
	if v != nil {
		_u.SetTimestamp(*v)
	}
	return _u
}

// Mutation returns the MindEventMutation object of the builder.
func (_u *MindEventUpdate) Mutation() *MindEventMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *MindEventUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *MindEventUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *MindEventUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *MindEventUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *MindEventUpdate) check() error {
	if v, ok := _u.mutation.Actor(); ok {
		if err := mindevent.ActorValidator(v); err != nil {
			return &ValidationError{Name: "actor", err: fmt.Errorf(`ent: validator failed for field "MindEvent.actor": %w`, err)}
		}
	}
	return nil
}

func (_u *MindEventUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(mindevent.Table, mindevent.Columns, sqlgraph.NewFieldSpec(mindevent.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.WorkspaceID(); ok {
		_spec.SetField(mindevent.FieldWorkspaceID, field.TypeString, value)
	}
	if value, ok := _u.mutation.ProfileID(); ok {
		_spec.SetField(mindevent.FieldProfileID, field.TypeString, value)
	}
	if _u.mutation.ProfileIDCleared() {
		_spec.ClearField(mindevent.FieldProfileID, field.TypeString)
	}
	if value, ok := _u.mutation.ThreadID(); ok {
		_spec.SetField(mindevent.FieldThreadID, field.TypeString, value)
	}
	if _u.mutation.ThreadIDCleared() {
		_spec.ClearField(mindevent.FieldThreadID, field.TypeString)
	}
	if value, ok := _u.mutation.EntityIds(); ok {
		_spec.SetField(mindevent.FieldEntityIds, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedEntityIds(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, mindevent.FieldEntityIds, value)
		})
	}
	if _u.mutation.EntityIdsCleared() {
		_spec.ClearField(mindevent.FieldEntityIds, field.TypeJSON)
	}
	if value, ok := _u.mutation.Actor(); ok {
		_spec.SetField(mindevent.FieldActor, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.EventType(); ok {
		_spec.SetField(mindevent.FieldEventType, field.TypeString, value)
	}
	if value, ok := _u.mutation.Payload(); ok {
		_spec.SetField(mindevent.FieldPayload, field.TypeJSON, value)
	}
	if _u.mutation.PayloadCleared() {
		_spec.ClearField(mindevent.FieldPayload, field.TypeJSON)
	}
	if value, ok := _u.mutation.Metadata(); ok {
		_spec.SetField(mindevent.FieldMetadata, field.TypeJSON, value)
	}
	if _u.mutation.MetadataCleared() {
		_spec.ClearField(mindevent.FieldMetadata, field.TypeJSON)
	}
	if value, ok := _u.mutation.Timestamp(); ok {
		_spec.SetField(mindevent.FieldTimestamp, field.TypeTime, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{mindevent.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// MindEventUpdateOne is the builder for updating a single MindEvent entity.
type MindEventUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *MindEventMutation
}

// SetWorkspaceID sets the "workspace_id" field.
func (_u *MindEventUpdateOne) SetWorkspaceID(v string) *MindEventUpdateOne {
	_u.mutation.SetWorkspaceID(v)
	return _u
}

// SetNillableWorkspaceID sets the "workspace_id" field if the given value is not nil.
func (_u *MindEventUpdateOne) SetNillableWorkspaceID(v *string) *MindEventUpdateOne {
	if v != nil {
		_u.SetWorkspaceID(*v)
	}
	return _u
}

// SetProfileID sets the "profile_id" field.
func (_u *MindEventUpdateOne) SetProfileID(v string) *MindEventUpdateOne {
	_u.mutation.SetProfileID(v)
	return _u
}

// SetNillableProfileID sets the "profile_id" field if the given value is not nil.
func (_u *MindEventUpdateOne) SetNillableProfileID(v *string) *MindEventUpdateOne {
	if v != nil {
		_u.SetProfileID(*v)
	}
	return _u
}

// ClearProfileID clears the value of the "profile_id" field.
func (_u *MindEventUpdateOne) ClearProfileID() *MindEventUpdateOne {
	_u.mutation.ClearProfileID()
	return _u
}

// SetThreadID sets the "thread_id" field.
func (_u *MindEventUpdateOne) SetThreadID(v string) *MindEventUpdateOne {
	_u.mutation.SetThreadID(v)
	return _u
}

// SetNillableThreadID sets the "thread_id" field if the given value is not nil.
func (_u *MindEventUpdateOne) SetNillableThreadID(v *string) *MindEventUpdateOne {
	if v != nil {
		_u.SetThreadID(*v)
	}
	return _u
}

// ClearThreadID clears the value of the "thread_id" field.
func (_u *MindEventUpdateOne) ClearThreadID() *MindEventUpdateOne {
	_u.mutation.ClearThreadID()
	return _u
}

// SetEntityIds sets the "entity_ids" field.
func (_u *MindEventUpdateOne) SetEntityIds(v []string) *MindEventUpdateOne {
	_u.mutation.SetEntityIds(v)
	return _u
}

// AppendEntityIds appends value to the "entity_ids" field.
func (_u *MindEventUpdateOne) AppendEntityIds(v []string) *MindEventUpdateOne {
	_u.mutation.AppendEntityIds(v)
	return _u
}

// ClearEntityIds clears the value of the "entity_ids" field.
func (_u *MindEventUpdateOne) ClearEntityIds() *MindEventUpdateOne {
	_u.mutation.ClearEntityIds()
	return _u
}

// SetActor sets the "actor" field.
func (_u *MindEventUpdateOne) SetActor(v mindevent.Actor) *MindEventUpdateOne {
	_u.mutation.SetActor(v)
	return _u
}

// SetNillableActor sets the "actor" field if the given value is not nil.
func (_u *MindEventUpdateOne) SetNillableActor(v *mindevent.Actor) *MindEventUpdateOne {
	if v != nil {
		_u.SetActor(*v)
	}
	return _u
}

// SetEventType sets the "event_type" field.
func (_u *MindEventUpdateOne) SetEventType(v string) *MindEventUpdateOne {
	_u.mutation.SetEventType(v)
	return _u
}

// SetNillableEventType sets the "event_type" field if the given value is not nil.
func (_u *MindEventUpdateOne) SetNillableEventType(v *string) *MindEventUpdateOne {
	if v != nil {
		_u.SetEventType(*v)
	}
	return _u
}

// SetPayload sets the "payload" field.
func (_u *MindEventUpdateOne) SetPayload(v map[string]interface{}) *MindEventUpdateOne {
	_u.mutation.SetPayload(v)
	return _u
}

// ClearPayload clears the value of the "payload" field.
func (_u *MindEventUpdateOne) ClearPayload() *MindEventUpdateOne {
	_u.mutation.ClearPayload()
	return _u
}

// SetMetadata sets the "metadata" field.
func (_u *MindEventUpdateOne) SetMetadata(v map[string]interface{}) *MindEventUpdateOne {
	_u.mutation.SetMetadata(v)
	return _u
}

// ClearMetadata clears the value of the "metadata" field.
func (_u *MindEventUpdateOne) ClearMetadata() *MindEventUpdateOne {
	_u.mutation.ClearMetadata()
	return _u
}

// SetTimestamp sets the "timestamp" field.
func (_u *MindEventUpdateOne) SetTimestamp(v time.Time) *MindEventUpdateOne {
	_u.mutation.SetTimestamp(v)
	return _u
}

// SetNillableTimestamp sets the "timestamp" field if the given value is not nil.
func (_u *MindEventUpdateOne) SetNillableTimestamp(v *time.Time) *MindEventUpdateOne {
	if v != nil {
		_u.SetTimestamp(*v)
	}
	return _u
}

// Mutation returns the MindEventMutation object of the builder.
func (_u *MindEventUpdateOne) Mutation() *MindEventMutation {
	return _u.mutation
}

// Where appends a list predicates to the MindEventUpdate builder.
func (_u *MindEventUpdateOne) Where(ps ...predicate.MindEvent) *MindEventUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *MindEventUpdateOne) Select(field string, fields ...string) *MindEventUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated MindEvent entity.
func (_u *MindEventUpdateOne) Save(ctx context.Context) (*MindEvent, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *MindEventUpdateOne) SaveX(ctx context.Context) *MindEvent {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *MindEventUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *MindEventUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *MindEventUpdateOne) check() error {
	if v, ok := _u.mutation.Actor(); ok {
		if err := mindevent.ActorValidator(v); err != nil {
			return &ValidationError{Name: "actor", err: fmt.Errorf(`ent: validator failed for field "MindEvent.actor": %w`, err)}
		}
	}
	return nil
}

func (_u *MindEventUpdateOne) sqlSave(ctx context.Context) (_node *MindEvent, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(mindevent.Table, mindevent.Columns, sqlgraph.NewFieldSpec(mindevent.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "MindEvent.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, mindevent.FieldID)
		for _, f := range fields {
			if !mindevent.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != mindevent.FieldID {
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
		_spec.SetField(mindevent.FieldWorkspaceID, field.TypeString, value)
	}
	if value, ok := _u.mutation.ProfileID(); ok {
		_spec.SetField(mindevent.FieldProfileID, field.TypeString, value)
	}
	if _u.mutation.ProfileIDCleared() {
		_spec.ClearField(mindevent.FieldProfileID, field.TypeString)
	}
	if value, ok := _u.mutation.ThreadID(); ok {
		_spec.SetField(mindevent.FieldThreadID, field.TypeString, value)
	}
	if _u.mutation.ThreadIDCleared() {
		_spec.ClearField(mindevent.FieldThreadID, field.TypeString)
	}
	if value, ok := _u.mutation.EntityIds(); ok {
		_spec.SetField(mindevent.FieldEntityIds, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedEntityIds(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, mindevent.FieldEntityIds, value)
		})
	}
	if _u.mutation.EntityIdsCleared() {
		_spec.ClearField(mindevent.FieldEntityIds, field.TypeJSON)
	}
	if value, ok := _u.mutation.Actor(); ok {
		_spec.SetField(mindevent.FieldActor, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.EventType(); ok {
		_spec.SetField(mindevent.FieldEventType, field.TypeString, value)
	}
	if value, ok := _u.mutation.Payload(); ok {
		_spec.SetField(mindevent.FieldPayload, field.TypeJSON, value)
	}
	if _u.mutation.PayloadCleared() {
		_spec.ClearField(mindevent.FieldPayload, field.TypeJSON)
	}
	if value, ok := _u.mutation.Metadata(); ok {
		_spec.SetField(mindevent.FieldMetadata, field.TypeJSON, value)
	}
	if _u.mutation.MetadataCleared() {
		_spec.ClearField(mindevent.FieldMetadata, field.TypeJSON)
	}
	if value, ok := _u.mutation.Timestamp(); ok {
		_spec.SetField(mindevent.FieldTimestamp, field.TypeTime, value)
	}
	_node = &MindEvent{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{mindevent.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
