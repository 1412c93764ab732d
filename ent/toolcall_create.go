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
	"github.com/cortexops/playbookd/ent/toolcall"
)

// ToolCallCreate is the builder for creating a ToolCall entity.
type ToolCallCreate struct {
	config
	mutation *ToolCallMutation
	hooks    []Hook
	conflict []sql.ConflictOption
}

// SetExecutionID sets the "execution_id" field.
func (_c *ToolCallCreate) SetExecutionID(v string) *ToolCallCreate {
	_c.mutation.SetExecutionID(v)
	return _c
}

// SetStepID sets the "step_id" field.
func (_c *ToolCallCreate) SetStepID(v string) *ToolCallCreate {
	_c.mutation.SetStepID(v)
	return _c
}

// SetNillableStepID sets the "step_id" field if the given value is not nil.
func (_c *ToolCallCreate) SetNillableStepID(v *string) *ToolCallCreate {
	if v != nil {
		_c.SetStepID(*v)
	}
	return _c
}

// SetToolName sets the "tool_name" field.
func (_c *ToolCallCreate) SetToolName(v string) *ToolCallCreate {
	_c.mutation.SetToolName(v)
	return _c
}

// SetParameters sets the "parameters" field.
func (_c *ToolCallCreate) SetParameters(v map[string]interface{}) *ToolCallCreate {
	_c.mutation.SetParameters(v)
	return _c
}

// SetResponse sets the "response" field.
func (_c *ToolCallCreate) SetResponse(v map[string]interface{}) *ToolCallCreate {
	_c.mutation.SetResponse(v)
	return _c
}

// SetStatus sets the "status" field.
func (_c *ToolCallCreate) SetStatus(v toolcall.Status) *ToolCallCreate {
	_c.mutation.SetStatus(v)
	return _c
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_c *ToolCallCreate) SetNillableStatus(v *toolcall.Status) *ToolCallCreate {
	if v != nil {
		_c.SetStatus(*v)
	}
	return _c
}

// SetError sets the "error" field.
func (_c *ToolCallCreate) SetError(v string) *ToolCallCreate {
	_c.mutation.SetError(v)
	return _c
}

// SetNillableError sets the "error" field if the given value is not nil.
func (_c *ToolCallCreate) SetNillableError(v *string) *ToolCallCreate {
	if v != nil {
		_c.SetError(*v)
	}
	return _c
}

// SetDurationMs sets the "duration_ms" field.
func (_c *ToolCallCreate) SetDurationMs(v int) *ToolCallCreate {
	_c.mutation.SetDurationMs(v)
	return _c
}

// SetNillableDurationMs sets the "duration_ms" field if the given value is not nil.
func (_c *ToolCallCreate) SetNillableDurationMs(v *int) *ToolCallCreate {
	if v != nil {
		_c.SetDurationMs(*v)
	}
	return _c
}

// SetFactoryCluster sets the "factory_cluster" field.
func (_c *ToolCallCreate) SetFactoryCluster(v string) *ToolCallCreate {
	_c.mutation.SetFactoryCluster(v)
	return _c
}

// SetStartedAt sets the "started_at" field.
func (_c *ToolCallCreate) SetStartedAt(v time.Time) *ToolCallCreate {
	_c.mutation.SetStartedAt(v)
	return _c
}

// SetCompletedAt sets the "completed_at" field.
func (_c *ToolCallCreate) SetCompletedAt(v time.Time) *ToolCallCreate {
	_c.mutation.SetCompletedAt(v)
	return _c
}

// SetNillableCompletedAt sets the "completed_at" field if the given value is not nil.
func (_c *ToolCallCreate) SetNillableCompletedAt(v *time.Time) *ToolCallCreate {
	if v != nil {
		_c.SetCompletedAt(*v)
	}
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *ToolCallCreate) SetCreatedAt(v time.Time) *ToolCallCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *ToolCallCreate) SetNillableCreatedAt(v *time.Time) *ToolCallCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *ToolCallCreate) SetID(v string) *ToolCallCreate {
	_c.mutation.SetID(v)
	return _c
}

// Mutation returns the ToolCallMutation object of the builder.
func (_c *ToolCallCreate) Mutation() *ToolCallMutation {
	return _c.mutation
}

// Save creates the ToolCall in the database.
func (_c *ToolCallCreate) Save(ctx context.Context) (*ToolCall, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *ToolCallCreate) SaveX(ctx context.Context) *ToolCall {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ToolCallCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ToolCallCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *ToolCallCreate) defaults() {
	if _, ok := _c.mutation.Status(); !ok {
		v := toolcall.DefaultStatus
		_c.mutation.SetStatus(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := toolcall.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *ToolCallCreate) check() error {
	if _, ok := _c.mutation.ExecutionID(); !ok {
		return &ValidationError{Name: "execution_id", err: errors.New(`ent: missing required field "ToolCall.execution_id"`)}
	}
	if _, ok := _c.mutation.ToolName(); !ok {
		return &ValidationError{Name: "tool_name", err: errors.New(`ent: missing required field "ToolCall.tool_name"`)}
	}
	if _, ok := _c.mutation.Status(); !ok {
		return &ValidationError{Name: "status", err: errors.New(`ent: missing required field "ToolCall.status"`)}
	}
	if v, ok := _c.mutation.Status(); ok {
		if err := toolcall.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "ToolCall.status": %w`, err)}
		}
	}
	if _, ok := _c.mutation.FactoryCluster(); !ok {
		return &ValidationError{Name: "factory_cluster", err: errors.New(`ent: missing required field "ToolCall.factory_cluster"`)}
	}
	if _, ok := _c.mutation.StartedAt(); !ok {
		return &ValidationError{Name: "started_at", err: errors.New(`ent: missing required field "ToolCall.started_at"`)}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "ToolCall.created_at"`)}
	}
	return nil
}

func (_c *ToolCallCreate) sqlSave(ctx context.Context) (*ToolCall, error) {
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
			return nil, fmt.Errorf("unexpected ToolCall.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *ToolCallCreate) createSpec() (*ToolCall, *sqlgraph.CreateSpec) {
	var (
		_node = &ToolCall{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(toolcall.Table, sqlgraph.NewFieldSpec(toolcall.FieldID, field.TypeString))
	)
	_spec.OnConflict = _c.conflict
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.ExecutionID(); ok {
		_spec.SetField(toolcall.FieldExecutionID, field.TypeString, value)
		_node.ExecutionID = value
	}
	if value, ok := _c.mutation.StepID(); ok {
		_spec.SetField(toolcall.FieldStepID, field.TypeString, value)
		_node.StepID = &value
	}
	if value, ok := _c.mutation.ToolName(); ok {
		_spec.SetField(toolcall.FieldToolName, field.TypeString, value)
		_node.ToolName = value
	}
	if value, ok := _c.mutation.Parameters(); ok {
		_spec.SetField(toolcall.FieldParameters, field.TypeJSON, value)
		_node.Parameters = value
	}
	if value, ok := _c.mutation.Response(); ok {
		_spec.SetField(toolcall.FieldResponse, field.TypeJSON, value)
		_node.Response = value
	}
	if value, ok := _c.mutation.Status(); ok {
		_spec.SetField(toolcall.FieldStatus, field.TypeEnum, value)
		_node.Status = value
	}
	if value, ok := _c.mutation.Error(); ok {
		_spec.SetField(toolcall.FieldError, field.TypeString, value)
		_node.Error = &value
	}
	if value, ok := _c.mutation.DurationMs(); ok {
		_spec.SetField(toolcall.FieldDurationMs, field.TypeInt, value)
		_node.DurationMs = &value
	}
	if value, ok := _c.mutation.FactoryCluster(); ok {
		_spec.SetField(toolcall.FieldFactoryCluster, field.TypeString, value)
		_node.FactoryCluster = value
	}
	if value, ok := _c.mutation.StartedAt(); ok {
		_spec.SetField(toolcall.FieldStartedAt, field.TypeTime, value)
		_node.StartedAt = value
	}
	if value, ok := _c.mutation.CompletedAt(); ok {
		_spec.SetField(toolcall.FieldCompletedAt, field.TypeTime, value)
		_node.CompletedAt = &value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(toolcall.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	return _node, _spec
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.ToolCall.Create().
//		SetExecutionID(v).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.ToolCallUpsert) {
//			SetExecutionID(v+v).
//		}).
//		Exec(ctx)
func (_c *ToolCallCreate) OnConflict(opts ...sql.ConflictOption) *ToolCallUpsertOne {
	_c.conflict = opts
	return &ToolCallUpsertOne{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.ToolCall.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *ToolCallCreate) OnConflictColumns(columns ...string) *ToolCallUpsertOne {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &ToolCallUpsertOne{
		create: _c,
	}
}

type (
	// ToolCallUpsertOne is the builder for "upsert"-ing
	//  one ToolCall node.
	ToolCallUpsertOne struct {
		create *ToolCallCreate
	}

	// ToolCallUpsert is the "OnConflict" setter.
	ToolCallUpsert struct {
		*sql.UpdateSet
	}
)

// SetExecutionID sets the "execution_id" field.
func (u *ToolCallUpsert) SetExecutionID(v string) *ToolCallUpsert {
	u.Set(toolcall.FieldExecutionID, v)
	return u
}

// UpdateExecutionID sets the "execution_id" field to the value that was provided on create.
func (u *ToolCallUpsert) UpdateExecutionID() *ToolCallUpsert {
	u.SetExcluded(toolcall.FieldExecutionID)
	return u
}

// SetStepID sets the "step_id" field.
func (u *ToolCallUpsert) SetStepID(v string) *ToolCallUpsert {
	u.Set(toolcall.FieldStepID, v)
	return u
}

// UpdateStepID sets the "step_id" field to the value that was provided on create.
func (u *ToolCallUpsert) UpdateStepID() *ToolCallUpsert {
	u.SetExcluded(toolcall.FieldStepID)
	return u
}

// ClearStepID clears the value of the "step_id" field.
func (u *ToolCallUpsert) ClearStepID() *ToolCallUpsert {
	u.SetNull(toolcall.FieldStepID)
	return u
}

// SetToolName sets the "tool_name" field.
func (u *ToolCallUpsert) SetToolName(v string) *ToolCallUpsert {
	u.Set(toolcall.FieldToolName, v)
	return u
}

// UpdateToolName sets the "tool_name" field to the value that was provided on create.
func (u *ToolCallUpsert) UpdateToolName() *ToolCallUpsert {
	u.SetExcluded(toolcall.FieldToolName)
	return u
}

// SetParameters sets the "parameters" field.
func (u *ToolCallUpsert) SetParameters(v map[string]interface{}) *ToolCallUpsert {
	u.Set(toolcall.FieldParameters, v)
	return u
}

// UpdateParameters sets the "parameters" field to the value that was provided on create.
func (u *ToolCallUpsert) UpdateParameters() *ToolCallUpsert {
	u.SetExcluded(toolcall.FieldParameters)
	return u
}

// ClearParameters clears the value of the "parameters" field.
func (u *ToolCallUpsert) ClearParameters() *ToolCallUpsert {
	u.SetNull(toolcall.FieldParameters)
	return u
}

// SetResponse sets the "response" field.
func (u *ToolCallUpsert) SetResponse(v map[string]interface{}) *ToolCallUpsert {
	u.Set(toolcall.FieldResponse, v)
	return u
}

// UpdateResponse sets the "response" field to the value that was provided on create.
func (u *ToolCallUpsert) UpdateResponse() *ToolCallUpsert {
	u.SetExcluded(toolcall.FieldResponse)
	return u
}

// ClearResponse clears the value of the "response" field.
func (u *ToolCallUpsert) ClearResponse() *ToolCallUpsert {
	u.SetNull(toolcall.FieldResponse)
	return u
}

// SetStatus sets the "status" field.
func (u *ToolCallUpsert) SetStatus(v toolcall.Status) *ToolCallUpsert {
	u.Set(toolcall.FieldStatus, v)
	return u
}

// UpdateStatus sets the "status" field to the value that was provided on create.
func (u *ToolCallUpsert) UpdateStatus() *ToolCallUpsert {
	u.SetExcluded(toolcall.FieldStatus)
	return u
}

// SetError sets the "error" field.
func (u *ToolCallUpsert) SetError(v string) *ToolCallUpsert {
	u.Set(toolcall.FieldError, v)
	return u
}

// UpdateError sets the "error" field to the value that was provided on create.
func (u *ToolCallUpsert) UpdateError() *ToolCallUpsert {
	u.SetExcluded(toolcall.FieldError)
	return u
}

// ClearError clears the value of the "error" field.
func (u *ToolCallUpsert) ClearError() *ToolCallUpsert {
	u.SetNull(toolcall.FieldError)
	return u
}

// SetDurationMs sets the "duration_ms" field.
func (u *ToolCallUpsert) SetDurationMs(v int) *ToolCallUpsert {
	u.Set(toolcall.FieldDurationMs, v)
	return u
}

// UpdateDurationMs sets the "duration_ms" field to the value that was provided on create.
func (u *ToolCallUpsert) UpdateDurationMs() *ToolCallUpsert {
	u.SetExcluded(toolcall.FieldDurationMs)
	return u
}

// AddDurationMs adds v to the "duration_ms" field.
func (u *ToolCallUpsert) AddDurationMs(v int) *ToolCallUpsert {
	u.Add(toolcall.FieldDurationMs, v)
	return u
}

// ClearDurationMs clears the value of the "duration_ms" field.
func (u *ToolCallUpsert) ClearDurationMs() *ToolCallUpsert {
	u.SetNull(toolcall.FieldDurationMs)
	return u
}

// SetFactoryCluster sets the "factory_cluster" field.
func (u *ToolCallUpsert) SetFactoryCluster(v string) *ToolCallUpsert {
	u.Set(toolcall.FieldFactoryCluster, v)
	return u
}

// UpdateFactoryCluster sets the "factory_cluster" field to the value that was provided on create.
func (u *ToolCallUpsert) UpdateFactoryCluster() *ToolCallUpsert {
	u.SetExcluded(toolcall.FieldFactoryCluster)
	return u
}

// SetStartedAt sets the "started_at" field.
func (u *ToolCallUpsert) SetStartedAt(v time.Time) *ToolCallUpsert {
	u.Set(toolcall.FieldStartedAt, v)
	return u
}

// UpdateStartedAt sets the "started_at" field to the value that was provided on create.
func (u *ToolCallUpsert) UpdateStartedAt() *ToolCallUpsert {
	u.SetExcluded(toolcall.FieldStartedAt)
	return u
}

// SetCompletedAt sets the "completed_at" field.
func (u *ToolCallUpsert) SetCompletedAt(v time.Time) *ToolCallUpsert {
	u.Set(toolcall.FieldCompletedAt, v)
	return u
}

// UpdateCompletedAt sets the "completed_at" field to the value that was provided on create.
func (u *ToolCallUpsert) UpdateCompletedAt() *ToolCallUpsert {
	u.SetExcluded(toolcall.FieldCompletedAt)
	return u
}

// ClearCompletedAt clears the value of the "completed_at" field.
func (u *ToolCallUpsert) ClearCompletedAt() *ToolCallUpsert {
	u.SetNull(toolcall.FieldCompletedAt)
	return u
}

// UpdateNewValues updates the mutable fields using the new values that were set on create except the ID field.
// Using this option is equivalent to using:
//
//	client.ToolCall.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(toolcall.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *ToolCallUpsertOne) UpdateNewValues() *ToolCallUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		if _, exists := u.create.mutation.ID(); exists {
			s.SetIgnore(toolcall.FieldID)
		}
		if _, exists := u.create.mutation.CreatedAt(); exists {
			s.SetIgnore(toolcall.FieldCreatedAt)
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.ToolCall.Create().
//	    OnConflict(sql.ResolveWithIgnore()).
//	    Exec(ctx)
func (u *ToolCallUpsertOne) Ignore() *ToolCallUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *ToolCallUpsertOne) DoNothing() *ToolCallUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the ToolCallCreate.OnConflict
// documentation for more info.
func (u *ToolCallUpsertOne) Update(set func(*ToolCallUpsert)) *ToolCallUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&ToolCallUpsert{UpdateSet: update})
	}))
	return u
}

// SetExecutionID sets the "execution_id" field.
func (u *ToolCallUpsertOne) SetExecutionID(v string) *ToolCallUpsertOne {
	return u.Update(func(s *ToolCallUpsert) {
		s.SetExecutionID(v)
	})
}

// UpdateExecutionID sets the "execution_id" field to the value that was provided on create.
func (u *ToolCallUpsertOne) UpdateExecutionID() *ToolCallUpsertOne {
	return u.Update(func(s *ToolCallUpsert) {
		s.UpdateExecutionID()
	})
}

// SetStepID sets the "step_id" field.
func (u *ToolCallUpsertOne) SetStepID(v string) *ToolCallUpsertOne {
	return u.Update(func(s *ToolCallUpsert) {
		s.SetStepID(v)
	})
}

// UpdateStepID sets the "step_id" field to the value that was provided on create.
func (u *ToolCallUpsertOne) UpdateStepID() *ToolCallUpsertOne {
	return u.Update(func(s *ToolCallUpsert) {
		s.UpdateStepID()
	})
}

// ClearStepID clears the value of the "step_id" field.
func (u *ToolCallUpsertOne) ClearStepID() *ToolCallUpsertOne {
	return u.Update(func(s *ToolCallUpsert) {
		s.ClearStepID()
	})
}

// SetToolName sets the "tool_name" field.
func (u *ToolCallUpsertOne) SetToolName(v string) *ToolCallUpsertOne {
	return u.Update(func(s *ToolCallUpsert) {
		s.SetToolName(v)
	})
}

// UpdateToolName sets the "tool_name" field to the value that was provided on create.
func (u *ToolCallUpsertOne) UpdateToolName() *ToolCallUpsertOne {
	return u.Update(func(s *ToolCallUpsert) {
		s.UpdateToolName()
	})
}

// SetParameters sets the "parameters" field.
func (u *ToolCallUpsertOne) SetParameters(v map[string]interface{}) *ToolCallUpsertOne {
	return u.Update(func(s *ToolCallUpsert) {
		s.SetParameters(v)
	})
}

// UpdateParameters sets the "parameters" field to the value that was provided on create.
func (u *ToolCallUpsertOne) UpdateParameters() *ToolCallUpsertOne {
	return u.Update(func(s *ToolCallUpsert) {
		s.UpdateParameters()
	})
}

// ClearParameters clears the value of the "parameters" field.
func (u *ToolCallUpsertOne) ClearParameters() *ToolCallUpsertOne {
	return u.Update(func(s *ToolCallUpsert) {
		s.ClearParameters()
	})
}

// SetResponse sets the "response" field.
func (u *ToolCallUpsertOne) SetResponse(v map[string]interface{}) *ToolCallUpsertOne {
	return u.Update(func(s *ToolCallUpsert) {
		s.SetResponse(v)
	})
}

// UpdateResponse sets the "response" field to the value that was provided on create.
func (u *ToolCallUpsertOne) UpdateResponse() *ToolCallUpsertOne {
	return u.Update(func(s *ToolCallUpsert) {
		s.UpdateResponse()
	})
}

// ClearResponse clears the value of the "response" field.
func (u *ToolCallUpsertOne) ClearResponse() *ToolCallUpsertOne {
	return u.Update(func(s *ToolCallUpsert) {
		s.ClearResponse()
	})
}

// SetStatus sets the "status" field.
func (u *ToolCallUpsertOne) SetStatus(v toolcall.Status) *ToolCallUpsertOne {
	return u.Update(func(s *ToolCallUpsert) {
		s.SetStatus(v)
	})
}

// UpdateStatus sets the "status" field to the value that was provided on create.
func (u *ToolCallUpsertOne) UpdateStatus() *ToolCallUpsertOne {
	return u.Update(func(s *ToolCallUpsert) {
		s.UpdateStatus()
	})
}

// SetError sets the "error" field.
func (u *ToolCallUpsertOne) SetError(v string) *ToolCallUpsertOne {
	return u.Update(func(s *ToolCallUpsert) {
		s.SetError(v)
	})
}

// UpdateError sets the "error" field to the value that was provided on create.
func (u *ToolCallUpsertOne) UpdateError() *ToolCallUpsertOne {
	return u.Update(func(s *ToolCallUpsert) {
		s.UpdateError()
	})
}

// ClearError clears the value of the "error" field.
func (u *ToolCallUpsertOne) ClearError() *ToolCallUpsertOne {
	return u.Update(func(s *ToolCallUpsert) {
		s.ClearError()
	})
}

// SetDurationMs sets the "duration_ms" field.
func (u *ToolCallUpsertOne) SetDurationMs(v int) *ToolCallUpsertOne {
	return u.Update(func(s *ToolCallUpsert) {
		s.SetDurationMs(v)
	})
}

// AddDurationMs adds v to the "duration_ms" field.
func (u *ToolCallUpsertOne) AddDurationMs(v int) *ToolCallUpsertOne {
	return u.Update(func(s *ToolCallUpsert) {
		s.AddDurationMs(v)
	})
}

// UpdateDurationMs sets the "duration_ms" field to the value that was provided on create.
func (u *ToolCallUpsertOne) UpdateDurationMs() *ToolCallUpsertOne {
	return u.Update(func(s *ToolCallUpsert) {
		s.UpdateDurationMs()
	})
}

// ClearDurationMs clears the value of the "duration_ms" field.
func (u *ToolCallUpsertOne) ClearDurationMs() *ToolCallUpsertOne {
	return u.Update(func(s *ToolCallUpsert) {
		s.ClearDurationMs()
	})
}

// SetFactoryCluster sets the "factory_cluster" field.
func (u *ToolCallUpsertOne) SetFactoryCluster(v string) *ToolCallUpsertOne {
	return u.Update(func(s *ToolCallUpsert) {
		s.SetFactoryCluster(v)
	})
}

// UpdateFactoryCluster sets the "factory_cluster" field to the value that was provided on create.
func (u *ToolCallUpsertOne) UpdateFactoryCluster() *ToolCallUpsertOne {
	return u.Update(func(s *ToolCallUpsert) {
		s.UpdateFactoryCluster()
	})
}

// SetStartedAt sets the "started_at" field.
func (u *ToolCallUpsertOne) SetStartedAt(v time.Time) *ToolCallUpsertOne {
	return u.Update(func(s *ToolCallUpsert) {
		s.SetStartedAt(v)
	})
}

// UpdateStartedAt sets the "started_at" field to the value that was provided on create.
func (u *ToolCallUpsertOne) UpdateStartedAt() *ToolCallUpsertOne {
	return u.Update(func(s *ToolCallUpsert) {
		s.UpdateStartedAt()
	})
}

// SetCompletedAt sets the "completed_at" field.
func (u *ToolCallUpsertOne) SetCompletedAt(v time.Time) *ToolCallUpsertOne {
	return u.Update(func(s *ToolCallUpsert) {
		s.SetCompletedAt(v)
	})
}

// UpdateCompletedAt sets the "completed_at" field to the value that was provided on create.
func (u *ToolCallUpsertOne) UpdateCompletedAt() *ToolCallUpsertOne {
	return u.Update(func(s *ToolCallUpsert) {
		s.UpdateCompletedAt()
	})
}

// ClearCompletedAt clears the value of the "completed_at" field.
func (u *ToolCallUpsertOne) ClearCompletedAt() *ToolCallUpsertOne {
	return u.Update(func(s *ToolCallUpsert) {
		s.ClearCompletedAt()
	})
}

// Exec executes the query.
func (u *ToolCallUpsertOne) Exec(ctx context.Context) error {
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for ToolCallCreate.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *ToolCallUpsertOne) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}

// Exec executes the UPSERT query and returns the inserted/updated ID.
func (u *ToolCallUpsertOne) ID(ctx context.Context) (id string, err error) {
	if u.create.driver.Dialect() == dialect.MySQL {
		// In case of "ON CONFLICT", there is no way to get back non-numeric ID
		// fields from the database since MySQL does not support the RETURNING clause.
		return id, errors.New("ent: ToolCallUpsertOne.ID is not supported by MySQL driver. Use ToolCallUpsertOne.Exec instead")
	}
	node, err := u.create.Save(ctx)
	if err != nil {
		return id, err
	}
	return node.ID, nil
}

// IDX is like ID, but panics if an error occurs.
func (u *ToolCallUpsertOne) IDX(ctx context.Context) string {
	id, err := u.ID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// ToolCallCreateBulk is the builder for creating many ToolCall entities in bulk.
type ToolCallCreateBulk struct {
	config
	err      error
	builders []*ToolCallCreate
	conflict []sql.ConflictOption
}

// Save creates the ToolCall entities in the database.
func (_c *ToolCallCreateBulk) Save(ctx context.Context) ([]*ToolCall, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*ToolCall, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*ToolCallMutation)
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
func (_c *ToolCallCreateBulk) SaveX(ctx context.Context) []*ToolCall {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ToolCallCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ToolCallCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.ToolCall.CreateBulk(builders...).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.ToolCallUpsert) {
//			SetExecutionID(v+v).
//		}).
//		Exec(ctx)
func (_c *ToolCallCreateBulk) OnConflict(opts ...sql.ConflictOption) *ToolCallUpsertBulk {
	_c.conflict = opts
	return &ToolCallUpsertBulk{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.ToolCall.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *ToolCallCreateBulk) OnConflictColumns(columns ...string) *ToolCallUpsertBulk {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &ToolCallUpsertBulk{
		create: _c,
	}
}

// ToolCallUpsertBulk is the builder for "upsert"-ing
// a bulk of ToolCall nodes.
type ToolCallUpsertBulk struct {
	create *ToolCallCreateBulk
}

// UpdateNewValues updates the mutable fields using the new values that
// were set on create. Using this option is equivalent to using:
//
//	client.ToolCall.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(toolcall.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *ToolCallUpsertBulk) UpdateNewValues() *ToolCallUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		for _, b := range u.create.builders {
			if _, exists := b.mutation.ID(); exists {
				s.SetIgnore(toolcall.FieldID)
			}
			if _, exists := b.mutation.CreatedAt(); exists {
				s.SetIgnore(toolcall.FieldCreatedAt)
			}
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.ToolCall.Create().
//		OnConflict(sql.ResolveWithIgnore()).
//		Exec(ctx)
func (u *ToolCallUpsertBulk) Ignore() *ToolCallUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *ToolCallUpsertBulk) DoNothing() *ToolCallUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the ToolCallCreateBulk.OnConflict
// documentation for more info.
func (u *ToolCallUpsertBulk) Update(set func(*ToolCallUpsert)) *ToolCallUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&ToolCallUpsert{UpdateSet: update})
	}))
	return u
}

// SetExecutionID sets the "execution_id" field.
func (u *ToolCallUpsertBulk) SetExecutionID(v string) *ToolCallUpsertBulk {
	return u.Update(func(s *ToolCallUpsert) {
		s.SetExecutionID(v)
	})
}

// UpdateExecutionID sets the "execution_id" field to the value that was provided on create.
func (u *ToolCallUpsertBulk) UpdateExecutionID() *ToolCallUpsertBulk {
	return u.Update(func(s *ToolCallUpsert) {
		s.UpdateExecutionID()
	})
}

// SetStepID sets the "step_id" field.
func (u *ToolCallUpsertBulk) SetStepID(v string) *ToolCallUpsertBulk {
	return u.Update(func(s *ToolCallUpsert) {
		s.SetStepID(v)
	})
}

// UpdateStepID sets the "step_id" field to the value that was provided on create.
func (u *ToolCallUpsertBulk) UpdateStepID() *ToolCallUpsertBulk {
	return u.Update(func(s *ToolCallUpsert) {
		s.UpdateStepID()
	})
}

// ClearStepID clears the value of the "step_id" field.
func (u *ToolCallUpsertBulk) ClearStepID() *ToolCallUpsertBulk {
	return u.Update(func(s *ToolCallUpsert) {
		s.ClearStepID()
	})
}

// SetToolName sets the "tool_name" field.
func (u *ToolCallUpsertBulk) SetToolName(v string) *ToolCallUpsertBulk {
	return u.Update(func(s *ToolCallUpsert) {
		s.SetToolName(v)
	})
}

// UpdateToolName sets the "tool_name" field to the value that was provided on create.
func (u *ToolCallUpsertBulk) UpdateToolName() *ToolCallUpsertBulk {
	return u.Update(func(s *ToolCallUpsert) {
		s.UpdateToolName()
	})
}

// SetParameters sets the "parameters" field.
func (u *ToolCallUpsertBulk) SetParameters(v map[string]interface{}) *ToolCallUpsertBulk {
	return u.Update(func(s *ToolCallUpsert) {
		s.SetParameters(v)
	})
}

// UpdateParameters sets the "parameters" field to the value that was provided on create.
func (u *ToolCallUpsertBulk) UpdateParameters() *ToolCallUpsertBulk {
	return u.Update(func(s *ToolCallUpsert) {
		s.UpdateParameters()
	})
}

// ClearParameters clears the value of the "parameters" field.
func (u *ToolCallUpsertBulk) ClearParameters() *ToolCallUpsertBulk {
	return u.Update(func(s *ToolCallUpsert) {
		s.ClearParameters()
	})
}

// SetResponse sets the "response" field.
func (u *ToolCallUpsertBulk) SetResponse(v map[string]interface{}) *ToolCallUpsertBulk {
	return u.Update(func(s *ToolCallUpsert) {
		s.SetResponse(v)
	})
}

// UpdateResponse sets the "response" field to the value that was provided on create.
func (u *ToolCallUpsertBulk) UpdateResponse() *ToolCallUpsertBulk {
	return u.Update(func(s *ToolCallUpsert) {
		s.UpdateResponse()
	})
}

// ClearResponse clears the value of the "response" field.
func (u *ToolCallUpsertBulk) ClearResponse() *ToolCallUpsertBulk {
	return u.Update(func(s *ToolCallUpsert) {
		s.ClearResponse()
	})
}

// SetStatus sets the "status" field.
func (u *ToolCallUpsertBulk) SetStatus(v toolcall.Status) *ToolCallUpsertBulk {
	return u.Update(func(s *ToolCallUpsert) {
		s.SetStatus(v)
	})
}

// UpdateStatus sets the "status" field to the value that was provided on create.
func (u *ToolCallUpsertBulk) UpdateStatus() *ToolCallUpsertBulk {
	return u.Update(func(s *ToolCallUpsert) {
		s.UpdateStatus()
	})
}

// SetError sets the "error" field.
func (u *ToolCallUpsertBulk) SetError(v string) *ToolCallUpsertBulk {
	return u.Update(func(s *ToolCallUpsert) {
		s.SetError(v)
	})
}

// UpdateError sets the "error" field to the value that was provided on create.
func (u *ToolCallUpsertBulk) UpdateError() *ToolCallUpsertBulk {
	return u.Update(func(s *ToolCallUpsert) {
		s.UpdateError()
	})
}

// ClearError clears the value of the "error" field.
func (u *ToolCallUpsertBulk) ClearError() *ToolCallUpsertBulk {
	return u.Update(func(s *ToolCallUpsert) {
		s.ClearError()
	})
}

// SetDurationMs sets the "duration_ms" field.
func (u *ToolCallUpsertBulk) SetDurationMs(v int) *ToolCallUpsertBulk {
	return u.Update(func(s *ToolCallUpsert) {
		s.SetDurationMs(v)
	})
}

// AddDurationMs adds v to the "duration_ms" field.
func (u *ToolCallUpsertBulk) AddDurationMs(v int) *ToolCallUpsertBulk {
	return u.Update(func(s *ToolCallUpsert) {
		s.AddDurationMs(v)
	})
}

// UpdateDurationMs sets the "duration_ms" field to the value that was provided on create.
func (u *ToolCallUpsertBulk) UpdateDurationMs() *ToolCallUpsertBulk {
	return u.Update(func(s *ToolCallUpsert) {
		s.UpdateDurationMs()
	})
}

// ClearDurationMs clears the value of the "duration_ms" field.
func (u *ToolCallUpsertBulk) ClearDurationMs() *ToolCallUpsertBulk {
	return u.Update(func(s *ToolCallUpsert) {
		s.ClearDurationMs()
	})
}

// SetFactoryCluster sets the "factory_cluster" field.
func (u *ToolCallUpsertBulk) SetFactoryCluster(v string) *ToolCallUpsertBulk {
	return u.Update(func(s *ToolCallUpsert) {
		s.SetFactoryCluster(v)
	})
}

// UpdateFactoryCluster sets the "factory_cluster" field to the value that was provided on create.
func (u *ToolCallUpsertBulk) UpdateFactoryCluster() *ToolCallUpsertBulk {
	return u.Update(func(s *ToolCallUpsert) {
		s.UpdateFactoryCluster()
	})
}

// SetStartedAt sets the "started_at" field.
func (u *ToolCallUpsertBulk) SetStartedAt(v time.Time) *ToolCallUpsertBulk {
	return u.Update(func(s *ToolCallUpsert) {
		s.SetStartedAt(v)
	})
}

// UpdateStartedAt sets the "started_at" field to the value that was provided on create.
func (u *ToolCallUpsertBulk) UpdateStartedAt() *ToolCallUpsertBulk {
	return u.Update(func(s *ToolCallUpsert) {
		s.UpdateStartedAt()
	})
}

// SetCompletedAt sets the "completed_at" field.
func (u *ToolCallUpsertBulk) SetCompletedAt(v time.Time) *ToolCallUpsertBulk {
	return u.Update(func(s *ToolCallUpsert) {
		s.SetCompletedAt(v)
	})
}

// UpdateCompletedAt sets the "completed_at" field to the value that was provided on create.
func (u *ToolCallUpsertBulk) UpdateCompletedAt() *ToolCallUpsertBulk {
	return u.Update(func(s *ToolCallUpsert) {
		s.UpdateCompletedAt()
	})
}

// ClearCompletedAt clears the value of the "completed_at" field.
func (u *ToolCallUpsertBulk) ClearCompletedAt() *ToolCallUpsertBulk {
	return u.Update(func(s *ToolCallUpsert) {
		s.ClearCompletedAt()
	})
}

// Exec executes the query.
func (u *ToolCallUpsertBulk) Exec(ctx context.Context) error {
	if u.create.err != nil {
		return u.create.err
	}
	for i, b := range u.create.builders {
		if len(b.conflict) != 0 {
			return fmt.Errorf("ent: OnConflict was set for builder %d. Set it on the ToolCallCreateBulk instead", i)
		}
	}
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for ToolCallCreateBulk.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *ToolCallUpsertBulk) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}
