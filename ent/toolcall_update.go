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
	"github.com/cortexops/playbookd/ent/toolcall"
)

// ToolCallUpdate is the builder for updating ToolCall entities.
type ToolCallUpdate struct {
	config
	hooks    []Hook
	mutation *ToolCallMutation
}

// Where appends a list predicates to the ToolCallUpdate builder.
func (_u *ToolCallUpdate) Where(ps ...predicate.ToolCall) *ToolCallUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetExecutionID sets the "execution_id" field.
func (_u *ToolCallUpdate) SetExecutionID(v string) *ToolCallUpdate {
	_u.mutation.SetExecutionID(v)
	return _u
}

// SetNillableExecutionID sets the "execution_id" field if the given value is not nil.
func (_u *ToolCallUpdate) SetNillableExecutionID(v *string) *ToolCallUpdate {
	if v != nil {
		_u.SetExecutionID(*v)
	}
	return _u
}

// SetStepID sets the "step_id" field.
func (_u *ToolCallUpdate) SetStepID(v string) *ToolCallUpdate {
	_u.mutation.SetStepID(v)
	return _u
}

// SetNillableStepID sets the "step_id" field if the given value is not nil.
func (_u *ToolCallUpdate) SetNillableStepID(v *string) *ToolCallUpdate {
	if v != nil {
		_u.SetStepID(*v)
	}
	return _u
}

// ClearStepID clears the value of the "step_id" field.
func (_u *ToolCallUpdate) ClearStepID() *ToolCallUpdate {
	_u.mutation.ClearStepID()
	return _u
}

// SetToolName sets the "tool_name" field.
func (_u *ToolCallUpdate) SetToolName(v string) *ToolCallUpdate {
	_u.mutation.SetToolName(v)
	return _u
}

// SetNillableToolName sets the "tool_name" field if the given value is not nil.
func (_u *ToolCallUpdate) SetNillableToolName(v *string) *ToolCallUpdate {
	if v != nil {
		_u.SetToolName(*v)
	}
	return _u
}

// SetParameters sets the "parameters" field.
func (_u *ToolCallUpdate) SetParameters(v map[string]interface{}) *ToolCallUpdate {
	_u.mutation.SetParameters(v)
	return _u
}

// ClearParameters clears the value of the "parameters" field.
func (_u *ToolCallUpdate) ClearParameters() *ToolCallUpdate {
	_u.mutation.ClearParameters()
	return _u
}

// SetResponse sets the "response" field.
func (_u *ToolCallUpdate) SetResponse(v map[string]interface{}) *ToolCallUpdate {
	_u.mutation.SetResponse(v)
	return _u
}

// ClearResponse clears the value of the "response" field.
func (_u *ToolCallUpdate) ClearResponse() *ToolCallUpdate {
	_u.mutation.ClearResponse()
	return _u
}

// SetStatus sets the "status" field.
func (_u *ToolCallUpdate) SetStatus(v toolcall.Status) *ToolCallUpdate {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *ToolCallUpdate) SetNillableStatus(v *toolcall.Status) *ToolCallUpdate {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetError sets the "error" field.
func (_u *ToolCallUpdate) SetError(v string) *ToolCallUpdate {
	_u.mutation.SetError(v)
	return _u
}

// SetNillableError sets the "error" field if the given value is not nil.
func (_u *ToolCallUpdate) SetNillableError(v *string) *ToolCallUpdate {
	if v != nil {
		_u.SetError(*v)
	}
	return _u
}

// ClearError clears the value of the "error" field.
func (_u *ToolCallUpdate) ClearError() *ToolCallUpdate {
	_u.mutation.ClearError()
	return _u
}

// SetDurationMs sets the "duration_ms" field.
func (_u *ToolCallUpdate) SetDurationMs(v int) *ToolCallUpdate {
	_u.mutation.ResetDurationMs()
	_u.mutation.SetDurationMs(v)
	return _u
}

// SetNillableDurationMs sets the "duration_ms" field if the given value is not nil.
func (_u *ToolCallUpdate) SetNillableDurationMs(v *int) *ToolCallUpdate {
	if v != nil {
		_u.SetDurationMs(*v)
	}
	return _u
}

// AddDurationMs adds value to the "duration_ms" field.
func (_u *ToolCallUpdate) AddDurationMs(v int) *ToolCallUpdate {
	_u.mutation.AddDurationMs(v)
	return _u
}

// ClearDurationMs clears the value of the "duration_ms" field.
func (_u *ToolCallUpdate) ClearDurationMs() *ToolCallUpdate {
	_u.mutation.ClearDurationMs()
	return _u
}

// SetFactoryCluster sets the "factory_cluster" field.
func (_u *ToolCallUpdate) SetFactoryCluster(v string) *ToolCallUpdate {
	_u.mutation.SetFactoryCluster(v)
	return _u
}

// SetNillableFactoryCluster sets the "factory_cluster" field if the given value is not nil.
func (_u *ToolCallUpdate) SetNillableFactoryCluster(v *string) *ToolCallUpdate {
	if v != nil {
		_u.SetFactoryCluster(*v)
	}
	return _u
}

// SetStartedAt sets the "started_at" field.
func (_u *ToolCallUpdate) SetStartedAt(v time.Time) *ToolCallUpdate {
	_u.mutation.SetStartedAt(v)
	return _u
}

// SetNillableStartedAt sets the "started_at" field if the given value is not nil.
func (_u *ToolCallUpdate) SetNillableStartedAt(v *time.Time) *ToolCallUpdate {
	if v != nil {
		_u.SetStartedAt(*v)
	}
	return _u
}

// SetCompletedAt sets the "completed_at" field.
func (_u *ToolCallUpdate) SetCompletedAt(v time.Time) *ToolCallUpdate {
	_u.mutation.SetCompletedAt(v)
	return _u
}

// SetNillableCompletedAt sets the "completed_at" field if the given value is not nil.
func (_u *ToolCallUpdate) SetNillableCompletedAt(v *time.Time) *ToolCallUpdate {
	if v != nil {
		_u.SetCompletedAt(*v)
	}
	return _u
}

// ClearCompletedAt clears the value of the "completed_at" field.
func (_u *ToolCallUpdate) ClearCompletedAt() *ToolCallUpdate {
	_u.mutation.ClearCompletedAt()
	return _u
}

// Mutation returns the ToolCallMutation object of the builder.
func (_u *ToolCallUpdate) Mutation() *ToolCallMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *ToolCallUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ToolCallUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *ToolCallUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ToolCallUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ToolCallUpdate) check() error {
	if v, ok := _u.mutation.Status(); ok {
		if err := toolcall.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "ToolCall.status": %w`, err)}
		}
	}
	return nil
}

func (_u *ToolCallUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(toolcall.Table, toolcall.Columns, sqlgraph.NewFieldSpec(toolcall.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.ExecutionID(); ok {
		_spec.SetField(toolcall.FieldExecutionID, field.TypeString, value)
	}
	if value, ok := _u.mutation.StepID(); ok {
		_spec.SetField(toolcall.FieldStepID, field.TypeString, value)
	}
	if _u.mutation.StepIDCleared() {
		_spec.ClearField(toolcall.FieldStepID, field.TypeString)
	}
	if value, ok := _u.mutation.ToolName(); ok {
		_spec.SetField(toolcall.FieldToolName, field.TypeString, value)
	}
	if value, ok := _u.mutation.Parameters(); ok {
		_spec.SetField(toolcall.FieldParameters, field.TypeJSON, value)
	}
	if _u.mutation.ParametersCleared() {
		_spec.ClearField(toolcall.FieldParameters, field.TypeJSON)
	}
	if value, ok := _u.mutation.Response(); ok {
		_spec.SetField(toolcall.FieldResponse, field.TypeJSON, value)
	}
	if _u.mutation.ResponseCleared() {
		_spec.ClearField(toolcall.FieldResponse, field.TypeJSON)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(toolcall.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.Error(); ok {
		_spec.SetField(toolcall.FieldError, field.TypeString, value)
	}
	if _u.mutation.ErrorCleared() {
		_spec.ClearField(toolcall.FieldError, field.TypeString)
	}
	if value, ok := _u.mutation.DurationMs(); ok {
		_spec.SetField(toolcall.FieldDurationMs, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedDurationMs(); ok {
		_spec.AddField(toolcall.FieldDurationMs, field.TypeInt, value)
	}
	if _u.mutation.DurationMsCleared() {
		_spec.ClearField(toolcall.FieldDurationMs, field.TypeInt)
	}
	if value, ok := _u.mutation.FactoryCluster(); ok {
		_spec.SetField(toolcall.FieldFactoryCluster, field.TypeString, value)
	}
	if value, ok := _u.mutation.StartedAt(); ok {
		_spec.SetField(toolcall.FieldStartedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.CompletedAt(); ok {
		_spec.SetField(toolcall.FieldCompletedAt, field.TypeTime, value)
	}
	if _u.mutation.CompletedAtCleared() {
		_spec.ClearField(toolcall.FieldCompletedAt, field.TypeTime)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{toolcall.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// ToolCallUpdateOne is the builder for updating a single ToolCall entity.
type ToolCallUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *ToolCallMutation
}

// SetExecutionID sets the "execution_id" field.
func (_u *ToolCallUpdateOne) SetExecutionID(v string) *ToolCallUpdateOne {
	_u.mutation.SetExecutionID(v)
	return _u
}

// SetNillableExecutionID sets the "execution_id" field if the given value is not nil.
func (_u *ToolCallUpdateOne) SetNillableExecutionID(v *string) *ToolCallUpdateOne {
	if v != nil {
		_u.SetExecutionID(*v)
	}
	return _u
}

// SetStepID sets the "step_id" field.
func (_u *ToolCallUpdateOne) SetStepID(v string) *ToolCallUpdateOne {
	_u.mutation.SetStepID(v)
	return _u
}

// SetNillableStepID sets the "step_id" field if the given value is not nil.
func (_u *ToolCallUpdateOne) SetNillableStepID(v *string) *ToolCallUpdateOne {
	if v != nil {
		_u.SetStepID(*v)
	}
	return _u
}

// ClearStepID clears the value of the "step_id" field.
func (_u *ToolCallUpdateOne) ClearStepID() *ToolCallUpdateOne {
	_u.mutation.ClearStepID()
	return _u
}

// SetToolName sets the "tool_name" field.
func (_u *ToolCallUpdateOne) SetToolName(v string) *ToolCallUpdateOne {
	_u.mutation.SetToolName(v)
	return _u
}

// SetNillableToolName sets the "tool_name" field if the given value is not nil.
func (_u *ToolCallUpdateOne) SetNillableToolName(v *string) *ToolCallUpdateOne {
	if v != nil {
		_u.SetToolName(*v)
	}
	return _u
}

// SetParameters sets the "parameters" field.
func (_u *ToolCallUpdateOne) SetParameters(v map[string]interface{}) *ToolCallUpdateOne {
	_u.mutation.SetParameters(v)
	return _u
}

// ClearParameters clears the value of the "parameters" field.
func (_u *ToolCallUpdateOne) ClearParameters() *ToolCallUpdateOne {
	_u.mutation.ClearParameters()
	return _u
}

// SetResponse sets the "response" field.
func (_u *ToolCallUpdateOne) SetResponse(v map[string]interface{}) *ToolCallUpdateOne {
	_u.mutation.SetResponse(v)
	return _u
}

// ClearResponse clears the value of the "response" field.
func (_u *ToolCallUpdateOne) ClearResponse() *ToolCallUpdateOne {
	_u.mutation.ClearResponse()
	return _u
}

// SetStatus sets the "status" field.
func (_u *ToolCallUpdateOne) SetStatus(v toolcall.Status) *ToolCallUpdateOne {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *ToolCallUpdateOne) SetNillableStatus(v *toolcall.Status) *ToolCallUpdateOne {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetError sets the "error" field.
func (_u *ToolCallUpdateOne) SetError(v string) *ToolCallUpdateOne {
	_u.mutation.SetError(v)
	return _u
}

// SetNillableError sets the "error" field if the given value is not nil.
func (_u *ToolCallUpdateOne) SetNillableError(v *string) *ToolCallUpdateOne {
	if v != nil {
		_u.SetError(*v)
	}
	return _u
}

// ClearError clears the value of the "error" field.
func (_u *ToolCallUpdateOne) ClearError() *ToolCallUpdateOne {
	_u.mutation.ClearError()
	return _u
}

// SetDurationMs sets the "duration_ms" field.
func (_u *ToolCallUpdateOne) SetDurationMs(v int) *ToolCallUpdateOne {
	_u.mutation.ResetDurationMs()
	_u.mutation.SetDurationMs(v)
	return _u
}

// SetNillableDurationMs sets the "duration_ms" field if the given value is not nil.
func (_u *ToolCallUpdateOne) SetNillableDurationMs(v *int) *ToolCallUpdateOne {
	if v != nil {
		_u.SetDurationMs(*v)
	}
	return _u
}

// AddDurationMs adds value to the "duration_ms" field.
func (_u *ToolCallUpdateOne) AddDurationMs(v int) *ToolCallUpdateOne {
	_u.mutation.AddDurationMs(v)
	return _u
}

// ClearDurationMs clears the value of the "duration_ms" field.
func (_u *ToolCallUpdateOne) ClearDurationMs() *ToolCallUpdateOne {
	_u.mutation.ClearDurationMs()
	return _u
}

// SetFactoryCluster sets the "factory_cluster" field.
func (_u *ToolCallUpdateOne) SetFactoryCluster(v string) *ToolCallUpdateOne {
	_u.mutation.SetFactoryCluster(v)
	return _u
}

// SetNillableFactoryCluster sets the "factory_cluster" field if the given value is not nil.
func (_u *ToolCallUpdateOne) SetNillableFactoryCluster(v *string) *ToolCallUpdateOne {
	if v != nil {
		_u.SetFactoryCluster(*v)
	}
	return _u
}

// SetStartedAt sets the "started_at" field.
func (_u *ToolCallUpdateOne) SetStartedAt(v time.Time) *ToolCallUpdateOne {
	_u.mutation.SetStartedAt(v)
	return _u
}

// SetNillableStartedAt sets the "started_at" field if the given value is not nil.
func (_u *ToolCallUpdateOne) SetNillableStartedAt(v *time.Time) *ToolCallUpdateOne {
	if v != nil {
		_u.SetStartedAt(*v)
	}
	return _u
}

// SetCompletedAt sets the "completed_at" field.
func (_u *ToolCallUpdateOne) SetCompletedAt(v time.Time) *ToolCallUpdateOne {
	_u.mutation.SetCompletedAt(v)
	return _u
}

// SetNillableCompletedAt sets the "completed_at" field if the given value is not nil.
func (_u *ToolCallUpdateOne) SetNillableCompletedAt(v *time.Time) *ToolCallUpdateOne {
	if v != nil {
		_u.SetCompletedAt(*v)
	}
	return _u
}

// ClearCompletedAt clears the value of the "completed_at" field.
func (_u *ToolCallUpdateOne) ClearCompletedAt() *ToolCallUpdateOne {
	_u.mutation.ClearCompletedAt()
	return _u
}

// Mutation returns the ToolCallMutation object of the builder.
func (_u *ToolCallUpdateOne) Mutation() *ToolCallMutation {
	return _u.mutation
}

// Where appends a list predicates to the ToolCallUpdate builder.
func (_u *ToolCallUpdateOne) Where(ps ...predicate.ToolCall) *ToolCallUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *ToolCallUpdateOne) Select(field string, fields ...string) *ToolCallUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated ToolCall entity.
func (_u *ToolCallUpdateOne) Save(ctx context.Context) (*ToolCall, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ToolCallUpdateOne) SaveX(ctx context.Context) *ToolCall {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *ToolCallUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ToolCallUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ToolCallUpdateOne) check() error {
	if v, ok := _u.mutation.Status(); ok {
		if err := toolcall.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "ToolCall.status": %w`, err)}
		}
	}
	return nil
}

func (_u *ToolCallUpdateOne) sqlSave(ctx context.Context) (_node *ToolCall, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(toolcall.Table, toolcall.Columns, sqlgraph.NewFieldSpec(toolcall.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "ToolCall.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, toolcall.FieldID)
		for _, f := range fields {
			if !toolcall.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != toolcall.FieldID {
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
	if value, ok := _u.mutation.ExecutionID(); ok {
		_spec.SetField(toolcall.FieldExecutionID, field.TypeString, value)
	}
	if value, ok := _u.mutation.StepID(); ok {
		_spec.SetField(toolcall.FieldStepID, field.TypeString, value)
	}
	if _u.mutation.StepIDCleared() {
		_spec.ClearField(toolcall.FieldStepID, field.TypeString)
	}
	if value, ok := _u.mutation.ToolName(); ok {
		_spec.SetField(toolcall.FieldToolName, field.TypeString, value)
	}
	if value, ok := _u.mutation.Parameters(); ok {
		_spec.SetField(toolcall.FieldParameters, field.TypeJSON, value)
	}
	if _u.mutation.ParametersCleared() {
		_spec.ClearField(toolcall.FieldParameters, field.TypeJSON)
	}
	if value, ok := _u.mutation.Response(); ok {
		_spec.SetField(toolcall.FieldResponse, field.TypeJSON, value)
	}
	if _u.mutation.ResponseCleared() {
		_spec.ClearField(toolcall.FieldResponse, field.TypeJSON)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(toolcall.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.Error(); ok {
		_spec.SetField(toolcall.FieldError, field.TypeString, value)
	}
	if _u.mutation.ErrorCleared() {
		_spec.ClearField(toolcall.FieldError, field.TypeString)
	}
	if value, ok := _u.mutation.DurationMs(); ok {
		_spec.SetField(toolcall.FieldDurationMs, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedDurationMs(); ok {
		_spec.AddField(toolcall.FieldDurationMs, field.TypeInt, value)
	}
	if _u.mutation.DurationMsCleared() {
		_spec.ClearField(toolcall.FieldDurationMs, field.TypeInt)
	}
	if value, ok := _u.mutation.FactoryCluster(); ok {
		_spec.SetField(toolcall.FieldFactoryCluster, field.TypeString, value)
	}
	if value, ok := _u.mutation.StartedAt(); ok {
		_spec.SetField(toolcall.FieldStartedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.CompletedAt(); ok {
		_spec.SetField(toolcall.FieldCompletedAt, field.TypeTime, value)
	}
	if _u.mutation.CompletedAtCleared() {
		_spec.ClearField(toolcall.FieldCompletedAt, field.TypeTime)
	}
	_node = &ToolCall{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{toolcall.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
