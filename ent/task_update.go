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
	"github.com/cortexops/playbookd/ent/predicate"
	"github.com/cortexops/playbookd/ent/task"
)

// TaskUpdate is the builder for updating Task entities.
type TaskUpdate struct {
	config
	hooks    []Hook
	mutation *TaskMutation
}

// Where appends a list predicates to the TaskUpdate builder.
func (_u *TaskUpdate) Where(ps ...predicate.Task) *TaskUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetWorkspaceID sets the "workspace_id" field.
func (_u *TaskUpdate) SetWorkspaceID(v string) *TaskUpdate {
	_u.mutation.SetWorkspaceID(v)
	return _u
}

// SetNillableWorkspaceID sets the "workspace_id" field if the given value is not nil.
func (_u *TaskUpdate) SetNillableWorkspaceID(v *string) *TaskUpdate {
	if v != nil {
		_u.SetWorkspaceID(*v)
	}
	return _u
}

// SetExecutionID sets the "execution_id" field.
func (_u *TaskUpdate) SetExecutionID(v string) *TaskUpdate {
	_u.mutation.SetExecutionID(v)
	return _u
}

// SetNillableExecutionID sets the "execution_id" field if the given value is not nil.
func (_u *TaskUpdate) SetNillableExecutionID(v *string) *TaskUpdate {
	if v != nil {
		_u.SetExecutionID(*v)
	}
	return _u
}

// ClearExecutionID clears the value of the "execution_id" field.
func (_u *TaskUpdate) ClearExecutionID() *TaskUpdate {
	_u.mutation.ClearExecutionID()
	return _u
}

// SetProjectID sets the "project_id" field.
func (_u *TaskUpdate) SetProjectID(v string) *TaskUpdate {
	_u.mutation.SetProjectID(v)
	return _u
}

// SetNillableProjectID sets the "project_id" field if the given value is not nil.
func (_u *TaskUpdate) SetNillableProjectID(v *string) *TaskUpdate {
	if v != nil {
		_u.SetProjectID(*v)
	}
	return _u
}

// ClearProjectID clears the value of the "project_id" field.
func (_u *TaskUpdate) ClearProjectID() *TaskUpdate {
	_u.mutation.ClearProjectID()
	return _u
}

// SetPackID sets the "pack_id" field.
func (_u *TaskUpdate) SetPackID(v string) *TaskUpdate {
	_u.mutation.SetPackID(v)
	return _u
}

// SetNillablePackID sets the "pack_id" field if the given value is not nil.
func (_u *TaskUpdate) SetNillablePackID(v *string) *TaskUpdate {
	if v != nil {
		_u.SetPackID(*v)
	}
	return _u
}

// SetTaskType sets the "task_type" field.
func (_u *TaskUpdate) SetTaskType(v task.TaskType) *TaskUpdate {
	_u.mutation.SetTaskType(v)
	return _u
}

// SetNillableTaskType sets the "task_type" field if the given value is not nil.
func (_u *TaskUpdate) SetNillableTaskType(v *task.TaskType) *TaskUpdate {
	if v != nil {
		_u.SetTaskType(*v)
	}
	return _u
}

// SetStatus sets the "status" field.
func (_u *TaskUpdate) SetStatus(v task.Status) *TaskUpdate {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *TaskUpdate) SetNillableStatus(v *task.Status) *TaskUpdate {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetParams sets the "params" field.
func (_u *TaskUpdate) SetParams(v map[string]interface{}) *TaskUpdate {
	_u.mutation.SetParams(v)
	return _u
}

// ClearParams clears the value of the "params" field.
func (_u *TaskUpdate) ClearParams() *TaskUpdate {
	_u.mutation.ClearParams()
	return _u
}

// SetResult sets the "result" field.
func (_u *TaskUpdate) SetResult(v map[string]interface{}) *TaskUpdate {
	_u.mutation.SetResult(v)
	return _u
}

// ClearResult clears the value of the "result" field.
func (_u *TaskUpdate) ClearResult() *TaskUpdate {
	_u.mutation.ClearResult()
	return _u
}

// SetExecutionContext sets the "execution_context" field.
func (_u *TaskUpdate) SetExecutionContext(v map[string]interface{}) *TaskUpdate {
	_u.mutation.SetExecutionContext(v)
	return _u
}

// ClearExecutionContext clears the value of the "execution_context" field.
func (_u *TaskUpdate) ClearExecutionContext() *TaskUpdate {
	_u.mutation.ClearExecutionContext()
	return _u
}

// SetStorylineTags sets the "storyline_tags" field.
func (_u *TaskUpdate) SetStorylineTags(v []string) *TaskUpdate {
	_u.mutation.SetStorylineTags(v)
	return _u
}

// AppendStorylineTags appends value to the "storyline_tags" field.
func (_u *TaskUpdate) AppendStorylineTags(v []string) *TaskUpdate {
	_u.mutation.AppendStorylineTags(v)
	return _u
}

// ClearStorylineTags clears the value of the "storyline_tags" field.
func (_u *TaskUpdate) ClearStorylineTags() *TaskUpdate {
	_u.mutation.ClearStorylineTags()
	return _u
}

// SetStartedAt sets the "started_at" field.
func (_u *TaskUpdate) SetStartedAt(v time.Time) *TaskUpdate {
	_u.mutation.SetStartedAt(v)
	return _u
}

// SetNillableStartedAt sets the "started_at" field if the given value is not nil.
func (_u *TaskUpdate) SetNillableStartedAt(v *time.Time) *TaskUpdate {
	if v != nil {
		_u.SetStartedAt(*v)
	}
	return _u
}

// ClearStartedAt clears the value of the "started_at" field.
func (_u *TaskUpdate) ClearStartedAt() *TaskUpdate {
	_u.mutation.ClearStartedAt()
	return _u
}

// SetCompletedAt sets the "completed_at" field.
func (_u *TaskUpdate) SetCompletedAt(v time.Time) *TaskUpdate {
	_u.mutation.SetCompletedAt(v)
	return _u
}

// SetNillableCompletedAt sets the "completed_at" field if the given value is not nil.
func (_u *TaskUpdate) SetNillableCompletedAt(v *time.Time) *TaskUpdate {
	if v != nil {
		_u.SetCompletedAt(*v)
	}
	return _u
}

// ClearCompletedAt clears the value of the "completed_at" field.
func (_u *TaskUpdate) ClearCompletedAt() *TaskUpdate {
	_u.mutation.ClearCompletedAt()
	return _u
}

// SetError sets the "error" field.
func (_u *TaskUpdate) SetError(v string) *TaskUpdate {
	_u.mutation.SetError(v)
	return _u
}

// SetNillableError sets the "error" field if the given value is not nil.
func (_u *TaskUpdate) SetNillableError(v *string) *TaskUpdate {
	if v != nil {
		_u.SetError(*v)
	}
	return _u
}

// ClearError clears the value of the "error" field.
func (_u *TaskUpdate) ClearError() *TaskUpdate {
	_u.mutation.ClearError()
	return _u
}

// Mutation returns the TaskMutation object of the builder.
func (_u *TaskUpdate) Mutation() *TaskMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *TaskUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *TaskUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *TaskUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *TaskUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *TaskUpdate) check() error {
	if v, ok := _u.mutation.TaskType(); ok {
		if err := task.TaskTypeValidator(v); err != nil {
			return &ValidationError{Name: "task_type", err: fmt.Errorf(`ent: validator failed for field "Task.task_type": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Status(); ok {
		if err := task.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "Task.status": %w`, err)}
		}
	}
	return nil
}

func (_u *TaskUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(task.Table, task.Columns, sqlgraph.NewFieldSpec(task.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.WorkspaceID(); ok {
		_spec.SetField(task.FieldWorkspaceID, field.TypeString, value)
	}
	if value, ok := _u.mutation.ExecutionID(); ok {
		_spec.SetField(task.FieldExecutionID, field.TypeString, value)
	}
	if _u.mutation.ExecutionIDCleared() {
		_spec.ClearField(task.FieldExecutionID, field.TypeString)
	}
	if value, ok := _u.mutation.ProjectID(); ok {
		_spec.SetField(task.FieldProjectID, field.TypeString, value)
	}
	if _u.mutation.ProjectIDCleared() {
		_spec.ClearField(task.FieldProjectID, field.TypeString)
	}
	if value, ok := _u.mutation.PackID(); ok {
		_spec.SetField(task.FieldPackID, field.TypeString, value)
	}
	if value, ok := _u.mutation.TaskType(); ok {
		_spec.SetField(task.FieldTaskType, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(task.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.Params(); ok {
		_spec.SetField(task.FieldParams, field.TypeJSON, value)
	}
	if _u.mutation.ParamsCleared() {
		_spec.ClearField(task.FieldParams, field.TypeJSON)
	}
	if value, ok := _u.mutation.Result(); ok {
		_spec.SetField(task.FieldResult, field.TypeJSON, value)
	}
	if _u.mutation.ResultCleared() {
		_spec.ClearField(task.FieldResult, field.TypeJSON)
	}
	if value, ok := _u.mutation.ExecutionContext(); ok {
		_spec.SetField(task.FieldExecutionContext, field.TypeJSON, value)
	}
	if _u.mutation.ExecutionContextCleared() {
		_spec.ClearField(task.FieldExecutionContext, field.TypeJSON)
	}
	if value, ok := _u.mutation.StorylineTags(); ok {
		_spec.SetField(task.FieldStorylineTags, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedStorylineTags(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, task.FieldStorylineTags, value)
		})
	}
	if _u.mutation.StorylineTagsCleared() {
		_spec.ClearField(task.FieldStorylineTags, field.TypeJSON)
	}
	if value, ok := _u.mutation.StartedAt(); ok {
		_spec.SetField(task.FieldStartedAt, field.TypeTime, value)
	}
	if _u.mutation.StartedAtCleared() {
		_spec.ClearField(task.FieldStartedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.CompletedAt(); ok {
		_spec.SetField(task.FieldCompletedAt, field.TypeTime, value)
	}
	if _u.mutation.CompletedAtCleared() {
		_spec.ClearField(task.FieldCompletedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.Error(); ok {
		_spec.SetField(task.FieldError, field.TypeString, value)
	}
	if _u.mutation.ErrorCleared() {
		_spec.ClearField(task.FieldError, field.TypeString)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{task.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// TaskUpdateOne is the builder for updating a single Task entity.
type TaskUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *TaskMutation
}

// SetWorkspaceID sets the "workspace_id" field.
func (_u *TaskUpdateOne) SetWorkspaceID(v string) *TaskUpdateOne {
	_u.mutation.SetWorkspaceID(v)
	return _u
}

// SetNillableWorkspaceID sets the "workspace_id" field if the given value is not nil.
func (_u *TaskUpdateOne) SetNillableWorkspaceID(v *string) *TaskUpdateOne {
	if v != nil {
		_u.SetWorkspaceID(*v)
	}
	return _u
}

// SetExecutionID sets the "execution_id" field.
func (_u *TaskUpdateOne) SetExecutionID(v string) *TaskUpdateOne {
	_u.mutation.SetExecutionID(v)
	return _u
}

// SetNillableExecutionID sets the "execution_id" field if the given value is not nil.
func (_u *TaskUpdateOne) SetNillableExecutionID(v *string) *TaskUpdateOne {
	if v != nil {
		_u.SetExecutionID(*v)
	}
	return _u
}

// ClearExecutionID clears the value of the "execution_id" field.
func (_u *TaskUpdateOne) ClearExecutionID() *TaskUpdateOne {
	_u.mutation.ClearExecutionID()
	return _u
}

// SetProjectID sets the "project_id" field.
func (_u *TaskUpdateOne) SetProjectID(v string) *TaskUpdateOne {
	_u.mutation.SetProjectID(v)
	return _u
}

// SetNillableProjectID sets the "project_id" field if the given value is not nil.
func (_u *TaskUpdateOne) SetNillableProjectID(v *string) *TaskUpdateOne {
	if v != nil {
		_u.SetProjectID(*v)
	}
	return _u
}

// ClearProjectID clears the value of the "project_id" field.
func (_u *TaskUpdateOne) ClearProjectID() *TaskUpdateOne {
	_u.mutation.ClearProjectID()
	return _u
}

// SetPackID sets the "pack_id" field.
func (_u *TaskUpdateOne) SetPackID(v string) *TaskUpdateOne {
	_u.mutation.SetPackID(v)
	return _u
}

// SetNillablePackID sets the "pack_id" field if the given value is not nil.
func (_u *TaskUpdateOne) SetNillablePackID(v *string) *TaskUpdateOne {
	if v != nil {
		_u.SetPackID(*v)
	}
	return _u
}

// SetTaskType sets the "task_type" field.
func (_u *TaskUpdateOne) SetTaskType(v task.TaskType) *TaskUpdateOne {
	_u.mutation.SetTaskType(v)
	return _u
}

// SetNillableTaskType sets the "task_type" field if the given value is not nil.
func (_u *TaskUpdateOne) SetNillableTaskType(v *task.TaskType) *TaskUpdateOne {
	if v != nil {
		_u.SetTaskType(*v)
	}
	return _u
}

// SetStatus sets the "status" field.
func (_u *TaskUpdateOne) SetStatus(v task.Status) *TaskUpdateOne {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *TaskUpdateOne) SetNillableStatus(v *task.Status) *TaskUpdateOne {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetParams sets the "params" field.
func (_u *TaskUpdateOne) SetParams(v map[string]interface{}) *TaskUpdateOne {
	_u.mutation.SetParams(v)
	return _u
}

// ClearParams clears the value of the "params" field.
func (_u *TaskUpdateOne) ClearParams() *TaskUpdateOne {
	_u.mutation.ClearParams()
	return _u
}

// SetResult sets the "result" field.
func (_u *TaskUpdateOne) SetResult(v map[string]interface{}) *TaskUpdateOne {
	_u.mutation.SetResult(v)
	return _u
}

// ClearResult clears the value of the "result" field.
func (_u *TaskUpdateOne) ClearResult() *TaskUpdateOne {
	_u.mutation.ClearResult()
	return _u
}

// SetExecutionContext sets the "execution_context" field.
func (_u *TaskUpdateOne) SetExecutionContext(v map[string]interface{}) *TaskUpdateOne {
	_u.mutation.SetExecutionContext(v)
	return _u
}

// ClearExecutionContext clears the value of the "execution_context" field.
func (_u *TaskUpdateOne) ClearExecutionContext() *TaskUpdateOne {
	_u.mutation.ClearExecutionContext()
	return _u
}

// SetStorylineTags sets the "storyline_tags" field.
func (_u *TaskUpdateOne) SetStorylineTags(v []string) *TaskUpdateOne {
	_u.mutation.SetStorylineTags(v)
	return _u
}

// AppendStorylineTags appends value to the "storyline_tags" field.
func (_u *TaskUpdateOne) AppendStorylineTags(v []string) *TaskUpdateOne {
	_u.mutation.AppendStorylineTags(v)
	return _u
}

// ClearStorylineTags clears the value of the "storyline_tags" field.
func (_u *TaskUpdateOne) ClearStorylineTags() *TaskUpdateOne {
	_u.mutation.ClearStorylineTags()
	return _u
}

// SetStartedAt sets the "started_at" field.
func (_u *TaskUpdateOne) SetStartedAt(v time.Time) *TaskUpdateOne {
	_u.mutation.SetStartedAt(v)
	return _u
}

// SetNillableStartedAt sets the "started_at" field if the given value is not nil.
func (_u *TaskUpdateOne) SetNillableStartedAt(v *time.Time) *TaskUpdateOne {
	if v != nil {
		_u.SetStartedAt(*v)
	}
	return _u
}

// ClearStartedAt clears the value of the "started_at" field.
func (_u *TaskUpdateOne) ClearStartedAt() *TaskUpdateOne {
	_u.mutation.ClearStartedAt()
	return _u
}

// SetCompletedAt sets the "completed_at" field.
func (_u *TaskUpdateOne) SetCompletedAt(v time.Time) *TaskUpdateOne {
	_u.mutation.SetCompletedAt(v)
	return _u
}

// SetNillableCompletedAt sets the "completed_at" field if the given value is not nil.
func (_u *TaskUpdateOne) SetNillableCompletedAt(v *time.Time) *TaskUpdateOne {
	if v != nil {
		_u.SetCompletedAt(*v)
	}
	return _u
}

// ClearCompletedAt clears the value of the "completed_at" field.
func (_u *TaskUpdateOne) ClearCompletedAt() *TaskUpdateOne {
	_u.mutation.ClearCompletedAt()
	return _u
}

// SetError sets the "error" field.
func (_u *TaskUpdateOne) SetError(v string) *TaskUpdateOne {
	_u.mutation.SetError(v)
	return _u
}

// SetNillableError sets the "error" field if the given value is not nil.
func (_u *TaskUpdateOne) SetNillableError(v *string) *TaskUpdateOne {
	if v != nil {
		_u.SetError(*v)
	}
	return _u
}

// ClearError clears the value of the "error" field.
func (_u *TaskUpdateOne) ClearError() *TaskUpdateOne {
	_u.mutation.ClearError()
	return _u
}

// Mutation returns the TaskMutation object of the builder.
func (_u *TaskUpdateOne) Mutation() *TaskMutation {
	return _u.mutation
}

// Where appends a list predicates to the TaskUpdate builder.
func (_u *TaskUpdateOne) Where(ps ...predicate.Task) *TaskUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *TaskUpdateOne) Select(field string, fields ...string) *TaskUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated Task entity.
func (_u *TaskUpdateOne) Save(ctx context.Context) (*Task, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *TaskUpdateOne) SaveX(ctx context.Context) *Task {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *TaskUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *TaskUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *TaskUpdateOne) check() error {
	if v, ok := _u.mutation.TaskType(); ok {
		if err := task.TaskTypeValidator(v); err != nil {
			return &ValidationError{Name: "task_type", err: fmt.Errorf(`ent: validator failed for field "Task.task_type": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Status(); ok {
		if err := task.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "Task.status": %w`, err)}
		}
	}
	return nil
}

func (_u *TaskUpdateOne) sqlSave(ctx context.Context) (_node *Task, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(task.Table, task.Columns, sqlgraph.NewFieldSpec(task.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "Task.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, task.FieldID)
		for _, f := range fields {
			if !task.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != task.FieldID {
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
		_spec.SetField(task.FieldWorkspaceID, field.TypeString, value)
	}
	if value, ok := _u.mutation.ExecutionID(); ok {
		_spec.SetField(task.FieldExecutionID, field.TypeString, value)
	}
	if _u.mutation.ExecutionIDCleared() {
		_spec.ClearField(task.FieldExecutionID, field.TypeString)
	}
	if value, ok := _u.mutation.ProjectID(); ok {
		_spec.SetField(task.FieldProjectID, field.TypeString, value)
	}
	if _u.mutation.ProjectIDCleared() {
		_spec.ClearField(task.FieldProjectID, field.TypeString)
	}
	if value, ok := _u.mutation.PackID(); ok {
		_spec.SetField(task.FieldPackID, field.TypeString, value)
	}
	if value, ok := _u.mutation.TaskType(); ok {
		_spec.SetField(task.FieldTaskType, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(task.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.Params(); ok {
		_spec.SetField(task.FieldParams, field.TypeJSON, value)
	}
	if _u.mutation.ParamsCleared() {
		_spec.ClearField(task.FieldParams, field.TypeJSON)
	}
	if value, ok := _u.mutation.Result(); ok {
		_spec.SetField(task.FieldResult, field.TypeJSON, value)
	}
	if _u.mutation.ResultCleared() {
		_spec.ClearField(task.FieldResult, field.TypeJSON)
	}
	if value, ok := _u.mutation.ExecutionContext(); ok {
		_spec.SetField(task.FieldExecutionContext, field.TypeJSON, value)
	}
	if _u.mutation.ExecutionContextCleared() {
		_spec.ClearField(task.FieldExecutionContext, field.TypeJSON)
	}
	if value, ok := _u.mutation.StorylineTags(); ok {
		_spec.SetField(task.FieldStorylineTags, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedStorylineTags(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, task.FieldStorylineTags, value)
		})
	}
	if _u.mutation.StorylineTagsCleared() {
		_spec.ClearField(task.FieldStorylineTags, field.TypeJSON)
	}
	if value, ok := _u.mutation.StartedAt(); ok {
		_spec.SetField(task.FieldStartedAt, field.TypeTime, value)
	}
	if _u.mutation.StartedAtCleared() {
		_spec.ClearField(task.FieldStartedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.CompletedAt(); ok {
		_spec.SetField(task.FieldCompletedAt, field.TypeTime, value)
	}
	if _u.mutation.CompletedAtCleared() {
		_spec.ClearField(task.FieldCompletedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.Error(); ok {
		_spec.SetField(task.FieldError, field.TypeString, value)
	}
	if _u.mutation.ErrorCleared() {
		_spec.ClearField(task.FieldError, field.TypeString)
	}
	_node = &Task{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{task.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
