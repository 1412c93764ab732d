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
	"github.com/cortexops/playbookd/ent/task"
)

// TaskCreate is the builder for creating a Task entity.
type TaskCreate struct {
	config
	mutation *TaskMutation
	hooks    []Hook
	conflict []sql.ConflictOption
}

// SetWorkspaceID sets the "workspace_id" field.
func (_c *TaskCreate) SetWorkspaceID(v string) *TaskCreate {
	_c.mutation.SetWorkspaceID(v)
	return _c
}

// SetExecutionID sets the "execution_id" field.
func (_c *TaskCreate) SetExecutionID(v string) *TaskCreate {
	_c.mutation.SetExecutionID(v)
	return _c
}

// SetNillableExecutionID sets the "execution_id" field if the given value is not nil.
func (_c *TaskCreate) SetNillableExecutionID(v *string) *TaskCreate {
	if v != nil {
		_c.SetExecutionID(*v)
	}
	return _c
}

// SetProjectID sets the "project_id" field.
func (_c *TaskCreate) SetProjectID(v string) *TaskCreate {
	_c.mutation.SetProjectID(v)
	return _c
}

// SetNillableProjectID sets the "project_id" field if the given value is not nil.
func (_c *TaskCreate) SetNillableProjectID(v *string) *TaskCreate {
	if v != nil {
		_c.SetProjectID(*v)
	}
	return _c
}

// SetPackID sets the "pack_id" field.
func (_c *TaskCreate) SetPackID(v string) *TaskCreate {
	_c.mutation.SetPackID(v)
	return _c
}

// SetTaskType sets the "task_type" field.
func (_c *TaskCreate) SetTaskType(v task.TaskType) *TaskCreate {
	_c.mutation.SetTaskType(v)
	return _c
}

// SetStatus sets the "status" field.
func (_c *TaskCreate) SetStatus(v task.Status) *TaskCreate {
	_c.mutation.SetStatus(v)
	return _c
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_c *TaskCreate) SetNillableStatus(v *task.Status) *TaskCreate {
	if v != nil {
		_c.SetStatus(*v)
	}
	return _c
}

// SetParams sets the "params" field.
func (_c *TaskCreate) SetParams(v map[string]interface{}) *TaskCreate {
	_c.mutation.SetParams(v)
	return _c
}

// SetResult sets the "result" field.
func (_c *TaskCreate) SetResult(v map[string]interface{}) *TaskCreate {
	_c.mutation.SetResult(v)
	return _c
}

// SetExecutionContext sets the "execution_context" field.
func (_c *TaskCreate) SetExecutionContext(v map[string]interface{}) *TaskCreate {
	_c.mutation.SetExecutionContext(v)
	return _c
}

// SetStorylineTags sets the "storyline_tags" field.
func (_c *TaskCreate) SetStorylineTags(v []string) *TaskCreate {
	_c.mutation.SetStorylineTags(v)
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *TaskCreate) SetCreatedAt(v time.Time) *TaskCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *TaskCreate) SetNillableCreatedAt(v *time.Time) *TaskCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetStartedAt sets the "started_at" field.
func (_c *TaskCreate) SetStartedAt(v time.Time) *TaskCreate {
	_c.mutation.SetStartedAt(v)
	return _c
}

// SetNillableStartedAt sets the "started_at" field if the given value is not nil.
func (_c *TaskCreate) SetNillableStartedAt(v *time.Time) *TaskCreate {
	if v != nil {
		_c.SetStartedAt(*v)
	}
	return _c
}

// SetCompletedAt sets the "completed_at" field.
func (_c *TaskCreate) SetCompletedAt(v time.Time) *TaskCreate {
	_c.mutation.SetCompletedAt(v)
	return _c
}

// SetNillableCompletedAt sets the "completed_at" field if the given value is not nil.
func (_c *TaskCreate) SetNillableCompletedAt(v *time.Time) *TaskCreate {
	if v != nil {
		_c.SetCompletedAt(*v)
	}
	return _c
}

// SetError sets the "error" field.
func (_c *TaskCreate) SetError(v string) *TaskCreate {
	_c.mutation.SetError(v)
	return _c
}

// SetNillableError sets the "error" field if the given value is not nil.
func (_c *TaskCreate) SetNillableError(v *string) *TaskCreate {
	if v != nil {
		_c.SetError(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *TaskCreate) SetID(v string) *TaskCreate {
	_c.mutation.SetID(v)
	return _c
}

// Mutation returns the TaskMutation object of the builder.
func (_c *TaskCreate) Mutation() *TaskMutation {
	return _c.mutation
}

// Save creates the Task in the database.
func (_c *TaskCreate) Save(ctx context.Context) (*Task, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *TaskCreate) SaveX(ctx context.Context) *Task {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *TaskCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *TaskCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *TaskCreate) defaults() {
	if _, ok := _c.mutation.Status(); !ok {
		v := task.DefaultStatus
		_c.mutation.SetStatus(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := task.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *TaskCreate) check() error {
	if _, ok := _c.mutation.WorkspaceID(); !ok {
		return &ValidationError{Name: "workspace_id", err: errors.New(`ent: missing required field "Task.workspace_id"`)}
	}
	if _, ok := _c.mutation.PackID(); !ok {
		return &ValidationError{Name: "pack_id", err: errors.New(`ent: missing required field "Task.pack_id"`)}
	}
	if _, ok := _c.mutation.TaskType(); !ok {
		return &ValidationError{Name: "task_type", err: errors.New(`ent: missing required field "Task.task_type"`)}
	}
	if v, ok := _c.mutation.TaskType(); ok {
		if err := task.TaskTypeValidator(v); err != nil {
			return &ValidationError{Name: "task_type", err: fmt.Errorf(`ent: validator failed for field "Task.task_type": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Status(); !ok {
		return &ValidationError{Name: "status", err: errors.New(`ent: missing required field "Task.status"`)}
	}
	if v, ok := _c.mutation.Status(); ok {
		if err := task.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "Task.status": %w`, err)}
		}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "Task.created_at"`)}
	}
	return nil
}

func (_c *TaskCreate) sqlSave(ctx context.Context) (*Task, error) {
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
			return nil, fmt.Errorf("unexpected Task.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *TaskCreate) createSpec() (*Task, *sqlgraph.CreateSpec) {
	var (
		_node = &Task{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(task.Table, sqlgraph.NewFieldSpec(task.FieldID, field.TypeString))
	)
	_spec.OnConflict = _c.conflict
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.WorkspaceID(); ok {
		_spec.SetField(task.FieldWorkspaceID, field.TypeString, value)
		_node.WorkspaceID = value
	}
	if value, ok := _c.mutation.ExecutionID(); ok {
		_spec.SetField(task.FieldExecutionID, field.TypeString, value)
		_node.ExecutionID = &value
	}
	if value, ok := _c.mutation.ProjectID(); ok {
		_spec.SetField(task.FieldProjectID, field.TypeString, value)
		_node.ProjectID = &value
	}
	if value, ok := _c.mutation.PackID(); ok {
		_spec.SetField(task.FieldPackID, field.TypeString, value)
		_node.PackID = value
	}
	if value, ok := _c.mutation.TaskType(); ok {
		_spec.SetField(task.FieldTaskType, field.TypeEnum, value)
		_node.TaskType = value
	}
	if value, ok := _c.mutation.Status(); ok {
		_spec.SetField(task.FieldStatus, field.TypeEnum, value)
		_node.Status = value
	}
	if value, ok := _c.mutation.Params(); ok {
		_spec.SetField(task.FieldParams, field.TypeJSON, value)
		_node.Params = value
	}
	if value, ok := _c.mutation.Result(); ok {
		_spec.SetField(task.FieldResult, field.TypeJSON, value)
		_node.Result = value
	}
	if value, ok := _c.mutation.ExecutionContext(); ok {
		_spec.SetField(task.FieldExecutionContext, field.TypeJSON, value)
		_node.ExecutionContext = value
	}
	if value, ok := _c.mutation.StorylineTags(); ok {
		_spec.SetField(task.FieldStorylineTags, field.TypeJSON, value)
		_node.StorylineTags = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(task.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.StartedAt(); ok {
		_spec.SetField(task.FieldStartedAt, field.TypeTime, value)
		_node.StartedAt = &value
	}
	if value, ok := _c.mutation.CompletedAt(); ok {
		_spec.SetField(task.FieldCompletedAt, field.TypeTime, value)
		_node.CompletedAt = &value
	}
	if value, ok := _c.mutation.Error(); ok {
		_spec.SetField(task.FieldError, field.TypeString, value)
		_node.Error = &value
	}
	return _node, _spec
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.Task.Create().
//		SetWorkspaceID(v).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.TaskUpsert) {
//			SetWorkspaceID(v+v).
//		}).
//		Exec(ctx)
func (_c *TaskCreate) OnConflict(opts ...sql.ConflictOption) *TaskUpsertOne {
	_c.conflict = opts
	return &TaskUpsertOne{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.Task.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *TaskCreate) OnConflictColumns(columns ...string) *TaskUpsertOne {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &TaskUpsertOne{
		create: _c,
	}
}

type (
	// TaskUpsertOne is the builder for "upsert"-ing
	//  one Task node.
	TaskUpsertOne struct {
		create *TaskCreate
	}

	// TaskUpsert is the "OnConflict" setter.
	TaskUpsert struct {
		*sql.UpdateSet
	}
)

// SetWorkspaceID sets the "workspace_id" field.
func (u *TaskUpsert) SetWorkspaceID(v string) *TaskUpsert {
	u.Set(task.FieldWorkspaceID, v)
	return u
}

// UpdateWorkspaceID sets the "workspace_id" field to the value that was provided on create.
func (u *TaskUpsert) UpdateWorkspaceID() *TaskUpsert {
	u.SetExcluded(task.FieldWorkspaceID)
	return u
}

// SetExecutionID sets the "execution_id" field.
func (u *TaskUpsert) SetExecutionID(v string) *TaskUpsert {
	u.Set(task.FieldExecutionID, v)
	return u
}

// UpdateExecutionID sets the "execution_id" field to the value that was provided on create.
func (u *TaskUpsert) UpdateExecutionID() *TaskUpsert {
	u.SetExcluded(task.FieldExecutionID)
	return u
}

// ClearExecutionID clears the value of the "execution_id" field.
func (u *TaskUpsert) ClearExecutionID() *TaskUpsert {
	u.SetNull(task.FieldExecutionID)
	return u
}

// SetProjectID sets the "project_id" field.
func (u *TaskUpsert) SetProjectID(v string) *TaskUpsert {
	u.Set(task.FieldProjectID, v)
	return u
}

// UpdateProjectID sets the "project_id" field to the value that was provided on create.
func (u *TaskUpsert) UpdateProjectID() *TaskUpsert {
	u.SetExcluded(task.FieldProjectID)
	return u
}

// ClearProjectID clears the value of the "project_id" field.
func (u *TaskUpsert) ClearProjectID() *TaskUpsert {
	u.SetNull(task.FieldProjectID)
	return u
}

// SetPackID sets the "pack_id" field.
func (u *TaskUpsert) SetPackID(v string) *TaskUpsert {
	u.Set(task.FieldPackID, v)
	return u
}

// UpdatePackID sets the "pack_id" field to the value that was provided on create.
func (u *TaskUpsert) UpdatePackID() *TaskUpsert {
	u.SetExcluded(task.FieldPackID)
	return u
}

// SetTaskType sets the "task_type" field.
func (u *TaskUpsert) SetTaskType(v task.TaskType) *TaskUpsert {
	u.Set(task.FieldTaskType, v)
	return u
}

// UpdateTaskType sets the "task_type" field to the value that was provided on create.
func (u *TaskUpsert) UpdateTaskType() *TaskUpsert {
	u.SetExcluded(task.FieldTaskType)
	return u
}

// SetStatus sets the "status" field.
func (u *TaskUpsert) SetStatus(v task.Status) *TaskUpsert {
	u.Set(task.FieldStatus, v)
	return u
}

// UpdateStatus sets the "status" field to the value that was provided on create.
func (u *TaskUpsert) UpdateStatus() *TaskUpsert {
	u.SetExcluded(task.FieldStatus)
	return u
}

// SetParams sets the "params" field.
func (u *TaskUpsert) SetParams(v map[string]interface{}) *TaskUpsert {
	u.Set(task.FieldParams, v)
	return u
}

// UpdateParams sets the "params" field to the value that was provided on create.
func (u *TaskUpsert) UpdateParams() *TaskUpsert {
	u.SetExcluded(task.FieldParams)
	return u
}

// ClearParams clears the value of the "params" field.
func (u *TaskUpsert) ClearParams() *TaskUpsert {
	u.SetNull(task.FieldParams)
	return u
}

// SetResult sets the "result" field.
func (u *TaskUpsert) SetResult(v map[string]interface{}) *TaskUpsert {
	u.Set(task.FieldResult, v)
	return u
}

// UpdateResult sets the "result" field to the value that was provided on create.
func (u *TaskUpsert) UpdateResult() *TaskUpsert {
	u.SetExcluded(task.FieldResult)
	return u
}

// ClearResult clears the value of the "result" field.
func (u *TaskUpsert) ClearResult() *TaskUpsert {
	u.SetNull(task.FieldResult)
	return u
}

// SetExecutionContext sets the "execution_context" field.
func (u *TaskUpsert) SetExecutionContext(v map[string]interface{}) *TaskUpsert {
	u.Set(task.FieldExecutionContext, v)
	return u
}

// UpdateExecutionContext sets the "execution_context" field to the value that was provided on create.
func (u *TaskUpsert) UpdateExecutionContext() *TaskUpsert {
	u.SetExcluded(task.FieldExecutionContext)
	return u
}

// ClearExecutionContext clears the value of the "execution_context" field.
func (u *TaskUpsert) ClearExecutionContext() *TaskUpsert {
	u.SetNull(task.FieldExecutionContext)
	return u
}

// SetStorylineTags sets the "storyline_tags" field.
func (u *TaskUpsert) SetStorylineTags(v []string) *TaskUpsert {
	u.Set(task.FieldStorylineTags, v)
	return u
}

// UpdateStorylineTags sets the "storyline_tags" field to the value that was provided on create.
func (u *TaskUpsert) UpdateStorylineTags() *TaskUpsert {
	u.SetExcluded(task.FieldStorylineTags)
	return u
}

// ClearStorylineTags clears the value of the "storyline_tags" field.
func (u *TaskUpsert) ClearStorylineTags() *TaskUpsert {
	u.SetNull(task.FieldStorylineTags)
	return u
}

// SetStartedAt sets the "started_at" field.
func (u *TaskUpsert) SetStartedAt(v time.Time) *TaskUpsert {
	u.Set(task.FieldStartedAt, v)
	return u
}

// UpdateStartedAt sets the "started_at" field to the value that was provided on create.
func (u *TaskUpsert) UpdateStartedAt() *TaskUpsert {
	u.SetExcluded(task.FieldStartedAt)
	return u
}

// ClearStartedAt clears the value of the "started_at" field.
func (u *TaskUpsert) ClearStartedAt() *TaskUpsert {
	u.SetNull(task.FieldStartedAt)
	return u
}

// SetCompletedAt sets the "completed_at" field.
func (u *TaskUpsert) SetCompletedAt(v time.Time) *TaskUpsert {
	u.Set(task.FieldCompletedAt, v)
	return u
}

// UpdateCompletedAt sets the "completed_at" field to the value that was provided on create.
func (u *TaskUpsert) UpdateCompletedAt() *TaskUpsert {
	u.SetExcluded(task.FieldCompletedAt)
	return u
}

// ClearCompletedAt clears the value of the "completed_at" field.
func (u *TaskUpsert) ClearCompletedAt() *TaskUpsert {
	u.SetNull(task.FieldCompletedAt)
	return u
}

// SetError sets the "error" field.
func (u *TaskUpsert) SetError(v string) *TaskUpsert {
	u.Set(task.FieldError, v)
	return u
}

// UpdateError sets the "error" field to the value that was provided on create.
func (u *TaskUpsert) UpdateError() *TaskUpsert {
	u.SetExcluded(task.FieldError)
	return u
}

// ClearError clears the value of the "error" field.
func (u *TaskUpsert) ClearError() *TaskUpsert {
	u.SetNull(task.FieldError)
	return u
}

// UpdateNewValues updates the mutable fields using the new values that were set on create except the ID field.
// Using this option is equivalent to using:
//
//	client.Task.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(task.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *TaskUpsertOne) UpdateNewValues() *TaskUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		if _, exists := u.create.mutation.ID(); exists {
			s.SetIgnore(task.FieldID)
		}
		if _, exists := u.create.mutation.CreatedAt(); exists {
			s.SetIgnore(task.FieldCreatedAt)
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.Task.Create().
//	    OnConflict(sql.ResolveWithIgnore()).
//	    Exec(ctx)
func (u *TaskUpsertOne) Ignore() *TaskUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *TaskUpsertOne) DoNothing() *TaskUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the TaskCreate.OnConflict
// documentation for more info.
func (u *TaskUpsertOne) Update(set func(*TaskUpsert)) *TaskUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&TaskUpsert{UpdateSet: update})
	}))
	return u
}

// SetWorkspaceID sets the "workspace_id" field.
func (u *TaskUpsertOne) SetWorkspaceID(v string) *TaskUpsertOne {
	return u.Update(func(s *TaskUpsert) {
		s.SetWorkspaceID(v)
	})
}

// UpdateWorkspaceID sets the "workspace_id" field to the value that was provided on create.
func (u *TaskUpsertOne) UpdateWorkspaceID() *TaskUpsertOne {
	return u.Update(func(s *TaskUpsert) {
		s.UpdateWorkspaceID()
	})
}

// SetExecutionID sets the "execution_id" field.
func (u *TaskUpsertOne) SetExecutionID(v string) *TaskUpsertOne {
	return u.Update(func(s *TaskUpsert) {
		s.SetExecutionID(v)
	})
}

// UpdateExecutionID sets the "execution_id" field to the value that was provided on create.
func (u *TaskUpsertOne) UpdateExecutionID() *TaskUpsertOne {
	return u.Update(func(s *TaskUpsert) {
		s.UpdateExecutionID()
	})
}

// ClearExecutionID clears the value of the "execution_id" field.
func (u *TaskUpsertOne) ClearExecutionID() *TaskUpsertOne {
	return u.Update(func(s *TaskUpsert) {
		s.ClearExecutionID()
	})
}

// SetProjectID sets the "project_id" field.
func (u *TaskUpsertOne) SetProjectID(v string) *TaskUpsertOne {
	return u.Update(func(s *TaskUpsert) {
		s.SetProjectID(v)
	})
}

// UpdateProjectID sets the "project_id" field to the value that was provided on create.
func (u *TaskUpsertOne) UpdateProjectID() *TaskUpsertOne {
	return u.Update(func(s *TaskUpsert) {
		s.UpdateProjectID()
	})
}

// ClearProjectID clears the value of the "project_id" field.
func (u *TaskUpsertOne) ClearProjectID() *TaskUpsertOne {
	return u.Update(func(s *TaskUpsert) {
		s.ClearProjectID()
	})
}

// SetPackID sets the "pack_id" field.
func (u *TaskUpsertOne) SetPackID(v string) *TaskUpsertOne {
	return u.Update(func(s *TaskUpsert) {
		s.SetPackID(v)
	})
}

// UpdatePackID sets the "pack_id" field to the value that was provided on create.
func (u *TaskUpsertOne) UpdatePackID() *TaskUpsertOne {
	return u.Update(func(s *TaskUpsert) {
		s.UpdatePackID()
	})
}

// SetTaskType sets the "task_type" field.
func (u *TaskUpsertOne) SetTaskType(v task.TaskType) *TaskUpsertOne {
	return u.Update(func(s *TaskUpsert) {
		s.SetTaskType(v)
	})
}

// UpdateTaskType sets the "task_type" field to the value that was provided on create.
func (u *TaskUpsertOne) UpdateTaskType() *TaskUpsertOne {
	return u.Update(func(s *TaskUpsert) {
		s.UpdateTaskType()
	})
}

// SetStatus sets the "status" field.
func (u *TaskUpsertOne) SetStatus(v task.Status) *TaskUpsertOne {
	return u.Update(func(s *TaskUpsert) {
		s.SetStatus(v)
	})
}

// UpdateStatus sets the "status" field to the value that was provided on create.
func (u *TaskUpsertOne) UpdateStatus() *TaskUpsertOne {
	return u.Update(func(s *TaskUpsert) {
		s.UpdateStatus()
	})
}

// SetParams sets the "params" field.
func (u *TaskUpsertOne) SetParams(v map[string]interface{}) *TaskUpsertOne {
	return u.Update(func(s *TaskUpsert) {
		s.SetParams(v)
	})
}

// UpdateParams sets the "params" field to the value that was provided on create.
func (u *TaskUpsertOne) UpdateParams() *TaskUpsertOne {
	return u.Update(func(s *TaskUpsert) {
		s.UpdateParams()
	})
}

// ClearParams clears the value of the "params" field.
func (u *TaskUpsertOne) ClearParams() *TaskUpsertOne {
	return u.Update(func(s *TaskUpsert) {
		s.ClearParams()
	})
}

// SetResult sets the "result" field.
func (u *TaskUpsertOne) SetResult(v map[string]interface{}) *TaskUpsertOne {
	return u.Update(func(s *TaskUpsert) {
		s.SetResult(v)
	})
}

// UpdateResult sets the "result" field to the value that was provided on create.
func (u *TaskUpsertOne) UpdateResult() *TaskUpsertOne {
	return u.Update(func(s *TaskUpsert) {
		s.UpdateResult()
	})
}

// ClearResult clears the value of the "result" field.
func (u *TaskUpsertOne) ClearResult() *TaskUpsertOne {
	return u.Update(func(s *TaskUpsert) {
		s.ClearResult()
	})
}

// SetExecutionContext sets the "execution_context" field.
func (u *TaskUpsertOne) SetExecutionContext(v map[string]interface{}) *TaskUpsertOne {
	return u.Update(func(s *TaskUpsert) {
		s.SetExecutionContext(v)
	})
}

// UpdateExecutionContext sets the "execution_context" field to the value that was provided on create.
func (u *TaskUpsertOne) UpdateExecutionContext() *TaskUpsertOne {
	return u.Update(func(s *TaskUpsert) {
		s.UpdateExecutionContext()
	})
}

// ClearExecutionContext clears the value of the "execution_context" field.
func (u *TaskUpsertOne) ClearExecutionContext() *TaskUpsertOne {
	return u.Update(func(s *TaskUpsert) {
		s.ClearExecutionContext()
	})
}

// SetStorylineTags sets the "storyline_tags" field.
func (u *TaskUpsertOne) SetStorylineTags(v []string) *TaskUpsertOne {
	return u.Update(func(s *TaskUpsert) {
		s.SetStorylineTags(v)
	})
}

// UpdateStorylineTags sets the "storyline_tags" field to the value that was provided on create.
func (u *TaskUpsertOne) UpdateStorylineTags() *TaskUpsertOne {
	return u.Update(func(s *TaskUpsert) {
		s.UpdateStorylineTags()
	})
}

// ClearStorylineTags clears the value of the "storyline_tags" field.
func (u *TaskUpsertOne) ClearStorylineTags() *TaskUpsertOne {
	return u.Update(func(s *TaskUpsert) {
		s.ClearStorylineTags()
	})
}

// SetStartedAt sets the "started_at" field.
func (u *TaskUpsertOne) SetStartedAt(v time.Time) *TaskUpsertOne {
	return u.Update(func(s *TaskUpsert) {
		s.SetStartedAt(v)
	})
}

// UpdateStartedAt sets the "started_at" field to the value that was provided on create.
func (u *TaskUpsertOne) UpdateStartedAt() *TaskUpsertOne {
	return u.Update(func(s *TaskUpsert) {
		s.UpdateStartedAt()
	})
}

// ClearStartedAt clears the value of the "started_at" field.
func (u *TaskUpsertOne) ClearStartedAt() *TaskUpsertOne {
	return u.Update(func(s *TaskUpsert) {
		s.ClearStartedAt()
	})
}

// SetCompletedAt sets the "completed_at" field.
func (u *TaskUpsertOne) SetCompletedAt(v time.Time) *TaskUpsertOne {
	return u.Update(func(s *TaskUpsert) {
		s.SetCompletedAt(v)
	})
}

// UpdateCompletedAt sets the "completed_at" field to the value that was provided on create.
func (u *TaskUpsertOne) UpdateCompletedAt() *TaskUpsertOne {
	return u.Update(func(s *TaskUpsert) {
		s.UpdateCompletedAt()
	})
}

// ClearCompletedAt clears the value of the "completed_at" field.
func (u *TaskUpsertOne) ClearCompletedAt() *TaskUpsertOne {
	return u.Update(func(s *TaskUpsert) {
		s.ClearCompletedAt()
	})
}

// SetError sets the "error" field.
func (u *TaskUpsertOne) SetError(v string) *TaskUpsertOne {
	return u.Update(func(s *TaskUpsert) {
		s.SetError(v)
	})
}

// UpdateError sets the "error" field to the value that was provided on create.
func (u *TaskUpsertOne) UpdateError() *TaskUpsertOne {
	return u.Update(func(s *TaskUpsert) {
		s.UpdateError()
	})
}

// ClearError clears the value of the "error" field.
func (u *TaskUpsertOne) ClearError() *TaskUpsertOne {
	return u.Update(func(s *TaskUpsert) {
		s.ClearError()
	})
}

// Exec executes the query.
func (u *TaskUpsertOne) Exec(ctx context.Context) error {
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for TaskCreate.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *TaskUpsertOne) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}

// Exec executes the UPSERT query and returns the inserted/updated ID.
func (u *TaskUpsertOne) ID(ctx context.Context) (id string, err error) {
	if u.create.driver.Dialect() == dialect.MySQL {
		// In case of "ON CONFLICT", there is no way to get back non-numeric ID
		// fields from the database since MySQL does not support the RETURNING clause.
		return id, errors.New("ent: TaskUpsertOne.ID is not supported by MySQL driver. Use TaskUpsertOne.Exec instead")
	}
	node, err := u.create.Save(ctx)
	if err != nil {
		return id, err
	}
	return node.ID, nil
}

// IDX is like ID, but panics if an error occurs.
func (u *TaskUpsertOne) IDX(ctx context.Context) string {
	id, err := u.ID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// TaskCreateBulk is the builder for creating many Task entities in bulk.
type TaskCreateBulk struct {
	config
	err      error
	builders []*TaskCreate
	conflict []sql.ConflictOption
}

// Save creates the Task entities in the database.
func (_c *TaskCreateBulk) Save(ctx context.Context) ([]*Task, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*Task, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*TaskMutation)
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
func (_c *TaskCreateBulk) SaveX(ctx context.Context) []*Task {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *TaskCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *TaskCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.Task.CreateBulk(builders...).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.TaskUpsert) {
//			SetWorkspaceID(v+v).
//		}).
//		Exec(ctx)
func (_c *TaskCreateBulk) OnConflict(opts ...sql.ConflictOption) *TaskUpsertBulk {
	_c.conflict = opts
	return &TaskUpsertBulk{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.Task.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *TaskCreateBulk) OnConflictColumns(columns ...string) *TaskUpsertBulk {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &TaskUpsertBulk{
		create: _c,
	}
}

// TaskUpsertBulk is the builder for "upsert"-ing
// a bulk of Task nodes.
type TaskUpsertBulk struct {
	create *TaskCreateBulk
}

// UpdateNewValues updates the mutable fields using the new values that
// were set on create. Using this option is equivalent to using:
//
//	client.Task.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(task.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *TaskUpsertBulk) UpdateNewValues() *TaskUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		for _, b := range u.create.builders {
			if _, exists := b.mutation.ID(); exists {
				s.SetIgnore(task.FieldID)
			}
			if _, exists := b.mutation.CreatedAt(); exists {
				s.SetIgnore(task.FieldCreatedAt)
			}
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.Task.Create().
//		OnConflict(sql.ResolveWithIgnore()).
//		Exec(ctx)
func (u *TaskUpsertBulk) Ignore() *TaskUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *TaskUpsertBulk) DoNothing() *TaskUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the TaskCreateBulk.OnConflict
// documentation for more info.
func (u *TaskUpsertBulk) Update(set func(*TaskUpsert)) *TaskUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&TaskUpsert{UpdateSet: update})
	}))
	return u
}

// SetWorkspaceID sets the "workspace_id" field.
func (u *TaskUpsertBulk) SetWorkspaceID(v string) *TaskUpsertBulk {
	return u.Update(func(s *TaskUpsert) {
		s.SetWorkspaceID(v)
	})
}

// UpdateWorkspaceID sets the "workspace_id" field to the value that was provided on create.
func (u *TaskUpsertBulk) UpdateWorkspaceID() *TaskUpsertBulk {
	return u.Update(func(s *TaskUpsert) {
		s.UpdateWorkspaceID()
	})
}

// SetExecutionID sets the "execution_id" field.
func (u *TaskUpsertBulk) SetExecutionID(v string) *TaskUpsertBulk {
	return u.Update(func(s *TaskUpsert) {
		s.SetExecutionID(v)
	})
}

// UpdateExecutionID sets the "execution_id" field to the value that was provided on create.
func (u *TaskUpsertBulk) UpdateExecutionID() *TaskUpsertBulk {
	return u.Update(func(s *TaskUpsert) {
		s.UpdateExecutionID()
	})
}

// ClearExecutionID clears the value of the "execution_id" field.
func (u *TaskUpsertBulk) ClearExecutionID() *TaskUpsertBulk {
	return u.Update(func(s *TaskUpsert) {
		s.ClearExecutionID()
	})
}

// SetProjectID sets the "project_id" field.
func (u *TaskUpsertBulk) SetProjectID(v string) *TaskUpsertBulk {
	return u.Update(func(s *TaskUpsert) {
		s.SetProjectID(v)
	})
}

// UpdateProjectID sets the "project_id" field to the value that was provided on create.
func (u *TaskUpsertBulk) UpdateProjectID() *TaskUpsertBulk {
	return u.Update(func(s *TaskUpsert) {
		s.UpdateProjectID()
	})
}

// ClearProjectID clears the value of the "project_id" field.
func (u *TaskUpsertBulk) ClearProjectID() *TaskUpsertBulk {
	return u.Update(func(s *TaskUpsert) {
		s.ClearProjectID()
	})
}

// SetPackID sets the "pack_id" field.
func (u *TaskUpsertBulk) SetPackID(v string) *TaskUpsertBulk {
	return u.Update(func(s *TaskUpsert) {
		s.SetPackID(v)
	})
}

// UpdatePackID sets the "pack_id" field to the value that was provided on create.
func (u *TaskUpsertBulk) UpdatePackID() *TaskUpsertBulk {
	return u.Update(func(s *TaskUpsert) {
		s.UpdatePackID()
	})
}

// SetTaskType sets the "task_type" field.
func (u *TaskUpsertBulk) SetTaskType(v task.TaskType) *TaskUpsertBulk {
	return u.Update(func(s *TaskUpsert) {
		s.SetTaskType(v)
	})
}

// UpdateTaskType sets the "task_type" field to the value that was provided on create.
func (u *TaskUpsertBulk) UpdateTaskType() *TaskUpsertBulk {
	return u.Update(func(s *TaskUpsert) {
		s.UpdateTaskType()
	})
}

// SetStatus sets the "status" field.
func (u *TaskUpsertBulk) SetStatus(v task.Status) *TaskUpsertBulk {
	return u.Update(func(s *TaskUpsert) {
		s.SetStatus(v)
	})
}

// UpdateStatus sets the "status" field to the value that was provided on create.
func (u *TaskUpsertBulk) UpdateStatus() *TaskUpsertBulk {
	return u.Update(func(s *TaskUpsert) {
		s.UpdateStatus()
	})
}

// SetParams sets the "params" field.
func (u *TaskUpsertBulk) SetParams(v map[string]interface{}) *TaskUpsertBulk {
	return u.Update(func(s *TaskUpsert) {
		s.SetParams(v)
	})
}

// UpdateParams sets the "params" field to the value that was provided on create.
func (u *TaskUpsertBulk) UpdateParams() *TaskUpsertBulk {
	return u.Update(func(s *TaskUpsert) {
		s.UpdateParams()
	})
}

// ClearParams clears the value of the "params" field.
func (u *TaskUpsertBulk) ClearParams() *TaskUpsertBulk {
	return u.Update(func(s *TaskUpsert) {
		s.ClearParams()
	})
}

// SetResult sets the "result" field.
func (u *TaskUpsertBulk) SetResult(v map[string]interface{}) *TaskUpsertBulk {
	return u.Update(func(s *TaskUpsert) {
		s.SetResult(v)
	})
}

// UpdateResult sets the "result" field to the value that was provided on create.
func (u *TaskUpsertBulk) UpdateResult() *TaskUpsertBulk {
	return u.Update(func(s *TaskUpsert) {
		s.UpdateResult()
	})
}

// ClearResult clears the value of the "result" field.
func (u *TaskUpsertBulk) ClearResult() *TaskUpsertBulk {
	return u.Update(func(s *TaskUpsert) {
		s.ClearResult()
	})
}

// SetExecutionContext sets the "execution_context" field.
func (u *TaskUpsertBulk) SetExecutionContext(v map[string]interface{}) *TaskUpsertBulk {
	return u.Update(func(s *TaskUpsert) {
		s.SetExecutionContext(v)
	})
}

// UpdateExecutionContext sets the "execution_context" field to the value that was provided on create.
func (u *TaskUpsertBulk) UpdateExecutionContext() *TaskUpsertBulk {
	return u.Update(func(s *TaskUpsert) {
		s.UpdateExecutionContext()
	})
}

// ClearExecutionContext clears the value of the "execution_context" field.
func (u *TaskUpsertBulk) ClearExecutionContext() *TaskUpsertBulk {
	return u.Update(func(s *TaskUpsert) {
		s.ClearExecutionContext()
	})
}

// SetStorylineTags sets the "storyline_tags" field.
func (u *TaskUpsertBulk) SetStorylineTags(v []string) *TaskUpsertBulk {
	return u.Update(func(s *TaskUpsert) {
		s.SetStorylineTags(v)
	})
}

// UpdateStorylineTags sets the "storyline_tags" field to the value that was provided on create.
func (u *TaskUpsertBulk) UpdateStorylineTags() *TaskUpsertBulk {
	return u.Update(func(s *TaskUpsert) {
		s.UpdateStorylineTags()
	})
}

// ClearStorylineTags clears the value of the "storyline_tags" field.
func (u *TaskUpsertBulk) ClearStorylineTags() *TaskUpsertBulk {
	return u.Update(func(s *TaskUpsert) {
		s.ClearStorylineTags()
	})
}

// SetStartedAt sets the "started_at" field.
func (u *TaskUpsertBulk) SetStartedAt(v time.Time) *TaskUpsertBulk {
	return u.Update(func(s *TaskUpsert) {
		s.SetStartedAt(v)
	})
}

// UpdateStartedAt sets the "started_at" field to the value that was provided on create.
func (u *TaskUpsertBulk) UpdateStartedAt() *TaskUpsertBulk {
	return u.Update(func(s *TaskUpsert) {
		s.UpdateStartedAt()
	})
}

// ClearStartedAt clears the value of the "started_at" field.
func (u *TaskUpsertBulk) ClearStartedAt() *TaskUpsertBulk {
	return u.Update(func(s *TaskUpsert) {
		s.ClearStartedAt()
	})
}

// SetCompletedAt sets the "completed_at" field.
func (u *TaskUpsertBulk) SetCompletedAt(v time.Time) *TaskUpsertBulk {
	return u.Update(func(s *TaskUpsert) {
		s.SetCompletedAt(v)
	})
}

// UpdateCompletedAt sets the "completed_at" field to the value that was provided on create.
func (u *TaskUpsertBulk) UpdateCompletedAt() *TaskUpsertBulk {
	return u.Update(func(s *TaskUpsert) {
		s.UpdateCompletedAt()
	})
}

// ClearCompletedAt clears the value of the "completed_at" field.
func (u *TaskUpsertBulk) ClearCompletedAt() *TaskUpsertBulk {
	return u.Update(func(s *TaskUpsert) {
		s.ClearCompletedAt()
	})
}

// SetError sets the "error" field.
func (u *TaskUpsertBulk) SetError(v string) *TaskUpsertBulk {
	return u.Update(func(s *TaskUpsert) {
		s.SetError(v)
	})
}

// UpdateError sets the "error" field to the value that was provided on create.
func (u *TaskUpsertBulk) UpdateError() *TaskUpsertBulk {
	return u.Update(func(s *TaskUpsert) {
		s.UpdateError()
	})
}

// ClearError clears the value of the "error" field.
func (u *TaskUpsertBulk) ClearError() *TaskUpsertBulk {
	return u.Update(func(s *TaskUpsert) {
		s.ClearError()
	})
}

// Exec executes the query.
func (u *TaskUpsertBulk) Exec(ctx context.Context) error {
	if u.create.err != nil {
		return u.create.err
	}
	for i, b := range u.create.builders {
		if len(b.conflict) != 0 {
			return fmt.Errorf("ent: OnConflict was set for builder %d. Set it on the TaskCreateBulk instead", i)
		}
	}
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for TaskCreateBulk.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *TaskUpsertBulk) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}
