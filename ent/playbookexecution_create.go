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
	"github.com/cortexops/playbookd/ent/playbookexecution"
)

// PlaybookExecutionCreate is the builder for creating a PlaybookExecution entity.
type PlaybookExecutionCreate struct {
	config
	mutation *PlaybookExecutionMutation
	hooks    []Hook
	conflict []sql.ConflictOption
}

// SetWorkspaceID sets the "workspace_id" field.
func (_c *PlaybookExecutionCreate) SetWorkspaceID(v string) *PlaybookExecutionCreate {
	_c.mutation.SetWorkspaceID(v)
	return _c
}

// SetPlaybookCode sets the "playbook_code" field.
func (_c *PlaybookExecutionCreate) SetPlaybookCode(v string) *PlaybookExecutionCreate {
	_c.mutation.SetPlaybookCode(v)
	return _c
}

// SetStatus sets the "status" field.
func (_c *PlaybookExecutionCreate) SetStatus(v string) *PlaybookExecutionCreate {
	_c.mutation.SetStatus(v)
	return _c
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_c *PlaybookExecutionCreate) SetNillableStatus(v *string) *PlaybookExecutionCreate {
	if v != nil {
		_c.SetStatus(*v)
	}
	return _c
}

// SetCurrentStepIndex sets the "current_step_index" field.
func (_c *PlaybookExecutionCreate) SetCurrentStepIndex(v int) *PlaybookExecutionCreate {
	_c.mutation.SetCurrentStepIndex(v)
	return _c
}

// SetNillableCurrentStepIndex sets the "current_step_index" field if the given value is not nil.
func (_c *PlaybookExecutionCreate) SetNillableCurrentStepIndex(v *int) *PlaybookExecutionCreate {
	if v != nil {
		_c.SetCurrentStepIndex(*v)
	}
	return _c
}

// SetTotalSteps sets the "total_steps" field.
func (_c *PlaybookExecutionCreate) SetTotalSteps(v int) *PlaybookExecutionCreate {
	_c.mutation.SetTotalSteps(v)
	return _c
}

// SetNillableTotalSteps sets the "total_steps" field if the given value is not nil.
func (_c *PlaybookExecutionCreate) SetNillableTotalSteps(v *int) *PlaybookExecutionCreate {
	if v != nil {
		_c.SetTotalSteps(*v)
	}
	return _c
}

// SetSnapshot sets the "snapshot" field.
func (_c *PlaybookExecutionCreate) SetSnapshot(v map[string]interface{}) *PlaybookExecutionCreate {
	_c.mutation.SetSnapshot(v)
	return _c
}

// SetPhaseSummaries sets the "phase_summaries" field.
func (_c *PlaybookExecutionCreate) SetPhaseSummaries(v []map[string]interface{}) *PlaybookExecutionCreate {
	_c.mutation.SetPhaseSummaries(v)
	return _c
}

// SetIntentID sets the "intent_id" field.
func (_c *PlaybookExecutionCreate) SetIntentID(v string) *PlaybookExecutionCreate {
	_c.mutation.SetIntentID(v)
	return _c
}

// SetNillableIntentID sets the "intent_id" field if the given value is not nil.
func (_c *PlaybookExecutionCreate) SetNillableIntentID(v *string) *PlaybookExecutionCreate {
	if v != nil {
		_c.SetIntentID(*v)
	}
	return _c
}

// SetFailureMetadata sets the "failure_metadata" field.
func (_c *PlaybookExecutionCreate) SetFailureMetadata(v map[string]interface{}) *PlaybookExecutionCreate {
	_c.mutation.SetFailureMetadata(v)
	return _c
}

// SetSupportsResume sets the "supports_resume" field.
func (_c *PlaybookExecutionCreate) SetSupportsResume(v bool) *PlaybookExecutionCreate {
	_c.mutation.SetSupportsResume(v)
	return _c
}

// SetNillableSupportsResume sets the "supports_resume" field if the given value is not nil.
func (_c *PlaybookExecutionCreate) SetNillableSupportsResume(v *bool) *PlaybookExecutionCreate {
	if v != nil {
		_c.SetSupportsResume(*v)
	}
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *PlaybookExecutionCreate) SetCreatedAt(v time.Time) *PlaybookExecutionCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *PlaybookExecutionCreate) SetNillableCreatedAt(v *time.Time) *PlaybookExecutionCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *PlaybookExecutionCreate) SetUpdatedAt(v time.Time) *PlaybookExecutionCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *PlaybookExecutionCreate) SetNillableUpdatedAt(v *time.Time) *PlaybookExecutionCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// SetCompletedAt sets the "completed_at" field.
func (_c *PlaybookExecutionCreate) SetCompletedAt(v time.Time) *PlaybookExecutionCreate {
	_c.mutation.SetCompletedAt(v)
	return _c
}

// SetNillableCompletedAt sets the "completed_at" field if the given value is not nil.
func (_c *PlaybookExecutionCreate) SetNillableCompletedAt(v *time.Time) *PlaybookExecutionCreate {
	if v != nil {
		_c.SetCompletedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *PlaybookExecutionCreate) SetID(v string) *PlaybookExecutionCreate {
	_c.mutation.SetID(v)
	return _c
}

// Mutation returns the PlaybookExecutionMutation object of the builder.
func (_c *PlaybookExecutionCreate) Mutation() *PlaybookExecutionMutation {
	return _c.mutation
}

// Save creates the PlaybookExecution in the database.
func (_c *PlaybookExecutionCreate) Save(ctx context.Context) (*PlaybookExecution, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *PlaybookExecutionCreate) SaveX(ctx context.Context) *PlaybookExecution {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *PlaybookExecutionCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *PlaybookExecutionCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *PlaybookExecutionCreate) defaults() {
	if _, ok := _c.mutation.Status(); !ok {
		v := playbookexecution.DefaultStatus
		_c.mutation.SetStatus(v)
	}
	if _, ok := _c.mutation.SupportsResume(); !ok {
		v := playbookexecution.DefaultSupportsResume
		_c.mutation.SetSupportsResume(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := playbookexecution.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		v := playbookexecution.DefaultUpdatedAt()
		_c.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *PlaybookExecutionCreate) check() error {
	if _, ok := _c.mutation.WorkspaceID(); !ok {
		return &ValidationError{Name: "workspace_id", err: errors.New(`ent: missing required field "PlaybookExecution.workspace_id"`)}
	}
	if _, ok := _c.mutation.PlaybookCode(); !ok {
		return &ValidationError{Name: "playbook_code", err: errors.New(`ent: missing required field "PlaybookExecution.playbook_code"`)}
	}
	if _, ok := _c.mutation.Status(); !ok {
		return &ValidationError{Name: "status", err: errors.New(`ent: missing required field "PlaybookExecution.status"`)}
	}
	if _, ok := _c.mutation.SupportsResume(); !ok {
		return &ValidationError{Name: "supports_resume", err: errors.New(`ent: missing required field "PlaybookExecution.supports_resume"`)}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "PlaybookExecution.created_at"`)}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`ent: missing required field "PlaybookExecution.updated_at"`)}
	}
	return nil
}

func (_c *PlaybookExecutionCreate) sqlSave(ctx context.Context) (*PlaybookExecution, error) {
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
			return nil, fmt.Errorf("unexpected PlaybookExecution.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *PlaybookExecutionCreate) createSpec() (*PlaybookExecution, *sqlgraph.CreateSpec) {
	var (
		_node = &PlaybookExecution{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(playbookexecution.Table, sqlgraph.NewFieldSpec(playbookexecution.FieldID, field.TypeString))
	)
	_spec.OnConflict = _c.conflict
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.WorkspaceID(); ok {
		_spec.SetField(playbookexecution.FieldWorkspaceID, field.TypeString, value)
		_node.WorkspaceID = value
	}
	if value, ok := _c.mutation.PlaybookCode(); ok {
		_spec.SetField(playbookexecution.FieldPlaybookCode, field.TypeString, value)
		_node.PlaybookCode = value
	}
	if value, ok := _c.mutation.Status(); ok {
		_spec.SetField(playbookexecution.FieldStatus, field.TypeString, value)
		_node.Status = value
	}
	if value, ok := _c.mutation.CurrentStepIndex(); ok {
		_spec.SetField(playbookexecution.FieldCurrentStepIndex, field.TypeInt, value)
		_node.CurrentStepIndex = &value
	}
	if value, ok := _c.mutation.TotalSteps(); ok {
		_spec.SetField(playbookexecution.FieldTotalSteps, field.TypeInt, value)
		_node.TotalSteps = &value
	}
	if value, ok := _c.mutation.Snapshot(); ok {
		_spec.SetField(playbookexecution.FieldSnapshot, field.TypeJSON, value)
		_node.Snapshot = value
	}
	if value, ok := _c.mutation.PhaseSummaries(); ok {
		_spec.SetField(playbookexecution.FieldPhaseSummaries, field.TypeJSON, value)
		_node.PhaseSummaries = value
	}
	if value, ok := _c.mutation.IntentID(); ok {
		_spec.SetField(playbookexecution.FieldIntentID, field.TypeString, value)
		_node.IntentID = &value
	}
	if value, ok := _c.mutation.FailureMetadata(); ok {
		_spec.SetField(playbookexecution.FieldFailureMetadata, field.TypeJSON, value)
		_node.FailureMetadata = value
	}
	if value, ok := _c.mutation.SupportsResume(); ok {
		_spec.SetField(playbookexecution.FieldSupportsResume, field.TypeBool, value)
		_node.SupportsResume = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(playbookexecution.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(playbookexecution.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	if value, ok := _c.mutation.CompletedAt(); ok {
		_spec.SetField(playbookexecution.FieldCompletedAt, field.TypeTime, value)
		_node.CompletedAt = &value
	}
	return _node, _spec
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.PlaybookExecution.Create().
//		SetWorkspaceID(v).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.PlaybookExecutionUpsert) {
//			SetWorkspaceID(v+v).
//		}).
//		Exec(ctx)
func (_c *PlaybookExecutionCreate) OnConflict(opts ...sql.ConflictOption) *PlaybookExecutionUpsertOne {
	_c.conflict = opts
	return &PlaybookExecutionUpsertOne{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.PlaybookExecution.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *PlaybookExecutionCreate) OnConflictColumns(columns ...string) *PlaybookExecutionUpsertOne {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &PlaybookExecutionUpsertOne{
		create: _c,
	}
}

type (
	// PlaybookExecutionUpsertOne is the builder for "upsert"-ing
	//  one PlaybookExecution node.
	PlaybookExecutionUpsertOne struct {
		create *PlaybookExecutionCreate
	}

	// PlaybookExecutionUpsert is the "OnConflict" setter.
	PlaybookExecutionUpsert struct {
		*sql.UpdateSet
	}
)

// SetWorkspaceID sets the "workspace_id" field.
func (u *PlaybookExecutionUpsert) SetWorkspaceID(v string) *PlaybookExecutionUpsert {
	u.Set(playbookexecution.FieldWorkspaceID, v)
	return u
}

// UpdateWorkspaceID sets the "workspace_id" field to the value that was provided on create.
func (u *PlaybookExecutionUpsert) UpdateWorkspaceID() *PlaybookExecutionUpsert {
	u.SetExcluded(playbookexecution.FieldWorkspaceID)
	return u
}

// SetPlaybookCode sets the "playbook_code" field.
func (u *PlaybookExecutionUpsert) SetPlaybookCode(v string) *PlaybookExecutionUpsert {
	u.Set(playbookexecution.FieldPlaybookCode, v)
	return u
}

// UpdatePlaybookCode sets the "playbook_code" field to the value that was provided on create.
func (u *PlaybookExecutionUpsert) UpdatePlaybookCode() *PlaybookExecutionUpsert {
	u.SetExcluded(playbookexecution.FieldPlaybookCode)
	return u
}

// SetStatus sets the "status" field.
func (u *PlaybookExecutionUpsert) SetStatus(v string) *PlaybookExecutionUpsert {
	u.Set(playbookexecution.FieldStatus, v)
	return u
}

// UpdateStatus sets the "status" field to the value that was provided on create.
func (u *PlaybookExecutionUpsert) UpdateStatus() *PlaybookExecutionUpsert {
	u.SetExcluded(playbookexecution.FieldStatus)
	return u
}

// SetCurrentStepIndex sets the "current_step_index" field.
func (u *PlaybookExecutionUpsert) SetCurrentStepIndex(v int) *PlaybookExecutionUpsert {
	u.Set(playbookexecution.FieldCurrentStepIndex, v)
	return u
}

// UpdateCurrentStepIndex sets the "current_step_index" field to the value that was provided on create.
func (u *PlaybookExecutionUpsert) UpdateCurrentStepIndex() *PlaybookExecutionUpsert {
	u.SetExcluded(playbookexecution.FieldCurrentStepIndex)
	return u
}

// AddCurrentStepIndex adds v to the "current_step_index" field.
func (u *PlaybookExecutionUpsert) AddCurrentStepIndex(v int) *PlaybookExecutionUpsert {
	u.Add(playbookexecution.FieldCurrentStepIndex, v)
	return u
}

// ClearCurrentStepIndex clears the value of the "current_step_index" field.
func (u *PlaybookExecutionUpsert) ClearCurrentStepIndex() *PlaybookExecutionUpsert {
	u.SetNull(playbookexecution.FieldCurrentStepIndex)
	return u
}

// SetTotalSteps sets the "total_steps" field.
func (u *PlaybookExecutionUpsert) SetTotalSteps(v int) *PlaybookExecutionUpsert {
	u.Set(playbookexecution.FieldTotalSteps, v)
	return u
}

// UpdateTotalSteps sets the "total_steps" field to the value that was provided on create.
func (u *PlaybookExecutionUpsert) UpdateTotalSteps() *PlaybookExecutionUpsert {
	u.SetExcluded(playbookexecution.FieldTotalSteps)
	return u
}

// AddTotalSteps adds v to the "total_steps" field.
func (u *PlaybookExecutionUpsert) AddTotalSteps(v int) *PlaybookExecutionUpsert {
	u.Add(playbookexecution.FieldTotalSteps, v)
	return u
}

// ClearTotalSteps clears the value of the "total_steps" field.
func (u *PlaybookExecutionUpsert) ClearTotalSteps() *PlaybookExecutionUpsert {
	u.SetNull(playbookexecution.FieldTotalSteps)
	return u
}

// SetSnapshot sets the "snapshot" field.
func (u *PlaybookExecutionUpsert) SetSnapshot(v map[string]interface{}) *PlaybookExecutionUpsert {
	u.Set(playbookexecution.FieldSnapshot, v)
	return u
}

// UpdateSnapshot sets the "snapshot" field to the value that was provided on create.
func (u *PlaybookExecutionUpsert) UpdateSnapshot() *PlaybookExecutionUpsert {
	u.SetExcluded(playbookexecution.FieldSnapshot)
	return u
}

// ClearSnapshot clears the value of the "snapshot" field.
func (u *PlaybookExecutionUpsert) ClearSnapshot() *PlaybookExecutionUpsert {
	u.SetNull(playbookexecution.FieldSnapshot)
	return u
}

// SetPhaseSummaries sets the "phase_summaries" field.
func (u *PlaybookExecutionUpsert) SetPhaseSummaries(v []map[string]interface{}) *PlaybookExecutionUpsert {
	u.Set(playbookexecution.FieldPhaseSummaries, v)
	return u
}

// UpdatePhaseSummaries sets the "phase_summaries" field to the value that was provided on create.
func (u *PlaybookExecutionUpsert) UpdatePhaseSummaries() *PlaybookExecutionUpsert {
	u.SetExcluded(playbookexecution.FieldPhaseSummaries)
	return u
}

// ClearPhaseSummaries clears the value of the "phase_summaries" field.
func (u *PlaybookExecutionUpsert) ClearPhaseSummaries() *PlaybookExecutionUpsert {
	u.SetNull(playbookexecution.FieldPhaseSummaries)
	return u
}

// SetIntentID sets the "intent_id" field.
func (u *PlaybookExecutionUpsert) SetIntentID(v string) *PlaybookExecutionUpsert {
	u.Set(playbookexecution.FieldIntentID, v)
	return u
}

// UpdateIntentID sets the "intent_id" field to the value that was provided on create.
func (u *PlaybookExecutionUpsert) UpdateIntentID() *PlaybookExecutionUpsert {
	u.SetExcluded(playbookexecution.FieldIntentID)
	return u
}

// ClearIntentID clears the value of the "intent_id" field.
func (u *PlaybookExecutionUpsert) ClearIntentID() *PlaybookExecutionUpsert {
	u.SetNull(playbookexecution.FieldIntentID)
	return u
}

// SetFailureMetadata sets the "failure_metadata" field.
func (u *PlaybookExecutionUpsert) SetFailureMetadata(v map[string]interface{}) *PlaybookExecutionUpsert {
	u.Set(playbookexecution.FieldFailureMetadata, v)
	return u
}

// UpdateFailureMetadata sets the "failure_metadata" field to the value that was provided on create.
func (u *PlaybookExecutionUpsert) UpdateFailureMetadata() *PlaybookExecutionUpsert {
	u.SetExcluded(playbookexecution.FieldFailureMetadata)
	return u
}

// ClearFailureMetadata clears the value of the "failure_metadata" field.
func (u *PlaybookExecutionUpsert) ClearFailureMetadata() *PlaybookExecutionUpsert {
	u.SetNull(playbookexecution.FieldFailureMetadata)
	return u
}

// SetSupportsResume sets the "supports_resume" field.
func (u *PlaybookExecutionUpsert) SetSupportsResume(v bool) *PlaybookExecutionUpsert {
	u.Set(playbookexecution.FieldSupportsResume, v)
	return u
}

// UpdateSupportsResume sets the "supports_resume" field to the value that was provided on create.
func (u *PlaybookExecutionUpsert) UpdateSupportsResume() *PlaybookExecutionUpsert {
	u.SetExcluded(playbookexecution.FieldSupportsResume)
	return u
}

// SetUpdatedAt sets the "updated_at" field.
func (u *PlaybookExecutionUpsert) SetUpdatedAt(v time.Time) *PlaybookExecutionUpsert {
	u.Set(playbookexecution.FieldUpdatedAt, v)
	return u
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *PlaybookExecutionUpsert) UpdateUpdatedAt() *PlaybookExecutionUpsert {
	u.SetExcluded(playbookexecution.FieldUpdatedAt)
	return u
}

// SetCompletedAt sets the "completed_at" field.
func (u *PlaybookExecutionUpsert) SetCompletedAt(v time.Time) *PlaybookExecutionUpsert {
	u.Set(playbookexecution.FieldCompletedAt, v)
	return u
}

// UpdateCompletedAt sets the "completed_at" field to the value that was provided on create.
func (u *PlaybookExecutionUpsert) UpdateCompletedAt() *PlaybookExecutionUpsert {
	u.SetExcluded(playbookexecution.FieldCompletedAt)
	return u
}

// ClearCompletedAt clears the value of the "completed_at" field.
func (u *PlaybookExecutionUpsert) ClearCompletedAt() *PlaybookExecutionUpsert {
	u.SetNull(playbookexecution.FieldCompletedAt)
	return u
}

// UpdateNewValues updates the mutable fields using the new values that were set on create except the ID field.
// Using this option is equivalent to using:
//
//	client.PlaybookExecution.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(playbookexecution.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *PlaybookExecutionUpsertOne) UpdateNewValues() *PlaybookExecutionUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		if _, exists := u.create.mutation.ID(); exists {
			s.SetIgnore(playbookexecution.FieldID)
		}
		if _, exists := u.create.mutation.CreatedAt(); exists {
			s.SetIgnore(playbookexecution.FieldCreatedAt)
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.PlaybookExecution.Create().
//	    OnConflict(sql.ResolveWithIgnore()).
//	    Exec(ctx)
func (u *PlaybookExecutionUpsertOne) Ignore() *PlaybookExecutionUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *PlaybookExecutionUpsertOne) DoNothing() *PlaybookExecutionUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the PlaybookExecutionCreate.OnConflict
// documentation for more info.
func (u *PlaybookExecutionUpsertOne) Update(set func(*PlaybookExecutionUpsert)) *PlaybookExecutionUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&PlaybookExecutionUpsert{UpdateSet: update})
	}))
	return u
}

// SetWorkspaceID sets the "workspace_id" field.
func (u *PlaybookExecutionUpsertOne) SetWorkspaceID(v string) *PlaybookExecutionUpsertOne {
	return u.Update(func(s *PlaybookExecutionUpsert) {
		s.SetWorkspaceID(v)
	})
}

// UpdateWorkspaceID sets the "workspace_id" field to the value that was provided on create.
func (u *PlaybookExecutionUpsertOne) UpdateWorkspaceID() *PlaybookExecutionUpsertOne {
	return u.Update(func(s *PlaybookExecutionUpsert) {
		s.UpdateWorkspaceID()
	})
}

// SetPlaybookCode sets the "playbook_code" field.
func (u *PlaybookExecutionUpsertOne) SetPlaybookCode(v string) *PlaybookExecutionUpsertOne {
	return u.Update(func(s *PlaybookExecutionUpsert) {
		s.SetPlaybookCode(v)
	})
}

// UpdatePlaybookCode sets the "playbook_code" field to the value that was provided on create.
func (u *PlaybookExecutionUpsertOne) UpdatePlaybookCode() *PlaybookExecutionUpsertOne {
	return u.Update(func(s *PlaybookExecutionUpsert) {
		s.UpdatePlaybookCode()
	})
}

// SetStatus sets the "status" field.
func (u *PlaybookExecutionUpsertOne) SetStatus(v string) *PlaybookExecutionUpsertOne {
	return u.Update(func(s *PlaybookExecutionUpsert) {
		s.SetStatus(v)
	})
}

// UpdateStatus sets the "status" field to the value that was provided on create.
func (u *PlaybookExecutionUpsertOne) UpdateStatus() *PlaybookExecutionUpsertOne {
	return u.Update(func(s *PlaybookExecutionUpsert) {
		s.UpdateStatus()
	})
}

// SetCurrentStepIndex sets the "current_step_index" field.
func (u *PlaybookExecutionUpsertOne) SetCurrentStepIndex(v int) *PlaybookExecutionUpsertOne {
	return u.Update(func(s *PlaybookExecutionUpsert) {
		s.SetCurrentStepIndex(v)
	})
}

// AddCurrentStepIndex adds v to the "current_step_index" field.
func (u *PlaybookExecutionUpsertOne) AddCurrentStepIndex(v int) *PlaybookExecutionUpsertOne {
	return u.Update(func(s *PlaybookExecutionUpsert) {
		s.AddCurrentStepIndex(v)
	})
}

// UpdateCurrentStepIndex sets the "current_step_index" field to the value that was provided on create.
func (u *PlaybookExecutionUpsertOne) UpdateCurrentStepIndex() *PlaybookExecutionUpsertOne {
	return u.Update(func(s *PlaybookExecutionUpsert) {
		s.UpdateCurrentStepIndex()
	})
}

// ClearCurrentStepIndex clears the value of the "current_step_index" field.
func (u *PlaybookExecutionUpsertOne) ClearCurrentStepIndex() *PlaybookExecutionUpsertOne {
	return u.Update(func(s *PlaybookExecutionUpsert) {
		s.ClearCurrentStepIndex()
	})
}

// SetTotalSteps sets the "total_steps" field.
func (u *PlaybookExecutionUpsertOne) SetTotalSteps(v int) *PlaybookExecutionUpsertOne {
	return u.Update(func(s *PlaybookExecutionUpsert) {
		s.SetTotalSteps(v)
	})
}

// AddTotalSteps adds v to the "total_steps" field.
func (u *PlaybookExecutionUpsertOne) AddTotalSteps(v int) *PlaybookExecutionUpsertOne {
	return u.Update(func(s *PlaybookExecutionUpsert) {
		s.AddTotalSteps(v)
	})
}

// UpdateTotalSteps sets the "total_steps" field to the value that was provided on create.
func (u *PlaybookExecutionUpsertOne) UpdateTotalSteps() *PlaybookExecutionUpsertOne {
	return u.Update(func(s *PlaybookExecutionUpsert) {
		s.UpdateTotalSteps()
	})
}

// ClearTotalSteps clears the value of the "total_steps" field.
func (u *PlaybookExecutionUpsertOne) ClearTotalSteps() *PlaybookExecutionUpsertOne {
	return u.Update(func(s *PlaybookExecutionUpsert) {
		s.ClearTotalSteps()
	})
}

// SetSnapshot sets the "snapshot" field.
func (u *PlaybookExecutionUpsertOne) SetSnapshot(v map[string]interface{}) *PlaybookExecutionUpsertOne {
	return u.Update(func(s *PlaybookExecutionUpsert) {
		s.SetSnapshot(v)
	})
}

// UpdateSnapshot sets the "snapshot" field to the value that was provided on create.
func (u *PlaybookExecutionUpsertOne) UpdateSnapshot() *PlaybookExecutionUpsertOne {
	return u.Update(func(s *PlaybookExecutionUpsert) {
		s.UpdateSnapshot()
	})
}

// ClearSnapshot clears the value of the "snapshot" field.
func (u *PlaybookExecutionUpsertOne) ClearSnapshot() *PlaybookExecutionUpsertOne {
	return u.Update(func(s *PlaybookExecutionUpsert) {
		s.ClearSnapshot()
	})
}

// SetPhaseSummaries sets the "phase_summaries" field.
func (u *PlaybookExecutionUpsertOne) SetPhaseSummaries(v []map[string]interface{}) *PlaybookExecutionUpsertOne {
	return u.Update(func(s *PlaybookExecutionUpsert) {
		s.SetPhaseSummaries(v)
	})
}

// UpdatePhaseSummaries sets the "phase_summaries" field to the value that was provided on create.
func (u *PlaybookExecutionUpsertOne) UpdatePhaseSummaries() *PlaybookExecutionUpsertOne {
	return u.Update(func(s *PlaybookExecutionUpsert) {
		s.UpdatePhaseSummaries()
	})
}

// ClearPhaseSummaries clears the value of the "phase_summaries" field.
func (u *PlaybookExecutionUpsertOne) ClearPhaseSummaries() *PlaybookExecutionUpsertOne {
	return u.Update(func(s *PlaybookExecutionUpsert) {
		s.ClearPhaseSummaries()
	})
}

// SetIntentID sets the "intent_id" field.
func (u *PlaybookExecutionUpsertOne) SetIntentID(v string) *PlaybookExecutionUpsertOne {
	return u.Update(func(s *PlaybookExecutionUpsert) {
		s.SetIntentID(v)
	})
}

// UpdateIntentID sets the "intent_id" field to the value that was provided on create.
func (u *PlaybookExecutionUpsertOne) UpdateIntentID() *PlaybookExecutionUpsertOne {
	return u.Update(func(s *PlaybookExecutionUpsert) {
		s.UpdateIntentID()
	})
}

// ClearIntentID clears the value of the "intent_id" field.
func (u *PlaybookExecutionUpsertOne) ClearIntentID() *PlaybookExecutionUpsertOne {
	return u.Update(func(s *PlaybookExecutionUpsert) {
		s.ClearIntentID()
	})
}

// SetFailureMetadata sets the "failure_metadata" field.
func (u *PlaybookExecutionUpsertOne) SetFailureMetadata(v map[string]interface{}) *PlaybookExecutionUpsertOne {
	return u.Update(func(s *PlaybookExecutionUpsert) {
		s.SetFailureMetadata(v)
	})
}

// UpdateFailureMetadata sets the "failure_metadata" field to the value that was provided on create.
func (u *PlaybookExecutionUpsertOne) UpdateFailureMetadata() *PlaybookExecutionUpsertOne {
	return u.Update(func(s *PlaybookExecutionUpsert) {
		s.UpdateFailureMetadata()
	})
}

// ClearFailureMetadata clears the value of the "failure_metadata" field.
func (u *PlaybookExecutionUpsertOne) ClearFailureMetadata() *PlaybookExecutionUpsertOne {
	return u.Update(func(s *PlaybookExecutionUpsert) {
		s.ClearFailureMetadata()
	})
}

// SetSupportsResume sets the "supports_resume" field.
func (u *PlaybookExecutionUpsertOne) SetSupportsResume(v bool) *PlaybookExecutionUpsertOne {
	return u.Update(func(s *PlaybookExecutionUpsert) {
		s.SetSupportsResume(v)
	})
}

// UpdateSupportsResume sets the "supports_resume" field to the value that was provided on create.
func (u *PlaybookExecutionUpsertOne) UpdateSupportsResume() *PlaybookExecutionUpsertOne {
	return u.Update(func(s *PlaybookExecutionUpsert) {
		s.UpdateSupportsResume()
	})
}

// SetUpdatedAt sets the "updated_at" field.
func (u *PlaybookExecutionUpsertOne) SetUpdatedAt(v time.Time) *PlaybookExecutionUpsertOne {
	return u.Update(func(s *PlaybookExecutionUpsert) {
		s.SetUpdatedAt(v)
	})
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *PlaybookExecutionUpsertOne) UpdateUpdatedAt() *PlaybookExecutionUpsertOne {
	return u.Update(func(s *PlaybookExecutionUpsert) {
		s.UpdateUpdatedAt()
	})
}

// SetCompletedAt sets the "completed_at" field.
func (u *PlaybookExecutionUpsertOne) SetCompletedAt(v time.Time) *PlaybookExecutionUpsertOne {
	return u.Update(func(s *PlaybookExecutionUpsert) {
		s.SetCompletedAt(v)
	})
}

// UpdateCompletedAt sets the "completed_at" field to the value that was provided on create.
func (u *PlaybookExecutionUpsertOne) UpdateCompletedAt() *PlaybookExecutionUpsertOne {
	return u.Update(func(s *PlaybookExecutionUpsert) {
		s.UpdateCompletedAt()
	})
}

// ClearCompletedAt clears the value of the "completed_at" field.
func (u *PlaybookExecutionUpsertOne) ClearCompletedAt() *PlaybookExecutionUpsertOne {
	return u.Update(func(s *PlaybookExecutionUpsert) {
		s.ClearCompletedAt()
	})
}

// Exec executes the query.
func (u *PlaybookExecutionUpsertOne) Exec(ctx context.Context) error {
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for PlaybookExecutionCreate.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *PlaybookExecutionUpsertOne) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}

// Exec executes the UPSERT query and returns the inserted/updated ID.
func (u *PlaybookExecutionUpsertOne) ID(ctx context.Context) (id string, err error) {
	if u.create.driver.Dialect() == dialect.MySQL {
		// In case of "ON CONFLICT", there is no way to get back non-numeric ID
		// fields from the database since MySQL does not support the RETURNING clause.
		return id, errors.New("ent: PlaybookExecutionUpsertOne.ID is not supported by MySQL driver. Use PlaybookExecutionUpsertOne.Exec instead")
	}
	node, err := u.create.Save(ctx)
	if err != nil {
		return id, err
	}
	return node.ID, nil
}

// IDX is like ID, but panics if an error occurs.
func (u *PlaybookExecutionUpsertOne) IDX(ctx context.Context) string {
	id, err := u.ID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// PlaybookExecutionCreateBulk is the builder for creating many PlaybookExecution entities in bulk.
type PlaybookExecutionCreateBulk struct {
	config
	err      error
	builders []*PlaybookExecutionCreate
	conflict []sql.ConflictOption
}

// Save creates the PlaybookExecution entities in the database.
func (_c *PlaybookExecutionCreateBulk) Save(ctx context.Context) ([]*PlaybookExecution, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*PlaybookExecution, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*PlaybookExecutionMutation)
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
func (_c *PlaybookExecutionCreateBulk) SaveX(ctx context.Context) []*PlaybookExecution {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *PlaybookExecutionCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *PlaybookExecutionCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.PlaybookExecution.CreateBulk(builders...).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.PlaybookExecutionUpsert) {
//			SetWorkspaceID(v+v).
//		}).
//		Exec(ctx)
func (_c *PlaybookExecutionCreateBulk) OnConflict(opts ...sql.ConflictOption) *PlaybookExecutionUpsertBulk {
	_c.conflict = opts
	return &PlaybookExecutionUpsertBulk{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.PlaybookExecution.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *PlaybookExecutionCreateBulk) OnConflictColumns(columns ...string) *PlaybookExecutionUpsertBulk {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &PlaybookExecutionUpsertBulk{
		create: _c,
	}
}

// PlaybookExecutionUpsertBulk is the builder for "upsert"-ing
// a bulk of PlaybookExecution nodes.
type PlaybookExecutionUpsertBulk struct {
	create *PlaybookExecutionCreateBulk
}

// UpdateNewValues updates the mutable fields using the new values that
// were set on create. Using this option is equivalent to using:
//
//	client.PlaybookExecution.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(playbookexecution.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *PlaybookExecutionUpsertBulk) UpdateNewValues() *PlaybookExecutionUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		for _, b := range u.create.builders {
			if _, exists := b.mutation.ID(); exists {
				s.SetIgnore(playbookexecution.FieldID)
			}
			if _, exists := b.mutation.CreatedAt(); exists {
				s.SetIgnore(playbookexecution.FieldCreatedAt)
			}
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.PlaybookExecution.Create().
//		OnConflict(sql.ResolveWithIgnore()).
//		Exec(ctx)
func (u *PlaybookExecutionUpsertBulk) Ignore() *PlaybookExecutionUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *PlaybookExecutionUpsertBulk) DoNothing() *PlaybookExecutionUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the PlaybookExecutionCreateBulk.OnConflict
// documentation for more info.
func (u *PlaybookExecutionUpsertBulk) Update(set func(*PlaybookExecutionUpsert)) *PlaybookExecutionUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&PlaybookExecutionUpsert{UpdateSet: update})
	}))
	return u
}

// SetWorkspaceID sets the "workspace_id" field.
func (u *PlaybookExecutionUpsertBulk) SetWorkspaceID(v string) *PlaybookExecutionUpsertBulk {
	return u.Update(func(s *PlaybookExecutionUpsert) {
		s.SetWorkspaceID(v)
	})
}

// UpdateWorkspaceID sets the "workspace_id" field to the value that was provided on create.
func (u *PlaybookExecutionUpsertBulk) UpdateWorkspaceID() *PlaybookExecutionUpsertBulk {
	return u.Update(func(s *PlaybookExecutionUpsert) {
		s.UpdateWorkspaceID()
	})
}

// SetPlaybookCode sets the "playbook_code" field.
func (u *PlaybookExecutionUpsertBulk) SetPlaybookCode(v string) *PlaybookExecutionUpsertBulk {
	return u.Update(func(s *PlaybookExecutionUpsert) {
		s.SetPlaybookCode(v)
	})
}

// UpdatePlaybookCode sets the "playbook_code" field to the value that was provided on create.
func (u *PlaybookExecutionUpsertBulk) UpdatePlaybookCode() *PlaybookExecutionUpsertBulk {
	return u.Update(func(s *PlaybookExecutionUpsert) {
		s.UpdatePlaybookCode()
	})
}

// SetStatus sets the "status" field.
func (u *PlaybookExecutionUpsertBulk) SetStatus(v string) *PlaybookExecutionUpsertBulk {
	return u.Update(func(s *PlaybookExecutionUpsert) {
		s.SetStatus(v)
	})
}

// UpdateStatus sets the "status" field to the value that was provided on create.
func (u *PlaybookExecutionUpsertBulk) UpdateStatus() *PlaybookExecutionUpsertBulk {
	return u.Update(func(s *PlaybookExecutionUpsert) {
		s.UpdateStatus()
	})
}

// SetCurrentStepIndex sets the "current_step_index" field.
func (u *PlaybookExecutionUpsertBulk) SetCurrentStepIndex(v int) *PlaybookExecutionUpsertBulk {
	return u.Update(func(s *PlaybookExecutionUpsert) {
		s.SetCurrentStepIndex(v)
	})
}

// AddCurrentStepIndex adds v to the "current_step_index" field.
func (u *PlaybookExecutionUpsertBulk) AddCurrentStepIndex(v int) *PlaybookExecutionUpsertBulk {
	return u.Update(func(s *PlaybookExecutionUpsert) {
		s.AddCurrentStepIndex(v)
	})
}

// UpdateCurrentStepIndex sets the "current_step_index" field to the value that was provided on create.
func (u *PlaybookExecutionUpsertBulk) UpdateCurrentStepIndex() *PlaybookExecutionUpsertBulk {
	return u.Update(func(s *PlaybookExecutionUpsert) {
		s.UpdateCurrentStepIndex()
	})
}

// ClearCurrentStepIndex clears the value of the "current_step_index" field.
func (u *PlaybookExecutionUpsertBulk) ClearCurrentStepIndex() *PlaybookExecutionUpsertBulk {
	return u.Update(func(s *PlaybookExecutionUpsert) {
		s.ClearCurrentStepIndex()
	})
}

// SetTotalSteps sets the "total_steps" field.
func (u *PlaybookExecutionUpsertBulk) SetTotalSteps(v int) *PlaybookExecutionUpsertBulk {
	return u.Update(func(s *PlaybookExecutionUpsert) {
		s.SetTotalSteps(v)
	})
}

// AddTotalSteps adds v to the "total_steps" field.
func (u *PlaybookExecutionUpsertBulk) AddTotalSteps(v int) *PlaybookExecutionUpsertBulk {
	return u.Update(func(s *PlaybookExecutionUpsert) {
		s.AddTotalSteps(v)
	})
}

// UpdateTotalSteps sets the "total_steps" field to the value that was provided on create.
func (u *PlaybookExecutionUpsertBulk) UpdateTotalSteps() *PlaybookExecutionUpsertBulk {
	return u.Update(func(s *PlaybookExecutionUpsert) {
		s.UpdateTotalSteps()
	})
}

// ClearTotalSteps clears the value of the "total_steps" field.
func (u *PlaybookExecutionUpsertBulk) ClearTotalSteps() *PlaybookExecutionUpsertBulk {
	return u.Update(func(s *PlaybookExecutionUpsert) {
		s.ClearTotalSteps()
	})
}

// SetSnapshot sets the "snapshot" field.
func (u *PlaybookExecutionUpsertBulk) SetSnapshot(v map[string]interface{}) *PlaybookExecutionUpsertBulk {
	return u.Update(func(s *PlaybookExecutionUpsert) {
		s.SetSnapshot(v)
	})
}

// UpdateSnapshot sets the "snapshot" field to the value that was provided on create.
func (u *PlaybookExecutionUpsertBulk) UpdateSnapshot() *PlaybookExecutionUpsertBulk {
	return u.Update(func(s *PlaybookExecutionUpsert) {
		s.UpdateSnapshot()
	})
}

// ClearSnapshot clears the value of the "snapshot" field.
func (u *PlaybookExecutionUpsertBulk) ClearSnapshot() *PlaybookExecutionUpsertBulk {
	return u.Update(func(s *PlaybookExecutionUpsert) {
		s.ClearSnapshot()
	})
}

// SetPhaseSummaries sets the "phase_summaries" field.
func (u *PlaybookExecutionUpsertBulk) SetPhaseSummaries(v []map[string]interface{}) *PlaybookExecutionUpsertBulk {
	return u.Update(func(s *PlaybookExecutionUpsert) {
		s.SetPhaseSummaries(v)
	})
}

// UpdatePhaseSummaries sets the "phase_summaries" field to the value that was provided on create.
func (u *PlaybookExecutionUpsertBulk) UpdatePhaseSummaries() *PlaybookExecutionUpsertBulk {
	return u.Update(func(s *PlaybookExecutionUpsert) {
		s.UpdatePhaseSummaries()
	})
}

// ClearPhaseSummaries clears the value of the "phase_summaries" field.
func (u *PlaybookExecutionUpsertBulk) ClearPhaseSummaries() *PlaybookExecutionUpsertBulk {
	return u.Update(func(s *PlaybookExecutionUpsert) {
		s.ClearPhaseSummaries()
	})
}

// SetIntentID sets the "intent_id" field.
func (u *PlaybookExecutionUpsertBulk) SetIntentID(v string) *PlaybookExecutionUpsertBulk {
	return u.Update(func(s *PlaybookExecutionUpsert) {
		s.SetIntentID(v)
	})
}

// UpdateIntentID sets the "intent_id" field to the value that was provided on create.
func (u *PlaybookExecutionUpsertBulk) UpdateIntentID() *PlaybookExecutionUpsertBulk {
	return u.Update(func(s *PlaybookExecutionUpsert) {
		s.UpdateIntentID()
	})
}

// ClearIntentID clears the value of the "intent_id" field.
func (u *PlaybookExecutionUpsertBulk) ClearIntentID() *PlaybookExecutionUpsertBulk {
	return u.Update(func(s *PlaybookExecutionUpsert) {
		s.ClearIntentID()
	})
}

// SetFailureMetadata sets the "failure_metadata" field.
func (u *PlaybookExecutionUpsertBulk) SetFailureMetadata(v map[string]interface{}) *PlaybookExecutionUpsertBulk {
	return u.Update(func(s *PlaybookExecutionUpsert) {
		s.SetFailureMetadata(v)
	})
}

// UpdateFailureMetadata sets the "failure_metadata" field to the value that was provided on create.
func (u *PlaybookExecutionUpsertBulk) UpdateFailureMetadata() *PlaybookExecutionUpsertBulk {
	return u.Update(func(s *PlaybookExecutionUpsert) {
		s.UpdateFailureMetadata()
	})
}

// ClearFailureMetadata clears the value of the "failure_metadata" field.
func (u *PlaybookExecutionUpsertBulk) ClearFailureMetadata() *PlaybookExecutionUpsertBulk {
	return u.Update(func(s *PlaybookExecutionUpsert) {
		s.ClearFailureMetadata()
	})
}

// SetSupportsResume sets the "supports_resume" field.
func (u *PlaybookExecutionUpsertBulk) SetSupportsResume(v bool) *PlaybookExecutionUpsertBulk {
	return u.Update(func(s *PlaybookExecutionUpsert) {
		s.SetSupportsResume(v)
	})
}

// UpdateSupportsResume sets the "supports_resume" field to the value that was provided on create.
func (u *PlaybookExecutionUpsertBulk) UpdateSupportsResume() *PlaybookExecutionUpsertBulk {
	return u.Update(func(s *PlaybookExecutionUpsert) {
		s.UpdateSupportsResume()
	})
}

// SetUpdatedAt sets the "updated_at" field.
func (u *PlaybookExecutionUpsertBulk) SetUpdatedAt(v time.Time) *PlaybookExecutionUpsertBulk {
	return u.Update(func(s *PlaybookExecutionUpsert) {
		s.SetUpdatedAt(v)
	})
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *PlaybookExecutionUpsertBulk) UpdateUpdatedAt() *PlaybookExecutionUpsertBulk {
	return u.Update(func(s *PlaybookExecutionUpsert) {
		s.UpdateUpdatedAt()
	})
}

// SetCompletedAt sets the "completed_at" field.
func (u *PlaybookExecutionUpsertBulk) SetCompletedAt(v time.Time) *PlaybookExecutionUpsertBulk {
	return u.Update(func(s *PlaybookExecutionUpsert) {
		s.SetCompletedAt(v)
	})
}

// UpdateCompletedAt sets the "completed_at" field to the value that was provided on create.
func (u *PlaybookExecutionUpsertBulk) UpdateCompletedAt() *PlaybookExecutionUpsertBulk {
	return u.Update(func(s *PlaybookExecutionUpsert) {
		s.UpdateCompletedAt()
	})
}

// ClearCompletedAt clears the value of the "completed_at" field.
func (u *PlaybookExecutionUpsertBulk) ClearCompletedAt() *PlaybookExecutionUpsertBulk {
	return u.Update(func(s *PlaybookExecutionUpsert) {
		s.ClearCompletedAt()
	})
}

// Exec executes the query.
func (u *PlaybookExecutionUpsertBulk) Exec(ctx context.Context) error {
	if u.create.err != nil {
		return u.create.err
	}
	for i, b := range u.create.builders {
		if len(b.conflict) != 0 {
			return fmt.Errorf("ent: OnConflict was set for builder %d. Set it on the PlaybookExecutionCreateBulk instead", i)
		}
	}
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for PlaybookExecutionCreateBulk.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *PlaybookExecutionUpsertBulk) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}
