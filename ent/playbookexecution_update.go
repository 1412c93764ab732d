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
	"github.com/cortexops/playbookd/ent/playbookexecution"
	"github.com/cortexops/playbookd/ent/predicate"
)

// PlaybookExecutionUpdate is the builder for updating PlaybookExecution entities.
type PlaybookExecutionUpdate struct {
	config
	hooks    []Hook
	mutation *PlaybookExecutionMutation
}

// Where appends a list predicates to the PlaybookExecutionUpdate builder.
func (_u *PlaybookExecutionUpdate) Where(ps ...predicate.PlaybookExecution) *PlaybookExecutionUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetWorkspaceID sets the "workspace_id" field.
func (_u *PlaybookExecutionUpdate) SetWorkspaceID(v string) *PlaybookExecutionUpdate {
	_u.mutation.SetWorkspaceID(v)
	return _u
}

// SetNillableWorkspaceID sets the "workspace_id" field if the given value is not nil.
func (_u *PlaybookExecutionUpdate) SetNillableWorkspaceID(v *string) *PlaybookExecutionUpdate {
	if v != nil {
		_u.SetWorkspaceID(*v)
	}
	return _u
}

// SetPlaybookCode sets the "playbook_code" field.
func (_u *PlaybookExecutionUpdate) SetPlaybookCode(v string) *PlaybookExecutionUpdate {
	_u.mutation.SetPlaybookCode(v)
	return _u
}

// SetNillablePlaybookCode sets the "playbook_code" field if the given value is not nil.
func (_u *PlaybookExecutionUpdate) SetNillablePlaybookCode(v *string) *PlaybookExecutionUpdate {
	if v != nil {
		_u.SetPlaybookCode(*v)
	}
	return _u
}

// SetStatus sets the "status" field.
func (_u *PlaybookExecutionUpdate) SetStatus(v string) *PlaybookExecutionUpdate {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *PlaybookExecutionUpdate) SetNillableStatus(v *string) *PlaybookExecutionUpdate {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetCurrentStepIndex sets the "current_step_index" field.
func (_u *PlaybookExecutionUpdate) SetCurrentStepIndex(v int) *PlaybookExecutionUpdate {
	_u.mutation.ResetCurrentStepIndex()
	_u.mutation.SetCurrentStepIndex(v)
	return _u
}

// SetNillableCurrentStepIndex sets the "current_step_index" field if the given value is not nil.
func (_u *PlaybookExecutionUpdate) SetNillableCurrentStepIndex(v *int) *PlaybookExecutionUpdate {
	if v != nil {
		_u.SetCurrentStepIndex(*v)
	}
	return _u
}

// AddCurrentStepIndex adds value to the "current_step_index" field.
func (_u *PlaybookExecutionUpdate) AddCurrentStepIndex(v int) *PlaybookExecutionUpdate {
	_u.mutation.AddCurrentStepIndex(v)
	return _u
}

// ClearCurrentStepIndex clears the value of the "current_step_index" field.
func (_u *PlaybookExecutionUpdate) ClearCurrentStepIndex() *PlaybookExecutionUpdate {
	_u.mutation.ClearCurrentStepIndex()
	return _u
}

// SetTotalSteps sets the "total_steps" field.
func (_u *PlaybookExecutionUpdate) SetTotalSteps(v int) *PlaybookExecutionUpdate {
	_u.mutation.ResetTotalSteps()
	_u.mutation.SetTotalSteps(v)
	return _u
}

// SetNillableTotalSteps sets the "total_steps" field if the given value is not nil.
func (_u *PlaybookExecutionUpdate) SetNillableTotalSteps(v *int) *PlaybookExecutionUpdate {
	if v != nil {
		_u.SetTotalSteps(*v)
	}
	return _u
}

// AddTotalSteps adds value to the "total_steps" field.
func (_u *PlaybookExecutionUpdate) AddTotalSteps(v int) *PlaybookExecutionUpdate {
	_u.mutation.AddTotalSteps(v)
	return _u
}

// ClearTotalSteps clears the value of the "total_steps" field.
func (_u *PlaybookExecutionUpdate) ClearTotalSteps() *PlaybookExecutionUpdate {
	_u.mutation.ClearTotalSteps()
	return _u
}

// SetSnapshot sets the "snapshot" field.
func (_u *PlaybookExecutionUpdate) SetSnapshot(v map[string]interface{}) *PlaybookExecutionUpdate {
	_u.mutation.SetSnapshot(v)
	return _u
}

// ClearSnapshot clears the value of the "snapshot" field.
func (_u *PlaybookExecutionUpdate) ClearSnapshot() *PlaybookExecutionUpdate {
	_u.mutation.ClearSnapshot()
	return _u
}

// SetPhaseSummaries sets the "phase_summaries" field.
func (_u *PlaybookExecutionUpdate) SetPhaseSummaries(v []map[string]interface{}) *PlaybookExecutionUpdate {
	_u.mutation.SetPhaseSummaries(v)
	return _u
}

// AppendPhaseSummaries appends value to the "phase_summaries" field.
func (_u *PlaybookExecutionUpdate) AppendPhaseSummaries(v []map[string]interface{}) *PlaybookExecutionUpdate {
	_u.mutation.AppendPhaseSummaries(v)
	return _u
}

// ClearPhaseSummaries clears the value of the "phase_summaries" field.
func (_u *PlaybookExecutionUpdate) ClearPhaseSummaries() *PlaybookExecutionUpdate {
	_u.mutation.ClearPhaseSummaries()
	return _u
}

// SetIntentID sets the "intent_id" field.
func (_u *PlaybookExecutionUpdate) SetIntentID(v string) *PlaybookExecutionUpdate {
	_u.mutation.SetIntentID(v)
	return _u
}

// SetNillableIntentID sets the "intent_id" field if the given value is not nil.
func (_u *PlaybookExecutionUpdate) SetNillableIntentID(v *string) *PlaybookExecutionUpdate {
	if v != nil {
		_u.SetIntentID(*v)
	}
	return _u
}

// ClearIntentID clears the value of the "intent_id" field.
func (_u *PlaybookExecutionUpdate) ClearIntentID() *PlaybookExecutionUpdate {
	_u.mutation.ClearIntentID()
	return _u
}

// SetFailureMetadata sets the "failure_metadata" field.
func (_u *PlaybookExecutionUpdate) SetFailureMetadata(v map[string]interface{}) *PlaybookExecutionUpdate {
	_u.mutation.SetFailureMetadata(v)
	return _u
}

// ClearFailureMetadata clears the value of the "failure_metadata" field.
func (_u *PlaybookExecutionUpdate) ClearFailureMetadata() *PlaybookExecutionUpdate {
	_u.mutation.ClearFailureMetadata()
	return _u
}

// SetSupportsResume sets the "supports_resume" field.
func (_u *PlaybookExecutionUpdate) SetSupportsResume(v bool) *PlaybookExecutionUpdate {
	_u.mutation.SetSupportsResume(v)
	return _u
}

// SetNillableSupportsResume sets the "supports_resume" field if the given value is not nil.
func (_u *PlaybookExecutionUpdate) SetNillableSupportsResume(v *bool) *PlaybookExecutionUpdate {
	if v != nil {
		_u.SetSupportsResume(*v)
	}
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *PlaybookExecutionUpdate) SetUpdatedAt(v time.Time) *PlaybookExecutionUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_u *PlaybookExecutionUpdate) SetNillableUpdatedAt(v *time.Time) *PlaybookExecutionUpdate {
	if v != nil {
		_u.SetUpdatedAt(*v)
	}
	return _u
}

// SetCompletedAt sets the "completed_at" field.
func (_u *PlaybookExecutionUpdate) SetCompletedAt(v time.Time) *PlaybookExecutionUpdate {
	_u.mutation.SetCompletedAt(v)
	return _u
}

// SetNillableCompletedAt sets the "completed_at" field if the given value is not nil.
func (_u *PlaybookExecutionUpdate) SetNillableCompletedAt(v *time.Time) *PlaybookExecutionUpdate {
	if v != nil {
		_u.SetCompletedAt(*v)
	}
	return _u
}

// ClearCompletedAt clears the value of the "completed_at" field.
func (_u *PlaybookExecutionUpdate) ClearCompletedAt() *PlaybookExecutionUpdate {
	_u.mutation.ClearCompletedAt()
	return _u
}

// Mutation returns the PlaybookExecutionMutation object of the builder.
func (_u *PlaybookExecutionUpdate) Mutation() *PlaybookExecutionMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *PlaybookExecutionUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *PlaybookExecutionUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *PlaybookExecutionUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *PlaybookExecutionUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

func (_u *PlaybookExecutionUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	_spec := sqlgraph.NewUpdateSpec(playbookexecution.Table, playbookexecution.Columns, sqlgraph.NewFieldSpec(playbookexecution.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.WorkspaceID(); ok {
		_spec.SetField(playbookexecution.FieldWorkspaceID, field.TypeString, value)
	}
	if value, ok := _u.mutation.PlaybookCode(); ok {
		_spec.SetField(playbookexecution.FieldPlaybookCode, field.TypeString, value)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(playbookexecution.FieldStatus, field.TypeString, value)
	}
	if value, ok := _u.mutation.CurrentStepIndex(); ok {
		_spec.SetField(playbookexecution.FieldCurrentStepIndex, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedCurrentStepIndex(); ok {
		_spec.AddField(playbookexecution.FieldCurrentStepIndex, field.TypeInt, value)
	}
	if _u.mutation.CurrentStepIndexCleared() {
		_spec.ClearField(playbookexecution.FieldCurrentStepIndex, field.TypeInt)
	}
	if value, ok := _u.mutation.TotalSteps(); ok {
		_spec.SetField(playbookexecution.FieldTotalSteps, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedTotalSteps(); ok {
		_spec.AddField(playbookexecution.FieldTotalSteps, field.TypeInt, value)
	}
	if _u.mutation.TotalStepsCleared() {
		_spec.ClearField(playbookexecution.FieldTotalSteps, field.TypeInt)
	}
	if value, ok := _u.mutation.Snapshot(); ok {
		_spec.SetField(playbookexecution.FieldSnapshot, field.TypeJSON, value)
	}
	if _u.mutation.SnapshotCleared() {
		_spec.ClearField(playbookexecution.FieldSnapshot, field.TypeJSON)
	}
	if value, ok := _u.mutation.PhaseSummaries(); ok {
		_spec.SetField(playbookexecution.FieldPhaseSummaries, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedPhaseSummaries(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, playbookexecution.FieldPhaseSummaries, value)
		})
	}
	if _u.mutation.PhaseSummariesCleared() {
		_spec.ClearField(playbookexecution.FieldPhaseSummaries, field.TypeJSON)
	}
	if value, ok := _u.mutation.IntentID(); ok {
		_spec.SetField(playbookexecution.FieldIntentID, field.TypeString, value)
	}
	if _u.mutation.IntentIDCleared() {
		_spec.ClearField(playbookexecution.FieldIntentID, field.TypeString)
	}
	if value, ok := _u.mutation.FailureMetadata(); ok {
		_spec.SetField(playbookexecution.FieldFailureMetadata, field.TypeJSON, value)
	}
	if _u.mutation.FailureMetadataCleared() {
		_spec.ClearField(playbookexecution.FieldFailureMetadata, field.TypeJSON)
	}
	if value, ok := _u.mutation.SupportsResume(); ok {
		_spec.SetField(playbookexecution.FieldSupportsResume, field.TypeBool, value)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(playbookexecution.FieldUpdatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.CompletedAt(); ok {
		_spec.SetField(playbookexecution.FieldCompletedAt, field.TypeTime, value)
	}
	if _u.mutation.CompletedAtCleared() {
		_spec.ClearField(playbookexecution.FieldCompletedAt, field.TypeTime)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{playbookexecution.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// PlaybookExecutionUpdateOne is the builder for updating a single PlaybookExecution entity.
type PlaybookExecutionUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *PlaybookExecutionMutation
}

// SetWorkspaceID sets the "workspace_id" field.
func (_u *PlaybookExecutionUpdateOne) SetWorkspaceID(v string) *PlaybookExecutionUpdateOne {
	_u.mutation.SetWorkspaceID(v)
	return _u
}

// SetNillableWorkspaceID sets the "workspace_id" field if the given value is not nil.
func (_u *PlaybookExecutionUpdateOne) SetNillableWorkspaceID(v *string) *PlaybookExecutionUpdateOne {
	if v != nil {
		_u.SetWorkspaceID(*v)
	}
	return _u
}

// SetPlaybookCode sets the "playbook_code" field.
func (_u *PlaybookExecutionUpdateOne) SetPlaybookCode(v string) *PlaybookExecutionUpdateOne {
	_u.mutation.SetPlaybookCode(v)
	return _u
}

// SetNillablePlaybookCode sets the "playbook_code" field if the given value is not nil.
func (_u *PlaybookExecutionUpdateOne) SetNillablePlaybookCode(v *string) *PlaybookExecutionUpdateOne {
	if v != nil {
		_u.SetPlaybookCode(*v)
	}
	return _u
}

// SetStatus sets the "status" field.
func (_u *PlaybookExecutionUpdateOne) SetStatus(v string) *PlaybookExecutionUpdateOne {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *PlaybookExecutionUpdateOne) SetNillableStatus(v *string) *PlaybookExecutionUpdateOne {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetCurrentStepIndex sets the "current_step_index" field.
func (_u *PlaybookExecutionUpdateOne) SetCurrentStepIndex(v int) *PlaybookExecutionUpdateOne {
	_u.mutation.ResetCurrentStepIndex()
	_u.mutation.SetCurrentStepIndex(v)
	return _u
}

// SetNillableCurrentStepIndex sets the "current_step_index" field if the given value is not nil.
func (_u *PlaybookExecutionUpdateOne) SetNillableCurrentStepIndex(v *int) *PlaybookExecutionUpdateOne {
	if v != nil {
		_u.SetCurrentStepIndex(*v)
	}
	return _u
}

// AddCurrentStepIndex adds value to the "current_step_index" field.
func (_u *PlaybookExecutionUpdateOne) AddCurrentStepIndex(v int) *PlaybookExecutionUpdateOne {
	_u.mutation.AddCurrentStepIndex(v)
	return _u
}

// ClearCurrentStepIndex clears the value of the "current_step_index" field.
func (_u *PlaybookExecutionUpdateOne) ClearCurrentStepIndex() *PlaybookExecutionUpdateOne {
	_u.mutation.ClearCurrentStepIndex()
	return _u
}

// SetTotalSteps sets the "total_steps" field.
func (_u *PlaybookExecutionUpdateOne) SetTotalSteps(v int) *PlaybookExecutionUpdateOne {
	_u.mutation.ResetTotalSteps()
	_u.mutation.SetTotalSteps(v)
	return _u
}

// SetNillableTotalSteps sets the "total_steps" field if the given value is not nil.
func (_u *PlaybookExecutionUpdateOne) SetNillableTotalSteps(v *int) *PlaybookExecutionUpdateOne {
	if v != nil {
		_u.SetTotalSteps(*v)
	}
	return _u
}

// AddTotalSteps adds value to the "total_steps" field.
func (_u *PlaybookExecutionUpdateOne) AddTotalSteps(v int) *PlaybookExecutionUpdateOne {
	_u.mutation.AddTotalSteps(v)
	return _u
}

// ClearTotalSteps clears the value of the "total_steps" field.
func (_u *PlaybookExecutionUpdateOne) ClearTotalSteps() *PlaybookExecutionUpdateOne {
	_u.mutation.ClearTotalSteps()
	return _u
}

// SetSnapshot sets the "snapshot" field.
func (_u *PlaybookExecutionUpdateOne) SetSnapshot(v map[string]interface{}) *PlaybookExecutionUpdateOne {
	_u.mutation.SetSnapshot(v)
	return _u
}

// ClearSnapshot clears the value of the "snapshot" field.
func (_u *PlaybookExecutionUpdateOne) ClearSnapshot() *PlaybookExecutionUpdateOne {
	_u.mutation.ClearSnapshot()
	return _u
}

// SetPhaseSummaries sets the "phase_summaries" field.
func (_u *PlaybookExecutionUpdateOne) SetPhaseSummaries(v []map[string]interface{}) *PlaybookExecutionUpdateOne {
	_u.mutation.SetPhaseSummaries(v)
	return _u
}

// AppendPhaseSummaries appends value to the "phase_summaries" field.
func (_u *PlaybookExecutionUpdateOne) AppendPhaseSummaries(v []map[string]interface{}) *PlaybookExecutionUpdateOne {
	_u.mutation.AppendPhaseSummaries(v)
	return _u
}

// ClearPhaseSummaries clears the value of the "phase_summaries" field.
func (_u *PlaybookExecutionUpdateOne) ClearPhaseSummaries() *PlaybookExecutionUpdateOne {
	_u.mutation.ClearPhaseSummaries()
	return _u
}

// SetIntentID sets the "intent_id" field.
func (_u *PlaybookExecutionUpdateOne) SetIntentID(v string) *PlaybookExecutionUpdateOne {
	_u.mutation.SetIntentID(v)
	return _u
}

// SetNillableIntentID sets the "intent_id" field if the given value is not nil.
func (_u *PlaybookExecutionUpdateOne) SetNillableIntentID(v *string) *PlaybookExecutionUpdateOne {
	if v != nil {
		_u.SetIntentID(*v)
	}
	return _u
}

// ClearIntentID clears the value of the "intent_id" field.
func (_u *PlaybookExecutionUpdateOne) ClearIntentID() *PlaybookExecutionUpdateOne {
	_u.mutation.ClearIntentID()
	return _u
}

// SetFailureMetadata sets the "failure_metadata" field.
func (_u *PlaybookExecutionUpdateOne) SetFailureMetadata(v map[string]interface{}) *PlaybookExecutionUpdateOne {
	_u.mutation.SetFailureMetadata(v)
	return _u
}

// ClearFailureMetadata clears the value of the "failure_metadata" field.
func (_u *PlaybookExecutionUpdateOne) ClearFailureMetadata() *PlaybookExecutionUpdateOne {
	_u.mutation.ClearFailureMetadata()
	return _u
}

// SetSupportsResume sets the "supports_resume" field.
func (_u *PlaybookExecutionUpdateOne) SetSupportsResume(v bool) *PlaybookExecutionUpdateOne {
	_u.mutation.SetSupportsResume(v)
	return _u
}

// SetNillableSupportsResume sets the "supports_resume" field if the given value is not nil.
func (_u *PlaybookExecutionUpdateOne) SetNillableSupportsResume(v *bool) *PlaybookExecutionUpdateOne {
	if v != nil {
		_u.SetSupportsResume(*v)
	}
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *PlaybookExecutionUpdateOne) SetUpdatedAt(v time.Time) *PlaybookExecutionUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_u *PlaybookExecutionUpdateOne) SetNillableUpdatedAt(v *time.Time) *PlaybookExecutionUpdateOne {
	if v != nil {
		_u.SetUpdatedAt(*v)
	}
	return _u
}

// SetCompletedAt sets the "completed_at" field.
func (_u *PlaybookExecutionUpdateOne) SetCompletedAt(v time.Time) *PlaybookExecutionUpdateOne {
	_u.mutation.SetCompletedAt(v)
	return _u
}

// SetNillableCompletedAt sets the "completed_at" field if the given value is not nil.
func (_u *PlaybookExecutionUpdateOne) SetNillableCompletedAt(v *time.Time) *PlaybookExecutionUpdateOne {
	if v != nil {
		_u.SetCompletedAt(*v)
	}
	return _u
}

// ClearCompletedAt clears the value of the "completed_at" field.
func (_u *PlaybookExecutionUpdateOne) ClearCompletedAt() *PlaybookExecutionUpdateOne {
	_u.mutation.ClearCompletedAt()
	return _u
}

// Mutation returns the PlaybookExecutionMutation object of the builder.
func (_u *PlaybookExecutionUpdateOne) Mutation() *PlaybookExecutionMutation {
	return _u.mutation
}

// Where appends a list predicates to the PlaybookExecutionUpdate builder.
func (_u *PlaybookExecutionUpdateOne) Where(ps ...predicate.PlaybookExecution) *PlaybookExecutionUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *PlaybookExecutionUpdateOne) Select(field string, fields ...string) *PlaybookExecutionUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated PlaybookExecution entity.
func (_u *PlaybookExecutionUpdateOne) Save(ctx context.Context) (*PlaybookExecution, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *PlaybookExecutionUpdateOne) SaveX(ctx context.Context) *PlaybookExecution {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *PlaybookExecutionUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *PlaybookExecutionUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

func (_u *PlaybookExecutionUpdateOne) sqlSave(ctx context.Context) (_node *PlaybookExecution, err error) {
	_spec := sqlgraph.NewUpdateSpec(playbookexecution.Table, playbookexecution.Columns, sqlgraph.NewFieldSpec(playbookexecution.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "PlaybookExecution.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, playbookexecution.FieldID)
		for _, f := range fields {
			if !playbookexecution.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != playbookexecution.FieldID {
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
		_spec.SetField(playbookexecution.FieldWorkspaceID, field.TypeString, value)
	}
	if value, ok := _u.mutation.PlaybookCode(); ok {
		_spec.SetField(playbookexecution.FieldPlaybookCode, field.TypeString, value)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(playbookexecution.FieldStatus, field.TypeString, value)
	}
	if value, ok := _u.mutation.CurrentStepIndex(); ok {
		_spec.SetField(playbookexecution.FieldCurrentStepIndex, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedCurrentStepIndex(); ok {
		_spec.AddField(playbookexecution.FieldCurrentStepIndex, field.TypeInt, value)
	}
	if _u.mutation.CurrentStepIndexCleared() {
		_spec.ClearField(playbookexecution.FieldCurrentStepIndex, field.TypeInt)
	}
	if value, ok := _u.mutation.TotalSteps(); ok {
		_spec.SetField(playbookexecution.FieldTotalSteps, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedTotalSteps(); ok {
		_spec.AddField(playbookexecution.FieldTotalSteps, field.TypeInt, value)
	}
	if _u.mutation.TotalStepsCleared() {
		_spec.ClearField(playbookexecution.FieldTotalSteps, field.TypeInt)
	}
	if value, ok := _u.mutation.Snapshot(); ok {
		_spec.SetField(playbookexecution.FieldSnapshot, field.TypeJSON, value)
	}
	if _u.mutation.SnapshotCleared() {
		_spec.ClearField(playbookexecution.FieldSnapshot, field.TypeJSON)
	}
	if value, ok := _u.mutation.PhaseSummaries(); ok {
		_spec.SetField(playbookexecution.FieldPhaseSummaries, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedPhaseSummaries(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, playbookexecution.FieldPhaseSummaries, value)
		})
	}
	if _u.mutation.PhaseSummariesCleared() {
		_spec.ClearField(playbookexecution.FieldPhaseSummaries, field.TypeJSON)
	}
	if value, ok := _u.mutation.IntentID(); ok {
		_spec.SetField(playbookexecution.FieldIntentID, field.TypeString, value)
	}
	if _u.mutation.IntentIDCleared() {
		_spec.ClearField(playbookexecution.FieldIntentID, field.TypeString)
	}
	if value, ok := _u.mutation.FailureMetadata(); ok {
		_spec.SetField(playbookexecution.FieldFailureMetadata, field.TypeJSON, value)
	}
	if _u.mutation.FailureMetadataCleared() {
		_spec.ClearField(playbookexecution.FieldFailureMetadata, field.TypeJSON)
	}
	if value, ok := _u.mutation.SupportsResume(); ok {
		_spec.SetField(playbookexecution.FieldSupportsResume, field.TypeBool, value)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(playbookexecution.FieldUpdatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.CompletedAt(); ok {
		_spec.SetField(playbookexecution.FieldCompletedAt, field.TypeTime, value)
	}
	if _u.mutation.CompletedAtCleared() {
		_spec.ClearField(playbookexecution.FieldCompletedAt, field.TypeTime)
	}
	_node = &PlaybookExecution{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{playbookexecution.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
