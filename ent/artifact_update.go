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
	"github.com/cortexops/playbookd/ent/artifact"
	"github.com/cortexops/playbookd/ent/predicate"
)

// ArtifactUpdate is the builder for updating Artifact entities.
type ArtifactUpdate struct {
	config
	hooks    []Hook
	mutation *ArtifactMutation
}

// Where appends a list predicates to the ArtifactUpdate builder.
func (_u *ArtifactUpdate) Where(ps ...predicate.Artifact) *ArtifactUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetWorkspaceID sets the "workspace_id" field.
func (_u *ArtifactUpdate) SetWorkspaceID(v string) *ArtifactUpdate {
	_u.mutation.SetWorkspaceID(v)
	return _u
}

// SetNillableWorkspaceID sets the "workspace_id" field if the given value is not nil.
func (_u *ArtifactUpdate) SetNillableWorkspaceID(v *string) *ArtifactUpdate {
	if v != nil {
		_u.SetWorkspaceID(*v)
	}
	return _u
}

// SetIntentID sets the "intent_id" field.
func (_u *ArtifactUpdate) SetIntentID(v string) *ArtifactUpdate {
	_u.mutation.SetIntentID(v)
	return _u
}

// SetNillableIntentID sets the "intent_id" field if the given value is not nil.
func (_u *ArtifactUpdate) SetNillableIntentID(v *string) *ArtifactUpdate {
	if v != nil {
		_u.SetIntentID(*v)
	}
	return _u
}

// ClearIntentID clears the value of the "intent_id" field.
func (_u *ArtifactUpdate) ClearIntentID() *ArtifactUpdate {
	_u.mutation.ClearIntentID()
	return _u
}

// SetTaskID sets the "task_id" field.
func (_u *ArtifactUpdate) SetTaskID(v string) *ArtifactUpdate {
	_u.mutation.SetTaskID(v)
	return _u
}

// SetNillableTaskID sets the "task_id" field if the given value is not nil.
func (_u *ArtifactUpdate) SetNillableTaskID(v *string) *ArtifactUpdate {
	if v != nil {
		_u.SetTaskID(*v)
	}
	return _u
}

// ClearTaskID clears the value of the "task_id" field.
func (_u *ArtifactUpdate) ClearTaskID() *ArtifactUpdate {
	_u.mutation.ClearTaskID()
	return _u
}

// SetExecutionID sets the "execution_id" field.
func (_u *ArtifactUpdate) SetExecutionID(v string) *ArtifactUpdate {
	_u.mutation.SetExecutionID(v)
	return _u
}

// SetNillableExecutionID sets the "execution_id" field if the given value is not nil.
func (_u *ArtifactUpdate) SetNillableExecutionID(v *string) *ArtifactUpdate {
	if v != nil {
		_u.SetExecutionID(*v)
	}
	return _u
}

// SetPlaybookCode sets the "playbook_code" field.
func (_u *ArtifactUpdate) SetPlaybookCode(v string) *ArtifactUpdate {
	_u.mutation.SetPlaybookCode(v)
	return _u
}

// SetNillablePlaybookCode sets the "playbook_code" field if the given value is not nil.
func (_u *ArtifactUpdate) SetNillablePlaybookCode(v *string) *ArtifactUpdate {
	if v != nil {
		_u.SetPlaybookCode(*v)
	}
	return _u
}

// SetArtifactType sets the "artifact_type" field.
func (_u *ArtifactUpdate) SetArtifactType(v artifact.ArtifactType) *ArtifactUpdate {
	_u.mutation.SetArtifactType(v)
	return _u
}

// SetNillableArtifactType sets the "artifact_type" field if the given value is not nil.
func (_u *ArtifactUpdate) SetNillableArtifactType(v *artifact.ArtifactType) *ArtifactUpdate {
	if v != nil {
		_u.SetArtifactType(*v)
	}
	return _u
}

// SetTitle sets the "title" field.
func (_u *ArtifactUpdate) SetTitle(v string) *ArtifactUpdate {
	_u.mutation.SetTitle(v)
	return _u
}

// SetNillableTitle sets the "title" field if the given value is not nil.
func (_u *ArtifactUpdate) SetNillableTitle(v *string) *ArtifactUpdate {
	if v != nil {
		_u.SetTitle(*v)
	}
	return _u
}

// SetSummary sets the "summary" field.
func (_u *ArtifactUpdate) SetSummary(v string) *ArtifactUpdate {
	_u.mutation.SetSummary(v)
	return _u
}

// SetNillableSummary sets the "summary" field if the given value is not nil.
func (_u *ArtifactUpdate) SetNillableSummary(v *string) *ArtifactUpdate {
	if v != nil {
		_u.SetSummary(*v)
	}
	return _u
}

// ClearSummary clears the value of the "summary" field.
func (_u *ArtifactUpdate) ClearSummary() *ArtifactUpdate {
	_u.mutation.ClearSummary()
	return _u
}

// SetContent sets the "content" field.
func (_u *ArtifactUpdate) SetContent(v map[string]interface{}) *ArtifactUpdate {
	_u.mutation.SetContent(v)
	return _u
}

// ClearContent clears the value of the "content" field.
func (_u *ArtifactUpdate) ClearContent() *ArtifactUpdate {
	_u.mutation.ClearContent()
	return _u
}

// SetStorageRef sets the "storage_ref" field.
func (_u *ArtifactUpdate) SetStorageRef(v string) *ArtifactUpdate {
	_u.mutation.SetStorageRef(v)
	return _u
}

// SetNillableStorageRef sets the "storage_ref" field if the given value is not nil.
func (_u *ArtifactUpdate) SetNillableStorageRef(v *string) *ArtifactUpdate {
	if v != nil {
		_u.SetStorageRef(*v)
	}
	return _u
}

// ClearStorageRef clears the value of the "storage_ref" field.
func (_u *ArtifactUpdate) ClearStorageRef() *ArtifactUpdate {
	_u.mutation.ClearStorageRef()
	return _u
}

// SetSyncState sets the "sync_state" field.
func (_u *ArtifactUpdate) SetSyncState(v artifact.SyncState) *ArtifactUpdate {
	_u.mutation.SetSyncState(v)
	return _u
}

// SetNillableSyncState sets the "sync_state" field if the given value is not nil.
func (_u *ArtifactUpdate) SetNillableSyncState(v *artifact.SyncState) *ArtifactUpdate {
	if v != nil {
		_u.SetSyncState(*v)
	}
	return _u
}

// ClearSyncState clears the value of the "sync_state" field.
func (_u *ArtifactUpdate) ClearSyncState() *ArtifactUpdate {
	_u.mutation.ClearSyncState()
	return _u
}

// SetPrimaryActionType sets the "primary_action_type" field.
func (_u *ArtifactUpdate) SetPrimaryActionType(v artifact.PrimaryActionType) *ArtifactUpdate {
	_u.mutation.SetPrimaryActionType(v)
	return _u
}

// SetNillablePrimaryActionType sets the "primary_action_type" field if the given value is not nil.
func (_u *ArtifactUpdate) SetNillablePrimaryActionType(v *artifact.PrimaryActionType) *ArtifactUpdate {
	if v != nil {
		_u.SetPrimaryActionType(*v)
	}
	return _u
}

// SetVersion sets the "version" field.
func (_u *ArtifactUpdate) SetVersion(v int) *ArtifactUpdate {
	_u.mutation.ResetVersion()
	_u.mutation.SetVersion(v)
	return _u
}

// SetNillableVersion sets the "version" field if the given value is not nil.
func (_u *ArtifactUpdate) SetNillableVersion(v *int) *ArtifactUpdate {
	if v != nil {
		_u.SetVersion(*v)
	}
	return _u
}

// AddVersion adds value to the "version" field.
func (_u *ArtifactUpdate) AddVersion(v int) *ArtifactUpdate {
	_u.mutation.AddVersion(v)
	return _u
}

// SetIsLatest sets the "is_latest" field.
func (_u *ArtifactUpdate) SetIsLatest(v bool) *ArtifactUpdate {
	_u.mutation.SetIsLatest(v)
	return _u
}

// SetNillableIsLatest sets the "is_latest" field if the given value is not nil.
func (_u *ArtifactUpdate) SetNillableIsLatest(v *bool) *ArtifactUpdate {
	if v != nil {
		_u.SetIsLatest(*v)
	}
	return _u
}

// SetMetadata sets the "metadata" field.
func (_u *ArtifactUpdate) SetMetadata(v map[string]interface{}) *ArtifactUpdate {
	_u.mutation.SetMetadata(v)
	return _u
}

// ClearMetadata clears the value of the "metadata" field.
func (_u *ArtifactUpdate) ClearMetadata() *ArtifactUpdate {
	_u.mutation.ClearMetadata()
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *ArtifactUpdate) SetUpdatedAt(v time.Time) *ArtifactUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_u *ArtifactUpdate) SetNillableUpdatedAt(v *time.Time) *ArtifactUpdate {
	if v != nil {
		_u.SetUpdatedAt(*v)
	}
	return _u
}

// Mutation returns the ArtifactMutation object of the builder.
func (_u *ArtifactUpdate) Mutation() *ArtifactMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *ArtifactUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ArtifactUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *ArtifactUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ArtifactUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ArtifactUpdate) check() error {
	if v, ok := _u.mutation.ArtifactType(); ok {
		if err := artifact.ArtifactTypeValidator(v); err != nil {
			return &ValidationError{Name: "artifact_type", err: fmt.Errorf(`ent: validator failed for field "Artifact.artifact_type": %w`, err)}
		}
	}
	if v, ok := _u.mutation.SyncState(); ok {
		if err := artifact.SyncStateValidator(v); err != nil {
			return &ValidationError{Name: "sync_state", err: fmt.Errorf(`ent: validator failed for field "Artifact.sync_state": %w`, err)}
		}
	}
	if v, ok := _u.mutation.PrimaryActionType(); ok {
		if err := artifact.PrimaryActionTypeValidator(v); err != nil {
			return &ValidationError{Name: "primary_action_type", err: fmt.Errorf(`ent: validator failed for field "Artifact.primary_action_type": %w`, err)}
		}
	}
	return nil
}

func (_u *ArtifactUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(artifact.Table, artifact.Columns, sqlgraph.NewFieldSpec(artifact.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.WorkspaceID(); ok {
		_spec.SetField(artifact.FieldWorkspaceID, field.TypeString, value)
	}
	if value, ok := _u.mutation.IntentID(); ok {
		_spec.SetField(artifact.FieldIntentID, field.TypeString, value)
	}
	if _u.mutation.IntentIDCleared() {
		_spec.ClearField(artifact.FieldIntentID, field.TypeString)
	}
	if value, ok := _u.mutation.TaskID(); ok {
		_spec.SetField(artifact.FieldTaskID, field.TypeString, value)
	}
	if _u.mutation.TaskIDCleared() {
		_spec.ClearField(artifact.FieldTaskID, field.TypeString)
	}
	if value, ok := _u.mutation.ExecutionID(); ok {
		_spec.SetField(artifact.FieldExecutionID, field.TypeString, value)
	}
	if value, ok := _u.mutation.PlaybookCode(); ok {
		_spec.SetField(artifact.FieldPlaybookCode, field.TypeString, value)
	}
	if value, ok := _u.mutation.ArtifactType(); ok {
		_spec.SetField(artifact.FieldArtifactType, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.Title(); ok {
		_spec.SetField(artifact.FieldTitle, field.TypeString, value)
	}
	if value, ok := _u.mutation.Summary(); ok {
		_spec.SetField(artifact.FieldSummary, field.TypeString, value)
	}
	if _u.mutation.SummaryCleared() {
		_spec.ClearField(artifact.FieldSummary, field.TypeString)
	}
	if value, ok := _u.mutation.Content(); ok {
		_spec.SetField(artifact.FieldContent, field.TypeJSON, value)
	}
	if _u.mutation.ContentCleared() {
		_spec.ClearField(artifact.FieldContent, field.TypeJSON)
	}
	if value, ok := _u.mutation.StorageRef(); ok {
		_spec.SetField(artifact.FieldStorageRef, field.TypeString, value)
	}
	if _u.mutation.StorageRefCleared() {
		_spec.ClearField(artifact.FieldStorageRef, field.TypeString)
	}
	if value, ok := _u.mutation.SyncState(); ok {
		_spec.SetField(artifact.FieldSyncState, field.TypeEnum, value)
	}
	if _u.mutation.SyncStateCleared() {
		_spec.ClearField(artifact.FieldSyncState, field.TypeEnum)
	}
	if value, ok := _u.mutation.PrimaryActionType(); ok {
		_spec.SetField(artifact.FieldPrimaryActionType, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.Version(); ok {
		_spec.SetField(artifact.FieldVersion, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedVersion(); ok {
		_spec.AddField(artifact.FieldVersion, field.TypeInt, value)
	}
	if value, ok := _u.mutation.IsLatest(); ok {
		_spec.SetField(artifact.FieldIsLatest, field.TypeBool, value)
	}
	if value, ok := _u.mutation.Metadata(); ok {
		_spec.SetField(artifact.FieldMetadata, field.TypeJSON, value)
	}
	if _u.mutation.MetadataCleared() {
		_spec.ClearField(artifact.FieldMetadata, field.TypeJSON)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(artifact.FieldUpdatedAt, field.TypeTime, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{artifact.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// ArtifactUpdateOne is the builder for updating a single Artifact entity.
type ArtifactUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *ArtifactMutation
}

// SetWorkspaceID sets the "workspace_id" field.
func (_u *ArtifactUpdateOne) SetWorkspaceID(v string) *ArtifactUpdateOne {
	_u.mutation.SetWorkspaceID(v)
	return _u
}

// SetNillableWorkspaceID sets the "workspace_id" field if the given value is not nil.
func (_u *ArtifactUpdateOne) SetNillableWorkspaceID(v *string) *ArtifactUpdateOne {
	if v != nil {
		_u.SetWorkspaceID(*v)
	}
	return _u
}

// SetIntentID sets the "intent_id" field.
func (_u *ArtifactUpdateOne) SetIntentID(v string) *ArtifactUpdateOne {
	_u.mutation.SetIntentID(v)
	return _u
}

// SetNillableIntentID sets the "intent_id" field if the given value is not nil.
func (_u *ArtifactUpdateOne) SetNillableIntentID(v *string) *ArtifactUpdateOne {
	if v != nil {
		_u.SetIntentID(*v)
	}
	return _u
}

// ClearIntentID clears the value of the "intent_id" field.
func (_u *ArtifactUpdateOne) ClearIntentID() *ArtifactUpdateOne {
	_u.mutation.ClearIntentID()
	return _u
}

// SetTaskID sets the "task_id" field.
func (_u *ArtifactUpdateOne) SetTaskID(v string) *ArtifactUpdateOne {
	_u.mutation.SetTaskID(v)
	return _u
}

// SetNillableTaskID sets the "task_id" field if the given value is not nil.
func (_u *ArtifactUpdateOne) SetNillableTaskID(v *string) *ArtifactUpdateOne {
	if v != nil {
		_u.SetTaskID(*v)
	}
	return _u
}

// ClearTaskID clears the value of the "task_id" field.
func (_u *ArtifactUpdateOne) ClearTaskID() *ArtifactUpdateOne {
	_u.mutation.ClearTaskID()
	return _u
}

// SetExecutionID sets the "execution_id" field.
func (_u *ArtifactUpdateOne) SetExecutionID(v string) *ArtifactUpdateOne {
	_u.mutation.SetExecutionID(v)
	return _u
}

// SetNillableExecutionID sets the "execution_id" field if the given value is not nil.
func (_u *ArtifactUpdateOne) SetNillableExecutionID(v *string) *ArtifactUpdateOne {
	if v != nil {
		_u.SetExecutionID(*v)
	}
	return _u
}

// SetPlaybookCode sets the "playbook_code" field.
func (_u *ArtifactUpdateOne) SetPlaybookCode(v string) *ArtifactUpdateOne {
	_u.mutation.SetPlaybookCode(v)
	return _u
}

// SetNillablePlaybookCode sets the "playbook_code" field if the given value is not nil.
func (_u *ArtifactUpdateOne) SetNillablePlaybookCode(v *string) *ArtifactUpdateOne {
	if v != nil {
		_u.SetPlaybookCode(*v)
	}
	return _u
}

// SetArtifactType sets the "artifact_type" field.
func (_u *ArtifactUpdateOne) SetArtifactType(v artifact.ArtifactType) *ArtifactUpdateOne {
	_u.mutation.SetArtifactType(v)
	return _u
}

// SetNillableArtifactType sets the "artifact_type" field if the given value is not nil.
func (_u *ArtifactUpdateOne) SetNillableArtifactType(v *artifact.ArtifactType) *ArtifactUpdateOne {
	if v != nil {
		_u.SetArtifactType(*v)
	}
	return _u
}

// SetTitle sets the "title" field.
func (_u *ArtifactUpdateOne) SetTitle(v string) *ArtifactUpdateOne {
	_u.mutation.SetTitle(v)
	return _u
}

// SetNillableTitle sets the "title" field if the given value is not nil.
func (_u *ArtifactUpdateOne) SetNillableTitle(v *string) *ArtifactUpdateOne {
	if v != nil {
		_u.SetTitle(*v)
	}
	return _u
}

// SetSummary sets the "summary" field.
func (_u *ArtifactUpdateOne) SetSummary(v string) *ArtifactUpdateOne {
	_u.mutation.SetSummary(v)
	return _u
}

// SetNillableSummary sets the "summary" field if the given value is not nil.
func (_u *ArtifactUpdateOne) SetNillableSummary(v *string) *ArtifactUpdateOne {
	if v != nil {
		_u.SetSummary(*v)
	}
	return _u
}

// ClearSummary clears the value of the "summary" field.
func (_u *ArtifactUpdateOne) ClearSummary() *ArtifactUpdateOne {
	_u.mutation.ClearSummary()
	return _u
}

// SetContent sets the "content" field.
func (_u *ArtifactUpdateOne) SetContent(v map[string]interface{}) *ArtifactUpdateOne {
	_u.mutation.SetContent(v)
	return _u
}

// ClearContent clears the value of the "content" field.
func (_u *ArtifactUpdateOne) ClearContent() *ArtifactUpdateOne {
	_u.mutation.ClearContent()
	return _u
}

// SetStorageRef sets the "storage_ref" field.
func (_u *ArtifactUpdateOne) SetStorageRef(v string) *ArtifactUpdateOne {
	_u.mutation.SetStorageRef(v)
	return _u
}

// SetNillableStorageRef sets the "storage_ref" field if the given value is not nil.
func (_u *ArtifactUpdateOne) SetNillableStorageRef(v *string) *ArtifactUpdateOne {
	if v != nil {
		_u.SetStorageRef(*v)
	}
	return _u
}

// ClearStorageRef clears the value of the "storage_ref" field.
func (_u *ArtifactUpdateOne) ClearStorageRef() *ArtifactUpdateOne {
	_u.mutation.ClearStorageRef()
	return _u
}

// SetSyncState sets the "sync_state" field.
func (_u *ArtifactUpdateOne) SetSyncState(v artifact.SyncState) *ArtifactUpdateOne {
	_u.mutation.SetSyncState(v)
	return _u
}

// SetNillableSyncState sets the "sync_state" field if the given value is not nil.
func (_u *ArtifactUpdateOne) SetNillableSyncState(v *artifact.SyncState) *ArtifactUpdateOne {
	if v != nil {
		_u.SetSyncState(*v)
	}
	return _u
}

// ClearSyncState clears the value of the "sync_state" field.
func (_u *ArtifactUpdateOne) ClearSyncState() *ArtifactUpdateOne {
	_u.mutation.ClearSyncState()
	return _u
}

// SetPrimaryActionType sets the "primary_action_type" field.
func (_u *ArtifactUpdateOne) SetPrimaryActionType(v artifact.PrimaryActionType) *ArtifactUpdateOne {
	_u.mutation.SetPrimaryActionType(v)
	return _u
}

// SetNillablePrimaryActionType sets the "primary_action_type" field if the given value is not nil.
func (_u *ArtifactUpdateOne) SetNillablePrimaryActionType(v *artifact.PrimaryActionType) *ArtifactUpdateOne {
	if v != nil {
		_u.SetPrimaryActionType(*v)
	}
	return _u
}

// SetVersion sets the "version" field.
func (_u *ArtifactUpdateOne) SetVersion(v int) *ArtifactUpdateOne {
	_u.mutation.ResetVersion()
	_u.mutation.SetVersion(v)
	return _u
}

// SetNillableVersion sets the "version" field if the given value is not nil.
func (_u *ArtifactUpdateOne) SetNillableVersion(v *int) *ArtifactUpdateOne {
	if v != nil {
		_u.SetVersion(*v)
	}
	return _u
}

// AddVersion adds value to the "version" field.
func (_u *ArtifactUpdateOne) AddVersion(v int) *ArtifactUpdateOne {
	_u.mutation.AddVersion(v)
	return _u
}

// SetIsLatest sets the "is_latest" field.
func (_u *ArtifactUpdateOne) SetIsLatest(v bool) *ArtifactUpdateOne {
	_u.mutation.SetIsLatest(v)
	return _u
}

// SetNillableIsLatest sets the "is_latest" field if the given value is not nil.
func (_u *ArtifactUpdateOne) SetNillableIsLatest(v *bool) *ArtifactUpdateOne {
	if v != nil {
		_u.SetIsLatest(*v)
	}
	return _u
}

// SetMetadata sets the "metadata" field.
func (_u *ArtifactUpdateOne) SetMetadata(v map[string]interface{}) *ArtifactUpdateOne {
	_u.mutation.SetMetadata(v)
	return _u
}

// ClearMetadata clears the value of the "metadata" field.
func (_u *ArtifactUpdateOne) ClearMetadata() *ArtifactUpdateOne {
	_u.mutation.ClearMetadata()
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *ArtifactUpdateOne) SetUpdatedAt(v time.Time) *ArtifactUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_u *ArtifactUpdateOne) SetNillableUpdatedAt(v *time.Time) *ArtifactUpdateOne {
	if v != nil {
		_u.SetUpdatedAt(*v)
	}
	return _u
}

// Mutation returns the ArtifactMutation object of the builder.
func (_u *ArtifactUpdateOne) Mutation() *ArtifactMutation {
	return _u.mutation
}

// Where appends a list predicates to the ArtifactUpdate builder.
func (_u *ArtifactUpdateOne) Where(ps ...predicate.Artifact) *ArtifactUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *ArtifactUpdateOne) Select(field string, fields ...string) *ArtifactUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated Artifact entity.
func (_u *ArtifactUpdateOne) Save(ctx context.Context) (*Artifact, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ArtifactUpdateOne) SaveX(ctx context.Context) *Artifact {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *ArtifactUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ArtifactUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ArtifactUpdateOne) check() error {
	if v, ok := _u.mutation.ArtifactType(); ok {
		if err := artifact.ArtifactTypeValidator(v); err != nil {
			return &ValidationError{Name: "artifact_type", err: fmt.Errorf(`ent: validator failed for field "Artifact.artifact_type": %w`, err)}
		}
	}
	if v, ok := _u.mutation.SyncState(); ok {
		if err := artifact.SyncStateValidator(v); err != nil {
			return &ValidationError{Name: "sync_state", err: fmt.Errorf(`ent: validator failed for field "Artifact.sync_state": %w`, err)}
		}
	}
	if v, ok := _u.mutation.PrimaryActionType(); ok {
		if err := artifact.PrimaryActionTypeValidator(v); err != nil {
			return &ValidationError{Name: "primary_action_type", err: fmt.Errorf(`ent: validator failed for field "Artifact.primary_action_type": %w`, err)}
		}
	}
	return nil
}

func (_u *ArtifactUpdateOne) sqlSave(ctx context.Context) (_node *Artifact, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(artifact.Table, artifact.Columns, sqlgraph.NewFieldSpec(artifact.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "Artifact.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, artifact.FieldID)
		for _, f := range fields {
			if !artifact.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != artifact.FieldID {
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
		_spec.SetField(artifact.FieldWorkspaceID, field.TypeString, value)
	}
	if value, ok := _u.mutation.IntentID(); ok {
		_spec.SetField(artifact.FieldIntentID, field.TypeString, value)
	}
	if _u.mutation.IntentIDCleared() {
		_spec.ClearField(artifact.FieldIntentID, field.TypeString)
	}
	if value, ok := _u.mutation.TaskID(); ok {
		_spec.SetField(artifact.FieldTaskID, field.TypeString, value)
	}
	if _u.mutation.TaskIDCleared() {
		_spec.ClearField(artifact.FieldTaskID, field.TypeString)
	}
	if value, ok := _u.mutation.ExecutionID(); ok {
		_spec.SetField(artifact.FieldExecutionID, field.TypeString, value)
	}
	if value, ok := _u.mutation.PlaybookCode(); ok {
		_spec.SetField(artifact.FieldPlaybookCode, field.TypeString, value)
	}
	if value, ok := _u.mutation.ArtifactType(); ok {
		_spec.SetField(artifact.FieldArtifactType, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.Title(); ok {
		_spec.SetField(artifact.FieldTitle, field.TypeString, value)
	}
	if value, ok := _u.mutation.Summary(); ok {
		_spec.SetField(artifact.FieldSummary, field.TypeString, value)
	}
	if _u.mutation.SummaryCleared() {
		_spec.ClearField(artifact.FieldSummary, field.TypeString)
	}
	if value, ok := _u.mutation.Content(); ok {
		_spec.SetField(artifact.FieldContent, field.TypeJSON, value)
	}
	if _u.mutation.ContentCleared() {
		_spec.ClearField(artifact.FieldContent, field.TypeJSON)
	}
	if value, ok := _u.mutation.StorageRef(); ok {
		_spec.SetField(artifact.FieldStorageRef, field.TypeString, value)
	}
	if _u.mutation.StorageRefCleared() {
		_spec.ClearField(artifact.FieldStorageRef, field.TypeString)
	}
	if value, ok := _u.mutation.SyncState(); ok {
		_spec.SetField(artifact.FieldSyncState, field.TypeEnum, value)
	}
	if _u.mutation.SyncStateCleared() {
		_spec.ClearField(artifact.FieldSyncState, field.TypeEnum)
	}
	if value, ok := _u.mutation.PrimaryActionType(); ok {
		_spec.SetField(artifact.FieldPrimaryActionType, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.Version(); ok {
		_spec.SetField(artifact.FieldVersion, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedVersion(); ok {
		_spec.AddField(artifact.FieldVersion, field.TypeInt, value)
	}
	if value, ok := _u.mutation.IsLatest(); ok {
		_spec.SetField(artifact.FieldIsLatest, field.TypeBool, value)
	}
	if value, ok := _u.mutation.Metadata(); ok {
		_spec.SetField(artifact.FieldMetadata, field.TypeJSON, value)
	}
	if _u.mutation.MetadataCleared() {
		_spec.ClearField(artifact.FieldMetadata, field.TypeJSON)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(artifact.FieldUpdatedAt, field.TypeTime, value)
	}
	_node = &Artifact{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{artifact.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
