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
	"github.com/cortexops/playbookd/ent/artifact"
)

// ArtifactCreate is the builder for creating a Artifact entity.
type ArtifactCreate struct {
	config
	mutation *ArtifactMutation
	hooks    []Hook
	conflict []sql.ConflictOption
}

// SetWorkspaceID sets the "workspace_id" field.
func (_c *ArtifactCreate) SetWorkspaceID(v string) *ArtifactCreate {
	_c.mutation.SetWorkspaceID(v)
	return _c
}

// SetIntentID sets the "intent_id" field.
func (_c *ArtifactCreate) SetIntentID(v string) *ArtifactCreate {
	_c.mutation.SetIntentID(v)
	return _c
}

// SetNillableIntentID sets the "intent_id" field if the given value is not nil.
func (_c *ArtifactCreate) SetNillableIntentID(v *string) *ArtifactCreate {
	if v != nil {
		_c.SetIntentID(*v)
	}
	return _c
}

// SetTaskID sets the "task_id" field.
func (_c *ArtifactCreate) SetTaskID(v string) *ArtifactCreate {
	_c.mutation.SetTaskID(v)
	return _c
}

// SetNillableTaskID sets the "task_id" field if the given value is not nil.
func (_c *ArtifactCreate) SetNillableTaskID(v *string) *ArtifactCreate {
	if v != nil {
		_c.SetTaskID(*v)
	}
	return _c
}

// SetExecutionID sets the "execution_id" field.
func (_c *ArtifactCreate) SetExecutionID(v string) *ArtifactCreate {
	_c.mutation.SetExecutionID(v)
	return _c
}

// SetPlaybookCode sets the "playbook_code" field.
func (_c *ArtifactCreate) SetPlaybookCode(v string) *ArtifactCreate {
	_c.mutation.SetPlaybookCode(v)
	return _c
}

// SetArtifactType sets the "artifact_type" field.
func (_c *ArtifactCreate) SetArtifactType(v artifact.ArtifactType) *ArtifactCreate {
	_c.mutation.SetArtifactType(v)
	return _c
}

// SetTitle sets the "title" field.
func (_c *ArtifactCreate) SetTitle(v string) *ArtifactCreate {
	_c.mutation.SetTitle(v)
	return _c
}

// SetSummary sets the "summary" field.
func (_c *ArtifactCreate) SetSummary(v string) *ArtifactCreate {
	_c.mutation.SetSummary(v)
	return _c
}

// SetNillableSummary sets the "summary" field if the given value is not nil.
func (_c *ArtifactCreate) SetNillableSummary(v *string) *ArtifactCreate {
	if v != nil {
		_c.SetSummary(*v)
	}
	return _c
}

// SetContent sets the "content" field.
func (_c *ArtifactCreate) SetContent(v map[string]interface{}) *ArtifactCreate {
	_c.mutation.SetContent(v)
	return _c
}

// SetStorageRef sets the "storage_ref" field.
func (_c *ArtifactCreate) SetStorageRef(v string) *ArtifactCreate {
	_c.mutation.SetStorageRef(v)
	return _c
}

// SetNillableStorageRef sets the "storage_ref" field if the given value is not nil.
func (_c *ArtifactCreate) SetNillableStorageRef(v *string) *ArtifactCreate {
	if v != nil {
		_c.SetStorageRef(*v)
	}
	return _c
}

// SetSyncState sets the "sync_state" field.
func (_c *ArtifactCreate) SetSyncState(v artifact.SyncState) *ArtifactCreate {
	_c.mutation.SetSyncState(v)
	return _c
}

// SetNillableSyncState sets the "sync_state" field if the given value is not nil.
func (_c *ArtifactCreate) SetNillableSyncState(v *artifact.SyncState) *ArtifactCreate {
	if v != nil {
		_c.SetSyncState(*v)
	}
	return _c
}

// SetPrimaryActionType sets the "primary_action_type" field.
func (_c *ArtifactCreate) SetPrimaryActionType(v artifact.PrimaryActionType) *ArtifactCreate {
	_c.mutation.SetPrimaryActionType(v)
	return _c
}

// SetNillablePrimaryActionType sets the "primary_action_type" field if the given value is not nil.
func (_c *ArtifactCreate) SetNillablePrimaryActionType(v *artifact.PrimaryActionType) *ArtifactCreate {
	if v != nil {
		_c.SetPrimaryActionType(*v)
	}
	return _c
}

// SetVersion sets the "version" field.
func (_c *ArtifactCreate) SetVersion(v int) *ArtifactCreate {
	_c.mutation.SetVersion(v)
	return _c
}

// SetNillableVersion sets the "version" field if the given value is not nil.
func (_c *ArtifactCreate) SetNillableVersion(v *int) *ArtifactCreate {
	if v != nil {
		_c.SetVersion(*v)
	}
	return _c
}

// SetIsLatest sets the "is_latest" field.
func (_c *ArtifactCreate) SetIsLatest(v bool) *ArtifactCreate {
	_c.mutation.SetIsLatest(v)
	return _c
}

// SetNillableIsLatest sets the "is_latest" field if the given value is not nil.
func (_c *ArtifactCreate) SetNillableIsLatest(v *bool) *ArtifactCreate {
	if v != nil {
		_c.SetIsLatest(*v)
	}
	return _c
}

// SetMetadata sets the "metadata" field.
func (_c *ArtifactCreate) SetMetadata(v map[string]interface{}) *ArtifactCreate {
	_c.mutation.SetMetadata(v)
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *ArtifactCreate) SetCreatedAt(v time.Time) *ArtifactCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *ArtifactCreate) SetNillableCreatedAt(v *time.Time) *ArtifactCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *ArtifactCreate) SetUpdatedAt(v time.Time) *ArtifactCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *ArtifactCreate) SetNillableUpdatedAt(v *time.Time) *ArtifactCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *ArtifactCreate) SetID(v string) *ArtifactCreate {
	_c.mutation.SetID(v)
	return _c
}

// Mutation returns the ArtifactMutation object of the builder.
func (_c *ArtifactCreate) Mutation() *ArtifactMutation {
	return _c.mutation
}

// Save creates the Artifact in the database.
func (_c *ArtifactCreate) Save(ctx context.Context) (*Artifact, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *ArtifactCreate) SaveX(ctx context.Context) *Artifact {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ArtifactCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ArtifactCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *ArtifactCreate) defaults() {
	if _, ok := _c.mutation.PrimaryActionType(); !ok {
		v := artifact.DefaultPrimaryActionType
		_c.mutation.SetPrimaryActionType(v)
	}
	if _, ok := _c.mutation.Version(); !ok {
		v := artifact.DefaultVersion
		_c.mutation.SetVersion(v)
	}
	if _, ok := _c.mutation.IsLatest(); !ok {
		v := artifact.DefaultIsLatest
		_c.mutation.SetIsLatest(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := artifact.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		v := artifact.DefaultUpdatedAt()
		_c.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *ArtifactCreate) check() error {
	if _, ok := _c.mutation.WorkspaceID(); !ok {
		return &ValidationError{Name: "workspace_id", err: errors.New(`ent: missing required field "Artifact.workspace_id"`)}
	}
	if _, ok := _c.mutation.ExecutionID(); !ok {
		return &ValidationError{Name: "execution_id", err: errors.New(`ent: missing required field "Artifact.execution_id"`)}
	}
	if _, ok := _c.mutation.PlaybookCode(); !ok {
		return &ValidationError{Name: "playbook_code", err: errors.New(`ent: missing required field "Artifact.playbook_code"`)}
	}
	if _, ok := _c.mutation.ArtifactType(); !ok {
		return &ValidationError{Name: "artifact_type", err: errors.New(`ent: missing required field "Artifact.artifact_type"`)}
	}
	if v, ok := _c.mutation.ArtifactType(); ok {
		if err := artifact.ArtifactTypeValidator(v); err != nil {
			return &ValidationError{Name: "artifact_type", err: fmt.Errorf(`ent: validator failed for field "Artifact.artifact_type": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Title(); !ok {
		return &ValidationError{Name: "title", err: errors.New(`ent: missing required field "Artifact.title"`)}
	}
	if v, ok := _c.mutation.SyncState(); ok {
		if err := artifact.SyncStateValidator(v); err != nil {
			return &ValidationError{Name: "sync_state", err: fmt.Errorf(`ent: validator failed for field "Artifact.sync_state": %w`, err)}
		}
	}
	if _, ok := _c.mutation.PrimaryActionType(); !ok {
		return &ValidationError{Name: "primary_action_type", err: errors.New(`ent: missing required field "Artifact.primary_action_type"`)}
	}
	if v, ok := _c.mutation.PrimaryActionType(); ok {
		if err := artifact.PrimaryActionTypeValidator(v); err != nil {
			return &ValidationError{Name: "primary_action_type", err: fmt.Errorf(`ent: validator failed for field "Artifact.primary_action_type": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Version(); !ok {
		return &ValidationError{Name: "version", err: errors.New(`ent: missing required field "Artifact.version"`)}
	}
	if _, ok := _c.mutation.IsLatest(); !ok {
		return &ValidationError{Name: "is_latest", err: errors.New(`ent: missing required field "Artifact.is_latest"`)}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "Artifact.created_at"`)}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`ent: missing required field "Artifact.updated_at"`)}
	}
	return nil
}

func (_c *ArtifactCreate) sqlSave(ctx context.Context) (*Artifact, error) {
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
			return nil, fmt.Errorf("unexpected Artifact.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *ArtifactCreate) createSpec() (*Artifact, *sqlgraph.CreateSpec) {
	var (
		_node = &Artifact{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(artifact.Table, sqlgraph.NewFieldSpec(artifact.FieldID, field.TypeString))
	)
	_spec.OnConflict = _c.conflict
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.WorkspaceID(); ok {
		_spec.SetField(artifact.FieldWorkspaceID, field.TypeString, value)
		_node.WorkspaceID = value
	}
	if value, ok := _c.mutation.IntentID(); ok {
		_spec.SetField(artifact.FieldIntentID, field.TypeString, value)
		_node.IntentID = &value
	}
	if value, ok := _c.mutation.TaskID(); ok {
		_spec.SetField(artifact.FieldTaskID, field.TypeString, value)
		_node.TaskID = &value
	}
	if value, ok := _c.mutation.ExecutionID(); ok {
		_spec.SetField(artifact.FieldExecutionID, field.TypeString, value)
		_node.ExecutionID = value
	}
	if value, ok := _c.mutation.PlaybookCode(); ok {
		_spec.SetField(artifact.FieldPlaybookCode, field.TypeString, value)
		_node.PlaybookCode = value
	}
	if value, ok := _c.mutation.ArtifactType(); ok {
		_spec.SetField(artifact.FieldArtifactType, field.TypeEnum, value)
		_node.ArtifactType = value
	}
	if value, ok := _c.mutation.Title(); ok {
		_spec.SetField(artifact.FieldTitle, field.TypeString, value)
		_node.Title = value
	}
	if value, ok := _c.mutation.Summary(); ok {
		_spec.SetField(artifact.FieldSummary, field.TypeString, value)
		_node.Summary = value
	}
	if value, ok := _c.mutation.Content(); ok {
		_spec.SetField(artifact.FieldContent, field.TypeJSON, value)
		_node.Content = value
	}
	if value, ok := _c.mutation.StorageRef(); ok {
		_spec.SetField(artifact.FieldStorageRef, field.TypeString, value)
		_node.StorageRef = &value
	}
	if value, ok := _c.mutation.SyncState(); ok {
		_spec.SetField(artifact.FieldSyncState, field.TypeEnum, value)
		_node.SyncState = &value
	}
	if value, ok := _c.mutation.PrimaryActionType(); ok {
		_spec.SetField(artifact.FieldPrimaryActionType, field.TypeEnum, value)
		_node.PrimaryActionType = value
	}
	if value, ok := _c.mutation.Version(); ok {
		_spec.SetField(artifact.FieldVersion, field.TypeInt, value)
		_node.Version = value
	}
	if value, ok := _c.mutation.IsLatest(); ok {
		_spec.SetField(artifact.FieldIsLatest, field.TypeBool, value)
		_node.IsLatest = value
	}
	if value, ok := _c.mutation.Metadata(); ok {
		_spec.SetField(artifact.FieldMetadata, field.TypeJSON, value)
		_node.Metadata = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(artifact.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(artifact.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	return _node, _spec
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.Artifact.Create().
//		SetWorkspaceID(v).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.ArtifactUpsert) {
//			SetWorkspaceID(v+v).
//		}).
//		Exec(ctx)
func (_c *ArtifactCreate) OnConflict(opts ...sql.ConflictOption) *ArtifactUpsertOne {
	_c.conflict = opts
	return &ArtifactUpsertOne{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.Artifact.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *ArtifactCreate) OnConflictColumns(columns ...string) *ArtifactUpsertOne {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &ArtifactUpsertOne{
		create: _c,
	}
}

type (
	// ArtifactUpsertOne is the builder for "upsert"-ing
	//  one Artifact node.
	ArtifactUpsertOne struct {
		create *ArtifactCreate
	}

	// ArtifactUpsert is the "OnConflict" setter.
	ArtifactUpsert struct {
		*sql.UpdateSet
	}
)

// SetWorkspaceID sets the "workspace_id" field.
func (u *ArtifactUpsert) SetWorkspaceID(v string) *ArtifactUpsert {
	u.Set(artifact.FieldWorkspaceID, v)
	return u
}

// UpdateWorkspaceID sets the "workspace_id" field to the value that was provided on create.
func (u *ArtifactUpsert) UpdateWorkspaceID() *ArtifactUpsert {
	u.SetExcluded(artifact.FieldWorkspaceID)
	return u
}

// SetIntentID sets the "intent_id" field.
func (u *ArtifactUpsert) SetIntentID(v string) *ArtifactUpsert {
	u.Set(artifact.FieldIntentID, v)
	return u
}

// UpdateIntentID sets the "intent_id" field to the value that was provided on create.
func (u *ArtifactUpsert) UpdateIntentID() *ArtifactUpsert {
	u.SetExcluded(artifact.FieldIntentID)
	return u
}

// ClearIntentID clears the value of the "intent_id" field.
func (u *ArtifactUpsert) ClearIntentID() *ArtifactUpsert {
	u.SetNull(artifact.FieldIntentID)
	return u
}

// SetTaskID sets the "task_id" field.
func (u *ArtifactUpsert) SetTaskID(v string) *ArtifactUpsert {
	u.Set(artifact.FieldTaskID, v)
	return u
}

// UpdateTaskID sets the "task_id" field to the value that was provided on create.
func (u *ArtifactUpsert) UpdateTaskID() *ArtifactUpsert {
	u.SetExcluded(artifact.FieldTaskID)
	return u
}

// ClearTaskID clears the value of the "task_id" field.
func (u *ArtifactUpsert) ClearTaskID() *ArtifactUpsert {
	u.SetNull(artifact.FieldTaskID)
	return u
}

// SetExecutionID sets the "execution_id" field.
func (u *ArtifactUpsert) SetExecutionID(v string) *ArtifactUpsert {
	u.Set(artifact.FieldExecutionID, v)
	return u
}

// UpdateExecutionID sets the "execution_id" field to the value that was provided on create.
func (u *ArtifactUpsert) UpdateExecutionID() *ArtifactUpsert {
	u.SetExcluded(artifact.FieldExecutionID)
	return u
}

// SetPlaybookCode sets the "playbook_code" field.
func (u *ArtifactUpsert) SetPlaybookCode(v string) *ArtifactUpsert {
	u.Set(artifact.FieldPlaybookCode, v)
	return u
}

// UpdatePlaybookCode sets the "playbook_code" field to the value that was provided on create.
func (u *ArtifactUpsert) UpdatePlaybookCode() *ArtifactUpsert {
	u.SetExcluded(artifact.FieldPlaybookCode)
	return u
}

// SetArtifactType sets the "artifact_type" field.
func (u *ArtifactUpsert) SetArtifactType(v artifact.ArtifactType) *ArtifactUpsert {
	u.Set(artifact.FieldArtifactType, v)
	return u
}

// UpdateArtifactType sets the "artifact_type" field to the value that was provided on create.
func (u *ArtifactUpsert) UpdateArtifactType() *ArtifactUpsert {
	u.SetExcluded(artifact.FieldArtifactType)
	return u
}

// SetTitle sets the "title" field.
func (u *ArtifactUpsert) SetTitle(v string) *ArtifactUpsert {
	u.Set(artifact.FieldTitle, v)
	return u
}

// UpdateTitle sets the "title" field to the value that was provided on create.
func (u *ArtifactUpsert) UpdateTitle() *ArtifactUpsert {
	u.SetExcluded(artifact.FieldTitle)
	return u
}

// SetSummary sets the "summary" field.
func (u *ArtifactUpsert) SetSummary(v string) *ArtifactUpsert {
	u.Set(artifact.FieldSummary, v)
	return u
}

// UpdateSummary sets the "summary" field to the value that was provided on create.
func (u *ArtifactUpsert) UpdateSummary() *ArtifactUpsert {
	u.SetExcluded(artifact.FieldSummary)
	return u
}

// ClearSummary clears the value of the "summary" field.
func (u *ArtifactUpsert) ClearSummary() *ArtifactUpsert {
	u.SetNull(artifact.FieldSummary)
	return u
}

// SetContent sets the "content" field.
func (u *ArtifactUpsert) SetContent(v map[string]interface{}) *ArtifactUpsert {
	u.Set(artifact.FieldContent, v)
	return u
}

// UpdateContent sets the "content" field to the value that was provided on create.
func (u *ArtifactUpsert) UpdateContent() *ArtifactUpsert {
	u.SetExcluded(artifact.FieldContent)
	return u
}

// ClearContent clears the value of the "content" field.
func (u *ArtifactUpsert) ClearContent() *ArtifactUpsert {
	u.SetNull(artifact.FieldContent)
	return u
}

// SetStorageRef sets the "storage_ref" field.
func (u *ArtifactUpsert) SetStorageRef(v string) *ArtifactUpsert {
	u.Set(artifact.FieldStorageRef, v)
	return u
}

// UpdateStorageRef sets the "storage_ref" field to the value that was provided on create.
func (u *ArtifactUpsert) UpdateStorageRef() *ArtifactUpsert {
	u.SetExcluded(artifact.FieldStorageRef)
	return u
}

// ClearStorageRef clears the value of the "storage_ref" field.
func (u *ArtifactUpsert) ClearStorageRef() *ArtifactUpsert {
	u.SetNull(artifact.FieldStorageRef)
	return u
}

// SetSyncState sets the "sync_state" field.
func (u *ArtifactUpsert) SetSyncState(v artifact.SyncState) *ArtifactUpsert {
	u.Set(artifact.FieldSyncState, v)
	return u
}

// UpdateSyncState sets the "sync_state" field to the value that was provided on create.
func (u *ArtifactUpsert) UpdateSyncState() *ArtifactUpsert {
	u.SetExcluded(artifact.FieldSyncState)
	return u
}

// ClearSyncState clears the value of the "sync_state" field.
func (u *ArtifactUpsert) ClearSyncState() *ArtifactUpsert {
	u.SetNull(artifact.FieldSyncState)
	return u
}

// SetPrimaryActionType sets the "primary_action_type" field.
func (u *ArtifactUpsert) SetPrimaryActionType(v artifact.PrimaryActionType) *ArtifactUpsert {
	u.Set(artifact.FieldPrimaryActionType, v)
	return u
}

// UpdatePrimaryActionType sets the "primary_action_type" field to the value that was provided on create.
func (u *ArtifactUpsert) UpdatePrimaryActionType() *ArtifactUpsert {
	u.SetExcluded(artifact.FieldPrimaryActionType)
	return u
}

// SetVersion sets the "version" field.
func (u *ArtifactUpsert) SetVersion(v int) *ArtifactUpsert {
	u.Set(artifact.FieldVersion, v)
	return u
}

// UpdateVersion sets the "version" field to the value that was provided on create.
func (u *ArtifactUpsert) UpdateVersion() *ArtifactUpsert {
	u.SetExcluded(artifact.FieldVersion)
	return u
}

// AddVersion adds v to the "version" field.
func (u *ArtifactUpsert) AddVersion(v int) *ArtifactUpsert {
	u.Add(artifact.FieldVersion, v)
	return u
}

// SetIsLatest sets the "is_latest" field.
func (u *ArtifactUpsert) SetIsLatest(v bool) *ArtifactUpsert {
	u.Set(artifact.FieldIsLatest, v)
	return u
}

// UpdateIsLatest sets the "is_latest" field to the value that was provided on create.
func (u *ArtifactUpsert) UpdateIsLatest() *ArtifactUpsert {
	u.SetExcluded(artifact.FieldIsLatest)
	return u
}

// SetMetadata sets the "metadata" field.
func (u *ArtifactUpsert) SetMetadata(v map[string]interface{}) *ArtifactUpsert {
	u.Set(artifact.FieldMetadata, v)
	return u
}

// UpdateMetadata sets the "metadata" field to the value that was provided on create.
func (u *ArtifactUpsert) UpdateMetadata() *ArtifactUpsert {
	u.SetExcluded(artifact.FieldMetadata)
	return u
}

// ClearMetadata clears the value of the "metadata" field.
func (u *ArtifactUpsert) ClearMetadata() *ArtifactUpsert {
	u.SetNull(artifact.FieldMetadata)
	return u
}

// SetUpdatedAt sets the "updated_at" field.
func (u *ArtifactUpsert) SetUpdatedAt(v time.Time) *ArtifactUpsert {
	u.Set(artifact.FieldUpdatedAt, v)
	return u
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *ArtifactUpsert) UpdateUpdatedAt() *ArtifactUpsert {
	u.SetExcluded(artifact.FieldUpdatedAt)
	return u
}

// UpdateNewValues updates the mutable fields using the new values that were set on create except the ID field.
// Using this option is equivalent to using:
//
//	client.Artifact.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(artifact.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *ArtifactUpsertOne) UpdateNewValues() *ArtifactUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		if _, exists := u.create.mutation.ID(); exists {
			s.SetIgnore(artifact.FieldID)
		}
		if _, exists := u.create.mutation.CreatedAt(); exists {
			s.SetIgnore(artifact.FieldCreatedAt)
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.Artifact.Create().
//	    OnConflict(sql.ResolveWithIgnore()).
//	    Exec(ctx)
func (u *ArtifactUpsertOne) Ignore() *ArtifactUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *ArtifactUpsertOne) DoNothing() *ArtifactUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the ArtifactCreate.OnConflict
// documentation for more info.
func (u *ArtifactUpsertOne) Update(set func(*ArtifactUpsert)) *ArtifactUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&ArtifactUpsert{UpdateSet: update})
	}))
	return u
}

// SetWorkspaceID sets the "workspace_id" field.
func (u *ArtifactUpsertOne) SetWorkspaceID(v string) *ArtifactUpsertOne {
	return u.Update(func(s *ArtifactUpsert) {
		s.SetWorkspaceID(v)
	})
}

// UpdateWorkspaceID sets the "workspace_id" field to the value that was provided on create.
func (u *ArtifactUpsertOne) UpdateWorkspaceID() *ArtifactUpsertOne {
	return u.Update(func(s *ArtifactUpsert) {
		s.UpdateWorkspaceID()
	})
}

// SetIntentID sets the "intent_id" field.
func (u *ArtifactUpsertOne) SetIntentID(v string) *ArtifactUpsertOne {
	return u.Update(func(s *ArtifactUpsert) {
		s.SetIntentID(v)
	})
}

// UpdateIntentID sets the "intent_id" field to the value that was provided on create.
func (u *ArtifactUpsertOne) UpdateIntentID() *ArtifactUpsertOne {
	return u.Update(func(s *ArtifactUpsert) {
		s.UpdateIntentID()
	})
}

// ClearIntentID clears the value of the "intent_id" field.
func (u *ArtifactUpsertOne) ClearIntentID() *ArtifactUpsertOne {
	return u.Update(func(s *ArtifactUpsert) {
		s.ClearIntentID()
	})
}

// SetTaskID sets the "task_id" field.
func (u *ArtifactUpsertOne) SetTaskID(v string) *ArtifactUpsertOne {
	return u.Update(func(s *ArtifactUpsert) {
		s.SetTaskID(v)
	})
}

// UpdateTaskID sets the "task_id" field to the value that was provided on create.
func (u *ArtifactUpsertOne) UpdateTaskID() *ArtifactUpsertOne {
	return u.Update(func(s *ArtifactUpsert) {
		s.UpdateTaskID()
	})
}

// ClearTaskID clears the value of the "task_id" field.
func (u *ArtifactUpsertOne) ClearTaskID() *ArtifactUpsertOne {
	return u.Update(func(s *ArtifactUpsert) {
		s.ClearTaskID()
	})
}

// SetExecutionID sets the "execution_id" field.
func (u *ArtifactUpsertOne) SetExecutionID(v string) *ArtifactUpsertOne {
	return u.Update(func(s *ArtifactUpsert) {
		s.SetExecutionID(v)
	})
}

// UpdateExecutionID sets the "execution_id" field to the value that was provided on create.
func (u *ArtifactUpsertOne) UpdateExecutionID() *ArtifactUpsertOne {
	return u.Update(func(s *ArtifactUpsert) {
		s.UpdateExecutionID()
	})
}

// SetPlaybookCode sets the "playbook_code" field.
func (u *ArtifactUpsertOne) SetPlaybookCode(v string) *ArtifactUpsertOne {
	return u.Update(func(s *ArtifactUpsert) {
		s.SetPlaybookCode(v)
	})
}

// UpdatePlaybookCode sets the "playbook_code" field to the value that was provided on create.
func (u *ArtifactUpsertOne) UpdatePlaybookCode() *ArtifactUpsertOne {
	return u.Update(func(s *ArtifactUpsert) {
		s.UpdatePlaybookCode()
	})
}

// SetArtifactType sets the "artifact_type" field.
func (u *ArtifactUpsertOne) SetArtifactType(v artifact.ArtifactType) *ArtifactUpsertOne {
	return u.Update(func(s *ArtifactUpsert) {
		s.SetArtifactType(v)
	})
}

// UpdateArtifactType sets the "artifact_type" field to the value that was provided on create.
func (u *ArtifactUpsertOne) UpdateArtifactType() *ArtifactUpsertOne {
	return u.Update(func(s *ArtifactUpsert) {
		s.UpdateArtifactType()
	})
}

// SetTitle sets the "title" field.
func (u *ArtifactUpsertOne) SetTitle(v string) *ArtifactUpsertOne {
	return u.Update(func(s *ArtifactUpsert) {
		s.SetTitle(v)
	})
}

// UpdateTitle sets the "title" field to the value that was provided on create.
func (u *ArtifactUpsertOne) UpdateTitle() *ArtifactUpsertOne {
	return u.Update(func(s *ArtifactUpsert) {
		s.UpdateTitle()
	})
}

// SetSummary sets the "summary" field.
func (u *ArtifactUpsertOne) SetSummary(v string) *ArtifactUpsertOne {
	return u.Update(func(s *ArtifactUpsert) {
		s.SetSummary(v)
	})
}

// UpdateSummary sets the "summary" field to the value that was provided on create.
func (u *ArtifactUpsertOne) UpdateSummary() *ArtifactUpsertOne {
	return u.Update(func(s *ArtifactUpsert) {
		s.UpdateSummary()
	})
}

// ClearSummary clears the value of the "summary" field.
func (u *ArtifactUpsertOne) ClearSummary() *ArtifactUpsertOne {
	return u.Update(func(s *ArtifactUpsert) {
		s.ClearSummary()
	})
}

// SetContent sets the "content" field.
func (u *ArtifactUpsertOne) SetContent(v map[string]interface{}) *ArtifactUpsertOne {
	return u.Update(func(s *ArtifactUpsert) {
		s.SetContent(v)
	})
}

// UpdateContent sets the "content" field to the value that was provided on create.
func (u *ArtifactUpsertOne) UpdateContent() *ArtifactUpsertOne {
	return u.Update(func(s *ArtifactUpsert) {
		s.UpdateContent()
	})
}

// ClearContent clears the value of the "content" field.
func (u *ArtifactUpsertOne) ClearContent() *ArtifactUpsertOne {
	return u.Update(func(s *ArtifactUpsert) {
		s.ClearContent()
	})
}

// SetStorageRef sets the "storage_ref" field.
func (u *ArtifactUpsertOne) SetStorageRef(v string) *ArtifactUpsertOne {
	return u.Update(func(s *ArtifactUpsert) {
		s.SetStorageRef(v)
	})
}

// UpdateStorageRef sets the "storage_ref" field to the value that was provided on create.
func (u *ArtifactUpsertOne) UpdateStorageRef() *ArtifactUpsertOne {
	return u.Update(func(s *ArtifactUpsert) {
		s.UpdateStorageRef()
	})
}

// ClearStorageRef clears the value of the "storage_ref" field.
func (u *ArtifactUpsertOne) ClearStorageRef() *ArtifactUpsertOne {
	return u.Update(func(s *ArtifactUpsert) {
		s.ClearStorageRef()
	})
}

// SetSyncState sets the "sync_state" field.
func (u *ArtifactUpsertOne) SetSyncState(v artifact.SyncState) *ArtifactUpsertOne {
	return u.Update(func(s *ArtifactUpsert) {
		s.SetSyncState(v)
	})
}

// UpdateSyncState sets the "sync_state" field to the value that was provided on create.
func (u *ArtifactUpsertOne) UpdateSyncState() *ArtifactUpsertOne {
	return u.Update(func(s *ArtifactUpsert) {
		s.UpdateSyncState()
	})
}

// ClearSyncState clears the value of the "sync_state" field.
func (u *ArtifactUpsertOne) ClearSyncState() *ArtifactUpsertOne {
	return u.Update(func(s *ArtifactUpsert) {
		s.ClearSyncState()
	})
}

// SetPrimaryActionType sets the "primary_action_type" field.
func (u *ArtifactUpsertOne) SetPrimaryActionType(v artifact.PrimaryActionType) *ArtifactUpsertOne {
	return u.Update(func(s *ArtifactUpsert) {
		s.SetPrimaryActionType(v)
	})
}

// UpdatePrimaryActionType sets the "primary_action_type" field to the value that was provided on create.
func (u *ArtifactUpsertOne) UpdatePrimaryActionType() *ArtifactUpsertOne {
	return u.Update(func(s *ArtifactUpsert) {
		s.UpdatePrimaryActionType()
	})
}

// SetVersion sets the "version" field.
func (u *ArtifactUpsertOne) SetVersion(v int) *ArtifactUpsertOne {
	return u.Update(func(s *ArtifactUpsert) {
		s.SetVersion(v)
	})
}

// AddVersion adds v to the "version" field.
func (u *ArtifactUpsertOne) AddVersion(v int) *ArtifactUpsertOne {
	return u.Update(func(s *ArtifactUpsert) {
		s.AddVersion(v)
	})
}

// UpdateVersion sets the "version" field to the value that was provided on create.
func (u *ArtifactUpsertOne) UpdateVersion() *ArtifactUpsertOne {
	return u.Update(func(s *ArtifactUpsert) {
		s.UpdateVersion()
	})
}

// SetIsLatest sets the "is_latest" field.
func (u *ArtifactUpsertOne) SetIsLatest(v bool) *ArtifactUpsertOne {
	return u.Update(func(s *ArtifactUpsert) {
		s.SetIsLatest(v)
	})
}

// UpdateIsLatest sets the "is_latest" field to the value that was provided on create.
func (u *ArtifactUpsertOne) UpdateIsLatest() *ArtifactUpsertOne {
	return u.Update(func(s *ArtifactUpsert) {
		s.UpdateIsLatest()
	})
}

// SetMetadata sets the "metadata" field.
func (u *ArtifactUpsertOne) SetMetadata(v map[string]interface{}) *ArtifactUpsertOne {
	return u.Update(func(s *ArtifactUpsert) {
		s.SetMetadata(v)
	})
}

// UpdateMetadata sets the "metadata" field to the value that was provided on create.
func (u *ArtifactUpsertOne) UpdateMetadata() *ArtifactUpsertOne {
	return u.Update(func(s *ArtifactUpsert) {
		s.UpdateMetadata()
	})
}

// ClearMetadata clears the value of the "metadata" field.
func (u *ArtifactUpsertOne) ClearMetadata() *ArtifactUpsertOne {
	return u.Update(func(s *ArtifactUpsert) {
		s.ClearMetadata()
	})
}

// SetUpdatedAt sets the "updated_at" field.
func (u *ArtifactUpsertOne) SetUpdatedAt(v time.Time) *ArtifactUpsertOne {
	return u.Update(func(s *ArtifactUpsert) {
		s.SetUpdatedAt(v)
	})
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *ArtifactUpsertOne) UpdateUpdatedAt() *ArtifactUpsertOne {
	return u.Update(func(s *ArtifactUpsert) {
		s.UpdateUpdatedAt()
	})
}

// Exec executes the query.
func (u *ArtifactUpsertOne) Exec(ctx context.Context) error {
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for ArtifactCreate.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *ArtifactUpsertOne) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}

// Exec executes the UPSERT query and returns the inserted/updated ID.
func (u *ArtifactUpsertOne) ID(ctx context.Context) (id string, err error) {
	if u.create.driver.Dialect() == dialect.MySQL {
		// In case of "ON CONFLICT", there is no way to get back non-numeric ID
		// fields from the database since MySQL does not support the RETURNING clause.
		return id, errors.New("ent: ArtifactUpsertOne.ID is not supported by MySQL driver. Use ArtifactUpsertOne.Exec instead")
	}
	node, err := u.create.Save(ctx)
	if err != nil {
		return id, err
	}
	return node.ID, nil
}

// IDX is like ID, but panics if an error occurs.
func (u *ArtifactUpsertOne) IDX(ctx context.Context) string {
	id, err := u.ID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// ArtifactCreateBulk is the builder for creating many Artifact entities in bulk.
type ArtifactCreateBulk struct {
	config
	err      error
	builders []*ArtifactCreate
	conflict []sql.ConflictOption
}

// Save creates the Artifact entities in the database.
func (_c *ArtifactCreateBulk) Save(ctx context.Context) ([]*Artifact, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*Artifact, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*ArtifactMutation)
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
func (_c *ArtifactCreateBulk) SaveX(ctx context.Context) []*Artifact {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ArtifactCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ArtifactCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.Artifact.CreateBulk(builders...).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.ArtifactUpsert) {
//			SetWorkspaceID(v+v).
//		}).
//		Exec(ctx)
func (_c *ArtifactCreateBulk) OnConflict(opts ...sql.ConflictOption) *ArtifactUpsertBulk {
	_c.conflict = opts
	return &ArtifactUpsertBulk{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.Artifact.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *ArtifactCreateBulk) OnConflictColumns(columns ...string) *ArtifactUpsertBulk {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &ArtifactUpsertBulk{
		create: _c,
	}
}

// ArtifactUpsertBulk is the builder for "upsert"-ing
// a bulk of Artifact nodes.
type ArtifactUpsertBulk struct {
	create *ArtifactCreateBulk
}

// UpdateNewValues updates the mutable fields using the new values that
// were set on create. Using this option is equivalent to using:
//
//	client.Artifact.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(artifact.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *ArtifactUpsertBulk) UpdateNewValues() *ArtifactUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		for _, b := range u.create.builders {
			if _, exists := b.mutation.ID(); exists {
				s.SetIgnore(artifact.FieldID)
			}
			if _, exists := b.mutation.CreatedAt(); exists {
				s.SetIgnore(artifact.FieldCreatedAt)
			}
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.Artifact.Create().
//		OnConflict(sql.ResolveWithIgnore()).
//		Exec(ctx)
func (u *ArtifactUpsertBulk) Ignore() *ArtifactUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *ArtifactUpsertBulk) DoNothing() *ArtifactUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the ArtifactCreateBulk.OnConflict
// documentation for more info.
func (u *ArtifactUpsertBulk) Update(set func(*ArtifactUpsert)) *ArtifactUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&ArtifactUpsert{UpdateSet: update})
	}))
	return u
}

// SetWorkspaceID sets the "workspace_id" field.
func (u *ArtifactUpsertBulk) SetWorkspaceID(v string) *ArtifactUpsertBulk {
	return u.Update(func(s *ArtifactUpsert) {
		s.SetWorkspaceID(v)
	})
}

// UpdateWorkspaceID sets the "workspace_id" field to the value that was provided on create.
func (u *ArtifactUpsertBulk) UpdateWorkspaceID() *ArtifactUpsertBulk {
	return u.Update(func(s *ArtifactUpsert) {
		s.UpdateWorkspaceID()
	})
}

// SetIntentID sets the "intent_id" field.
func (u *ArtifactUpsertBulk) SetIntentID(v string) *ArtifactUpsertBulk {
	return u.Update(func(s *ArtifactUpsert) {
		s.SetIntentID(v)
	})
}

// UpdateIntentID sets the "intent_id" field to the value that was provided on create.
func (u *ArtifactUpsertBulk) UpdateIntentID() *ArtifactUpsertBulk {
	return u.Update(func(s *ArtifactUpsert) {
		s.UpdateIntentID()
	})
}

// ClearIntentID clears the value of the "intent_id" field.
func (u *ArtifactUpsertBulk) ClearIntentID() *ArtifactUpsertBulk {
	return u.Update(func(s *ArtifactUpsert) {
		s.ClearIntentID()
	})
}

// SetTaskID sets the "task_id" field.
func (u *ArtifactUpsertBulk) SetTaskID(v string) *ArtifactUpsertBulk {
	return u.Update(func(s *ArtifactUpsert) {
		s.SetTaskID(v)
	})
}

// UpdateTaskID sets the "task_id" field to the value that was provided on create.
func (u *ArtifactUpsertBulk) UpdateTaskID() *ArtifactUpsertBulk {
	return u.Update(func(s *ArtifactUpsert) {
		s.UpdateTaskID()
	})
}

// ClearTaskID clears the value of the "task_id" field.
func (u *ArtifactUpsertBulk) ClearTaskID() *ArtifactUpsertBulk {
	return u.Update(func(s *ArtifactUpsert) {
		s.ClearTaskID()
	})
}

// SetExecutionID sets the "execution_id" field.
func (u *ArtifactUpsertBulk) SetExecutionID(v string) *ArtifactUpsertBulk {
	return u.Update(func(s *ArtifactUpsert) {
		s.SetExecutionID(v)
	})
}

// UpdateExecutionID sets the "execution_id" field to the value that was provided on create.
func (u *ArtifactUpsertBulk) UpdateExecutionID() *ArtifactUpsertBulk {
	return u.Update(func(s *ArtifactUpsert) {
		s.UpdateExecutionID()
	})
}

// SetPlaybookCode sets the "playbook_code" field.
func (u *ArtifactUpsertBulk) SetPlaybookCode(v string) *ArtifactUpsertBulk {
	return u.Update(func(s *ArtifactUpsert) {
		s.SetPlaybookCode(v)
	})
}

// UpdatePlaybookCode sets the "playbook_code" field to the value that was provided on create.
func (u *ArtifactUpsertBulk) UpdatePlaybookCode() *ArtifactUpsertBulk {
	return u.Update(func(s *ArtifactUpsert) {
		s.UpdatePlaybookCode()
	})
}

// SetArtifactType sets the "artifact_type" field.
func (u *ArtifactUpsertBulk) SetArtifactType(v artifact.ArtifactType) *ArtifactUpsertBulk {
	return u.Update(func(s *ArtifactUpsert) {
		s.SetArtifactType(v)
	})
}

// UpdateArtifactType sets the "artifact_type" field to the value that was provided on create.
func (u *ArtifactUpsertBulk) UpdateArtifactType() *ArtifactUpsertBulk {
	return u.Update(func(s *ArtifactUpsert) {
		s.UpdateArtifactType()
	})
}

// SetTitle sets the "title" field.
func (u *ArtifactUpsertBulk) SetTitle(v string) *ArtifactUpsertBulk {
	return u.Update(func(s *ArtifactUpsert) {
		s.SetTitle(v)
	})
}

// UpdateTitle sets the "title" field to the value that was provided on create.
func (u *ArtifactUpsertBulk) UpdateTitle() *ArtifactUpsertBulk {
	return u.Update(func(s *ArtifactUpsert) {
		s.UpdateTitle()
	})
}

// SetSummary sets the "summary" field.
func (u *ArtifactUpsertBulk) SetSummary(v string) *ArtifactUpsertBulk {
	return u.Update(func(s *ArtifactUpsert) {
		s.SetSummary(v)
	})
}

// UpdateSummary sets the "summary" field to the value that was provided on create.
func (u *ArtifactUpsertBulk) UpdateSummary() *ArtifactUpsertBulk {
	return u.Update(func(s *ArtifactUpsert) {
		s.UpdateSummary()
	})
}

// ClearSummary clears the value of the "summary" field.
func (u *ArtifactUpsertBulk) ClearSummary() *ArtifactUpsertBulk {
	return u.Update(func(s *ArtifactUpsert) {
		s.ClearSummary()
	})
}

// SetContent sets the "content" field.
func (u *ArtifactUpsertBulk) SetContent(v map[string]interface{}) *ArtifactUpsertBulk {
	return u.Update(func(s *ArtifactUpsert) {
		s.SetContent(v)
	})
}

// UpdateContent sets the "content" field to the value that was provided on create.
func (u *ArtifactUpsertBulk) UpdateContent() *ArtifactUpsertBulk {
	return u.Update(func(s *ArtifactUpsert) {
		s.UpdateContent()
	})
}

// ClearContent clears the value of the "content" field.
func (u *ArtifactUpsertBulk) ClearContent() *ArtifactUpsertBulk {
	return u.Update(func(s *ArtifactUpsert) {
		s.ClearContent()
	})
}

// SetStorageRef sets the "storage_ref" field.
func (u *ArtifactUpsertBulk) SetStorageRef(v string) *ArtifactUpsertBulk {
	return u.Update(func(s *ArtifactUpsert) {
		s.SetStorageRef(v)
	})
}

// UpdateStorageRef sets the "storage_ref" field to the value that was provided on create.
func (u *ArtifactUpsertBulk) UpdateStorageRef() *ArtifactUpsertBulk {
	return u.Update(func(s *ArtifactUpsert) {
		s.UpdateStorageRef()
	})
}

// ClearStorageRef clears the value of the "storage_ref" field.
func (u *ArtifactUpsertBulk) ClearStorageRef() *ArtifactUpsertBulk {
	return u.Update(func(s *ArtifactUpsert) {
		s.ClearStorageRef()
	})
}

// SetSyncState sets the "sync_state" field.
func (u *ArtifactUpsertBulk) SetSyncState(v artifact.SyncState) *ArtifactUpsertBulk {
	return u.Update(func(s *ArtifactUpsert) {
		s.SetSyncState(v)
	})
}

// UpdateSyncState sets the "sync_state" field to the value that was provided on create.
func (u *ArtifactUpsertBulk) UpdateSyncState() *ArtifactUpsertBulk {
	return u.Update(func(s *ArtifactUpsert) {
		s.UpdateSyncState()
	})
}

// ClearSyncState clears the value of the "sync_state" field.
func (u *ArtifactUpsertBulk) ClearSyncState() *ArtifactUpsertBulk {
	return u.Update(func(s *ArtifactUpsert) {
		s.ClearSyncState()
	})
}

// SetPrimaryActionType sets the "primary_action_type" field.
func (u *ArtifactUpsertBulk) SetPrimaryActionType(v artifact.PrimaryActionType) *ArtifactUpsertBulk {
	return u.Update(func(s *ArtifactUpsert) {
		s.SetPrimaryActionType(v)
	})
}

// UpdatePrimaryActionType sets the "primary_action_type" field to the value that was provided on create.
func (u *ArtifactUpsertBulk) UpdatePrimaryActionType() *ArtifactUpsertBulk {
	return u.Update(func(s *ArtifactUpsert) {
		s.UpdatePrimaryActionType()
	})
}

// SetVersion sets the "version" field.
func (u *ArtifactUpsertBulk) SetVersion(v int) *ArtifactUpsertBulk {
	return u.Update(func(s *ArtifactUpsert) {
		s.SetVersion(v)
	})
}

// AddVersion adds v to the "version" field.
func (u *ArtifactUpsertBulk) AddVersion(v int) *ArtifactUpsertBulk {
	return u.Update(func(s *ArtifactUpsert) {
		s.AddVersion(v)
	})
}

// UpdateVersion sets the "version" field to the value that was provided on create.
func (u *ArtifactUpsertBulk) UpdateVersion() *ArtifactUpsertBulk {
	return u.Update(func(s *ArtifactUpsert) {
		s.UpdateVersion()
	})
}

// SetIsLatest sets the "is_latest" field.
func (u *ArtifactUpsertBulk) SetIsLatest(v bool) *ArtifactUpsertBulk {
	return u.Update(func(s *ArtifactUpsert) {
		s.SetIsLatest(v)
	})
}

// UpdateIsLatest sets the "is_latest" field to the value that was provided on create.
func (u *ArtifactUpsertBulk) UpdateIsLatest() *ArtifactUpsertBulk {
	return u.Update(func(s *ArtifactUpsert) {
		s.UpdateIsLatest()
	})
}

// SetMetadata sets the "metadata" field.
func (u *ArtifactUpsertBulk) SetMetadata(v map[string]interface{}) *ArtifactUpsertBulk {
	return u.Update(func(s *ArtifactUpsert) {
		s.SetMetadata(v)
	})
}

// UpdateMetadata sets the "metadata" field to the value that was provided on create.
func (u *ArtifactUpsertBulk) UpdateMetadata() *ArtifactUpsertBulk {
	return u.Update(func(s *ArtifactUpsert) {
		s.UpdateMetadata()
	})
}

// ClearMetadata clears the value of the "metadata" field.
func (u *ArtifactUpsertBulk) ClearMetadata() *ArtifactUpsertBulk {
	return u.Update(func(s *ArtifactUpsert) {
		s.ClearMetadata()
	})
}

// SetUpdatedAt sets the "updated_at" field.
func (u *ArtifactUpsertBulk) SetUpdatedAt(v time.Time) *ArtifactUpsertBulk {
	return u.Update(func(s *ArtifactUpsert) {
		s.SetUpdatedAt(v)
	})
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *ArtifactUpsertBulk) UpdateUpdatedAt() *ArtifactUpsertBulk {
	return u.Update(func(s *ArtifactUpsert) {
		s.UpdateUpdatedAt()
	})
}

// Exec executes the query.
func (u *ArtifactUpsertBulk) Exec(ctx context.Context) error {
	if u.create.err != nil {
		return u.create.err
	}
	for i, b := range u.create.builders {
		if len(b.conflict) != 0 {
			return fmt.Errorf("ent: OnConflict was set for builder %d. Set it on the ArtifactCreateBulk instead", i)
		}
	}
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for ArtifactCreateBulk.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *ArtifactUpsertBulk) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}
