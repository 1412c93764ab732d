// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/cortexops/playbookd/ent/artifact"
	"github.com/cortexops/playbookd/ent/mindevent"
	"github.com/cortexops/playbookd/ent/playbookexecution"
	"github.com/cortexops/playbookd/ent/predicate"
	"github.com/cortexops/playbookd/ent/runnerheartbeat"
	"github.com/cortexops/playbookd/ent/stageresult"
	"github.com/cortexops/playbookd/ent/suggestionpreference"
	"github.com/cortexops/playbookd/ent/task"
	"github.com/cortexops/playbookd/ent/toolcall"
	"github.com/cortexops/playbookd/ent/workspace"
)

const (
	// Operation types.
	OpCreate    = ent.OpCreate
	OpDelete    = ent.OpDelete
	OpDeleteOne = ent.OpDeleteOne
	OpUpdate    = ent.OpUpdate
	OpUpdateOne = ent.OpUpdateOne

	// Node types.
	TypeArtifact             = "Artifact"
	TypeMindEvent            = "MindEvent"
	TypePlaybookExecution    = "PlaybookExecution"
	TypeRunnerHeartbeat      = "RunnerHeartbeat"
	TypeStageResult          = "StageResult"
	TypeSuggestionPreference = "SuggestionPreference"
	TypeTask                 = "Task"
	TypeToolCall             = "ToolCall"
	TypeWorkspace            = "Workspace"
)

// ArtifactMutation represents an operation that mutates the Artifact nodes in the graph.
type ArtifactMutation struct {
	config
	op                  Op
	typ                 string
	id                  *string
	workspace_id        *string
	intent_id           *string
	task_id             *string
	execution_id        *string
	playbook_code       *string
	artifact_type       *artifact.ArtifactType
	title               *string
	summary             *string
	content             *map[string]interface{}
	storage_ref         *string
	sync_state          *artifact.SyncState
	primary_action_type *artifact.PrimaryActionType
	version             *int
	addversion          *int
	is_latest           *bool
	metadata            *map[string]interface{}
	created_at          *time.Time
	updated_at          *time.Time
	clearedFields       map[string]struct{}
	done                bool
	oldValue            func(context.Context) (*Artifact, error)
	predicates          []predicate.Artifact
}

var _ ent.Mutation = (*ArtifactMutation)(nil)

// artifactOption allows management of the mutation configuration using functional options.
type artifactOption func(*ArtifactMutation)

// newArtifactMutation creates new mutation for the Artifact entity.
func newArtifactMutation(c config, op Op, opts ...artifactOption) *ArtifactMutation {
	m := &ArtifactMutation{
		config:        c,
		op:            op,
		typ:           TypeArtifact,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withArtifactID sets the ID field of the mutation.
func withArtifactID(id string) artifactOption {
	return func(m *ArtifactMutation) {
		var (
			err   error
			once  sync.Once
			value *Artifact
		)
		m.oldValue = func(ctx context.Context) (*Artifact, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Artifact.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withArtifact sets the old Artifact of the mutation.
func withArtifact(node *Artifact) artifactOption {
	return func(m *ArtifactMutation) {
		m.oldValue = func(context.Context) (*Artifact, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m ArtifactMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m ArtifactMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of Artifact entities.
func (m *ArtifactMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *ArtifactMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *ArtifactMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Artifact.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetWorkspaceID sets the "workspace_id" field.
func (m *ArtifactMutation) SetWorkspaceID(s string) {
	m.workspace_id = &s
}

// WorkspaceID returns the value of the "workspace_id" field in the mutation.
func (m *ArtifactMutation) WorkspaceID() (r string, exists bool) {
	v := m.workspace_id
	if v == nil {
		return
	}
	return *v, true
}

// OldWorkspaceID returns the old "workspace_id" field's value of the Artifact entity.
// If the Artifact object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ArtifactMutation) OldWorkspaceID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldWorkspaceID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldWorkspaceID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldWorkspaceID: %w", err)
	}
	return oldValue.WorkspaceID, nil
}

// ResetWorkspaceID resets all changes to the "workspace_id" field.
func (m *ArtifactMutation) ResetWorkspaceID() {
	m.workspace_id = nil
}

// SetIntentID sets the "intent_id" field.
func (m *ArtifactMutation) SetIntentID(s string) {
	m.intent_id = &s
}

// IntentID returns the value of the "intent_id" field in the mutation.
func (m *ArtifactMutation) IntentID() (r string, exists bool) {
	v := m.intent_id
	if v == nil {
		return
	}
	return *v, true
}

// OldIntentID returns the old "intent_id" field's value of the Artifact entity.
// If the Artifact object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ArtifactMutation) OldIntentID(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldIntentID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldIntentID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldIntentID: %w", err)
	}
	return oldValue.IntentID, nil
}

// ClearIntentID clears the value of the "intent_id" field.
func (m *ArtifactMutation) ClearIntentID() {
	m.intent_id = nil
	m.clearedFields[artifact.FieldIntentID] = struct{}{}
}

// IntentIDCleared returns if the "intent_id" field was cleared in this mutation.
func (m *ArtifactMutation) IntentIDCleared() bool {
	_, ok := m.clearedFields[artifact.FieldIntentID]
	return ok
}

// ResetIntentID resets all changes to the "intent_id" field.
func (m *ArtifactMutation) ResetIntentID() {
	m.intent_id = nil
	delete(m.clearedFields, artifact.FieldIntentID)
}

// SetTaskID sets the "task_id" field.
func (m *ArtifactMutation) SetTaskID(s string) {
	m.task_id = &s
}

// TaskID returns the value of the "task_id" field in the mutation.
func (m *ArtifactMutation) TaskID() (r string, exists bool) {
	v := m.task_id
	if v == nil {
		return
	}
	return *v, true
}

// OldTaskID returns the old "task_id" field's value of the Artifact entity.
// If the Artifact object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ArtifactMutation) OldTaskID(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTaskID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTaskID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTaskID: %w", err)
	}
	return oldValue.TaskID, nil
}

// ClearTaskID clears the value of the "task_id" field.
func (m *ArtifactMutation) ClearTaskID() {
	m.task_id = nil
	m.clearedFields[artifact.FieldTaskID] = struct{}{}
}

// TaskIDCleared returns if the "task_id" field was cleared in this mutation.
func (m *ArtifactMutation) TaskIDCleared() bool {
	_, ok := m.clearedFields[artifact.FieldTaskID]
	return ok
}

// ResetTaskID resets all changes to the "task_id" field.
func (m *ArtifactMutation) ResetTaskID() {
	m.task_id = nil
	delete(m.clearedFields, artifact.FieldTaskID)
}

// SetExecutionID sets the "execution_id" field.
func (m *ArtifactMutation) SetExecutionID(s string) {
	m.execution_id = &s
}

// ExecutionID returns the value of the "execution_id" field in the mutation.
func (m *ArtifactMutation) ExecutionID() (r string, exists bool) {
	v := m.execution_id
	if v == nil {
		return
	}
	return *v, true
}

// OldExecutionID returns the old "execution_id" field's value of the Artifact entity.
// If the Artifact object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ArtifactMutation) OldExecutionID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldExecutionID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldExecutionID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldExecutionID: %w", err)
	}
	return oldValue.ExecutionID, nil
}

// ResetExecutionID resets all changes to the "execution_id" field.
func (m *ArtifactMutation) ResetExecutionID() {
	m.execution_id = nil
}

// SetPlaybookCode sets the "playbook_code" field.
func (m *ArtifactMutation) SetPlaybookCode(s string) {
	m.playbook_code = &s
}

// PlaybookCode returns the value of the "playbook_code" field in the mutation.
func (m *ArtifactMutation) PlaybookCode() (r string, exists bool) {
	v := m.playbook_code
	if v == nil {
		return
	}
	return *v, true
}

// OldPlaybookCode returns the old "playbook_code" field's value of the Artifact entity.
// If the Artifact object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ArtifactMutation) OldPlaybookCode(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPlaybookCode is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPlaybookCode requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPlaybookCode: %w", err)
	}
	return oldValue.PlaybookCode, nil
}

// ResetPlaybookCode resets all changes to the "playbook_code" field.
func (m *ArtifactMutation) ResetPlaybookCode() {
	m.playbook_code = nil
}

// SetArtifactType sets the "artifact_type" field.
func (m *ArtifactMutation) SetArtifactType(at artifact.ArtifactType) {
	m.artifact_type = &at
}

// ArtifactType returns the value of the "artifact_type" field in the mutation.
func (m *ArtifactMutation) ArtifactType() (r artifact.ArtifactType, exists bool) {
	v := m.artifact_type
	if v == nil {
		return
	}
	return *v, true
}

// OldArtifactType returns the old "artifact_type" field's value of the Artifact entity.
// If the Artifact object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ArtifactMutation) OldArtifactType(ctx context.Context) (v artifact.ArtifactType, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldArtifactType is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldArtifactType requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldArtifactType: %w", err)
	}
	return oldValue.ArtifactType, nil
}

// ResetArtifactType resets all changes to the "artifact_type" field.
func (m *ArtifactMutation) ResetArtifactType() {
	m.artifact_type = nil
}

// SetTitle sets the "title" field.
func (m *ArtifactMutation) SetTitle(s string) {
	m.title = &s
}

// Title returns the value of the "title" field in the mutation.
func (m *ArtifactMutation) Title() (r string, exists bool) {
	v := m.title
	if v == nil {
		return
	}
	return *v, true
}

// OldTitle returns the old "title" field's value of the Artifact entity.
// If the Artifact object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ArtifactMutation) OldTitle(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTitle is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTitle requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTitle: %w", err)
	}
	return oldValue.Title, nil
}

// ResetTitle resets all changes to the "title" field.
func (m *ArtifactMutation) ResetTitle() {
	m.title = nil
}

// SetSummary sets the "summary" field.
func (m *ArtifactMutation) SetSummary(s string) {
	m.summary = &s
}

// Summary returns the value of the "summary" field in the mutation.
func (m *ArtifactMutation) Summary() (r string, exists bool) {
	v := m.summary
	if v == nil {
		return
	}
	return *v, true
}

// OldSummary returns the old "summary" field's value of the Artifact entity.
// If the Artifact object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ArtifactMutation) OldSummary(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSummary is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSummary requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSummary: %w", err)
	}
	return oldValue.Summary, nil
}

// ClearSummary clears the value of the "summary" field.
func (m *ArtifactMutation) ClearSummary() {
	m.summary = nil
	m.clearedFields[artifact.FieldSummary] = struct{}{}
}

// SummaryCleared returns if the "summary" field was cleared in this mutation.
func (m *ArtifactMutation) SummaryCleared() bool {
	_, ok := m.clearedFields[artifact.FieldSummary]
	return ok
}

// ResetSummary resets all changes to the "summary" field.
func (m *ArtifactMutation) ResetSummary() {
	m.summary = nil
	delete(m.clearedFields, artifact.FieldSummary)
}

// SetContent sets the "content" field.
func (m *ArtifactMutation) SetContent(value map[string]interface{}) {
	m.content = &value
}

// Content returns the value of the "content" field in the mutation.
func (m *ArtifactMutation) Content() (r map[string]interface{}, exists bool) {
	v := m.content
	if v == nil {
		return
	}
	return *v, true
}

// OldContent returns the old "content" field's value of the Artifact entity.
// If the Artifact object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ArtifactMutation) OldContent(ctx context.Context) (v map[string]interface{}, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldContent is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldContent requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldContent: %w", err)
	}
	return oldValue.Content, nil
}

// ClearContent clears the value of the "content" field.
func (m *ArtifactMutation) ClearContent() {
	m.content = nil
	m.clearedFields[artifact.FieldContent] = struct{}{}
}

// ContentCleared returns if the "content" field was cleared in this mutation.
func (m *ArtifactMutation) ContentCleared() bool {
	_, ok := m.clearedFields[artifact.FieldContent]
	return ok
}

// ResetContent resets all changes to the "content" field.
func (m *ArtifactMutation) ResetContent() {
	m.content = nil
	delete(m.clearedFields, artifact.FieldContent)
}

// SetStorageRef sets the "storage_ref" field.
func (m *ArtifactMutation) SetStorageRef(s string) {
	m.storage_ref = &s
}

// StorageRef returns the value of the "storage_ref" field in the mutation.
func (m *ArtifactMutation) StorageRef() (r string, exists bool) {
	v := m.storage_ref
	if v == nil {
		return
	}
	return *v, true
}

// OldStorageRef returns the old "storage_ref" field's value of the Artifact entity.
// If the Artifact object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ArtifactMutation) OldStorageRef(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStorageRef is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStorageRef requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStorageRef: %w", err)
	}
	return oldValue.StorageRef, nil
}

// ClearStorageRef clears the value of the "storage_ref" field.
func (m *ArtifactMutation) ClearStorageRef() {
	m.storage_ref = nil
	m.clearedFields[artifact.FieldStorageRef] = struct{}{}
}

// StorageRefCleared returns if the "storage_ref" field was cleared in this mutation.
func (m *ArtifactMutation) StorageRefCleared() bool {
	_, ok := m.clearedFields[artifact.FieldStorageRef]
	return ok
}

// ResetStorageRef resets all changes to the "storage_ref" field.
func (m *ArtifactMutation) ResetStorageRef() {
	m.storage_ref = nil
	delete(m.clearedFields, artifact.FieldStorageRef)
}

// SetSyncState sets the "sync_state" field.
func (m *ArtifactMutation) SetSyncState(as artifact.SyncState) {
	m.sync_state = &as
}

// SyncState returns the value of the "sync_state" field in the mutation.
func (m *ArtifactMutation) SyncState() (r artifact.SyncState, exists bool) {
	v := m.sync_state
	if v == nil {
		return
	}
	return *v, true
}

// OldSyncState returns the old "sync_state" field's value of the Artifact entity.
// If the Artifact object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ArtifactMutation) OldSyncState(ctx context.Context) (v *artifact.SyncState, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSyncState is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSyncState requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSyncState: %w", err)
	}
	return oldValue.SyncState, nil
}

// ClearSyncState clears the value of the "sync_state" field.
func (m *ArtifactMutation) ClearSyncState() {
	m.sync_state = nil
	m.clearedFields[artifact.FieldSyncState] = struct{}{}
}

// SyncStateCleared returns if the "sync_state" field was cleared in this mutation.
func (m *ArtifactMutation) SyncStateCleared() bool {
	_, ok := m.clearedFields[artifact.FieldSyncState]
	return ok
}

// ResetSyncState resets all changes to the "sync_state" field.
func (m *ArtifactMutation) ResetSyncState() {
	m.sync_state = nil
	delete(m.clearedFields, artifact.FieldSyncState)
}

// SetPrimaryActionType sets the "primary_action_type" field.
func (m *ArtifactMutation) SetPrimaryActionType(aat artifact.PrimaryActionType) {
	m.primary_action_type = &aat
}

// PrimaryActionType returns the value of the "primary_action_type" field in the mutation.
func (m *ArtifactMutation) PrimaryActionType() (r artifact.PrimaryActionType, exists bool) {
	v := m.primary_action_type
	if v == nil {
		return
	}
	return *v, true
}

// OldPrimaryActionType returns the old "primary_action_type" field's value of the Artifact entity.
// If the Artifact object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ArtifactMutation) OldPrimaryActionType(ctx context.Context) (v artifact.PrimaryActionType, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPrimaryActionType is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPrimaryActionType requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPrimaryActionType: %w", err)
	}
	return oldValue.PrimaryActionType, nil
}

// ResetPrimaryActionType resets all changes to the "primary_action_type" field.
func (m *ArtifactMutation) ResetPrimaryActionType() {
	m.primary_action_type = nil
}

// SetVersion sets the "version" field.
func (m *ArtifactMutation) SetVersion(i int) {
	m.version = &i
	m.addversion = nil
}

// Version returns the value of the "version" field in the mutation.
func (m *ArtifactMutation) Version() (r int, exists bool) {
	v := m.version
	if v == nil {
		return
	}
	return *v, true
}

// OldVersion returns the old "version" field's value of the Artifact entity.
// If the Artifact object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ArtifactMutation) OldVersion(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldVersion is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldVersion requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldVersion: %w", err)
	}
	return oldValue.Version, nil
}

// AddVersion adds i to the "version" field.
func (m *ArtifactMutation) AddVersion(i int) {
	if m.addversion != nil {
		*m.addversion += i
	} else {
		m.addversion = &i
	}
}

// AddedVersion returns the value that was added to the "version" field in this mutation.
func (m *ArtifactMutation) AddedVersion() (r int, exists bool) {
	v := m.addversion
	if v == nil {
		return
	}
	return *v, true
}

// ResetVersion resets all changes to the "version" field.
func (m *ArtifactMutation) ResetVersion() {
	m.version = nil
	m.addversion = nil
}

// SetIsLatest sets the "is_latest" field.
func (m *ArtifactMutation) SetIsLatest(b bool) {
	m.is_latest = &b
}

// IsLatest returns the value of the "is_latest" field in the mutation.
func (m *ArtifactMutation) IsLatest() (r bool, exists bool) {
	v := m.is_latest
	if v == nil {
		return
	}
	return *v, true
}

// OldIsLatest returns the old "is_latest" field's value of the Artifact entity.
// If the Artifact object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ArtifactMutation) OldIsLatest(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldIsLatest is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldIsLatest requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldIsLatest: %w", err)
	}
	return oldValue.IsLatest, nil
}

// ResetIsLatest resets all changes to the "is_latest" field.
func (m *ArtifactMutation) ResetIsLatest() {
	m.is_latest = nil
}

// SetMetadata sets the "metadata" field.
func (m *ArtifactMutation) SetMetadata(value map[string]interface{}) {
	m.metadata = &value
}

// Metadata returns the value of the "metadata" field in the mutation.
func (m *ArtifactMutation) Metadata() (r map[string]interface{}, exists bool) {
	v := m.metadata
	if v == nil {
		return
	}
	return *v, true
}

// OldMetadata returns the old "metadata" field's value of the Artifact entity.
// If the Artifact object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ArtifactMutation) OldMetadata(ctx context.Context) (v map[string]interface{}, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldMetadata is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldMetadata requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldMetadata: %w", err)
	}
	return oldValue.Metadata, nil
}

// ClearMetadata clears the value of the "metadata" field.
func (m *ArtifactMutation) ClearMetadata() {
	m.metadata = nil
	m.clearedFields[artifact.FieldMetadata] = struct{}{}
}

// MetadataCleared returns if the "metadata" field was cleared in this mutation.
func (m *ArtifactMutation) MetadataCleared() bool {
	_, ok := m.clearedFields[artifact.FieldMetadata]
	return ok
}

// ResetMetadata resets all changes to the "metadata" field.
func (m *ArtifactMutation) ResetMetadata() {
	m.metadata = nil
	delete(m.clearedFields, artifact.FieldMetadata)
}

// SetCreatedAt sets the "created_at" field.
func (m *ArtifactMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *ArtifactMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the Artifact entity.
// If the Artifact object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ArtifactMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *ArtifactMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *ArtifactMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *ArtifactMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the Artifact entity.
// If the Artifact object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ArtifactMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedAt: %w", err)
	}
	return oldValue.UpdatedAt, nil
}

// ResetUpdatedAt resets all changes to the "updated_at" field.
func (m *ArtifactMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// Where appends a list predicates to the ArtifactMutation builder.
func (m *ArtifactMutation) Where(ps ...predicate.Artifact) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the ArtifactMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *ArtifactMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Artifact, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *ArtifactMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *ArtifactMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Artifact).
func (m *ArtifactMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *ArtifactMutation) Fields() []string {
	fields := make([]string, 0, 17)
	if m.workspace_id != nil {
		fields = append(fields, artifact.FieldWorkspaceID)
	}
	if m.intent_id != nil {
		fields = append(fields, artifact.FieldIntentID)
	}
	if m.task_id != nil {
		fields = append(fields, artifact.FieldTaskID)
	}
	if m.execution_id != nil {
		fields = append(fields, artifact.FieldExecutionID)
	}
	if m.playbook_code != nil {
		fields = append(fields, artifact.FieldPlaybookCode)
	}
	if m.artifact_type != nil {
		fields = append(fields, artifact.FieldArtifactType)
	}
	if m.title != nil {
		fields = append(fields, artifact.FieldTitle)
	}
	if m.summary != nil {
		fields = append(fields, artifact.FieldSummary)
	}
	if m.content != nil {
		fields = append(fields, artifact.FieldContent)
	}
	if m.storage_ref != nil {
		fields = append(fields, artifact.FieldStorageRef)
	}
	if m.sync_state != nil {
		fields = append(fields, artifact.FieldSyncState)
	}
	if m.primary_action_type != nil {
		fields = append(fields, artifact.FieldPrimaryActionType)
	}
	if m.version != nil {
		fields = append(fields, artifact.FieldVersion)
	}
	if m.is_latest != nil {
		fields = append(fields, artifact.FieldIsLatest)
	}
	if m.metadata != nil {
		fields = append(fields, artifact.FieldMetadata)
	}
	if m.created_at != nil {
		fields = append(fields, artifact.FieldCreatedAt)
	}
	if m.updated_at != nil {
		fields = append(fields, artifact.FieldUpdatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *ArtifactMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case artifact.FieldWorkspaceID:
		return m.WorkspaceID()
	case artifact.FieldIntentID:
		return m.IntentID()
	case artifact.FieldTaskID:
		return m.TaskID()
	case artifact.FieldExecutionID:
		return m.ExecutionID()
	case artifact.FieldPlaybookCode:
		return m.PlaybookCode()
	case artifact.FieldArtifactType:
		return m.ArtifactType()
	case artifact.FieldTitle:
		return m.Title()
	case artifact.FieldSummary:
		return m.Summary()
	case artifact.FieldContent:
		return m.Content()
	case artifact.FieldStorageRef:
		return m.StorageRef()
	case artifact.FieldSyncState:
		return m.SyncState()
	case artifact.FieldPrimaryActionType:
		return m.PrimaryActionType()
	case artifact.FieldVersion:
		return m.Version()
	case artifact.FieldIsLatest:
		return m.IsLatest()
	case artifact.FieldMetadata:
		return m.Metadata()
	case artifact.FieldCreatedAt:
		return m.CreatedAt()
	case artifact.FieldUpdatedAt:
		return m.UpdatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *ArtifactMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case artifact.FieldWorkspaceID:
		return m.OldWorkspaceID(ctx)
	case artifact.FieldIntentID:
		return m.OldIntentID(ctx)
	case artifact.FieldTaskID:
		return m.OldTaskID(ctx)
	case artifact.FieldExecutionID:
		return m.OldExecutionID(ctx)
	case artifact.FieldPlaybookCode:
		return m.OldPlaybookCode(ctx)
	case artifact.FieldArtifactType:
		return m.OldArtifactType(ctx)
	case artifact.FieldTitle:
		return m.OldTitle(ctx)
	case artifact.FieldSummary:
		return m.OldSummary(ctx)
	case artifact.FieldContent:
		return m.OldContent(ctx)
	case artifact.FieldStorageRef:
		return m.OldStorageRef(ctx)
	case artifact.FieldSyncState:
		return m.OldSyncState(ctx)
	case artifact.FieldPrimaryActionType:
		return m.OldPrimaryActionType(ctx)
	case artifact.FieldVersion:
		return m.OldVersion(ctx)
	case artifact.FieldIsLatest:
		return m.OldIsLatest(ctx)
	case artifact.FieldMetadata:
		return m.OldMetadata(ctx)
	case artifact.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case artifact.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown Artifact field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ArtifactMutation) SetField(name string, value ent.Value) error {
	switch name {
	case artifact.FieldWorkspaceID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetWorkspaceID(v)
		return nil
	case artifact.FieldIntentID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetIntentID(v)
		return nil
	case artifact.FieldTaskID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTaskID(v)
		return nil
	case artifact.FieldExecutionID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetExecutionID(v)
		return nil
	case artifact.FieldPlaybookCode:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPlaybookCode(v)
		return nil
	case artifact.FieldArtifactType:
		v, ok := value.(artifact.ArtifactType)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetArtifactType(v)
		return nil
	case artifact.FieldTitle:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTitle(v)
		return nil
	case artifact.FieldSummary:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSummary(v)
		return nil
	case artifact.FieldContent:
		v, ok := value.(map[string]interface{})
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetContent(v)
		return nil
	case artifact.FieldStorageRef:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStorageRef(v)
		return nil
	case artifact.FieldSyncState:
		v, ok := value.(artifact.SyncState)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSyncState(v)
		return nil
	case artifact.FieldPrimaryActionType:
		v, ok := value.(artifact.PrimaryActionType)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPrimaryActionType(v)
		return nil
	case artifact.FieldVersion:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetVersion(v)
		return nil
	case artifact.FieldIsLatest:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetIsLatest(v)
		return nil
	case artifact.FieldMetadata:
		v, ok := value.(map[string]interface{})
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetMetadata(v)
		return nil
	case artifact.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case artifact.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown Artifact field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *ArtifactMutation) AddedFields() []string {
	var fields []string
	if m.addversion != nil {
		fields = append(fields, artifact.FieldVersion)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *ArtifactMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case artifact.FieldVersion:
		return m.AddedVersion()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ArtifactMutation) AddField(name string, value ent.Value) error {
	switch name {
	case artifact.FieldVersion:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddVersion(v)
		return nil
	}
	return fmt.Errorf("unknown Artifact numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *ArtifactMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(artifact.FieldIntentID) {
		fields = append(fields, artifact.FieldIntentID)
	}
	if m.FieldCleared(artifact.FieldTaskID) {
		fields = append(fields, artifact.FieldTaskID)
	}
	if m.FieldCleared(artifact.FieldSummary) {
		fields = append(fields, artifact.FieldSummary)
	}
	if m.FieldCleared(artifact.FieldContent) {
		fields = append(fields, artifact.FieldContent)
	}
	if m.FieldCleared(artifact.FieldStorageRef) {
		fields = append(fields, artifact.FieldStorageRef)
	}
	if m.FieldCleared(artifact.FieldSyncState) {
		fields = append(fields, artifact.FieldSyncState)
	}
	if m.FieldCleared(artifact.FieldMetadata) {
		fields = append(fields, artifact.FieldMetadata)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *ArtifactMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *ArtifactMutation) ClearField(name string) error {
	switch name {
	case artifact.FieldIntentID:
		m.ClearIntentID()
		return nil
	case artifact.FieldTaskID:
		m.ClearTaskID()
		return nil
	case artifact.FieldSummary:
		m.ClearSummary()
		return nil
	case artifact.FieldContent:
		m.ClearContent()
		return nil
	case artifact.FieldStorageRef:
		m.ClearStorageRef()
		return nil
	case artifact.FieldSyncState:
		m.ClearSyncState()
		return nil
	case artifact.FieldMetadata:
		m.ClearMetadata()
		return nil
	}
	return fmt.Errorf("unknown Artifact nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *ArtifactMutation) ResetField(name string) error {
	switch name {
	case artifact.FieldWorkspaceID:
		m.ResetWorkspaceID()
		return nil
	case artifact.FieldIntentID:
		m.ResetIntentID()
		return nil
	case artifact.FieldTaskID:
		m.ResetTaskID()
		return nil
	case artifact.FieldExecutionID:
		m.ResetExecutionID()
		return nil
	case artifact.FieldPlaybookCode:
		m.ResetPlaybookCode()
		return nil
	case artifact.FieldArtifactType:
		m.ResetArtifactType()
		return nil
	case artifact.FieldTitle:
		m.ResetTitle()
		return nil
	case artifact.FieldSummary:
		m.ResetSummary()
		return nil
	case artifact.FieldContent:
		m.ResetContent()
		return nil
	case artifact.FieldStorageRef:
		m.ResetStorageRef()
		return nil
	case artifact.FieldSyncState:
		m.ResetSyncState()
		return nil
	case artifact.FieldPrimaryActionType:
		m.ResetPrimaryActionType()
		return nil
	case artifact.FieldVersion:
		m.ResetVersion()
		return nil
	case artifact.FieldIsLatest:
		m.ResetIsLatest()
		return nil
	case artifact.FieldMetadata:
		m.ResetMetadata()
		return nil
	case artifact.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case artifact.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	}
	return fmt.Errorf("unknown Artifact field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *ArtifactMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *ArtifactMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *ArtifactMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *ArtifactMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *ArtifactMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *ArtifactMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *ArtifactMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown Artifact unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *ArtifactMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown Artifact edge %s", name)
}

// MindEventMutation represents an operation that mutates the MindEvent nodes in the graph.
type MindEventMutation struct {
	config
	op               Op
	typ              string
	id               *string
	workspace_id     *string
	profile_id       *string
	thread_id        *string
	entity_ids       *[]string
	appendentity_ids []string
	actor            *mindevent.Actor
	event_type       *string
	payload          *map[string]interface{}
	metadata         *map[string]interface{}
	timestamp        *time.Time
	clearedFields    map[string]struct{}
	done             bool
	oldValue         func(context.Context) (*MindEvent, error)
	predicates       []predicate.MindEvent
}

var _ ent.Mutation = (*MindEventMutation)(nil)

// mindeventOption allows management of the mutation configuration using functional options.
type mindeventOption func(*MindEventMutation)

// newMindEventMutation creates new mutation for the MindEvent entity.
func newMindEventMutation(c config, op Op, opts ...mindeventOption) *MindEventMutation {
	m := &MindEventMutation{
		config:        c,
		op:            op,
		typ:           TypeMindEvent,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withMindEventID sets the ID field of the mutation.
func withMindEventID(id string) mindeventOption {
	return func(m *MindEventMutation) {
		var (
			err   error
			once  sync.Once
			value *MindEvent
		)
		m.oldValue = func(ctx context.Context) (*MindEvent, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().MindEvent.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withMindEvent sets the old MindEvent of the mutation.
func withMindEvent(node *MindEvent) mindeventOption {
	return func(m *MindEventMutation) {
		m.oldValue = func(context.Context) (*MindEvent, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m MindEventMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m MindEventMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of MindEvent entities.
func (m *MindEventMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *MindEventMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *MindEventMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().MindEvent.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetWorkspaceID sets the "workspace_id" field.
func (m *MindEventMutation) SetWorkspaceID(s string) {
	m.workspace_id = &s
}

// WorkspaceID returns the value of the "workspace_id" field in the mutation.
func (m *MindEventMutation) WorkspaceID() (r string, exists bool) {
	v := m.workspace_id
	if v == nil {
		return
	}
	return *v, true
}

// OldWorkspaceID returns the old "workspace_id" field's value of the MindEvent entity.
// If the MindEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *MindEventMutation) OldWorkspaceID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldWorkspaceID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldWorkspaceID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldWorkspaceID: %w", err)
	}
	return oldValue.WorkspaceID, nil
}

// ResetWorkspaceID resets all changes to the "workspace_id" field.
func (m *MindEventMutation) ResetWorkspaceID() {
	m.workspace_id = nil
}

// SetProfileID sets the "profile_id" field.
func (m *MindEventMutation) SetProfileID(s string) {
	m.profile_id = &s
}

// ProfileID returns the value of the "profile_id" field in the mutation.
func (m *MindEventMutation) ProfileID() (r string, exists bool) {
	v := m.profile_id
	if v == nil {
		return
	}
	return *v, true
}

// OldProfileID returns the old "profile_id" field's value of the MindEvent entity.
// If the MindEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *MindEventMutation) OldProfileID(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldProfileID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldProfileID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldProfileID: %w", err)
	}
	return oldValue.ProfileID, nil
}

// ClearProfileID clears the value of the "profile_id" field.
func (m *MindEventMutation) ClearProfileID() {
	m.profile_id = nil
	m.clearedFields[mindevent.FieldProfileID] = struct{}{}
}

// ProfileIDCleared returns if the "profile_id" field was cleared in this mutation.
func (m *MindEventMutation) ProfileIDCleared() bool {
	_, ok := m.clearedFields[mindevent.FieldProfileID]
	return ok
}

// ResetProfileID resets all changes to the "profile_id" field.
func (m *MindEventMutation) ResetProfileID() {
	m.profile_id = nil
	delete(m.clearedFields, mindevent.FieldProfileID)
}

// SetThreadID sets the "thread_id" field.
func (m *MindEventMutation) SetThreadID(s string) {
	m.thread_id = &s
}

// ThreadID returns the value of the "thread_id" field in the mutation.
func (m *MindEventMutation) ThreadID() (r string, exists bool) {
	v := m.thread_id
	if v == nil {
		return
	}
	return *v, true
}

// OldThreadID returns the old "thread_id" field's value of the MindEvent entity.
// If the MindEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *MindEventMutation) OldThreadID(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldThreadID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldThreadID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldThreadID: %w", err)
	}
	return oldValue.ThreadID, nil
}

// ClearThreadID clears the value of the "thread_id" field.
func (m *MindEventMutation) ClearThreadID() {
	m.thread_id = nil
	m.clearedFields[mindevent.FieldThreadID] = struct{}{}
}

// ThreadIDCleared returns if the "thread_id" field was cleared in this mutation.
func (m *MindEventMutation) ThreadIDCleared() bool {
	_, ok := m.clearedFields[mindevent.FieldThreadID]
	return ok
}

// ResetThreadID resets all changes to the "thread_id" field.
func (m *MindEventMutation) ResetThreadID() {
	m.thread_id = nil
	delete(m.clearedFields, mindevent.FieldThreadID)
}

// SetEntityIds sets the "entity_ids" field.
func (m *MindEventMutation) SetEntityIds(s []string) {
	m.entity_ids = &s
	m.appendentity_ids = nil
}

// EntityIds returns the value of the "entity_ids" field in the mutation.
func (m *MindEventMutation) EntityIds() (r []string, exists bool) {
	v := m.entity_ids
	if v == nil {
		return
	}
	return *v, true
}

// OldEntityIds returns the old "entity_ids" field's value of the MindEvent entity.
// If the MindEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *MindEventMutation) OldEntityIds(ctx context.Context) (v []string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldEntityIds is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldEntityIds requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldEntityIds: %w", err)
	}
	return oldValue.EntityIds, nil
}

// AppendEntityIds adds s to the "entity_ids" field.
func (m *MindEventMutation) AppendEntityIds(s []string) {
	m.appendentity_ids = append(m.appendentity_ids, s...)
}

// AppendedEntityIds returns the list of values that were appended to the "entity_ids" field in this mutation.
func (m *MindEventMutation) AppendedEntityIds() ([]string, bool) {
	if len(m.appendentity_ids) == 0 {
		return nil, false
	}
	return m.appendentity_ids, true
}

// ClearEntityIds clears the value of the "entity_ids" field.
func (m *MindEventMutation) ClearEntityIds() {
	m.entity_ids = nil
	m.appendentity_ids = nil
	m.clearedFields[mindevent.FieldEntityIds] = struct{}{}
}

// EntityIdsCleared returns if the "entity_ids" field was cleared in this mutation.
func (m *MindEventMutation) EntityIdsCleared() bool {
	_, ok := m.clearedFields[mindevent.FieldEntityIds]
	return ok
}

// ResetEntityIds resets all changes to the "entity_ids" field.
func (m *MindEventMutation) ResetEntityIds() {
	m.entity_ids = nil
	m.appendentity_ids = nil
	delete(m.clearedFields, mindevent.FieldEntityIds)
}

// SetActor sets the "actor" field.
func (m *MindEventMutation) SetActor(value mindevent.Actor) {
	m.actor = &value
}

// Actor returns the value of the "actor" field in the mutation.
func (m *MindEventMutation) Actor() (r mindevent.Actor, exists bool) {
	v := m.actor
	if v == nil {
		return
	}
	return *v, true
}

// OldActor returns the old "actor" field's value of the MindEvent entity.
// If the MindEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *MindEventMutation) OldActor(ctx context.Context) (v mindevent.Actor, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldActor is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldActor requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldActor: %w", err)
	}
	return oldValue.Actor, nil
}

// ResetActor resets all changes to the "actor" field.
func (m *MindEventMutation) ResetActor() {
	m.actor = nil
}

// SetEventType sets the "event_type" field.
func (m *MindEventMutation) SetEventType(s string) {
	m.event_type = &s
}

// EventType returns the value of the "event_type" field in the mutation.
func (m *MindEventMutation) EventType() (r string, exists bool) {
	v := m.event_type
	if v == nil {
		return
	}
	return *v, true
}

// OldEventType returns the old "event_type" field's value of the MindEvent entity.
// If the MindEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *MindEventMutation) OldEventType(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldEventType is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldEventType requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldEventType: %w", err)
	}
	return oldValue.EventType, nil
}

// ResetEventType resets all changes to the "event_type" field.
func (m *MindEventMutation) ResetEventType() {
	m.event_type = nil
}

// SetPayload sets the "payload" field.
func (m *MindEventMutation) SetPayload(value map[string]interface{}) {
	m.payload = &value
}

// Payload returns the value of the "payload" field in the mutation.
func (m *MindEventMutation) Payload() (r map[string]interface{}, exists bool) {
	v := m.payload
	if v == nil {
		return
	}
	return *v, true
}

// OldPayload returns the old "payload" field's value of the MindEvent entity.
// If the MindEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *MindEventMutation) OldPayload(ctx context.Context) (v map[string]interface{}, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPayload is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPayload requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPayload: %w", err)
	}
	return oldValue.Payload, nil
}

// ClearPayload clears the value of the "payload" field.
func (m *MindEventMutation) ClearPayload() {
	m.payload = nil
	m.clearedFields[mindevent.FieldPayload] = struct{}{}
}

// PayloadCleared returns if the "payload" field was cleared in this mutation.
func (m *MindEventMutation) PayloadCleared() bool {
	_, ok := m.clearedFields[mindevent.FieldPayload]
	return ok
}

// ResetPayload resets all changes to the "payload" field.
func (m *MindEventMutation) ResetPayload() {
	m.payload = nil
	delete(m.clearedFields, mindevent.FieldPayload)
}

// SetMetadata sets the "metadata" field.
func (m *MindEventMutation) SetMetadata(value map[string]interface{}) {
	m.metadata = &value
}

// Metadata returns the value of the "metadata" field in the mutation.
func (m *MindEventMutation) Metadata() (r map[string]interface{}, exists bool) {
	v := m.metadata
	if v == nil {
		return
	}
	return *v, true
}

// OldMetadata returns the old "metadata" field's value of the MindEvent entity.
// If the MindEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *MindEventMutation) OldMetadata(ctx context.Context) (v map[string]interface{}, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldMetadata is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldMetadata requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldMetadata: %w", err)
	}
	return oldValue.Metadata, nil
}

// ClearMetadata clears the value of the "metadata" field.
func (m *MindEventMutation) ClearMetadata() {
	m.metadata = nil
	m.clearedFields[mindevent.FieldMetadata] = struct{}{}
}

// MetadataCleared returns if the "metadata" field was cleared in this mutation.
func (m *MindEventMutation) MetadataCleared() bool {
	_, ok := m.clearedFields[mindevent.FieldMetadata]
	return ok
}

// ResetMetadata resets all changes to the "metadata" field.
func (m *MindEventMutation) ResetMetadata() {
	m.metadata = nil
	delete(m.clearedFields, mindevent.FieldMetadata)
}

// SetTimestamp sets the "timestamp" field.
func (m *MindEventMutation) SetTimestamp(t time.Time) {
	m.timestamp = &t
}

// Timestamp returns the value of the "timestamp" field in the mutation.
func (m *MindEventMutation) Timestamp() (r time.Time, exists bool) {
	v := m.timestamp
	if v == nil {
		return
	}
	return *v, true
}

// OldTimestamp returns the old "timestamp" field's value of the MindEvent entity.
// If the MindEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *MindEventMutation) OldTimestamp(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTimestamp is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTimestamp requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTimestamp: %w", err)
	}
	return oldValue.Timestamp, nil
}

// ResetTimestamp resets all changes to the "timestamp" field.
func (m *MindEventMutation) ResetTimestamp() {
	m.timestamp = nil
}

// Where appends a list predicates to the MindEventMutation builder.
func (m *MindEventMutation) Where(ps ...predicate.MindEvent) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the MindEventMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *MindEventMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.MindEvent, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *MindEventMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *MindEventMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (MindEvent).
func (m *MindEventMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *MindEventMutation) Fields() []string {
	fields := make([]string, 0, 9)
	if m.workspace_id != nil {
		fields = append(fields, mindevent.FieldWorkspaceID)
	}
	if m.profile_id != nil {
		fields = append(fields, mindevent.FieldProfileID)
	}
	if m.thread_id != nil {
		fields = append(fields, mindevent.FieldThreadID)
	}
	if m.entity_ids != nil {
		fields = append(fields, mindevent.FieldEntityIds)
	}
	if m.actor != nil {
		fields = append(fields, mindevent.FieldActor)
	}
	if m.event_type != nil {
		fields = append(fields, mindevent.FieldEventType)
	}
	if m.payload != nil {
		fields = append(fields, mindevent.FieldPayload)
	}
	if m.metadata != nil {
		fields = append(fields, mindevent.FieldMetadata)
	}
	if m.timestamp != nil {
		fields = append(fields, mindevent.FieldTimestamp)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *MindEventMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case mindevent.FieldWorkspaceID:
		return m.WorkspaceID()
	case mindevent.FieldProfileID:
		return m.ProfileID()
	case mindevent.FieldThreadID:
		return m.ThreadID()
	case mindevent.FieldEntityIds:
		return m.EntityIds()
	case mindevent.FieldActor:
		return m.Actor()
	case mindevent.FieldEventType:
		return m.EventType()
	case mindevent.FieldPayload:
		return m.Payload()
	case mindevent.FieldMetadata:
		return m.Metadata()
	case mindevent.FieldTimestamp:
		return m.Timestamp()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *MindEventMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case mindevent.FieldWorkspaceID:
		return m.OldWorkspaceID(ctx)
	case mindevent.FieldProfileID:
		return m.OldProfileID(ctx)
	case mindevent.FieldThreadID:
		return m.OldThreadID(ctx)
	case mindevent.FieldEntityIds:
		return m.OldEntityIds(ctx)
	case mindevent.FieldActor:
		return m.OldActor(ctx)
	case mindevent.FieldEventType:
		return m.OldEventType(ctx)
	case mindevent.FieldPayload:
		return m.OldPayload(ctx)
	case mindevent.FieldMetadata:
		return m.OldMetadata(ctx)
	case mindevent.FieldTimestamp:
		return m.OldTimestamp(ctx)
	}
	return nil, fmt.Errorf("unknown MindEvent field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *MindEventMutation) SetField(name string, value ent.Value) error {
	switch name {
	case mindevent.FieldWorkspaceID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetWorkspaceID(v)
		return nil
	case mindevent.FieldProfileID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetProfileID(v)
		return nil
	case mindevent.FieldThreadID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetThreadID(v)
		return nil
	case mindevent.FieldEntityIds:
		v, ok := value.([]string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetEntityIds(v)
		return nil
	case mindevent.FieldActor:
		v, ok := value.(mindevent.Actor)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetActor(v)
		return nil
	case mindevent.FieldEventType:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetEventType(v)
		return nil
	case mindevent.FieldPayload:
		v, ok := value.(map[string]interface{})
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPayload(v)
		return nil
	case mindevent.FieldMetadata:
		v, ok := value.(map[string]interface{})
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetMetadata(v)
		return nil
	case mindevent.FieldTimestamp:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTimestamp(v)
		return nil
	}
	return fmt.Errorf("unknown MindEvent field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *MindEventMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *MindEventMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *MindEventMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown MindEvent numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *MindEventMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(mindevent.FieldProfileID) {
		fields = append(fields, mindevent.FieldProfileID)
	}
	if m.FieldCleared(mindevent.FieldThreadID) {
		fields = append(fields, mindevent.FieldThreadID)
	}
	if m.FieldCleared(mindevent.FieldEntityIds) {
		fields = append(fields, mindevent.FieldEntityIds)
	}
	if m.FieldCleared(mindevent.FieldPayload) {
		fields = append(fields, mindevent.FieldPayload)
	}
	if m.FieldCleared(mindevent.FieldMetadata) {
		fields = append(fields, mindevent.FieldMetadata)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *MindEventMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *MindEventMutation) ClearField(name string) error {
	switch name {
	case mindevent.FieldProfileID:
		m.ClearProfileID()
		return nil
	case mindevent.FieldThreadID:
		m.ClearThreadID()
		return nil
	case mindevent.FieldEntityIds:
		m.ClearEntityIds()
		return nil
	case mindevent.FieldPayload:
		m.ClearPayload()
		return nil
	case mindevent.FieldMetadata:
		m.ClearMetadata()
		return nil
	}
	return fmt.Errorf("unknown MindEvent nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *MindEventMutation) ResetField(name string) error {
	switch name {
	case mindevent.FieldWorkspaceID:
		m.ResetWorkspaceID()
		return nil
	case mindevent.FieldProfileID:
		m.ResetProfileID()
		return nil
	case mindevent.FieldThreadID:
		m.ResetThreadID()
		return nil
	case mindevent.FieldEntityIds:
		m.ResetEntityIds()
		return nil
	case mindevent.FieldActor:
		m.ResetActor()
		return nil
	case mindevent.FieldEventType:
		m.ResetEventType()
		return nil
	case mindevent.FieldPayload:
		m.ResetPayload()
		return nil
	case mindevent.FieldMetadata:
		m.ResetMetadata()
		return nil
	case mindevent.FieldTimestamp:
		m.ResetTimestamp()
		return nil
	}
	return fmt.Errorf("unknown MindEvent field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *MindEventMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *MindEventMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *MindEventMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *MindEventMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *MindEventMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *MindEventMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *MindEventMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown MindEvent unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *MindEventMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown MindEvent edge %s", name)
}

// PlaybookExecutionMutation represents an operation that mutates the PlaybookExecution nodes in the graph.
type PlaybookExecutionMutation struct {
	config
	op                    Op
	typ                   string
	id                    *string
	workspace_id          *string
	playbook_code         *string
	status                *string
	current_step_index    *int
	addcurrent_step_index *int
	total_steps           *int
	addtotal_steps        *int
	snapshot              *map[string]interface{}
	phase_summaries       *[]map[string]interface{}
	appendphase_summaries []map[string]interface{}
	intent_id             *string
	failure_metadata      *map[string]interface{}
	supports_resume       *bool
	created_at            *time.Time
	updated_at            *time.Time
	completed_at          *time.Time
	clearedFields         map[string]struct{}
	done                  bool
	oldValue              func(context.Context) (*PlaybookExecution, error)
	predicates            []predicate.PlaybookExecution
}

var _ ent.Mutation = (*PlaybookExecutionMutation)(nil)

// playbookexecutionOption allows management of the mutation configuration using functional options.
type playbookexecutionOption func(*PlaybookExecutionMutation)

// newPlaybookExecutionMutation creates new mutation for the PlaybookExecution entity.
func newPlaybookExecutionMutation(c config, op Op, opts ...playbookexecutionOption) *PlaybookExecutionMutation {
	m := &PlaybookExecutionMutation{
		config:        c,
		op:            op,
		typ:           TypePlaybookExecution,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withPlaybookExecutionID sets the ID field of the mutation.
func withPlaybookExecutionID(id string) playbookexecutionOption {
	return func(m *PlaybookExecutionMutation) {
		var (
			err   error
			once  sync.Once
			value *PlaybookExecution
		)
		m.oldValue = func(ctx context.Context) (*PlaybookExecution, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().PlaybookExecution.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withPlaybookExecution sets the old PlaybookExecution of the mutation.
func withPlaybookExecution(node *PlaybookExecution) playbookexecutionOption {
	return func(m *PlaybookExecutionMutation) {
		m.oldValue = func(context.Context) (*PlaybookExecution, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m PlaybookExecutionMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m PlaybookExecutionMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of PlaybookExecution entities.
func (m *PlaybookExecutionMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *PlaybookExecutionMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *PlaybookExecutionMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().PlaybookExecution.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetWorkspaceID sets the "workspace_id" field.
func (m *PlaybookExecutionMutation) SetWorkspaceID(s string) {
	m.workspace_id = &s
}

// WorkspaceID returns the value of the "workspace_id" field in the mutation.
func (m *PlaybookExecutionMutation) WorkspaceID() (r string, exists bool) {
	v := m.workspace_id
	if v == nil {
		return
	}
	return *v, true
}

// OldWorkspaceID returns the old "workspace_id" field's value of the PlaybookExecution entity.
// If the PlaybookExecution object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PlaybookExecutionMutation) OldWorkspaceID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldWorkspaceID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldWorkspaceID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldWorkspaceID: %w", err)
	}
	return oldValue.WorkspaceID, nil
}

// ResetWorkspaceID resets all changes to the "workspace_id" field.
func (m *PlaybookExecutionMutation) ResetWorkspaceID() {
	m.workspace_id = nil
}

// SetPlaybookCode sets the "playbook_code" field.
func (m *PlaybookExecutionMutation) SetPlaybookCode(s string) {
	m.playbook_code = &s
}

// PlaybookCode returns the value of the "playbook_code" field in the mutation.
func (m *PlaybookExecutionMutation) PlaybookCode() (r string, exists bool) {
	v := m.playbook_code
	if v == nil {
		return
	}
	return *v, true
}

// OldPlaybookCode returns the old "playbook_code" field's value of the PlaybookExecution entity.
// If the PlaybookExecution object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PlaybookExecutionMutation) OldPlaybookCode(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPlaybookCode is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPlaybookCode requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPlaybookCode: %w", err)
	}
	return oldValue.PlaybookCode, nil
}

// ResetPlaybookCode resets all changes to the "playbook_code" field.
func (m *PlaybookExecutionMutation) ResetPlaybookCode() {
	m.playbook_code = nil
}

// SetStatus sets the "status" field.
func (m *PlaybookExecutionMutation) SetStatus(s string) {
	m.status = &s
}

// Status returns the value of the "status" field in the mutation.
func (m *PlaybookExecutionMutation) Status() (r string, exists bool) {
	v := m.status
	if v == nil {
		return
	}
	return *v, true
}

// OldStatus returns the old "status" field's value of the PlaybookExecution entity.
// If the PlaybookExecution object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PlaybookExecutionMutation) OldStatus(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStatus is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStatus requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStatus: %w", err)
	}
	return oldValue.Status, nil
}

// ResetStatus resets all changes to the "status" field.
func (m *PlaybookExecutionMutation) ResetStatus() {
	m.status = nil
}

// SetCurrentStepIndex sets the "current_step_index" field.
func (m *PlaybookExecutionMutation) SetCurrentStepIndex(i int) {
	m.current_step_index = &i
	m.addcurrent_step_index = nil
}

// CurrentStepIndex returns the value of the "current_step_index" field in the mutation.
func (m *PlaybookExecutionMutation) CurrentStepIndex() (r int, exists bool) {
	v := m.current_step_index
	if v == nil {
		return
	}
	return *v, true
}

// OldCurrentStepIndex returns the old "current_step_index" field's value of the PlaybookExecution entity.
// If the PlaybookExecution object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PlaybookExecutionMutation) OldCurrentStepIndex(ctx context.Context) (v *int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCurrentStepIndex is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCurrentStepIndex requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCurrentStepIndex: %w", err)
	}
	return oldValue.CurrentStepIndex, nil
}

// AddCurrentStepIndex adds i to the "current_step_index" field.
func (m *PlaybookExecutionMutation) AddCurrentStepIndex(i int) {
	if m.addcurrent_step_index != nil {
		*m.addcurrent_step_index += i
	} else {
		m.addcurrent_step_index = &i
	}
}

// AddedCurrentStepIndex returns the value that was added to the "current_step_index" field in this mutation.
func (m *PlaybookExecutionMutation) AddedCurrentStepIndex() (r int, exists bool) {
	v := m.addcurrent_step_index
	if v == nil {
		return
	}
	return *v, true
}

// ClearCurrentStepIndex clears the value of the "current_step_index" field.
func (m *PlaybookExecutionMutation) ClearCurrentStepIndex() {
	m.current_step_index = nil
	m.addcurrent_step_index = nil
	m.clearedFields[playbookexecution.FieldCurrentStepIndex] = struct{}{}
}

// CurrentStepIndexCleared returns if the "current_step_index" field was cleared in this mutation.
func (m *PlaybookExecutionMutation) CurrentStepIndexCleared() bool {
	_, ok := m.clearedFields[playbookexecution.FieldCurrentStepIndex]
	return ok
}

// ResetCurrentStepIndex resets all changes to the "current_step_index" field.
func (m *PlaybookExecutionMutation) ResetCurrentStepIndex() {
	m.current_step_index = nil
	m.addcurrent_step_index = nil
	delete(m.clearedFields, playbookexecution.FieldCurrentStepIndex)
}

// SetTotalSteps sets the "total_steps" field.
func (m *PlaybookExecutionMutation) SetTotalSteps(i int) {
	m.total_steps = &i
	m.addtotal_steps = nil
}

// TotalSteps returns the value of the "total_steps" field in the mutation.
func (m *PlaybookExecutionMutation) TotalSteps() (r int, exists bool) {
	v := m.total_steps
	if v == nil {
		return
	}
	return *v, true
}

// OldTotalSteps returns the old "total_steps" field's value of the PlaybookExecution entity.
// If the PlaybookExecution object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PlaybookExecutionMutation) OldTotalSteps(ctx context.Context) (v *int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTotalSteps is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTotalSteps requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTotalSteps: %w", err)
	}
	return oldValue.TotalSteps, nil
}

// AddTotalSteps adds i to the "total_steps" field.
func (m *PlaybookExecutionMutation) AddTotalSteps(i int) {
	if m.addtotal_steps != nil {
		*m.addtotal_steps += i
	} else {
		m.addtotal_steps = &i
	}
}

// AddedTotalSteps returns the value that was added to the "total_steps" field in this mutation.
func (m *PlaybookExecutionMutation) AddedTotalSteps() (r int, exists bool) {
	v := m.addtotal_steps
	if v == nil {
		return
	}
	return *v, true
}

// ClearTotalSteps clears the value of the "total_steps" field.
func (m *PlaybookExecutionMutation) ClearTotalSteps() {
	m.total_steps = nil
	m.addtotal_steps = nil
	m.clearedFields[playbookexecution.FieldTotalSteps] = struct{}{}
}

// TotalStepsCleared returns if the "total_steps" field was cleared in this mutation.
func (m *PlaybookExecutionMutation) TotalStepsCleared() bool {
	_, ok := m.clearedFields[playbookexecution.FieldTotalSteps]
	return ok
}

// ResetTotalSteps resets all changes to the "total_steps" field.
func (m *PlaybookExecutionMutation) ResetTotalSteps() {
	m.total_steps = nil
	m.addtotal_steps = nil
	delete(m.clearedFields, playbookexecution.FieldTotalSteps)
}

// SetSnapshot sets the "snapshot" field.
func (m *PlaybookExecutionMutation) SetSnapshot(value map[string]interface{}) {
	m.snapshot = &value
}

// Snapshot returns the value of the "snapshot" field in the mutation.
func (m *PlaybookExecutionMutation) Snapshot() (r map[string]interface{}, exists bool) {
	v := m.snapshot
	if v == nil {
		return
	}
	return *v, true
}

// OldSnapshot returns the old "snapshot" field's value of the PlaybookExecution entity.
// If the PlaybookExecution object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PlaybookExecutionMutation) OldSnapshot(ctx context.Context) (v map[string]interface{}, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSnapshot is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSnapshot requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSnapshot: %w", err)
	}
	return oldValue.Snapshot, nil
}

// ClearSnapshot clears the value of the "snapshot" field.
func (m *PlaybookExecutionMutation) ClearSnapshot() {
	m.snapshot = nil
	m.clearedFields[playbookexecution.FieldSnapshot] = struct{}{}
}

// SnapshotCleared returns if the "snapshot" field was cleared in this mutation.
func (m *PlaybookExecutionMutation) SnapshotCleared() bool {
	_, ok := m.clearedFields[playbookexecution.FieldSnapshot]
	return ok
}

// ResetSnapshot resets all changes to the "snapshot" field.
func (m *PlaybookExecutionMutation) ResetSnapshot() {
	m.snapshot = nil
	delete(m.clearedFields, playbookexecution.FieldSnapshot)
}

// SetPhaseSummaries sets the "phase_summaries" field.
func (m *PlaybookExecutionMutation) SetPhaseSummaries(value []map[string]interface{}) {
	m.phase_summaries = &value
	m.appendphase_summaries = nil
}

// PhaseSummaries returns the value of the "phase_summaries" field in the mutation.
func (m *PlaybookExecutionMutation) PhaseSummaries() (r []map[string]interface{}, exists bool) {
	v := m.phase_summaries
	if v == nil {
		return
	}
	return *v, true
}

// OldPhaseSummaries returns the old "phase_summaries" field's value of the PlaybookExecution entity.
// If the PlaybookExecution object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PlaybookExecutionMutation) OldPhaseSummaries(ctx context.Context) (v []map[string]interface{}, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPhaseSummaries is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPhaseSummaries requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPhaseSummaries: %w", err)
	}
	return oldValue.PhaseSummaries, nil
}

// AppendPhaseSummaries adds value to the "phase_summaries" field.
func (m *PlaybookExecutionMutation) AppendPhaseSummaries(value []map[string]interface{}) {
	m.appendphase_summaries = append(m.appendphase_summaries, value...)
}

// AppendedPhaseSummaries returns the list of values that were appended to the "phase_summaries" field in this mutation.
func (m *PlaybookExecutionMutation) AppendedPhaseSummaries() ([]map[string]interface{}, bool) {
	if len(m.appendphase_summaries) == 0 {
		return nil, false
	}
	return m.appendphase_summaries, true
}

// ClearPhaseSummaries clears the value of the "phase_summaries" field.
func (m *PlaybookExecutionMutation) ClearPhaseSummaries() {
	m.phase_summaries = nil
	m.appendphase_summaries = nil
	m.clearedFields[playbookexecution.FieldPhaseSummaries] = struct{}{}
}

// PhaseSummariesCleared returns if the "phase_summaries" field was cleared in this mutation.
func (m *PlaybookExecutionMutation) PhaseSummariesCleared() bool {
	_, ok := m.clearedFields[playbookexecution.FieldPhaseSummaries]
	return ok
}

// ResetPhaseSummaries resets all changes to the "phase_summaries" field.
func (m *PlaybookExecutionMutation) ResetPhaseSummaries() {
	m.phase_summaries = nil
	m.appendphase_summaries = nil
	delete(m.clearedFields, playbookexecution.FieldPhaseSummaries)
}

// SetIntentID sets the "intent_id" field.
func (m *PlaybookExecutionMutation) SetIntentID(s string) {
	m.intent_id = &s
}

// IntentID returns the value of the "intent_id" field in the mutation.
func (m *PlaybookExecutionMutation) IntentID() (r string, exists bool) {
	v := m.intent_id
	if v == nil {
		return
	}
	return *v, true
}

// OldIntentID returns the old "intent_id" field's value of the PlaybookExecution entity.
// If the PlaybookExecution object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PlaybookExecutionMutation) OldIntentID(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldIntentID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldIntentID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldIntentID: %w", err)
	}
	return oldValue.IntentID, nil
}

// ClearIntentID clears the value of the "intent_id" field.
func (m *PlaybookExecutionMutation) ClearIntentID() {
	m.intent_id = nil
	m.clearedFields[playbookexecution.FieldIntentID] = struct{}{}
}

// IntentIDCleared returns if the "intent_id" field was cleared in this mutation.
func (m *PlaybookExecutionMutation) IntentIDCleared() bool {
	_, ok := m.clearedFields[playbookexecution.FieldIntentID]
	return ok
}

// ResetIntentID resets all changes to the "intent_id" field.
func (m *PlaybookExecutionMutation) ResetIntentID() {
	m.intent_id = nil
	delete(m.clearedFields, playbookexecution.FieldIntentID)
}

// SetFailureMetadata sets the "failure_metadata" field.
func (m *PlaybookExecutionMutation) SetFailureMetadata(value map[string]interface{}) {
	m.failure_metadata = &value
}

// FailureMetadata returns the value of the "failure_metadata" field in the mutation.
func (m *PlaybookExecutionMutation) FailureMetadata() (r map[string]interface{}, exists bool) {
	v := m.failure_metadata
	if v == nil {
		return
	}
	return *v, true
}

// OldFailureMetadata returns the old "failure_metadata" field's value of the PlaybookExecution entity.
// If the PlaybookExecution object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PlaybookExecutionMutation) OldFailureMetadata(ctx context.Context) (v map[string]interface{}, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldFailureMetadata is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldFailureMetadata requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldFailureMetadata: %w", err)
	}
	return oldValue.FailureMetadata, nil
}

// ClearFailureMetadata clears the value of the "failure_metadata" field.
func (m *PlaybookExecutionMutation) ClearFailureMetadata() {
	m.failure_metadata = nil
	m.clearedFields[playbookexecution.FieldFailureMetadata] = struct{}{}
}

// FailureMetadataCleared returns if the "failure_metadata" field was cleared in this mutation.
func (m *PlaybookExecutionMutation) FailureMetadataCleared() bool {
	_, ok := m.clearedFields[playbookexecution.FieldFailureMetadata]
	return ok
}

// ResetFailureMetadata resets all changes to the "failure_metadata" field.
func (m *PlaybookExecutionMutation) ResetFailureMetadata() {
	m.failure_metadata = nil
	delete(m.clearedFields, playbookexecution.FieldFailureMetadata)
}

// SetSupportsResume sets the "supports_resume" field.
func (m *PlaybookExecutionMutation) SetSupportsResume(b bool) {
	m.supports_resume = &b
}

// SupportsResume returns the value of the "supports_resume" field in the mutation.
func (m *PlaybookExecutionMutation) SupportsResume() (r bool, exists bool) {
	v := m.supports_resume
	if v == nil {
		return
	}
	return *v, true
}

// OldSupportsResume returns the old "supports_resume" field's value of the PlaybookExecution entity.
// If the PlaybookExecution object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PlaybookExecutionMutation) OldSupportsResume(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSupportsResume is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSupportsResume requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSupportsResume: %w", err)
	}
	return oldValue.SupportsResume, nil
}

// ResetSupportsResume resets all changes to the "supports_resume" field.
func (m *PlaybookExecutionMutation) ResetSupportsResume() {
	m.supports_resume = nil
}

// SetCreatedAt sets the "created_at" field.
func (m *PlaybookExecutionMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *PlaybookExecutionMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the PlaybookExecution entity.
// If the PlaybookExecution object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PlaybookExecutionMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *PlaybookExecutionMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *PlaybookExecutionMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *PlaybookExecutionMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the PlaybookExecution entity.
// If the PlaybookExecution object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PlaybookExecutionMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedAt: %w", err)
	}
	return oldValue.UpdatedAt, nil
}

// ResetUpdatedAt resets all changes to the "updated_at" field.
func (m *PlaybookExecutionMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// SetCompletedAt sets the "completed_at" field.
func (m *PlaybookExecutionMutation) SetCompletedAt(t time.Time) {
	m.completed_at = &t
}

// CompletedAt returns the value of the "completed_at" field in the mutation.
func (m *PlaybookExecutionMutation) CompletedAt() (r time.Time, exists bool) {
	v := m.completed_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCompletedAt returns the old "completed_at" field's value of the PlaybookExecution entity.
// If the PlaybookExecution object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PlaybookExecutionMutation) OldCompletedAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCompletedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCompletedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCompletedAt: %w", err)
	}
	return oldValue.CompletedAt, nil
}

// ClearCompletedAt clears the value of the "completed_at" field.
func (m *PlaybookExecutionMutation) ClearCompletedAt() {
	m.completed_at = nil
	m.clearedFields[playbookexecution.FieldCompletedAt] = struct{}{}
}

// CompletedAtCleared returns if the "completed_at" field was cleared in this mutation.
func (m *PlaybookExecutionMutation) CompletedAtCleared() bool {
	_, ok := m.clearedFields[playbookexecution.FieldCompletedAt]
	return ok
}

// ResetCompletedAt resets all changes to the "completed_at" field.
func (m *PlaybookExecutionMutation) ResetCompletedAt() {
	m.completed_at = nil
	delete(m.clearedFields, playbookexecution.FieldCompletedAt)
}

// Where appends a list predicates to the PlaybookExecutionMutation builder.
func (m *PlaybookExecutionMutation) Where(ps ...predicate.PlaybookExecution) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the PlaybookExecutionMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *PlaybookExecutionMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.PlaybookExecution, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *PlaybookExecutionMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *PlaybookExecutionMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (PlaybookExecution).
func (m *PlaybookExecutionMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *PlaybookExecutionMutation) Fields() []string {
	fields := make([]string, 0, 13)
	if m.workspace_id != nil {
		fields = append(fields, playbookexecution.FieldWorkspaceID)
	}
	if m.playbook_code != nil {
		fields = append(fields, playbookexecution.FieldPlaybookCode)
	}
	if m.status != nil {
		fields = append(fields, playbookexecution.FieldStatus)
	}
	if m.current_step_index != nil {
		fields = append(fields, playbookexecution.FieldCurrentStepIndex)
	}
	if m.total_steps != nil {
		fields = append(fields, playbookexecution.FieldTotalSteps)
	}
	if m.snapshot != nil {
		fields = append(fields, playbookexecution.FieldSnapshot)
	}
	if m.phase_summaries != nil {
		fields = append(fields, playbookexecution.FieldPhaseSummaries)
	}
	if m.intent_id != nil {
		fields = append(fields, playbookexecution.FieldIntentID)
	}
	if m.failure_metadata != nil {
		fields = append(fields, playbookexecution.FieldFailureMetadata)
	}
	if m.supports_resume != nil {
		fields = append(fields, playbookexecution.FieldSupportsResume)
	}
	if m.created_at != nil {
		fields = append(fields, playbookexecution.FieldCreatedAt)
	}
	if m.updated_at != nil {
		fields = append(fields, playbookexecution.FieldUpdatedAt)
	}
	if m.completed_at != nil {
		fields = append(fields, playbookexecution.FieldCompletedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *PlaybookExecutionMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case playbookexecution.FieldWorkspaceID:
		return m.WorkspaceID()
	case playbookexecution.FieldPlaybookCode:
		return m.PlaybookCode()
	case playbookexecution.FieldStatus:
		return m.Status()
	case playbookexecution.FieldCurrentStepIndex:
		return m.CurrentStepIndex()
	case playbookexecution.FieldTotalSteps:
		return m.TotalSteps()
	case playbookexecution.FieldSnapshot:
		return m.Snapshot()
	case playbookexecution.FieldPhaseSummaries:
		return m.PhaseSummaries()
	case playbookexecution.FieldIntentID:
		return m.IntentID()
	case playbookexecution.FieldFailureMetadata:
		return m.FailureMetadata()
	case playbookexecution.FieldSupportsResume:
		return m.SupportsResume()
	case playbookexecution.FieldCreatedAt:
		return m.CreatedAt()
	case playbookexecution.FieldUpdatedAt:
		return m.UpdatedAt()
	case playbookexecution.FieldCompletedAt:
		return m.CompletedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *PlaybookExecutionMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case playbookexecution.FieldWorkspaceID:
		return m.OldWorkspaceID(ctx)
	case playbookexecution.FieldPlaybookCode:
		return m.OldPlaybookCode(ctx)
	case playbookexecution.FieldStatus:
		return m.OldStatus(ctx)
	case playbookexecution.FieldCurrentStepIndex:
		return m.OldCurrentStepIndex(ctx)
	case playbookexecution.FieldTotalSteps:
		return m.OldTotalSteps(ctx)
	case playbookexecution.FieldSnapshot:
		return m.OldSnapshot(ctx)
	case playbookexecution.FieldPhaseSummaries:
		return m.OldPhaseSummaries(ctx)
	case playbookexecution.FieldIntentID:
		return m.OldIntentID(ctx)
	case playbookexecution.FieldFailureMetadata:
		return m.OldFailureMetadata(ctx)
	case playbookexecution.FieldSupportsResume:
		return m.OldSupportsResume(ctx)
	case playbookexecution.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case playbookexecution.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	case playbookexecution.FieldCompletedAt:
		return m.OldCompletedAt(ctx)
	}
	return nil, fmt.Errorf("unknown PlaybookExecution field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *PlaybookExecutionMutation) SetField(name string, value ent.Value) error {
	switch name {
	case playbookexecution.FieldWorkspaceID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetWorkspaceID(v)
		return nil
	case playbookexecution.FieldPlaybookCode:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPlaybookCode(v)
		return nil
	case playbookexecution.FieldStatus:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStatus(v)
		return nil
	case playbookexecution.FieldCurrentStepIndex:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCurrentStepIndex(v)
		return nil
	case playbookexecution.FieldTotalSteps:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTotalSteps(v)
		return nil
	case playbookexecution.FieldSnapshot:
		v, ok := value.(map[string]interface{})
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSnapshot(v)
		return nil
	case playbookexecution.FieldPhaseSummaries:
		v, ok := value.([]map[string]interface{})
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPhaseSummaries(v)
		return nil
	case playbookexecution.FieldIntentID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetIntentID(v)
		return nil
	case playbookexecution.FieldFailureMetadata:
		v, ok := value.(map[string]interface{})
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetFailureMetadata(v)
		return nil
	case playbookexecution.FieldSupportsResume:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSupportsResume(v)
		return nil
	case playbookexecution.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case playbookexecution.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	case playbookexecution.FieldCompletedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCompletedAt(v)
		return nil
	}
	return fmt.Errorf("unknown PlaybookExecution field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *PlaybookExecutionMutation) AddedFields() []string {
	var fields []string
	if m.addcurrent_step_index != nil {
		fields = append(fields, playbookexecution.FieldCurrentStepIndex)
	}
	if m.addtotal_steps != nil {
		fields = append(fields, playbookexecution.FieldTotalSteps)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *PlaybookExecutionMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case playbookexecution.FieldCurrentStepIndex:
		return m.AddedCurrentStepIndex()
	case playbookexecution.FieldTotalSteps:
		return m.AddedTotalSteps()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *PlaybookExecutionMutation) AddField(name string, value ent.Value) error {
	switch name {
	case playbookexecution.FieldCurrentStepIndex:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddCurrentStepIndex(v)
		return nil
	case playbookexecution.FieldTotalSteps:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddTotalSteps(v)
		return nil
	}
	return fmt.Errorf("unknown PlaybookExecution numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *PlaybookExecutionMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(playbookexecution.FieldCurrentStepIndex) {
		fields = append(fields, playbookexecution.FieldCurrentStepIndex)
	}
	if m.FieldCleared(playbookexecution.FieldTotalSteps) {
		fields = append(fields, playbookexecution.FieldTotalSteps)
	}
	if m.FieldCleared(playbookexecution.FieldSnapshot) {
		fields = append(fields, playbookexecution.FieldSnapshot)
	}
	if m.FieldCleared(playbookexecution.FieldPhaseSummaries) {
		fields = append(fields, playbookexecution.FieldPhaseSummaries)
	}
	if m.FieldCleared(playbookexecution.FieldIntentID) {
		fields = append(fields, playbookexecution.FieldIntentID)
	}
	if m.FieldCleared(playbookexecution.FieldFailureMetadata) {
		fields = append(fields, playbookexecution.FieldFailureMetadata)
	}
	if m.FieldCleared(playbookexecution.FieldCompletedAt) {
		fields = append(fields, playbookexecution.FieldCompletedAt)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *PlaybookExecutionMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *PlaybookExecutionMutation) ClearField(name string) error {
	switch name {
	case playbookexecution.FieldCurrentStepIndex:
		m.ClearCurrentStepIndex()
		return nil
	case playbookexecution.FieldTotalSteps:
		m.ClearTotalSteps()
		return nil
	case playbookexecution.FieldSnapshot:
		m.ClearSnapshot()
		return nil
	case playbookexecution.FieldPhaseSummaries:
		m.ClearPhaseSummaries()
		return nil
	case playbookexecution.FieldIntentID:
		m.ClearIntentID()
		return nil
	case playbookexecution.FieldFailureMetadata:
		m.ClearFailureMetadata()
		return nil
	case playbookexecution.FieldCompletedAt:
		m.ClearCompletedAt()
		return nil
	}
	return fmt.Errorf("unknown PlaybookExecution nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *PlaybookExecutionMutation) ResetField(name string) error {
	switch name {
	case playbookexecution.FieldWorkspaceID:
		m.ResetWorkspaceID()
		return nil
	case playbookexecution.FieldPlaybookCode:
		m.ResetPlaybookCode()
		return nil
	case playbookexecution.FieldStatus:
		m.ResetStatus()
		return nil
	case playbookexecution.FieldCurrentStepIndex:
		m.ResetCurrentStepIndex()
		return nil
	case playbookexecution.FieldTotalSteps:
		m.ResetTotalSteps()
		return nil
	case playbookexecution.FieldSnapshot:
		m.ResetSnapshot()
		return nil
	case playbookexecution.FieldPhaseSummaries:
		m.ResetPhaseSummaries()
		return nil
	case playbookexecution.FieldIntentID:
		m.ResetIntentID()
		return nil
	case playbookexecution.FieldFailureMetadata:
		m.ResetFailureMetadata()
		return nil
	case playbookexecution.FieldSupportsResume:
		m.ResetSupportsResume()
		return nil
	case playbookexecution.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case playbookexecution.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	case playbookexecution.FieldCompletedAt:
		m.ResetCompletedAt()
		return nil
	}
	return fmt.Errorf("unknown PlaybookExecution field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *PlaybookExecutionMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *PlaybookExecutionMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *PlaybookExecutionMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *PlaybookExecutionMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *PlaybookExecutionMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *PlaybookExecutionMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *PlaybookExecutionMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown PlaybookExecution unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *PlaybookExecutionMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown PlaybookExecution edge %s", name)
}

// RunnerHeartbeatMutation represents an operation that mutates the RunnerHeartbeat nodes in the graph.
type RunnerHeartbeatMutation struct {
	config
	op            Op
	typ           string
	id            *string
	heartbeat_at  *time.Time
	clearedFields map[string]struct{}
	done          bool
	oldValue      func(context.Context) (*RunnerHeartbeat, error)
	predicates    []predicate.RunnerHeartbeat
}

var _ ent.Mutation = (*RunnerHeartbeatMutation)(nil)

// runnerheartbeatOption allows management of the mutation configuration using functional options.
type runnerheartbeatOption func(*RunnerHeartbeatMutation)

// newRunnerHeartbeatMutation creates new mutation for the RunnerHeartbeat entity.
func newRunnerHeartbeatMutation(c config, op Op, opts ...runnerheartbeatOption) *RunnerHeartbeatMutation {
	m := &RunnerHeartbeatMutation{
		config:        c,
		op:            op,
		typ:           TypeRunnerHeartbeat,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withRunnerHeartbeatID sets the ID field of the mutation.
func withRunnerHeartbeatID(id string) runnerheartbeatOption {
	return func(m *RunnerHeartbeatMutation) {
		var (
			err   error
			once  sync.Once
			value *RunnerHeartbeat
		)
		m.oldValue = func(ctx context.Context) (*RunnerHeartbeat, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().RunnerHeartbeat.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withRunnerHeartbeat sets the old RunnerHeartbeat of the mutation.
func withRunnerHeartbeat(node *RunnerHeartbeat) runnerheartbeatOption {
	return func(m *RunnerHeartbeatMutation) {
		m.oldValue = func(context.Context) (*RunnerHeartbeat, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m RunnerHeartbeatMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m RunnerHeartbeatMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of RunnerHeartbeat entities.
func (m *RunnerHeartbeatMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *RunnerHeartbeatMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *RunnerHeartbeatMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().RunnerHeartbeat.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetHeartbeatAt sets the "heartbeat_at" field.
func (m *RunnerHeartbeatMutation) SetHeartbeatAt(t time.Time) {
	m.heartbeat_at = &t
}

// HeartbeatAt returns the value of the "heartbeat_at" field in the mutation.
func (m *RunnerHeartbeatMutation) HeartbeatAt() (r time.Time, exists bool) {
	v := m.heartbeat_at
	if v == nil {
		return
	}
	return *v, true
}

// OldHeartbeatAt returns the old "heartbeat_at" field's value of the RunnerHeartbeat entity.
// If the RunnerHeartbeat object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RunnerHeartbeatMutation) OldHeartbeatAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldHeartbeatAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldHeartbeatAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldHeartbeatAt: %w", err)
	}
	return oldValue.HeartbeatAt, nil
}

// ResetHeartbeatAt resets all changes to the "heartbeat_at" field.
func (m *RunnerHeartbeatMutation) ResetHeartbeatAt() {
	m.heartbeat_at = nil
}

// Where appends a list predicates to the RunnerHeartbeatMutation builder.
func (m *RunnerHeartbeatMutation) Where(ps ...predicate.RunnerHeartbeat) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the RunnerHeartbeatMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *RunnerHeartbeatMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.RunnerHeartbeat, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *RunnerHeartbeatMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *RunnerHeartbeatMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (RunnerHeartbeat).
func (m *RunnerHeartbeatMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *RunnerHeartbeatMutation) Fields() []string {
	fields := make([]string, 0, 1)
	if m.heartbeat_at != nil {
		fields = append(fields, runnerheartbeat.FieldHeartbeatAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *RunnerHeartbeatMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case runnerheartbeat.FieldHeartbeatAt:
		return m.HeartbeatAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *RunnerHeartbeatMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case runnerheartbeat.FieldHeartbeatAt:
		return m.OldHeartbeatAt(ctx)
	}
	return nil, fmt.Errorf("unknown RunnerHeartbeat field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *RunnerHeartbeatMutation) SetField(name string, value ent.Value) error {
	switch name {
	case runnerheartbeat.FieldHeartbeatAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetHeartbeatAt(v)
		return nil
	}
	return fmt.Errorf("unknown RunnerHeartbeat field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *RunnerHeartbeatMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *RunnerHeartbeatMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *RunnerHeartbeatMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown RunnerHeartbeat numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *RunnerHeartbeatMutation) ClearedFields() []string {
	return nil
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *RunnerHeartbeatMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *RunnerHeartbeatMutation) ClearField(name string) error {
	return fmt.Errorf("unknown RunnerHeartbeat nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *RunnerHeartbeatMutation) ResetField(name string) error {
	switch name {
	case runnerheartbeat.FieldHeartbeatAt:
		m.ResetHeartbeatAt()
		return nil
	}
	return fmt.Errorf("unknown RunnerHeartbeat field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *RunnerHeartbeatMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *RunnerHeartbeatMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *RunnerHeartbeatMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *RunnerHeartbeatMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *RunnerHeartbeatMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *RunnerHeartbeatMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *RunnerHeartbeatMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown RunnerHeartbeat unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *RunnerHeartbeatMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown RunnerHeartbeat edge %s", name)
}

// StageResultMutation represents an operation that mutates the StageResult nodes in the graph.
type StageResultMutation struct {
	config
	op              Op
	typ             string
	id              *string
	execution_id    *string
	step_id         *string
	stage_name      *string
	result_type     *stageresult.ResultType
	content         *map[string]interface{}
	preview         *string
	requires_review *bool
	review_status   *stageresult.ReviewStatus
	artifact_id     *string
	created_at      *time.Time
	clearedFields   map[string]struct{}
	done            bool
	oldValue        func(context.Context) (*StageResult, error)
	predicates      []predicate.StageResult
}

var _ ent.Mutation = (*StageResultMutation)(nil)

// stageresultOption allows management of the mutation configuration using functional options.
type stageresultOption func(*StageResultMutation)

// newStageResultMutation creates new mutation for the StageResult entity.
func newStageResultMutation(c config, op Op, opts ...stageresultOption) *StageResultMutation {
	m := &StageResultMutation{
		config:        c,
		op:            op,
		typ:           TypeStageResult,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withStageResultID sets the ID field of the mutation.
func withStageResultID(id string) stageresultOption {
	return func(m *StageResultMutation) {
		var (
			err   error
			once  sync.Once
			value *StageResult
		)
		m.oldValue = func(ctx context.Context) (*StageResult, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().StageResult.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withStageResult sets the old StageResult of the mutation.
func withStageResult(node *StageResult) stageresultOption {
	return func(m *StageResultMutation) {
		m.oldValue = func(context.Context) (*StageResult, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m StageResultMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m StageResultMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of StageResult entities.
func (m *StageResultMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *StageResultMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *StageResultMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().StageResult.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetExecutionID sets the "execution_id" field.
func (m *StageResultMutation) SetExecutionID(s string) {
	m.execution_id = &s
}

// ExecutionID returns the value of the "execution_id" field in the mutation.
func (m *StageResultMutation) ExecutionID() (r string, exists bool) {
	v := m.execution_id
	if v == nil {
		return
	}
	return *v, true
}

// OldExecutionID returns the old "execution_id" field's value of the StageResult entity.
// If the StageResult object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *StageResultMutation) OldExecutionID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldExecutionID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldExecutionID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldExecutionID: %w", err)
	}
	return oldValue.ExecutionID, nil
}

// ResetExecutionID resets all changes to the "execution_id" field.
func (m *StageResultMutation) ResetExecutionID() {
	m.execution_id = nil
}

// SetStepID sets the "step_id" field.
func (m *StageResultMutation) SetStepID(s string) {
	m.step_id = &s
}

// StepID returns the value of the "step_id" field in the mutation.
func (m *StageResultMutation) StepID() (r string, exists bool) {
	v := m.step_id
	if v == nil {
		return
	}
	return *v, true
}

// OldStepID returns the old "step_id" field's value of the StageResult entity.
// If the StageResult object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *StageResultMutation) OldStepID(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStepID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStepID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStepID: %w", err)
	}
	return oldValue.StepID, nil
}

// ClearStepID clears the value of the "step_id" field.
func (m *StageResultMutation) ClearStepID() {
	m.step_id = nil
	m.clearedFields[stageresult.FieldStepID] = struct{}{}
}

// StepIDCleared returns if the "step_id" field was cleared in this mutation.
func (m *StageResultMutation) StepIDCleared() bool {
	_, ok := m.clearedFields[stageresult.FieldStepID]
	return ok
}

// ResetStepID resets all changes to the "step_id" field.
func (m *StageResultMutation) ResetStepID() {
	m.step_id = nil
	delete(m.clearedFields, stageresult.FieldStepID)
}

// SetStageName sets the "stage_name" field.
func (m *StageResultMutation) SetStageName(s string) {
	m.stage_name = &s
}

// StageName returns the value of the "stage_name" field in the mutation.
func (m *StageResultMutation) StageName() (r string, exists bool) {
	v := m.stage_name
	if v == nil {
		return
	}
	return *v, true
}

// OldStageName returns the old "stage_name" field's value of the StageResult entity.
// If the StageResult object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *StageResultMutation) OldStageName(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStageName is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStageName requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStageName: %w", err)
	}
	return oldValue.StageName, nil
}

// ResetStageName resets all changes to the "stage_name" field.
func (m *StageResultMutation) ResetStageName() {
	m.stage_name = nil
}

// SetResultType sets the "result_type" field.
func (m *StageResultMutation) SetResultType(st stageresult.ResultType) {
	m.result_type = &st
}

// ResultType returns the value of the "result_type" field in the mutation.
func (m *StageResultMutation) ResultType() (r stageresult.ResultType, exists bool) {
	v := m.result_type
	if v == nil {
		return
	}
	return *v, true
}

// OldResultType returns the old "result_type" field's value of the StageResult entity.
// If the StageResult object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *StageResultMutation) OldResultType(ctx context.Context) (v stageresult.ResultType, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldResultType is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldResultType requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldResultType: %w", err)
	}
	return oldValue.ResultType, nil
}

// ResetResultType resets all changes to the "result_type" field.
func (m *StageResultMutation) ResetResultType() {
	m.result_type = nil
}

// SetContent sets the "content" field.
func (m *StageResultMutation) SetContent(value map[string]interface{}) {
	m.content = &value
}

// Content returns the value of the "content" field in the mutation.
func (m *StageResultMutation) Content() (r map[string]interface{}, exists bool) {
	v := m.content
	if v == nil {
		return
	}
	return *v, true
}

// OldContent returns the old "content" field's value of the StageResult entity.
// If the StageResult object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *StageResultMutation) OldContent(ctx context.Context) (v map[string]interface{}, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldContent is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldContent requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldContent: %w", err)
	}
	return oldValue.Content, nil
}

// ClearContent clears the value of the "content" field.
func (m *StageResultMutation) ClearContent() {
	m.content = nil
	m.clearedFields[stageresult.FieldContent] = struct{}{}
}

// ContentCleared returns if the "content" field was cleared in this mutation.
func (m *StageResultMutation) ContentCleared() bool {
	_, ok := m.clearedFields[stageresult.FieldContent]
	return ok
}

// ResetContent resets all changes to the "content" field.
func (m *StageResultMutation) ResetContent() {
	m.content = nil
	delete(m.clearedFields, stageresult.FieldContent)
}

// SetPreview sets the "preview" field.
func (m *StageResultMutation) SetPreview(s string) {
	m.preview = &s
}

// Preview returns the value of the "preview" field in the mutation.
func (m *StageResultMutation) Preview() (r string, exists bool) {
	v := m.preview
	if v == nil {
		return
	}
	return *v, true
}

// OldPreview returns the old "preview" field's value of the StageResult entity.
// If the StageResult object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *StageResultMutation) OldPreview(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPreview is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPreview requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPreview: %w", err)
	}
	return oldValue.Preview, nil
}

// ClearPreview clears the value of the "preview" field.
func (m *StageResultMutation) ClearPreview() {
	m.preview = nil
	m.clearedFields[stageresult.FieldPreview] = struct{}{}
}

// PreviewCleared returns if the "preview" field was cleared in this mutation.
func (m *StageResultMutation) PreviewCleared() bool {
	_, ok := m.clearedFields[stageresult.FieldPreview]
	return ok
}

// ResetPreview resets all changes to the "preview" field.
func (m *StageResultMutation) ResetPreview() {
	m.preview = nil
	delete(m.clearedFields, stageresult.FieldPreview)
}

// SetRequiresReview sets the "requires_review" field.
func (m *StageResultMutation) SetRequiresReview(b bool) {
	m.requires_review = &b
}

// RequiresReview returns the value of the "requires_review" field in the mutation.
func (m *StageResultMutation) RequiresReview() (r bool, exists bool) {
	v := m.requires_review
	if v == nil {
		return
	}
	return *v, true
}

// OldRequiresReview returns the old "requires_review" field's value of the StageResult entity.
// If the StageResult object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *StageResultMutation) OldRequiresReview(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRequiresReview is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRequiresReview requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRequiresReview: %w", err)
	}
	return oldValue.RequiresReview, nil
}

// ResetRequiresReview resets all changes to the "requires_review" field.
func (m *StageResultMutation) ResetRequiresReview() {
	m.requires_review = nil
}

// SetReviewStatus sets the "review_status" field.
func (m *StageResultMutation) SetReviewStatus(ss stageresult.ReviewStatus) {
	m.review_status = &ss
}

// ReviewStatus returns the value of the "review_status" field in the mutation.
func (m *StageResultMutation) ReviewStatus() (r stageresult.ReviewStatus, exists bool) {
	v := m.review_status
	if v == nil {
		return
	}
	return *v, true
}

// OldReviewStatus returns the old "review_status" field's value of the StageResult entity.
// If the StageResult object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *StageResultMutation) OldReviewStatus(ctx context.Context) (v stageresult.ReviewStatus, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldReviewStatus is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldReviewStatus requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldReviewStatus: %w", err)
	}
	return oldValue.ReviewStatus, nil
}

// ResetReviewStatus resets all changes to the "review_status" field.
func (m *StageResultMutation) ResetReviewStatus() {
	m.review_status = nil
}

// SetArtifactID sets the "artifact_id" field.
func (m *StageResultMutation) SetArtifactID(s string) {
	m.artifact_id = &s
}

// ArtifactID returns the value of the "artifact_id" field in the mutation.
func (m *StageResultMutation) ArtifactID() (r string, exists bool) {
	v := m.artifact_id
	if v == nil {
		return
	}
	return *v, true
}

// OldArtifactID returns the old "artifact_id" field's value of the StageResult entity.
// If the StageResult object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *StageResultMutation) OldArtifactID(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldArtifactID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldArtifactID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldArtifactID: %w", err)
	}
	return oldValue.ArtifactID, nil
}

// ClearArtifactID clears the value of the "artifact_id" field.
func (m *StageResultMutation) ClearArtifactID() {
	m.artifact_id = nil
	m.clearedFields[stageresult.FieldArtifactID] = struct{}{}
}

// ArtifactIDCleared returns if the "artifact_id" field was cleared in this mutation.
func (m *StageResultMutation) ArtifactIDCleared() bool {
	_, ok := m.clearedFields[stageresult.FieldArtifactID]
	return ok
}

// ResetArtifactID resets all changes to the "artifact_id" field.
func (m *StageResultMutation) ResetArtifactID() {
	m.artifact_id = nil
	delete(m.clearedFields, stageresult.FieldArtifactID)
}

// SetCreatedAt sets the "created_at" field.
func (m *StageResultMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *StageResultMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the StageResult entity.
// If the StageResult object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *StageResultMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *StageResultMutation) ResetCreatedAt() {
	m.created_at = nil
}

// Where appends a list predicates to the StageResultMutation builder.
func (m *StageResultMutation) Where(ps ...predicate.StageResult) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the StageResultMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *StageResultMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.StageResult, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *StageResultMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *StageResultMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (StageResult).
func (m *StageResultMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *StageResultMutation) Fields() []string {
	fields := make([]string, 0, 10)
	if m.execution_id != nil {
		fields = append(fields, stageresult.FieldExecutionID)
	}
	if m.step_id != nil {
		fields = append(fields, stageresult.FieldStepID)
	}
	if m.stage_name != nil {
		fields = append(fields, stageresult.FieldStageName)
	}
	if m.result_type != nil {
		fields = append(fields, stageresult.FieldResultType)
	}
	if m.content != nil {
		fields = append(fields, stageresult.FieldContent)
	}
	if m.preview != nil {
		fields = append(fields, stageresult.FieldPreview)
	}
	if m.requires_review != nil {
		fields = append(fields, stageresult.FieldRequiresReview)
	}
	if m.review_status != nil {
		fields = append(fields, stageresult.FieldReviewStatus)
	}
	if m.artifact_id != nil {
		fields = append(fields, stageresult.FieldArtifactID)
	}
	if m.created_at != nil {
		fields = append(fields, stageresult.FieldCreatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *StageResultMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case stageresult.FieldExecutionID:
		return m.ExecutionID()
	case stageresult.FieldStepID:
		return m.StepID()
	case stageresult.FieldStageName:
		return m.StageName()
	case stageresult.FieldResultType:
		return m.ResultType()
	case stageresult.FieldContent:
		return m.Content()
	case stageresult.FieldPreview:
		return m.Preview()
	case stageresult.FieldRequiresReview:
		return m.RequiresReview()
	case stageresult.FieldReviewStatus:
		return m.ReviewStatus()
	case stageresult.FieldArtifactID:
		return m.ArtifactID()
	case stageresult.FieldCreatedAt:
		return m.CreatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *StageResultMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case stageresult.FieldExecutionID:
		return m.OldExecutionID(ctx)
	case stageresult.FieldStepID:
		return m.OldStepID(ctx)
	case stageresult.FieldStageName:
		return m.OldStageName(ctx)
	case stageresult.FieldResultType:
		return m.OldResultType(ctx)
	case stageresult.FieldContent:
		return m.OldContent(ctx)
	case stageresult.FieldPreview:
		return m.OldPreview(ctx)
	case stageresult.FieldRequiresReview:
		return m.OldRequiresReview(ctx)
	case stageresult.FieldReviewStatus:
		return m.OldReviewStatus(ctx)
	case stageresult.FieldArtifactID:
		return m.OldArtifactID(ctx)
	case stageresult.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown StageResult field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *StageResultMutation) SetField(name string, value ent.Value) error {
	switch name {
	case stageresult.FieldExecutionID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetExecutionID(v)
		return nil
	case stageresult.FieldStepID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStepID(v)
		return nil
	case stageresult.FieldStageName:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStageName(v)
		return nil
	case stageresult.FieldResultType:
		v, ok := value.(stageresult.ResultType)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetResultType(v)
		return nil
	case stageresult.FieldContent:
		v, ok := value.(map[string]interface{})
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetContent(v)
		return nil
	case stageresult.FieldPreview:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPreview(v)
		return nil
	case stageresult.FieldRequiresReview:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRequiresReview(v)
		return nil
	case stageresult.FieldReviewStatus:
		v, ok := value.(stageresult.ReviewStatus)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetReviewStatus(v)
		return nil
	case stageresult.FieldArtifactID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetArtifactID(v)
		return nil
	case stageresult.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown StageResult field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *StageResultMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *StageResultMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *StageResultMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown StageResult numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *StageResultMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(stageresult.FieldStepID) {
		fields = append(fields, stageresult.FieldStepID)
	}
	if m.FieldCleared(stageresult.FieldContent) {
		fields = append(fields, stageresult.FieldContent)
	}
	if m.FieldCleared(stageresult.FieldPreview) {
		fields = append(fields, stageresult.FieldPreview)
	}
	if m.FieldCleared(stageresult.FieldArtifactID) {
		fields = append(fields, stageresult.FieldArtifactID)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *StageResultMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *StageResultMutation) ClearField(name string) error {
	switch name {
	case stageresult.FieldStepID:
		m.ClearStepID()
		return nil
	case stageresult.FieldContent:
		m.ClearContent()
		return nil
	case stageresult.FieldPreview:
		m.ClearPreview()
		return nil
	case stageresult.FieldArtifactID:
		m.ClearArtifactID()
		return nil
	}
	return fmt.Errorf("unknown StageResult nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *StageResultMutation) ResetField(name string) error {
	switch name {
	case stageresult.FieldExecutionID:
		m.ResetExecutionID()
		return nil
	case stageresult.FieldStepID:
		m.ResetStepID()
		return nil
	case stageresult.FieldStageName:
		m.ResetStageName()
		return nil
	case stageresult.FieldResultType:
		m.ResetResultType()
		return nil
	case stageresult.FieldContent:
		m.ResetContent()
		return nil
	case stageresult.FieldPreview:
		m.ResetPreview()
		return nil
	case stageresult.FieldRequiresReview:
		m.ResetRequiresReview()
		return nil
	case stageresult.FieldReviewStatus:
		m.ResetReviewStatus()
		return nil
	case stageresult.FieldArtifactID:
		m.ResetArtifactID()
		return nil
	case stageresult.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	}
	return fmt.Errorf("unknown StageResult field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *StageResultMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *StageResultMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *StageResultMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *StageResultMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *StageResultMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *StageResultMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *StageResultMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown StageResult unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *StageResultMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown StageResult edge %s", name)
}

// SuggestionPreferenceMutation represents an operation that mutates the SuggestionPreference nodes in the graph.
type SuggestionPreferenceMutation struct {
	config
	op                   Op
	typ                  string
	id                   *string
	workspace_id         *string
	user_id              *string
	pack_id              *string
	task_type            *string
	auto_suggest_enabled *bool
	updated_at           *time.Time
	clearedFields        map[string]struct{}
	done                 bool
	oldValue             func(context.Context) (*SuggestionPreference, error)
	predicates           []predicate.SuggestionPreference
}

var _ ent.Mutation = (*SuggestionPreferenceMutation)(nil)

// suggestionpreferenceOption allows management of the mutation configuration using functional options.
type suggestionpreferenceOption func(*SuggestionPreferenceMutation)

// newSuggestionPreferenceMutation creates new mutation for the SuggestionPreference entity.
func newSuggestionPreferenceMutation(c config, op Op, opts ...suggestionpreferenceOption) *SuggestionPreferenceMutation {
	m := &SuggestionPreferenceMutation{
		config:        c,
		op:            op,
		typ:           TypeSuggestionPreference,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withSuggestionPreferenceID sets the ID field of the mutation.
func withSuggestionPreferenceID(id string) suggestionpreferenceOption {
	return func(m *SuggestionPreferenceMutation) {
		var (
			err   error
			once  sync.Once
			value *SuggestionPreference
		)
		m.oldValue = func(ctx context.Context) (*SuggestionPreference, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().SuggestionPreference.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withSuggestionPreference sets the old SuggestionPreference of the mutation.
func withSuggestionPreference(node *SuggestionPreference) suggestionpreferenceOption {
	return func(m *SuggestionPreferenceMutation) {
		m.oldValue = func(context.Context) (*SuggestionPreference, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m SuggestionPreferenceMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m SuggestionPreferenceMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of SuggestionPreference entities.
func (m *SuggestionPreferenceMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *SuggestionPreferenceMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *SuggestionPreferenceMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().SuggestionPreference.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetWorkspaceID sets the "workspace_id" field.
func (m *SuggestionPreferenceMutation) SetWorkspaceID(s string) {
	m.workspace_id = &s
}

// WorkspaceID returns the value of the "workspace_id" field in the mutation.
func (m *SuggestionPreferenceMutation) WorkspaceID() (r string, exists bool) {
	v := m.workspace_id
	if v == nil {
		return
	}
	return *v, true
}

// OldWorkspaceID returns the old "workspace_id" field's value of the SuggestionPreference entity.
// If the SuggestionPreference object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SuggestionPreferenceMutation) OldWorkspaceID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldWorkspaceID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldWorkspaceID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldWorkspaceID: %w", err)
	}
	return oldValue.WorkspaceID, nil
}

// ResetWorkspaceID resets all changes to the "workspace_id" field.
func (m *SuggestionPreferenceMutation) ResetWorkspaceID() {
	m.workspace_id = nil
}

// SetUserID sets the "user_id" field.
func (m *SuggestionPreferenceMutation) SetUserID(s string) {
	m.user_id = &s
}

// UserID returns the value of the "user_id" field in the mutation.
func (m *SuggestionPreferenceMutation) UserID() (r string, exists bool) {
	v := m.user_id
	if v == nil {
		return
	}
	return *v, true
}

// OldUserID returns the old "user_id" field's value of the SuggestionPreference entity.
// If the SuggestionPreference object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SuggestionPreferenceMutation) OldUserID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUserID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUserID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUserID: %w", err)
	}
	return oldValue.UserID, nil
}

// ResetUserID resets all changes to the "user_id" field.
func (m *SuggestionPreferenceMutation) ResetUserID() {
	m.user_id = nil
}

// SetPackID sets the "pack_id" field.
func (m *SuggestionPreferenceMutation) SetPackID(s string) {
	m.pack_id = &s
}

// PackID returns the value of the "pack_id" field in the mutation.
func (m *SuggestionPreferenceMutation) PackID() (r string, exists bool) {
	v := m.pack_id
	if v == nil {
		return
	}
	return *v, true
}

// OldPackID returns the old "pack_id" field's value of the SuggestionPreference entity.
// If the SuggestionPreference object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SuggestionPreferenceMutation) OldPackID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPackID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPackID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPackID: %w", err)
	}
	return oldValue.PackID, nil
}

// ResetPackID resets all changes to the "pack_id" field.
func (m *SuggestionPreferenceMutation) ResetPackID() {
	m.pack_id = nil
}

// SetTaskType sets the "task_type" field.
func (m *SuggestionPreferenceMutation) SetTaskType(s string) {
	m.task_type = &s
}

// TaskType returns the value of the "task_type" field in the mutation.
func (m *SuggestionPreferenceMutation) TaskType() (r string, exists bool) {
	v := m.task_type
	if v == nil {
		return
	}
	return *v, true
}

// OldTaskType returns the old "task_type" field's value of the SuggestionPreference entity.
// If the SuggestionPreference object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SuggestionPreferenceMutation) OldTaskType(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTaskType is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTaskType requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTaskType: %w", err)
	}
	return oldValue.TaskType, nil
}

// ResetTaskType resets all changes to the "task_type" field.
func (m *SuggestionPreferenceMutation) ResetTaskType() {
	m.task_type = nil
}

// SetAutoSuggestEnabled sets the "auto_suggest_enabled" field.
func (m *SuggestionPreferenceMutation) SetAutoSuggestEnabled(b bool) {
	m.auto_suggest_enabled = &b
}

// AutoSuggestEnabled returns the value of the "auto_suggest_enabled" field in the mutation.
func (m *SuggestionPreferenceMutation) AutoSuggestEnabled() (r bool, exists bool) {
	v := m.auto_suggest_enabled
	if v == nil {
		return
	}
	return *v, true
}

// OldAutoSuggestEnabled returns the old "auto_suggest_enabled" field's value of the SuggestionPreference entity.
// If the SuggestionPreference object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SuggestionPreferenceMutation) OldAutoSuggestEnabled(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAutoSuggestEnabled is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAutoSuggestEnabled requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAutoSuggestEnabled: %w", err)
	}
	return oldValue.AutoSuggestEnabled, nil
}

// ResetAutoSuggestEnabled resets all changes to the "auto_suggest_enabled" field.
func (m *SuggestionPreferenceMutation) ResetAutoSuggestEnabled() {
	m.auto_suggest_enabled = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *SuggestionPreferenceMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *SuggestionPreferenceMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the SuggestionPreference entity.
// If the SuggestionPreference object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SuggestionPreferenceMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedAt: %w", err)
	}
	return oldValue.UpdatedAt, nil
}

// ResetUpdatedAt resets all changes to the "updated_at" field.
func (m *SuggestionPreferenceMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// Where appends a list predicates to the SuggestionPreferenceMutation builder.
func (m *SuggestionPreferenceMutation) Where(ps ...predicate.SuggestionPreference) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the SuggestionPreferenceMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *SuggestionPreferenceMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.SuggestionPreference, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *SuggestionPreferenceMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *SuggestionPreferenceMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (SuggestionPreference).
func (m *SuggestionPreferenceMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *SuggestionPreferenceMutation) Fields() []string {
	fields := make([]string, 0, 6)
	if m.workspace_id != nil {
		fields = append(fields, suggestionpreference.FieldWorkspaceID)
	}
	if m.user_id != nil {
		fields = append(fields, suggestionpreference.FieldUserID)
	}
	if m.pack_id != nil {
		fields = append(fields, suggestionpreference.FieldPackID)
	}
	if m.task_type != nil {
		fields = append(fields, suggestionpreference.FieldTaskType)
	}
	if m.auto_suggest_enabled != nil {
		fields = append(fields, suggestionpreference.FieldAutoSuggestEnabled)
	}
	if m.updated_at != nil {
		fields = append(fields, suggestionpreference.FieldUpdatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *SuggestionPreferenceMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case suggestionpreference.FieldWorkspaceID:
		return m.WorkspaceID()
	case suggestionpreference.FieldUserID:
		return m.UserID()
	case suggestionpreference.FieldPackID:
		return m.PackID()
	case suggestionpreference.FieldTaskType:
		return m.TaskType()
	case suggestionpreference.FieldAutoSuggestEnabled:
		return m.AutoSuggestEnabled()
	case suggestionpreference.FieldUpdatedAt:
		return m.UpdatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *SuggestionPreferenceMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case suggestionpreference.FieldWorkspaceID:
		return m.OldWorkspaceID(ctx)
	case suggestionpreference.FieldUserID:
		return m.OldUserID(ctx)
	case suggestionpreference.FieldPackID:
		return m.OldPackID(ctx)
	case suggestionpreference.FieldTaskType:
		return m.OldTaskType(ctx)
	case suggestionpreference.FieldAutoSuggestEnabled:
		return m.OldAutoSuggestEnabled(ctx)
	case suggestionpreference.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown SuggestionPreference field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *SuggestionPreferenceMutation) SetField(name string, value ent.Value) error {
	switch name {
	case suggestionpreference.FieldWorkspaceID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetWorkspaceID(v)
		return nil
	case suggestionpreference.FieldUserID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUserID(v)
		return nil
	case suggestionpreference.FieldPackID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPackID(v)
		return nil
	case suggestionpreference.FieldTaskType:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTaskType(v)
		return nil
	case suggestionpreference.FieldAutoSuggestEnabled:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAutoSuggestEnabled(v)
		return nil
	case suggestionpreference.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown SuggestionPreference field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *SuggestionPreferenceMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *SuggestionPreferenceMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *SuggestionPreferenceMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown SuggestionPreference numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *SuggestionPreferenceMutation) ClearedFields() []string {
	return nil
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *SuggestionPreferenceMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *SuggestionPreferenceMutation) ClearField(name string) error {
	return fmt.Errorf("unknown SuggestionPreference nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *SuggestionPreferenceMutation) ResetField(name string) error {
	switch name {
	case suggestionpreference.FieldWorkspaceID:
		m.ResetWorkspaceID()
		return nil
	case suggestionpreference.FieldUserID:
		m.ResetUserID()
		return nil
	case suggestionpreference.FieldPackID:
		m.ResetPackID()
		return nil
	case suggestionpreference.FieldTaskType:
		m.ResetTaskType()
		return nil
	case suggestionpreference.FieldAutoSuggestEnabled:
		m.ResetAutoSuggestEnabled()
		return nil
	case suggestionpreference.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	}
	return fmt.Errorf("unknown SuggestionPreference field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *SuggestionPreferenceMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *SuggestionPreferenceMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *SuggestionPreferenceMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *SuggestionPreferenceMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *SuggestionPreferenceMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *SuggestionPreferenceMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *SuggestionPreferenceMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown SuggestionPreference unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *SuggestionPreferenceMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown SuggestionPreference edge %s", name)
}

// TaskMutation represents an operation that mutates the Task nodes in the graph.
type TaskMutation struct {
	config
	op                   Op
	typ                  string
	id                   *string
	workspace_id         *string
	execution_id         *string
	project_id           *string
	pack_id              *string
	task_type            *task.TaskType
	status               *task.Status
	params               *map[string]interface{}
	result               *map[string]interface{}
	execution_context    *map[string]interface{}
	storyline_tags       *[]string
	appendstoryline_tags []string
	created_at           *time.Time
	started_at           *time.Time
	completed_at         *time.Time
	error                *string
	clearedFields        map[string]struct{}
	done                 bool
	oldValue             func(context.Context) (*Task, error)
	predicates           []predicate.Task
}

var _ ent.Mutation = (*TaskMutation)(nil)

// taskOption allows management of the mutation configuration using functional options.
type taskOption func(*TaskMutation)

// newTaskMutation creates new mutation for the Task entity.
func newTaskMutation(c config, op Op, opts ...taskOption) *TaskMutation {
	m := &TaskMutation{
		config:        c,
		op:            op,
		typ:           TypeTask,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withTaskID sets the ID field of the mutation.
func withTaskID(id string) taskOption {
	return func(m *TaskMutation) {
		var (
			err   error
			once  sync.Once
			value *Task
		)
		m.oldValue = func(ctx context.Context) (*Task, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Task.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withTask sets the old Task of the mutation.
func withTask(node *Task) taskOption {
	return func(m *TaskMutation) {
		m.oldValue = func(context.Context) (*Task, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m TaskMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m TaskMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of Task entities.
func (m *TaskMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *TaskMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *TaskMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Task.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetWorkspaceID sets the "workspace_id" field.
func (m *TaskMutation) SetWorkspaceID(s string) {
	m.workspace_id = &s
}

// WorkspaceID returns the value of the "workspace_id" field in the mutation.
func (m *TaskMutation) WorkspaceID() (r string, exists bool) {
	v := m.workspace_id
	if v == nil {
		return
	}
	return *v, true
}

// OldWorkspaceID returns the old "workspace_id" field's value of the Task entity.
// If the Task object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TaskMutation) OldWorkspaceID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldWorkspaceID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldWorkspaceID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldWorkspaceID: %w", err)
	}
	return oldValue.WorkspaceID, nil
}

// ResetWorkspaceID resets all changes to the "workspace_id" field.
func (m *TaskMutation) ResetWorkspaceID() {
	m.workspace_id = nil
}

// SetExecutionID sets the "execution_id" field.
func (m *TaskMutation) SetExecutionID(s string) {
	m.execution_id = &s
}

// ExecutionID returns the value of the "execution_id" field in the mutation.
func (m *TaskMutation) ExecutionID() (r string, exists bool) {
	v := m.execution_id
	if v == nil {
		return
	}
	return *v, true
}

// OldExecutionID returns the old "execution_id" field's value of the Task entity.
// If the Task object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TaskMutation) OldExecutionID(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldExecutionID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldExecutionID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldExecutionID: %w", err)
	}
	return oldValue.ExecutionID, nil
}

// ClearExecutionID clears the value of the "execution_id" field.
func (m *TaskMutation) ClearExecutionID() {
	m.execution_id = nil
	m.clearedFields[task.FieldExecutionID] = struct{}{}
}

// ExecutionIDCleared returns if the "execution_id" field was cleared in this mutation.
func (m *TaskMutation) ExecutionIDCleared() bool {
	_, ok := m.clearedFields[task.FieldExecutionID]
	return ok
}

// ResetExecutionID resets all changes to the "execution_id" field.
func (m *TaskMutation) ResetExecutionID() {
	m.execution_id = nil
	delete(m.clearedFields, task.FieldExecutionID)
}

// SetProjectID sets the "project_id" field.
func (m *TaskMutation) SetProjectID(s string) {
	m.project_id = &s
}

// ProjectID returns the value of the "project_id" field in the mutation.
func (m *TaskMutation) ProjectID() (r string, exists bool) {
	v := m.project_id
	if v == nil {
		return
	}
	return *v, true
}

// OldProjectID returns the old "project_id" field's value of the Task entity.
// If the Task object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TaskMutation) OldProjectID(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldProjectID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldProjectID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldProjectID: %w", err)
	}
	return oldValue.ProjectID, nil
}

// ClearProjectID clears the value of the "project_id" field.
func (m *TaskMutation) ClearProjectID() {
	m.project_id = nil
	m.clearedFields[task.FieldProjectID] = struct{}{}
}

// ProjectIDCleared returns if the "project_id" field was cleared in this mutation.
func (m *TaskMutation) ProjectIDCleared() bool {
	_, ok := m.clearedFields[task.FieldProjectID]
	return ok
}

// ResetProjectID resets all changes to the "project_id" field.
func (m *TaskMutation) ResetProjectID() {
	m.project_id = nil
	delete(m.clearedFields, task.FieldProjectID)
}

// SetPackID sets the "pack_id" field.
func (m *TaskMutation) SetPackID(s string) {
	m.pack_id = &s
}

// PackID returns the value of the "pack_id" field in the mutation.
func (m *TaskMutation) PackID() (r string, exists bool) {
	v := m.pack_id
	if v == nil {
		return
	}
	return *v, true
}

// OldPackID returns the old "pack_id" field's value of the Task entity.
// If the Task object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TaskMutation) OldPackID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPackID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPackID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPackID: %w", err)
	}
	return oldValue.PackID, nil
}

// ResetPackID resets all changes to the "pack_id" field.
func (m *TaskMutation) ResetPackID() {
	m.pack_id = nil
}

// SetTaskType sets the "task_type" field.
func (m *TaskMutation) SetTaskType(tt task.TaskType) {
	m.task_type = &tt
}

// TaskType returns the value of the "task_type" field in the mutation.
func (m *TaskMutation) TaskType() (r task.TaskType, exists bool) {
	v := m.task_type
	if v == nil {
		return
	}
	return *v, true
}

// OldTaskType returns the old "task_type" field's value of the Task entity.
// If the Task object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TaskMutation) OldTaskType(ctx context.Context) (v task.TaskType, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTaskType is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTaskType requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTaskType: %w", err)
	}
	return oldValue.TaskType, nil
}

// ResetTaskType resets all changes to the "task_type" field.
func (m *TaskMutation) ResetTaskType() {
	m.task_type = nil
}

// SetStatus sets the "status" field.
func (m *TaskMutation) SetStatus(t task.Status) {
	m.status = &t
}

// Status returns the value of the "status" field in the mutation.
func (m *TaskMutation) Status() (r task.Status, exists bool) {
	v := m.status
	if v == nil {
		return
	}
	return *v, true
}

// OldStatus returns the old "status" field's value of the Task entity.
// If the Task object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TaskMutation) OldStatus(ctx context.Context) (v task.Status, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStatus is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStatus requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStatus: %w", err)
	}
	return oldValue.Status, nil
}

// ResetStatus resets all changes to the "status" field.
func (m *TaskMutation) ResetStatus() {
	m.status = nil
}

// SetParams sets the "params" field.
func (m *TaskMutation) SetParams(value map[string]interface{}) {
	m.params = &value
}

// Params returns the value of the "params" field in the mutation.
func (m *TaskMutation) Params() (r map[string]interface{}, exists bool) {
	v := m.params
	if v == nil {
		return
	}
	return *v, true
}

// OldParams returns the old "params" field's value of the Task entity.
// If the Task object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TaskMutation) OldParams(ctx context.Context) (v map[string]interface{}, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldParams is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldParams requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldParams: %w", err)
	}
	return oldValue.Params, nil
}

// ClearParams clears the value of the "params" field.
func (m *TaskMutation) ClearParams() {
	m.params = nil
	m.clearedFields[task.FieldParams] = struct{}{}
}

// ParamsCleared returns if the "params" field was cleared in this mutation.
func (m *TaskMutation) ParamsCleared() bool {
	_, ok := m.clearedFields[task.FieldParams]
	return ok
}

// ResetParams resets all changes to the "params" field.
func (m *TaskMutation) ResetParams() {
	m.params = nil
	delete(m.clearedFields, task.FieldParams)
}

// SetResult sets the "result" field.
func (m *TaskMutation) SetResult(value map[string]interface{}) {
	m.result = &value
}

// Result returns the value of the "result" field in the mutation.
func (m *TaskMutation) Result() (r map[string]interface{}, exists bool) {
	v := m.result
	if v == nil {
		return
	}
	return *v, true
}

// OldResult returns the old "result" field's value of the Task entity.
// If the Task object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TaskMutation) OldResult(ctx context.Context) (v map[string]interface{}, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldResult is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldResult requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldResult: %w", err)
	}
	return oldValue.Result, nil
}

// ClearResult clears the value of the "result" field.
func (m *TaskMutation) ClearResult() {
	m.result = nil
	m.clearedFields[task.FieldResult] = struct{}{}
}

// ResultCleared returns if the "result" field was cleared in this mutation.
func (m *TaskMutation) ResultCleared() bool {
	_, ok := m.clearedFields[task.FieldResult]
	return ok
}

// ResetResult resets all changes to the "result" field.
func (m *TaskMutation) ResetResult() {
	m.result = nil
	delete(m.clearedFields, task.FieldResult)
}

// SetExecutionContext sets the "execution_context" field.
func (m *TaskMutation) SetExecutionContext(value map[string]interface{}) {
	m.execution_context = &value
}

// ExecutionContext returns the value of the "execution_context" field in the mutation.
func (m *TaskMutation) ExecutionContext() (r map[string]interface{}, exists bool) {
	v := m.execution_context
	if v == nil {
		return
	}
	return *v, true
}

// OldExecutionContext returns the old "execution_context" field's value of the Task entity.
// If the Task object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TaskMutation) OldExecutionContext(ctx context.Context) (v map[string]interface{}, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldExecutionContext is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldExecutionContext requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldExecutionContext: %w", err)
	}
	return oldValue.ExecutionContext, nil
}

// ClearExecutionContext clears the value of the "execution_context" field.
func (m *TaskMutation) ClearExecutionContext() {
	m.execution_context = nil
	m.clearedFields[task.FieldExecutionContext] = struct{}{}
}

// ExecutionContextCleared returns if the "execution_context" field was cleared in this mutation.
func (m *TaskMutation) ExecutionContextCleared() bool {
	_, ok := m.clearedFields[task.FieldExecutionContext]
	return ok
}

// ResetExecutionContext resets all changes to the "execution_context" field.
func (m *TaskMutation) ResetExecutionContext() {
	m.execution_context = nil
	delete(m.clearedFields, task.FieldExecutionContext)
}

// SetStorylineTags sets the "storyline_tags" field.
func (m *TaskMutation) SetStorylineTags(s []string) {
	m.storyline_tags = &s
	m.appendstoryline_tags = nil
}

// StorylineTags returns the value of the "storyline_tags" field in the mutation.
func (m *TaskMutation) StorylineTags() (r []string, exists bool) {
	v := m.storyline_tags
	if v == nil {
		return
	}
	return *v, true
}

// OldStorylineTags returns the old "storyline_tags" field's value of the Task entity.
// If the Task object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TaskMutation) OldStorylineTags(ctx context.Context) (v []string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStorylineTags is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStorylineTags requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStorylineTags: %w", err)
	}
	return oldValue.StorylineTags, nil
}

// AppendStorylineTags adds s to the "storyline_tags" field.
func (m *TaskMutation) AppendStorylineTags(s []string) {
	m.appendstoryline_tags = append(m.appendstoryline_tags, s...)
}

// AppendedStorylineTags returns the list of values that were appended to the "storyline_tags" field in this mutation.
func (m *TaskMutation) AppendedStorylineTags() ([]string, bool) {
	if len(m.appendstoryline_tags) == 0 {
		return nil, false
	}
	return m.appendstoryline_tags, true
}

// ClearStorylineTags clears the value of the "storyline_tags" field.
func (m *TaskMutation) ClearStorylineTags() {
	m.storyline_tags = nil
	m.appendstoryline_tags = nil
	m.clearedFields[task.FieldStorylineTags] = struct{}{}
}

// StorylineTagsCleared returns if the "storyline_tags" field was cleared in this mutation.
func (m *TaskMutation) StorylineTagsCleared() bool {
	_, ok := m.clearedFields[task.FieldStorylineTags]
	return ok
}

// ResetStorylineTags resets all changes to the "storyline_tags" field.
func (m *TaskMutation) ResetStorylineTags() {
	m.storyline_tags = nil
	m.appendstoryline_tags = nil
	delete(m.clearedFields, task.FieldStorylineTags)
}

// SetCreatedAt sets the "created_at" field.
func (m *TaskMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *TaskMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the Task entity.
// If the Task object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TaskMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *TaskMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetStartedAt sets the "started_at" field.
func (m *TaskMutation) SetStartedAt(t time.Time) {
	m.started_at = &t
}

// StartedAt returns the value of the "started_at" field in the mutation.
func (m *TaskMutation) StartedAt() (r time.Time, exists bool) {
	v := m.started_at
	if v == nil {
		return
	}
	return *v, true
}

// OldStartedAt returns the old "started_at" field's value of the Task entity.
// If the Task object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TaskMutation) OldStartedAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStartedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStartedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStartedAt: %w", err)
	}
	return oldValue.StartedAt, nil
}

// ClearStartedAt clears the value of the "started_at" field.
func (m *TaskMutation) ClearStartedAt() {
	m.started_at = nil
	m.clearedFields[task.FieldStartedAt] = struct{}{}
}

// StartedAtCleared returns if the "started_at" field was cleared in this mutation.
func (m *TaskMutation) StartedAtCleared() bool {
	_, ok := m.clearedFields[task.FieldStartedAt]
	return ok
}

// ResetStartedAt resets all changes to the "started_at" field.
func (m *TaskMutation) ResetStartedAt() {
	m.started_at = nil
	delete(m.clearedFields, task.FieldStartedAt)
}

// SetCompletedAt sets the "completed_at" field.
func (m *TaskMutation) SetCompletedAt(t time.Time) {
	m.completed_at = &t
}

// CompletedAt returns the value of the "completed_at" field in the mutation.
func (m *TaskMutation) CompletedAt() (r time.Time, exists bool) {
	v := m.completed_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCompletedAt returns the old "completed_at" field's value of the Task entity.
// If the Task object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TaskMutation) OldCompletedAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCompletedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCompletedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCompletedAt: %w", err)
	}
	return oldValue.CompletedAt, nil
}

// ClearCompletedAt clears the value of the "completed_at" field.
func (m *TaskMutation) ClearCompletedAt() {
	m.completed_at = nil
	m.clearedFields[task.FieldCompletedAt] = struct{}{}
}

// CompletedAtCleared returns if the "completed_at" field was cleared in this mutation.
func (m *TaskMutation) CompletedAtCleared() bool {
	_, ok := m.clearedFields[task.FieldCompletedAt]
	return ok
}

// ResetCompletedAt resets all changes to the "completed_at" field.
func (m *TaskMutation) ResetCompletedAt() {
	m.completed_at = nil
	delete(m.clearedFields, task.FieldCompletedAt)
}

// SetError sets the "error" field.
func (m *TaskMutation) SetError(s string) {
	m.error = &s
}

// Error returns the value of the "error" field in the mutation.
func (m *TaskMutation) Error() (r string, exists bool) {
	v := m.error
	if v == nil {
		return
	}
	return *v, true
}

// OldError returns the old "error" field's value of the Task entity.
// If the Task object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TaskMutation) OldError(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldError is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldError requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldError: %w", err)
	}
	return oldValue.Error, nil
}

// ClearError clears the value of the "error" field.
func (m *TaskMutation) ClearError() {
	m.error = nil
	m.clearedFields[task.FieldError] = struct{}{}
}

// ErrorCleared returns if the "error" field was cleared in this mutation.
func (m *TaskMutation) ErrorCleared() bool {
	_, ok := m.clearedFields[task.FieldError]
	return ok
}

// ResetError resets all changes to the "error" field.
func (m *TaskMutation) ResetError() {
	m.error = nil
	delete(m.clearedFields, task.FieldError)
}

// Where appends a list predicates to the TaskMutation builder.
func (m *TaskMutation) Where(ps ...predicate.Task) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the TaskMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *TaskMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Task, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *TaskMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *TaskMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Task).
func (m *TaskMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *TaskMutation) Fields() []string {
	fields := make([]string, 0, 14)
	if m.workspace_id != nil {
		fields = append(fields, task.FieldWorkspaceID)
	}
	if m.execution_id != nil {
		fields = append(fields, task.FieldExecutionID)
	}
	if m.project_id != nil {
		fields = append(fields, task.FieldProjectID)
	}
	if m.pack_id != nil {
		fields = append(fields, task.FieldPackID)
	}
	if m.task_type != nil {
		fields = append(fields, task.FieldTaskType)
	}
	if m.status != nil {
		fields = append(fields, task.FieldStatus)
	}
	if m.params != nil {
		fields = append(fields, task.FieldParams)
	}
	if m.result != nil {
		fields = append(fields, task.FieldResult)
	}
	if m.execution_context != nil {
		fields = append(fields, task.FieldExecutionContext)
	}
	if m.storyline_tags != nil {
		fields = append(fields, task.FieldStorylineTags)
	}
	if m.created_at != nil {
		fields = append(fields, task.FieldCreatedAt)
	}
	if m.started_at != nil {
		fields = append(fields, task.FieldStartedAt)
	}
	if m.completed_at != nil {
		fields = append(fields, task.FieldCompletedAt)
	}
	if m.error != nil {
		fields = append(fields, task.FieldError)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *TaskMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case task.FieldWorkspaceID:
		return m.WorkspaceID()
	case task.FieldExecutionID:
		return m.ExecutionID()
	case task.FieldProjectID:
		return m.ProjectID()
	case task.FieldPackID:
		return m.PackID()
	case task.FieldTaskType:
		return m.TaskType()
	case task.FieldStatus:
		return m.Status()
	case task.FieldParams:
		return m.Params()
	case task.FieldResult:
		return m.Result()
	case task.FieldExecutionContext:
		return m.ExecutionContext()
	case task.FieldStorylineTags:
		return m.StorylineTags()
	case task.FieldCreatedAt:
		return m.CreatedAt()
	case task.FieldStartedAt:
		return m.StartedAt()
	case task.FieldCompletedAt:
		return m.CompletedAt()
	case task.FieldError:
		return m.Error()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *TaskMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case task.FieldWorkspaceID:
		return m.OldWorkspaceID(ctx)
	case task.FieldExecutionID:
		return m.OldExecutionID(ctx)
	case task.FieldProjectID:
		return m.OldProjectID(ctx)
	case task.FieldPackID:
		return m.OldPackID(ctx)
	case task.FieldTaskType:
		return m.OldTaskType(ctx)
	case task.FieldStatus:
		return m.OldStatus(ctx)
	case task.FieldParams:
		return m.OldParams(ctx)
	case task.FieldResult:
		return m.OldResult(ctx)
	case task.FieldExecutionContext:
		return m.OldExecutionContext(ctx)
	case task.FieldStorylineTags:
		return m.OldStorylineTags(ctx)
	case task.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case task.FieldStartedAt:
		return m.OldStartedAt(ctx)
	case task.FieldCompletedAt:
		return m.OldCompletedAt(ctx)
	case task.FieldError:
		return m.OldError(ctx)
	}
	return nil, fmt.Errorf("unknown Task field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *TaskMutation) SetField(name string, value ent.Value) error {
	switch name {
	case task.FieldWorkspaceID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetWorkspaceID(v)
		return nil
	case task.FieldExecutionID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetExecutionID(v)
		return nil
	case task.FieldProjectID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetProjectID(v)
		return nil
	case task.FieldPackID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPackID(v)
		return nil
	case task.FieldTaskType:
		v, ok := value.(task.TaskType)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTaskType(v)
		return nil
	case task.FieldStatus:
		v, ok := value.(task.Status)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStatus(v)
		return nil
	case task.FieldParams:
		v, ok := value.(map[string]interface{})
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetParams(v)
		return nil
	case task.FieldResult:
		v, ok := value.(map[string]interface{})
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetResult(v)
		return nil
	case task.FieldExecutionContext:
		v, ok := value.(map[string]interface{})
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetExecutionContext(v)
		return nil
	case task.FieldStorylineTags:
		v, ok := value.([]string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStorylineTags(v)
		return nil
	case task.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case task.FieldStartedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStartedAt(v)
		return nil
	case task.FieldCompletedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCompletedAt(v)
		return nil
	case task.FieldError:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetError(v)
		return nil
	}
	return fmt.Errorf("unknown Task field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *TaskMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *TaskMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *TaskMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown Task numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *TaskMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(task.FieldExecutionID) {
		fields = append(fields, task.FieldExecutionID)
	}
	if m.FieldCleared(task.FieldProjectID) {
		fields = append(fields, task.FieldProjectID)
	}
	if m.FieldCleared(task.FieldParams) {
		fields = append(fields, task.FieldParams)
	}
	if m.FieldCleared(task.FieldResult) {
		fields = append(fields, task.FieldResult)
	}
	if m.FieldCleared(task.FieldExecutionContext) {
		fields = append(fields, task.FieldExecutionContext)
	}
	if m.FieldCleared(task.FieldStorylineTags) {
		fields = append(fields, task.FieldStorylineTags)
	}
	if m.FieldCleared(task.FieldStartedAt) {
		fields = append(fields, task.FieldStartedAt)
	}
	if m.FieldCleared(task.FieldCompletedAt) {
		fields = append(fields, task.FieldCompletedAt)
	}
	if m.FieldCleared(task.FieldError) {
		fields = append(fields, task.FieldError)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *TaskMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *TaskMutation) ClearField(name string) error {
	switch name {
	case task.FieldExecutionID:
		m.ClearExecutionID()
		return nil
	case task.FieldProjectID:
		m.ClearProjectID()
		return nil
	case task.FieldParams:
		m.ClearParams()
		return nil
	case task.FieldResult:
		m.ClearResult()
		return nil
	case task.FieldExecutionContext:
		m.ClearExecutionContext()
		return nil
	case task.FieldStorylineTags:
		m.ClearStorylineTags()
		return nil
	case task.FieldStartedAt:
		m.ClearStartedAt()
		return nil
	case task.FieldCompletedAt:
		m.ClearCompletedAt()
		return nil
	case task.FieldError:
		m.ClearError()
		return nil
	}
	return fmt.Errorf("unknown Task nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *TaskMutation) ResetField(name string) error {
	switch name {
	case task.FieldWorkspaceID:
		m.ResetWorkspaceID()
		return nil
	case task.FieldExecutionID:
		m.ResetExecutionID()
		return nil
	case task.FieldProjectID:
		m.ResetProjectID()
		return nil
	case task.FieldPackID:
		m.ResetPackID()
		return nil
	case task.FieldTaskType:
		m.ResetTaskType()
		return nil
	case task.FieldStatus:
		m.ResetStatus()
		return nil
	case task.FieldParams:
		m.ResetParams()
		return nil
	case task.FieldResult:
		m.ResetResult()
		return nil
	case task.FieldExecutionContext:
		m.ResetExecutionContext()
		return nil
	case task.FieldStorylineTags:
		m.ResetStorylineTags()
		return nil
	case task.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case task.FieldStartedAt:
		m.ResetStartedAt()
		return nil
	case task.FieldCompletedAt:
		m.ResetCompletedAt()
		return nil
	case task.FieldError:
		m.ResetError()
		return nil
	}
	return fmt.Errorf("unknown Task field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *TaskMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *TaskMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *TaskMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *TaskMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *TaskMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *TaskMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *TaskMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown Task unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *TaskMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown Task edge %s", name)
}

// ToolCallMutation represents an operation that mutates the ToolCall nodes in the graph.
type ToolCallMutation struct {
	config
	op              Op
	typ             string
	id              *string
	execution_id    *string
	step_id         *string
	tool_name       *string
	parameters      *map[string]interface{}
	response        *map[string]interface{}
	status          *toolcall.Status
	error           *string
	duration_ms     *int
	addduration_ms  *int
	factory_cluster *string
	started_at      *time.Time
	completed_at    *time.Time
	created_at      *time.Time
	clearedFields   map[string]struct{}
	done            bool
	oldValue        func(context.Context) (*ToolCall, error)
	predicates      []predicate.ToolCall
}

var _ ent.Mutation = (*ToolCallMutation)(nil)

// toolcallOption allows management of the mutation configuration using functional options.
type toolcallOption func(*ToolCallMutation)

// newToolCallMutation creates new mutation for the ToolCall entity.
func newToolCallMutation(c config, op Op, opts ...toolcallOption) *ToolCallMutation {
	m := &ToolCallMutation{
		config:        c,
		op:            op,
		typ:           TypeToolCall,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withToolCallID sets the ID field of the mutation.
func withToolCallID(id string) toolcallOption {
	return func(m *ToolCallMutation) {
		var (
			err   error
			once  sync.Once
			value *ToolCall
		)
		m.oldValue = func(ctx context.Context) (*ToolCall, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().ToolCall.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withToolCall sets the old ToolCall of the mutation.
func withToolCall(node *ToolCall) toolcallOption {
	return func(m *ToolCallMutation) {
		m.oldValue = func(context.Context) (*ToolCall, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m ToolCallMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m ToolCallMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of ToolCall entities.
func (m *ToolCallMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *ToolCallMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *ToolCallMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().ToolCall.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetExecutionID sets the "execution_id" field.
func (m *ToolCallMutation) SetExecutionID(s string) {
	m.execution_id = &s
}

// ExecutionID returns the value of the "execution_id" field in the mutation.
func (m *ToolCallMutation) ExecutionID() (r string, exists bool) {
	v := m.execution_id
	if v == nil {
		return
	}
	return *v, true
}

// OldExecutionID returns the old "execution_id" field's value of the ToolCall entity.
// If the ToolCall object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ToolCallMutation) OldExecutionID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldExecutionID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldExecutionID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldExecutionID: %w", err)
	}
	return oldValue.ExecutionID, nil
}

// ResetExecutionID resets all changes to the "execution_id" field.
func (m *ToolCallMutation) ResetExecutionID() {
	m.execution_id = nil
}

// SetStepID sets the "step_id" field.
func (m *ToolCallMutation) SetStepID(s string) {
	m.step_id = &s
}

// StepID returns the value of the "step_id" field in the mutation.
func (m *ToolCallMutation) StepID() (r string, exists bool) {
	v := m.step_id
	if v == nil {
		return
	}
	return *v, true
}

// OldStepID returns the old "step_id" field's value of the ToolCall entity.
// If the ToolCall object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ToolCallMutation) OldStepID(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStepID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStepID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStepID: %w", err)
	}
	return oldValue.StepID, nil
}

// ClearStepID clears the value of the "step_id" field.
func (m *ToolCallMutation) ClearStepID() {
	m.step_id = nil
	m.clearedFields[toolcall.FieldStepID] = struct{}{}
}

// StepIDCleared returns if the "step_id" field was cleared in this mutation.
func (m *ToolCallMutation) StepIDCleared() bool {
	_, ok := m.clearedFields[toolcall.FieldStepID]
	return ok
}

// ResetStepID resets all changes to the "step_id" field.
func (m *ToolCallMutation) ResetStepID() {
	m.step_id = nil
	delete(m.clearedFields, toolcall.FieldStepID)
}

// SetToolName sets the "tool_name" field.
func (m *ToolCallMutation) SetToolName(s string) {
	m.tool_name = &s
}

// ToolName returns the value of the "tool_name" field in the mutation.
func (m *ToolCallMutation) ToolName() (r string, exists bool) {
	v := m.tool_name
	if v == nil {
		return
	}
	return *v, true
}

// OldToolName returns the old "tool_name" field's value of the ToolCall entity.
// If the ToolCall object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ToolCallMutation) OldToolName(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldToolName is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldToolName requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldToolName: %w", err)
	}
	return oldValue.ToolName, nil
}

// ResetToolName resets all changes to the "tool_name" field.
func (m *ToolCallMutation) ResetToolName() {
	m.tool_name = nil
}

// SetParameters sets the "parameters" field.
func (m *ToolCallMutation) SetParameters(value map[string]interface{}) {
	m.parameters = &value
}

// Parameters returns the value of the "parameters" field in the mutation.
func (m *ToolCallMutation) Parameters() (r map[string]interface{}, exists bool) {
	v := m.parameters
	if v == nil {
		return
	}
	return *v, true
}

// OldParameters returns the old "parameters" field's value of the ToolCall entity.
// If the ToolCall object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ToolCallMutation) OldParameters(ctx context.Context) (v map[string]interface{}, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldParameters is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldParameters requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldParameters: %w", err)
	}
	return oldValue.Parameters, nil
}

// ClearParameters clears the value of the "parameters" field.
func (m *ToolCallMutation) ClearParameters() {
	m.parameters = nil
	m.clearedFields[toolcall.FieldParameters] = struct{}{}
}

// ParametersCleared returns if the "parameters" field was cleared in this mutation.
func (m *ToolCallMutation) ParametersCleared() bool {
	_, ok := m.clearedFields[toolcall.FieldParameters]
	return ok
}

// ResetParameters resets all changes to the "parameters" field.
func (m *ToolCallMutation) ResetParameters() {
	m.parameters = nil
	delete(m.clearedFields, toolcall.FieldParameters)
}

// SetResponse sets the "response" field.
func (m *ToolCallMutation) SetResponse(value map[string]interface{}) {
	m.response = &value
}

// Response returns the value of the "response" field in the mutation.
func (m *ToolCallMutation) Response() (r map[string]interface{}, exists bool) {
	v := m.response
	if v == nil {
		return
	}
	return *v, true
}

// OldResponse returns the old "response" field's value of the ToolCall entity.
// If the ToolCall object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ToolCallMutation) OldResponse(ctx context.Context) (v map[string]interface{}, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldResponse is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldResponse requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldResponse: %w", err)
	}
	return oldValue.Response, nil
}

// ClearResponse clears the value of the "response" field.
func (m *ToolCallMutation) ClearResponse() {
	m.response = nil
	m.clearedFields[toolcall.FieldResponse] = struct{}{}
}

// ResponseCleared returns if the "response" field was cleared in this mutation.
func (m *ToolCallMutation) ResponseCleared() bool {
	_, ok := m.clearedFields[toolcall.FieldResponse]
	return ok
}

// ResetResponse resets all changes to the "response" field.
func (m *ToolCallMutation) ResetResponse() {
	m.response = nil
	delete(m.clearedFields, toolcall.FieldResponse)
}

// SetStatus sets the "status" field.
func (m *ToolCallMutation) SetStatus(t toolcall.Status) {
	m.status = &t
}

// Status returns the value of the "status" field in the mutation.
func (m *ToolCallMutation) Status() (r toolcall.Status, exists bool) {
	v := m.status
	if v == nil {
		return
	}
	return *v, true
}

// OldStatus returns the old "status" field's value of the ToolCall entity.
// If the ToolCall object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ToolCallMutation) OldStatus(ctx context.Context) (v toolcall.Status, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStatus is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStatus requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStatus: %w", err)
	}
	return oldValue.Status, nil
}

// ResetStatus resets all changes to the "status" field.
func (m *ToolCallMutation) ResetStatus() {
	m.status = nil
}

// SetError sets the "error" field.
func (m *ToolCallMutation) SetError(s string) {
	m.error = &s
}

// Error returns the value of the "error" field in the mutation.
func (m *ToolCallMutation) Error() (r string, exists bool) {
	v := m.error
	if v == nil {
		return
	}
	return *v, true
}

// OldError returns the old "error" field's value of the ToolCall entity.
// If the ToolCall object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ToolCallMutation) OldError(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldError is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldError requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldError: %w", err)
	}
	return oldValue.Error, nil
}

// ClearError clears the value of the "error" field.
func (m *ToolCallMutation) ClearError() {
	m.error = nil
	m.clearedFields[toolcall.FieldError] = struct{}{}
}

// ErrorCleared returns if the "error" field was cleared in this mutation.
func (m *ToolCallMutation) ErrorCleared() bool {
	_, ok := m.clearedFields[toolcall.FieldError]
	return ok
}

// ResetError resets all changes to the "error" field.
func (m *ToolCallMutation) ResetError() {
	m.error = nil
	delete(m.clearedFields, toolcall.FieldError)
}

// SetDurationMs sets the "duration_ms" field.
func (m *ToolCallMutation) SetDurationMs(i int) {
	m.duration_ms = &i
	m.addduration_ms = nil
}

// DurationMs returns the value of the "duration_ms" field in the mutation.
func (m *ToolCallMutation) DurationMs() (r int, exists bool) {
	v := m.duration_ms
	if v == nil {
		return
	}
	return *v, true
}

// OldDurationMs returns the old "duration_ms" field's value of the ToolCall entity.
// If the ToolCall object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ToolCallMutation) OldDurationMs(ctx context.Context) (v *int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDurationMs is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDurationMs requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDurationMs: %w", err)
	}
	return oldValue.DurationMs, nil
}

// AddDurationMs adds i to the "duration_ms" field.
func (m *ToolCallMutation) AddDurationMs(i int) {
	if m.addduration_ms != nil {
		*m.addduration_ms += i
	} else {
		m.addduration_ms = &i
	}
}

// AddedDurationMs returns the value that was added to the "duration_ms" field in this mutation.
func (m *ToolCallMutation) AddedDurationMs() (r int, exists bool) {
	v := m.addduration_ms
	if v == nil {
		return
	}
	return *v, true
}

// ClearDurationMs clears the value of the "duration_ms" field.
func (m *ToolCallMutation) ClearDurationMs() {
	m.duration_ms = nil
	m.addduration_ms = nil
	m.clearedFields[toolcall.FieldDurationMs] = struct{}{}
}

// DurationMsCleared returns if the "duration_ms" field was cleared in this mutation.
func (m *ToolCallMutation) DurationMsCleared() bool {
	_, ok := m.clearedFields[toolcall.FieldDurationMs]
	return ok
}

// ResetDurationMs resets all changes to the "duration_ms" field.
func (m *ToolCallMutation) ResetDurationMs() {
	m.duration_ms = nil
	m.addduration_ms = nil
	delete(m.clearedFields, toolcall.FieldDurationMs)
}

// SetFactoryCluster sets the "factory_cluster" field.
func (m *ToolCallMutation) SetFactoryCluster(s string) {
	m.factory_cluster = &s
}

// FactoryCluster returns the value of the "factory_cluster" field in the mutation.
func (m *ToolCallMutation) FactoryCluster() (r string, exists bool) {
	v := m.factory_cluster
	if v == nil {
		return
	}
	return *v, true
}

// OldFactoryCluster returns the old "factory_cluster" field's value of the ToolCall entity.
// If the ToolCall object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ToolCallMutation) OldFactoryCluster(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldFactoryCluster is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldFactoryCluster requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldFactoryCluster: %w", err)
	}
	return oldValue.FactoryCluster, nil
}

// ResetFactoryCluster resets all changes to the "factory_cluster" field.
func (m *ToolCallMutation) ResetFactoryCluster() {
	m.factory_cluster = nil
}

// SetStartedAt sets the "started_at" field.
func (m *ToolCallMutation) SetStartedAt(t time.Time) {
	m.started_at = &t
}

// StartedAt returns the value of the "started_at" field in the mutation.
func (m *ToolCallMutation) StartedAt() (r time.Time, exists bool) {
	v := m.started_at
	if v == nil {
		return
	}
	return *v, true
}

// OldStartedAt returns the old "started_at" field's value of the ToolCall entity.
// If the ToolCall object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ToolCallMutation) OldStartedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStartedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStartedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStartedAt: %w", err)
	}
	return oldValue.StartedAt, nil
}

// ResetStartedAt resets all changes to the "started_at" field.
func (m *ToolCallMutation) ResetStartedAt() {
	m.started_at = nil
}

// SetCompletedAt sets the "completed_at" field.
func (m *ToolCallMutation) SetCompletedAt(t time.Time) {
	m.completed_at = &t
}

// CompletedAt returns the value of the "completed_at" field in the mutation.
func (m *ToolCallMutation) CompletedAt() (r time.Time, exists bool) {
	v := m.completed_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCompletedAt returns the old "completed_at" field's value of the ToolCall entity.
// If the ToolCall object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ToolCallMutation) OldCompletedAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCompletedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCompletedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCompletedAt: %w", err)
	}
	return oldValue.CompletedAt, nil
}

// ClearCompletedAt clears the value of the "completed_at" field.
func (m *ToolCallMutation) ClearCompletedAt() {
	m.completed_at = nil
	m.clearedFields[toolcall.FieldCompletedAt] = struct{}{}
}

// CompletedAtCleared returns if the "completed_at" field was cleared in this mutation.
func (m *ToolCallMutation) CompletedAtCleared() bool {
	_, ok := m.clearedFields[toolcall.FieldCompletedAt]
	return ok
}

// ResetCompletedAt resets all changes to the "completed_at" field.
func (m *ToolCallMutation) ResetCompletedAt() {
	m.completed_at = nil
	delete(m.clearedFields, toolcall.FieldCompletedAt)
}

// SetCreatedAt sets the "created_at" field.
func (m *ToolCallMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *ToolCallMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the ToolCall entity.
// If the ToolCall object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ToolCallMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *ToolCallMutation) ResetCreatedAt() {
	m.created_at = nil
}

// Where appends a list predicates to the ToolCallMutation builder.
func (m *ToolCallMutation) Where(ps ...predicate.ToolCall) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the ToolCallMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *ToolCallMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.ToolCall, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *ToolCallMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *ToolCallMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (ToolCall).
func (m *ToolCallMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *ToolCallMutation) Fields() []string {
	fields := make([]string, 0, 12)
	if m.execution_id != nil {
		fields = append(fields, toolcall.FieldExecutionID)
	}
	if m.step_id != nil {
		fields = append(fields, toolcall.FieldStepID)
	}
	if m.tool_name != nil {
		fields = append(fields, toolcall.FieldToolName)
	}
	if m.parameters != nil {
		fields = append(fields, toolcall.FieldParameters)
	}
	if m.response != nil {
		fields = append(fields, toolcall.FieldResponse)
	}
	if m.status != nil {
		fields = append(fields, toolcall.FieldStatus)
	}
	if m.error != nil {
		fields = append(fields, toolcall.FieldError)
	}
	if m.duration_ms != nil {
		fields = append(fields, toolcall.FieldDurationMs)
	}
	if m.factory_cluster != nil {
		fields = append(fields, toolcall.FieldFactoryCluster)
	}
	if m.started_at != nil {
		fields = append(fields, toolcall.FieldStartedAt)
	}
	if m.completed_at != nil {
		fields = append(fields, toolcall.FieldCompletedAt)
	}
	if m.created_at != nil {
		fields = append(fields, toolcall.FieldCreatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *ToolCallMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case toolcall.FieldExecutionID:
		return m.ExecutionID()
	case toolcall.FieldStepID:
		return m.StepID()
	case toolcall.FieldToolName:
		return m.ToolName()
	case toolcall.FieldParameters:
		return m.Parameters()
	case toolcall.FieldResponse:
		return m.Response()
	case toolcall.FieldStatus:
		return m.Status()
	case toolcall.FieldError:
		return m.Error()
	case toolcall.FieldDurationMs:
		return m.DurationMs()
	case toolcall.FieldFactoryCluster:
		return m.FactoryCluster()
	case toolcall.FieldStartedAt:
		return m.StartedAt()
	case toolcall.FieldCompletedAt:
		return m.CompletedAt()
	case toolcall.FieldCreatedAt:
		return m.CreatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *ToolCallMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case toolcall.FieldExecutionID:
		return m.OldExecutionID(ctx)
	case toolcall.FieldStepID:
		return m.OldStepID(ctx)
	case toolcall.FieldToolName:
		return m.OldToolName(ctx)
	case toolcall.FieldParameters:
		return m.OldParameters(ctx)
	case toolcall.FieldResponse:
		return m.OldResponse(ctx)
	case toolcall.FieldStatus:
		return m.OldStatus(ctx)
	case toolcall.FieldError:
		return m.OldError(ctx)
	case toolcall.FieldDurationMs:
		return m.OldDurationMs(ctx)
	case toolcall.FieldFactoryCluster:
		return m.OldFactoryCluster(ctx)
	case toolcall.FieldStartedAt:
		return m.OldStartedAt(ctx)
	case toolcall.FieldCompletedAt:
		return m.OldCompletedAt(ctx)
	case toolcall.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown ToolCall field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ToolCallMutation) SetField(name string, value ent.Value) error {
	switch name {
	case toolcall.FieldExecutionID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetExecutionID(v)
		return nil
	case toolcall.FieldStepID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStepID(v)
		return nil
	case toolcall.FieldToolName:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetToolName(v)
		return nil
	case toolcall.FieldParameters:
		v, ok := value.(map[string]interface{})
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetParameters(v)
		return nil
	case toolcall.FieldResponse:
		v, ok := value.(map[string]interface{})
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetResponse(v)
		return nil
	case toolcall.FieldStatus:
		v, ok := value.(toolcall.Status)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStatus(v)
		return nil
	case toolcall.FieldError:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetError(v)
		return nil
	case toolcall.FieldDurationMs:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDurationMs(v)
		return nil
	case toolcall.FieldFactoryCluster:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetFactoryCluster(v)
		return nil
	case toolcall.FieldStartedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStartedAt(v)
		return nil
	case toolcall.FieldCompletedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCompletedAt(v)
		return nil
	case toolcall.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown ToolCall field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *ToolCallMutation) AddedFields() []string {
	var fields []string
	if m.addduration_ms != nil {
		fields = append(fields, toolcall.FieldDurationMs)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *ToolCallMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case toolcall.FieldDurationMs:
		return m.AddedDurationMs()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ToolCallMutation) AddField(name string, value ent.Value) error {
	switch name {
	case toolcall.FieldDurationMs:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddDurationMs(v)
		return nil
	}
	return fmt.Errorf("unknown ToolCall numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *ToolCallMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(toolcall.FieldStepID) {
		fields = append(fields, toolcall.FieldStepID)
	}
	if m.FieldCleared(toolcall.FieldParameters) {
		fields = append(fields, toolcall.FieldParameters)
	}
	if m.FieldCleared(toolcall.FieldResponse) {
		fields = append(fields, toolcall.FieldResponse)
	}
	if m.FieldCleared(toolcall.FieldError) {
		fields = append(fields, toolcall.FieldError)
	}
	if m.FieldCleared(toolcall.FieldDurationMs) {
		fields = append(fields, toolcall.FieldDurationMs)
	}
	if m.FieldCleared(toolcall.FieldCompletedAt) {
		fields = append(fields, toolcall.FieldCompletedAt)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *ToolCallMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *ToolCallMutation) ClearField(name string) error {
	switch name {
	case toolcall.FieldStepID:
		m.ClearStepID()
		return nil
	case toolcall.FieldParameters:
		m.ClearParameters()
		return nil
	case toolcall.FieldResponse:
		m.ClearResponse()
		return nil
	case toolcall.FieldError:
		m.ClearError()
		return nil
	case toolcall.FieldDurationMs:
		m.ClearDurationMs()
		return nil
	case toolcall.FieldCompletedAt:
		m.ClearCompletedAt()
		return nil
	}
	return fmt.Errorf("unknown ToolCall nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *ToolCallMutation) ResetField(name string) error {
	switch name {
	case toolcall.FieldExecutionID:
		m.ResetExecutionID()
		return nil
	case toolcall.FieldStepID:
		m.ResetStepID()
		return nil
	case toolcall.FieldToolName:
		m.ResetToolName()
		return nil
	case toolcall.FieldParameters:
		m.ResetParameters()
		return nil
	case toolcall.FieldResponse:
		m.ResetResponse()
		return nil
	case toolcall.FieldStatus:
		m.ResetStatus()
		return nil
	case toolcall.FieldError:
		m.ResetError()
		return nil
	case toolcall.FieldDurationMs:
		m.ResetDurationMs()
		return nil
	case toolcall.FieldFactoryCluster:
		m.ResetFactoryCluster()
		return nil
	case toolcall.FieldStartedAt:
		m.ResetStartedAt()
		return nil
	case toolcall.FieldCompletedAt:
		m.ResetCompletedAt()
		return nil
	case toolcall.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	}
	return fmt.Errorf("unknown ToolCall field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *ToolCallMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *ToolCallMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *ToolCallMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *ToolCallMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *ToolCallMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *ToolCallMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *ToolCallMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown ToolCall unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *ToolCallMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown ToolCall edge %s", name)
}

// WorkspaceMutation represents an operation that mutates the Workspace nodes in the graph.
type WorkspaceMutation struct {
	config
	op                    Op
	typ                   string
	id                    *string
	owner_id              *string
	default_locale        *string
	storage_root          *string
	auto_execution_config *map[string]interface{}
	mode                  *workspace.Mode
	priority              *workspace.Priority
	created_at            *time.Time
	clearedFields         map[string]struct{}
	done                  bool
	oldValue              func(context.Context) (*Workspace, error)
	predicates            []predicate.Workspace
}

var _ ent.Mutation = (*WorkspaceMutation)(nil)

// workspaceOption allows management of the mutation configuration using functional options.
type workspaceOption func(*WorkspaceMutation)

// newWorkspaceMutation creates new mutation for the Workspace entity.
func newWorkspaceMutation(c config, op Op, opts ...workspaceOption) *WorkspaceMutation {
	m := &WorkspaceMutation{
		config:        c,
		op:            op,
		typ:           TypeWorkspace,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withWorkspaceID sets the ID field of the mutation.
func withWorkspaceID(id string) workspaceOption {
	return func(m *WorkspaceMutation) {
		var (
			err   error
			once  sync.Once
			value *Workspace
		)
		m.oldValue = func(ctx context.Context) (*Workspace, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Workspace.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withWorkspace sets the old Workspace of the mutation.
func withWorkspace(node *Workspace) workspaceOption {
	return func(m *WorkspaceMutation) {
		m.oldValue = func(context.Context) (*Workspace, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m WorkspaceMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m WorkspaceMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of Workspace entities.
func (m *WorkspaceMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *WorkspaceMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *WorkspaceMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Workspace.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetOwnerID sets the "owner_id" field.
func (m *WorkspaceMutation) SetOwnerID(s string) {
	m.owner_id = &s
}

// OwnerID returns the value of the "owner_id" field in the mutation.
func (m *WorkspaceMutation) OwnerID() (r string, exists bool) {
	v := m.owner_id
	if v == nil {
		return
	}
	return *v, true
}

// OldOwnerID returns the old "owner_id" field's value of the Workspace entity.
// If the Workspace object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *WorkspaceMutation) OldOwnerID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldOwnerID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldOwnerID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldOwnerID: %w", err)
	}
	return oldValue.OwnerID, nil
}

// ResetOwnerID resets all changes to the "owner_id" field.
func (m *WorkspaceMutation) ResetOwnerID() {
	m.owner_id = nil
}

// SetDefaultLocale sets the "default_locale" field.
func (m *WorkspaceMutation) SetDefaultLocale(s string) {
	m.default_locale = &s
}

// DefaultLocale returns the value of the "default_locale" field in the mutation.
func (m *WorkspaceMutation) DefaultLocale() (r string, exists bool) {
	v := m.default_locale
	if v == nil {
		return
	}
	return *v, true
}

// OldDefaultLocale returns the old "default_locale" field's value of the Workspace entity.
// If the Workspace object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *WorkspaceMutation) OldDefaultLocale(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDefaultLocale is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDefaultLocale requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDefaultLocale: %w", err)
	}
	return oldValue.DefaultLocale, nil
}

// ResetDefaultLocale resets all changes to the "default_locale" field.
func (m *WorkspaceMutation) ResetDefaultLocale() {
	m.default_locale = nil
}

// SetStorageRoot sets the "storage_root" field.
func (m *WorkspaceMutation) SetStorageRoot(s string) {
	m.storage_root = &s
}

// StorageRoot returns the value of the "storage_root" field in the mutation.
func (m *WorkspaceMutation) StorageRoot() (r string, exists bool) {
	v := m.storage_root
	if v == nil {
		return
	}
	return *v, true
}

// OldStorageRoot returns the old "storage_root" field's value of the Workspace entity.
// If the Workspace object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *WorkspaceMutation) OldStorageRoot(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStorageRoot is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStorageRoot requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStorageRoot: %w", err)
	}
	return oldValue.StorageRoot, nil
}

// ClearStorageRoot clears the value of the "storage_root" field.
func (m *WorkspaceMutation) ClearStorageRoot() {
	m.storage_root = nil
	m.clearedFields[workspace.FieldStorageRoot] = struct{}{}
}

// StorageRootCleared returns if the "storage_root" field was cleared in this mutation.
func (m *WorkspaceMutation) StorageRootCleared() bool {
	_, ok := m.clearedFields[workspace.FieldStorageRoot]
	return ok
}

// ResetStorageRoot resets all changes to the "storage_root" field.
func (m *WorkspaceMutation) ResetStorageRoot() {
	m.storage_root = nil
	delete(m.clearedFields, workspace.FieldStorageRoot)
}

// SetAutoExecutionConfig sets the "auto_execution_config" field.
func (m *WorkspaceMutation) SetAutoExecutionConfig(value map[string]interface{}) {
	m.auto_execution_config = &value
}

// AutoExecutionConfig returns the value of the "auto_execution_config" field in the mutation.
func (m *WorkspaceMutation) AutoExecutionConfig() (r map[string]interface{}, exists bool) {
	v := m.auto_execution_config
	if v == nil {
		return
	}
	return *v, true
}

// OldAutoExecutionConfig returns the old "auto_execution_config" field's value of the Workspace entity.
// If the Workspace object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *WorkspaceMutation) OldAutoExecutionConfig(ctx context.Context) (v map[string]interface{}, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAutoExecutionConfig is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAutoExecutionConfig requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAutoExecutionConfig: %w", err)
	}
	return oldValue.AutoExecutionConfig, nil
}

// ClearAutoExecutionConfig clears the value of the "auto_execution_config" field.
func (m *WorkspaceMutation) ClearAutoExecutionConfig() {
	m.auto_execution_config = nil
	m.clearedFields[workspace.FieldAutoExecutionConfig] = struct{}{}
}

// AutoExecutionConfigCleared returns if the "auto_execution_config" field was cleared in this mutation.
func (m *WorkspaceMutation) AutoExecutionConfigCleared() bool {
	_, ok := m.clearedFields[workspace.FieldAutoExecutionConfig]
	return ok
}

// ResetAutoExecutionConfig resets all changes to the "auto_execution_config" field.
func (m *WorkspaceMutation) ResetAutoExecutionConfig() {
	m.auto_execution_config = nil
	delete(m.clearedFields, workspace.FieldAutoExecutionConfig)
}

// SetMode sets the "mode" field.
func (m *WorkspaceMutation) SetMode(w workspace.Mode) {
	m.mode = &w
}

// Mode returns the value of the "mode" field in the mutation.
func (m *WorkspaceMutation) Mode() (r workspace.Mode, exists bool) {
	v := m.mode
	if v == nil {
		return
	}
	return *v, true
}

// OldMode returns the old "mode" field's value of the Workspace entity.
// If the Workspace object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *WorkspaceMutation) OldMode(ctx context.Context) (v workspace.Mode, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldMode is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldMode requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldMode: %w", err)
	}
	return oldValue.Mode, nil
}

// ResetMode resets all changes to the "mode" field.
func (m *WorkspaceMutation) ResetMode() {
	m.mode = nil
}

// SetPriority sets the "priority" field.
func (m *WorkspaceMutation) SetPriority(w workspace.Priority) {
	m.priority = &w
}

// Priority returns the value of the "priority" field in the mutation.
func (m *WorkspaceMutation) Priority() (r workspace.Priority, exists bool) {
	v := m.priority
	if v == nil {
		return
	}
	return *v, true
}

// OldPriority returns the old "priority" field's value of the Workspace entity.
// If the Workspace object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *WorkspaceMutation) OldPriority(ctx context.Context) (v workspace.Priority, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPriority is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPriority requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPriority: %w", err)
	}
	return oldValue.Priority, nil
}

// ResetPriority resets all changes to the "priority" field.
func (m *WorkspaceMutation) ResetPriority() {
	m.priority = nil
}

// SetCreatedAt sets the "created_at" field.
func (m *WorkspaceMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *WorkspaceMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the Workspace entity.
// If the Workspace object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *WorkspaceMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *WorkspaceMutation) ResetCreatedAt() {
	m.created_at = nil
}

// Where appends a list predicates to the WorkspaceMutation builder.
func (m *WorkspaceMutation) Where(ps ...predicate.Workspace) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the WorkspaceMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *WorkspaceMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Workspace, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *WorkspaceMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *WorkspaceMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Workspace).
func (m *WorkspaceMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *WorkspaceMutation) Fields() []string {
	fields := make([]string, 0, 7)
	if m.owner_id != nil {
		fields = append(fields, workspace.FieldOwnerID)
	}
	if m.default_locale != nil {
		fields = append(fields, workspace.FieldDefaultLocale)
	}
	if m.storage_root != nil {
		fields = append(fields, workspace.FieldStorageRoot)
	}
	if m.auto_execution_config != nil {
		fields = append(fields, workspace.FieldAutoExecutionConfig)
	}
	if m.mode != nil {
		fields = append(fields, workspace.FieldMode)
	}
	if m.priority != nil {
		fields = append(fields, workspace.FieldPriority)
	}
	if m.created_at != nil {
		fields = append(fields, workspace.FieldCreatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *WorkspaceMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case workspace.FieldOwnerID:
		return m.OwnerID()
	case workspace.FieldDefaultLocale:
		return m.DefaultLocale()
	case workspace.FieldStorageRoot:
		return m.StorageRoot()
	case workspace.FieldAutoExecutionConfig:
		return m.AutoExecutionConfig()
	case workspace.FieldMode:
		return m.Mode()
	case workspace.FieldPriority:
		return m.Priority()
	case workspace.FieldCreatedAt:
		return m.CreatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *WorkspaceMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case workspace.FieldOwnerID:
		return m.OldOwnerID(ctx)
	case workspace.FieldDefaultLocale:
		return m.OldDefaultLocale(ctx)
	case workspace.FieldStorageRoot:
		return m.OldStorageRoot(ctx)
	case workspace.FieldAutoExecutionConfig:
		return m.OldAutoExecutionConfig(ctx)
	case workspace.FieldMode:
		return m.OldMode(ctx)
	case workspace.FieldPriority:
		return m.OldPriority(ctx)
	case workspace.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown Workspace field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *WorkspaceMutation) SetField(name string, value ent.Value) error {
	switch name {
	case workspace.FieldOwnerID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetOwnerID(v)
		return nil
	case workspace.FieldDefaultLocale:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDefaultLocale(v)
		return nil
	case workspace.FieldStorageRoot:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStorageRoot(v)
		return nil
	case workspace.FieldAutoExecutionConfig:
		v, ok := value.(map[string]interface{})
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAutoExecutionConfig(v)
		return nil
	case workspace.FieldMode:
		v, ok := value.(workspace.Mode)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetMode(v)
		return nil
	case workspace.FieldPriority:
		v, ok := value.(workspace.Priority)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPriority(v)
		return nil
	case workspace.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown Workspace field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *WorkspaceMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *WorkspaceMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *WorkspaceMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown Workspace numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *WorkspaceMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(workspace.FieldStorageRoot) {
		fields = append(fields, workspace.FieldStorageRoot)
	}
	if m.FieldCleared(workspace.FieldAutoExecutionConfig) {
		fields = append(fields, workspace.FieldAutoExecutionConfig)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *WorkspaceMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *WorkspaceMutation) ClearField(name string) error {
	switch name {
	case workspace.FieldStorageRoot:
		m.ClearStorageRoot()
		return nil
	case workspace.FieldAutoExecutionConfig:
		m.ClearAutoExecutionConfig()
		return nil
	}
	return fmt.Errorf("unknown Workspace nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *WorkspaceMutation) ResetField(name string) error {
	switch name {
	case workspace.FieldOwnerID:
		m.ResetOwnerID()
		return nil
	case workspace.FieldDefaultLocale:
		m.ResetDefaultLocale()
		return nil
	case workspace.FieldStorageRoot:
		m.ResetStorageRoot()
		return nil
	case workspace.FieldAutoExecutionConfig:
		m.ResetAutoExecutionConfig()
		return nil
	case workspace.FieldMode:
		m.ResetMode()
		return nil
	case workspace.FieldPriority:
		m.ResetPriority()
		return nil
	case workspace.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	}
	return fmt.Errorf("unknown Workspace field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *WorkspaceMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *WorkspaceMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *WorkspaceMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *WorkspaceMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *WorkspaceMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *WorkspaceMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *WorkspaceMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown Workspace unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *WorkspaceMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown Workspace edge %s", name)
}
