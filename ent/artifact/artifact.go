// Code generated by ent, DO NOT EDIT.

package artifact

import (
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
)

const (
	// Label holds the string label denoting the artifact type in the database.
	Label = "artifact"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "artifact_id"
	// FieldWorkspaceID holds the string denoting the workspace_id field in the database.
	FieldWorkspaceID = "workspace_id"
	// FieldIntentID holds the string denoting the intent_id field in the database.
	FieldIntentID = "intent_id"
	// FieldTaskID holds the string denoting the task_id field in the database.
	FieldTaskID = "task_id"
	// FieldExecutionID holds the string denoting the execution_id field in the database.
	FieldExecutionID = "execution_id"
	// FieldPlaybookCode holds the string denoting the playbook_code field in the database.
	FieldPlaybookCode = "playbook_code"
	// FieldArtifactType holds the string denoting the artifact_type field in the database.
	FieldArtifactType = "artifact_type"
	// FieldTitle holds the string denoting the title field in the database.
	FieldTitle = "title"
	// FieldSummary holds the string denoting the summary field in the database.
	FieldSummary = "summary"
	// FieldContent holds the string denoting the content field in the database.
	FieldContent = "content"
	// FieldStorageRef holds the string denoting the storage_ref field in the database.
	FieldStorageRef = "storage_ref"
	// FieldSyncState holds the string denoting the sync_state field in the database.
	FieldSyncState = "sync_state"
	// FieldPrimaryActionType holds the string denoting the primary_action_type field in the database.
	FieldPrimaryActionType = "primary_action_type"
	// FieldVersion holds the string denoting the version field in the database.
	FieldVersion = "version"
	// FieldIsLatest holds the string denoting the is_latest field in the database.
	FieldIsLatest = "is_latest"
	// FieldMetadata holds the string denoting the metadata field in the database.
	FieldMetadata = "metadata"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// FieldUpdatedAt holds the string denoting the updated_at field in the database.
	FieldUpdatedAt = "updated_at"
	// Table holds the table name of the artifact in the database.
	Table = "artifacts"
)

// Columns holds all SQL columns for artifact fields.
var Columns = []string{
	FieldID,
	FieldWorkspaceID,
	FieldIntentID,
	FieldTaskID,
	FieldExecutionID,
	FieldPlaybookCode,
	FieldArtifactType,
	FieldTitle,
	FieldSummary,
	FieldContent,
	FieldStorageRef,
	FieldSyncState,
	FieldPrimaryActionType,
	FieldVersion,
	FieldIsLatest,
	FieldMetadata,
	FieldCreatedAt,
	FieldUpdatedAt,
}

// ValidColumn reports if the column name is valid (part of the table columns).
func ValidColumn(column string) bool {
	for i := range Columns {
		if column == Columns[i] {
			return true
		}
	}
	return false
}

var (
	// DefaultVersion holds the default value on creation for the "version" field.
	DefaultVersion int
	// DefaultIsLatest holds the default value on creation for the "is_latest" field.
	DefaultIsLatest bool
	// DefaultCreatedAt holds the default value on creation for the "created_at" field.
	DefaultCreatedAt func() time.Time
	// DefaultUpdatedAt holds the default value on creation for the "updated_at" field.
	DefaultUpdatedAt func() time.Time
)

// ArtifactType defines the type for the "artifact_type" enum field.
type ArtifactType string

// ArtifactType values.
const (
	ArtifactTypeDocx      ArtifactType = "docx"
	ArtifactTypeDraft     ArtifactType = "draft"
	ArtifactTypeChecklist ArtifactType = "checklist"
	ArtifactTypeConfig    ArtifactType = "config"
	ArtifactTypeAudio     ArtifactType = "audio"
	ArtifactTypeCanva     ArtifactType = "canva"
	ArtifactTypePost      ArtifactType = "post"
	ArtifactTypeOther     ArtifactType = "other"
)

func (at ArtifactType) String() string {
	return string(at)
}

// ArtifactTypeValidator is a validator for the "artifact_type" field enum values. It is called by the builders before save.
func ArtifactTypeValidator(at ArtifactType) error {
	switch at {
	case ArtifactTypeDocx, ArtifactTypeDraft, ArtifactTypeChecklist, ArtifactTypeConfig, ArtifactTypeAudio, ArtifactTypeCanva, ArtifactTypePost, ArtifactTypeOther:
		return nil
	default:
		return fmt.Errorf("artifact: invalid enum value for artifact_type field: %q", at)
	}
}

// SyncState defines the type for the "sync_state" enum field.
type SyncState string

// SyncState values.
const (
	SyncStatePending SyncState = "pending"
	SyncStateSynced  SyncState = "synced"
	SyncStateFailed  SyncState = "failed"
)

func (ss SyncState) String() string {
	return string(ss)
}

// SyncStateValidator is a validator for the "sync_state" field enum values. It is called by the builders before save.
func SyncStateValidator(ss SyncState) error {
	switch ss {
	case SyncStatePending, SyncStateSynced, SyncStateFailed:
		return nil
	default:
		return fmt.Errorf("artifact: invalid enum value for sync_state field: %q", ss)
	}
}

// PrimaryActionType defines the type for the "primary_action_type" enum field.
type PrimaryActionType string

// PrimaryActionTypeCopy is the default value of the PrimaryActionType enum.
const DefaultPrimaryActionType = PrimaryActionTypeCopy

// PrimaryActionType values.
const (
	PrimaryActionTypeCopy         PrimaryActionType = "copy"
	PrimaryActionTypeDownload     PrimaryActionType = "download"
	PrimaryActionTypeOpenExternal PrimaryActionType = "open_external"
)

func (pat PrimaryActionType) String() string {
	return string(pat)
}

// PrimaryActionTypeValidator is a validator for the "primary_action_type" field enum values. It is called by the builders before save.
func PrimaryActionTypeValidator(pat PrimaryActionType) error {
	switch pat {
	case PrimaryActionTypeCopy, PrimaryActionTypeDownload, PrimaryActionTypeOpenExternal:
		return nil
	default:
		return fmt.Errorf("artifact: invalid enum value for primary_action_type field: %q", pat)
	}
}

// OrderOption defines the ordering options for the Artifact queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByWorkspaceID orders the results by the workspace_id field.
func ByWorkspaceID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldWorkspaceID, opts...).ToFunc()
}

// ByIntentID orders the results by the intent_id field.
func ByIntentID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldIntentID, opts...).ToFunc()
}

// ByTaskID orders the results by the task_id field.
func ByTaskID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTaskID, opts...).ToFunc()
}

// ByExecutionID orders the results by the execution_id field.
func ByExecutionID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldExecutionID, opts...).ToFunc()
}

// ByPlaybookCode orders the results by the playbook_code field.
func ByPlaybookCode(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldPlaybookCode, opts...).ToFunc()
}

// ByArtifactType orders the results by the artifact_type field.
func ByArtifactType(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldArtifactType, opts...).ToFunc()
}

// ByTitle orders the results by the title field.
func ByTitle(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTitle, opts...).ToFunc()
}

// BySummary orders the results by the summary field.
func BySummary(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSummary, opts...).ToFunc()
}

// ByStorageRef orders the results by the storage_ref field.
func ByStorageRef(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldStorageRef, opts...).ToFunc()
}

// BySyncState orders the results by the sync_state field.
func BySyncState(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSyncState, opts...).ToFunc()
}

// ByPrimaryActionType orders the results by the primary_action_type field.
func ByPrimaryActionType(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldPrimaryActionType, opts...).ToFunc()
}

// ByVersion orders the results by the version field.
func ByVersion(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldVersion, opts...).ToFunc()
}

// ByIsLatest orders the results by the is_latest field.
func ByIsLatest(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldIsLatest, opts...).ToFunc()
}

// ByCreatedAt orders the results by the created_at field.
func ByCreatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCreatedAt, opts...).ToFunc()
}

// ByUpdatedAt orders the results by the updated_at field.
func ByUpdatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldUpdatedAt, opts...).ToFunc()
}
