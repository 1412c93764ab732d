// Code generated by ent, DO NOT EDIT.

package playbookexecution

import (
	"time"

	"entgo.io/ent/dialect/sql"
)

const (
	// Label holds the string label denoting the playbookexecution type in the database.
	Label = "playbook_execution"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "execution_id"
	// FieldWorkspaceID holds the string denoting the workspace_id field in the database.
	FieldWorkspaceID = "workspace_id"
	// FieldPlaybookCode holds the string denoting the playbook_code field in the database.
	FieldPlaybookCode = "playbook_code"
	// FieldStatus holds the string denoting the status field in the database.
	FieldStatus = "status"
	// FieldCurrentStepIndex holds the string denoting the current_step_index field in the database.
	FieldCurrentStepIndex = "current_step_index"
	// FieldTotalSteps holds the string denoting the total_steps field in the database.
	FieldTotalSteps = "total_steps"
	// FieldSnapshot holds the string denoting the snapshot field in the database.
	FieldSnapshot = "snapshot"
	// FieldPhaseSummaries holds the string denoting the phase_summaries field in the database.
	FieldPhaseSummaries = "phase_summaries"
	// FieldIntentID holds the string denoting the intent_id field in the database.
	FieldIntentID = "intent_id"
	// FieldFailureMetadata holds the string denoting the failure_metadata field in the database.
	FieldFailureMetadata = "failure_metadata"
	// FieldSupportsResume holds the string denoting the supports_resume field in the database.
	FieldSupportsResume = "supports_resume"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// FieldUpdatedAt holds the string denoting the updated_at field in the database.
	FieldUpdatedAt = "updated_at"
	// FieldCompletedAt holds the string denoting the completed_at field in the database.
	FieldCompletedAt = "completed_at"
	// Table holds the table name of the playbookexecution in the database.
	Table = "playbook_executions"
)

// Columns holds all SQL columns for playbookexecution fields.
var Columns = []string{
	FieldID,
	FieldWorkspaceID,
	FieldPlaybookCode,
	FieldStatus,
	FieldCurrentStepIndex,
	FieldTotalSteps,
	FieldSnapshot,
	FieldPhaseSummaries,
	FieldIntentID,
	FieldFailureMetadata,
	FieldSupportsResume,
	FieldCreatedAt,
	FieldUpdatedAt,
	FieldCompletedAt,
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
	// DefaultStatus holds the default value on creation for the "status" field.
	DefaultStatus string
	// DefaultSupportsResume holds the default value on creation for the "supports_resume" field.
	DefaultSupportsResume bool
	// DefaultCreatedAt holds the default value on creation for the "created_at" field.
	DefaultCreatedAt func() time.Time
	// DefaultUpdatedAt holds the default value on creation for the "updated_at" field.
	DefaultUpdatedAt func() time.Time
)

// OrderOption defines the ordering options for the PlaybookExecution queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByWorkspaceID orders the results by the workspace_id field.
func ByWorkspaceID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldWorkspaceID, opts...).ToFunc()
}

// ByPlaybookCode orders the results by the playbook_code field.
func ByPlaybookCode(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldPlaybookCode, opts...).ToFunc()
}

// ByStatus orders the results by the status field.
func ByStatus(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldStatus, opts...).ToFunc()
}

// ByCurrentStepIndex orders the results by the current_step_index field.
func ByCurrentStepIndex(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCurrentStepIndex, opts...).ToFunc()
}

// ByTotalSteps orders the results by the total_steps field.
func ByTotalSteps(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTotalSteps, opts...).ToFunc()
}

// ByIntentID orders the results by the intent_id field.
func ByIntentID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldIntentID, opts...).ToFunc()
}

// BySupportsResume orders the results by the supports_resume field.
func BySupportsResume(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSupportsResume, opts...).ToFunc()
}

// ByCreatedAt orders the results by the created_at field.
func ByCreatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCreatedAt, opts...).ToFunc()
}

// ByUpdatedAt orders the results by the updated_at field.
func ByUpdatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldUpdatedAt, opts...).ToFunc()
}

// ByCompletedAt orders the results by the completed_at field.
func ByCompletedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCompletedAt, opts...).ToFunc()
}
