// Code generated by ent, DO NOT EDIT.

package task

import (
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
)

const (
	// Label holds the string label denoting the task type in the database.
	Label = "task"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "task_id"
	// FieldWorkspaceID holds the string denoting the workspace_id field in the database.
	FieldWorkspaceID = "workspace_id"
	// FieldExecutionID holds the string denoting the execution_id field in the database.
	FieldExecutionID = "execution_id"
	// FieldProjectID holds the string denoting the project_id field in the database.
	FieldProjectID = "project_id"
	// FieldPackID holds the string denoting the pack_id field in the database.
	FieldPackID = "pack_id"
	// FieldTaskType holds the string denoting the task_type field in the database.
	FieldTaskType = "task_type"
	// FieldStatus holds the string denoting the status field in the database.
	FieldStatus = "status"
	// FieldParams holds the string denoting the params field in the database.
	FieldParams = "params"
	// FieldResult holds the string denoting the result field in the database.
	FieldResult = "result"
	// FieldExecutionContext holds the string denoting the execution_context field in the database.
	FieldExecutionContext = "execution_context"
	// FieldStorylineTags holds the string denoting the storyline_tags field in the database.
	FieldStorylineTags = "storyline_tags"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// FieldStartedAt holds the string denoting the started_at field in the database.
	FieldStartedAt = "started_at"
	// FieldCompletedAt holds the string denoting the completed_at field in the database.
	FieldCompletedAt = "completed_at"
	// FieldError holds the string denoting the error field in the database.
	FieldError = "error"
	// Table holds the table name of the task in the database.
	Table = "tasks"
)

// Columns holds all SQL columns for task fields.
var Columns = []string{
	FieldID,
	FieldWorkspaceID,
	FieldExecutionID,
	FieldProjectID,
	FieldPackID,
	FieldTaskType,
	FieldStatus,
	FieldParams,
	FieldResult,
	FieldExecutionContext,
	FieldStorylineTags,
	FieldCreatedAt,
	FieldStartedAt,
	FieldCompletedAt,
	FieldError,
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
	// DefaultCreatedAt holds the default value on creation for the "created_at" field.
	DefaultCreatedAt func() time.Time
)

// TaskType defines the type for the "task_type" enum field.
type TaskType string

// TaskType values.
const (
	TaskTypePlaybookExecution  TaskType = "playbook_execution"
	TaskTypeSuggestion         TaskType = "suggestion"
	TaskTypeAgentDispatch      TaskType = "agent_dispatch"
	TaskTypeExecution          TaskType = "execution"
	TaskTypeIntentExtraction   TaskType = "intent_extraction"
	TaskTypeSemanticExtraction TaskType = "semantic_extraction"
)

func (tt TaskType) String() string {
	return string(tt)
}

// TaskTypeValidator is a validator for the "task_type" field enum values. It is called by the builders before save.
func TaskTypeValidator(tt TaskType) error {
	switch tt {
	case TaskTypePlaybookExecution, TaskTypeSuggestion, TaskTypeAgentDispatch, TaskTypeExecution, TaskTypeIntentExtraction, TaskTypeSemanticExtraction:
		return nil
	default:
		return fmt.Errorf("task: invalid enum value for task_type field: %q", tt)
	}
}

// Status defines the type for the "status" enum field.
type Status string

// StatusPending is the default value of the Status enum.
const DefaultStatus = StatusPending

// Status values.
const (
	StatusPending             Status = "pending"
	StatusRunning             Status = "running"
	StatusWaitingConfirmation Status = "waiting_confirmation"
	StatusSucceeded           Status = "succeeded"
	StatusFailed              Status = "failed"
	StatusCancelledByUser     Status = "cancelled_by_user"
	StatusExpired             Status = "expired"
)

func (s Status) String() string {
	return string(s)
}

// StatusValidator is a validator for the "status" field enum values. It is called by the builders before save.
func StatusValidator(s Status) error {
	switch s {
	case StatusPending, StatusRunning, StatusWaitingConfirmation, StatusSucceeded, StatusFailed, StatusCancelledByUser, StatusExpired:
		return nil
	default:
		return fmt.Errorf("task: invalid enum value for status field: %q", s)
	}
}

// OrderOption defines the ordering options for the Task queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByWorkspaceID orders the results by the workspace_id field.
func ByWorkspaceID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldWorkspaceID, opts...).ToFunc()
}

// ByExecutionID orders the results by the execution_id field.
func ByExecutionID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldExecutionID, opts...).ToFunc()
}

// ByProjectID orders the results by the project_id field.
func ByProjectID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldProjectID, opts...).ToFunc()
}

// ByPackID orders the results by the pack_id field.
func ByPackID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldPackID, opts...).ToFunc()
}

// ByTaskType orders the results by the task_type field.
func ByTaskType(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTaskType, opts...).ToFunc()
}

// ByStatus orders the results by the status field.
func ByStatus(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldStatus, opts...).ToFunc()
}

// ByCreatedAt orders the results by the created_at field.
func ByCreatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCreatedAt, opts...).ToFunc()
}

// ByStartedAt orders the results by the started_at field.
func ByStartedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldStartedAt, opts...).ToFunc()
}

// ByCompletedAt orders the results by the completed_at field.
func ByCompletedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCompletedAt, opts...).ToFunc()
}

// ByError orders the results by the error field.
func ByError(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldError, opts...).ToFunc()
}
