// Code generated by ent, DO NOT EDIT.

package suggestionpreference

import (
	"time"

	"entgo.io/ent/dialect/sql"
)

const (
	// Label holds the string label denoting the suggestionpreference type in the database.
	Label = "suggestion_preference"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "preference_id"
	// FieldWorkspaceID holds the string denoting the workspace_id field in the database.
	FieldWorkspaceID = "workspace_id"
	// FieldUserID holds the string denoting the user_id field in the database.
	FieldUserID = "user_id"
	// FieldPackID holds the string denoting the pack_id field in the database.
	FieldPackID = "pack_id"
	// FieldTaskType holds the string denoting the task_type field in the database.
	FieldTaskType = "task_type"
	// FieldAutoSuggestEnabled holds the string denoting the auto_suggest_enabled field in the database.
	FieldAutoSuggestEnabled = "auto_suggest_enabled"
	// FieldUpdatedAt holds the string denoting the updated_at field in the database.
	FieldUpdatedAt = "updated_at"
	// Table holds the table name of the suggestionpreference in the database.
	Table = "suggestion_preferences"
)

// Columns holds all SQL columns for suggestionpreference fields.
var Columns = []string{
	FieldID,
	FieldWorkspaceID,
	FieldUserID,
	FieldPackID,
	FieldTaskType,
	FieldAutoSuggestEnabled,
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
	// DefaultAutoSuggestEnabled holds the default value on creation for the "auto_suggest_enabled" field.
	DefaultAutoSuggestEnabled bool
	// DefaultUpdatedAt holds the default value on creation for the "updated_at" field.
	DefaultUpdatedAt func() time.Time
)

// OrderOption defines the ordering options for the SuggestionPreference queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByWorkspaceID orders the results by the workspace_id field.
func ByWorkspaceID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldWorkspaceID, opts...).ToFunc()
}

// ByUserID orders the results by the user_id field.
func ByUserID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldUserID, opts...).ToFunc()
}

// ByPackID orders the results by the pack_id field.
func ByPackID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldPackID, opts...).ToFunc()
}

// ByTaskType orders the results by the task_type field.
func ByTaskType(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTaskType, opts...).ToFunc()
}

// ByAutoSuggestEnabled orders the results by the auto_suggest_enabled field.
func ByAutoSuggestEnabled(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldAutoSuggestEnabled, opts...).ToFunc()
}

// ByUpdatedAt orders the results by the updated_at field.
func ByUpdatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldUpdatedAt, opts...).ToFunc()
}
