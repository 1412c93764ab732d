// Code generated by ent, DO NOT EDIT.

package workspace

import (
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
)

const (
	// Label holds the string label denoting the workspace type in the database.
	Label = "workspace"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "workspace_id"
	// FieldOwnerID holds the string denoting the owner_id field in the database.
	FieldOwnerID = "owner_id"
	// FieldDefaultLocale holds the string denoting the default_locale field in the database.
	FieldDefaultLocale = "default_locale"
	// FieldStorageRoot holds the string denoting the storage_root field in the database.
	FieldStorageRoot = "storage_root"
	// FieldAutoExecutionConfig holds the string denoting the auto_execution_config field in the database.
	FieldAutoExecutionConfig = "auto_execution_config"
	// FieldMode holds the string denoting the mode field in the database.
	FieldMode = "mode"
	// FieldPriority holds the string denoting the priority field in the database.
	FieldPriority = "priority"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// Table holds the table name of the workspace in the database.
	Table = "workspaces"
)

// Columns holds all SQL columns for workspace fields.
var Columns = []string{
	FieldID,
	FieldOwnerID,
	FieldDefaultLocale,
	FieldStorageRoot,
	FieldAutoExecutionConfig,
	FieldMode,
	FieldPriority,
	FieldCreatedAt,
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
	// DefaultDefaultLocale holds the default value on creation for the "default_locale" field.
	DefaultDefaultLocale string
	// DefaultCreatedAt holds the default value on creation for the "created_at" field.
	DefaultCreatedAt func() time.Time
)

// Mode defines the type for the "mode" enum field.
type Mode string

// ModeQa is the default value of the Mode enum.
const DefaultMode = ModeQa

// Mode values.
const (
	ModeQa        Mode = "qa"
	ModeExecution Mode = "execution"
	ModeHybrid    Mode = "hybrid"
)

func (m Mode) String() string {
	return string(m)
}

// ModeValidator is a validator for the "mode" field enum values. It is called by the builders before save.
func ModeValidator(m Mode) error {
	switch m {
	case ModeQa, ModeExecution, ModeHybrid:
		return nil
	default:
		return fmt.Errorf("workspace: invalid enum value for mode field: %q", m)
	}
}

// Priority defines the type for the "priority" enum field.
type Priority string

// PriorityMedium is the default value of the Priority enum.
const DefaultPriority = PriorityMedium

// Priority values.
const (
	PriorityLow    Priority = "low"
	PriorityMedium Priority = "medium"
	PriorityHigh   Priority = "high"
)

func (pr Priority) String() string {
	return string(pr)
}

// PriorityValidator is a validator for the "priority" field enum values. It is called by the builders before save.
func PriorityValidator(pr Priority) error {
	switch pr {
	case PriorityLow, PriorityMedium, PriorityHigh:
		return nil
	default:
		return fmt.Errorf("workspace: invalid enum value for priority field: %q", pr)
	}
}

// OrderOption defines the ordering options for the Workspace queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByOwnerID orders the results by the owner_id field.
func ByOwnerID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldOwnerID, opts...).ToFunc()
}

// ByDefaultLocale orders the results by the default_locale field.
func ByDefaultLocale(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldDefaultLocale, opts...).ToFunc()
}

// ByStorageRoot orders the results by the storage_root field.
func ByStorageRoot(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldStorageRoot, opts...).ToFunc()
}

// ByMode orders the results by the mode field.
func ByMode(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldMode, opts...).ToFunc()
}

// ByPriority orders the results by the priority field.
func ByPriority(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldPriority, opts...).ToFunc()
}

// ByCreatedAt orders the results by the created_at field.
func ByCreatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCreatedAt, opts...).ToFunc()
}
