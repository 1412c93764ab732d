// Code generated by ent, DO NOT EDIT.

package runnerheartbeat

import (
	"time"

	"entgo.io/ent/dialect/sql"
)

const (
	// Label holds the string label denoting the runnerheartbeat type in the database.
	Label = "runner_heartbeat"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "runner_id"
	// FieldHeartbeatAt holds the string denoting the heartbeat_at field in the database.
	FieldHeartbeatAt = "heartbeat_at"
	// Table holds the table name of the runnerheartbeat in the database.
	Table = "runner_heartbeats"
)

// Columns holds all SQL columns for runnerheartbeat fields.
var Columns = []string{
	FieldID,
	FieldHeartbeatAt,
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
	// DefaultHeartbeatAt holds the default value on creation for the "heartbeat_at" field.
	DefaultHeartbeatAt func() time.Time
)

// OrderOption defines the ordering options for the RunnerHeartbeat queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByHeartbeatAt orders the results by the heartbeat_at field.
func ByHeartbeatAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldHeartbeatAt, opts...).ToFunc()
}
