// Code generated by ent, DO NOT EDIT.

package mindevent

import (
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
)

const (
	// Label holds the string label denoting the mindevent type in the database.
	Label = "mind_event"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "event_id"
	// FieldWorkspaceID holds the string denoting the workspace_id field in the database.
	FieldWorkspaceID = "workspace_id"
	// FieldProfileID holds the string denoting the profile_id field in the database.
	FieldProfileID = "profile_id"
	// FieldThreadID holds the string denoting the thread_id field in the database.
	FieldThreadID = "thread_id"
	// FieldEntityIds holds the string denoting the entity_ids field in the database.
	FieldEntityIds = "entity_ids"
	// FieldActor holds the string denoting the actor field in the database.
	FieldActor = "actor"
	// FieldEventType holds the string denoting the event_type field in the database.
	FieldEventType = "event_type"
	// FieldPayload holds the string denoting the payload field in the database.
	FieldPayload = "payload"
	// FieldMetadata holds the string denoting the metadata field in the database.
	FieldMetadata = "metadata"
	// FieldTimestamp holds the string denoting the timestamp field in the database.
	FieldTimestamp = "timestamp"
	// Table holds the table name of the mindevent in the database.
	Table = "mind_events"
)

// Columns holds all SQL columns for mindevent fields.
var Columns = []string{
	FieldID,
	FieldWorkspaceID,
	FieldProfileID,
	FieldThreadID,
	FieldEntityIds,
	FieldActor,
	FieldEventType,
	FieldPayload,
	FieldMetadata,
	FieldTimestamp,
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
	// DefaultTimestamp holds the default value on creation for the "timestamp" field.
	DefaultTimestamp func() time.Time
)

// Actor defines the type for the "actor" enum field.
type Actor string

// Actor values.
const (
	ActorUser      Actor = "user"
	ActorAssistant Actor = "assistant"
	ActorSystem    Actor = "system"
	ActorAgent     Actor = "agent"
)

func (a Actor) String() string {
	return string(a)
}

// ActorValidator is a validator for the "actor" field enum values. It is called by the builders before save.
func ActorValidator(a Actor) error {
	switch a {
	case ActorUser, ActorAssistant, ActorSystem, ActorAgent:
		return nil
	default:
		return fmt.Errorf("mindevent: invalid enum value for actor field: %q", a)
	}
}

// OrderOption defines the ordering options for the MindEvent queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByWorkspaceID orders the results by the workspace_id field.
func ByWorkspaceID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldWorkspaceID, opts...).ToFunc()
}

// ByProfileID orders the results by the profile_id field.
func ByProfileID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldProfileID, opts...).ToFunc()
}

// ByThreadID orders the results by the thread_id field.
func ByThreadID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldThreadID, opts...).ToFunc()
}

// ByActor orders the results by the actor field.
func ByActor(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldActor, opts...).ToFunc()
}

// ByEventType orders the results by the event_type field.
func ByEventType(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldEventType, opts...).ToFunc()
}

// ByTimestamp orders the results by the timestamp field.
func ByTimestamp(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTimestamp, opts...).ToFunc()
}
