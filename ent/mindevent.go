// Code generated by ent, DO NOT EDIT.

package ent

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/cortexops/playbookd/ent/mindevent"
)

// MindEvent is the model entity for the MindEvent schema.
type MindEvent struct {
	config `json:"-"`
	// ID of the ent.
	ID string `json:"id,omitempty"`
	// WorkspaceID holds the value of the "workspace_id" field.
	WorkspaceID string `json:"workspace_id,omitempty"`
	// ProfileID holds the value of the "profile_id" field.
	ProfileID *string `json:"profile_id,omitempty"`
	// ThreadID holds the value of the "thread_id" field.
	ThreadID *string `json:"thread_id,omitempty"`
	// Cross-references, e.g. the execution_id a step belongs to
	EntityIds []string `json:"entity_ids,omitempty"`
	// Actor holds the value of the "actor" field.
	Actor mindevent.Actor `json:"actor,omitempty"`
	// message, playbook_step, execution_chat, tool_call, agent_execution, ...
	EventType string `json:"event_type,omitempty"`
	// Payload holds the value of the "payload" field.
	Payload map[string]interface{} `json:"payload,omitempty"`
	// Metadata holds the value of the "metadata" field.
	Metadata map[string]interface{} `json:"metadata,omitempty"`
	// Timestamp holds the value of the "timestamp" field.
	Timestamp    time.Time `json:"timestamp,omitempty"`
	selectValues sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*MindEvent) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case mindevent.FieldEntityIds, mindevent.FieldPayload, mindevent.FieldMetadata:
			values[i] = new([]byte)
		case mindevent.FieldID, mindevent.FieldWorkspaceID, mindevent.FieldProfileID, mindevent.FieldThreadID, mindevent.FieldActor, mindevent.FieldEventType:
			values[i] = new(sql.NullString)
		case mindevent.FieldTimestamp:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the MindEvent fields.
func (_m *MindEvent) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case mindevent.FieldID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value.Valid {
				_m.ID = value.String
			}
		case mindevent.FieldWorkspaceID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field workspace_id", values[i])
			} else if value.Valid {
				_m.WorkspaceID = value.String
			}
		case mindevent.FieldProfileID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field profile_id", values[i])
			} else if value.Valid {
				_m.ProfileID = new(string)
				*_m.ProfileID = value.String
			}
		case mindevent.FieldThreadID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field thread_id", values[i])
			} else if value.Valid {
				_m.ThreadID = new(string)
				*_m.ThreadID = value.String
			}
		case mindevent.FieldEntityIds:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field entity_ids", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.EntityIds); err != nil {
					return fmt.Errorf("unmarshal field entity_ids: %w", err)
				}
			}
		case mindevent.FieldActor:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field actor", values[i])
			} else if value.Valid {
				_m.Actor = mindevent.Actor(value.String)
			}
		case mindevent.FieldEventType:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field event_type", values[i])
			} else if value.Valid {
				_m.EventType = value.String
			}
		case mindevent.FieldPayload:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field payload", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.Payload); err != nil {
					return fmt.Errorf("unmarshal field payload: %w", err)
				}
			}
		case mindevent.FieldMetadata:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field metadata", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.Metadata); err != nil {
					return fmt.Errorf("unmarshal field metadata: %w", err)
				}
			}
		case mindevent.FieldTimestamp:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field timestamp", values[i])
			} else if value.Valid {
				_m.Timestamp = value.Time
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the MindEvent.
// This includes values selected through modifiers, order, etc.
func (_m *MindEvent) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// Update returns a builder for updating this MindEvent.
// Note that you need to call MindEvent.Unwrap() before calling this method if this MindEvent
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *MindEvent) Update() *MindEventUpdateOne {
	return NewMindEventClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the MindEvent entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *MindEvent) Unwrap() *MindEvent {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: MindEvent is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *MindEvent) String() string {
	var builder strings.Builder
	builder.WriteString("MindEvent(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("workspace_id=")
	builder.WriteString(_m.WorkspaceID)
	builder.WriteString(", ")
	if v := _m.ProfileID; v != nil {
		builder.WriteString("profile_id=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	if v := _m.ThreadID; v != nil {
		builder.WriteString("thread_id=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	builder.WriteString("entity_ids=")
	builder.WriteString(fmt.Sprintf("%v", _m.EntityIds))
	builder.WriteString(", ")
	builder.WriteString("actor=")
	builder.WriteString(fmt.Sprintf("%v", _m.Actor))
	builder.WriteString(", ")
	builder.WriteString("event_type=")
	builder.WriteString(_m.EventType)
	builder.WriteString(", ")
	builder.WriteString("payload=")
	builder.WriteString(fmt.Sprintf("%v", _m.Payload))
	builder.WriteString(", ")
	builder.WriteString("metadata=")
	builder.WriteString(fmt.Sprintf("%v", _m.Metadata))
	builder.WriteString(", ")
	builder.WriteString("timestamp=")
	builder.WriteString(_m.Timestamp.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// MindEvents is a parsable slice of MindEvent.
type MindEvents []*MindEvent
