// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/cortexops/playbookd/ent/runnerheartbeat"
)

// RunnerHeartbeat is the model entity for the RunnerHeartbeat schema.
type RunnerHeartbeat struct {
	config `json:"-"`
	// ID of the ent.
	ID string `json:"id,omitempty"`
	// HeartbeatAt holds the value of the "heartbeat_at" field.
	HeartbeatAt  time.Time `json:"heartbeat_at,omitempty"`
	selectValues sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*RunnerHeartbeat) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case runnerheartbeat.FieldID:
			values[i] = new(sql.NullString)
		case runnerheartbeat.FieldHeartbeatAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the RunnerHeartbeat fields.
func (_m *RunnerHeartbeat) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case runnerheartbeat.FieldID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value.Valid {
				_m.ID = value.String
			}
		case runnerheartbeat.FieldHeartbeatAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field heartbeat_at", values[i])
			} else if value.Valid {
				_m.HeartbeatAt = value.Time
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the RunnerHeartbeat.
// This includes values selected through modifiers, order, etc.
func (_m *RunnerHeartbeat) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// Update returns a builder for updating this RunnerHeartbeat.
// Note that you need to call RunnerHeartbeat.Unwrap() before calling this method if this RunnerHeartbeat
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *RunnerHeartbeat) Update() *RunnerHeartbeatUpdateOne {
	return NewRunnerHeartbeatClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the RunnerHeartbeat entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *RunnerHeartbeat) Unwrap() *RunnerHeartbeat {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: RunnerHeartbeat is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *RunnerHeartbeat) String() string {
	var builder strings.Builder
	builder.WriteString("RunnerHeartbeat(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("heartbeat_at=")
	builder.WriteString(_m.HeartbeatAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// RunnerHeartbeats is a parsable slice of RunnerHeartbeat.
type RunnerHeartbeats []*RunnerHeartbeat
