// Code generated by ent, DO NOT EDIT.

package ent

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/cortexops/playbookd/ent/playbookexecution"
)

// PlaybookExecution is the model entity for the PlaybookExecution schema.
type PlaybookExecution struct {
	config `json:"-"`
	// ID of the ent.
	ID string `json:"id,omitempty"`
	// WorkspaceID holds the value of the "workspace_id" field.
	WorkspaceID string `json:"workspace_id,omitempty"`
	// PlaybookCode holds the value of the "playbook_code" field.
	PlaybookCode string `json:"playbook_code,omitempty"`
	// Projection of task.status; never written independently
	Status string `json:"status,omitempty"`
	// CurrentStepIndex holds the value of the "current_step_index" field.
	CurrentStepIndex *int `json:"current_step_index,omitempty"`
	// TotalSteps holds the value of the "total_steps" field.
	TotalSteps *int `json:"total_steps,omitempty"`
	// Latest checkpoint document (full execution context)
	Snapshot map[string]interface{} `json:"snapshot,omitempty"`
	// PhaseSummaries holds the value of the "phase_summaries" field.
	PhaseSummaries []map[string]interface{} `json:"phase_summaries,omitempty"`
	// IntentID holds the value of the "intent_id" field.
	IntentID *string `json:"intent_id,omitempty"`
	// FailureMetadata holds the value of the "failure_metadata" field.
	FailureMetadata map[string]interface{} `json:"failure_metadata,omitempty"`
	// SupportsResume holds the value of the "supports_resume" field.
	SupportsResume bool `json:"supports_resume,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// UpdatedAt holds the value of the "updated_at" field.
	UpdatedAt time.Time `json:"updated_at,omitempty"`
	// CompletedAt holds the value of the "completed_at" field.
	CompletedAt  *time.Time `json:"completed_at,omitempty"`
	selectValues sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*PlaybookExecution) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case playbookexecution.FieldSnapshot, playbookexecution.FieldPhaseSummaries, playbookexecution.FieldFailureMetadata:
			values[i] = new([]byte)
		case playbookexecution.FieldSupportsResume:
			values[i] = new(sql.NullBool)
		case playbookexecution.FieldCurrentStepIndex, playbookexecution.FieldTotalSteps:
			values[i] = new(sql.NullInt64)
		case playbookexecution.FieldID, playbookexecution.FieldWorkspaceID, playbookexecution.FieldPlaybookCode, playbookexecution.FieldStatus, playbookexecution.FieldIntentID:
			values[i] = new(sql.NullString)
		case playbookexecution.FieldCreatedAt, playbookexecution.FieldUpdatedAt, playbookexecution.FieldCompletedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the PlaybookExecution fields.
func (_m *PlaybookExecution) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case playbookexecution.FieldID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value.Valid {
				_m.ID = value.String
			}
		case playbookexecution.FieldWorkspaceID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field workspace_id", values[i])
			} else if value.Valid {
				_m.WorkspaceID = value.String
			}
		case playbookexecution.FieldPlaybookCode:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field playbook_code", values[i])
			} else if value.Valid {
				_m.PlaybookCode = value.String
			}
		case playbookexecution.FieldStatus:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field status", values[i])
			} else if value.Valid {
				_m.Status = value.String
			}
		case playbookexecution.FieldCurrentStepIndex:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field current_step_index", values[i])
			} else if value.Valid {
				_m.CurrentStepIndex = new(int)
				*_m.CurrentStepIndex = int(value.Int64)
			}
		case playbookexecution.FieldTotalSteps:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field total_steps", values[i])
			} else if value.Valid {
				_m.TotalSteps = new(int)
				*_m.TotalSteps = int(value.Int64)
			}
		case playbookexecution.FieldSnapshot:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field snapshot", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.Snapshot); err != nil {
					return fmt.Errorf("unmarshal field snapshot: %w", err)
				}
			}
		case playbookexecution.FieldPhaseSummaries:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field phase_summaries", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.PhaseSummaries); err != nil {
					return fmt.Errorf("unmarshal field phase_summaries: %w", err)
				}
			}
		case playbookexecution.FieldIntentID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field intent_id", values[i])
			} else if value.Valid {
				_m.IntentID = new(string)
				*_m.IntentID = value.String
			}
		case playbookexecution.FieldFailureMetadata:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field failure_metadata", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.FailureMetadata); err != nil {
					return fmt.Errorf("unmarshal field failure_metadata: %w", err)
				}
			}
		case playbookexecution.FieldSupportsResume:
			if value, ok := values[i].(*sql.NullBool); !ok {
				return fmt.Errorf("unexpected type %T for field supports_resume", values[i])
			} else if value.Valid {
				_m.SupportsResume = value.Bool
			}
		case playbookexecution.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		case playbookexecution.FieldUpdatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field updated_at", values[i])
			} else if value.Valid {
				_m.UpdatedAt = value.Time
			}
		case playbookexecution.FieldCompletedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field completed_at", values[i])
			} else if value.Valid {
				_m.CompletedAt = new(time.Time)
				*_m.CompletedAt = value.Time
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the PlaybookExecution.
// This includes values selected through modifiers, order, etc.
func (_m *PlaybookExecution) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// Update returns a builder for updating this PlaybookExecution.
// Note that you need to call PlaybookExecution.Unwrap() before calling this method if this PlaybookExecution
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *PlaybookExecution) Update() *PlaybookExecutionUpdateOne {
	return NewPlaybookExecutionClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the PlaybookExecution entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *PlaybookExecution) Unwrap() *PlaybookExecution {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: PlaybookExecution is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *PlaybookExecution) String() string {
	var builder strings.Builder
	builder.WriteString("PlaybookExecution(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("workspace_id=")
	builder.WriteString(_m.WorkspaceID)
	builder.WriteString(", ")
	builder.WriteString("playbook_code=")
	builder.WriteString(_m.PlaybookCode)
	builder.WriteString(", ")
	builder.WriteString("status=")
	builder.WriteString(_m.Status)
	builder.WriteString(", ")
	if v := _m.CurrentStepIndex; v != nil {
		builder.WriteString("current_step_index=")
		builder.WriteString(fmt.Sprintf("%v", *v))
	}
	builder.WriteString(", ")
	if v := _m.TotalSteps; v != nil {
		builder.WriteString("total_steps=")
		builder.WriteString(fmt.Sprintf("%v", *v))
	}
	builder.WriteString(", ")
	builder.WriteString("snapshot=")
	builder.WriteString(fmt.Sprintf("%v", _m.Snapshot))
	builder.WriteString(", ")
	builder.WriteString("phase_summaries=")
	builder.WriteString(fmt.Sprintf("%v", _m.PhaseSummaries))
	builder.WriteString(", ")
	if v := _m.IntentID; v != nil {
		builder.WriteString("intent_id=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	builder.WriteString("failure_metadata=")
	builder.WriteString(fmt.Sprintf("%v", _m.FailureMetadata))
	builder.WriteString(", ")
	builder.WriteString("supports_resume=")
	builder.WriteString(fmt.Sprintf("%v", _m.SupportsResume))
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("updated_at=")
	builder.WriteString(_m.UpdatedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	if v := _m.CompletedAt; v != nil {
		builder.WriteString("completed_at=")
		builder.WriteString(v.Format(time.ANSIC))
	}
	builder.WriteByte(')')
	return builder.String()
}

// PlaybookExecutions is a parsable slice of PlaybookExecution.
type PlaybookExecutions []*PlaybookExecution
