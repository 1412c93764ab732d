// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/cortexops/playbookd/ent/suggestionpreference"
)

// SuggestionPreference is the model entity for the SuggestionPreference schema.
type SuggestionPreference struct {
	config `json:"-"`
	// ID of the ent.
	ID string `json:"id,omitempty"`
	// WorkspaceID holds the value of the "workspace_id" field.
	WorkspaceID string `json:"workspace_id,omitempty"`
	// UserID holds the value of the "user_id" field.
	UserID string `json:"user_id,omitempty"`
	// PackID holds the value of the "pack_id" field.
	PackID string `json:"pack_id,omitempty"`
	// TaskType holds the value of the "task_type" field.
	TaskType string `json:"task_type,omitempty"`
	// AutoSuggestEnabled holds the value of the "auto_suggest_enabled" field.
	AutoSuggestEnabled bool `json:"auto_suggest_enabled,omitempty"`
	// UpdatedAt holds the value of the "updated_at" field.
	UpdatedAt    time.Time `json:"updated_at,omitempty"`
	selectValues sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*SuggestionPreference) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case suggestionpreference.FieldAutoSuggestEnabled:
			values[i] = new(sql.NullBool)
		case suggestionpreference.FieldID, suggestionpreference.FieldWorkspaceID, suggestionpreference.FieldUserID, suggestionpreference.FieldPackID, suggestionpreference.FieldTaskType:
			values[i] = new(sql.NullString)
		case suggestionpreference.FieldUpdatedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the SuggestionPreference fields.
func (_m *SuggestionPreference) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case suggestionpreference.FieldID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value.Valid {
				_m.ID = value.String
			}
		case suggestionpreference.FieldWorkspaceID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field workspace_id", values[i])
			} else if value.Valid {
				_m.WorkspaceID = value.String
			}
		case suggestionpreference.FieldUserID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field user_id", values[i])
			} else if value.Valid {
				_m.UserID = value.String
			}
		case suggestionpreference.FieldPackID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field pack_id", values[i])
			} else if value.Valid {
				_m.PackID = value.String
			}
		case suggestionpreference.FieldTaskType:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field task_type", values[i])
			} else if value.Valid {
				_m.TaskType = value.String
			}
		case suggestionpreference.FieldAutoSuggestEnabled:
			if value, ok := values[i].(*sql.NullBool); !ok {
				return fmt.Errorf("unexpected type %T for field auto_suggest_enabled", values[i])
			} else if value.Valid {
				_m.AutoSuggestEnabled = value.Bool
			}
		case suggestionpreference.FieldUpdatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field updated_at", values[i])
			} else if value.Valid {
				_m.UpdatedAt = value.Time
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the SuggestionPreference.
// This includes values selected through modifiers, order, etc.
func (_m *SuggestionPreference) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// Update returns a builder for updating this SuggestionPreference.
// Note that you need to call SuggestionPreference.Unwrap() before calling this method if this SuggestionPreference
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *SuggestionPreference) Update() *SuggestionPreferenceUpdateOne {
	return NewSuggestionPreferenceClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the SuggestionPreference entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *SuggestionPreference) Unwrap() *SuggestionPreference {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: SuggestionPreference is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *SuggestionPreference) String() string {
	var builder strings.Builder
	builder.WriteString("SuggestionPreference(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("workspace_id=")
	builder.WriteString(_m.WorkspaceID)
	builder.WriteString(", ")
	builder.WriteString("user_id=")
	builder.WriteString(_m.UserID)
	builder.WriteString(", ")
	builder.WriteString("pack_id=")
	builder.WriteString(_m.PackID)
	builder.WriteString(", ")
	builder.WriteString("task_type=")
	builder.WriteString(_m.TaskType)
	builder.WriteString(", ")
	builder.WriteString("auto_suggest_enabled=")
	builder.WriteString(fmt.Sprintf("%v", _m.AutoSuggestEnabled))
	builder.WriteString(", ")
	builder.WriteString("updated_at=")
	builder.WriteString(_m.UpdatedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// SuggestionPreferences is a parsable slice of SuggestionPreference.
type SuggestionPreferences []*SuggestionPreference
