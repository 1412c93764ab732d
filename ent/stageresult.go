// Code generated by ent, DO NOT EDIT.

package ent

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/cortexops/playbookd/ent/stageresult"
)

// StageResult is the model entity for the StageResult schema.
type StageResult struct {
	config `json:"-"`
	// ID of the ent.
	ID string `json:"id,omitempty"`
	// ExecutionID holds the value of the "execution_id" field.
	ExecutionID string `json:"execution_id,omitempty"`
	// StepID holds the value of the "step_id" field.
	StepID *string `json:"step_id,omitempty"`
	// StageName holds the value of the "stage_name" field.
	StageName string `json:"stage_name,omitempty"`
	// ResultType holds the value of the "result_type" field.
	ResultType stageresult.ResultType `json:"result_type,omitempty"`
	// Content holds the value of the "content" field.
	Content map[string]interface{} `json:"content,omitempty"`
	// Preview holds the value of the "preview" field.
	Preview string `json:"preview,omitempty"`
	// RequiresReview holds the value of the "requires_review" field.
	RequiresReview bool `json:"requires_review,omitempty"`
	// ReviewStatus holds the value of the "review_status" field.
	ReviewStatus stageresult.ReviewStatus `json:"review_status,omitempty"`
	// ArtifactID holds the value of the "artifact_id" field.
	ArtifactID *string `json:"artifact_id,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt    time.Time `json:"created_at,omitempty"`
	selectValues sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*StageResult) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case stageresult.FieldContent:
			values[i] = new([]byte)
		case stageresult.FieldRequiresReview:
			values[i] = new(sql.NullBool)
		case stageresult.FieldID, stageresult.FieldExecutionID, stageresult.FieldStepID, stageresult.FieldStageName, stageresult.FieldResultType, stageresult.FieldPreview, stageresult.FieldReviewStatus, stageresult.FieldArtifactID:
			values[i] = new(sql.NullString)
		case stageresult.FieldCreatedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the StageResult fields.
func (_m *StageResult) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case stageresult.FieldID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value.Valid {
				_m.ID = value.String
			}
		case stageresult.FieldExecutionID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field execution_id", values[i])
			} else if value.Valid {
				_m.ExecutionID = value.String
			}
		case stageresult.FieldStepID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field step_id", values[i])
			} else if value.Valid {
				_m.StepID = new(string)
				*_m.StepID = value.String
			}
		case stageresult.FieldStageName:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field stage_name", values[i])
			} else if value.Valid {
				_m.StageName = value.String
			}
		case stageresult.FieldResultType:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field result_type", values[i])
			} else if value.Valid {
				_m.ResultType = stageresult.ResultType(value.String)
			}
		case stageresult.FieldContent:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field content", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.Content); err != nil {
					return fmt.Errorf("unmarshal field content: %w", err)
				}
			}
		case stageresult.FieldPreview:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field preview", values[i])
			} else if value.Valid {
				_m.Preview = value.String
			}
		case stageresult.FieldRequiresReview:
			if value, ok := values[i].(*sql.NullBool); !ok {
				return fmt.Errorf("unexpected type %T for field requires_review", values[i])
			} else if value.Valid {
				_m.RequiresReview = value.Bool
			}
		case stageresult.FieldReviewStatus:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field review_status", values[i])
			} else if value.Valid {
				_m.ReviewStatus = stageresult.ReviewStatus(value.String)
			}
		case stageresult.FieldArtifactID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field artifact_id", values[i])
			} else if value.Valid {
				_m.ArtifactID = new(string)
				*_m.ArtifactID = value.String
			}
		case stageresult.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the StageResult.
// This includes values selected through modifiers, order, etc.
func (_m *StageResult) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// Update returns a builder for updating this StageResult.
// Note that you need to call StageResult.Unwrap() before calling this method if this StageResult
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *StageResult) Update() *StageResultUpdateOne {
	return NewStageResultClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the StageResult entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *StageResult) Unwrap() *StageResult {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: StageResult is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *StageResult) String() string {
	var builder strings.Builder
	builder.WriteString("StageResult(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("execution_id=")
	builder.WriteString(_m.ExecutionID)
	builder.WriteString(", ")
	if v := _m.StepID; v != nil {
		builder.WriteString("step_id=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	builder.WriteString("stage_name=")
	builder.WriteString(_m.StageName)
	builder.WriteString(", ")
	builder.WriteString("result_type=")
	builder.WriteString(fmt.Sprintf("%v", _m.ResultType))
	builder.WriteString(", ")
	builder.WriteString("content=")
	builder.WriteString(fmt.Sprintf("%v", _m.Content))
	builder.WriteString(", ")
	builder.WriteString("preview=")
	builder.WriteString(_m.Preview)
	builder.WriteString(", ")
	builder.WriteString("requires_review=")
	builder.WriteString(fmt.Sprintf("%v", _m.RequiresReview))
	builder.WriteString(", ")
	builder.WriteString("review_status=")
	builder.WriteString(fmt.Sprintf("%v", _m.ReviewStatus))
	builder.WriteString(", ")
	if v := _m.ArtifactID; v != nil {
		builder.WriteString("artifact_id=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// StageResults is a parsable slice of StageResult.
type StageResults []*StageResult
