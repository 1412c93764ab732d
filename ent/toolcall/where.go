// Code generated by ent, DO NOT EDIT.

package toolcall

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/cortexops/playbookd/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id string) predicate.ToolCall {
	return predicate.ToolCall(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id string) predicate.ToolCall {
	return predicate.ToolCall(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id string) predicate.ToolCall {
	return predicate.ToolCall(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...string) predicate.ToolCall {
	return predicate.ToolCall(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...string) predicate.ToolCall {
	return predicate.ToolCall(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id string) predicate.ToolCall {
	return predicate.ToolCall(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id string) predicate.ToolCall {
	return predicate.ToolCall(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id string) predicate.ToolCall {
	return predicate.ToolCall(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id string) predicate.ToolCall {
	return predicate.ToolCall(sql.FieldLTE(FieldID, id))
}

// IDEqualFold applies the EqualFold predicate on the ID field.
func IDEqualFold(id string) predicate.ToolCall {
	return predicate.ToolCall(sql.FieldEqualFold(FieldID, id))
}

// IDContainsFold applies the ContainsFold predicate on the ID field.
func IDContainsFold(id string) predicate.ToolCall {
	return predicate.ToolCall(sql.FieldContainsFold(FieldID, id))
}

// ExecutionID applies equality check predicate on the "execution_id" field. It's identical to ExecutionIDEQ.
func ExecutionID(v string) predicate.ToolCall {
	return predicate.ToolCall(sql.FieldEQ(FieldExecutionID, v))
}

// StepID applies equality check predicate on the "step_id" field. It's identical to StepIDEQ.
func StepID(v string) predicate.ToolCall {
	return predicate.ToolCall(sql.FieldEQ(FieldStepID, v))
}

// ToolName applies equality check predicate on the "tool_name" field. It's identical to ToolNameEQ.
func ToolName(v string) predicate.ToolCall {
	return predicate.ToolCall(sql.FieldEQ(FieldToolName, v))
}

// Error applies equality check predicate on the "error" field. It's identical to ErrorEQ.
func Error(v string) predicate.ToolCall {
	return predicate.ToolCall(sql.FieldEQ(FieldError, v))
}

// DurationMs applies equality check predicate on the "duration_ms" field. It's identical to DurationMsEQ.
func DurationMs(v int) predicate.ToolCall {
	return predicate.ToolCall(sql.FieldEQ(FieldDurationMs, v))
}

// FactoryCluster applies equality check predicate on the "factory_cluster" field. It's identical to FactoryClusterEQ.
func FactoryCluster(v string) predicate.ToolCall {
	return predicate.ToolCall(sql.FieldEQ(FieldFactoryCluster, v))
}

// StartedAt applies equality check predicate on the "started_at" field. It's identical to StartedAtEQ.
func StartedAt(v time.Time) predicate.ToolCall {
	return predicate.ToolCall(sql.FieldEQ(FieldStartedAt, v))
}

// CompletedAt applies equality check predicate on the "completed_at" field. It's identical to CompletedAtEQ.
func CompletedAt(v time.Time) predicate.ToolCall {
	return predicate.ToolCall(sql.FieldEQ(FieldCompletedAt, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.ToolCall {
	return predicate.ToolCall(sql.FieldEQ(FieldCreatedAt, v))
}

// ExecutionIDEQ applies the EQ predicate on the "execution_id" field.
func ExecutionIDEQ(v string) predicate.ToolCall {
	return predicate.ToolCall(sql.FieldEQ(FieldExecutionID, v))
}

// ExecutionIDNEQ applies the NEQ predicate on the "execution_id" field.
func ExecutionIDNEQ(v string) predicate.ToolCall {
	return predicate.ToolCall(sql.FieldNEQ(FieldExecutionID, v))
}

// ExecutionIDIn applies the In predicate on the "execution_id" field.
func ExecutionIDIn(vs ...string) predicate.ToolCall {
	return predicate.ToolCall(sql.FieldIn(FieldExecutionID, vs...))
}

// ExecutionIDNotIn applies the NotIn predicate on the "execution_id" field.
func ExecutionIDNotIn(vs ...string) predicate.ToolCall {
	return predicate.ToolCall(sql.FieldNotIn(FieldExecutionID, vs...))
}

// ExecutionIDGT applies the GT predicate on the "execution_id" field.
func ExecutionIDGT(v string) predicate.ToolCall {
	return predicate.ToolCall(sql.FieldGT(FieldExecutionID, v))
}

// ExecutionIDGTE applies the GTE predicate on the "execution_id" field.
func ExecutionIDGTE(v string) predicate.ToolCall {
	return predicate.ToolCall(sql.FieldGTE(FieldExecutionID, v))
}

// ExecutionIDLT applies the LT predicate on the "execution_id" field.
func ExecutionIDLT(v string) predicate.ToolCall {
	return predicate.ToolCall(sql.FieldLT(FieldExecutionID, v))
}

// ExecutionIDLTE applies the LTE predicate on the "execution_id" field.
func ExecutionIDLTE(v string) predicate.ToolCall {
	return predicate.ToolCall(sql.FieldLTE(FieldExecutionID, v))
}

// ExecutionIDContains applies the Contains predicate on the "execution_id" field.
func ExecutionIDContains(v string) predicate.ToolCall {
	return predicate.ToolCall(sql.FieldContains(FieldExecutionID, v))
}

// ExecutionIDHasPrefix applies the HasPrefix predicate on the "execution_id" field.
func ExecutionIDHasPrefix(v string) predicate.ToolCall {
	return predicate.ToolCall(sql.FieldHasPrefix(FieldExecutionID, v))
}

// ExecutionIDHasSuffix applies the HasSuffix predicate on the "execution_id" field.
func ExecutionIDHasSuffix(v string) predicate.ToolCall {
	return predicate.ToolCall(sql.FieldHasSuffix(FieldExecutionID, v))
}

// ExecutionIDEqualFold applies the EqualFold predicate on the "execution_id" field.
func ExecutionIDEqualFold(v string) predicate.ToolCall {
	return predicate.ToolCall(sql.FieldEqualFold(FieldExecutionID, v))
}

// ExecutionIDContainsFold applies the ContainsFold predicate on the "execution_id" field.
func ExecutionIDContainsFold(v string) predicate.ToolCall {
	return predicate.ToolCall(sql.FieldContainsFold(FieldExecutionID, v))
}

// StepIDEQ applies the EQ predicate on the "step_id" field.
func StepIDEQ(v string) predicate.ToolCall {
	return predicate.ToolCall(sql.FieldEQ(FieldStepID, v))
}

// StepIDNEQ applies the NEQ predicate on the "step_id" field.
func StepIDNEQ(v string) predicate.ToolCall {
	return predicate.ToolCall(sql.FieldNEQ(FieldStepID, v))
}

// StepIDIn applies the In predicate on the "step_id" field.
func StepIDIn(vs ...string) predicate.ToolCall {
	return predicate.ToolCall(sql.FieldIn(FieldStepID, vs...))
}

// StepIDNotIn applies the NotIn predicate on the "step_id" field.
func StepIDNotIn(vs ...string) predicate.ToolCall {
	return predicate.ToolCall(sql.FieldNotIn(FieldStepID, vs...))
}

// StepIDGT applies the GT predicate on the "step_id" field.
func StepIDGT(v string) predicate.ToolCall {
	return predicate.ToolCall(sql.FieldGT(FieldStepID, v))
}

// StepIDGTE applies the GTE predicate on the "step_id" field.
func StepIDGTE(v string) predicate.ToolCall {
	return predicate.ToolCall(sql.FieldGTE(FieldStepID, v))
}

// StepIDLT applies the LT predicate on the "step_id" field.
func StepIDLT(v string) predicate.ToolCall {
	return predicate.ToolCall(sql.FieldLT(FieldStepID, v))
}

// StepIDLTE applies the LTE predicate on the "step_id" field.
func StepIDLTE(v string) predicate.ToolCall {
	return predicate.ToolCall(sql.FieldLTE(FieldStepID, v))
}

// StepIDContains applies the Contains predicate on the "step_id" field.
func StepIDContains(v string) predicate.ToolCall {
	return predicate.ToolCall(sql.FieldContains(FieldStepID, v))
}

// StepIDHasPrefix applies the HasPrefix predicate on the "step_id" field.
func StepIDHasPrefix(v string) predicate.ToolCall {
	return predicate.ToolCall(sql.FieldHasPrefix(FieldStepID, v))
}

// StepIDHasSuffix applies the HasSuffix predicate on the "step_id" field.
func StepIDHasSuffix(v string) predicate.ToolCall {
	return predicate.ToolCall(sql.FieldHasSuffix(FieldStepID, v))
}

// StepIDIsNil applies the IsNil predicate on the "step_id" field.
func StepIDIsNil() predicate.ToolCall {
	return predicate.ToolCall(sql.FieldIsNull(FieldStepID))
}

// StepIDNotNil applies the NotNil predicate on the "step_id" field.
func StepIDNotNil() predicate.ToolCall {
	return predicate.ToolCall(sql.FieldNotNull(FieldStepID))
}

// StepIDEqualFold applies the EqualFold predicate on the "step_id" field.
func StepIDEqualFold(v string) predicate.ToolCall {
	return predicate.ToolCall(sql.FieldEqualFold(FieldStepID, v))
}

// StepIDContainsFold applies the ContainsFold predicate on the "step_id" field.
func StepIDContainsFold(v string) predicate.ToolCall {
	return predicate.ToolCall(sql.FieldContainsFold(FieldStepID, v))
}

// ToolNameEQ applies the EQ predicate on the "tool_name" field.
func ToolNameEQ(v string) predicate.ToolCall {
	return predicate.ToolCall(sql.FieldEQ(FieldToolName, v))
}

// ToolNameNEQ applies the NEQ predicate on the "tool_name" field.
func ToolNameNEQ(v string) predicate.ToolCall {
	return predicate.ToolCall(sql.FieldNEQ(FieldToolName, v))
}

// ToolNameIn applies the In predicate on the "tool_name" field.
func ToolNameIn(vs ...string) predicate.ToolCall {
	return predicate.ToolCall(sql.FieldIn(FieldToolName, vs...))
}

// ToolNameNotIn applies the NotIn predicate on the "tool_name" field.
func ToolNameNotIn(vs ...string) predicate.ToolCall {
	return predicate.ToolCall(sql.FieldNotIn(FieldToolName, vs...))
}

// ToolNameGT applies the GT predicate on the "tool_name" field.
func ToolNameGT(v string) predicate.ToolCall {
	return predicate.ToolCall(sql.FieldGT(FieldToolName, v))
}

// ToolNameGTE applies the GTE predicate on the "tool_name" field.
func ToolNameGTE(v string) predicate.ToolCall {
	return predicate.ToolCall(sql.FieldGTE(FieldToolName, v))
}

// ToolNameLT applies the LT predicate on the "tool_name" field.
func ToolNameLT(v string) predicate.ToolCall {
	return predicate.ToolCall(sql.FieldLT(FieldToolName, v))
}

// ToolNameLTE applies the LTE predicate on the "tool_name" field.
func ToolNameLTE(v string) predicate.ToolCall {
	return predicate.ToolCall(sql.FieldLTE(FieldToolName, v))
}

// ToolNameContains applies the Contains predicate on the "tool_name" field.
func ToolNameContains(v string) predicate.ToolCall {
	return predicate.ToolCall(sql.FieldContains(FieldToolName, v))
}

// ToolNameHasPrefix applies the HasPrefix predicate on the "tool_name" field.
func ToolNameHasPrefix(v string) predicate.ToolCall {
	return predicate.ToolCall(sql.FieldHasPrefix(FieldToolName, v))
}

// ToolNameHasSuffix applies the HasSuffix predicate on the "tool_name" field.
func ToolNameHasSuffix(v string) predicate.ToolCall {
	return predicate.ToolCall(sql.FieldHasSuffix(FieldToolName, v))
}

// ToolNameEqualFold applies the EqualFold predicate on the "tool_name" field.
func ToolNameEqualFold(v string) predicate.ToolCall {
	return predicate.ToolCall(sql.FieldEqualFold(FieldToolName, v))
}

// ToolNameContainsFold applies the ContainsFold predicate on the "tool_name" field.
func ToolNameContainsFold(v string) predicate.ToolCall {
	return predicate.ToolCall(sql.FieldContainsFold(FieldToolName, v))
}

// ParametersIsNil applies the IsNil predicate on the "parameters" field.
func ParametersIsNil() predicate.ToolCall {
	return predicate.ToolCall(sql.FieldIsNull(FieldParameters))
}

// ParametersNotNil applies the NotNil predicate on the "parameters" field.
func ParametersNotNil() predicate.ToolCall {
	return predicate.ToolCall(sql.FieldNotNull(FieldParameters))
}

// ResponseIsNil applies the IsNil predicate on the "response" field.
func ResponseIsNil() predicate.ToolCall {
	return predicate.ToolCall(sql.FieldIsNull(FieldResponse))
}

// ResponseNotNil applies the NotNil predicate on the "response" field.
func ResponseNotNil() predicate.ToolCall {
	return predicate.ToolCall(sql.FieldNotNull(FieldResponse))
}

// StatusEQ applies the EQ predicate on the "status" field.
func StatusEQ(v Status) predicate.ToolCall {
	return predicate.ToolCall(sql.FieldEQ(FieldStatus, v))
}

// StatusNEQ applies the NEQ predicate on the "status" field.
func StatusNEQ(v Status) predicate.ToolCall {
	return predicate.ToolCall(sql.FieldNEQ(FieldStatus, v))
}

// StatusIn applies the In predicate on the "status" field.
func StatusIn(vs ...Status) predicate.ToolCall {
	return predicate.ToolCall(sql.FieldIn(FieldStatus, vs...))
}

// StatusNotIn applies the NotIn predicate on the "status" field.
func StatusNotIn(vs ...Status) predicate.ToolCall {
	return predicate.ToolCall(sql.FieldNotIn(FieldStatus, vs...))
}

// ErrorEQ applies the EQ predicate on the "error" field.
func ErrorEQ(v string) predicate.ToolCall {
	return predicate.ToolCall(sql.FieldEQ(FieldError, v))
}

// ErrorNEQ applies the NEQ predicate on the "error" field.
func ErrorNEQ(v string) predicate.ToolCall {
	return predicate.ToolCall(sql.FieldNEQ(FieldError, v))
}

// ErrorIn applies the In predicate on the "error" field.
func ErrorIn(vs ...string) predicate.ToolCall {
	return predicate.ToolCall(sql.FieldIn(FieldError, vs...))
}

// ErrorNotIn applies the NotIn predicate on the "error" field.
func ErrorNotIn(vs ...string) predicate.ToolCall {
	return predicate.ToolCall(sql.FieldNotIn(FieldError, vs...))
}

// ErrorGT applies the GT predicate on the "error" field.
func ErrorGT(v string) predicate.ToolCall {
	return predicate.ToolCall(sql.FieldGT(FieldError, v))
}

// ErrorGTE applies the GTE predicate on the "error" field.
func ErrorGTE(v string) predicate.ToolCall {
	return predicate.ToolCall(sql.FieldGTE(FieldError, v))
}

// ErrorLT applies the LT predicate on the "error" field.
func ErrorLT(v string) predicate.ToolCall {
	return predicate.ToolCall(sql.FieldLT(FieldError, v))
}

// ErrorLTE applies the LTE predicate on the "error" field.
func ErrorLTE(v string) predicate.ToolCall {
	return predicate.ToolCall(sql.FieldLTE(FieldError, v))
}

// ErrorContains applies the Contains predicate on the "error" field.
func ErrorContains(v string) predicate.ToolCall {
	return predicate.ToolCall(sql.FieldContains(FieldError, v))
}

// ErrorHasPrefix applies the HasPrefix predicate on the "error" field.
func ErrorHasPrefix(v string) predicate.ToolCall {
	return predicate.ToolCall(sql.FieldHasPrefix(FieldError, v))
}

// ErrorHasSuffix applies the HasSuffix predicate on the "error" field.
func ErrorHasSuffix(v string) predicate.ToolCall {
	return predicate.ToolCall(sql.FieldHasSuffix(FieldError, v))
}

// ErrorIsNil applies the IsNil predicate on the "error" field.
func ErrorIsNil() predicate.ToolCall {
	return predicate.ToolCall(sql.FieldIsNull(FieldError))
}

// ErrorNotNil applies the NotNil predicate on the "error" field.
func ErrorNotNil() predicate.ToolCall {
	return predicate.ToolCall(sql.FieldNotNull(FieldError))
}

// ErrorEqualFold applies the EqualFold predicate on the "error" field.
func ErrorEqualFold(v string) predicate.ToolCall {
	return predicate.ToolCall(sql.FieldEqualFold(FieldError, v))
}

// ErrorContainsFold applies the ContainsFold predicate on the "error" field.
func ErrorContainsFold(v string) predicate.ToolCall {
	return predicate.ToolCall(sql.FieldContainsFold(FieldError, v))
}

// DurationMsEQ applies the EQ predicate on the "duration_ms" field.
func DurationMsEQ(v int) predicate.ToolCall {
	return predicate.ToolCall(sql.FieldEQ(FieldDurationMs, v))
}

// DurationMsNEQ applies the NEQ predicate on the "duration_ms" field.
func DurationMsNEQ(v int) predicate.ToolCall {
	return predicate.ToolCall(sql.FieldNEQ(FieldDurationMs, v))
}

// DurationMsIn applies the In predicate on the "duration_ms" field.
func DurationMsIn(vs ...int) predicate.ToolCall {
	return predicate.ToolCall(sql.FieldIn(FieldDurationMs, vs...))
}

// DurationMsNotIn applies the NotIn predicate on the "duration_ms" field.
func DurationMsNotIn(vs ...int) predicate.ToolCall {
	return predicate.ToolCall(sql.FieldNotIn(FieldDurationMs, vs...))
}

// DurationMsGT applies the GT predicate on the "duration_ms" field.
func DurationMsGT(v int) predicate.ToolCall {
	return predicate.ToolCall(sql.FieldGT(FieldDurationMs, v))
}

// DurationMsGTE applies the GTE predicate on the "duration_ms" field.
func DurationMsGTE(v int) predicate.ToolCall {
	return predicate.ToolCall(sql.FieldGTE(FieldDurationMs, v))
}

// DurationMsLT applies the LT predicate on the "duration_ms" field.
func DurationMsLT(v int) predicate.ToolCall {
	return predicate.ToolCall(sql.FieldLT(FieldDurationMs, v))
}

// DurationMsLTE applies the LTE predicate on the "duration_ms" field.
func DurationMsLTE(v int) predicate.ToolCall {
	return predicate.ToolCall(sql.FieldLTE(FieldDurationMs, v))
}

// DurationMsIsNil applies the IsNil predicate on the "duration_ms" field.
func DurationMsIsNil() predicate.ToolCall {
	return predicate.ToolCall(sql.FieldIsNull(FieldDurationMs))
}

// DurationMsNotNil applies the NotNil predicate on the "duration_ms" field.
func DurationMsNotNil() predicate.ToolCall {
	return predicate.ToolCall(sql.FieldNotNull(FieldDurationMs))
}

// FactoryClusterEQ applies the EQ predicate on the "factory_cluster" field.
func FactoryClusterEQ(v string) predicate.ToolCall {
	return predicate.ToolCall(sql.FieldEQ(FieldFactoryCluster, v))
}

// FactoryClusterNEQ applies the NEQ predicate on the "factory_cluster" field.
func FactoryClusterNEQ(v string) predicate.ToolCall {
	return predicate.ToolCall(sql.FieldNEQ(FieldFactoryCluster, v))
}

// FactoryClusterIn applies the In predicate on the "factory_cluster" field.
func FactoryClusterIn(vs ...string) predicate.ToolCall {
	return predicate.ToolCall(sql.FieldIn(FieldFactoryCluster, vs...))
}

// FactoryClusterNotIn applies the NotIn predicate on the "factory_cluster" field.
func FactoryClusterNotIn(vs ...string) predicate.ToolCall {
	return predicate.ToolCall(sql.FieldNotIn(FieldFactoryCluster, vs...))
}

// FactoryClusterGT applies the GT predicate on the "factory_cluster" field.
func FactoryClusterGT(v string) predicate.ToolCall {
	return predicate.ToolCall(sql.FieldGT(FieldFactoryCluster, v))
}

// FactoryClusterGTE applies the GTE predicate on the "factory_cluster" field.
func FactoryClusterGTE(v string) predicate.ToolCall {
	return predicate.ToolCall(sql.FieldGTE(FieldFactoryCluster, v))
}

// FactoryClusterLT applies the LT predicate on the "factory_cluster" field.
func FactoryClusterLT(v string) predicate.ToolCall {
	return predicate.ToolCall(sql.FieldLT(FieldFactoryCluster, v))
}

// FactoryClusterLTE applies the LTE predicate on the "factory_cluster" field.
func FactoryClusterLTE(v string) predicate.ToolCall {
	return predicate.ToolCall(sql.FieldLTE(FieldFactoryCluster, v))
}

// FactoryClusterContains applies the Contains predicate on the "factory_cluster" field.
func FactoryClusterContains(v string) predicate.ToolCall {
	return predicate.ToolCall(sql.FieldContains(FieldFactoryCluster, v))
}

// FactoryClusterHasPrefix applies the HasPrefix predicate on the "factory_cluster" field.
func FactoryClusterHasPrefix(v string) predicate.ToolCall {
	return predicate.ToolCall(sql.FieldHasPrefix(FieldFactoryCluster, v))
}

// FactoryClusterHasSuffix applies the HasSuffix predicate on the "factory_cluster" field.
func FactoryClusterHasSuffix(v string) predicate.ToolCall {
	return predicate.ToolCall(sql.FieldHasSuffix(FieldFactoryCluster, v))
}

// FactoryClusterEqualFold applies the EqualFold predicate on the "factory_cluster" field.
func FactoryClusterEqualFold(v string) predicate.ToolCall {
	return predicate.ToolCall(sql.FieldEqualFold(FieldFactoryCluster, v))
}

// FactoryClusterContainsFold applies the ContainsFold predicate on the "factory_cluster" field.
func FactoryClusterContainsFold(v string) predicate.ToolCall {
	return predicate.ToolCall(sql.FieldContainsFold(FieldFactoryCluster, v))
}

// StartedAtEQ applies the EQ predicate on the "started_at" field.
func StartedAtEQ(v time.Time) predicate.ToolCall {
	return predicate.ToolCall(sql.FieldEQ(FieldStartedAt, v))
}

// StartedAtNEQ applies the NEQ predicate on the "started_at" field.
func StartedAtNEQ(v time.Time) predicate.ToolCall {
	return predicate.ToolCall(sql.FieldNEQ(FieldStartedAt, v))
}

// StartedAtIn applies the In predicate on the "started_at" field.
func StartedAtIn(vs ...time.Time) predicate.ToolCall {
	return predicate.ToolCall(sql.FieldIn(FieldStartedAt, vs...))
}

// StartedAtNotIn applies the NotIn predicate on the "started_at" field.
func StartedAtNotIn(vs ...time.Time) predicate.ToolCall {
	return predicate.ToolCall(sql.FieldNotIn(FieldStartedAt, vs...))
}

// StartedAtGT applies the GT predicate on the "started_at" field.
func StartedAtGT(v time.Time) predicate.ToolCall {
	return predicate.ToolCall(sql.FieldGT(FieldStartedAt, v))
}

// StartedAtGTE applies the GTE predicate on the "started_at" field.
func StartedAtGTE(v time.Time) predicate.ToolCall {
	return predicate.ToolCall(sql.FieldGTE(FieldStartedAt, v))
}

// StartedAtLT applies the LT predicate on the "started_at" field.
func StartedAtLT(v time.Time) predicate.ToolCall {
	return predicate.ToolCall(sql.FieldLT(FieldStartedAt, v))
}

// StartedAtLTE applies the LTE predicate on the "started_at" field.
func StartedAtLTE(v time.Time) predicate.ToolCall {
	return predicate.ToolCall(sql.FieldLTE(FieldStartedAt, v))
}

// CompletedAtEQ applies the EQ predicate on the "completed_at" field.
func CompletedAtEQ(v time.Time) predicate.ToolCall {
	return predicate.ToolCall(sql.FieldEQ(FieldCompletedAt, v))
}

// CompletedAtNEQ applies the NEQ predicate on the "completed_at" field.
func CompletedAtNEQ(v time.Time) predicate.ToolCall {
	return predicate.ToolCall(sql.FieldNEQ(FieldCompletedAt, v))
}

// CompletedAtIn applies the In predicate on the "completed_at" field.
func CompletedAtIn(vs ...time.Time) predicate.ToolCall {
	return predicate.ToolCall(sql.FieldIn(FieldCompletedAt, vs...))
}

// CompletedAtNotIn applies the NotIn predicate on the "completed_at" field.
func CompletedAtNotIn(vs ...time.Time) predicate.ToolCall {
	return predicate.ToolCall(sql.FieldNotIn(FieldCompletedAt, vs...))
}

// CompletedAtGT applies the GT predicate on the "completed_at" field.
func CompletedAtGT(v time.Time) predicate.ToolCall {
	return predicate.ToolCall(sql.FieldGT(FieldCompletedAt, v))
}

// CompletedAtGTE applies the GTE predicate on the "completed_at" field.
func CompletedAtGTE(v time.Time) predicate.ToolCall {
	return predicate.ToolCall(sql.FieldGTE(FieldCompletedAt, v))
}

// CompletedAtLT applies the LT predicate on the "completed_at" field.
func CompletedAtLT(v time.Time) predicate.ToolCall {
	return predicate.ToolCall(sql.FieldLT(FieldCompletedAt, v))
}

// CompletedAtLTE applies the LTE predicate on the "completed_at" field.
func CompletedAtLTE(v time.Time) predicate.ToolCall {
	return predicate.ToolCall(sql.FieldLTE(FieldCompletedAt, v))
}

// CompletedAtIsNil applies the IsNil predicate on the "completed_at" field.
func CompletedAtIsNil() predicate.ToolCall {
	return predicate.ToolCall(sql.FieldIsNull(FieldCompletedAt))
}

// CompletedAtNotNil applies the NotNil predicate on the "completed_at" field.
func CompletedAtNotNil() predicate.ToolCall {
	return predicate.ToolCall(sql.FieldNotNull(FieldCompletedAt))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.ToolCall {
	return predicate.ToolCall(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.ToolCall {
	return predicate.ToolCall(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.ToolCall {
	return predicate.ToolCall(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.ToolCall {
	return predicate.ToolCall(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.ToolCall {
	return predicate.ToolCall(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.ToolCall {
	return predicate.ToolCall(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.ToolCall {
	return predicate.ToolCall(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.ToolCall {
	return predicate.ToolCall(sql.FieldLTE(FieldCreatedAt, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.ToolCall) predicate.ToolCall {
	return predicate.ToolCall(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.ToolCall) predicate.ToolCall {
	return predicate.ToolCall(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.ToolCall) predicate.ToolCall {
	return predicate.ToolCall(sql.NotPredicates(p))
}
