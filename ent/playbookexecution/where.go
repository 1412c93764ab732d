// Code generated by ent, DO NOT EDIT.

package playbookexecution

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/cortexops/playbookd/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id string) predicate.PlaybookExecution {
	return predicate.PlaybookExecution(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id string) predicate.PlaybookExecution {
	return predicate.PlaybookExecution(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id string) predicate.PlaybookExecution {
	return predicate.PlaybookExecution(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...string) predicate.PlaybookExecution {
	return predicate.PlaybookExecution(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...string) predicate.PlaybookExecution {
	return predicate.PlaybookExecution(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id string) predicate.PlaybookExecution {
	return predicate.PlaybookExecution(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id string) predicate.PlaybookExecution {
	return predicate.PlaybookExecution(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id string) predicate.PlaybookExecution {
	return predicate.PlaybookExecution(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id string) predicate.PlaybookExecution {
	return predicate.PlaybookExecution(sql.FieldLTE(FieldID, id))
}

// IDEqualFold applies the EqualFold predicate on the ID field.
func IDEqualFold(id string) predicate.PlaybookExecution {
	return predicate.PlaybookExecution(sql.FieldEqualFold(FieldID, id))
}

// IDContainsFold applies the ContainsFold predicate on the ID field.
func IDContainsFold(id string) predicate.PlaybookExecution {
	return predicate.PlaybookExecution(sql.FieldContainsFold(FieldID, id))
}

// WorkspaceID applies equality check predicate on the "workspace_id" field. It's identical to WorkspaceIDEQ.
func WorkspaceID(v string) predicate.PlaybookExecution {
	return predicate.PlaybookExecution(sql.FieldEQ(FieldWorkspaceID, v))
}

// PlaybookCode applies equality check predicate on the "playbook_code" field. It's identical to PlaybookCodeEQ.
func PlaybookCode(v string) predicate.PlaybookExecution {
	return predicate.PlaybookExecution(sql.FieldEQ(FieldPlaybookCode, v))
}

// Status applies equality check predicate on the "status" field. It's identical to StatusEQ.
func Status(v string) predicate.PlaybookExecution {
	return predicate.PlaybookExecution(sql.FieldEQ(FieldStatus, v))
}

// CurrentStepIndex applies equality check predicate on the "current_step_index" field. It's identical to CurrentStepIndexEQ.
func CurrentStepIndex(v int) predicate.PlaybookExecution {
	return predicate.PlaybookExecution(sql.FieldEQ(FieldCurrentStepIndex, v))
}

// TotalSteps applies equality check predicate on the "total_steps" field. It's identical to TotalStepsEQ.
func TotalSteps(v int) predicate.PlaybookExecution {
	return predicate.PlaybookExecution(sql.FieldEQ(FieldTotalSteps, v))
}

// IntentID applies equality check predicate on the "intent_id" field. It's identical to IntentIDEQ.
func IntentID(v string) predicate.PlaybookExecution {
	return predicate.PlaybookExecution(sql.FieldEQ(FieldIntentID, v))
}

// SupportsResume applies equality check predicate on the "supports_resume" field. It's identical to SupportsResumeEQ.
func SupportsResume(v bool) predicate.PlaybookExecution {
	return predicate.PlaybookExecution(sql.FieldEQ(FieldSupportsResume, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.PlaybookExecution {
	return predicate.PlaybookExecution(sql.FieldEQ(FieldCreatedAt, v))
}

// UpdatedAt applies equality check predicate on the "updated_at" field. It's identical to UpdatedAtEQ.
func UpdatedAt(v time.Time) predicate.PlaybookExecution {
	return predicate.PlaybookExecution(sql.FieldEQ(FieldUpdatedAt, v))
}

// CompletedAt applies equality check predicate on the "completed_at" field. It's identical to CompletedAtEQ.
func CompletedAt(v time.Time) predicate.PlaybookExecution {
	return predicate.PlaybookExecution(sql.FieldEQ(FieldCompletedAt, v))
}

// WorkspaceIDEQ applies the EQ predicate on the "workspace_id" field.
func WorkspaceIDEQ(v string) predicate.PlaybookExecution {
	return predicate.PlaybookExecution(sql.FieldEQ(FieldWorkspaceID, v))
}

// WorkspaceIDNEQ applies the NEQ predicate on the "workspace_id" field.
func WorkspaceIDNEQ(v string) predicate.PlaybookExecution {
	return predicate.PlaybookExecution(sql.FieldNEQ(FieldWorkspaceID, v))
}

// WorkspaceIDIn applies the In predicate on the "workspace_id" field.
func WorkspaceIDIn(vs ...string) predicate.PlaybookExecution {
	return predicate.PlaybookExecution(sql.FieldIn(FieldWorkspaceID, vs...))
}

// WorkspaceIDNotIn applies the NotIn predicate on the "workspace_id" field.
func WorkspaceIDNotIn(vs ...string) predicate.PlaybookExecution {
	return predicate.PlaybookExecution(sql.FieldNotIn(FieldWorkspaceID, vs...))
}

// WorkspaceIDGT applies the GT predicate on the "workspace_id" field.
func WorkspaceIDGT(v string) predicate.PlaybookExecution {
	return predicate.PlaybookExecution(sql.FieldGT(FieldWorkspaceID, v))
}

// WorkspaceIDGTE applies the GTE predicate on the "workspace_id" field.
func WorkspaceIDGTE(v string) predicate.PlaybookExecution {
	return predicate.PlaybookExecution(sql.FieldGTE(FieldWorkspaceID, v))
}

// WorkspaceIDLT applies the LT predicate on the "workspace_id" field.
func WorkspaceIDLT(v string) predicate.PlaybookExecution {
	return predicate.PlaybookExecution(sql.FieldLT(FieldWorkspaceID, v))
}

// WorkspaceIDLTE applies the LTE predicate on the "workspace_id" field.
func WorkspaceIDLTE(v string) predicate.PlaybookExecution {
	return predicate.PlaybookExecution(sql.FieldLTE(FieldWorkspaceID, v))
}

// WorkspaceIDContains applies the Contains predicate on the "workspace_id" field.
func WorkspaceIDContains(v string) predicate.PlaybookExecution {
	return predicate.PlaybookExecution(sql.FieldContains(FieldWorkspaceID, v))
}

// WorkspaceIDHasPrefix applies the HasPrefix predicate on the "workspace_id" field.
func WorkspaceIDHasPrefix(v string) predicate.PlaybookExecution {
	return predicate.PlaybookExecution(sql.FieldHasPrefix(FieldWorkspaceID, v))
}

// WorkspaceIDHasSuffix applies the HasSuffix predicate on the "workspace_id" field.
func WorkspaceIDHasSuffix(v string) predicate.PlaybookExecution {
	return predicate.PlaybookExecution(sql.FieldHasSuffix(FieldWorkspaceID, v))
}

// WorkspaceIDEqualFold applies the EqualFold predicate on the "workspace_id" field.
func WorkspaceIDEqualFold(v string) predicate.PlaybookExecution {
	return predicate.PlaybookExecution(sql.FieldEqualFold(FieldWorkspaceID, v))
}

// WorkspaceIDContainsFold applies the ContainsFold predicate on the "workspace_id" field.
func WorkspaceIDContainsFold(v string) predicate.PlaybookExecution {
	return predicate.PlaybookExecution(sql.FieldContainsFold(FieldWorkspaceID, v))
}

// PlaybookCodeEQ applies the EQ predicate on the "playbook_code" field.
func PlaybookCodeEQ(v string) predicate.PlaybookExecution {
	return predicate.PlaybookExecution(sql.FieldEQ(FieldPlaybookCode, v))
}

// PlaybookCodeNEQ applies the NEQ predicate on the "playbook_code" field.
func PlaybookCodeNEQ(v string) predicate.PlaybookExecution {
	return predicate.PlaybookExecution(sql.FieldNEQ(FieldPlaybookCode, v))
}

// PlaybookCodeIn applies the In predicate on the "playbook_code" field.
func PlaybookCodeIn(vs ...string) predicate.PlaybookExecution {
	return predicate.PlaybookExecution(sql.FieldIn(FieldPlaybookCode, vs...))
}

// PlaybookCodeNotIn applies the NotIn predicate on the "playbook_code" field.
func PlaybookCodeNotIn(vs ...string) predicate.PlaybookExecution {
	return predicate.PlaybookExecution(sql.FieldNotIn(FieldPlaybookCode, vs...))
}

// PlaybookCodeGT applies the GT predicate on the "playbook_code" field.
func PlaybookCodeGT(v string) predicate.PlaybookExecution {
	return predicate.PlaybookExecution(sql.FieldGT(FieldPlaybookCode, v))
}

// PlaybookCodeGTE applies the GTE predicate on the "playbook_code" field.
func PlaybookCodeGTE(v string) predicate.PlaybookExecution {
	return predicate.PlaybookExecution(sql.FieldGTE(FieldPlaybookCode, v))
}

// PlaybookCodeLT applies the LT predicate on the "playbook_code" field.
func PlaybookCodeLT(v string) predicate.PlaybookExecution {
	return predicate.PlaybookExecution(sql.FieldLT(FieldPlaybookCode, v))
}

// PlaybookCodeLTE applies the LTE predicate on the "playbook_code" field.
func PlaybookCodeLTE(v string) predicate.PlaybookExecution {
	return predicate.PlaybookExecution(sql.FieldLTE(FieldPlaybookCode, v))
}

// PlaybookCodeContains applies the Contains predicate on the "playbook_code" field.
func PlaybookCodeContains(v string) predicate.PlaybookExecution {
	return predicate.PlaybookExecution(sql.FieldContains(FieldPlaybookCode, v))
}

// PlaybookCodeHasPrefix applies the HasPrefix predicate on the "playbook_code" field.
func PlaybookCodeHasPrefix(v string) predicate.PlaybookExecution {
	return predicate.PlaybookExecution(sql.FieldHasPrefix(FieldPlaybookCode, v))
}

// PlaybookCodeHasSuffix applies the HasSuffix predicate on the "playbook_code" field.
func PlaybookCodeHasSuffix(v string) predicate.PlaybookExecution {
	return predicate.PlaybookExecution(sql.FieldHasSuffix(FieldPlaybookCode, v))
}

// PlaybookCodeEqualFold applies the EqualFold predicate on the "playbook_code" field.
func PlaybookCodeEqualFold(v string) predicate.PlaybookExecution {
	return predicate.PlaybookExecution(sql.FieldEqualFold(FieldPlaybookCode, v))
}

// PlaybookCodeContainsFold applies the ContainsFold predicate on the "playbook_code" field.
func PlaybookCodeContainsFold(v string) predicate.PlaybookExecution {
	return predicate.PlaybookExecution(sql.FieldContainsFold(FieldPlaybookCode, v))
}

// StatusEQ applies the EQ predicate on the "status" field.
func StatusEQ(v string) predicate.PlaybookExecution {
	return predicate.PlaybookExecution(sql.FieldEQ(FieldStatus, v))
}

// StatusNEQ applies the NEQ predicate on the "status" field.
func StatusNEQ(v string) predicate.PlaybookExecution {
	return predicate.PlaybookExecution(sql.FieldNEQ(FieldStatus, v))
}

// StatusIn applies the In predicate on the "status" field.
func StatusIn(vs ...string) predicate.PlaybookExecution {
	return predicate.PlaybookExecution(sql.FieldIn(FieldStatus, vs...))
}

// StatusNotIn applies the NotIn predicate on the "status" field.
func StatusNotIn(vs ...string) predicate.PlaybookExecution {
	return predicate.PlaybookExecution(sql.FieldNotIn(FieldStatus, vs...))
}

// StatusGT applies the GT predicate on the "status" field.
func StatusGT(v string) predicate.PlaybookExecution {
	return predicate.PlaybookExecution(sql.FieldGT(FieldStatus, v))
}

// StatusGTE applies the GTE predicate on the "status" field.
func StatusGTE(v string) predicate.PlaybookExecution {
	return predicate.PlaybookExecution(sql.FieldGTE(FieldStatus, v))
}

// StatusLT applies the LT predicate on the "status" field.
func StatusLT(v string) predicate.PlaybookExecution {
	return predicate.PlaybookExecution(sql.FieldLT(FieldStatus, v))
}

// StatusLTE applies the LTE predicate on the "status" field.
func StatusLTE(v string) predicate.PlaybookExecution {
	return predicate.PlaybookExecution(sql.FieldLTE(FieldStatus, v))
}

// StatusContains applies the Contains predicate on the "status" field.
func StatusContains(v string) predicate.PlaybookExecution {
	return predicate.PlaybookExecution(sql.FieldContains(FieldStatus, v))
}

// StatusHasPrefix applies the HasPrefix predicate on the "status" field.
func StatusHasPrefix(v string) predicate.PlaybookExecution {
	return predicate.PlaybookExecution(sql.FieldHasPrefix(FieldStatus, v))
}

// StatusHasSuffix applies the HasSuffix predicate on the "status" field.
func StatusHasSuffix(v string) predicate.PlaybookExecution {
	return predicate.PlaybookExecution(sql.FieldHasSuffix(FieldStatus, v))
}

// StatusEqualFold applies the EqualFold predicate on the "status" field.
func StatusEqualFold(v string) predicate.PlaybookExecution {
	return predicate.PlaybookExecution(sql.FieldEqualFold(FieldStatus, v))
}

// StatusContainsFold applies the ContainsFold predicate on the "status" field.
func StatusContainsFold(v string) predicate.PlaybookExecution {
	return predicate.PlaybookExecution(sql.FieldContainsFold(FieldStatus, v))
}

// CurrentStepIndexEQ applies the EQ predicate on the "current_step_index" field.
func CurrentStepIndexEQ(v int) predicate.PlaybookExecution {
	return predicate.PlaybookExecution(sql.FieldEQ(FieldCurrentStepIndex, v))
}

// CurrentStepIndexNEQ applies the NEQ predicate on the "current_step_index" field.
func CurrentStepIndexNEQ(v int) predicate.PlaybookExecution {
	return predicate.PlaybookExecution(sql.FieldNEQ(FieldCurrentStepIndex, v))
}

// CurrentStepIndexIn applies the In predicate on the "current_step_index" field.
func CurrentStepIndexIn(vs ...int) predicate.PlaybookExecution {
	return predicate.PlaybookExecution(sql.FieldIn(FieldCurrentStepIndex, vs...))
}

// CurrentStepIndexNotIn applies the NotIn predicate on the "current_step_index" field.
func CurrentStepIndexNotIn(vs ...int) predicate.PlaybookExecution {
	return predicate.PlaybookExecution(sql.FieldNotIn(FieldCurrentStepIndex, vs...))
}

// CurrentStepIndexGT applies the GT predicate on the "current_step_index" field.
func CurrentStepIndexGT(v int) predicate.PlaybookExecution {
	return predicate.PlaybookExecution(sql.FieldGT(FieldCurrentStepIndex, v))
}

// CurrentStepIndexGTE applies the GTE predicate on the "current_step_index" field.
func CurrentStepIndexGTE(v int) predicate.PlaybookExecution {
	return predicate.PlaybookExecution(sql.FieldGTE(FieldCurrentStepIndex, v))
}

// CurrentStepIndexLT applies the LT predicate on the "current_step_index" field.
func CurrentStepIndexLT(v int) predicate.PlaybookExecution {
	return predicate.PlaybookExecution(sql.FieldLT(FieldCurrentStepIndex, v))
}

// CurrentStepIndexLTE applies the LTE predicate on the "current_step_index" field.
func CurrentStepIndexLTE(v int) predicate.PlaybookExecution {
	return predicate.PlaybookExecution(sql.FieldLTE(FieldCurrentStepIndex, v))
}

// CurrentStepIndexIsNil applies the IsNil predicate on the "current_step_index" field.
func CurrentStepIndexIsNil() predicate.PlaybookExecution {
	return predicate.PlaybookExecution(sql.FieldIsNull(FieldCurrentStepIndex))
}

// CurrentStepIndexNotNil applies the NotNil predicate on the "current_step_index" field.
func CurrentStepIndexNotNil() predicate.PlaybookExecution {
	return predicate.PlaybookExecution(sql.FieldNotNull(FieldCurrentStepIndex))
}

// TotalStepsEQ applies the EQ predicate on the "total_steps" field.
func TotalStepsEQ(v int) predicate.PlaybookExecution {
	return predicate.PlaybookExecution(sql.FieldEQ(FieldTotalSteps, v))
}

// TotalStepsNEQ applies the NEQ predicate on the "total_steps" field.
func TotalStepsNEQ(v int) predicate.PlaybookExecution {
	return predicate.PlaybookExecution(sql.FieldNEQ(FieldTotalSteps, v))
}

// TotalStepsIn applies the In predicate on the "total_steps" field.
func TotalStepsIn(vs ...int) predicate.PlaybookExecution {
	return predicate.PlaybookExecution(sql.FieldIn(FieldTotalSteps, vs...))
}

// TotalStepsNotIn applies the NotIn predicate on the "total_steps" field.
func TotalStepsNotIn(vs ...int) predicate.PlaybookExecution {
	return predicate.PlaybookExecution(sql.FieldNotIn(FieldTotalSteps, vs...))
}

// TotalStepsGT applies the GT predicate on the "total_steps" field.
func TotalStepsGT(v int) predicate.PlaybookExecution {
	return predicate.PlaybookExecution(sql.FieldGT(FieldTotalSteps, v))
}

// TotalStepsGTE applies the GTE predicate on the "total_steps" field.
func TotalStepsGTE(v int) predicate.PlaybookExecution {
	return predicate.PlaybookExecution(sql.FieldGTE(FieldTotalSteps, v))
}

// TotalStepsLT applies the LT predicate on the "total_steps" field.
func TotalStepsLT(v int) predicate.PlaybookExecution {
	return predicate.PlaybookExecution(sql.FieldLT(FieldTotalSteps, v))
}

// TotalStepsLTE applies the LTE predicate on the "total_steps" field.
func TotalStepsLTE(v int) predicate.PlaybookExecution {
	return predicate.PlaybookExecution(sql.FieldLTE(FieldTotalSteps, v))
}

// TotalStepsIsNil applies the IsNil predicate on the "total_steps" field.
func TotalStepsIsNil() predicate.PlaybookExecution {
	return predicate.PlaybookExecution(sql.FieldIsNull(FieldTotalSteps))
}

// TotalStepsNotNil applies the NotNil predicate on the "total_steps" field.
func TotalStepsNotNil() predicate.PlaybookExecution {
	return predicate.PlaybookExecution(sql.FieldNotNull(FieldTotalSteps))
}

// SnapshotIsNil applies the IsNil predicate on the "snapshot" field.
func SnapshotIsNil() predicate.PlaybookExecution {
	return predicate.PlaybookExecution(sql.FieldIsNull(FieldSnapshot))
}

// SnapshotNotNil applies the NotNil predicate on the "snapshot" field.
func SnapshotNotNil() predicate.PlaybookExecution {
	return predicate.PlaybookExecution(sql.FieldNotNull(FieldSnapshot))
}

// PhaseSummariesIsNil applies the IsNil predicate on the "phase_summaries" field.
func PhaseSummariesIsNil() predicate.PlaybookExecution {
	return predicate.PlaybookExecution(sql.FieldIsNull(FieldPhaseSummaries))
}

// PhaseSummariesNotNil applies the NotNil predicate on the "phase_summaries" field.
func PhaseSummariesNotNil() predicate.PlaybookExecution {
	return predicate.PlaybookExecution(sql.FieldNotNull(FieldPhaseSummaries))
}

// IntentIDEQ applies the EQ predicate on the "intent_id" field.
func IntentIDEQ(v string) predicate.PlaybookExecution {
	return predicate.PlaybookExecution(sql.FieldEQ(FieldIntentID, v))
}

// IntentIDNEQ applies the NEQ predicate on the "intent_id" field.
func IntentIDNEQ(v string) predicate.PlaybookExecution {
	return predicate.PlaybookExecution(sql.FieldNEQ(FieldIntentID, v))
}

// IntentIDIn applies the In predicate on the "intent_id" field.
func IntentIDIn(vs ...string) predicate.PlaybookExecution {
	return predicate.PlaybookExecution(sql.FieldIn(FieldIntentID, vs...))
}

// IntentIDNotIn applies the NotIn predicate on the "intent_id" field.
func IntentIDNotIn(vs ...string) predicate.PlaybookExecution {
	return predicate.PlaybookExecution(sql.FieldNotIn(FieldIntentID, vs...))
}

// IntentIDGT applies the GT predicate on the "intent_id" field.
func IntentIDGT(v string) predicate.PlaybookExecution {
	return predicate.PlaybookExecution(sql.FieldGT(FieldIntentID, v))
}

// IntentIDGTE applies the GTE predicate on the "intent_id" field.
func IntentIDGTE(v string) predicate.PlaybookExecution {
	return predicate.PlaybookExecution(sql.FieldGTE(FieldIntentID, v))
}

// IntentIDLT applies the LT predicate on the "intent_id" field.
func IntentIDLT(v string) predicate.PlaybookExecution {
	return predicate.PlaybookExecution(sql.FieldLT(FieldIntentID, v))
}

// IntentIDLTE applies the LTE predicate on the "intent_id" field.
func IntentIDLTE(v string) predicate.PlaybookExecution {
	return predicate.PlaybookExecution(sql.FieldLTE(FieldIntentID, v))
}

// IntentIDContains applies the Contains predicate on the "intent_id" field.
func IntentIDContains(v string) predicate.PlaybookExecution {
	return predicate.PlaybookExecution(sql.FieldContains(FieldIntentID, v))
}

// IntentIDHasPrefix applies the HasPrefix predicate on the "intent_id" field.
func IntentIDHasPrefix(v string) predicate.PlaybookExecution {
	return predicate.PlaybookExecution(sql.FieldHasPrefix(FieldIntentID, v))
}

// IntentIDHasSuffix applies the HasSuffix predicate on the "intent_id" field.
func IntentIDHasSuffix(v string) predicate.PlaybookExecution {
	return predicate.PlaybookExecution(sql.FieldHasSuffix(FieldIntentID, v))
}

// IntentIDIsNil applies the IsNil predicate on the "intent_id" field.
func IntentIDIsNil() predicate.PlaybookExecution {
	return predicate.PlaybookExecution(sql.FieldIsNull(FieldIntentID))
}

// IntentIDNotNil applies the NotNil predicate on the "intent_id" field.
func IntentIDNotNil() predicate.PlaybookExecution {
	return predicate.PlaybookExecution(sql.FieldNotNull(FieldIntentID))
}

// IntentIDEqualFold applies the EqualFold predicate on the "intent_id" field.
func IntentIDEqualFold(v string) predicate.PlaybookExecution {
	return predicate.PlaybookExecution(sql.FieldEqualFold(FieldIntentID, v))
}

// IntentIDContainsFold applies the ContainsFold predicate on the "intent_id" field.
func IntentIDContainsFold(v string) predicate.PlaybookExecution {
	return predicate.PlaybookExecution(sql.FieldContainsFold(FieldIntentID, v))
}

// FailureMetadataIsNil applies the IsNil predicate on the "failure_metadata" field.
func FailureMetadataIsNil() predicate.PlaybookExecution {
	return predicate.PlaybookExecution(sql.FieldIsNull(FieldFailureMetadata))
}

// FailureMetadataNotNil applies the NotNil predicate on the "failure_metadata" field.
func FailureMetadataNotNil() predicate.PlaybookExecution {
	return predicate.PlaybookExecution(sql.FieldNotNull(FieldFailureMetadata))
}

// SupportsResumeEQ applies the EQ predicate on the "supports_resume" field.
func SupportsResumeEQ(v bool) predicate.PlaybookExecution {
	return predicate.PlaybookExecution(sql.FieldEQ(FieldSupportsResume, v))
}

// SupportsResumeNEQ applies the NEQ predicate on the "supports_resume" field.
func SupportsResumeNEQ(v bool) predicate.PlaybookExecution {
	return predicate.PlaybookExecution(sql.FieldNEQ(FieldSupportsResume, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.PlaybookExecution {
	return predicate.PlaybookExecution(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.PlaybookExecution {
	return predicate.PlaybookExecution(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.PlaybookExecution {
	return predicate.PlaybookExecution(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.PlaybookExecution {
	return predicate.PlaybookExecution(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.PlaybookExecution {
	return predicate.PlaybookExecution(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.PlaybookExecution {
	return predicate.PlaybookExecution(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.PlaybookExecution {
	return predicate.PlaybookExecution(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.PlaybookExecution {
	return predicate.PlaybookExecution(sql.FieldLTE(FieldCreatedAt, v))
}

// UpdatedAtEQ applies the EQ predicate on the "updated_at" field.
func UpdatedAtEQ(v time.Time) predicate.PlaybookExecution {
	return predicate.PlaybookExecution(sql.FieldEQ(FieldUpdatedAt, v))
}

// UpdatedAtNEQ applies the NEQ predicate on the "updated_at" field.
func UpdatedAtNEQ(v time.Time) predicate.PlaybookExecution {
	return predicate.PlaybookExecution(sql.FieldNEQ(FieldUpdatedAt, v))
}

// UpdatedAtIn applies the In predicate on the "updated_at" field.
func UpdatedAtIn(vs ...time.Time) predicate.PlaybookExecution {
	return predicate.PlaybookExecution(sql.FieldIn(FieldUpdatedAt, vs...))
}

// UpdatedAtNotIn applies the NotIn predicate on the "updated_at" field.
func UpdatedAtNotIn(vs ...time.Time) predicate.PlaybookExecution {
	return predicate.PlaybookExecution(sql.FieldNotIn(FieldUpdatedAt, vs...))
}

// UpdatedAtGT applies the GT predicate on the "updated_at" field.
func UpdatedAtGT(v time.Time) predicate.PlaybookExecution {
	return predicate.PlaybookExecution(sql.FieldGT(FieldUpdatedAt, v))
}

// UpdatedAtGTE applies the GTE predicate on the "updated_at" field.
func UpdatedAtGTE(v time.Time) predicate.PlaybookExecution {
	return predicate.PlaybookExecution(sql.FieldGTE(FieldUpdatedAt, v))
}

// UpdatedAtLT applies the LT predicate on the "updated_at" field.
func UpdatedAtLT(v time.Time) predicate.PlaybookExecution {
	return predicate.PlaybookExecution(sql.FieldLT(FieldUpdatedAt, v))
}

// UpdatedAtLTE applies the LTE predicate on the "updated_at" field.
func UpdatedAtLTE(v time.Time) predicate.PlaybookExecution {
	return predicate.PlaybookExecution(sql.FieldLTE(FieldUpdatedAt, v))
}

// CompletedAtEQ applies the EQ predicate on the "completed_at" field.
func CompletedAtEQ(v time.Time) predicate.PlaybookExecution {
	return predicate.PlaybookExecution(sql.FieldEQ(FieldCompletedAt, v))
}

// CompletedAtNEQ applies the NEQ predicate on the "completed_at" field.
func CompletedAtNEQ(v time.Time) predicate.PlaybookExecution {
	return predicate.PlaybookExecution(sql.FieldNEQ(FieldCompletedAt, v))
}

// CompletedAtIn applies the In predicate on the "completed_at" field.
func CompletedAtIn(vs ...time.Time) predicate.PlaybookExecution {
	return predicate.PlaybookExecution(sql.FieldIn(FieldCompletedAt, vs...))
}

// CompletedAtNotIn applies the NotIn predicate on the "completed_at" field.
func CompletedAtNotIn(vs ...time.Time) predicate.PlaybookExecution {
	return predicate.PlaybookExecution(sql.FieldNotIn(FieldCompletedAt, vs...))
}

// CompletedAtGT applies the GT predicate on the "completed_at" field.
func CompletedAtGT(v time.Time) predicate.PlaybookExecution {
	return predicate.PlaybookExecution(sql.FieldGT(FieldCompletedAt, v))
}

// CompletedAtGTE applies the GTE predicate on the "completed_at" field.
func CompletedAtGTE(v time.Time) predicate.PlaybookExecution {
	return predicate.PlaybookExecution(sql.FieldGTE(FieldCompletedAt, v))
}

// CompletedAtLT applies the LT predicate on the "completed_at" field.
func CompletedAtLT(v time.Time) predicate.PlaybookExecution {
	return predicate.PlaybookExecution(sql.FieldLT(FieldCompletedAt, v))
}

// CompletedAtLTE applies the LTE predicate on the "completed_at" field.
func CompletedAtLTE(v time.Time) predicate.PlaybookExecution {
	return predicate.PlaybookExecution(sql.FieldLTE(FieldCompletedAt, v))
}

// CompletedAtIsNil applies the IsNil predicate on the "completed_at" field.
func CompletedAtIsNil() predicate.PlaybookExecution {
	return predicate.PlaybookExecution(sql.FieldIsNull(FieldCompletedAt))
}

// CompletedAtNotNil applies the NotNil predicate on the "completed_at" field.
func CompletedAtNotNil() predicate.PlaybookExecution {
	return predicate.PlaybookExecution(sql.FieldNotNull(FieldCompletedAt))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.PlaybookExecution) predicate.PlaybookExecution {
	return predicate.PlaybookExecution(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.PlaybookExecution) predicate.PlaybookExecution {
	return predicate.PlaybookExecution(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.PlaybookExecution) predicate.PlaybookExecution {
	return predicate.PlaybookExecution(sql.NotPredicates(p))
}
