// Code generated by ent, DO NOT EDIT.

package artifact

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/cortexops/playbookd/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id string) predicate.Artifact {
	return predicate.Artifact(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id string) predicate.Artifact {
	return predicate.Artifact(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id string) predicate.Artifact {
	return predicate.Artifact(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...string) predicate.Artifact {
	return predicate.Artifact(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...string) predicate.Artifact {
	return predicate.Artifact(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id string) predicate.Artifact {
	return predicate.Artifact(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id string) predicate.Artifact {
	return predicate.Artifact(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id string) predicate.Artifact {
	return predicate.Artifact(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id string) predicate.Artifact {
	return predicate.Artifact(sql.FieldLTE(FieldID, id))
}

// IDEqualFold applies the EqualFold predicate on the ID field.
func IDEqualFold(id string) predicate.Artifact {
	return predicate.Artifact(sql.FieldEqualFold(FieldID, id))
}

// IDContainsFold applies the ContainsFold predicate on the ID field.
func IDContainsFold(id string) predicate.Artifact {
	return predicate.Artifact(sql.FieldContainsFold(FieldID, id))
}

// WorkspaceID applies equality check predicate on the "workspace_id" field. It's identical to WorkspaceIDEQ.
func WorkspaceID(v string) predicate.Artifact {
	return predicate.Artifact(sql.FieldEQ(FieldWorkspaceID, v))
}

// IntentID applies equality check predicate on the "intent_id" field. It's identical to IntentIDEQ.
func IntentID(v string) predicate.Artifact {
	return predicate.Artifact(sql.FieldEQ(FieldIntentID, v))
}

// TaskID applies equality check predicate on the "task_id" field. It's identical to TaskIDEQ.
func TaskID(v string) predicate.Artifact {
	return predicate.Artifact(sql.FieldEQ(FieldTaskID, v))
}

// ExecutionID applies equality check predicate on the "execution_id" field. It's identical to ExecutionIDEQ.
func ExecutionID(v string) predicate.Artifact {
	return predicate.Artifact(sql.FieldEQ(FieldExecutionID, v))
}

// PlaybookCode applies equality check predicate on the "playbook_code" field. It's identical to PlaybookCodeEQ.
func PlaybookCode(v string) predicate.Artifact {
	return predicate.Artifact(sql.FieldEQ(FieldPlaybookCode, v))
}

// Title applies equality check predicate on the "title" field. It's identical to TitleEQ.
func Title(v string) predicate.Artifact {
	return predicate.Artifact(sql.FieldEQ(FieldTitle, v))
}

// Summary applies equality check predicate on the "summary" field. It's identical to SummaryEQ.
func Summary(v string) predicate.Artifact {
	return predicate.Artifact(sql.FieldEQ(FieldSummary, v))
}

// StorageRef applies equality check predicate on the "storage_ref" field. It's identical to StorageRefEQ.
func StorageRef(v string) predicate.Artifact {
	return predicate.Artifact(sql.FieldEQ(FieldStorageRef, v))
}

// Version applies equality check predicate on the "version" field. It's identical to VersionEQ.
func Version(v int) predicate.Artifact {
	return predicate.Artifact(sql.FieldEQ(FieldVersion, v))
}

// IsLatest applies equality check predicate on the "is_latest" field. It's identical to IsLatestEQ.
func IsLatest(v bool) predicate.Artifact {
	return predicate.Artifact(sql.FieldEQ(FieldIsLatest, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.Artifact {
	return predicate.Artifact(sql.FieldEQ(FieldCreatedAt, v))
}

// UpdatedAt applies equality check predicate on the "updated_at" field. It's identical to UpdatedAtEQ.
func UpdatedAt(v time.Time) predicate.Artifact {
	return predicate.Artifact(sql.FieldEQ(FieldUpdatedAt, v))
}

// WorkspaceIDEQ applies the EQ predicate on the "workspace_id" field.
func WorkspaceIDEQ(v string) predicate.Artifact {
	return predicate.Artifact(sql.FieldEQ(FieldWorkspaceID, v))
}

// WorkspaceIDNEQ applies the NEQ predicate on the "workspace_id" field.
func WorkspaceIDNEQ(v string) predicate.Artifact {
	return predicate.Artifact(sql.FieldNEQ(FieldWorkspaceID, v))
}

// WorkspaceIDIn applies the In predicate on the "workspace_id" field.
func WorkspaceIDIn(vs ...string) predicate.Artifact {
	return predicate.Artifact(sql.FieldIn(FieldWorkspaceID, vs...))
}

// WorkspaceIDNotIn applies the NotIn predicate on the "workspace_id" field.
func WorkspaceIDNotIn(vs ...string) predicate.Artifact {
	return predicate.Artifact(sql.FieldNotIn(FieldWorkspaceID, vs...))
}

// WorkspaceIDGT applies the GT predicate on the "workspace_id" field.
func WorkspaceIDGT(v string) predicate.Artifact {
	return predicate.Artifact(sql.FieldGT(FieldWorkspaceID, v))
}

// WorkspaceIDGTE applies the GTE predicate on the "workspace_id" field.
func WorkspaceIDGTE(v string) predicate.Artifact {
	return predicate.Artifact(sql.FieldGTE(FieldWorkspaceID, v))
}

// WorkspaceIDLT applies the LT predicate on the "workspace_id" field.
func WorkspaceIDLT(v string) predicate.Artifact {
	return predicate.Artifact(sql.FieldLT(FieldWorkspaceID, v))
}

// WorkspaceIDLTE applies the LTE predicate on the "workspace_id" field.
func WorkspaceIDLTE(v string) predicate.Artifact {
	return predicate.Artifact(sql.FieldLTE(FieldWorkspaceID, v))
}

// WorkspaceIDContains applies the Contains predicate on the "workspace_id" field.
func WorkspaceIDContains(v string) predicate.Artifact {
	return predicate.Artifact(sql.FieldContains(FieldWorkspaceID, v))
}

// WorkspaceIDHasPrefix applies the HasPrefix predicate on the "workspace_id" field.
func WorkspaceIDHasPrefix(v string) predicate.Artifact {
	return predicate.Artifact(sql.FieldHasPrefix(FieldWorkspaceID, v))
}

// WorkspaceIDHasSuffix applies the HasSuffix predicate on the "workspace_id" field.
func WorkspaceIDHasSuffix(v string) predicate.Artifact {
	return predicate.Artifact(sql.FieldHasSuffix(FieldWorkspaceID, v))
}

// WorkspaceIDEqualFold applies the EqualFold predicate on the "workspace_id" field.
func WorkspaceIDEqualFold(v string) predicate.Artifact {
	return predicate.Artifact(sql.FieldEqualFold(FieldWorkspaceID, v))
}

// WorkspaceIDContainsFold applies the ContainsFold predicate on the "workspace_id" field.
func WorkspaceIDContainsFold(v string) predicate.Artifact {
	return predicate.Artifact(sql.FieldContainsFold(FieldWorkspaceID, v))
}

// IntentIDEQ applies the EQ predicate on the "intent_id" field.
func IntentIDEQ(v string) predicate.Artifact {
	return predicate.Artifact(sql.FieldEQ(FieldIntentID, v))
}

// IntentIDNEQ applies the NEQ predicate on the "intent_id" field.
func IntentIDNEQ(v string) predicate.Artifact {
	return predicate.Artifact(sql.FieldNEQ(FieldIntentID, v))
}

// IntentIDIn applies the In predicate on the "intent_id" field.
func IntentIDIn(vs ...string) predicate.Artifact {
	return predicate.Artifact(sql.FieldIn(FieldIntentID, vs...))
}

// IntentIDNotIn applies the NotIn predicate on the "intent_id" field.
func IntentIDNotIn(vs ...string) predicate.Artifact {
	return predicate.Artifact(sql.FieldNotIn(FieldIntentID, vs...))
}

// IntentIDGT applies the GT predicate on the "intent_id" field.
func IntentIDGT(v string) predicate.Artifact {
	return predicate.Artifact(sql.FieldGT(FieldIntentID, v))
}

// IntentIDGTE applies the GTE predicate on the "intent_id" field.
func IntentIDGTE(v string) predicate.Artifact {
	return predicate.Artifact(sql.FieldGTE(FieldIntentID, v))
}

// IntentIDLT applies the LT predicate on the "intent_id" field.
func IntentIDLT(v string) predicate.Artifact {
	return predicate.Artifact(sql.FieldLT(FieldIntentID, v))
}

// IntentIDLTE applies the LTE predicate on the "intent_id" field.
func IntentIDLTE(v string) predicate.Artifact {
	return predicate.Artifact(sql.FieldLTE(FieldIntentID, v))
}

// IntentIDContains applies the Contains predicate on the "intent_id" field.
func IntentIDContains(v string) predicate.Artifact {
	return predicate.Artifact(sql.FieldContains(FieldIntentID, v))
}

// IntentIDHasPrefix applies the HasPrefix predicate on the "intent_id" field.
func IntentIDHasPrefix(v string) predicate.Artifact {
	return predicate.Artifact(sql.FieldHasPrefix(FieldIntentID, v))
}

// IntentIDHasSuffix applies the HasSuffix predicate on the "intent_id" field.
func IntentIDHasSuffix(v string) predicate.Artifact {
	return predicate.Artifact(sql.FieldHasSuffix(FieldIntentID, v))
}

// IntentIDIsNil applies the IsNil predicate on the "intent_id" field.
func IntentIDIsNil() predicate.Artifact {
	return predicate.Artifact(sql.FieldIsNull(FieldIntentID))
}

// IntentIDNotNil applies the NotNil predicate on the "intent_id" field.
func IntentIDNotNil() predicate.Artifact {
	return predicate.Artifact(sql.FieldNotNull(FieldIntentID))
}

// IntentIDEqualFold applies the EqualFold predicate on the "intent_id" field.
func IntentIDEqualFold(v string) predicate.Artifact {
	return predicate.Artifact(sql.FieldEqualFold(FieldIntentID, v))
}

// IntentIDContainsFold applies the ContainsFold predicate on the "intent_id" field.
func IntentIDContainsFold(v string) predicate.Artifact {
	return predicate.Artifact(sql.FieldContainsFold(FieldIntentID, v))
}

// TaskIDEQ applies the EQ predicate on the "task_id" field.
func TaskIDEQ(v string) predicate.Artifact {
	return predicate.Artifact(sql.FieldEQ(FieldTaskID, v))
}

// TaskIDNEQ applies the NEQ predicate on the "task_id" field.
func TaskIDNEQ(v string) predicate.Artifact {
	return predicate.Artifact(sql.FieldNEQ(FieldTaskID, v))
}

// TaskIDIn applies the In predicate on the "task_id" field.
func TaskIDIn(vs ...string) predicate.Artifact {
	return predicate.Artifact(sql.FieldIn(FieldTaskID, vs...))
}

// TaskIDNotIn applies the NotIn predicate on the "task_id" field.
func TaskIDNotIn(vs ...string) predicate.Artifact {
	return predicate.Artifact(sql.FieldNotIn(FieldTaskID, vs...))
}

// TaskIDGT applies the GT predicate on the "task_id" field.
func TaskIDGT(v string) predicate.Artifact {
	return predicate.Artifact(sql.FieldGT(FieldTaskID, v))
}

// TaskIDGTE applies the GTE predicate on the "task_id" field.
func TaskIDGTE(v string) predicate.Artifact {
	return predicate.Artifact(sql.FieldGTE(FieldTaskID, v))
}

// TaskIDLT applies the LT predicate on the "task_id" field.
func TaskIDLT(v string) predicate.Artifact {
	return predicate.Artifact(sql.FieldLT(FieldTaskID, v))
}

// TaskIDLTE applies the LTE predicate on the "task_id" field.
func TaskIDLTE(v string) predicate.Artifact {
	return predicate.Artifact(sql.FieldLTE(FieldTaskID, v))
}

// TaskIDContains applies the Contains predicate on the "task_id" field.
func TaskIDContains(v string) predicate.Artifact {
	return predicate.Artifact(sql.FieldContains(FieldTaskID, v))
}

// TaskIDHasPrefix applies the HasPrefix predicate on the "task_id" field.
func TaskIDHasPrefix(v string) predicate.Artifact {
	return predicate.Artifact(sql.FieldHasPrefix(FieldTaskID, v))
}

// TaskIDHasSuffix applies the HasSuffix predicate on the "task_id" field.
func TaskIDHasSuffix(v string) predicate.Artifact {
	return predicate.Artifact(sql.FieldHasSuffix(FieldTaskID, v))
}

// TaskIDIsNil applies the IsNil predicate on the "task_id" field.
func TaskIDIsNil() predicate.Artifact {
	return predicate.Artifact(sql.FieldIsNull(FieldTaskID))
}

// TaskIDNotNil applies the NotNil predicate on the "task_id" field.
func TaskIDNotNil() predicate.Artifact {
	return predicate.Artifact(sql.FieldNotNull(FieldTaskID))
}

// TaskIDEqualFold applies the EqualFold predicate on the "task_id" field.
func TaskIDEqualFold(v string) predicate.Artifact {
	return predicate.Artifact(sql.FieldEqualFold(FieldTaskID, v))
}

// TaskIDContainsFold applies the ContainsFold predicate on the "task_id" field.
func TaskIDContainsFold(v string) predicate.Artifact {
	return predicate.Artifact(sql.FieldContainsFold(FieldTaskID, v))
}

// ExecutionIDEQ applies the EQ predicate on the "execution_id" field.
func ExecutionIDEQ(v string) predicate.Artifact {
	return predicate.Artifact(sql.FieldEQ(FieldExecutionID, v))
}

// ExecutionIDNEQ applies the NEQ predicate on the "execution_id" field.
func ExecutionIDNEQ(v string) predicate.Artifact {
	return predicate.Artifact(sql.FieldNEQ(FieldExecutionID, v))
}

// ExecutionIDIn applies the In predicate on the "execution_id" field.
func ExecutionIDIn(vs ...string) predicate.Artifact {
	return predicate.Artifact(sql.FieldIn(FieldExecutionID, vs...))
}

// ExecutionIDNotIn applies the NotIn predicate on the "execution_id" field.
func ExecutionIDNotIn(vs ...string) predicate.Artifact {
	return predicate.Artifact(sql.FieldNotIn(FieldExecutionID, vs...))
}

// ExecutionIDGT applies the GT predicate on the "execution_id" field.
func ExecutionIDGT(v string) predicate.Artifact {
	return predicate.Artifact(sql.FieldGT(FieldExecutionID, v))
}

// ExecutionIDGTE applies the GTE predicate on the "execution_id" field.
func ExecutionIDGTE(v string) predicate.Artifact {
	return predicate.Artifact(sql.FieldGTE(FieldExecutionID, v))
}

// ExecutionIDLT applies the LT predicate on the "execution_id" field.
func ExecutionIDLT(v string) predicate.Artifact {
	return predicate.Artifact(sql.FieldLT(FieldExecutionID, v))
}

// ExecutionIDLTE applies the LTE predicate on the "execution_id" field.
func ExecutionIDLTE(v string) predicate.Artifact {
	return predicate.Artifact(sql.FieldLTE(FieldExecutionID, v))
}

// ExecutionIDContains applies the Contains predicate on the "execution_id" field.
func ExecutionIDContains(v string) predicate.Artifact {
	return predicate.Artifact(sql.FieldContains(FieldExecutionID, v))
}

// ExecutionIDHasPrefix applies the HasPrefix predicate on the "execution_id" field.
func ExecutionIDHasPrefix(v string) predicate.Artifact {
	return predicate.Artifact(sql.FieldHasPrefix(FieldExecutionID, v))
}

// ExecutionIDHasSuffix applies the HasSuffix predicate on the "execution_id" field.
func ExecutionIDHasSuffix(v string) predicate.Artifact {
	return predicate.Artifact(sql.FieldHasSuffix(FieldExecutionID, v))
}

// ExecutionIDEqualFold applies the EqualFold predicate on the "execution_id" field.
func ExecutionIDEqualFold(v string) predicate.Artifact {
	return predicate.Artifact(sql.FieldEqualFold(FieldExecutionID, v))
}

// ExecutionIDContainsFold applies the ContainsFold predicate on the "execution_id" field.
func ExecutionIDContainsFold(v string) predicate.Artifact {
	return predicate.Artifact(sql.FieldContainsFold(FieldExecutionID, v))
}

// PlaybookCodeEQ applies the EQ predicate on the "playbook_code" field.
func PlaybookCodeEQ(v string) predicate.Artifact {
	return predicate.Artifact(sql.FieldEQ(FieldPlaybookCode, v))
}

// PlaybookCodeNEQ applies the NEQ predicate on the "playbook_code" field.
func PlaybookCodeNEQ(v string) predicate.Artifact {
	return predicate.Artifact(sql.FieldNEQ(FieldPlaybookCode, v))
}

// PlaybookCodeIn applies the In predicate on the "playbook_code" field.
func PlaybookCodeIn(vs ...string) predicate.Artifact {
	return predicate.Artifact(sql.FieldIn(FieldPlaybookCode, vs...))
}

// PlaybookCodeNotIn applies the NotIn predicate on the "playbook_code" field.
func PlaybookCodeNotIn(vs ...string) predicate.Artifact {
	return predicate.Artifact(sql.FieldNotIn(FieldPlaybookCode, vs...))
}

// PlaybookCodeGT applies the GT predicate on the "playbook_code" field.
func PlaybookCodeGT(v string) predicate.Artifact {
	return predicate.Artifact(sql.FieldGT(FieldPlaybookCode, v))
}

// PlaybookCodeGTE applies the GTE predicate on the "playbook_code" field.
func PlaybookCodeGTE(v string) predicate.Artifact {
	return predicate.Artifact(sql.FieldGTE(FieldPlaybookCode, v))
}

// PlaybookCodeLT applies the LT predicate on the "playbook_code" field.
func PlaybookCodeLT(v string) predicate.Artifact {
	return predicate.Artifact(sql.FieldLT(FieldPlaybookCode, v))
}

// PlaybookCodeLTE applies the LTE predicate on the "playbook_code" field.
func PlaybookCodeLTE(v string) predicate.Artifact {
	return predicate.Artifact(sql.FieldLTE(FieldPlaybookCode, v))
}

// PlaybookCodeContains applies the Contains predicate on the "playbook_code" field.
func PlaybookCodeContains(v string) predicate.Artifact {
	return predicate.Artifact(sql.FieldContains(FieldPlaybookCode, v))
}

// PlaybookCodeHasPrefix applies the HasPrefix predicate on the "playbook_code" field.
func PlaybookCodeHasPrefix(v string) predicate.Artifact {
	return predicate.Artifact(sql.FieldHasPrefix(FieldPlaybookCode, v))
}

// PlaybookCodeHasSuffix applies the HasSuffix predicate on the "playbook_code" field.
func PlaybookCodeHasSuffix(v string) predicate.Artifact {
	return predicate.Artifact(sql.FieldHasSuffix(FieldPlaybookCode, v))
}

// PlaybookCodeEqualFold applies the EqualFold predicate on the "playbook_code" field.
func PlaybookCodeEqualFold(v string) predicate.Artifact {
	return predicate.Artifact(sql.FieldEqualFold(FieldPlaybookCode, v))
}

// PlaybookCodeContainsFold applies the ContainsFold predicate on the "playbook_code" field.
func PlaybookCodeContainsFold(v string) predicate.Artifact {
	return predicate.Artifact(sql.FieldContainsFold(FieldPlaybookCode, v))
}

// ArtifactTypeEQ applies the EQ predicate on the "artifact_type" field.
func ArtifactTypeEQ(v ArtifactType) predicate.Artifact {
	return predicate.Artifact(sql.FieldEQ(FieldArtifactType, v))
}

// ArtifactTypeNEQ applies the NEQ predicate on the "artifact_type" field.
func ArtifactTypeNEQ(v ArtifactType) predicate.Artifact {
	return predicate.Artifact(sql.FieldNEQ(FieldArtifactType, v))
}

// ArtifactTypeIn applies the In predicate on the "artifact_type" field.
func ArtifactTypeIn(vs ...ArtifactType) predicate.Artifact {
	return predicate.Artifact(sql.FieldIn(FieldArtifactType, vs...))
}

// ArtifactTypeNotIn applies the NotIn predicate on the "artifact_type" field.
func ArtifactTypeNotIn(vs ...ArtifactType) predicate.Artifact {
	return predicate.Artifact(sql.FieldNotIn(FieldArtifactType, vs...))
}

// TitleEQ applies the EQ predicate on the "title" field.
func TitleEQ(v string) predicate.Artifact {
	return predicate.Artifact(sql.FieldEQ(FieldTitle, v))
}

// TitleNEQ applies the NEQ predicate on the "title" field.
func TitleNEQ(v string) predicate.Artifact {
	return predicate.Artifact(sql.FieldNEQ(FieldTitle, v))
}

// TitleIn applies the In predicate on the "title" field.
func TitleIn(vs ...string) predicate.Artifact {
	return predicate.Artifact(sql.FieldIn(FieldTitle, vs...))
}

// TitleNotIn applies the NotIn predicate on the "title" field.
func TitleNotIn(vs ...string) predicate.Artifact {
	return predicate.Artifact(sql.FieldNotIn(FieldTitle, vs...))
}

// TitleGT applies the GT predicate on the "title" field.
func TitleGT(v string) predicate.Artifact {
	return predicate.Artifact(sql.FieldGT(FieldTitle, v))
}

// TitleGTE applies the GTE predicate on the "title" field.
func TitleGTE(v string) predicate.Artifact {
	return predicate.Artifact(sql.FieldGTE(FieldTitle, v))
}

// TitleLT applies the LT predicate on the "title" field.
func TitleLT(v string) predicate.Artifact {
	return predicate.Artifact(sql.FieldLT(FieldTitle, v))
}

// TitleLTE applies the LTE predicate on the "title" field.
func TitleLTE(v string) predicate.Artifact {
	return predicate.Artifact(sql.FieldLTE(FieldTitle, v))
}

// TitleContains applies the Contains predicate on the "title" field.
func TitleContains(v string) predicate.Artifact {
	return predicate.Artifact(sql.FieldContains(FieldTitle, v))
}

// TitleHasPrefix applies the HasPrefix predicate on the "title" field.
func TitleHasPrefix(v string) predicate.Artifact {
	return predicate.Artifact(sql.FieldHasPrefix(FieldTitle, v))
}

// TitleHasSuffix applies the HasSuffix predicate on the "title" field.
func TitleHasSuffix(v string) predicate.Artifact {
	return predicate.Artifact(sql.FieldHasSuffix(FieldTitle, v))
}

// TitleEqualFold applies the EqualFold predicate on the "title" field.
func TitleEqualFold(v string) predicate.Artifact {
	return predicate.Artifact(sql.FieldEqualFold(FieldTitle, v))
}

// TitleContainsFold applies the ContainsFold predicate on the "title" field.
func TitleContainsFold(v string) predicate.Artifact {
	return predicate.Artifact(sql.FieldContainsFold(FieldTitle, v))
}

// SummaryEQ applies the EQ predicate on the "summary" field.
func SummaryEQ(v string) predicate.Artifact {
	return predicate.Artifact(sql.FieldEQ(FieldSummary, v))
}

// SummaryNEQ applies the NEQ predicate on the "summary" field.
func SummaryNEQ(v string) predicate.Artifact {
	return predicate.Artifact(sql.FieldNEQ(FieldSummary, v))
}

// SummaryIn applies the In predicate on the "summary" field.
func SummaryIn(vs ...string) predicate.Artifact {
	return predicate.Artifact(sql.FieldIn(FieldSummary, vs...))
}

// SummaryNotIn applies the NotIn predicate on the "summary" field.
func SummaryNotIn(vs ...string) predicate.Artifact {
	return predicate.Artifact(sql.FieldNotIn(FieldSummary, vs...))
}

// SummaryGT applies the GT predicate on the "summary" field.
func SummaryGT(v string) predicate.Artifact {
	return predicate.Artifact(sql.FieldGT(FieldSummary, v))
}

// SummaryGTE applies the GTE predicate on the "summary" field.
func SummaryGTE(v string) predicate.Artifact {
	return predicate.Artifact(sql.FieldGTE(FieldSummary, v))
}

// SummaryLT applies the LT predicate on the "summary" field.
func SummaryLT(v string) predicate.Artifact {
	return predicate.Artifact(sql.FieldLT(FieldSummary, v))
}

// SummaryLTE applies the LTE predicate on the "summary" field.
func SummaryLTE(v string) predicate.Artifact {
	return predicate.Artifact(sql.FieldLTE(FieldSummary, v))
}

// SummaryContains applies the Contains predicate on the "summary" field.
func SummaryContains(v string) predicate.Artifact {
	return predicate.Artifact(sql.FieldContains(FieldSummary, v))
}

// SummaryHasPrefix applies the HasPrefix predicate on the "summary" field.
func SummaryHasPrefix(v string) predicate.Artifact {
	return predicate.Artifact(sql.FieldHasPrefix(FieldSummary, v))
}

// SummaryHasSuffix applies the HasSuffix predicate on the "summary" field.
func SummaryHasSuffix(v string) predicate.Artifact {
	return predicate.Artifact(sql.FieldHasSuffix(FieldSummary, v))
}

// SummaryIsNil applies the IsNil predicate on the "summary" field.
func SummaryIsNil() predicate.Artifact {
	return predicate.Artifact(sql.FieldIsNull(FieldSummary))
}

// SummaryNotNil applies the NotNil predicate on the "summary" field.
func SummaryNotNil() predicate.Artifact {
	return predicate.Artifact(sql.FieldNotNull(FieldSummary))
}

// SummaryEqualFold applies the EqualFold predicate on the "summary" field.
func SummaryEqualFold(v string) predicate.Artifact {
	return predicate.Artifact(sql.FieldEqualFold(FieldSummary, v))
}

// SummaryContainsFold applies the ContainsFold predicate on the "summary" field.
func SummaryContainsFold(v string) predicate.Artifact {
	return predicate.Artifact(sql.FieldContainsFold(FieldSummary, v))
}

// ContentIsNil applies the IsNil predicate on the "content" field.
func ContentIsNil() predicate.Artifact {
	return predicate.Artifact(sql.FieldIsNull(FieldContent))
}

// ContentNotNil applies the NotNil predicate on the "content" field.
func ContentNotNil() predicate.Artifact {
	return predicate.Artifact(sql.FieldNotNull(FieldContent))
}

// StorageRefEQ applies the EQ predicate on the "storage_ref" field.
func StorageRefEQ(v string) predicate.Artifact {
	return predicate.Artifact(sql.FieldEQ(FieldStorageRef, v))
}

// StorageRefNEQ applies the NEQ predicate on the "storage_ref" field.
func StorageRefNEQ(v string) predicate.Artifact {
	return predicate.Artifact(sql.FieldNEQ(FieldStorageRef, v))
}

// StorageRefIn applies the In predicate on the "storage_ref" field.
func StorageRefIn(vs ...string) predicate.Artifact {
	return predicate.Artifact(sql.FieldIn(FieldStorageRef, vs...))
}

// StorageRefNotIn applies the NotIn predicate on the "storage_ref" field.
func StorageRefNotIn(vs ...string) predicate.Artifact {
	return predicate.Artifact(sql.FieldNotIn(FieldStorageRef, vs...))
}

// StorageRefGT applies the GT predicate on the "storage_ref" field.
func StorageRefGT(v string) predicate.Artifact {
	return predicate.Artifact(sql.FieldGT(FieldStorageRef, v))
}

// StorageRefGTE applies the GTE predicate on the "storage_ref" field.
func StorageRefGTE(v string) predicate.Artifact {
	return predicate.Artifact(sql.FieldGTE(FieldStorageRef, v))
}

// StorageRefLT applies the LT predicate on the "storage_ref" field.
func StorageRefLT(v string) predicate.Artifact {
	return predicate.Artifact(sql.FieldLT(FieldStorageRef, v))
}

// StorageRefLTE applies the LTE predicate on the "storage_ref" field.
func StorageRefLTE(v string) predicate.Artifact {
	return predicate.Artifact(sql.FieldLTE(FieldStorageRef, v))
}

// StorageRefContains applies the Contains predicate on the "storage_ref" field.
func StorageRefContains(v string) predicate.Artifact {
	return predicate.Artifact(sql.FieldContains(FieldStorageRef, v))
}

// StorageRefHasPrefix applies the HasPrefix predicate on the "storage_ref" field.
func StorageRefHasPrefix(v string) predicate.Artifact {
	return predicate.Artifact(sql.FieldHasPrefix(FieldStorageRef, v))
}

// StorageRefHasSuffix applies the HasSuffix predicate on the "storage_ref" field.
func StorageRefHasSuffix(v string) predicate.Artifact {
	return predicate.Artifact(sql.FieldHasSuffix(FieldStorageRef, v))
}

// StorageRefIsNil applies the IsNil predicate on the "storage_ref" field.
func StorageRefIsNil() predicate.Artifact {
	return predicate.Artifact(sql.FieldIsNull(FieldStorageRef))
}

// StorageRefNotNil applies the NotNil predicate on the "storage_ref" field.
func StorageRefNotNil() predicate.Artifact {
	return predicate.Artifact(sql.FieldNotNull(FieldStorageRef))
}

// StorageRefEqualFold applies the EqualFold predicate on the "storage_ref" field.
func StorageRefEqualFold(v string) predicate.Artifact {
	return predicate.Artifact(sql.FieldEqualFold(FieldStorageRef, v))
}

// StorageRefContainsFold applies the ContainsFold predicate on the "storage_ref" field.
func StorageRefContainsFold(v string) predicate.Artifact {
	return predicate.Artifact(sql.FieldContainsFold(FieldStorageRef, v))
}

// SyncStateEQ applies the EQ predicate on the "sync_state" field.
func SyncStateEQ(v SyncState) predicate.Artifact {
	return predicate.Artifact(sql.FieldEQ(FieldSyncState, v))
}

// SyncStateNEQ applies the NEQ predicate on the "sync_state" field.
func SyncStateNEQ(v SyncState) predicate.Artifact {
	return predicate.Artifact(sql.FieldNEQ(FieldSyncState, v))
}

// SyncStateIn applies the In predicate on the "sync_state" field.
func SyncStateIn(vs ...SyncState) predicate.Artifact {
	return predicate.Artifact(sql.FieldIn(FieldSyncState, vs...))
}

// SyncStateNotIn applies the NotIn predicate on the "sync_state" field.
func SyncStateNotIn(vs ...SyncState) predicate.Artifact {
	return predicate.Artifact(sql.FieldNotIn(FieldSyncState, vs...))
}

// SyncStateIsNil applies the IsNil predicate on the "sync_state" field.
func SyncStateIsNil() predicate.Artifact {
	return predicate.Artifact(sql.FieldIsNull(FieldSyncState))
}

// SyncStateNotNil applies the NotNil predicate on the "sync_state" field.
func SyncStateNotNil() predicate.Artifact {
	return predicate.Artifact(sql.FieldNotNull(FieldSyncState))
}

// PrimaryActionTypeEQ applies the EQ predicate on the "primary_action_type" field.
func PrimaryActionTypeEQ(v PrimaryActionType) predicate.Artifact {
	return predicate.Artifact(sql.FieldEQ(FieldPrimaryActionType, v))
}

// PrimaryActionTypeNEQ applies the NEQ predicate on the "primary_action_type" field.
func PrimaryActionTypeNEQ(v PrimaryActionType) predicate.Artifact {
	return predicate.Artifact(sql.FieldNEQ(FieldPrimaryActionType, v))
}

// PrimaryActionTypeIn applies the In predicate on the "primary_action_type" field.
func PrimaryActionTypeIn(vs ...PrimaryActionType) predicate.Artifact {
	return predicate.Artifact(sql.FieldIn(FieldPrimaryActionType, vs...))
}

// PrimaryActionTypeNotIn applies the NotIn predicate on the "primary_action_type" field.
func PrimaryActionTypeNotIn(vs ...PrimaryActionType) predicate.Artifact {
	return predicate.Artifact(sql.FieldNotIn(FieldPrimaryActionType, vs...))
}

// VersionEQ applies the EQ predicate on the "version" field.
func VersionEQ(v int) predicate.Artifact {
	return predicate.Artifact(sql.FieldEQ(FieldVersion, v))
}

// VersionNEQ applies the NEQ predicate on the "version" field.
func VersionNEQ(v int) predicate.Artifact {
	return predicate.Artifact(sql.FieldNEQ(FieldVersion, v))
}

// VersionIn applies the In predicate on the "version" field.
func VersionIn(vs ...int) predicate.Artifact {
	return predicate.Artifact(sql.FieldIn(FieldVersion, vs...))
}

// VersionNotIn applies the NotIn predicate on the "version" field.
func VersionNotIn(vs ...int) predicate.Artifact {
	return predicate.Artifact(sql.FieldNotIn(FieldVersion, vs...))
}

// VersionGT applies the GT predicate on the "version" field.
func VersionGT(v int) predicate.Artifact {
	return predicate.Artifact(sql.FieldGT(FieldVersion, v))
}

// VersionGTE applies the GTE predicate on the "version" field.
func VersionGTE(v int) predicate.Artifact {
	return predicate.Artifact(sql.FieldGTE(FieldVersion, v))
}

// VersionLT applies the LT predicate on the "version" field.
func VersionLT(v int) predicate.Artifact {
	return predicate.Artifact(sql.FieldLT(FieldVersion, v))
}

// VersionLTE applies the LTE predicate on the "version" field.
func VersionLTE(v int) predicate.Artifact {
	return predicate.Artifact(sql.FieldLTE(FieldVersion, v))
}

// IsLatestEQ applies the EQ predicate on the "is_latest" field.
func IsLatestEQ(v bool) predicate.Artifact {
	return predicate.Artifact(sql.FieldEQ(FieldIsLatest, v))
}

// IsLatestNEQ applies the NEQ predicate on the "is_latest" field.
func IsLatestNEQ(v bool) predicate.Artifact {
	return predicate.Artifact(sql.FieldNEQ(FieldIsLatest, v))
}

// MetadataIsNil applies the IsNil predicate on the "metadata" field.
func MetadataIsNil() predicate.Artifact {
	return predicate.Artifact(sql.FieldIsNull(FieldMetadata))
}

// MetadataNotNil applies the NotNil predicate on the "metadata" field.
func MetadataNotNil() predicate.Artifact {
	return predicate.Artifact(sql.FieldNotNull(FieldMetadata))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.Artifact {
	return predicate.Artifact(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.Artifact {
	return predicate.Artifact(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.Artifact {
	return predicate.Artifact(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.Artifact {
	return predicate.Artifact(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.Artifact {
	return predicate.Artifact(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.Artifact {
	return predicate.Artifact(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.Artifact {
	return predicate.Artifact(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.Artifact {
	return predicate.Artifact(sql.FieldLTE(FieldCreatedAt, v))
}

// UpdatedAtEQ applies the EQ predicate on the "updated_at" field.
func UpdatedAtEQ(v time.Time) predicate.Artifact {
	return predicate.Artifact(sql.FieldEQ(FieldUpdatedAt, v))
}

// UpdatedAtNEQ applies the NEQ predicate on the "updated_at" field.
func UpdatedAtNEQ(v time.Time) predicate.Artifact {
	return predicate.Artifact(sql.FieldNEQ(FieldUpdatedAt, v))
}

// UpdatedAtIn applies the In predicate on the "updated_at" field.
func UpdatedAtIn(vs ...time.Time) predicate.Artifact {
	return predicate.Artifact(sql.FieldIn(FieldUpdatedAt, vs...))
}

// UpdatedAtNotIn applies the NotIn predicate on the "updated_at" field.
func UpdatedAtNotIn(vs ...time.Time) predicate.Artifact {
	return predicate.Artifact(sql.FieldNotIn(FieldUpdatedAt, vs...))
}

// UpdatedAtGT applies the GT predicate on the "updated_at" field.
func UpdatedAtGT(v time.Time) predicate.Artifact {
	return predicate.Artifact(sql.FieldGT(FieldUpdatedAt, v))
}

// UpdatedAtGTE applies the GTE predicate on the "updated_at" field.
func UpdatedAtGTE(v time.Time) predicate.Artifact {
	return predicate.Artifact(sql.FieldGTE(FieldUpdatedAt, v))
}

// UpdatedAtLT applies the LT predicate on the "updated_at" field.
func UpdatedAtLT(v time.Time) predicate.Artifact {
	return predicate.Artifact(sql.FieldLT(FieldUpdatedAt, v))
}

// UpdatedAtLTE applies the LTE predicate on the "updated_at" field.
func UpdatedAtLTE(v time.Time) predicate.Artifact {
	return predicate.Artifact(sql.FieldLTE(FieldUpdatedAt, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.Artifact) predicate.Artifact {
	return predicate.Artifact(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.Artifact) predicate.Artifact {
	return predicate.Artifact(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.Artifact) predicate.Artifact {
	return predicate.Artifact(sql.NotPredicates(p))
}
