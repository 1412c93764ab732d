// Code generated by ent, DO NOT EDIT.

package stageresult

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/cortexops/playbookd/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id string) predicate.StageResult {
	return predicate.StageResult(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id string) predicate.StageResult {
	return predicate.StageResult(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id string) predicate.StageResult {
	return predicate.StageResult(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...string) predicate.StageResult {
	return predicate.StageResult(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...string) predicate.StageResult {
	return predicate.StageResult(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id string) predicate.StageResult {
	return predicate.StageResult(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id string) predicate.StageResult {
	return predicate.StageResult(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id string) predicate.StageResult {
	return predicate.StageResult(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id string) predicate.StageResult {
	return predicate.StageResult(sql.FieldLTE(FieldID, id))
}

// IDEqualFold applies the EqualFold predicate on the ID field.
func IDEqualFold(id string) predicate.StageResult {
	return predicate.StageResult(sql.FieldEqualFold(FieldID, id))
}

// IDContainsFold applies the ContainsFold predicate on the ID field.
func IDContainsFold(id string) predicate.StageResult {
	return predicate.StageResult(sql.FieldContainsFold(FieldID, id))
}

// ExecutionID applies equality check predicate on the "execution_id" field. It's identical to ExecutionIDEQ.
func ExecutionID(v string) predicate.StageResult {
	return predicate.StageResult(sql.FieldEQ(FieldExecutionID, v))
}

// StepID applies equality check predicate on the "step_id" field. It's identical to StepIDEQ.
func StepID(v string) predicate.StageResult {
	return predicate.StageResult(sql.FieldEQ(FieldStepID, v))
}

// StageName applies equality check predicate on the "stage_name" field. It's identical to StageNameEQ.
func StageName(v string) predicate.StageResult {
	return predicate.StageResult(sql.FieldEQ(FieldStageName, v))
}

// Preview applies equality check predicate on the "preview" field. It's identical to PreviewEQ.
func Preview(v string) predicate.StageResult {
	return predicate.StageResult(sql.FieldEQ(FieldPreview, v))
}

// RequiresReview applies equality check predicate on the "requires_review" field. It's identical to RequiresReviewEQ.
func RequiresReview(v bool) predicate.StageResult {
	return predicate.StageResult(sql.FieldEQ(FieldRequiresReview, v))
}

// ArtifactID applies equality check predicate on the "artifact_id" field. It's identical to ArtifactIDEQ.
func ArtifactID(v string) predicate.StageResult {
	return predicate.StageResult(sql.FieldEQ(FieldArtifactID, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.StageResult {
	return predicate.StageResult(sql.FieldEQ(FieldCreatedAt, v))
}

// ExecutionIDEQ applies the EQ predicate on the "execution_id" field.
func ExecutionIDEQ(v string) predicate.StageResult {
	return predicate.StageResult(sql.FieldEQ(FieldExecutionID, v))
}

// ExecutionIDNEQ applies the NEQ predicate on the "execution_id" field.
func ExecutionIDNEQ(v string) predicate.StageResult {
	return predicate.StageResult(sql.FieldNEQ(FieldExecutionID, v))
}

// ExecutionIDIn applies the In predicate on the "execution_id" field.
func ExecutionIDIn(vs ...string) predicate.StageResult {
	return predicate.StageResult(sql.FieldIn(FieldExecutionID, vs...))
}

// ExecutionIDNotIn applies the NotIn predicate on the "execution_id" field.
func ExecutionIDNotIn(vs ...string) predicate.StageResult {
	return predicate.StageResult(sql.FieldNotIn(FieldExecutionID, vs...))
}

// ExecutionIDGT applies the GT predicate on the "execution_id" field.
func ExecutionIDGT(v string) predicate.StageResult {
	return predicate.StageResult(sql.FieldGT(FieldExecutionID, v))
}

// ExecutionIDGTE applies the GTE predicate on the "execution_id" field.
func ExecutionIDGTE(v string) predicate.StageResult {
	return predicate.StageResult(sql.FieldGTE(FieldExecutionID, v))
}

// ExecutionIDLT applies the LT predicate on the "execution_id" field.
func ExecutionIDLT(v string) predicate.StageResult {
	return predicate.StageResult(sql.FieldLT(FieldExecutionID, v))
}

// ExecutionIDLTE applies the LTE predicate on the "execution_id" field.
func ExecutionIDLTE(v string) predicate.StageResult {
	return predicate.StageResult(sql.FieldLTE(FieldExecutionID, v))
}

// ExecutionIDContains applies the Contains predicate on the "execution_id" field.
func ExecutionIDContains(v string) predicate.StageResult {
	return predicate.StageResult(sql.FieldContains(FieldExecutionID, v))
}

// ExecutionIDHasPrefix applies the HasPrefix predicate on the "execution_id" field.
func ExecutionIDHasPrefix(v string) predicate.StageResult {
	return predicate.StageResult(sql.FieldHasPrefix(FieldExecutionID, v))
}

// ExecutionIDHasSuffix applies the HasSuffix predicate on the "execution_id" field.
func ExecutionIDHasSuffix(v string) predicate.StageResult {
	return predicate.StageResult(sql.FieldHasSuffix(FieldExecutionID, v))
}

// ExecutionIDEqualFold applies the EqualFold predicate on the "execution_id" field.
func ExecutionIDEqualFold(v string) predicate.StageResult {
	return predicate.StageResult(sql.FieldEqualFold(FieldExecutionID, v))
}

// ExecutionIDContainsFold applies the ContainsFold predicate on the "execution_id" field.
func ExecutionIDContainsFold(v string) predicate.StageResult {
	return predicate.StageResult(sql.FieldContainsFold(FieldExecutionID, v))
}

// StepIDEQ applies the EQ predicate on the "step_id" field.
func StepIDEQ(v string) predicate.StageResult {
	return predicate.StageResult(sql.FieldEQ(FieldStepID, v))
}

// StepIDNEQ applies the NEQ predicate on the "step_id" field.
func StepIDNEQ(v string) predicate.StageResult {
	return predicate.StageResult(sql.FieldNEQ(FieldStepID, v))
}

// StepIDIn applies the In predicate on the "step_id" field.
func StepIDIn(vs ...string) predicate.StageResult {
	return predicate.StageResult(sql.FieldIn(FieldStepID, vs...))
}

// StepIDNotIn applies the NotIn predicate on the "step_id" field.
func StepIDNotIn(vs ...string) predicate.StageResult {
	return predicate.StageResult(sql.FieldNotIn(FieldStepID, vs...))
}

// StepIDGT applies the GT predicate on the "step_id" field.
func StepIDGT(v string) predicate.StageResult {
	return predicate.StageResult(sql.FieldGT(FieldStepID, v))
}

// StepIDGTE applies the GTE predicate on the "step_id" field.
func StepIDGTE(v string) predicate.StageResult {
	return predicate.StageResult(sql.FieldGTE(FieldStepID, v))
}

// StepIDLT applies the LT predicate on the "step_id" field.
func StepIDLT(v string) predicate.StageResult {
	return predicate.StageResult(sql.FieldLT(FieldStepID, v))
}

// StepIDLTE applies the LTE predicate on the "step_id" field.
func StepIDLTE(v string) predicate.StageResult {
	return predicate.StageResult(sql.FieldLTE(FieldStepID, v))
}

// StepIDContains applies the Contains predicate on the "step_id" field.
func StepIDContains(v string) predicate.StageResult {
	return predicate.StageResult(sql.FieldContains(FieldStepID, v))
}

// StepIDHasPrefix applies the HasPrefix predicate on the "step_id" field.
func StepIDHasPrefix(v string) predicate.StageResult {
	return predicate.StageResult(sql.FieldHasPrefix(FieldStepID, v))
}

// StepIDHasSuffix applies the HasSuffix predicate on the "step_id" field.
func StepIDHasSuffix(v string) predicate.StageResult {
	return predicate.StageResult(sql.FieldHasSuffix(FieldStepID, v))
}

// StepIDIsNil applies the IsNil predicate on the "step_id" field.
func StepIDIsNil() predicate.StageResult {
	return predicate.StageResult(sql.FieldIsNull(FieldStepID))
}

// StepIDNotNil applies the NotNil predicate on the "step_id" field.
func StepIDNotNil() predicate.StageResult {
	return predicate.StageResult(sql.FieldNotNull(FieldStepID))
}

// StepIDEqualFold applies the EqualFold predicate on the "step_id" field.
func StepIDEqualFold(v string) predicate.StageResult {
	return predicate.StageResult(sql.FieldEqualFold(FieldStepID, v))
}

// StepIDContainsFold applies the ContainsFold predicate on the "step_id" field.
func StepIDContainsFold(v string) predicate.StageResult {
	return predicate.StageResult(sql.FieldContainsFold(FieldStepID, v))
}

// StageNameEQ applies the EQ predicate on the "stage_name" field.
func StageNameEQ(v string) predicate.StageResult {
	return predicate.StageResult(sql.FieldEQ(FieldStageName, v))
}

// StageNameNEQ applies the NEQ predicate on the "stage_name" field.
func StageNameNEQ(v string) predicate.StageResult {
	return predicate.StageResult(sql.FieldNEQ(FieldStageName, v))
}

// StageNameIn applies the In predicate on the "stage_name" field.
func StageNameIn(vs ...string) predicate.StageResult {
	return predicate.StageResult(sql.FieldIn(FieldStageName, vs...))
}

// StageNameNotIn applies the NotIn predicate on the "stage_name" field.
func StageNameNotIn(vs ...string) predicate.StageResult {
	return predicate.StageResult(sql.FieldNotIn(FieldStageName, vs...))
}

// StageNameGT applies the GT predicate on the "stage_name" field.
func StageNameGT(v string) predicate.StageResult {
	return predicate.StageResult(sql.FieldGT(FieldStageName, v))
}

// StageNameGTE applies the GTE predicate on the "stage_name" field.
func StageNameGTE(v string) predicate.StageResult {
	return predicate.StageResult(sql.FieldGTE(FieldStageName, v))
}

// StageNameLT applies the LT predicate on the "stage_name" field.
func StageNameLT(v string) predicate.StageResult {
	return predicate.StageResult(sql.FieldLT(FieldStageName, v))
}

// StageNameLTE applies the LTE predicate on the "stage_name" field.
func StageNameLTE(v string) predicate.StageResult {
	return predicate.StageResult(sql.FieldLTE(FieldStageName, v))
}

// StageNameContains applies the Contains predicate on the "stage_name" field.
func StageNameContains(v string) predicate.StageResult {
	return predicate.StageResult(sql.FieldContains(FieldStageName, v))
}

// StageNameHasPrefix applies the HasPrefix predicate on the "stage_name" field.
func StageNameHasPrefix(v string) predicate.StageResult {
	return predicate.StageResult(sql.FieldHasPrefix(FieldStageName, v))
}

// StageNameHasSuffix applies the HasSuffix predicate on the "stage_name" field.
func StageNameHasSuffix(v string) predicate.StageResult {
	return predicate.StageResult(sql.FieldHasSuffix(FieldStageName, v))
}

// StageNameEqualFold applies the EqualFold predicate on the "stage_name" field.
func StageNameEqualFold(v string) predicate.StageResult {
	return predicate.StageResult(sql.FieldEqualFold(FieldStageName, v))
}

// StageNameContainsFold applies the ContainsFold predicate on the "stage_name" field.
func StageNameContainsFold(v string) predicate.StageResult {
	return predicate.StageResult(sql.FieldContainsFold(FieldStageName, v))
}

// ResultTypeEQ applies the EQ predicate on the "result_type" field.
func ResultTypeEQ(v ResultType) predicate.StageResult {
	return predicate.StageResult(sql.FieldEQ(FieldResultType, v))
}

// ResultTypeNEQ applies the NEQ predicate on the "result_type" field.
func ResultTypeNEQ(v ResultType) predicate.StageResult {
	return predicate.StageResult(sql.FieldNEQ(FieldResultType, v))
}

// ResultTypeIn applies the In predicate on the "result_type" field.
func ResultTypeIn(vs ...ResultType) predicate.StageResult {
	return predicate.StageResult(sql.FieldIn(FieldResultType, vs...))
}

// ResultTypeNotIn applies the NotIn predicate on the "result_type" field.
func ResultTypeNotIn(vs ...ResultType) predicate.StageResult {
	return predicate.StageResult(sql.FieldNotIn(FieldResultType, vs...))
}

// ContentIsNil applies the IsNil predicate on the "content" field.
func ContentIsNil() predicate.StageResult {
	return predicate.StageResult(sql.FieldIsNull(FieldContent))
}

// ContentNotNil applies the NotNil predicate on the "content" field.
func ContentNotNil() predicate.StageResult {
	return predicate.StageResult(sql.FieldNotNull(FieldContent))
}

// PreviewEQ applies the EQ predicate on the "preview" field.
func PreviewEQ(v string) predicate.StageResult {
	return predicate.StageResult(sql.FieldEQ(FieldPreview, v))
}

// PreviewNEQ applies the NEQ predicate on the "preview" field.
func PreviewNEQ(v string) predicate.StageResult {
	return predicate.StageResult(sql.FieldNEQ(FieldPreview, v))
}

// PreviewIn applies the In predicate on the "preview" field.
func PreviewIn(vs ...string) predicate.StageResult {
	return predicate.StageResult(sql.FieldIn(FieldPreview, vs...))
}

// PreviewNotIn applies the NotIn predicate on the "preview" field.
func PreviewNotIn(vs ...string) predicate.StageResult {
	return predicate.StageResult(sql.FieldNotIn(FieldPreview, vs...))
}

// PreviewGT applies the GT predicate on the "preview" field.
func PreviewGT(v string) predicate.StageResult {
	return predicate.StageResult(sql.FieldGT(FieldPreview, v))
}

// PreviewGTE applies the GTE predicate on the "preview" field.
func PreviewGTE(v string) predicate.StageResult {
	return predicate.StageResult(sql.FieldGTE(FieldPreview, v))
}

// PreviewLT applies the LT predicate on the "preview" field.
func PreviewLT(v string) predicate.StageResult {
	return predicate.StageResult(sql.FieldLT(FieldPreview, v))
}

// PreviewLTE applies the LTE predicate on the "preview" field.
func PreviewLTE(v string) predicate.StageResult {
	return predicate.StageResult(sql.FieldLTE(FieldPreview, v))
}

// PreviewContains applies the Contains predicate on the "preview" field.
func PreviewContains(v string) predicate.StageResult {
	return predicate.StageResult(sql.FieldContains(FieldPreview, v))
}

// PreviewHasPrefix applies the HasPrefix predicate on the "preview" field.
func PreviewHasPrefix(v string) predicate.StageResult {
	return predicate.StageResult(sql.FieldHasPrefix(FieldPreview, v))
}

// PreviewHasSuffix applies the HasSuffix predicate on the "preview" field.
func PreviewHasSuffix(v string) predicate.StageResult {
	return predicate.StageResult(sql.FieldHasSuffix(FieldPreview, v))
}

// PreviewIsNil applies the IsNil predicate on the "preview" field.
func PreviewIsNil() predicate.StageResult {
	return predicate.StageResult(sql.FieldIsNull(FieldPreview))
}

// PreviewNotNil applies the NotNil predicate on the "preview" field.
func PreviewNotNil() predicate.StageResult {
	return predicate.StageResult(sql.FieldNotNull(FieldPreview))
}

// PreviewEqualFold applies the EqualFold predicate on the "preview" field.
func PreviewEqualFold(v string) predicate.StageResult {
	return predicate.StageResult(sql.FieldEqualFold(FieldPreview, v))
}

// PreviewContainsFold applies the ContainsFold predicate on the "preview" field.
func PreviewContainsFold(v string) predicate.StageResult {
	return predicate.StageResult(sql.FieldContainsFold(FieldPreview, v))
}

// RequiresReviewEQ applies the EQ predicate on the "requires_review" field.
func RequiresReviewEQ(v bool) predicate.StageResult {
	return predicate.StageResult(sql.FieldEQ(FieldRequiresReview, v))
}

// RequiresReviewNEQ applies the NEQ predicate on the "requires_review" field.
func RequiresReviewNEQ(v bool) predicate.StageResult {
	return predicate.StageResult(sql.FieldNEQ(FieldRequiresReview, v))
}

// ReviewStatusEQ applies the EQ predicate on the "review_status" field.
func ReviewStatusEQ(v ReviewStatus) predicate.StageResult {
	return predicate.StageResult(sql.FieldEQ(FieldReviewStatus, v))
}

// ReviewStatusNEQ applies the NEQ predicate on the "review_status" field.
func ReviewStatusNEQ(v ReviewStatus) predicate.StageResult {
	return predicate.StageResult(sql.FieldNEQ(FieldReviewStatus, v))
}

// ReviewStatusIn applies the In predicate on the "review_status" field.
func ReviewStatusIn(vs ...ReviewStatus) predicate.StageResult {
	return predicate.StageResult(sql.FieldIn(FieldReviewStatus, vs...))
}

// ReviewStatusNotIn applies the NotIn predicate on the "review_status" field.
func ReviewStatusNotIn(vs ...ReviewStatus) predicate.StageResult {
	return predicate.StageResult(sql.FieldNotIn(FieldReviewStatus, vs...))
}

// ArtifactIDEQ applies the EQ predicate on the "artifact_id" field.
func ArtifactIDEQ(v string) predicate.StageResult {
	return predicate.StageResult(sql.FieldEQ(FieldArtifactID, v))
}

// ArtifactIDNEQ applies the NEQ predicate on the "artifact_id" field.
func ArtifactIDNEQ(v string) predicate.StageResult {
	return predicate.StageResult(sql.FieldNEQ(FieldArtifactID, v))
}

// ArtifactIDIn applies the In predicate on the "artifact_id" field.
func ArtifactIDIn(vs ...string) predicate.StageResult {
	return predicate.StageResult(sql.FieldIn(FieldArtifactID, vs...))
}

// ArtifactIDNotIn applies the NotIn predicate on the "artifact_id" field.
func ArtifactIDNotIn(vs ...string) predicate.StageResult {
	return predicate.StageResult(sql.FieldNotIn(FieldArtifactID, vs...))
}

// ArtifactIDGT applies the GT predicate on the "artifact_id" field.
func ArtifactIDGT(v string) predicate.StageResult {
	return predicate.StageResult(sql.FieldGT(FieldArtifactID, v))
}

// ArtifactIDGTE applies the GTE predicate on the "artifact_id" field.
func ArtifactIDGTE(v string) predicate.StageResult {
	return predicate.StageResult(sql.FieldGTE(FieldArtifactID, v))
}

// ArtifactIDLT applies the LT predicate on the "artifact_id" field.
func ArtifactIDLT(v string) predicate.StageResult {
	return predicate.StageResult(sql.FieldLT(FieldArtifactID, v))
}

// ArtifactIDLTE applies the LTE predicate on the "artifact_id" field.
func ArtifactIDLTE(v string) predicate.StageResult {
	return predicate.StageResult(sql.FieldLTE(FieldArtifactID, v))
}

// ArtifactIDContains applies the Contains predicate on the "artifact_id" field.
func ArtifactIDContains(v string) predicate.StageResult {
	return predicate.StageResult(sql.FieldContains(FieldArtifactID, v))
}

// ArtifactIDHasPrefix applies the HasPrefix predicate on the "artifact_id" field.
func ArtifactIDHasPrefix(v string) predicate.StageResult {
	return predicate.StageResult(sql.FieldHasPrefix(FieldArtifactID, v))
}

// ArtifactIDHasSuffix applies the HasSuffix predicate on the "artifact_id" field.
func ArtifactIDHasSuffix(v string) predicate.StageResult {
	return predicate.StageResult(sql.FieldHasSuffix(FieldArtifactID, v))
}

// ArtifactIDIsNil applies the IsNil predicate on the "artifact_id" field.
func ArtifactIDIsNil() predicate.StageResult {
	return predicate.StageResult(sql.FieldIsNull(FieldArtifactID))
}

// ArtifactIDNotNil applies the NotNil predicate on the "artifact_id" field.
func ArtifactIDNotNil() predicate.StageResult {
	return predicate.StageResult(sql.FieldNotNull(FieldArtifactID))
}

// ArtifactIDEqualFold applies the EqualFold predicate on the "artifact_id" field.
func ArtifactIDEqualFold(v string) predicate.StageResult {
	return predicate.StageResult(sql.FieldEqualFold(FieldArtifactID, v))
}

// ArtifactIDContainsFold applies the ContainsFold predicate on the "artifact_id" field.
func ArtifactIDContainsFold(v string) predicate.StageResult {
	return predicate.StageResult(sql.FieldContainsFold(FieldArtifactID, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.StageResult {
	return predicate.StageResult(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.StageResult {
	return predicate.StageResult(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.StageResult {
	return predicate.StageResult(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.StageResult {
	return predicate.StageResult(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.StageResult {
	return predicate.StageResult(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.StageResult {
	return predicate.StageResult(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.StageResult {
	return predicate.StageResult(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.StageResult {
	return predicate.StageResult(sql.FieldLTE(FieldCreatedAt, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.StageResult) predicate.StageResult {
	return predicate.StageResult(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.StageResult) predicate.StageResult {
	return predicate.StageResult(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.StageResult) predicate.StageResult {
	return predicate.StageResult(sql.NotPredicates(p))
}
