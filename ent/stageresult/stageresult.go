// Code generated by ent, DO NOT EDIT.

package stageresult

import (
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
)

const (
	// Label holds the string label denoting the stageresult type in the database.
	Label = "stage_result"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "stage_result_id"
	// FieldExecutionID holds the string denoting the execution_id field in the database.
	FieldExecutionID = "execution_id"
	// FieldStepID holds the string denoting the step_id field in the database.
	FieldStepID = "step_id"
	// FieldStageName holds the string denoting the stage_name field in the database.
	FieldStageName = "stage_name"
	// FieldResultType holds the string denoting the result_type field in the database.
	FieldResultType = "result_type"
	// FieldContent holds the string denoting the content field in the database.
	FieldContent = "content"
	// FieldPreview holds the string denoting the preview field in the database.
	FieldPreview = "preview"
	// FieldRequiresReview holds the string denoting the requires_review field in the database.
	FieldRequiresReview = "requires_review"
	// FieldReviewStatus holds the string denoting the review_status field in the database.
	FieldReviewStatus = "review_status"
	// FieldArtifactID holds the string denoting the artifact_id field in the database.
	FieldArtifactID = "artifact_id"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// Table holds the table name of the stageresult in the database.
	Table = "stage_results"
)

// Columns holds all SQL columns for stageresult fields.
var Columns = []string{
	FieldID,
	FieldExecutionID,
	FieldStepID,
	FieldStageName,
	FieldResultType,
	FieldContent,
	FieldPreview,
	FieldRequiresReview,
	FieldReviewStatus,
	FieldArtifactID,
	FieldCreatedAt,
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
	// DefaultRequiresReview holds the default value on creation for the "requires_review" field.
	DefaultRequiresReview bool
	// DefaultCreatedAt holds the default value on creation for the "created_at" field.
	DefaultCreatedAt func() time.Time
)

// ResultType defines the type for the "result_type" enum field.
type ResultType string

// ResultType values.
const (
	ResultTypeDraft    ResultType = "draft"
	ResultTypeAnalysis ResultType = "analysis"
	ResultTypeDesign   ResultType = "design"
	ResultTypeData     ResultType = "data"
)

func (rt ResultType) String() string {
	return string(rt)
}

// ResultTypeValidator is a validator for the "result_type" field enum values. It is called by the builders before save.
func ResultTypeValidator(rt ResultType) error {
	switch rt {
	case ResultTypeDraft, ResultTypeAnalysis, ResultTypeDesign, ResultTypeData:
		return nil
	default:
		return fmt.Errorf("stageresult: invalid enum value for result_type field: %q", rt)
	}
}

// ReviewStatus defines the type for the "review_status" enum field.
type ReviewStatus string

// ReviewStatusPending is the default value of the ReviewStatus enum.
const DefaultReviewStatus = ReviewStatusPending

// ReviewStatus values.
const (
	ReviewStatusPending  ReviewStatus = "pending"
	ReviewStatusApproved ReviewStatus = "approved"
	ReviewStatusRejected ReviewStatus = "rejected"
)

func (rs ReviewStatus) String() string {
	return string(rs)
}

// ReviewStatusValidator is a validator for the "review_status" field enum values. It is called by the builders before save.
func ReviewStatusValidator(rs ReviewStatus) error {
	switch rs {
	case ReviewStatusPending, ReviewStatusApproved, ReviewStatusRejected:
		return nil
	default:
		return fmt.Errorf("stageresult: invalid enum value for review_status field: %q", rs)
	}
}

// OrderOption defines the ordering options for the StageResult queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByExecutionID orders the results by the execution_id field.
func ByExecutionID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldExecutionID, opts...).ToFunc()
}

// ByStepID orders the results by the step_id field.
func ByStepID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldStepID, opts...).ToFunc()
}

// ByStageName orders the results by the stage_name field.
func ByStageName(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldStageName, opts...).ToFunc()
}

// ByResultType orders the results by the result_type field.
func ByResultType(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldResultType, opts...).ToFunc()
}

// ByPreview orders the results by the preview field.
func ByPreview(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldPreview, opts...).ToFunc()
}

// ByRequiresReview orders the results by the requires_review field.
func ByRequiresReview(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldRequiresReview, opts...).ToFunc()
}

// ByReviewStatus orders the results by the review_status field.
func ByReviewStatus(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldReviewStatus, opts...).ToFunc()
}

// ByArtifactID orders the results by the artifact_id field.
func ByArtifactID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldArtifactID, opts...).ToFunc()
}

// ByCreatedAt orders the results by the created_at field.
func ByCreatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCreatedAt, opts...).ToFunc()
}
