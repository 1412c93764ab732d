// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/cortexops/playbookd/ent/predicate"
	"github.com/cortexops/playbookd/ent/stageresult"
)

// StageResultUpdate is the builder for updating StageResult entities.
type StageResultUpdate struct {
	config
	hooks    []Hook
	mutation *StageResultMutation
}

// Where appends a list predicates to the StageResultUpdate builder.
func (_u *StageResultUpdate) Where(ps ...predicate.StageResult) *StageResultUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetExecutionID sets the "execution_id" field.
func (_u *StageResultUpdate) SetExecutionID(v string) *StageResultUpdate {
	_u.mutation.SetExecutionID(v)
	return _u
}

// SetNillableExecutionID sets the "execution_id" field if the given value is not nil.
func (_u *StageResultUpdate) SetNillableExecutionID(v *string) *StageResultUpdate {
	if v != nil {
		_u.SetExecutionID(*v)
	}
	return _u
}

// SetStepID sets the "step_id" field.
func (_u *StageResultUpdate) SetStepID(v string) *StageResultUpdate {
	_u.mutation.SetStepID(v)
	return _u
}

// SetNillableStepID sets the "step_id" field if the given value is not nil.
func (_u *StageResultUpdate) SetNillableStepID(v *string) *StageResultUpdate {
	if v != nil {
		_u.SetStepID(*v)
	}
	return _u
}

// ClearStepID clears the value of the "step_id" field.
func (_u *StageResultUpdate) ClearStepID() *StageResultUpdate {
	_u.mutation.ClearStepID()
	return _u
}

// SetStageName sets the "stage_name" field.
func (_u *StageResultUpdate) SetStageName(v string) *StageResultUpdate {
	_u.mutation.SetStageName(v)
	return _u
}

// SetNillableStageName sets the "stage_name" field if the given value is not nil.
func (_u *StageResultUpdate) SetNillableStageName(v *string) *StageResultUpdate {
	if v != nil {
		_u.SetStageName(*v)
	}
	return _u
}

// SetResultType sets the "result_type" field.
func (_u *StageResultUpdate) SetResultType(v stageresult.ResultType) *StageResultUpdate {
	_u.mutation.SetResultType(v)
	return _u
}

// SetNillableResultType sets the "result_type" field if the given value is not nil.
func (_u *StageResultUpdate) SetNillableResultType(v *stageresult.ResultType) *StageResultUpdate {
	if v != nil {
		_u.SetResultType(*v)
	}
	return _u
}

// SetContent sets the "content" field.
func (_u *StageResultUpdate) SetContent(v map[string]interface{}) *StageResultUpdate {
	_u.mutation.SetContent(v)
	return _u
}

// ClearContent clears the value of the "content" field.
func (_u *StageResultUpdate) ClearContent() *StageResultUpdate {
	_u.mutation.ClearContent()
	return _u
}

// SetPreview sets the "preview" field.
func (_u *StageResultUpdate) SetPreview(v string) *StageResultUpdate {
	_u.mutation.SetPreview(v)
	return _u
}

// SetNillablePreview sets the "preview" field if the given value is not nil.
func (_u *StageResultUpdate) SetNillablePreview(v *string) *StageResultUpdate {
	if v != nil {
		_u.SetPreview(*v)
	}
	return _u
}

// ClearPreview clears the value of the "preview" field.
func (_u *StageResultUpdate) ClearPreview() *StageResultUpdate {
	_u.mutation.ClearPreview()
	return _u
}

// SetRequiresReview sets the "requires_review" field.
func (_u *StageResultUpdate) SetRequiresReview(v bool) *StageResultUpdate {
	_u.mutation.SetRequiresReview(v)
	return _u
}

// SetNillableRequiresReview sets the "requires_review" field if the given value is not nil.
func (_u *StageResultUpdate) SetNillableRequiresReview(v *bool) *StageResultUpdate {
	if v != nil {
		_u.SetRequiresReview(*v)
	}
	return _u
}

// SetReviewStatus sets the "review_status" field.
func (_u *StageResultUpdate) SetReviewStatus(v stageresult.ReviewStatus) *StageResultUpdate {
	_u.mutation.SetReviewStatus(v)
	return _u
}

// SetNillableReviewStatus sets the "review_status" field if the given value is not nil.
func (_u *StageResultUpdate) SetNillableReviewStatus(v *stageresult.ReviewStatus) *StageResultUpdate {
	if v != nil {
		_u.SetReviewStatus(*v)
	}
	return _u
}

// SetArtifactID sets the "artifact_id" field.
func (_u *StageResultUpdate) SetArtifactID(v string) *StageResultUpdate {
	_u.mutation.SetArtifactID(v)
	return _u
}

// SetNillableArtifactID sets the "artifact_id" field if the given value is not nil.
func (_u *StageResultUpdate) SetNillableArtifactID(v *string) *StageResultUpdate {
	if v != nil {
		_u.SetArtifactID(*v)
	}
	return _u
}

// ClearArtifactID clears the value of the "artifact_id" field.
func (_u *StageResultUpdate) ClearArtifactID() *StageResultUpdate {
	_u.mutation.ClearArtifactID()
	return _u
}

// Mutation returns the StageResultMutation object of the builder.
func (_u *StageResultUpdate) Mutation() *StageResultMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *StageResultUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *StageResultUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *StageResultUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *StageResultUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *StageResultUpdate) check() error {
	if v, ok := _u.mutation.ResultType(); ok {
		if err := stageresult.ResultTypeValidator(v); err != nil {
			return &ValidationError{Name: "result_type", err: fmt.Errorf(`ent: validator failed for field "StageResult.result_type": %w`, err)}
		}
	}
	if v, ok := _u.mutation.ReviewStatus(); ok {
		if err := stageresult.ReviewStatusValidator(v); err != nil {
			return &ValidationError{Name: "review_status", err: fmt.Errorf(`ent: validator failed for field "StageResult.review_status": %w`, err)}
		}
	}
	return nil
}

func (_u *StageResultUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(stageresult.Table, stageresult.Columns, sqlgraph.NewFieldSpec(stageresult.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.ExecutionID(); ok {
		_spec.SetField(stageresult.FieldExecutionID, field.TypeString, value)
	}
	if value, ok := _u.mutation.StepID(); ok {
		_spec.SetField(stageresult.FieldStepID, field.TypeString, value)
	}
	if _u.mutation.StepIDCleared() {
		_spec.ClearField(stageresult.FieldStepID, field.TypeString)
	}
	if value, ok := _u.mutation.StageName(); ok {
		_spec.SetField(stageresult.FieldStageName, field.TypeString, value)
	}
	if value, ok := _u.mutation.ResultType(); ok {
		_spec.SetField(stageresult.FieldResultType, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.Content(); ok {
		_spec.SetField(stageresult.FieldContent, field.TypeJSON, value)
	}
	if _u.mutation.ContentCleared() {
		_spec.ClearField(stageresult.FieldContent, field.TypeJSON)
	}
	if value, ok := _u.mutation.Preview(); ok {
		_spec.SetField(stageresult.FieldPreview, field.TypeString, value)
	}
	if _u.mutation.PreviewCleared() {
		_spec.ClearField(stageresult.FieldPreview, field.TypeString)
	}
	if value, ok := _u.mutation.RequiresReview(); ok {
		_spec.SetField(stageresult.FieldRequiresReview, field.TypeBool, value)
	}
	if value, ok := _u.mutation.ReviewStatus(); ok {
		_spec.SetField(stageresult.FieldReviewStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.ArtifactID(); ok {
		_spec.SetField(stageresult.FieldArtifactID, field.TypeString, value)
	}
	if _u.mutation.ArtifactIDCleared() {
		_spec.ClearField(stageresult.FieldArtifactID, field.TypeString)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{stageresult.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// StageResultUpdateOne is the builder for updating a single StageResult entity.
type StageResultUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *StageResultMutation
}

// SetExecutionID sets the "execution_id" field.
func (_u *StageResultUpdateOne) SetExecutionID(v string) *StageResultUpdateOne {
	_u.mutation.SetExecutionID(v)
	return _u
}

// SetNillableExecutionID sets the "execution_id" field if the given value is not nil.
func (_u *StageResultUpdateOne) SetNillableExecutionID(v *string) *StageResultUpdateOne {
	if v != nil {
		_u.SetExecutionID(*v)
	}
	return _u
}

// SetStepID sets the "step_id" field.
func (_u *StageResultUpdateOne) SetStepID(v string) *StageResultUpdateOne {
	_u.mutation.SetStepID(v)
	return _u
}

// SetNillableStepID sets the "step_id" field if the given value is not nil.
func (_u *StageResultUpdateOne) SetNillableStepID(v *string) *StageResultUpdateOne {
	if v != nil {
		_u.SetStepID(*v)
	}
	return _u
}

// ClearStepID clears the value of the "step_id" field.
func (_u *StageResultUpdateOne) ClearStepID() *StageResultUpdateOne {
	_u.mutation.ClearStepID()
	return _u
}

// SetStageName sets the "stage_name" field.
func (_u *StageResultUpdateOne) SetStageName(v string) *StageResultUpdateOne {
	_u.mutation.SetStageName(v)
	return _u
}

// SetNillableStageName sets the "stage_name" field if the given value is not nil.
func (_u *StageResultUpdateOne) SetNillableStageName(v *string) *StageResultUpdateOne {
	if v != nil {
		_u.SetStageName(*v)
	}
	return _u
}

// SetResultType sets the "result_type" field.
func (_u *StageResultUpdateOne) SetResultType(v stageresult.ResultType) *StageResultUpdateOne {
	_u.mutation.SetResultType(v)
	return _u
}

// SetNillableResultType sets the "result_type" field if the given value is not nil.
func (_u *StageResultUpdateOne) SetNillableResultType(v *stageresult.ResultType) *StageResultUpdateOne {
	if v != nil {
		_u.SetResultType(*v)
	}
	return _u
}

// SetContent sets the "content" field.
func (_u *StageResultUpdateOne) SetContent(v map[string]interface{}) *StageResultUpdateOne {
	_u.mutation.SetContent(v)
	return _u
}

// ClearContent clears the value of the "content" field.
func (_u *StageResultUpdateOne) ClearContent() *StageResultUpdateOne {
	_u.mutation.ClearContent()
	return _u
}

// SetPreview sets the "preview" field.
func (_u *StageResultUpdateOne) SetPreview(v string) *StageResultUpdateOne {
	_u.mutation.SetPreview(v)
	return _u
}

// SetNillablePreview sets the "preview" field if the given value is not nil.
func (_u *StageResultUpdateOne) SetNillablePreview(v *string) *StageResultUpdateOne {
	if v != nil {
		_u.SetPreview(*v)
	}
	return _u
}

// ClearPreview clears the value of the "preview" field.
func (_u *StageResultUpdateOne) ClearPreview() *StageResultUpdateOne {
	_u.mutation.ClearPreview()
	return _u
}

// SetRequiresReview sets the "requires_review" field.
func (_u *StageResultUpdateOne) SetRequiresReview(v bool) *StageResultUpdateOne {
	_u.mutation.SetRequiresReview(v)
	return _u
}

// SetNillableRequiresReview sets the "requires_review" field if the given value is not nil.
func (_u *StageResultUpdateOne) SetNillableRequiresReview(v *bool) *StageResultUpdateOne {
	if v != nil {
		_u.SetRequiresReview(*v)
	}
	return _u
}

// SetReviewStatus sets the "review_status" field.
func (_u *StageResultUpdateOne) SetReviewStatus(v stageresult.ReviewStatus) *StageResultUpdateOne {
	_u.mutation.SetReviewStatus(v)
	return _u
}

// SetNillableReviewStatus sets the "review_status" field if the given value is not nil.
func (_u *StageResultUpdateOne) SetNillableReviewStatus(v *stageresult.ReviewStatus) *StageResultUpdateOne {
	if v != nil {
		_u.SetReviewStatus(*v)
	}
	return _u
}

// SetArtifactID sets the "artifact_id" field.
func (_u *StageResultUpdateOne) SetArtifactID(v string) *StageResultUpdateOne {
	_u.mutation.SetArtifactID(v)
	return _u
}

// SetNillableArtifactID sets the "artifact_id" field if the given value is not nil.
func (_u *StageResultUpdateOne) SetNillableArtifactID(v *string) *StageResultUpdateOne {
	if v != nil {
		_u.SetArtifactID(*v)
	}
	return _u
}

// ClearArtifactID clears the value of the "artifact_id" field.
func (_u *StageResultUpdateOne) ClearArtifactID() *StageResultUpdateOne {
	_u.mutation.ClearArtifactID()
	return _u
}

// Mutation returns the StageResultMutation object of the builder.
func (_u *StageResultUpdateOne) Mutation() *StageResultMutation {
	return _u.mutation
}

// Where appends a list predicates to the StageResultUpdate builder.
func (_u *StageResultUpdateOne) Where(ps ...predicate.StageResult) *StageResultUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *StageResultUpdateOne) Select(field string, fields ...string) *StageResultUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated StageResult entity.
func (_u *StageResultUpdateOne) Save(ctx context.Context) (*StageResult, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *StageResultUpdateOne) SaveX(ctx context.Context) *StageResult {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *StageResultUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *StageResultUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *StageResultUpdateOne) check() error {
	if v, ok := _u.mutation.ResultType(); ok {
		if err := stageresult.ResultTypeValidator(v); err != nil {
			return &ValidationError{Name: "result_type", err: fmt.Errorf(`ent: validator failed for field "StageResult.result_type": %w`, err)}
		}
	}
	if v, ok := _u.mutation.ReviewStatus(); ok {
		if err := stageresult.ReviewStatusValidator(v); err != nil {
			return &ValidationError{Name: "review_status", err: fmt.Errorf(`ent: validator failed for field "StageResult.review_status": %w`, err)}
		}
	}
	return nil
}

func (_u *StageResultUpdateOne) sqlSave(ctx context.Context) (_node *StageResult, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(stageresult.Table, stageresult.Columns, sqlgraph.NewFieldSpec(stageresult.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "StageResult.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, stageresult.FieldID)
		for _, f := range fields {
			if !stageresult.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != stageresult.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, f)
			}
		}
	}
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.ExecutionID(); ok {
		_spec.SetField(stageresult.FieldExecutionID, field.TypeString, value)
	}
	if value, ok := _u.mutation.StepID(); ok {
		_spec.SetField(stageresult.FieldStepID, field.TypeString, value)
	}
	if _u.mutation.StepIDCleared() {
		_spec.ClearField(stageresult.FieldStepID, field.TypeString)
	}
	if value, ok := _u.mutation.StageName(); ok {
		_spec.SetField(stageresult.FieldStageName, field.TypeString, value)
	}
	if value, ok := _u.mutation.ResultType(); ok {
		_spec.SetField(stageresult.FieldResultType, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.Content(); ok {
		_spec.SetField(stageresult.FieldContent, field.TypeJSON, value)
	}
	if _u.mutation.ContentCleared() {
		_spec.ClearField(stageresult.FieldContent, field.TypeJSON)
	}
	if value, ok := _u.mutation.Preview(); ok {
		_spec.SetField(stageresult.FieldPreview, field.TypeString, value)
	}
	if _u.mutation.PreviewCleared() {
		_spec.ClearField(stageresult.FieldPreview, field.TypeString)
	}
	if value, ok := _u.mutation.RequiresReview(); ok {
		_spec.SetField(stageresult.FieldRequiresReview, field.TypeBool, value)
	}
	if value, ok := _u.mutation.ReviewStatus(); ok {
		_spec.SetField(stageresult.FieldReviewStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.ArtifactID(); ok {
		_spec.SetField(stageresult.FieldArtifactID, field.TypeString, value)
	}
	if _u.mutation.ArtifactIDCleared() {
		_spec.ClearField(stageresult.FieldArtifactID, field.TypeString)
	}
	_node = &StageResult{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{stageresult.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
