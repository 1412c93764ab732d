// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect"
	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/cortexops/playbookd/ent/stageresult"
)

// StageResultCreate is the builder for creating a StageResult entity.
type StageResultCreate struct {
	config
	mutation *StageResultMutation
	hooks    []Hook
	conflict []sql.ConflictOption
}

// SetExecutionID sets the "execution_id" field.
func (_c *StageResultCreate) SetExecutionID(v string) *StageResultCreate {
	_c.mutation.SetExecutionID(v)
	return _c
}

// SetStepID sets the "step_id" field.
func (_c *StageResultCreate) SetStepID(v string) *StageResultCreate {
	_c.mutation.SetStepID(v)
	return _c
}

// SetNillableStepID sets the "step_id" field if the given value is not nil.
func (_c *StageResultCreate) SetNillableStepID(v *string) *StageResultCreate {
	if v != nil {
		_c.SetStepID(*v)
	}
	return _c
}

// SetStageName sets the "stage_name" field.
func (_c *StageResultCreate) SetStageName(v string) *StageResultCreate {
	_c.mutation.SetStageName(v)
	return _c
}

// SetResultType sets the "result_type" field.
func (_c *StageResultCreate) SetResultType(v stageresult.ResultType) *StageResultCreate {
	_c.mutation.SetResultType(v)
	return _c
}

// SetContent sets the "content" field.
func (_c *StageResultCreate) SetContent(v map[string]interface{}) *StageResultCreate {
	_c.mutation.SetContent(v)
	return _c
}

// SetPreview sets the "preview" field.
func (_c *StageResultCreate) SetPreview(v string) *StageResultCreate {
	_c.mutation.SetPreview(v)
	return _c
}

// SetNillablePreview sets the "preview" field if the given value is not nil.
func (_c *StageResultCreate) SetNillablePreview(v *string) *StageResultCreate {
	if v != nil {
		_c.SetPreview(*v)
	}
	return _c
}

// SetRequiresReview sets the "requires_review" field.
func (_c *StageResultCreate) SetRequiresReview(v bool) *StageResultCreate {
	_c.mutation.SetRequiresReview(v)
	return _c
}

// SetNillableRequiresReview sets the "requires_review" field if the given value is not nil.
func (_c *StageResultCreate) SetNillableRequiresReview(v *bool) *StageResultCreate {
	if v != nil {
		_c.SetRequiresReview(*v)
	}
	return _c
}

// SetReviewStatus sets the "review_status" field.
func (_c *StageResultCreate) SetReviewStatus(v stageresult.ReviewStatus) *StageResultCreate {
	_c.mutation.SetReviewStatus(v)
	return _c
}

// SetNillableReviewStatus sets the "review_status" field if the given value is not nil.
func (_c *StageResultCreate) SetNillableReviewStatus(v *stageresult.ReviewStatus) *StageResultCreate {
	if v != nil {
		_c.SetReviewStatus(*v)
	}
	return _c
}

// SetArtifactID sets the "artifact_id" field.
func (_c *StageResultCreate) SetArtifactID(v string) *StageResultCreate {
	_c.mutation.SetArtifactID(v)
	return _c
}

// SetNillableArtifactID sets the "artifact_id" field if the given value is not nil.
func (_c *StageResultCreate) SetNillableArtifactID(v *string) *StageResultCreate {
	if v != nil {
		_c.SetArtifactID(*v)
	}
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *StageResultCreate) SetCreatedAt(v time.Time) *StageResultCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *StageResultCreate) SetNillableCreatedAt(v *time.Time) *StageResultCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *StageResultCreate) SetID(v string) *StageResultCreate {
	_c.mutation.SetID(v)
	return _c
}

// Mutation returns the StageResultMutation object of the builder.
func (_c *StageResultCreate) Mutation() *StageResultMutation {
	return _c.mutation
}

// Save creates the StageResult in the database.
func (_c *StageResultCreate) Save(ctx context.Context) (*StageResult, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *StageResultCreate) SaveX(ctx context.Context) *StageResult {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *StageResultCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *StageResultCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *StageResultCreate) defaults() {
	if _, ok := _c.mutation.RequiresReview(); !ok {
		v := stageresult.DefaultRequiresReview
		_c.mutation.SetRequiresReview(v)
	}
	if _, ok := _c.mutation.ReviewStatus(); !ok {
		v := stageresult.DefaultReviewStatus
		_c.mutation.SetReviewStatus(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := stageresult.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *StageResultCreate) check() error {
	if _, ok := _c.mutation.ExecutionID(); !ok {
		return &ValidationError{Name: "execution_id", err: errors.New(`ent: missing required field "StageResult.execution_id"`)}
	}
	if _, ok := _c.mutation.StageName(); !ok {
		return &ValidationError{Name: "stage_name", err: errors.New(`ent: missing required field "StageResult.stage_name"`)}
	}
	if _, ok := _c.mutation.ResultType(); !ok {
		return &ValidationError{Name: "result_type", err: errors.New(`ent: missing required field "StageResult.result_type"`)}
	}
	if v, ok := _c.mutation.ResultType(); ok {
		if err := stageresult.ResultTypeValidator(v); err != nil {
			return &ValidationError{Name: "result_type", err: fmt.Errorf(`ent: validator failed for field "StageResult.result_type": %w`, err)}
		}
	}
	if _, ok := _c.mutation.RequiresReview(); !ok {
		return &ValidationError{Name: "requires_review", err: errors.New(`ent: missing required field "StageResult.requires_review"`)}
	}
	if _, ok := _c.mutation.ReviewStatus(); !ok {
		return &ValidationError{Name: "review_status", err: errors.New(`ent: missing required field "StageResult.review_status"`)}
	}
	if v, ok := _c.mutation.ReviewStatus(); ok {
		if err := stageresult.ReviewStatusValidator(v); err != nil {
			return &ValidationError{Name: "review_status", err: fmt.Errorf(`ent: validator failed for field "StageResult.review_status": %w`, err)}
		}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "StageResult.created_at"`)}
	}
	return nil
}

func (_c *StageResultCreate) sqlSave(ctx context.Context) (*StageResult, error) {
	if err := _c.check(); err != nil {
		return nil, err
	}
	_node, _spec := _c.createSpec()
	if err := sqlgraph.CreateNode(ctx, _c.driver, _spec); err != nil {
		if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	if _spec.ID.Value != nil {
		if id, ok := _spec.ID.Value.(string); ok {
			_node.ID = id
		} else {
			return nil, fmt.Errorf("unexpected StageResult.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *StageResultCreate) createSpec() (*StageResult, *sqlgraph.CreateSpec) {
	var (
		_node = &StageResult{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(stageresult.Table, sqlgraph.NewFieldSpec(stageresult.FieldID, field.TypeString))
	)
	_spec.OnConflict = _c.conflict
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.ExecutionID(); ok {
		_spec.SetField(stageresult.FieldExecutionID, field.TypeString, value)
		_node.ExecutionID = value
	}
	if value, ok := _c.mutation.StepID(); ok {
		_spec.SetField(stageresult.FieldStepID, field.TypeString, value)
		_node.StepID = &value
	}
	if value, ok := _c.mutation.StageName(); ok {
		_spec.SetField(stageresult.FieldStageName, field.TypeString, value)
		_node.StageName = value
	}
	if value, ok := _c.mutation.ResultType(); ok {
		_spec.SetField(stageresult.FieldResultType, field.TypeEnum, value)
		_node.ResultType = value
	}
	if value, ok := _c.mutation.Content(); ok {
		_spec.SetField(stageresult.FieldContent, field.TypeJSON, value)
		_node.Content = value
	}
	if value, ok := _c.mutation.Preview(); ok {
		_spec.SetField(stageresult.FieldPreview, field.TypeString, value)
		_node.Preview = value
	}
	if value, ok := _c.mutation.RequiresReview(); ok {
		_spec.SetField(stageresult.FieldRequiresReview, field.TypeBool, value)
		_node.RequiresReview = value
	}
	if value, ok := _c.mutation.ReviewStatus(); ok {
		_spec.SetField(stageresult.FieldReviewStatus, field.TypeEnum, value)
		_node.ReviewStatus = value
	}
	if value, ok := _c.mutation.ArtifactID(); ok {
		_spec.SetField(stageresult.FieldArtifactID, field.TypeString, value)
		_node.ArtifactID = &value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(stageresult.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	return _node, _spec
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.StageResult.Create().
//		SetExecutionID(v).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.StageResultUpsert) {
//			SetExecutionID(v+v).
//		}).
//		Exec(ctx)
func (_c *StageResultCreate) OnConflict(opts ...sql.ConflictOption) *StageResultUpsertOne {
	_c.conflict = opts
	return &StageResultUpsertOne{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.StageResult.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *StageResultCreate) OnConflictColumns(columns ...string) *StageResultUpsertOne {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &StageResultUpsertOne{
		create: _c,
	}
}

type (
	// StageResultUpsertOne is the builder for "upsert"-ing
	//  one StageResult node.
	StageResultUpsertOne struct {
		create *StageResultCreate
	}

	// StageResultUpsert is the "OnConflict" setter.
	StageResultUpsert struct {
		*sql.UpdateSet
	}
)

// SetExecutionID sets the "execution_id" field.
func (u *StageResultUpsert) SetExecutionID(v string) *StageResultUpsert {
	u.Set(stageresult.FieldExecutionID, v)
	return u
}

// UpdateExecutionID sets the "execution_id" field to the value that was provided on create.
func (u *StageResultUpsert) UpdateExecutionID() *StageResultUpsert {
	u.SetExcluded(stageresult.FieldExecutionID)
	return u
}

// SetStepID sets the "step_id" field.
func (u *StageResultUpsert) SetStepID(v string) *StageResultUpsert {
	u.Set(stageresult.FieldStepID, v)
	return u
}

// UpdateStepID sets the "step_id" field to the value that was provided on create.
func (u *StageResultUpsert) UpdateStepID() *StageResultUpsert {
	u.SetExcluded(stageresult.FieldStepID)
	return u
}

// ClearStepID clears the value of the "step_id" field.
func (u *StageResultUpsert) ClearStepID() *StageResultUpsert {
	u.SetNull(stageresult.FieldStepID)
	return u
}

// SetStageName sets the "stage_name" field.
func (u *StageResultUpsert) SetStageName(v string) *StageResultUpsert {
	u.Set(stageresult.FieldStageName, v)
	return u
}

// UpdateStageName sets the "stage_name" field to the value that was provided on create.
func (u *StageResultUpsert) UpdateStageName() *StageResultUpsert {
	u.SetExcluded(stageresult.FieldStageName)
	return u
}

// SetResultType sets the "result_type" field.
func (u *StageResultUpsert) SetResultType(v stageresult.ResultType) *StageResultUpsert {
	u.Set(stageresult.FieldResultType, v)
	return u
}

// UpdateResultType sets the "result_type" field to the value that was provided on create.
func (u *StageResultUpsert) UpdateResultType() *StageResultUpsert {
	u.SetExcluded(stageresult.FieldResultType)
	return u
}

// SetContent sets the "content" field.
func (u *StageResultUpsert) SetContent(v map[string]interface{}) *StageResultUpsert {
	u.Set(stageresult.FieldContent, v)
	return u
}

// UpdateContent sets the "content" field to the value that was provided on create.
func (u *StageResultUpsert) UpdateContent() *StageResultUpsert {
	u.SetExcluded(stageresult.FieldContent)
	return u
}

// ClearContent clears the value of the "content" field.
func (u *StageResultUpsert) ClearContent() *StageResultUpsert {
	u.SetNull(stageresult.FieldContent)
	return u
}

// SetPreview sets the "preview" field.
func (u *StageResultUpsert) SetPreview(v string) *StageResultUpsert {
	u.Set(stageresult.FieldPreview, v)
	return u
}

// UpdatePreview sets the "preview" field to the value that was provided on create.
func (u *StageResultUpsert) UpdatePreview() *StageResultUpsert {
	u.SetExcluded(stageresult.FieldPreview)
	return u
}

// ClearPreview clears the value of the "preview" field.
func (u *StageResultUpsert) ClearPreview() *StageResultUpsert {
	u.SetNull(stageresult.FieldPreview)
	return u
}

// SetRequiresReview sets the "requires_review" field.
func (u *StageResultUpsert) SetRequiresReview(v bool) *StageResultUpsert {
	u.Set(stageresult.FieldRequiresReview, v)
	return u
}

// UpdateRequiresReview sets the "requires_review" field to the value that was provided on create.
func (u *StageResultUpsert) UpdateRequiresReview() *StageResultUpsert {
	u.SetExcluded(stageresult.FieldRequiresReview)
	return u
}

// SetReviewStatus sets the "review_status" field.
func (u *StageResultUpsert) SetReviewStatus(v stageresult.ReviewStatus) *StageResultUpsert {
	u.Set(stageresult.FieldReviewStatus, v)
	return u
}

// UpdateReviewStatus sets the "review_status" field to the value that was provided on create.
func (u *StageResultUpsert) UpdateReviewStatus() *StageResultUpsert {
	u.SetExcluded(stageresult.FieldReviewStatus)
	return u
}

// SetArtifactID sets the "artifact_id" field.
func (u *StageResultUpsert) SetArtifactID(v string) *StageResultUpsert {
	u.Set(stageresult.FieldArtifactID, v)
	return u
}

// UpdateArtifactID sets the "artifact_id" field to the value that was provided on create.
func (u *StageResultUpsert) UpdateArtifactID() *StageResultUpsert {
	u.SetExcluded(stageresult.FieldArtifactID)
	return u
}

// ClearArtifactID clears the value of the "artifact_id" field.
func (u *StageResultUpsert) ClearArtifactID() *StageResultUpsert {
	u.SetNull(stageresult.FieldArtifactID)
	return u
}

// UpdateNewValues updates the mutable fields using the new values that were set on create except the ID field.
// Using this option is equivalent to using:
//
//	client.StageResult.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(stageresult.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *StageResultUpsertOne) UpdateNewValues() *StageResultUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		if _, exists := u.create.mutation.ID(); exists {
			s.SetIgnore(stageresult.FieldID)
		}
		if _, exists := u.create.mutation.CreatedAt(); exists {
			s.SetIgnore(stageresult.FieldCreatedAt)
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.StageResult.Create().
//	    OnConflict(sql.ResolveWithIgnore()).
//	    Exec(ctx)
func (u *StageResultUpsertOne) Ignore() *StageResultUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *StageResultUpsertOne) DoNothing() *StageResultUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the StageResultCreate.OnConflict
// documentation for more info.
func (u *StageResultUpsertOne) Update(set func(*StageResultUpsert)) *StageResultUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&StageResultUpsert{UpdateSet: update})
	}))
	return u
}

// SetExecutionID sets the "execution_id" field.
func (u *StageResultUpsertOne) SetExecutionID(v string) *StageResultUpsertOne {
	return u.Update(func(s *StageResultUpsert) {
		s.SetExecutionID(v)
	})
}

// UpdateExecutionID sets the "execution_id" field to the value that was provided on create.
func (u *StageResultUpsertOne) UpdateExecutionID() *StageResultUpsertOne {
	return u.Update(func(s *StageResultUpsert) {
		s.UpdateExecutionID()
	})
}

// SetStepID sets the "step_id" field.
func (u *StageResultUpsertOne) SetStepID(v string) *StageResultUpsertOne {
	return u.Update(func(s *StageResultUpsert) {
		s.SetStepID(v)
	})
}

// UpdateStepID sets the "step_id" field to the value that was provided on create.
func (u *StageResultUpsertOne) UpdateStepID() *StageResultUpsertOne {
	return u.Update(func(s *StageResultUpsert) {
		s.UpdateStepID()
	})
}

// ClearStepID clears the value of the "step_id" field.
func (u *StageResultUpsertOne) ClearStepID() *StageResultUpsertOne {
	return u.Update(func(s *StageResultUpsert) {
		s.ClearStepID()
	})
}

// SetStageName sets the "stage_name" field.
func (u *StageResultUpsertOne) SetStageName(v string) *StageResultUpsertOne {
	return u.Update(func(s *StageResultUpsert) {
		s.SetStageName(v)
	})
}

// UpdateStageName sets the "stage_name" field to the value that was provided on create.
func (u *StageResultUpsertOne) UpdateStageName() *StageResultUpsertOne {
	return u.Update(func(s *StageResultUpsert) {
		s.UpdateStageName()
	})
}

// SetResultType sets the "result_type" field.
func (u *StageResultUpsertOne) SetResultType(v stageresult.ResultType) *StageResultUpsertOne {
	return u.Update(func(s *StageResultUpsert) {
		s.SetResultType(v)
	})
}

// UpdateResultType sets the "result_type" field to the value that was provided on create.
func (u *StageResultUpsertOne) UpdateResultType() *StageResultUpsertOne {
	return u.Update(func(s *StageResultUpsert) {
		s.UpdateResultType()
	})
}

// SetContent sets the "content" field.
func (u *StageResultUpsertOne) SetContent(v map[string]interface{}) *StageResultUpsertOne {
	return u.Update(func(s *StageResultUpsert) {
		s.SetContent(v)
	})
}

// UpdateContent sets the "content" field to the value that was provided on create.
func (u *StageResultUpsertOne) UpdateContent() *StageResultUpsertOne {
	return u.Update(func(s *StageResultUpsert) {
		s.UpdateContent()
	})
}

// ClearContent clears the value of the "content" field.
func (u *StageResultUpsertOne) ClearContent() *StageResultUpsertOne {
	return u.Update(func(s *StageResultUpsert) {
		s.ClearContent()
	})
}

// SetPreview sets the "preview" field.
func (u *StageResultUpsertOne) SetPreview(v string) *StageResultUpsertOne {
	return u.Update(func(s *StageResultUpsert) {
		s.SetPreview(v)
	})
}

// UpdatePreview sets the "preview" field to the value that was provided on create.
func (u *StageResultUpsertOne) UpdatePreview() *StageResultUpsertOne {
	return u.Update(func(s *StageResultUpsert) {
		s.UpdatePreview()
	})
}

// ClearPreview clears the value of the "preview" field.
func (u *StageResultUpsertOne) ClearPreview() *StageResultUpsertOne {
	return u.Update(func(s *StageResultUpsert) {
		s.ClearPreview()
	})
}

// SetRequiresReview sets the "requires_review" field.
func (u *StageResultUpsertOne) SetRequiresReview(v bool) *StageResultUpsertOne {
	return u.Update(func(s *StageResultUpsert) {
		s.SetRequiresReview(v)
	})
}

// UpdateRequiresReview sets the "requires_review" field to the value that was provided on create.
func (u *StageResultUpsertOne) UpdateRequiresReview() *StageResultUpsertOne {
	return u.Update(func(s *StageResultUpsert) {
		s.UpdateRequiresReview()
	})
}

// SetReviewStatus sets the "review_status" field.
func (u *StageResultUpsertOne) SetReviewStatus(v stageresult.ReviewStatus) *StageResultUpsertOne {
	return u.Update(func(s *StageResultUpsert) {
		s.SetReviewStatus(v)
	})
}

// UpdateReviewStatus sets the "review_status" field to the value that was provided on create.
func (u *StageResultUpsertOne) UpdateReviewStatus() *StageResultUpsertOne {
	return u.Update(func(s *StageResultUpsert) {
		s.UpdateReviewStatus()
	})
}

// SetArtifactID sets the "artifact_id" field.
func (u *StageResultUpsertOne) SetArtifactID(v string) *StageResultUpsertOne {
	return u.Update(func(s *StageResultUpsert) {
		s.SetArtifactID(v)
	})
}

// UpdateArtifactID sets the "artifact_id" field to the value that was provided on create.
func (u *StageResultUpsertOne) UpdateArtifactID() *StageResultUpsertOne {
	return u.Update(func(s *StageResultUpsert) {
		s.UpdateArtifactID()
	})
}

// ClearArtifactID clears the value of the "artifact_id" field.
func (u *StageResultUpsertOne) ClearArtifactID() *StageResultUpsertOne {
	return u.Update(func(s *StageResultUpsert) {
		s.ClearArtifactID()
	})
}

// Exec executes the query.
func (u *StageResultUpsertOne) Exec(ctx context.Context) error {
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for StageResultCreate.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *StageResultUpsertOne) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}

// Exec executes the UPSERT query and returns the inserted/updated ID.
func (u *StageResultUpsertOne) ID(ctx context.Context) (id string, err error) {
	if u.create.driver.Dialect() == dialect.MySQL {
		// In case of "ON CONFLICT", there is no way to get back non-numeric ID
		// fields from the database since MySQL does not support the RETURNING clause.
		return id, errors.New("ent: StageResultUpsertOne.ID is not supported by MySQL driver. Use StageResultUpsertOne.Exec instead")
	}
	node, err := u.create.Save(ctx)
	if err != nil {
		return id, err
	}
	return node.ID, nil
}

// IDX is like ID, but panics if an error occurs.
func (u *StageResultUpsertOne) IDX(ctx context.Context) string {
	id, err := u.ID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// StageResultCreateBulk is the builder for creating many StageResult entities in bulk.
type StageResultCreateBulk struct {
	config
	err      error
	builders []*StageResultCreate
	conflict []sql.ConflictOption
}

// Save creates the StageResult entities in the database.
func (_c *StageResultCreateBulk) Save(ctx context.Context) ([]*StageResult, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*StageResult, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*StageResultMutation)
				if !ok {
					return nil, fmt.Errorf("unexpected mutation type %T", m)
				}
				if err := builder.check(); err != nil {
					return nil, err
				}
				builder.mutation = mutation
				var err error
				nodes[i], specs[i] = builder.createSpec()
				if i < len(mutators)-1 {
					_, err = mutators[i+1].Mutate(root, _c.builders[i+1].mutation)
				} else {
					spec := &sqlgraph.BatchCreateSpec{Nodes: specs}
					spec.OnConflict = _c.conflict
					// Invoke the actual operation on the latest mutation in the chain.
					if err = sqlgraph.BatchCreate(ctx, _c.driver, spec); err != nil {
						if sqlgraph.IsConstraintError(err) {
							err = &ConstraintError{msg: err.Error(), wrap: err}
						}
					}
				}
				if err != nil {
					return nil, err
				}
				mutation.id = &nodes[i].ID
				mutation.done = true
				return nodes[i], nil
			})
			for i := len(builder.hooks) - 1; i >= 0; i-- {
				mut = builder.hooks[i](mut)
			}
			mutators[i] = mut
		}(i, ctx)
	}
	if len(mutators) > 0 {
		if _, err := mutators[0].Mutate(ctx, _c.builders[0].mutation); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

// SaveX is like Save, but panics if an error occurs.
func (_c *StageResultCreateBulk) SaveX(ctx context.Context) []*StageResult {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *StageResultCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *StageResultCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.StageResult.CreateBulk(builders...).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.StageResultUpsert) {
//			SetExecutionID(v+v).
//		}).
//		Exec(ctx)
func (_c *StageResultCreateBulk) OnConflict(opts ...sql.ConflictOption) *StageResultUpsertBulk {
	_c.conflict = opts
	return &StageResultUpsertBulk{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.StageResult.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *StageResultCreateBulk) OnConflictColumns(columns ...string) *StageResultUpsertBulk {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &StageResultUpsertBulk{
		create: _c,
	}
}

// StageResultUpsertBulk is the builder for "upsert"-ing
// a bulk of StageResult nodes.
type StageResultUpsertBulk struct {
	create *StageResultCreateBulk
}

// UpdateNewValues updates the mutable fields using the new values that
// were set on create. Using this option is equivalent to using:
//
//	client.StageResult.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(stageresult.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *StageResultUpsertBulk) UpdateNewValues() *StageResultUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		for _, b := range u.create.builders {
			if _, exists := b.mutation.ID(); exists {
				s.SetIgnore(stageresult.FieldID)
			}
			if _, exists := b.mutation.CreatedAt(); exists {
				s.SetIgnore(stageresult.FieldCreatedAt)
			}
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.StageResult.Create().
//		OnConflict(sql.ResolveWithIgnore()).
//		Exec(ctx)
func (u *StageResultUpsertBulk) Ignore() *StageResultUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *StageResultUpsertBulk) DoNothing() *StageResultUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the StageResultCreateBulk.OnConflict
// documentation for more info.
func (u *StageResultUpsertBulk) Update(set func(*StageResultUpsert)) *StageResultUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&StageResultUpsert{UpdateSet: update})
	}))
	return u
}

// SetExecutionID sets the "execution_id" field.
func (u *StageResultUpsertBulk) SetExecutionID(v string) *StageResultUpsertBulk {
	return u.Update(func(s *StageResultUpsert) {
		s.SetExecutionID(v)
	})
}

// UpdateExecutionID sets the "execution_id" field to the value that was provided on create.
func (u *StageResultUpsertBulk) UpdateExecutionID() *StageResultUpsertBulk {
	return u.Update(func(s *StageResultUpsert) {
		s.UpdateExecutionID()
	})
}

// SetStepID sets the "step_id" field.
func (u *StageResultUpsertBulk) SetStepID(v string) *StageResultUpsertBulk {
	return u.Update(func(s *StageResultUpsert) {
		s.SetStepID(v)
	})
}

// UpdateStepID sets the "step_id" field to the value that was provided on create.
func (u *StageResultUpsertBulk) UpdateStepID() *StageResultUpsertBulk {
	return u.Update(func(s *StageResultUpsert) {
		s.UpdateStepID()
	})
}

// ClearStepID clears the value of the "step_id" field.
func (u *StageResultUpsertBulk) ClearStepID() *StageResultUpsertBulk {
	return u.Update(func(s *StageResultUpsert) {
		s.ClearStepID()
	})
}

// SetStageName sets the "stage_name" field.
func (u *StageResultUpsertBulk) SetStageName(v string) *StageResultUpsertBulk {
	return u.Update(func(s *StageResultUpsert) {
		s.SetStageName(v)
	})
}

// UpdateStageName sets the "stage_name" field to the value that was provided on create.
func (u *StageResultUpsertBulk) UpdateStageName() *StageResultUpsertBulk {
	return u.Update(func(s *StageResultUpsert) {
		s.UpdateStageName()
	})
}

// SetResultType sets the "result_type" field.
func (u *StageResultUpsertBulk) SetResultType(v stageresult.ResultType) *StageResultUpsertBulk {
	return u.Update(func(s *StageResultUpsert) {
		s.SetResultType(v)
	})
}

// UpdateResultType sets the "result_type" field to the value that was provided on create.
func (u *StageResultUpsertBulk) UpdateResultType() *StageResultUpsertBulk {
	return u.Update(func(s *StageResultUpsert) {
		s.UpdateResultType()
	})
}

// SetContent sets the "content" field.
func (u *StageResultUpsertBulk) SetContent(v map[string]interface{}) *StageResultUpsertBulk {
	return u.Update(func(s *StageResultUpsert) {
		s.SetContent(v)
	})
}

// UpdateContent sets the "content" field to the value that was provided on create.
func (u *StageResultUpsertBulk) UpdateContent() *StageResultUpsertBulk {
	return u.Update(func(s *StageResultUpsert) {
		s.UpdateContent()
	})
}

// ClearContent clears the value of the "content" field.
func (u *StageResultUpsertBulk) ClearContent() *StageResultUpsertBulk {
	return u.Update(func(s *StageResultUpsert) {
		s.ClearContent()
	})
}

// SetPreview sets the "preview" field.
func (u *StageResultUpsertBulk) SetPreview(v string) *StageResultUpsertBulk {
	return u.Update(func(s *StageResultUpsert) {
		s.SetPreview(v)
	})
}

// UpdatePreview sets the "preview" field to the value that was provided on create.
func (u *StageResultUpsertBulk) UpdatePreview() *StageResultUpsertBulk {
	return u.Update(func(s *StageResultUpsert) {
		s.UpdatePreview()
	})
}

// ClearPreview clears the value of the "preview" field.
func (u *StageResultUpsertBulk) ClearPreview() *StageResultUpsertBulk {
	return u.Update(func(s *StageResultUpsert) {
		s.ClearPreview()
	})
}

// SetRequiresReview sets the "requires_review" field.
func (u *StageResultUpsertBulk) SetRequiresReview(v bool) *StageResultUpsertBulk {
	return u.Update(func(s *StageResultUpsert) {
		s.SetRequiresReview(v)
	})
}

// UpdateRequiresReview sets the "requires_review" field to the value that was provided on create.
func (u *StageResultUpsertBulk) UpdateRequiresReview() *StageResultUpsertBulk {
	return u.Update(func(s *StageResultUpsert) {
		s.UpdateRequiresReview()
	})
}

// SetReviewStatus sets the "review_status" field.
func (u *StageResultUpsertBulk) SetReviewStatus(v stageresult.ReviewStatus) *StageResultUpsertBulk {
	return u.Update(func(s *StageResultUpsert) {
		s.SetReviewStatus(v)
	})
}

// UpdateReviewStatus sets the "review_status" field to the value that was provided on create.
func (u *StageResultUpsertBulk) UpdateReviewStatus() *StageResultUpsertBulk {
	return u.Update(func(s *StageResultUpsert) {
		s.UpdateReviewStatus()
	})
}

// SetArtifactID sets the "artifact_id" field.
func (u *StageResultUpsertBulk) SetArtifactID(v string) *StageResultUpsertBulk {
	return u.Update(func(s *StageResultUpsert) {
		s.SetArtifactID(v)
	})
}

// UpdateArtifactID sets the "artifact_id" field to the value that was provided on create.
func (u *StageResultUpsertBulk) UpdateArtifactID() *StageResultUpsertBulk {
	return u.Update(func(s *StageResultUpsert) {
		s.UpdateArtifactID()
	})
}

// ClearArtifactID clears the value of the "artifact_id" field.
func (u *StageResultUpsertBulk) ClearArtifactID() *StageResultUpsertBulk {
	return u.Update(func(s *StageResultUpsert) {
		s.ClearArtifactID()
	})
}

// Exec executes the query.
func (u *StageResultUpsertBulk) Exec(ctx context.Context) error {
	if u.create.err != nil {
		return u.create.err
	}
	for i, b := range u.create.builders {
		if len(b.conflict) != 0 {
			return fmt.Errorf("ent: OnConflict was set for builder %d. Set it on the StageResultCreateBulk instead", i)
		}
	}
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for StageResultCreateBulk.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *StageResultUpsertBulk) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}
