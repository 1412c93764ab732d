// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/cortexops/playbookd/ent/predicate"
	"github.com/cortexops/playbookd/ent/suggestionpreference"
)

// SuggestionPreferenceDelete is the builder for deleting a SuggestionPreference entity.
type SuggestionPreferenceDelete struct {
	config
	hooks    []Hook
	mutation *SuggestionPreferenceMutation
}

// Where appends a list predicates to the SuggestionPreferenceDelete builder.
func (_d *SuggestionPreferenceDelete) Where(ps ...predicate.SuggestionPreference) *SuggestionPreferenceDelete {
	_d.mutation.Where(ps...)
	return _d
}

// Exec executes the deletion query and returns how many vertices were deleted.
func (_d *SuggestionPreferenceDelete) Exec(ctx context.Context) (int, error) {
	return withHooks(ctx, _d.sqlExec, _d.mutation, _d.hooks)
}

// ExecX is like Exec, but panics if an error occurs.
func (_d *SuggestionPreferenceDelete) ExecX(ctx context.Context) int {
	n, err := _d.Exec(ctx)
	if err != nil {
		panic(err)
	}
	return n
}

func (_d *SuggestionPreferenceDelete) sqlExec(ctx context.Context) (int, error) {
	_spec := sqlgraph.NewDeleteSpec(suggestionpreference.Table, sqlgraph.NewFieldSpec(suggestionpreference.FieldID, field.TypeString))
	if ps := _d.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	affected, err := sqlgraph.DeleteNodes(ctx, _d.driver, _spec)
	if err != nil && sqlgraph.IsConstraintError(err) {
		err = &ConstraintError{msg: err.Error(), wrap: err}
	}
	_d.mutation.done = true
	return affected, err
}

// SuggestionPreferenceDeleteOne is the builder for deleting a single SuggestionPreference entity.
type SuggestionPreferenceDeleteOne struct {
	_d *SuggestionPreferenceDelete
}

// Where appends a list predicates to the SuggestionPreferenceDelete builder.
func (_d *SuggestionPreferenceDeleteOne) Where(ps ...predicate.SuggestionPreference) *SuggestionPreferenceDeleteOne {
	_d._d.mutation.Where(ps...)
	return _d
}

// Exec executes the deletion query.
func (_d *SuggestionPreferenceDeleteOne) Exec(ctx context.Context) error {
	n, err := _d._d.Exec(ctx)
	switch {
	case err != nil:
		return err
	case n == 0:
		return &NotFoundError{suggestionpreference.Label}
	default:
		return nil
	}
}

// ExecX is like Exec, but panics if an error occurs.
func (_d *SuggestionPreferenceDeleteOne) ExecX(ctx context.Context) {
	if err := _d.Exec(ctx); err != nil {
		panic(err)
	}
}
