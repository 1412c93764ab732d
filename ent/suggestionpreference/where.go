// Code generated by ent, DO NOT EDIT.

package suggestionpreference

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/cortexops/playbookd/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id string) predicate.SuggestionPreference {
	return predicate.SuggestionPreference(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id string) predicate.SuggestionPreference {
	return predicate.SuggestionPreference(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id string) predicate.SuggestionPreference {
	return predicate.SuggestionPreference(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...string) predicate.SuggestionPreference {
	return predicate.SuggestionPreference(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...string) predicate.SuggestionPreference {
	return predicate.SuggestionPreference(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id string) predicate.SuggestionPreference {
	return predicate.SuggestionPreference(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id string) predicate.SuggestionPreference {
	return predicate.SuggestionPreference(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id string) predicate.SuggestionPreference {
	return predicate.SuggestionPreference(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id string) predicate.SuggestionPreference {
	return predicate.SuggestionPreference(sql.FieldLTE(FieldID, id))
}

// IDEqualFold applies the EqualFold predicate on the ID field.
func IDEqualFold(id string) predicate.SuggestionPreference {
	return predicate.SuggestionPreference(sql.FieldEqualFold(FieldID, id))
}

// IDContainsFold applies the ContainsFold predicate on the ID field.
func IDContainsFold(id string) predicate.SuggestionPreference {
	return predicate.SuggestionPreference(sql.FieldContainsFold(FieldID, id))
}

// WorkspaceID applies equality check predicate on the "workspace_id" field. It's identical to WorkspaceIDEQ.
func WorkspaceID(v string) predicate.SuggestionPreference {
	return predicate.SuggestionPreference(sql.FieldEQ(FieldWorkspaceID, v))
}

// UserID applies equality check predicate on the "user_id" field. It's identical to UserIDEQ.
func UserID(v string) predicate.SuggestionPreference {
	return predicate.SuggestionPreference(sql.FieldEQ(FieldUserID, v))
}

// PackID applies equality check predicate on the "pack_id" field. It's identical to PackIDEQ.
func PackID(v string) predicate.SuggestionPreference {
	return predicate.SuggestionPreference(sql.FieldEQ(FieldPackID, v))
}

// TaskType applies equality check predicate on the "task_type" field. It's identical to TaskTypeEQ.
func TaskType(v string) predicate.SuggestionPreference {
	return predicate.SuggestionPreference(sql.FieldEQ(FieldTaskType, v))
}

// AutoSuggestEnabled applies equality check predicate on the "auto_suggest_enabled" field. It's identical to AutoSuggestEnabledEQ.
func AutoSuggestEnabled(v bool) predicate.SuggestionPreference {
	return predicate.SuggestionPreference(sql.FieldEQ(FieldAutoSuggestEnabled, v))
}

// UpdatedAt applies equality check predicate on the "updated_at" field. It's identical to UpdatedAtEQ.
func UpdatedAt(v time.Time) predicate.SuggestionPreference {
	return predicate.SuggestionPreference(sql.FieldEQ(FieldUpdatedAt, v))
}

// WorkspaceIDEQ applies the EQ predicate on the "workspace_id" field.
func WorkspaceIDEQ(v string) predicate.SuggestionPreference {
	return predicate.SuggestionPreference(sql.FieldEQ(FieldWorkspaceID, v))
}

// WorkspaceIDNEQ applies the NEQ predicate on the "workspace_id" field.
func WorkspaceIDNEQ(v string) predicate.SuggestionPreference {
	return predicate.SuggestionPreference(sql.FieldNEQ(FieldWorkspaceID, v))
}

// WorkspaceIDIn applies the In predicate on the "workspace_id" field.
func WorkspaceIDIn(vs ...string) predicate.SuggestionPreference {
	return predicate.SuggestionPreference(sql.FieldIn(FieldWorkspaceID, vs...))
}

// WorkspaceIDNotIn applies the NotIn predicate on the "workspace_id" field.
func WorkspaceIDNotIn(vs ...string) predicate.SuggestionPreference {
	return predicate.SuggestionPreference(sql.FieldNotIn(FieldWorkspaceID, vs...))
}

// WorkspaceIDGT applies the GT predicate on the "workspace_id" field.
func WorkspaceIDGT(v string) predicate.SuggestionPreference {
	return predicate.SuggestionPreference(sql.FieldGT(FieldWorkspaceID, v))
}

// WorkspaceIDGTE applies the GTE predicate on the "workspace_id" field.
func WorkspaceIDGTE(v string) predicate.SuggestionPreference {
	return predicate.SuggestionPreference(sql.FieldGTE(FieldWorkspaceID, v))
}

// WorkspaceIDLT applies the LT predicate on the "workspace_id" field.
func WorkspaceIDLT(v string) predicate.SuggestionPreference {
	return predicate.SuggestionPreference(sql.FieldLT(FieldWorkspaceID, v))
}

// WorkspaceIDLTE applies the LTE predicate on the "workspace_id" field.
func WorkspaceIDLTE(v string) predicate.SuggestionPreference {
	return predicate.SuggestionPreference(sql.FieldLTE(FieldWorkspaceID, v))
}

// WorkspaceIDContains applies the Contains predicate on the "workspace_id" field.
func WorkspaceIDContains(v string) predicate.SuggestionPreference {
	return predicate.SuggestionPreference(sql.FieldContains(FieldWorkspaceID, v))
}

// WorkspaceIDHasPrefix applies the HasPrefix predicate on the "workspace_id" field.
func WorkspaceIDHasPrefix(v string) predicate.SuggestionPreference {
	return predicate.SuggestionPreference(sql.FieldHasPrefix(FieldWorkspaceID, v))
}

// WorkspaceIDHasSuffix applies the HasSuffix predicate on the "workspace_id" field.
func WorkspaceIDHasSuffix(v string) predicate.SuggestionPreference {
	return predicate.SuggestionPreference(sql.FieldHasSuffix(FieldWorkspaceID, v))
}

// WorkspaceIDEqualFold applies the EqualFold predicate on the "workspace_id" field.
func WorkspaceIDEqualFold(v string) predicate.SuggestionPreference {
	return predicate.SuggestionPreference(sql.FieldEqualFold(FieldWorkspaceID, v))
}

// WorkspaceIDContainsFold applies the ContainsFold predicate on the "workspace_id" field.
func WorkspaceIDContainsFold(v string) predicate.SuggestionPreference {
	return predicate.SuggestionPreference(sql.FieldContainsFold(FieldWorkspaceID, v))
}

// UserIDEQ applies the EQ predicate on the "user_id" field.
func UserIDEQ(v string) predicate.SuggestionPreference {
	return predicate.SuggestionPreference(sql.FieldEQ(FieldUserID, v))
}

// UserIDNEQ applies the NEQ predicate on the "user_id" field.
func UserIDNEQ(v string) predicate.SuggestionPreference {
	return predicate.SuggestionPreference(sql.FieldNEQ(FieldUserID, v))
}

// UserIDIn applies the In predicate on the "user_id" field.
func UserIDIn(vs ...string) predicate.SuggestionPreference {
	return predicate.SuggestionPreference(sql.FieldIn(FieldUserID, vs...))
}

// UserIDNotIn applies the NotIn predicate on the "user_id" field.
func UserIDNotIn(vs ...string) predicate.SuggestionPreference {
	return predicate.SuggestionPreference(sql.FieldNotIn(FieldUserID, vs...))
}

// UserIDGT applies the GT predicate on the "user_id" field.
func UserIDGT(v string) predicate.SuggestionPreference {
	return predicate.SuggestionPreference(sql.FieldGT(FieldUserID, v))
}

// UserIDGTE applies the GTE predicate on the "user_id" field.
func UserIDGTE(v string) predicate.SuggestionPreference {
	return predicate.SuggestionPreference(sql.FieldGTE(FieldUserID, v))
}

// UserIDLT applies the LT predicate on the "user_id" field.
func UserIDLT(v string) predicate.SuggestionPreference {
	return predicate.SuggestionPreference(sql.FieldLT(FieldUserID, v))
}

// UserIDLTE applies the LTE predicate on the "user_id" field.
func UserIDLTE(v string) predicate.SuggestionPreference {
	return predicate.SuggestionPreference(sql.FieldLTE(FieldUserID, v))
}

// UserIDContains applies the Contains predicate on the "user_id" field.
func UserIDContains(v string) predicate.SuggestionPreference {
	return predicate.SuggestionPreference(sql.FieldContains(FieldUserID, v))
}

// UserIDHasPrefix applies the HasPrefix predicate on the "user_id" field.
func UserIDHasPrefix(v string) predicate.SuggestionPreference {
	return predicate.SuggestionPreference(sql.FieldHasPrefix(FieldUserID, v))
}

// UserIDHasSuffix applies the HasSuffix predicate on the "user_id" field.
func UserIDHasSuffix(v string) predicate.SuggestionPreference {
	return predicate.SuggestionPreference(sql.FieldHasSuffix(FieldUserID, v))
}

// UserIDEqualFold applies the EqualFold predicate on the "user_id" field.
func UserIDEqualFold(v string) predicate.SuggestionPreference {
	return predicate.SuggestionPreference(sql.FieldEqualFold(FieldUserID, v))
}

// UserIDContainsFold applies the ContainsFold predicate on the "user_id" field.
func UserIDContainsFold(v string) predicate.SuggestionPreference {
	return predicate.SuggestionPreference(sql.FieldContainsFold(FieldUserID, v))
}

// PackIDEQ applies the EQ predicate on the "pack_id" field.
func PackIDEQ(v string) predicate.SuggestionPreference {
	return predicate.SuggestionPreference(sql.FieldEQ(FieldPackID, v))
}

// PackIDNEQ applies the NEQ predicate on the "pack_id" field.
func PackIDNEQ(v string) predicate.SuggestionPreference {
	return predicate.SuggestionPreference(sql.FieldNEQ(FieldPackID, v))
}

// PackIDIn applies the In predicate on the "pack_id" field.
func PackIDIn(vs ...string) predicate.SuggestionPreference {
	return predicate.SuggestionPreference(sql.FieldIn(FieldPackID, vs...))
}

// PackIDNotIn applies the NotIn predicate on the "pack_id" field.
func PackIDNotIn(vs ...string) predicate.SuggestionPreference {
	return predicate.SuggestionPreference(sql.FieldNotIn(FieldPackID, vs...))
}

// PackIDGT applies the GT predicate on the "pack_id" field.
func PackIDGT(v string) predicate.SuggestionPreference {
	return predicate.SuggestionPreference(sql.FieldGT(FieldPackID, v))
}

// PackIDGTE applies the GTE predicate on the "pack_id" field.
func PackIDGTE(v string) predicate.SuggestionPreference {
	return predicate.SuggestionPreference(sql.FieldGTE(FieldPackID, v))
}

// PackIDLT applies the LT predicate on the "pack_id" field.
func PackIDLT(v string) predicate.SuggestionPreference {
	return predicate.SuggestionPreference(sql.FieldLT(FieldPackID, v))
}

// PackIDLTE applies the LTE predicate on the "pack_id" field.
func PackIDLTE(v string) predicate.SuggestionPreference {
	return predicate.SuggestionPreference(sql.FieldLTE(FieldPackID, v))
}

// PackIDContains applies the Contains predicate on the "pack_id" field.
func PackIDContains(v string) predicate.SuggestionPreference {
	return predicate.SuggestionPreference(sql.FieldContains(FieldPackID, v))
}

// PackIDHasPrefix applies the HasPrefix predicate on the "pack_id" field.
func PackIDHasPrefix(v string) predicate.SuggestionPreference {
	return predicate.SuggestionPreference(sql.FieldHasPrefix(FieldPackID, v))
}

// PackIDHasSuffix applies the HasSuffix predicate on the "pack_id" field.
func PackIDHasSuffix(v string) predicate.SuggestionPreference {
	return predicate.SuggestionPreference(sql.FieldHasSuffix(FieldPackID, v))
}

// PackIDEqualFold applies the EqualFold predicate on the "pack_id" field.
func PackIDEqualFold(v string) predicate.SuggestionPreference {
	return predicate.SuggestionPreference(sql.FieldEqualFold(FieldPackID, v))
}

// PackIDContainsFold applies the ContainsFold predicate on the "pack_id" field.
func PackIDContainsFold(v string) predicate.SuggestionPreference {
	return predicate.SuggestionPreference(sql.FieldContainsFold(FieldPackID, v))
}

// TaskTypeEQ applies the EQ predicate on the "task_type" field.
func TaskTypeEQ(v string) predicate.SuggestionPreference {
	return predicate.SuggestionPreference(sql.FieldEQ(FieldTaskType, v))
}

// TaskTypeNEQ applies the NEQ predicate on the "task_type" field.
func TaskTypeNEQ(v string) predicate.SuggestionPreference {
	return predicate.SuggestionPreference(sql.FieldNEQ(FieldTaskType, v))
}

// TaskTypeIn applies the In predicate on the "task_type" field.
func TaskTypeIn(vs ...string) predicate.SuggestionPreference {
	return predicate.SuggestionPreference(sql.FieldIn(FieldTaskType, vs...))
}

// TaskTypeNotIn applies the NotIn predicate on the "task_type" field.
func TaskTypeNotIn(vs ...string) predicate.SuggestionPreference {
	return predicate.SuggestionPreference(sql.FieldNotIn(FieldTaskType, vs...))
}

// TaskTypeGT applies the GT predicate on the "task_type" field.
func TaskTypeGT(v string) predicate.SuggestionPreference {
	return predicate.SuggestionPreference(sql.FieldGT(FieldTaskType, v))
}

// TaskTypeGTE applies the GTE predicate on the "task_type" field.
func TaskTypeGTE(v string) predicate.SuggestionPreference {
	return predicate.SuggestionPreference(sql.FieldGTE(FieldTaskType, v))
}

// TaskTypeLT applies the LT predicate on the "task_type" field.
func TaskTypeLT(v string) predicate.SuggestionPreference {
	return predicate.SuggestionPreference(sql.FieldLT(FieldTaskType, v))
}

// TaskTypeLTE applies the LTE predicate on the "task_type" field.
func TaskTypeLTE(v string) predicate.SuggestionPreference {
	return predicate.SuggestionPreference(sql.FieldLTE(FieldTaskType, v))
}

// TaskTypeContains applies the Contains predicate on the "task_type" field.
func TaskTypeContains(v string) predicate.SuggestionPreference {
	return predicate.SuggestionPreference(sql.FieldContains(FieldTaskType, v))
}

// TaskTypeHasPrefix applies the HasPrefix predicate on the "task_type" field.
func TaskTypeHasPrefix(v string) predicate.SuggestionPreference {
	return predicate.SuggestionPreference(sql.FieldHasPrefix(FieldTaskType, v))
}

// TaskTypeHasSuffix applies the HasSuffix predicate on the "task_type" field.
func TaskTypeHasSuffix(v string) predicate.SuggestionPreference {
	return predicate.SuggestionPreference(sql.FieldHasSuffix(FieldTaskType, v))
}

// TaskTypeEqualFold applies the EqualFold predicate on the "task_type" field.
func TaskTypeEqualFold(v string) predicate.SuggestionPreference {
	return predicate.SuggestionPreference(sql.FieldEqualFold(FieldTaskType, v))
}

// TaskTypeContainsFold applies the ContainsFold predicate on the "task_type" field.
func TaskTypeContainsFold(v string) predicate.SuggestionPreference {
	return predicate.SuggestionPreference(sql.FieldContainsFold(FieldTaskType, v))
}

// AutoSuggestEnabledEQ applies the EQ predicate on the "auto_suggest_enabled" field.
func AutoSuggestEnabledEQ(v bool) predicate.SuggestionPreference {
	return predicate.SuggestionPreference(sql.FieldEQ(FieldAutoSuggestEnabled, v))
}

// AutoSuggestEnabledNEQ applies the NEQ predicate on the "auto_suggest_enabled" field.
func AutoSuggestEnabledNEQ(v bool) predicate.SuggestionPreference {
	return predicate.SuggestionPreference(sql.FieldNEQ(FieldAutoSuggestEnabled, v))
}

// UpdatedAtEQ applies the EQ predicate on the "updated_at" field.
func UpdatedAtEQ(v time.Time) predicate.SuggestionPreference {
	return predicate.SuggestionPreference(sql.FieldEQ(FieldUpdatedAt, v))
}

// UpdatedAtNEQ applies the NEQ predicate on the "updated_at" field.
func UpdatedAtNEQ(v time.Time) predicate.SuggestionPreference {
	return predicate.SuggestionPreference(sql.FieldNEQ(FieldUpdatedAt, v))
}

// UpdatedAtIn applies the In predicate on the "updated_at" field.
func UpdatedAtIn(vs ...time.Time) predicate.SuggestionPreference {
	return predicate.SuggestionPreference(sql.FieldIn(FieldUpdatedAt, vs...))
}

// UpdatedAtNotIn applies the NotIn predicate on the "updated_at" field.
func UpdatedAtNotIn(vs ...time.Time) predicate.SuggestionPreference {
	return predicate.SuggestionPreference(sql.FieldNotIn(FieldUpdatedAt, vs...))
}

// UpdatedAtGT applies the GT predicate on the "updated_at" field.
func UpdatedAtGT(v time.Time) predicate.SuggestionPreference {
	return predicate.SuggestionPreference(sql.FieldGT(FieldUpdatedAt, v))
}

// UpdatedAtGTE applies the GTE predicate on the "updated_at" field.
func UpdatedAtGTE(v time.Time) predicate.SuggestionPreference {
	return predicate.SuggestionPreference(sql.FieldGTE(FieldUpdatedAt, v))
}

// UpdatedAtLT applies the LT predicate on the "updated_at" field.
func UpdatedAtLT(v time.Time) predicate.SuggestionPreference {
	return predicate.SuggestionPreference(sql.FieldLT(FieldUpdatedAt, v))
}

// UpdatedAtLTE applies the LTE predicate on the "updated_at" field.
func UpdatedAtLTE(v time.Time) predicate.SuggestionPreference {
	return predicate.SuggestionPreference(sql.FieldLTE(FieldUpdatedAt, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.SuggestionPreference) predicate.SuggestionPreference {
	return predicate.SuggestionPreference(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.SuggestionPreference) predicate.SuggestionPreference {
	return predicate.SuggestionPreference(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.SuggestionPreference) predicate.SuggestionPreference {
	return predicate.SuggestionPreference(sql.NotPredicates(p))
}
