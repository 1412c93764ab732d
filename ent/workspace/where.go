// Code generated by ent, DO NOT EDIT.

package workspace

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/cortexops/playbookd/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id string) predicate.Workspace {
	return predicate.Workspace(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id string) predicate.Workspace {
	return predicate.Workspace(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id string) predicate.Workspace {
	return predicate.Workspace(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...string) predicate.Workspace {
	return predicate.Workspace(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...string) predicate.Workspace {
	return predicate.Workspace(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id string) predicate.Workspace {
	return predicate.Workspace(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id string) predicate.Workspace {
	return predicate.Workspace(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id string) predicate.Workspace {
	return predicate.Workspace(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id string) predicate.Workspace {
	return predicate.Workspace(sql.FieldLTE(FieldID, id))
}

// IDEqualFold applies the EqualFold predicate on the ID field.
func IDEqualFold(id string) predicate.Workspace {
	return predicate.Workspace(sql.FieldEqualFold(FieldID, id))
}

// IDContainsFold applies the ContainsFold predicate on the ID field.
func IDContainsFold(id string) predicate.Workspace {
	return predicate.Workspace(sql.FieldContainsFold(FieldID, id))
}

// OwnerID applies equality check predicate on the "owner_id" field. It's identical to OwnerIDEQ.
func OwnerID(v string) predicate.Workspace {
	return predicate.Workspace(sql.FieldEQ(FieldOwnerID, v))
}

// DefaultLocale applies equality check predicate on the "default_locale" field. It's identical to DefaultLocaleEQ.
func DefaultLocale(v string) predicate.Workspace {
	return predicate.Workspace(sql.FieldEQ(FieldDefaultLocale, v))
}

// StorageRoot applies equality check predicate on the "storage_root" field. It's identical to StorageRootEQ.
func StorageRoot(v string) predicate.Workspace {
	return predicate.Workspace(sql.FieldEQ(FieldStorageRoot, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.Workspace {
	return predicate.Workspace(sql.FieldEQ(FieldCreatedAt, v))
}

// OwnerIDEQ applies the EQ predicate on the "owner_id" field.
func OwnerIDEQ(v string) predicate.Workspace {
	return predicate.Workspace(sql.FieldEQ(FieldOwnerID, v))
}

// OwnerIDNEQ applies the NEQ predicate on the "owner_id" field.
func OwnerIDNEQ(v string) predicate.Workspace {
	return predicate.Workspace(sql.FieldNEQ(FieldOwnerID, v))
}

// OwnerIDIn applies the In predicate on the "owner_id" field.
func OwnerIDIn(vs ...string) predicate.Workspace {
	return predicate.Workspace(sql.FieldIn(FieldOwnerID, vs...))
}

// OwnerIDNotIn applies the NotIn predicate on the "owner_id" field.
func OwnerIDNotIn(vs ...string) predicate.Workspace {
	return predicate.Workspace(sql.FieldNotIn(FieldOwnerID, vs...))
}

// OwnerIDGT applies the GT predicate on the "owner_id" field.
func OwnerIDGT(v string) predicate.Workspace {
	return predicate.Workspace(sql.FieldGT(FieldOwnerID, v))
}

// OwnerIDGTE applies the GTE predicate on the "owner_id" field.
func OwnerIDGTE(v string) predicate.Workspace {
	return predicate.Workspace(sql.FieldGTE(FieldOwnerID, v))
}

// OwnerIDLT applies the LT predicate on the "owner_id" field.
func OwnerIDLT(v string) predicate.Workspace {
	return predicate.Workspace(sql.FieldLT(FieldOwnerID, v))
}

// OwnerIDLTE applies the LTE predicate on the "owner_id" field.
func OwnerIDLTE(v string) predicate.Workspace {
	return predicate.Workspace(sql.FieldLTE(FieldOwnerID, v))
}

// OwnerIDContains applies the Contains predicate on the "owner_id" field.
func OwnerIDContains(v string) predicate.Workspace {
	return predicate.Workspace(sql.FieldContains(FieldOwnerID, v))
}

// OwnerIDHasPrefix applies the HasPrefix predicate on the "owner_id" field.
func OwnerIDHasPrefix(v string) predicate.Workspace {
	return predicate.Workspace(sql.FieldHasPrefix(FieldOwnerID, v))
}

// OwnerIDHasSuffix applies the HasSuffix predicate on the "owner_id" field.
func OwnerIDHasSuffix(v string) predicate.Workspace {
	return predicate.Workspace(sql.FieldHasSuffix(FieldOwnerID, v))
}

// OwnerIDEqualFold applies the EqualFold predicate on the "owner_id" field.
func OwnerIDEqualFold(v string) predicate.Workspace {
	return predicate.Workspace(sql.FieldEqualFold(FieldOwnerID, v))
}

// OwnerIDContainsFold applies the ContainsFold predicate on the "owner_id" field.
func OwnerIDContainsFold(v string) predicate.Workspace {
	return predicate.Workspace(sql.FieldContainsFold(FieldOwnerID, v))
}

// DefaultLocaleEQ applies the EQ predicate on the "default_locale" field.
func DefaultLocaleEQ(v string) predicate.Workspace {
	return predicate.Workspace(sql.FieldEQ(FieldDefaultLocale, v))
}

// DefaultLocaleNEQ applies the NEQ predicate on the "default_locale" field.
func DefaultLocaleNEQ(v string) predicate.Workspace {
	return predicate.Workspace(sql.FieldNEQ(FieldDefaultLocale, v))
}

// DefaultLocaleIn applies the In predicate on the "default_locale" field.
func DefaultLocaleIn(vs ...string) predicate.Workspace {
	return predicate.Workspace(sql.FieldIn(FieldDefaultLocale, vs...))
}

// DefaultLocaleNotIn applies the NotIn predicate on the "default_locale" field.
func DefaultLocaleNotIn(vs ...string) predicate.Workspace {
	return predicate.Workspace(sql.FieldNotIn(FieldDefaultLocale, vs...))
}

// DefaultLocaleGT applies the GT predicate on the "default_locale" field.
func DefaultLocaleGT(v string) predicate.Workspace {
	return predicate.Workspace(sql.FieldGT(FieldDefaultLocale, v))
}

// DefaultLocaleGTE applies the GTE predicate on the "default_locale" field.
func DefaultLocaleGTE(v string) predicate.Workspace {
	return predicate.Workspace(sql.FieldGTE(FieldDefaultLocale, v))
}

// DefaultLocaleLT applies the LT predicate on the "default_locale" field.
func DefaultLocaleLT(v string) predicate.Workspace {
	return predicate.Workspace(sql.FieldLT(FieldDefaultLocale, v))
}

// DefaultLocaleLTE applies the LTE predicate on the "default_locale" field.
func DefaultLocaleLTE(v string) predicate.Workspace {
	return predicate.Workspace(sql.FieldLTE(FieldDefaultLocale, v))
}

// DefaultLocaleContains applies the Contains predicate on the "default_locale" field.
func DefaultLocaleContains(v string) predicate.Workspace {
	return predicate.Workspace(sql.FieldContains(FieldDefaultLocale, v))
}

// DefaultLocaleHasPrefix applies the HasPrefix predicate on the "default_locale" field.
func DefaultLocaleHasPrefix(v string) predicate.Workspace {
	return predicate.Workspace(sql.FieldHasPrefix(FieldDefaultLocale, v))
}

// DefaultLocaleHasSuffix applies the HasSuffix predicate on the "default_locale" field.
func DefaultLocaleHasSuffix(v string) predicate.Workspace {
	return predicate.Workspace(sql.FieldHasSuffix(FieldDefaultLocale, v))
}

// DefaultLocaleEqualFold applies the EqualFold predicate on the "default_locale" field.
func DefaultLocaleEqualFold(v string) predicate.Workspace {
	return predicate.Workspace(sql.FieldEqualFold(FieldDefaultLocale, v))
}

// DefaultLocaleContainsFold applies the ContainsFold predicate on the "default_locale" field.
func DefaultLocaleContainsFold(v string) predicate.Workspace {
	return predicate.Workspace(sql.FieldContainsFold(FieldDefaultLocale, v))
}

// StorageRootEQ applies the EQ predicate on the "storage_root" field.
func StorageRootEQ(v string) predicate.Workspace {
	return predicate.Workspace(sql.FieldEQ(FieldStorageRoot, v))
}

// StorageRootNEQ applies the NEQ predicate on the "storage_root" field.
func StorageRootNEQ(v string) predicate.Workspace {
	return predicate.Workspace(sql.FieldNEQ(FieldStorageRoot, v))
}

// StorageRootIn applies the In predicate on the "storage_root" field.
func StorageRootIn(vs ...string) predicate.Workspace {
	return predicate.Workspace(sql.FieldIn(FieldStorageRoot, vs...))
}

// StorageRootNotIn applies the NotIn predicate on the "storage_root" field.
func StorageRootNotIn(vs ...string) predicate.Workspace {
	return predicate.Workspace(sql.FieldNotIn(FieldStorageRoot, vs...))
}

// StorageRootGT applies the GT predicate on the "storage_root" field.
func StorageRootGT(v string) predicate.Workspace {
	return predicate.Workspace(sql.FieldGT(FieldStorageRoot, v))
}

// StorageRootGTE applies the GTE predicate on the "storage_root" field.
func StorageRootGTE(v string) predicate.Workspace {
	return predicate.Workspace(sql.FieldGTE(FieldStorageRoot, v))
}

// StorageRootLT applies the LT predicate on the "storage_root" field.
func StorageRootLT(v string) predicate.Workspace {
	return predicate.Workspace(sql.FieldLT(FieldStorageRoot, v))
}

// StorageRootLTE applies the LTE predicate on the "storage_root" field.
func StorageRootLTE(v string) predicate.Workspace {
	return predicate.Workspace(sql.FieldLTE(FieldStorageRoot, v))
}

// StorageRootContains applies the Contains predicate on the "storage_root" field.
func StorageRootContains(v string) predicate.Workspace {
	return predicate.Workspace(sql.FieldContains(FieldStorageRoot, v))
}

// StorageRootHasPrefix applies the HasPrefix predicate on the "storage_root" field.
func StorageRootHasPrefix(v string) predicate.Workspace {
	return predicate.Workspace(sql.FieldHasPrefix(FieldStorageRoot, v))
}

// StorageRootHasSuffix applies the HasSuffix predicate on the "storage_root" field.
func StorageRootHasSuffix(v string) predicate.Workspace {
	return predicate.Workspace(sql.FieldHasSuffix(FieldStorageRoot, v))
}

// StorageRootIsNil applies the IsNil predicate on the "storage_root" field.
func StorageRootIsNil() predicate.Workspace {
	return predicate.Workspace(sql.FieldIsNull(FieldStorageRoot))
}

// StorageRootNotNil applies the NotNil predicate on the "storage_root" field.
func StorageRootNotNil() predicate.Workspace {
	return predicate.Workspace(sql.FieldNotNull(FieldStorageRoot))
}

// StorageRootEqualFold applies the EqualFold predicate on the "storage_root" field.
func StorageRootEqualFold(v string) predicate.Workspace {
	return predicate.Workspace(sql.FieldEqualFold(FieldStorageRoot, v))
}

// StorageRootContainsFold applies the ContainsFold predicate on the "storage_root" field.
func StorageRootContainsFold(v string) predicate.Workspace {
	return predicate.Workspace(sql.FieldContainsFold(FieldStorageRoot, v))
}

// AutoExecutionConfigIsNil applies the IsNil predicate on the "auto_execution_config" field.
func AutoExecutionConfigIsNil() predicate.Workspace {
	return predicate.Workspace(sql.FieldIsNull(FieldAutoExecutionConfig))
}

// AutoExecutionConfigNotNil applies the NotNil predicate on the "auto_execution_config" field.
func AutoExecutionConfigNotNil() predicate.Workspace {
	return predicate.Workspace(sql.FieldNotNull(FieldAutoExecutionConfig))
}

// ModeEQ applies the EQ predicate on the "mode" field.
func ModeEQ(v Mode) predicate.Workspace {
	return predicate.Workspace(sql.FieldEQ(FieldMode, v))
}

// ModeNEQ applies the NEQ predicate on the "mode" field.
func ModeNEQ(v Mode) predicate.Workspace {
	return predicate.Workspace(sql.FieldNEQ(FieldMode, v))
}

// ModeIn applies the In predicate on the "mode" field.
func ModeIn(vs ...Mode) predicate.Workspace {
	return predicate.Workspace(sql.FieldIn(FieldMode, vs...))
}

// ModeNotIn applies the NotIn predicate on the "mode" field.
func ModeNotIn(vs ...Mode) predicate.Workspace {
	return predicate.Workspace(sql.FieldNotIn(FieldMode, vs...))
}

// PriorityEQ applies the EQ predicate on the "priority" field.
func PriorityEQ(v Priority) predicate.Workspace {
	return predicate.Workspace(sql.FieldEQ(FieldPriority, v))
}

// PriorityNEQ applies the NEQ predicate on the "priority" field.
func PriorityNEQ(v Priority) predicate.Workspace {
	return predicate.Workspace(sql.FieldNEQ(FieldPriority, v))
}

// PriorityIn applies the In predicate on the "priority" field.
func PriorityIn(vs ...Priority) predicate.Workspace {
	return predicate.Workspace(sql.FieldIn(FieldPriority, vs...))
}

// PriorityNotIn applies the NotIn predicate on the "priority" field.
func PriorityNotIn(vs ...Priority) predicate.Workspace {
	return predicate.Workspace(sql.FieldNotIn(FieldPriority, vs...))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.Workspace {
	return predicate.Workspace(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.Workspace {
	return predicate.Workspace(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.Workspace {
	return predicate.Workspace(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.Workspace {
	return predicate.Workspace(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.Workspace {
	return predicate.Workspace(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.Workspace {
	return predicate.Workspace(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.Workspace {
	return predicate.Workspace(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.Workspace {
	return predicate.Workspace(sql.FieldLTE(FieldCreatedAt, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.Workspace) predicate.Workspace {
	return predicate.Workspace(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.Workspace) predicate.Workspace {
	return predicate.Workspace(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.Workspace) predicate.Workspace {
	return predicate.Workspace(sql.NotPredicates(p))
}
