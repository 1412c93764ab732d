// Code generated by ent, DO NOT EDIT.

package runnerheartbeat

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/cortexops/playbookd/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id string) predicate.RunnerHeartbeat {
	return predicate.RunnerHeartbeat(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id string) predicate.RunnerHeartbeat {
	return predicate.RunnerHeartbeat(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id string) predicate.RunnerHeartbeat {
	return predicate.RunnerHeartbeat(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...string) predicate.RunnerHeartbeat {
	return predicate.RunnerHeartbeat(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...string) predicate.RunnerHeartbeat {
	return predicate.RunnerHeartbeat(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id string) predicate.RunnerHeartbeat {
	return predicate.RunnerHeartbeat(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id string) predicate.RunnerHeartbeat {
	return predicate.RunnerHeartbeat(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id string) predicate.RunnerHeartbeat {
	return predicate.RunnerHeartbeat(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id string) predicate.RunnerHeartbeat {
	return predicate.RunnerHeartbeat(sql.FieldLTE(FieldID, id))
}

// IDEqualFold applies the EqualFold predicate on the ID field.
func IDEqualFold(id string) predicate.RunnerHeartbeat {
	return predicate.RunnerHeartbeat(sql.FieldEqualFold(FieldID, id))
}

// IDContainsFold applies the ContainsFold predicate on the ID field.
func IDContainsFold(id string) predicate.RunnerHeartbeat {
	return predicate.RunnerHeartbeat(sql.FieldContainsFold(FieldID, id))
}

// HeartbeatAt applies equality check predicate on the "heartbeat_at" field. It's identical to HeartbeatAtEQ.
func HeartbeatAt(v time.Time) predicate.RunnerHeartbeat {
	return predicate.RunnerHeartbeat(sql.FieldEQ(FieldHeartbeatAt, v))
}

// HeartbeatAtEQ applies the EQ predicate on the "heartbeat_at" field.
func HeartbeatAtEQ(v time.Time) predicate.RunnerHeartbeat {
	return predicate.RunnerHeartbeat(sql.FieldEQ(FieldHeartbeatAt, v))
}

// HeartbeatAtNEQ applies the NEQ predicate on the "heartbeat_at" field.
func HeartbeatAtNEQ(v time.Time) predicate.RunnerHeartbeat {
	return predicate.RunnerHeartbeat(sql.FieldNEQ(FieldHeartbeatAt, v))
}

// HeartbeatAtIn applies the In predicate on the "heartbeat_at" field.
func HeartbeatAtIn(vs ...time.Time) predicate.RunnerHeartbeat {
	return predicate.RunnerHeartbeat(sql.FieldIn(FieldHeartbeatAt, vs...))
}

// HeartbeatAtNotIn applies the NotIn predicate on the "heartbeat_at" field.
func HeartbeatAtNotIn(vs ...time.Time) predicate.RunnerHeartbeat {
	return predicate.RunnerHeartbeat(sql.FieldNotIn(FieldHeartbeatAt, vs...))
}

// HeartbeatAtGT applies the GT predicate on the "heartbeat_at" field.
func HeartbeatAtGT(v time.Time) predicate.RunnerHeartbeat {
	return predicate.RunnerHeartbeat(sql.FieldGT(FieldHeartbeatAt, v))
}

// HeartbeatAtGTE applies the GTE predicate on the "heartbeat_at" field.
func HeartbeatAtGTE(v time.Time) predicate.RunnerHeartbeat {
	return predicate.RunnerHeartbeat(sql.FieldGTE(FieldHeartbeatAt, v))
}

// HeartbeatAtLT applies the LT predicate on the "heartbeat_at" field.
func HeartbeatAtLT(v time.Time) predicate.RunnerHeartbeat {
	return predicate.RunnerHeartbeat(sql.FieldLT(FieldHeartbeatAt, v))
}

// HeartbeatAtLTE applies the LTE predicate on the "heartbeat_at" field.
func HeartbeatAtLTE(v time.Time) predicate.RunnerHeartbeat {
	return predicate.RunnerHeartbeat(sql.FieldLTE(FieldHeartbeatAt, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.RunnerHeartbeat) predicate.RunnerHeartbeat {
	return predicate.RunnerHeartbeat(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.RunnerHeartbeat) predicate.RunnerHeartbeat {
	return predicate.RunnerHeartbeat(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.RunnerHeartbeat) predicate.RunnerHeartbeat {
	return predicate.RunnerHeartbeat(sql.NotPredicates(p))
}
