package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// Task holds the schema definition for the Task entity.
// A task of type playbook_execution shares its ID with the execution it
// backs; a suggestion is a pending task awaiting user consent.
type Task struct {
	ent.Schema
}

// Fields of the Task.
func (Task) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("task_id").
			Unique().
			Immutable(),
		field.String("workspace_id"),
		field.String("execution_id").
			Optional().
			Nillable().
			Comment("Correlates with the event log; usually equals the task ID"),
		field.String("project_id").
			Optional().
			Nillable().
			Comment("Denormalized grouping"),
		field.String("pack_id").
			Comment("Playbook code or capability code"),
		field.Enum("task_type").
			Values("playbook_execution", "suggestion", "agent_dispatch", "execution", "intent_extraction", "semantic_extraction"),
		field.Enum("status").
			Values("pending", "running", "waiting_confirmation", "succeeded", "failed", "cancelled_by_user", "expired").
			Default("pending"),
		field.JSON("params", map[string]any{}).
			Optional(),
		field.JSON("result", map[string]any{}).
			Optional(),
		field.JSON("execution_context", map[string]any{}).
			Optional().
			Comment("Durable mid-run state: conversation snapshot, step counters, runner id, heartbeat, failure metadata"),
		field.JSON("storyline_tags", []string{}).
			Optional(),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
		field.Time("started_at").
			Optional().
			Nillable().
			Comment("When a runner claimed the task (pending → running)"),
		field.Time("completed_at").
			Optional().
			Nillable().
			Comment("Set exactly once, when the task reaches a terminal status"),
		field.String("error").
			Optional().
			Nillable(),
	}
}

// Edges of the Task.
func (Task) Edges() []ent.Edge {
	return nil
}

// Indexes of the Task.
func (Task) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("status"),
		index.Fields("pack_id"),
		index.Fields("execution_id"),
		index.Fields("workspace_id", "status", "created_at"),
		index.Fields("task_type", "status", "created_at"),
	}
}
