package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// MindEvent holds the schema definition for the MindEvent entity.
// Step transitions, chat turns, tool-call mirrors and agent hand-offs are
// all recorded here; the streaming projection reads from this table.
type MindEvent struct {
	ent.Schema
}

// Fields of the MindEvent.
func (MindEvent) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("event_id").
			Unique().
			Immutable(),
		field.String("workspace_id"),
		field.String("profile_id").
			Optional().
			Nillable(),
		field.String("thread_id").
			Optional().
			Nillable(),
		field.JSON("entity_ids", []string{}).
			Optional().
			Comment("Cross-references, e.g. the execution_id a step belongs to"),
		field.Enum("actor").
			Values("user", "assistant", "system", "agent"),
		field.String("event_type").
			Comment("message, playbook_step, execution_chat, tool_call, agent_execution, ..."),
		field.JSON("payload", map[string]any{}).
			Optional(),
		field.JSON("metadata", map[string]any{}).
			Optional(),
		field.Time("timestamp").
			Default(time.Now),
	}
}

// Edges of the MindEvent.
func (MindEvent) Edges() []ent.Edge {
	return nil
}

// Indexes of the MindEvent.
func (MindEvent) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("timestamp"),
		index.Fields("workspace_id", "event_type", "timestamp"),
	}
}
