package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// ToolCall holds the schema definition for the ToolCall entity.
// One row per tool invocation, written before dispatch and finalized after.
type ToolCall struct {
	ent.Schema
}

// Fields of the ToolCall.
func (ToolCall) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("tool_call_id").
			Unique().
			Immutable(),
		field.String("execution_id"),
		field.String("step_id").
			Optional().
			Nillable(),
		field.String("tool_name").
			Comment("Fully qualified, e.g. filesystem.write_file"),
		field.JSON("parameters", map[string]any{}).
			Optional(),
		field.JSON("response", map[string]any{}).
			Optional(),
		field.Enum("status").
			Values("pending", "completed", "failed").
			Default("pending"),
		field.String("error").
			Optional().
			Nillable(),
		field.Int("duration_ms").
			Optional().
			Nillable(),
		field.String("factory_cluster").
			Comment("Dispatch channel: local_mcp, sem-hub, wp-hub, n8n"),
		field.Time("started_at"),
		field.Time("completed_at").
			Optional().
			Nillable(),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
	}
}

// Edges of the ToolCall.
func (ToolCall) Edges() []ent.Edge {
	return nil
}

// Indexes of the ToolCall.
func (ToolCall) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("execution_id", "created_at"),
		index.Fields("execution_id", "started_at"),
	}
}
