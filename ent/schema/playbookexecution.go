package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// PlaybookExecution holds the schema definition for the PlaybookExecution
// entity. task.status is authoritative; this row is a status projection plus
// the place explicit checkpoint documents are written.
type PlaybookExecution struct {
	ent.Schema
}

// Fields of the PlaybookExecution.
func (PlaybookExecution) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("execution_id").
			Unique().
			Immutable(),
		field.String("workspace_id"),
		field.String("playbook_code"),
		field.String("status").
			Default("running").
			Comment("Projection of task.status; never written independently"),
		field.Int("current_step_index").
			Optional().
			Nillable(),
		field.Int("total_steps").
			Optional().
			Nillable(),
		field.JSON("snapshot", map[string]any{}).
			Optional().
			Comment("Latest checkpoint document (full execution context)"),
		field.JSON("phase_summaries", []map[string]any{}).
			Optional(),
		field.String("intent_id").
			Optional().
			Nillable(),
		field.JSON("failure_metadata", map[string]any{}).
			Optional(),
		field.Bool("supports_resume").
			Default(false),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
		field.Time("updated_at").
			Default(time.Now),
		field.Time("completed_at").
			Optional().
			Nillable(),
	}
}

// Edges of the PlaybookExecution.
func (PlaybookExecution) Edges() []ent.Edge {
	return nil
}

// Indexes of the PlaybookExecution.
func (PlaybookExecution) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("workspace_id", "status"),
		index.Fields("playbook_code"),
	}
}
