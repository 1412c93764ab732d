package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// StageResult holds the schema definition for the StageResult entity.
// An intermediate review-worthy output produced during an execution.
type StageResult struct {
	ent.Schema
}

// Fields of the StageResult.
func (StageResult) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("stage_result_id").
			Unique().
			Immutable(),
		field.String("execution_id"),
		field.String("step_id").
			Optional().
			Nillable(),
		field.String("stage_name"),
		field.Enum("result_type").
			Values("draft", "analysis", "design", "data"),
		field.JSON("content", map[string]any{}).
			Optional(),
		field.String("preview").
			Optional(),
		field.Bool("requires_review").
			Default(false),
		field.Enum("review_status").
			Values("pending", "approved", "rejected").
			Default("pending"),
		field.String("artifact_id").
			Optional().
			Nillable(),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
	}
}

// Edges of the StageResult.
func (StageResult) Edges() []ent.Edge {
	return nil
}

// Indexes of the StageResult.
func (StageResult) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("execution_id", "created_at"),
	}
}
