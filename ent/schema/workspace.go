package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// Workspace holds the schema definition for the Workspace entity.
// Created by an external onboarding flow; the execution core only reads it.
type Workspace struct {
	ent.Schema
}

// Fields of the Workspace.
func (Workspace) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("workspace_id").
			Unique().
			Immutable(),
		field.String("owner_id").
			Comment("Owning principal"),
		field.String("default_locale").
			Default("en"),
		field.String("storage_root").
			Optional().
			Comment("Opaque path; validated elsewhere"),
		field.JSON("auto_execution_config", map[string]any{}).
			Optional().
			Comment("pack code → {confidence_threshold, auto_execute}"),
		field.Enum("mode").
			Values("qa", "execution", "hybrid").
			Default("qa"),
		field.Enum("priority").
			Values("low", "medium", "high").
			Default("medium"),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
	}
}

// Edges of the Workspace.
func (Workspace) Edges() []ent.Edge {
	return nil
}

// Indexes of the Workspace.
func (Workspace) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("owner_id"),
	}
}
