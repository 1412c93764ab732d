package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// SuggestionPreference holds the schema definition for the
// SuggestionPreference entity. One row per (workspace, user, pack,
// task_type); can disable auto-suggestion for a pack.
type SuggestionPreference struct {
	ent.Schema
}

// Fields of the SuggestionPreference.
func (SuggestionPreference) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("preference_id").
			Unique().
			Immutable(),
		field.String("workspace_id"),
		field.String("user_id"),
		field.String("pack_id"),
		field.String("task_type"),
		field.Bool("auto_suggest_enabled").
			Default(true),
		field.Time("updated_at").
			Default(time.Now),
	}
}

// Edges of the SuggestionPreference.
func (SuggestionPreference) Edges() []ent.Edge {
	return nil
}

// Indexes of the SuggestionPreference.
func (SuggestionPreference) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("workspace_id", "user_id", "pack_id", "task_type").
			Unique(),
	}
}
