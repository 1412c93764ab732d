package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// Artifact holds the schema definition for the Artifact entity.
// At most one artifact per (workspace, playbook_code, artifact_type) chain
// carries is_latest=true; the marker flip is atomic within ArtifactService.
type Artifact struct {
	ent.Schema
}

// Fields of the Artifact.
func (Artifact) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("artifact_id").
			Unique().
			Immutable(),
		field.String("workspace_id"),
		field.String("intent_id").
			Optional().
			Nillable(),
		field.String("task_id").
			Optional().
			Nillable(),
		field.String("execution_id"),
		field.String("playbook_code"),
		field.Enum("artifact_type").
			Values("docx", "draft", "checklist", "config", "audio", "canva", "post", "other"),
		field.String("title"),
		field.Text("summary").
			Optional(),
		field.JSON("content", map[string]any{}).
			Optional(),
		field.String("storage_ref").
			Optional().
			Nillable().
			Comment("Opaque path or URL to the rendered bytes"),
		field.Enum("sync_state").
			Values("pending", "synced", "failed").
			Optional().
			Nillable(),
		field.Enum("primary_action_type").
			Values("copy", "download", "open_external").
			Default("copy"),
		field.Int("version").
			Default(1),
		field.Bool("is_latest").
			Default(true),
		field.JSON("metadata", map[string]any{}).
			Optional(),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
		field.Time("updated_at").
			Default(time.Now),
	}
}

// Edges of the Artifact.
func (Artifact) Edges() []ent.Edge {
	return nil
}

// Indexes of the Artifact.
func (Artifact) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("execution_id"),
		index.Fields("workspace_id", "playbook_code", "artifact_type", "is_latest"),
	}
}
