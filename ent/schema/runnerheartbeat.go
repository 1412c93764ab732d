package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
)

// RunnerHeartbeat holds the schema definition for the RunnerHeartbeat
// entity. One row per worker runner, upserted every poll. Schedulers use it
// to decide whether any runner is alive before self-electing.
type RunnerHeartbeat struct {
	ent.Schema
}

// Fields of the RunnerHeartbeat.
func (RunnerHeartbeat) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("runner_id").
			Unique().
			Immutable(),
		field.Time("heartbeat_at").
			Default(time.Now),
	}
}

// Edges of the RunnerHeartbeat.
func (RunnerHeartbeat) Edges() []ent.Edge {
	return nil
}
