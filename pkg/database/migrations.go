package database

import (
	"context"
	"fmt"

	"entgo.io/ent/dialect/sql"
)

// CreateGINIndexes creates JSONB GIN indexes for PostgreSQL.
// These indexes support containment queries on event payloads and task
// execution context (runner_id lookups, duplicate-suggestion probes).
func CreateGINIndexes(ctx context.Context, driver *sql.Driver) error {
	db := driver.DB()

	_, err := db.ExecContext(ctx,
		`CREATE INDEX IF NOT EXISTS idx_mind_events_payload_gin
		ON mind_events USING gin(payload jsonb_path_ops)`)
	if err != nil {
		return fmt.Errorf("failed to create mind_events payload GIN index: %w", err)
	}

	_, err = db.ExecContext(ctx,
		`CREATE INDEX IF NOT EXISTS idx_tasks_execution_context_gin
		ON tasks USING gin(execution_context jsonb_path_ops)`)
	if err != nil {
		return fmt.Errorf("failed to create tasks execution_context GIN index: %w", err)
	}

	return nil
}
