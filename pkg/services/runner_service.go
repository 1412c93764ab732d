package services

import (
	"context"
	"fmt"
	"time"

	"github.com/cortexops/playbookd/ent"
	"github.com/cortexops/playbookd/ent/runnerheartbeat"
)

// RunnerService maintains the runner heartbeat table: one row per runner,
// upserted every poll. Schedulers consult HasActiveRunner before
// self-electing to run background work.
type RunnerService struct {
	client *ent.Client
}

// NewRunnerService creates a new RunnerService
func NewRunnerService(client *ent.Client) *RunnerService {
	return &RunnerService{client: client}
}

// UpsertHeartbeat writes now for runnerID, inserting the row on first call
func (s *RunnerService) UpsertHeartbeat(ctx context.Context, runnerID string) error {
	if runnerID == "" {
		return NewValidationError("runner_id", "required")
	}

	writeCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	err := s.client.RunnerHeartbeat.Create().
		SetID(runnerID).
		SetHeartbeatAt(time.Now()).
		OnConflictColumns(runnerheartbeat.FieldID).
		UpdateHeartbeatAt().
		Exec(writeCtx)
	if err != nil {
		return fmt.Errorf("failed to upsert runner heartbeat: %w", err)
	}
	return nil
}

// HasActiveRunner reports whether any runner heartbeated within maxAge
func (s *RunnerService) HasActiveRunner(ctx context.Context, maxAge time.Duration) (bool, error) {
	cutoff := time.Now().Add(-maxAge)

	count, err := s.client.RunnerHeartbeat.Query().
		Where(runnerheartbeat.HeartbeatAtGTE(cutoff)).
		Count(ctx)
	if err != nil {
		return false, fmt.Errorf("failed to query runner heartbeats: %w", err)
	}
	return count > 0, nil
}

// DeleteStale removes heartbeat rows older than maxAge. Housekeeping only;
// liveness checks already filter by age.
func (s *RunnerService) DeleteStale(ctx context.Context, maxAge time.Duration) (int, error) {
	cutoff := time.Now().Add(-maxAge)

	count, err := s.client.RunnerHeartbeat.Delete().
		Where(runnerheartbeat.HeartbeatAtLT(cutoff)).
		Exec(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to delete stale runner heartbeats: %w", err)
	}
	return count, nil
}
