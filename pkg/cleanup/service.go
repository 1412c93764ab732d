// Package cleanup provides data retention enforcement.
package cleanup

import (
	"context"
	"log/slog"
	"time"

	"github.com/cortexops/playbookd/pkg/config"
	"github.com/cortexops/playbookd/pkg/services"
)

// Service periodically enforces retention policy:
//   - Purges terminal tasks past the retention window, cascading into
//     their events, tool calls, stage results and execution mirrors
//   - Removes leftover event rows past their TTL
//
// All operations are idempotent and safe to run from multiple runners.
type Service struct {
	config    *config.RetentionConfig
	tasks     *services.TaskService
	events    *services.EventService
	toolCalls *services.ToolCallService
	stages    *services.StageResultService
	execs     *services.ExecutionService

	cancel context.CancelFunc
	done   chan struct{}
}

// NewService creates a new cleanup service.
func NewService(
	cfg *config.RetentionConfig,
	tasks *services.TaskService,
	events *services.EventService,
	toolCalls *services.ToolCallService,
	stages *services.StageResultService,
	execs *services.ExecutionService,
) *Service {
	return &Service{
		config:    cfg,
		tasks:     tasks,
		events:    events,
		toolCalls: toolCalls,
		stages:    stages,
		execs:     execs,
	}
}

// Start launches the background cleanup loop.
func (s *Service) Start(ctx context.Context) {
	if s.cancel != nil {
		return
	}
	ctx, s.cancel = context.WithCancel(ctx)
	s.done = make(chan struct{})

	go s.run(ctx)

	slog.Info("Cleanup service started",
		"task_retention_days", s.config.TaskRetentionDays,
		"event_ttl", s.config.EventTTL,
		"interval", s.config.CleanupInterval)
}

// Stop signals the cleanup loop to exit and waits for it to finish.
func (s *Service) Stop() {
	if s.cancel == nil {
		return
	}
	s.cancel()
	<-s.done
	slog.Info("Cleanup service stopped")
}

func (s *Service) run(ctx context.Context) {
	defer close(s.done)

	s.RunOnce(ctx)

	ticker := time.NewTicker(s.config.CleanupInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			s.RunOnce(ctx)
		}
	}
}

// RunOnce performs a single retention pass.
func (s *Service) RunOnce(ctx context.Context) {
	s.purgeOldTasks(ctx)
	s.purgeLeftoverEvents(ctx)
}

func (s *Service) purgeOldTasks(ctx context.Context) {
	retention := time.Duration(s.config.TaskRetentionDays) * 24 * time.Hour
	ids, err := s.tasks.PurgeTerminalTasks(ctx, retention)
	if err != nil {
		slog.Error("Retention: task purge failed", "error", err)
		return
	}
	if len(ids) == 0 {
		return
	}

	if _, err := s.events.PurgeForEntities(ctx, ids); err != nil {
		slog.Error("Retention: event cascade failed", "error", err)
	}
	if _, err := s.toolCalls.PurgeForExecutions(ctx, ids); err != nil {
		slog.Error("Retention: tool call cascade failed", "error", err)
	}
	if _, err := s.stages.PurgeForExecutions(ctx, ids); err != nil {
		slog.Error("Retention: stage result cascade failed", "error", err)
	}
	if _, err := s.execs.PurgeMirrors(ctx, ids); err != nil {
		slog.Error("Retention: mirror cascade failed", "error", err)
	}

	slog.Info("Retention: purged old tasks", "count", len(ids))
}

func (s *Service) purgeLeftoverEvents(ctx context.Context) {
	count, err := s.events.PurgeOlderThan(ctx, s.config.EventTTL)
	if err != nil {
		slog.Error("Retention: event cleanup failed", "error", err)
		return
	}
	if count > 0 {
		slog.Info("Retention: cleaned up leftover events", "count", count)
	}
}
