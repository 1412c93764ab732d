package queue

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/cortexops/playbookd/pkg/config"
	"github.com/cortexops/playbookd/pkg/models"
	"github.com/cortexops/playbookd/pkg/playbook"
	"github.com/cortexops/playbookd/pkg/services"
)

// RunnerPool manages the worker goroutines plus the background liveness
// loops: runner heartbeat row, zombie reaper, timeout sweep, suggestion
// expiry.
type RunnerPool struct {
	runnerID string
	tasks    *services.TaskService
	events   *services.EventService
	runners  *services.RunnerService
	registry *playbook.Registry
	config   *config.QueueConfig
	executor TaskExecutor
	workers  []*Worker
	stopCh   chan struct{}
	stopOnce sync.Once
	wg       sync.WaitGroup

	// Execution cancel registry: execution_id → cancel function
	active  map[string]context.CancelFunc
	mu      sync.RWMutex
	started bool

	// Reaper state for health reporting
	reapMu       sync.Mutex
	lastReapScan time.Time
	tasksReaped  int
}

// NewRunnerPool creates a new runner pool.
func NewRunnerPool(runnerID string, tasks *services.TaskService, events *services.EventService, runners *services.RunnerService, registry *playbook.Registry, cfg *config.QueueConfig, executor TaskExecutor) *RunnerPool {
	return &RunnerPool{
		runnerID: runnerID,
		tasks:    tasks,
		events:   events,
		runners:  runners,
		registry: registry,
		config:   cfg,
		executor: executor,
		workers:  make([]*Worker, 0, cfg.RunnerCount),
		stopCh:   make(chan struct{}),
		active:   make(map[string]context.CancelFunc),
	}
}

// Start spawns worker goroutines and the background liveness loops.
// It is safe to call multiple times; subsequent calls are no-ops.
func (p *RunnerPool) Start(ctx context.Context) error {
	if p.started {
		slog.Warn("Runner pool already started, ignoring duplicate Start call", "runner_id", p.runnerID)
		return nil
	}
	p.started = true

	slog.Info("Starting runner pool", "runner_id", p.runnerID, "worker_count", p.config.RunnerCount)

	for i := 0; i < p.config.RunnerCount; i++ {
		workerID := fmt.Sprintf("%s-worker-%d", p.runnerID, i)
		worker := NewWorker(workerID, p.runnerID, p.tasks, p.registry, p.config, p.executor, p)
		p.workers = append(p.workers, worker)
		worker.Start(ctx)
	}

	p.spawn(func() { p.runLivenessHeartbeat(ctx) })
	p.spawn(func() { p.runReaper(ctx) })

	slog.Info("Runner pool started")
	return nil
}

// Stop signals all workers to stop, waits for them, and marks any tasks
// still running under this pool's workers with the restart-interruption
// error so a restarted pool's heartbeat revives them.
func (p *RunnerPool) Stop() {
	slog.Info("Stopping runner pool gracefully")

	active := p.activeExecutionIDs()
	if len(active) > 0 {
		slog.Info("Waiting for active executions to checkpoint",
			"count", len(active), "execution_ids", active)
	}

	for _, worker := range p.workers {
		worker.Stop()
	}

	p.stopOnce.Do(func() { close(p.stopCh) })
	p.wg.Wait()

	// Whatever is still running after worker shutdown was interrupted
	// mid-flight; leave the resurrectable marker.
	n, err := p.tasks.MarkInterruptedByRunners(context.Background(), []string{p.runnerID})
	if err != nil {
		slog.Error("Failed to mark interrupted tasks", "error", err)
	} else if n > 0 {
		slog.Info("Marked interrupted tasks for revival", "count", n)
	}

	slog.Info("Runner pool stopped gracefully")
}

// RegisterExecution stores a cancel function for manual cancellation.
func (p *RunnerPool) RegisterExecution(executionID string, cancel context.CancelFunc) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.active[executionID] = cancel
}

// UnregisterExecution removes the cancel function when processing ends.
func (p *RunnerPool) UnregisterExecution(executionID string) {
	p.mu.Lock()
	defer p.mu.Unlock()
	delete(p.active, executionID)
}

// CancelExecution triggers context cancellation for an execution running on
// this pool. Returns true if it was found here.
func (p *RunnerPool) CancelExecution(executionID string) bool {
	p.mu.RLock()
	defer p.mu.RUnlock()
	if cancel, ok := p.active[executionID]; ok {
		cancel()
		return true
	}
	return false
}

// Health returns the current health status of the pool.
func (p *RunnerPool) Health() *PoolHealth {
	ctx := context.Background()

	queueDepth := 0
	pending, errQ := p.tasks.ListRunnable(ctx, 100)
	if errQ != nil {
		slog.Error("Failed to query queue depth for health check",
			"runner_id", p.runnerID, "error", errQ)
	} else {
		queueDepth = len(pending)
	}

	running, errR := p.tasks.CountRunning(ctx)
	if errR != nil {
		slog.Error("Failed to query running tasks for health check",
			"runner_id", p.runnerID, "error", errR)
	}

	workerStats := make([]WorkerHealth, len(p.workers))
	activeWorkers := 0
	for i, worker := range p.workers {
		stats := worker.Health()
		workerStats[i] = stats
		if stats.Status == WorkerStatusWorking {
			activeWorkers++
		}
	}

	dbHealthy := errQ == nil && errR == nil
	isHealthy := len(p.workers) > 0 && running <= p.config.MaxConcurrentTasks && dbHealthy

	var dbError string
	if errQ != nil {
		dbError = fmt.Sprintf("queue depth query failed: %v", errQ)
	} else if errR != nil {
		dbError = fmt.Sprintf("running count query failed: %v", errR)
	}

	p.reapMu.Lock()
	lastReapScan := p.lastReapScan
	tasksReaped := p.tasksReaped
	p.reapMu.Unlock()

	return &PoolHealth{
		IsHealthy:     isHealthy,
		DBReachable:   dbHealthy,
		DBError:       dbError,
		RunnerID:      p.runnerID,
		ActiveWorkers: activeWorkers,
		TotalWorkers:  len(p.workers),
		RunningTasks:  running,
		MaxConcurrent: p.config.MaxConcurrentTasks,
		QueueDepth:    queueDepth,
		WorkerStats:   workerStats,
		LastReapScan:  lastReapScan,
		TasksReaped:   tasksReaped,
	}
}

// runLivenessHeartbeat keeps this pool's row in runner_heartbeats fresh so
// has_active_runner checks see it, and prunes rows of dead pools.
func (p *RunnerPool) runLivenessHeartbeat(ctx context.Context) {
	interval := p.config.RunnerLivenessMaxAge / 3
	if interval <= 0 {
		interval = 30 * time.Second
	}
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	// Register immediately so the first poll cycle already counts us
	if err := p.runners.UpsertHeartbeat(ctx, p.runnerID); err != nil {
		slog.Warn("Initial runner heartbeat failed", "error", err)
	}

	for {
		select {
		case <-p.stopCh:
			return
		case <-ctx.Done():
			return
		case <-ticker.C:
			if err := p.runners.UpsertHeartbeat(ctx, p.runnerID); err != nil {
				slog.Warn("Runner heartbeat failed", "error", err)
			}
			if _, err := p.runners.DeleteStale(ctx, 3*p.config.RunnerLivenessMaxAge); err != nil {
				slog.Warn("Stale runner cleanup failed", "error", err)
			}
		}
	}
}

// runReaper periodically fails zombies, times out over-budget tasks and
// expires stale suggestions. Long-running packs are exempt from the
// timeout sweep.
func (p *RunnerPool) runReaper(ctx context.Context) {
	ticker := time.NewTicker(p.config.ReapInterval)
	defer ticker.Stop()

	for {
		select {
		case <-p.stopCh:
			return
		case <-ctx.Done():
			return
		case <-ticker.C:
			p.sweep(ctx)
		}
	}
}

// sweep runs one reap cycle.
func (p *RunnerPool) sweep(ctx context.Context) {
	reaped, err := p.tasks.ReapZombies(ctx, p.config.HeartbeatTTL, p.config.NoHeartbeatTTL)
	if err != nil {
		slog.Error("Zombie reap failed", "error", err)
	}
	for _, z := range reaped {
		slog.Warn("Reaped zombie task", "execution_id", z.TaskID, "reason", z.Reason)
		p.emitReapError(ctx, z, models.FailureTypeZombie)
	}

	timedOut, err := p.tasks.FailTimedOut(ctx, p.config.TaskTimeout, p.longRunningPacks())
	if err != nil {
		slog.Error("Timeout sweep failed", "error", err)
	}
	for _, z := range timedOut {
		slog.Warn("Timed out task", "execution_id", z.TaskID, "budget", p.config.TaskTimeout)
		p.emitReapError(ctx, z, models.FailureTypeTimeout)
	}

	if _, err := p.tasks.ExpireStaleSuggestions(ctx, 7*24*time.Hour); err != nil {
		slog.Error("Suggestion expiry failed", "error", err)
	}

	p.reapMu.Lock()
	p.lastReapScan = time.Now()
	p.tasksReaped += len(reaped)
	p.reapMu.Unlock()
}

// emitReapError writes the diagnostic error event for a swept task so the
// failure shows up on the execution's timeline, not just in the logs.
func (p *RunnerPool) emitReapError(ctx context.Context, rt models.ReapedTask, failureType string) {
	if _, err := p.events.CreateEvent(ctx, models.CreateEventRequest{
		WorkspaceID: rt.WorkspaceID,
		EntityIDs:   []string{rt.TaskID},
		Actor:       "system",
		EventType:   models.EventTypeError,
		Payload: map[string]any{
			"message":      rt.Reason,
			"failure_type": failureType,
		},
	}); err != nil {
		slog.Warn("Failed to emit reap error event", "execution_id", rt.TaskID, "error", err)
	}
}

// longRunningPacks lists pack codes exempt from the timeout sweep.
func (p *RunnerPool) longRunningPacks() []string {
	var exempt []string
	for _, code := range p.registry.Codes() {
		if pb, err := p.registry.Get(code); err == nil && pb.LongRunning {
			exempt = append(exempt, code)
		}
	}
	return exempt
}

func (p *RunnerPool) spawn(fn func()) {
	p.wg.Add(1)
	go func() {
		defer p.wg.Done()
		fn()
	}()
}

// activeExecutionIDs returns IDs of currently processing executions.
func (p *RunnerPool) activeExecutionIDs() []string {
	p.mu.RLock()
	defer p.mu.RUnlock()
	ids := make([]string, 0, len(p.active))
	for id := range p.active {
		ids = append(ids, id)
	}
	return ids
}
