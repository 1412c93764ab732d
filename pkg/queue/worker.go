package queue

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"math/rand/v2"
	"sync"
	"time"

	"github.com/cortexops/playbookd/ent"
	"github.com/cortexops/playbookd/ent/task"
	"github.com/cortexops/playbookd/pkg/config"
	"github.com/cortexops/playbookd/pkg/models"
	"github.com/cortexops/playbookd/pkg/playbook"
	"github.com/cortexops/playbookd/pkg/services"
)

// Worker is a single queue worker that polls for and processes tasks.
type Worker struct {
	id       string
	runnerID string
	tasks    *services.TaskService
	registry *playbook.Registry
	config   *config.QueueConfig
	executor TaskExecutor
	pool     ExecutionRegistry
	stopCh   chan struct{}
	stopOnce sync.Once
	wg       sync.WaitGroup

	// Health tracking
	mu             sync.RWMutex
	status         WorkerStatus
	currentTaskID  string
	tasksProcessed int
	lastActivity   time.Time
}

// ExecutionRegistry is the subset of the pool used by Worker to register
// in-flight executions for API-triggered cancellation.
type ExecutionRegistry interface {
	RegisterExecution(executionID string, cancel context.CancelFunc)
	UnregisterExecution(executionID string)
}

// NewWorker creates a new queue worker.
func NewWorker(id, runnerID string, tasks *services.TaskService, registry *playbook.Registry, cfg *config.QueueConfig, executor TaskExecutor, pool ExecutionRegistry) *Worker {
	return &Worker{
		id:           id,
		runnerID:     runnerID,
		tasks:        tasks,
		registry:     registry,
		config:       cfg,
		executor:     executor,
		pool:         pool,
		stopCh:       make(chan struct{}),
		status:       WorkerStatusIdle,
		lastActivity: time.Now(),
	}
}

// Start begins the worker polling loop in a goroutine.
func (w *Worker) Start(ctx context.Context) {
	w.wg.Add(1)
	go w.run(ctx)
}

// Stop signals the worker to stop and waits for it to finish.
// It is safe to call Stop multiple times.
func (w *Worker) Stop() {
	w.stopOnce.Do(func() { close(w.stopCh) })
	w.wg.Wait()
}

// Health returns the current worker health status.
func (w *Worker) Health() WorkerHealth {
	w.mu.RLock()
	defer w.mu.RUnlock()
	return WorkerHealth{
		ID:             w.id,
		Status:         w.status,
		CurrentTaskID:  w.currentTaskID,
		TasksProcessed: w.tasksProcessed,
		LastActivity:   w.lastActivity,
	}
}

// run is the main worker loop.
func (w *Worker) run(ctx context.Context) {
	defer w.wg.Done()

	log := slog.With("worker_id", w.id, "runner_id", w.runnerID)
	log.Info("Worker started")

	for {
		select {
		case <-w.stopCh:
			log.Info("Worker shutting down")
			return
		case <-ctx.Done():
			log.Info("Context cancelled, worker shutting down")
			return
		default:
			if err := w.pollAndProcess(ctx); err != nil {
				if errors.Is(err, ErrNoTasksAvailable) || errors.Is(err, ErrAtCapacity) {
					w.sleep(w.pollInterval())
					continue
				}
				log.Error("Error processing task", "error", err)
				w.sleep(time.Second) // brief backoff on error
			}
		}
	}
}

// sleep waits for the given duration or until stop is signalled.
func (w *Worker) sleep(d time.Duration) {
	select {
	case <-w.stopCh:
	case <-time.After(d):
	}
}

// pollAndProcess checks capacity, claims a task, and processes it.
func (w *Worker) pollAndProcess(ctx context.Context) error {
	// Global capacity check is best-effort; racy with concurrent workers
	// but bounded by RunnerCount and mitigated by poll jitter.
	running, err := w.tasks.CountRunning(ctx)
	if err != nil {
		return fmt.Errorf("checking running tasks: %w", err)
	}
	if running >= w.config.MaxConcurrentTasks {
		return ErrAtCapacity
	}

	claimed, err := w.claimNext(ctx)
	if err != nil {
		return err
	}

	log := slog.With("execution_id", claimed.ID, "worker_id", w.id)
	log.Info("Task claimed", "pack_id", claimed.PackID)

	w.setStatus(WorkerStatusWorking, claimed.ID)
	defer w.setStatus(WorkerStatusIdle, "")

	taskCtx, cancelTask := w.taskContext(ctx, claimed)
	defer cancelTask()

	w.pool.RegisterExecution(claimed.ID, cancelTask)
	defer w.pool.UnregisterExecution(claimed.ID)

	// Heartbeat loop; an abort signal (cancellation, reap) stops the task
	heartbeatCtx, cancelHeartbeat := context.WithCancel(taskCtx)
	defer cancelHeartbeat()
	go w.runHeartbeat(heartbeatCtx, claimed.ID, cancelTask)

	execErr := w.executor.Execute(taskCtx, claimed)
	cancelHeartbeat()

	if execErr != nil {
		w.finalizeFailure(claimed.ID, taskCtx, execErr)
	}

	w.mu.Lock()
	w.tasksProcessed++
	w.mu.Unlock()

	log.Info("Task processing complete", "error", execErr)
	return nil
}

// claimNext scans the runnable queue and races TryClaim on each candidate
// until one claim wins.
func (w *Worker) claimNext(ctx context.Context) (*ent.Task, error) {
	candidates, err := w.tasks.ListRunnable(ctx, 10)
	if err != nil {
		return nil, fmt.Errorf("listing runnable tasks: %w", err)
	}
	for _, t := range candidates {
		claimed, ok, err := w.tasks.TryClaim(ctx, t.ID, w.runnerID)
		if err != nil {
			return nil, fmt.Errorf("claiming task %s: %w", t.ID, err)
		}
		if ok {
			return claimed, nil
		}
		// Another worker won this row; try the next candidate
	}
	return nil, ErrNoTasksAvailable
}

// taskContext bounds a task by the configured budget unless its pack is
// flagged long-running.
func (w *Worker) taskContext(ctx context.Context, t *ent.Task) (context.Context, context.CancelFunc) {
	if pb, err := w.registry.Get(t.PackID); err == nil && pb.LongRunning {
		return context.WithCancel(ctx)
	}
	return context.WithTimeout(ctx, w.config.TaskTimeout)
}

// runHeartbeat advances execution_context.heartbeat_at while the task runs.
// abort=true from the store (user cancellation, zombie reap, external
// terminal write) cancels the task context; cancellation is cooperative so
// the in-flight LLM or tool call completes before the driver stops.
func (w *Worker) runHeartbeat(ctx context.Context, taskID string, cancelTask context.CancelFunc) {
	ticker := time.NewTicker(w.config.HeartbeatInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			abort, err := w.tasks.UpdateHeartbeat(ctx, taskID, w.runnerID)
			if err != nil {
				slog.Warn("Heartbeat update failed", "execution_id", taskID, "error", err)
			}
			if abort {
				slog.Info("Heartbeat signalled abort, stopping task",
					"execution_id", taskID, "worker_id", w.id)
				cancelTask()
				return
			}
		}
	}
}

// finalizeFailure makes sure a task the executor abandoned does not stay
// running. The executor normally writes its own terminal status; this covers
// context cancellation and unexpected returns.
func (w *Worker) finalizeFailure(taskID string, taskCtx context.Context, execErr error) {
	t, err := w.tasks.GetTask(context.Background(), taskID)
	if err != nil || t.Status != task.StatusRunning {
		return
	}

	msg := execErr.Error()
	failureType := models.FailureTypeExecution
	if errors.Is(taskCtx.Err(), context.DeadlineExceeded) {
		msg = fmt.Sprintf("task exceeded %s budget", w.config.TaskTimeout)
		failureType = models.FailureTypeTimeout
	}
	if err := w.tasks.FailTask(context.Background(), taskID, msg, failureType); err != nil {
		slog.Error("Failed to finalize abandoned task",
			"execution_id", taskID, "error", err)
	}
}

// pollInterval returns the poll duration with jitter.
func (w *Worker) pollInterval() time.Duration {
	base := w.config.PollInterval
	jitter := w.config.PollIntervalJitter
	if jitter <= 0 {
		return base
	}
	// Range: [base - jitter, base + jitter]
	offset := time.Duration(rand.Int64N(int64(2 * jitter)))
	return base - jitter + offset
}

// setStatus updates the worker's health tracking state.
func (w *Worker) setStatus(status WorkerStatus, taskID string) {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.status = status
	w.currentTaskID = taskID
	w.lastActivity = time.Now()
}
