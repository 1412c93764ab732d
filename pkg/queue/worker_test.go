package queue

import (
	"context"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/cortexops/playbookd/ent"
	"github.com/cortexops/playbookd/ent/task"
	"github.com/cortexops/playbookd/pkg/config"
	"github.com/cortexops/playbookd/pkg/models"
	"github.com/cortexops/playbookd/pkg/playbook"
	"github.com/cortexops/playbookd/pkg/services"
	"github.com/cortexops/playbookd/test/util"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeExecutor struct {
	mu       sync.Mutex
	executed []string
	fn       func(ctx context.Context, t *ent.Task) error
}

func (f *fakeExecutor) Execute(ctx context.Context, t *ent.Task) error {
	f.mu.Lock()
	f.executed = append(f.executed, t.ID)
	f.mu.Unlock()
	if f.fn != nil {
		return f.fn(ctx, t)
	}
	return nil
}

func (f *fakeExecutor) executedIDs() []string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]string(nil), f.executed...)
}

type queueFixture struct {
	tasks   *services.TaskService
	events  *services.EventService
	runners *services.RunnerService
	cfg     *config.QueueConfig
}

func newQueueFixture(t *testing.T) *queueFixture {
	t.Helper()
	client, _ := util.SetupTestDatabase(t)
	cfg := config.DefaultQueueConfig()
	cfg.PollInterval = 10 * time.Millisecond
	cfg.PollIntervalJitter = 0
	cfg.HeartbeatInterval = 20 * time.Millisecond
	return &queueFixture{
		tasks:   services.NewTaskService(client),
		events:  services.NewEventService(client),
		runners: services.NewRunnerService(client),
		cfg:     cfg,
	}
}

func (f *queueFixture) newWorker(exec TaskExecutor) (*Worker, *RunnerPool) {
	registry := playbook.NewRegistry(playbook.Builtins())
	pool := NewRunnerPool("pool-1", f.tasks, f.events, f.runners, registry, f.cfg, exec)
	return NewWorker("pool-1-worker-0", "pool-1", f.tasks, registry, f.cfg, exec, pool), pool
}

func createPending(t *testing.T, tasks *services.TaskService, packID string) *ent.Task {
	t.Helper()
	created, err := tasks.CreateTask(context.Background(), models.CreateTaskRequest{
		WorkspaceID: "ws-1",
		PackID:      packID,
		TaskType:    string(task.TaskTypePlaybookExecution),
	})
	require.NoError(t, err)
	return created
}

func TestWorker_ClaimsAndExecutesTask(t *testing.T) {
	f := newQueueFixture(t)
	tasks := f.tasks
	ctx := context.Background()

	exec := &fakeExecutor{fn: func(_ context.Context, claimed *ent.Task) error {
		return tasks.CompleteTask(ctx, claimed.ID, map[string]any{"ok": true})
	}}
	w, _ := f.newWorker(exec)

	created := createPending(t, tasks, "seo_article")
	require.NoError(t, w.pollAndProcess(ctx))

	assert.Equal(t, []string{created.ID}, exec.executedIDs())

	got, err := tasks.GetTask(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, task.StatusSucceeded, got.Status)
	owner, _ := models.RunnerID(got.ExecutionContext)
	assert.Equal(t, "pool-1", owner)
}

func TestWorker_NoTasksAvailable(t *testing.T) {
	f := newQueueFixture(t)
	w, _ := f.newWorker(&fakeExecutor{})

	err := w.pollAndProcess(context.Background())
	assert.ErrorIs(t, err, ErrNoTasksAvailable)
}

func TestWorker_AtCapacity(t *testing.T) {
	f := newQueueFixture(t)
	f.cfg.MaxConcurrentTasks = 1
	tasks := f.tasks
	ctx := context.Background()
	w, _ := f.newWorker(&fakeExecutor{})

	busy := createPending(t, tasks, "seo_article")
	_, ok, err := tasks.TryClaim(ctx, busy.ID, "someone-else")
	require.NoError(t, err)
	require.True(t, ok)

	createPending(t, tasks, "daily_planning")
	err = w.pollAndProcess(ctx)
	assert.ErrorIs(t, err, ErrAtCapacity)
}

func TestWorker_AbandonedTaskIsFailed(t *testing.T) {
	f := newQueueFixture(t)
	tasks := f.tasks
	ctx := context.Background()

	exec := &fakeExecutor{fn: func(context.Context, *ent.Task) error {
		return fmt.Errorf("driver crashed")
	}}
	w, _ := f.newWorker(exec)

	created := createPending(t, tasks, "seo_article")
	require.NoError(t, w.pollAndProcess(ctx))

	got, err := tasks.GetTask(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, task.StatusFailed, got.Status)
	require.NotNil(t, got.Error)
	assert.Contains(t, *got.Error, "driver crashed")
}

func TestWorker_ExecutorTerminalWriteWins(t *testing.T) {
	f := newQueueFixture(t)
	tasks := f.tasks
	ctx := context.Background()

	// Executor fails the task itself, then returns the error: the worker
	// must not overwrite the terminal record.
	exec := &fakeExecutor{fn: func(_ context.Context, claimed *ent.Task) error {
		require.NoError(t, tasks.FailTask(ctx, claimed.ID, "model call failed", models.FailureTypeModel))
		return fmt.Errorf("model call failed")
	}}
	w, _ := f.newWorker(exec)

	created := createPending(t, tasks, "seo_article")
	require.NoError(t, w.pollAndProcess(ctx))

	got, err := tasks.GetTask(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, task.StatusFailed, got.Status)
	assert.Equal(t, models.FailureTypeModel, got.ExecutionContext[models.CtxFailureType])
}

func TestWorker_FIFOAcrossCandidates(t *testing.T) {
	f := newQueueFixture(t)
	tasks := f.tasks
	ctx := context.Background()

	exec := &fakeExecutor{fn: func(_ context.Context, claimed *ent.Task) error {
		return tasks.CompleteTask(ctx, claimed.ID, nil)
	}}
	w, _ := f.newWorker(exec)

	first := createPending(t, tasks, "seo_article")
	second := createPending(t, tasks, "daily_planning")

	require.NoError(t, w.pollAndProcess(ctx))
	require.NoError(t, w.pollAndProcess(ctx))
	assert.Equal(t, []string{first.ID, second.ID}, exec.executedIDs())
}

func TestPool_CancelExecution(t *testing.T) {
	f := newQueueFixture(t)
	_, pool := f.newWorker(&fakeExecutor{})

	ctx, cancel := context.WithCancel(context.Background())
	pool.RegisterExecution("exec-1", cancel)

	assert.True(t, pool.CancelExecution("exec-1"))
	assert.ErrorIs(t, ctx.Err(), context.Canceled)

	pool.UnregisterExecution("exec-1")
	assert.False(t, pool.CancelExecution("exec-1"))
}

func TestPool_StopMarksRunningTasksInterrupted(t *testing.T) {
	f := newQueueFixture(t)
	tasks := f.tasks
	ctx := context.Background()
	_, pool := f.newWorker(&fakeExecutor{})

	created := createPending(t, tasks, "seo_article")
	_, ok, err := tasks.TryClaim(ctx, created.ID, "pool-1")
	require.NoError(t, err)
	require.True(t, ok)

	pool.Stop()

	got, err := tasks.GetTask(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, task.StatusFailed, got.Status)
	require.NotNil(t, got.Error)
	assert.Equal(t, models.RestartInterruptionError, *got.Error)
	assert.Equal(t, models.FailureTypeRestart, got.ExecutionContext[models.CtxFailureType])
}

func TestPool_SweepEmitsErrorEvent(t *testing.T) {
	f := newQueueFixture(t)
	ctx := context.Background()
	_, pool := f.newWorker(&fakeExecutor{})

	created := createPending(t, f.tasks, "seo_article")
	_, ok, err := f.tasks.TryClaim(ctx, created.ID, "pool-1")
	require.NoError(t, err)
	require.True(t, ok)

	stale := time.Now().Add(-time.Hour).Format(time.RFC3339Nano)
	require.NoError(t, f.tasks.UpdateExecutionContext(ctx, created.ID, map[string]any{
		models.CtxHeartbeatAt: stale,
	}))

	pool.sweep(ctx)

	got, err := f.tasks.GetTask(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, task.StatusFailed, got.Status)

	// The reap leaves a diagnostic on the execution's timeline
	events, err := f.events.ListTypedForExecution(ctx, created.ID, models.EventTypeError, time.Time{}, "", 0)
	require.NoError(t, err)
	require.Len(t, events, 1)
	msg, _ := events[0].Payload["message"].(string)
	assert.Contains(t, msg, "heartbeat stale for")
	assert.Equal(t, models.FailureTypeZombie, events[0].Payload["failure_type"])
}

func TestPool_HealthReflectsQueueState(t *testing.T) {
	f := newQueueFixture(t)
	exec := &fakeExecutor{}
	_, pool := f.newWorker(exec)

	createPending(t, f.tasks, "seo_article")

	h := pool.Health()
	assert.True(t, h.DBReachable)
	assert.Equal(t, 1, h.QueueDepth)
	assert.Equal(t, "pool-1", h.RunnerID)
	// No workers started in this fixture
	assert.False(t, h.IsHealthy)
}
