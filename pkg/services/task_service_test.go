package services

import (
	"context"
	"testing"
	"time"

	"github.com/cortexops/playbookd/ent/task"
	"github.com/cortexops/playbookd/pkg/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTaskService_CreateAndGet(t *testing.T) {
	client := setupTestDB(t)
	svc := NewTaskService(client)
	ctx := context.Background()

	created, err := svc.CreateTask(ctx, models.CreateTaskRequest{
		TaskID:      "task-1",
		WorkspaceID: "ws-1",
		ExecutionID: "task-1",
		PackID:      "seo_article",
		TaskType:    "playbook_execution",
		Params:      map[string]any{"topic": "coffee"},
	})
	require.NoError(t, err)
	assert.Equal(t, task.StatusPending, created.Status)
	assert.Nil(t, created.StartedAt)
	assert.Nil(t, created.CompletedAt)

	got, err := svc.GetTask(ctx, "task-1")
	require.NoError(t, err)
	assert.Equal(t, "coffee", got.Params["topic"])

	_, err = svc.GetTask(ctx, "missing")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestTaskService_CreateValidation(t *testing.T) {
	client := setupTestDB(t)
	svc := NewTaskService(client)
	ctx := context.Background()

	_, err := svc.CreateTask(ctx, models.CreateTaskRequest{PackID: "p", TaskType: "execution"})
	assert.True(t, IsValidationError(err))

	_, err = svc.CreateTask(ctx, models.CreateTaskRequest{WorkspaceID: "ws", PackID: "p", TaskType: "bogus"})
	assert.True(t, IsValidationError(err))
}

func TestTaskService_TryClaimExactlyOnce(t *testing.T) {
	client := setupTestDB(t)
	svc := NewTaskService(client)
	ctx := context.Background()

	created := createTestTask(t, svc, "playbook_execution")

	claimed, ok, err := svc.TryClaim(ctx, created.ID, "runner-a")
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, task.StatusRunning, claimed.Status)
	assert.NotNil(t, claimed.StartedAt)

	owner, found := models.RunnerID(claimed.ExecutionContext)
	require.True(t, found)
	assert.Equal(t, "runner-a", owner)

	_, hbSet := models.HeartbeatAt(claimed.ExecutionContext)
	assert.True(t, hbSet)

	// Second claim must lose without error
	_, ok, err = svc.TryClaim(ctx, created.ID, "runner-b")
	require.NoError(t, err)
	assert.False(t, ok)

	// Owner is unchanged
	got, err := svc.GetTask(ctx, created.ID)
	require.NoError(t, err)
	owner, _ = models.RunnerID(got.ExecutionContext)
	assert.Equal(t, "runner-a", owner)
}

func TestTaskService_HeartbeatAdvancesAndAbortsOnCancel(t *testing.T) {
	client := setupTestDB(t)
	svc := NewTaskService(client)
	ctx := context.Background()

	created := createTestTask(t, svc, "playbook_execution")
	claimed, ok, err := svc.TryClaim(ctx, created.ID, "runner-a")
	require.NoError(t, err)
	require.True(t, ok)

	first, _ := models.HeartbeatAt(claimed.ExecutionContext)

	time.Sleep(10 * time.Millisecond)
	abort, err := svc.UpdateHeartbeat(ctx, created.ID, "runner-a")
	require.NoError(t, err)
	assert.False(t, abort)

	got, err := svc.GetTask(ctx, created.ID)
	require.NoError(t, err)
	second, _ := models.HeartbeatAt(got.ExecutionContext)
	assert.True(t, second.After(first), "heartbeat must advance monotonically")

	// User cancels mid-run; the runner learns on its next heartbeat
	cancelled, err := svc.CancelTask(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, task.StatusCancelledByUser, cancelled.Status)
	assert.NotNil(t, cancelled.CompletedAt)

	abort, err = svc.UpdateHeartbeat(ctx, created.ID, "runner-a")
	require.NoError(t, err)
	assert.True(t, abort)

	// Status was not clobbered back to running
	got, err = svc.GetTask(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, task.StatusCancelledByUser, got.Status)
}

func TestTaskService_HeartbeatFromForeignRunnerAborts(t *testing.T) {
	client := setupTestDB(t)
	svc := NewTaskService(client)
	ctx := context.Background()

	created := createTestTask(t, svc, "playbook_execution")
	_, ok, err := svc.TryClaim(ctx, created.ID, "runner-a")
	require.NoError(t, err)
	require.True(t, ok)

	abort, err := svc.UpdateHeartbeat(ctx, created.ID, "runner-b")
	require.NoError(t, err)
	assert.True(t, abort)
}

func TestTaskService_RestartRevival(t *testing.T) {
	client := setupTestDB(t)
	svc := NewTaskService(client)
	ctx := context.Background()

	created := createTestTask(t, svc, "playbook_execution")
	_, ok, err := svc.TryClaim(ctx, created.ID, "runner-a")
	require.NoError(t, err)
	require.True(t, ok)

	// Graceful shutdown interrupts the run
	n, err := svc.MarkInterruptedByRunners(ctx, []string{"runner-a"})
	require.NoError(t, err)
	assert.Equal(t, 1, n)

	got, err := svc.GetTask(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, task.StatusFailed, got.Status)
	require.NotNil(t, got.Error)
	assert.Equal(t, models.RestartInterruptionError, *got.Error)

	// After restart the same runner heartbeats and resurrects the task
	abort, err := svc.UpdateHeartbeat(ctx, created.ID, "runner-a")
	require.NoError(t, err)
	assert.False(t, abort)

	got, err = svc.GetTask(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, task.StatusRunning, got.Status)
	assert.Nil(t, got.Error)
	assert.Nil(t, got.CompletedAt)
}

func TestTaskService_RevivalRequiresOwnerAndExactError(t *testing.T) {
	client := setupTestDB(t)
	svc := NewTaskService(client)
	ctx := context.Background()

	created := createTestTask(t, svc, "playbook_execution")
	_, ok, err := svc.TryClaim(ctx, created.ID, "runner-a")
	require.NoError(t, err)
	require.True(t, ok)

	require.NoError(t, svc.FailTask(ctx, created.ID, "model exploded", models.FailureTypeModel))

	// Ordinary failures are never resurrected
	abort, err := svc.UpdateHeartbeat(ctx, created.ID, "runner-a")
	require.NoError(t, err)
	assert.True(t, abort)

	got, err := svc.GetTask(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, task.StatusFailed, got.Status)
}

func TestTaskService_ReapZombies(t *testing.T) {
	client := setupTestDB(t)
	svc := NewTaskService(client)
	ctx := context.Background()

	stale := createTestTask(t, svc, "playbook_execution")
	_, ok, err := svc.TryClaim(ctx, stale.ID, "runner-a")
	require.NoError(t, err)
	require.True(t, ok)
	backdateHeartbeat(t, client, stale.ID, 12*time.Minute)

	fresh := createTestTask(t, svc, "playbook_execution")
	_, ok, err = svc.TryClaim(ctx, fresh.ID, "runner-b")
	require.NoError(t, err)
	require.True(t, ok)

	reaped, err := svc.ReapZombies(ctx, 10*time.Minute, 30*time.Minute)
	require.NoError(t, err)
	require.Len(t, reaped, 1)
	assert.Equal(t, stale.ID, reaped[0].TaskID)
	assert.Contains(t, reaped[0].Reason, "heartbeat stale for")

	got, err := svc.GetTask(ctx, stale.ID)
	require.NoError(t, err)
	assert.Equal(t, task.StatusFailed, got.Status)
	require.NotNil(t, got.Error)
	assert.Contains(t, *got.Error, "heartbeat stale for")
	assert.Equal(t, models.FailureTypeZombie, got.ExecutionContext[models.CtxFailureType])

	// The fresh task is untouched
	got, err = svc.GetTask(ctx, fresh.ID)
	require.NoError(t, err)
	assert.Equal(t, task.StatusRunning, got.Status)
}

func TestTaskService_ReapBoundaryIsStrict(t *testing.T) {
	client := setupTestDB(t)
	svc := NewTaskService(client)
	ctx := context.Background()

	created := createTestTask(t, svc, "playbook_execution")
	_, ok, err := svc.TryClaim(ctx, created.ID, "runner-a")
	require.NoError(t, err)
	require.True(t, ok)

	// Heartbeat well within the TTL must survive; the comparison is
	// strictly greater-than
	backdateHeartbeat(t, client, created.ID, 10*time.Minute-5*time.Second)

	reaped, err := svc.ReapZombies(ctx, 10*time.Minute, 30*time.Minute)
	require.NoError(t, err)
	assert.Empty(t, reaped)

	got, err := svc.GetTask(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, task.StatusRunning, got.Status)
}

func TestTaskService_ReapNeverHeartbeated(t *testing.T) {
	client := setupTestDB(t)
	svc := NewTaskService(client)
	ctx := context.Background()

	created := createTestTask(t, svc, "playbook_execution")
	_, ok, err := svc.TryClaim(ctx, created.ID, "runner-a")
	require.NoError(t, err)
	require.True(t, ok)

	// Strip the heartbeat entirely and backdate started_at
	err = client.Task.UpdateOneID(created.ID).
		SetExecutionContext(map[string]any{models.CtxRunnerID: "runner-a"}).
		SetStartedAt(time.Now().Add(-45 * time.Minute)).
		Exec(ctx)
	require.NoError(t, err)

	reaped, err := svc.ReapZombies(ctx, 10*time.Minute, 30*time.Minute)
	require.NoError(t, err)
	require.Len(t, reaped, 1)
	assert.Contains(t, reaped[0].Reason, "no heartbeat since start")
}

func TestTaskService_CompleteSetsCompletedAtOnce(t *testing.T) {
	client := setupTestDB(t)
	svc := NewTaskService(client)
	ctx := context.Background()

	created := createTestTask(t, svc, "playbook_execution")
	_, ok, err := svc.TryClaim(ctx, created.ID, "runner-a")
	require.NoError(t, err)
	require.True(t, ok)

	err = svc.CompleteTask(ctx, created.ID, map[string]any{"artifact_id": "a-1"})
	require.NoError(t, err)

	got, err := svc.GetTask(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, task.StatusSucceeded, got.Status)
	require.NotNil(t, got.CompletedAt)
	assert.Equal(t, "a-1", got.Result["artifact_id"])

	// Second terminal write loses the status predicate
	err = svc.CompleteTask(ctx, created.ID, nil)
	assert.ErrorIs(t, err, ErrConcurrentModification)
}

func TestTaskService_CancelTerminalFails(t *testing.T) {
	client := setupTestDB(t)
	svc := NewTaskService(client)
	ctx := context.Background()

	created := createTestTask(t, svc, "playbook_execution")
	_, ok, err := svc.TryClaim(ctx, created.ID, "runner-a")
	require.NoError(t, err)
	require.True(t, ok)
	require.NoError(t, svc.CompleteTask(ctx, created.ID, nil))

	_, err = svc.CancelTask(ctx, created.ID)
	assert.ErrorIs(t, err, ErrNotCancellable)
}

func TestTaskService_ListRunnableExcludesSuggestions(t *testing.T) {
	client := setupTestDB(t)
	svc := NewTaskService(client)
	ctx := context.Background()

	older := createTestTask(t, svc, "playbook_execution")
	createTestTask(t, svc, "suggestion")
	newer := createTestTask(t, svc, "execution")

	runnable, err := svc.ListRunnable(ctx, 10)
	require.NoError(t, err)
	require.Len(t, runnable, 2)
	// Oldest first
	assert.Equal(t, older.ID, runnable[0].ID)
	assert.Equal(t, newer.ID, runnable[1].ID)
}

func TestTaskService_SuggestionLifecycle(t *testing.T) {
	client := setupTestDB(t)
	svc := NewTaskService(client)
	ctx := context.Background()

	sug := createTestTask(t, svc, "suggestion")

	confirmed, err := svc.ConfirmSuggestion(ctx, sug.ID)
	require.NoError(t, err)
	assert.Equal(t, task.TaskTypePlaybookExecution, confirmed.TaskType)
	assert.Equal(t, task.StatusPending, confirmed.Status)

	// Now claimable like any other pending task
	_, ok, err := svc.TryClaim(ctx, sug.ID, "runner-a")
	require.NoError(t, err)
	assert.True(t, ok)

	// Confirming a non-suggestion fails
	_, err = svc.ConfirmSuggestion(ctx, sug.ID)
	assert.ErrorIs(t, err, ErrNotConfirmable)

	other := createTestTask(t, svc, "suggestion")
	require.NoError(t, svc.DismissSuggestion(ctx, other.ID))
	got, err := svc.GetTask(ctx, other.ID)
	require.NoError(t, err)
	assert.Equal(t, task.StatusCancelledByUser, got.Status)
}

func TestTaskService_ExpireStaleSuggestions(t *testing.T) {
	client := setupTestDB(t)
	svc := NewTaskService(client)
	ctx := context.Background()

	// created_at is immutable, so backdate it at insert time
	sug, err := client.Task.Create().
		SetID("sug-old").
		SetWorkspaceID("ws-1").
		SetPackID("habit_learning").
		SetTaskType(task.TaskTypeSuggestion).
		SetStatus(task.StatusPending).
		SetCreatedAt(time.Now().Add(-48 * time.Hour)).
		Save(ctx)
	require.NoError(t, err)

	createTestTask(t, svc, "suggestion") // recent one survives

	n, err := svc.ExpireStaleSuggestions(ctx, 24*time.Hour)
	require.NoError(t, err)
	assert.Equal(t, 1, n)

	got, err := svc.GetTask(ctx, sug.ID)
	require.NoError(t, err)
	assert.Equal(t, task.StatusExpired, got.Status)
}

func TestTaskService_FailTimedOut(t *testing.T) {
	client := setupTestDB(t)
	svc := NewTaskService(client)
	ctx := context.Background()

	created := createTestTask(t, svc, "playbook_execution")
	_, ok, err := svc.TryClaim(ctx, created.ID, "runner-a")
	require.NoError(t, err)
	require.True(t, ok)

	err = client.Task.UpdateOneID(created.ID).
		SetStartedAt(time.Now().Add(-2 * time.Hour)).
		Exec(ctx)
	require.NoError(t, err)

	// Exempted packs are untouched
	failed, err := svc.FailTimedOut(ctx, 30*time.Minute, []string{created.PackID})
	require.NoError(t, err)
	assert.Empty(t, failed)

	failed, err = svc.FailTimedOut(ctx, 30*time.Minute, nil)
	require.NoError(t, err)
	require.Len(t, failed, 1)
	assert.Equal(t, created.ID, failed[0].TaskID)
	assert.Equal(t, created.WorkspaceID, failed[0].WorkspaceID)
	assert.Contains(t, failed[0].Reason, "budget")

	got, err := svc.GetTask(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, task.StatusFailed, got.Status)
	assert.Equal(t, models.FailureTypeTimeout, got.ExecutionContext[models.CtxFailureType])
}

func TestTaskService_DuplicateSuggestionProbe(t *testing.T) {
	client := setupTestDB(t)
	svc := NewTaskService(client)
	ctx := context.Background()

	created, err := svc.CreateTask(ctx, models.CreateTaskRequest{
		WorkspaceID: "ws-1",
		PackID:      "habit_learning",
		TaskType:    "suggestion",
		Params: map[string]any{
			"source": "fs_watch",
			"files":  []any{"a.md", "b.md"},
		},
	})
	require.NoError(t, err)

	dup, err := svc.HasRecentDuplicateSuggestion(ctx, "ws-1", "habit_learning", "fs_watch", []string{"b.md", "a.md"}, time.Hour)
	require.NoError(t, err)
	assert.True(t, dup, "same source and file set within window is a duplicate")

	dup, err = svc.HasRecentDuplicateSuggestion(ctx, "ws-1", "habit_learning", "fs_watch", []string{"a.md"}, time.Hour)
	require.NoError(t, err)
	assert.False(t, dup)

	dup, err = svc.HasRecentDuplicateSuggestion(ctx, "ws-1", "habit_learning", "editor", []string{"a.md", "b.md"}, time.Hour)
	require.NoError(t, err)
	assert.False(t, dup)

	// A dismissed suggestion stops suppressing the same proposal
	require.NoError(t, svc.DismissSuggestion(ctx, created.ID))
	dup, err = svc.HasRecentDuplicateSuggestion(ctx, "ws-1", "habit_learning", "fs_watch", []string{"a.md", "b.md"}, time.Hour)
	require.NoError(t, err)
	assert.False(t, dup)
}

func TestTaskService_UpdateExecutionContextMerges(t *testing.T) {
	client := setupTestDB(t)
	svc := NewTaskService(client)
	ctx := context.Background()

	created := createTestTask(t, svc, "playbook_execution")
	_, ok, err := svc.TryClaim(ctx, created.ID, "runner-a")
	require.NoError(t, err)
	require.True(t, ok)

	err = svc.UpdateExecutionContext(ctx, created.ID, map[string]any{
		models.CtxCurrentStep: 3,
		models.CtxTotalSteps:  5,
	})
	require.NoError(t, err)

	got, err := svc.GetTask(ctx, created.ID)
	require.NoError(t, err)

	// Claim-time keys survive the merge
	owner, found := models.RunnerID(got.ExecutionContext)
	require.True(t, found)
	assert.Equal(t, "runner-a", owner)

	step, found := models.CurrentStep(got.ExecutionContext)
	require.True(t, found)
	assert.Equal(t, 3, step)
}

func TestTaskService_ConfirmationPauseRoundTrip(t *testing.T) {
	client := setupTestDB(t)
	svc := NewTaskService(client)
	ctx := context.Background()

	created := createTestTask(t, svc, "playbook_execution")

	// Pausing a task that is not running must not succeed
	err := svc.SetWaitingConfirmation(ctx, created.ID)
	assert.ErrorIs(t, err, ErrConcurrentModification)

	_, ok, err := svc.TryClaim(ctx, created.ID, "runner-a")
	require.NoError(t, err)
	require.True(t, ok)

	require.NoError(t, svc.SetWaitingConfirmation(ctx, created.ID))

	got, err := svc.GetTask(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, task.StatusWaitingConfirmation, got.Status)
	assert.NotEmpty(t, got.ExecutionContext[models.CtxPausedAt])
	assert.Equal(t, models.ConfirmationPending, got.ExecutionContext[models.CtxConfirmationStatus])

	require.NoError(t, svc.ResumeFromConfirmation(ctx, created.ID, models.ConfirmationApproved))

	got, err = svc.GetTask(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, task.StatusRunning, got.Status)
	assert.Equal(t, "", got.ExecutionContext[models.CtxPausedAt])
	assert.Equal(t, models.ConfirmationApproved, got.ExecutionContext[models.CtxConfirmationStatus])

	// A second resume has nothing to lift
	err = svc.ResumeFromConfirmation(ctx, created.ID, models.ConfirmationApproved)
	assert.ErrorIs(t, err, ErrConcurrentModification)
}
