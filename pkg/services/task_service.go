package services

import (
	"context"
	"fmt"
	"time"

	"github.com/cortexops/playbookd/ent"
	"github.com/cortexops/playbookd/ent/task"
	"github.com/cortexops/playbookd/pkg/models"
	"github.com/google/uuid"
)

// runnableTypes are the task types a runner may claim. Suggestions are
// excluded until confirmed.
var runnableTypes = []task.TaskType{
	task.TaskTypePlaybookExecution,
	task.TaskTypeAgentDispatch,
	task.TaskTypeExecution,
	task.TaskTypeIntentExtraction,
	task.TaskTypeSemanticExtraction,
}

// TaskService manages the task lifecycle: creation, the claim/heartbeat
// protocol, terminal transitions and the zombie reaper.
type TaskService struct {
	client *ent.Client
}

// NewTaskService creates a new TaskService
func NewTaskService(client *ent.Client) *TaskService {
	return &TaskService{client: client}
}

// CreateTask creates a new task in pending state
func (s *TaskService) CreateTask(httpCtx context.Context, req models.CreateTaskRequest) (*ent.Task, error) {
	if req.WorkspaceID == "" {
		return nil, NewValidationError("workspace_id", "required")
	}
	if req.PackID == "" {
		return nil, NewValidationError("pack_id", "required")
	}
	if req.TaskType == "" {
		return nil, NewValidationError("task_type", "required")
	}
	if err := task.TaskTypeValidator(task.TaskType(req.TaskType)); err != nil {
		return nil, NewValidationError("task_type", fmt.Sprintf("unknown value %q", req.TaskType))
	}

	taskID := req.TaskID
	if taskID == "" {
		taskID = uuid.New().String()
	}

	// Use background context with timeout for critical write
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	builder := s.client.Task.Create().
		SetID(taskID).
		SetWorkspaceID(req.WorkspaceID).
		SetPackID(req.PackID).
		SetTaskType(task.TaskType(req.TaskType)).
		SetStatus(task.StatusPending)

	if req.ExecutionID != "" {
		builder.SetExecutionID(req.ExecutionID)
	}
	if req.ProjectID != "" {
		builder.SetProjectID(req.ProjectID)
	}
	if req.Params != nil {
		builder.SetParams(req.Params)
	}
	if req.StorylineTags != nil {
		builder.SetStorylineTags(req.StorylineTags)
	}

	created, err := builder.Save(ctx)
	if err != nil {
		if ent.IsConstraintError(err) {
			return nil, ErrAlreadyExists
		}
		return nil, fmt.Errorf("failed to create task: %w", err)
	}

	return created, nil
}

// GetTask retrieves a task by ID
func (s *TaskService) GetTask(ctx context.Context, taskID string) (*ent.Task, error) {
	t, err := s.client.Task.Query().Where(task.IDEQ(taskID)).Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get task: %w", err)
	}
	return t, nil
}

// ListTasks lists tasks with filtering and pagination
func (s *TaskService) ListTasks(ctx context.Context, filters models.TaskFilters) (*models.TaskListResponse, error) {
	query := s.client.Task.Query()

	if filters.WorkspaceID != "" {
		query = query.Where(task.WorkspaceIDEQ(filters.WorkspaceID))
	}
	if filters.Status != "" {
		query = query.Where(task.StatusEQ(task.Status(filters.Status)))
	}
	if filters.TaskType != "" {
		query = query.Where(task.TaskTypeEQ(task.TaskType(filters.TaskType)))
	}
	if filters.PackID != "" {
		query = query.Where(task.PackIDEQ(filters.PackID))
	}
	if filters.CreatedAt != nil {
		query = query.Where(task.CreatedAtGTE(*filters.CreatedAt))
	}

	totalCount, err := query.Count(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to count tasks: %w", err)
	}

	limit := filters.Limit
	if limit <= 0 {
		limit = 20
	}
	offset := filters.Offset
	if offset < 0 {
		offset = 0
	}

	tasks, err := query.
		Limit(limit).
		Offset(offset).
		Order(ent.Desc(task.FieldCreatedAt)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list tasks: %w", err)
	}

	return &models.TaskListResponse{
		Tasks:      tasks,
		TotalCount: totalCount,
		Limit:      limit,
		Offset:     offset,
	}, nil
}

// ListRunnable returns the oldest pending tasks of claimable types.
// The claim itself happens in TryClaim; this is only the candidate scan.
func (s *TaskService) ListRunnable(ctx context.Context, limit int) ([]*ent.Task, error) {
	if limit <= 0 {
		limit = 10
	}

	tasks, err := s.client.Task.Query().
		Where(
			task.StatusEQ(task.StatusPending),
			task.TaskTypeIn(runnableTypes...),
		).
		Order(ent.Asc(task.FieldCreatedAt)).
		Limit(limit).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list runnable tasks: %w", err)
	}

	return tasks, nil
}

// CountRunning returns the number of tasks currently in running state
// across all runners. Used to enforce the global concurrency cap.
func (s *TaskService) CountRunning(ctx context.Context) (int, error) {
	count, err := s.client.Task.Query().
		Where(task.StatusEQ(task.StatusRunning)).
		Count(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to count running tasks: %w", err)
	}
	return count, nil
}

// TryClaim atomically transitions a pending task to running on behalf of
// runnerID. Exactly one concurrent caller wins; losers get claimed=false
// with no error. The winning update stamps started_at and seeds
// execution_context with the runner id and an initial heartbeat.
func (s *TaskService) TryClaim(ctx context.Context, taskID, runnerID string) (*ent.Task, bool, error) {
	// Use background context with timeout so claims survive caller cancellation
	claimCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	tx, err := s.client.Tx(claimCtx)
	if err != nil {
		return nil, false, fmt.Errorf("failed to start transaction: %w", err)
	}
	defer tx.Rollback()

	t, err := tx.Task.Query().Where(task.IDEQ(taskID)).Only(claimCtx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, false, ErrNotFound
		}
		return nil, false, fmt.Errorf("failed to load task for claim: %w", err)
	}

	now := time.Now()
	execCtx := mergeContext(t.ExecutionContext, map[string]any{
		models.CtxRunnerID:    runnerID,
		models.CtxHeartbeatAt: now.Format(time.RFC3339Nano),
	})

	// Conditional update: only wins if the row is still pending
	count, err := tx.Task.Update().
		Where(
			task.IDEQ(taskID),
			task.StatusEQ(task.StatusPending),
		).
		SetStatus(task.StatusRunning).
		SetStartedAt(now).
		SetExecutionContext(execCtx).
		Save(claimCtx)
	if err != nil {
		return nil, false, fmt.Errorf("failed to claim task: %w", err)
	}
	if count == 0 {
		// Another runner won the race
		return nil, false, nil
	}

	t, err = tx.Task.Get(claimCtx, taskID)
	if err != nil {
		return nil, false, fmt.Errorf("failed to refetch claimed task: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return nil, false, fmt.Errorf("failed to commit claim: %w", err)
	}

	return t, true, nil
}

// UpdateHeartbeat advances execution_context.heartbeat_at for a running
// task and reports whether the runner should abort.
//
// Two non-obvious paths:
//   - A task failed with the restart-interruption error and still owned by
//     runnerID is resurrected to running with its error cleared; the run
//     continues from its checkpoint.
//   - A task in any other non-running state (cancelled, reaped, finished)
//     returns abort=true so the step driver stops promptly.
func (s *TaskService) UpdateHeartbeat(ctx context.Context, taskID, runnerID string) (abort bool, err error) {
	// Use background context with timeout for critical write
	writeCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	t, err := s.client.Task.Query().Where(task.IDEQ(taskID)).Only(writeCtx)
	if err != nil {
		if ent.IsNotFound(err) {
			return true, ErrNotFound
		}
		return true, fmt.Errorf("failed to load task for heartbeat: %w", err)
	}

	owner, _ := models.RunnerID(t.ExecutionContext)
	now := time.Now()

	switch {
	case t.Status == task.StatusRunning && owner == runnerID:
		execCtx := mergeContext(t.ExecutionContext, map[string]any{
			models.CtxHeartbeatAt: now.Format(time.RFC3339Nano),
		})
		err := s.client.Task.Update().
			Where(
				task.IDEQ(taskID),
				task.StatusEQ(task.StatusRunning),
			).
			SetExecutionContext(execCtx).
			Exec(writeCtx)
		if err != nil {
			return true, fmt.Errorf("failed to write heartbeat: %w", err)
		}
		return false, nil

	case t.Status == task.StatusFailed && owner == runnerID &&
		t.Error != nil && *t.Error == models.RestartInterruptionError:
		// Server restart interrupted this run; the surviving runner
		// resurrects it and carries on from the checkpoint.
		execCtx := mergeContext(t.ExecutionContext, map[string]any{
			models.CtxHeartbeatAt: now.Format(time.RFC3339Nano),
		})
		delete(execCtx, models.CtxFailureType)
		count, err := s.client.Task.Update().
			Where(
				task.IDEQ(taskID),
				task.StatusEQ(task.StatusFailed),
			).
			SetStatus(task.StatusRunning).
			ClearError().
			ClearCompletedAt().
			SetExecutionContext(execCtx).
			Save(writeCtx)
		if err != nil {
			return true, fmt.Errorf("failed to resurrect task: %w", err)
		}
		if count == 0 {
			return true, nil
		}
		return false, nil

	default:
		// Cancelled, reaped, finished, or claimed by someone else
		return true, nil
	}
}

// ReapZombies fails running tasks whose heartbeat is stale. Comparison is
// strict: a heartbeat aged exactly heartbeatTTL survives. Tasks that were
// started but never heartbeated are reaped after noHeartbeatTTL.
func (s *TaskService) ReapZombies(ctx context.Context, heartbeatTTL, noHeartbeatTTL time.Duration) ([]models.ReapedTask, error) {
	running, err := s.client.Task.Query().
		Where(task.StatusEQ(task.StatusRunning)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to scan running tasks: %w", err)
	}

	now := time.Now()
	var reaped []models.ReapedTask

	for _, t := range running {
		var reason string

		if hb, ok := models.HeartbeatAt(t.ExecutionContext); ok {
			age := now.Sub(hb)
			if age > heartbeatTTL {
				reason = fmt.Sprintf("heartbeat stale for %s", age.Round(time.Second))
			}
		} else if t.StartedAt != nil && now.Sub(*t.StartedAt) > noHeartbeatTTL {
			reason = fmt.Sprintf("no heartbeat since start %s ago", now.Sub(*t.StartedAt).Round(time.Second))
		}

		if reason == "" {
			continue
		}

		execCtx := mergeContext(t.ExecutionContext, map[string]any{
			models.CtxFailureType: models.FailureTypeZombie,
		})

		// Conditional on still-running so a task that finished or was
		// cancelled between scan and write is left alone
		count, err := s.client.Task.Update().
			Where(
				task.IDEQ(t.ID),
				task.StatusEQ(task.StatusRunning),
			).
			SetStatus(task.StatusFailed).
			SetError(reason).
			SetCompletedAt(now).
			SetExecutionContext(execCtx).
			Save(ctx)
		if err != nil {
			return reaped, fmt.Errorf("failed to reap task %s: %w", t.ID, err)
		}
		if count > 0 {
			reaped = append(reaped, models.ReapedTask{TaskID: t.ID, WorkspaceID: t.WorkspaceID, Reason: reason})
		}
	}

	return reaped, nil
}

// CancelTask transitions a non-terminal task to cancelled_by_user.
// A running task is not interrupted directly; its runner observes the
// cancellation on the next heartbeat and aborts.
func (s *TaskService) CancelTask(ctx context.Context, taskID string) (*ent.Task, error) {
	// Use background context with timeout for critical write
	writeCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	count, err := s.client.Task.Update().
		Where(
			task.IDEQ(taskID),
			task.StatusIn(task.StatusPending, task.StatusRunning, task.StatusWaitingConfirmation),
		).
		SetStatus(task.StatusCancelledByUser).
		SetCompletedAt(time.Now()).
		Save(writeCtx)
	if err != nil {
		return nil, fmt.Errorf("failed to cancel task: %w", err)
	}
	if count == 0 {
		t, err := s.GetTask(writeCtx, taskID)
		if err != nil {
			return nil, err
		}
		return t, ErrNotCancellable
	}

	return s.GetTask(writeCtx, taskID)
}

// CompleteTask transitions a running task to succeeded with its result.
// Uses a background context because the session context may already be
// cancelled when the final write happens.
func (s *TaskService) CompleteTask(_ context.Context, taskID string, result map[string]any) error {
	writeCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	update := s.client.Task.Update().
		Where(
			task.IDEQ(taskID),
			task.StatusEQ(task.StatusRunning),
		).
		SetStatus(task.StatusSucceeded).
		SetCompletedAt(time.Now())
	if result != nil {
		update.SetResult(result)
	}

	count, err := update.Save(writeCtx)
	if err != nil {
		return fmt.Errorf("failed to complete task: %w", err)
	}
	if count == 0 {
		return ErrConcurrentModification
	}
	return nil
}

// FailTask transitions a running task to failed with an error message and
// failure type. The conversation snapshot in execution_context is left in
// place so a later resume can restore it.
func (s *TaskService) FailTask(_ context.Context, taskID, errMsg, failureType string) error {
	writeCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	t, err := s.client.Task.Query().Where(task.IDEQ(taskID)).Only(writeCtx)
	if err != nil {
		if ent.IsNotFound(err) {
			return ErrNotFound
		}
		return fmt.Errorf("failed to load task: %w", err)
	}

	execCtx := t.ExecutionContext
	if failureType != "" {
		execCtx = mergeContext(execCtx, map[string]any{
			models.CtxFailureType: failureType,
		})
	}

	update := s.client.Task.Update().
		Where(
			task.IDEQ(taskID),
			task.StatusEQ(task.StatusRunning),
		).
		SetStatus(task.StatusFailed).
		SetError(errMsg).
		SetCompletedAt(time.Now())
	if execCtx != nil {
		update.SetExecutionContext(execCtx)
	}

	count, err := update.Save(writeCtx)
	if err != nil {
		return fmt.Errorf("failed to fail task: %w", err)
	}
	if count == 0 {
		return ErrConcurrentModification
	}
	return nil
}

// SetWaitingConfirmation pauses a running task at a review gate, stamping
// the pause markers every reader of the sub-state checks.
func (s *TaskService) SetWaitingConfirmation(ctx context.Context, taskID string) error {
	writeCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	t, err := s.client.Task.Query().Where(task.IDEQ(taskID)).Only(writeCtx)
	if err != nil {
		if ent.IsNotFound(err) {
			return ErrNotFound
		}
		return fmt.Errorf("failed to load task: %w", err)
	}
	execCtx := mergeContext(t.ExecutionContext, map[string]any{
		models.CtxPausedAt:           time.Now().UTC().Format(time.RFC3339Nano),
		models.CtxConfirmationStatus: models.ConfirmationPending,
	})

	count, err := s.client.Task.Update().
		Where(
			task.IDEQ(taskID),
			task.StatusEQ(task.StatusRunning),
		).
		SetStatus(task.StatusWaitingConfirmation).
		SetExecutionContext(execCtx).
		Save(writeCtx)
	if err != nil {
		return fmt.Errorf("failed to set waiting_confirmation: %w", err)
	}
	if count == 0 {
		return ErrConcurrentModification
	}
	return nil
}

// ResumeFromConfirmation lifts the review pause, recording the outcome and
// putting the task back on its running course.
func (s *TaskService) ResumeFromConfirmation(ctx context.Context, taskID, outcome string) error {
	writeCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	t, err := s.client.Task.Query().Where(task.IDEQ(taskID)).Only(writeCtx)
	if err != nil {
		if ent.IsNotFound(err) {
			return ErrNotFound
		}
		return fmt.Errorf("failed to load task: %w", err)
	}
	execCtx := mergeContext(t.ExecutionContext, map[string]any{
		models.CtxPausedAt:           "",
		models.CtxConfirmationStatus: outcome,
	})

	count, err := s.client.Task.Update().
		Where(
			task.IDEQ(taskID),
			task.StatusEQ(task.StatusWaitingConfirmation),
		).
		SetStatus(task.StatusRunning).
		SetExecutionContext(execCtx).
		Save(writeCtx)
	if err != nil {
		return fmt.Errorf("failed to resume from confirmation: %w", err)
	}
	if count == 0 {
		return ErrConcurrentModification
	}
	return nil
}

// ConfirmSuggestion converts a suggestion task into a runnable
// playbook_execution. The next poll picks it up like any pending task.
func (s *TaskService) ConfirmSuggestion(ctx context.Context, taskID string) (*ent.Task, error) {
	writeCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	count, err := s.client.Task.Update().
		Where(
			task.IDEQ(taskID),
			task.TaskTypeEQ(task.TaskTypeSuggestion),
			task.StatusIn(task.StatusPending, task.StatusWaitingConfirmation),
		).
		SetTaskType(task.TaskTypePlaybookExecution).
		SetStatus(task.StatusPending).
		Save(writeCtx)
	if err != nil {
		return nil, fmt.Errorf("failed to confirm suggestion: %w", err)
	}
	if count == 0 {
		t, err := s.GetTask(writeCtx, taskID)
		if err != nil {
			return nil, err
		}
		return t, ErrNotConfirmable
	}

	return s.GetTask(writeCtx, taskID)
}

// DismissSuggestion cancels a pending suggestion.
func (s *TaskService) DismissSuggestion(ctx context.Context, taskID string) error {
	writeCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	count, err := s.client.Task.Update().
		Where(
			task.IDEQ(taskID),
			task.TaskTypeEQ(task.TaskTypeSuggestion),
			task.StatusIn(task.StatusPending, task.StatusWaitingConfirmation),
		).
		SetStatus(task.StatusCancelledByUser).
		SetCompletedAt(time.Now()).
		Save(writeCtx)
	if err != nil {
		return fmt.Errorf("failed to dismiss suggestion: %w", err)
	}
	if count == 0 {
		return ErrNotConfirmable
	}
	return nil
}

// ExpireStaleSuggestions expires pending suggestions older than maxAge.
func (s *TaskService) ExpireStaleSuggestions(ctx context.Context, maxAge time.Duration) (int, error) {
	cutoff := time.Now().Add(-maxAge)

	count, err := s.client.Task.Update().
		Where(
			task.TaskTypeEQ(task.TaskTypeSuggestion),
			task.StatusEQ(task.StatusPending),
			task.CreatedAtLT(cutoff),
		).
		SetStatus(task.StatusExpired).
		SetCompletedAt(time.Now()).
		Save(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to expire suggestions: %w", err)
	}
	return count, nil
}

// FailTimedOut fails running tasks started more than budget ago, stamping
// failure_type=timeout. Packs in exemptPacks (long-running playbooks) are
// never timed out. Returns the tasks it transitioned.
func (s *TaskService) FailTimedOut(ctx context.Context, budget time.Duration, exemptPacks []string) ([]models.ReapedTask, error) {
	cutoff := time.Now().Add(-budget)

	query := s.client.Task.Query().
		Where(
			task.StatusEQ(task.StatusRunning),
			task.StartedAtNotNil(),
			task.StartedAtLT(cutoff),
		)
	if len(exemptPacks) > 0 {
		query = query.Where(task.PackIDNotIn(exemptPacks...))
	}
	running, err := query.All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to scan for timed-out tasks: %w", err)
	}

	var failed []models.ReapedTask
	for _, t := range running {
		reason := fmt.Sprintf("task exceeded %s budget", budget)
		execCtx := mergeContext(t.ExecutionContext, map[string]any{
			models.CtxFailureType: models.FailureTypeTimeout,
		})
		count, err := s.client.Task.Update().
			Where(
				task.IDEQ(t.ID),
				task.StatusEQ(task.StatusRunning),
			).
			SetStatus(task.StatusFailed).
			SetError(reason).
			SetCompletedAt(time.Now()).
			SetExecutionContext(execCtx).
			Save(ctx)
		if err != nil {
			return failed, fmt.Errorf("failed to time out task %s: %w", t.ID, err)
		}
		if count > 0 {
			failed = append(failed, models.ReapedTask{TaskID: t.ID, WorkspaceID: t.WorkspaceID, Reason: reason})
		}
	}

	return failed, nil
}

// MarkInterruptedByRunners fails running tasks owned by the given runners
// with the restart-interruption error. Called during graceful shutdown;
// the next heartbeat after restart resurrects them.
func (s *TaskService) MarkInterruptedByRunners(ctx context.Context, runnerIDs []string) (int, error) {
	if len(runnerIDs) == 0 {
		return 0, nil
	}
	owned := make(map[string]bool, len(runnerIDs))
	for _, id := range runnerIDs {
		owned[id] = true
	}

	// Shutdown path: never use the (likely cancelled) caller context
	writeCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	running, err := s.client.Task.Query().
		Where(task.StatusEQ(task.StatusRunning)).
		All(writeCtx)
	if err != nil {
		return 0, fmt.Errorf("failed to scan running tasks: %w", err)
	}

	interrupted := 0
	for _, t := range running {
		owner, ok := models.RunnerID(t.ExecutionContext)
		if !ok || !owned[owner] {
			continue
		}
		execCtx := mergeContext(t.ExecutionContext, map[string]any{
			models.CtxFailureType: models.FailureTypeRestart,
		})
		count, err := s.client.Task.Update().
			Where(
				task.IDEQ(t.ID),
				task.StatusEQ(task.StatusRunning),
			).
			SetStatus(task.StatusFailed).
			SetError(models.RestartInterruptionError).
			SetCompletedAt(time.Now()).
			SetExecutionContext(execCtx).
			Save(writeCtx)
		if err != nil {
			return interrupted, fmt.Errorf("failed to interrupt task %s: %w", t.ID, err)
		}
		interrupted += count
	}

	return interrupted, nil
}

// UpdateExecutionContext merges the given keys into a task's
// execution_context. Used for checkpoint writes mid-run.
func (s *TaskService) UpdateExecutionContext(ctx context.Context, taskID string, patch map[string]any) error {
	writeCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	tx, err := s.client.Tx(writeCtx)
	if err != nil {
		return fmt.Errorf("failed to start transaction: %w", err)
	}
	defer tx.Rollback()

	t, err := tx.Task.Query().Where(task.IDEQ(taskID)).Only(writeCtx)
	if err != nil {
		if ent.IsNotFound(err) {
			return ErrNotFound
		}
		return fmt.Errorf("failed to load task: %w", err)
	}

	execCtx := mergeContext(t.ExecutionContext, patch)
	if err := tx.Task.UpdateOneID(taskID).SetExecutionContext(execCtx).Exec(writeCtx); err != nil {
		return fmt.Errorf("failed to update execution context: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit context update: %w", err)
	}
	return nil
}

// HasRecentDuplicateSuggestion reports whether a live suggestion for the
// same pack with identical source and file set was created within the window.
// Dismissed or expired suggestions do not suppress; the user said no once,
// not forever. Used by the coordinator's duplicate-suppression rule.
func (s *TaskService) HasRecentDuplicateSuggestion(ctx context.Context, workspaceID, packID, source string, files []string, window time.Duration) (bool, error) {
	cutoff := time.Now().Add(-window)

	candidates, err := s.client.Task.Query().
		Where(
			task.WorkspaceIDEQ(workspaceID),
			task.PackIDEQ(packID),
			task.TaskTypeEQ(task.TaskTypeSuggestion),
			task.StatusIn(task.StatusPending, task.StatusRunning),
			task.CreatedAtGTE(cutoff),
		).
		All(ctx)
	if err != nil {
		return false, fmt.Errorf("failed to query recent suggestions: %w", err)
	}

	for _, t := range candidates {
		if t.Params == nil {
			continue
		}
		if src, _ := t.Params["source"].(string); src != source {
			continue
		}
		if sameFileSet(t.Params["files"], files) {
			return true, nil
		}
	}
	return false, nil
}

// sameFileSet compares a decoded JSON file list against files,
// order-insensitively.
func sameFileSet(raw any, files []string) bool {
	var existing []string
	switch v := raw.(type) {
	case []string:
		existing = v
	case []any:
		for _, item := range v {
			s, ok := item.(string)
			if !ok {
				return false
			}
			existing = append(existing, s)
		}
	default:
		return len(files) == 0
	}

	if len(existing) != len(files) {
		return false
	}
	set := make(map[string]int, len(existing))
	for _, f := range existing {
		set[f]++
	}
	for _, f := range files {
		set[f]--
		if set[f] < 0 {
			return false
		}
	}
	return true
}

// PurgeTerminalTasks hard-deletes terminal tasks whose completed_at is
// older than the retention window. Returns the IDs of the purged tasks so
// the caller can cascade into events, tool calls, stage results and
// execution mirrors.
func (s *TaskService) PurgeTerminalTasks(ctx context.Context, olderThan time.Duration) ([]string, error) {
	if olderThan <= 0 {
		return nil, fmt.Errorf("retention window must be positive, got %s", olderThan)
	}
	cutoff := time.Now().Add(-olderThan)

	deleteCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	ids, err := s.client.Task.Query().
		Where(
			task.StatusIn(task.StatusSucceeded, task.StatusFailed, task.StatusCancelledByUser, task.StatusExpired),
			task.CompletedAtNotNil(),
			task.CompletedAtLT(cutoff),
		).
		IDs(deleteCtx)
	if err != nil {
		return nil, fmt.Errorf("failed to list purgeable tasks: %w", err)
	}
	if len(ids) == 0 {
		return nil, nil
	}

	if _, err := s.client.Task.Delete().
		Where(task.IDIn(ids...)).
		Exec(deleteCtx); err != nil {
		return nil, fmt.Errorf("failed to purge tasks: %w", err)
	}
	return ids, nil
}

// mergeContext returns a copy of base with patch applied. The stored map
// is never mutated in place; ent JSON fields are replaced wholesale.
func mergeContext(base, patch map[string]any) map[string]any {
	merged := make(map[string]any, len(base)+len(patch))
	for k, v := range base {
		merged[k] = v
	}
	for k, v := range patch {
		merged[k] = v
	}
	return merged
}
