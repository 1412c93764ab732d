package services

import (
	"context"
	"fmt"
	"time"

	"github.com/cortexops/playbookd/ent"
	"github.com/cortexops/playbookd/ent/playbookexecution"
	"github.com/cortexops/playbookd/ent/task"
	"github.com/cortexops/playbookd/pkg/models"
)

// ExecutionService maintains the playbook_executions mirror: a status
// projection of the task row plus the checkpoint snapshot. task.status
// stays authoritative; every write here follows a task-side write.
type ExecutionService struct {
	client *ent.Client
}

// NewExecutionService creates a new ExecutionService
func NewExecutionService(client *ent.Client) *ExecutionService {
	return &ExecutionService{client: client}
}

// CreateMirror creates the execution row when a playbook run starts
func (s *ExecutionService) CreateMirror(httpCtx context.Context, executionID, workspaceID, playbookCode, intentID string, totalSteps int) (*ent.PlaybookExecution, error) {
	if executionID == "" {
		return nil, NewValidationError("execution_id", "required")
	}
	if workspaceID == "" {
		return nil, NewValidationError("workspace_id", "required")
	}
	if playbookCode == "" {
		return nil, NewValidationError("playbook_code", "required")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	builder := s.client.PlaybookExecution.Create().
		SetID(executionID).
		SetWorkspaceID(workspaceID).
		SetPlaybookCode(playbookCode).
		SetStatus(string(task.StatusRunning)).
		SetTotalSteps(totalSteps).
		SetCurrentStepIndex(0)

	if intentID != "" {
		builder.SetIntentID(intentID)
	}

	exec, err := builder.Save(ctx)
	if err != nil {
		if ent.IsConstraintError(err) {
			return nil, ErrAlreadyExists
		}
		return nil, fmt.Errorf("failed to create execution mirror: %w", err)
	}

	return exec, nil
}

// GetExecution retrieves the mirror row by execution ID
func (s *ExecutionService) GetExecution(ctx context.Context, executionID string) (*ent.PlaybookExecution, error) {
	exec, err := s.client.PlaybookExecution.Query().
		Where(playbookexecution.IDEQ(executionID)).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get execution: %w", err)
	}
	return exec, nil
}

// SyncStatus projects the task's current status onto the mirror row.
// failureMetadata, if non-nil, is stored for failed terminal states.
func (s *ExecutionService) SyncStatus(_ context.Context, executionID, status string, failureMetadata map[string]any, supportsResume bool) error {
	writeCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	update := s.client.PlaybookExecution.UpdateOneID(executionID).
		SetStatus(status).
		SetUpdatedAt(time.Now())

	switch task.Status(status) {
	case task.StatusSucceeded, task.StatusFailed, task.StatusCancelledByUser, task.StatusExpired:
		update.SetCompletedAt(time.Now())
	}
	if failureMetadata != nil {
		update.SetFailureMetadata(failureMetadata)
	}
	update.SetSupportsResume(supportsResume)

	if err := update.Exec(writeCtx); err != nil {
		if ent.IsNotFound(err) {
			return ErrNotFound
		}
		return fmt.Errorf("failed to sync execution status: %w", err)
	}
	return nil
}

// SaveSnapshot stores a checkpoint document and the derived step counter.
// currentStepIndex is clamped at zero for runs that checkpoint before
// completing their first step.
func (s *ExecutionService) SaveSnapshot(_ context.Context, executionID string, snapshot map[string]any, currentStep int) error {
	writeCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	stepIndex := currentStep - 1
	if stepIndex < 0 {
		stepIndex = 0
	}

	err := s.client.PlaybookExecution.UpdateOneID(executionID).
		SetSnapshot(snapshot).
		SetCurrentStepIndex(stepIndex).
		SetSupportsResume(true).
		SetUpdatedAt(time.Now()).
		Exec(writeCtx)
	if err != nil {
		if ent.IsNotFound(err) {
			return ErrNotFound
		}
		return fmt.Errorf("failed to save snapshot: %w", err)
	}
	return nil
}

// AppendPhaseSummary adds one completed-phase summary to the mirror
func (s *ExecutionService) AppendPhaseSummary(_ context.Context, executionID string, summary map[string]any) error {
	writeCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	exec, err := s.client.PlaybookExecution.Query().
		Where(playbookexecution.IDEQ(executionID)).
		Only(writeCtx)
	if err != nil {
		if ent.IsNotFound(err) {
			return ErrNotFound
		}
		return fmt.Errorf("failed to load execution: %w", err)
	}

	summaries := append(append([]map[string]any{}, exec.PhaseSummaries...), summary)
	err = s.client.PlaybookExecution.UpdateOneID(executionID).
		SetPhaseSummaries(summaries).
		SetUpdatedAt(time.Now()).
		Exec(writeCtx)
	if err != nil {
		return fmt.Errorf("failed to append phase summary: %w", err)
	}
	return nil
}

// ListByWorkspace returns executions for a workspace, newest first
func (s *ExecutionService) ListByWorkspace(ctx context.Context, workspaceID string, limit int) ([]*ent.PlaybookExecution, error) {
	if limit <= 0 {
		limit = 20
	}

	execs, err := s.client.PlaybookExecution.Query().
		Where(playbookexecution.WorkspaceIDEQ(workspaceID)).
		Order(ent.Desc(playbookexecution.FieldCreatedAt)).
		Limit(limit).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list executions: %w", err)
	}
	return execs, nil
}

// BuildStatusResponse assembles the polled status view: authoritative
// status from the task row, counters and resume flag from the mirror.
func (s *ExecutionService) BuildStatusResponse(ctx context.Context, t *ent.Task, exec *ent.PlaybookExecution) *models.ExecutionStatusResponse {
	resp := &models.ExecutionStatusResponse{
		ExecutionID:  t.ID,
		Status:       string(t.Status),
		PlaybookCode: t.PackID,
	}
	if t.Error != nil {
		resp.Error = *t.Error
	}
	if exec != nil {
		resp.PlaybookCode = exec.PlaybookCode
		if exec.CurrentStepIndex != nil {
			resp.CurrentStepIndex = *exec.CurrentStepIndex
		}
		if exec.TotalSteps != nil {
			resp.TotalSteps = *exec.TotalSteps
		}
		resp.SupportsResume = exec.SupportsResume
		resp.FailureMetadata = exec.FailureMetadata
	}
	return resp
}

// PurgeMirrors deletes the execution mirror rows of purged tasks.
func (s *ExecutionService) PurgeMirrors(ctx context.Context, executionIDs []string) (int, error) {
	if len(executionIDs) == 0 {
		return 0, nil
	}

	deleteCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	count, err := s.client.PlaybookExecution.Delete().
		Where(playbookexecution.IDIn(executionIDs...)).
		Exec(deleteCtx)
	if err != nil {
		return 0, fmt.Errorf("failed to purge execution mirrors: %w", err)
	}
	return count, nil
}
