// Package checkpoint persists and restores execution state: the serialized
// conversation inside the task's execution context plus the richer snapshot
// on the playbook_executions mirror.
package checkpoint

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/cortexops/playbookd/ent"
	"github.com/cortexops/playbookd/ent/task"
	"github.com/cortexops/playbookd/pkg/conversation"
	"github.com/cortexops/playbookd/pkg/models"
	"github.com/cortexops/playbookd/pkg/services"
)

// Manager writes checkpoints after every start/continue turn and rehydrates
// conversations for executions with no in-memory entry.
type Manager struct {
	tasks  *services.TaskService
	execs  *services.ExecutionService
	logger *slog.Logger
}

// NewManager builds a checkpoint manager.
func NewManager(tasks *services.TaskService, execs *services.ExecutionService) *Manager {
	return &Manager{
		tasks:  tasks,
		execs:  execs,
		logger: slog.Default().With("component", "checkpoint"),
	}
}

// Save serializes the conversation into the task's execution context and
// mirrors the snapshot onto the playbook_executions record. The mirror write
// is best-effort and never fails the checkpoint.
func (m *Manager) Save(ctx context.Context, executionID string, mgr *conversation.Manager, totalSteps int) error {
	state, err := mgr.Serialize()
	if err != nil {
		return err
	}

	stepIndex := mgr.CurrentStep - 1
	if stepIndex < 0 {
		stepIndex = 0
	}

	patch := map[string]any{
		models.CtxConversationState: state,
		models.CtxCurrentStep:       stepIndex,
		models.CtxTotalSteps:        totalSteps,
		models.CtxCheckpointAt:      time.Now().UTC().Format(time.RFC3339Nano),
	}
	if err := m.tasks.UpdateExecutionContext(ctx, executionID, patch); err != nil {
		return fmt.Errorf("failed to save checkpoint: %w", err)
	}

	if err := m.execs.SaveSnapshot(ctx, executionID, state, mgr.CurrentStep); err != nil {
		m.logger.Warn("snapshot mirror write failed", "execution_id", executionID, "error", err)
	}
	return nil
}

// Restore rehydrates the conversation from the task's execution context.
// Restore is refused unless the task is running or succeeded: conversational
// playbooks may be "complete" per first-turn heuristics yet still serve
// follow-ups.
func (m *Manager) Restore(ctx context.Context, executionID string) (*conversation.Manager, error) {
	t, err := m.tasks.GetTask(ctx, executionID)
	if err != nil {
		return nil, err
	}

	if t.Status != task.StatusRunning && t.Status != task.StatusSucceeded {
		return nil, fmt.Errorf("%w: task status is %s", services.ErrNotResumable, t.Status)
	}

	state, ok := conversationState(t.ExecutionContext)
	if !ok {
		return nil, fmt.Errorf("%w: no conversation state", services.ErrNotResumable)
	}
	return conversation.Deserialize(state)
}

// ResumeView is the Task+execution reconstruction used by offline recovery.
type ResumeView struct {
	Task         *ent.Task
	Execution    *ent.PlaybookExecution
	Conversation *conversation.Manager
}

// ResumeFromCheckpoint rebuilds an execution view from the latest mirror
// snapshot, incrementing the task's resume counter.
func (m *Manager) ResumeFromCheckpoint(ctx context.Context, executionID string) (*ResumeView, error) {
	t, err := m.tasks.GetTask(ctx, executionID)
	if err != nil {
		return nil, err
	}
	exec, err := m.execs.GetExecution(ctx, executionID)
	if err != nil {
		return nil, err
	}
	if !exec.SupportsResume || exec.Snapshot == nil {
		return nil, fmt.Errorf("%w: no resumable snapshot", services.ErrNotResumable)
	}

	mgr, err := conversation.Deserialize(exec.Snapshot)
	if err != nil {
		return nil, err
	}

	resumes := 0
	if n, ok := t.ExecutionContext[models.CtxResumeCount].(float64); ok {
		resumes = int(n)
	} else if n, ok := t.ExecutionContext[models.CtxResumeCount].(int); ok {
		resumes = n
	}
	if err := m.tasks.UpdateExecutionContext(ctx, executionID, map[string]any{
		models.CtxResumeCount: resumes + 1,
	}); err != nil {
		m.logger.Warn("failed to bump resume counter", "execution_id", executionID, "error", err)
	}

	return &ResumeView{Task: t, Execution: exec, Conversation: mgr}, nil
}

// conversationState tolerates both the map form written by the engine and
// any direct map assignment from tests.
func conversationState(execCtx map[string]any) (map[string]any, bool) {
	if execCtx == nil {
		return nil, false
	}
	state, ok := execCtx[models.CtxConversationState].(map[string]any)
	return state, ok && len(state) > 0
}
