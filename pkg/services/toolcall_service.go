package services

import (
	"context"
	"fmt"
	"time"

	"github.com/cortexops/playbookd/ent"
	"github.com/cortexops/playbookd/ent/toolcall"
	"github.com/cortexops/playbookd/pkg/models"
	"github.com/google/uuid"
)

// ToolCallService records tool invocations: a pending row before dispatch,
// finalized with response or error after.
type ToolCallService struct {
	client *ent.Client
}

// NewToolCallService creates a new ToolCallService
func NewToolCallService(client *ent.Client) *ToolCallService {
	return &ToolCallService{client: client}
}

// CreateToolCall writes the pending record before the tool is dispatched
func (s *ToolCallService) CreateToolCall(httpCtx context.Context, req models.CreateToolCallRequest) (*ent.ToolCall, error) {
	if req.ExecutionID == "" {
		return nil, NewValidationError("execution_id", "required")
	}
	if req.ToolName == "" {
		return nil, NewValidationError("tool_name", "required")
	}
	if req.FactoryCluster == "" {
		return nil, NewValidationError("factory_cluster", "required")
	}

	id := req.ToolCallID
	if id == "" {
		id = uuid.New().String()
	}

	// Use background context with timeout for critical write
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	builder := s.client.ToolCall.Create().
		SetID(id).
		SetExecutionID(req.ExecutionID).
		SetToolName(req.ToolName).
		SetFactoryCluster(req.FactoryCluster).
		SetStatus(toolcall.StatusPending).
		SetStartedAt(time.Now())

	if req.StepID != "" {
		builder.SetStepID(req.StepID)
	}
	if req.Parameters != nil {
		builder.SetParameters(req.Parameters)
	}

	tc, err := builder.Save(ctx)
	if err != nil {
		if ent.IsConstraintError(err) {
			return nil, ErrAlreadyExists
		}
		return nil, fmt.Errorf("failed to create tool call: %w", err)
	}

	return tc, nil
}

// FinalizeToolCall completes the record after the tool returned.
// A non-empty error marks the call failed; the response, if any, is kept
// either way so the LLM observation can include partial output.
func (s *ToolCallService) FinalizeToolCall(httpCtx context.Context, toolCallID string, req models.FinalizeToolCallRequest) (*ent.ToolCall, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	update := s.client.ToolCall.UpdateOneID(toolCallID).
		SetCompletedAt(time.Now()).
		SetDurationMs(req.DurationMS)

	if req.Error != "" {
		update.SetStatus(toolcall.StatusFailed).SetError(req.Error)
	} else {
		update.SetStatus(toolcall.StatusCompleted)
	}
	if req.Response != nil {
		update.SetResponse(req.Response)
	}

	tc, err := update.Save(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to finalize tool call: %w", err)
	}

	return tc, nil
}

// ListForExecution returns tool calls for an execution created strictly
// after the watermark, oldest first.
func (s *ToolCallService) ListForExecution(ctx context.Context, executionID string, after time.Time, limit int) ([]*ent.ToolCall, error) {
	if limit <= 0 {
		limit = 100
	}

	calls, err := s.client.ToolCall.Query().
		Where(
			toolcall.ExecutionIDEQ(executionID),
			toolcall.CreatedAtGT(after),
		).
		Order(ent.Asc(toolcall.FieldCreatedAt)).
		Limit(limit).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list tool calls: %w", err)
	}

	return calls, nil
}

// PurgeForExecutions deletes the tool call records of purged executions.
func (s *ToolCallService) PurgeForExecutions(ctx context.Context, executionIDs []string) (int, error) {
	if len(executionIDs) == 0 {
		return 0, nil
	}

	deleteCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	count, err := s.client.ToolCall.Delete().
		Where(toolcall.ExecutionIDIn(executionIDs...)).
		Exec(deleteCtx)
	if err != nil {
		return 0, fmt.Errorf("failed to purge tool calls: %w", err)
	}
	return count, nil
}
