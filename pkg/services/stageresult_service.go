package services

import (
	"context"
	"fmt"
	"time"

	"github.com/cortexops/playbookd/ent"
	"github.com/cortexops/playbookd/ent/stageresult"
	"github.com/google/uuid"
)

// StageResultService persists intermediate review-worthy outputs.
type StageResultService struct {
	client *ent.Client
}

// NewStageResultService creates a new StageResultService
func NewStageResultService(client *ent.Client) *StageResultService {
	return &StageResultService{client: client}
}

// CreateStageResult records one stage output for an execution
func (s *StageResultService) CreateStageResult(httpCtx context.Context, executionID, stepID, stageName, resultType string, content map[string]any, preview string, requiresReview bool) (*ent.StageResult, error) {
	if executionID == "" {
		return nil, NewValidationError("execution_id", "required")
	}
	if stageName == "" {
		return nil, NewValidationError("stage_name", "required")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	builder := s.client.StageResult.Create().
		SetID(uuid.New().String()).
		SetExecutionID(executionID).
		SetStageName(stageName).
		SetResultType(stageresult.ResultType(resultType)).
		SetRequiresReview(requiresReview)

	if stepID != "" {
		builder.SetStepID(stepID)
	}
	if content != nil {
		builder.SetContent(content)
	}
	if preview != "" {
		builder.SetPreview(preview)
	}

	sr, err := builder.Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to create stage result: %w", err)
	}

	return sr, nil
}

// ListForExecution returns stage results for an execution, oldest first
func (s *StageResultService) ListForExecution(ctx context.Context, executionID string) ([]*ent.StageResult, error) {
	results, err := s.client.StageResult.Query().
		Where(stageresult.ExecutionIDEQ(executionID)).
		Order(ent.Asc(stageresult.FieldCreatedAt)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list stage results: %w", err)
	}
	return results, nil
}

// Review approves or rejects a pending stage result
func (s *StageResultService) Review(ctx context.Context, stageResultID string, approved bool) (*ent.StageResult, error) {
	writeCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	status := stageresult.ReviewStatusApproved
	if !approved {
		status = stageresult.ReviewStatusRejected
	}

	count, err := s.client.StageResult.Update().
		Where(
			stageresult.IDEQ(stageResultID),
			stageresult.ReviewStatusEQ(stageresult.ReviewStatusPending),
		).
		SetReviewStatus(status).
		Save(writeCtx)
	if err != nil {
		return nil, fmt.Errorf("failed to review stage result: %w", err)
	}
	if count == 0 {
		sr, err := s.client.StageResult.Get(writeCtx, stageResultID)
		if err != nil {
			if ent.IsNotFound(err) {
				return nil, ErrNotFound
			}
			return nil, fmt.Errorf("failed to load stage result: %w", err)
		}
		return sr, ErrConcurrentModification
	}

	sr, err := s.client.StageResult.Get(writeCtx, stageResultID)
	if err != nil {
		return nil, fmt.Errorf("failed to reload stage result: %w", err)
	}
	return sr, nil
}

// LinkArtifact attaches the promoted artifact to a stage result
func (s *StageResultService) LinkArtifact(ctx context.Context, stageResultID, artifactID string) error {
	writeCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	err := s.client.StageResult.UpdateOneID(stageResultID).
		SetArtifactID(artifactID).
		Exec(writeCtx)
	if err != nil {
		if ent.IsNotFound(err) {
			return ErrNotFound
		}
		return fmt.Errorf("failed to link artifact: %w", err)
	}
	return nil
}

// PurgeForExecutions deletes the stage results of purged executions.
func (s *StageResultService) PurgeForExecutions(ctx context.Context, executionIDs []string) (int, error) {
	if len(executionIDs) == 0 {
		return 0, nil
	}

	deleteCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	count, err := s.client.StageResult.Delete().
		Where(stageresult.ExecutionIDIn(executionIDs...)).
		Exec(deleteCtx)
	if err != nil {
		return 0, fmt.Errorf("failed to purge stage results: %w", err)
	}
	return count, nil
}
