package services

import (
	"context"
	"fmt"
	"time"

	"github.com/cortexops/playbookd/ent"
	"github.com/cortexops/playbookd/ent/artifact"
	"github.com/cortexops/playbookd/pkg/models"
	"github.com/google/uuid"
)

// ArtifactService persists durable execution outputs with a
// latest-version marker per (workspace, playbook, type) chain.
type ArtifactService struct {
	client *ent.Client
}

// NewArtifactService creates a new ArtifactService
func NewArtifactService(client *ent.Client) *ArtifactService {
	return &ArtifactService{client: client}
}

// CreateArtifact stores a new artifact version. Inside one transaction the
// previous latest version of the same chain loses its is_latest marker and
// the new row takes version max+1.
func (s *ArtifactService) CreateArtifact(httpCtx context.Context, req models.CreateArtifactRequest) (*ent.Artifact, error) {
	if req.WorkspaceID == "" {
		return nil, NewValidationError("workspace_id", "required")
	}
	if req.ExecutionID == "" {
		return nil, NewValidationError("execution_id", "required")
	}
	if req.PlaybookCode == "" {
		return nil, NewValidationError("playbook_code", "required")
	}
	if req.ArtifactType == "" {
		return nil, NewValidationError("artifact_type", "required")
	}
	if req.Title == "" {
		return nil, NewValidationError("title", "required")
	}

	id := req.ArtifactID
	if id == "" {
		id = uuid.New().String()
	}

	// Use background context with timeout for critical write
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	tx, err := s.client.Tx(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to start transaction: %w", err)
	}
	defer tx.Rollback()

	prev, err := tx.Artifact.Query().
		Where(
			artifact.WorkspaceIDEQ(req.WorkspaceID),
			artifact.PlaybookCodeEQ(req.PlaybookCode),
			artifact.ArtifactTypeEQ(artifact.ArtifactType(req.ArtifactType)),
			artifact.IsLatest(true),
		).
		Order(ent.Desc(artifact.FieldVersion)).
		First(ctx)
	version := 1
	if err == nil {
		version = prev.Version + 1
		// Flip the marker off the previous latest
		if _, err := tx.Artifact.Update().
			Where(artifact.IDEQ(prev.ID)).
			SetIsLatest(false).
			SetUpdatedAt(time.Now()).
			Save(ctx); err != nil {
			return nil, fmt.Errorf("failed to demote previous artifact: %w", err)
		}
	} else if !ent.IsNotFound(err) {
		return nil, fmt.Errorf("failed to query previous artifact: %w", err)
	}

	builder := tx.Artifact.Create().
		SetID(id).
		SetWorkspaceID(req.WorkspaceID).
		SetExecutionID(req.ExecutionID).
		SetPlaybookCode(req.PlaybookCode).
		SetArtifactType(artifact.ArtifactType(req.ArtifactType)).
		SetTitle(req.Title).
		SetVersion(version).
		SetIsLatest(true)

	if req.IntentID != "" {
		builder.SetIntentID(req.IntentID)
	}
	if req.TaskID != "" {
		builder.SetTaskID(req.TaskID)
	}
	if req.Summary != "" {
		builder.SetSummary(req.Summary)
	}
	if req.Content != nil {
		builder.SetContent(req.Content)
	}
	if req.StorageRef != "" {
		builder.SetStorageRef(req.StorageRef)
	}
	if req.Metadata != nil {
		builder.SetMetadata(req.Metadata)
	}

	created, err := builder.Save(ctx)
	if err != nil {
		if ent.IsConstraintError(err) {
			return nil, ErrAlreadyExists
		}
		return nil, fmt.Errorf("failed to create artifact: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit artifact: %w", err)
	}

	return created, nil
}

// GetArtifact retrieves an artifact by ID
func (s *ArtifactService) GetArtifact(ctx context.Context, artifactID string) (*ent.Artifact, error) {
	a, err := s.client.Artifact.Query().Where(artifact.IDEQ(artifactID)).Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get artifact: %w", err)
	}
	return a, nil
}

// ListByExecution returns artifacts produced by one execution
func (s *ArtifactService) ListByExecution(ctx context.Context, executionID string) (*models.ArtifactListResponse, error) {
	artifacts, err := s.client.Artifact.Query().
		Where(artifact.ExecutionIDEQ(executionID)).
		Order(ent.Asc(artifact.FieldCreatedAt)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list artifacts: %w", err)
	}
	return &models.ArtifactListResponse{Artifacts: artifacts, TotalCount: len(artifacts)}, nil
}

// ListLatestByWorkspace returns the latest artifact of each chain in a
// workspace
func (s *ArtifactService) ListLatestByWorkspace(ctx context.Context, workspaceID string, limit int) (*models.ArtifactListResponse, error) {
	if limit <= 0 {
		limit = 50
	}

	artifacts, err := s.client.Artifact.Query().
		Where(
			artifact.WorkspaceIDEQ(workspaceID),
			artifact.IsLatest(true),
		).
		Order(ent.Desc(artifact.FieldUpdatedAt)).
		Limit(limit).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list latest artifacts: %w", err)
	}
	return &models.ArtifactListResponse{Artifacts: artifacts, TotalCount: len(artifacts)}, nil
}

// UpdateSyncState records the outcome of pushing an artifact to external
// storage
func (s *ArtifactService) UpdateSyncState(ctx context.Context, artifactID, syncState string) error {
	writeCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	err := s.client.Artifact.UpdateOneID(artifactID).
		SetSyncState(artifact.SyncState(syncState)).
		SetUpdatedAt(time.Now()).
		Exec(writeCtx)
	if err != nil {
		if ent.IsNotFound(err) {
			return ErrNotFound
		}
		return fmt.Errorf("failed to update sync state: %w", err)
	}
	return nil
}
