package services

import (
	"context"
	"fmt"

	"github.com/cortexops/playbookd/ent"
	"github.com/cortexops/playbookd/ent/workspace"
)

// WorkspaceService reads workspace settings. Workspaces are created by an
// external onboarding flow; the engine only consults mode, priority and
// per-pack auto-execution overrides.
type WorkspaceService struct {
	client *ent.Client
}

// NewWorkspaceService creates a new WorkspaceService
func NewWorkspaceService(client *ent.Client) *WorkspaceService {
	return &WorkspaceService{client: client}
}

// GetWorkspace retrieves a workspace by ID
func (s *WorkspaceService) GetWorkspace(ctx context.Context, workspaceID string) (*ent.Workspace, error) {
	ws, err := s.client.Workspace.Query().Where(workspace.IDEQ(workspaceID)).Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get workspace: %w", err)
	}
	return ws, nil
}

// AutoExecOverride returns the per-pack auto-execution override for a
// workspace, if one is configured. The map shape is
// {confidence_threshold: float, auto_execute: bool}.
func (s *WorkspaceService) AutoExecOverride(ctx context.Context, workspaceID, packID string) (threshold float64, autoExecute, found bool, err error) {
	ws, err := s.GetWorkspace(ctx, workspaceID)
	if err != nil {
		return 0, false, false, err
	}
	if ws.AutoExecutionConfig == nil {
		return 0, false, false, nil
	}

	raw, ok := ws.AutoExecutionConfig[packID]
	if !ok {
		return 0, false, false, nil
	}
	entry, ok := raw.(map[string]any)
	if !ok {
		return 0, false, false, nil
	}

	if v, ok := entry["confidence_threshold"].(float64); ok {
		threshold = v
	}
	if v, ok := entry["auto_execute"].(bool); ok {
		autoExecute = v
	}
	return threshold, autoExecute, true, nil
}
