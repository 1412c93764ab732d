package models

import "github.com/cortexops/playbookd/ent"

// CreateArtifactRequest contains fields for persisting an execution output
type CreateArtifactRequest struct {
	ArtifactID   string         `json:"artifact_id,omitempty"`
	WorkspaceID  string         `json:"workspace_id"`
	IntentID     string         `json:"intent_id,omitempty"`
	TaskID       string         `json:"task_id,omitempty"`
	ExecutionID  string         `json:"execution_id"`
	PlaybookCode string         `json:"playbook_code"`
	ArtifactType string         `json:"artifact_type"`
	Title        string         `json:"title"`
	Summary      string         `json:"summary,omitempty"`
	Content      map[string]any `json:"content,omitempty"`
	StorageRef   string         `json:"storage_ref,omitempty"`
	Metadata     map[string]any `json:"metadata,omitempty"`
}

// ArtifactListResponse contains artifacts for a workspace or execution
type ArtifactListResponse struct {
	Artifacts  []*ent.Artifact `json:"artifacts"`
	TotalCount int             `json:"total_count"`
}
