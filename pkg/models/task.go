package models

import (
	"time"

	"github.com/cortexops/playbookd/ent"
)

// CreateTaskRequest contains fields for creating a new task
type CreateTaskRequest struct {
	TaskID        string         `json:"task_id,omitempty"`
	WorkspaceID   string         `json:"workspace_id"`
	ExecutionID   string         `json:"execution_id,omitempty"`
	ProjectID     string         `json:"project_id,omitempty"`
	PackID        string         `json:"pack_id"`
	TaskType      string         `json:"task_type"`
	Params        map[string]any `json:"params,omitempty"`
	StorylineTags []string       `json:"storyline_tags,omitempty"`
}

// TaskFilters contains filtering options for listing tasks
type TaskFilters struct {
	WorkspaceID string     `json:"workspace_id,omitempty"`
	Status      string     `json:"status,omitempty"`
	TaskType    string     `json:"task_type,omitempty"`
	PackID      string     `json:"pack_id,omitempty"`
	CreatedAt   *time.Time `json:"created_at,omitempty"`
	Limit       int        `json:"limit,omitempty"`
	Offset      int        `json:"offset,omitempty"`
}

// TaskListResponse contains paginated task list
type TaskListResponse struct {
	Tasks      []*ent.Task `json:"tasks"`
	TotalCount int         `json:"total_count"`
	Limit      int         `json:"limit"`
	Offset     int         `json:"offset"`
}

// ReapedTask describes one task failed by a liveness sweep.
type ReapedTask struct {
	TaskID      string `json:"task_id"`
	WorkspaceID string `json:"workspace_id"`
	Reason      string `json:"reason"`
}
