package models

import "github.com/cortexops/playbookd/ent"

// StartExecutionRequest contains fields for starting a playbook execution
type StartExecutionRequest struct {
	WorkspaceID  string         `json:"workspace_id"`
	PlaybookCode string         `json:"playbook_code"`
	IntentID     string         `json:"intent_id,omitempty"`
	Params       map[string]any `json:"params,omitempty"`
}

// ExecutionStatusResponse is the polled status view of one execution.
// Status comes from the task row; step counters and snapshot metadata
// come from the execution mirror.
type ExecutionStatusResponse struct {
	ExecutionID      string           `json:"execution_id"`
	Status           string           `json:"status"`
	PlaybookCode     string           `json:"playbook_code"`
	CurrentStepIndex int              `json:"current_step_index"`
	TotalSteps       int              `json:"total_steps"`
	SupportsResume   bool             `json:"supports_resume"`
	Error            string           `json:"error,omitempty"`
	FailureMetadata  map[string]any   `json:"failure_metadata,omitempty"`
	ToolCalls        []*ent.ToolCall  `json:"tool_calls,omitempty"`
	Events           []*ent.MindEvent `json:"events,omitempty"`
}

// ChatMessageRequest is a user turn sent into a live or finished execution
type ChatMessageRequest struct {
	Message string `json:"message"`
	UserID  string `json:"user_id,omitempty"`
}

// ConfirmSuggestionRequest confirms or dismisses a pending suggestion
type ConfirmSuggestionRequest struct {
	UserID string `json:"user_id,omitempty"`
}
