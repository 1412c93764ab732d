package models

import "github.com/cortexops/playbookd/ent"

// CreateToolCallRequest contains fields written before a tool is dispatched
type CreateToolCallRequest struct {
	ToolCallID     string         `json:"tool_call_id,omitempty"`
	ExecutionID    string         `json:"execution_id"`
	StepID         string         `json:"step_id,omitempty"`
	ToolName       string         `json:"tool_name"`
	Parameters     map[string]any `json:"parameters,omitempty"`
	FactoryCluster string         `json:"factory_cluster"`
}

// FinalizeToolCallRequest contains fields written after a tool returns
type FinalizeToolCallRequest struct {
	Response   map[string]any `json:"response,omitempty"`
	Error      string         `json:"error,omitempty"`
	DurationMS int            `json:"duration_ms"`
}

// ToolCallsResponse contains tool calls after a given watermark
type ToolCallsResponse struct {
	ToolCalls []*ent.ToolCall `json:"tool_calls"`
}
