package models

import (
	"time"

	"github.com/cortexops/playbookd/ent"
)

// Event types written by the engine.
const (
	EventTypeMessage        = "message"
	EventTypePlaybookStep   = "playbook_step"
	EventTypeExecutionChat  = "execution_chat"
	EventTypeToolCall       = "tool_call"
	EventTypeAgentExecution = "agent_execution"
	EventTypeSuggestion     = "suggestion"
	EventTypeError          = "error"
)

// CreateEventRequest contains fields for creating a mind event
type CreateEventRequest struct {
	EventID     string         `json:"event_id,omitempty"`
	WorkspaceID string         `json:"workspace_id"`
	ProfileID   string         `json:"profile_id,omitempty"`
	ThreadID    string         `json:"thread_id,omitempty"`
	EntityIDs   []string       `json:"entity_ids,omitempty"`
	Actor       string         `json:"actor"`
	EventType   string         `json:"event_type"`
	Payload     map[string]any `json:"payload,omitempty"`
	Metadata    map[string]any `json:"metadata,omitempty"`
	Timestamp   *time.Time     `json:"timestamp,omitempty"`
}

// EventsResponse contains a list of events after a given watermark
type EventsResponse struct {
	Events []*ent.MindEvent `json:"events"`
}
