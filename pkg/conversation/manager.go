// Package conversation holds the per-execution conversation state the step
// driver advances. A Manager keeps identifiers rather than heavy objects;
// playbooks and principals are resolved from their stores at restore time.
package conversation

import (
	"encoding/json"
	"fmt"
)

// Role identifies the author of a conversation turn.
type Role string

const (
	RoleSystem    Role = "system"
	RoleUser      Role = "user"
	RoleAssistant Role = "assistant"
)

// Turn is one message in the conversation.
type Turn struct {
	Role    Role   `json:"role"`
	Content string `json:"content"`
}

// Manager is the serializable conversation state of one playbook execution.
// CurrentStep is 0-based and names the next step to emit. ToolCatalog is a
// frozen view of the workspace's enabled tools taken at start time.
type Manager struct {
	PlaybookCode      string         `json:"playbook_code"`
	PrincipalID       string         `json:"principal_id"`
	WorkspaceID       string         `json:"workspace_id"`
	Locale            string         `json:"locale"`
	Turns             []Turn         `json:"turns"`
	CurrentStep       int            `json:"current_step"`
	StructuredOutputs map[string]any `json:"structured_outputs"`
	SkipSteps         []int          `json:"skip_steps,omitempty"`
	ExtraChecklist    []string       `json:"extra_checklist,omitempty"`
	ToolCatalog       string         `json:"tool_catalog"`
}

// Seed carries everything needed to open a fresh conversation.
type Seed struct {
	PlaybookCode   string
	PrincipalID    string
	WorkspaceID    string
	Locale         string
	SystemPrompt   string
	SkipSteps      []int
	ExtraChecklist []string
	ToolCatalog    string
}

// New opens a conversation seeded with a single system turn.
func New(seed Seed) *Manager {
	m := &Manager{
		PlaybookCode:      seed.PlaybookCode,
		PrincipalID:       seed.PrincipalID,
		WorkspaceID:       seed.WorkspaceID,
		Locale:            seed.Locale,
		Turns:             []Turn{},
		StructuredOutputs: map[string]any{},
		SkipSteps:         seed.SkipSteps,
		ExtraChecklist:    seed.ExtraChecklist,
		ToolCatalog:       seed.ToolCatalog,
	}
	if seed.SystemPrompt != "" {
		m.Append(RoleSystem, seed.SystemPrompt)
	}
	return m
}

// Append adds a turn to the conversation.
func (m *Manager) Append(role Role, content string) {
	m.Turns = append(m.Turns, Turn{Role: role, Content: content})
}

// Messages returns a copy of the turns so callers cannot mutate history.
func (m *Manager) Messages() []Turn {
	out := make([]Turn, len(m.Turns))
	copy(out, m.Turns)
	return out
}

// LastAssistant returns the most recent assistant turn, or "" if none exists.
func (m *Manager) LastAssistant() string {
	for i := len(m.Turns) - 1; i >= 0; i-- {
		if m.Turns[i].Role == RoleAssistant {
			return m.Turns[i].Content
		}
	}
	return ""
}

// AdvanceStep moves the step counter to the next step.
func (m *Manager) AdvanceStep() {
	m.CurrentStep++
}

// SetStructuredOutput records an extracted structured output under a key.
func (m *Manager) SetStructuredOutput(key string, value any) {
	if m.StructuredOutputs == nil {
		m.StructuredOutputs = map[string]any{}
	}
	m.StructuredOutputs[key] = value
}

// Serialize renders the manager as a JSON-shaped map suitable for storage in
// a task's execution context. The round-trip through Deserialize is lossless.
func (m *Manager) Serialize() (map[string]any, error) {
	data, err := json.Marshal(m)
	if err != nil {
		return nil, fmt.Errorf("failed to serialize conversation: %w", err)
	}
	var state map[string]any
	if err := json.Unmarshal(data, &state); err != nil {
		return nil, fmt.Errorf("failed to serialize conversation: %w", err)
	}
	return state, nil
}

// Deserialize rebuilds a Manager from a previously serialized state map.
func Deserialize(state map[string]any) (*Manager, error) {
	data, err := json.Marshal(state)
	if err != nil {
		return nil, fmt.Errorf("failed to deserialize conversation: %w", err)
	}
	var m Manager
	if err := json.Unmarshal(data, &m); err != nil {
		return nil, fmt.Errorf("failed to deserialize conversation: %w", err)
	}
	if m.Turns == nil {
		m.Turns = []Turn{}
	}
	if m.StructuredOutputs == nil {
		m.StructuredOutputs = map[string]any{}
	}
	return &m, nil
}
