// Package coordinator decides what happens to each task proposal produced
// from a user message: execute now, create a suggestion, or skip.
package coordinator

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/cortexops/playbookd/ent"
	"github.com/cortexops/playbookd/ent/task"
	"github.com/cortexops/playbookd/pkg/config"
	"github.com/cortexops/playbookd/pkg/models"
	"github.com/cortexops/playbookd/pkg/playbook"
	"github.com/cortexops/playbookd/pkg/services"
)

// Outcome is the coordinator's decision for one proposal.
type Outcome string

const (
	OutcomeExecute    Outcome = "execute"
	OutcomeSuggestion Outcome = "suggestion"
	OutcomeSkipped    Outcome = "skipped"
	OutcomeReused     Outcome = "reused"
)

// Skip reasons surfaced in decisions.
const (
	ReasonInvalidPlaybookCode = "invalid_playbook_code"
	ReasonAutoSuggestDisabled = "auto_suggest_disabled"
	ReasonDuplicateSuggestion = "duplicate_suggestion"
)

// Proposal is one candidate task from an execution plan.
type Proposal struct {
	PackID      string         `json:"pack_id"`
	Params      map[string]any `json:"params"`
	Confidence  float64        `json:"confidence"`
	AutoExecute bool           `json:"auto_execute"`

	// Source and Files identify the triggering material for duplicate
	// suppression.
	Source string   `json:"source,omitempty"`
	Files  []string `json:"files,omitempty"`

	// Normalized LLM analysis carried onto created suggestions.
	Reason          string   `json:"reason,omitempty"`
	ContentTags     []string `json:"content_tags,omitempty"`
	AnalysisSummary string   `json:"analysis_summary,omitempty"`
}

// Decision records what the coordinator did with one proposal.
type Decision struct {
	PackID  string    `json:"pack_id"`
	Outcome Outcome   `json:"outcome"`
	Reason  string    `json:"reason,omitempty"`
	Task    *ent.Task `json:"task,omitempty"`
}

// Coordinator applies the auto-execution policy.
type Coordinator struct {
	tasks      *services.TaskService
	workspaces *services.WorkspaceService
	prefs      *services.PreferenceService
	registry   *playbook.Registry
	cfg        *config.CoordinatorConfig
	logger     *slog.Logger
}

// New builds a coordinator.
func New(
	tasks *services.TaskService,
	workspaces *services.WorkspaceService,
	prefs *services.PreferenceService,
	registry *playbook.Registry,
	cfg *config.CoordinatorConfig,
) *Coordinator {
	return &Coordinator{
		tasks:      tasks,
		workspaces: workspaces,
		prefs:      prefs,
		registry:   registry,
		cfg:        cfg,
		logger:     slog.Default().With("component", "coordinator"),
	}
}

// Process decides every proposal of a plan in order.
func (c *Coordinator) Process(ctx context.Context, workspaceID, userID string, proposals []Proposal) []Decision {
	decisions := make([]Decision, 0, len(proposals))
	for _, p := range proposals {
		decisions = append(decisions, c.decide(ctx, workspaceID, userID, p))
	}
	return decisions
}

func (c *Coordinator) decide(ctx context.Context, workspaceID, userID string, p Proposal) Decision {
	if !c.registry.IsValidPack(p.PackID) {
		return Decision{PackID: p.PackID, Outcome: OutcomeSkipped, Reason: ReasonInvalidPlaybookCode}
	}

	enabled, err := c.prefs.AutoSuggestEnabled(ctx, workspaceID, userID, p.PackID, string(task.TaskTypeSuggestion))
	if err != nil {
		c.logger.Warn("preference lookup failed, treating as enabled",
			"pack", p.PackID, "error", err)
		enabled = true
	}
	if !enabled {
		return Decision{PackID: p.PackID, Outcome: OutcomeSkipped, Reason: ReasonAutoSuggestDisabled}
	}

	tier := c.tierFor(p.PackID)
	execute := false
	switch {
	case tier == playbook.TierExternalWrite:
		execute = false
	case p.AutoExecute:
		// Internal producers (the habit hook) pre-authorize execution;
		// the threshold policy only governs inferred proposals.
		execute = true
	default:
		execute = c.shouldAutoExecute(ctx, workspaceID, p, tier)
	}

	if execute {
		return c.executeNow(ctx, workspaceID, p)
	}
	return c.createSuggestion(ctx, workspaceID, p, "")
}

// tierFor resolves the side-effect tier. Special-case packs have no catalog
// entry and are treated as readonly capabilities.
func (c *Coordinator) tierFor(packID string) playbook.Tier {
	pb, err := c.registry.Get(packID)
	if err != nil {
		return playbook.TierReadonly
	}
	return pb.Tier
}

// shouldAutoExecute implements the threshold policy: the workspace-mode
// priority table for readonly packs, then per-pack overrides, then a
// conservative default of no.
func (c *Coordinator) shouldAutoExecute(ctx context.Context, workspaceID string, p Proposal, tier playbook.Tier) bool {
	ws, err := c.workspaces.GetWorkspace(ctx, workspaceID)
	if err != nil {
		if !errors.Is(err, services.ErrNotFound) {
			c.logger.Warn("workspace lookup failed", "workspace_id", workspaceID, "error", err)
		}
		return false
	}

	mode := string(ws.Mode)
	if (mode == "execution" || mode == "hybrid") && tier == playbook.TierReadonly {
		return p.Confidence >= c.cfg.ThresholdFor(string(ws.Priority))
	}

	threshold, autoExecute, found, err := c.workspaces.AutoExecOverride(ctx, workspaceID, p.PackID)
	if err != nil {
		c.logger.Warn("override lookup failed", "workspace_id", workspaceID, "error", err)
		return false
	}
	if found {
		return autoExecute && p.Confidence >= threshold
	}
	return false
}

// executeNow creates a runnable playbook_execution task for the worker pool.
// If creation fails, the proposal falls back to a suggestion, but only when
// no pending task for the pack already exists.
func (c *Coordinator) executeNow(ctx context.Context, workspaceID string, p Proposal) Decision {
	created, err := c.tasks.CreateTask(ctx, models.CreateTaskRequest{
		WorkspaceID: workspaceID,
		PackID:      p.PackID,
		TaskType:    string(task.TaskTypePlaybookExecution),
		Params:      c.taskParams(p),
	})
	if err == nil {
		return Decision{PackID: p.PackID, Outcome: OutcomeExecute, Task: created}
	}

	c.logger.Warn("execute-now failed, considering suggestion fallback",
		"pack", p.PackID, "error", err)

	pending, perr := c.tasks.ListTasks(ctx, models.TaskFilters{
		WorkspaceID: workspaceID,
		PackID:      p.PackID,
		Status:      string(task.StatusPending),
		Limit:       1,
	})
	if perr == nil && pending.TotalCount > 0 {
		return Decision{PackID: p.PackID, Outcome: OutcomeReused, Reason: "pending task exists"}
	}
	return c.createSuggestion(ctx, workspaceID, p, fmt.Sprintf("execution fallback: %v", err))
}

func (c *Coordinator) createSuggestion(ctx context.Context, workspaceID string, p Proposal, fallbackNote string) Decision {
	dup, err := c.tasks.HasRecentDuplicateSuggestion(
		ctx, workspaceID, p.PackID, p.Source, p.Files, c.cfg.SuppressionWindow)
	if err != nil {
		c.logger.Warn("duplicate probe failed", "pack", p.PackID, "error", err)
	}
	if dup {
		return Decision{PackID: p.PackID, Outcome: OutcomeReused, Reason: ReasonDuplicateSuggestion}
	}

	params := c.taskParams(p)
	if fallbackNote != "" {
		params["fallback_note"] = fallbackNote
	}

	created, err := c.tasks.CreateTask(ctx, models.CreateTaskRequest{
		WorkspaceID: workspaceID,
		PackID:      p.PackID,
		TaskType:    string(task.TaskTypeSuggestion),
		Params:      params,
	})
	if err != nil {
		c.logger.Error("failed to create suggestion", "pack", p.PackID, "error", err)
		return Decision{PackID: p.PackID, Outcome: OutcomeSkipped, Reason: err.Error()}
	}
	return Decision{PackID: p.PackID, Outcome: OutcomeSuggestion, Task: created}
}

// taskParams normalizes the proposal into the stored parameter map. The
// analysis fields are always present so downstream consumers need no guards.
func (c *Coordinator) taskParams(p Proposal) map[string]any {
	params := make(map[string]any, len(p.Params)+6)
	for k, v := range p.Params {
		params[k] = v
	}
	params["confidence"] = p.Confidence
	params["reason"] = p.Reason
	params["analysis_summary"] = p.AnalysisSummary
	params["is_background"] = c.isBackground(p.PackID)
	if p.ContentTags != nil {
		params["content_tags"] = p.ContentTags
	} else {
		params["content_tags"] = []string{}
	}
	if p.Source != "" {
		params["source"] = p.Source
	}
	if p.Files != nil {
		params["files"] = p.Files
	}
	return params
}

func (c *Coordinator) isBackground(packID string) bool {
	pb, err := c.registry.Get(packID)
	if err != nil {
		return false
	}
	return pb.Background
}
