package coordinator

import (
	"context"
	"testing"

	"github.com/cortexops/playbookd/ent"
	"github.com/cortexops/playbookd/ent/task"
	"github.com/cortexops/playbookd/ent/workspace"
	"github.com/cortexops/playbookd/pkg/config"
	"github.com/cortexops/playbookd/pkg/playbook"
	"github.com/cortexops/playbookd/pkg/services"
	"github.com/cortexops/playbookd/test/util"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestCoordinator(t *testing.T) (*Coordinator, *ent.Client) {
	t.Helper()
	client, _ := util.SetupTestDatabase(t)
	c := New(
		services.NewTaskService(client),
		services.NewWorkspaceService(client),
		services.NewPreferenceService(client),
		playbook.NewRegistry(playbook.Builtins()),
		config.DefaultCoordinatorConfig(),
	)
	return c, client
}

func createWorkspace(t *testing.T, client *ent.Client, mode, priority string, autoExec map[string]any) {
	t.Helper()
	builder := client.Workspace.Create().
		SetID("ws-1").
		SetOwnerID("user-1").
		SetMode(workspace.Mode(mode)).
		SetPriority(workspace.Priority(priority))
	if autoExec != nil {
		builder.SetAutoExecutionConfig(autoExec)
	}
	_, err := builder.Save(context.Background())
	require.NoError(t, err)
}

func TestCoordinator_ReadonlyAutoExecutesInExecutionMode(t *testing.T) {
	c, client := newTestCoordinator(t)
	createWorkspace(t, client, "execution", "medium", nil)

	decisions := c.Process(context.Background(), "ws-1", "user-1", []Proposal{
		{PackID: "daily_planning", Confidence: 0.8},
	})
	require.Len(t, decisions, 1)
	assert.Equal(t, OutcomeExecute, decisions[0].Outcome)
	require.NotNil(t, decisions[0].Task)
	assert.Equal(t, task.TaskTypePlaybookExecution, decisions[0].Task.TaskType)
	assert.Equal(t, task.StatusPending, decisions[0].Task.Status)
}

func TestCoordinator_ReadonlyBelowThresholdBecomesSuggestion(t *testing.T) {
	c, client := newTestCoordinator(t)
	createWorkspace(t, client, "execution", "high", nil)

	decisions := c.Process(context.Background(), "ws-1", "user-1", []Proposal{
		{PackID: "daily_planning", Confidence: 0.8},
	})
	require.Len(t, decisions, 1)
	// high priority threshold is 0.9
	assert.Equal(t, OutcomeSuggestion, decisions[0].Outcome)
	assert.Equal(t, task.TaskTypeSuggestion, decisions[0].Task.TaskType)
}

func TestCoordinator_ExternalWriteAlwaysSuggestion(t *testing.T) {
	c, client := newTestCoordinator(t)
	createWorkspace(t, client, "execution", "low", nil)

	decisions := c.Process(context.Background(), "ws-1", "user-1", []Proposal{
		{PackID: "wp_publish", Confidence: 0.99, AutoExecute: true},
	})
	require.Len(t, decisions, 1)
	assert.Equal(t, OutcomeSuggestion, decisions[0].Outcome)
}

func TestCoordinator_SoftWriteUsesPerPackOverride(t *testing.T) {
	c, client := newTestCoordinator(t)
	createWorkspace(t, client, "qa", "medium", map[string]any{
		"seo_article": map[string]any{
			"confidence_threshold": 0.7,
			"auto_execute":         true,
		},
	})
	ctx := context.Background()

	decisions := c.Process(ctx, "ws-1", "user-1", []Proposal{
		{PackID: "seo_article", Confidence: 0.75},
	})
	assert.Equal(t, OutcomeExecute, decisions[0].Outcome)

	decisions = c.Process(ctx, "ws-1", "user-1", []Proposal{
		{PackID: "seo_article", Confidence: 0.5, Source: "chat", Files: []string{"a.md"}},
	})
	assert.Equal(t, OutcomeSuggestion, decisions[0].Outcome)
}

func TestCoordinator_NoOverrideDefaultsToSuggestion(t *testing.T) {
	c, client := newTestCoordinator(t)
	createWorkspace(t, client, "qa", "medium", nil)

	decisions := c.Process(context.Background(), "ws-1", "user-1", []Proposal{
		{PackID: "seo_article", Confidence: 0.99},
	})
	assert.Equal(t, OutcomeSuggestion, decisions[0].Outcome)
}

func TestCoordinator_PreauthorizedProposalExecutes(t *testing.T) {
	c, client := newTestCoordinator(t)
	createWorkspace(t, client, "qa", "medium", nil)

	// The habit hook pre-authorizes its observation runs; no threshold or
	// override lookup applies.
	decisions := c.Process(context.Background(), "ws-1", "user-1", []Proposal{
		{PackID: "habit_learning", Confidence: 0.1, AutoExecute: true},
	})
	require.Len(t, decisions, 1)
	assert.Equal(t, OutcomeExecute, decisions[0].Outcome)
	require.NotNil(t, decisions[0].Task)
	assert.Equal(t, task.TaskTypePlaybookExecution, decisions[0].Task.TaskType)
}

func TestCoordinator_InvalidPackSkipped(t *testing.T) {
	c, client := newTestCoordinator(t)
	createWorkspace(t, client, "execution", "low", nil)

	decisions := c.Process(context.Background(), "ws-1", "user-1", []Proposal{
		{PackID: "no_such_pack", Confidence: 0.9},
		{PackID: playbook.PackIntentExtraction, Confidence: 0.9},
	})
	assert.Equal(t, OutcomeSkipped, decisions[0].Outcome)
	assert.Equal(t, ReasonInvalidPlaybookCode, decisions[0].Reason)
	// Special-case packs are always valid and treated as readonly
	assert.Equal(t, OutcomeExecute, decisions[1].Outcome)
}

func TestCoordinator_PreferenceOptOutSkips(t *testing.T) {
	c, client := newTestCoordinator(t)
	createWorkspace(t, client, "execution", "low", nil)
	ctx := context.Background()

	prefs := services.NewPreferenceService(client)
	require.NoError(t, prefs.SetAutoSuggest(ctx, "ws-1", "user-1", "daily_planning", "suggestion", false))

	decisions := c.Process(ctx, "ws-1", "user-1", []Proposal{
		{PackID: "daily_planning", Confidence: 0.95},
	})
	assert.Equal(t, OutcomeSkipped, decisions[0].Outcome)
	assert.Equal(t, ReasonAutoSuggestDisabled, decisions[0].Reason)
}

func TestCoordinator_DuplicateSuggestionSuppressed(t *testing.T) {
	c, client := newTestCoordinator(t)
	createWorkspace(t, client, "qa", "medium", nil)
	ctx := context.Background()

	proposal := Proposal{
		PackID:     "seo_article",
		Confidence: 0.4,
		Source:     "chat",
		Files:      []string{"notes.md", "draft.md"},
	}

	first := c.Process(ctx, "ws-1", "user-1", []Proposal{proposal})
	require.Equal(t, OutcomeSuggestion, first[0].Outcome)

	// Same source, same file set in different order: suppressed
	proposal.Files = []string{"draft.md", "notes.md"}
	second := c.Process(ctx, "ws-1", "user-1", []Proposal{proposal})
	assert.Equal(t, OutcomeReused, second[0].Outcome)
	assert.Equal(t, ReasonDuplicateSuggestion, second[0].Reason)

	// Different file set: new suggestion
	proposal.Files = []string{"other.md"}
	third := c.Process(ctx, "ws-1", "user-1", []Proposal{proposal})
	assert.Equal(t, OutcomeSuggestion, third[0].Outcome)

	count, err := client.Task.Query().Where(task.TaskTypeEQ(task.TaskTypeSuggestion)).Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, 2, count)
}

func TestCoordinator_SuggestionCarriesNormalizedAnalysis(t *testing.T) {
	c, client := newTestCoordinator(t)
	createWorkspace(t, client, "qa", "medium", nil)

	decisions := c.Process(context.Background(), "ws-1", "user-1", []Proposal{
		{
			PackID:          "habit_learning",
			Confidence:      0.5,
			Reason:          "recurring pattern detected",
			AnalysisSummary: "user drafts articles every monday",
		},
	})
	require.Equal(t, OutcomeSuggestion, decisions[0].Outcome)

	params := decisions[0].Task.Params
	assert.Equal(t, 0.5, params["confidence"])
	assert.Equal(t, "recurring pattern detected", params["reason"])
	assert.Equal(t, "user drafts articles every monday", params["analysis_summary"])
	assert.Equal(t, true, params["is_background"])
	assert.NotNil(t, params["content_tags"])
}

func TestCoordinator_MissingWorkspaceNeverAutoExecutes(t *testing.T) {
	c, _ := newTestCoordinator(t)

	decisions := c.Process(context.Background(), "ws-absent", "user-1", []Proposal{
		{PackID: "daily_planning", Confidence: 0.99},
	})
	assert.Equal(t, OutcomeSuggestion, decisions[0].Outcome)
}
