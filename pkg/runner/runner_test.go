package runner

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/cortexops/playbookd/ent"
	"github.com/cortexops/playbookd/ent/task"
	"github.com/cortexops/playbookd/pkg/checkpoint"
	"github.com/cortexops/playbookd/pkg/conversation"
	"github.com/cortexops/playbookd/pkg/llm"
	"github.com/cortexops/playbookd/pkg/models"
	"github.com/cortexops/playbookd/pkg/playbook"
	"github.com/cortexops/playbookd/pkg/services"
	"github.com/cortexops/playbookd/pkg/tools"
	"github.com/cortexops/playbookd/test/util"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeToolRunner struct {
	mu       sync.Mutex
	requests []tools.Request
	result   any
	err      error
	catalog  string
}

func (f *fakeToolRunner) RunTool(_ context.Context, req tools.Request) (any, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.requests = append(f.requests, req)
	if f.err != nil {
		return nil, f.err
	}
	if f.result != nil {
		return f.result, nil
	}
	return map[string]any{"ok": true}, nil
}

func (f *fakeToolRunner) BuildCatalog(context.Context) string {
	if f.catalog != "" {
		return f.catalog
	}
	return "sem-search: keyword research"
}

type fixture struct {
	runner   *Runner
	tasks    *services.TaskService
	events   *services.EventService
	execs    *services.ExecutionService
	stages   *services.StageResultService
	convs    *conversation.Registry
	provider *llm.ScriptedProvider
	toolsRun *fakeToolRunner
	client   *ent.Client
}

func newFixture(t *testing.T, maxSteps int, replies ...string) *fixture {
	t.Helper()
	client, _ := util.SetupTestDatabase(t)

	tasks := services.NewTaskService(client)
	events := services.NewEventService(client)
	execs := services.NewExecutionService(client)
	stages := services.NewStageResultService(client)
	convs := conversation.NewRegistry()
	provider := llm.NewScriptedProvider(replies...)
	toolsRun := &fakeToolRunner{}

	r := New(Deps{
		Name:     "runner-test",
		Tasks:    tasks,
		Events:   events,
		Execs:    execs,
		Stages:   stages,
		Ckpt:     checkpoint.NewManager(tasks, execs),
		Registry: playbook.NewRegistry(playbook.Builtins()),
		Convs:    convs,
		Provider: provider,
		Tools:    toolsRun,
		MaxSteps: maxSteps,
	})
	return &fixture{
		runner: r, tasks: tasks, events: events, execs: execs, stages: stages,
		convs: convs, provider: provider, toolsRun: toolsRun, client: client,
	}
}

func startRequest() StartRequest {
	return StartRequest{
		PackCode:      "seo_article",
		PrincipalID:   "principal-1",
		WorkspaceID:   "ws-1",
		Inputs:        map[string]any{"topic": "garden ponds"},
		Locale:        "en-US",
		TriggerSource: "api",
	}
}

func TestRunner_StartClaimsTaskAndCheckpoints(t *testing.T) {
	f := newFixture(t, 0, "Phase 1: gathered keywords.")
	ctx := context.Background()

	res, err := f.runner.Start(ctx, startRequest())
	require.NoError(t, err)
	assert.NotEmpty(t, res.ExecutionID)
	assert.Equal(t, "Phase 1: gathered keywords.", res.Message)
	assert.False(t, res.IsComplete)
	// system + user + assistant
	require.Len(t, res.History, 3)

	tk, err := f.tasks.GetTask(ctx, res.ExecutionID)
	require.NoError(t, err)
	assert.Equal(t, task.StatusRunning, tk.Status)
	owner, ok := models.RunnerID(tk.ExecutionContext)
	require.True(t, ok)
	assert.Equal(t, "runner-test", owner)
	assert.Equal(t, "api", tk.ExecutionContext["trigger_source"])
	assert.Contains(t, tk.ExecutionContext, "conversation_state")

	exec, err := f.execs.GetExecution(ctx, res.ExecutionID)
	require.NoError(t, err)
	assert.Equal(t, "seo_article", exec.PlaybookCode)

	stepEvents, err := f.events.ListStepEvents(ctx, res.ExecutionID)
	require.NoError(t, err)
	require.Len(t, stepEvents, 1)

	_, inMem := f.convs.Get(res.ExecutionID)
	assert.True(t, inMem)
}

func TestRunner_StartUnknownPack(t *testing.T) {
	f := newFixture(t, 0)
	req := startRequest()
	req.PackCode = "no_such_pack"
	_, err := f.runner.Start(context.Background(), req)
	assert.Error(t, err)
}

func TestRunner_ContinueDispatchesToolsAndCompletes(t *testing.T) {
	f := newFixture(t, 0,
		"Starting.",
		`{"tool_call": {"tool_name": "sem-search", "parameters": {"query": "garden ponds"}}}`,
		`All phases done. STRUCTURED_OUTPUT: {"title": "Garden Ponds", "content": "..."}`,
	)
	ctx := context.Background()

	started, err := f.runner.Start(ctx, startRequest())
	require.NoError(t, err)
	execID := started.ExecutionID

	res, err := f.runner.Continue(ctx, execID, "continue with the draft", "principal-1")
	require.NoError(t, err)
	assert.True(t, res.IsComplete)
	require.NotNil(t, res.StructuredOutput)
	assert.Equal(t, "Garden Ponds", res.StructuredOutput["title"])

	// Tool dispatched with parsed parameters and execution identity.
	require.Len(t, f.toolsRun.requests, 1)
	req := f.toolsRun.requests[0]
	assert.Equal(t, "sem-search", req.ToolFQN)
	assert.Equal(t, "garden ponds", req.Params["query"])
	assert.Equal(t, execID, req.ExecutionID)
	assert.Equal(t, "step-2", req.StepID)

	// Tool results fed back as a system turn.
	var sawResults bool
	for _, turn := range res.History {
		if turn.Role == conversation.RoleSystem && strings.Contains(turn.Content, "Tool execution results") {
			sawResults = true
		}
	}
	assert.True(t, sawResults)

	tk, err := f.tasks.GetTask(ctx, execID)
	require.NoError(t, err)
	assert.Equal(t, task.StatusSucceeded, tk.Status)

	results, err := f.stages.ListForExecution(ctx, execID)
	require.NoError(t, err)
	require.Len(t, results, 1)
	assert.Equal(t, "final_output", results[0].StageName)

	// Completed executions leave the in-memory registry.
	_, ok := f.convs.Get(execID)
	assert.False(t, ok)
}

func TestRunner_ToolLoopStopsAtFiveCalls(t *testing.T) {
	toolReply := `{"tool_call": {"tool_name": "sem-search", "parameters": {}}}`
	f := newFixture(t, 0,
		"Starting.",
		toolReply, toolReply, toolReply, toolReply, toolReply,
		toolReply, // would be the sixth call of the loop
	)
	ctx := context.Background()

	started, err := f.runner.Start(ctx, startRequest())
	require.NoError(t, err)

	res, err := f.runner.Continue(ctx, started.ExecutionID, "go", "principal-1")
	require.NoError(t, err)
	assert.False(t, res.IsComplete)

	// One start call plus exactly five loop calls; the sixth never happens.
	assert.Equal(t, 6, f.provider.CallCount())
	assert.Len(t, f.toolsRun.requests, 5)
}

func TestRunner_AllToolFailuresExitLoop(t *testing.T) {
	f := newFixture(t, 0,
		"Starting.",
		`{"tool_call": {"tool_name": "sem-search", "parameters": {}}}`,
	)
	f.toolsRun.err = fmt.Errorf("upstream unavailable")
	ctx := context.Background()

	started, err := f.runner.Start(ctx, startRequest())
	require.NoError(t, err)

	res, err := f.runner.Continue(ctx, started.ExecutionID, "go", "principal-1")
	require.NoError(t, err)
	assert.False(t, res.IsComplete)
	// Loop exits after the single all-failed iteration.
	assert.Equal(t, 2, f.provider.CallCount())

	// Failure text reaches the conversation for the next turn.
	var sawError bool
	for _, turn := range res.History {
		if turn.Role == conversation.RoleSystem && strings.Contains(turn.Content, "upstream unavailable") {
			sawError = true
		}
	}
	assert.True(t, sawError)
}

func TestRunner_ContinueRestoresFromCheckpoint(t *testing.T) {
	f := newFixture(t, 0,
		"Starting.",
		"Drafted the outline.",
	)
	ctx := context.Background()

	started, err := f.runner.Start(ctx, startRequest())
	require.NoError(t, err)

	// Simulate a restart: in-memory state is gone, the checkpoint survives.
	f.convs.Evict(started.ExecutionID)

	res, err := f.runner.Continue(ctx, started.ExecutionID, "keep going", "principal-1")
	require.NoError(t, err)
	assert.Equal(t, "Drafted the outline.", res.Message)

	// Restored history carries the original system and first-turn messages.
	assert.GreaterOrEqual(t, len(res.History), 5)
	assert.Equal(t, conversation.RoleSystem, res.History[0].Role)
}

func TestRunner_OuterStepBudget(t *testing.T) {
	f := newFixture(t, 1, "Starting.")
	ctx := context.Background()

	started, err := f.runner.Start(ctx, startRequest())
	require.NoError(t, err)

	_, err = f.runner.Continue(ctx, started.ExecutionID, "go", "principal-1")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "exceeded")

	tk, err := f.tasks.GetTask(ctx, started.ExecutionID)
	require.NoError(t, err)
	assert.Equal(t, task.StatusFailed, tk.Status)

	// The failure leaves an ERROR item on the timeline
	errEvents, err := f.events.ListTypedForExecution(ctx, started.ExecutionID, models.EventTypeError, time.Time{}, "", 0)
	require.NoError(t, err)
	require.Len(t, errEvents, 1)
	assert.Contains(t, errEvents[0].Payload["message"], "exceeded")
	assert.Equal(t, models.FailureTypeExecution, errEvents[0].Payload["failure_type"])
}

func TestRunner_StepEventsAdvanceAcrossTurns(t *testing.T) {
	f := newFixture(t, 0,
		"Starting.",
		"Phase two done.",
		`STRUCTURED_OUTPUT: {"title": "done"}`,
	)
	ctx := context.Background()

	started, err := f.runner.Start(ctx, startRequest())
	require.NoError(t, err)

	_, err = f.runner.Continue(ctx, started.ExecutionID, "next", "principal-1")
	require.NoError(t, err)
	res, err := f.runner.Continue(ctx, started.ExecutionID, "finish", "principal-1")
	require.NoError(t, err)
	assert.True(t, res.IsComplete)

	stepEvents, err := f.events.ListStepEvents(ctx, started.ExecutionID)
	require.NoError(t, err)
	require.Len(t, stepEvents, 3)
	for i, evt := range stepEvents {
		idx, ok := evt.Payload["step_index"].(float64)
		if !ok {
			n, nok := evt.Payload["step_index"].(int)
			require.True(t, nok)
			idx = float64(n)
		}
		assert.Equal(t, float64(i+1), idx)
		assert.Equal(t, "completed", evt.Payload["status"])
	}
}

func TestRunner_ExternalWritePausesForReview(t *testing.T) {
	f := newFixture(t, 0,
		"Checked the draft against the blog settings.",
		`Ready to publish. STRUCTURED_OUTPUT: {"post_url": "https://blog.example/p/1"}`,
		`Published. STRUCTURED_OUTPUT: {"post_url": "https://blog.example/p/1"}`,
	)
	ctx := context.Background()

	req := startRequest()
	req.PackCode = "wp_publish"
	started, err := f.runner.Start(ctx, req)
	require.NoError(t, err)
	execID := started.ExecutionID

	res, err := f.runner.Continue(ctx, execID, "publish it", "principal-1")
	require.NoError(t, err)
	assert.False(t, res.IsComplete)
	assert.True(t, res.AwaitingReview)

	tk, err := f.tasks.GetTask(ctx, execID)
	require.NoError(t, err)
	assert.Equal(t, task.StatusWaitingConfirmation, tk.Status)
	assert.NotEmpty(t, tk.ExecutionContext[models.CtxPausedAt])
	assert.Equal(t, models.ConfirmationPending, tk.ExecutionContext[models.CtxConfirmationStatus])

	// The draft is parked as a reviewable stage result
	results, err := f.stages.ListForExecution(ctx, execID)
	require.NoError(t, err)
	require.Len(t, results, 1)
	assert.True(t, results[0].RequiresReview)

	// The conversation stays resident across the pause
	_, inMem := f.convs.Get(execID)
	assert.True(t, inMem)

	// Approval lifts the pause; the next turn completes normally
	require.NoError(t, f.tasks.ResumeFromConfirmation(ctx, execID, models.ConfirmationApproved))
	res, err = f.runner.Continue(ctx, execID, "approved, go ahead", "principal-1")
	require.NoError(t, err)
	assert.True(t, res.IsComplete)
	assert.False(t, res.AwaitingReview)

	tk, err = f.tasks.GetTask(ctx, execID)
	require.NoError(t, err)
	assert.Equal(t, task.StatusSucceeded, tk.Status)
}

func TestRunner_SoftWritePackSkipsReviewGate(t *testing.T) {
	f := newFixture(t, 0,
		"Starting.",
		`Done. STRUCTURED_OUTPUT: {"title": "Garden Ponds"}`,
	)
	ctx := context.Background()

	started, err := f.runner.Start(ctx, startRequest())
	require.NoError(t, err)

	res, err := f.runner.Continue(ctx, started.ExecutionID, "finish", "principal-1")
	require.NoError(t, err)
	assert.True(t, res.IsComplete)
	assert.False(t, res.AwaitingReview)
}
