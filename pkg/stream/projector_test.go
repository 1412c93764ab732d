package stream

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/cortexops/playbookd/pkg/checkpoint"
	"github.com/cortexops/playbookd/pkg/config"
	"github.com/cortexops/playbookd/pkg/conversation"
	"github.com/cortexops/playbookd/pkg/models"
	"github.com/cortexops/playbookd/pkg/services"
	"github.com/cortexops/playbookd/test/util"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type captureSink struct {
	mu         sync.Mutex
	frames     []Frame
	heartbeats int
}

func (c *captureSink) Send(frame Frame) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.frames = append(c.frames, frame)
	return nil
}

func (c *captureSink) Heartbeat() error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.heartbeats++
	return nil
}

func (c *captureSink) types() []string {
	c.mu.Lock()
	defer c.mu.Unlock()
	out := make([]string, len(c.frames))
	for i, f := range c.frames {
		out[i], _ = f["type"].(string)
	}
	return out
}

type streamFixture struct {
	projector *Projector
	tasks     *services.TaskService
	events    *services.EventService
	execs     *services.ExecutionService
	toolCalls *services.ToolCallService
	stages    *services.StageResultService
}

func newStreamFixture(t *testing.T) *streamFixture {
	t.Helper()
	client, _ := util.SetupTestDatabase(t)
	cfg := config.DefaultStreamConfig()
	cfg.PollInterval = 10 * time.Millisecond
	cfg.HeartbeatInterval = time.Hour
	cfg.MaxStreamDuration = 5 * time.Second

	tasks := services.NewTaskService(client)
	events := services.NewEventService(client)
	execs := services.NewExecutionService(client)
	toolCalls := services.NewToolCallService(client)
	stages := services.NewStageResultService(client)
	return &streamFixture{
		projector: NewProjector(tasks, events, toolCalls, stages, cfg),
		tasks:     tasks,
		events:    events,
		execs:     execs,
		toolCalls: toolCalls,
		stages:    stages,
	}
}

func (f *streamFixture) startExecution(t *testing.T) string {
	t.Helper()
	ctx := context.Background()
	created, err := f.tasks.CreateTask(ctx, models.CreateTaskRequest{
		WorkspaceID: "ws-1",
		PackID:      "seo_article",
		TaskType:    "playbook_execution",
	})
	require.NoError(t, err)
	_, ok, err := f.tasks.TryClaim(ctx, created.ID, "runner-1")
	require.NoError(t, err)
	require.True(t, ok)
	return created.ID
}

func TestProjector_FullLifecycle(t *testing.T) {
	f := newStreamFixture(t)
	ctx := context.Background()
	execID := f.startExecution(t)

	_, err := f.events.EmitStepEvent(ctx, services.StepEventRequest{
		WorkspaceID: "ws-1", ExecutionID: execID,
		StepIndex: 1, TotalSteps: 2, Status: "completed", Description: "found keywords",
	})
	require.NoError(t, err)

	tc, err := f.toolCalls.CreateToolCall(ctx, models.CreateToolCallRequest{
		ExecutionID:    execID,
		ToolName:       "sem-search",
		FactoryCluster: "sem-hub",
	})
	require.NoError(t, err)
	_, err = f.toolCalls.FinalizeToolCall(ctx, tc.ID, models.FinalizeToolCallRequest{
		Response: map[string]any{"hits": 3}, DurationMS: 12,
	})
	require.NoError(t, err)

	_, err = f.stages.CreateStageResult(ctx, execID, "step-1", "final_output", "draft",
		map[string]any{"title": "x"}, "draft ready", false)
	require.NoError(t, err)

	require.NoError(t, f.tasks.CompleteTask(ctx, execID, map[string]any{"done": true}))

	sink := &captureSink{}
	require.NoError(t, f.projector.Stream(ctx, execID, sink))

	types := sink.types()
	assert.Equal(t, TypeExecutionUpdate, types[0])
	assert.Contains(t, types, TypeStepUpdate)
	assert.Contains(t, types, TypeToolCallUpdate)
	assert.Contains(t, types, TypeStageResult)
	require.GreaterOrEqual(t, len(types), 2)
	assert.Equal(t, TypeExecutionCompleted, types[len(types)-2])
	assert.Equal(t, TypeStreamEnd, types[len(types)-1])

	var completed Frame
	for _, fr := range sink.frames {
		if fr["type"] == TypeExecutionCompleted {
			completed = fr
		}
	}
	require.NotNil(t, completed)
	assert.Equal(t, "completed", completed["final_status"])
	assert.Equal(t, execID, completed["execution_id"])
}

func TestProjector_UnknownExecution(t *testing.T) {
	f := newStreamFixture(t)
	sink := &captureSink{}

	require.NoError(t, f.projector.Stream(context.Background(), "missing", sink))
	assert.Equal(t, []string{TypeError, TypeStreamEnd}, sink.types())
}

func TestProjector_CancelledMapsToCancelled(t *testing.T) {
	f := newStreamFixture(t)
	ctx := context.Background()
	execID := f.startExecution(t)
	_, err := f.tasks.CancelTask(ctx, execID)
	require.NoError(t, err)

	sink := &captureSink{}
	require.NoError(t, f.projector.Stream(ctx, execID, sink))

	var completed Frame
	for _, fr := range sink.frames {
		if fr["type"] == TypeExecutionCompleted {
			completed = fr
		}
	}
	require.NotNil(t, completed)
	assert.Equal(t, "cancelled", completed["final_status"])
}

func TestProjector_WatermarksSuppressDuplicates(t *testing.T) {
	f := newStreamFixture(t)
	ctx := context.Background()
	execID := f.startExecution(t)

	_, err := f.events.EmitStepEvent(ctx, services.StepEventRequest{
		WorkspaceID: "ws-1", ExecutionID: execID,
		StepIndex: 1, TotalSteps: 3, Status: "in_progress", Description: "working",
	})
	require.NoError(t, err)

	sink := &captureSink{}
	var wm watermarks

	done, err := f.projector.tick(ctx, execID, sink, &wm)
	require.NoError(t, err)
	assert.False(t, done)
	firstCount := len(sink.types())
	assert.Contains(t, sink.types(), TypeStepUpdate)

	// Nothing changed: the second tick emits no frames at all
	done, err = f.projector.tick(ctx, execID, sink, &wm)
	require.NoError(t, err)
	assert.False(t, done)
	assert.Len(t, sink.types(), firstCount)

	// A new step appears exactly once
	_, err = f.events.EmitStepEvent(ctx, services.StepEventRequest{
		WorkspaceID: "ws-1", ExecutionID: execID,
		StepIndex: 2, TotalSteps: 3, Status: "in_progress", Description: "next",
	})
	require.NoError(t, err)

	_, err = f.projector.tick(ctx, execID, sink, &wm)
	require.NoError(t, err)
	assert.Len(t, sink.types(), firstCount+1)
}

func TestProjector_ExecutionUpdateOnTripleChange(t *testing.T) {
	f := newStreamFixture(t)
	ctx := context.Background()
	execID := f.startExecution(t)

	sink := &captureSink{}
	var wm watermarks

	_, err := f.projector.tick(ctx, execID, sink, &wm)
	require.NoError(t, err)
	require.Equal(t, []string{TypeExecutionUpdate}, sink.types())

	// Step index advance re-triggers the execution view
	require.NoError(t, f.tasks.UpdateExecutionContext(ctx, execID, map[string]any{
		models.CtxCurrentStep: 2,
	}))
	_, err = f.projector.tick(ctx, execID, sink, &wm)
	require.NoError(t, err)
	assert.Equal(t, []string{TypeExecutionUpdate, TypeExecutionUpdate}, sink.types())
}

func TestProjector_ReportsCheckpointedStepIndex(t *testing.T) {
	f := newStreamFixture(t)
	ctx := context.Background()
	execID := f.startExecution(t)

	mgr := conversation.New(conversation.Seed{
		PlaybookCode: "seo_article",
		PrincipalID:  "principal-1",
		WorkspaceID:  "ws-1",
		SystemPrompt: "write the article",
	})
	mgr.Append(conversation.RoleUser, "begin")
	mgr.Append(conversation.RoleAssistant, "Phase 1 done.")
	mgr.AdvanceStep()

	ckpt := checkpoint.NewManager(f.tasks, f.execs)
	require.NoError(t, ckpt.Save(ctx, execID, mgr, 4))

	sink := &captureSink{}
	var wm watermarks
	_, err := f.projector.tick(ctx, execID, sink, &wm)
	require.NoError(t, err)
	require.Equal(t, []string{TypeExecutionUpdate}, sink.types())

	// Another engine turn advances the view through the same write path
	mgr.Append(conversation.RoleAssistant, "Phase 2 done.")
	mgr.AdvanceStep()
	require.NoError(t, ckpt.Save(ctx, execID, mgr, 4))

	_, err = f.projector.tick(ctx, execID, sink, &wm)
	require.NoError(t, err)
	require.Len(t, sink.frames, 2)

	view, ok := sink.frames[1]["execution"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, 1, view["current_step_index"])
	assert.EqualValues(t, 4, view["total_steps"])
}
