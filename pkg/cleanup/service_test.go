package cleanup

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cortexops/playbookd/ent"
	"github.com/cortexops/playbookd/ent/mindevent"
	"github.com/cortexops/playbookd/ent/task"
	"github.com/cortexops/playbookd/pkg/config"
	"github.com/cortexops/playbookd/pkg/models"
	"github.com/cortexops/playbookd/pkg/services"
	"github.com/cortexops/playbookd/test/util"
)

type cleanupFixture struct {
	svc    *Service
	client *ent.Client
	tasks  *services.TaskService
	events *services.EventService
}

func newCleanupFixture(t *testing.T) *cleanupFixture {
	t.Helper()
	client, _ := util.SetupTestDatabase(t)

	tasks := services.NewTaskService(client)
	events := services.NewEventService(client)
	toolCalls := services.NewToolCallService(client)
	stages := services.NewStageResultService(client)
	execs := services.NewExecutionService(client)

	cfg := &config.RetentionConfig{
		TaskRetentionDays: 30,
		EventTTL:          90 * 24 * time.Hour,
		CleanupInterval:   time.Hour,
	}

	return &cleanupFixture{
		svc:    NewService(cfg, tasks, events, toolCalls, stages, execs),
		client: client,
		tasks:  tasks,
		events: events,
	}
}

// completedTask creates a succeeded task and backdates its completed_at.
func (f *cleanupFixture) completedTask(t *testing.T, age time.Duration) *ent.Task {
	t.Helper()
	ctx := context.Background()

	created, err := f.tasks.CreateTask(ctx, models.CreateTaskRequest{
		WorkspaceID: "ws-1",
		PackID:      "seo_article",
		TaskType:    string(task.TaskTypePlaybookExecution),
	})
	require.NoError(t, err)
	require.NoError(t, f.tasks.CompleteTask(ctx, created.ID, map[string]any{"done": true}))

	err = f.client.Task.UpdateOneID(created.ID).
		SetCompletedAt(time.Now().Add(-age)).
		Exec(ctx)
	require.NoError(t, err)
	return created
}

func TestCleanup_PurgesOldTerminalTasksWithCascade(t *testing.T) {
	f := newCleanupFixture(t)
	ctx := context.Background()

	old := f.completedTask(t, 60*24*time.Hour)
	recent := f.completedTask(t, time.Hour)

	_, err := f.events.CreateEvent(ctx, models.CreateEventRequest{
		WorkspaceID: "ws-1",
		EntityIDs:   []string{old.ID},
		Actor:       "system",
		EventType:   models.EventTypePlaybookStep,
		Payload:     map[string]any{"step_id": "step-1"},
	})
	require.NoError(t, err)

	_, err = f.client.ToolCall.Create().
		SetID("tc-old").
		SetExecutionID(old.ID).
		SetToolName("sem-search").
		SetStatus("completed").
		SetFactoryCluster("sem-hub").
		SetStartedAt(time.Now()).
		Save(ctx)
	require.NoError(t, err)

	_, err = f.client.PlaybookExecution.Create().
		SetID(old.ID).
		SetWorkspaceID("ws-1").
		SetPlaybookCode("seo_article").
		SetStatus("succeeded").
		Save(ctx)
	require.NoError(t, err)

	f.svc.RunOnce(ctx)

	_, err = f.tasks.GetTask(ctx, old.ID)
	assert.ErrorIs(t, err, services.ErrNotFound)

	// Cascaded rows are gone
	evCount, err := f.client.MindEvent.Query().Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, 0, evCount)
	tcCount, err := f.client.ToolCall.Query().Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, 0, tcCount)
	peCount, err := f.client.PlaybookExecution.Query().Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, 0, peCount)

	// Fresh task untouched
	got, err := f.tasks.GetTask(ctx, recent.ID)
	require.NoError(t, err)
	assert.Equal(t, task.StatusSucceeded, got.Status)
}

func TestCleanup_KeepsRunningTasksRegardlessOfAge(t *testing.T) {
	f := newCleanupFixture(t)
	ctx := context.Background()

	created, err := f.tasks.CreateTask(ctx, models.CreateTaskRequest{
		WorkspaceID: "ws-1",
		PackID:      "podcast_episode",
		TaskType:    string(task.TaskTypePlaybookExecution),
	})
	require.NoError(t, err)
	_, claimed, err := f.tasks.TryClaim(ctx, created.ID, "runner-1")
	require.NoError(t, err)
	require.True(t, claimed)

	f.svc.RunOnce(ctx)

	got, err := f.tasks.GetTask(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, task.StatusRunning, got.Status)
}

func TestCleanup_PurgesLeftoverEventsPastTTL(t *testing.T) {
	f := newCleanupFixture(t)
	ctx := context.Background()

	stale := time.Now().Add(-120 * 24 * time.Hour)
	_, err := f.events.CreateEvent(ctx, models.CreateEventRequest{
		WorkspaceID: "ws-1",
		ThreadID:    "thread-1",
		Actor:       "user",
		EventType:   models.EventTypeMessage,
		Payload:     map[string]any{"content": "old chatter"},
		Timestamp:   &stale,
	})
	require.NoError(t, err)

	_, err = f.events.CreateEvent(ctx, models.CreateEventRequest{
		WorkspaceID: "ws-1",
		ThreadID:    "thread-1",
		Actor:       "user",
		EventType:   models.EventTypeMessage,
		Payload:     map[string]any{"content": "fresh"},
	})
	require.NoError(t, err)

	f.svc.RunOnce(ctx)

	remaining, err := f.client.MindEvent.Query().
		Where(mindevent.ThreadIDEQ("thread-1")).
		All(ctx)
	require.NoError(t, err)
	require.Len(t, remaining, 1)
	assert.Equal(t, "fresh", remaining[0].Payload["content"])
}
