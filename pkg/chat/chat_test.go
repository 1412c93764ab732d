package chat

import (
	"context"
	"sync"
	"testing"

	"github.com/cortexops/playbookd/ent/task"
	"github.com/cortexops/playbookd/pkg/llm"
	"github.com/cortexops/playbookd/pkg/models"
	"github.com/cortexops/playbookd/pkg/runner"
	"github.com/cortexops/playbookd/pkg/services"
	"github.com/cortexops/playbookd/test/util"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeDriver struct {
	mu       sync.Mutex
	messages []string
}

func (f *fakeDriver) Continue(_ context.Context, _, userMessage, _ string) (*runner.ContinueResult, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.messages = append(f.messages, userMessage)
	return &runner.ContinueResult{Message: "resumed"}, nil
}

func newChatFixture(t *testing.T, replies ...string) (*Service, *services.TaskService, *services.EventService, *fakeDriver, *llm.ScriptedProvider) {
	t.Helper()
	client, _ := util.SetupTestDatabase(t)
	tasks := services.NewTaskService(client)
	events := services.NewEventService(client)
	driver := &fakeDriver{}
	provider := llm.NewScriptedProvider(replies...)
	return NewService(tasks, events, driver, provider), tasks, events, driver, provider
}

func createRunningTask(t *testing.T, tasks *services.TaskService) string {
	t.Helper()
	ctx := context.Background()
	created, err := tasks.CreateTask(ctx, models.CreateTaskRequest{
		WorkspaceID: "ws-1",
		PackID:      "seo_article",
		TaskType:    string(task.TaskTypePlaybookExecution),
	})
	require.NoError(t, err)
	_, claimed, err := tasks.TryClaim(ctx, created.ID, "runner-1")
	require.NoError(t, err)
	require.True(t, claimed)
	return created.ID
}

func TestChat_DiscussionMode(t *testing.T) {
	svc, tasks, _, driver, provider := newChatFixture(t, "It is on step 2 of 4.")
	ctx := context.Background()
	execID := createRunningTask(t, tasks)

	evt, err := svc.Post(ctx, PostRequest{
		WorkspaceID: "ws-1",
		ExecutionID: execID,
		PrincipalID: "principal-1",
		Message:     "how far along is it?",
	})
	require.NoError(t, err)
	assert.Equal(t, "user", evt.Payload["role"])
	svc.Wait()

	// The driver was not touched; the reply landed as an assistant event.
	assert.Empty(t, driver.messages)
	require.Equal(t, 1, provider.CallCount())

	chatEvents, err := svc.ListChat(ctx, execID)
	require.NoError(t, err)
	require.Len(t, chatEvents, 2)
	assert.Equal(t, "assistant", chatEvents[1].Payload["role"])
	assert.Equal(t, "It is on step 2 of 4.", chatEvents[1].Payload["content"])

	// Discussion prompt is grounded in the execution
	calls := provider.Calls()
	require.Len(t, calls[0], 2)
	assert.Contains(t, calls[0][0].Content, "seo_article")
}

func TestChat_ContinueModeWhenWaitingConfirmation(t *testing.T) {
	svc, tasks, _, driver, provider := newChatFixture(t)
	ctx := context.Background()
	execID := createRunningTask(t, tasks)
	require.NoError(t, tasks.SetWaitingConfirmation(ctx, execID))

	_, err := svc.Post(ctx, PostRequest{
		WorkspaceID: "ws-1",
		ExecutionID: execID,
		PrincipalID: "principal-1",
		Message:     "yes, go ahead",
	})
	require.NoError(t, err)
	svc.Wait()

	require.Len(t, driver.messages, 1)
	assert.Equal(t, "yes, go ahead", driver.messages[0])
	assert.Equal(t, 0, provider.CallCount())
}

func TestChat_ContinueModeWhenPausedMarkerSet(t *testing.T) {
	svc, tasks, _, driver, _ := newChatFixture(t)
	ctx := context.Background()
	execID := createRunningTask(t, tasks)
	require.NoError(t, tasks.UpdateExecutionContext(ctx, execID, map[string]any{
		"paused_at": "2026-08-24T10:00:00Z",
	}))

	_, err := svc.Post(ctx, PostRequest{
		WorkspaceID: "ws-1",
		ExecutionID: execID,
		PrincipalID: "principal-1",
		Message:     "continue",
	})
	require.NoError(t, err)
	svc.Wait()

	require.Len(t, driver.messages, 1)
}

func TestChat_RejectsEmptyMessage(t *testing.T) {
	svc, tasks, _, _, _ := newChatFixture(t)
	execID := createRunningTask(t, tasks)

	_, err := svc.Post(context.Background(), PostRequest{
		WorkspaceID: "ws-1",
		ExecutionID: execID,
		Message:     "   ",
	})
	var verr *services.ValidationError
	assert.ErrorAs(t, err, &verr)
}

func TestChat_UnknownExecution(t *testing.T) {
	svc, _, _, _, _ := newChatFixture(t)
	_, err := svc.Post(context.Background(), PostRequest{
		WorkspaceID: "ws-1",
		ExecutionID: "nope",
		Message:     "hello",
	})
	assert.ErrorIs(t, err, services.ErrNotFound)
}

func TestChat_StepScopedPost(t *testing.T) {
	svc, tasks, _, _, _ := newChatFixture(t, "reply")
	ctx := context.Background()
	execID := createRunningTask(t, tasks)

	evt, err := svc.Post(ctx, PostRequest{
		WorkspaceID: "ws-1",
		ExecutionID: execID,
		StepID:      "step-2",
		PrincipalID: "principal-1",
		Message:     "about this step",
	})
	require.NoError(t, err)
	assert.Equal(t, []string{execID, "step-2"}, evt.EntityIds)
	svc.Wait()
}
