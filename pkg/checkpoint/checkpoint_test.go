package checkpoint

import (
	"context"
	"testing"

	"github.com/cortexops/playbookd/ent"
	"github.com/cortexops/playbookd/ent/task"
	"github.com/cortexops/playbookd/pkg/conversation"
	"github.com/cortexops/playbookd/pkg/models"
	"github.com/cortexops/playbookd/pkg/services"
	"github.com/cortexops/playbookd/test/util"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setup(t *testing.T) (*Manager, *services.TaskService, *services.ExecutionService, *ent.Client) {
	t.Helper()
	client, _ := util.SetupTestDatabase(t)
	tasks := services.NewTaskService(client)
	execs := services.NewExecutionService(client)
	return NewManager(tasks, execs), tasks, execs, client
}

func startExecution(t *testing.T, tasks *services.TaskService, execs *services.ExecutionService) string {
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
	_, err = execs.CreateMirror(ctx, created.ID, "ws-1", "seo_article", "", 4)
	require.NoError(t, err)
	return created.ID
}

func sampleConversation() *conversation.Manager {
	mgr := conversation.New(conversation.Seed{
		PlaybookCode: "seo_article",
		PrincipalID:  "principal-1",
		WorkspaceID:  "ws-1",
		Locale:       "en-US",
		SystemPrompt: "run the playbook",
		ToolCatalog:  "sem-search",
	})
	mgr.Append(conversation.RoleUser, "begin")
	mgr.Append(conversation.RoleAssistant, "Step 1 done.")
	mgr.AdvanceStep()
	return mgr
}

func TestCheckpoint_SaveAndRestoreRoundTrip(t *testing.T) {
	m, tasks, execs, _ := setup(t)
	ctx := context.Background()
	execID := startExecution(t, tasks, execs)

	mgr := sampleConversation()
	require.NoError(t, m.Save(ctx, execID, mgr, 4))

	restored, err := m.Restore(ctx, execID)
	require.NoError(t, err)
	assert.Equal(t, mgr.PlaybookCode, restored.PlaybookCode)
	assert.Equal(t, mgr.CurrentStep, restored.CurrentStep)
	require.Len(t, restored.Turns, 3)
	assert.Equal(t, "Step 1 done.", restored.LastAssistant())

	// Snapshot mirrored with clamped step index
	exec, err := execs.GetExecution(ctx, execID)
	require.NoError(t, err)
	require.NotNil(t, exec.CurrentStepIndex)
	assert.Equal(t, 0, *exec.CurrentStepIndex)
	assert.True(t, exec.SupportsResume)
}

func TestCheckpoint_SaveWritesReadableStepIndex(t *testing.T) {
	m, tasks, execs, _ := setup(t)
	ctx := context.Background()
	execID := startExecution(t, tasks, execs)

	mgr := sampleConversation()
	mgr.AdvanceStep()
	mgr.AdvanceStep()
	require.NoError(t, m.Save(ctx, execID, mgr, 4))

	// The step counter written by Save must be visible through the
	// shared context reader that the stream and chat views use.
	tk, err := tasks.GetTask(ctx, execID)
	require.NoError(t, err)
	step, ok := models.CurrentStep(tk.ExecutionContext)
	require.True(t, ok)
	assert.Equal(t, 3, step)
}

func TestCheckpoint_RestoreRefusedForTerminalFailure(t *testing.T) {
	m, tasks, execs, _ := setup(t)
	ctx := context.Background()
	execID := startExecution(t, tasks, execs)

	require.NoError(t, m.Save(ctx, execID, sampleConversation(), 4))
	require.NoError(t, tasks.FailTask(ctx, execID, "boom", models.FailureTypeExecution))

	_, err := m.Restore(ctx, execID)
	assert.ErrorIs(t, err, services.ErrNotResumable)
}

func TestCheckpoint_RestoreAllowedAfterSuccess(t *testing.T) {
	m, tasks, execs, _ := setup(t)
	ctx := context.Background()
	execID := startExecution(t, tasks, execs)

	require.NoError(t, m.Save(ctx, execID, sampleConversation(), 4))
	require.NoError(t, tasks.CompleteTask(ctx, execID, map[string]any{"ok": true}))

	restored, err := m.Restore(ctx, execID)
	require.NoError(t, err)
	assert.Equal(t, "seo_article", restored.PlaybookCode)
}

func TestCheckpoint_RestoreWithoutStateFails(t *testing.T) {
	m, tasks, execs, _ := setup(t)
	execID := startExecution(t, tasks, execs)

	_, err := m.Restore(context.Background(), execID)
	assert.ErrorIs(t, err, services.ErrNotResumable)
}

func TestCheckpoint_ResumeFromCheckpoint(t *testing.T) {
	m, tasks, execs, _ := setup(t)
	ctx := context.Background()
	execID := startExecution(t, tasks, execs)

	require.NoError(t, m.Save(ctx, execID, sampleConversation(), 4))

	view, err := m.ResumeFromCheckpoint(ctx, execID)
	require.NoError(t, err)
	assert.Equal(t, execID, view.Task.ID)
	assert.Equal(t, execID, view.Execution.ID)
	assert.Equal(t, 1, view.Conversation.CurrentStep)

	// Resume counter increments
	tk, err := tasks.GetTask(ctx, execID)
	require.NoError(t, err)
	n, ok := tk.ExecutionContext[models.CtxResumeCount].(float64)
	if !ok {
		i, iok := tk.ExecutionContext[models.CtxResumeCount].(int)
		require.True(t, iok)
		n = float64(i)
	}
	assert.Equal(t, float64(1), n)
}
