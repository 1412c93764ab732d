package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cortexops/playbookd/ent"
	"github.com/cortexops/playbookd/ent/task"
	"github.com/cortexops/playbookd/pkg/chat"
	"github.com/cortexops/playbookd/pkg/checkpoint"
	"github.com/cortexops/playbookd/pkg/config"
	"github.com/cortexops/playbookd/pkg/conversation"
	"github.com/cortexops/playbookd/pkg/llm"
	"github.com/cortexops/playbookd/pkg/models"
	"github.com/cortexops/playbookd/pkg/playbook"
	"github.com/cortexops/playbookd/pkg/runner"
	"github.com/cortexops/playbookd/pkg/services"
	"github.com/cortexops/playbookd/pkg/stream"
	"github.com/cortexops/playbookd/pkg/tools"
	"github.com/cortexops/playbookd/test/util"
)

type apiFixture struct {
	router *gin.Engine
	tasks  *services.TaskService
	events *services.EventService
	client *ent.Client
}

type noopToolRunner struct{}

func (noopToolRunner) RunTool(context.Context, tools.Request) (any, error) {
	return map[string]any{"ok": true}, nil
}

func (noopToolRunner) BuildCatalog(context.Context) string { return "" }

func newAPIFixture(t *testing.T, replies ...string) *apiFixture {
	t.Helper()
	gin.SetMode(gin.TestMode)
	client, _ := util.SetupTestDatabase(t)

	tasks := services.NewTaskService(client)
	events := services.NewEventService(client)
	execs := services.NewExecutionService(client)
	stages := services.NewStageResultService(client)
	artifacts := services.NewArtifactService(client)
	toolCalls := services.NewToolCallService(client)
	provider := llm.NewScriptedProvider(replies...)

	r := runner.New(runner.Deps{
		Name:     "api-test",
		Tasks:    tasks,
		Events:   events,
		Execs:    execs,
		Stages:   stages,
		Ckpt:     checkpoint.NewManager(tasks, execs),
		Registry: playbook.NewRegistry(playbook.Builtins()),
		Convs:    conversation.NewRegistry(),
		Provider: provider,
		Tools:    noopToolRunner{},
	})

	streamCfg := config.DefaultStreamConfig()
	streamCfg.PollInterval = 10 * time.Millisecond
	streamCfg.MaxStreamDuration = 5 * time.Second

	srv := NewServer(Deps{
		Tasks:     tasks,
		Events:    events,
		Execs:     execs,
		Stages:    stages,
		Artifacts: artifacts,
		ToolCalls: toolCalls,
		Runner:    r,
		Chat:      chat.NewService(tasks, events, r, provider),
		Projector: stream.NewProjector(tasks, events, toolCalls, stages, streamCfg),
	})

	return &apiFixture{router: srv.Router(), tasks: tasks, events: events, client: client}
}

func (f *apiFixture) do(t *testing.T, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	f.router.ServeHTTP(w, req)
	return w
}

func decode(t *testing.T, w *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var out map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &out))
	return out
}

func TestAPI_StartAndGetExecution(t *testing.T) {
	f := newAPIFixture(t, "Phase 1 done.")

	w := f.do(t, http.MethodPost, "/api/v1/workspaces/ws-1/executions", map[string]any{
		"pack_code":    "seo_article",
		"principal_id": "principal-1",
		"inputs":       map[string]any{"topic": "ponds"},
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	started := decode(t, w)
	execID, _ := started["execution_id"].(string)
	require.NotEmpty(t, execID)
	assert.Equal(t, "Phase 1 done.", started["message"])

	w = f.do(t, http.MethodGet, "/api/v1/workspaces/ws-1/executions/"+execID, nil)
	require.Equal(t, http.StatusOK, w.Code)
	got := decode(t, w)
	assert.Equal(t, "running", got["status"])
	assert.Equal(t, "seo_article", got["playbook_code"])
	assert.Equal(t, float64(4), got["total_steps"])
}

func TestAPI_StartUnknownPack(t *testing.T) {
	f := newAPIFixture(t)

	w := f.do(t, http.MethodPost, "/api/v1/workspaces/ws-1/executions", map[string]any{
		"pack_code": "no_such_pack",
	})
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestAPI_ContinueToCompletion(t *testing.T) {
	f := newAPIFixture(t,
		"Starting.",
		`STRUCTURED_OUTPUT: {"title": "done"}`,
	)

	w := f.do(t, http.MethodPost, "/api/v1/workspaces/ws-1/executions", map[string]any{
		"pack_code": "daily_planning",
	})
	require.Equal(t, http.StatusCreated, w.Code)
	execID := decode(t, w)["execution_id"].(string)

	w = f.do(t, http.MethodPost,
		fmt.Sprintf("/api/v1/workspaces/ws-1/executions/%s/continue", execID),
		map[string]any{"message": "finish it"})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	res := decode(t, w)
	assert.Equal(t, true, res["is_complete"])

	got, err := f.tasks.GetTask(context.Background(), execID)
	require.NoError(t, err)
	assert.Equal(t, task.StatusSucceeded, got.Status)
}

func TestAPI_ReviewPausedStep(t *testing.T) {
	f := newAPIFixture(t,
		"Draft checked.",
		`Ready to publish. STRUCTURED_OUTPUT: {"post_url": "https://blog.example/p/1"}`,
		`Published. STRUCTURED_OUTPUT: {"post_url": "https://blog.example/p/1"}`,
	)
	ctx := context.Background()

	w := f.do(t, http.MethodPost, "/api/v1/workspaces/ws-1/executions", map[string]any{
		"pack_code": "wp_publish",
	})
	require.Equal(t, http.StatusCreated, w.Code)
	execID := decode(t, w)["execution_id"].(string)

	// External-write packs park their draft behind a review gate
	w = f.do(t, http.MethodPost,
		fmt.Sprintf("/api/v1/workspaces/ws-1/executions/%s/continue", execID),
		map[string]any{"message": "publish"})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	res := decode(t, w)
	assert.Equal(t, false, res["is_complete"])
	assert.Equal(t, true, res["awaiting_review"])

	got, err := f.tasks.GetTask(ctx, execID)
	require.NoError(t, err)
	require.Equal(t, task.StatusWaitingConfirmation, got.Status)

	// Confirming an unknown step finds nothing to review
	w = f.do(t, http.MethodPost,
		fmt.Sprintf("/api/v1/workspaces/ws-1/executions/%s/steps/step-99/confirm", execID), nil)
	assert.Equal(t, http.StatusNotFound, w.Code)

	w = f.do(t, http.MethodPost,
		fmt.Sprintf("/api/v1/workspaces/ws-1/executions/%s/steps/step-2/confirm", execID), nil)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	got, err = f.tasks.GetTask(ctx, execID)
	require.NoError(t, err)
	assert.Equal(t, task.StatusRunning, got.Status)
	assert.Equal(t, models.ConfirmationApproved, got.ExecutionContext[models.CtxConfirmationStatus])

	// The approved execution completes on the next turn
	w = f.do(t, http.MethodPost,
		fmt.Sprintf("/api/v1/workspaces/ws-1/executions/%s/continue", execID),
		map[string]any{"message": "go ahead"})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	assert.Equal(t, true, decode(t, w)["is_complete"])
}

func TestAPI_CancelExecution(t *testing.T) {
	f := newAPIFixture(t, "Starting.")

	w := f.do(t, http.MethodPost, "/api/v1/workspaces/ws-1/executions", map[string]any{
		"pack_code": "seo_article",
	})
	require.Equal(t, http.StatusCreated, w.Code)
	execID := decode(t, w)["execution_id"].(string)

	w = f.do(t, http.MethodPost,
		fmt.Sprintf("/api/v1/workspaces/ws-1/executions/%s/cancel", execID), nil)
	require.Equal(t, http.StatusOK, w.Code)

	// Terminal tasks cannot be cancelled twice
	w = f.do(t, http.MethodPost,
		fmt.Sprintf("/api/v1/workspaces/ws-1/executions/%s/cancel", execID), nil)
	assert.Equal(t, http.StatusConflict, w.Code)
}

func TestAPI_SuggestionLifecycle(t *testing.T) {
	f := newAPIFixture(t)
	ctx := context.Background()

	created, err := f.tasks.CreateTask(ctx, models.CreateTaskRequest{
		WorkspaceID: "ws-1",
		PackID:      "seo_article",
		TaskType:    string(task.TaskTypeSuggestion),
	})
	require.NoError(t, err)

	w := f.do(t, http.MethodGet, "/api/v1/workspaces/ws-1/suggestions", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), created.ID)

	w = f.do(t, http.MethodPost, "/api/v1/workspaces/ws-1/suggestions/"+created.ID+"/confirm", nil)
	require.Equal(t, http.StatusOK, w.Code)

	got, err := f.tasks.GetTask(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, task.TaskTypePlaybookExecution, got.TaskType)
	assert.Equal(t, task.StatusPending, got.Status)

	// Already confirmed: dismiss now conflicts
	w = f.do(t, http.MethodPost, "/api/v1/workspaces/ws-1/suggestions/"+created.ID+"/dismiss", nil)
	assert.Equal(t, http.StatusConflict, w.Code)
}

func TestAPI_ChatPostAndList(t *testing.T) {
	f := newAPIFixture(t, "Starting.", "It is going fine.")

	w := f.do(t, http.MethodPost, "/api/v1/workspaces/ws-1/executions", map[string]any{
		"pack_code": "seo_article",
	})
	require.Equal(t, http.StatusCreated, w.Code)
	execID := decode(t, w)["execution_id"].(string)

	w = f.do(t, http.MethodPost,
		fmt.Sprintf("/api/v1/workspaces/ws-1/executions/%s/chat", execID),
		map[string]any{"message": "how is it going?"})
	require.Equal(t, http.StatusAccepted, w.Code)

	// Wait for the async reply before listing
	deadline := time.Now().Add(3 * time.Second)
	for {
		w = f.do(t, http.MethodGet,
			fmt.Sprintf("/api/v1/workspaces/ws-1/executions/%s/chat", execID), nil)
		require.Equal(t, http.StatusOK, w.Code)
		if strings.Contains(w.Body.String(), "It is going fine.") || time.Now().After(deadline) {
			break
		}
		time.Sleep(20 * time.Millisecond)
	}
	assert.Contains(t, w.Body.String(), "how is it going?")
	assert.Contains(t, w.Body.String(), "It is going fine.")
}

func TestAPI_ListStepsAndStream(t *testing.T) {
	f := newAPIFixture(t,
		"Starting.",
		`STRUCTURED_OUTPUT: {"title": "done"}`,
	)

	w := f.do(t, http.MethodPost, "/api/v1/workspaces/ws-1/executions", map[string]any{
		"pack_code": "daily_planning",
	})
	require.Equal(t, http.StatusCreated, w.Code)
	execID := decode(t, w)["execution_id"].(string)

	w = f.do(t, http.MethodPost,
		fmt.Sprintf("/api/v1/workspaces/ws-1/executions/%s/continue", execID),
		map[string]any{"message": "finish"})
	require.Equal(t, http.StatusOK, w.Code)

	w = f.do(t, http.MethodGet,
		fmt.Sprintf("/api/v1/workspaces/ws-1/executions/%s/steps", execID), nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "playbook_step")

	// Terminal execution: the stream drains and closes on its own
	w = f.do(t, http.MethodGet,
		fmt.Sprintf("/api/v1/workspaces/ws-1/executions/%s/stream", execID), nil)
	require.Equal(t, http.StatusOK, w.Code)
	body := w.Body.String()
	assert.Contains(t, body, `"type":"execution_update"`)
	assert.Contains(t, body, `"type":"execution_completed"`)
	assert.Contains(t, body, `"final_status":"completed"`)
	assert.True(t, strings.HasSuffix(strings.TrimSpace(body), `data: {"type":"stream_end"}`))
}

func TestAPI_Healthz(t *testing.T) {
	f := newAPIFixture(t)
	w := f.do(t, http.MethodGet, "/healthz", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "healthy")
}

func TestAPI_ThreadBundle(t *testing.T) {
	f := newAPIFixture(t)
	ctx := context.Background()

	created, err := f.tasks.CreateTask(ctx, models.CreateTaskRequest{
		WorkspaceID: "ws-1",
		PackID:      "seo_article",
		TaskType:    string(task.TaskTypePlaybookExecution),
	})
	require.NoError(t, err)

	_, err = f.events.CreateEvent(ctx, models.CreateEventRequest{
		WorkspaceID: "ws-1",
		ThreadID:    "thread-1",
		EntityIDs:   []string{created.ID},
		Actor:       "user",
		EventType:   models.EventTypeMessage,
		Payload:     map[string]any{"content": "start the article"},
	})
	require.NoError(t, err)

	w := f.do(t, http.MethodGet, "/api/v1/workspaces/ws-1/threads/thread-1/bundle", nil)
	require.Equal(t, http.StatusOK, w.Code)
	bundle := decode(t, w)
	assert.Equal(t, "thread-1", bundle["thread_id"])
	assert.Len(t, bundle["events"], 1)
	assert.Len(t, bundle["tasks"], 1)
}
