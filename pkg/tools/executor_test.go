package tools

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/cortexops/playbookd/ent"
	"github.com/cortexops/playbookd/pkg/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeStore struct {
	created   []models.CreateToolCallRequest
	finalized map[string]models.FinalizeToolCallRequest
	nextID    int
}

func newFakeStore() *fakeStore {
	return &fakeStore{finalized: map[string]models.FinalizeToolCallRequest{}}
}

func (f *fakeStore) CreateToolCall(_ context.Context, req models.CreateToolCallRequest) (*ent.ToolCall, error) {
	f.created = append(f.created, req)
	f.nextID++
	return &ent.ToolCall{ID: fmt.Sprintf("tc-%d", f.nextID)}, nil
}

func (f *fakeStore) FinalizeToolCall(_ context.Context, id string, req models.FinalizeToolCallRequest) (*ent.ToolCall, error) {
	f.finalized[id] = req
	return &ent.ToolCall{ID: id}, nil
}

type fakeSink struct {
	events []models.CreateEventRequest
}

func (f *fakeSink) CreateEvent(_ context.Context, req models.CreateEventRequest) (*ent.MindEvent, error) {
	f.events = append(f.events, req)
	return &ent.MindEvent{}, nil
}

type fakeAdapter struct {
	result any
	err    error
	calls  []string
	params []map[string]any
}

func (f *fakeAdapter) Execute(_ context.Context, tool string, params map[string]any) (any, error) {
	f.calls = append(f.calls, tool)
	f.params = append(f.params, params)
	if f.err != nil {
		return nil, f.err
	}
	return f.result, nil
}

func (f *fakeAdapter) Catalog(context.Context) (string, error) { return "", nil }
func (f *fakeAdapter) Close() error                            { return nil }

func TestExecutor_SuccessRecordsAndMirrors(t *testing.T) {
	store := newFakeStore()
	sink := &fakeSink{}
	adapter := &fakeAdapter{result: map[string]any{"hits": 3}}
	e := NewExecutor(map[string]Adapter{ClusterSemHub: adapter}, store, sink)

	result, err := e.RunTool(context.Background(), Request{
		ToolFQN:     "sem-search",
		WorkspaceID: "ws-1",
		ExecutionID: "exec-1",
		StepID:      "step-2",
		Params:      map[string]any{"query": "coffee"},
	})
	require.NoError(t, err)
	assert.Equal(t, map[string]any{"hits": 3}, result)

	// Pending row recorded before dispatch, with resolved cluster
	require.Len(t, store.created, 1)
	assert.Equal(t, ClusterSemHub, store.created[0].FactoryCluster)
	assert.Equal(t, "step-2", store.created[0].StepID)

	fin, ok := store.finalized["tc-1"]
	require.True(t, ok)
	assert.Empty(t, fin.Error)
	assert.Equal(t, map[string]any{"hits": 3}, fin.Response)

	require.Len(t, sink.events, 1)
	assert.Equal(t, models.EventTypeToolCall, sink.events[0].EventType)
	assert.Equal(t, true, sink.events[0].Payload["success"])
}

func TestExecutor_FailureTruncatesErrorTo500(t *testing.T) {
	store := newFakeStore()
	sink := &fakeSink{}
	longErr := errors.New(strings.Repeat("e", 1200))
	adapter := &fakeAdapter{err: longErr}
	e := NewExecutor(map[string]Adapter{ClusterWPHub: adapter}, store, sink)

	_, err := e.RunTool(context.Background(), Request{
		ToolFQN:     "wp_publish_post",
		ExecutionID: "exec-1",
	})
	require.Error(t, err)

	fin, ok := store.finalized["tc-1"]
	require.True(t, ok)
	assert.Len(t, fin.Error, 500+len("..."))

	require.Len(t, sink.events, 1)
	assert.Equal(t, false, sink.events[0].Payload["success"])
}

func TestExecutor_AppliesParamRename(t *testing.T) {
	store := newFakeStore()
	adapter := &fakeAdapter{result: "ok"}
	e := NewExecutor(map[string]Adapter{ClusterLocalMCP: adapter}, store, nil)

	_, err := e.RunTool(context.Background(), Request{
		ToolFQN:     "filesystem_write_file",
		ExecutionID: "exec-1",
		Params:      map[string]any{"path": "/out/a.md"},
	})
	require.NoError(t, err)

	require.Len(t, adapter.params, 1)
	assert.Equal(t, "/out/a.md", adapter.params[0]["file_path"])
	assert.NotContains(t, adapter.params[0], "path")

	// Stored parameters are the normalized ones
	assert.Equal(t, "/out/a.md", store.created[0].Parameters["file_path"])
}

func TestExecutor_ExplicitClusterOverridesRouting(t *testing.T) {
	store := newFakeStore()
	adapter := &fakeAdapter{result: "ok"}
	e := NewExecutor(map[string]Adapter{ClusterN8N: adapter}, store, nil)

	_, err := e.RunTool(context.Background(), Request{
		ToolFQN:        "sem-search",
		ExecutionID:    "exec-1",
		FactoryCluster: ClusterN8N,
	})
	require.NoError(t, err)
	assert.Equal(t, []string{"sem-search"}, adapter.calls)
}

func TestExecutor_UnknownClusterFailsTheCall(t *testing.T) {
	store := newFakeStore()
	e := NewExecutor(map[string]Adapter{}, store, nil)

	_, err := e.RunTool(context.Background(), Request{
		ToolFQN:     "sem-search",
		ExecutionID: "exec-1",
	})
	require.Error(t, err)

	fin, ok := store.finalized["tc-1"]
	require.True(t, ok)
	assert.Contains(t, fin.Error, "no adapter")
}

func TestExecutor_MasksSecretsInResult(t *testing.T) {
	store := newFakeStore()
	adapter := &fakeAdapter{result: map[string]any{
		"config": `api_key: "ZZZZYYYYXXXXWWWWVVVV1111"`,
		"hits":   3,
	}}
	e := NewExecutor(map[string]Adapter{ClusterSemHub: adapter}, store, nil)

	result, err := e.RunTool(context.Background(), Request{
		ToolFQN:     "sem-search",
		ExecutionID: "exec-1",
	})
	require.NoError(t, err)

	masked := result.(map[string]any)
	assert.Contains(t, masked["config"], "__MASKED_API_KEY__")
	assert.Equal(t, 3, masked["hits"])

	fin := store.finalized["tc-1"]
	assert.Contains(t, fin.Response["config"], "__MASKED_API_KEY__")
}

func TestExecutor_NonMapResultIsWrapped(t *testing.T) {
	store := newFakeStore()
	adapter := &fakeAdapter{result: []any{"a", "b"}}
	e := NewExecutor(map[string]Adapter{ClusterLocalMCP: adapter}, store, nil)

	result, err := e.RunTool(context.Background(), Request{
		ToolFQN:     "local_list_dir",
		ExecutionID: "exec-1",
	})
	require.NoError(t, err)
	assert.Equal(t, []any{"a", "b"}, result)

	fin := store.finalized["tc-1"]
	assert.Equal(t, map[string]any{"result": []any{"a", "b"}}, fin.Response)
}
