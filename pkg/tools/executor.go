package tools

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"github.com/cortexops/playbookd/ent"
	"github.com/cortexops/playbookd/pkg/config"
	"github.com/cortexops/playbookd/pkg/masking"
	"github.com/cortexops/playbookd/pkg/models"
	"github.com/cortexops/playbookd/pkg/parser"
)

// Stored responses are capped so one verbose tool cannot bloat the table.
const (
	maxStoredResponse = 16 * 1024
	maxStoredError    = 500
)

// ToolCallStore persists per-invocation records.
type ToolCallStore interface {
	CreateToolCall(ctx context.Context, req models.CreateToolCallRequest) (*ent.ToolCall, error)
	FinalizeToolCall(ctx context.Context, id string, req models.FinalizeToolCallRequest) (*ent.ToolCall, error)
}

// EventSink receives the mirror tool_call events.
type EventSink interface {
	CreateEvent(ctx context.Context, req models.CreateEventRequest) (*ent.MindEvent, error)
}

// Request identifies one tool invocation and its correlation ids.
type Request struct {
	ToolFQN        string
	PrincipalID    string
	WorkspaceID    string
	ExecutionID    string
	StepID         string
	FactoryCluster string
	Params         map[string]any
}

// Executor routes tool calls to cluster adapters and records each call.
type Executor struct {
	adapters map[string]Adapter
	store    ToolCallStore
	events   EventSink
	masker   *masking.Service
	logger   *slog.Logger
}

// NewExecutor builds an executor over the given adapters with baseline
// secret masking.
func NewExecutor(adapters map[string]Adapter, store ToolCallStore, events EventSink) *Executor {
	return &Executor{
		adapters: adapters,
		store:    store,
		events:   events,
		masker:   masking.NewService(nil),
		logger:   slog.Default().With("component", "tools"),
	}
}

// NewExecutorFromRegistry instantiates adapters for every configured cluster.
func NewExecutorFromRegistry(registry *config.ClusterRegistry, store ToolCallStore, events EventSink) (*Executor, error) {
	adapters := make(map[string]Adapter)
	for _, name := range registry.Names() {
		cfg, err := registry.Get(name)
		if err != nil {
			return nil, err
		}
		switch cfg.Kind {
		case config.ClusterKindLocalMCP:
			adapters[name] = NewMCPAdapter(cfg)
		case config.ClusterKindHTTPHub:
			adapters[name] = NewHubAdapter(name, cfg)
		default:
			return nil, fmt.Errorf("cluster %s has unknown kind %q", name, cfg.Kind)
		}
	}
	e := NewExecutor(adapters, store, events)
	e.masker = masking.NewService(registry)
	return e, nil
}

// RunTool executes one tool call end to end: pending row, dispatch, finalize,
// mirror event. The returned error carries the adapter failure so the step
// driver can turn it into a per-call failure record.
func (e *Executor) RunTool(ctx context.Context, req Request) (any, error) {
	cluster := req.FactoryCluster
	if cluster == "" {
		cluster = ResolveCluster(req.ToolFQN)
	}
	params := NormalizeParams(req.ToolFQN, req.Params)

	row, err := e.store.CreateToolCall(ctx, models.CreateToolCallRequest{
		ExecutionID:    req.ExecutionID,
		StepID:         req.StepID,
		ToolName:       req.ToolFQN,
		Parameters:     params,
		FactoryCluster: cluster,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to record tool call: %w", err)
	}

	started := time.Now()

	adapter, ok := e.adapters[cluster]
	if !ok {
		err := fmt.Errorf("no adapter for cluster %q", cluster)
		e.finalizeFailure(ctx, req, cluster, row.ID, err, started)
		return nil, err
	}

	result, err := adapter.Execute(ctx, req.ToolFQN, params)
	if err != nil {
		e.finalizeFailure(ctx, req, cluster, row.ID, err, started)
		return nil, err
	}
	// Redact secrets before the result is stored or fed to the model
	result = e.masker.MaskValue(cluster, result)

	duration := int(time.Since(started).Milliseconds())
	if _, ferr := e.store.FinalizeToolCall(ctx, row.ID, models.FinalizeToolCallRequest{
		Response:   boundedResponse(result),
		DurationMS: duration,
	}); ferr != nil {
		e.logger.Error("failed to finalize tool call", "tool", req.ToolFQN, "error", ferr)
	}
	e.emitMirrorEvent(ctx, req, cluster, true, duration, "")

	return result, nil
}

func (e *Executor) finalizeFailure(ctx context.Context, req Request, cluster, rowID string, cause error, started time.Time) {
	duration := int(time.Since(started).Milliseconds())
	msg := parser.Truncate(e.masker.MaskString(cluster, cause.Error()), maxStoredError)
	if _, err := e.store.FinalizeToolCall(ctx, rowID, models.FinalizeToolCallRequest{
		Error:      msg,
		DurationMS: duration,
	}); err != nil {
		e.logger.Error("failed to finalize tool call", "tool", req.ToolFQN, "error", err)
	}
	e.emitMirrorEvent(ctx, req, cluster, false, duration, msg)
}

// emitMirrorEvent duplicates the tool call outcome into the event log for
// stream discovery. Failures to emit are logged, never propagated.
func (e *Executor) emitMirrorEvent(ctx context.Context, req Request, cluster string, success bool, durationMS int, errMsg string) {
	if e.events == nil {
		return
	}
	payload := map[string]any{
		"tool_name":       req.ToolFQN,
		"factory_cluster": cluster,
		"success":         success,
		"duration_ms":     durationMS,
	}
	if errMsg != "" {
		payload["error"] = errMsg
	}
	if _, err := e.events.CreateEvent(ctx, models.CreateEventRequest{
		WorkspaceID: req.WorkspaceID,
		ProfileID:   req.PrincipalID,
		EntityIDs:   []string{req.ExecutionID},
		Actor:       "system",
		EventType:   models.EventTypeToolCall,
		Payload:     payload,
	}); err != nil {
		e.logger.Error("failed to emit tool_call event", "tool", req.ToolFQN, "error", err)
	}
}

// Close shuts down every adapter.
func (e *Executor) Close() error {
	var firstErr error
	for name, adapter := range e.adapters {
		if err := adapter.Close(); err != nil && firstErr == nil {
			firstErr = fmt.Errorf("close adapter %s: %w", name, err)
		}
	}
	return firstErr
}

// BuildCatalog concatenates the catalogs of every adapter that can enumerate
// its tools. Used to freeze the tool catalog at execution start.
func (e *Executor) BuildCatalog(ctx context.Context) string {
	var out string
	for name, adapter := range e.adapters {
		catalog, err := adapter.Catalog(ctx)
		if err != nil {
			e.logger.Warn("failed to build tool catalog", "cluster", name, "error", err)
			continue
		}
		if catalog != "" {
			out += fmt.Sprintf("Cluster %s:\n%s", name, catalog)
		}
	}
	return out
}

// boundedResponse shapes an arbitrary adapter result into a response map
// capped at maxStoredResponse bytes.
func boundedResponse(result any) map[string]any {
	m, ok := result.(map[string]any)
	if !ok {
		m = map[string]any{"result": result}
	}
	data, err := json.Marshal(m)
	if err != nil || len(data) <= maxStoredResponse {
		return m
	}
	return map[string]any{"truncated": parser.Truncate(string(data), maxStoredResponse)}
}
