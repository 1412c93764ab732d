// Package stream projects an execution's durable state into an ordered
// sequence of typed frames for a single SSE client. The projection is
// polling-based: every tick it diffs the task row, the event log, the tool
// calls and the stage results against per-stream watermarks.
package stream

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/cortexops/playbookd/ent"
	"github.com/cortexops/playbookd/ent/task"
	"github.com/cortexops/playbookd/pkg/config"
	"github.com/cortexops/playbookd/pkg/models"
	"github.com/cortexops/playbookd/pkg/services"
)

// Frame discriminants. The set is closed; clients switch on type.
const (
	TypeExecutionUpdate    = "execution_update"
	TypeStepUpdate         = "step_update"
	TypeToolCallUpdate     = "tool_call_update"
	TypeStageResult        = "stage_result"
	TypeExecutionChat      = "execution_chat"
	TypeExecutionCompleted = "execution_completed"
	TypeError              = "error"
	TypeStreamEnd          = "stream_end"
)

// Frame is one typed SSE payload.
type Frame map[string]any

// Sink receives frames. The API layer implements it over the SSE writer;
// tests implement it over a slice.
type Sink interface {
	Send(frame Frame) error
	// Heartbeat writes a keep-alive comment. Data-free by contract.
	Heartbeat() error
}

// Projector streams execution progress to connected clients.
type Projector struct {
	tasks     *services.TaskService
	events    *services.EventService
	toolCalls *services.ToolCallService
	stages    *services.StageResultService
	cfg       *config.StreamConfig
	logger    *slog.Logger
}

// NewProjector builds a projector.
func NewProjector(tasks *services.TaskService, events *services.EventService, toolCalls *services.ToolCallService, stages *services.StageResultService, cfg *config.StreamConfig) *Projector {
	return &Projector{
		tasks:     tasks,
		events:    events,
		toolCalls: toolCalls,
		stages:    stages,
		cfg:       cfg,
		logger:    slog.Default().With("component", "stream"),
	}
}

// watermarks is the per-stream high-water state. Everything at or before a
// watermark has been emitted.
type watermarks struct {
	stepTS  time.Time
	stepID  string
	chatTS  time.Time
	chatID  string
	toolTS  time.Time
	stageTS time.Time

	// last emitted (status, current_step_index, paused_at) triple
	lastStatus  string
	lastStep    int
	lastPaused  string
	sentInitial bool
}

// Stream runs the projection loop until the execution reaches a terminal
// status, the client disconnects, or the stream duration budget expires.
// Frames are emitted in non-decreasing timestamp order per stream.
func (p *Projector) Stream(ctx context.Context, executionID string, sink Sink) error {
	ctx, cancel := context.WithTimeout(ctx, p.cfg.MaxStreamDuration)
	defer cancel()

	ticker := time.NewTicker(p.cfg.PollInterval)
	defer ticker.Stop()
	heartbeat := time.NewTicker(p.cfg.HeartbeatInterval)
	defer heartbeat.Stop()

	var wm watermarks

	// First tick immediately so the client sees current state without
	// waiting a full poll interval.
	if done, err := p.tick(ctx, executionID, sink, &wm); done || err != nil {
		return err
	}

	for {
		select {
		case <-ctx.Done():
			// Client went away or duration budget expired
			_ = sink.Send(Frame{"type": TypeStreamEnd})
			return nil
		case <-heartbeat.C:
			if err := sink.Heartbeat(); err != nil {
				return err
			}
		case <-ticker.C:
			done, err := p.tick(ctx, executionID, sink, &wm)
			if err != nil {
				return err
			}
			if done {
				return nil
			}
		}
	}
}

// tick runs one projection pass. done=true means the stream is finished.
func (p *Projector) tick(ctx context.Context, executionID string, sink Sink, wm *watermarks) (bool, error) {
	t, err := p.tasks.GetTask(ctx, executionID)
	if err != nil {
		if errors.Is(err, services.ErrNotFound) {
			_ = sink.Send(Frame{"type": TypeError, "message": "execution not found"})
			_ = sink.Send(Frame{"type": TypeStreamEnd})
			return true, nil
		}
		return false, err
	}

	if err := p.emitExecutionUpdate(sink, t, wm); err != nil {
		return false, err
	}

	// Drain the derived streams before a terminal frame so no event is lost
	if err := p.emitSteps(ctx, executionID, sink, wm); err != nil {
		return false, err
	}
	if err := p.emitChat(ctx, executionID, sink, wm); err != nil {
		return false, err
	}
	if err := p.emitToolCalls(ctx, executionID, sink, wm); err != nil {
		return false, err
	}
	if err := p.emitStageResults(ctx, executionID, sink, wm); err != nil {
		return false, err
	}

	if isTerminal(t.Status) {
		if err := sink.Send(Frame{
			"type":         TypeExecutionCompleted,
			"execution_id": executionID,
			"final_status": finalStatus(t.Status),
		}); err != nil {
			return false, err
		}
		_ = sink.Send(Frame{"type": TypeStreamEnd})
		return true, nil
	}
	return false, nil
}

// emitExecutionUpdate sends the execution view when the watched triple
// changed since the last emission.
func (p *Projector) emitExecutionUpdate(sink Sink, t *ent.Task, wm *watermarks) error {
	step, _ := models.CurrentStep(t.ExecutionContext)
	paused, _ := t.ExecutionContext[models.CtxPausedAt].(string)
	status := string(t.Status)

	if wm.sentInitial && status == wm.lastStatus && step == wm.lastStep && paused == wm.lastPaused {
		return nil
	}
	wm.sentInitial = true
	wm.lastStatus = status
	wm.lastStep = step
	wm.lastPaused = paused

	return sink.Send(Frame{
		"type":      TypeExecutionUpdate,
		"execution": executionView(t, step, paused),
	})
}

func (p *Projector) emitSteps(ctx context.Context, executionID string, sink Sink, wm *watermarks) error {
	events, err := p.events.ListTypedForExecution(ctx, executionID, models.EventTypePlaybookStep, wm.stepTS, wm.stepID, 0)
	if err != nil {
		return err
	}
	for _, evt := range events {
		stepIdx := 0
		if n, ok := evt.Payload["step_index"].(float64); ok {
			stepIdx = int(n)
		} else if n, ok := evt.Payload["step_index"].(int); ok {
			stepIdx = n
		}
		if err := sink.Send(Frame{
			"type":               TypeStepUpdate,
			"step":               evt.Payload,
			"current_step_index": stepIdx,
		}); err != nil {
			return err
		}
		wm.stepTS = evt.Timestamp
		wm.stepID = evt.ID
	}
	return nil
}

func (p *Projector) emitChat(ctx context.Context, executionID string, sink Sink, wm *watermarks) error {
	events, err := p.events.ListTypedForExecution(ctx, executionID, models.EventTypeExecutionChat, wm.chatTS, wm.chatID, 0)
	if err != nil {
		return err
	}
	for _, evt := range events {
		if err := sink.Send(Frame{
			"type":    TypeExecutionChat,
			"message": evt.Payload,
		}); err != nil {
			return err
		}
		wm.chatTS = evt.Timestamp
		wm.chatID = evt.ID
	}
	return nil
}

func (p *Projector) emitToolCalls(ctx context.Context, executionID string, sink Sink, wm *watermarks) error {
	calls, err := p.toolCalls.ListForExecution(ctx, executionID, wm.toolTS, 0)
	if err != nil {
		return err
	}
	for _, call := range calls {
		if err := sink.Send(Frame{
			"type":      TypeToolCallUpdate,
			"tool_call": toolCallView(call),
		}); err != nil {
			return err
		}
		wm.toolTS = call.StartedAt
	}
	return nil
}

func (p *Projector) emitStageResults(ctx context.Context, executionID string, sink Sink, wm *watermarks) error {
	results, err := p.stages.ListForExecution(ctx, executionID)
	if err != nil {
		return err
	}
	for _, sr := range results {
		if !sr.CreatedAt.After(wm.stageTS) {
			continue
		}
		if err := sink.Send(Frame{
			"type":         TypeStageResult,
			"stage_result": stageResultView(sr),
		}); err != nil {
			return err
		}
		wm.stageTS = sr.CreatedAt
	}
	return nil
}

func isTerminal(s task.Status) bool {
	switch s {
	case task.StatusSucceeded, task.StatusFailed, task.StatusCancelledByUser, task.StatusExpired:
		return true
	}
	return false
}

// finalStatus maps the internal terminal status onto the wire vocabulary.
func finalStatus(s task.Status) string {
	switch s {
	case task.StatusSucceeded:
		return "completed"
	case task.StatusFailed:
		return "failed"
	default:
		return "cancelled"
	}
}

func executionView(t *ent.Task, step int, paused string) map[string]any {
	view := map[string]any{
		"id":                 t.ID,
		"status":             string(t.Status),
		"pack_id":            t.PackID,
		"workspace_id":       t.WorkspaceID,
		"current_step_index": step,
		"created_at":         t.CreatedAt,
	}
	if total, ok := t.ExecutionContext[models.CtxTotalSteps]; ok {
		view["total_steps"] = total
	}
	if paused != "" {
		view["paused_at"] = paused
	}
	if t.Error != nil {
		view["error"] = *t.Error
	}
	return view
}

func toolCallView(call *ent.ToolCall) map[string]any {
	view := map[string]any{
		"id":              call.ID,
		"execution_id":    call.ExecutionID,
		"tool_name":       call.ToolName,
		"status":          string(call.Status),
		"factory_cluster": call.FactoryCluster,
		"started_at":      call.StartedAt,
	}
	if call.StepID != nil {
		view["step_id"] = *call.StepID
	}
	if call.Error != nil {
		view["error"] = *call.Error
	}
	if call.DurationMs != nil {
		view["duration_ms"] = *call.DurationMs
	}
	return view
}

func stageResultView(sr *ent.StageResult) map[string]any {
	return map[string]any{
		"id":              sr.ID,
		"execution_id":    sr.ExecutionID,
		"step_id":         sr.StepID,
		"stage_name":      sr.StageName,
		"result_type":     string(sr.ResultType),
		"preview":         sr.Preview,
		"requires_review": sr.RequiresReview,
		"review_status":   string(sr.ReviewStatus),
		"created_at":      sr.CreatedAt,
	}
}
