// Package runner drives playbook executions: it opens conversations, calls
// the LLM, dispatches parsed tool calls, writes step events and checkpoints
// after every turn.
package runner

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/cortexops/playbookd/ent"
	"github.com/cortexops/playbookd/ent/task"
	"github.com/cortexops/playbookd/pkg/checkpoint"
	"github.com/cortexops/playbookd/pkg/conversation"
	"github.com/cortexops/playbookd/pkg/llm"
	"github.com/cortexops/playbookd/pkg/models"
	"github.com/cortexops/playbookd/pkg/parser"
	"github.com/cortexops/playbookd/pkg/playbook"
	"github.com/cortexops/playbookd/pkg/services"
	"github.com/cortexops/playbookd/pkg/tools"
)

// Inner tool loop bound per outer turn: the sixth LLM call never happens.
const maxToolLoopIterations = 5

// Truncation limits for stored text.
const (
	maxErrorLen      = 1000
	maxLogSummaryLen = 200
	maxDescription   = 2000
)

// ToolRunner is the slice of the tool executor the step driver needs.
type ToolRunner interface {
	RunTool(ctx context.Context, req tools.Request) (any, error)
	BuildCatalog(ctx context.Context) string
}

// HabitHook observes a completed execution. Optional.
type HabitHook func(ctx context.Context, executionID string)

// StartRequest opens a new playbook execution.
type StartRequest struct {
	PackCode       string
	PrincipalID    string
	WorkspaceID    string
	Inputs         map[string]any
	Locale         string
	UserContext    string
	SkipSteps      []int
	ExtraChecklist []string
	IntentID       string
	SuggestionID   string
	TriggerSource  string
}

// StartResult is returned from Start.
type StartResult struct {
	ExecutionID string              `json:"execution_id"`
	Message     string              `json:"message"`
	IsComplete  bool                `json:"is_complete"`
	History     []conversation.Turn `json:"conversation_history"`
}

// ContinueResult is returned from Continue.
type ContinueResult struct {
	Message          string              `json:"message"`
	IsComplete       bool                `json:"is_complete"`
	AwaitingReview   bool                `json:"awaiting_review,omitempty"`
	StructuredOutput map[string]any      `json:"structured_output,omitempty"`
	History          []conversation.Turn `json:"conversation_history"`
}

// Runner is the step driver.
type Runner struct {
	name     string
	tasks    *services.TaskService
	events   *services.EventService
	execs    *services.ExecutionService
	stages   *services.StageResultService
	ckpt     *checkpoint.Manager
	registry *playbook.Registry
	convs    *conversation.Registry
	provider llm.Provider
	tools    ToolRunner

	// maxSteps bounds the total outer turns of one execution.
	maxSteps int

	habitHook HabitHook
	logger    *slog.Logger
}

// Deps carries the runner's collaborators.
type Deps struct {
	Name     string
	Tasks    *services.TaskService
	Events   *services.EventService
	Execs    *services.ExecutionService
	Stages   *services.StageResultService
	Ckpt     *checkpoint.Manager
	Registry *playbook.Registry
	Convs    *conversation.Registry
	Provider llm.Provider
	Tools    ToolRunner
	MaxSteps int
	Habit    HabitHook
}

// New builds a runner.
func New(d Deps) *Runner {
	name := d.Name
	if name == "" {
		name = "runner-inline"
	}
	maxSteps := d.MaxSteps
	if maxSteps <= 0 {
		maxSteps = 24
	}
	return &Runner{
		name:      name,
		tasks:     d.Tasks,
		events:    d.Events,
		execs:     d.Execs,
		stages:    d.Stages,
		ckpt:      d.Ckpt,
		registry:  d.Registry,
		convs:     d.Convs,
		provider:  d.Provider,
		tools:     d.Tools,
		maxSteps:  maxSteps,
		habitHook: d.Habit,
		logger:    slog.Default().With("component", "runner", "runner_id", name),
	}
}

// Start opens an execution: resolves the playbook, claims a fresh task,
// seeds the conversation, runs the first LLM turn and checkpoints.
func (r *Runner) Start(ctx context.Context, req StartRequest) (*StartResult, error) {
	pb, err := r.registry.Get(req.PackCode)
	if err != nil {
		return nil, err
	}

	executionID := uuid.New().String()
	if _, err := r.tasks.CreateTask(ctx, models.CreateTaskRequest{
		TaskID:      executionID,
		ExecutionID: executionID,
		WorkspaceID: req.WorkspaceID,
		PackID:      req.PackCode,
		TaskType:    string(task.TaskTypePlaybookExecution),
		Params:      req.Inputs,
	}); err != nil {
		return nil, err
	}
	if _, claimed, err := r.tasks.TryClaim(ctx, executionID, r.name); err != nil {
		return nil, err
	} else if !claimed {
		return nil, fmt.Errorf("freshly created task %s was claimed elsewhere", executionID)
	}

	return r.begin(ctx, pb, req, executionID)
}

// begin runs the opening turn of a claimed execution: execution context,
// mirror row, seeded conversation, first LLM reply, step 1 event, checkpoint.
func (r *Runner) begin(ctx context.Context, pb *playbook.Playbook, req StartRequest, executionID string) (*StartResult, error) {
	totalSteps := pb.TotalSteps()
	execPatch := map[string]any{
		"trigger_source":     req.TriggerSource,
		models.CtxTotalSteps: totalSteps,
	}
	if req.IntentID != "" {
		execPatch["intent_id"] = req.IntentID
	}
	if req.SuggestionID != "" {
		execPatch["suggestion_id"] = req.SuggestionID
	}
	if err := r.tasks.UpdateExecutionContext(ctx, executionID, execPatch); err != nil {
		return nil, r.failExecution(executionID, err, models.FailureTypeExecution)
	}
	if _, err := r.execs.CreateMirror(ctx, executionID, req.WorkspaceID, req.PackCode, req.IntentID, totalSteps); err != nil {
		return nil, r.failExecution(executionID, err, models.FailureTypeExecution)
	}

	catalog := r.tools.BuildCatalog(ctx)
	mgr := conversation.New(conversation.Seed{
		PlaybookCode: req.PackCode,
		PrincipalID:  req.PrincipalID,
		WorkspaceID:  req.WorkspaceID,
		Locale:       req.Locale,
		SystemPrompt: buildSystemPrompt(pb, req.UserContext, req.Locale,
			req.SkipSteps, req.ExtraChecklist, catalog),
		SkipSteps:      req.SkipSteps,
		ExtraChecklist: req.ExtraChecklist,
		ToolCatalog:    catalog,
	})
	mgr.Append(conversation.RoleUser, "begin")

	reply, err := r.provider.Chat(ctx, executionID, toLLMMessages(mgr.Messages()))
	if err != nil {
		return nil, r.failExecution(executionID, err, models.FailureTypeModel)
	}
	mgr.Append(conversation.RoleAssistant, reply)
	mgr.AdvanceStep()

	if _, err := r.events.EmitStepEvent(ctx, services.StepEventRequest{
		WorkspaceID: req.WorkspaceID,
		ProfileID:   req.PrincipalID,
		ExecutionID: executionID,
		StepIndex:   1,
		TotalSteps:  totalSteps,
		Status:      "completed",
		Description: parser.Truncate(reply, maxDescription),
		LogSummary:  parser.Truncate(reply, maxLogSummaryLen),
	}); err != nil {
		r.logger.Warn("failed to emit first step event", "execution_id", executionID, "error", err)
	}

	if err := r.ckpt.Save(ctx, executionID, mgr, totalSteps); err != nil {
		return nil, r.failExecution(executionID, err, models.FailureTypeExecution)
	}
	r.convs.Put(executionID, mgr)

	r.logger.Info("execution started",
		"execution_id", executionID, "pack", req.PackCode, "total_steps", totalSteps)

	return &StartResult{
		ExecutionID: executionID,
		Message:     reply,
		IsComplete:  false,
		History:     mgr.Messages(),
	}, nil
}

// Execute drives an already-claimed task to completion without user
// interaction. Queue workers call it for coordinator-enqueued executions;
// the resurrection path reaches it too, restoring from the checkpoint.
func (r *Runner) Execute(ctx context.Context, t *ent.Task) error {
	pb, err := r.registry.Get(t.PackID)
	if err != nil {
		return r.failExecution(t.ID, err, models.FailureTypeExecution)
	}

	principalID, _ := t.Params["principal_id"].(string)
	locale, _ := t.Params["locale"].(string)

	if _, hasState := t.ExecutionContext[models.CtxConversationState]; !hasState {
		req := StartRequest{
			PackCode:      t.PackID,
			PrincipalID:   principalID,
			WorkspaceID:   t.WorkspaceID,
			Inputs:        t.Params,
			Locale:        locale,
			TriggerSource: "queue",
		}
		if _, err := r.begin(ctx, pb, req, t.ID); err != nil {
			return err
		}
	}

	// Conversational packs answer one turn at a time; nothing to drive.
	if pb.Conversational() {
		return nil
	}

	for {
		if err := ctx.Err(); err != nil {
			return err
		}
		res, err := r.Continue(ctx, t.ID, "continue", principalID)
		if err != nil {
			return err
		}
		// A review pause hands the execution to a human; the queue is done
		// with it until the approval lands.
		if res.IsComplete || res.AwaitingReview {
			return nil
		}
	}
}

// Continue advances an execution by one outer turn: append the user message,
// run the bounded tool loop, extract structured output, write the step event
// and checkpoint.
func (r *Runner) Continue(ctx context.Context, executionID, userMessage, principalID string) (*ContinueResult, error) {
	unlock := r.convs.Lock(executionID)
	defer unlock()

	mgr, ok := r.convs.Get(executionID)
	if !ok {
		restored, err := r.ckpt.Restore(ctx, executionID)
		if err != nil {
			return nil, err
		}
		if restored.ToolCatalog == "" {
			restored.ToolCatalog = r.tools.BuildCatalog(ctx)
		}
		mgr = restored
		r.convs.Put(executionID, mgr)
	}

	if mgr.CurrentStep >= r.maxSteps {
		err := fmt.Errorf("execution exceeded %d steps", r.maxSteps)
		r.convs.Evict(executionID)
		return nil, r.failExecution(executionID, err, models.FailureTypeExecution)
	}

	mgr.Append(conversation.RoleUser, userMessage)
	r.emitMessageEvent(ctx, mgr, executionID, principalID, "user", userMessage)

	nextIndex := mgr.CurrentStep + 1
	stepID := fmt.Sprintf("step-%d", nextIndex)

	finalReply, usedTools, err := r.runToolLoop(ctx, mgr, executionID, principalID, stepID)
	if err != nil {
		r.convs.Evict(executionID)
		return nil, r.failExecution(executionID, err, models.FailureTypeModel)
	}

	structured := parser.ParseStructuredOutput(finalReply)
	isComplete := structured != nil

	stepCount, err := r.events.CountStepEvents(ctx, executionID)
	if err != nil {
		r.logger.Warn("failed to count step events", "execution_id", executionID, "error", err)
	}
	totalSteps := nextIndex
	if stepCount+1 > totalSteps {
		totalSteps = stepCount + 1
	}
	// The declared plan is a floor: a conversation can outgrow it, never
	// shrink it.
	if t, err := r.tasks.GetTask(ctx, executionID); err == nil {
		if declared, ok := t.ExecutionContext[models.CtxTotalSteps]; ok {
			if n, isInt := asInt(declared); isInt && n > totalSteps {
				totalSteps = n
			}
		}
	}

	if nextIndex > 1 {
		if err := r.events.MarkStepCompleted(ctx, executionID, nextIndex-1); err != nil {
			r.logger.Warn("failed to complete previous step", "execution_id", executionID, "error", err)
		}
	}
	if _, err := r.events.EmitStepEvent(ctx, services.StepEventRequest{
		WorkspaceID: mgr.WorkspaceID,
		ProfileID:   principalID,
		ExecutionID: executionID,
		StepIndex:   nextIndex,
		TotalSteps:  totalSteps,
		Status:      "completed",
		Description: parser.Truncate(finalReply, maxDescription),
		LogSummary:  parser.Truncate(finalReply, maxLogSummaryLen),
		UsedTools:   usedTools,
	}); err != nil {
		r.logger.Warn("failed to emit step event", "execution_id", executionID, "error", err)
	}
	if err := r.events.BackfillTotalSteps(ctx, executionID, totalSteps); err != nil {
		r.logger.Warn("failed to backfill total_steps", "execution_id", executionID, "error", err)
	}

	mgr.AdvanceStep()
	if isComplete {
		mgr.SetStructuredOutput("final", structured)
	}

	if err := r.ckpt.Save(ctx, executionID, mgr, totalSteps); err != nil {
		r.logger.Error("checkpoint failed", "execution_id", executionID, "error", err)
	}

	if isComplete {
		if r.shouldPauseForReview(ctx, executionID, mgr.PlaybookCode) {
			r.pauseForReview(ctx, executionID, stepID, structured, finalReply)
			return &ContinueResult{
				Message:          finalReply,
				IsComplete:       false,
				AwaitingReview:   true,
				StructuredOutput: structured,
				History:          mgr.Messages(),
			}, nil
		}
		r.completeExecution(ctx, mgr, executionID, stepID, structured, finalReply)
	}

	return &ContinueResult{
		Message:          finalReply,
		IsComplete:       isComplete,
		StructuredOutput: structured,
		History:          mgr.Messages(),
	}, nil
}

// shouldPauseForReview gates the terminal write of external-write packs
// behind a human approval. An already-approved execution completes normally.
func (r *Runner) shouldPauseForReview(ctx context.Context, executionID, packCode string) bool {
	pb, err := r.registry.Get(packCode)
	if err != nil || pb.Tier != playbook.TierExternalWrite {
		return false
	}
	t, err := r.tasks.GetTask(ctx, executionID)
	if err != nil {
		r.logger.Warn("failed to load task for review gate", "execution_id", executionID, "error", err)
		return false
	}
	outcome, _ := t.ExecutionContext[models.CtxConfirmationStatus].(string)
	return outcome != models.ConfirmationApproved
}

// pauseForReview parks the execution at the review gate: the draft becomes a
// reviewable stage result and the task moves to waiting_confirmation. The
// conversation stays in memory so the approved resume picks up where it left.
func (r *Runner) pauseForReview(ctx context.Context, executionID, stepID string, structured map[string]any, finalReply string) {
	if _, err := r.stages.CreateStageResult(ctx, executionID, stepID, "final_output", "draft",
		structured, parser.Truncate(finalReply, maxLogSummaryLen), true); err != nil {
		r.logger.Warn("failed to write reviewable stage result", "execution_id", executionID, "error", err)
	}
	if err := r.tasks.SetWaitingConfirmation(ctx, executionID); err != nil {
		r.logger.Warn("failed to pause for review", "execution_id", executionID, "error", err)
		return
	}
	r.logger.Info("execution paused for review", "execution_id", executionID, "step_id", stepID)
}

// runToolLoop performs up to maxToolLoopIterations LLM calls, dispatching
// parsed tool calls between them. The loop exits on the first reply with no
// tool calls, or immediately when every call of one iteration failed.
func (r *Runner) runToolLoop(ctx context.Context, mgr *conversation.Manager, executionID, principalID, stepID string) (string, []string, error) {
	var finalReply string
	var usedTools []string

	for i := 0; i < maxToolLoopIterations; i++ {
		reply, err := r.provider.Chat(ctx, executionID, toLLMMessages(mgr.Messages()))
		if err != nil {
			return "", nil, fmt.Errorf("LLM call failed: %w", err)
		}
		mgr.Append(conversation.RoleAssistant, reply)
		finalReply = reply

		calls := parser.ParseToolCalls(reply)
		if len(calls) == 0 {
			break
		}

		outcomes := make([]parser.ToolOutcome, 0, len(calls))
		anySucceeded := false
		for _, call := range calls {
			usedTools = appendUnique(usedTools, call.ToolName)
			result, err := r.tools.RunTool(ctx, tools.Request{
				ToolFQN:     call.ToolName,
				PrincipalID: principalID,
				WorkspaceID: mgr.WorkspaceID,
				ExecutionID: executionID,
				StepID:      stepID,
				Params:      call.Parameters,
			})
			if err != nil {
				outcomes = append(outcomes, parser.ToolOutcome{
					ToolName: call.ToolName,
					Error:    err.Error(),
				})
				continue
			}
			anySucceeded = true
			outcomes = append(outcomes, parser.ToolOutcome{
				ToolName: call.ToolName,
				Result:   result,
				Success:  true,
			})
		}

		mgr.Append(conversation.RoleSystem, parser.FormatToolResultsTurn(outcomes))

		// All calls failed: exit instead of spinning.
		if !anySucceeded {
			break
		}
	}
	return finalReply, usedTools, nil
}

// completeExecution writes the terminal state: task result, mirror status,
// final stage result, optional habit observation, conversation eviction.
func (r *Runner) completeExecution(ctx context.Context, mgr *conversation.Manager, executionID, stepID string, structured map[string]any, finalReply string) {
	if err := r.tasks.CompleteTask(ctx, executionID, structured); err != nil {
		r.logger.Error("failed to complete task", "execution_id", executionID, "error", err)
		return
	}
	if err := r.execs.SyncStatus(ctx, executionID, string(task.StatusSucceeded), nil, true); err != nil {
		r.logger.Warn("mirror status sync failed", "execution_id", executionID, "error", err)
	}
	if _, err := r.stages.CreateStageResult(ctx, executionID, stepID, "final_output", "draft",
		structured, parser.Truncate(finalReply, maxLogSummaryLen), false); err != nil {
		r.logger.Warn("failed to write final stage result", "execution_id", executionID, "error", err)
	}
	if r.habitHook != nil {
		r.habitHook(ctx, executionID)
	}
	r.convs.Evict(executionID)

	r.logger.Info("execution completed", "execution_id", executionID)
}

// failExecution marks the task failed with a truncated error, syncs the
// mirror and leaves an error event on the execution's timeline. Returns the
// original cause for the caller to propagate.
func (r *Runner) failExecution(executionID string, cause error, failureType string) error {
	ctx := context.Background()
	if err := r.tasks.FailTask(ctx, executionID, parser.Truncate(cause.Error(), maxErrorLen), failureType); err != nil {
		r.logger.Error("failed to mark task failed", "execution_id", executionID, "error", err)
	}
	if err := r.execs.SyncStatus(ctx, executionID, string(task.StatusFailed),
		map[string]any{models.CtxFailureType: failureType}, true); err != nil {
		r.logger.Warn("mirror status sync failed", "execution_id", executionID, "error", err)
	}
	r.emitErrorEvent(ctx, executionID, parser.Truncate(cause.Error(), maxErrorLen), failureType)
	return cause
}

// emitErrorEvent writes the user-visible ERROR timeline item for a failed
// execution. Best-effort.
func (r *Runner) emitErrorEvent(ctx context.Context, executionID, message, failureType string) {
	t, err := r.tasks.GetTask(ctx, executionID)
	if err != nil {
		r.logger.Warn("failed to load task for error event", "execution_id", executionID, "error", err)
		return
	}
	if _, err := r.events.CreateEvent(ctx, models.CreateEventRequest{
		WorkspaceID: t.WorkspaceID,
		EntityIDs:   []string{executionID},
		Actor:       "system",
		EventType:   models.EventTypeError,
		Payload: map[string]any{
			"message":      message,
			"failure_type": failureType,
		},
	}); err != nil {
		r.logger.Warn("failed to emit error event", "execution_id", executionID, "error", err)
	}
}

func (r *Runner) emitMessageEvent(ctx context.Context, mgr *conversation.Manager, executionID, principalID, actor, content string) {
	if _, err := r.events.CreateEvent(ctx, models.CreateEventRequest{
		WorkspaceID: mgr.WorkspaceID,
		ProfileID:   principalID,
		EntityIDs:   []string{executionID},
		Actor:       actor,
		EventType:   models.EventTypeMessage,
		Payload:     map[string]any{"content": content},
	}); err != nil {
		r.logger.Warn("failed to emit message event", "execution_id", executionID, "error", err)
	}
}

func toLLMMessages(turns []conversation.Turn) []llm.Message {
	out := make([]llm.Message, len(turns))
	for i, t := range turns {
		out[i] = llm.Message{Role: string(t.Role), Content: t.Content}
	}
	return out
}

func asInt(v any) (int, bool) {
	switch n := v.(type) {
	case int:
		return n, true
	case int64:
		return int(n), true
	case float64:
		return int(n), true
	}
	return 0, false
}

func appendUnique(list []string, item string) []string {
	for _, existing := range list {
		if existing == item {
			return list
		}
	}
	return append(list, item)
}
