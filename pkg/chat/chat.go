// Package chat implements the execution sidebar conversation. A user post
// either continues a paused execution or gets a standalone assistant reply
// grounded in the execution's recent history.
package chat

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"sync"
	"time"

	"github.com/cortexops/playbookd/ent"
	"github.com/cortexops/playbookd/ent/task"
	"github.com/cortexops/playbookd/pkg/llm"
	"github.com/cortexops/playbookd/pkg/models"
	"github.com/cortexops/playbookd/pkg/parser"
	"github.com/cortexops/playbookd/pkg/runner"
	"github.com/cortexops/playbookd/pkg/services"
)

// History window sizes for the discussion prompt.
const (
	recentStepLimit = 5
	recentChatLimit = 10
	replyTimeout    = 2 * time.Minute
)

// Continuer is the slice of the step driver chat needs for continue mode.
type Continuer interface {
	Continue(ctx context.Context, executionID, userMessage, principalID string) (*runner.ContinueResult, error)
}

// PostRequest is a user post to an execution's sidebar.
type PostRequest struct {
	WorkspaceID string
	ExecutionID string
	StepID      string
	PrincipalID string
	Message     string
}

// Service writes execution_chat events and drives the reply task.
type Service struct {
	tasks    *services.TaskService
	events   *services.EventService
	driver   Continuer
	provider llm.Provider
	logger   *slog.Logger

	// wg tracks in-flight reply goroutines for graceful shutdown.
	wg sync.WaitGroup
}

// NewService builds a chat service.
func NewService(tasks *services.TaskService, events *services.EventService, driver Continuer, provider llm.Provider) *Service {
	return &Service{
		tasks:    tasks,
		events:   events,
		driver:   driver,
		provider: provider,
		logger:   slog.Default().With("component", "chat"),
	}
}

// Post persists the user's message as an execution_chat event and spawns the
// reply task. The returned event is the user post, not the reply.
func (s *Service) Post(ctx context.Context, req PostRequest) (*ent.MindEvent, error) {
	if strings.TrimSpace(req.Message) == "" {
		return nil, services.NewValidationError("message", "required")
	}
	t, err := s.tasks.GetTask(ctx, req.ExecutionID)
	if err != nil {
		return nil, err
	}

	entityIDs := []string{req.ExecutionID}
	if req.StepID != "" {
		entityIDs = append(entityIDs, req.StepID)
	}
	evt, err := s.events.CreateEvent(ctx, models.CreateEventRequest{
		WorkspaceID: req.WorkspaceID,
		ProfileID:   req.PrincipalID,
		EntityIDs:   entityIDs,
		Actor:       "user",
		EventType:   models.EventTypeExecutionChat,
		Payload:     map[string]any{"role": "user", "content": req.Message},
	})
	if err != nil {
		return nil, err
	}

	s.wg.Add(1)
	go func() {
		defer s.wg.Done()
		replyCtx, cancel := context.WithTimeout(context.Background(), replyTimeout)
		defer cancel()
		if err := s.respond(replyCtx, t, req); err != nil {
			s.logger.Warn("chat reply failed",
				"execution_id", req.ExecutionID, "error", err)
		}
	}()

	return evt, nil
}

// Wait blocks until all in-flight replies finish. Called on shutdown.
func (s *Service) Wait() {
	s.wg.Wait()
}

// ListChat returns the sidebar conversation for an execution, oldest first.
func (s *Service) ListChat(ctx context.Context, executionID string) ([]*ent.MindEvent, error) {
	return s.events.ListTypedForExecution(ctx, executionID, models.EventTypeExecutionChat, time.Time{}, "", 200)
}

// respond picks the reply mode. A paused execution treats the post as a
// playbook turn; anything else gets a discussion answer.
func (s *Service) respond(ctx context.Context, t *ent.Task, req PostRequest) error {
	if shouldContinue(t) {
		_, err := s.driver.Continue(ctx, req.ExecutionID, req.Message, req.PrincipalID)
		return err
	}
	return s.discuss(ctx, req)
}

// shouldContinue reports whether the post resumes the playbook rather than
// opening a side discussion.
func shouldContinue(t *ent.Task) bool {
	if t.Status == task.StatusWaitingConfirmation {
		return true
	}
	if t.Status != task.StatusRunning {
		return false
	}
	if v, ok := t.ExecutionContext[models.CtxPausedAt].(string); ok && v != "" {
		return true
	}
	if v, ok := t.ExecutionContext[models.CtxConfirmationStatus].(string); ok && v == models.ConfirmationPending {
		return true
	}
	return false
}

// discuss answers about the execution without advancing it.
func (s *Service) discuss(ctx context.Context, req PostRequest) error {
	prompt, err := s.buildDiscussionPrompt(ctx, req.ExecutionID)
	if err != nil {
		return err
	}

	reply, err := s.provider.Chat(ctx, req.ExecutionID, []llm.Message{
		{Role: "system", Content: prompt},
		{Role: "user", Content: req.Message},
	})
	if err != nil {
		return fmt.Errorf("discussion reply failed: %w", err)
	}

	_, err = s.events.CreateEvent(ctx, models.CreateEventRequest{
		WorkspaceID: req.WorkspaceID,
		ProfileID:   req.PrincipalID,
		EntityIDs:   []string{req.ExecutionID},
		Actor:       "assistant",
		EventType:   models.EventTypeExecutionChat,
		Payload:     map[string]any{"role": "assistant", "content": reply},
	})
	return err
}

// buildDiscussionPrompt grounds the assistant in the execution's state:
// playbook code, step position, recent step summaries and recent chat.
func (s *Service) buildDiscussionPrompt(ctx context.Context, executionID string) (string, error) {
	t, err := s.tasks.GetTask(ctx, executionID)
	if err != nil {
		return "", err
	}

	var sb strings.Builder
	sb.WriteString("You are discussing a playbook execution with the user. Answer questions about it; do not execute anything.\n\n")
	sb.WriteString(fmt.Sprintf("Playbook: %s\nStatus: %s\n", t.PackID, t.Status))
	if step, ok := models.CurrentStep(t.ExecutionContext); ok {
		sb.WriteString(fmt.Sprintf("Current step: %d\n", step))
	}

	steps, err := s.events.ListStepEvents(ctx, executionID)
	if err == nil && len(steps) > 0 {
		if len(steps) > recentStepLimit {
			steps = steps[len(steps)-recentStepLimit:]
		}
		sb.WriteString("\nRecent steps:\n")
		for _, evt := range steps {
			summary, _ := evt.Payload["log_summary"].(string)
			status, _ := evt.Payload["status"].(string)
			sb.WriteString(fmt.Sprintf("- [%s] %s\n", status, parser.Truncate(summary, 200)))
		}
	}

	chatEvents, err := s.events.ListTypedForExecution(ctx, executionID,
		models.EventTypeExecutionChat, time.Time{}, "", 0)
	if err == nil && len(chatEvents) > 0 {
		if len(chatEvents) > recentChatLimit {
			chatEvents = chatEvents[len(chatEvents)-recentChatLimit:]
		}
		sb.WriteString("\nRecent chat:\n")
		for _, evt := range chatEvents {
			role, _ := evt.Payload["role"].(string)
			content, _ := evt.Payload["content"].(string)
			sb.WriteString(fmt.Sprintf("%s: %s\n", role, parser.Truncate(content, 300)))
		}
	}

	return sb.String(), nil
}
