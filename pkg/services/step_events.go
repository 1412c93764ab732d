package services

import (
	"context"
	"encoding/json"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"github.com/cortexops/playbookd/ent"
	"github.com/cortexops/playbookd/ent/mindevent"
	"github.com/cortexops/playbookd/pkg/models"
)

// Step event statuses, ordered. A step event never moves backwards.
var stepStatusRank = map[string]int{
	"pending":     0,
	"in_progress": 1,
	"completed":   2,
	"failed":      2,
}

// StepEventRequest describes one playbook_step emission.
type StepEventRequest struct {
	WorkspaceID string
	ProfileID   string
	ExecutionID string
	StepIndex   int
	TotalSteps  int
	Status      string
	Description string
	LogSummary  string
	UsedTools   []string
}

// EmitStepEvent writes a playbook_step event. Re-emitting an existing step
// index updates the stored event in place with monotonic status instead of
// creating a duplicate, so the step timeline has no gaps and no repeats.
func (s *EventService) EmitStepEvent(ctx context.Context, req StepEventRequest) (*ent.MindEvent, error) {
	if req.StepIndex < 1 {
		return nil, NewValidationError("step_index", "must be >= 1")
	}

	existing, err := s.findStepEvent(ctx, req.ExecutionID, req.StepIndex)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return s.updateStepEvent(ctx, existing, req)
	}

	payload := map[string]any{
		"step_index":  req.StepIndex,
		"total_steps": req.TotalSteps,
		"status":      req.Status,
		"description": req.Description,
	}
	if req.LogSummary != "" {
		payload["log_summary"] = req.LogSummary
	}
	if len(req.UsedTools) > 0 {
		payload["used_tools"] = req.UsedTools
	}

	return s.CreateEvent(ctx, models.CreateEventRequest{
		WorkspaceID: req.WorkspaceID,
		ProfileID:   req.ProfileID,
		EntityIDs:   []string{req.ExecutionID},
		Actor:       "assistant",
		EventType:   models.EventTypePlaybookStep,
		Payload:     payload,
	})
}

// updateStepEvent merges a re-emission into the stored event. Status only
// advances; description and tools are refreshed when provided.
func (s *EventService) updateStepEvent(ctx context.Context, evt *ent.MindEvent, req StepEventRequest) (*ent.MindEvent, error) {
	payload := clonePayload(evt.Payload)

	oldStatus, _ := payload["status"].(string)
	if stepStatusRank[req.Status] >= stepStatusRank[oldStatus] {
		payload["status"] = req.Status
	}
	if req.Description != "" {
		payload["description"] = req.Description
	}
	if req.LogSummary != "" {
		payload["log_summary"] = req.LogSummary
	}
	if req.TotalSteps > 0 {
		payload["total_steps"] = req.TotalSteps
	}
	if len(req.UsedTools) > 0 {
		payload["used_tools"] = req.UsedTools
	}

	updated, err := s.client.MindEvent.UpdateOneID(evt.ID).SetPayload(payload).Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to update step event: %w", err)
	}
	return updated, nil
}

// MarkStepCompleted advances a step event's status to completed if it is
// not already terminal. Missing step events are ignored.
func (s *EventService) MarkStepCompleted(ctx context.Context, executionID string, stepIndex int) error {
	evt, err := s.findStepEvent(ctx, executionID, stepIndex)
	if err != nil || evt == nil {
		return err
	}
	payload := clonePayload(evt.Payload)
	if status, _ := payload["status"].(string); stepStatusRank[status] >= stepStatusRank["completed"] {
		return nil
	}
	payload["status"] = "completed"
	if err := s.client.MindEvent.UpdateOneID(evt.ID).SetPayload(payload).Exec(ctx); err != nil {
		return fmt.Errorf("failed to complete step event: %w", err)
	}
	return nil
}

// BackfillTotalSteps rewrites total_steps onto every step event of an
// execution so the UI renders a consistent "Step X/Y".
func (s *EventService) BackfillTotalSteps(ctx context.Context, executionID string, totalSteps int) error {
	events, err := s.ListStepEvents(ctx, executionID)
	if err != nil {
		return err
	}
	for _, evt := range events {
		current, _ := toInt(evt.Payload["total_steps"])
		if current == totalSteps {
			continue
		}
		payload := clonePayload(evt.Payload)
		payload["total_steps"] = totalSteps
		if err := s.client.MindEvent.UpdateOneID(evt.ID).SetPayload(payload).Exec(ctx); err != nil {
			return fmt.Errorf("failed to backfill total_steps: %w", err)
		}
	}
	return nil
}

// ListStepEvents returns the playbook_step events of an execution, oldest
// first.
func (s *EventService) ListStepEvents(ctx context.Context, executionID string) ([]*ent.MindEvent, error) {
	idList, err := json.Marshal([]string{executionID})
	if err != nil {
		return nil, fmt.Errorf("failed to marshal entity id filter: %w", err)
	}

	events, err := s.client.MindEvent.Query().
		Where(
			mindevent.EventTypeEQ(models.EventTypePlaybookStep),
			func(sel *sql.Selector) {
				sel.Where(sql.ExprP("entity_ids @> $1", string(idList)))
			},
		).
		Order(ent.Asc(mindevent.FieldTimestamp), ent.Asc(mindevent.FieldID)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list step events: %w", err)
	}
	return events, nil
}

// CountStepEvents returns how many step events an execution has.
func (s *EventService) CountStepEvents(ctx context.Context, executionID string) (int, error) {
	events, err := s.ListStepEvents(ctx, executionID)
	if err != nil {
		return 0, err
	}
	return len(events), nil
}

func (s *EventService) findStepEvent(ctx context.Context, executionID string, stepIndex int) (*ent.MindEvent, error) {
	events, err := s.ListStepEvents(ctx, executionID)
	if err != nil {
		return nil, err
	}
	for _, evt := range events {
		if idx, ok := toInt(evt.Payload["step_index"]); ok && idx == stepIndex {
			return evt, nil
		}
	}
	return nil, nil
}

func clonePayload(payload map[string]any) map[string]any {
	out := make(map[string]any, len(payload))
	for k, v := range payload {
		out[k] = v
	}
	return out
}

// toInt tolerates the int/float64 ambiguity of JSON-decoded payloads.
func toInt(v any) (int, bool) {
	switch n := v.(type) {
	case int:
		return n, true
	case int64:
		return int(n), true
	case float64:
		return int(n), true
	case json.Number:
		i, err := n.Int64()
		if err != nil {
			return 0, false
		}
		return int(i), true
	default:
		return 0, false
	}
}
