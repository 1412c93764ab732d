package services

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/cortexops/playbookd/ent"
	"github.com/cortexops/playbookd/ent/mindevent"
	"github.com/cortexops/playbookd/ent/predicate"
	"github.com/cortexops/playbookd/pkg/models"
	"github.com/google/uuid"
)

// EventService appends to and reads from the mind event log.
type EventService struct {
	client *ent.Client
}

// NewEventService creates a new EventService
func NewEventService(client *ent.Client) *EventService {
	return &EventService{client: client}
}

// CreateEvent appends an event to the log
func (s *EventService) CreateEvent(httpCtx context.Context, req models.CreateEventRequest) (*ent.MindEvent, error) {
	if req.WorkspaceID == "" {
		return nil, NewValidationError("workspace_id", "required")
	}
	if req.Actor == "" {
		return nil, NewValidationError("actor", "required")
	}
	if req.EventType == "" {
		return nil, NewValidationError("event_type", "required")
	}

	eventID := req.EventID
	if eventID == "" {
		eventID = uuid.New().String()
	}
	ts := time.Now()
	if req.Timestamp != nil {
		ts = *req.Timestamp
	}

	// Use background context with timeout for critical write
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	builder := s.client.MindEvent.Create().
		SetID(eventID).
		SetWorkspaceID(req.WorkspaceID).
		SetActor(mindevent.Actor(req.Actor)).
		SetEventType(req.EventType).
		SetTimestamp(ts)

	if req.ProfileID != "" {
		builder.SetProfileID(req.ProfileID)
	}
	if req.ThreadID != "" {
		builder.SetThreadID(req.ThreadID)
	}
	if req.EntityIDs != nil {
		builder.SetEntityIds(req.EntityIDs)
	}
	if req.Payload != nil {
		builder.SetPayload(req.Payload)
	}
	if req.Metadata != nil {
		builder.SetMetadata(req.Metadata)
	}

	evt, err := builder.Save(ctx)
	if err != nil {
		if ent.IsConstraintError(err) {
			return nil, ErrAlreadyExists
		}
		return nil, fmt.Errorf("failed to create event: %w", err)
	}

	return evt, nil
}

// afterWatermark matches events strictly past the (timestamp, id)
// watermark. Timestamps are not unique, so the id tie-break keeps an
// event sharing the watermark timestamp from being skipped forever.
func afterWatermark(after time.Time, afterID string) predicate.MindEvent {
	return mindevent.Or(
		mindevent.TimestampGT(after),
		mindevent.And(
			mindevent.TimestampEQ(after),
			mindevent.IDGT(afterID),
		),
	)
}

// ListForExecution returns events referencing executionID in entity_ids,
// strictly after the (timestamp, id) watermark, oldest first. The
// projection loop calls this every tick.
func (s *EventService) ListForExecution(ctx context.Context, executionID string, after time.Time, afterID string, limit int) ([]*ent.MindEvent, error) {
	if limit <= 0 {
		limit = 100
	}

	idList, err := json.Marshal([]string{executionID})
	if err != nil {
		return nil, fmt.Errorf("failed to marshal entity id filter: %w", err)
	}

	events, err := s.client.MindEvent.Query().
		Where(
			afterWatermark(after, afterID),
			func(sel *sql.Selector) {
				sel.Where(sql.ExprP("entity_ids @> $1", string(idList)))
			},
		).
		Order(ent.Asc(mindevent.FieldTimestamp), ent.Asc(mindevent.FieldID)).
		Limit(limit).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list execution events: %w", err)
	}

	return events, nil
}

// ListTypedForExecution is ListForExecution narrowed to one event type.
func (s *EventService) ListTypedForExecution(ctx context.Context, executionID, eventType string, after time.Time, afterID string, limit int) ([]*ent.MindEvent, error) {
	if limit <= 0 {
		limit = 100
	}

	idList, err := json.Marshal([]string{executionID})
	if err != nil {
		return nil, fmt.Errorf("failed to marshal entity id filter: %w", err)
	}

	events, err := s.client.MindEvent.Query().
		Where(
			mindevent.EventTypeEQ(eventType),
			afterWatermark(after, afterID),
			func(sel *sql.Selector) {
				sel.Where(sql.ExprP("entity_ids @> $1", string(idList)))
			},
		).
		Order(ent.Asc(mindevent.FieldTimestamp), ent.Asc(mindevent.FieldID)).
		Limit(limit).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list %s events: %w", eventType, err)
	}

	return events, nil
}

// ListByThread returns a thread's events oldest first.
func (s *EventService) ListByThread(ctx context.Context, workspaceID, threadID string, limit int) ([]*ent.MindEvent, error) {
	if limit <= 0 {
		limit = 200
	}

	events, err := s.client.MindEvent.Query().
		Where(
			mindevent.WorkspaceIDEQ(workspaceID),
			mindevent.ThreadIDEQ(threadID),
		).
		Order(ent.Asc(mindevent.FieldTimestamp), ent.Asc(mindevent.FieldID)).
		Limit(limit).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list thread events: %w", err)
	}

	return events, nil
}

// ListByWorkspace returns the most recent events for a workspace,
// optionally filtered by event type.
func (s *EventService) ListByWorkspace(ctx context.Context, workspaceID, eventType string, limit int) ([]*ent.MindEvent, error) {
	if limit <= 0 {
		limit = 50
	}

	query := s.client.MindEvent.Query().
		Where(mindevent.WorkspaceIDEQ(workspaceID))
	if eventType != "" {
		query = query.Where(mindevent.EventTypeEQ(eventType))
	}

	events, err := query.
		Order(ent.Desc(mindevent.FieldTimestamp)).
		Limit(limit).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list workspace events: %w", err)
	}

	return events, nil
}

// PurgeForEntities deletes all events referencing any of the given entity
// IDs. Used by the retention sweep after the owning tasks are purged.
func (s *EventService) PurgeForEntities(ctx context.Context, entityIDs []string) (int, error) {
	if len(entityIDs) == 0 {
		return 0, nil
	}

	deleteCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	total := 0
	for _, id := range entityIDs {
		ref, err := json.Marshal([]string{id})
		if err != nil {
			return total, fmt.Errorf("failed to marshal entity ref: %w", err)
		}
		count, err := s.client.MindEvent.Delete().
			Where(func(sel *sql.Selector) {
				sel.Where(sql.ExprP("entity_ids @> $1", string(ref)))
			}).
			Exec(deleteCtx)
		if err != nil {
			return total, fmt.Errorf("failed to purge events for %s: %w", id, err)
		}
		total += count
	}
	return total, nil
}

// PurgeOlderThan deletes events older than the TTL regardless of entity.
// Per-task purge handles the normal case; this catches leftovers such as
// thread messages that never referenced a task.
func (s *EventService) PurgeOlderThan(ctx context.Context, ttl time.Duration) (int, error) {
	cutoff := time.Now().Add(-ttl)

	deleteCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	count, err := s.client.MindEvent.Delete().
		Where(mindevent.TimestampLT(cutoff)).
		Exec(deleteCtx)
	if err != nil {
		return 0, fmt.Errorf("failed to purge old events: %w", err)
	}
	return count, nil
}
