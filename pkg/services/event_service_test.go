package services

import (
	"context"
	"testing"
	"time"

	"github.com/cortexops/playbookd/pkg/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEventService_CreateAndListForExecution(t *testing.T) {
	client := setupTestDB(t)
	svc := NewEventService(client)
	ctx := context.Background()

	base := time.Now().Add(-time.Minute)
	for i, id := range []string{"e-1", "e-2", "e-3"} {
		ts := base.Add(time.Duration(i) * time.Second)
		_, err := svc.CreateEvent(ctx, models.CreateEventRequest{
			EventID:     id,
			WorkspaceID: "ws-1",
			EntityIDs:   []string{"exec-1"},
			Actor:       "system",
			EventType:   models.EventTypePlaybookStep,
			Payload:     map[string]any{"step": i + 1},
			Timestamp:   &ts,
		})
		require.NoError(t, err)
	}

	// Event for a different execution is invisible
	_, err := svc.CreateEvent(ctx, models.CreateEventRequest{
		WorkspaceID: "ws-1",
		EntityIDs:   []string{"exec-other"},
		Actor:       "system",
		EventType:   models.EventTypePlaybookStep,
	})
	require.NoError(t, err)

	all, err := svc.ListForExecution(ctx, "exec-1", time.Time{}, "", 0)
	require.NoError(t, err)
	require.Len(t, all, 3)
	assert.Equal(t, "e-1", all[0].ID)
	assert.Equal(t, "e-3", all[2].ID)

	// Watermark excludes everything at or before it
	after, err := svc.ListForExecution(ctx, "exec-1", all[1].Timestamp, all[1].ID, 0)
	require.NoError(t, err)
	require.Len(t, after, 1)
	assert.Equal(t, "e-3", after[0].ID)
}

func TestEventService_WatermarkTieBreaksOnID(t *testing.T) {
	client := setupTestDB(t)
	svc := NewEventService(client)
	ctx := context.Background()

	// Two events sharing one timestamp must both survive watermarking.
	ts := time.Now().Add(-time.Minute)
	for _, id := range []string{"e-a", "e-b"} {
		_, err := svc.CreateEvent(ctx, models.CreateEventRequest{
			EventID:     id,
			WorkspaceID: "ws-1",
			EntityIDs:   []string{"exec-1"},
			Actor:       "system",
			EventType:   models.EventTypePlaybookStep,
			Timestamp:   &ts,
		})
		require.NoError(t, err)
	}

	first, err := svc.ListForExecution(ctx, "exec-1", time.Time{}, "", 1)
	require.NoError(t, err)
	require.Len(t, first, 1)
	assert.Equal(t, "e-a", first[0].ID)

	rest, err := svc.ListForExecution(ctx, "exec-1", first[0].Timestamp, first[0].ID, 0)
	require.NoError(t, err)
	require.Len(t, rest, 1)
	assert.Equal(t, "e-b", rest[0].ID)
}

func TestEventService_Validation(t *testing.T) {
	client := setupTestDB(t)
	svc := NewEventService(client)
	ctx := context.Background()

	_, err := svc.CreateEvent(ctx, models.CreateEventRequest{Actor: "system", EventType: "message"})
	assert.True(t, IsValidationError(err))

	_, err = svc.CreateEvent(ctx, models.CreateEventRequest{WorkspaceID: "ws", EventType: "message"})
	assert.True(t, IsValidationError(err))
}

func TestEventService_ListByWorkspace(t *testing.T) {
	client := setupTestDB(t)
	svc := NewEventService(client)
	ctx := context.Background()

	_, err := svc.CreateEvent(ctx, models.CreateEventRequest{
		WorkspaceID: "ws-1",
		Actor:       "user",
		EventType:   models.EventTypeMessage,
	})
	require.NoError(t, err)
	_, err = svc.CreateEvent(ctx, models.CreateEventRequest{
		WorkspaceID: "ws-1",
		Actor:       "system",
		EventType:   models.EventTypeSuggestion,
	})
	require.NoError(t, err)

	events, err := svc.ListByWorkspace(ctx, "ws-1", models.EventTypeSuggestion, 0)
	require.NoError(t, err)
	require.Len(t, events, 1)
	assert.Equal(t, models.EventTypeSuggestion, events[0].EventType)
}
