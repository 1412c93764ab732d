package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func emitStep(t *testing.T, svc *EventService, execID string, idx, total int, status string) {
	t.Helper()
	_, err := svc.EmitStepEvent(context.Background(), StepEventRequest{
		WorkspaceID: "ws-1",
		ExecutionID: execID,
		StepIndex:   idx,
		TotalSteps:  total,
		Status:      status,
		Description: "step output",
	})
	require.NoError(t, err)
}

func TestStepEvents_NoGapsNoRepeats(t *testing.T) {
	client := setupTestDB(t)
	svc := NewEventService(client)
	ctx := context.Background()

	emitStep(t, svc, "exec-1", 1, 3, "completed")
	emitStep(t, svc, "exec-1", 2, 3, "in_progress")

	// Re-emitting step 2 updates in place
	emitStep(t, svc, "exec-1", 2, 3, "completed")

	events, err := svc.ListStepEvents(ctx, "exec-1")
	require.NoError(t, err)
	require.Len(t, events, 2)
	assert.Equal(t, "completed", events[1].Payload["status"])
}

func TestStepEvents_StatusIsMonotonic(t *testing.T) {
	client := setupTestDB(t)
	svc := NewEventService(client)
	ctx := context.Background()

	emitStep(t, svc, "exec-1", 1, 1, "completed")
	// Downgrade attempt is ignored
	emitStep(t, svc, "exec-1", 1, 1, "in_progress")

	events, err := svc.ListStepEvents(ctx, "exec-1")
	require.NoError(t, err)
	require.Len(t, events, 1)
	assert.Equal(t, "completed", events[0].Payload["status"])
}

func TestStepEvents_MarkStepCompleted(t *testing.T) {
	client := setupTestDB(t)
	svc := NewEventService(client)
	ctx := context.Background()

	emitStep(t, svc, "exec-1", 1, 2, "in_progress")
	require.NoError(t, svc.MarkStepCompleted(ctx, "exec-1", 1))

	events, err := svc.ListStepEvents(ctx, "exec-1")
	require.NoError(t, err)
	assert.Equal(t, "completed", events[0].Payload["status"])

	// Missing index is a no-op
	require.NoError(t, svc.MarkStepCompleted(ctx, "exec-1", 9))
}

func TestStepEvents_BackfillTotalSteps(t *testing.T) {
	client := setupTestDB(t)
	svc := NewEventService(client)
	ctx := context.Background()

	emitStep(t, svc, "exec-1", 1, 1, "completed")
	emitStep(t, svc, "exec-1", 2, 2, "completed")
	require.NoError(t, svc.BackfillTotalSteps(ctx, "exec-1", 5))

	events, err := svc.ListStepEvents(ctx, "exec-1")
	require.NoError(t, err)
	for _, evt := range events {
		total, ok := toInt(evt.Payload["total_steps"])
		require.True(t, ok)
		assert.Equal(t, 5, total)
	}

	count, err := svc.CountStepEvents(ctx, "exec-1")
	require.NoError(t, err)
	assert.Equal(t, 2, count)
}

func TestStepEvents_ScopedToExecution(t *testing.T) {
	client := setupTestDB(t)
	svc := NewEventService(client)
	ctx := context.Background()

	emitStep(t, svc, "exec-1", 1, 1, "completed")
	emitStep(t, svc, "exec-2", 1, 1, "completed")

	events, err := svc.ListStepEvents(ctx, "exec-1")
	require.NoError(t, err)
	assert.Len(t, events, 1)

	assert.Error(t, func() error {
		_, err := svc.EmitStepEvent(ctx, StepEventRequest{
			WorkspaceID: "ws-1", ExecutionID: "exec-1", StepIndex: 0, Status: "completed",
		})
		return err
	}())
}
