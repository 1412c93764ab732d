package services

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRunnerService_HeartbeatAndLiveness(t *testing.T) {
	client := setupTestDB(t)
	svc := NewRunnerService(client)
	ctx := context.Background()

	active, err := svc.HasActiveRunner(ctx, time.Minute)
	require.NoError(t, err)
	assert.False(t, active)

	require.NoError(t, svc.UpsertHeartbeat(ctx, "runner-a"))

	active, err = svc.HasActiveRunner(ctx, time.Minute)
	require.NoError(t, err)
	assert.True(t, active)

	// Upsert is idempotent per runner
	require.NoError(t, svc.UpsertHeartbeat(ctx, "runner-a"))
	require.NoError(t, svc.UpsertHeartbeat(ctx, "runner-b"))

	count, err := client.RunnerHeartbeat.Query().Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, 2, count)
}

func TestRunnerService_StaleRowsDoNotCountAsActive(t *testing.T) {
	client := setupTestDB(t)
	svc := NewRunnerService(client)
	ctx := context.Background()

	_, err := client.RunnerHeartbeat.Create().
		SetID("runner-old").
		SetHeartbeatAt(time.Now().Add(-10 * time.Minute)).
		Save(ctx)
	require.NoError(t, err)

	active, err := svc.HasActiveRunner(ctx, 90*time.Second)
	require.NoError(t, err)
	assert.False(t, active)

	deleted, err := svc.DeleteStale(ctx, 5*time.Minute)
	require.NoError(t, err)
	assert.Equal(t, 1, deleted)
}
