package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExecutionService_MirrorLifecycle(t *testing.T) {
	client := setupTestDB(t)
	svc := NewExecutionService(client)
	ctx := context.Background()

	exec, err := svc.CreateMirror(ctx, "exec-1", "ws-1", "seo_article", "intent-1", 4)
	require.NoError(t, err)
	assert.Equal(t, "running", exec.Status)
	require.NotNil(t, exec.TotalSteps)
	assert.Equal(t, 4, *exec.TotalSteps)

	_, err = svc.CreateMirror(ctx, "exec-1", "ws-1", "seo_article", "", 4)
	assert.ErrorIs(t, err, ErrAlreadyExists)

	err = svc.SyncStatus(ctx, "exec-1", "failed", map[string]any{"failure_type": "timeout"}, true)
	require.NoError(t, err)

	got, err := svc.GetExecution(ctx, "exec-1")
	require.NoError(t, err)
	assert.Equal(t, "failed", got.Status)
	assert.NotNil(t, got.CompletedAt)
	assert.True(t, got.SupportsResume)
	assert.Equal(t, "timeout", got.FailureMetadata["failure_type"])
}

func TestExecutionService_SnapshotClampsStepIndex(t *testing.T) {
	client := setupTestDB(t)
	svc := NewExecutionService(client)
	ctx := context.Background()

	_, err := svc.CreateMirror(ctx, "exec-1", "ws-1", "seo_article", "", 4)
	require.NoError(t, err)

	// Checkpoint before the first step completed: index stays at 0
	err = svc.SaveSnapshot(ctx, "exec-1", map[string]any{"messages": []any{}}, 0)
	require.NoError(t, err)

	got, err := svc.GetExecution(ctx, "exec-1")
	require.NoError(t, err)
	require.NotNil(t, got.CurrentStepIndex)
	assert.Equal(t, 0, *got.CurrentStepIndex)
	assert.True(t, got.SupportsResume)

	// Mid-run checkpoint: index is the last completed step
	err = svc.SaveSnapshot(ctx, "exec-1", map[string]any{"messages": []any{"m"}}, 3)
	require.NoError(t, err)

	got, err = svc.GetExecution(ctx, "exec-1")
	require.NoError(t, err)
	assert.Equal(t, 2, *got.CurrentStepIndex)
}

func TestExecutionService_AppendPhaseSummary(t *testing.T) {
	client := setupTestDB(t)
	svc := NewExecutionService(client)
	ctx := context.Background()

	_, err := svc.CreateMirror(ctx, "exec-1", "ws-1", "seo_article", "", 2)
	require.NoError(t, err)

	require.NoError(t, svc.AppendPhaseSummary(ctx, "exec-1", map[string]any{"phase": "research"}))
	require.NoError(t, svc.AppendPhaseSummary(ctx, "exec-1", map[string]any{"phase": "draft"}))

	got, err := svc.GetExecution(ctx, "exec-1")
	require.NoError(t, err)
	require.Len(t, got.PhaseSummaries, 2)
	assert.Equal(t, "draft", got.PhaseSummaries[1]["phase"])
}
