package services

import (
	"context"
	"testing"
	"time"

	"github.com/cortexops/playbookd/ent/toolcall"
	"github.com/cortexops/playbookd/pkg/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestToolCallService_Lifecycle(t *testing.T) {
	client := setupTestDB(t)
	svc := NewToolCallService(client)
	ctx := context.Background()

	created, err := svc.CreateToolCall(ctx, models.CreateToolCallRequest{
		ExecutionID:    "exec-1",
		StepID:         "step-2",
		ToolName:       "filesystem_write_file",
		Parameters:     map[string]any{"file_path": "/out/report.md"},
		FactoryCluster: "local_mcp",
	})
	require.NoError(t, err)
	assert.Equal(t, toolcall.StatusPending, created.Status)
	assert.Nil(t, created.CompletedAt)

	done, err := svc.FinalizeToolCall(ctx, created.ID, models.FinalizeToolCallRequest{
		Response:   map[string]any{"bytes_written": float64(1024)},
		DurationMS: 42,
	})
	require.NoError(t, err)
	assert.Equal(t, toolcall.StatusCompleted, done.Status)
	assert.NotNil(t, done.CompletedAt)
	require.NotNil(t, done.DurationMs)
	assert.Equal(t, 42, *done.DurationMs)
}

func TestToolCallService_FinalizeWithError(t *testing.T) {
	client := setupTestDB(t)
	svc := NewToolCallService(client)
	ctx := context.Background()

	created, err := svc.CreateToolCall(ctx, models.CreateToolCallRequest{
		ExecutionID:    "exec-1",
		ToolName:       "wp_publish_post",
		FactoryCluster: "wp-hub",
	})
	require.NoError(t, err)

	failed, err := svc.FinalizeToolCall(ctx, created.ID, models.FinalizeToolCallRequest{
		Error:      "hub returned 502",
		DurationMS: 1500,
	})
	require.NoError(t, err)
	assert.Equal(t, toolcall.StatusFailed, failed.Status)
	require.NotNil(t, failed.Error)
	assert.Equal(t, "hub returned 502", *failed.Error)
}

func TestToolCallService_ListWatermark(t *testing.T) {
	client := setupTestDB(t)
	svc := NewToolCallService(client)
	ctx := context.Background()

	first, err := svc.CreateToolCall(ctx, models.CreateToolCallRequest{
		ExecutionID:    "exec-1",
		ToolName:       "local_read_file",
		FactoryCluster: "local_mcp",
	})
	require.NoError(t, err)

	time.Sleep(5 * time.Millisecond)
	second, err := svc.CreateToolCall(ctx, models.CreateToolCallRequest{
		ExecutionID:    "exec-1",
		ToolName:       "sem-search",
		FactoryCluster: "sem-hub",
	})
	require.NoError(t, err)

	all, err := svc.ListForExecution(ctx, "exec-1", time.Time{}, 0)
	require.NoError(t, err)
	require.Len(t, all, 2)
	assert.Equal(t, first.ID, all[0].ID)

	after, err := svc.ListForExecution(ctx, "exec-1", first.CreatedAt, 0)
	require.NoError(t, err)
	require.Len(t, after, 1)
	assert.Equal(t, second.ID, after[0].ID)
}
