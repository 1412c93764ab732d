package services

import (
	"context"
	"testing"
	"time"

	"github.com/cortexops/playbookd/ent"
	"github.com/cortexops/playbookd/pkg/models"
	"github.com/cortexops/playbookd/test/util"
	"github.com/stretchr/testify/require"
)

func setupTestDB(t *testing.T) *ent.Client {
	client, _ := util.SetupTestDatabase(t)
	return client
}

func createTestTask(t *testing.T, svc *TaskService, taskType string) *ent.Task {
	t.Helper()
	created, err := svc.CreateTask(context.Background(), models.CreateTaskRequest{
		WorkspaceID: "ws-test",
		PackID:      "seo_article",
		TaskType:    taskType,
	})
	require.NoError(t, err)
	return created
}

// backdateHeartbeat rewrites execution_context.heartbeat_at to a moment
// in the past, simulating a runner that stopped heartbeating.
func backdateHeartbeat(t *testing.T, client *ent.Client, taskID string, age time.Duration) {
	t.Helper()
	tk, err := client.Task.Get(context.Background(), taskID)
	require.NoError(t, err)

	execCtx := make(map[string]any, len(tk.ExecutionContext))
	for k, v := range tk.ExecutionContext {
		execCtx[k] = v
	}
	execCtx[models.CtxHeartbeatAt] = time.Now().Add(-age).Format(time.RFC3339Nano)

	err = client.Task.UpdateOneID(taskID).SetExecutionContext(execCtx).Exec(context.Background())
	require.NoError(t, err)
}
