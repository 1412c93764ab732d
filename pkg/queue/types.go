// Package queue runs the parallel-worker pool: polling, claiming,
// heartbeating and reaping of playbook execution tasks.
package queue

import (
	"context"
	"errors"
	"time"

	"github.com/cortexops/playbookd/ent"
)

// Sentinel results of a poll cycle. Both mean "sleep and poll again".
var (
	ErrNoTasksAvailable = errors.New("no runnable tasks available")
	ErrAtCapacity       = errors.New("at max concurrent tasks")
)

// TaskExecutor drives one claimed task. The step driver implements it.
type TaskExecutor interface {
	Execute(ctx context.Context, t *ent.Task) error
}

// WorkerStatus represents the current state of a worker.
type WorkerStatus string

// Worker status constants.
const (
	WorkerStatusIdle    WorkerStatus = "idle"
	WorkerStatusWorking WorkerStatus = "working"
)

// WorkerHealth is one worker's health snapshot.
type WorkerHealth struct {
	ID             string       `json:"id"`
	Status         WorkerStatus `json:"status"`
	CurrentTaskID  string       `json:"current_task_id,omitempty"`
	TasksProcessed int          `json:"tasks_processed"`
	LastActivity   time.Time    `json:"last_activity"`
}

// PoolHealth is the pool-level health snapshot served by /healthz.
type PoolHealth struct {
	IsHealthy     bool           `json:"is_healthy"`
	DBReachable   bool           `json:"db_reachable"`
	DBError       string         `json:"db_error,omitempty"`
	RunnerID      string         `json:"runner_id"`
	ActiveWorkers int            `json:"active_workers"`
	TotalWorkers  int            `json:"total_workers"`
	RunningTasks  int            `json:"running_tasks"`
	MaxConcurrent int            `json:"max_concurrent"`
	QueueDepth    int            `json:"queue_depth"`
	WorkerStats   []WorkerHealth `json:"worker_stats"`
	LastReapScan  time.Time      `json:"last_reap_scan,omitempty"`
	TasksReaped   int            `json:"tasks_reaped"`
}
