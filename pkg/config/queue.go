package config

import "time"

// QueueConfig contains runner pool and liveness configuration.
// These values control how tasks are polled, claimed, heartbeated
// and reaped.
type QueueConfig struct {
	// RunnerCount is the number of runner goroutines per replica/pod.
	// Each runner independently polls and processes tasks.
	RunnerCount int `yaml:"runner_count"`

	// MaxConcurrentTasks is the global limit of concurrent tasks being
	// processed across ALL replicas/pods. Enforced by database COUNT(*) check.
	MaxConcurrentTasks int `yaml:"max_concurrent_tasks"`

	// PollInterval is the base interval for checking runnable tasks.
	PollInterval time.Duration `yaml:"poll_interval"`

	// PollIntervalJitter is the random jitter added to PollInterval.
	// Actual interval: PollInterval ± PollIntervalJitter.
	PollIntervalJitter time.Duration `yaml:"poll_interval_jitter"`

	// HeartbeatInterval is how often a runner writes
	// execution_context.heartbeat_at for its claimed task.
	HeartbeatInterval time.Duration `yaml:"heartbeat_interval"`

	// HeartbeatTTL is how stale a running task's heartbeat may be before
	// the zombie reaper fails it. Comparison is strict: a heartbeat
	// exactly at the TTL boundary is not reaped.
	HeartbeatTTL time.Duration `yaml:"heartbeat_ttl"`

	// NoHeartbeatTTL is how long a running task may go without any
	// heartbeat at all (started but never heartbeated) before the
	// reaper fails it.
	NoHeartbeatTTL time.Duration `yaml:"no_heartbeat_ttl"`

	// ReapInterval is how often the zombie reaper sweep runs.
	ReapInterval time.Duration `yaml:"reap_interval"`

	// TaskTimeout is the maximum time a task can run before the timeout
	// sweep fails it with failure_type=timeout.
	TaskTimeout time.Duration `yaml:"task_timeout"`

	// GracefulShutdownTimeout is the max time to wait for active tasks
	// to checkpoint and exit during shutdown.
	GracefulShutdownTimeout time.Duration `yaml:"graceful_shutdown_timeout"`

	// RunnerLivenessMaxAge is the window within which a row in the
	// runner heartbeat table counts as an active runner.
	RunnerLivenessMaxAge time.Duration `yaml:"runner_liveness_max_age"`
}

// DefaultQueueConfig returns the built-in queue defaults.
func DefaultQueueConfig() *QueueConfig {
	return &QueueConfig{
		RunnerCount:             5,
		MaxConcurrentTasks:      5,
		PollInterval:            1 * time.Second,
		PollIntervalJitter:      500 * time.Millisecond,
		HeartbeatInterval:       30 * time.Second,
		HeartbeatTTL:            10 * time.Minute,
		NoHeartbeatTTL:          30 * time.Minute,
		ReapInterval:            1 * time.Minute,
		TaskTimeout:             5 * time.Minute,
		GracefulShutdownTimeout: 30 * time.Second,
		RunnerLivenessMaxAge:    90 * time.Second,
	}
}
