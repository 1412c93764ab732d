package config

import "time"

// RetentionConfig controls data retention and cleanup behavior.
type RetentionConfig struct {
	// TaskRetentionDays is how many days terminal tasks are kept before
	// the cleanup loop purges them together with their events, tool calls,
	// stage results and execution mirror.
	TaskRetentionDays int `yaml:"task_retention_days"`

	// EventTTL is the maximum age of event rows that reference no existing
	// task. Per-task purge handles the normal case; this is a safety net.
	EventTTL time.Duration `yaml:"event_ttl"`

	// CleanupInterval is how often the cleanup loop runs.
	CleanupInterval time.Duration `yaml:"cleanup_interval"`
}

// DefaultRetentionConfig returns the built-in retention defaults.
func DefaultRetentionConfig() *RetentionConfig {
	return &RetentionConfig{
		TaskRetentionDays: 180,
		EventTTL:          24 * time.Hour,
		CleanupInterval:   12 * time.Hour,
	}
}
