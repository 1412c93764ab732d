package config

import "time"

// StreamConfig controls the SSE projection loop.
type StreamConfig struct {
	// PollInterval is how often the projector re-queries task state,
	// new events and new tool calls for a connected client.
	PollInterval time.Duration `yaml:"poll_interval"`

	// HeartbeatInterval is how often a comment frame is written to keep
	// idle connections alive through proxies.
	HeartbeatInterval time.Duration `yaml:"heartbeat_interval"`

	// MaxStreamDuration bounds a single SSE connection; clients
	// reconnect with their watermarks intact server-side.
	MaxStreamDuration time.Duration `yaml:"max_stream_duration"`
}

// DefaultStreamConfig returns the built-in streaming defaults.
func DefaultStreamConfig() *StreamConfig {
	return &StreamConfig{
		PollInterval:      1 * time.Second,
		HeartbeatInterval: 15 * time.Second,
		MaxStreamDuration: 30 * time.Minute,
	}
}
