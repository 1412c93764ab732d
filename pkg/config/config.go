package config

// Config is the umbrella configuration object that encapsulates
// all registries, defaults, and configuration state.
// This is the primary object returned by Initialize() and used throughout the application.
type Config struct {
	configDir string // Configuration directory path (for reference)

	// Server settings
	ListenAddr string

	// Queue and runner pool configuration
	Queue *QueueConfig

	// SSE projection configuration
	Stream *StreamConfig

	// Auto-execution policy configuration
	Coordinator *CoordinatorConfig

	// LLM sidecar configuration
	LLM *LLMConfig

	// Data retention policy
	Retention *RetentionConfig

	// Tool cluster registry
	ClusterRegistry *ClusterRegistry

	// PlaybookDirs are extra directories scanned for playbook definitions
	// on top of the built-in set.
	PlaybookDirs []string
}

// Initialize is defined in loader.go

// Stats contains statistics about loaded configuration
type Stats struct {
	Clusters     int
	PlaybookDirs int
}

// Stats returns configuration statistics for logging/monitoring
func (c *Config) Stats() Stats {
	s := Stats{PlaybookDirs: len(c.PlaybookDirs)}
	if c.ClusterRegistry != nil {
		s.Clusters = c.ClusterRegistry.Len()
	}
	return s
}

// ConfigDir returns the configuration directory path
func (c *Config) ConfigDir() string {
	return c.configDir
}

// GetCluster retrieves a tool cluster configuration by name.
// This is a convenience method that wraps ClusterRegistry.Get().
func (c *Config) GetCluster(name string) (*ClusterConfig, error) {
	return c.ClusterRegistry.Get(name)
}
