package config

import (
	"fmt"
	"sort"
	"sync"
	"time"
)

// ClusterKind distinguishes how a tool cluster is dispatched.
type ClusterKind string

const (
	// ClusterKindLocalMCP runs tools over a local MCP stdio server.
	ClusterKindLocalMCP ClusterKind = "local_mcp"
	// ClusterKindHTTPHub forwards tool calls to a remote hub over HTTP.
	ClusterKindHTTPHub ClusterKind = "http_hub"
)

// ClusterConfig defines one tool dispatch channel.
type ClusterConfig struct {
	// Kind selects the transport (required)
	Kind ClusterKind `yaml:"kind"`

	// For local_mcp clusters: server process to spawn
	Command string            `yaml:"command,omitempty"`
	Args    []string          `yaml:"args,omitempty"`
	Env     map[string]string `yaml:"env,omitempty"`

	// For http_hub clusters: base URL of the hub
	BaseURL string `yaml:"base_url,omitempty"`

	// Timeout for a single tool call on this cluster
	Timeout time.Duration `yaml:"timeout,omitempty"`

	// Masking selects extra secret-masking patterns applied to this
	// cluster's tool output on top of the always-on baseline.
	Masking *MaskingConfig `yaml:"masking,omitempty"`
}

// MaskingConfig selects masking patterns by group or individual name.
type MaskingConfig struct {
	PatternGroups []string `yaml:"pattern_groups,omitempty"`
	Patterns      []string `yaml:"patterns,omitempty"`
}

// ClusterRegistry stores tool cluster configurations in memory with
// thread-safe access.
type ClusterRegistry struct {
	clusters map[string]*ClusterConfig
	mu       sync.RWMutex
}

// NewClusterRegistry creates a new cluster registry
func NewClusterRegistry(clusters map[string]*ClusterConfig) *ClusterRegistry {
	// Defensive copy to prevent external mutation
	copied := make(map[string]*ClusterConfig, len(clusters))
	for k, v := range clusters {
		copied[k] = v
	}
	return &ClusterRegistry{
		clusters: copied,
	}
}

// Get retrieves a cluster configuration by name (thread-safe)
func (r *ClusterRegistry) Get(name string) (*ClusterConfig, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	cluster, exists := r.clusters[name]
	if !exists {
		return nil, fmt.Errorf("%w: %s", ErrClusterNotFound, name)
	}
	return cluster, nil
}

// Has checks if a cluster exists in the registry (thread-safe)
func (r *ClusterRegistry) Has(name string) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()

	_, exists := r.clusters[name]
	return exists
}

// Names returns a sorted list of all configured cluster names.
func (r *ClusterRegistry) Names() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	names := make([]string, 0, len(r.clusters))
	for name := range r.clusters {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Len returns the number of clusters in the registry (thread-safe)
func (r *ClusterRegistry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.clusters)
}

// DefaultClusters returns the built-in cluster set. User YAML entries
// override these by name.
func DefaultClusters() map[string]*ClusterConfig {
	return map[string]*ClusterConfig{
		"local_mcp": {
			Kind:    ClusterKindLocalMCP,
			Command: "npx",
			Args:    []string{"-y", "@modelcontextprotocol/server-filesystem", "/workspace"},
			Timeout: 60 * time.Second,
		},
		"sem-hub": {
			Kind:    ClusterKindHTTPHub,
			BaseURL: "http://sem-hub:8080",
			Timeout: 120 * time.Second,
		},
		"wp-hub": {
			Kind:    ClusterKindHTTPHub,
			BaseURL: "http://wp-hub:8080",
			Timeout: 120 * time.Second,
		},
		"n8n": {
			Kind:    ClusterKindHTTPHub,
			BaseURL: "http://n8n:5678",
			Timeout: 300 * time.Second,
		},
	}
}
