package tools

import "context"

// Adapter executes tool calls on one cluster.
type Adapter interface {
	// Execute runs a single tool and returns its decoded result.
	Execute(ctx context.Context, toolName string, params map[string]any) (any, error)

	// Catalog describes the cluster's tools for prompt construction.
	// Returns "" when the cluster cannot enumerate its tools.
	Catalog(ctx context.Context) (string, error)

	// Close releases transports and child processes.
	Close() error
}
