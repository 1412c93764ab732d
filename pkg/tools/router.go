// Package tools dispatches tool calls to their backing cluster and records
// every invocation as a durable tool_calls row plus a mirror event.
package tools

import "strings"

// Cluster names known to the router. They must exist in the cluster registry.
const (
	ClusterLocalMCP = "local_mcp"
	ClusterSemHub   = "sem-hub"
	ClusterWPHub    = "wp-hub"
	ClusterN8N      = "n8n"
)

// ResolveCluster maps a fully qualified tool name to its dispatch cluster.
// Local and MCP tools are matched first so a name like "local_wp_export"
// stays on the local cluster.
func ResolveCluster(toolFQN string) string {
	name := strings.ToLower(toolFQN)
	switch {
	case strings.HasPrefix(name, "local_") || strings.Contains(name, "mcp"):
		return ClusterLocalMCP
	case strings.Contains(name, "sem-"):
		return ClusterSemHub
	case strings.Contains(name, "wp") || strings.Contains(name, "wordpress"):
		return ClusterWPHub
	case strings.Contains(name, "n8n"):
		return ClusterN8N
	default:
		return ClusterLocalMCP
	}
}

// NormalizeParams applies known per-tool parameter renames. The input map is
// not mutated.
func NormalizeParams(toolFQN string, params map[string]any) map[string]any {
	out := make(map[string]any, len(params))
	for k, v := range params {
		out[k] = v
	}
	if strings.EqualFold(toolFQN, "filesystem_write_file") {
		if v, ok := out["path"]; ok {
			if _, exists := out["file_path"]; !exists {
				out["file_path"] = v
			}
			delete(out, "path")
		}
	}
	return out
}
