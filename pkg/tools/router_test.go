package tools

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestResolveCluster(t *testing.T) {
	tests := []struct {
		tool    string
		cluster string
	}{
		{"local_read_file", ClusterLocalMCP},
		{"filesystem_mcp_list", ClusterLocalMCP},
		{"sem-search", ClusterSemHub},
		{"sem-keyword-volume", ClusterSemHub},
		{"wp_publish_post", ClusterWPHub},
		{"wordpress_media_upload", ClusterWPHub},
		{"n8n_trigger_workflow", ClusterN8N},
		{"something_else", ClusterLocalMCP},
		{"", ClusterLocalMCP},
		// local_ prefix wins over later matches
		{"local_wp_export", ClusterLocalMCP},
	}
	for _, tc := range tests {
		assert.Equal(t, tc.cluster, ResolveCluster(tc.tool), "tool %q", tc.tool)
	}
}

func TestNormalizeParams_RenamesWriteFilePath(t *testing.T) {
	in := map[string]any{"path": "/out/a.md", "content": "hi"}

	out := NormalizeParams("filesystem_write_file", in)
	assert.Equal(t, "/out/a.md", out["file_path"])
	assert.NotContains(t, out, "path")
	assert.Equal(t, "hi", out["content"])

	// Original map untouched
	assert.Equal(t, "/out/a.md", in["path"])
}

func TestNormalizeParams_OtherToolsUnchanged(t *testing.T) {
	in := map[string]any{"path": "/x"}
	out := NormalizeParams("filesystem_read_file", in)
	assert.Equal(t, "/x", out["path"])
	assert.NotContains(t, out, "file_path")
}
