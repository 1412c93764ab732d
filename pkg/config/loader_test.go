package config

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	dir := t.TempDir()
	err := os.WriteFile(filepath.Join(dir, "playbookd.yaml"), []byte(content), 0o644)
	require.NoError(t, err)
	return dir
}

func TestInitialize(t *testing.T) {
	configDir := writeConfig(t, `
system:
  listen_addr: ":9000"
queue:
  runner_count: 3
  heartbeat_ttl: 5m
llm:
  sidecar_addr: "llm:50051"
  model: "test-model"
clusters:
  extra-hub:
    kind: http_hub
    base_url: "http://extra:8080"
`)

	ctx := context.Background()
	cfg, err := Initialize(ctx, configDir)

	require.NoError(t, err)
	require.NotNil(t, cfg)

	assert.Equal(t, ":9000", cfg.ListenAddr)

	// User overrides applied, unset fields keep defaults
	assert.Equal(t, 3, cfg.Queue.RunnerCount)
	assert.Equal(t, 5*time.Minute, cfg.Queue.HeartbeatTTL)
	assert.Equal(t, 30*time.Minute, cfg.Queue.NoHeartbeatTTL)
	assert.Equal(t, 1*time.Second, cfg.Queue.PollInterval)

	assert.Equal(t, "llm:50051", cfg.LLM.SidecarAddr)
	assert.Equal(t, "test-model", cfg.LLM.Model)
	assert.Equal(t, 24, cfg.LLM.MaxStepIterations)

	// Built-in clusters plus the user one
	assert.True(t, cfg.ClusterRegistry.Has("local_mcp"))
	assert.True(t, cfg.ClusterRegistry.Has("sem-hub"))
	assert.True(t, cfg.ClusterRegistry.Has("wp-hub"))
	assert.True(t, cfg.ClusterRegistry.Has("n8n"))
	assert.True(t, cfg.ClusterRegistry.Has("extra-hub"))
}

func TestInitializeConfigNotFound(t *testing.T) {
	ctx := context.Background()
	_, err := Initialize(ctx, "/nonexistent/directory")

	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to load configuration")
}

func TestInitializeInvalidYAML(t *testing.T) {
	configDir := writeConfig(t, "queue: [not a map")

	_, err := Initialize(context.Background(), configDir)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInvalidYAML)
}

func TestInitializeEnvExpansion(t *testing.T) {
	t.Setenv("TEST_HUB_URL", "http://from-env:8080")
	configDir := writeConfig(t, `
clusters:
  env-hub:
    kind: http_hub
    base_url: "{{.TEST_HUB_URL}}"
`)

	cfg, err := Initialize(context.Background(), configDir)
	require.NoError(t, err)

	cluster, err := cfg.GetCluster("env-hub")
	require.NoError(t, err)
	assert.Equal(t, "http://from-env:8080", cluster.BaseURL)
}

func TestInitializeValidationFailure(t *testing.T) {
	configDir := writeConfig(t, `
clusters:
  broken:
    kind: http_hub
`)

	_, err := Initialize(context.Background(), configDir)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "base_url")
}

func TestThresholdFor(t *testing.T) {
	cfg := DefaultCoordinatorConfig()

	assert.InDelta(t, 0.6, cfg.ThresholdFor("low"), 1e-9)
	assert.InDelta(t, 0.75, cfg.ThresholdFor("medium"), 1e-9)
	assert.InDelta(t, 0.9, cfg.ThresholdFor("high"), 1e-9)
	assert.InDelta(t, 0.75, cfg.ThresholdFor("unknown"), 1e-9)
}

func TestDefaultQueueConfig(t *testing.T) {
	q := DefaultQueueConfig()

	assert.Equal(t, 10*time.Minute, q.HeartbeatTTL)
	assert.Equal(t, 30*time.Minute, q.NoHeartbeatTTL)
	assert.GreaterOrEqual(t, q.NoHeartbeatTTL, q.HeartbeatTTL)
	assert.Less(t, q.PollIntervalJitter, q.PollInterval)
}

func TestClusterRegistryGetMissing(t *testing.T) {
	reg := NewClusterRegistry(nil)

	_, err := reg.Get("nope")
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrClusterNotFound)
}
