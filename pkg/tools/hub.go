package tools

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/cortexops/playbookd/pkg/config"
	"github.com/cortexops/playbookd/pkg/version"
)

const hubDefaultTimeout = 120 * time.Second

// HubAdapter forwards tool calls to a remote hub over HTTP. Hubs expose
// POST /tools/{name} taking the parameter map and returning a JSON result.
type HubAdapter struct {
	name    string
	baseURL string
	client  *http.Client
}

// NewHubAdapter returns an adapter for an http_hub cluster.
func NewHubAdapter(name string, cfg *config.ClusterConfig) *HubAdapter {
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = hubDefaultTimeout
	}
	return &HubAdapter{
		name:    name,
		baseURL: cfg.BaseURL,
		client:  &http.Client{Timeout: timeout},
	}
}

// Execute posts the call to the hub and decodes the JSON response.
func (a *HubAdapter) Execute(ctx context.Context, toolName string, params map[string]any) (any, error) {
	body, err := json.Marshal(params)
	if err != nil {
		return nil, fmt.Errorf("marshal parameters for %s: %w", toolName, err)
	}

	url := fmt.Sprintf("%s/tools/%s", a.baseURL, toolName)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("build request for %s: %w", toolName, err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("User-Agent", version.Full())

	resp, err := a.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("hub %s unreachable: %w", a.name, err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(io.LimitReader(resp.Body, 1<<20))
	if err != nil {
		return nil, fmt.Errorf("read hub %s response: %w", a.name, err)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, fmt.Errorf("hub %s returned %d for %s: %s",
			a.name, resp.StatusCode, toolName, string(data))
	}

	var result any
	if err := json.Unmarshal(data, &result); err != nil {
		return map[string]any{"output": string(data)}, nil
	}
	return result, nil
}

// Catalog returns "" since hubs do not expose tool enumeration.
func (a *HubAdapter) Catalog(context.Context) (string, error) {
	return "", nil
}

// Close is a no-op for HTTP hubs.
func (a *HubAdapter) Close() error {
	return nil
}
