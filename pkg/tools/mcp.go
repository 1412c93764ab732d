package tools

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/exec"
	"strings"
	"sync"
	"time"

	mcpsdk "github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/cortexops/playbookd/pkg/config"
	"github.com/cortexops/playbookd/pkg/version"
)

const (
	mcpInitTimeout      = 30 * time.Second
	mcpOperationTimeout = 60 * time.Second
)

// MCPAdapter runs tools on a local MCP server spawned over stdio.
// The session is created lazily on first use and recreated after failures.
type MCPAdapter struct {
	cfg    *config.ClusterConfig
	logger *slog.Logger

	mu      sync.Mutex
	session *mcpsdk.ClientSession

	catalogOnce sync.Once
	catalog     string
}

// NewMCPAdapter returns an adapter for a local_mcp cluster.
func NewMCPAdapter(cfg *config.ClusterConfig) *MCPAdapter {
	return &MCPAdapter{
		cfg:    cfg,
		logger: slog.Default().With("component", "mcp"),
	}
}

// Execute calls a tool on the MCP server. Transport failures invalidate the
// session so the next call reconnects.
func (a *MCPAdapter) Execute(ctx context.Context, toolName string, params map[string]any) (any, error) {
	session, err := a.ensureSession(ctx)
	if err != nil {
		return nil, err
	}

	opCtx, cancel := context.WithTimeout(ctx, a.timeout())
	defer cancel()

	result, err := session.CallTool(opCtx, &mcpsdk.CallToolParams{
		Name:      localToolName(toolName),
		Arguments: params,
	})
	if err != nil {
		a.invalidateSession()
		return nil, fmt.Errorf("MCP tool %s failed: %w", toolName, err)
	}

	text := extractTextContent(result)
	if result.IsError {
		return nil, fmt.Errorf("MCP tool %s returned an error: %s", toolName, text)
	}
	return decodeToolOutput(text), nil
}

// Catalog lists the server's tools as "name: description" lines. The result
// is frozen after the first successful call.
func (a *MCPAdapter) Catalog(ctx context.Context) (string, error) {
	var outerErr error
	a.catalogOnce.Do(func() {
		session, err := a.ensureSession(ctx)
		if err != nil {
			outerErr = err
			return
		}

		opCtx, cancel := context.WithTimeout(ctx, mcpOperationTimeout)
		defer cancel()

		result, err := session.ListTools(opCtx, nil)
		if err != nil {
			outerErr = fmt.Errorf("list MCP tools: %w", err)
			return
		}

		var sb strings.Builder
		for _, tool := range result.Tools {
			sb.WriteString(fmt.Sprintf("- %s: %s\n", tool.Name, tool.Description))
		}
		a.catalog = sb.String()
	})
	return a.catalog, outerErr
}

// Close shuts down the session and its child process.
func (a *MCPAdapter) Close() error {
	a.mu.Lock()
	defer a.mu.Unlock()
	if a.session == nil {
		return nil
	}
	err := a.session.Close()
	a.session = nil
	return err
}

func (a *MCPAdapter) timeout() time.Duration {
	if a.cfg.Timeout > 0 {
		return a.cfg.Timeout
	}
	return mcpOperationTimeout
}

func (a *MCPAdapter) ensureSession(ctx context.Context) (*mcpsdk.ClientSession, error) {
	a.mu.Lock()
	defer a.mu.Unlock()
	if a.session != nil {
		return a.session, nil
	}

	if a.cfg.Command == "" {
		return nil, fmt.Errorf("local_mcp cluster has no command configured")
	}

	cmd := exec.Command(a.cfg.Command, a.cfg.Args...)
	env := os.Environ()
	for k, v := range a.cfg.Env {
		env = append(env, fmt.Sprintf("%s=%s", k, v))
	}
	cmd.Env = env

	transport := &mcpsdk.CommandTransport{Command: cmd}

	initCtx, cancel := context.WithTimeout(ctx, mcpInitTimeout)
	defer cancel()

	client := mcpsdk.NewClient(&mcpsdk.Implementation{
		Name:    version.AppName,
		Version: version.GitCommit,
	}, nil)

	session, err := client.Connect(initCtx, transport, nil)
	if err != nil {
		if closer, ok := mcpsdk.Transport(transport).(io.Closer); ok {
			_ = closer.Close()
		}
		return nil, fmt.Errorf("failed to connect to MCP server: %w", err)
	}

	a.logger.Info("MCP server connected", "command", a.cfg.Command)
	a.session = session
	return session, nil
}

func (a *MCPAdapter) invalidateSession() {
	a.mu.Lock()
	if a.session != nil {
		_ = a.session.Close()
		a.session = nil
	}
	a.mu.Unlock()
}

// localToolName strips the cluster prefix so "local_read_file" resolves to
// the server's "read_file".
func localToolName(toolFQN string) string {
	return strings.TrimPrefix(toolFQN, "local_")
}

// extractTextContent concatenates text items from an MCP result. Non-text
// content is skipped.
func extractTextContent(result *mcpsdk.CallToolResult) string {
	var parts []string
	for _, c := range result.Content {
		if tc, ok := c.(*mcpsdk.TextContent); ok {
			parts = append(parts, tc.Text)
		}
	}
	return strings.Join(parts, "\n")
}

// decodeToolOutput returns the JSON decoding of text when possible, otherwise
// wraps the raw text.
func decodeToolOutput(text string) any {
	trimmed := strings.TrimSpace(text)
	if strings.HasPrefix(trimmed, "{") || strings.HasPrefix(trimmed, "[") {
		var v any
		if err := json.Unmarshal([]byte(trimmed), &v); err == nil {
			return v
		}
	}
	return map[string]any{"output": text}
}
