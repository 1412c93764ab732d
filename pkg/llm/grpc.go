package llm

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"strconv"

	llmv1 "github.com/cortexops/playbookd/proto"
	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"
)

// GRPCProvider implements Provider by calling the LLM sidecar over gRPC.
type GRPCProvider struct {
	conn        *grpc.ClientConn
	client      llmv1.LLMServiceClient
	model       string
	temperature *float32
	maxTokens   *int32
	logger      *slog.Logger
}

// NewGRPCProvider connects to the sidecar. Model selection and sampling
// parameters come from the environment so they can change without a rebuild.
func NewGRPCProvider(addr string) (*GRPCProvider, error) {
	conn, err := grpc.NewClient(addr, grpc.WithTransportCredentials(insecure.NewCredentials()))
	if err != nil {
		return nil, fmt.Errorf("failed to connect to LLM sidecar at %s: %w", addr, err)
	}

	model := os.Getenv("LLM_MODEL")
	if model == "" {
		model = "gemini-2.0-flash"
	}

	var temperature *float32
	if s := os.Getenv("LLM_TEMPERATURE"); s != "" {
		if v, err := strconv.ParseFloat(s, 32); err == nil {
			t := float32(v)
			temperature = &t
		}
	}

	var maxTokens *int32
	if s := os.Getenv("LLM_MAX_TOKENS"); s != "" {
		if v, err := strconv.ParseInt(s, 10, 32); err == nil {
			m := int32(v)
			maxTokens = &m
		}
	}

	logger := slog.Default().With("component", "llm")
	logger.Info("LLM provider configured", "addr", addr, "model", model)

	return &GRPCProvider{
		conn:        conn,
		client:      llmv1.NewLLMServiceClient(conn),
		model:       model,
		temperature: temperature,
		maxTokens:   maxTokens,
		logger:      logger,
	}, nil
}

// Chat sends the full conversation and returns the assistant reply.
func (p *GRPCProvider) Chat(ctx context.Context, executionID string, messages []Message) (string, error) {
	req := &llmv1.ChatRequest{
		ExecutionId: executionID,
		Messages:    make([]*llmv1.ChatMessage, len(messages)),
		Model:       p.model,
		Temperature: p.temperature,
		MaxTokens:   p.maxTokens,
	}
	for i, m := range messages {
		req.Messages[i] = &llmv1.ChatMessage{Role: m.Role, Content: m.Content}
	}

	resp, err := p.client.Chat(ctx, req)
	if err != nil {
		return "", fmt.Errorf("LLM chat call failed: %w", err)
	}
	if usage := resp.GetUsage(); usage != nil {
		p.logger.Debug("LLM usage",
			"execution_id", executionID,
			"input_tokens", usage.GetInputTokens(),
			"output_tokens", usage.GetOutputTokens())
	}
	return resp.GetContent(), nil
}

// Close releases the gRPC connection.
func (p *GRPCProvider) Close() error {
	return p.conn.Close()
}
