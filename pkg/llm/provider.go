// Package llm abstracts the model backend behind a small Provider interface.
// The production implementation talks to the sidecar over gRPC.
package llm

import "context"

// Message is one conversation turn sent to the model.
type Message struct {
	Role    string
	Content string
}

// Provider produces one assistant reply for a conversation.
type Provider interface {
	Chat(ctx context.Context, executionID string, messages []Message) (string, error)
}
