package llm

import (
	"context"
	"fmt"
	"sync"
)

// ScriptedProvider replays canned replies in order. Used by tests and by
// local development without a sidecar.
type ScriptedProvider struct {
	mu      sync.Mutex
	replies []string
	calls   [][]Message
}

// NewScriptedProvider returns a provider that answers with the given replies.
func NewScriptedProvider(replies ...string) *ScriptedProvider {
	return &ScriptedProvider{replies: replies}
}

// Chat pops the next scripted reply. Errors when the script is exhausted.
func (p *ScriptedProvider) Chat(_ context.Context, _ string, messages []Message) (string, error) {
	p.mu.Lock()
	defer p.mu.Unlock()

	copied := make([]Message, len(messages))
	copy(copied, messages)
	p.calls = append(p.calls, copied)

	if len(p.replies) == 0 {
		return "", fmt.Errorf("scripted provider exhausted after %d calls", len(p.calls))
	}
	reply := p.replies[0]
	p.replies = p.replies[1:]
	return reply, nil
}

// Calls returns the message histories of every Chat call so far.
func (p *ScriptedProvider) Calls() [][]Message {
	p.mu.Lock()
	defer p.mu.Unlock()
	out := make([][]Message, len(p.calls))
	copy(out, p.calls)
	return out
}

// CallCount reports how many Chat calls were made.
func (p *ScriptedProvider) CallCount() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return len(p.calls)
}
