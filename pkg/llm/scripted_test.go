package llm

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestScriptedProvider_ReplaysInOrder(t *testing.T) {
	p := NewScriptedProvider("first", "second")
	ctx := context.Background()

	reply, err := p.Chat(ctx, "exec-1", []Message{{Role: "user", Content: "hi"}})
	require.NoError(t, err)
	assert.Equal(t, "first", reply)

	reply, err = p.Chat(ctx, "exec-1", nil)
	require.NoError(t, err)
	assert.Equal(t, "second", reply)

	_, err = p.Chat(ctx, "exec-1", nil)
	assert.Error(t, err)
	assert.Equal(t, 3, p.CallCount())
}

func TestScriptedProvider_RecordsCallHistories(t *testing.T) {
	p := NewScriptedProvider("ok")
	msgs := []Message{{Role: "system", Content: "sys"}, {Role: "user", Content: "go"}}

	_, err := p.Chat(context.Background(), "exec-1", msgs)
	require.NoError(t, err)

	calls := p.Calls()
	require.Len(t, calls, 1)
	assert.Equal(t, "go", calls[0][1].Content)
}
