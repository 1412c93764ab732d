package conversation

import (
	"encoding/json"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestManager() *Manager {
	m := New(Seed{
		PlaybookCode: "seo_article",
		PrincipalID:  "principal-1",
		WorkspaceID:  "ws-1",
		Locale:       "en-US",
		SystemPrompt: "You are running the SEO article playbook.",
		SkipSteps:    []int{3},
		ExtraChecklist: []string{
			"verify all links",
		},
		ToolCatalog: "sem-search, filesystem_write_file",
	})
	m.Append(RoleUser, "begin")
	m.Append(RoleAssistant, "Step 1 done.")
	m.AdvanceStep()
	m.SetStructuredOutput("keywords", []any{"coffee", "cold brew"})
	return m
}

func TestManager_SerializeRoundTrip(t *testing.T) {
	m := newTestManager()

	state, err := m.Serialize()
	require.NoError(t, err)

	restored, err := Deserialize(state)
	require.NoError(t, err)

	again, err := restored.Serialize()
	require.NoError(t, err)

	// Lossless up to JSON normalization
	want, _ := json.Marshal(state)
	got, _ := json.Marshal(again)
	assert.JSONEq(t, string(want), string(got))

	assert.Equal(t, "seo_article", restored.PlaybookCode)
	assert.Equal(t, "en-US", restored.Locale)
	assert.Equal(t, 1, restored.CurrentStep)
	assert.Equal(t, []int{3}, restored.SkipSteps)
	require.Len(t, restored.Turns, 3)
	assert.Equal(t, RoleSystem, restored.Turns[0].Role)
	assert.Equal(t, "Step 1 done.", restored.LastAssistant())
}

func TestManager_DeserializeEmptyState(t *testing.T) {
	m, err := Deserialize(map[string]any{})
	require.NoError(t, err)
	assert.NotNil(t, m.Turns)
	assert.NotNil(t, m.StructuredOutputs)
	assert.Equal(t, 0, m.CurrentStep)
}

func TestManager_MessagesReturnsCopy(t *testing.T) {
	m := newTestManager()

	msgs := m.Messages()
	msgs[0].Content = "mutated"

	assert.Equal(t, "You are running the SEO article playbook.", m.Turns[0].Content)
}

func TestManager_LastAssistantEmptyWhenNone(t *testing.T) {
	m := New(Seed{SystemPrompt: "sys"})
	assert.Equal(t, "", m.LastAssistant())
}

func TestRegistry_PutGetEvict(t *testing.T) {
	r := NewRegistry()

	_, ok := r.Get("exec-1")
	assert.False(t, ok)

	r.Put("exec-1", newTestManager())
	got, ok := r.Get("exec-1")
	require.True(t, ok)
	assert.Equal(t, "seo_article", got.PlaybookCode)
	assert.Equal(t, 1, r.Len())

	r.Evict("exec-1")
	_, ok = r.Get("exec-1")
	assert.False(t, ok)
	assert.Equal(t, 0, r.Len())
}

func TestRegistry_PerExecutionSerialization(t *testing.T) {
	r := NewRegistry()
	r.Put("exec-1", New(Seed{}))

	var order []int
	var mu sync.Mutex
	var wg sync.WaitGroup

	unlock := r.Lock("exec-1")
	wg.Add(1)
	go func() {
		defer wg.Done()
		u := r.Lock("exec-1")
		defer u()
		mu.Lock()
		order = append(order, 2)
		mu.Unlock()
	}()

	mu.Lock()
	order = append(order, 1)
	mu.Unlock()
	unlock()
	wg.Wait()

	assert.Equal(t, []int{1, 2}, order)
}

func TestRegistry_DifferentExecutionsDoNotBlock(t *testing.T) {
	r := NewRegistry()

	unlock := r.Lock("exec-1")
	defer unlock()

	done := make(chan struct{})
	go func() {
		u := r.Lock("exec-2")
		u()
		close(done)
	}()

	<-done
}
