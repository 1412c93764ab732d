package parser

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseToolCalls_WrappedObject(t *testing.T) {
	text := `{"tool_call": {"tool_name": "filesystem_write_file", "parameters": {"path": "/out/a.md", "content": "hi"}}}`

	calls := ParseToolCalls(text)
	require.Len(t, calls, 1)
	assert.Equal(t, "filesystem_write_file", calls[0].ToolName)
	assert.Equal(t, "/out/a.md", calls[0].Parameters["path"])
}

func TestParseToolCalls_BareObject(t *testing.T) {
	text := `{"tool_name": "sem-search", "parameters": {"query": "coffee"}}`

	calls := ParseToolCalls(text)
	require.Len(t, calls, 1)
	assert.Equal(t, "sem-search", calls[0].ToolName)
	assert.Equal(t, "coffee", calls[0].Parameters["query"])
}

func TestParseToolCalls_Array(t *testing.T) {
	text := `[
		{"tool_call": {"tool_name": "local_read_file", "parameters": {"path": "a"}}},
		{"tool_name": "wp_get_posts", "parameters": {}}
	]`

	calls := ParseToolCalls(text)
	require.Len(t, calls, 2)
	assert.Equal(t, "local_read_file", calls[0].ToolName)
	assert.Equal(t, "wp_get_posts", calls[1].ToolName)
}

func TestParseToolCalls_MarkdownFence(t *testing.T) {
	text := "I'll look that up.\n\n```json\n" +
		`{"tool_call": {"tool_name": "n8n_trigger_workflow", "parameters": {"id": "wf-9"}}}` +
		"\n```\n"

	calls := ParseToolCalls(text)
	require.Len(t, calls, 1)
	assert.Equal(t, "n8n_trigger_workflow", calls[0].ToolName)
}

func TestParseToolCalls_FenceWithoutLanguageTag(t *testing.T) {
	text := "```\n{\"tool_name\": \"local_list_dir\", \"parameters\": {\"path\": \".\"}}\n```"

	calls := ParseToolCalls(text)
	require.Len(t, calls, 1)
	assert.Equal(t, "local_list_dir", calls[0].ToolName)
}

func TestParseToolCalls_EmbeddedInProse(t *testing.T) {
	text := `Let me check the file first. {"tool_call": {"tool_name": "local_read_file", "parameters": {"path": "notes.md"}}} Then I'll summarize.`

	calls := ParseToolCalls(text)
	require.Len(t, calls, 1)
	assert.Equal(t, "local_read_file", calls[0].ToolName)
}

func TestParseToolCalls_PlainProseYieldsNone(t *testing.T) {
	assert.Nil(t, ParseToolCalls("Here is the article outline you asked for."))
	assert.Nil(t, ParseToolCalls(""))
	assert.Nil(t, ParseToolCalls("   \n\t"))
}

func TestParseToolCalls_MissingParametersDefaultsToEmptyMap(t *testing.T) {
	calls := ParseToolCalls(`{"tool_name": "local_pwd"}`)
	require.Len(t, calls, 1)
	require.NotNil(t, calls[0].Parameters)
	assert.Empty(t, calls[0].Parameters)
}

func TestParseToolCalls_IgnoresStructuredOutput(t *testing.T) {
	text := `STRUCTURED_OUTPUT: {"title": "Done", "summary": "all good"}`
	assert.Nil(t, ParseToolCalls(text))

	// Tool call before the marker is still honored.
	mixed := `{"tool_name": "sem-search", "parameters": {}}` + "\n" + text
	calls := ParseToolCalls(mixed)
	require.Len(t, calls, 1)
	assert.Equal(t, "sem-search", calls[0].ToolName)
}

func TestParseToolCalls_RejectsNonToolObjects(t *testing.T) {
	assert.Nil(t, ParseToolCalls(`{"title": "Coffee trends", "summary": "..."}`))
	assert.Nil(t, ParseToolCalls(`{"tool_name": "", "parameters": {}}`))
	assert.Nil(t, ParseToolCalls(`{"tool_name": 42}`))
}

func TestParseStructuredOutput_Prefix(t *testing.T) {
	text := `All phases complete.

STRUCTURED_OUTPUT: {"title": "Cold Brew at Home", "summary": "A guide.", "sections": ["intro", "gear"]}`

	out := ParseStructuredOutput(text)
	require.NotNil(t, out)
	assert.Equal(t, "Cold Brew at Home", out["title"])
}

func TestParseStructuredOutput_PrefixInsideFence(t *testing.T) {
	text := "STRUCTURED_OUTPUT:\n```json\n{\"title\": \"X\", \"content\": \"body\"}\n```"

	out := ParseStructuredOutput(text)
	require.NotNil(t, out)
	assert.Equal(t, "X", out["title"])
}

func TestParseStructuredOutput_EmbeddedFallback(t *testing.T) {
	text := `Here's the final deliverable: {"title": "Launch plan", "deliverables": ["post", "email"]}`

	out := ParseStructuredOutput(text)
	require.NotNil(t, out)
	assert.Equal(t, "Launch plan", out["title"])
}

func TestParseStructuredOutput_ToolCallIsNotADeliverable(t *testing.T) {
	text := `{"tool_call": {"tool_name": "sem-search", "parameters": {"query": "x"}}}`
	assert.Nil(t, ParseStructuredOutput(text))

	bare := `{"tool_name": "sem-search", "parameters": {"status": "irrelevant"}}`
	assert.Nil(t, ParseStructuredOutput(bare))
}

func TestParseStructuredOutput_NoOutput(t *testing.T) {
	assert.Nil(t, ParseStructuredOutput("Still working on phase 2."))
	assert.Nil(t, ParseStructuredOutput(`{"random": 1, "keys": 2}`))
	assert.Nil(t, ParseStructuredOutput("STRUCTURED_OUTPUT: not json at all"))
}

func TestFormatToolResultsTurn(t *testing.T) {
	turn := FormatToolResultsTurn([]ToolOutcome{
		{ToolName: "sem-search", Success: true, Result: map[string]any{"hits": 3}},
		{ToolName: "wp_publish_post", Success: false, Error: "hub returned 502"},
	})

	assert.Contains(t, turn, "sem-search: success")
	assert.Contains(t, turn, `{"hits":3}`)
	assert.Contains(t, turn, "wp_publish_post: failed")
	assert.Contains(t, turn, "hub returned 502")
}

func TestFormatToolResultsTurn_TruncatesLongResults(t *testing.T) {
	big := strings.Repeat("x", 2000)
	turn := FormatToolResultsTurn([]ToolOutcome{
		{ToolName: "local_read_file", Success: true, Result: big},
	})

	// 500 chars of excerpt plus the marker; never the full payload.
	assert.NotContains(t, turn, big)
	assert.Contains(t, turn, "...")
}

func TestTruncate(t *testing.T) {
	assert.Equal(t, "abc", Truncate("abc", 10))
	assert.Equal(t, "ab...", Truncate("abcdef", 2))
	assert.Equal(t, "abcdef", Truncate("abcdef", 0))
}

func TestScanBalancedJSON_RespectsStrings(t *testing.T) {
	text := `prefix {"a": "close } brace in string", "b": [1, 2]} suffix`
	spans := scanBalancedJSON(text)
	require.Len(t, spans, 1)
	assert.Equal(t, `{"a": "close } brace in string", "b": [1, 2]}`, spans[0])
}
