// Package parser extracts tool-call directives and structured output from
// raw LLM replies. The functions are pure and side-effect free so the step
// driver can call them on any assistant turn.
package parser

import (
	"encoding/json"
	"regexp"
	"strings"
)

// StructuredOutputPrefix marks the terminal structured payload of a playbook run.
const StructuredOutputPrefix = "STRUCTURED_OUTPUT:"

// ToolCall is a single tool invocation directive parsed from an assistant reply.
type ToolCall struct {
	ToolName   string         `json:"tool_name"`
	Parameters map[string]any `json:"parameters"`
}

// Fenced code blocks, with or without a language tag. Models wrap JSON in
// ```json fences often enough that this is the first thing we look for.
var fencePattern = regexp.MustCompile("(?s)```(?:json)?\\s*(.*?)```")

// ParseToolCalls parses an assistant reply into zero or more tool calls.
// The parser is intentionally forgiving and accepts several shapes:
//
//	{"tool_call": {"tool_name": "x", "parameters": {...}}}
//	{"tool_name": "x", "parameters": {...}}
//	[either of the above, repeated]
//
// and any of those wrapped in a markdown code fence. Content after a
// STRUCTURED_OUTPUT: marker is never treated as a tool call.
func ParseToolCalls(text string) []ToolCall {
	if strings.TrimSpace(text) == "" {
		return nil
	}

	// Everything after the structured-output marker belongs to
	// ParseStructuredOutput, not to the tool loop.
	if idx := strings.Index(text, StructuredOutputPrefix); idx != -1 {
		text = text[:idx]
	}

	var calls []ToolCall
	for _, candidate := range jsonCandidates(text) {
		var value any
		if err := json.Unmarshal([]byte(candidate), &value); err != nil {
			continue
		}
		calls = append(calls, collectToolCalls(value)...)
		if len(calls) > 0 {
			// First decodable candidate wins; later candidates are usually
			// the same directive echoed in prose.
			break
		}
	}
	return calls
}

// collectToolCalls walks a decoded JSON value and gathers every tool call in it.
func collectToolCalls(value any) []ToolCall {
	switch v := value.(type) {
	case []any:
		var calls []ToolCall
		for _, item := range v {
			calls = append(calls, collectToolCalls(item)...)
		}
		return calls
	case map[string]any:
		if inner, ok := v["tool_call"].(map[string]any); ok {
			if call, ok := toolCallFromMap(inner); ok {
				return []ToolCall{call}
			}
			return nil
		}
		if call, ok := toolCallFromMap(v); ok {
			return []ToolCall{call}
		}
	}
	return nil
}

// toolCallFromMap converts a bare {tool_name, parameters} object.
func toolCallFromMap(m map[string]any) (ToolCall, bool) {
	name, ok := m["tool_name"].(string)
	if !ok || strings.TrimSpace(name) == "" {
		return ToolCall{}, false
	}
	call := ToolCall{ToolName: strings.TrimSpace(name)}
	if params, ok := m["parameters"].(map[string]any); ok {
		call.Parameters = params
	} else {
		call.Parameters = map[string]any{}
	}
	return call, true
}

// ParseStructuredOutput extracts the terminal structured payload from an
// assistant reply. It first looks for the literal STRUCTURED_OUTPUT: prefix
// followed by a JSON object; failing that it scans for any embedded JSON
// object whose top-level keys look like a deliverable. Returns nil when the
// reply carries no structured output.
func ParseStructuredOutput(text string) map[string]any {
	if idx := strings.Index(text, StructuredOutputPrefix); idx != -1 {
		after := text[idx+len(StructuredOutputPrefix):]
		if obj := firstJSONObject(after); obj != nil {
			return obj
		}
	}

	// Fallback: an embedded object that reads like a finished deliverable.
	for _, candidate := range jsonCandidates(text) {
		var obj map[string]any
		if err := json.Unmarshal([]byte(candidate), &obj); err != nil {
			continue
		}
		if looksLikeDeliverable(obj) {
			return obj
		}
	}
	return nil
}

// deliverableKeys are top-level keys that mark an object as a finished
// structured deliverable rather than an incidental JSON fragment.
var deliverableKeys = []string{
	"title", "summary", "content", "sections", "outline",
	"artifacts", "deliverables", "result", "status",
}

func looksLikeDeliverable(obj map[string]any) bool {
	if len(obj) == 0 {
		return false
	}
	// A tool-call directive is never a deliverable.
	if _, ok := obj["tool_call"]; ok {
		return false
	}
	if _, ok := obj["tool_name"]; ok {
		return false
	}
	for _, key := range deliverableKeys {
		if _, ok := obj[key]; ok {
			return true
		}
	}
	return false
}

// jsonCandidates returns the substrings of text worth attempting to decode,
// in priority order: fenced blocks first, then the trimmed text itself, then
// balanced objects and arrays found by scanning.
func jsonCandidates(text string) []string {
	var candidates []string

	for _, match := range fencePattern.FindAllStringSubmatch(text, -1) {
		if body := strings.TrimSpace(match[1]); body != "" {
			candidates = append(candidates, body)
		}
	}

	trimmed := strings.TrimSpace(text)
	if strings.HasPrefix(trimmed, "{") || strings.HasPrefix(trimmed, "[") {
		candidates = append(candidates, trimmed)
	}

	candidates = append(candidates, scanBalancedJSON(text)...)
	return candidates
}

// firstJSONObject decodes the first balanced JSON object found in text.
func firstJSONObject(text string) map[string]any {
	for _, candidate := range scanBalancedJSON(text) {
		if !strings.HasPrefix(candidate, "{") {
			continue
		}
		var obj map[string]any
		if err := json.Unmarshal([]byte(candidate), &obj); err == nil {
			return obj
		}
	}
	return nil
}

// scanBalancedJSON finds top-level balanced {...} and [...] spans in text,
// respecting string literals and escapes. It does not validate the JSON;
// callers attempt to decode each span.
func scanBalancedJSON(text string) []string {
	var spans []string
	depth := 0
	start := -1
	inString := false
	escaped := false

	for i, r := range text {
		if inString {
			switch {
			case escaped:
				escaped = false
			case r == '\\':
				escaped = true
			case r == '"':
				inString = false
			}
			continue
		}
		switch r {
		case '"':
			if depth > 0 {
				inString = true
			}
		case '{', '[':
			if depth == 0 {
				start = i
			}
			depth++
		case '}', ']':
			if depth > 0 {
				depth--
				if depth == 0 && start != -1 {
					spans = append(spans, text[start:i+1])
					start = -1
				}
			}
		}
	}
	return spans
}
