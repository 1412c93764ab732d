package parser

import (
	"encoding/json"
	"fmt"
	"strings"
)

// maxExcerptLen bounds the JSON excerpt included per tool result in the
// system turn fed back to the LLM.
const maxExcerptLen = 500

// ToolOutcome is the per-call result record the step driver produces for each
// dispatched tool call. Exactly one of Result or Error is meaningful.
type ToolOutcome struct {
	ToolName string
	Result   any
	Error    string
	Success  bool
}

// FormatToolResultsTurn renders the outcomes of one inner-loop iteration as a
// system turn. Each tool gets a success/failure line with a truncated JSON
// excerpt so the LLM can decide whether to retry, continue, or conclude.
func FormatToolResultsTurn(outcomes []ToolOutcome) string {
	if len(outcomes) == 0 {
		return "Tool execution results: none."
	}

	var sb strings.Builder
	sb.WriteString("Tool execution results:\n")
	for _, o := range outcomes {
		if o.Success {
			sb.WriteString(fmt.Sprintf("- %s: success. Result: %s\n",
				o.ToolName, ExcerptJSON(o.Result, maxExcerptLen)))
		} else {
			sb.WriteString(fmt.Sprintf("- %s: failed. Error: %s\n",
				o.ToolName, Truncate(o.Error, maxExcerptLen)))
		}
	}
	sb.WriteString("Use these results to continue the playbook. " +
		"Do not repeat a call that already succeeded.")
	return sb.String()
}

// ExcerptJSON marshals a value and truncates the encoding to max characters.
func ExcerptJSON(v any, max int) string {
	data, err := json.Marshal(v)
	if err != nil {
		return Truncate(fmt.Sprintf("%v", v), max)
	}
	return Truncate(string(data), max)
}

// Truncate cuts s to max characters, appending an ellipsis marker when cut.
func Truncate(s string, max int) string {
	if max <= 0 || len(s) <= max {
		return s
	}
	return s[:max] + "..."
}
