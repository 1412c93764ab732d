package runner

import (
	"fmt"
	"strings"

	"github.com/cortexops/playbookd/pkg/playbook"
)

// structuredOutputInstruction teaches the model the completion protocol. The
// STRUCTURED_OUTPUT prefix is matched verbatim by the parser.
const structuredOutputInstruction = `When every phase of the playbook is complete, finish your reply with a line
starting with STRUCTURED_OUTPUT: followed by a single JSON object describing
the deliverable. Until then, either answer in prose or request tools with
{"tool_call": {"tool_name": "<name>", "parameters": {...}}}. You may request
several tools at once by sending a JSON array of such objects.`

// buildSystemPrompt assembles the system turn that seeds a new conversation:
// SOP body, variant overrides, user context, locale instruction, the
// structured-output protocol and the frozen tool catalog.
func buildSystemPrompt(pb *playbook.Playbook, userContext, locale string, skipSteps []int, extraChecklist []string, toolCatalog string) string {
	var sb strings.Builder

	sb.WriteString(fmt.Sprintf("You are executing the %q playbook.\n\n", pb.Title))
	sb.WriteString(pb.SOP)
	sb.WriteString("\n")

	if len(skipSteps) > 0 {
		indices := make([]string, len(skipSteps))
		for i, n := range skipSteps {
			indices[i] = fmt.Sprintf("%d", n)
		}
		sb.WriteString(fmt.Sprintf("\nSkip the following steps entirely: %s.\n",
			strings.Join(indices, ", ")))
	}
	if len(extraChecklist) > 0 {
		sb.WriteString("\nAdditional checklist items to cover:\n")
		for _, item := range extraChecklist {
			sb.WriteString(fmt.Sprintf("- %s\n", item))
		}
	}
	if userContext != "" {
		sb.WriteString(fmt.Sprintf("\nContext about the user:\n%s\n", userContext))
	}
	if locale != "" {
		sb.WriteString(fmt.Sprintf("\nAlways respond in the %s locale.\n", locale))
	}

	sb.WriteString("\n")
	sb.WriteString(structuredOutputInstruction)

	if toolCatalog != "" {
		sb.WriteString("\n\nAvailable tools:\n")
		sb.WriteString(toolCatalog)
	}
	return sb.String()
}
