// Code generated by ent, DO NOT EDIT.

package predicate

import (
	"entgo.io/ent/dialect/sql"
)

// Artifact is the predicate function for artifact builders.
type Artifact func(*sql.Selector)

// MindEvent is the predicate function for mindevent builders.
type MindEvent func(*sql.Selector)

// PlaybookExecution is the predicate function for playbookexecution builders.
type PlaybookExecution func(*sql.Selector)

// RunnerHeartbeat is the predicate function for runnerheartbeat builders.
type RunnerHeartbeat func(*sql.Selector)

// StageResult is the predicate function for stageresult builders.
type StageResult func(*sql.Selector)

// SuggestionPreference is the predicate function for suggestionpreference builders.
type SuggestionPreference func(*sql.Selector)

// Task is the predicate function for task builders.
type Task func(*sql.Selector)

// ToolCall is the predicate function for toolcall builders.
type ToolCall func(*sql.Selector)

// Workspace is the predicate function for workspace builders.
type Workspace func(*sql.Selector)
