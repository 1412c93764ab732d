// Code generated by ent, DO NOT EDIT.

package ent

import (
	"time"

	"github.com/cortexops/playbookd/ent/artifact"
	"github.com/cortexops/playbookd/ent/mindevent"
	"github.com/cortexops/playbookd/ent/playbookexecution"
	"github.com/cortexops/playbookd/ent/runnerheartbeat"
	"github.com/cortexops/playbookd/ent/schema"
	"github.com/cortexops/playbookd/ent/stageresult"
	"github.com/cortexops/playbookd/ent/suggestionpreference"
	"github.com/cortexops/playbookd/ent/task"
	"github.com/cortexops/playbookd/ent/toolcall"
	"github.com/cortexops/playbookd/ent/workspace"
)

// The init function reads all schema descriptors with runtime code
// (default values, validators, hooks and policies) and stitches it
// to their package variables.
func init() {
	artifactFields := schema.Artifact{}.Fields()
	_ = artifactFields
	// artifactDescVersion is the schema descriptor for version field.
	artifactDescVersion := artifactFields[13].Descriptor()
	// artifact.DefaultVersion holds the default value on creation for the version field.
	artifact.DefaultVersion = artifactDescVersion.Default.(int)
	// artifactDescIsLatest is the schema descriptor for is_latest field.
	artifactDescIsLatest := artifactFields[14].Descriptor()
	// artifact.DefaultIsLatest holds the default value on creation for the is_latest field.
	artifact.DefaultIsLatest = artifactDescIsLatest.Default.(bool)
	// artifactDescCreatedAt is the schema descriptor for created_at field.
	artifactDescCreatedAt := artifactFields[16].Descriptor()
	// artifact.DefaultCreatedAt holds the default value on creation for the created_at field.
	artifact.DefaultCreatedAt = artifactDescCreatedAt.Default.(func() time.Time)
	// artifactDescUpdatedAt is the schema descriptor for updated_at field.
	artifactDescUpdatedAt := artifactFields[17].Descriptor()
	// artifact.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	artifact.DefaultUpdatedAt = artifactDescUpdatedAt.Default.(func() time.Time)
	mindeventFields := schema.MindEvent{}.Fields()
	_ = mindeventFields
	// mindeventDescTimestamp is the schema descriptor for timestamp field.
	mindeventDescTimestamp := mindeventFields[9].Descriptor()
	// mindevent.DefaultTimestamp holds the default value on creation for the timestamp field.
	mindevent.DefaultTimestamp = mindeventDescTimestamp.Default.(func() time.Time)
	playbookexecutionFields := schema.PlaybookExecution{}.Fields()
	_ = playbookexecutionFields
	// playbookexecutionDescStatus is the schema descriptor for status field.
	playbookexecutionDescStatus := playbookexecutionFields[3].Descriptor()
	// playbookexecution.DefaultStatus holds the default value on creation for the status field.
	playbookexecution.DefaultStatus = playbookexecutionDescStatus.Default.(string)
	// playbookexecutionDescSupportsResume is the schema descriptor for supports_resume field.
	playbookexecutionDescSupportsResume := playbookexecutionFields[10].Descriptor()
	// playbookexecution.DefaultSupportsResume holds the default value on creation for the supports_resume field.
	playbookexecution.DefaultSupportsResume = playbookexecutionDescSupportsResume.Default.(bool)
	// playbookexecutionDescCreatedAt is the schema descriptor for created_at field.
	playbookexecutionDescCreatedAt := playbookexecutionFields[11].Descriptor()
	// playbookexecution.DefaultCreatedAt holds the default value on creation for the created_at field.
	playbookexecution.DefaultCreatedAt = playbookexecutionDescCreatedAt.Default.(func() time.Time)
	// playbookexecutionDescUpdatedAt is the schema descriptor for updated_at field.
	playbookexecutionDescUpdatedAt := playbookexecutionFields[12].Descriptor()
	// playbookexecution.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	playbookexecution.DefaultUpdatedAt = playbookexecutionDescUpdatedAt.Default.(func() time.Time)
	runnerheartbeatFields := schema.RunnerHeartbeat{}.Fields()
	_ = runnerheartbeatFields
	// runnerheartbeatDescHeartbeatAt is the schema descriptor for heartbeat_at field.
	runnerheartbeatDescHeartbeatAt := runnerheartbeatFields[1].Descriptor()
	// runnerheartbeat.DefaultHeartbeatAt holds the default value on creation for the heartbeat_at field.
	runnerheartbeat.DefaultHeartbeatAt = runnerheartbeatDescHeartbeatAt.Default.(func() time.Time)
	stageresultFields := schema.StageResult{}.Fields()
	_ = stageresultFields
	// stageresultDescRequiresReview is the schema descriptor for requires_review field.
	stageresultDescRequiresReview := stageresultFields[7].Descriptor()
	// stageresult.DefaultRequiresReview holds the default value on creation for the requires_review field.
	stageresult.DefaultRequiresReview = stageresultDescRequiresReview.Default.(bool)
	// stageresultDescCreatedAt is the schema descriptor for created_at field.
	stageresultDescCreatedAt := stageresultFields[10].Descriptor()
	// stageresult.DefaultCreatedAt holds the default value on creation for the created_at field.
	stageresult.DefaultCreatedAt = stageresultDescCreatedAt.Default.(func() time.Time)
	suggestionpreferenceFields := schema.SuggestionPreference{}.Fields()
	_ = suggestionpreferenceFields
	// suggestionpreferenceDescAutoSuggestEnabled is the schema descriptor for auto_suggest_enabled field.
	suggestionpreferenceDescAutoSuggestEnabled := suggestionpreferenceFields[5].Descriptor()
	// suggestionpreference.DefaultAutoSuggestEnabled holds the default value on creation for the auto_suggest_enabled field.
	suggestionpreference.DefaultAutoSuggestEnabled = suggestionpreferenceDescAutoSuggestEnabled.Default.(bool)
	// suggestionpreferenceDescUpdatedAt is the schema descriptor for updated_at field.
	suggestionpreferenceDescUpdatedAt := suggestionpreferenceFields[6].Descriptor()
	// suggestionpreference.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	suggestionpreference.DefaultUpdatedAt = suggestionpreferenceDescUpdatedAt.Default.(func() time.Time)
	taskFields := schema.Task{}.Fields()
	_ = taskFields
	// taskDescCreatedAt is the schema descriptor for created_at field.
	taskDescCreatedAt := taskFields[11].Descriptor()
	// task.DefaultCreatedAt holds the default value on creation for the created_at field.
	task.DefaultCreatedAt = taskDescCreatedAt.Default.(func() time.Time)
	toolcallFields := schema.ToolCall{}.Fields()
	_ = toolcallFields
	// toolcallDescCreatedAt is the schema descriptor for created_at field.
	toolcallDescCreatedAt := toolcallFields[12].Descriptor()
	// toolcall.DefaultCreatedAt holds the default value on creation for the created_at field.
	toolcall.DefaultCreatedAt = toolcallDescCreatedAt.Default.(func() time.Time)
	workspaceFields := schema.Workspace{}.Fields()
	_ = workspaceFields
	// workspaceDescDefaultLocale is the schema descriptor for default_locale field.
	workspaceDescDefaultLocale := workspaceFields[2].Descriptor()
	// workspace.DefaultDefaultLocale holds the default value on creation for the default_locale field.
	workspace.DefaultDefaultLocale = workspaceDescDefaultLocale.Default.(string)
	// workspaceDescCreatedAt is the schema descriptor for created_at field.
	workspaceDescCreatedAt := workspaceFields[7].Descriptor()
	// workspace.DefaultCreatedAt holds the default value on creation for the created_at field.
	workspace.DefaultCreatedAt = workspaceDescCreatedAt.Default.(func() time.Time)
}
