// Code generated by ent, DO NOT EDIT.

package migrate

import (
	"entgo.io/ent/dialect/sql/schema"
	"entgo.io/ent/schema/field"
)

var (
	// ArtifactsColumns holds the columns for the "artifacts" table.
	ArtifactsColumns = []*schema.Column{
		{Name: "artifact_id", Type: field.TypeString, Unique: true},
		{Name: "workspace_id", Type: field.TypeString},
		{Name: "intent_id", Type: field.TypeString, Nullable: true},
		{Name: "task_id", Type: field.TypeString, Nullable: true},
		{Name: "execution_id", Type: field.TypeString},
		{Name: "playbook_code", Type: field.TypeString},
		{Name: "artifact_type", Type: field.TypeEnum, Enums: []string{"docx", "draft", "checklist", "config", "audio", "canva", "post", "other"}},
		{Name: "title", Type: field.TypeString},
		{Name: "summary", Type: field.TypeString, Nullable: true, Size: 2147483647},
		{Name: "content", Type: field.TypeJSON, Nullable: true},
		{Name: "storage_ref", Type: field.TypeString, Nullable: true},
		{Name: "sync_state", Type: field.TypeEnum, Nullable: true, Enums: []string{"pending", "synced", "failed"}},
		{Name: "primary_action_type", Type: field.TypeEnum, Enums: []string{"copy", "download", "open_external"}, Default: "copy"},
		{Name: "version", Type: field.TypeInt, Default: 1},
		{Name: "is_latest", Type: field.TypeBool, Default: true},
		{Name: "metadata", Type: field.TypeJSON, Nullable: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
	}
	// ArtifactsTable holds the schema information for the "artifacts" table.
	ArtifactsTable = &schema.Table{
		Name:       "artifacts",
		Columns:    ArtifactsColumns,
		PrimaryKey: []*schema.Column{ArtifactsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "artifact_execution_id",
				Unique:  false,
				Columns: []*schema.Column{ArtifactsColumns[4]},
			},
			{
				Name:    "artifact_workspace_id_playbook_code_artifact_type_is_latest",
				Unique:  false,
				Columns: []*schema.Column{ArtifactsColumns[1], ArtifactsColumns[5], ArtifactsColumns[6], ArtifactsColumns[14]},
			},
		},
	}
	// MindEventsColumns holds the columns for the "mind_events" table.
	MindEventsColumns = []*schema.Column{
		{Name: "event_id", Type: field.TypeString, Unique: true},
		{Name: "workspace_id", Type: field.TypeString},
		{Name: "profile_id", Type: field.TypeString, Nullable: true},
		{Name: "thread_id", Type: field.TypeString, Nullable: true},
		{Name: "entity_ids", Type: field.TypeJSON, Nullable: true},
		{Name: "actor", Type: field.TypeEnum, Enums: []string{"user", "assistant", "system", "agent"}},
		{Name: "event_type", Type: field.TypeString},
		{Name: "payload", Type: field.TypeJSON, Nullable: true},
		{Name: "metadata", Type: field.TypeJSON, Nullable: true},
		{Name: "timestamp", Type: field.TypeTime},
	}
	// MindEventsTable holds the schema information for the "mind_events" table.
	MindEventsTable = &schema.Table{
		Name:       "mind_events",
		Columns:    MindEventsColumns,
		PrimaryKey: []*schema.Column{MindEventsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "mindevent_timestamp",
				Unique:  false,
				Columns: []*schema.Column{MindEventsColumns[9]},
			},
			{
				Name:    "mindevent_workspace_id_event_type_timestamp",
				Unique:  false,
				Columns: []*schema.Column{MindEventsColumns[1], MindEventsColumns[6], MindEventsColumns[9]},
			},
		},
	}
	// PlaybookExecutionsColumns holds the columns for the "playbook_executions" table.
	PlaybookExecutionsColumns = []*schema.Column{
		{Name: "execution_id", Type: field.TypeString, Unique: true},
		{Name: "workspace_id", Type: field.TypeString},
		{Name: "playbook_code", Type: field.TypeString},
		{Name: "status", Type: field.TypeString, Default: "running"},
		{Name: "current_step_index", Type: field.TypeInt, Nullable: true},
		{Name: "total_steps", Type: field.TypeInt, Nullable: true},
		{Name: "snapshot", Type: field.TypeJSON, Nullable: true},
		{Name: "phase_summaries", Type: field.TypeJSON, Nullable: true},
		{Name: "intent_id", Type: field.TypeString, Nullable: true},
		{Name: "failure_metadata", Type: field.TypeJSON, Nullable: true},
		{Name: "supports_resume", Type: field.TypeBool, Default: false},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
		{Name: "completed_at", Type: field.TypeTime, Nullable: true},
	}
	// PlaybookExecutionsTable holds the schema information for the "playbook_executions" table.
	PlaybookExecutionsTable = &schema.Table{
		Name:       "playbook_executions",
		Columns:    PlaybookExecutionsColumns,
		PrimaryKey: []*schema.Column{PlaybookExecutionsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "playbookexecution_workspace_id_status",
				Unique:  false,
				Columns: []*schema.Column{PlaybookExecutionsColumns[1], PlaybookExecutionsColumns[3]},
			},
			{
				Name:    "playbookexecution_playbook_code",
				Unique:  false,
				Columns: []*schema.Column{PlaybookExecutionsColumns[2]},
			},
		},
	}
	// RunnerHeartbeatsColumns holds the columns for the "runner_heartbeats" table.
	RunnerHeartbeatsColumns = []*schema.Column{
		{Name: "runner_id", Type: field.TypeString, Unique: true},
		{Name: "heartbeat_at", Type: field.TypeTime},
	}
	// RunnerHeartbeatsTable holds the schema information for the "runner_heartbeats" table.
	RunnerHeartbeatsTable = &schema.Table{
		Name:       "runner_heartbeats",
		Columns:    RunnerHeartbeatsColumns,
		PrimaryKey: []*schema.Column{RunnerHeartbeatsColumns[0]},
	}
	// StageResultsColumns holds the columns for the "stage_results" table.
	StageResultsColumns = []*schema.Column{
		{Name: "stage_result_id", Type: field.TypeString, Unique: true},
		{Name: "execution_id", Type: field.TypeString},
		{Name: "step_id", Type: field.TypeString, Nullable: true},
		{Name: "stage_name", Type: field.TypeString},
		{Name: "result_type", Type: field.TypeEnum, Enums: []string{"draft", "analysis", "design", "data"}},
		{Name: "content", Type: field.TypeJSON, Nullable: true},
		{Name: "preview", Type: field.TypeString, Nullable: true},
		{Name: "requires_review", Type: field.TypeBool, Default: false},
		{Name: "review_status", Type: field.TypeEnum, Enums: []string{"pending", "approved", "rejected"}, Default: "pending"},
		{Name: "artifact_id", Type: field.TypeString, Nullable: true},
		{Name: "created_at", Type: field.TypeTime},
	}
	// StageResultsTable holds the schema information for the "stage_results" table.
	StageResultsTable = &schema.Table{
		Name:       "stage_results",
		Columns:    StageResultsColumns,
		PrimaryKey: []*schema.Column{StageResultsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "stageresult_execution_id_created_at",
				Unique:  false,
				Columns: []*schema.Column{StageResultsColumns[1], StageResultsColumns[10]},
			},
		},
	}
	// SuggestionPreferencesColumns holds the columns for the "suggestion_preferences" table.
	SuggestionPreferencesColumns = []*schema.Column{
		{Name: "preference_id", Type: field.TypeString, Unique: true},
		{Name: "workspace_id", Type: field.TypeString},
		{Name: "user_id", Type: field.TypeString},
		{Name: "pack_id", Type: field.TypeString},
		{Name: "task_type", Type: field.TypeString},
		{Name: "auto_suggest_enabled", Type: field.TypeBool, Default: true},
		{Name: "updated_at", Type: field.TypeTime},
	}
	// SuggestionPreferencesTable holds the schema information for the "suggestion_preferences" table.
	SuggestionPreferencesTable = &schema.Table{
		Name:       "suggestion_preferences",
		Columns:    SuggestionPreferencesColumns,
		PrimaryKey: []*schema.Column{SuggestionPreferencesColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "suggestionpreference_workspace_id_user_id_pack_id_task_type",
				Unique:  true,
				Columns: []*schema.Column{SuggestionPreferencesColumns[1], SuggestionPreferencesColumns[2], SuggestionPreferencesColumns[3], SuggestionPreferencesColumns[4]},
			},
		},
	}
	// TasksColumns holds the columns for the "tasks" table.
	TasksColumns = []*schema.Column{
		{Name: "task_id", Type: field.TypeString, Unique: true},
		{Name: "workspace_id", Type: field.TypeString},
		{Name: "execution_id", Type: field.TypeString, Nullable: true},
		{Name: "project_id", Type: field.TypeString, Nullable: true},
		{Name: "pack_id", Type: field.TypeString},
		{Name: "task_type", Type: field.TypeEnum, Enums: []string{"playbook_execution", "suggestion", "agent_dispatch", "execution", "intent_extraction", "semantic_extraction"}},
		{Name: "status", Type: field.TypeEnum, Enums: []string{"pending", "running", "waiting_confirmation", "succeeded", "failed", "cancelled_by_user", "expired"}, Default: "pending"},
		{Name: "params", Type: field.TypeJSON, Nullable: true},
		{Name: "result", Type: field.TypeJSON, Nullable: true},
		{Name: "execution_context", Type: field.TypeJSON, Nullable: true},
		{Name: "storyline_tags", Type: field.TypeJSON, Nullable: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "started_at", Type: field.TypeTime, Nullable: true},
		{Name: "completed_at", Type: field.TypeTime, Nullable: true},
		{Name: "error", Type: field.TypeString, Nullable: true},
	}
	// TasksTable holds the schema information for the "tasks" table.
	TasksTable = &schema.Table{
		Name:       "tasks",
		Columns:    TasksColumns,
		PrimaryKey: []*schema.Column{TasksColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "task_status",
				Unique:  false,
				Columns: []*schema.Column{TasksColumns[6]},
			},
			{
				Name:    "task_pack_id",
				Unique:  false,
				Columns: []*schema.Column{TasksColumns[4]},
			},
			{
				Name:    "task_execution_id",
				Unique:  false,
				Columns: []*schema.Column{TasksColumns[2]},
			},
			{
				Name:    "task_workspace_id_status_created_at",
				Unique:  false,
				Columns: []*schema.Column{TasksColumns[1], TasksColumns[6], TasksColumns[11]},
			},
			{
				Name:    "task_task_type_status_created_at",
				Unique:  false,
				Columns: []*schema.Column{TasksColumns[5], TasksColumns[6], TasksColumns[11]},
			},
		},
	}
	// ToolCallsColumns holds the columns for the "tool_calls" table.
	ToolCallsColumns = []*schema.Column{
		{Name: "tool_call_id", Type: field.TypeString, Unique: true},
		{Name: "execution_id", Type: field.TypeString},
		{Name: "step_id", Type: field.TypeString, Nullable: true},
		{Name: "tool_name", Type: field.TypeString},
		{Name: "parameters", Type: field.TypeJSON, Nullable: true},
		{Name: "response", Type: field.TypeJSON, Nullable: true},
		{Name: "status", Type: field.TypeEnum, Enums: []string{"pending", "completed", "failed"}, Default: "pending"},
		{Name: "error", Type: field.TypeString, Nullable: true},
		{Name: "duration_ms", Type: field.TypeInt, Nullable: true},
		{Name: "factory_cluster", Type: field.TypeString},
		{Name: "started_at", Type: field.TypeTime},
		{Name: "completed_at", Type: field.TypeTime, Nullable: true},
		{Name: "created_at", Type: field.TypeTime},
	}
	// ToolCallsTable holds the schema information for the "tool_calls" table.
	ToolCallsTable = &schema.Table{
		Name:       "tool_calls",
		Columns:    ToolCallsColumns,
		PrimaryKey: []*schema.Column{ToolCallsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "toolcall_execution_id_created_at",
				Unique:  false,
				Columns: []*schema.Column{ToolCallsColumns[1], ToolCallsColumns[12]},
			},
			{
				Name:    "toolcall_execution_id_started_at",
				Unique:  false,
				Columns: []*schema.Column{ToolCallsColumns[1], ToolCallsColumns[10]},
			},
		},
	}
	// WorkspacesColumns holds the columns for the "workspaces" table.
	WorkspacesColumns = []*schema.Column{
		{Name: "workspace_id", Type: field.TypeString, Unique: true},
		{Name: "owner_id", Type: field.TypeString},
		{Name: "default_locale", Type: field.TypeString, Default: "en"},
		{Name: "storage_root", Type: field.TypeString, Nullable: true},
		{Name: "auto_execution_config", Type: field.TypeJSON, Nullable: true},
		{Name: "mode", Type: field.TypeEnum, Enums: []string{"qa", "execution", "hybrid"}, Default: "qa"},
		{Name: "priority", Type: field.TypeEnum, Enums: []string{"low", "medium", "high"}, Default: "medium"},
		{Name: "created_at", Type: field.TypeTime},
	}
	// WorkspacesTable holds the schema information for the "workspaces" table.
	WorkspacesTable = &schema.Table{
		Name:       "workspaces",
		Columns:    WorkspacesColumns,
		PrimaryKey: []*schema.Column{WorkspacesColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "workspace_owner_id",
				Unique:  false,
				Columns: []*schema.Column{WorkspacesColumns[1]},
			},
		},
	}
	// Tables holds all the tables in the schema.
	Tables = []*schema.Table{
		ArtifactsTable,
		MindEventsTable,
		PlaybookExecutionsTable,
		RunnerHeartbeatsTable,
		StageResultsTable,
		SuggestionPreferencesTable,
		TasksTable,
		ToolCallsTable,
		WorkspacesTable,
	}
)

func init() {
}
