package models

import "time"

// Keys within task.execution_context. The map is schemaless in the
// database; these constants are the only names the engine writes.
const (
	CtxRunnerID           = "runner_id"
	CtxHeartbeatAt        = "heartbeat_at"
	CtxConversationState  = "conversation_state"
	CtxCurrentStep        = "current_step_index"
	CtxTotalSteps         = "total_steps"
	CtxFailureType        = "failure_type"
	CtxCheckpointAt       = "checkpoint_at"
	CtxResumeCount        = "resume_count"
	CtxPausedAt           = "paused_at"
	CtxConfirmationStatus = "confirmation_status"
)

// Review outcomes recorded in execution_context.confirmation_status while an
// execution is paused at a review gate.
const (
	ConfirmationPending  = "pending"
	ConfirmationApproved = "approved"
	ConfirmationRejected = "rejected"
)

// Failure types recorded in execution_context.failure_type.
const (
	FailureTypeTimeout   = "timeout"
	FailureTypeZombie    = "zombie"
	FailureTypeModel     = "model"
	FailureTypeTool      = "tool"
	FailureTypeRestart   = "restart"
	FailureTypeExecution = "execution"
)

// RestartInterruptionError is written to task.error when a graceful
// shutdown interrupts a running task. The heartbeat revival path matches
// on it verbatim, so it must not change.
const RestartInterruptionError = "Execution interrupted by server restart"

// HeartbeatAt extracts execution_context.heartbeat_at, tolerating both
// the RFC3339 string form the engine writes and a decoded time.Time.
func HeartbeatAt(execCtx map[string]any) (time.Time, bool) {
	if execCtx == nil {
		return time.Time{}, false
	}
	switch v := execCtx[CtxHeartbeatAt].(type) {
	case string:
		t, err := time.Parse(time.RFC3339Nano, v)
		if err != nil {
			return time.Time{}, false
		}
		return t, true
	case time.Time:
		return v, true
	}
	return time.Time{}, false
}

// RunnerID extracts execution_context.runner_id.
func RunnerID(execCtx map[string]any) (string, bool) {
	if execCtx == nil {
		return "", false
	}
	id, ok := execCtx[CtxRunnerID].(string)
	return id, ok && id != ""
}

// CurrentStep extracts execution_context.current_step_index, tolerating the
// float64 form JSON decoding produces.
func CurrentStep(execCtx map[string]any) (int, bool) {
	if execCtx == nil {
		return 0, false
	}
	switch v := execCtx[CtxCurrentStep].(type) {
	case int:
		return v, true
	case float64:
		return int(v), true
	}
	return 0, false
}
