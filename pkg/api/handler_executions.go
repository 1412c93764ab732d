package api

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/cortexops/playbookd/ent/task"
	"github.com/cortexops/playbookd/pkg/models"
	"github.com/cortexops/playbookd/pkg/runner"
	"github.com/cortexops/playbookd/pkg/services"
)

// StartExecutionRequest is the body of POST /executions.
type StartExecutionRequest struct {
	PackCode       string         `json:"pack_code" binding:"required"`
	PrincipalID    string         `json:"principal_id"`
	Inputs         map[string]any `json:"inputs"`
	Locale         string         `json:"locale"`
	UserContext    string         `json:"user_context"`
	SkipSteps      []int          `json:"skip_steps"`
	ExtraChecklist []string       `json:"extra_checklist"`
	IntentID       string         `json:"intent_id"`
}

// StartExecution handles POST /workspaces/:wid/executions.
func (s *Server) StartExecution(c *gin.Context) {
	var req StartExecutionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	res, err := s.runner.Start(c.Request.Context(), runner.StartRequest{
		PackCode:       req.PackCode,
		PrincipalID:    req.PrincipalID,
		WorkspaceID:    c.Param("wid"),
		Inputs:         req.Inputs,
		Locale:         req.Locale,
		UserContext:    req.UserContext,
		SkipSteps:      req.SkipSteps,
		ExtraChecklist: req.ExtraChecklist,
		IntentID:       req.IntentID,
		TriggerSource:  "api",
	})
	if err != nil {
		abortWithServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, res)
}

// ContinueExecutionRequest is the body of POST /executions/:eid/continue.
type ContinueExecutionRequest struct {
	Message     string `json:"message" binding:"required"`
	PrincipalID string `json:"principal_id"`
}

// ContinueExecution handles POST /workspaces/:wid/executions/:eid/continue.
func (s *Server) ContinueExecution(c *gin.Context) {
	var req ContinueExecutionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	res, err := s.runner.Continue(c.Request.Context(), c.Param("eid"), req.Message, req.PrincipalID)
	if err != nil {
		abortWithServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, res)
}

// ListExecutions handles GET /workspaces/:wid/executions.
func (s *Server) ListExecutions(c *gin.Context) {
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "50"))

	resp, err := s.tasks.ListTasks(c.Request.Context(), models.TaskFilters{
		WorkspaceID: c.Param("wid"),
		TaskType:    string(task.TaskTypePlaybookExecution),
		Status:      c.Query("status"),
		Limit:       limit,
	})
	if err != nil {
		abortWithServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// GetExecution handles GET /workspaces/:wid/executions/:eid.
func (s *Server) GetExecution(c *gin.Context) {
	ctx := c.Request.Context()
	t, err := s.tasks.GetTask(ctx, c.Param("eid"))
	if err != nil {
		abortWithServiceError(c, err)
		return
	}
	// The mirror may be missing for suggestions that never ran
	exec, err := s.execs.GetExecution(ctx, c.Param("eid"))
	if err != nil && !errors.Is(err, services.ErrNotFound) {
		abortWithServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, s.execs.BuildStatusResponse(ctx, t, exec))
}

// ListSteps handles GET /workspaces/:wid/executions/:eid/steps.
func (s *Server) ListSteps(c *gin.Context) {
	events, err := s.events.ListStepEvents(c.Request.Context(), c.Param("eid"))
	if err != nil {
		abortWithServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, models.EventsResponse{Events: events})
}

// ListToolCalls handles GET /workspaces/:wid/executions/:eid/tool-calls.
func (s *Server) ListToolCalls(c *gin.Context) {
	calls, err := s.toolCalls.ListForExecution(c.Request.Context(), c.Param("eid"), time.Time{}, 0)
	if err != nil {
		abortWithServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, models.ToolCallsResponse{ToolCalls: calls})
}

// ListStageResults handles GET /workspaces/:wid/executions/:eid/stage-results.
func (s *Server) ListStageResults(c *gin.Context) {
	results, err := s.stages.ListForExecution(c.Request.Context(), c.Param("eid"))
	if err != nil {
		abortWithServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"stage_results": results})
}

// ConfirmStep handles POST .../steps/:sid/confirm: approves the pending
// stage result of a paused step and resumes the task.
func (s *Server) ConfirmStep(c *gin.Context) {
	s.reviewStep(c, true)
}

// RejectStep handles POST .../steps/:sid/reject.
func (s *Server) RejectStep(c *gin.Context) {
	s.reviewStep(c, false)
}

func (s *Server) reviewStep(c *gin.Context, approved bool) {
	ctx := c.Request.Context()
	executionID := c.Param("eid")
	stepID := c.Param("sid")

	results, err := s.stages.ListForExecution(ctx, executionID)
	if err != nil {
		abortWithServiceError(c, err)
		return
	}

	reviewed := 0
	for _, sr := range results {
		if sr.StepID == nil || *sr.StepID != stepID || !sr.RequiresReview {
			continue
		}
		if _, err := s.stages.Review(ctx, sr.ID, approved); err != nil {
			abortWithServiceError(c, err)
			return
		}
		reviewed++
	}
	if reviewed == 0 {
		c.JSON(http.StatusNotFound, gin.H{"error": "no reviewable stage result for step"})
		return
	}

	// Record the outcome and put the task back on its running course; the
	// next chat post or continue turn picks it up from there.
	if err := s.tasks.ResumeFromConfirmation(ctx, executionID, reviewOutcome(approved)); err != nil {
		abortWithServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"reviewed": reviewed, "approved": approved})
}

func reviewOutcome(approved bool) string {
	if approved {
		return models.ConfirmationApproved
	}
	return models.ConfirmationRejected
}

// CancelExecution handles POST /workspaces/:wid/executions/:eid/cancel.
// The status write is authoritative; the local cancel only shortens the
// window until the owning worker notices.
func (s *Server) CancelExecution(c *gin.Context) {
	t, err := s.tasks.CancelTask(c.Request.Context(), c.Param("eid"))
	if err != nil {
		abortWithServiceError(c, err)
		return
	}
	if s.pool != nil {
		s.pool.CancelExecution(c.Param("eid"))
	}
	c.JSON(http.StatusOK, t)
}
