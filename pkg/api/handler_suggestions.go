package api

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/cortexops/playbookd/ent/task"
	"github.com/cortexops/playbookd/pkg/models"
)

// ListSuggestions handles GET /workspaces/:wid/suggestions.
func (s *Server) ListSuggestions(c *gin.Context) {
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "50"))

	resp, err := s.tasks.ListTasks(c.Request.Context(), models.TaskFilters{
		WorkspaceID: c.Param("wid"),
		TaskType:    string(task.TaskTypeSuggestion),
		Status:      c.DefaultQuery("status", string(task.StatusPending)),
		Limit:       limit,
	})
	if err != nil {
		abortWithServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// ConfirmSuggestion handles POST /workspaces/:wid/suggestions/:tid/confirm.
// The suggestion becomes a pending playbook_execution; the next worker
// poll picks it up.
func (s *Server) ConfirmSuggestion(c *gin.Context) {
	t, err := s.tasks.ConfirmSuggestion(c.Request.Context(), c.Param("tid"))
	if err != nil {
		abortWithServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, t)
}

// DismissSuggestion handles POST /workspaces/:wid/suggestions/:tid/dismiss.
func (s *Server) DismissSuggestion(c *gin.Context) {
	if err := s.tasks.DismissSuggestion(c.Request.Context(), c.Param("tid")); err != nil {
		abortWithServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"dismissed": true})
}
