package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/cortexops/playbookd/pkg/chat"
	"github.com/cortexops/playbookd/pkg/models"
)

// PostChatRequest is the body of POST /executions/:eid/chat.
type PostChatRequest struct {
	Message     string `json:"message" binding:"required"`
	StepID      string `json:"step_id"`
	PrincipalID string `json:"principal_id"`
}

// PostChat handles POST /workspaces/:wid/executions/:eid/chat. The user
// post is persisted synchronously; the reply arrives through the stream.
func (s *Server) PostChat(c *gin.Context) {
	var req PostChatRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	evt, err := s.chat.Post(c.Request.Context(), chat.PostRequest{
		WorkspaceID: c.Param("wid"),
		ExecutionID: c.Param("eid"),
		StepID:      req.StepID,
		PrincipalID: req.PrincipalID,
		Message:     req.Message,
	})
	if err != nil {
		abortWithServiceError(c, err)
		return
	}
	c.JSON(http.StatusAccepted, evt)
}

// ListChat handles GET /workspaces/:wid/executions/:eid/chat.
func (s *Server) ListChat(c *gin.Context) {
	events, err := s.chat.ListChat(c.Request.Context(), c.Param("eid"))
	if err != nil {
		abortWithServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, models.EventsResponse{Events: events})
}
