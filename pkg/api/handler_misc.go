package api

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
)

// ListArtifacts handles GET /workspaces/:wid/artifacts. With ?latest=true
// (the default) only the current version of each logical artifact is
// returned.
func (s *Server) ListArtifacts(c *gin.Context) {
	ctx := c.Request.Context()

	if executionID := c.Query("execution_id"); executionID != "" {
		resp, err := s.artifacts.ListByExecution(ctx, executionID)
		if err != nil {
			abortWithServiceError(c, err)
			return
		}
		c.JSON(http.StatusOK, resp)
		return
	}

	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "50"))
	resp, err := s.artifacts.ListLatestByWorkspace(ctx, c.Param("wid"), limit)
	if err != nil {
		abortWithServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// GetThreadBundle handles GET /workspaces/:wid/threads/:tid/bundle: the
// thread's events plus the tasks they reference, one aggregated snapshot.
func (s *Server) GetThreadBundle(c *gin.Context) {
	ctx := c.Request.Context()
	events, err := s.events.ListByThread(ctx, c.Param("wid"), c.Param("tid"), 0)
	if err != nil {
		abortWithServiceError(c, err)
		return
	}

	// Resolve referenced tasks once each
	seen := make(map[string]bool)
	tasks := make([]any, 0)
	for _, evt := range events {
		for _, id := range evt.EntityIds {
			if seen[id] {
				continue
			}
			seen[id] = true
			if t, err := s.tasks.GetTask(ctx, id); err == nil {
				tasks = append(tasks, t)
			}
		}
	}

	c.JSON(http.StatusOK, gin.H{
		"thread_id": c.Param("tid"),
		"events":    events,
		"tasks":     tasks,
	})
}

// Healthz handles GET /healthz.
func (s *Server) Healthz(c *gin.Context) {
	body := gin.H{"status": "healthy"}

	if s.dbPing != nil {
		if err := s.dbPing(); err != nil {
			c.JSON(http.StatusServiceUnavailable, gin.H{
				"status": "unhealthy",
				"error":  err.Error(),
			})
			return
		}
		body["database"] = "reachable"
	}
	if s.pool != nil {
		body["pool"] = s.pool.Health()
	}
	c.JSON(http.StatusOK, body)
}
