// Package api exposes the execution core over HTTP: REST endpoints per
// workspace plus the SSE progress stream.
package api

import (
	"github.com/gin-gonic/gin"

	"github.com/cortexops/playbookd/pkg/chat"
	"github.com/cortexops/playbookd/pkg/queue"
	"github.com/cortexops/playbookd/pkg/runner"
	"github.com/cortexops/playbookd/pkg/services"
	"github.com/cortexops/playbookd/pkg/stream"
)

// PoolStatus is the slice of the runner pool the API needs.
type PoolStatus interface {
	Health() *queue.PoolHealth
	CancelExecution(executionID string) bool
}

// Server wires the HTTP handlers to the service layer.
type Server struct {
	tasks     *services.TaskService
	events    *services.EventService
	execs     *services.ExecutionService
	stages    *services.StageResultService
	artifacts *services.ArtifactService
	toolCalls *services.ToolCallService
	runner    *runner.Runner
	chat      *chat.Service
	projector *stream.Projector
	pool      PoolStatus
	dbPing    func() error
}

// Deps carries the server's collaborators.
type Deps struct {
	Tasks     *services.TaskService
	Events    *services.EventService
	Execs     *services.ExecutionService
	Stages    *services.StageResultService
	Artifacts *services.ArtifactService
	ToolCalls *services.ToolCallService
	Runner    *runner.Runner
	Chat      *chat.Service
	Projector *stream.Projector
	Pool      PoolStatus
	DBPing    func() error
}

// NewServer creates a new API server.
func NewServer(d Deps) *Server {
	return &Server{
		tasks:     d.Tasks,
		events:    d.Events,
		execs:     d.Execs,
		stages:    d.Stages,
		artifacts: d.Artifacts,
		toolCalls: d.ToolCalls,
		runner:    d.Runner,
		chat:      d.Chat,
		projector: d.Projector,
		pool:      d.Pool,
		dbPing:    d.DBPing,
	}
}

// Router builds the gin engine with all routes registered.
func (s *Server) Router() *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	s.RegisterRoutes(r)
	return r
}

// RegisterRoutes attaches all endpoints to the given engine.
func (s *Server) RegisterRoutes(r *gin.Engine) {
	r.GET("/healthz", s.Healthz)

	ws := r.Group("/api/v1/workspaces/:wid")
	{
		ws.GET("/executions", s.ListExecutions)
		ws.POST("/executions", s.StartExecution)
		ws.GET("/executions/:eid", s.GetExecution)
		ws.POST("/executions/:eid/continue", s.ContinueExecution)
		ws.GET("/executions/:eid/steps", s.ListSteps)
		ws.GET("/executions/:eid/tool-calls", s.ListToolCalls)
		ws.GET("/executions/:eid/stage-results", s.ListStageResults)
		ws.GET("/executions/:eid/chat", s.ListChat)
		ws.POST("/executions/:eid/chat", s.PostChat)
		ws.GET("/executions/:eid/stream", s.StreamExecution)
		ws.POST("/executions/:eid/steps/:sid/confirm", s.ConfirmStep)
		ws.POST("/executions/:eid/steps/:sid/reject", s.RejectStep)
		ws.POST("/executions/:eid/cancel", s.CancelExecution)

		ws.GET("/suggestions", s.ListSuggestions)
		ws.POST("/suggestions/:tid/confirm", s.ConfirmSuggestion)
		ws.POST("/suggestions/:tid/dismiss", s.DismissSuggestion)

		ws.GET("/artifacts", s.ListArtifacts)
		ws.GET("/threads/:tid/bundle", s.GetThreadBundle)
	}
}
