package api

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/cortexops/playbookd/pkg/stream"
)

// sseSink adapts the projector's frame contract onto an SSE response
// writer. Each frame is one `data: <JSON>\n\n` block; heartbeats are
// comment lines invisible to EventSource clients.
type sseSink struct {
	w       gin.ResponseWriter
	flusher http.Flusher
}

func newSSESink(w gin.ResponseWriter) (*sseSink, error) {
	flusher, ok := w.(http.Flusher)
	if !ok {
		return nil, fmt.Errorf("response writer does not support flushing")
	}
	return &sseSink{w: w, flusher: flusher}, nil
}

func (s *sseSink) Send(frame stream.Frame) error {
	payload, err := json.Marshal(frame)
	if err != nil {
		return fmt.Errorf("failed to marshal frame: %w", err)
	}
	if _, err := fmt.Fprintf(s.w, "data: %s\n\n", payload); err != nil {
		return err
	}
	s.flusher.Flush()
	return nil
}

func (s *sseSink) Heartbeat() error {
	if _, err := fmt.Fprint(s.w, ": keep-alive\n\n"); err != nil {
		return err
	}
	s.flusher.Flush()
	return nil
}

// StreamExecution handles GET /workspaces/:wid/executions/:eid/stream.
func (s *Server) StreamExecution(c *gin.Context) {
	c.Writer.Header().Set("Content-Type", "text/event-stream")
	c.Writer.Header().Set("Cache-Control", "no-cache")
	c.Writer.Header().Set("Connection", "keep-alive")
	c.Writer.Header().Set("X-Accel-Buffering", "no")

	sink, err := newSSESink(c.Writer)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "streaming unsupported"})
		return
	}
	c.Writer.WriteHeader(http.StatusOK)
	sink.flusher.Flush()

	if err := s.projector.Stream(c.Request.Context(), c.Param("eid"), sink); err != nil {
		// Headers are gone; all we can do is log through the projector
		return
	}
}
