package api

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/cortexops/playbookd/pkg/services"
)

// abortWithServiceError maps service-layer errors to HTTP responses.
func abortWithServiceError(c *gin.Context, err error) {
	var validErr *services.ValidationError
	switch {
	case errors.As(err, &validErr):
		c.JSON(http.StatusBadRequest, gin.H{"error": validErr.Error()})
	case errors.Is(err, services.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "resource not found"})
	case errors.Is(err, services.ErrNotCancellable):
		c.JSON(http.StatusConflict, gin.H{"error": "execution is not in a cancellable state"})
	case errors.Is(err, services.ErrNotConfirmable):
		c.JSON(http.StatusConflict, gin.H{"error": "suggestion is not in a confirmable state"})
	case errors.Is(err, services.ErrNotResumable):
		c.JSON(http.StatusConflict, gin.H{"error": "execution is not resumable"})
	case errors.Is(err, services.ErrAlreadyExists):
		c.JSON(http.StatusConflict, gin.H{"error": "resource already exists"})
	case errors.Is(err, services.ErrConcurrentModification):
		c.JSON(http.StatusConflict, gin.H{"error": "resource changed concurrently"})
	default:
		slog.Error("Unexpected service error", "path", c.FullPath(), "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
	}
}
