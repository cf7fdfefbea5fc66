package handler

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// respondInternal logs err under a fresh error id and returns only the id to the caller.
func respondInternal(c *gin.Context, msg string, err error) {
	errorID := uuid.NewString()
	slog.Error(msg, "error_id", errorID, "error", err, "path", c.FullPath())
	c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{
		"error":    "An error occurred",
		"error_id": errorID,
	})
}

// Recovery turns a panic into the same 500 body as any other failure.
func Recovery() gin.HandlerFunc {
	return gin.CustomRecovery(func(c *gin.Context, recovered any) {
		errorID := uuid.NewString()
		slog.Error("Panic recovered", "error_id", errorID, "panic", recovered, "path", c.FullPath())
		c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{
			"error":    "An error occurred",
			"error_id": errorID,
		})
	})
}
