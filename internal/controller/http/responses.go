package http

import (
	"errors"
	"net/http"

	"mld-backend/internal/usecase"
	"mld-backend/pkg/upload"

	"github.com/gin-gonic/gin"
)

// respondError maps a use case failure onto the error taxonomy. Anything
// unmatched is a server error and never leaks its message.
func respondError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, usecase.ErrValidation),
		errors.Is(err, upload.ErrInvalidFile),
		errors.Is(err, upload.ErrFileTooLarge):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case errors.Is(err, usecase.ErrUnauthenticated):
		c.JSON(http.StatusUnauthorized, gin.H{"error": err.Error()})
	case errors.Is(err, usecase.ErrForbidden):
		c.JSON(http.StatusForbidden, gin.H{"error": err.Error()})
	case errors.Is(err, usecase.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": "something went wrong"})
	}
}
