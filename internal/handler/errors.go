package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/astropalm/backend-go/internal/database/service"
)

// respondServiceError translates service-layer failures into client-visible
// responses. This is the single place that mapping happens.
func respondServiceError(c *gin.Context, err error) {
	switch {
	case service.IsNotFound(err):
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	case errors.Is(err, service.ErrEmailAlreadyExists):
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
	}
}
