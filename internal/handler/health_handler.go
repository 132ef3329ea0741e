package handler

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
)

// Healthcheck handles the healthcheck query
func Healthcheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":    "ok",
		"timestamp": time.Now().UTC(),
	})
}
