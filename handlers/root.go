package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// RegisterRootRoutes wires the banner and liveness endpoints.
func RegisterRootRoutes(r *gin.Engine) {
	r.GET("/", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "Server is running!"})
	})

	r.GET("/health", func(c *gin.Context) {
		c.String(http.StatusOK, "healthy")
	})
}
