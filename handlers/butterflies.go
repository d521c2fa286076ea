package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/butterflyhouse/butterfly-api/internal/butterflies"
	"github.com/butterflyhouse/butterfly-api/internal/models"
	"github.com/butterflyhouse/butterfly-api/internal/validate"
	"github.com/butterflyhouse/butterfly-api/pkg/logger"
)

// RegisterButterflyRoutes wires the butterfly endpoints onto the engine.
func RegisterButterflyRoutes(r *gin.Engine, svc *butterflies.Service) {
	r.GET("/butterflies/:id", func(c *gin.Context) {
		b, err := svc.Get(c.Param("id"))
		if err != nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "Not found"})
			return
		}
		c.JSON(http.StatusOK, b)
	})

	r.POST("/butterflies", func(c *gin.Context) {
		var body map[string]any
		if err := c.ShouldBindJSON(&body); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
			return
		}
		if err := validate.Butterfly.Validate(body); err != nil {
			logger.Debugf("butterfly validation: %v", err)
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
			return
		}
		b := models.Butterfly{
			CommonName: body["commonName"].(string),
			Species:    body["species"].(string),
			Article:    body["article"].(string),
		}
		created, err := svc.Create(c.Request.Context(), b)
		if err != nil {
			logger.Errorf("create butterfly: %v", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
			return
		}
		c.JSON(http.StatusOK, created)
	})
}
