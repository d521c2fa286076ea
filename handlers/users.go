package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/butterflyhouse/butterfly-api/internal/models"
	"github.com/butterflyhouse/butterfly-api/internal/users"
	"github.com/butterflyhouse/butterfly-api/internal/validate"
	"github.com/butterflyhouse/butterfly-api/pkg/logger"
)

// RegisterUserRoutes wires the user endpoints, including the nested rating
// sub-resource, onto the engine. The static /users/ratings segment coexists
// with the /users/:id parameter; gin matches static segments first.
func RegisterUserRoutes(r *gin.Engine, svc *users.Service) {
	r.GET("/users/:id", func(c *gin.Context) {
		u, err := svc.Get(c.Param("id"))
		if err != nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "Not found"})
			return
		}
		c.JSON(http.StatusOK, u)
	})

	r.POST("/users", func(c *gin.Context) {
		var body map[string]any
		if err := c.ShouldBindJSON(&body); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
			return
		}
		if err := validate.User.Validate(body); err != nil {
			logger.Debugf("user validation: %v", err)
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
			return
		}
		u := models.User{Username: body["username"].(string)}
		created, err := svc.Create(c.Request.Context(), u)
		if err != nil {
			logger.Errorf("create user: %v", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
			return
		}
		c.JSON(http.StatusOK, created)
	})

	r.POST("/users/ratings", func(c *gin.Context) {
		var body map[string]any
		if err := c.ShouldBindJSON(&body); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
			return
		}
		if err := validate.Rating.Validate(body); err != nil {
			logger.Debugf("rating validation: %v", err)
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
			return
		}
		userID := body["id"].(string)
		rating, err := svc.UpsertRating(c.Request.Context(), userID, body["butterfly"].(string), body["rating"].(float64))
		if err != nil {
			switch {
			case errors.Is(err, users.ErrNotFound):
				c.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
			case errors.Is(err, users.ErrInvalidRating):
				c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid rating"})
			default:
				logger.Errorf("upsert rating: %v", err)
				c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
			}
			return
		}
		c.JSON(http.StatusOK, gin.H{"id": userID, "rating": rating.Rating, "butterfly": rating.Butterfly})
	})

	r.GET("/users/ratings/:userid", func(c *gin.Context) {
		ratings, err := svc.Ratings(c.Param("userid"))
		if err != nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "No ratings found"})
			return
		}
		c.JSON(http.StatusOK, ratings)
	})
}
