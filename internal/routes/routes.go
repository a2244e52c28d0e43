package routes

import (
	"net/http"

	"github.com/Vedant005/SkillBridge-Backend/internal/handlers"

	"github.com/gin-gonic/gin"
)

// SetupRoutes mounts the full API surface under /api/v1.
func SetupRoutes(r *gin.Engine, h *handlers.AppHandlers, authMW gin.HandlerFunc) {
	api := r.Group("/api/v1")

	h.ClientHandler.RegisterRoutes(api, authMW)
	h.FreelancerHandler.RegisterRoutes(api, authMW)
	h.GigHandler.RegisterRoutes(api)

	api.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
}
