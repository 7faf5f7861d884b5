package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"sitefactory/internal/api"
)

// RegisterRoutes sets up the wizard API endpoints.
func RegisterRoutes(router *gin.Engine, h *api.APIHandler) {
	apiGroup := router.Group("/api")
	{
		projectGroup := apiGroup.Group("/projects")
		{
			projectGroup.POST("", h.CreateProject)
			projectGroup.PATCH("/:id", h.UpdateProject)
			projectGroup.GET("/by-id/:id", h.GetProjectByID)
			// Public slug route comes last so the static by-id prefix wins.
			projectGroup.GET("/:slug", h.GetProjectBySlug)
		}

		apiGroup.POST("/analyze", h.Analyze)
		apiGroup.POST("/inspirations", h.Inspirations)
		apiGroup.POST("/generate", h.GenerateImages)
	}

	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
}
