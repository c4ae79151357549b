package http

import (
	"github.com/gin-gonic/gin"

	"github.com/futureissustainable/healthscore-2.0/config"
)

// SetupRouter creates and configures the Gin router
func SetupRouter(cfg *config.Config, handler *Handler, quota *Quota) *gin.Engine {
	// Set Gin mode based on environment
	if cfg.Server.Environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()

	// Global middleware
	router.Use(RecoveryMiddleware())
	router.Use(LoggerMiddleware())
	router.Use(CORSMiddleware(cfg.Server.AllowedOrigins))

	// Health check endpoint
	router.GET("/health", handler.HealthCheck)

	// API v1 routes
	v1 := router.Group("/api/v1")
	{
		// Quota applies to scans only; reads stay free.
		v1.POST("/analyze", QuotaMiddleware(quota), handler.Analyze)
		v1.GET("/history", handler.History)
		v1.GET("/usage", handler.Usage)
	}

	return router
}
