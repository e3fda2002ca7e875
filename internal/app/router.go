package app

import (
	"net/http"

	"clinique-core/internal/app/config"
	"clinique-core/internal/infrastructure/logger"
	securitymw "clinique-core/internal/shared/middleware/security"

	"github.com/gin-gonic/gin"
)

func NewRouter(cfg *config.Config, loggerMw *logger.LoggerMiddleware) *gin.Engine {
	configureGinMode(cfg.Environment)

	// Create router without default middleware for custom configuration
	r := gin.New()

	// Middlewares globaux dans l'ordre d'importance
	r.Use(loggerMw.RequestLogger())
	r.Use(loggerMw.Recovery())
	r.Use(securitymw.NewCORS(cfg.GetCORS()))

	// Health check routes
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status": "healthy",
		})
	})

	r.GET("/ready", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status": "ready",
		})
	})

	// Les routes métier sont enregistrées par chaque module via fx.Invoke

	return r
}

// configureGinMode configure le mode Gin selon l'environnement
func configureGinMode(environment string) {
	switch environment {
	case "docker":
		gin.SetMode(gin.ReleaseMode)
	default:
		gin.SetMode(gin.DebugMode)
	}
}
