package auth

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/fx"

	"clinique-core/internal/modules/auth/controllers"
	"clinique-core/internal/modules/auth/services"
	authMiddleware "clinique-core/internal/shared/middleware/auth"
)

// Module regroupe tous les providers du domaine Auth
var Module = fx.Options(
	// Services
	fx.Provide(services.NewSessionService),
	fx.Provide(services.NewAuthService),

	// Controllers
	fx.Provide(controllers.NewAuthController),

	// Configuration des routes
	fx.Invoke(RegisterAuthRoutes),
)

// RegisterAuthRoutes configure les routes Gin de l'authentification
func RegisterAuthRoutes(
	r *gin.Engine,
	authController *controllers.AuthController,
	middleware *authMiddleware.AuthMiddleware,
) {
	authAPI := r.Group("/api/auth")
	{
		authAPI.POST("/login", authController.Login)
		authAPI.POST("/forgot-password", authController.ForgotPassword)
	}

	// Routes protégées par session
	protectedAPI := r.Group("/api/auth")
	protectedAPI.Use(middleware.Handler())
	{
		protectedAPI.POST("/logout", authController.Logout)
		protectedAPI.GET("/me", authController.Me)
		protectedAPI.POST("/change-password", authController.ChangePassword)
	}
}
