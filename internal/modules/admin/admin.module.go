package admin

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/fx"

	"clinique-core/internal/modules/admin/controllers"
	"clinique-core/internal/modules/admin/services"
	"clinique-core/internal/modules/core/models"
	authMiddleware "clinique-core/internal/shared/middleware/auth"
)

// Module regroupe les providers du domaine Admin
var Module = fx.Options(
	fx.Provide(services.NewUserAdminService),
	fx.Provide(services.NewStatsService),
	fx.Provide(services.NewRendezVousAdminService),
	fx.Provide(controllers.NewAdminController),
	fx.Invoke(RegisterAdminRoutes),
)

// RegisterAdminRoutes configure les routes réservées au rôle admin
func RegisterAdminRoutes(
	r *gin.Engine,
	adminController *controllers.AdminController,
	middleware *authMiddleware.AuthMiddleware,
) {
	adminAPI := r.Group("/api/admin")
	adminAPI.Use(middleware.Handler(), authMiddleware.RequireRoles(models.RoleAdmin))
	{
		adminAPI.GET("/users", adminController.ListUsers)
		adminAPI.POST("/users", adminController.CreateUser)
		adminAPI.PUT("/users/:id", adminController.UpdateUser)
		adminAPI.DELETE("/users/:id", adminController.DeleteUser)
		adminAPI.POST("/users/:id/reset-password", adminController.ResetPassword)

		adminAPI.GET("/statistiques", adminController.Statistiques)
		adminAPI.GET("/rendezvous", adminController.ListRendezVous)

		adminAPI.GET("/specialites", adminController.ListSpecialites)
		adminAPI.POST("/specialites", adminController.AddSpecialite)

		adminAPI.GET("/clinique", adminController.GetClinique)
		adminAPI.PUT("/clinique", adminController.UpdateClinique)
	}
}
