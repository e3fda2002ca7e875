package secretaire

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/fx"

	"clinique-core/internal/modules/core/models"
	"clinique-core/internal/modules/secretaire/controllers"
	"clinique-core/internal/modules/secretaire/services"
	authMiddleware "clinique-core/internal/shared/middleware/auth"
)

// Module regroupe les providers du domaine Secrétariat
var Module = fx.Options(
	fx.Provide(services.NewPatientService),
	fx.Provide(services.NewRendezVousService),
	fx.Provide(controllers.NewSecretaireController),
	fx.Invoke(RegisterSecretaireRoutes),
)

// RegisterSecretaireRoutes configure les routes du secrétariat,
// accessibles aux rôles secretaire et admin
func RegisterSecretaireRoutes(
	r *gin.Engine,
	secretaireController *controllers.SecretaireController,
	middleware *authMiddleware.AuthMiddleware,
) {
	secretaireAPI := r.Group("/api/secretaire")
	secretaireAPI.Use(middleware.Handler(), authMiddleware.RequireRoles(models.RoleSecretaire, models.RoleAdmin))
	{
		secretaireAPI.GET("/dashboard", secretaireController.Dashboard)

		secretaireAPI.GET("/patients", secretaireController.ListPatients)
		secretaireAPI.GET("/patients/search", secretaireController.SearchPatients)
		secretaireAPI.GET("/patients/:id", secretaireController.GetPatient)
		secretaireAPI.POST("/patients", secretaireController.CreatePatient)
		secretaireAPI.PUT("/patients/:id", secretaireController.UpdatePatient)
		secretaireAPI.POST("/patients/:id/compte", secretaireController.CreateCompte)
		secretaireAPI.DELETE("/patients/:id/compte", secretaireController.DeleteCompte)

		secretaireAPI.GET("/rendezvous", secretaireController.ListRendezVous)
		secretaireAPI.POST("/rendezvous", secretaireController.CreateRendezVous)
		secretaireAPI.PUT("/rendezvous/:id", secretaireController.UpdateRendezVous)
		secretaireAPI.POST("/rendezvous/:id/confirmer", secretaireController.ConfirmerRendezVous)
		secretaireAPI.DELETE("/rendezvous/:id", secretaireController.AnnulerRendezVous)
	}
}
