package patient

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/fx"

	"clinique-core/internal/modules/core/models"
	"clinique-core/internal/modules/patient/controllers"
	"clinique-core/internal/modules/patient/services"
	authMiddleware "clinique-core/internal/shared/middleware/auth"
)

// Module regroupe les providers de l'espace patient
var Module = fx.Options(
	fx.Provide(services.NewPatientService),
	fx.Provide(controllers.NewPatientController),
	fx.Invoke(RegisterPatientRoutes),
)

// RegisterPatientRoutes configure les routes de l'espace patient.
// L'inscription est la seule route non authentifiée.
func RegisterPatientRoutes(
	r *gin.Engine,
	patientController *controllers.PatientController,
	middleware *authMiddleware.AuthMiddleware,
) {
	r.POST("/api/patient/inscription", patientController.Inscription)

	patientAPI := r.Group("/api/patient")
	patientAPI.Use(middleware.Handler(), authMiddleware.RequireRoles(models.RolePatient))
	{
		patientAPI.GET("/dashboard", patientController.Dashboard)

		patientAPI.GET("/rendezvous", patientController.ListRendezVous)
		patientAPI.POST("/rendezvous", patientController.DemanderRendezVous)
		patientAPI.DELETE("/rendezvous/:id", patientController.AnnulerRendezVous)

		patientAPI.GET("/dossiers", patientController.ListDossiers)

		patientAPI.GET("/ordonnances", patientController.ListOrdonnances)
		patientAPI.GET("/ordonnances/:id/pdf", patientController.OrdonnancePDF)

		patientAPI.GET("/documents", patientController.ListDocuments)
		patientAPI.GET("/documents/:id/download", patientController.DownloadDocument)

		patientAPI.GET("/notifications", patientController.ListNotifications)
		patientAPI.POST("/notifications/:id/read", patientController.MarkNotificationRead)

		patientAPI.GET("/profil", patientController.GetProfil)
		patientAPI.PUT("/profil", patientController.UpdateProfil)
	}
}
