package medecin

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/fx"

	"clinique-core/internal/modules/core/models"
	"clinique-core/internal/modules/medecin/controllers"
	"clinique-core/internal/modules/medecin/services"
	authMiddleware "clinique-core/internal/shared/middleware/auth"
)

// Module regroupe les providers du domaine Médecin
var Module = fx.Options(
	fx.Provide(services.NewMedecinService),
	fx.Provide(services.NewDossierService),
	fx.Provide(services.NewOrdonnanceService),
	fx.Provide(services.NewDocumentService),
	fx.Provide(controllers.NewMedecinController),
	fx.Invoke(RegisterMedecinRoutes),
)

// RegisterMedecinRoutes configure les routes réservées au rôle médecin
func RegisterMedecinRoutes(
	r *gin.Engine,
	medecinController *controllers.MedecinController,
	middleware *authMiddleware.AuthMiddleware,
) {
	medecinAPI := r.Group("/api/medecin")
	medecinAPI.Use(middleware.Handler(), authMiddleware.RequireRoles(models.RoleMedecin))
	{
		medecinAPI.GET("/dashboard", medecinController.Dashboard)

		medecinAPI.GET("/rendezvous", medecinController.ListRendezVous)
		medecinAPI.POST("/rendezvous/:id/accepter", medecinController.Accepter)
		medecinAPI.POST("/rendezvous/:id/refuser", medecinController.Refuser)

		medecinAPI.GET("/patients", medecinController.ListPatients)
		medecinAPI.GET("/patients/search", medecinController.SearchPatients)
		medecinAPI.GET("/patients/:id", medecinController.GetPatient)
		medecinAPI.GET("/patients/:id/dossiers", medecinController.PatientDossiers)

		medecinAPI.POST("/dossiers", medecinController.CreateDossier)
		medecinAPI.PUT("/dossiers/:id", medecinController.UpdateDossier)

		medecinAPI.POST("/ordonnances", medecinController.CreateOrdonnance)
		medecinAPI.GET("/ordonnances", medecinController.ListOrdonnances)
		medecinAPI.GET("/ordonnances/:id/pdf", medecinController.OrdonnancePDF)

		medecinAPI.POST("/documents", medecinController.UploadDocument)
		medecinAPI.GET("/documents/:id", medecinController.DownloadDocument)
		medecinAPI.DELETE("/documents/:id", medecinController.DeleteDocument)

		medecinAPI.POST("/signature", medecinController.UploadSignature)
		medecinAPI.GET("/signature", medecinController.GetSignature)
	}
}
