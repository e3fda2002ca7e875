package public

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/fx"

	"clinique-core/internal/modules/public/controllers"
	"clinique-core/internal/modules/public/services"
)

// Module regroupe les providers de la vitrine publique
var Module = fx.Options(
	fx.Provide(services.NewPublicService),
	fx.Provide(controllers.NewPublicController),
	fx.Invoke(RegisterPublicRoutes),
)

// RegisterPublicRoutes configure les routes publiques, sans authentification
func RegisterPublicRoutes(r *gin.Engine, publicController *controllers.PublicController) {
	publicAPI := r.Group("/api/public")
	{
		publicAPI.GET("/info", publicController.Info)
		publicAPI.GET("/medecins", publicController.ListMedecins)
		publicAPI.GET("/medecins/:id/disponibilite", publicController.Disponibilite)
		publicAPI.GET("/specialites", publicController.Specialites)
	}
}
