package controllers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"clinique-core/internal/modules/public/services"
	"clinique-core/internal/shared/httpx"
)

// PublicController endpoints non authentifiés
type PublicController struct {
	public *services.PublicService
}

func NewPublicController(public *services.PublicService) *PublicController {
	return &PublicController{public: public}
}

// Info GET /api/public/info
func (ctrl *PublicController) Info(c *gin.Context) {
	info, err := ctrl.public.Info(c.Request.Context())
	if err != nil {
		httpx.RespondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"clinique": info})
}

// ListMedecins GET /api/public/medecins?specialite=
func (ctrl *PublicController) ListMedecins(c *gin.Context) {
	medecins, err := ctrl.public.ListMedecins(c.Request.Context(), c.Query("specialite"))
	if err != nil {
		httpx.RespondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"medecins": medecins})
}

// Disponibilite GET /api/public/medecins/:id/disponibilite?date=YYYY-MM-DD
func (ctrl *PublicController) Disponibilite(c *gin.Context) {
	medecinID, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		httpx.RespondValidation(c, "Identifiant de médecin invalide")
		return
	}

	date, err := time.Parse("2006-01-02", c.Query("date"))
	if err != nil {
		httpx.RespondValidation(c, "Date invalide, format attendu: YYYY-MM-DD")
		return
	}

	slots, err := ctrl.public.Disponibilite(c.Request.Context(), medecinID, date)
	if err != nil {
		httpx.RespondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"date":                 c.Query("date"),
		"creneaux_disponibles": slots,
	})
}

// Specialites GET /api/public/specialites
func (ctrl *PublicController) Specialites(c *gin.Context) {
	specialites, err := ctrl.public.Specialites(c.Request.Context())
	if err != nil {
		httpx.RespondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"specialites": specialites})
}
