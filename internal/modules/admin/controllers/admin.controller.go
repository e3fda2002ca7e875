package controllers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"clinique-core/internal/modules/admin/dto"
	"clinique-core/internal/modules/admin/services"
	"clinique-core/internal/modules/core/models"
	"clinique-core/internal/modules/core/repository"
	"clinique-core/internal/shared/httpx"
)

// AdminController endpoints réservés au rôle admin
type AdminController struct {
	users    *services.UserAdminService
	stats    *services.StatsService
	rdvs     *services.RendezVousAdminService
	clinique *repository.CliniqueRepository
}

func NewAdminController(
	users *services.UserAdminService,
	stats *services.StatsService,
	rdvs *services.RendezVousAdminService,
	clinique *repository.CliniqueRepository,
) *AdminController {
	return &AdminController{
		users:    users,
		stats:    stats,
		rdvs:     rdvs,
		clinique: clinique,
	}
}

// ListUsers GET /api/admin/users?role=&is_active=
func (ctrl *AdminController) ListUsers(c *gin.Context) {
	var isActive *bool
	switch c.Query("is_active") {
	case "true":
		v := true
		isActive = &v
	case "false":
		v := false
		isActive = &v
	}

	users, err := ctrl.users.List(c.Request.Context(), c.Query("role"), isActive)
	if err != nil {
		httpx.RespondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"users": users})
}

// CreateUser POST /api/admin/users
func (ctrl *AdminController) CreateUser(c *gin.Context) {
	var req dto.CreateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httpx.RespondValidation(c, "Email, rôle et nom requis")
		return
	}

	user, tempPassword, err := ctrl.users.Create(c.Request.Context(), req)
	if err != nil {
		httpx.RespondError(c, err)
		return
	}

	response := gin.H{"user": user}
	if tempPassword != "" {
		response["temp_password"] = tempPassword
	}
	c.JSON(http.StatusCreated, response)
}

// UpdateUser PUT /api/admin/users/:id
func (ctrl *AdminController) UpdateUser(c *gin.Context) {
	userID, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		httpx.RespondValidation(c, "Identifiant invalide")
		return
	}

	var req dto.UpdateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httpx.RespondValidation(c, "Corps de requête invalide")
		return
	}

	user, err := ctrl.users.Update(c.Request.Context(), userID, req)
	if err != nil {
		httpx.RespondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"user": user})
}

// DeleteUser DELETE /api/admin/users/:id (désactivation)
func (ctrl *AdminController) DeleteUser(c *gin.Context) {
	userID, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		httpx.RespondValidation(c, "Identifiant invalide")
		return
	}

	if err := ctrl.users.Deactivate(c.Request.Context(), userID); err != nil {
		httpx.RespondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Compte désactivé"})
}

// ResetPassword POST /api/admin/users/:id/reset-password
func (ctrl *AdminController) ResetPassword(c *gin.Context) {
	userID, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		httpx.RespondValidation(c, "Identifiant invalide")
		return
	}

	tempPassword, err := ctrl.users.ResetPassword(c.Request.Context(), userID)
	if err != nil {
		httpx.RespondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message":       "Mot de passe réinitialisé",
		"temp_password": tempPassword,
	})
}

// Statistiques GET /api/admin/statistiques
func (ctrl *AdminController) Statistiques(c *gin.Context) {
	stats, err := ctrl.stats.Collect(c.Request.Context())
	if err != nil {
		httpx.RespondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"statistiques": stats})
}

// ListRendezVous GET /api/admin/rendezvous?date=&statut=&medecin_id=
func (ctrl *AdminController) ListRendezVous(c *gin.Context) {
	var date *time.Time
	if raw := c.Query("date"); raw != "" {
		parsed, err := time.Parse("2006-01-02", raw)
		if err != nil {
			httpx.RespondValidation(c, "Date invalide, format attendu: YYYY-MM-DD")
			return
		}
		date = &parsed
	}

	var medecinID *primitive.ObjectID
	if raw := c.Query("medecin_id"); raw != "" {
		parsed, err := primitive.ObjectIDFromHex(raw)
		if err != nil {
			httpx.RespondValidation(c, "Identifiant de médecin invalide")
			return
		}
		medecinID = &parsed
	}

	rdvs, err := ctrl.rdvs.List(c.Request.Context(), c.Query("statut"), date, medecinID)
	if err != nil {
		httpx.RespondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"rendezvous": rdvs})
}

// ListSpecialites GET /api/admin/specialites
func (ctrl *AdminController) ListSpecialites(c *gin.Context) {
	specialites, err := ctrl.clinique.ListSpecialites(c.Request.Context())
	if err != nil {
		httpx.RespondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"specialites": specialites})
}

// AddSpecialite POST /api/admin/specialites
func (ctrl *AdminController) AddSpecialite(c *gin.Context) {
	var req dto.SpecialiteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httpx.RespondValidation(c, "Nom de spécialité requis")
		return
	}

	if err := ctrl.clinique.AddSpecialite(c.Request.Context(), req.Nom); err != nil {
		httpx.RespondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"message": "Spécialité ajoutée"})
}

// GetClinique GET /api/admin/clinique
func (ctrl *AdminController) GetClinique(c *gin.Context) {
	config, err := ctrl.clinique.GetConfig(c.Request.Context())
	if err != nil {
		httpx.RespondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"clinique": config})
}

// UpdateClinique PUT /api/admin/clinique
func (ctrl *AdminController) UpdateClinique(c *gin.Context) {
	var req dto.CliniqueRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httpx.RespondValidation(c, "Nom de la clinique requis")
		return
	}

	config := models.CliniqueConfig{
		Nom:         req.Nom,
		Description: req.Description,
		Adresse:     req.Adresse,
		Telephone:   req.Telephone,
		Email:       req.Email,
		Horaires:    req.Horaires,
		Services:    req.Services,
	}
	if err := ctrl.clinique.UpsertConfig(c.Request.Context(), config); err != nil {
		httpx.RespondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"clinique": config})
}
