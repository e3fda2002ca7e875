package controllers

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"clinique-core/internal/modules/secretaire/dto"
	"clinique-core/internal/modules/secretaire/services"
	"clinique-core/internal/shared/httpx"
)

// SecretaireController endpoints du secrétariat
type SecretaireController struct {
	patients *services.PatientService
	rdvs     *services.RendezVousService
}

func NewSecretaireController(patients *services.PatientService, rdvs *services.RendezVousService) *SecretaireController {
	return &SecretaireController{patients: patients, rdvs: rdvs}
}

// Dashboard GET /api/secretaire/dashboard
func (ctrl *SecretaireController) Dashboard(c *gin.Context) {
	dashboard, err := ctrl.rdvs.Dashboard(c.Request.Context())
	if err != nil {
		httpx.RespondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"dashboard": dashboard})
}

// ListPatients GET /api/secretaire/patients?limit=&skip=
func (ctrl *SecretaireController) ListPatients(c *gin.Context) {
	limit, _ := strconv.ParseInt(c.DefaultQuery("limit", "50"), 10, 64)
	skip, _ := strconv.ParseInt(c.DefaultQuery("skip", "0"), 10, 64)

	patients, err := ctrl.patients.List(c.Request.Context(), limit, skip)
	if err != nil {
		httpx.RespondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"patients": patients})
}

// SearchPatients GET /api/secretaire/patients/search?q=
func (ctrl *SecretaireController) SearchPatients(c *gin.Context) {
	patients, err := ctrl.patients.Search(c.Request.Context(), c.Query("q"))
	if err != nil {
		httpx.RespondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"patients": patients})
}

// GetPatient GET /api/secretaire/patients/:id
func (ctrl *SecretaireController) GetPatient(c *gin.Context) {
	patientID, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		httpx.RespondValidation(c, "Identifiant invalide")
		return
	}

	patient, err := ctrl.patients.Get(c.Request.Context(), patientID)
	if err != nil {
		httpx.RespondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"patient": patient})
}

// CreatePatient POST /api/secretaire/patients
func (ctrl *SecretaireController) CreatePatient(c *gin.Context) {
	var req dto.PatientRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httpx.RespondValidation(c, "Nom et prénom requis")
		return
	}

	patient, err := ctrl.patients.Create(c.Request.Context(), req)
	if err != nil {
		httpx.RespondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"patient": patient})
}

// UpdatePatient PUT /api/secretaire/patients/:id
func (ctrl *SecretaireController) UpdatePatient(c *gin.Context) {
	patientID, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		httpx.RespondValidation(c, "Identifiant invalide")
		return
	}

	var req dto.PatientRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httpx.RespondValidation(c, "Nom et prénom requis")
		return
	}

	patient, err := ctrl.patients.Update(c.Request.Context(), patientID, req)
	if err != nil {
		httpx.RespondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"patient": patient})
}

// CreateCompte POST /api/secretaire/patients/:id/compte
func (ctrl *SecretaireController) CreateCompte(c *gin.Context) {
	patientID, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		httpx.RespondValidation(c, "Identifiant invalide")
		return
	}

	user, tempPassword, err := ctrl.patients.CreateCompte(c.Request.Context(), patientID)
	if err != nil {
		httpx.RespondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"user":          user,
		"temp_password": tempPassword,
	})
}

// DeleteCompte DELETE /api/secretaire/patients/:id/compte
func (ctrl *SecretaireController) DeleteCompte(c *gin.Context) {
	patientID, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		httpx.RespondValidation(c, "Identifiant invalide")
		return
	}

	if err := ctrl.patients.DeleteCompte(c.Request.Context(), patientID); err != nil {
		httpx.RespondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Compte désactivé"})
}

// ListRendezVous GET /api/secretaire/rendezvous?date=&statut=&medecin_id=
func (ctrl *SecretaireController) ListRendezVous(c *gin.Context) {
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

	rdvs, err := ctrl.rdvs.List(c.Request.Context(), date, c.Query("statut"), medecinID)
	if err != nil {
		httpx.RespondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"rendezvous": rdvs})
}

// CreateRendezVous POST /api/secretaire/rendezvous
func (ctrl *SecretaireController) CreateRendezVous(c *gin.Context) {
	var req dto.CreateRendezVousRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httpx.RespondValidation(c, "Patient, médecin, date et heure requis")
		return
	}

	rdv, err := ctrl.rdvs.Create(c.Request.Context(), req)
	if err != nil {
		httpx.RespondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"rendezvous": rdv})
}

// UpdateRendezVous PUT /api/secretaire/rendezvous/:id
func (ctrl *SecretaireController) UpdateRendezVous(c *gin.Context) {
	rdvID, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		httpx.RespondValidation(c, "Identifiant invalide")
		return
	}

	var req dto.UpdateRendezVousRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httpx.RespondValidation(c, "Corps de requête invalide")
		return
	}

	rdv, err := ctrl.rdvs.Update(c.Request.Context(), rdvID, req)
	if err != nil {
		httpx.RespondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"rendezvous": rdv})
}

// ConfirmerRendezVous POST /api/secretaire/rendezvous/:id/confirmer
func (ctrl *SecretaireController) ConfirmerRendezVous(c *gin.Context) {
	rdvID, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		httpx.RespondValidation(c, "Identifiant invalide")
		return
	}

	rdv, err := ctrl.rdvs.Confirmer(c.Request.Context(), rdvID)
	if err != nil {
		httpx.RespondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"rendezvous": rdv})
}

// AnnulerRendezVous DELETE /api/secretaire/rendezvous/:id
func (ctrl *SecretaireController) AnnulerRendezVous(c *gin.Context) {
	rdvID, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		httpx.RespondValidation(c, "Identifiant invalide")
		return
	}

	if err := ctrl.rdvs.Annuler(c.Request.Context(), rdvID); err != nil {
		httpx.RespondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Rendez-vous annulé"})
}
