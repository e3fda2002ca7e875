package controllers

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson/primitive"

	medecinServices "clinique-core/internal/modules/medecin/services"
	"clinique-core/internal/modules/patient/dto"
	"clinique-core/internal/modules/patient/services"
	"clinique-core/internal/shared/httpx"
	authMiddleware "clinique-core/internal/shared/middleware/auth"
)

// PatientController endpoints de l'espace patient
type PatientController struct {
	patient     *services.PatientService
	ordonnances *medecinServices.OrdonnanceService
	documents   *medecinServices.DocumentService
}

func NewPatientController(
	patient *services.PatientService,
	ordonnances *medecinServices.OrdonnanceService,
	documents *medecinServices.DocumentService,
) *PatientController {
	return &PatientController{
		patient:     patient,
		ordonnances: ordonnances,
		documents:   documents,
	}
}

// Inscription POST /api/patient/inscription (non authentifié)
func (ctrl *PatientController) Inscription(c *gin.Context) {
	var req dto.InscriptionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httpx.RespondValidation(c, "Email, mot de passe (8 caractères minimum), nom et prénom requis")
		return
	}

	session, user, err := ctrl.patient.Inscription(c.Request.Context(), req)
	if err != nil {
		httpx.RespondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"token": session.Token,
		"user":  user,
	})
}

// Dashboard GET /api/patient/dashboard
func (ctrl *PatientController) Dashboard(c *gin.Context) {
	principal, _ := authMiddleware.CurrentPrincipal(c)

	dashboard, err := ctrl.patient.Dashboard(c.Request.Context(), principal.UserID)
	if err != nil {
		httpx.RespondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"dashboard": dashboard})
}

// ListRendezVous GET /api/patient/rendezvous?statut=
func (ctrl *PatientController) ListRendezVous(c *gin.Context) {
	principal, _ := authMiddleware.CurrentPrincipal(c)

	rdvs, err := ctrl.patient.ListRendezVous(c.Request.Context(), principal.UserID, c.Query("statut"))
	if err != nil {
		httpx.RespondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"rendezvous": rdvs})
}

// DemanderRendezVous POST /api/patient/rendezvous
func (ctrl *PatientController) DemanderRendezVous(c *gin.Context) {
	principal, _ := authMiddleware.CurrentPrincipal(c)

	var req dto.DemandeRendezVousRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httpx.RespondValidation(c, "Médecin, date et heure requis")
		return
	}

	rdv, err := ctrl.patient.DemanderRendezVous(c.Request.Context(), principal.UserID, req)
	if err != nil {
		httpx.RespondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"rendezvous": rdv})
}

// AnnulerRendezVous DELETE /api/patient/rendezvous/:id
func (ctrl *PatientController) AnnulerRendezVous(c *gin.Context) {
	principal, _ := authMiddleware.CurrentPrincipal(c)

	rdvID, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		httpx.RespondValidation(c, "Identifiant invalide")
		return
	}

	if err := ctrl.patient.AnnulerRendezVous(c.Request.Context(), principal.UserID, rdvID); err != nil {
		httpx.RespondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Rendez-vous annulé"})
}

// ListDossiers GET /api/patient/dossiers
func (ctrl *PatientController) ListDossiers(c *gin.Context) {
	principal, _ := authMiddleware.CurrentPrincipal(c)

	dossiers, err := ctrl.patient.ListDossiers(c.Request.Context(), principal.UserID)
	if err != nil {
		httpx.RespondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"dossiers": dossiers})
}

// ListOrdonnances GET /api/patient/ordonnances
func (ctrl *PatientController) ListOrdonnances(c *gin.Context) {
	principal, _ := authMiddleware.CurrentPrincipal(c)

	ordonnances, err := ctrl.patient.ListOrdonnances(c.Request.Context(), principal.UserID)
	if err != nil {
		httpx.RespondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"ordonnances": ordonnances})
}

// OrdonnancePDF GET /api/patient/ordonnances/:id/pdf
func (ctrl *PatientController) OrdonnancePDF(c *gin.Context) {
	principal, _ := authMiddleware.CurrentPrincipal(c)

	ordonnanceID, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		httpx.RespondValidation(c, "Identifiant invalide")
		return
	}

	if err := ctrl.patient.OwnsOrdonnance(c.Request.Context(), principal.UserID, ordonnanceID); err != nil {
		httpx.RespondError(c, err)
		return
	}

	rendered, err := ctrl.ordonnances.PDF(c.Request.Context(), ordonnanceID)
	if err != nil {
		httpx.RespondError(c, err)
		return
	}

	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=ordonnance_%s.pdf", ordonnanceID.Hex()))
	c.Data(http.StatusOK, "application/pdf", rendered)
}

// ListDocuments GET /api/patient/documents
func (ctrl *PatientController) ListDocuments(c *gin.Context) {
	principal, _ := authMiddleware.CurrentPrincipal(c)

	documents, err := ctrl.patient.ListDocuments(c.Request.Context(), principal.UserID)
	if err != nil {
		httpx.RespondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"documents": documents})
}

// DownloadDocument GET /api/patient/documents/:id/download
func (ctrl *PatientController) DownloadDocument(c *gin.Context) {
	principal, _ := authMiddleware.CurrentPrincipal(c)

	documentID, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		httpx.RespondValidation(c, "Identifiant invalide")
		return
	}

	if err := ctrl.patient.OwnsDocument(c.Request.Context(), principal.UserID, documentID); err != nil {
		httpx.RespondError(c, err)
		return
	}

	document, data, err := ctrl.documents.Download(c.Request.Context(), documentID)
	if err != nil {
		httpx.RespondError(c, err)
		return
	}

	contentType := document.FileType
	if contentType == "" {
		contentType = "application/octet-stream"
	}
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%s", document.NomFichier))
	c.Data(http.StatusOK, contentType, data)
}

// ListNotifications GET /api/patient/notifications?unread=true
func (ctrl *PatientController) ListNotifications(c *gin.Context) {
	principal, _ := authMiddleware.CurrentPrincipal(c)

	notifications, err := ctrl.patient.ListNotifications(c.Request.Context(), principal.UserID, c.Query("unread") == "true")
	if err != nil {
		httpx.RespondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"notifications": notifications})
}

// MarkNotificationRead POST /api/patient/notifications/:id/read
func (ctrl *PatientController) MarkNotificationRead(c *gin.Context) {
	principal, _ := authMiddleware.CurrentPrincipal(c)

	notificationID, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		httpx.RespondValidation(c, "Identifiant invalide")
		return
	}

	if err := ctrl.patient.MarkNotificationRead(c.Request.Context(), principal.UserID, notificationID); err != nil {
		httpx.RespondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Notification lue"})
}

// GetProfil GET /api/patient/profil
func (ctrl *PatientController) GetProfil(c *gin.Context) {
	principal, _ := authMiddleware.CurrentPrincipal(c)

	patient, err := ctrl.patient.Profile(c.Request.Context(), principal.UserID)
	if err != nil {
		httpx.RespondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"patient": patient})
}

// UpdateProfil PUT /api/patient/profil
func (ctrl *PatientController) UpdateProfil(c *gin.Context) {
	principal, _ := authMiddleware.CurrentPrincipal(c)

	var req dto.UpdateProfilRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httpx.RespondValidation(c, "Corps de requête invalide")
		return
	}

	patient, err := ctrl.patient.UpdateProfile(c.Request.Context(), principal.UserID, req)
	if err != nil {
		httpx.RespondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"patient": patient})
}
