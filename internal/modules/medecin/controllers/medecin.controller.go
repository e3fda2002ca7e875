package controllers

import (
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"clinique-core/internal/modules/medecin/dto"
	"clinique-core/internal/modules/medecin/services"
	"clinique-core/internal/shared/httpx"
	authMiddleware "clinique-core/internal/shared/middleware/auth"
)

// MedecinController endpoints du rôle médecin
type MedecinController struct {
	medecin     *services.MedecinService
	dossiers    *services.DossierService
	ordonnances *services.OrdonnanceService
	documents   *services.DocumentService
}

func NewMedecinController(
	medecin *services.MedecinService,
	dossiers *services.DossierService,
	ordonnances *services.OrdonnanceService,
	documents *services.DocumentService,
) *MedecinController {
	return &MedecinController{
		medecin:     medecin,
		dossiers:    dossiers,
		ordonnances: ordonnances,
		documents:   documents,
	}
}

// Dashboard GET /api/medecin/dashboard
func (ctrl *MedecinController) Dashboard(c *gin.Context) {
	principal, _ := authMiddleware.CurrentPrincipal(c)

	dashboard, err := ctrl.medecin.Dashboard(c.Request.Context(), principal.UserID)
	if err != nil {
		httpx.RespondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"dashboard": dashboard})
}

// ListRendezVous GET /api/medecin/rendezvous?date=&statut=
func (ctrl *MedecinController) ListRendezVous(c *gin.Context) {
	principal, _ := authMiddleware.CurrentPrincipal(c)

	var date *time.Time
	if raw := c.Query("date"); raw != "" {
		parsed, err := time.Parse("2006-01-02", raw)
		if err != nil {
			httpx.RespondValidation(c, "Date invalide, format attendu: YYYY-MM-DD")
			return
		}
		date = &parsed
	}

	rdvs, err := ctrl.medecin.ListRendezVous(c.Request.Context(), principal.UserID, date, c.Query("statut"))
	if err != nil {
		httpx.RespondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"rendezvous": rdvs})
}

// Accepter POST /api/medecin/rendezvous/:id/accepter
func (ctrl *MedecinController) Accepter(c *gin.Context) {
	principal, _ := authMiddleware.CurrentPrincipal(c)

	rdvID, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		httpx.RespondValidation(c, "Identifiant invalide")
		return
	}

	rdv, err := ctrl.medecin.Accepter(c.Request.Context(), principal.UserID, rdvID)
	if err != nil {
		httpx.RespondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"rendezvous": rdv})
}

// Refuser POST /api/medecin/rendezvous/:id/refuser
func (ctrl *MedecinController) Refuser(c *gin.Context) {
	principal, _ := authMiddleware.CurrentPrincipal(c)

	rdvID, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		httpx.RespondValidation(c, "Identifiant invalide")
		return
	}

	rdv, err := ctrl.medecin.Refuser(c.Request.Context(), principal.UserID, rdvID)
	if err != nil {
		httpx.RespondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"rendezvous": rdv})
}

// ListPatients GET /api/medecin/patients
func (ctrl *MedecinController) ListPatients(c *gin.Context) {
	principal, _ := authMiddleware.CurrentPrincipal(c)

	patients, err := ctrl.medecin.ListPatients(c.Request.Context(), principal.UserID)
	if err != nil {
		httpx.RespondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"patients": patients})
}

// SearchPatients GET /api/medecin/patients/search?q=
func (ctrl *MedecinController) SearchPatients(c *gin.Context) {
	patients, err := ctrl.medecin.SearchPatients(c.Request.Context(), c.Query("q"))
	if err != nil {
		httpx.RespondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"patients": patients})
}

// GetPatient GET /api/medecin/patients/:id
func (ctrl *MedecinController) GetPatient(c *gin.Context) {
	patientID, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		httpx.RespondValidation(c, "Identifiant invalide")
		return
	}

	patient, err := ctrl.medecin.GetPatient(c.Request.Context(), patientID)
	if err != nil {
		httpx.RespondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"patient": patient})
}

// PatientDossiers GET /api/medecin/patients/:id/dossiers
func (ctrl *MedecinController) PatientDossiers(c *gin.Context) {
	patientID, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		httpx.RespondValidation(c, "Identifiant invalide")
		return
	}

	dossiers, err := ctrl.medecin.PatientDossiers(c.Request.Context(), patientID)
	if err != nil {
		httpx.RespondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"dossiers": dossiers})
}

// CreateDossier POST /api/medecin/dossiers
func (ctrl *MedecinController) CreateDossier(c *gin.Context) {
	principal, _ := authMiddleware.CurrentPrincipal(c)

	var req dto.CreateDossierRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httpx.RespondValidation(c, "Identifiant de patient requis")
		return
	}

	dossier, err := ctrl.dossiers.Create(c.Request.Context(), principal.UserID, req)
	if err != nil {
		httpx.RespondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"dossier": dossier})
}

// UpdateDossier PUT /api/medecin/dossiers/:id
func (ctrl *MedecinController) UpdateDossier(c *gin.Context) {
	principal, _ := authMiddleware.CurrentPrincipal(c)

	dossierID, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		httpx.RespondValidation(c, "Identifiant invalide")
		return
	}

	var req dto.UpdateDossierRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httpx.RespondValidation(c, "Corps de requête invalide")
		return
	}

	dossier, err := ctrl.dossiers.Update(c.Request.Context(), principal.UserID, dossierID, req)
	if err != nil {
		httpx.RespondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"dossier": dossier})
}

// CreateOrdonnance POST /api/medecin/ordonnances
func (ctrl *MedecinController) CreateOrdonnance(c *gin.Context) {
	principal, _ := authMiddleware.CurrentPrincipal(c)

	var req dto.CreateOrdonnanceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httpx.RespondValidation(c, "Patient et au moins un traitement requis")
		return
	}

	ordonnance, err := ctrl.ordonnances.Create(c.Request.Context(), principal.UserID, req)
	if err != nil {
		httpx.RespondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"ordonnance": ordonnance})
}

// ListOrdonnances GET /api/medecin/ordonnances
func (ctrl *MedecinController) ListOrdonnances(c *gin.Context) {
	principal, _ := authMiddleware.CurrentPrincipal(c)

	ordonnances, err := ctrl.ordonnances.ListForMedecin(c.Request.Context(), principal.UserID)
	if err != nil {
		httpx.RespondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"ordonnances": ordonnances})
}

// OrdonnancePDF GET /api/medecin/ordonnances/:id/pdf
func (ctrl *MedecinController) OrdonnancePDF(c *gin.Context) {
	principal, _ := authMiddleware.CurrentPrincipal(c)

	ordonnanceID, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		httpx.RespondValidation(c, "Identifiant invalide")
		return
	}

	if err := ctrl.ordonnances.OwnsOrdonnance(c.Request.Context(), principal.UserID, ordonnanceID); err != nil {
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

// UploadDocument POST /api/medecin/documents (multipart)
func (ctrl *MedecinController) UploadDocument(c *gin.Context) {
	principal, _ := authMiddleware.CurrentPrincipal(c)

	fileHeader, err := c.FormFile("file")
	if err != nil {
		httpx.RespondValidation(c, "Fichier requis (champ 'file')")
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		httpx.RespondError(c, err)
		return
	}
	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil {
		httpx.RespondError(c, err)
		return
	}

	upload := services.DocumentUpload{
		PatientID:    c.PostForm("patient_id"),
		DossierID:    c.PostForm("dossier_id"),
		TypeDocument: c.PostForm("type_document"),
		Description:  c.PostForm("description"),
		DateExamen:   c.PostForm("date_examen"),
		Filename:     fileHeader.Filename,
		ContentType:  fileHeader.Header.Get("Content-Type"),
		Data:         data,
	}
	if upload.PatientID == "" {
		httpx.RespondValidation(c, "Identifiant de patient requis")
		return
	}

	document, err := ctrl.documents.Upload(c.Request.Context(), principal.UserID, upload)
	if err != nil {
		httpx.RespondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"document": document})
}

// DownloadDocument GET /api/medecin/documents/:id
func (ctrl *MedecinController) DownloadDocument(c *gin.Context) {
	principal, _ := authMiddleware.CurrentPrincipal(c)

	documentID, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		httpx.RespondValidation(c, "Identifiant invalide")
		return
	}

	if err := ctrl.documents.OwnsDocument(c.Request.Context(), principal.UserID, documentID); err != nil {
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

// DeleteDocument DELETE /api/medecin/documents/:id
func (ctrl *MedecinController) DeleteDocument(c *gin.Context) {
	principal, _ := authMiddleware.CurrentPrincipal(c)

	documentID, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		httpx.RespondValidation(c, "Identifiant invalide")
		return
	}

	if err := ctrl.documents.Delete(c.Request.Context(), principal.UserID, documentID); err != nil {
		httpx.RespondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Document supprimé"})
}

// UploadSignature POST /api/medecin/signature (multipart)
func (ctrl *MedecinController) UploadSignature(c *gin.Context) {
	principal, _ := authMiddleware.CurrentPrincipal(c)

	fileHeader, err := c.FormFile("file")
	if err != nil {
		httpx.RespondValidation(c, "Fichier requis (champ 'file')")
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		httpx.RespondError(c, err)
		return
	}
	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil {
		httpx.RespondError(c, err)
		return
	}

	contentType := fileHeader.Header.Get("Content-Type")
	if err := ctrl.documents.SaveSignature(c.Request.Context(), principal.UserID, fileHeader.Filename, contentType, data); err != nil {
		httpx.RespondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Signature enregistrée"})
}

// GetSignature GET /api/medecin/signature
func (ctrl *MedecinController) GetSignature(c *gin.Context) {
	principal, _ := authMiddleware.CurrentPrincipal(c)

	data, contentType, err := ctrl.documents.Signature(c.Request.Context(), principal.UserID)
	if err != nil {
		httpx.RespondError(c, err)
		return
	}

	if contentType == "" {
		contentType = "image/png"
	}
	c.Data(http.StatusOK, contentType, data)
}
