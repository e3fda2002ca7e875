package services

import (
	"context"
	"encoding/base64"
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"clinique-core/internal/modules/core/domainerr"
	"clinique-core/internal/modules/core/models"
	"clinique-core/internal/modules/core/notifier"
	"clinique-core/internal/modules/core/repository"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Limites et extensions autorisées pour les fichiers
const (
	maxDocumentSize  = 10 << 20
	maxSignatureSize = 2 << 20
)

var documentExtensions = map[string]bool{
	".pdf": true, ".png": true, ".jpg": true, ".jpeg": true,
	".gif": true, ".doc": true, ".docx": true,
}

var signatureExtensions = map[string]bool{
	".png": true, ".jpg": true, ".jpeg": true,
}

// DocumentUpload paramètres d'un dépôt de fichier
type DocumentUpload struct {
	PatientID    string
	DossierID    string
	TypeDocument string
	Description  string
	DateExamen   string
	Filename     string
	ContentType  string
	Data         []byte
}

// DocumentService dépôt et téléchargement des documents médicaux,
// et gestion de la signature du médecin.
type DocumentService struct {
	documents *repository.DocumentRepository
	patients  *repository.PatientRepository
	medecins  *repository.MedecinRepository
	notifier  *notifier.Notifier
}

func NewDocumentService(
	documents *repository.DocumentRepository,
	patients *repository.PatientRepository,
	medecins *repository.MedecinRepository,
	notif *notifier.Notifier,
) *DocumentService {
	return &DocumentService{
		documents: documents,
		patients:  patients,
		medecins:  medecins,
		notifier:  notif,
	}
}

// Upload enregistre un document médical déposé par le médecin connecté
func (s *DocumentService) Upload(ctx context.Context, userID primitive.ObjectID, upload DocumentUpload) (*models.DocumentMedical, error) {
	medecin, err := s.medecins.FindByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if medecin == nil {
		return nil, domainerr.NotFound("Profil médecin introuvable")
	}

	patientID, err := primitive.ObjectIDFromHex(upload.PatientID)
	if err != nil {
		return nil, domainerr.Validation("Identifiant de patient invalide")
	}
	patient, err := s.patients.FindByID(ctx, patientID)
	if err != nil {
		return nil, err
	}
	if patient == nil {
		return nil, domainerr.NotFound("Patient introuvable")
	}

	ext := strings.ToLower(filepath.Ext(upload.Filename))
	if !documentExtensions[ext] {
		return nil, domainerr.Validation(fmt.Sprintf("Extension non autorisée: %s", ext))
	}
	if len(upload.Data) == 0 {
		return nil, domainerr.Validation("Fichier vide")
	}
	if len(upload.Data) > maxDocumentSize {
		return nil, domainerr.Validation("Fichier trop volumineux (10 Mo maximum)")
	}

	typeDocument := upload.TypeDocument
	if typeDocument == "" {
		typeDocument = models.DocumentAutre
	}

	document := &models.DocumentMedical{
		PatientID:    patientID,
		MedecinID:    &medecin.ID,
		TypeDocument: typeDocument,
		NomFichier:   upload.Filename,
		FileData:     base64.StdEncoding.EncodeToString(upload.Data),
		FileType:     upload.ContentType,
		FileSize:     int64(len(upload.Data)),
		Description:  upload.Description,
	}

	if upload.DossierID != "" {
		dossierID, err := primitive.ObjectIDFromHex(upload.DossierID)
		if err != nil {
			return nil, domainerr.Validation("Identifiant de dossier invalide")
		}
		document.DossierID = &dossierID
	}
	if upload.DateExamen != "" {
		dateExamen, err := time.Parse("2006-01-02", upload.DateExamen)
		if err != nil {
			return nil, domainerr.Validation("Date d'examen invalide, format attendu: YYYY-MM-DD")
		}
		document.DateExamen = &dateExamen
	}

	if err := s.documents.Insert(ctx, document); err != nil {
		return nil, err
	}

	s.notifier.DocumentDisponible(ctx, patientID, typeDocument)
	return document, nil
}

// Download retourne un document et son contenu décodé
func (s *DocumentService) Download(ctx context.Context, documentID primitive.ObjectID) (*models.DocumentMedical, []byte, error) {
	document, err := s.documents.FindByID(ctx, documentID)
	if err != nil {
		return nil, nil, err
	}
	if document == nil {
		return nil, nil, domainerr.NotFound("Document introuvable")
	}

	data, err := base64.StdEncoding.DecodeString(document.FileData)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to decode document %s: %w", documentID.Hex(), err)
	}
	return document, data, nil
}

// OwnsDocument vérifie que le médecin connecté a déposé le document
func (s *DocumentService) OwnsDocument(ctx context.Context, userID, documentID primitive.ObjectID) error {
	medecin, err := s.medecins.FindByUserID(ctx, userID)
	if err != nil {
		return err
	}
	if medecin == nil {
		return domainerr.NotFound("Profil médecin introuvable")
	}

	document, err := s.documents.FindByID(ctx, documentID)
	if err != nil {
		return err
	}
	if document == nil {
		return domainerr.NotFound("Document introuvable")
	}
	if !document.DeposeParMedecin(medecin.ID) {
		return domainerr.Forbidden("Seul le médecin ayant déposé ce document peut y accéder")
	}
	return nil
}

// Delete supprime un document déposé par le médecin connecté
func (s *DocumentService) Delete(ctx context.Context, userID, documentID primitive.ObjectID) error {
	medecin, err := s.medecins.FindByUserID(ctx, userID)
	if err != nil {
		return err
	}
	if medecin == nil {
		return domainerr.NotFound("Profil médecin introuvable")
	}

	document, err := s.documents.FindByID(ctx, documentID)
	if err != nil {
		return err
	}
	if document == nil {
		return domainerr.NotFound("Document introuvable")
	}
	if !document.DeposeParMedecin(medecin.ID) {
		return domainerr.Forbidden("Seul le médecin ayant déposé ce document peut le supprimer")
	}

	return s.documents.Delete(ctx, documentID)
}

// ListForPatient documents d'un patient, sans leur contenu
func (s *DocumentService) ListForPatient(ctx context.Context, patientID primitive.ObjectID) ([]models.DocumentMedical, error) {
	return s.documents.FindByPatient(ctx, patientID)
}

// SaveSignature enregistre l'image de signature du médecin connecté
func (s *DocumentService) SaveSignature(ctx context.Context, userID primitive.ObjectID, filename, contentType string, data []byte) error {
	medecin, err := s.medecins.FindByUserID(ctx, userID)
	if err != nil {
		return err
	}
	if medecin == nil {
		return domainerr.NotFound("Profil médecin introuvable")
	}

	ext := strings.ToLower(filepath.Ext(filename))
	if !signatureExtensions[ext] {
		return domainerr.Validation("La signature doit être une image PNG ou JPEG")
	}
	if len(data) == 0 {
		return domainerr.Validation("Fichier vide")
	}
	if len(data) > maxSignatureSize {
		return domainerr.Validation("Image trop volumineuse (2 Mo maximum)")
	}

	medecin.SignatureData = base64.StdEncoding.EncodeToString(data)
	medecin.SignatureType = contentType
	return s.medecins.Update(ctx, medecin)
}

// Signature retourne l'image de signature du médecin connecté
func (s *DocumentService) Signature(ctx context.Context, userID primitive.ObjectID) ([]byte, string, error) {
	medecin, err := s.medecins.FindByUserID(ctx, userID)
	if err != nil {
		return nil, "", err
	}
	if medecin == nil {
		return nil, "", domainerr.NotFound("Profil médecin introuvable")
	}
	if medecin.SignatureData == "" {
		return nil, "", domainerr.NotFound("Aucune signature enregistrée")
	}

	data, err := base64.StdEncoding.DecodeString(medecin.SignatureData)
	if err != nil {
		return nil, "", fmt.Errorf("failed to decode signature: %w", err)
	}
	return data, medecin.SignatureType, nil
}
