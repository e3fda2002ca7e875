package services

import (
	"context"
	"time"

	"clinique-core/internal/modules/core/domainerr"
	"clinique-core/internal/modules/core/models"
	"clinique-core/internal/modules/core/notifier"
	"clinique-core/internal/modules/core/repository"
	"clinique-core/internal/modules/medecin/dto"
	"clinique-core/internal/shared/utils"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// DossierService création et mise à jour des consultations
type DossierService struct {
	dossiers *repository.DossierRepository
	patients *repository.PatientRepository
	medecins *repository.MedecinRepository
	users    *repository.UserRepository
	notifier *notifier.Notifier
}

func NewDossierService(
	dossiers *repository.DossierRepository,
	patients *repository.PatientRepository,
	medecins *repository.MedecinRepository,
	users *repository.UserRepository,
	notif *notifier.Notifier,
) *DossierService {
	return &DossierService{
		dossiers: dossiers,
		patients: patients,
		medecins: medecins,
		users:    users,
		notifier: notif,
	}
}

// Create enregistre une consultation pour le médecin connecté
func (s *DossierService) Create(ctx context.Context, userID primitive.ObjectID, req dto.CreateDossierRequest) (*models.DossierMedical, error) {
	medecin, err := s.medecins.FindByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if medecin == nil {
		return nil, domainerr.NotFound("Profil médecin introuvable")
	}

	patientID, err := primitive.ObjectIDFromHex(req.PatientID)
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

	dateConsultation := time.Now().UTC()
	if req.DateConsultation != "" {
		parsed, err := time.Parse("2006-01-02", req.DateConsultation)
		if err != nil {
			return nil, domainerr.Validation("Date de consultation invalide, format attendu: YYYY-MM-DD")
		}
		dateConsultation = parsed
	}

	dossier := &models.DossierMedical{
		PatientID:         patientID,
		MedecinID:         medecin.ID,
		DateConsultation:  dateConsultation,
		Observations:      utils.OptionalString(req.Observations),
		Diagnostic:        utils.OptionalString(req.Diagnostic),
		ExamenClinique:    utils.OptionalString(req.ExamenClinique),
		Poids:             req.Poids.Ptr(),
		Taille:            req.Taille.Ptr(),
		TensionArterielle: utils.OptionalString(req.TensionArterielle),
		Temperature:       req.Temperature.Ptr(),
	}
	if err := s.dossiers.Insert(ctx, dossier); err != nil {
		return nil, err
	}

	s.notifier.DossierCree(ctx, patientID, s.medecinNom(ctx, medecin))
	return dossier, nil
}

// Update modifie une consultation créée par le médecin connecté
func (s *DossierService) Update(ctx context.Context, userID, dossierID primitive.ObjectID, req dto.UpdateDossierRequest) (*models.DossierMedical, error) {
	medecin, err := s.medecins.FindByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if medecin == nil {
		return nil, domainerr.NotFound("Profil médecin introuvable")
	}

	dossier, err := s.dossiers.FindByID(ctx, dossierID)
	if err != nil {
		return nil, err
	}
	if dossier == nil {
		return nil, domainerr.NotFound("Dossier introuvable")
	}
	if dossier.MedecinID != medecin.ID {
		return nil, domainerr.Forbidden("Ce dossier ne vous appartient pas")
	}

	if req.Observations != "" {
		dossier.Observations = utils.OptionalString(req.Observations)
	}
	if req.Diagnostic != "" {
		dossier.Diagnostic = utils.OptionalString(req.Diagnostic)
	}
	if req.ExamenClinique != "" {
		dossier.ExamenClinique = utils.OptionalString(req.ExamenClinique)
	}
	if req.TensionArterielle != "" {
		dossier.TensionArterielle = utils.OptionalString(req.TensionArterielle)
	}
	if v := req.Poids.Ptr(); v != nil {
		dossier.Poids = v
	}
	if v := req.Taille.Ptr(); v != nil {
		dossier.Taille = v
	}
	if v := req.Temperature.Ptr(); v != nil {
		dossier.Temperature = v
	}

	if err := s.dossiers.Update(ctx, dossier); err != nil {
		return nil, err
	}
	return dossier, nil
}

func (s *DossierService) medecinNom(ctx context.Context, medecin *models.Medecin) string {
	user, err := s.users.FindByID(ctx, medecin.UserID)
	if err != nil || user == nil {
		return "votre médecin"
	}
	return "Dr " + user.FullName()
}
