package services

import (
	"context"
	"encoding/base64"
	"time"

	"clinique-core/internal/infrastructure/pdf"
	"clinique-core/internal/modules/core/domainerr"
	"clinique-core/internal/modules/core/models"
	"clinique-core/internal/modules/core/notifier"
	"clinique-core/internal/modules/core/repository"
	"clinique-core/internal/modules/medecin/dto"

	"github.com/rs/zerolog"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// OrdonnanceService prescriptions et rendu PDF
type OrdonnanceService struct {
	ordonnances *repository.OrdonnanceRepository
	patients    *repository.PatientRepository
	medecins    *repository.MedecinRepository
	users       *repository.UserRepository
	clinique    *repository.CliniqueRepository
	renderer    *pdf.OrdonnanceRenderer
	notifier    *notifier.Notifier
	logger      zerolog.Logger
}

func NewOrdonnanceService(
	ordonnances *repository.OrdonnanceRepository,
	patients *repository.PatientRepository,
	medecins *repository.MedecinRepository,
	users *repository.UserRepository,
	clinique *repository.CliniqueRepository,
	renderer *pdf.OrdonnanceRenderer,
	notif *notifier.Notifier,
	logger zerolog.Logger,
) *OrdonnanceService {
	return &OrdonnanceService{
		ordonnances: ordonnances,
		patients:    patients,
		medecins:    medecins,
		users:       users,
		clinique:    clinique,
		renderer:    renderer,
		notifier:    notif,
		logger:      logger.With().Str("component", "ordonnance").Logger(),
	}
}

// Create enregistre une ordonnance pour le médecin connecté
func (s *OrdonnanceService) Create(ctx context.Context, userID primitive.ObjectID, req dto.CreateOrdonnanceRequest) (*models.Ordonnance, error) {
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

	traitements := make([]models.Traitement, 0, len(req.Traitements))
	for _, t := range req.Traitements {
		traitements = append(traitements, models.Traitement{
			Medicament: t.Medicament,
			Posologie:  t.Posologie,
			Duree:      t.Duree,
		})
	}

	ordonnance := &models.Ordonnance{
		PatientID:      patientID,
		MedecinID:      medecin.ID,
		DateOrdonnance: time.Now().UTC(),
		Traitements:    traitements,
		Instructions:   req.Instructions,
	}
	if err := s.ordonnances.Insert(ctx, ordonnance); err != nil {
		return nil, err
	}

	s.notifier.OrdonnanceDisponible(ctx, patientID, s.medecinNom(ctx, medecin))
	return ordonnance, nil
}

// ListForMedecin ordonnances émises par le médecin connecté
func (s *OrdonnanceService) ListForMedecin(ctx context.Context, userID primitive.ObjectID) ([]models.Ordonnance, error) {
	medecin, err := s.medecins.FindByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if medecin == nil {
		return nil, domainerr.NotFound("Profil médecin introuvable")
	}
	return s.ordonnances.FindByMedecin(ctx, medecin.ID)
}

// OwnsOrdonnance vérifie que le médecin connecté est l'auteur de l'ordonnance
func (s *OrdonnanceService) OwnsOrdonnance(ctx context.Context, userID, ordonnanceID primitive.ObjectID) error {
	medecin, err := s.medecins.FindByUserID(ctx, userID)
	if err != nil {
		return err
	}
	if medecin == nil {
		return domainerr.NotFound("Profil médecin introuvable")
	}

	ordonnance, err := s.ordonnances.FindByID(ctx, ordonnanceID)
	if err != nil {
		return err
	}
	if ordonnance == nil {
		return domainerr.NotFound("Ordonnance introuvable")
	}
	if !ordonnance.EmiseParMedecin(medecin.ID) {
		return domainerr.Forbidden("Seul le médecin ayant émis cette ordonnance peut y accéder")
	}
	return nil
}

// PDF retourne le rendu PDF d'une ordonnance. Le rendu est généré à la
// première demande puis mis en cache dans le document.
func (s *OrdonnanceService) PDF(ctx context.Context, ordonnanceID primitive.ObjectID) ([]byte, error) {
	ordonnance, err := s.ordonnances.FindByID(ctx, ordonnanceID)
	if err != nil {
		return nil, err
	}
	if ordonnance == nil {
		return nil, domainerr.NotFound("Ordonnance introuvable")
	}

	if ordonnance.PDFData != "" {
		cached, err := base64.StdEncoding.DecodeString(ordonnance.PDFData)
		if err == nil {
			return cached, nil
		}
		s.logger.Warn().Err(err).Str("ordonnance_id", ordonnanceID.Hex()).Msg("cache PDF corrompu, regénération")
	}

	rendered, err := s.render(ctx, ordonnance)
	if err != nil {
		return nil, err
	}

	encoded := base64.StdEncoding.EncodeToString(rendered)
	if err := s.ordonnances.SetPDF(ctx, ordonnance.ID, encoded); err != nil {
		s.logger.Warn().Err(err).Msg("écriture du cache PDF échouée")
	}
	return rendered, nil
}

func (s *OrdonnanceService) render(ctx context.Context, ordonnance *models.Ordonnance) ([]byte, error) {
	patient, err := s.patients.FindByID(ctx, ordonnance.PatientID)
	if err != nil {
		return nil, err
	}
	medecin, err := s.medecins.FindByID(ctx, ordonnance.MedecinID)
	if err != nil {
		return nil, err
	}
	clinique, err := s.clinique.GetConfig(ctx)
	if err != nil {
		return nil, err
	}

	doc := pdf.OrdonnanceDocument{
		CliniqueNom:     clinique.Nom,
		CliniqueAdresse: clinique.Adresse,
		DateOrdonnance:  ordonnance.DateOrdonnance.Format("02/01/2006"),
		Traitements:     ordonnance.Traitements,
		Instructions:    ordonnance.Instructions,
	}
	if patient != nil {
		doc.PatientNom = patient.Nom
		doc.PatientPrenom = patient.Prenom
		doc.DateNaissance = patient.DateNaissance
	}
	if medecin != nil {
		doc.MedecinNom = s.medecinNom(ctx, medecin)
		doc.Specialite = medecin.Specialite
		doc.NumeroOrdre = medecin.NumeroOrdre
		doc.SignatureData = medecin.SignatureData
		doc.SignatureType = medecin.SignatureType
	}

	return s.renderer.Render(doc)
}

func (s *OrdonnanceService) medecinNom(ctx context.Context, medecin *models.Medecin) string {
	user, err := s.users.FindByID(ctx, medecin.UserID)
	if err != nil || user == nil {
		return "votre médecin"
	}
	return "Dr " + user.FullName()
}
