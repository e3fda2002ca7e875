package services

import (
	"context"
	"time"

	"clinique-core/internal/infrastructure/mailer"
	"clinique-core/internal/modules/agenda"
	"clinique-core/internal/modules/core/domainerr"
	"clinique-core/internal/modules/core/models"
	"clinique-core/internal/modules/core/notifier"
	"clinique-core/internal/modules/core/repository"

	"github.com/rs/zerolog"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Dashboard synthèse du jour pour un médecin
type Dashboard struct {
	RdvAujourdhui       int                 `json:"rdv_aujourdhui"`
	RdvSemaine          int                 `json:"rdv_semaine"`
	DemandesEnAttente   int                 `json:"demandes_en_attente"`
	PatientsSuivis      int                 `json:"patients_suivis"`
	ProchainsRendezVous []models.RendezVous `json:"prochains_rendezvous"`
}

// MedecinService opérations du domaine médecin
type MedecinService struct {
	medecins *repository.MedecinRepository
	patients *repository.PatientRepository
	users    *repository.UserRepository
	rdvs     *repository.RendezVousRepository
	dossiers *repository.DossierRepository
	notifier *notifier.Notifier
	mailer   *mailer.Mailer
	logger   zerolog.Logger
}

func NewMedecinService(
	medecins *repository.MedecinRepository,
	patients *repository.PatientRepository,
	users *repository.UserRepository,
	rdvs *repository.RendezVousRepository,
	dossiers *repository.DossierRepository,
	notif *notifier.Notifier,
	mail *mailer.Mailer,
	logger zerolog.Logger,
) *MedecinService {
	return &MedecinService{
		medecins: medecins,
		patients: patients,
		users:    users,
		rdvs:     rdvs,
		dossiers: dossiers,
		notifier: notif,
		mailer:   mail,
		logger:   logger.With().Str("component", "medecin").Logger(),
	}
}

// Profile retrouve la fiche médecin du compte connecté
func (s *MedecinService) Profile(ctx context.Context, userID primitive.ObjectID) (*models.Medecin, error) {
	medecin, err := s.medecins.FindByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if medecin == nil {
		return nil, domainerr.NotFound("Profil médecin introuvable")
	}
	return medecin, nil
}

// Dashboard agrège les compteurs du jour et de la semaine
func (s *MedecinService) Dashboard(ctx context.Context, userID primitive.ObjectID) (*Dashboard, error) {
	medecin, err := s.Profile(ctx, userID)
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
	weekEnd := today.AddDate(0, 0, 7)

	todayRdvs, err := s.rdvs.FindByDate(ctx, today, &medecin.ID)
	if err != nil {
		return nil, err
	}

	weekRdvs, err := s.rdvs.FindByMedecin(ctx, medecin.ID, "", &today, &weekEnd)
	if err != nil {
		return nil, err
	}

	dashboard := &Dashboard{ProchainsRendezVous: []models.RendezVous{}}
	for _, rdv := range todayRdvs {
		if rdv.EstActif() {
			dashboard.RdvAujourdhui++
			if len(dashboard.ProchainsRendezVous) < 5 {
				dashboard.ProchainsRendezVous = append(dashboard.ProchainsRendezVous, rdv)
			}
		}
	}
	for _, rdv := range weekRdvs {
		if rdv.EstActif() {
			dashboard.RdvSemaine++
		}
		if rdv.Statut == models.StatutDemande {
			dashboard.DemandesEnAttente++
		}
	}

	patientIDs, err := s.distinctPatientIDs(ctx, medecin.ID)
	if err != nil {
		return nil, err
	}
	dashboard.PatientsSuivis = len(patientIDs)

	return dashboard, nil
}

// ListRendezVous rendez-vous du médecin, filtres date et statut
func (s *MedecinService) ListRendezVous(ctx context.Context, userID primitive.ObjectID, date *time.Time, statut string) ([]models.RendezVous, error) {
	medecin, err := s.Profile(ctx, userID)
	if err != nil {
		return nil, err
	}

	if date != nil {
		rdvs, err := s.rdvs.FindByDate(ctx, *date, &medecin.ID)
		if err != nil {
			return nil, err
		}
		if statut == "" {
			return rdvs, nil
		}
		filtered := []models.RendezVous{}
		for _, rdv := range rdvs {
			if rdv.Statut == statut {
				filtered = append(filtered, rdv)
			}
		}
		return filtered, nil
	}

	return s.rdvs.FindByMedecin(ctx, medecin.ID, statut, nil, nil)
}

// Accepter confirme une demande de rendez-vous du médecin connecté
func (s *MedecinService) Accepter(ctx context.Context, userID, rdvID primitive.ObjectID) (*models.RendezVous, error) {
	medecin, rdv, err := s.ownRendezVous(ctx, userID, rdvID)
	if err != nil {
		return nil, err
	}

	if !agenda.CanTransition(rdv.Statut, models.StatutConfirme) {
		return nil, domainerr.New(domainerr.CodeConflict, "Ce rendez-vous ne peut plus être confirmé")
	}

	rdv.Statut = models.StatutConfirme
	if err := s.rdvs.Update(ctx, rdv); err != nil {
		return nil, err
	}

	s.notifyConfirmation(ctx, medecin, rdv)
	return rdv, nil
}

// Refuser annule une demande de rendez-vous du médecin connecté
func (s *MedecinService) Refuser(ctx context.Context, userID, rdvID primitive.ObjectID) (*models.RendezVous, error) {
	_, rdv, err := s.ownRendezVous(ctx, userID, rdvID)
	if err != nil {
		return nil, err
	}

	if !agenda.CanTransition(rdv.Statut, models.StatutAnnule) {
		return nil, domainerr.New(domainerr.CodeConflict, "Ce rendez-vous ne peut plus être annulé")
	}

	rdv.Statut = models.StatutAnnule
	if err := s.rdvs.Update(ctx, rdv); err != nil {
		return nil, err
	}

	s.notifier.RendezVousAnnule(ctx, rdv.PatientID, rdv.DateRdv.Format("02/01/2006"), rdv.HeureRdv)
	return rdv, nil
}

// ListPatients patients suivis, issus des rendez-vous et des dossiers
func (s *MedecinService) ListPatients(ctx context.Context, userID primitive.ObjectID) ([]models.Patient, error) {
	medecin, err := s.Profile(ctx, userID)
	if err != nil {
		return nil, err
	}

	ids, err := s.distinctPatientIDs(ctx, medecin.ID)
	if err != nil {
		return nil, err
	}

	patients, err := s.patients.FindByIDs(ctx, ids)
	if err != nil {
		return nil, err
	}

	result := make([]models.Patient, 0, len(patients))
	for _, id := range ids {
		if patient, ok := patients[id.Hex()]; ok {
			result = append(result, patient)
		}
	}
	return result, nil
}

// SearchPatients recherche parmi tous les patients de la clinique
func (s *MedecinService) SearchPatients(ctx context.Context, query string) ([]models.Patient, error) {
	if query == "" {
		return []models.Patient{}, nil
	}
	return s.patients.Search(ctx, query, 20)
}

// GetPatient fiche d'un patient
func (s *MedecinService) GetPatient(ctx context.Context, patientID primitive.ObjectID) (*models.Patient, error) {
	patient, err := s.patients.FindByID(ctx, patientID)
	if err != nil {
		return nil, err
	}
	if patient == nil {
		return nil, domainerr.NotFound("Patient introuvable")
	}
	return patient, nil
}

// PatientDossiers historique des consultations d'un patient
func (s *MedecinService) PatientDossiers(ctx context.Context, patientID primitive.ObjectID) ([]models.DossierMedical, error) {
	if _, err := s.GetPatient(ctx, patientID); err != nil {
		return nil, err
	}
	return s.dossiers.FindByPatient(ctx, patientID)
}

// ownRendezVous charge un rendez-vous en vérifiant qu'il appartient
// au médecin connecté
func (s *MedecinService) ownRendezVous(ctx context.Context, userID, rdvID primitive.ObjectID) (*models.Medecin, *models.RendezVous, error) {
	medecin, err := s.Profile(ctx, userID)
	if err != nil {
		return nil, nil, err
	}

	rdv, err := s.rdvs.FindByID(ctx, rdvID)
	if err != nil {
		return nil, nil, err
	}
	if rdv == nil {
		return nil, nil, domainerr.NotFound("Rendez-vous introuvable")
	}
	if rdv.MedecinID != medecin.ID {
		return nil, nil, domainerr.Forbidden("Ce rendez-vous ne vous appartient pas")
	}
	return medecin, rdv, nil
}

// notifyConfirmation prévient le patient d'une confirmation, en base et
// par email quand une adresse est connue. Les refus passent par la
// notification d'annulation.
func (s *MedecinService) notifyConfirmation(ctx context.Context, medecin *models.Medecin, rdv *models.RendezVous) {
	user, err := s.users.FindByID(ctx, medecin.UserID)
	medecinNom := "votre médecin"
	if err == nil && user != nil {
		medecinNom = "Dr " + user.FullName()
	}

	dateStr := rdv.DateRdv.Format("02/01/2006")
	s.notifier.RendezVousConfirme(ctx, rdv.PatientID, dateStr, rdv.HeureRdv, medecinNom)

	patient, err := s.patients.FindByID(ctx, rdv.PatientID)
	if err == nil && patient != nil && patient.Email != "" {
		s.mailer.SendRendezVousConfirmation(patient.Email, patient.Nom, patient.Prenom, dateStr, rdv.HeureRdv, medecinNom)
	}
}

// distinctPatientIDs fusionne les patients des rendez-vous et des dossiers
func (s *MedecinService) distinctPatientIDs(ctx context.Context, medecinID primitive.ObjectID) ([]primitive.ObjectID, error) {
	fromRdvs, err := s.rdvs.DistinctPatientIDs(ctx, medecinID)
	if err != nil {
		return nil, err
	}
	fromDossiers, err := s.dossiers.DistinctPatientIDsByMedecin(ctx, medecinID)
	if err != nil {
		return nil, err
	}

	seen := map[string]bool{}
	merged := []primitive.ObjectID{}
	for _, id := range append(fromRdvs, fromDossiers...) {
		if !seen[id.Hex()] {
			seen[id.Hex()] = true
			merged = append(merged, id)
		}
	}
	return merged, nil
}
