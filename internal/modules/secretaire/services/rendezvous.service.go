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
	"clinique-core/internal/modules/secretaire/dto"

	"github.com/rs/zerolog"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Dashboard synthèse du jour pour le secrétariat
type Dashboard struct {
	RdvAujourdhui     []models.RendezVous `json:"rdv_aujourdhui"`
	DemandesEnAttente int64               `json:"demandes_en_attente"`
	TotalPatients     int64               `json:"total_patients"`
}

// RendezVousService prise et gestion des rendez-vous par le secrétariat
type RendezVousService struct {
	rdvs     *repository.RendezVousRepository
	patients *repository.PatientRepository
	medecins *repository.MedecinRepository
	users    *repository.UserRepository
	agenda   *agenda.Service
	notifier *notifier.Notifier
	mailer   *mailer.Mailer
	logger   zerolog.Logger
}

func NewRendezVousService(
	rdvs *repository.RendezVousRepository,
	patients *repository.PatientRepository,
	medecins *repository.MedecinRepository,
	users *repository.UserRepository,
	agendaService *agenda.Service,
	notif *notifier.Notifier,
	mail *mailer.Mailer,
	logger zerolog.Logger,
) *RendezVousService {
	return &RendezVousService{
		rdvs:     rdvs,
		patients: patients,
		medecins: medecins,
		users:    users,
		agenda:   agendaService,
		notifier: notif,
		mailer:   mail,
		logger:   logger.With().Str("component", "secretaire-rdv").Logger(),
	}
}

// Dashboard agrège les rendez-vous du jour et les demandes en attente
func (s *RendezVousService) Dashboard(ctx context.Context) (*Dashboard, error) {
	now := time.Now().UTC()

	todayRdvs, err := s.rdvs.FindByDate(ctx, now, nil)
	if err != nil {
		return nil, err
	}

	demandes, err := s.rdvs.CountByStatut(ctx, models.StatutDemande)
	if err != nil {
		return nil, err
	}

	totalPatients, err := s.patients.Count(ctx)
	if err != nil {
		return nil, err
	}

	return &Dashboard{
		RdvAujourdhui:     todayRdvs,
		DemandesEnAttente: demandes,
		TotalPatients:     totalPatients,
	}, nil
}

// List rendez-vous filtrés par date, statut et médecin
func (s *RendezVousService) List(ctx context.Context, date *time.Time, statut string, medecinID *primitive.ObjectID) ([]models.RendezVous, error) {
	if medecinID != nil {
		return s.rdvs.FindByMedecin(ctx, *medecinID, statut, date, date)
	}
	if date != nil {
		rdvs, err := s.rdvs.FindByDate(ctx, *date, nil)
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
	return s.rdvs.FindAll(ctx, statut, nil, 200)
}

// Create prend un rendez-vous directement confirmé si le créneau
// est libre
func (s *RendezVousService) Create(ctx context.Context, req dto.CreateRendezVousRequest) (*models.RendezVous, error) {
	patientID, err := primitive.ObjectIDFromHex(req.PatientID)
	if err != nil {
		return nil, domainerr.Validation("Identifiant de patient invalide")
	}
	medecinID, err := primitive.ObjectIDFromHex(req.MedecinID)
	if err != nil {
		return nil, domainerr.Validation("Identifiant de médecin invalide")
	}

	patient, err := s.patients.FindByID(ctx, patientID)
	if err != nil {
		return nil, err
	}
	if patient == nil {
		return nil, domainerr.NotFound("Patient introuvable")
	}

	medecin, err := s.medecins.FindByID(ctx, medecinID)
	if err != nil {
		return nil, err
	}
	if medecin == nil {
		return nil, domainerr.NotFound("Médecin introuvable")
	}

	date, err := time.Parse("2006-01-02", req.DateRdv)
	if err != nil {
		return nil, domainerr.Validation("Date invalide, format attendu: YYYY-MM-DD")
	}

	libre, err := s.agenda.CheckDisponibilite(ctx, medecinID, date, req.HeureRdv)
	if err != nil {
		return nil, err
	}
	if !libre {
		return nil, domainerr.SlotUnavailable()
	}

	rdv := &models.RendezVous{
		PatientID: patientID,
		MedecinID: medecinID,
		DateRdv:   date,
		HeureRdv:  req.HeureRdv,
		Motif:     req.Motif,
		Statut:    models.StatutConfirme,
	}
	if err := s.rdvs.Insert(ctx, rdv); err != nil {
		return nil, err
	}

	s.notifyConfirmation(ctx, patient, medecin, rdv)
	return rdv, nil
}

// Update déplace ou annote un rendez-vous. Un changement de créneau
// repasse par le contrôle de disponibilité.
func (s *RendezVousService) Update(ctx context.Context, rdvID primitive.ObjectID, req dto.UpdateRendezVousRequest) (*models.RendezVous, error) {
	rdv, err := s.rdvs.FindByID(ctx, rdvID)
	if err != nil {
		return nil, err
	}
	if rdv == nil {
		return nil, domainerr.NotFound("Rendez-vous introuvable")
	}

	newDate := rdv.DateRdv
	newHeure := rdv.HeureRdv
	if req.DateRdv != "" {
		parsed, err := time.Parse("2006-01-02", req.DateRdv)
		if err != nil {
			return nil, domainerr.Validation("Date invalide, format attendu: YYYY-MM-DD")
		}
		newDate = parsed
	}
	if req.HeureRdv != "" {
		newHeure = req.HeureRdv
	}

	if !newDate.Equal(rdv.DateRdv) || newHeure != rdv.HeureRdv {
		libre, err := s.agenda.CheckDisponibilite(ctx, rdv.MedecinID, newDate, newHeure)
		if err != nil {
			return nil, err
		}
		if !libre {
			return nil, domainerr.SlotUnavailable()
		}
		rdv.DateRdv = newDate
		rdv.HeureRdv = newHeure
	}

	if req.Motif != "" {
		rdv.Motif = req.Motif
	}
	if req.Notes != "" {
		rdv.Notes = req.Notes
	}

	if err := s.rdvs.Update(ctx, rdv); err != nil {
		return nil, err
	}
	return rdv, nil
}

// Confirmer valide une demande de rendez-vous
func (s *RendezVousService) Confirmer(ctx context.Context, rdvID primitive.ObjectID) (*models.RendezVous, error) {
	rdv, err := s.rdvs.FindByID(ctx, rdvID)
	if err != nil {
		return nil, err
	}
	if rdv == nil {
		return nil, domainerr.NotFound("Rendez-vous introuvable")
	}

	if !agenda.CanTransition(rdv.Statut, models.StatutConfirme) {
		return nil, domainerr.New(domainerr.CodeConflict, "Ce rendez-vous ne peut plus être confirmé")
	}

	rdv.Statut = models.StatutConfirme
	if err := s.rdvs.Update(ctx, rdv); err != nil {
		return nil, err
	}

	patient, _ := s.patients.FindByID(ctx, rdv.PatientID)
	medecin, _ := s.medecins.FindByID(ctx, rdv.MedecinID)
	if patient != nil && medecin != nil {
		s.notifyConfirmation(ctx, patient, medecin, rdv)
	}
	return rdv, nil
}

// Annuler passe un rendez-vous au statut annule.
// Le document est conservé.
func (s *RendezVousService) Annuler(ctx context.Context, rdvID primitive.ObjectID) error {
	rdv, err := s.rdvs.FindByID(ctx, rdvID)
	if err != nil {
		return err
	}
	if rdv == nil {
		return domainerr.NotFound("Rendez-vous introuvable")
	}

	if !agenda.CanTransition(rdv.Statut, models.StatutAnnule) {
		return domainerr.New(domainerr.CodeConflict, "Ce rendez-vous ne peut plus être annulé")
	}

	rdv.Statut = models.StatutAnnule
	if err := s.rdvs.Update(ctx, rdv); err != nil {
		return err
	}

	s.notifier.RendezVousAnnule(ctx, rdv.PatientID, rdv.DateRdv.Format("02/01/2006"), rdv.HeureRdv)
	return nil
}

func (s *RendezVousService) notifyConfirmation(ctx context.Context, patient *models.Patient, medecin *models.Medecin, rdv *models.RendezVous) {
	medecinNom := "votre médecin"
	user, err := s.users.FindByID(ctx, medecin.UserID)
	if err == nil && user != nil {
		medecinNom = "Dr " + user.FullName()
	}

	dateStr := rdv.DateRdv.Format("02/01/2006")
	s.notifier.RendezVousConfirme(ctx, patient.ID, dateStr, rdv.HeureRdv, medecinNom)
	if patient.Email != "" {
		s.mailer.SendRendezVousConfirmation(patient.Email, patient.Nom, patient.Prenom, dateStr, rdv.HeureRdv, medecinNom)
	}
}
