package services

import (
	"context"
	"strconv"
	"time"

	"clinique-core/internal/app/config"
	"clinique-core/internal/infrastructure/database/redis"
	"clinique-core/internal/modules/agenda"
	authServices "clinique-core/internal/modules/auth/services"
	"clinique-core/internal/modules/core/domainerr"
	"clinique-core/internal/modules/core/models"
	"clinique-core/internal/modules/core/repository"
	"clinique-core/internal/modules/patient/dto"
	"clinique-core/internal/shared/utils"

	"github.com/rs/zerolog"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// RendezVousView rendez-vous enrichi du nom et de la spécialité du médecin
type RendezVousView struct {
	models.RendezVous
	MedecinNom string `json:"medecin_nom"`
	Specialite string `json:"specialite"`
}

// Dashboard synthèse de l'espace patient
type Dashboard struct {
	ProchainsRendezVous  []RendezVousView          `json:"prochains_rendezvous"`
	DernieresOrdonnances []models.Ordonnance       `json:"dernieres_ordonnances"`
	DerniersDocuments    []models.DocumentMedical  `json:"derniers_documents"`
	NotificationsNonLues int64                     `json:"notifications_non_lues"`
	NombreConsultations  int64                     `json:"nombre_consultations"`
}

// PatientService espace personnel du patient
type PatientService struct {
	patients      *repository.PatientRepository
	users         *repository.UserRepository
	medecins      *repository.MedecinRepository
	rdvs          *repository.RendezVousRepository
	dossiers      *repository.DossierRepository
	ordonnances   *repository.OrdonnanceRepository
	documents     *repository.DocumentRepository
	notifications *repository.NotificationRepository
	sessions      *authServices.SessionService
	agenda        *agenda.Service
	cache         *redis.Client
	cfg           *config.Config
	logger        zerolog.Logger
}

func NewPatientService(
	patients *repository.PatientRepository,
	users *repository.UserRepository,
	medecins *repository.MedecinRepository,
	rdvs *repository.RendezVousRepository,
	dossiers *repository.DossierRepository,
	ordonnances *repository.OrdonnanceRepository,
	documents *repository.DocumentRepository,
	notifications *repository.NotificationRepository,
	sessions *authServices.SessionService,
	agendaService *agenda.Service,
	cache *redis.Client,
	cfg *config.Config,
	logger zerolog.Logger,
) *PatientService {
	return &PatientService{
		patients:      patients,
		users:         users,
		medecins:      medecins,
		rdvs:          rdvs,
		dossiers:      dossiers,
		ordonnances:   ordonnances,
		documents:     documents,
		notifications: notifications,
		sessions:      sessions,
		agenda:        agendaService,
		cache:         cache,
		cfg:           cfg,
		logger:        logger.With().Str("component", "patient").Logger(),
	}
}

// Inscription crée le compte et la fiche patient, puis ouvre une session
func (s *PatientService) Inscription(ctx context.Context, req dto.InscriptionRequest) (*models.Session, *models.User, error) {
	existing, err := s.users.FindByEmail(ctx, req.Email)
	if err != nil {
		return nil, nil, err
	}
	if existing != nil {
		return nil, nil, domainerr.DuplicateEmail()
	}

	existingPatient, err := s.patients.FindByEmail(ctx, req.Email)
	if err != nil {
		return nil, nil, err
	}
	if existingPatient != nil && existingPatient.HasAccount() {
		return nil, nil, domainerr.DuplicateEmail()
	}

	hash, err := utils.HashPassword(req.Password, s.cfg.Security.BcryptCost)
	if err != nil {
		return nil, nil, err
	}

	user := &models.User{
		Email:        req.Email,
		PasswordHash: hash,
		Role:         models.RolePatient,
		Nom:          req.Nom,
		Prenom:       req.Prenom,
		Telephone:    req.Telephone,
		IsActive:     true,
	}
	if err := s.users.Insert(ctx, user); err != nil {
		return nil, nil, err
	}

	// Fiche existante sans compte : liaison au nouveau compte
	if existingPatient != nil {
		existingPatient.UserID = &user.ID
		if err := s.patients.Update(ctx, existingPatient); err != nil {
			return nil, nil, err
		}
	} else {
		patient := &models.Patient{
			Nom:           req.Nom,
			Prenom:        req.Prenom,
			Email:         req.Email,
			Telephone:     req.Telephone,
			DateNaissance: req.DateNaissance,
			Adresse:       req.Adresse,
			Ville:         req.Ville,
			CodePostal:    req.CodePostal,
			Sexe:          req.Sexe,
			UserID:        &user.ID,
		}
		if err := s.patients.Insert(ctx, patient); err != nil {
			return nil, nil, err
		}
	}

	session, err := s.sessions.Create(ctx, user)
	if err != nil {
		return nil, nil, err
	}

	s.logger.Info().Str("user_id", user.ID.Hex()).Msg("patient inscrit")
	return session, user, nil
}

// Profile fiche patient du compte connecté
func (s *PatientService) Profile(ctx context.Context, userID primitive.ObjectID) (*models.Patient, error) {
	patient, err := s.patients.FindByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if patient == nil {
		return nil, domainerr.NotFound("Fiche patient introuvable")
	}
	return patient, nil
}

// UpdateProfile met à jour les coordonnées du patient connecté
func (s *PatientService) UpdateProfile(ctx context.Context, userID primitive.ObjectID, req dto.UpdateProfilRequest) (*models.Patient, error) {
	patient, err := s.Profile(ctx, userID)
	if err != nil {
		return nil, err
	}

	if req.Telephone != "" {
		patient.Telephone = req.Telephone
	}
	if req.Adresse != "" {
		patient.Adresse = req.Adresse
	}
	if req.Ville != "" {
		patient.Ville = req.Ville
	}
	if req.CodePostal != "" {
		patient.CodePostal = req.CodePostal
	}

	if err := s.patients.Update(ctx, patient); err != nil {
		return nil, err
	}
	return patient, nil
}

// Dashboard agrège les prochains rendez-vous et les derniers éléments
// du dossier
func (s *PatientService) Dashboard(ctx context.Context, userID primitive.ObjectID) (*Dashboard, error) {
	patient, err := s.Profile(ctx, userID)
	if err != nil {
		return nil, err
	}

	dashboard := &Dashboard{
		ProchainsRendezVous:  []RendezVousView{},
		DernieresOrdonnances: []models.Ordonnance{},
		DerniersDocuments:    []models.DocumentMedical{},
	}

	rdvs, err := s.rdvs.FindByPatient(ctx, patient.ID, models.StatutConfirme)
	if err != nil {
		return nil, err
	}
	today := time.Now().UTC().Truncate(24 * time.Hour)
	for _, rdv := range rdvs {
		if !rdv.DateRdv.Before(today) && len(dashboard.ProchainsRendezVous) < 5 {
			dashboard.ProchainsRendezVous = append(dashboard.ProchainsRendezVous, s.enrichRdv(ctx, rdv))
		}
	}

	ordonnances, err := s.ordonnances.FindByPatient(ctx, patient.ID)
	if err != nil {
		return nil, err
	}
	if len(ordonnances) > 5 {
		ordonnances = ordonnances[:5]
	}
	dashboard.DernieresOrdonnances = ordonnances

	documents, err := s.documents.FindByPatient(ctx, patient.ID)
	if err != nil {
		return nil, err
	}
	if len(documents) > 5 {
		documents = documents[:5]
	}
	dashboard.DerniersDocuments = documents

	if dashboard.NotificationsNonLues, err = s.countUnread(ctx, userID); err != nil {
		return nil, err
	}
	if dashboard.NombreConsultations, err = s.dossiers.CountByPatient(ctx, patient.ID); err != nil {
		return nil, err
	}

	return dashboard, nil
}

// ListRendezVous rendez-vous du patient, enrichis du médecin
func (s *PatientService) ListRendezVous(ctx context.Context, userID primitive.ObjectID, statut string) ([]RendezVousView, error) {
	patient, err := s.Profile(ctx, userID)
	if err != nil {
		return nil, err
	}

	rdvs, err := s.rdvs.FindByPatient(ctx, patient.ID, statut)
	if err != nil {
		return nil, err
	}

	views := make([]RendezVousView, 0, len(rdvs))
	for _, rdv := range rdvs {
		views = append(views, s.enrichRdv(ctx, rdv))
	}
	return views, nil
}

// DemanderRendezVous crée une demande si le créneau est libre
func (s *PatientService) DemanderRendezVous(ctx context.Context, userID primitive.ObjectID, req dto.DemandeRendezVousRequest) (*models.RendezVous, error) {
	patient, err := s.Profile(ctx, userID)
	if err != nil {
		return nil, err
	}

	medecinID, err := primitive.ObjectIDFromHex(req.MedecinID)
	if err != nil {
		return nil, domainerr.Validation("Identifiant de médecin invalide")
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
		PatientID: patient.ID,
		MedecinID: medecinID,
		DateRdv:   date,
		HeureRdv:  req.HeureRdv,
		Motif:     req.Motif,
		Statut:    models.StatutDemande,
	}
	if err := s.rdvs.Insert(ctx, rdv); err != nil {
		return nil, err
	}
	return rdv, nil
}

// AnnulerRendezVous annule un rendez-vous appartenant au patient
func (s *PatientService) AnnulerRendezVous(ctx context.Context, userID, rdvID primitive.ObjectID) error {
	patient, err := s.Profile(ctx, userID)
	if err != nil {
		return err
	}

	rdv, err := s.rdvs.FindByID(ctx, rdvID)
	if err != nil {
		return err
	}
	if rdv == nil {
		return domainerr.NotFound("Rendez-vous introuvable")
	}
	if rdv.PatientID != patient.ID {
		return domainerr.Forbidden("Ce rendez-vous ne vous appartient pas")
	}

	if !agenda.CanTransition(rdv.Statut, models.StatutAnnule) {
		return domainerr.New(domainerr.CodeConflict, "Ce rendez-vous ne peut plus être annulé")
	}

	rdv.Statut = models.StatutAnnule
	return s.rdvs.Update(ctx, rdv)
}

// ListDossiers consultations du patient
func (s *PatientService) ListDossiers(ctx context.Context, userID primitive.ObjectID) ([]models.DossierMedical, error) {
	patient, err := s.Profile(ctx, userID)
	if err != nil {
		return nil, err
	}
	return s.dossiers.FindByPatient(ctx, patient.ID)
}

// ListOrdonnances ordonnances du patient
func (s *PatientService) ListOrdonnances(ctx context.Context, userID primitive.ObjectID) ([]models.Ordonnance, error) {
	patient, err := s.Profile(ctx, userID)
	if err != nil {
		return nil, err
	}
	return s.ordonnances.FindByPatient(ctx, patient.ID)
}

// OwnsOrdonnance vérifie que l'ordonnance appartient au patient connecté
func (s *PatientService) OwnsOrdonnance(ctx context.Context, userID, ordonnanceID primitive.ObjectID) error {
	patient, err := s.Profile(ctx, userID)
	if err != nil {
		return err
	}

	ordonnance, err := s.ordonnances.FindByID(ctx, ordonnanceID)
	if err != nil {
		return err
	}
	if ordonnance == nil {
		return domainerr.NotFound("Ordonnance introuvable")
	}
	if ordonnance.PatientID != patient.ID {
		return domainerr.Forbidden("Cette ordonnance ne vous appartient pas")
	}
	return nil
}

// ListDocuments documents du patient, sans leur contenu
func (s *PatientService) ListDocuments(ctx context.Context, userID primitive.ObjectID) ([]models.DocumentMedical, error) {
	patient, err := s.Profile(ctx, userID)
	if err != nil {
		return nil, err
	}
	return s.documents.FindByPatient(ctx, patient.ID)
}

// OwnsDocument vérifie que le document appartient au patient connecté
func (s *PatientService) OwnsDocument(ctx context.Context, userID, documentID primitive.ObjectID) error {
	patient, err := s.Profile(ctx, userID)
	if err != nil {
		return err
	}

	document, err := s.documents.FindByID(ctx, documentID)
	if err != nil {
		return err
	}
	if document == nil {
		return domainerr.NotFound("Document introuvable")
	}
	if document.PatientID != patient.ID {
		return domainerr.Forbidden("Ce document ne vous appartient pas")
	}
	return nil
}

// ListNotifications notifications du compte connecté
func (s *PatientService) ListNotifications(ctx context.Context, userID primitive.ObjectID, unreadOnly bool) ([]models.Notification, error) {
	var isRead *bool
	if unreadOnly {
		v := false
		isRead = &v
	}
	return s.notifications.FindByUser(ctx, userID, isRead, 50)
}

// MarkNotificationRead marque comme lue une notification du compte
func (s *PatientService) MarkNotificationRead(ctx context.Context, userID, notificationID primitive.ObjectID) error {
	notification, err := s.notifications.FindByID(ctx, notificationID)
	if err != nil {
		return err
	}
	if notification == nil {
		return domainerr.NotFound("Notification introuvable")
	}
	if notification.UserID != userID {
		return domainerr.Forbidden("Cette notification ne vous appartient pas")
	}
	if err := s.notifications.MarkRead(ctx, notificationID); err != nil {
		return err
	}

	key := s.cache.Keys().UnreadNotificationsKey(userID.Hex())
	if err := s.cache.Del(ctx, key); err != nil {
		s.logger.Debug().Err(err).Str("key", key).Msg("invalidation cache non-lus échouée")
	}
	return nil
}

// countUnread lit le compteur de non-lus en cache, sinon compte en base.
// Le cache est invalidé à chaque notification créée ou lue.
func (s *PatientService) countUnread(ctx context.Context, userID primitive.ObjectID) (int64, error) {
	key := s.cache.Keys().UnreadNotificationsKey(userID.Hex())
	if cached, err := s.cache.Get(ctx, key); err == nil && cached != "" {
		if count, err := strconv.ParseInt(cached, 10, 64); err == nil {
			return count, nil
		}
	}

	count, err := s.notifications.CountUnread(ctx, userID)
	if err != nil {
		return 0, err
	}
	if err := s.cache.Set(ctx, key, count, 5*time.Minute); err != nil {
		s.logger.Debug().Err(err).Str("key", key).Msg("écriture cache non-lus échouée")
	}
	return count, nil
}

func (s *PatientService) enrichRdv(ctx context.Context, rdv models.RendezVous) RendezVousView {
	view := RendezVousView{RendezVous: rdv}

	medecin, err := s.medecins.FindByID(ctx, rdv.MedecinID)
	if err != nil || medecin == nil {
		return view
	}
	view.Specialite = medecin.Specialite

	user, err := s.users.FindByID(ctx, medecin.UserID)
	if err == nil && user != nil {
		view.MedecinNom = "Dr " + user.FullName()
	}
	return view
}
