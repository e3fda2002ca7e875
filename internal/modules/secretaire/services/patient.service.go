package services

import (
	"context"

	"clinique-core/internal/app/config"
	"clinique-core/internal/infrastructure/mailer"
	"clinique-core/internal/modules/core/domainerr"
	"clinique-core/internal/modules/core/models"
	"clinique-core/internal/modules/core/notifier"
	"clinique-core/internal/modules/core/repository"
	"clinique-core/internal/modules/secretaire/dto"
	"clinique-core/internal/shared/utils"

	"github.com/rs/zerolog"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// PatientService gestion des fiches patients par le secrétariat
type PatientService struct {
	patients *repository.PatientRepository
	users    *repository.UserRepository
	mailer   *mailer.Mailer
	notifier *notifier.Notifier
	cfg      *config.Config
	logger   zerolog.Logger
}

func NewPatientService(
	patients *repository.PatientRepository,
	users *repository.UserRepository,
	mail *mailer.Mailer,
	notif *notifier.Notifier,
	cfg *config.Config,
	logger zerolog.Logger,
) *PatientService {
	return &PatientService{
		patients: patients,
		users:    users,
		mailer:   mail,
		notifier: notif,
		cfg:      cfg,
		logger:   logger.With().Str("component", "secretaire-patients").Logger(),
	}
}

// List fiches patients paginées
func (s *PatientService) List(ctx context.Context, limit, skip int64) ([]models.Patient, error) {
	if limit <= 0 || limit > 100 {
		limit = 50
	}
	return s.patients.FindAll(ctx, limit, skip)
}

// Search recherche par nom, prénom, email ou téléphone
func (s *PatientService) Search(ctx context.Context, query string) ([]models.Patient, error) {
	if query == "" {
		return []models.Patient{}, nil
	}
	return s.patients.Search(ctx, query, 20)
}

// Get fiche d'un patient
func (s *PatientService) Get(ctx context.Context, patientID primitive.ObjectID) (*models.Patient, error) {
	patient, err := s.patients.FindByID(ctx, patientID)
	if err != nil {
		return nil, err
	}
	if patient == nil {
		return nil, domainerr.NotFound("Patient introuvable")
	}
	return patient, nil
}

// Create crée une fiche patient sans compte utilisateur
func (s *PatientService) Create(ctx context.Context, req dto.PatientRequest) (*models.Patient, error) {
	if req.Email != "" {
		existing, err := s.patients.FindByEmail(ctx, req.Email)
		if err != nil {
			return nil, err
		}
		if existing != nil {
			return nil, domainerr.DuplicateEmail()
		}
	}

	patient := &models.Patient{
		Nom:                   req.Nom,
		Prenom:                req.Prenom,
		Email:                 req.Email,
		Telephone:             req.Telephone,
		DateNaissance:         req.DateNaissance,
		Adresse:               req.Adresse,
		Ville:                 req.Ville,
		CodePostal:            req.CodePostal,
		Sexe:                  req.Sexe,
		NumeroSecuriteSociale: req.NumeroSecuriteSociale,
	}
	if err := s.patients.Insert(ctx, patient); err != nil {
		return nil, err
	}
	return patient, nil
}

// Update met à jour une fiche patient
func (s *PatientService) Update(ctx context.Context, patientID primitive.ObjectID, req dto.PatientRequest) (*models.Patient, error) {
	patient, err := s.Get(ctx, patientID)
	if err != nil {
		return nil, err
	}

	if req.Email != "" && req.Email != patient.Email {
		existing, err := s.patients.FindByEmail(ctx, req.Email)
		if err != nil {
			return nil, err
		}
		if existing != nil {
			return nil, domainerr.DuplicateEmail()
		}
		patient.Email = req.Email
	}

	patient.Nom = req.Nom
	patient.Prenom = req.Prenom
	if req.Telephone != "" {
		patient.Telephone = req.Telephone
	}
	if req.DateNaissance != "" {
		patient.DateNaissance = req.DateNaissance
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
	if req.Sexe != "" {
		patient.Sexe = req.Sexe
	}
	if req.NumeroSecuriteSociale != "" {
		patient.NumeroSecuriteSociale = req.NumeroSecuriteSociale
	}

	if err := s.patients.Update(ctx, patient); err != nil {
		return nil, err
	}
	return patient, nil
}

// CreateCompte ouvre un compte utilisateur pour un patient existant.
// Le mot de passe temporaire est envoyé par email et retourné à
// l'appelant.
func (s *PatientService) CreateCompte(ctx context.Context, patientID primitive.ObjectID) (*models.User, string, error) {
	patient, err := s.Get(ctx, patientID)
	if err != nil {
		return nil, "", err
	}

	if patient.Email == "" {
		return nil, "", domainerr.Validation("Le patient doit avoir un email pour créer un compte")
	}
	if patient.HasAccount() {
		return nil, "", domainerr.Validation("Ce patient possède déjà un compte")
	}

	existing, err := s.users.FindByEmail(ctx, patient.Email)
	if err != nil {
		return nil, "", err
	}
	if existing != nil {
		return nil, "", domainerr.DuplicateEmail()
	}

	tempPassword, err := utils.GenerateTempPassword(12)
	if err != nil {
		return nil, "", err
	}
	hash, err := utils.HashPassword(tempPassword, s.cfg.Security.BcryptCost)
	if err != nil {
		return nil, "", err
	}

	user := &models.User{
		Email:        patient.Email,
		PasswordHash: hash,
		Role:         models.RolePatient,
		Nom:          patient.Nom,
		Prenom:       patient.Prenom,
		Telephone:    patient.Telephone,
		IsActive:     true,
	}
	if err := s.users.Insert(ctx, user); err != nil {
		return nil, "", err
	}

	patient.UserID = &user.ID
	if err := s.patients.Update(ctx, patient); err != nil {
		return nil, "", err
	}

	s.mailer.SendAccountCredentials(patient.Email, patient.Nom, patient.Prenom, patient.Email, tempPassword)
	s.notifier.CompteCree(ctx, user.ID)

	s.logger.Info().Str("patient_id", patient.ID.Hex()).Str("user_id", user.ID.Hex()).Msg("compte patient créé")
	return user, tempPassword, nil
}

// DeleteCompte désactive le compte lié à un patient.
// La fiche patient est conservée.
func (s *PatientService) DeleteCompte(ctx context.Context, patientID primitive.ObjectID) error {
	patient, err := s.Get(ctx, patientID)
	if err != nil {
		return err
	}
	if !patient.HasAccount() {
		return domainerr.Validation("Ce patient n'a pas de compte")
	}

	user, err := s.users.FindByID(ctx, *patient.UserID)
	if err != nil {
		return err
	}
	if user != nil {
		user.IsActive = false
		if err := s.users.Update(ctx, user); err != nil {
			return err
		}
	}

	patient.UserID = nil
	return s.patients.Update(ctx, patient)
}
