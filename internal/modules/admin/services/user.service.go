package services

import (
	"context"

	"clinique-core/internal/app/config"
	"clinique-core/internal/infrastructure/mailer"
	"clinique-core/internal/modules/admin/dto"
	authServices "clinique-core/internal/modules/auth/services"
	"clinique-core/internal/modules/core/domainerr"
	"clinique-core/internal/modules/core/models"
	"clinique-core/internal/modules/core/notifier"
	"clinique-core/internal/modules/core/repository"
	"clinique-core/internal/shared/utils"

	"github.com/rs/zerolog"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// UserAdminService gestion des comptes par l'administration
type UserAdminService struct {
	users    *repository.UserRepository
	medecins *repository.MedecinRepository
	sessions *authServices.SessionService
	mailer   *mailer.Mailer
	notifier *notifier.Notifier
	cfg      *config.Config
	logger   zerolog.Logger
}

func NewUserAdminService(
	users *repository.UserRepository,
	medecins *repository.MedecinRepository,
	sessions *authServices.SessionService,
	mail *mailer.Mailer,
	notif *notifier.Notifier,
	cfg *config.Config,
	logger zerolog.Logger,
) *UserAdminService {
	return &UserAdminService{
		users:    users,
		medecins: medecins,
		sessions: sessions,
		mailer:   mail,
		notifier: notif,
		cfg:      cfg,
		logger:   logger.With().Str("component", "admin-users").Logger(),
	}
}

// UserView compte enrichi de son profil médecin éventuel
type UserView struct {
	*models.User
	Medecin *models.Medecin `json:"medecin,omitempty"`
}

// List retourne les comptes, filtrés par rôle et état
func (s *UserAdminService) List(ctx context.Context, role string, isActive *bool) ([]UserView, error) {
	users, err := s.users.FindAll(ctx, role, isActive)
	if err != nil {
		return nil, err
	}

	views := []UserView{}
	for i := range users {
		view := UserView{User: &users[i]}
		if users[i].Role == models.RoleMedecin {
			medecin, err := s.medecins.FindByUserID(ctx, users[i].ID)
			if err != nil {
				return nil, err
			}
			view.Medecin = medecin
		}
		views = append(views, view)
	}
	return views, nil
}

// Create crée un compte. Sans mot de passe fourni, un mot de passe
// temporaire est généré et envoyé par email.
func (s *UserAdminService) Create(ctx context.Context, req dto.CreateUserRequest) (*models.User, string, error) {
	if req.Role == models.RoleMedecin && req.Specialite == "" {
		return nil, "", domainerr.Validation("La spécialité est requise pour un médecin")
	}

	existing, err := s.users.FindByEmail(ctx, req.Email)
	if err != nil {
		return nil, "", err
	}
	if existing != nil {
		return nil, "", domainerr.DuplicateEmail()
	}

	password := req.Password
	tempPassword := ""
	if password == "" {
		tempPassword, err = utils.GenerateTempPassword(12)
		if err != nil {
			return nil, "", err
		}
		password = tempPassword
	}

	hash, err := utils.HashPassword(password, s.cfg.Security.BcryptCost)
	if err != nil {
		return nil, "", err
	}

	user := &models.User{
		Email:        req.Email,
		PasswordHash: hash,
		Role:         req.Role,
		Nom:          req.Nom,
		Prenom:       req.Prenom,
		Telephone:    req.Telephone,
		IsActive:     true,
	}
	if err := s.users.Insert(ctx, user); err != nil {
		return nil, "", err
	}

	if req.Role == models.RoleMedecin {
		medecin := &models.Medecin{
			UserID:      user.ID,
			Specialite:  req.Specialite,
			NumeroOrdre: req.NumeroOrdre,
		}
		if err := s.medecins.Insert(ctx, medecin); err != nil {
			return nil, "", err
		}
	}

	if tempPassword != "" {
		s.mailer.SendAccountCredentials(user.Email, user.Nom, user.Prenom, user.Email, tempPassword)
	}
	s.notifier.CompteCree(ctx, user.ID)

	s.logger.Info().Str("user_id", user.ID.Hex()).Str("role", user.Role).Msg("compte créé")
	return user, tempPassword, nil
}

// Update modifie un compte et son profil médecin éventuel
func (s *UserAdminService) Update(ctx context.Context, userID primitive.ObjectID, req dto.UpdateUserRequest) (*models.User, error) {
	user, err := s.users.FindByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, domainerr.NotFound("Utilisateur introuvable")
	}

	if req.Nom != "" {
		user.Nom = req.Nom
	}
	if req.Prenom != "" {
		user.Prenom = req.Prenom
	}
	if req.Telephone != "" {
		user.Telephone = req.Telephone
	}
	if req.IsActive != nil {
		user.IsActive = *req.IsActive
		if !user.IsActive {
			if err := s.sessions.DeleteAllForUser(ctx, user.ID); err != nil {
				s.logger.Warn().Err(err).Msg("invalidation des sessions échouée")
			}
		}
	}

	if err := s.users.Update(ctx, user); err != nil {
		return nil, err
	}

	if user.Role == models.RoleMedecin && (req.Specialite != "" || req.NumeroOrdre != "") {
		medecin, err := s.medecins.FindByUserID(ctx, user.ID)
		if err != nil {
			return nil, err
		}
		if medecin != nil {
			if req.Specialite != "" {
				medecin.Specialite = req.Specialite
			}
			if req.NumeroOrdre != "" {
				medecin.NumeroOrdre = req.NumeroOrdre
			}
			if err := s.medecins.Update(ctx, medecin); err != nil {
				return nil, err
			}
		}
	}

	return user, nil
}

// Deactivate désactive un compte et invalide ses sessions.
// Aucun document n'est supprimé.
func (s *UserAdminService) Deactivate(ctx context.Context, userID primitive.ObjectID) error {
	user, err := s.users.FindByID(ctx, userID)
	if err != nil {
		return err
	}
	if user == nil {
		return domainerr.NotFound("Utilisateur introuvable")
	}

	user.IsActive = false
	if err := s.users.Update(ctx, user); err != nil {
		return err
	}

	if err := s.sessions.DeleteAllForUser(ctx, user.ID); err != nil {
		s.logger.Warn().Err(err).Msg("invalidation des sessions échouée")
	}

	s.logger.Info().Str("user_id", user.ID.Hex()).Msg("compte désactivé")
	return nil
}

// ResetPassword génère un mot de passe temporaire, le retourne et
// l'envoie par email.
func (s *UserAdminService) ResetPassword(ctx context.Context, userID primitive.ObjectID) (string, error) {
	user, err := s.users.FindByID(ctx, userID)
	if err != nil {
		return "", err
	}
	if user == nil {
		return "", domainerr.NotFound("Utilisateur introuvable")
	}

	tempPassword, err := utils.GenerateTempPassword(12)
	if err != nil {
		return "", err
	}

	hash, err := utils.HashPassword(tempPassword, s.cfg.Security.BcryptCost)
	if err != nil {
		return "", err
	}

	user.PasswordHash = hash
	if err := s.users.Update(ctx, user); err != nil {
		return "", err
	}

	s.mailer.SendPasswordReset(user.Email, user.Nom, user.Prenom, tempPassword)
	return tempPassword, nil
}
