package services

import (
	"context"

	"clinique-core/internal/app/config"
	"clinique-core/internal/infrastructure/mailer"
	"clinique-core/internal/modules/core/domainerr"
	"clinique-core/internal/modules/core/models"
	"clinique-core/internal/modules/core/repository"
	"clinique-core/internal/shared/utils"

	"github.com/rs/zerolog"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// AuthService authentification et gestion des mots de passe
type AuthService struct {
	users    *repository.UserRepository
	sessions *SessionService
	mailer   *mailer.Mailer
	cfg      *config.Config
	logger   zerolog.Logger
}

func NewAuthService(users *repository.UserRepository, sessions *SessionService, mail *mailer.Mailer, cfg *config.Config, logger zerolog.Logger) *AuthService {
	return &AuthService{
		users:    users,
		sessions: sessions,
		mailer:   mail,
		cfg:      cfg,
		logger:   logger.With().Str("component", "auth").Logger(),
	}
}

// Login vérifie les identifiants et ouvre une session
func (s *AuthService) Login(ctx context.Context, email, password string) (*models.Session, *models.User, error) {
	user, err := s.users.FindByEmail(ctx, email)
	if err != nil {
		return nil, nil, err
	}
	if user == nil || !utils.VerifyPassword(user.PasswordHash, password) {
		return nil, nil, domainerr.New(domainerr.CodeBadCredentials, "Email ou mot de passe incorrect")
	}
	if !user.IsActive {
		return nil, nil, domainerr.New(domainerr.CodeInactiveAccount, "Ce compte est désactivé")
	}

	session, err := s.sessions.Create(ctx, user)
	if err != nil {
		return nil, nil, err
	}

	s.logger.Info().Str("user_id", user.ID.Hex()).Str("role", user.Role).Msg("connexion réussie")
	return session, user, nil
}

// Logout ferme la session du token, sans erreur si elle n'existe plus
func (s *AuthService) Logout(ctx context.Context, token string) error {
	return s.sessions.Delete(ctx, token)
}

// CurrentUser retourne l'utilisateur d'un identifiant de session
func (s *AuthService) CurrentUser(ctx context.Context, userID primitive.ObjectID) (*models.User, error) {
	user, err := s.users.FindByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, domainerr.NotFound("Utilisateur introuvable")
	}
	return user, nil
}

// ForgotPassword réinitialise le mot de passe avec un mot de passe
// temporaire envoyé par email. La réponse est identique que l'email
// existe ou non.
func (s *AuthService) ForgotPassword(ctx context.Context, email string) error {
	user, err := s.users.FindByEmail(ctx, email)
	if err != nil {
		return err
	}
	if user == nil || !user.IsActive {
		return nil
	}

	tempPassword, err := utils.GenerateTempPassword(12)
	if err != nil {
		return err
	}

	hash, err := utils.HashPassword(tempPassword, s.cfg.Security.BcryptCost)
	if err != nil {
		return err
	}

	user.PasswordHash = hash
	if err := s.users.Update(ctx, user); err != nil {
		return err
	}

	s.mailer.SendPasswordReset(user.Email, user.Nom, user.Prenom, tempPassword)
	s.logger.Info().Str("user_id", user.ID.Hex()).Msg("mot de passe réinitialisé")
	return nil
}

// ChangePassword change le mot de passe après vérification de l'actuel
func (s *AuthService) ChangePassword(ctx context.Context, userID primitive.ObjectID, currentPassword, newPassword string) error {
	if len(newPassword) < 8 {
		return domainerr.Validation("Le nouveau mot de passe doit contenir au moins 8 caractères")
	}

	user, err := s.users.FindByID(ctx, userID)
	if err != nil {
		return err
	}
	if user == nil {
		return domainerr.NotFound("Utilisateur introuvable")
	}
	if !utils.VerifyPassword(user.PasswordHash, currentPassword) {
		return domainerr.New(domainerr.CodeBadCredentials, "Mot de passe actuel incorrect")
	}

	hash, err := utils.HashPassword(newPassword, s.cfg.Security.BcryptCost)
	if err != nil {
		return err
	}

	user.PasswordHash = hash
	return s.users.Update(ctx, user)
}
