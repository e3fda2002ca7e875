package core

import (
	"context"
	"fmt"

	"go.uber.org/fx"

	"clinique-core/internal/app/config"
	"clinique-core/internal/infrastructure/database/redis"
	"clinique-core/internal/modules/core/models"
	"clinique-core/internal/modules/core/notifier"
	"clinique-core/internal/modules/core/repository"
	"clinique-core/internal/shared/utils"

	"github.com/rs/zerolog"
)

// Module regroupe les repositories partagés et le notifier
var Module = fx.Options(
	// Repositories (collections MongoDB)
	fx.Provide(repository.NewUserRepository),
	fx.Provide(repository.NewPatientRepository),
	fx.Provide(repository.NewMedecinRepository),
	fx.Provide(repository.NewRendezVousRepository),
	fx.Provide(repository.NewDossierRepository),
	fx.Provide(repository.NewOrdonnanceRepository),
	fx.Provide(repository.NewDocumentRepository),
	fx.Provide(repository.NewNotificationRepository),
	fx.Provide(repository.NewCliniqueRepository),
	fx.Provide(repository.NewSessionRepository),

	// Notifier
	fx.Provide(NewNotifier),

	// Seed du compte administrateur
	fx.Invoke(SeedAdmin),
)

// NewNotifier câble le notifier sur les repositories concrets
func NewNotifier(
	patients *repository.PatientRepository,
	notifications *repository.NotificationRepository,
	cache *redis.Client,
	logger zerolog.Logger,
) *notifier.Notifier {
	return notifier.NewNotifier(patients, notifications, cache, logger)
}

// SeedAdmin garantit l'existence du compte administrateur initial.
// Sans ADMIN_DEFAULT_PASSWORD, aucun compte n'est créé.
func SeedAdmin(lc fx.Lifecycle, cfg *config.Config, users *repository.UserRepository) {
	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			if cfg.Admin.Password == "" {
				return nil
			}

			existing, err := users.FindByEmail(ctx, cfg.Admin.Email)
			if err != nil {
				return fmt.Errorf("failed to check admin account: %w", err)
			}
			if existing != nil {
				return nil
			}

			hash, err := utils.HashPassword(cfg.Admin.Password, cfg.Security.BcryptCost)
			if err != nil {
				return fmt.Errorf("failed to hash admin password: %w", err)
			}

			admin := &models.User{
				Email:        cfg.Admin.Email,
				PasswordHash: hash,
				Role:         models.RoleAdmin,
				Nom:          "Administrateur",
				IsActive:     true,
			}
			if err := users.Insert(ctx, admin); err != nil {
				return fmt.Errorf("failed to create admin account: %w", err)
			}

			fmt.Printf("[CORE] ✅ Compte administrateur créé: %s\n", cfg.Admin.Email)
			return nil
		},
	})
}
