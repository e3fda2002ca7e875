package auth

import (
	"go.uber.org/fx"

	"clinique-core/internal/modules/auth/services"
	"clinique-core/internal/modules/core/repository"
)

// Module fournit le middleware d'authentification partagé
var Module = fx.Options(
	fx.Provide(func(sessions *services.SessionService, users *repository.UserRepository) *AuthMiddleware {
		return NewAuthMiddleware(sessions, users)
	}),
)
