package app

import (
	"clinique-core/internal/app/config"
	"clinique-core/internal/infrastructure/database"
	"clinique-core/internal/infrastructure/database/redis"
	"clinique-core/internal/infrastructure/logger"
	"clinique-core/internal/infrastructure/mailer"
	"clinique-core/internal/infrastructure/pdf"
	"clinique-core/internal/modules/admin"
	"clinique-core/internal/modules/agenda"
	"clinique-core/internal/modules/auth"
	"clinique-core/internal/modules/core"
	"clinique-core/internal/modules/medecin"
	"clinique-core/internal/modules/patient"
	"clinique-core/internal/modules/public"
	"clinique-core/internal/modules/secretaire"
	authMiddleware "clinique-core/internal/shared/middleware/auth"

	"go.uber.org/fx"
)

// NewRedisKeyGenerator crée le générateur de clés Redis
func NewRedisKeyGenerator(cfg *config.Config) *redis.RedisKeyGenerator {
	return redis.NewRedisKeyGenerator(cfg.Environment)
}

var AppModule = fx.Options(
	// Configuration (doit être fournie en premier)
	fx.Provide(config.NewConfig),
	fx.Provide(config.NewMongoConfig),
	fx.Provide(config.NewRedisConfig),

	// Utilitaires partagés (après config, avant infrastructure)
	fx.Provide(NewRedisKeyGenerator),

	// Infrastructure
	database.Module,
	logger.Module,
	mailer.Module,
	pdf.Module,

	// Middlewares partagés (après infrastructure, avant modules métier)
	authMiddleware.Module,

	// Modules métier
	core.Module,
	agenda.Module,
	auth.Module,
	public.Module,
	admin.Module,
	medecin.Module,
	secretaire.Module,
	patient.Module,

	// Router
	fx.Provide(NewRouter),

	// Application
	fx.Provide(NewApplication),

	// Lifecycle management
	fx.Invoke((*Application).Start),
)
