package agenda

import (
	"go.uber.org/fx"

	"clinique-core/internal/modules/core/repository"
)

// Module fournit le service de disponibilité des créneaux
var Module = fx.Options(
	fx.Provide(func(rdvs *repository.RendezVousRepository) *Service {
		return NewService(rdvs)
	}),
)
