package pdf

import "go.uber.org/fx"

// Module fournit le générateur de PDF d'ordonnances
var Module = fx.Options(
	fx.Provide(NewOrdonnanceRenderer),
)
