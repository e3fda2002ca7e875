package database

import (
	"clinique-core/internal/infrastructure/database/mongodb"
	"clinique-core/internal/infrastructure/database/redis"

	"go.uber.org/fx"
)

var Module = fx.Options(

	// Modules database
	redis.Module,
	mongodb.Module,
)
