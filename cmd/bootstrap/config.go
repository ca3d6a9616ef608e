package bootstrap

import (
	"bengkel-service/internal/pkg/config"
	"bengkel-service/internal/usecase/shared"

	"go.uber.org/fx"
)

var ConfigModule = fx.Module("config",
	fx.Provide(
		config.LoadConfig,
		shared.NewBookingPolicy,
	),
)
