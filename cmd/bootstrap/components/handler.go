package components

import (
	"bengkel-service/internal/handler"
	"bengkel-service/internal/handler/api"
	"bengkel-service/internal/handler/middleware"

	"go.uber.org/fx"
)

var HandlerModule = fx.Module("handler",
	fx.Provide(
		api.NewAuthHandler,
		api.NewBookingHandler,
		api.NewHistoryHandler,
		api.NewVehicleHandler,
		api.NewCatalogHandler,
		middleware.NewAuthMiddleware,
		NewHandlers,
	),
	fx.Invoke(handler.NewRouter),
)

func NewHandlers(
	auth *api.AuthHandler,
	booking *api.BookingHandler,
	history *api.HistoryHandler,
	vehicle *api.VehicleHandler,
	catalog *api.CatalogHandler,
) handler.Handlers {
	return handler.Handlers{
		Auth:    auth,
		Booking: booking,
		History: history,
		Vehicle: vehicle,
		Catalog: catalog,
	}
}
