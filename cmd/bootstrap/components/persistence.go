package components

import (
	"bengkel-service/internal/infra/memory"
	"bengkel-service/internal/infra/readstore"
	"bengkel-service/internal/infra/sqlc"
	"bengkel-service/internal/infra/uow"
	"bengkel-service/internal/pkg/config"
	"bengkel-service/internal/usecase/queries"
	"bengkel-service/internal/usecase/shared"

	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/fx"
)

var PersistenceModule = fx.Module("persistence",
	fx.Provide(
		NewSQLQueries,
		NewGateway,
	),
)

// Gateway is every storage port the usecases consume, backed by one driver.
type Gateway struct {
	fx.Out

	UoW       shared.UnitOfWork
	Outbox    shared.OutboxStore
	Bookings  queries.BookingReadStore
	Histories queries.HistoryReadStore
	Users     queries.UserReadStore
	Vehicles  queries.VehicleReadStore
	Catalog   queries.CatalogReadStore
}

func NewGateway(cfg config.Config, pool *pgxpool.Pool, q *sqlc.Queries, policy shared.BookingPolicy) Gateway {
	if cfg.DB.Driver == config.DriverMemory || pool == nil {
		return newMemoryGateway(policy)
	}
	return newPostgresGateway(pool, q, policy)
}

func newPostgresGateway(pool *pgxpool.Pool, q *sqlc.Queries, policy shared.BookingPolicy) Gateway {
	u := uow.NewPostgresUoW(pool, q, policy)
	return Gateway{
		UoW:       u,
		Outbox:    u.Outbox(),
		Bookings:  readstore.NewBookingReadStore(q, pool),
		Histories: readstore.NewHistoryReadStore(q, pool),
		Users:     readstore.NewUserReadStore(q, pool),
		Vehicles:  readstore.NewVehicleReadStore(q, pool),
		Catalog:   readstore.NewCatalogReadStore(q, pool),
	}
}

func newMemoryGateway(policy shared.BookingPolicy) Gateway {
	store := memory.NewStore(policy)
	return Gateway{
		UoW:       store,
		Outbox:    store.Outbox(),
		Bookings:  store,
		Histories: store,
		Users:     store,
		Vehicles:  store,
		Catalog:   store,
	}
}

func NewSQLQueries() *sqlc.Queries {
	return sqlc.New()
}
