package queries

import (
	"context"

	"bengkel-service/internal/domain/authz"
	"bengkel-service/internal/pkg/errs"
	"bengkel-service/internal/usecase/shared"

	"github.com/google/uuid"
)

//go:generate mockgen -source=vehicle.go -destination=../../../tests/mock/queries/vehicle_mock.go -package=queriesmock

type VehicleQueries interface {
	ListMine(ctx context.Context, actor authz.Actor) ([]*VehicleView, error)
}

type VehicleReadStore interface {
	FindVehiclesByOwner(ctx context.Context, ownerID uuid.UUID) ([]*VehicleView, error)
}

type vehicleQueriesImpl struct {
	store VehicleReadStore
}

func NewVehicleQueries(store VehicleReadStore) VehicleQueries {
	return &vehicleQueriesImpl{store: store}
}

func (q *vehicleQueriesImpl) ListMine(ctx context.Context, actor authz.Actor) ([]*VehicleView, error) {
	if err := shared.Authorize(actor, authz.ActionManageVehicle, actor.ID); err != nil {
		return nil, err
	}
	rows, err := q.store.FindVehiclesByOwner(ctx, actor.ID)
	if err != nil {
		return nil, errs.System(err, "failed to list vehicles")
	}
	return rows, nil
}
