package repository

import (
	"context"

	"bengkel-service/internal/domain/vehicle"
	"bengkel-service/internal/infra"
	"bengkel-service/internal/infra/repository/converter"
	"bengkel-service/internal/infra/sqlc"
)

type VehicleWriteQueries interface {
	CreateVehicle(ctx context.Context, db sqlc.DBTX, arg sqlc.CreateVehicleParams) error
}

type VehicleRepository struct {
	queries VehicleWriteQueries
	db      sqlc.DBTX
}

func NewVehicleRepository(queries VehicleWriteQueries, db sqlc.DBTX) *VehicleRepository {
	return &VehicleRepository{queries: queries, db: db}
}

func (r *VehicleRepository) Create(ctx context.Context, v *vehicle.Vehicle) error {
	if err := r.queries.CreateVehicle(ctx, r.db, converter.VehicleToCreateParams(v)); err != nil {
		return infra.WrapRepoErr("failed to create vehicle", err)
	}
	return nil
}
