package readstore

import (
	"context"

	"bengkel-service/internal/infra"
	"bengkel-service/internal/infra/sqlc"
	"bengkel-service/internal/pkg/pgconv"
	"bengkel-service/internal/usecase/queries"

	"github.com/google/uuid"
)

type VehicleReadQueries interface {
	ListVehiclesByOwner(ctx context.Context, db sqlc.DBTX, ownerID uuid.UUID) ([]sqlc.Vehicles, error)
}

type VehicleReadStore struct {
	queries VehicleReadQueries
	db      sqlc.DBTX
}

func NewVehicleReadStore(queries VehicleReadQueries, db sqlc.DBTX) *VehicleReadStore {
	return &VehicleReadStore{queries: queries, db: db}
}

func (r *VehicleReadStore) FindVehiclesByOwner(ctx context.Context, ownerID uuid.UUID) ([]*queries.VehicleView, error) {
	rows, err := r.queries.ListVehiclesByOwner(ctx, r.db, ownerID)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list vehicles by owner", err)
	}

	views := make([]*queries.VehicleView, 0, len(rows))
	for _, row := range rows {
		views = append(views, &queries.VehicleView{
			ID:        row.ID,
			OwnerID:   row.OwnerID,
			Plate:     row.PlateNumber,
			Brand:     row.Brand,
			Model:     row.Model,
			Year:      pgconv.Int32PtrFromPgtype(row.Year),
			CreatedAt: row.CreatedAt,
		})
	}
	return views, nil
}
