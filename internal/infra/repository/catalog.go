package repository

import (
	"context"

	"bengkel-service/internal/domain/catalog"
	"bengkel-service/internal/infra"
	"bengkel-service/internal/infra/sqlc"
	"bengkel-service/internal/pkg/pgconv"
)

type CatalogWriteQueries interface {
	CreateService(ctx context.Context, db sqlc.DBTX, arg sqlc.CreateServiceParams) error
	CreateSparepart(ctx context.Context, db sqlc.DBTX, arg sqlc.CreateSparepartParams) error
}

type CatalogRepository struct {
	queries CatalogWriteQueries
	db      sqlc.DBTX
}

func NewCatalogRepository(queries CatalogWriteQueries, db sqlc.DBTX) *CatalogRepository {
	return &CatalogRepository{queries: queries, db: db}
}

func (r *CatalogRepository) Create(ctx context.Context, item *catalog.Item) error {
	price := pgconv.DecimalToText(item.Price().Decimal())

	var err error
	switch item.Kind() {
	case catalog.KindService:
		err = r.queries.CreateService(ctx, r.db, sqlc.CreateServiceParams{
			ID:        item.ID(),
			Name:      item.Name(),
			Price:     price,
			CreatedAt: item.CreatedAt(),
		})
	case catalog.KindSparepart:
		err = r.queries.CreateSparepart(ctx, r.db, sqlc.CreateSparepartParams{
			ID:        item.ID(),
			Code:      item.Code(),
			Name:      item.Name(),
			Price:     price,
			CreatedAt: item.CreatedAt(),
		})
	default:
		return infra.WrapRepoErr("unknown catalog kind "+item.Kind().String(), catalog.ErrInvalidKind)
	}
	if err != nil {
		return infra.WrapRepoErr("failed to create catalog item", err)
	}
	return nil
}
