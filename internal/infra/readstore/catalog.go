package readstore

import (
	"context"

	"bengkel-service/internal/domain/catalog"
	"bengkel-service/internal/infra"
	"bengkel-service/internal/infra/sqlc"
	"bengkel-service/internal/pkg/pgconv"
	"bengkel-service/internal/usecase/queries"
)

type CatalogReadQueries interface {
	ListServices(ctx context.Context, db sqlc.DBTX) ([]sqlc.CatalogItem, error)
	ListSpareparts(ctx context.Context, db sqlc.DBTX) ([]sqlc.CatalogItem, error)
}

type CatalogReadStore struct {
	queries CatalogReadQueries
	db      sqlc.DBTX
}

func NewCatalogReadStore(queries CatalogReadQueries, db sqlc.DBTX) *CatalogReadStore {
	return &CatalogReadStore{queries: queries, db: db}
}

func (r *CatalogReadStore) FindCatalogItems(ctx context.Context, kind catalog.Kind) ([]*queries.CatalogItemView, error) {
	var rows []sqlc.CatalogItem
	var err error
	switch kind {
	case catalog.KindService:
		rows, err = r.queries.ListServices(ctx, r.db)
	case catalog.KindSparepart:
		rows, err = r.queries.ListSpareparts(ctx, r.db)
	default:
		return nil, infra.WrapRepoErr("unknown catalog kind "+kind.String(), catalog.ErrInvalidKind)
	}
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list catalog items", err)
	}

	views := make([]*queries.CatalogItemView, 0, len(rows))
	for _, row := range rows {
		price, err := pgconv.DecimalFromText(row.Price)
		if err != nil {
			return nil, infra.WrapRepoErr("stored catalog price is malformed", err)
		}
		views = append(views, &queries.CatalogItemView{
			ID:        row.ID,
			Kind:      kind.String(),
			Code:      pgconv.StringPtrFromPgtype(row.Code),
			Name:      row.Name,
			Price:     price,
			CreatedAt: row.CreatedAt,
		})
	}
	return views, nil
}
