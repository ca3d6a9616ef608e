package queries

import (
	"context"

	"bengkel-service/internal/domain/catalog"
	"bengkel-service/internal/pkg/errs"
)

//go:generate mockgen -source=catalog.go -destination=../../../tests/mock/queries/catalog_mock.go -package=queriesmock

type CatalogQueries interface {
	List(ctx context.Context, kind catalog.Kind) ([]*CatalogItemView, error)
}

type CatalogReadStore interface {
	FindCatalogItems(ctx context.Context, kind catalog.Kind) ([]*CatalogItemView, error)
}

type catalogQueriesImpl struct {
	store CatalogReadStore
}

func NewCatalogQueries(store CatalogReadStore) CatalogQueries {
	return &catalogQueriesImpl{store: store}
}

func (q *catalogQueriesImpl) List(ctx context.Context, kind catalog.Kind) ([]*CatalogItemView, error) {
	rows, err := q.store.FindCatalogItems(ctx, kind)
	if err != nil {
		return nil, errs.System(err, "failed to list catalog")
	}
	return rows, nil
}
