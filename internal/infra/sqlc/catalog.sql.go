package sqlc

import (
	"context"
	"time"

	"github.com/google/uuid"
)

const createService = `
INSERT INTO services (id, name, price, created_at)
VALUES ($1, $2, $3::numeric, $4)
`

type CreateServiceParams struct {
	ID        uuid.UUID
	Name      string
	Price     string
	CreatedAt time.Time
}

func (q *Queries) CreateService(ctx context.Context, db DBTX, arg CreateServiceParams) error {
	_, err := db.Exec(ctx, createService, arg.ID, arg.Name, arg.Price, arg.CreatedAt)
	return err
}

const createSparepart = `
INSERT INTO spareparts (id, code, name, price, created_at)
VALUES ($1, $2, $3, $4::numeric, $5)
`

type CreateSparepartParams struct {
	ID        uuid.UUID
	Code      string
	Name      string
	Price     string
	CreatedAt time.Time
}

func (q *Queries) CreateSparepart(ctx context.Context, db DBTX, arg CreateSparepartParams) error {
	_, err := db.Exec(ctx, createSparepart, arg.ID, arg.Code, arg.Name, arg.Price, arg.CreatedAt)
	return err
}

const findServiceByID = `SELECT id, NULL::text, name, price::text, created_at FROM services WHERE id = $1`

func (q *Queries) FindServiceByID(ctx context.Context, db DBTX, id uuid.UUID) (CatalogItem, error) {
	return scanCatalogItem(db.QueryRow(ctx, findServiceByID, id))
}

const findSparepartByID = `SELECT id, code, name, price::text, created_at FROM spareparts WHERE id = $1`

func (q *Queries) FindSparepartByID(ctx context.Context, db DBTX, id uuid.UUID) (CatalogItem, error) {
	return scanCatalogItem(db.QueryRow(ctx, findSparepartByID, id))
}

const listServices = `SELECT id, NULL::text, name, price::text, created_at FROM services ORDER BY name, id`

func (q *Queries) ListServices(ctx context.Context, db DBTX) ([]CatalogItem, error) {
	return q.listCatalog(ctx, db, listServices)
}

const listSpareparts = `SELECT id, code, name, price::text, created_at FROM spareparts ORDER BY name, id`

func (q *Queries) ListSpareparts(ctx context.Context, db DBTX) ([]CatalogItem, error) {
	return q.listCatalog(ctx, db, listSpareparts)
}

func (q *Queries) listCatalog(ctx context.Context, db DBTX, query string) ([]CatalogItem, error) {
	rows, err := db.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var items []CatalogItem
	for rows.Next() {
		i, err := scanCatalogItem(rows)
		if err != nil {
			return nil, err
		}
		items = append(items, i)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return items, nil
}

func scanCatalogItem(row interface{ Scan(...any) error }) (CatalogItem, error) {
	var i CatalogItem
	err := row.Scan(
		&i.ID,
		&i.Code,
		&i.Name,
		&i.Price,
		&i.CreatedAt,
	)
	return i, err
}
