package sqlc

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

const vehicleColumns = `id, owner_id, plate_number, brand, model, year, created_at`

const createVehicle = `
INSERT INTO vehicles (id, owner_id, plate_number, brand, model, year, created_at)
VALUES ($1, $2, $3, $4, $5, $6, $7)
`

type CreateVehicleParams struct {
	ID          uuid.UUID
	OwnerID     uuid.UUID
	PlateNumber string
	Brand       string
	Model       string
	Year        pgtype.Int4
	CreatedAt   time.Time
}

func (q *Queries) CreateVehicle(ctx context.Context, db DBTX, arg CreateVehicleParams) error {
	_, err := db.Exec(ctx, createVehicle,
		arg.ID,
		arg.OwnerID,
		arg.PlateNumber,
		arg.Brand,
		arg.Model,
		arg.Year,
		arg.CreatedAt,
	)
	return err
}

const findVehicleByID = `SELECT ` + vehicleColumns + ` FROM vehicles WHERE id = $1`

func (q *Queries) FindVehicleByID(ctx context.Context, db DBTX, id uuid.UUID) (Vehicles, error) {
	return scanVehicle(db.QueryRow(ctx, findVehicleByID, id))
}

const listVehiclesByOwner = `
SELECT ` + vehicleColumns + ` FROM vehicles
WHERE owner_id = $1
ORDER BY created_at, id
`

func (q *Queries) ListVehiclesByOwner(ctx context.Context, db DBTX, ownerID uuid.UUID) ([]Vehicles, error) {
	rows, err := db.Query(ctx, listVehiclesByOwner, ownerID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var items []Vehicles
	for rows.Next() {
		i, err := scanVehicle(rows)
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

func scanVehicle(row interface{ Scan(...any) error }) (Vehicles, error) {
	var i Vehicles
	err := row.Scan(
		&i.ID,
		&i.OwnerID,
		&i.PlateNumber,
		&i.Brand,
		&i.Model,
		&i.Year,
		&i.CreatedAt,
	)
	return i, err
}
