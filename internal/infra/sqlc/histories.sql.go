package sqlc

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

const historyColumns = `id, booking_id, user_id, karyawan_id, vehicle_id, status, total_price::text, created_at, updated_at`

const createHistory = `
INSERT INTO histories (id, booking_id, user_id, karyawan_id, vehicle_id, status, total_price, created_at, updated_at)
VALUES ($1, $2, $3, $4, $5, $6, $7::numeric, $8, $9)
`

type CreateHistoryParams struct {
	ID         uuid.UUID
	BookingID  uuid.UUID
	UserID     uuid.UUID
	KaryawanID uuid.UUID
	VehicleID  pgtype.UUID
	Status     string
	TotalPrice string
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

func (q *Queries) CreateHistory(ctx context.Context, db DBTX, arg CreateHistoryParams) error {
	_, err := db.Exec(ctx, createHistory,
		arg.ID,
		arg.BookingID,
		arg.UserID,
		arg.KaryawanID,
		arg.VehicleID,
		arg.Status,
		arg.TotalPrice,
		arg.CreatedAt,
		arg.UpdatedAt,
	)
	return err
}

const createHistoryItem = `
INSERT INTO history_items (id, history_id, position, item_kind, service_id, sparepart_id, name, quantity, unit_price, line_total)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9::numeric, $10::numeric)
`

type CreateHistoryItemParams struct {
	ID          uuid.UUID
	HistoryID   uuid.UUID
	Position    int32
	ItemKind    string
	ServiceID   pgtype.UUID
	SparepartID pgtype.UUID
	Name        string
	Quantity    int32
	UnitPrice   string
	LineTotal   string
}

func (q *Queries) CreateHistoryItem(ctx context.Context, db DBTX, arg CreateHistoryItemParams) error {
	_, err := db.Exec(ctx, createHistoryItem,
		arg.ID,
		arg.HistoryID,
		arg.Position,
		arg.ItemKind,
		arg.ServiceID,
		arg.SparepartID,
		arg.Name,
		arg.Quantity,
		arg.UnitPrice,
		arg.LineTotal,
	)
	return err
}

const updateHistoryStatus = `UPDATE histories SET status = $2, updated_at = $3 WHERE id = $1`

type UpdateHistoryStatusParams struct {
	ID        uuid.UUID
	Status    string
	UpdatedAt time.Time
}

func (q *Queries) UpdateHistoryStatus(ctx context.Context, db DBTX, arg UpdateHistoryStatusParams) (int64, error) {
	result, err := db.Exec(ctx, updateHistoryStatus, arg.ID, arg.Status, arg.UpdatedAt)
	if err != nil {
		return 0, err
	}
	return result.RowsAffected(), nil
}

const findHistoryByIDForUpdate = `SELECT ` + historyColumns + ` FROM histories WHERE id = $1 FOR UPDATE`

func (q *Queries) FindHistoryByIDForUpdate(ctx context.Context, db DBTX, id uuid.UUID) (Histories, error) {
	var i Histories
	err := db.QueryRow(ctx, findHistoryByIDForUpdate, id).Scan(
		&i.ID,
		&i.BookingID,
		&i.UserID,
		&i.KaryawanID,
		&i.VehicleID,
		&i.Status,
		&i.TotalPrice,
		&i.CreatedAt,
		&i.UpdatedAt,
	)
	return i, err
}

const listHistoryItems = `
SELECT id, history_id, position, item_kind, COALESCE(service_id, sparepart_id),
       name, quantity, unit_price::text, line_total::text
FROM history_items
WHERE history_id = $1
ORDER BY position
`

func (q *Queries) ListHistoryItems(ctx context.Context, db DBTX, historyID uuid.UUID) ([]HistoryItems, error) {
	rows, err := db.Query(ctx, listHistoryItems, historyID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var items []HistoryItems
	for rows.Next() {
		var i HistoryItems
		if err := rows.Scan(
			&i.ID,
			&i.HistoryID,
			&i.Position,
			&i.ItemKind,
			&i.RefID,
			&i.Name,
			&i.Quantity,
			&i.UnitPrice,
			&i.LineTotal,
		); err != nil {
			return nil, err
		}
		items = append(items, i)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return items, nil
}

const historyViewSelect = `
SELECT h.id, h.booking_id, b.queue_number, b.service_date,
       h.user_id, cu.name, cu.email,
       h.karyawan_id, st.name, st.email,
       h.vehicle_id, v.plate_number, v.brand, v.model,
       h.status, h.total_price::text, h.created_at, h.updated_at
FROM histories h
JOIN bookings b ON b.id = h.booking_id
JOIN users cu ON cu.id = h.user_id
JOIN users st ON st.id = h.karyawan_id
LEFT JOIN vehicles v ON v.id = h.vehicle_id
`

type HistoryViewRow struct {
	ID            uuid.UUID
	BookingID     uuid.UUID
	QueueNumber   int32
	ServiceDate   pgtype.Date
	UserID        uuid.UUID
	UserName      string
	UserEmail     string
	KaryawanID    uuid.UUID
	KaryawanName  string
	KaryawanEmail string
	VehicleID     pgtype.UUID
	VehiclePlate  pgtype.Text
	VehicleBrand  pgtype.Text
	VehicleModel  pgtype.Text
	Status        string
	TotalPrice    string
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

const getHistoryView = historyViewSelect + `WHERE h.id = $1`

func (q *Queries) GetHistoryView(ctx context.Context, db DBTX, id uuid.UUID) (HistoryViewRow, error) {
	return scanHistoryView(db.QueryRow(ctx, getHistoryView, id))
}

const listHistoryViewsFirstPage = historyViewSelect + `
WHERE ($1::uuid IS NULL OR h.user_id = $1)
ORDER BY h.created_at DESC, h.id DESC
LIMIT $2
`

// A NULL UserID lists every history.
type ListHistoryViewsFirstPageParams struct {
	UserID pgtype.UUID
	Limit  int32
}

func (q *Queries) ListHistoryViewsFirstPage(ctx context.Context, db DBTX, arg ListHistoryViewsFirstPageParams) ([]HistoryViewRow, error) {
	return q.listHistoryViews(ctx, db, listHistoryViewsFirstPage, arg.UserID, arg.Limit)
}

const listHistoryViewsKeyset = historyViewSelect + `
WHERE ($1::uuid IS NULL OR h.user_id = $1) AND (h.created_at, h.id) < ($2, $3)
ORDER BY h.created_at DESC, h.id DESC
LIMIT $4
`

type ListHistoryViewsKeysetParams struct {
	UserID        pgtype.UUID
	LastCreatedAt time.Time
	LastID        uuid.UUID
	Limit         int32
}

func (q *Queries) ListHistoryViewsKeyset(ctx context.Context, db DBTX, arg ListHistoryViewsKeysetParams) ([]HistoryViewRow, error) {
	return q.listHistoryViews(ctx, db, listHistoryViewsKeyset, arg.UserID, arg.LastCreatedAt, arg.LastID, arg.Limit)
}

func (q *Queries) listHistoryViews(ctx context.Context, db DBTX, query string, args ...interface{}) ([]HistoryViewRow, error) {
	rows, err := db.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var items []HistoryViewRow
	for rows.Next() {
		i, err := scanHistoryView(rows)
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

func scanHistoryView(row interface{ Scan(...any) error }) (HistoryViewRow, error) {
	var i HistoryViewRow
	err := row.Scan(
		&i.ID,
		&i.BookingID,
		&i.QueueNumber,
		&i.ServiceDate,
		&i.UserID,
		&i.UserName,
		&i.UserEmail,
		&i.KaryawanID,
		&i.KaryawanName,
		&i.KaryawanEmail,
		&i.VehicleID,
		&i.VehiclePlate,
		&i.VehicleBrand,
		&i.VehicleModel,
		&i.Status,
		&i.TotalPrice,
		&i.CreatedAt,
		&i.UpdatedAt,
	)
	return i, err
}
