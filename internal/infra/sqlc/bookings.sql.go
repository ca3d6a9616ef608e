package sqlc

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

const bookingColumns = `id, user_id, vehicle_id, service_date, message, queue_number, status, created_at, updated_at`

const lockServiceDay = `SELECT pg_advisory_xact_lock(hashtext($1))`

// LockServiceDay holds a transaction-scoped advisory lock on key.
func (q *Queries) LockServiceDay(ctx context.Context, db DBTX, key string) error {
	_, err := db.Exec(ctx, lockServiceDay, key)
	return err
}

const createBooking = `
INSERT INTO bookings (id, user_id, vehicle_id, service_date, message, queue_number, status, created_at, updated_at)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
`

type CreateBookingParams struct {
	ID          uuid.UUID
	UserID      uuid.UUID
	VehicleID   pgtype.UUID
	ServiceDate pgtype.Date
	Message     string
	QueueNumber int32
	Status      string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

func (q *Queries) CreateBooking(ctx context.Context, db DBTX, arg CreateBookingParams) error {
	_, err := db.Exec(ctx, createBooking,
		arg.ID,
		arg.UserID,
		arg.VehicleID,
		arg.ServiceDate,
		arg.Message,
		arg.QueueNumber,
		arg.Status,
		arg.CreatedAt,
		arg.UpdatedAt,
	)
	return err
}

const updateBookingStatus = `UPDATE bookings SET status = $2, updated_at = $3 WHERE id = $1`

type UpdateBookingStatusParams struct {
	ID        uuid.UUID
	Status    string
	UpdatedAt time.Time
}

func (q *Queries) UpdateBookingStatus(ctx context.Context, db DBTX, arg UpdateBookingStatusParams) (int64, error) {
	result, err := db.Exec(ctx, updateBookingStatus, arg.ID, arg.Status, arg.UpdatedAt)
	if err != nil {
		return 0, err
	}
	return result.RowsAffected(), nil
}

const findBookingByID = `SELECT ` + bookingColumns + ` FROM bookings WHERE id = $1`

func (q *Queries) FindBookingByID(ctx context.Context, db DBTX, id uuid.UUID) (Bookings, error) {
	return scanBooking(db.QueryRow(ctx, findBookingByID, id))
}

const findBookingByIDForUpdate = findBookingByID + ` FOR UPDATE`

func (q *Queries) FindBookingByIDForUpdate(ctx context.Context, db DBTX, id uuid.UUID) (Bookings, error) {
	return scanBooking(db.QueryRow(ctx, findBookingByIDForUpdate, id))
}

const findPendingBookingForUserAndDay = `
SELECT ` + bookingColumns + ` FROM bookings
WHERE user_id = $1 AND service_date = $2 AND status = 'PENDING'
LIMIT 1
`

type FindPendingBookingForUserAndDayParams struct {
	UserID      uuid.UUID
	ServiceDate pgtype.Date
}

func (q *Queries) FindPendingBookingForUserAndDay(ctx context.Context, db DBTX, arg FindPendingBookingForUserAndDayParams) (Bookings, error) {
	return scanBooking(db.QueryRow(ctx, findPendingBookingForUserAndDay, arg.UserID, arg.ServiceDate))
}

const listBookingsByDay = `
SELECT ` + bookingColumns + ` FROM bookings
WHERE service_date = $1
ORDER BY queue_number
`

// ListBookingsByDay includes cancelled bookings.
func (q *Queries) ListBookingsByDay(ctx context.Context, db DBTX, serviceDate pgtype.Date) ([]Bookings, error) {
	rows, err := db.Query(ctx, listBookingsByDay, serviceDate)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var items []Bookings
	for rows.Next() {
		i, err := scanBooking(rows)
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

const countBookingsByDay = `
SELECT COALESCE(MAX(queue_number), 0)::int4 AS max_queue,
       COUNT(*) FILTER (WHERE status <> 'CANCELLED')::int4 AS active
FROM bookings
WHERE service_date = $1
`

type CountBookingsByDayRow struct {
	MaxQueue int32
	Active   int32
}

func (q *Queries) CountBookingsByDay(ctx context.Context, db DBTX, serviceDate pgtype.Date) (CountBookingsByDayRow, error) {
	var i CountBookingsByDayRow
	err := db.QueryRow(ctx, countBookingsByDay, serviceDate).Scan(&i.MaxQueue, &i.Active)
	return i, err
}

const bookingViewSelect = `
SELECT b.id, b.user_id, u.name, u.email, b.vehicle_id, v.plate_number,
       b.service_date, b.message, b.queue_number, b.status, h.id,
       b.created_at, b.updated_at
FROM bookings b
JOIN users u ON u.id = b.user_id
LEFT JOIN vehicles v ON v.id = b.vehicle_id
LEFT JOIN histories h ON h.booking_id = b.id
`

type BookingViewRow struct {
	ID           uuid.UUID
	UserID       uuid.UUID
	UserName     string
	UserEmail    string
	VehicleID    pgtype.UUID
	VehiclePlate pgtype.Text
	ServiceDate  pgtype.Date
	Message      string
	QueueNumber  int32
	Status       string
	HistoryID    pgtype.UUID
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

const getBookingView = bookingViewSelect + `WHERE b.id = $1`

func (q *Queries) GetBookingView(ctx context.Context, db DBTX, id uuid.UUID) (BookingViewRow, error) {
	return scanBookingView(db.QueryRow(ctx, getBookingView, id))
}

const listBookingViewsByUserFirstPage = bookingViewSelect + `
WHERE b.user_id = $1
ORDER BY b.created_at DESC, b.id DESC
LIMIT $2
`

type ListBookingViewsByUserFirstPageParams struct {
	UserID uuid.UUID
	Limit  int32
}

func (q *Queries) ListBookingViewsByUserFirstPage(ctx context.Context, db DBTX, arg ListBookingViewsByUserFirstPageParams) ([]BookingViewRow, error) {
	return q.listBookingViews(ctx, db, listBookingViewsByUserFirstPage, arg.UserID, arg.Limit)
}

const listBookingViewsByUserKeyset = bookingViewSelect + `
WHERE b.user_id = $1 AND (b.created_at, b.id) < ($2, $3)
ORDER BY b.created_at DESC, b.id DESC
LIMIT $4
`

type ListBookingViewsByUserKeysetParams struct {
	UserID        uuid.UUID
	LastCreatedAt time.Time
	LastID        uuid.UUID
	Limit         int32
}

func (q *Queries) ListBookingViewsByUserKeyset(ctx context.Context, db DBTX, arg ListBookingViewsByUserKeysetParams) ([]BookingViewRow, error) {
	return q.listBookingViews(ctx, db, listBookingViewsByUserKeyset, arg.UserID, arg.LastCreatedAt, arg.LastID, arg.Limit)
}

const listBookingViewsByDay = bookingViewSelect + `
WHERE b.service_date = $1
ORDER BY b.queue_number
`

func (q *Queries) ListBookingViewsByDay(ctx context.Context, db DBTX, serviceDate pgtype.Date) ([]BookingViewRow, error) {
	return q.listBookingViews(ctx, db, listBookingViewsByDay, serviceDate)
}

func (q *Queries) listBookingViews(ctx context.Context, db DBTX, query string, args ...interface{}) ([]BookingViewRow, error) {
	rows, err := db.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var items []BookingViewRow
	for rows.Next() {
		i, err := scanBookingView(rows)
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

func scanBooking(row interface{ Scan(...any) error }) (Bookings, error) {
	var i Bookings
	err := row.Scan(
		&i.ID,
		&i.UserID,
		&i.VehicleID,
		&i.ServiceDate,
		&i.Message,
		&i.QueueNumber,
		&i.Status,
		&i.CreatedAt,
		&i.UpdatedAt,
	)
	return i, err
}

func scanBookingView(row interface{ Scan(...any) error }) (BookingViewRow, error) {
	var i BookingViewRow
	err := row.Scan(
		&i.ID,
		&i.UserID,
		&i.UserName,
		&i.UserEmail,
		&i.VehicleID,
		&i.VehiclePlate,
		&i.ServiceDate,
		&i.Message,
		&i.QueueNumber,
		&i.Status,
		&i.HistoryID,
		&i.CreatedAt,
		&i.UpdatedAt,
	)
	return i, err
}
