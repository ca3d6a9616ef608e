package readstore

import (
	"context"
	"time"

	"bengkel-service/internal/domain/booking"
	"bengkel-service/internal/infra"
	"bengkel-service/internal/infra/sqlc"
	"bengkel-service/internal/pkg/pgconv"
	"bengkel-service/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

type BookingViewQueries interface {
	GetBookingView(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (sqlc.BookingViewRow, error)
	ListBookingViewsByUserFirstPage(ctx context.Context, db sqlc.DBTX, arg sqlc.ListBookingViewsByUserFirstPageParams) ([]sqlc.BookingViewRow, error)
	ListBookingViewsByUserKeyset(ctx context.Context, db sqlc.DBTX, arg sqlc.ListBookingViewsByUserKeysetParams) ([]sqlc.BookingViewRow, error)
	ListBookingViewsByDay(ctx context.Context, db sqlc.DBTX, serviceDate pgtype.Date) ([]sqlc.BookingViewRow, error)
	CountBookingsByDay(ctx context.Context, db sqlc.DBTX, serviceDate pgtype.Date) (sqlc.CountBookingsByDayRow, error)
}

type BookingReadStore struct {
	queries BookingViewQueries
	db      sqlc.DBTX
}

func NewBookingReadStore(queries BookingViewQueries, db sqlc.DBTX) *BookingReadStore {
	return &BookingReadStore{
		queries: queries,
		db:      db,
	}
}

func (r *BookingReadStore) FindBookingByID(ctx context.Context, id uuid.UUID) (*queries.BookingView, error) {
	row, err := r.queries.GetBookingView(ctx, r.db, id)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("booking not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find booking by ID", err)
	}
	return toBookingView(row), nil
}

func (r *BookingReadStore) FindBookingsByUserFirstPage(ctx context.Context, userID uuid.UUID, limit int32) ([]*queries.BookingView, error) {
	rows, err := r.queries.ListBookingViewsByUserFirstPage(ctx, r.db, sqlc.ListBookingViewsByUserFirstPageParams{
		UserID: userID,
		Limit:  limit,
	})
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list bookings by user", err)
	}
	return toBookingViews(rows), nil
}

func (r *BookingReadStore) FindBookingsByUserKeyset(ctx context.Context, userID uuid.UUID, lastCreatedAt time.Time, lastID uuid.UUID, limit int32) ([]*queries.BookingView, error) {
	rows, err := r.queries.ListBookingViewsByUserKeyset(ctx, r.db, sqlc.ListBookingViewsByUserKeysetParams{
		UserID:        userID,
		LastCreatedAt: lastCreatedAt,
		LastID:        lastID,
		Limit:         limit,
	})
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list bookings by user (keyset)", err)
	}
	return toBookingViews(rows), nil
}

func (r *BookingReadStore) FindBookingsByDay(ctx context.Context, day booking.ServiceDay) ([]*queries.BookingView, error) {
	rows, err := r.queries.ListBookingViewsByDay(ctx, r.db, pgconv.DateToPgtype(day.Start()))
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list bookings by day", err)
	}
	return toBookingViews(rows), nil
}

func (r *BookingReadStore) CountBookingsByDay(ctx context.Context, day booking.ServiceDay) (int32, int32, error) {
	row, err := r.queries.CountBookingsByDay(ctx, r.db, pgconv.DateToPgtype(day.Start()))
	if err != nil {
		return 0, 0, infra.WrapRepoErr("failed to count bookings by day", err)
	}
	return row.MaxQueue, row.Active, nil
}

func toBookingViews(rows []sqlc.BookingViewRow) []*queries.BookingView {
	views := make([]*queries.BookingView, 0, len(rows))
	for _, row := range rows {
		views = append(views, toBookingView(row))
	}
	return views
}

func toBookingView(row sqlc.BookingViewRow) *queries.BookingView {
	return &queries.BookingView{
		ID:           row.ID,
		UserID:       row.UserID,
		UserName:     row.UserName,
		UserEmail:    row.UserEmail,
		VehicleID:    pgconv.UUIDPtrFromPgtype(row.VehicleID),
		VehiclePlate: pgconv.StringPtrFromPgtype(row.VehiclePlate),
		ServiceDate:  pgconv.DateToText(row.ServiceDate.Time),
		Message:      row.Message,
		QueueNumber:  row.QueueNumber,
		Status:       row.Status,
		HistoryID:    pgconv.UUIDPtrFromPgtype(row.HistoryID),
		CreatedAt:    row.CreatedAt,
		UpdatedAt:    row.UpdatedAt,
	}
}
