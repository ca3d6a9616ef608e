package repository

import (
	"context"
	"time"

	"bengkel-service/internal/domain/booking"
	"bengkel-service/internal/infra"
	"bengkel-service/internal/infra/repository/converter"
	"bengkel-service/internal/infra/sqlc"

	"github.com/google/uuid"
)

type BookingWriteQueries interface {
	LockServiceDay(ctx context.Context, db sqlc.DBTX, key string) error
	CreateBooking(ctx context.Context, db sqlc.DBTX, arg sqlc.CreateBookingParams) error
	UpdateBookingStatus(ctx context.Context, db sqlc.DBTX, arg sqlc.UpdateBookingStatusParams) (int64, error)
}

type BookingRepository struct {
	queries BookingWriteQueries
	db      sqlc.DBTX
}

func NewBookingRepository(queries BookingWriteQueries, db sqlc.DBTX) *BookingRepository {
	return &BookingRepository{
		queries: queries,
		db:      db,
	}
}

// DayLockKey is hashed by PostgreSQL into the advisory lock id.
func DayLockKey(day booking.ServiceDay) string {
	return "booking-day:" + day.String()
}

func (r *BookingRepository) LockDay(ctx context.Context, day booking.ServiceDay) error {
	if err := r.queries.LockServiceDay(ctx, r.db, DayLockKey(day)); err != nil {
		return infra.WrapRepoErr("failed to lock service day", err)
	}
	return nil
}

func (r *BookingRepository) Create(ctx context.Context, b *booking.Booking) error {
	if err := r.queries.CreateBooking(ctx, r.db, converter.BookingToCreateParams(b)); err != nil {
		return infra.WrapRepoErr("failed to create booking", err)
	}
	return nil
}

func (r *BookingRepository) UpdateStatus(ctx context.Context, id uuid.UUID, status booking.Status, updatedAt time.Time) error {
	n, err := r.queries.UpdateBookingStatus(ctx, r.db, sqlc.UpdateBookingStatusParams{
		ID:        id,
		Status:    status.String(),
		UpdatedAt: updatedAt,
	})
	if err != nil {
		return infra.WrapRepoErr("failed to update booking status", err)
	}
	if n == 0 {
		return infra.WrapRepoErr("booking not found", nil, infra.KindNotFound)
	}
	return nil
}
