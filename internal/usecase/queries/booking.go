package queries

import (
	"context"
	"time"

	"bengkel-service/internal/domain/authz"
	"bengkel-service/internal/domain/booking"
	"bengkel-service/internal/pkg/errs"
	"bengkel-service/internal/usecase/shared"

	"github.com/google/uuid"
)

//go:generate mockgen -source=booking.go -destination=../../../tests/mock/queries/booking_mock.go -package=queriesmock

type BookingQueries interface {
	GetByID(ctx context.Context, actor authz.Actor, id uuid.UUID) (*BookingView, error)
	ListMine(ctx context.Context, actor authz.Actor, cursor *Cursor, limit int) ([]*BookingView, *Cursor, error)
	// ListByDay returns the day's bookings in queue order, cancelled ones included.
	ListByDay(ctx context.Context, actor authz.Actor, date string) ([]*BookingView, error)
	PreviewQueue(ctx context.Context, date string) (*QueueStats, error)
}

type BookingReadStore interface {
	FindBookingByID(ctx context.Context, id uuid.UUID) (*BookingView, error)
	FindBookingsByUserFirstPage(ctx context.Context, userID uuid.UUID, limit int32) ([]*BookingView, error)
	FindBookingsByUserKeyset(ctx context.Context, userID uuid.UUID, lastCreatedAt time.Time, lastID uuid.UUID, limit int32) ([]*BookingView, error)
	FindBookingsByDay(ctx context.Context, day booking.ServiceDay) ([]*BookingView, error)
	// CountBookingsByDay returns the highest issued queue number and the number of non-cancelled bookings.
	CountBookingsByDay(ctx context.Context, day booking.ServiceDay) (maxQueue int32, active int32, err error)
}

type bookingQueriesImpl struct {
	store  BookingReadStore
	policy shared.BookingPolicy
}

func NewBookingQueries(store BookingReadStore, policy shared.BookingPolicy) BookingQueries {
	return &bookingQueriesImpl{store: store, policy: policy}
}

func (q *bookingQueriesImpl) GetByID(ctx context.Context, actor authz.Actor, id uuid.UUID) (*BookingView, error) {
	view, err := q.store.FindBookingByID(ctx, id)
	if err != nil {
		return nil, shared.Lookup(err, shared.ErrBookingNotFound, "failed to load booking")
	}
	if err := shared.Authorize(actor, authz.ActionViewBooking, view.UserID); err != nil {
		return nil, err
	}
	return view, nil
}

func (q *bookingQueriesImpl) ListMine(ctx context.Context, actor authz.Actor, cursor *Cursor, limit int) ([]*BookingView, *Cursor, error) {
	if err := shared.Authorize(actor, authz.ActionViewBooking, actor.ID); err != nil {
		return nil, nil, err
	}

	limit = ValidateLimit(limit)
	var rows []*BookingView
	var err error
	if cursor.isFirstPage() {
		rows, err = q.store.FindBookingsByUserFirstPage(ctx, actor.ID, int32(limit+1))
	} else {
		lastCreatedAt, lastID, derr := DecodeAfterCursor(cursor.After)
		if derr != nil {
			return nil, nil, ErrInvalidCursor
		}
		rows, err = q.store.FindBookingsByUserKeyset(ctx, actor.ID, lastCreatedAt, lastID, int32(limit+1))
	}
	if err != nil {
		return nil, nil, errs.System(err, "failed to list bookings")
	}

	rows, next := paginate(rows, limit, func(v *BookingView) (time.Time, uuid.UUID) { return v.CreatedAt, v.ID })
	return rows, next, nil
}

func (q *bookingQueriesImpl) ListByDay(ctx context.Context, actor authz.Actor, date string) ([]*BookingView, error) {
	if err := shared.Authorize(actor, authz.ActionListDayBookings, uuid.Nil); err != nil {
		return nil, err
	}
	day, err := q.policy.ParseDay(date)
	if err != nil {
		return nil, shared.Validation(err)
	}

	rows, err := q.store.FindBookingsByDay(ctx, day)
	if err != nil {
		return nil, errs.System(err, "failed to list bookings of day")
	}
	return rows, nil
}

func (q *bookingQueriesImpl) PreviewQueue(ctx context.Context, date string) (*QueueStats, error) {
	day, err := q.policy.ParseDay(date)
	if err != nil {
		return nil, shared.Validation(err)
	}

	maxQueue, active, err := q.store.CountBookingsByDay(ctx, day)
	if err != nil {
		return nil, errs.System(err, "failed to count bookings of day")
	}

	return &QueueStats{
		ServiceDate: day.String(),
		Issued:      maxQueue,
		Active:      active,
		Next:        maxQueue + 1,
	}, nil
}
