package commands

import (
	"context"

	"bengkel-service/internal/domain/authz"
	"bengkel-service/internal/domain/booking"
	"bengkel-service/internal/infra"
	"bengkel-service/internal/pkg/clock"
	"bengkel-service/internal/pkg/errs"
	"bengkel-service/internal/usecase/shared"

	"github.com/google/uuid"
)

//go:generate mockgen -source=booking.go -destination=../../../tests/mock/commands/booking_mock.go -package=commandsmock

var (
	ErrDuplicatePendingBooking = errs.Mark(errs.New("you already have a pending booking for this date"), errs.ErrDuplicateBooking)
	ErrVehicleNotOwned         = errs.Mark(errs.New("vehicle does not belong to you"), errs.ErrValidation)
)

type CreateBookingRequest struct {
	VehicleID *uuid.UUID
	Date      string
	Message   string
}

type BookingCommands interface {
	CreateBooking(ctx context.Context, actor authz.Actor, req CreateBookingRequest) (*booking.Booking, error)
	CancelBooking(ctx context.Context, actor authz.Actor, bookingID uuid.UUID) (*booking.Booking, error)
}

type bookingUseCaseImpl struct {
	uow    shared.UnitOfWork
	clock  clock.Clock
	policy shared.BookingPolicy
}

func NewBookingUseCase(uow shared.UnitOfWork, clk clock.Clock, policy shared.BookingPolicy) BookingCommands {
	return &bookingUseCaseImpl{uow: uow, clock: clk, policy: policy}
}

func (uc *bookingUseCaseImpl) CreateBooking(ctx context.Context, actor authz.Actor, req CreateBookingRequest) (*booking.Booking, error) {
	if err := shared.Authorize(actor, authz.ActionCreateBooking, actor.ID); err != nil {
		return nil, err
	}

	message, err := booking.NewMessage(req.Message)
	if err != nil {
		return nil, shared.Validation(err)
	}

	day, err := uc.policy.ParseDay(req.Date)
	if err != nil {
		return nil, shared.Validation(err)
	}
	if uc.policy.RejectPastDates {
		if err := day.EnsureNotPast(uc.policy.Today(uc.clock)); err != nil {
			return nil, shared.Validation(err)
		}
	}

	var created *booking.Booking
	err = uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		if req.VehicleID != nil {
			v, derr := tx.Reads().VehicleByID(ctx, *req.VehicleID)
			if derr != nil {
				return shared.Lookup(derr, shared.ErrVehicleNotFound, "failed to load vehicle")
			}
			if !v.IsOwnedBy(actor.ID) {
				return ErrVehicleNotOwned
			}
		}

		if derr := tx.Bookings().LockDay(ctx, day); derr != nil {
			return derr
		}

		pending, derr := tx.Reads().PendingBookingForUserAndDay(ctx, actor.ID, day)
		if derr != nil {
			return derr
		}
		if pending != nil {
			return ErrDuplicatePendingBooking
		}

		queue, derr := AllocateQueueNumber(ctx, tx.Reads(), day)
		if derr != nil {
			return derr
		}

		now := uc.clock.Now()
		b, derr := booking.NewBooking(actor.ID, req.VehicleID, day, message, queue, now)
		if derr != nil {
			return shared.Validation(derr)
		}
		if derr = tx.Bookings().Create(ctx, b); derr != nil {
			return derr
		}
		if derr = enqueueBookingEvent(ctx, tx, shared.TopicBookingCreated, b, now); derr != nil {
			return derr
		}

		created = b
		return nil
	})
	if err != nil {
		// Losing the race against a concurrent admission of the same user surfaces here.
		if infra.IsConstraint(err, infra.ConstraintBookingPendingPerDay) {
			return nil, ErrDuplicatePendingBooking
		}
		return nil, errs.System(err, "failed to create booking")
	}
	return created, nil
}

func (uc *bookingUseCaseImpl) CancelBooking(ctx context.Context, actor authz.Actor, bookingID uuid.UUID) (*booking.Booking, error) {
	var cancelled *booking.Booking
	err := uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		b, derr := tx.Reads().BookingByIDForUpdate(ctx, bookingID)
		if derr != nil {
			return shared.Lookup(derr, shared.ErrBookingNotFound, "failed to load booking")
		}
		if derr = shared.Authorize(actor, authz.ActionCancelBooking, b.UserID()); derr != nil {
			return derr
		}

		now := uc.clock.Now()
		if derr = b.Cancel(now); derr != nil {
			return invalidTransition(derr)
		}
		if derr = tx.Bookings().UpdateStatus(ctx, b.ID(), b.Status(), now); derr != nil {
			return derr
		}
		if derr = enqueueBookingEvent(ctx, tx, shared.TopicBookingCancelled, b, now); derr != nil {
			return derr
		}

		cancelled = b
		return nil
	})
	if err != nil {
		return nil, errs.System(err, "failed to cancel booking")
	}
	return cancelled, nil
}

func invalidTransition(err error) error {
	return errs.Mark(err, errs.ErrInvalidTransition)
}
