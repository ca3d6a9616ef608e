package commands

import (
	"context"

	"bengkel-service/internal/domain/authz"
	"bengkel-service/internal/domain/history"
	"bengkel-service/internal/domain/money"
	"bengkel-service/internal/infra"
	"bengkel-service/internal/pkg/clock"
	"bengkel-service/internal/pkg/errs"
	"bengkel-service/internal/pkg/patch"
	"bengkel-service/internal/usecase/shared"

	"github.com/google/uuid"
)

//go:generate mockgen -source=history.go -destination=../../../tests/mock/commands/history_mock.go -package=commandsmock

var (
	ErrBookingNotPending = errs.Mark(errs.New("history can only be created from a pending booking"), errs.ErrInvalidTransition)
	ErrKaryawanNotStaff  = errs.Mark(errs.New("assigned karyawan must be a staff member"), errs.ErrValidation)
)

type CreateHistoryRequest struct {
	BookingID uuid.UUID
	// KaryawanID defaults to the acting staff member.
	KaryawanID *uuid.UUID
	// VehicleID defaults to the booking's vehicle.
	VehicleID *uuid.UUID
	Items     history.LineItemSpec
}

type HistoryCommands interface {
	CreateHistory(ctx context.Context, actor authz.Actor, req CreateHistoryRequest) (*history.History, error)
	UpdateHistoryStatus(ctx context.Context, actor authz.Actor, historyID uuid.UUID, status string) (*history.History, error)
}

type historyUseCaseImpl struct {
	uow   shared.UnitOfWork
	clock clock.Clock
}

func NewHistoryUseCase(uow shared.UnitOfWork, clk clock.Clock) HistoryCommands {
	return &historyUseCaseImpl{uow: uow, clock: clk}
}

func (uc *historyUseCaseImpl) CreateHistory(ctx context.Context, actor authz.Actor, req CreateHistoryRequest) (*history.History, error) {
	if err := shared.Authorize(actor, authz.ActionCreateHistory, uuid.Nil); err != nil {
		return nil, err
	}

	inputs, err := history.Normalize(req.Items)
	if err != nil {
		return nil, shared.Validation(err)
	}

	karyawanID := patch.Coalesce(req.KaryawanID, actor.ID)

	var created *history.History
	err = uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		if karyawanID != actor.ID {
			if derr := ensureStaff(ctx, tx.Reads(), karyawanID); derr != nil {
				return derr
			}
		}

		b, derr := tx.Reads().BookingByIDForUpdate(ctx, req.BookingID)
		if derr != nil {
			return shared.Lookup(derr, shared.ErrBookingNotFound, "failed to load booking")
		}
		if !b.IsPending() {
			return ErrBookingNotPending
		}

		vehicleID := patch.CoalescePtr(req.VehicleID, b.VehicleID())
		if req.VehicleID != nil {
			if _, derr = tx.Reads().VehicleByID(ctx, *req.VehicleID); derr != nil {
				return shared.Lookup(derr, shared.ErrVehicleNotFound, "failed to load vehicle")
			}
		}

		lines, derr := priceLines(ctx, tx.Reads(), inputs)
		if derr != nil {
			return derr
		}

		now := uc.clock.Now()
		h, derr := history.NewHistory(b.ID(), b.UserID(), karyawanID, vehicleID, lines, now)
		if derr != nil {
			return shared.Validation(derr)
		}
		if derr = tx.Histories().Create(ctx, h); derr != nil {
			return derr
		}

		if derr = b.Confirm(now); derr != nil {
			return invalidTransition(derr)
		}
		if derr = tx.Bookings().UpdateStatus(ctx, b.ID(), b.Status(), now); derr != nil {
			return derr
		}
		if derr = enqueueHistoryEvent(ctx, tx, shared.TopicHistoryCreated, h, now); derr != nil {
			return derr
		}

		created = h
		return nil
	})
	if err != nil {
		// A concurrent create for the same booking lost the booking_id uniqueness race.
		if infra.IsConstraint(err, infra.ConstraintHistoryBooking) {
			return nil, ErrBookingNotPending
		}
		return nil, errs.System(err, "failed to create history")
	}
	return created, nil
}

func (uc *historyUseCaseImpl) UpdateHistoryStatus(ctx context.Context, actor authz.Actor, historyID uuid.UUID, status string) (*history.History, error) {
	if err := shared.Authorize(actor, authz.ActionUpdateHistoryStatus, uuid.Nil); err != nil {
		return nil, err
	}

	next, err := history.NewProgressStatus(status)
	if err != nil {
		return nil, shared.Validation(err)
	}

	var updated *history.History
	err = uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		h, derr := tx.Reads().HistoryByIDForUpdate(ctx, historyID)
		if derr != nil {
			return shared.Lookup(derr, shared.ErrHistoryNotFound, "failed to load history")
		}

		now := uc.clock.Now()
		if derr = h.ChangeStatus(next, now); derr != nil {
			return invalidTransition(derr)
		}
		if derr = tx.Histories().UpdateStatus(ctx, h.ID(), h.Status(), now); derr != nil {
			return derr
		}
		if derr = enqueueHistoryEvent(ctx, tx, shared.TopicHistoryUpdated, h, now); derr != nil {
			return derr
		}

		updated = h
		return nil
	})
	if err != nil {
		return nil, errs.System(err, "failed to update history status")
	}
	return updated, nil
}

func ensureStaff(ctx context.Context, reads shared.CommandReads, userID uuid.UUID) error {
	u, err := reads.UserByID(ctx, userID)
	if err != nil {
		return shared.Lookup(err, shared.ErrUserNotFound, "failed to load karyawan")
	}
	if !u.Role().IsStaff() || !u.IsActive() {
		return ErrKaryawanNotStaff
	}
	return nil
}

// priceLines resolves each input against the catalog, snapshotting the name
// and falling back to the catalog price when none was given.
func priceLines(ctx context.Context, reads shared.CommandReads, inputs []history.LineItemInput) ([]history.LineItem, error) {
	lines := make([]history.LineItem, 0, len(inputs))
	for _, in := range inputs {
		item, err := reads.CatalogItemByID(ctx, in.Kind, in.RefID)
		if err != nil {
			return nil, shared.Lookup(err, shared.ErrCatalogItemNotFound, "failed to load catalog item")
		}

		unitPrice := item.Price()
		if in.UnitPrice != nil {
			if unitPrice, err = money.New(*in.UnitPrice); err != nil {
				return nil, shared.Validation(err)
			}
		}

		line, err := history.NewLineItem(in.Kind, in.RefID, item.Name(), in.Quantity, unitPrice)
		if err != nil {
			return nil, shared.Validation(err)
		}
		lines = append(lines, line)
	}
	return lines, nil
}
