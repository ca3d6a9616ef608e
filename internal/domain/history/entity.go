package history

import (
	"errors"
	"time"

	"bengkel-service/internal/domain/money"

	"github.com/google/uuid"
)

var (
	ErrInvalidStatus        = errors.New("invalid history status")
	ErrTransitionNotAllowed = errors.New("history status transition not allowed")
	ErrMissingKaryawan      = errors.New("a staff member must be assigned")
)

type History struct {
	id         uuid.UUID
	bookingID  uuid.UUID
	userID     uuid.UUID
	karyawanID uuid.UUID
	vehicleID  *uuid.UUID
	status     ProgressStatus
	items      []LineItem
	total      money.Money
	createdAt  time.Time
	updatedAt  time.Time
}

// NewHistory always recomputes the total from the line items.
func NewHistory(
	bookingID, userID, karyawanID uuid.UUID,
	vehicleID *uuid.UUID,
	items []LineItem,
	now time.Time,
) (*History, error) {
	if len(items) == 0 {
		return nil, ErrNoLineItems
	}
	if karyawanID == uuid.Nil {
		return nil, ErrMissingKaryawan
	}

	copied := make([]LineItem, len(items))
	copy(copied, items)

	return &History{
		id:         uuid.New(),
		bookingID:  bookingID,
		userID:     userID,
		karyawanID: karyawanID,
		vehicleID:  vehicleID,
		status:     StatusPending,
		items:      copied,
		total:      TotalOf(copied),
		createdAt:  now,
		updatedAt:  now,
	}, nil
}

func ReconstructHistory(
	id, bookingID, userID, karyawanID uuid.UUID,
	vehicleID *uuid.UUID,
	status ProgressStatus,
	items []LineItem,
	total money.Money,
	createdAt, updatedAt time.Time,
) *History {
	return &History{
		id:         id,
		bookingID:  bookingID,
		userID:     userID,
		karyawanID: karyawanID,
		vehicleID:  vehicleID,
		status:     status,
		items:      items,
		total:      total,
		createdAt:  createdAt,
		updatedAt:  updatedAt,
	}
}

func TotalOf(items []LineItem) money.Money {
	total := money.Zero()
	for _, it := range items {
		total = total.Add(it.LineTotal())
	}
	return total
}

func (h *History) ChangeStatus(next ProgressStatus, now time.Time) error {
	if err := h.status.validateTransition(next); err != nil {
		return err
	}
	h.status = next
	h.updatedAt = now
	return nil
}

func (h *History) ID() uuid.UUID          { return h.id }
func (h *History) BookingID() uuid.UUID   { return h.bookingID }
func (h *History) UserID() uuid.UUID      { return h.userID }
func (h *History) KaryawanID() uuid.UUID  { return h.karyawanID }
func (h *History) VehicleID() *uuid.UUID  { return h.vehicleID }
func (h *History) Status() ProgressStatus { return h.status }
func (h *History) Total() money.Money     { return h.total }
func (h *History) CreatedAt() time.Time   { return h.createdAt }
func (h *History) UpdatedAt() time.Time   { return h.updatedAt }

func (h *History) Items() []LineItem {
	out := make([]LineItem, len(h.items))
	copy(out, h.items)
	return out
}
