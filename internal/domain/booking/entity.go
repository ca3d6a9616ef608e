package booking

import (
	"time"

	"github.com/google/uuid"
)

type Booking struct {
	id          uuid.UUID
	userID      uuid.UUID
	vehicleID   *uuid.UUID
	day         ServiceDay
	message     Message
	queueNumber QueueNumber
	status      Status
	createdAt   time.Time
	updatedAt   time.Time
}

func NewBooking(
	userID uuid.UUID,
	vehicleID *uuid.UUID,
	day ServiceDay,
	message Message,
	queueNumber QueueNumber,
	now time.Time,
) (*Booking, error) {
	if queueNumber <= 0 {
		return nil, ErrInvalidQueueNumber
	}
	if day.IsZero() {
		return nil, ErrInvalidDate
	}
	return &Booking{
		id:          uuid.New(),
		userID:      userID,
		vehicleID:   vehicleID,
		day:         day,
		message:     message,
		queueNumber: queueNumber,
		status:      StatusPending,
		createdAt:   now,
		updatedAt:   now,
	}, nil
}

func ReconstructBooking(
	id, userID uuid.UUID,
	vehicleID *uuid.UUID,
	day ServiceDay,
	message Message,
	queueNumber QueueNumber,
	status Status,
	createdAt, updatedAt time.Time,
) *Booking {
	return &Booking{
		id:          id,
		userID:      userID,
		vehicleID:   vehicleID,
		day:         day,
		message:     message,
		queueNumber: queueNumber,
		status:      status,
		createdAt:   createdAt,
		updatedAt:   updatedAt,
	}
}

func (b *Booking) Cancel(now time.Time) error {
	return b.apply(TriggerCancel, now)
}

// Confirm is reserved for history creation.
func (b *Booking) Confirm(now time.Time) error {
	return b.apply(TriggerHistoryCreated, now)
}

func (b *Booking) apply(t Trigger, now time.Time) error {
	next, err := b.status.Next(t)
	if err != nil {
		return err
	}
	b.status = next
	b.updatedAt = now
	return nil
}

func (b *Booking) IsPending() bool { return b.status == StatusPending }

func (b *Booking) IsOwnedBy(userID uuid.UUID) bool { return b.userID == userID }

func (b *Booking) ID() uuid.UUID            { return b.id }
func (b *Booking) UserID() uuid.UUID        { return b.userID }
func (b *Booking) VehicleID() *uuid.UUID    { return b.vehicleID }
func (b *Booking) Day() ServiceDay          { return b.day }
func (b *Booking) Message() Message         { return b.message }
func (b *Booking) QueueNumber() QueueNumber { return b.queueNumber }
func (b *Booking) Status() Status           { return b.status }
func (b *Booking) CreatedAt() time.Time     { return b.createdAt }
func (b *Booking) UpdatedAt() time.Time     { return b.updatedAt }
