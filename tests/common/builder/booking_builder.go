//go:build unit || e2e

package builder

import (
	"time"

	"bengkel-service/internal/domain/booking"
	reqdto "bengkel-service/internal/handler/dto/request"
	"bengkel-service/internal/usecase/commands"
	"bengkel-service/internal/usecase/queries"

	"github.com/google/uuid"
)

var Jakarta = mustLoad("Asia/Jakarta")

func mustLoad(name string) *time.Location {
	loc, err := time.LoadLocation(name)
	if err != nil {
		return time.FixedZone("WIB", 7*60*60)
	}
	return loc
}

type BookingBuilder struct {
	ID          uuid.UUID
	UserID      uuid.UUID
	VehicleID   *uuid.UUID
	Date        string
	Message     string
	QueueNumber int
	Status      booking.Status
	CreatedAt   time.Time
}

func NewBookingBuilder() *BookingBuilder {
	return &BookingBuilder{
		ID:          uuid.New(),
		UserID:      uuid.New(),
		Date:        "2025-03-10",
		Message:     "Ganti oli dan cek rem depan",
		QueueNumber: 1,
		Status:      booking.StatusPending,
		CreatedAt:   time.Date(2025, 3, 1, 8, 0, 0, 0, Jakarta),
	}
}

func (b *BookingBuilder) With(mutate func(*BookingBuilder)) *BookingBuilder {
	mutate(b)
	return b
}

func (b *BookingBuilder) BuildDTO() reqdto.CreateBookingRequest {
	return reqdto.CreateBookingRequest{
		VehicleID: b.VehicleID,
		Date:      b.Date,
		Message:   b.Message,
	}
}

func (b *BookingBuilder) BuildInput() commands.CreateBookingRequest {
	return commands.CreateBookingRequest{
		VehicleID: b.VehicleID,
		Date:      b.Date,
		Message:   b.Message,
	}
}

func (b *BookingBuilder) BuildDomain() (*booking.Booking, error) {
	day, err := booking.ParseServiceDay(b.Date, Jakarta)
	if err != nil {
		return nil, err
	}
	msg, err := booking.NewMessage(b.Message)
	if err != nil {
		return nil, err
	}
	q, err := booking.NewQueueNumber(b.QueueNumber)
	if err != nil {
		return nil, err
	}
	return booking.ReconstructBooking(b.ID, b.UserID, b.VehicleID, day, msg, q, b.Status, b.CreatedAt, b.CreatedAt), nil
}

func (b *BookingBuilder) BuildView() *queries.BookingView {
	return &queries.BookingView{
		ID:          b.ID,
		UserID:      b.UserID,
		UserName:    "Budi Santoso",
		UserEmail:   "test@example.com",
		VehicleID:   b.VehicleID,
		ServiceDate: b.Date,
		Message:     b.Message,
		QueueNumber: int32(b.QueueNumber),
		Status:      b.Status.String(),
		CreatedAt:   b.CreatedAt,
		UpdatedAt:   b.CreatedAt,
	}
}

func (b *BookingBuilder) WithUser(id uuid.UUID) *BookingBuilder {
	b.UserID = id
	return b
}

func (b *BookingBuilder) WithDate(date string) *BookingBuilder {
	b.Date = date
	return b
}

func (b *BookingBuilder) WithQueue(n int) *BookingBuilder {
	b.QueueNumber = n
	return b
}

func (b *BookingBuilder) WithStatus(s booking.Status) *BookingBuilder {
	b.Status = s
	return b
}
