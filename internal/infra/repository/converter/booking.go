package converter

import (
	"time"

	"bengkel-service/internal/domain/booking"
	"bengkel-service/internal/infra/sqlc"
	"bengkel-service/internal/pkg/pgconv"
)

func BookingToCreateParams(b *booking.Booking) sqlc.CreateBookingParams {
	return sqlc.CreateBookingParams{
		ID:          b.ID(),
		UserID:      b.UserID(),
		VehicleID:   pgconv.UUIDPtrToPgtype(b.VehicleID()),
		ServiceDate: pgconv.DateToPgtype(b.Day().Start()),
		Message:     b.Message().String(),
		QueueNumber: int32(b.QueueNumber().Int()),
		Status:      b.Status().String(),
		CreatedAt:   b.CreatedAt(),
		UpdatedAt:   b.UpdatedAt(),
	}
}

// BookingFromRow trusts stored values; the schema enforces the same rules as the domain.
func BookingFromRow(row sqlc.Bookings, loc *time.Location) (*booking.Booking, error) {
	status, err := booking.NewStatus(row.Status)
	if err != nil {
		return nil, err
	}
	message, err := booking.NewMessage(row.Message)
	if err != nil {
		return nil, err
	}
	queue, err := booking.NewQueueNumber(int(row.QueueNumber))
	if err != nil {
		return nil, err
	}
	day := booking.NewServiceDay(pgconv.DateFromPgtype(row.ServiceDate, loc), loc)

	return booking.ReconstructBooking(
		row.ID,
		row.UserID,
		pgconv.UUIDPtrFromPgtype(row.VehicleID),
		day,
		message,
		queue,
		status,
		row.CreatedAt,
		row.UpdatedAt,
	), nil
}
