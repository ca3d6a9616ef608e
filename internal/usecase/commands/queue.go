package commands

import (
	"context"

	"bengkel-service/internal/domain/booking"
	"bengkel-service/internal/usecase/shared"
)

// AllocateQueueNumber reads every booking of the day, cancelled ones included,
// and returns the next number. Callers must hold the day lock of the same
// transaction so two admissions never observe the same maximum.
func AllocateQueueNumber(ctx context.Context, reads shared.CommandReads, day booking.ServiceDay) (booking.QueueNumber, error) {
	existing, err := reads.BookingsByDay(ctx, day)
	if err != nil {
		return 0, err
	}

	taken := make([]booking.QueueNumber, 0, len(existing))
	for _, b := range existing {
		taken = append(taken, b.QueueNumber())
	}
	return booking.NextQueueNumber(taken), nil
}
