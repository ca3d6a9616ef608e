package shared

import (
	"time"

	"bengkel-service/internal/domain/booking"
	"bengkel-service/internal/pkg/clock"
	"bengkel-service/internal/pkg/config"
)

// BookingPolicy carries the admission settings every booking usecase agrees on.
type BookingPolicy struct {
	Location        *time.Location
	RejectPastDates bool
}

func NewBookingPolicy(cfg config.Config) BookingPolicy {
	return BookingPolicy{
		Location:        cfg.Booking.Location(),
		RejectPastDates: cfg.Booking.RejectPastDates,
	}
}

func (p BookingPolicy) Today(c clock.Clock) booking.ServiceDay {
	return booking.NewServiceDay(clock.Today(c, p.Location), p.Location)
}

func (p BookingPolicy) ParseDay(s string) (booking.ServiceDay, error) {
	return booking.ParseServiceDay(s, p.Location)
}
