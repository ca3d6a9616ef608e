package commands

import (
	"context"
	"encoding/json"
	"time"

	"bengkel-service/internal/domain/booking"
	"bengkel-service/internal/domain/history"
	"bengkel-service/internal/usecase/shared"

	"github.com/google/uuid"
)

const jobKindCustomerNotice = "customer_notice"

type bookingEvent struct {
	BookingID   uuid.UUID `json:"booking_id"`
	UserID      uuid.UUID `json:"user_id"`
	ServiceDate string    `json:"service_date"`
	QueueNumber int       `json:"queue_number"`
	Status      string    `json:"status"`
}

type historyEvent struct {
	HistoryID uuid.UUID `json:"history_id"`
	BookingID uuid.UUID `json:"booking_id"`
	UserID    uuid.UUID `json:"user_id"`
	Status    string    `json:"status"`
	Total     string    `json:"total"`
}

func enqueueBookingEvent(ctx context.Context, tx shared.Tx, topic string, b *booking.Booking, at time.Time) error {
	return enqueue(ctx, tx, topic, bookingEvent{
		BookingID:   b.ID(),
		UserID:      b.UserID(),
		ServiceDate: b.Day().String(),
		QueueNumber: b.QueueNumber().Int(),
		Status:      b.Status().String(),
	}, at)
}

func enqueueHistoryEvent(ctx context.Context, tx shared.Tx, topic string, h *history.History, at time.Time) error {
	return enqueue(ctx, tx, topic, historyEvent{
		HistoryID: h.ID(),
		BookingID: h.BookingID(),
		UserID:    h.UserID(),
		Status:    h.Status().String(),
		Total:     h.Total().String(),
	}, at)
}

func enqueue(ctx context.Context, tx shared.Tx, topic string, event any, at time.Time) error {
	payload, err := json.Marshal(event)
	if err != nil {
		return err
	}
	return tx.Notifications().CreateJob(ctx, jobKindCustomerNotice, topic, payload, at)
}
