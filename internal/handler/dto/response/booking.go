package response

import (
	"time"

	"bengkel-service/internal/usecase/queries"

	"github.com/google/uuid"
)

type BookingResponse struct {
	ID           uuid.UUID  `json:"id"`
	UserID       uuid.UUID  `json:"user_id"`
	UserName     string     `json:"user_name"`
	UserEmail    string     `json:"user_email"`
	VehicleID    *uuid.UUID `json:"vehicle_id,omitempty"`
	VehiclePlate *string    `json:"vehicle_plate,omitempty"`
	ServiceDate  string     `json:"service_date"`
	Message      string     `json:"message"`
	QueueNumber  int32      `json:"queue_number"`
	Status       string     `json:"status"`
	HistoryID    *uuid.UUID `json:"history_id,omitempty"`
	CreatedAt    time.Time  `json:"created_at"`
	UpdatedAt    time.Time  `json:"updated_at"`
}

type BookingListResponse struct {
	Items      []*BookingResponse `json:"items"`
	NextCursor string             `json:"next_cursor,omitempty"`
}

type QueuePreviewResponse struct {
	ServiceDate string `json:"service_date"`
	Issued      int32  `json:"issued"`
	Active      int32  `json:"active"`
	Next        int32  `json:"next"`
}

func FromBookingView(v *queries.BookingView) *BookingResponse {
	return copyInto[BookingResponse](v)
}

func FromBookingViews(items []*queries.BookingView) []*BookingResponse {
	return copyList[BookingResponse](items)
}

func FromQueueStats(s *queries.QueueStats) *QueuePreviewResponse {
	return copyInto[QueuePreviewResponse](s)
}
