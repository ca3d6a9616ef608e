package request

import (
	"strings"

	"bengkel-service/internal/usecase/commands"

	"github.com/google/uuid"
)

type CreateBookingRequest struct {
	VehicleID *uuid.UUID `json:"vehicle_id,omitempty"`
	// Date is the service day, YYYY-MM-DD.
	Date    string `json:"date" binding:"required"`
	Message string `json:"message" binding:"required"`
}

func (r *CreateBookingRequest) ToInput() commands.CreateBookingRequest {
	return commands.CreateBookingRequest{
		VehicleID: r.VehicleID,
		Date:      strings.TrimSpace(r.Date),
		Message:   r.Message,
	}
}
