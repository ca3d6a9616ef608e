package request

import (
	"strings"

	"bengkel-service/internal/usecase/commands"
)

type RegisterVehicleRequest struct {
	Plate string `json:"plate" binding:"required"`
	Brand string `json:"brand" binding:"required,max=60"`
	Model string `json:"model" binding:"required,max=60"`
	Year  *int32 `json:"year,omitempty" binding:"omitempty,min=1950,max=2100"`
}

func (r *RegisterVehicleRequest) ToInput() commands.RegisterVehicleRequest {
	return commands.RegisterVehicleRequest{
		Plate: r.Plate,
		Brand: strings.TrimSpace(r.Brand),
		Model: strings.TrimSpace(r.Model),
		Year:  r.Year,
	}
}
