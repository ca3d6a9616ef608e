package request

import (
	"errors"

	"bengkel-service/internal/domain/catalog"
	"bengkel-service/internal/domain/history"
	"bengkel-service/internal/pkg/patch"
	"bengkel-service/internal/usecase/commands"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

var (
	ErrMixedLineItemShapes = errors.New("send either items or a single service_id/sparepart_id, not both")
	ErrAmbiguousReference  = errors.New("a line item references both a service and a sparepart")
)

type LineItemRequest struct {
	ServiceID   *uuid.UUID       `json:"service_id,omitempty"`
	SparepartID *uuid.UUID       `json:"sparepart_id,omitempty"`
	Quantity    *int             `json:"quantity,omitempty" binding:"omitempty,min=1"`
	UnitPrice   *decimal.Decimal `json:"unit_price,omitempty"`
}

// CreateHistoryRequest accepts the items list, or the flat single-item form
// (service_id / sparepart_id / quantity / harga) used by older clients.
type CreateHistoryRequest struct {
	KaryawanID *uuid.UUID        `json:"karyawan_id,omitempty"`
	VehicleID  *uuid.UUID        `json:"vehicle_id,omitempty"`
	Items      []LineItemRequest `json:"items,omitempty" binding:"omitempty,dive"`

	ServiceID   *uuid.UUID       `json:"service_id,omitempty"`
	SparepartID *uuid.UUID       `json:"sparepart_id,omitempty"`
	Quantity    *int             `json:"quantity,omitempty" binding:"omitempty,min=1"`
	Harga       *decimal.Decimal `json:"harga,omitempty"`
}

func (r *CreateHistoryRequest) ToInput(bookingID uuid.UUID) (commands.CreateHistoryRequest, error) {
	spec, err := r.ToSpec()
	if err != nil {
		return commands.CreateHistoryRequest{}, err
	}
	return commands.CreateHistoryRequest{
		BookingID:  bookingID,
		KaryawanID: r.KaryawanID,
		VehicleID:  r.VehicleID,
		Items:      spec,
	}, nil
}

func (r *CreateHistoryRequest) ToSpec() (history.LineItemSpec, error) {
	single := r.ServiceID != nil || r.SparepartID != nil
	if single && len(r.Items) > 0 {
		return nil, ErrMixedLineItemShapes
	}

	if single {
		in, err := LineItemRequest{
			ServiceID:   r.ServiceID,
			SparepartID: r.SparepartID,
			Quantity:    r.Quantity,
			UnitPrice:   r.Harga,
		}.toInput()
		if err != nil {
			return nil, err
		}
		return history.Single{Item: in}, nil
	}

	inputs := make([]history.LineItemInput, 0, len(r.Items))
	for _, item := range r.Items {
		in, err := item.toInput()
		if err != nil {
			return nil, err
		}
		inputs = append(inputs, in)
	}
	return history.Many{Items: inputs}, nil
}

func (l LineItemRequest) toInput() (history.LineItemInput, error) {
	if l.ServiceID != nil && l.SparepartID != nil {
		return history.LineItemInput{}, ErrAmbiguousReference
	}

	// omitted means one unit; an explicit zero is an error, not a default
	quantity := patch.Coalesce(l.Quantity, 1)
	if quantity < 1 {
		return history.LineItemInput{}, history.ErrInvalidQuantity
	}

	in := history.LineItemInput{Quantity: quantity, UnitPrice: l.UnitPrice}
	switch {
	case l.ServiceID != nil:
		in.Kind, in.RefID = catalog.KindService, *l.ServiceID
	case l.SparepartID != nil:
		in.Kind, in.RefID = catalog.KindSparepart, *l.SparepartID
	default:
		return history.LineItemInput{}, history.ErrMissingItemReference
	}
	return in, nil
}

type UpdateHistoryStatusRequest struct {
	Status string `json:"status" binding:"required"`
}
