package response

import (
	"time"

	"bengkel-service/internal/domain/invoice"
	"bengkel-service/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type HistoryListItemResponse struct {
	ID           uuid.UUID       `json:"id"`
	BookingID    uuid.UUID       `json:"booking_id"`
	QueueNumber  int32           `json:"queue_number"`
	ServiceDate  string          `json:"service_date"`
	UserID       uuid.UUID       `json:"user_id"`
	UserName     string          `json:"user_name"`
	KaryawanID   uuid.UUID       `json:"karyawan_id"`
	KaryawanName string          `json:"karyawan_name"`
	VehiclePlate *string         `json:"vehicle_plate,omitempty"`
	Status       string          `json:"status"`
	Total        decimal.Decimal `json:"total"`
	CreatedAt    time.Time       `json:"created_at"`
}

type HistoryListResponse struct {
	Items      []*HistoryListItemResponse `json:"items"`
	NextCursor string                     `json:"next_cursor,omitempty"`
}

type HistoryItemResponse struct {
	ID        uuid.UUID       `json:"id"`
	Kind      string          `json:"kind"`
	RefID     uuid.UUID       `json:"ref_id"`
	Name      string          `json:"name"`
	Quantity  int32           `json:"quantity"`
	UnitPrice decimal.Decimal `json:"unit_price"`
	LineTotal decimal.Decimal `json:"line_total"`
}

type HistoryResponse struct {
	ID            uuid.UUID              `json:"id"`
	BookingID     uuid.UUID              `json:"booking_id"`
	QueueNumber   int32                  `json:"queue_number"`
	ServiceDate   string                 `json:"service_date"`
	UserID        uuid.UUID              `json:"user_id"`
	UserName      string                 `json:"user_name"`
	UserEmail     string                 `json:"user_email"`
	KaryawanID    uuid.UUID              `json:"karyawan_id"`
	KaryawanName  string                 `json:"karyawan_name"`
	KaryawanEmail string                 `json:"karyawan_email"`
	VehicleID     *uuid.UUID             `json:"vehicle_id,omitempty"`
	VehiclePlate  *string                `json:"vehicle_plate,omitempty"`
	VehicleBrand  *string                `json:"vehicle_brand,omitempty"`
	VehicleModel  *string                `json:"vehicle_model,omitempty"`
	Status        string                 `json:"status"`
	Total         decimal.Decimal        `json:"total"`
	Items         []*HistoryItemResponse `json:"items"`
	CreatedAt     time.Time              `json:"created_at"`
	UpdatedAt     time.Time              `json:"updated_at"`
}

func FromHistoryDetail(v *queries.HistoryDetailView) *HistoryResponse {
	resp := copyInto[HistoryResponse](v)
	resp.Items = copyList[HistoryItemResponse](v.Items)
	return resp
}

func FromHistoryList(items []*queries.HistoryListItem) []*HistoryListItemResponse {
	return copyList[HistoryListItemResponse](items)
}

type InvoiceLineResponse struct {
	No          int             `json:"no"`
	Kind        string          `json:"kind"`
	Description string          `json:"description"`
	Quantity    int             `json:"quantity"`
	UnitPrice   decimal.Decimal `json:"unit_price"`
	LineTotal   decimal.Decimal `json:"line_total"`
	UnitText    string          `json:"unit_price_text"`
	TotalText   string          `json:"line_total_text"`
}

type InvoicePartyResponse struct {
	Name  string `json:"name"`
	Email string `json:"email,omitempty"`
}

type InvoiceVehicleResponse struct {
	Plate string `json:"plate"`
	Brand string `json:"brand,omitempty"`
	Model string `json:"model,omitempty"`
}

type InvoiceResponse struct {
	Number      string                  `json:"number"`
	HistoryID   uuid.UUID               `json:"history_id"`
	BookingID   uuid.UUID               `json:"booking_id"`
	QueueNumber int                     `json:"queue_number"`
	ServiceDate string                  `json:"service_date"`
	IssuedAt    string                  `json:"issued_at"`
	Status      string                  `json:"status"`
	Customer    InvoicePartyResponse    `json:"customer"`
	Staff       InvoicePartyResponse    `json:"staff"`
	Vehicle     *InvoiceVehicleResponse `json:"vehicle,omitempty"`
	Lines       []InvoiceLineResponse   `json:"lines"`
	Total       decimal.Decimal         `json:"total"`
	TotalText   string                  `json:"total_text"`
}

func FromInvoice(inv *invoice.Invoice) *InvoiceResponse {
	resp := &InvoiceResponse{
		Number:      inv.Number,
		HistoryID:   inv.HistoryID,
		BookingID:   inv.BookingID,
		QueueNumber: inv.QueueNumber,
		ServiceDate: inv.ServiceDate,
		IssuedAt:    inv.IssuedAt,
		Status:      inv.Status,
		Customer:    InvoicePartyResponse{Name: inv.Customer.Name, Email: inv.Customer.Email},
		Staff:       InvoicePartyResponse{Name: inv.Staff.Name, Email: inv.Staff.Email},
		Lines:       make([]InvoiceLineResponse, len(inv.Lines)),
		Total:       inv.Total.Decimal(),
		TotalText:   inv.TotalText,
	}
	if inv.Vehicle != nil {
		resp.Vehicle = &InvoiceVehicleResponse{
			Plate: inv.Vehicle.Plate,
			Brand: inv.Vehicle.Brand,
			Model: inv.Vehicle.Model,
		}
	}
	for i, l := range inv.Lines {
		resp.Lines[i] = InvoiceLineResponse{
			No:          l.No,
			Kind:        l.Kind,
			Description: l.Description,
			Quantity:    l.Quantity,
			UnitPrice:   l.UnitPrice.Decimal(),
			LineTotal:   l.LineTotal.Decimal(),
			UnitText:    l.UnitPriceText,
			TotalText:   l.LineTotalText,
		}
	}
	return resp
}
