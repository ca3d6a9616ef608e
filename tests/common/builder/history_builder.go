//go:build unit || e2e

package builder

import (
	"time"

	"bengkel-service/internal/domain/history"
	reqdto "bengkel-service/internal/handler/dto/request"
	"bengkel-service/internal/pkg/patch"
	"bengkel-service/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type HistoryBuilder struct {
	ID          uuid.UUID
	BookingID   uuid.UUID
	UserID      uuid.UUID
	KaryawanID  uuid.UUID
	ServiceID   uuid.UUID
	SparepartID uuid.UUID
	Status      history.ProgressStatus
	CreatedAt   time.Time
}

func NewHistoryBuilder() *HistoryBuilder {
	return &HistoryBuilder{
		ID:          uuid.New(),
		BookingID:   uuid.New(),
		UserID:      uuid.New(),
		KaryawanID:  uuid.New(),
		ServiceID:   uuid.New(),
		SparepartID: uuid.New(),
		Status:      history.StatusPending,
		CreatedAt:   time.Date(2025, 3, 10, 10, 0, 0, 0, Jakarta),
	}
}

func (h *HistoryBuilder) With(mutate func(*HistoryBuilder)) *HistoryBuilder {
	mutate(h)
	return h
}

// BuildDTO is the items-list form: one service and two units of one sparepart.
func (h *HistoryBuilder) BuildDTO() reqdto.CreateHistoryRequest {
	serviceID, sparepartID := h.ServiceID, h.SparepartID
	return reqdto.CreateHistoryRequest{
		Items: []reqdto.LineItemRequest{
			{ServiceID: &serviceID, Quantity: patch.Ref(1)},
			{SparepartID: &sparepartID, Quantity: patch.Ref(2)},
		},
	}
}

// BuildSingleDTO is the flat single-item form.
func (h *HistoryBuilder) BuildSingleDTO() reqdto.CreateHistoryRequest {
	serviceID := h.ServiceID
	harga := decimal.NewFromInt(150000)
	return reqdto.CreateHistoryRequest{
		ServiceID: &serviceID,
		Quantity:  patch.Ref(1),
		Harga:     &harga,
	}
}

func (h *HistoryBuilder) BuildDetailView() *queries.HistoryDetailView {
	plate := "B 1234 XYZ"
	return &queries.HistoryDetailView{
		ID:            h.ID,
		BookingID:     h.BookingID,
		QueueNumber:   1,
		ServiceDate:   "2025-03-10",
		UserID:        h.UserID,
		UserName:      "Budi Santoso",
		UserEmail:     "test@example.com",
		KaryawanID:    h.KaryawanID,
		KaryawanName:  "Agus Mekanik",
		KaryawanEmail: "agus@example.com",
		VehiclePlate:  &plate,
		Status:        h.Status.String(),
		Total:         decimal.NewFromInt(250000),
		Items: []queries.HistoryItemView{
			{ID: uuid.New(), Kind: "SERVICE", RefID: h.ServiceID, Name: "Servis berkala", Quantity: 1, UnitPrice: decimal.NewFromInt(150000), LineTotal: decimal.NewFromInt(150000)},
			{ID: uuid.New(), Kind: "SPAREPART", RefID: h.SparepartID, Name: "Oli mesin 1L", Quantity: 2, UnitPrice: decimal.NewFromInt(50000), LineTotal: decimal.NewFromInt(100000)},
		},
		CreatedAt: h.CreatedAt,
		UpdatedAt: h.CreatedAt,
	}
}

func (h *HistoryBuilder) BuildListItem() *queries.HistoryListItem {
	return &queries.HistoryListItem{
		ID:           h.ID,
		BookingID:    h.BookingID,
		QueueNumber:  1,
		ServiceDate:  "2025-03-10",
		UserID:       h.UserID,
		UserName:     "Budi Santoso",
		KaryawanID:   h.KaryawanID,
		KaryawanName: "Agus Mekanik",
		Status:       h.Status.String(),
		Total:        decimal.NewFromInt(250000),
		CreatedAt:    h.CreatedAt,
	}
}
