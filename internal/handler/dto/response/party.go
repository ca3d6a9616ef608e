package response

import (
	"time"

	"bengkel-service/internal/domain/catalog"
	"bengkel-service/internal/domain/vehicle"
	"bengkel-service/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type VehicleResponse struct {
	ID        uuid.UUID `json:"id"`
	OwnerID   uuid.UUID `json:"owner_id"`
	Plate     string    `json:"plate"`
	Brand     string    `json:"brand"`
	Model     string    `json:"model"`
	Year      *int32    `json:"year,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

func FromVehicle(v *vehicle.Vehicle) *VehicleResponse {
	return &VehicleResponse{
		ID:        v.ID(),
		OwnerID:   v.OwnerID(),
		Plate:     v.Plate().String(),
		Brand:     v.Brand(),
		Model:     v.Model(),
		Year:      v.Year(),
		CreatedAt: v.CreatedAt(),
	}
}

func FromVehicleViews(items []*queries.VehicleView) []*VehicleResponse {
	return copyList[VehicleResponse](items)
}

type CatalogItemResponse struct {
	ID        uuid.UUID       `json:"id"`
	Kind      string          `json:"kind"`
	Code      *string         `json:"code,omitempty"`
	Name      string          `json:"name"`
	Price     decimal.Decimal `json:"price"`
	CreatedAt time.Time       `json:"created_at"`
}

func FromCatalogItem(item *catalog.Item) *CatalogItemResponse {
	resp := &CatalogItemResponse{
		ID:        item.ID(),
		Kind:      item.Kind().String(),
		Name:      item.Name(),
		Price:     item.Price().Decimal(),
		CreatedAt: item.CreatedAt(),
	}
	if code := item.Code(); code != "" {
		resp.Code = &code
	}
	return resp
}

func FromCatalogViews(items []*queries.CatalogItemView) []*CatalogItemResponse {
	return copyList[CatalogItemResponse](items)
}
