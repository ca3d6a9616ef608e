package request

import (
	"strings"

	"bengkel-service/internal/domain/catalog"
	"bengkel-service/internal/usecase/commands"
)

type CreateServiceRequest struct {
	Name  string `json:"name" binding:"required"`
	Price string `json:"price" binding:"required"`
}

func (r *CreateServiceRequest) ToInput() commands.CreateCatalogItemRequest {
	return commands.CreateCatalogItemRequest{
		Kind:  catalog.KindService,
		Name:  strings.TrimSpace(r.Name),
		Price: strings.TrimSpace(r.Price),
	}
}

type CreateSparepartRequest struct {
	Code  string `json:"code" binding:"required"`
	Name  string `json:"name" binding:"required"`
	Price string `json:"price" binding:"required"`
}

func (r *CreateSparepartRequest) ToInput() commands.CreateCatalogItemRequest {
	return commands.CreateCatalogItemRequest{
		Kind:  catalog.KindSparepart,
		Code:  strings.ToUpper(strings.TrimSpace(r.Code)),
		Name:  strings.TrimSpace(r.Name),
		Price: strings.TrimSpace(r.Price),
	}
}
