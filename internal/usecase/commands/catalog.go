package commands

import (
	"context"

	"bengkel-service/internal/domain/authz"
	"bengkel-service/internal/domain/catalog"
	"bengkel-service/internal/domain/money"
	"bengkel-service/internal/infra"
	"bengkel-service/internal/pkg/clock"
	"bengkel-service/internal/pkg/errs"
	"bengkel-service/internal/usecase/shared"

	"github.com/google/uuid"
)

//go:generate mockgen -source=catalog.go -destination=../../../tests/mock/commands/catalog_mock.go -package=commandsmock

var ErrPartCodeTaken = errs.Mark(errs.New("sparepart code is already registered"), errs.ErrValidation)

type CreateCatalogItemRequest struct {
	Kind  catalog.Kind
	Code  string
	Name  string
	Price string
}

type CatalogCommands interface {
	CreateItem(ctx context.Context, actor authz.Actor, req CreateCatalogItemRequest) (*catalog.Item, error)
}

type catalogUseCaseImpl struct {
	uow   shared.UnitOfWork
	clock clock.Clock
}

func NewCatalogUseCase(uow shared.UnitOfWork, clk clock.Clock) CatalogCommands {
	return &catalogUseCaseImpl{uow: uow, clock: clk}
}

func (uc *catalogUseCaseImpl) CreateItem(ctx context.Context, actor authz.Actor, req CreateCatalogItemRequest) (*catalog.Item, error) {
	if err := shared.Authorize(actor, authz.ActionManageCatalog, uuid.Nil); err != nil {
		return nil, err
	}

	price, err := money.Parse(req.Price)
	if err != nil {
		return nil, shared.Validation(err)
	}

	var item *catalog.Item
	switch req.Kind {
	case catalog.KindService:
		item, err = catalog.NewService(req.Name, price, uc.clock.Now())
	case catalog.KindSparepart:
		item, err = catalog.NewSparepart(req.Code, req.Name, price, uc.clock.Now())
	default:
		err = catalog.ErrInvalidKind
	}
	if err != nil {
		return nil, shared.Validation(err)
	}

	err = uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		return tx.Catalog().Create(ctx, item)
	})
	if err != nil {
		if infra.IsConstraint(err, infra.ConstraintSparepartCode) {
			return nil, ErrPartCodeTaken
		}
		return nil, errs.System(err, "failed to create catalog item")
	}
	return item, nil
}
