package commands

import (
	"context"

	"bengkel-service/internal/domain/authz"
	"bengkel-service/internal/domain/vehicle"
	"bengkel-service/internal/infra"
	"bengkel-service/internal/pkg/clock"
	"bengkel-service/internal/pkg/errs"
	"bengkel-service/internal/usecase/shared"
)

//go:generate mockgen -source=vehicle.go -destination=../../../tests/mock/commands/vehicle_mock.go -package=commandsmock

var ErrPlateTaken = errs.Mark(errs.New("plate number is already registered"), errs.ErrValidation)

type RegisterVehicleRequest struct {
	Plate string
	Brand string
	Model string
	Year  *int32
}

type VehicleCommands interface {
	RegisterVehicle(ctx context.Context, actor authz.Actor, req RegisterVehicleRequest) (*vehicle.Vehicle, error)
}

type vehicleUseCaseImpl struct {
	uow   shared.UnitOfWork
	clock clock.Clock
}

func NewVehicleUseCase(uow shared.UnitOfWork, clk clock.Clock) VehicleCommands {
	return &vehicleUseCaseImpl{uow: uow, clock: clk}
}

func (uc *vehicleUseCaseImpl) RegisterVehicle(ctx context.Context, actor authz.Actor, req RegisterVehicleRequest) (*vehicle.Vehicle, error) {
	if err := shared.Authorize(actor, authz.ActionManageVehicle, actor.ID); err != nil {
		return nil, err
	}

	plate, err := vehicle.NewPlate(req.Plate)
	if err != nil {
		return nil, shared.Validation(err)
	}
	v, err := vehicle.NewVehicle(actor.ID, plate, req.Brand, req.Model, req.Year, uc.clock.Now())
	if err != nil {
		return nil, shared.Validation(err)
	}

	err = uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		return tx.Vehicles().Create(ctx, v)
	})
	if err != nil {
		if infra.IsConstraint(err, infra.ConstraintVehiclePlate) {
			return nil, ErrPlateTaken
		}
		return nil, errs.System(err, "failed to register vehicle")
	}
	return v, nil
}
