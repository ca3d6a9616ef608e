package converter

import (
	"bengkel-service/internal/domain/catalog"
	"bengkel-service/internal/domain/user"
	"bengkel-service/internal/domain/vehicle"
	"bengkel-service/internal/infra/sqlc"
	"bengkel-service/internal/pkg/pgconv"
)

func UserToCreateParams(u *user.User) sqlc.CreateUserParams {
	return sqlc.CreateUserParams{
		ID:           u.ID(),
		Name:         u.Name().String(),
		Email:        u.Email().Value(),
		PasswordHash: u.PasswordHash(),
		Role:         u.Role().String(),
		IsActive:     u.IsActive(),
		CreatedAt:    u.CreatedAt(),
	}
}

func UserFromRow(row sqlc.Users) (*user.User, error) {
	name, err := user.NewName(row.Name)
	if err != nil {
		return nil, err
	}
	email, err := user.NewEmail(row.Email)
	if err != nil {
		return nil, err
	}
	role, err := user.NewRole(row.Role)
	if err != nil {
		return nil, err
	}
	return user.ReconstructUser(
		row.ID,
		name,
		email,
		row.PasswordHash,
		role,
		pgconv.TimePtrFromPgtype(row.LastLoginAt),
		row.IsActive,
		row.CreatedAt,
	), nil
}

func VehicleToCreateParams(v *vehicle.Vehicle) sqlc.CreateVehicleParams {
	return sqlc.CreateVehicleParams{
		ID:          v.ID(),
		OwnerID:     v.OwnerID(),
		PlateNumber: v.Plate().String(),
		Brand:       v.Brand(),
		Model:       v.Model(),
		Year:        pgconv.Int32PtrToPgtype(v.Year()),
		CreatedAt:   v.CreatedAt(),
	}
}

func VehicleFromRow(row sqlc.Vehicles) (*vehicle.Vehicle, error) {
	plate, err := vehicle.NewPlate(row.PlateNumber)
	if err != nil {
		return nil, err
	}
	return vehicle.ReconstructVehicle(
		row.ID,
		row.OwnerID,
		plate,
		row.Brand,
		row.Model,
		pgconv.Int32PtrFromPgtype(row.Year),
		row.CreatedAt,
	), nil
}

func CatalogItemFromRow(kind catalog.Kind, row sqlc.CatalogItem) (*catalog.Item, error) {
	price, err := moneyFromText(row.Price)
	if err != nil {
		return nil, err
	}
	return catalog.ReconstructItem(row.ID, kind, row.Code.String, row.Name, price, row.CreatedAt), nil
}
