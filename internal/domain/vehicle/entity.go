package vehicle

import (
	"errors"
	"regexp"
	"strings"
	"time"

	"github.com/google/uuid"
)

var (
	ErrInvalidPlate = errors.New("plate number must be 3 to 12 letters or digits")
	ErrInvalidBrand = errors.New("brand is required")
	ErrInvalidYear  = errors.New("year is out of range")
)

const minYear = 1950

var plateRegex = regexp.MustCompile(`^[A-Z0-9 ]{3,12}$`)

type Plate struct {
	value string
}

// NewPlate upper-cases the input and collapses whitespace, so "b 1234  xyz" equals "B 1234 XYZ".
func NewPlate(s string) (Plate, error) {
	s = strings.ToUpper(strings.Join(strings.Fields(s), " "))
	if !plateRegex.MatchString(s) {
		return Plate{}, ErrInvalidPlate
	}
	return Plate{value: s}, nil
}

func (p Plate) String() string {
	return p.value
}

type Vehicle struct {
	id        uuid.UUID
	ownerID   uuid.UUID
	plate     Plate
	brand     string
	model     string
	year      *int32
	createdAt time.Time
}

func NewVehicle(ownerID uuid.UUID, plate Plate, brand, model string, year *int32, now time.Time) (*Vehicle, error) {
	brand = strings.TrimSpace(brand)
	if brand == "" {
		return nil, ErrInvalidBrand
	}
	if year != nil && (int(*year) < minYear || int(*year) > now.Year()+1) {
		return nil, ErrInvalidYear
	}
	return &Vehicle{
		id:        uuid.New(),
		ownerID:   ownerID,
		plate:     plate,
		brand:     brand,
		model:     strings.TrimSpace(model),
		year:      year,
		createdAt: now,
	}, nil
}

func ReconstructVehicle(id, ownerID uuid.UUID, plate Plate, brand, model string, year *int32, createdAt time.Time) *Vehicle {
	return &Vehicle{id: id, ownerID: ownerID, plate: plate, brand: brand, model: model, year: year, createdAt: createdAt}
}

func (v *Vehicle) IsOwnedBy(userID uuid.UUID) bool { return v.ownerID == userID }

func (v *Vehicle) ID() uuid.UUID        { return v.id }
func (v *Vehicle) OwnerID() uuid.UUID   { return v.ownerID }
func (v *Vehicle) Plate() Plate         { return v.plate }
func (v *Vehicle) Brand() string        { return v.brand }
func (v *Vehicle) Model() string        { return v.model }
func (v *Vehicle) Year() *int32         { return v.year }
func (v *Vehicle) CreatedAt() time.Time { return v.createdAt }
