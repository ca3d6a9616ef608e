package catalog

import "errors"

var (
	ErrInvalidKind      = errors.New("item kind must be SERVICE or SPAREPART")
	ErrInvalidItemName  = errors.New("item name must be between 2 and 150 characters")
	ErrInvalidPartCode  = errors.New("sparepart code must be 2 to 40 letters, digits or dashes")
	ErrNegativeItemCost = errors.New("item price cannot be negative")
)

type Kind string

const (
	KindService   Kind = "SERVICE"
	KindSparepart Kind = "SPAREPART"
)

func (k Kind) String() string {
	return string(k)
}

func (k Kind) IsValid() bool {
	switch k {
	case KindService, KindSparepart:
		return true
	default:
		return false
	}
}

func NewKind(s string) (Kind, error) {
	k := Kind(s)
	if !k.IsValid() {
		return "", ErrInvalidKind
	}
	return k, nil
}
