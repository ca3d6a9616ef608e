package shared

import (
	"bengkel-service/internal/domain/authz"
	"bengkel-service/internal/infra"
	"bengkel-service/internal/pkg/errs"

	"github.com/google/uuid"
)

var (
	ErrBookingNotFound     = errs.Mark(errs.New("booking not found"), errs.ErrNotFound)
	ErrHistoryNotFound     = errs.Mark(errs.New("history not found"), errs.ErrNotFound)
	ErrVehicleNotFound     = errs.Mark(errs.New("vehicle not found"), errs.ErrNotFound)
	ErrUserNotFound        = errs.Mark(errs.New("user not found"), errs.ErrNotFound)
	ErrCatalogItemNotFound = errs.Mark(errs.New("catalog item not found"), errs.ErrNotFound)
)

// Validation marks a domain rule violation, keeping its message for the caller.
func Validation(err error) error {
	return errs.Mark(err, errs.ErrValidation)
}

// Lookup maps a repository NOT_FOUND to notFound and anything else to a system error.
func Lookup(err error, notFound error, msg string) error {
	if err == nil {
		return nil
	}
	if infra.IsKind(err, infra.KindNotFound) {
		return notFound
	}
	return errs.System(err, msg)
}

// Authorize runs the central policy and classifies its verdict.
func Authorize(actor authz.Actor, action authz.Action, ownerID uuid.UUID) error {
	err := authz.Authorize(actor, action, ownerID)
	switch {
	case err == nil:
		return nil
	case errs.Is(err, authz.ErrUnknownActor):
		return errs.Mark(err, errs.ErrUnauthorized)
	default:
		return errs.Mark(err, errs.ErrForbidden)
	}
}
