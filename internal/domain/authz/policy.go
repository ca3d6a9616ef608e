// Package authz decides whether an actor may perform an action on a resource
// owned by a given user. Every usecase calls Authorize once per operation.
package authz

import (
	"errors"

	"bengkel-service/internal/domain/user"

	"github.com/google/uuid"
)

var (
	ErrForbidden    = errors.New("you are not allowed to perform this action")
	ErrUnknownActor = errors.New("caller identity is missing or has an unknown role")
)

type Action string

const (
	ActionCreateBooking       Action = "booking.create"
	ActionViewBooking         Action = "booking.view"
	ActionCancelBooking       Action = "booking.cancel"
	ActionListDayBookings     Action = "booking.list_day"
	ActionCreateHistory       Action = "history.create"
	ActionUpdateHistoryStatus Action = "history.update_status"
	ActionViewHistory         Action = "history.view"
	ActionListAllHistories    Action = "history.list_all"
	ActionViewInvoice         Action = "invoice.view"
	ActionManageCatalog       Action = "catalog.manage"
	ActionManageVehicle       Action = "vehicle.manage"
)

type Actor struct {
	ID   uuid.UUID
	Role user.Role
}

func (a Actor) IsStaff() bool {
	return a.Role.IsStaff()
}

type rule int

const (
	ruleAuthenticated rule = iota
	ruleOwnerOrStaff
	ruleOwnerOnly
	ruleStaff
	ruleAdmin
)

var policy = map[Action]rule{
	ActionCreateBooking:       ruleAuthenticated,
	ActionViewBooking:         ruleOwnerOrStaff,
	ActionCancelBooking:       ruleOwnerOrStaff,
	ActionListDayBookings:     ruleStaff,
	ActionCreateHistory:       ruleStaff,
	ActionUpdateHistoryStatus: ruleStaff,
	ActionViewHistory:         ruleOwnerOrStaff,
	ActionListAllHistories:    ruleStaff,
	ActionViewInvoice:         ruleOwnerOrStaff,
	ActionManageCatalog:       ruleAdmin,
	ActionManageVehicle:       ruleOwnerOnly,
}

// Authorize returns nil when allowed. ownerID may be uuid.Nil for actions without a target.
// Unknown actions are denied.
func Authorize(actor Actor, action Action, ownerID uuid.UUID) error {
	if actor.ID == uuid.Nil || !actor.Role.IsValid() {
		return ErrUnknownActor
	}

	r, ok := policy[action]
	if !ok {
		return ErrForbidden
	}

	isOwner := ownerID != uuid.Nil && ownerID == actor.ID

	var allowed bool
	switch r {
	case ruleAuthenticated:
		allowed = true
	case ruleOwnerOrStaff:
		allowed = isOwner || actor.IsStaff()
	case ruleOwnerOnly:
		allowed = isOwner
	case ruleStaff:
		allowed = actor.IsStaff()
	case ruleAdmin:
		allowed = actor.Role == user.RoleAdmin
	}

	if !allowed {
		return ErrForbidden
	}
	return nil
}

func Can(actor Actor, action Action, ownerID uuid.UUID) bool {
	return Authorize(actor, action, ownerID) == nil
}
