//go:build unit

package authz_test

import (
	"testing"

	"bengkel-service/internal/domain/authz"
	"bengkel-service/internal/domain/user"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAuthorize(t *testing.T) {
	customer := authz.Actor{ID: uuid.New(), Role: user.RoleCustomer}
	other := authz.Actor{ID: uuid.New(), Role: user.RoleCustomer}
	karyawan := authz.Actor{ID: uuid.New(), Role: user.RoleKaryawan}
	admin := authz.Actor{ID: uuid.New(), Role: user.RoleAdmin}

	cases := []struct {
		name    string
		actor   authz.Actor
		action  authz.Action
		owner   uuid.UUID
		allowed bool
	}{
		{"customer creates a booking", customer, authz.ActionCreateBooking, uuid.Nil, true},
		{"owner views own booking", customer, authz.ActionViewBooking, customer.ID, true},
		{"customer views someone else's booking", other, authz.ActionViewBooking, customer.ID, false},
		{"staff views any booking", karyawan, authz.ActionViewBooking, customer.ID, true},
		{"owner cancels own booking", customer, authz.ActionCancelBooking, customer.ID, true},
		{"customer cancels someone else's booking", other, authz.ActionCancelBooking, customer.ID, false},
		{"customer lists the day queue", customer, authz.ActionListDayBookings, uuid.Nil, false},
		{"karyawan lists the day queue", karyawan, authz.ActionListDayBookings, uuid.Nil, true},
		{"customer creates a history", customer, authz.ActionCreateHistory, customer.ID, false},
		{"karyawan creates a history", karyawan, authz.ActionCreateHistory, customer.ID, true},
		{"admin updates a history status", admin, authz.ActionUpdateHistoryStatus, customer.ID, true},
		{"owner views own invoice", customer, authz.ActionViewInvoice, customer.ID, true},
		{"customer views someone else's invoice", other, authz.ActionViewInvoice, customer.ID, false},
		{"customer lists every history", customer, authz.ActionListAllHistories, uuid.Nil, false},
		{"karyawan manages the catalog", karyawan, authz.ActionManageCatalog, uuid.Nil, false},
		{"admin manages the catalog", admin, authz.ActionManageCatalog, uuid.Nil, true},
		{"owner manages own vehicle", customer, authz.ActionManageVehicle, customer.ID, true},
		{"staff cannot manage a customer's vehicle", admin, authz.ActionManageVehicle, customer.ID, false},
		{"unknown action", admin, authz.Action("booking.delete"), uuid.Nil, false},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			err := authz.Authorize(c.actor, c.action, c.owner)
			if c.allowed {
				require.NoError(t, err)
			} else {
				require.ErrorIs(t, err, authz.ErrForbidden)
			}
			assert.Equal(t, c.allowed, authz.Can(c.actor, c.action, c.owner))
		})
	}
}

func TestAuthorizeUnknownActor(t *testing.T) {
	require.ErrorIs(t, authz.Authorize(authz.Actor{}, authz.ActionCreateBooking, uuid.Nil), authz.ErrUnknownActor)
	require.ErrorIs(t, authz.Authorize(authz.Actor{ID: uuid.New(), Role: "GUEST"}, authz.ActionCreateBooking, uuid.Nil), authz.ErrUnknownActor)
}
