//go:build unit

package commands_test

import (
	"context"
	"testing"
	"time"

	"bengkel-service/internal/domain/authz"
	"bengkel-service/internal/domain/catalog"
	"bengkel-service/internal/domain/history"
	"bengkel-service/internal/domain/money"
	"bengkel-service/internal/domain/user"
	"bengkel-service/internal/infra/memory"
	"bengkel-service/internal/pkg/clock"
	"bengkel-service/internal/usecase/commands"
	"bengkel-service/internal/usecase/shared"
	"bengkel-service/tests/common/builder"

	"github.com/stretchr/testify/require"
)

// fixture wires every command onto one in-memory gateway.
type fixture struct {
	store  *memory.Store
	clock  *clock.MockClock
	policy shared.BookingPolicy

	bookings  commands.BookingCommands
	histories commands.HistoryCommands
	vehicles  commands.VehicleCommands
	catalog   commands.CatalogCommands

	customer authz.Actor
	other    authz.Actor
	karyawan authz.Actor
	admin    authz.Actor

	service   *catalog.Item
	sparepart *catalog.Item
}

func newFixture(t *testing.T) *fixture {
	t.Helper()

	policy := shared.BookingPolicy{Location: builder.Jakarta, RejectPastDates: true}
	store := memory.NewStore(policy)
	clk := clock.NewMockClock(time.Date(2025, 3, 1, 8, 0, 0, 0, builder.Jakarta))

	f := &fixture{
		store:     store,
		clock:     clk,
		policy:    policy,
		bookings:  commands.NewBookingUseCase(store, clk, policy),
		histories: commands.NewHistoryUseCase(store, clk),
		vehicles:  commands.NewVehicleUseCase(store, clk),
		catalog:   commands.NewCatalogUseCase(store, clk),
	}

	f.customer = f.seedUser(t, "budi@example.com", user.RoleCustomer)
	f.other = f.seedUser(t, "siti@example.com", user.RoleCustomer)
	f.karyawan = f.seedUser(t, "agus@example.com", user.RoleKaryawan)
	f.admin = f.seedUser(t, "admin@example.com", user.RoleAdmin)

	var err error
	f.service, err = f.catalog.CreateItem(context.Background(), f.admin, commands.CreateCatalogItemRequest{
		Kind: catalog.KindService, Name: "Tune up", Price: "150000",
	})
	require.NoError(t, err)
	f.sparepart, err = f.catalog.CreateItem(context.Background(), f.admin, commands.CreateCatalogItemRequest{
		Kind: catalog.KindSparepart, Code: "OLI-1L", Name: "Oli mesin 1L", Price: "50000",
	})
	require.NoError(t, err)

	return f
}

func (f *fixture) seedUser(t *testing.T, email string, role user.Role) authz.Actor {
	t.Helper()
	u, err := builder.NewUserBuilder().WithEmail(email).WithRole(role).BuildDomain()
	require.NoError(t, err)

	err = f.store.Within(context.Background(), func(ctx context.Context, tx shared.Tx) error {
		return tx.Users().Create(ctx, u)
	})
	require.NoError(t, err)
	return authz.Actor{ID: u.ID(), Role: u.Role()}
}

func bookingOn(date string) commands.CreateBookingRequest {
	return builder.NewBookingBuilder().WithDate(date).BuildInput()
}

func (f *fixture) serviceLine(qty int) history.LineItemSpec {
	return history.Single{Item: history.LineItemInput{Kind: catalog.KindService, RefID: f.service.ID(), Quantity: qty}}
}

func (f *fixture) tuneUpAndOil() history.LineItemSpec {
	return history.Many{Items: []history.LineItemInput{
		{Kind: catalog.KindService, RefID: f.service.ID(), Quantity: 1},
		{Kind: catalog.KindSparepart, RefID: f.sparepart.ID(), Quantity: 2},
	}}
}

func rupiah(n int64) money.Money {
	return money.FromInt(n)
}
