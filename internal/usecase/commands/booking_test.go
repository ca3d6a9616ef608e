//go:build unit

package commands_test

import (
	"context"
	"fmt"
	"sort"
	"sync"
	"testing"

	"bengkel-service/internal/domain/authz"
	"bengkel-service/internal/domain/booking"
	"bengkel-service/internal/domain/user"
	"bengkel-service/internal/infra/memory"
	"bengkel-service/internal/pkg/errs"
	"bengkel-service/internal/usecase/commands"
	"bengkel-service/internal/usecase/shared"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateBooking(t *testing.T) {
	ctx := context.Background()

	t.Run("queue numbers are contiguous per day", func(t *testing.T) {
		f := newFixture(t)

		first, err := f.bookings.CreateBooking(ctx, f.customer, bookingOn("2025-03-10"))
		require.NoError(t, err)
		second, err := f.bookings.CreateBooking(ctx, f.other, bookingOn("2025-03-10"))
		require.NoError(t, err)
		otherDay, err := f.bookings.CreateBooking(ctx, f.customer, bookingOn("2025-03-11"))
		require.NoError(t, err)

		assert.Equal(t, booking.QueueNumber(1), first.QueueNumber())
		assert.Equal(t, booking.QueueNumber(2), second.QueueNumber())
		assert.Equal(t, booking.QueueNumber(1), otherDay.QueueNumber())
		assert.Equal(t, booking.StatusPending, first.Status())
		assert.Equal(t, f.customer.ID, first.UserID())
	})

	t.Run("second pending booking on the same day is rejected", func(t *testing.T) {
		f := newFixture(t)

		_, err := f.bookings.CreateBooking(ctx, f.customer, bookingOn("2025-03-10"))
		require.NoError(t, err)

		dup, err := f.bookings.CreateBooking(ctx, f.customer, bookingOn("2025-03-10"))
		require.Error(t, err)
		assert.Nil(t, dup)
		assert.True(t, errs.Is(err, errs.ErrDuplicateBooking), err)

		views, err := f.store.FindBookingsByDay(ctx, mustDay(t, f, "2025-03-10"))
		require.NoError(t, err)
		assert.Len(t, views, 1)
	})

	t.Run("cancelled numbers are never reused", func(t *testing.T) {
		f := newFixture(t)

		first, err := f.bookings.CreateBooking(ctx, f.customer, bookingOn("2025-03-10"))
		require.NoError(t, err)
		_, err = f.bookings.CreateBooking(ctx, f.other, bookingOn("2025-03-10"))
		require.NoError(t, err)

		_, err = f.bookings.CancelBooking(ctx, f.customer, first.ID())
		require.NoError(t, err)

		// the customer may book again once the pending one is gone
		again, err := f.bookings.CreateBooking(ctx, f.customer, bookingOn("2025-03-10"))
		require.NoError(t, err)
		assert.Equal(t, booking.QueueNumber(3), again.QueueNumber())
	})

	t.Run("past dates are rejected", func(t *testing.T) {
		f := newFixture(t)

		_, err := f.bookings.CreateBooking(ctx, f.customer, bookingOn("2025-02-28"))
		require.ErrorIs(t, err, booking.ErrDateInPast)
		assert.True(t, errs.Is(err, errs.ErrValidation))

		today, err := f.bookings.CreateBooking(ctx, f.customer, bookingOn("2025-03-01"))
		require.NoError(t, err)
		assert.Equal(t, "2025-03-01", today.Day().String())
	})

	t.Run("past dates are accepted when the policy allows it", func(t *testing.T) {
		f := newFixture(t)
		lenient := commands.NewBookingUseCase(f.store, f.clock, shared.BookingPolicy{Location: f.policy.Location})

		_, err := lenient.CreateBooking(ctx, f.customer, bookingOn("2025-02-28"))
		require.NoError(t, err)
	})

	t.Run("invalid input is a validation error", func(t *testing.T) {
		f := newFixture(t)

		cases := map[string]commands.CreateBookingRequest{
			"short message": {Date: "2025-03-10", Message: "servis"},
			"bad date":      {Date: "2025-13-01", Message: "Ganti oli dan cek rem"},
			"missing date":  {Message: "Ganti oli dan cek rem"},
		}
		for name, req := range cases {
			t.Run(name, func(t *testing.T) {
				_, err := f.bookings.CreateBooking(ctx, f.customer, req)
				require.Error(t, err)
				assert.True(t, errs.Is(err, errs.ErrValidation), err)
			})
		}
	})

	t.Run("vehicle must belong to the customer", func(t *testing.T) {
		f := newFixture(t)
		v, err := f.vehicles.RegisterVehicle(ctx, f.other, commands.RegisterVehicleRequest{Plate: "B 1234 XYZ", Brand: "Honda"})
		require.NoError(t, err)

		req := bookingOn("2025-03-10")
		id := v.ID()
		req.VehicleID = &id
		_, err = f.bookings.CreateBooking(ctx, f.customer, req)
		require.ErrorIs(t, err, commands.ErrVehicleNotOwned)

		missing := uuid.New()
		req.VehicleID = &missing
		_, err = f.bookings.CreateBooking(ctx, f.customer, req)
		assert.True(t, errs.Is(err, errs.ErrNotFound), err)

		req.VehicleID = &id
		owned, err := f.bookings.CreateBooking(ctx, f.other, req)
		require.NoError(t, err)
		assert.Equal(t, &id, owned.VehicleID())
	})

	t.Run("anonymous caller is unauthorized", func(t *testing.T) {
		f := newFixture(t)
		_, err := f.bookings.CreateBooking(ctx, authz.Actor{}, bookingOn("2025-03-10"))
		assert.True(t, errs.Is(err, errs.ErrUnauthorized), err)
	})

	t.Run("creation enqueues a notification", func(t *testing.T) {
		f := newFixture(t)
		_, err := f.bookings.CreateBooking(ctx, f.customer, bookingOn("2025-03-10"))
		require.NoError(t, err)

		assert.Equal(t, []string{shared.JobStatusQueued}, f.store.JobStatuses()[shared.TopicBookingCreated])
	})
}

func TestCreateBookingConcurrentAdmissions(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)

	const customers = 25
	actors := make([]authz.Actor, 0, customers)
	for i := 0; i < customers; i++ {
		actors = append(actors, f.seedUser(t, fmt.Sprintf("pelanggan%02d@example.com", i), user.RoleCustomer))
	}

	var (
		mu      sync.Mutex
		numbers []int
		wg      sync.WaitGroup
	)
	for _, a := range actors {
		wg.Add(1)
		go func(actor authz.Actor) {
			defer wg.Done()
			b, err := f.bookings.CreateBooking(ctx, actor, bookingOn("2025-03-10"))
			if !assert.NoError(t, err) {
				return
			}
			mu.Lock()
			numbers = append(numbers, b.QueueNumber().Int())
			mu.Unlock()
		}(a)
	}
	wg.Wait()

	sort.Ints(numbers)
	want := make([]int, customers)
	for i := range want {
		want[i] = i + 1
	}
	assert.Equal(t, want, numbers)
}

func TestCreateBookingConcurrentDuplicates(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)

	const attempts = 10
	var (
		wg        sync.WaitGroup
		mu        sync.Mutex
		succeeded int
		rejected  int
	)
	for i := 0; i < attempts; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := f.bookings.CreateBooking(ctx, f.customer, bookingOn("2025-03-10"))
			mu.Lock()
			defer mu.Unlock()
			if err == nil {
				succeeded++
			} else if errs.Is(err, errs.ErrDuplicateBooking) {
				rejected++
			}
		}()
	}
	wg.Wait()

	assert.Equal(t, 1, succeeded)
	assert.Equal(t, attempts-1, rejected)
}

func TestCancelBooking(t *testing.T) {
	ctx := context.Background()

	t.Run("owner cancels a pending booking", func(t *testing.T) {
		f := newFixture(t)
		b, err := f.bookings.CreateBooking(ctx, f.customer, bookingOn("2025-03-10"))
		require.NoError(t, err)

		cancelled, err := f.bookings.CancelBooking(ctx, f.customer, b.ID())
		require.NoError(t, err)
		assert.Equal(t, booking.StatusCancelled, cancelled.Status())

		view, err := f.store.FindBookingByID(ctx, b.ID())
		require.NoError(t, err)
		assert.Equal(t, "CANCELLED", view.Status)
		assert.Len(t, f.store.JobStatuses()[shared.TopicBookingCancelled], 1)
	})

	t.Run("another customer is forbidden", func(t *testing.T) {
		f := newFixture(t)
		b, err := f.bookings.CreateBooking(ctx, f.customer, bookingOn("2025-03-10"))
		require.NoError(t, err)

		_, err = f.bookings.CancelBooking(ctx, f.other, b.ID())
		assert.True(t, errs.Is(err, errs.ErrForbidden), err)

		view, err := f.store.FindBookingByID(ctx, b.ID())
		require.NoError(t, err)
		assert.Equal(t, "PENDING", view.Status)
	})

	t.Run("staff may cancel on behalf of the customer", func(t *testing.T) {
		f := newFixture(t)
		b, err := f.bookings.CreateBooking(ctx, f.customer, bookingOn("2025-03-10"))
		require.NoError(t, err)

		_, err = f.bookings.CancelBooking(ctx, f.karyawan, b.ID())
		require.NoError(t, err)
	})

	t.Run("cancelling twice is an invalid transition", func(t *testing.T) {
		f := newFixture(t)
		b, err := f.bookings.CreateBooking(ctx, f.customer, bookingOn("2025-03-10"))
		require.NoError(t, err)
		_, err = f.bookings.CancelBooking(ctx, f.customer, b.ID())
		require.NoError(t, err)

		_, err = f.bookings.CancelBooking(ctx, f.customer, b.ID())
		assert.True(t, errs.Is(err, errs.ErrInvalidTransition), err)
	})

	t.Run("unknown booking", func(t *testing.T) {
		f := newFixture(t)
		_, err := f.bookings.CancelBooking(ctx, f.customer, uuid.New())
		assert.True(t, errs.Is(err, errs.ErrNotFound), err)
	})
}

func mustDay(t *testing.T, f *fixture, date string) booking.ServiceDay {
	t.Helper()
	day, err := f.policy.ParseDay(date)
	require.NoError(t, err)
	return day
}

var _ shared.UnitOfWork = (*memory.Store)(nil)
