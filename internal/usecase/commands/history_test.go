//go:build unit

package commands_test

import (
	"context"
	"testing"
	"time"

	"bengkel-service/internal/domain/booking"
	"bengkel-service/internal/domain/catalog"
	"bengkel-service/internal/domain/history"
	"bengkel-service/internal/pkg/errs"
	"bengkel-service/internal/usecase/commands"
	"bengkel-service/internal/usecase/shared"
	sharedmock "bengkel-service/tests/mock/shared"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestCreateHistory(t *testing.T) {
	ctx := context.Background()

	t.Run("confirms the booking and prices every line", func(t *testing.T) {
		f := newFixture(t)
		b, err := f.bookings.CreateBooking(ctx, f.customer, bookingOn("2025-03-10"))
		require.NoError(t, err)

		h, err := f.histories.CreateHistory(ctx, f.karyawan, commands.CreateHistoryRequest{
			BookingID: b.ID(),
			Items:     f.tuneUpAndOil(),
		})
		require.NoError(t, err)

		assert.Equal(t, b.ID(), h.BookingID())
		assert.Equal(t, f.customer.ID, h.UserID())
		assert.Equal(t, f.karyawan.ID, h.KaryawanID())
		assert.Equal(t, history.StatusPending, h.Status())
		assert.True(t, h.Total().Equal(rupiah(250000)), h.Total().String())

		items := h.Items()
		require.Len(t, items, 2)
		assert.Equal(t, "Tune up", items[0].Name())
		assert.Equal(t, "Oli mesin 1L", items[1].Name())
		assert.True(t, items[1].LineTotal().Equal(rupiah(100000)))

		view, err := f.store.FindBookingByID(ctx, b.ID())
		require.NoError(t, err)
		assert.Equal(t, string(booking.StatusConfirmed), view.Status)
		require.NotNil(t, view.HistoryID)
		assert.Equal(t, h.ID(), *view.HistoryID)

		assert.Len(t, f.store.JobStatuses()[shared.TopicHistoryCreated], 1)
	})

	t.Run("single item form with an explicit price", func(t *testing.T) {
		f := newFixture(t)
		b, err := f.bookings.CreateBooking(ctx, f.customer, bookingOn("2025-03-10"))
		require.NoError(t, err)

		price := decimal.NewFromInt(175000)
		h, err := f.histories.CreateHistory(ctx, f.karyawan, commands.CreateHistoryRequest{
			BookingID: b.ID(),
			Items: history.Single{Item: history.LineItemInput{
				Kind: catalog.KindService, RefID: f.service.ID(), Quantity: 1, UnitPrice: &price,
			}},
		})
		require.NoError(t, err)
		assert.True(t, h.Total().Equal(rupiah(175000)))
	})

	t.Run("only one history per booking", func(t *testing.T) {
		f := newFixture(t)
		b, err := f.bookings.CreateBooking(ctx, f.customer, bookingOn("2025-03-10"))
		require.NoError(t, err)

		_, err = f.histories.CreateHistory(ctx, f.karyawan, commands.CreateHistoryRequest{BookingID: b.ID(), Items: f.serviceLine(1)})
		require.NoError(t, err)

		_, err = f.histories.CreateHistory(ctx, f.karyawan, commands.CreateHistoryRequest{BookingID: b.ID(), Items: f.serviceLine(1)})
		require.ErrorIs(t, err, commands.ErrBookingNotPending)

		list, err := f.store.FindHistoriesFirstPage(ctx, nil, 10)
		require.NoError(t, err)
		assert.Len(t, list, 1)
	})

	t.Run("cancelled booking cannot receive a history", func(t *testing.T) {
		f := newFixture(t)
		b, err := f.bookings.CreateBooking(ctx, f.customer, bookingOn("2025-03-10"))
		require.NoError(t, err)
		_, err = f.bookings.CancelBooking(ctx, f.customer, b.ID())
		require.NoError(t, err)

		_, err = f.histories.CreateHistory(ctx, f.karyawan, commands.CreateHistoryRequest{BookingID: b.ID(), Items: f.serviceLine(1)})
		assert.True(t, errs.Is(err, errs.ErrInvalidTransition), err)

		list, err := f.store.FindHistoriesFirstPage(ctx, nil, 10)
		require.NoError(t, err)
		assert.Empty(t, list)
	})

	t.Run("failed pricing leaves the booking pending", func(t *testing.T) {
		f := newFixture(t)
		b, err := f.bookings.CreateBooking(ctx, f.customer, bookingOn("2025-03-10"))
		require.NoError(t, err)

		_, err = f.histories.CreateHistory(ctx, f.karyawan, commands.CreateHistoryRequest{
			BookingID: b.ID(),
			Items: history.Many{Items: []history.LineItemInput{
				{Kind: catalog.KindService, RefID: f.service.ID(), Quantity: 1},
				{Kind: catalog.KindSparepart, RefID: uuid.New(), Quantity: 1},
			}},
		})
		assert.True(t, errs.Is(err, errs.ErrNotFound), err)

		view, err := f.store.FindBookingByID(ctx, b.ID())
		require.NoError(t, err)
		assert.Equal(t, string(booking.StatusPending), view.Status)
		assert.Nil(t, view.HistoryID)
	})

	t.Run("customers cannot create histories", func(t *testing.T) {
		f := newFixture(t)
		b, err := f.bookings.CreateBooking(ctx, f.customer, bookingOn("2025-03-10"))
		require.NoError(t, err)

		_, err = f.histories.CreateHistory(ctx, f.customer, commands.CreateHistoryRequest{BookingID: b.ID(), Items: f.serviceLine(1)})
		assert.True(t, errs.Is(err, errs.ErrForbidden), err)
	})

	t.Run("assigned karyawan must be staff", func(t *testing.T) {
		f := newFixture(t)
		b, err := f.bookings.CreateBooking(ctx, f.customer, bookingOn("2025-03-10"))
		require.NoError(t, err)

		notStaff := f.other.ID
		_, err = f.histories.CreateHistory(ctx, f.admin, commands.CreateHistoryRequest{
			BookingID: b.ID(), KaryawanID: &notStaff, Items: f.serviceLine(1),
		})
		require.ErrorIs(t, err, commands.ErrKaryawanNotStaff)

		staff := f.karyawan.ID
		h, err := f.histories.CreateHistory(ctx, f.admin, commands.CreateHistoryRequest{
			BookingID: b.ID(), KaryawanID: &staff, Items: f.serviceLine(1),
		})
		require.NoError(t, err)
		assert.Equal(t, staff, h.KaryawanID())
	})

	t.Run("losing the one-history-per-booking race is a conflict", func(t *testing.T) {
		f := newFixture(t)
		b, err := f.bookings.CreateBooking(ctx, f.customer, bookingOn("2025-03-10"))
		require.NoError(t, err)

		// The competing transaction's history lands after this one has already
		// seen the booking as pending.
		line, err := history.NewLineItem(catalog.KindService, f.service.ID(), f.service.Name(), 1, f.service.Price())
		require.NoError(t, err)
		winner, err := history.NewHistory(b.ID(), b.UserID(), f.karyawan.ID, nil, []history.LineItem{line}, f.clock.Now())
		require.NoError(t, err)

		ctrl := gomock.NewController(t)
		uow := sharedmock.NewMockUnitOfWork(ctrl)
		uow.EXPECT().Within(gomock.Any(), gomock.Any()).
			DoAndReturn(func(ctx context.Context, fn func(context.Context, shared.Tx) error) error {
				return f.store.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
					if err := tx.Histories().Create(ctx, winner); err != nil {
						return err
					}
					return fn(ctx, tx)
				})
			})

		_, err = commands.NewHistoryUseCase(uow, f.clock).CreateHistory(ctx, f.karyawan, commands.CreateHistoryRequest{
			BookingID: b.ID(),
			Items:     f.serviceLine(1),
		})
		require.ErrorIs(t, err, commands.ErrBookingNotPending)
		assert.True(t, errs.Is(err, errs.ErrInvalidTransition))
	})

	t.Run("line items are validated before any lookup", func(t *testing.T) {
		f := newFixture(t)
		_, err := f.histories.CreateHistory(ctx, f.karyawan, commands.CreateHistoryRequest{
			BookingID: uuid.New(),
			Items:     history.Many{},
		})
		require.ErrorIs(t, err, history.ErrNoLineItems)
		assert.True(t, errs.Is(err, errs.ErrValidation))
	})
}

func TestUpdateHistoryStatus(t *testing.T) {
	ctx := context.Background()

	setup := func(t *testing.T) (*fixture, *history.History) {
		f := newFixture(t)
		b, err := f.bookings.CreateBooking(ctx, f.customer, bookingOn("2025-03-10"))
		require.NoError(t, err)
		h, err := f.histories.CreateHistory(ctx, f.karyawan, commands.CreateHistoryRequest{BookingID: b.ID(), Items: f.serviceLine(1)})
		require.NoError(t, err)
		return f, h
	}

	t.Run("progresses through the workflow", func(t *testing.T) {
		f, h := setup(t)
		f.clock.Add(time.Hour)

		updated, err := f.histories.UpdateHistoryStatus(ctx, f.karyawan, h.ID(), "PROCESS")
		require.NoError(t, err)
		assert.Equal(t, history.StatusProcess, updated.Status())
		assert.Equal(t, f.clock.Now(), updated.UpdatedAt())

		updated, err = f.histories.UpdateHistoryStatus(ctx, f.karyawan, h.ID(), "COMPLETED")
		require.NoError(t, err)
		assert.Equal(t, history.StatusCompleted, updated.Status())
		assert.Len(t, f.store.JobStatuses()[shared.TopicHistoryUpdated], 2)
	})

	t.Run("completed work cannot reopen", func(t *testing.T) {
		f, h := setup(t)
		_, err := f.histories.UpdateHistoryStatus(ctx, f.karyawan, h.ID(), "COMPLETED")
		require.NoError(t, err)

		_, err = f.histories.UpdateHistoryStatus(ctx, f.karyawan, h.ID(), "PROCESS")
		assert.True(t, errs.Is(err, errs.ErrInvalidTransition), err)
	})

	t.Run("unknown status", func(t *testing.T) {
		f, h := setup(t)
		_, err := f.histories.UpdateHistoryStatus(ctx, f.karyawan, h.ID(), "DONE")
		assert.True(t, errs.Is(err, errs.ErrValidation), err)
	})

	t.Run("customer is forbidden", func(t *testing.T) {
		f, h := setup(t)
		_, err := f.histories.UpdateHistoryStatus(ctx, f.customer, h.ID(), "PROCESS")
		assert.True(t, errs.Is(err, errs.ErrForbidden), err)
	})

	t.Run("unknown history", func(t *testing.T) {
		f, _ := setup(t)
		_, err := f.histories.UpdateHistoryStatus(ctx, f.karyawan, uuid.New(), "PROCESS")
		assert.True(t, errs.Is(err, errs.ErrNotFound), err)
	})
}

// A full day at the workshop: three customers book, one cancels, the other
// two are served and the cancelled number stays retired.
func TestWorkshopDay(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	third := f.seedUser(t, "dewi@example.com", "CUSTOMER")

	b1, err := f.bookings.CreateBooking(ctx, f.customer, bookingOn("2025-03-10"))
	require.NoError(t, err)
	b2, err := f.bookings.CreateBooking(ctx, f.other, bookingOn("2025-03-10"))
	require.NoError(t, err)
	b3, err := f.bookings.CreateBooking(ctx, third, bookingOn("2025-03-10"))
	require.NoError(t, err)

	_, err = f.bookings.CancelBooking(ctx, f.other, b2.ID())
	require.NoError(t, err)

	h1, err := f.histories.CreateHistory(ctx, f.karyawan, commands.CreateHistoryRequest{BookingID: b1.ID(), Items: f.tuneUpAndOil()})
	require.NoError(t, err)
	h3, err := f.histories.CreateHistory(ctx, f.karyawan, commands.CreateHistoryRequest{BookingID: b3.ID(), Items: f.serviceLine(2)})
	require.NoError(t, err)

	late := f.seedUser(t, "eko@example.com", "CUSTOMER")
	b4, err := f.bookings.CreateBooking(ctx, late, bookingOn("2025-03-10"))
	require.NoError(t, err)
	assert.Equal(t, booking.QueueNumber(4), b4.QueueNumber())

	day := mustDay(t, f, "2025-03-10")
	views, err := f.store.FindBookingsByDay(ctx, day)
	require.NoError(t, err)
	require.Len(t, views, 4)

	statuses := make([]string, len(views))
	for i, v := range views {
		assert.Equal(t, int32(i+1), v.QueueNumber)
		statuses[i] = v.Status
	}
	assert.Equal(t, []string{"CONFIRMED", "CANCELLED", "CONFIRMED", "PENDING"}, statuses)

	maxQueue, active, err := f.store.CountBookingsByDay(ctx, day)
	require.NoError(t, err)
	assert.Equal(t, int32(4), maxQueue)
	assert.Equal(t, int32(3), active)

	assert.True(t, h1.Total().Equal(rupiah(250000)))
	assert.True(t, h3.Total().Equal(rupiah(300000)))
}
