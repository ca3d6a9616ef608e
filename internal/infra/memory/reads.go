package memory

import (
	"context"
	"sort"

	"bengkel-service/internal/domain/booking"
	"bengkel-service/internal/domain/catalog"
	"bengkel-service/internal/domain/history"
	"bengkel-service/internal/domain/user"
	"bengkel-service/internal/domain/vehicle"
	"bengkel-service/internal/infra"
	"bengkel-service/internal/usecase/shared"

	"github.com/google/uuid"
)

// reads sees the working copy of a unit of work.
type reads struct{ data *state }

func (r reads) BookingsByDay(ctx context.Context, day booking.ServiceDay) ([]*booking.Booking, error) {
	out := make([]*booking.Booking, 0)
	for _, b := range r.data.bookings {
		if b.Day().Equal(day) {
			out = append(out, cloneBooking(b))
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].QueueNumber() < out[j].QueueNumber() })
	return out, nil
}

func (r reads) PendingBookingForUserAndDay(ctx context.Context, userID uuid.UUID, day booking.ServiceDay) (*booking.Booking, error) {
	for _, b := range r.data.bookings {
		if b.UserID() == userID && b.Day().Equal(day) && b.IsPending() {
			return cloneBooking(b), nil
		}
	}
	return nil, nil
}

func (r reads) BookingByID(ctx context.Context, id uuid.UUID) (*booking.Booking, error) {
	b, ok := r.data.bookings[id]
	if !ok {
		return nil, errNotFound("booking not found")
	}
	return cloneBooking(b), nil
}

func (r reads) BookingByIDForUpdate(ctx context.Context, id uuid.UUID) (*booking.Booking, error) {
	return r.BookingByID(ctx, id)
}

func (r reads) HistoryByIDForUpdate(ctx context.Context, id uuid.UUID) (*history.History, error) {
	h, ok := r.data.histories[id]
	if !ok {
		return nil, errNotFound("history not found")
	}
	return cloneHistory(h), nil
}

func (r reads) VehicleByID(ctx context.Context, id uuid.UUID) (*vehicle.Vehicle, error) {
	v, ok := r.data.vehicles[id]
	if !ok {
		return nil, errNotFound("vehicle not found")
	}
	return cloneVehicle(v), nil
}

func (r reads) CatalogItemByID(ctx context.Context, kind catalog.Kind, id uuid.UUID) (*catalog.Item, error) {
	var items map[uuid.UUID]*catalog.Item
	switch kind {
	case catalog.KindService:
		items = r.data.services
	case catalog.KindSparepart:
		items = r.data.spareparts
	default:
		return nil, infra.NewRepoErr(infra.KindDBFailure, "", "unknown catalog kind "+kind.String(), catalog.ErrInvalidKind)
	}
	item, ok := items[id]
	if !ok {
		return nil, errNotFound("catalog item not found")
	}
	return cloneItem(item), nil
}

func (r reads) UserByID(ctx context.Context, id uuid.UUID) (*user.User, error) {
	u, ok := r.data.users[id]
	if !ok {
		return nil, errNotFound("user not found")
	}
	return cloneUser(u), nil
}

func (r reads) UserByEmail(ctx context.Context, email string) (*user.User, error) {
	for _, u := range r.data.users {
		if u.Email().Value() == email {
			return cloneUser(u), nil
		}
	}
	return nil, errNotFound("user not found")
}

func errNotFound(msg string) error {
	return infra.NewRepoErr(infra.KindNotFound, "", msg, nil)
}

// lockedReads serves CommandReads outside of a unit of work.
type lockedReads struct{ store *Store }

var _ shared.CommandReads = (*lockedReads)(nil)

func (r *lockedReads) BookingsByDay(ctx context.Context, day booking.ServiceDay) (out []*booking.Booking, err error) {
	r.store.read(func(data *state) { out, err = reads{data}.BookingsByDay(ctx, day) })
	return
}

func (r *lockedReads) PendingBookingForUserAndDay(ctx context.Context, userID uuid.UUID, day booking.ServiceDay) (out *booking.Booking, err error) {
	r.store.read(func(data *state) { out, err = reads{data}.PendingBookingForUserAndDay(ctx, userID, day) })
	return
}

func (r *lockedReads) BookingByID(ctx context.Context, id uuid.UUID) (out *booking.Booking, err error) {
	r.store.read(func(data *state) { out, err = reads{data}.BookingByID(ctx, id) })
	return
}

func (r *lockedReads) BookingByIDForUpdate(ctx context.Context, id uuid.UUID) (*booking.Booking, error) {
	return r.BookingByID(ctx, id)
}

func (r *lockedReads) HistoryByIDForUpdate(ctx context.Context, id uuid.UUID) (out *history.History, err error) {
	r.store.read(func(data *state) { out, err = reads{data}.HistoryByIDForUpdate(ctx, id) })
	return
}

func (r *lockedReads) VehicleByID(ctx context.Context, id uuid.UUID) (out *vehicle.Vehicle, err error) {
	r.store.read(func(data *state) { out, err = reads{data}.VehicleByID(ctx, id) })
	return
}

func (r *lockedReads) CatalogItemByID(ctx context.Context, kind catalog.Kind, id uuid.UUID) (out *catalog.Item, err error) {
	r.store.read(func(data *state) { out, err = reads{data}.CatalogItemByID(ctx, kind, id) })
	return
}

func (r *lockedReads) UserByID(ctx context.Context, id uuid.UUID) (out *user.User, err error) {
	r.store.read(func(data *state) { out, err = reads{data}.UserByID(ctx, id) })
	return
}

func (r *lockedReads) UserByEmail(ctx context.Context, email string) (out *user.User, err error) {
	r.store.read(func(data *state) { out, err = reads{data}.UserByEmail(ctx, email) })
	return
}
