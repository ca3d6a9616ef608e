package memory

import (
	"context"
	"time"

	"bengkel-service/internal/domain/booking"
	"bengkel-service/internal/domain/catalog"
	"bengkel-service/internal/domain/history"
	"bengkel-service/internal/domain/user"
	"bengkel-service/internal/domain/vehicle"
	"bengkel-service/internal/infra"
	"bengkel-service/internal/usecase/shared"

	"github.com/google/uuid"
)

type bookingRepo struct{ data *state }

// LockDay is a no-op: a unit of work already holds the store exclusively.
func (r bookingRepo) LockDay(ctx context.Context, day booking.ServiceDay) error {
	return ctx.Err()
}

func (r bookingRepo) Create(ctx context.Context, b *booking.Booking) error {
	if _, ok := r.data.users[b.UserID()]; !ok {
		return infra.NewRepoErr(infra.KindForeignKeyViolated, "bookings_user_id_fkey", "booking owner does not exist", nil)
	}
	for _, existing := range r.data.bookings {
		if !existing.Day().Equal(b.Day()) {
			continue
		}
		if existing.QueueNumber() == b.QueueNumber() {
			return infra.NewRepoErr(infra.KindDuplicateKey, infra.ConstraintBookingQueueNumber, "queue number already issued for the day", nil)
		}
		if existing.IsPending() && b.IsPending() && existing.UserID() == b.UserID() {
			return infra.NewRepoErr(infra.KindDuplicateKey, infra.ConstraintBookingPendingPerDay, "user already has a pending booking for the day", nil)
		}
	}
	r.data.bookings[b.ID()] = cloneBooking(b)
	return nil
}

func (r bookingRepo) UpdateStatus(ctx context.Context, id uuid.UUID, status booking.Status, updatedAt time.Time) error {
	b, ok := r.data.bookings[id]
	if !ok {
		return infra.NewRepoErr(infra.KindNotFound, "", "booking not found", nil)
	}
	r.data.bookings[id] = booking.ReconstructBooking(
		b.ID(), b.UserID(), b.VehicleID(), b.Day(), b.Message(), b.QueueNumber(),
		status, b.CreatedAt(), updatedAt,
	)
	return nil
}

type historyRepo struct{ data *state }

func (r historyRepo) Create(ctx context.Context, h *history.History) error {
	if _, ok := r.data.bookings[h.BookingID()]; !ok {
		return infra.NewRepoErr(infra.KindForeignKeyViolated, "histories_booking_id_fkey", "booking does not exist", nil)
	}
	for _, existing := range r.data.histories {
		if existing.BookingID() == h.BookingID() {
			return infra.NewRepoErr(infra.KindDuplicateKey, infra.ConstraintHistoryBooking, "booking already has a history", nil)
		}
	}
	r.data.histories[h.ID()] = cloneHistory(h)
	return nil
}

func (r historyRepo) UpdateStatus(ctx context.Context, id uuid.UUID, status history.ProgressStatus, updatedAt time.Time) error {
	h, ok := r.data.histories[id]
	if !ok {
		return infra.NewRepoErr(infra.KindNotFound, "", "history not found", nil)
	}
	r.data.histories[id] = history.ReconstructHistory(
		h.ID(), h.BookingID(), h.UserID(), h.KaryawanID(), h.VehicleID(),
		status, h.Items(), h.Total(), h.CreatedAt(), updatedAt,
	)
	return nil
}

type userRepo struct{ data *state }

func (r userRepo) Create(ctx context.Context, u *user.User) error {
	for _, existing := range r.data.users {
		if existing.Email().Value() == u.Email().Value() {
			return infra.NewRepoErr(infra.KindDuplicateKey, infra.ConstraintUserEmail, "email already registered", nil)
		}
	}
	r.data.users[u.ID()] = cloneUser(u)
	return nil
}

func (r userRepo) UpdateLastLogin(ctx context.Context, id uuid.UUID, at time.Time) error {
	u, ok := r.data.users[id]
	if !ok {
		return infra.NewRepoErr(infra.KindNotFound, "", "user not found", nil)
	}
	r.data.users[id] = user.ReconstructUser(
		u.ID(), u.Name(), u.Email(), u.PasswordHash(), u.Role(), &at, u.IsActive(), u.CreatedAt(),
	)
	return nil
}

type vehicleRepo struct{ data *state }

func (r vehicleRepo) Create(ctx context.Context, v *vehicle.Vehicle) error {
	if _, ok := r.data.users[v.OwnerID()]; !ok {
		return infra.NewRepoErr(infra.KindForeignKeyViolated, "vehicles_owner_id_fkey", "vehicle owner does not exist", nil)
	}
	for _, existing := range r.data.vehicles {
		if existing.Plate().String() == v.Plate().String() {
			return infra.NewRepoErr(infra.KindDuplicateKey, infra.ConstraintVehiclePlate, "plate number already registered", nil)
		}
	}
	r.data.vehicles[v.ID()] = cloneVehicle(v)
	return nil
}

type catalogRepo struct{ data *state }

func (r catalogRepo) Create(ctx context.Context, item *catalog.Item) error {
	switch item.Kind() {
	case catalog.KindService:
		r.data.services[item.ID()] = cloneItem(item)
	case catalog.KindSparepart:
		for _, existing := range r.data.spareparts {
			if existing.Code() == item.Code() {
				return infra.NewRepoErr(infra.KindDuplicateKey, infra.ConstraintSparepartCode, "sparepart code already exists", nil)
			}
		}
		r.data.spareparts[item.ID()] = cloneItem(item)
	default:
		return infra.NewRepoErr(infra.KindDBFailure, "", "unknown catalog kind "+item.Kind().String(), catalog.ErrInvalidKind)
	}
	return nil
}

type notificationRepo struct{ data *state }

func (r notificationRepo) CreateJob(ctx context.Context, kind, topic string, payload []byte, runAt time.Time) error {
	id := uuid.New()
	copied := make([]byte, len(payload))
	copy(copied, payload)
	r.data.jobs[id] = &jobRecord{
		job: shared.NotificationJob{
			ID:      id,
			Kind:    kind,
			Topic:   topic,
			Payload: copied,
			RunAt:   runAt,
		},
		status: shared.JobStatusQueued,
	}
	return nil
}

func cloneBooking(b *booking.Booking) *booking.Booking {
	return booking.ReconstructBooking(
		b.ID(), b.UserID(), b.VehicleID(), b.Day(), b.Message(), b.QueueNumber(),
		b.Status(), b.CreatedAt(), b.UpdatedAt(),
	)
}

func cloneHistory(h *history.History) *history.History {
	return history.ReconstructHistory(
		h.ID(), h.BookingID(), h.UserID(), h.KaryawanID(), h.VehicleID(),
		h.Status(), h.Items(), h.Total(), h.CreatedAt(), h.UpdatedAt(),
	)
}

func cloneUser(u *user.User) *user.User {
	return user.ReconstructUser(
		u.ID(), u.Name(), u.Email(), u.PasswordHash(), u.Role(), u.LastLogin(), u.IsActive(), u.CreatedAt(),
	)
}

func cloneVehicle(v *vehicle.Vehicle) *vehicle.Vehicle {
	return vehicle.ReconstructVehicle(v.ID(), v.OwnerID(), v.Plate(), v.Brand(), v.Model(), v.Year(), v.CreatedAt())
}

func cloneItem(i *catalog.Item) *catalog.Item {
	return catalog.ReconstructItem(i.ID(), i.Kind(), i.Code(), i.Name(), i.Price(), i.CreatedAt())
}
