package shared

import (
	"context"
	"time"

	"bengkel-service/internal/domain/booking"
	"bengkel-service/internal/domain/catalog"
	"bengkel-service/internal/domain/history"
	"bengkel-service/internal/domain/user"
	"bengkel-service/internal/domain/vehicle"

	"github.com/google/uuid"
)

//go:generate mockgen -source=uow.go -destination=../../../tests/mock/shared/uow_mock.go -package=sharedmock

type UnitOfWork interface {
	// Within: Full transaction for write operations with retry logic
	Within(ctx context.Context, fn func(ctx context.Context, tx Tx) error) error
	// CommandReads: Direct access to command reads for validation outside transactions
	CommandReads() CommandReads
}

type Tx interface {
	Bookings() BookingRepository
	Histories() HistoryRepository
	Users() UserRepository
	Vehicles() VehicleRepository
	Catalog() CatalogRepository
	Notifications() NotificationRepository
	Reads() CommandReads
}

// CommandReads are reads issued by commands. Inside a Tx they see the transaction's own writes.
type CommandReads interface {
	BookingsByDay(ctx context.Context, day booking.ServiceDay) ([]*booking.Booking, error)
	// PendingBookingForUserAndDay returns nil without error when there is none.
	PendingBookingForUserAndDay(ctx context.Context, userID uuid.UUID, day booking.ServiceDay) (*booking.Booking, error)
	BookingByID(ctx context.Context, id uuid.UUID) (*booking.Booking, error)
	// BookingByIDForUpdate locks the row until the transaction ends.
	BookingByIDForUpdate(ctx context.Context, id uuid.UUID) (*booking.Booking, error)
	HistoryByIDForUpdate(ctx context.Context, id uuid.UUID) (*history.History, error)
	VehicleByID(ctx context.Context, id uuid.UUID) (*vehicle.Vehicle, error)
	CatalogItemByID(ctx context.Context, kind catalog.Kind, id uuid.UUID) (*catalog.Item, error)
	UserByID(ctx context.Context, id uuid.UUID) (*user.User, error)
	UserByEmail(ctx context.Context, email string) (*user.User, error)
}

type BookingRepository interface {
	// LockDay serializes queue allocation for one calendar day until the transaction ends.
	LockDay(ctx context.Context, day booking.ServiceDay) error
	Create(ctx context.Context, b *booking.Booking) error
	UpdateStatus(ctx context.Context, id uuid.UUID, status booking.Status, updatedAt time.Time) error
}

type HistoryRepository interface {
	Create(ctx context.Context, h *history.History) error
	UpdateStatus(ctx context.Context, id uuid.UUID, status history.ProgressStatus, updatedAt time.Time) error
}

type UserRepository interface {
	Create(ctx context.Context, u *user.User) error
	UpdateLastLogin(ctx context.Context, id uuid.UUID, at time.Time) error
}

type VehicleRepository interface {
	Create(ctx context.Context, v *vehicle.Vehicle) error
}

type CatalogRepository interface {
	Create(ctx context.Context, item *catalog.Item) error
}

type NotificationRepository interface {
	CreateJob(ctx context.Context, kind, topic string, payload []byte, runAt time.Time) error
}
