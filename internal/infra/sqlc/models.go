package sqlc

import (
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

type Users struct {
	ID           uuid.UUID
	Name         string
	Email        string
	PasswordHash string
	Role         string
	IsActive     bool
	LastLoginAt  pgtype.Timestamptz
	CreatedAt    time.Time
}

type Vehicles struct {
	ID          uuid.UUID
	OwnerID     uuid.UUID
	PlateNumber string
	Brand       string
	Model       string
	Year        pgtype.Int4
	CreatedAt   time.Time
}

// CatalogItem is a row of services or spareparts. Code is NULL for services.
type CatalogItem struct {
	ID        uuid.UUID
	Code      pgtype.Text
	Name      string
	Price     string
	CreatedAt time.Time
}

type Bookings struct {
	ID          uuid.UUID
	UserID      uuid.UUID
	VehicleID   pgtype.UUID
	ServiceDate pgtype.Date
	Message     string
	QueueNumber int32
	Status      string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

type Histories struct {
	ID         uuid.UUID
	BookingID  uuid.UUID
	UserID     uuid.UUID
	KaryawanID uuid.UUID
	VehicleID  pgtype.UUID
	Status     string
	TotalPrice string
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

type HistoryItems struct {
	ID        uuid.UUID
	HistoryID uuid.UUID
	Position  int32
	ItemKind  string
	RefID     uuid.UUID
	Name      string
	Quantity  int32
	UnitPrice string
	LineTotal string
}

type NotificationJobs struct {
	ID       uuid.UUID
	Kind     string
	Topic    string
	Payload  []byte
	Attempts int32
	RunAt    time.Time
}
