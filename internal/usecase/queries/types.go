package queries

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// AuthorizedUserView represents read-optimized user data with authorization info
type AuthorizedUserView struct {
	ID          uuid.UUID  `json:"id"`
	Name        string     `json:"name"`
	Email       string     `json:"email"`
	Role        string     `json:"role"`
	IsActive    bool       `json:"is_active"`
	LastLoginAt *time.Time `json:"last_login_at,omitempty"`
	CreatedAt   time.Time  `json:"created_at"`
}

// BookingView joins a booking with its owner and vehicle. ServiceDate is YYYY-MM-DD.
type BookingView struct {
	ID           uuid.UUID  `json:"id"`
	UserID       uuid.UUID  `json:"user_id"`
	UserName     string     `json:"user_name"`
	UserEmail    string     `json:"user_email"`
	VehicleID    *uuid.UUID `json:"vehicle_id,omitempty"`
	VehiclePlate *string    `json:"vehicle_plate,omitempty"`
	ServiceDate  string     `json:"service_date"`
	Message      string     `json:"message"`
	QueueNumber  int32      `json:"queue_number"`
	Status       string     `json:"status"`
	HistoryID    *uuid.UUID `json:"history_id,omitempty"`
	CreatedAt    time.Time  `json:"created_at"`
	UpdatedAt    time.Time  `json:"updated_at"`
}

type QueueStats struct {
	ServiceDate string `json:"service_date"`
	// Issued counts every ticket of the day, cancelled ones included.
	Issued int32 `json:"issued"`
	Active int32 `json:"active"`
	Next   int32 `json:"next"`
}

type HistoryListItem struct {
	ID           uuid.UUID       `json:"id"`
	BookingID    uuid.UUID       `json:"booking_id"`
	QueueNumber  int32           `json:"queue_number"`
	ServiceDate  string          `json:"service_date"`
	UserID       uuid.UUID       `json:"user_id"`
	UserName     string          `json:"user_name"`
	KaryawanID   uuid.UUID       `json:"karyawan_id"`
	KaryawanName string          `json:"karyawan_name"`
	VehiclePlate *string         `json:"vehicle_plate,omitempty"`
	Status       string          `json:"status"`
	Total        decimal.Decimal `json:"total"`
	CreatedAt    time.Time       `json:"created_at"`
}

type HistoryItemView struct {
	ID        uuid.UUID       `json:"id"`
	Kind      string          `json:"kind"`
	RefID     uuid.UUID       `json:"ref_id"`
	Name      string          `json:"name"`
	Quantity  int32           `json:"quantity"`
	UnitPrice decimal.Decimal `json:"unit_price"`
	LineTotal decimal.Decimal `json:"line_total"`
}

type HistoryDetailView struct {
	ID            uuid.UUID         `json:"id"`
	BookingID     uuid.UUID         `json:"booking_id"`
	QueueNumber   int32             `json:"queue_number"`
	ServiceDate   string            `json:"service_date"`
	UserID        uuid.UUID         `json:"user_id"`
	UserName      string            `json:"user_name"`
	UserEmail     string            `json:"user_email"`
	KaryawanID    uuid.UUID         `json:"karyawan_id"`
	KaryawanName  string            `json:"karyawan_name"`
	KaryawanEmail string            `json:"karyawan_email"`
	VehicleID     *uuid.UUID        `json:"vehicle_id,omitempty"`
	VehiclePlate  *string           `json:"vehicle_plate,omitempty"`
	VehicleBrand  *string           `json:"vehicle_brand,omitempty"`
	VehicleModel  *string           `json:"vehicle_model,omitempty"`
	Status        string            `json:"status"`
	Total         decimal.Decimal   `json:"total"`
	Items         []HistoryItemView `json:"items"`
	CreatedAt     time.Time         `json:"created_at"`
	UpdatedAt     time.Time         `json:"updated_at"`
}

type VehicleView struct {
	ID        uuid.UUID `json:"id"`
	OwnerID   uuid.UUID `json:"owner_id"`
	Plate     string    `json:"plate"`
	Brand     string    `json:"brand"`
	Model     string    `json:"model"`
	Year      *int32    `json:"year,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

type CatalogItemView struct {
	ID        uuid.UUID       `json:"id"`
	Kind      string          `json:"kind"`
	Code      *string         `json:"code,omitempty"`
	Name      string          `json:"name"`
	Price     decimal.Decimal `json:"price"`
	CreatedAt time.Time       `json:"created_at"`
}
