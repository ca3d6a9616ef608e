// Package memory is a process-local gateway implementing the same ports as the
// PostgreSQL one. Units of work are serialized and applied on commit, and the
// unique constraints of the schema are enforced with the same names.
package memory

import (
	"context"
	"sync"
	"time"

	"bengkel-service/internal/domain/booking"
	"bengkel-service/internal/domain/catalog"
	"bengkel-service/internal/domain/history"
	"bengkel-service/internal/domain/user"
	"bengkel-service/internal/domain/vehicle"
	"bengkel-service/internal/usecase/shared"

	"github.com/google/uuid"
)

type jobRecord struct {
	job       shared.NotificationJob
	status    string
	lastError string
}

// state is copied at the start of each unit of work. Entities are treated as
// immutable once stored; writes replace the pointer.
type state struct {
	users      map[uuid.UUID]*user.User
	vehicles   map[uuid.UUID]*vehicle.Vehicle
	services   map[uuid.UUID]*catalog.Item
	spareparts map[uuid.UUID]*catalog.Item
	bookings   map[uuid.UUID]*booking.Booking
	histories  map[uuid.UUID]*history.History
	jobs       map[uuid.UUID]*jobRecord
}

func newState() *state {
	return &state{
		users:      map[uuid.UUID]*user.User{},
		vehicles:   map[uuid.UUID]*vehicle.Vehicle{},
		services:   map[uuid.UUID]*catalog.Item{},
		spareparts: map[uuid.UUID]*catalog.Item{},
		bookings:   map[uuid.UUID]*booking.Booking{},
		histories:  map[uuid.UUID]*history.History{},
		jobs:       map[uuid.UUID]*jobRecord{},
	}
}

func (s *state) clone() *state {
	c := newState()
	for k, v := range s.users {
		c.users[k] = v
	}
	for k, v := range s.vehicles {
		c.vehicles[k] = v
	}
	for k, v := range s.services {
		c.services[k] = v
	}
	for k, v := range s.spareparts {
		c.spareparts[k] = v
	}
	for k, v := range s.bookings {
		c.bookings[k] = v
	}
	for k, v := range s.histories {
		c.histories[k] = v
	}
	for k, v := range s.jobs {
		copied := *v
		c.jobs[k] = &copied
	}
	return c
}

type Store struct {
	mu   sync.RWMutex
	data *state
	loc  *time.Location
}

func NewStore(policy shared.BookingPolicy) *Store {
	return &Store{
		data: newState(),
		loc:  policy.Location,
	}
}

// Within runs fn against a private copy of the store and publishes the copy
// only when fn succeeds.
func (s *Store) Within(ctx context.Context, fn func(ctx context.Context, tx shared.Tx) error) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	work := s.data.clone()
	if err := fn(ctx, &memTx{data: work, loc: s.loc}); err != nil {
		return err
	}
	s.data = work
	return nil
}

func (s *Store) CommandReads() shared.CommandReads {
	return &lockedReads{store: s}
}

func (s *Store) Outbox() shared.OutboxStore {
	return &outbox{store: s}
}

func (s *Store) read(fn func(data *state)) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	fn(s.data)
}

type memTx struct {
	data *state
	loc  *time.Location
}

func (t *memTx) Bookings() shared.BookingRepository           { return bookingRepo{data: t.data} }
func (t *memTx) Histories() shared.HistoryRepository          { return historyRepo{data: t.data} }
func (t *memTx) Users() shared.UserRepository                 { return userRepo{data: t.data} }
func (t *memTx) Vehicles() shared.VehicleRepository           { return vehicleRepo{data: t.data} }
func (t *memTx) Catalog() shared.CatalogRepository            { return catalogRepo{data: t.data} }
func (t *memTx) Notifications() shared.NotificationRepository { return notificationRepo{data: t.data} }
func (t *memTx) Reads() shared.CommandReads                   { return reads{data: t.data} }
