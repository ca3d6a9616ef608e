package memory

import (
	"bytes"
	"context"
	"sort"
	"time"

	"bengkel-service/internal/domain/booking"
	"bengkel-service/internal/domain/catalog"
	"bengkel-service/internal/domain/history"
	"bengkel-service/internal/usecase/queries"

	"github.com/google/uuid"
)

var (
	_ queries.BookingReadStore = (*Store)(nil)
	_ queries.HistoryReadStore = (*Store)(nil)
	_ queries.UserReadStore    = (*Store)(nil)
	_ queries.VehicleReadStore = (*Store)(nil)
	_ queries.CatalogReadStore = (*Store)(nil)
)

func (s *Store) FindBookingByID(ctx context.Context, id uuid.UUID) (view *queries.BookingView, err error) {
	s.read(func(data *state) {
		b, ok := data.bookings[id]
		if !ok {
			err = errNotFound("booking not found")
			return
		}
		view = data.bookingView(b)
	})
	return
}

func (s *Store) FindBookingsByUserFirstPage(ctx context.Context, userID uuid.UUID, limit int32) ([]*queries.BookingView, error) {
	return s.bookingsByUser(userID, nil, uuid.Nil, limit), nil
}

func (s *Store) FindBookingsByUserKeyset(ctx context.Context, userID uuid.UUID, lastCreatedAt time.Time, lastID uuid.UUID, limit int32) ([]*queries.BookingView, error) {
	return s.bookingsByUser(userID, &lastCreatedAt, lastID, limit), nil
}

func (s *Store) bookingsByUser(userID uuid.UUID, lastCreatedAt *time.Time, lastID uuid.UUID, limit int32) []*queries.BookingView {
	var views []*queries.BookingView
	s.read(func(data *state) {
		for _, b := range data.bookings {
			if b.UserID() != userID {
				continue
			}
			if lastCreatedAt != nil && !before(b.CreatedAt(), b.ID(), *lastCreatedAt, lastID) {
				continue
			}
			views = append(views, data.bookingView(b))
		}
	})
	sort.Slice(views, func(i, j int) bool {
		return before(views[j].CreatedAt, views[j].ID, views[i].CreatedAt, views[i].ID)
	})
	return truncate(views, limit)
}

func (s *Store) FindBookingsByDay(ctx context.Context, day booking.ServiceDay) ([]*queries.BookingView, error) {
	views := make([]*queries.BookingView, 0)
	s.read(func(data *state) {
		for _, b := range data.bookings {
			if b.Day().Equal(day) {
				views = append(views, data.bookingView(b))
			}
		}
	})
	sort.Slice(views, func(i, j int) bool { return views[i].QueueNumber < views[j].QueueNumber })
	return views, nil
}

func (s *Store) CountBookingsByDay(ctx context.Context, day booking.ServiceDay) (maxQueue int32, active int32, err error) {
	s.read(func(data *state) {
		for _, b := range data.bookings {
			if !b.Day().Equal(day) {
				continue
			}
			if q := int32(b.QueueNumber().Int()); q > maxQueue {
				maxQueue = q
			}
			if b.Status() != booking.StatusCancelled {
				active++
			}
		}
	})
	return maxQueue, active, nil
}

func (s *Store) FindHistoryByID(ctx context.Context, id uuid.UUID) (view *queries.HistoryDetailView, err error) {
	s.read(func(data *state) {
		h, ok := data.histories[id]
		if !ok {
			err = errNotFound("history not found")
			return
		}
		view = data.historyDetail(h)
	})
	return
}

func (s *Store) FindHistoriesFirstPage(ctx context.Context, userID *uuid.UUID, limit int32) ([]*queries.HistoryListItem, error) {
	return s.histories(userID, nil, uuid.Nil, limit), nil
}

func (s *Store) FindHistoriesKeyset(ctx context.Context, userID *uuid.UUID, lastCreatedAt time.Time, lastID uuid.UUID, limit int32) ([]*queries.HistoryListItem, error) {
	return s.histories(userID, &lastCreatedAt, lastID, limit), nil
}

func (s *Store) histories(userID *uuid.UUID, lastCreatedAt *time.Time, lastID uuid.UUID, limit int32) []*queries.HistoryListItem {
	var items []*queries.HistoryListItem
	s.read(func(data *state) {
		for _, h := range data.histories {
			if userID != nil && h.UserID() != *userID {
				continue
			}
			if lastCreatedAt != nil && !before(h.CreatedAt(), h.ID(), *lastCreatedAt, lastID) {
				continue
			}
			d := data.historyDetail(h)
			items = append(items, &queries.HistoryListItem{
				ID:           d.ID,
				BookingID:    d.BookingID,
				QueueNumber:  d.QueueNumber,
				ServiceDate:  d.ServiceDate,
				UserID:       d.UserID,
				UserName:     d.UserName,
				KaryawanID:   d.KaryawanID,
				KaryawanName: d.KaryawanName,
				VehiclePlate: d.VehiclePlate,
				Status:       d.Status,
				Total:        d.Total,
				CreatedAt:    d.CreatedAt,
			})
		}
	})
	sort.Slice(items, func(i, j int) bool {
		return before(items[j].CreatedAt, items[j].ID, items[i].CreatedAt, items[i].ID)
	})
	return truncate(items, limit)
}

func (s *Store) FindUserByID(ctx context.Context, id uuid.UUID) (view *queries.AuthorizedUserView, err error) {
	s.read(func(data *state) {
		u, ok := data.users[id]
		if !ok {
			err = errNotFound("user not found")
			return
		}
		view = &queries.AuthorizedUserView{
			ID:          u.ID(),
			Name:        u.Name().String(),
			Email:       u.Email().Value(),
			Role:        u.Role().String(),
			IsActive:    u.IsActive(),
			LastLoginAt: u.LastLogin(),
			CreatedAt:   u.CreatedAt(),
		}
	})
	return
}

func (s *Store) FindVehiclesByOwner(ctx context.Context, ownerID uuid.UUID) ([]*queries.VehicleView, error) {
	views := make([]*queries.VehicleView, 0)
	s.read(func(data *state) {
		for _, v := range data.vehicles {
			if v.OwnerID() != ownerID {
				continue
			}
			views = append(views, &queries.VehicleView{
				ID:        v.ID(),
				OwnerID:   v.OwnerID(),
				Plate:     v.Plate().String(),
				Brand:     v.Brand(),
				Model:     v.Model(),
				Year:      v.Year(),
				CreatedAt: v.CreatedAt(),
			})
		}
	})
	sort.Slice(views, func(i, j int) bool {
		return before(views[i].CreatedAt, views[i].ID, views[j].CreatedAt, views[j].ID)
	})
	return views, nil
}

func (s *Store) FindCatalogItems(ctx context.Context, kind catalog.Kind) ([]*queries.CatalogItemView, error) {
	views := make([]*queries.CatalogItemView, 0)
	s.read(func(data *state) {
		source := data.services
		if kind == catalog.KindSparepart {
			source = data.spareparts
		}
		for _, item := range source {
			view := &queries.CatalogItemView{
				ID:        item.ID(),
				Kind:      item.Kind().String(),
				Name:      item.Name(),
				Price:     item.Price().Decimal(),
				CreatedAt: item.CreatedAt(),
			}
			if code := item.Code(); code != "" {
				view.Code = &code
			}
			views = append(views, view)
		}
	})
	sort.Slice(views, func(i, j int) bool { return views[i].Name < views[j].Name })
	return views, nil
}

func (s *state) bookingView(b *booking.Booking) *queries.BookingView {
	view := &queries.BookingView{
		ID:          b.ID(),
		UserID:      b.UserID(),
		VehicleID:   b.VehicleID(),
		ServiceDate: b.Day().String(),
		Message:     b.Message().String(),
		QueueNumber: int32(b.QueueNumber().Int()),
		Status:      b.Status().String(),
		CreatedAt:   b.CreatedAt(),
		UpdatedAt:   b.UpdatedAt(),
	}
	if u, ok := s.users[b.UserID()]; ok {
		view.UserName = u.Name().String()
		view.UserEmail = u.Email().Value()
	}
	if b.VehicleID() != nil {
		if v, ok := s.vehicles[*b.VehicleID()]; ok {
			plate := v.Plate().String()
			view.VehiclePlate = &plate
		}
	}
	for _, h := range s.histories {
		if h.BookingID() == b.ID() {
			id := h.ID()
			view.HistoryID = &id
			break
		}
	}
	return view
}

func (s *state) historyDetail(h *history.History) *queries.HistoryDetailView {
	view := &queries.HistoryDetailView{
		ID:         h.ID(),
		BookingID:  h.BookingID(),
		UserID:     h.UserID(),
		KaryawanID: h.KaryawanID(),
		VehicleID:  h.VehicleID(),
		Status:     h.Status().String(),
		Total:      h.Total().Decimal(),
		CreatedAt:  h.CreatedAt(),
		UpdatedAt:  h.UpdatedAt(),
	}
	if b, ok := s.bookings[h.BookingID()]; ok {
		view.QueueNumber = int32(b.QueueNumber().Int())
		view.ServiceDate = b.Day().String()
	}
	if u, ok := s.users[h.UserID()]; ok {
		view.UserName = u.Name().String()
		view.UserEmail = u.Email().Value()
	}
	if k, ok := s.users[h.KaryawanID()]; ok {
		view.KaryawanName = k.Name().String()
		view.KaryawanEmail = k.Email().Value()
	}
	if h.VehicleID() != nil {
		if v, ok := s.vehicles[*h.VehicleID()]; ok {
			plate, brand, model := v.Plate().String(), v.Brand(), v.Model()
			view.VehiclePlate = &plate
			view.VehicleBrand = &brand
			view.VehicleModel = &model
		}
	}
	for _, li := range h.Items() {
		view.Items = append(view.Items, queries.HistoryItemView{
			ID:        li.ID(),
			Kind:      li.Kind().String(),
			RefID:     li.RefID(),
			Name:      li.Name(),
			Quantity:  int32(li.Quantity()),
			UnitPrice: li.UnitPrice().Decimal(),
			LineTotal: li.LineTotal().Decimal(),
		})
	}
	return view
}

// before orders rows the way the keyset queries do: created_at, then id.
func before(aAt time.Time, aID uuid.UUID, bAt time.Time, bID uuid.UUID) bool {
	if !aAt.Equal(bAt) {
		return aAt.Before(bAt)
	}
	return bytes.Compare(aID[:], bID[:]) < 0
}

func truncate[T any](rows []T, limit int32) []T {
	if rows == nil {
		rows = make([]T, 0)
	}
	if limit > 0 && int(limit) < len(rows) {
		return rows[:limit]
	}
	return rows
}
