package queries

import (
	"context"
	"time"

	"bengkel-service/internal/domain/authz"
	"bengkel-service/internal/domain/invoice"
	"bengkel-service/internal/domain/money"
	"bengkel-service/internal/pkg/errs"
	"bengkel-service/internal/usecase/shared"

	"github.com/google/uuid"
)

//go:generate mockgen -source=history.go -destination=../../../tests/mock/queries/history_mock.go -package=queriesmock

type HistoryQueries interface {
	GetByID(ctx context.Context, actor authz.Actor, id uuid.UUID) (*HistoryDetailView, error)
	// List returns the actor's own histories, or every history for staff.
	List(ctx context.Context, actor authz.Actor, cursor *Cursor, limit int) ([]*HistoryListItem, *Cursor, error)
	GetInvoice(ctx context.Context, actor authz.Actor, id uuid.UUID) (*invoice.Invoice, error)
}

// HistoryReadStore lists all histories when userID is nil.
type HistoryReadStore interface {
	FindHistoryByID(ctx context.Context, id uuid.UUID) (*HistoryDetailView, error)
	FindHistoriesFirstPage(ctx context.Context, userID *uuid.UUID, limit int32) ([]*HistoryListItem, error)
	FindHistoriesKeyset(ctx context.Context, userID *uuid.UUID, lastCreatedAt time.Time, lastID uuid.UUID, limit int32) ([]*HistoryListItem, error)
}

type historyQueriesImpl struct {
	store  HistoryReadStore
	policy shared.BookingPolicy
}

func NewHistoryQueries(store HistoryReadStore, policy shared.BookingPolicy) HistoryQueries {
	return &historyQueriesImpl{store: store, policy: policy}
}

func (q *historyQueriesImpl) GetByID(ctx context.Context, actor authz.Actor, id uuid.UUID) (*HistoryDetailView, error) {
	return q.load(ctx, actor, authz.ActionViewHistory, id)
}

func (q *historyQueriesImpl) List(ctx context.Context, actor authz.Actor, cursor *Cursor, limit int) ([]*HistoryListItem, *Cursor, error) {
	if err := shared.Authorize(actor, authz.ActionViewHistory, actor.ID); err != nil {
		return nil, nil, err
	}

	var owner *uuid.UUID
	if !authz.Can(actor, authz.ActionListAllHistories, uuid.Nil) {
		owner = &actor.ID
	}

	limit = ValidateLimit(limit)
	var rows []*HistoryListItem
	var err error
	if cursor.isFirstPage() {
		rows, err = q.store.FindHistoriesFirstPage(ctx, owner, int32(limit+1))
	} else {
		lastCreatedAt, lastID, derr := DecodeAfterCursor(cursor.After)
		if derr != nil {
			return nil, nil, ErrInvalidCursor
		}
		rows, err = q.store.FindHistoriesKeyset(ctx, owner, lastCreatedAt, lastID, int32(limit+1))
	}
	if err != nil {
		return nil, nil, errs.System(err, "failed to list histories")
	}

	rows, next := paginate(rows, limit, func(v *HistoryListItem) (time.Time, uuid.UUID) { return v.CreatedAt, v.ID })
	return rows, next, nil
}

func (q *historyQueriesImpl) GetInvoice(ctx context.Context, actor authz.Actor, id uuid.UUID) (*invoice.Invoice, error) {
	detail, err := q.load(ctx, actor, authz.ActionViewInvoice, id)
	if err != nil {
		return nil, err
	}

	src, err := q.invoiceSource(detail)
	if err != nil {
		return nil, errs.System(err, "stored history cannot be projected")
	}
	inv := invoice.Project(src)
	return &inv, nil
}

func (q *historyQueriesImpl) load(ctx context.Context, actor authz.Actor, action authz.Action, id uuid.UUID) (*HistoryDetailView, error) {
	view, err := q.store.FindHistoryByID(ctx, id)
	if err != nil {
		return nil, shared.Lookup(err, shared.ErrHistoryNotFound, "failed to load history")
	}
	if err := shared.Authorize(actor, action, view.UserID); err != nil {
		return nil, err
	}
	return view, nil
}

func (q *historyQueriesImpl) invoiceSource(d *HistoryDetailView) (invoice.Source, error) {
	day, err := q.policy.ParseDay(d.ServiceDate)
	if err != nil {
		return invoice.Source{}, err
	}

	lines := make([]invoice.SourceLine, 0, len(d.Items))
	for _, it := range d.Items {
		unit, err := money.New(it.UnitPrice)
		if err != nil {
			return invoice.Source{}, err
		}
		total, err := money.New(it.LineTotal)
		if err != nil {
			return invoice.Source{}, err
		}
		lines = append(lines, invoice.SourceLine{
			Kind:      it.Kind,
			Name:      it.Name,
			Quantity:  int(it.Quantity),
			UnitPrice: unit,
			LineTotal: total,
		})
	}

	total, err := money.New(d.Total)
	if err != nil {
		return invoice.Source{}, err
	}

	src := invoice.Source{
		HistoryID:   d.ID,
		BookingID:   d.BookingID,
		QueueNumber: int(d.QueueNumber),
		ServiceDate: day.Start(),
		IssuedAt:    d.CreatedAt.In(q.policy.Location),
		Status:      d.Status,
		Customer:    invoice.Party{Name: d.UserName, Email: d.UserEmail},
		Staff:       invoice.Party{Name: d.KaryawanName, Email: d.KaryawanEmail},
		Lines:       lines,
		Total:       total,
	}
	if d.VehiclePlate != nil {
		src.Vehicle = &invoice.VehicleInfo{
			Plate: *d.VehiclePlate,
			Brand: deref(d.VehicleBrand),
			Model: deref(d.VehicleModel),
		}
	}
	return src, nil
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
