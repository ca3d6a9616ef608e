package readstore

import (
	"context"
	"time"

	"bengkel-service/internal/infra"
	"bengkel-service/internal/infra/sqlc"
	"bengkel-service/internal/pkg/pgconv"
	"bengkel-service/internal/usecase/queries"

	"github.com/google/uuid"
)

type HistoryViewQueries interface {
	GetHistoryView(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (sqlc.HistoryViewRow, error)
	ListHistoryItems(ctx context.Context, db sqlc.DBTX, historyID uuid.UUID) ([]sqlc.HistoryItems, error)
	ListHistoryViewsFirstPage(ctx context.Context, db sqlc.DBTX, arg sqlc.ListHistoryViewsFirstPageParams) ([]sqlc.HistoryViewRow, error)
	ListHistoryViewsKeyset(ctx context.Context, db sqlc.DBTX, arg sqlc.ListHistoryViewsKeysetParams) ([]sqlc.HistoryViewRow, error)
}

type HistoryReadStore struct {
	queries HistoryViewQueries
	db      sqlc.DBTX
}

func NewHistoryReadStore(queries HistoryViewQueries, db sqlc.DBTX) *HistoryReadStore {
	return &HistoryReadStore{
		queries: queries,
		db:      db,
	}
}

func (r *HistoryReadStore) FindHistoryByID(ctx context.Context, id uuid.UUID) (*queries.HistoryDetailView, error) {
	row, err := r.queries.GetHistoryView(ctx, r.db, id)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("history not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find history by ID", err)
	}

	itemRows, err := r.queries.ListHistoryItems(ctx, r.db, id)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list history items", err)
	}

	view, err := toHistoryDetailView(row, itemRows)
	if err != nil {
		return nil, infra.WrapRepoErr("stored history is malformed", err)
	}
	return view, nil
}

func (r *HistoryReadStore) FindHistoriesFirstPage(ctx context.Context, userID *uuid.UUID, limit int32) ([]*queries.HistoryListItem, error) {
	rows, err := r.queries.ListHistoryViewsFirstPage(ctx, r.db, sqlc.ListHistoryViewsFirstPageParams{
		UserID: pgconv.UUIDPtrToPgtype(userID),
		Limit:  limit,
	})
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list histories", err)
	}
	return toHistoryListItems(rows)
}

func (r *HistoryReadStore) FindHistoriesKeyset(ctx context.Context, userID *uuid.UUID, lastCreatedAt time.Time, lastID uuid.UUID, limit int32) ([]*queries.HistoryListItem, error) {
	rows, err := r.queries.ListHistoryViewsKeyset(ctx, r.db, sqlc.ListHistoryViewsKeysetParams{
		UserID:        pgconv.UUIDPtrToPgtype(userID),
		LastCreatedAt: lastCreatedAt,
		LastID:        lastID,
		Limit:         limit,
	})
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list histories (keyset)", err)
	}
	return toHistoryListItems(rows)
}

func toHistoryListItems(rows []sqlc.HistoryViewRow) ([]*queries.HistoryListItem, error) {
	items := make([]*queries.HistoryListItem, 0, len(rows))
	for _, row := range rows {
		total, err := pgconv.DecimalFromText(row.TotalPrice)
		if err != nil {
			return nil, infra.WrapRepoErr("stored history total is malformed", err)
		}
		items = append(items, &queries.HistoryListItem{
			ID:           row.ID,
			BookingID:    row.BookingID,
			QueueNumber:  row.QueueNumber,
			ServiceDate:  pgconv.DateToText(row.ServiceDate.Time),
			UserID:       row.UserID,
			UserName:     row.UserName,
			KaryawanID:   row.KaryawanID,
			KaryawanName: row.KaryawanName,
			VehiclePlate: pgconv.StringPtrFromPgtype(row.VehiclePlate),
			Status:       row.Status,
			Total:        total,
			CreatedAt:    row.CreatedAt,
		})
	}
	return items, nil
}

func toHistoryDetailView(row sqlc.HistoryViewRow, itemRows []sqlc.HistoryItems) (*queries.HistoryDetailView, error) {
	total, err := pgconv.DecimalFromText(row.TotalPrice)
	if err != nil {
		return nil, err
	}

	items := make([]queries.HistoryItemView, 0, len(itemRows))
	for _, ir := range itemRows {
		unit, err := pgconv.DecimalFromText(ir.UnitPrice)
		if err != nil {
			return nil, err
		}
		lineTotal, err := pgconv.DecimalFromText(ir.LineTotal)
		if err != nil {
			return nil, err
		}
		items = append(items, queries.HistoryItemView{
			ID:        ir.ID,
			Kind:      ir.ItemKind,
			RefID:     ir.RefID,
			Name:      ir.Name,
			Quantity:  ir.Quantity,
			UnitPrice: unit,
			LineTotal: lineTotal,
		})
	}

	return &queries.HistoryDetailView{
		ID:            row.ID,
		BookingID:     row.BookingID,
		QueueNumber:   row.QueueNumber,
		ServiceDate:   pgconv.DateToText(row.ServiceDate.Time),
		UserID:        row.UserID,
		UserName:      row.UserName,
		UserEmail:     row.UserEmail,
		KaryawanID:    row.KaryawanID,
		KaryawanName:  row.KaryawanName,
		KaryawanEmail: row.KaryawanEmail,
		VehicleID:     pgconv.UUIDPtrFromPgtype(row.VehicleID),
		VehiclePlate:  pgconv.StringPtrFromPgtype(row.VehiclePlate),
		VehicleBrand:  pgconv.StringPtrFromPgtype(row.VehicleBrand),
		VehicleModel:  pgconv.StringPtrFromPgtype(row.VehicleModel),
		Status:        row.Status,
		Total:         total,
		Items:         items,
		CreatedAt:     row.CreatedAt,
		UpdatedAt:     row.UpdatedAt,
	}, nil
}
