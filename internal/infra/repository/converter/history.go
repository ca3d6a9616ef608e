package converter

import (
	"bengkel-service/internal/domain/catalog"
	"bengkel-service/internal/domain/history"
	"bengkel-service/internal/domain/money"
	"bengkel-service/internal/infra/sqlc"
	"bengkel-service/internal/pkg/pgconv"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

func HistoryToCreateParams(h *history.History) sqlc.CreateHistoryParams {
	return sqlc.CreateHistoryParams{
		ID:         h.ID(),
		BookingID:  h.BookingID(),
		UserID:     h.UserID(),
		KaryawanID: h.KaryawanID(),
		VehicleID:  pgconv.UUIDPtrToPgtype(h.VehicleID()),
		Status:     h.Status().String(),
		TotalPrice: pgconv.DecimalToText(h.Total().Decimal()),
		CreatedAt:  h.CreatedAt(),
		UpdatedAt:  h.UpdatedAt(),
	}
}

func HistoryItemToCreateParams(historyID uuid.UUID, position int, li history.LineItem) sqlc.CreateHistoryItemParams {
	params := sqlc.CreateHistoryItemParams{
		ID:        li.ID(),
		HistoryID: historyID,
		Position:  int32(position),
		ItemKind:  li.Kind().String(),
		Name:      li.Name(),
		Quantity:  int32(li.Quantity()),
		UnitPrice: pgconv.DecimalToText(li.UnitPrice().Decimal()),
		LineTotal: pgconv.DecimalToText(li.LineTotal().Decimal()),
	}

	ref := pgtype.UUID{Bytes: li.RefID(), Valid: true}
	if li.Kind() == catalog.KindService {
		params.ServiceID = ref
	} else {
		params.SparepartID = ref
	}
	return params
}

func HistoryFromRows(row sqlc.Histories, itemRows []sqlc.HistoryItems) (*history.History, error) {
	status, err := history.NewProgressStatus(row.Status)
	if err != nil {
		return nil, err
	}
	total, err := moneyFromText(row.TotalPrice)
	if err != nil {
		return nil, err
	}

	items := make([]history.LineItem, 0, len(itemRows))
	for _, ir := range itemRows {
		li, err := HistoryItemFromRow(ir)
		if err != nil {
			return nil, err
		}
		items = append(items, li)
	}

	return history.ReconstructHistory(
		row.ID,
		row.BookingID,
		row.UserID,
		row.KaryawanID,
		pgconv.UUIDPtrFromPgtype(row.VehicleID),
		status,
		items,
		total,
		row.CreatedAt,
		row.UpdatedAt,
	), nil
}

func HistoryItemFromRow(row sqlc.HistoryItems) (history.LineItem, error) {
	kind, err := catalog.NewKind(row.ItemKind)
	if err != nil {
		return history.LineItem{}, err
	}
	unit, err := moneyFromText(row.UnitPrice)
	if err != nil {
		return history.LineItem{}, err
	}
	lineTotal, err := moneyFromText(row.LineTotal)
	if err != nil {
		return history.LineItem{}, err
	}
	return history.ReconstructLineItem(row.ID, kind, row.RefID, row.Name, int(row.Quantity), unit, lineTotal), nil
}

func moneyFromText(s string) (money.Money, error) {
	d, err := pgconv.DecimalFromText(s)
	if err != nil {
		return money.Money{}, err
	}
	return money.New(d)
}
