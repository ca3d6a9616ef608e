package repository

import (
	"context"
	"time"

	"bengkel-service/internal/domain/history"
	"bengkel-service/internal/infra"
	"bengkel-service/internal/infra/repository/converter"
	"bengkel-service/internal/infra/sqlc"

	"github.com/google/uuid"
)

type HistoryWriteQueries interface {
	CreateHistory(ctx context.Context, db sqlc.DBTX, arg sqlc.CreateHistoryParams) error
	CreateHistoryItem(ctx context.Context, db sqlc.DBTX, arg sqlc.CreateHistoryItemParams) error
	UpdateHistoryStatus(ctx context.Context, db sqlc.DBTX, arg sqlc.UpdateHistoryStatusParams) (int64, error)
}

type HistoryRepository struct {
	queries HistoryWriteQueries
	db      sqlc.DBTX
}

func NewHistoryRepository(queries HistoryWriteQueries, db sqlc.DBTX) *HistoryRepository {
	return &HistoryRepository{
		queries: queries,
		db:      db,
	}
}

// Create writes the header and every line item. It relies on the caller's
// transaction for atomicity.
func (r *HistoryRepository) Create(ctx context.Context, h *history.History) error {
	if err := r.queries.CreateHistory(ctx, r.db, converter.HistoryToCreateParams(h)); err != nil {
		return infra.WrapRepoErr("failed to create history", err)
	}

	for i, li := range h.Items() {
		params := converter.HistoryItemToCreateParams(h.ID(), i+1, li)
		if err := r.queries.CreateHistoryItem(ctx, r.db, params); err != nil {
			return infra.WrapRepoErr("failed to create history item", err)
		}
	}
	return nil
}

func (r *HistoryRepository) UpdateStatus(ctx context.Context, id uuid.UUID, status history.ProgressStatus, updatedAt time.Time) error {
	n, err := r.queries.UpdateHistoryStatus(ctx, r.db, sqlc.UpdateHistoryStatusParams{
		ID:        id,
		Status:    status.String(),
		UpdatedAt: updatedAt,
	})
	if err != nil {
		return infra.WrapRepoErr("failed to update history status", err)
	}
	if n == 0 {
		return infra.WrapRepoErr("history not found", nil, infra.KindNotFound)
	}
	return nil
}
