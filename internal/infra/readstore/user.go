package readstore

import (
	"context"

	"bengkel-service/internal/infra"
	"bengkel-service/internal/infra/sqlc"
	"bengkel-service/internal/pkg/pgconv"
	"bengkel-service/internal/usecase/queries"

	"github.com/google/uuid"
)

type UserReadQueries interface {
	FindUserByID(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (sqlc.Users, error)
}

type UserReadStore struct {
	queries UserReadQueries
	db      sqlc.DBTX
}

func NewUserReadStore(queries UserReadQueries, db sqlc.DBTX) *UserReadStore {
	return &UserReadStore{
		queries: queries,
		db:      db,
	}
}

func (r *UserReadStore) FindUserByID(ctx context.Context, id uuid.UUID) (*queries.AuthorizedUserView, error) {
	row, err := r.queries.FindUserByID(ctx, r.db, id)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("user not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find user by ID", err)
	}

	return &queries.AuthorizedUserView{
		ID:          row.ID,
		Name:        row.Name,
		Email:       row.Email,
		Role:        row.Role,
		IsActive:    row.IsActive,
		LastLoginAt: pgconv.TimePtrFromPgtype(row.LastLoginAt),
		CreatedAt:   row.CreatedAt,
	}, nil
}
