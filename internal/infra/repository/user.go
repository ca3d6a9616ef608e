package repository

import (
	"context"
	"time"

	"bengkel-service/internal/domain/user"
	"bengkel-service/internal/infra"
	"bengkel-service/internal/infra/repository/converter"
	"bengkel-service/internal/infra/sqlc"

	"github.com/google/uuid"
)

type UserWriteQueries interface {
	CreateUser(ctx context.Context, db sqlc.DBTX, arg sqlc.CreateUserParams) error
	UpdateUserLastLogin(ctx context.Context, db sqlc.DBTX, id uuid.UUID, at time.Time) (int64, error)
}

type UserRepository struct {
	queries UserWriteQueries
	db      sqlc.DBTX
}

func NewUserRepository(queries UserWriteQueries, db sqlc.DBTX) *UserRepository {
	return &UserRepository{
		queries: queries,
		db:      db,
	}
}

func (r *UserRepository) Create(ctx context.Context, u *user.User) error {
	if err := r.queries.CreateUser(ctx, r.db, converter.UserToCreateParams(u)); err != nil {
		return infra.WrapRepoErr("failed to create user", err)
	}
	return nil
}

func (r *UserRepository) UpdateLastLogin(ctx context.Context, id uuid.UUID, at time.Time) error {
	n, err := r.queries.UpdateUserLastLogin(ctx, r.db, id, at)
	if err != nil {
		return infra.WrapRepoErr("failed to update user last login", err)
	}
	if n == 0 {
		return infra.WrapRepoErr("user not found", nil, infra.KindNotFound)
	}
	return nil
}
