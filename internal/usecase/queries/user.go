package queries

import (
	"context"

	"bengkel-service/internal/pkg/errs"
	"bengkel-service/internal/usecase/shared"

	"github.com/google/uuid"
)

//go:generate mockgen -source=user.go -destination=../../../tests/mock/queries/user_mock.go -package=queriesmock

var ErrUserInactive = errs.Mark(errs.New("user inactive"), errs.ErrUnauthorized)

type UserQueries interface {
	GetCurrentUser(ctx context.Context, userID uuid.UUID) (*AuthorizedUserView, error)
}

type UserReadStore interface {
	FindUserByID(ctx context.Context, id uuid.UUID) (*AuthorizedUserView, error)
}

type userQueriesImpl struct {
	readStore UserReadStore
}

func NewUserQueries(readStore UserReadStore) UserQueries {
	return &userQueriesImpl{
		readStore: readStore,
	}
}

func (q *userQueriesImpl) GetCurrentUser(ctx context.Context, userID uuid.UUID) (*AuthorizedUserView, error) {
	user, err := q.readStore.FindUserByID(ctx, userID)
	if err != nil {
		return nil, shared.Lookup(err, shared.ErrUserNotFound, "failed to load current user")
	}

	if !user.IsActive {
		return nil, ErrUserInactive
	}

	return user, nil
}
