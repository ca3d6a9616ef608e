//go:build unit

package queries_test

import (
	"context"
	"testing"

	"bengkel-service/internal/domain/authz"
	"bengkel-service/internal/domain/user"
	"bengkel-service/internal/pkg/errs"
	"bengkel-service/internal/usecase/queries"
	"bengkel-service/tests/common/builder"
	queriesmock "bengkel-service/tests/mock/queries"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestHistoryQueriesList(t *testing.T) {
	item := builder.NewHistoryBuilder().BuildListItem()

	t.Run("customers only see their own histories", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		store := queriesmock.NewMockHistoryReadStore(ctrl)
		actor := customerActor()
		store.EXPECT().FindHistoriesFirstPage(gomock.Any(), &actor.ID, int32(queries.DefaultListLimit+1)).
			Return([]*queries.HistoryListItem{item}, nil)

		got, next, err := queries.NewHistoryQueries(store, policy).List(context.Background(), actor, nil, 0)
		require.NoError(t, err)
		assert.Len(t, got, 1)
		assert.Nil(t, next)
	})

	t.Run("staff see every history", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		store := queriesmock.NewMockHistoryReadStore(ctrl)
		store.EXPECT().FindHistoriesFirstPage(gomock.Any(), (*uuid.UUID)(nil), int32(11)).
			Return([]*queries.HistoryListItem{item}, nil)

		_, _, err := queries.NewHistoryQueries(store, policy).List(context.Background(), staffActor(), nil, 10)
		require.NoError(t, err)
	})
}

func TestHistoryQueriesGetInvoice(t *testing.T) {
	b := builder.NewHistoryBuilder()
	detail := b.BuildDetailView()
	owner := authz.Actor{ID: b.UserID, Role: user.RoleCustomer}

	t.Run("owner receives the projected invoice", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		store := queriesmock.NewMockHistoryReadStore(ctrl)
		store.EXPECT().FindHistoryByID(gomock.Any(), detail.ID).Return(detail, nil)

		inv, err := queries.NewHistoryQueries(store, policy).GetInvoice(context.Background(), owner, detail.ID)
		require.NoError(t, err)
		assert.Equal(t, "Rp 250.000", inv.TotalText)
		assert.Len(t, inv.Lines, len(detail.Items))
		assert.Contains(t, inv.Number, "INV-20250310-")
	})

	t.Run("another customer is forbidden", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		store := queriesmock.NewMockHistoryReadStore(ctrl)
		store.EXPECT().FindHistoryByID(gomock.Any(), detail.ID).Return(detail, nil)

		_, err := queries.NewHistoryQueries(store, policy).GetInvoice(context.Background(), customerActor(), detail.ID)
		assert.True(t, errs.Is(err, errs.ErrForbidden), err)
	})
}
