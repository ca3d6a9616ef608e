//go:build unit

package api_test

import (
	"context"
	"net/http"
	"testing"
	"time"

	"bengkel-service/internal/domain/authz"
	"bengkel-service/internal/domain/catalog"
	"bengkel-service/internal/domain/history"
	"bengkel-service/internal/domain/invoice"
	"bengkel-service/internal/domain/money"
	"bengkel-service/internal/domain/user"
	"bengkel-service/internal/handler/api"
	resdto "bengkel-service/internal/handler/dto/response"
	"bengkel-service/internal/pkg/errs"
	"bengkel-service/internal/usecase/commands"
	"bengkel-service/internal/usecase/queries"
	"bengkel-service/internal/usecase/shared"
	"bengkel-service/tests/common/builder"
	"bengkel-service/tests/common/httptest"
	"bengkel-service/tests/common/testutil"
	commandsmock "bengkel-service/tests/mock/commands"
	queriesmock "bengkel-service/tests/mock/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type HistoryHandlerTestSuite struct {
	suite.Suite
	router       *gin.Engine
	mockCtrl     *gomock.Controller
	mockCommands *commandsmock.MockHistoryCommands
	mockQueries  *queriesmock.MockHistoryQueries
	actor        authz.Actor
	hb           *builder.HistoryBuilder
}

func (s *HistoryHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockCommands = commandsmock.NewMockHistoryCommands(s.mockCtrl)
	s.mockQueries = queriesmock.NewMockHistoryQueries(s.mockCtrl)
	s.actor = authz.Actor{ID: uuid.New(), Role: user.RoleKaryawan}
	s.hb = builder.NewHistoryBuilder()
	h := api.NewHistoryHandler(s.mockCommands, s.mockQueries)

	auth := fakeAuth(&s.actor)
	s.router.POST("/bookings/:id/history", auth, h.Create)
	s.router.GET("/histories", auth, h.List)
	s.router.GET("/histories/:id", auth, h.Get)
	s.router.PATCH("/histories/:id/status", auth, h.UpdateStatus)
	s.router.GET("/histories/:id/invoice", auth, h.Invoice)
}

func (s *HistoryHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestHistoryHandlerSuite(t *testing.T) {
	suite.Run(t, new(HistoryHandlerTestSuite))
}

func (s *HistoryHandlerTestSuite) created() *history.History {
	return history.ReconstructHistory(
		s.hb.ID, s.hb.BookingID, s.hb.UserID, s.hb.KaryawanID, nil,
		history.StatusPending, nil, money.FromInt(250000), s.hb.CreatedAt, s.hb.CreatedAt,
	)
}

func (s *HistoryHandlerTestSuite) TestCreate() {
	url := "/bookings/" + s.hb.BookingID.String() + "/history"

	s.Run("success: items list is normalized into Many", func() {
		want := commands.CreateHistoryRequest{
			BookingID: s.hb.BookingID,
			Items: history.Many{Items: []history.LineItemInput{
				{Kind: catalog.KindService, RefID: s.hb.ServiceID, Quantity: 1},
				{Kind: catalog.KindSparepart, RefID: s.hb.SparepartID, Quantity: 2},
			}},
		}
		s.mockCommands.EXPECT().CreateHistory(gomock.Any(), s.actor, want).Return(s.created(), nil)
		s.mockQueries.EXPECT().GetByID(gomock.Any(), s.actor, s.hb.ID).Return(s.hb.BuildDetailView(), nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, s.hb.BuildDTO(), "token")

		var res resdto.HistoryResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusCreated, &res)
		s.True(decimal.NewFromInt(250000).Equal(res.Total))
		s.Len(res.Items, 2)
	})

	s.Run("success: flat single item form without quantity defaults to one unit", func() {
		s.mockCommands.EXPECT().CreateHistory(gomock.Any(), s.actor, gomock.Any()).
			DoAndReturn(func(_ context.Context, _ authz.Actor, req commands.CreateHistoryRequest) (*history.History, error) {
				single, ok := req.Items.(history.Single)
				s.Require().True(ok)
				s.Equal(s.hb.BookingID, req.BookingID)
				s.Equal(catalog.KindService, single.Item.Kind)
				s.Equal(s.hb.ServiceID, single.Item.RefID)
				s.Equal(1, single.Item.Quantity)
				s.Require().NotNil(single.Item.UnitPrice)
				s.True(decimal.NewFromInt(150000).Equal(*single.Item.UnitPrice))
				return s.created(), nil
			})
		s.mockQueries.EXPECT().GetByID(gomock.Any(), s.actor, s.hb.ID).Return(s.hb.BuildDetailView(), nil)

		body := testutil.DtoMap(s.T(), s.hb.BuildSingleDTO(), testutil.Field("quantity", nil))
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, body, "token")
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusCreated, nil)
	})

	s.Run("error: 400 on malformed line items", func() {
		serviceID, sparepartID := s.hb.ServiceID.String(), s.hb.SparepartID.String()
		cases := []struct {
			name   string
			mutate func(map[string]any)
		}{
			{name: "both shapes at once", mutate: testutil.Field("service_id", serviceID)},
			{name: "negative quantity", mutate: testutil.Field("items", []map[string]any{{"service_id": serviceID, "quantity": -1}})},
			{name: "explicit zero quantity in items", mutate: testutil.Field("items", []map[string]any{{"service_id": serviceID, "quantity": 0}})},
			{name: "item referencing both kinds", mutate: testutil.Field("items", []map[string]any{{"service_id": serviceID, "sparepart_id": sparepartID}})},
			{name: "item referencing nothing", mutate: testutil.Field("items", []map[string]any{{"quantity": 1}})},
		}
		for _, tc := range cases {
			s.Run(tc.name, func() {
				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, testutil.DtoMap(s.T(), s.hb.BuildDTO(), tc.mutate), "token")
				httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "")
			})
		}
	})

	s.Run("error: 400 on explicit zero quantity in the flat form", func() {
		body := testutil.DtoMap(s.T(), s.hb.BuildSingleDTO(), testutil.Field("quantity", 0))
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, body, "token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "")
	})

	s.Run("error: maps usecase errors to proper statuses", func() {
		cases := []struct {
			name           string
			err            error
			expectedStatus int
			expectedMsg    string
		}{
			{name: "booking already confirmed", err: commands.ErrBookingNotPending, expectedStatus: http.StatusConflict, expectedMsg: "pending booking"},
			{name: "missing booking", err: shared.ErrBookingNotFound, expectedStatus: http.StatusNotFound, expectedMsg: "booking not found"},
			{name: "unknown catalog item", err: shared.ErrCatalogItemNotFound, expectedStatus: http.StatusNotFound, expectedMsg: "catalog item"},
			{name: "empty items", err: shared.Validation(history.ErrNoLineItems), expectedStatus: http.StatusBadRequest, expectedMsg: "at least one line item"},
		}
		for _, tc := range cases {
			s.Run(tc.name, func() {
				s.mockCommands.EXPECT().CreateHistory(gomock.Any(), s.actor, gomock.Any()).Return(nil, tc.err)

				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, s.hb.BuildDTO(), "token")
				httptest.AssertErrorResponse(s.T(), rec, tc.expectedStatus, tc.expectedMsg)
			})
		}
	})
}

func (s *HistoryHandlerTestSuite) TestUpdateStatus() {
	url := "/histories/" + s.hb.ID.String() + "/status"

	s.Run("success", func() {
		view := s.hb.With(func(b *builder.HistoryBuilder) { b.Status = history.StatusProcess }).BuildDetailView()
		s.mockCommands.EXPECT().UpdateHistoryStatus(gomock.Any(), s.actor, s.hb.ID, "PROCESS").Return(s.created(), nil)
		s.mockQueries.EXPECT().GetByID(gomock.Any(), s.actor, s.hb.ID).Return(view, nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPatch, url, map[string]any{"status": "PROCESS"}, "token")

		res := httptest.DecodeJSON[resdto.HistoryResponse](s.T(), rec)
		s.Equal(http.StatusOK, rec.Code)
		s.Equal("PROCESS", res.Status)
	})

	s.Run("error: missing status", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPatch, url, map[string]any{}, "token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "")
	})

	s.Run("error: terminal status", func() {
		s.mockCommands.EXPECT().UpdateHistoryStatus(gomock.Any(), s.actor, s.hb.ID, "PENDING").
			Return(nil, errs.Mark(history.ErrTransitionNotAllowed, errs.ErrInvalidTransition))

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPatch, url, map[string]any{"status": "PENDING"}, "token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusConflict, "")
	})
}

func (s *HistoryHandlerTestSuite) TestInvoice() {
	url := "/histories/" + s.hb.ID.String() + "/invoice"
	inv := invoice.Project(invoice.Source{
		HistoryID:   s.hb.ID,
		BookingID:   s.hb.BookingID,
		QueueNumber: 2,
		ServiceDate: time.Date(2025, 3, 10, 0, 0, 0, 0, builder.Jakarta),
		IssuedAt:    time.Date(2025, 3, 10, 15, 0, 0, 0, builder.Jakarta),
		Status:      "COMPLETED",
		Customer:    invoice.Party{Name: "Budi Santoso"},
		Staff:       invoice.Party{Name: "Agus Mekanik"},
		Lines: []invoice.SourceLine{
			{Kind: "SERVICE", Name: "Oil Change", Quantity: 1, UnitPrice: money.FromInt(150000), LineTotal: money.FromInt(150000)},
		},
		Total: money.FromInt(150000),
	})

	s.Run("json by default", func() {
		s.mockQueries.EXPECT().GetInvoice(gomock.Any(), s.actor, s.hb.ID).Return(&inv, nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "token")

		res := httptest.DecodeJSON[resdto.InvoiceResponse](s.T(), rec)
		s.Equal(http.StatusOK, rec.Code)
		s.Equal(inv.Number, res.Number)
		s.Equal("Rp 150.000", res.TotalText)
		s.Require().Len(res.Lines, 1)
		s.Equal("Oil Change", res.Lines[0].Description)
	})

	s.Run("plain text on request", func() {
		s.mockQueries.EXPECT().GetInvoice(gomock.Any(), s.actor, s.hb.ID).Return(&inv, nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url+"?format=text", nil, "token")

		s.Equal(http.StatusOK, rec.Code)
		s.Contains(rec.Header().Get("Content-Type"), "text/plain")
		s.Contains(rec.Body.String(), inv.Number)
		s.Contains(rec.Body.String(), "Rp 150.000")
	})

	s.Run("error: not visible to other customers", func() {
		s.mockQueries.EXPECT().GetInvoice(gomock.Any(), s.actor, s.hb.ID).
			Return(nil, shared.Authorize(authz.Actor{ID: uuid.New(), Role: user.RoleCustomer}, authz.ActionViewInvoice, uuid.New()))

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusForbidden, "not allowed")
	})
}

func (s *HistoryHandlerTestSuite) TestList() {
	s.Run("success: passes the cursor through and returns the next one", func() {
		s.mockQueries.EXPECT().List(gomock.Any(), s.actor, &queries.Cursor{After: "abc"}, 5).
			Return([]*queries.HistoryListItem{s.hb.BuildListItem()}, &queries.Cursor{After: "def"}, nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/histories?cursor=abc&limit=5", nil, "token")

		res := httptest.DecodeJSON[resdto.HistoryListResponse](s.T(), rec)
		s.Equal(http.StatusOK, rec.Code)
		s.Require().Len(res.Items, 1)
		s.Equal(s.hb.ID, res.Items[0].ID)
		s.Equal("def", res.NextCursor)
	})

	s.Run("error: invalid limit", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/histories?limit=zero", nil, "token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "")
	})

	s.Run("error: 401 without token", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/histories", nil, "")
		s.Equal(http.StatusUnauthorized, rec.Code)
	})
}

func (s *HistoryHandlerTestSuite) TestGet() {
	s.Run("success", func() {
		s.mockQueries.EXPECT().GetByID(gomock.Any(), s.actor, s.hb.ID).Return(s.hb.BuildDetailView(), nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/histories/"+s.hb.ID.String(), nil, "token")

		res := httptest.DecodeJSON[resdto.HistoryResponse](s.T(), rec)
		s.Equal(http.StatusOK, rec.Code)
		s.Equal("Agus Mekanik", res.KaryawanName)
		s.Len(res.Items, 2)
	})

	s.Run("error: malformed id", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/histories/not-a-uuid", nil, "token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "")
	})

	s.Run("error: unknown history", func() {
		s.mockQueries.EXPECT().GetByID(gomock.Any(), s.actor, s.hb.ID).Return(nil, shared.ErrHistoryNotFound)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/histories/"+s.hb.ID.String(), nil, "token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "history not found")
	})
}
