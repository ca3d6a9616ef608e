//go:build e2e

package booking_test

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"sort"
	"testing"
	"time"

	"bengkel-service/internal/domain/user"
	"bengkel-service/internal/handler/dto/request"
	resdto "bengkel-service/internal/handler/dto/response"
	"bengkel-service/tests/common/authtest"
	"bengkel-service/tests/common/builder"
	"bengkel-service/tests/common/dbtest"
	"bengkel-service/tests/common/httptest"
	"bengkel-service/tests/e2e"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"
	"golang.org/x/sync/errgroup"
)

const bookingsURL = "/api/bookings"

type bookingSuite struct {
	e2e.SharedSuite
	day string
}

func TestBookingSuite(t *testing.T) {
	t.Parallel()
	suite.Run(t, new(bookingSuite))
}

func (s *bookingSuite) SetupSuite() {
	s.SharedSuite.SetupSuite()
	// past dates are rejected, so every scenario books a week ahead
	s.day = time.Now().In(builder.Jakarta).AddDate(0, 0, 7).Format("2006-01-02")
}

func (s *bookingSuite) book(token, date string) (int, []byte) {
	rec := httptest.PerformRequest(s.T(), s.Router, http.MethodPost, bookingsURL,
		request.CreateBookingRequest{Date: date, Message: "Servis rutin"}, token)
	return rec.Code, rec.Body.Bytes()
}

func (s *bookingSuite) mustBook(token, date string) resdto.BookingResponse {
	rec := httptest.PerformRequest(s.T(), s.Router, http.MethodPost, bookingsURL,
		request.CreateBookingRequest{Date: date, Message: "Servis rutin"}, token)
	var res resdto.BookingResponse
	s.Require().True(httptest.AssertSuccessResponse(s.T(), rec, http.StatusCreated, &res), rec.Body.String())
	return res
}

func (s *bookingSuite) cancel(token string, id uuid.UUID) int {
	rec := httptest.PerformRequest(s.T(), s.Router, http.MethodPost, bookingsURL+"/"+id.String()+"/cancel", nil, token)
	return rec.Code
}

func (s *bookingSuite) createHistory(token string, bookingID uuid.UUID, body any) (int, resdto.HistoryResponse) {
	rec := httptest.PerformRequest(s.T(), s.Router, http.MethodPost, bookingsURL+"/"+bookingID.String()+"/history", body, token)
	var res resdto.HistoryResponse
	if rec.Code == http.StatusCreated {
		res = httptest.DecodeJSON[resdto.HistoryResponse](s.T(), rec)
	}
	return rec.Code, res
}

func (s *bookingSuite) countHistories(bookingID uuid.UUID) int {
	var n int
	err := s.DB.QueryRow(context.Background(), "SELECT COUNT(*) FROM histories WHERE booking_id = $1", bookingID).Scan(&n)
	s.Require().NoError(err)
	return n
}

func tuneUp() map[string]any {
	return map[string]any{"service_id": dbtest.ServiceTuneUpID.String()}
}

func (s *bookingSuite) TestQueueNumbering() {
	s.Run("numbers are contiguous from one per day", func() {
		for i := 1; i <= 3; i++ {
			_, token := authtest.CreateAndLogin(s.T(), s.DB, s.Router, fmt.Sprintf("c%d@example.com", i), string(user.RoleCustomer))
			res := s.mustBook(token, s.day)
			s.Equal(int32(i), res.QueueNumber)
			s.Equal("PENDING", res.Status)
			s.Equal(s.day, res.ServiceDate)
		}
	})

	s.Run("each day has its own sequence", func() {
		_, token := authtest.CreateAndLogin(s.T(), s.DB, s.Router, "a@example.com", string(user.RoleCustomer))
		next := time.Now().In(builder.Jakarta).AddDate(0, 0, 8).Format("2006-01-02")

		s.Equal(int32(1), s.mustBook(token, s.day).QueueNumber)
		s.Equal(int32(1), s.mustBook(token, next).QueueNumber)
	})

	s.Run("preview reports the next number without issuing it", func() {
		_, token := authtest.CreateAndLogin(s.T(), s.DB, s.Router, "a@example.com", string(user.RoleCustomer))
		s.mustBook(token, s.day)

		for range 2 {
			rec := httptest.PerformRequest(s.T(), s.Router, http.MethodGet, "/api/queue/next?date="+s.day, nil, token)
			res := httptest.DecodeJSON[resdto.QueuePreviewResponse](s.T(), rec)
			s.Equal(http.StatusOK, rec.Code)
			s.Equal(int32(1), res.Issued)
			s.Equal(int32(2), res.Next)
		}
	})

	s.Run("past date is rejected", func() {
		_, token := authtest.CreateAndLogin(s.T(), s.DB, s.Router, "a@example.com", string(user.RoleCustomer))
		past := time.Now().In(builder.Jakarta).AddDate(0, 0, -1).Format("2006-01-02")

		code, _ := s.book(token, past)
		s.Equal(http.StatusBadRequest, code)
	})

	s.Run("malformed date is rejected", func() {
		_, token := authtest.CreateAndLogin(s.T(), s.DB, s.Router, "a@example.com", string(user.RoleCustomer))
		code, _ := s.book(token, "10/03/2030")
		s.Equal(http.StatusBadRequest, code)
	})
}

func (s *bookingSuite) TestDuplicatePending() {
	s.Run("second pending booking on the same day is a conflict", func() {
		_, token := authtest.CreateAndLogin(s.T(), s.DB, s.Router, "a@example.com", string(user.RoleCustomer))
		s.mustBook(token, s.day)

		rec := httptest.PerformRequest(s.T(), s.Router, http.MethodPost, bookingsURL,
			request.CreateBookingRequest{Date: s.day, Message: "Servis rutin lagi"}, token)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusConflict, "pending booking")

		rec = httptest.PerformRequest(s.T(), s.Router, http.MethodGet, "/api/queue/next?date="+s.day, nil, token)
		stats := httptest.DecodeJSON[resdto.QueuePreviewResponse](s.T(), rec)
		s.Equal(int32(1), stats.Issued, "a rejected admission must not consume a number")
	})

	s.Run("concurrent duplicates admit exactly one", func() {
		_, token := authtest.CreateAndLogin(s.T(), s.DB, s.Router, "a@example.com", string(user.RoleCustomer))

		codes := make([]int, 5)
		var g errgroup.Group
		for i := range codes {
			g.Go(func() error {
				codes[i], _ = s.book(token, s.day)
				return nil
			})
		}
		s.Require().NoError(g.Wait())

		created := 0
		for _, c := range codes {
			if c == http.StatusCreated {
				created++
			} else {
				s.Equal(http.StatusConflict, c)
			}
		}
		s.Equal(1, created)
	})
}

func (s *bookingSuite) TestCancel() {
	s.Run("cancelled number is kept and never reused", func() {
		_, tokenA := authtest.CreateAndLogin(s.T(), s.DB, s.Router, "a@example.com", string(user.RoleCustomer))
		_, tokenB := authtest.CreateAndLogin(s.T(), s.DB, s.Router, "b@example.com", string(user.RoleCustomer))

		a := s.mustBook(tokenA, s.day)
		s.Equal(http.StatusOK, s.cancel(tokenA, a.ID))

		rec := httptest.PerformRequest(s.T(), s.Router, http.MethodGet, bookingsURL+"/"+a.ID.String(), nil, tokenA)
		got := httptest.DecodeJSON[resdto.BookingResponse](s.T(), rec)
		s.Equal("CANCELLED", got.Status)
		s.Equal(int32(1), got.QueueNumber)

		s.Equal(int32(2), s.mustBook(tokenB, s.day).QueueNumber)
	})

	s.Run("cancelling twice is an invalid transition", func() {
		_, token := authtest.CreateAndLogin(s.T(), s.DB, s.Router, "a@example.com", string(user.RoleCustomer))
		a := s.mustBook(token, s.day)

		s.Equal(http.StatusOK, s.cancel(token, a.ID))
		s.Equal(http.StatusConflict, s.cancel(token, a.ID))
	})

	s.Run("another customer cannot cancel", func() {
		_, tokenA := authtest.CreateAndLogin(s.T(), s.DB, s.Router, "a@example.com", string(user.RoleCustomer))
		_, tokenB := authtest.CreateAndLogin(s.T(), s.DB, s.Router, "b@example.com", string(user.RoleCustomer))
		a := s.mustBook(tokenA, s.day)

		s.Equal(http.StatusForbidden, s.cancel(tokenB, a.ID))
	})
}

func (s *bookingSuite) TestHistory() {
	s.Run("confirms the booking and records one history with the catalog price", func() {
		_, customer := authtest.CreateAndLogin(s.T(), s.DB, s.Router, "a@example.com", string(user.RoleCustomer))
		staffID, staff := authtest.CreateAndLogin(s.T(), s.DB, s.Router, "agus@example.com", string(user.RoleKaryawan))
		b := s.mustBook(customer, s.day)

		code, h := s.createHistory(staff, b.ID, tuneUp())
		s.Require().Equal(http.StatusCreated, code)
		s.True(decimal.NewFromInt(150000).Equal(h.Total))
		s.Equal(staffID, h.KaryawanID)
		s.Equal("PENDING", h.Status)
		s.Require().Len(h.Items, 1)
		s.Equal("Tune up", h.Items[0].Name)

		rec := httptest.PerformRequest(s.T(), s.Router, http.MethodGet, bookingsURL+"/"+b.ID.String(), nil, customer)
		got := httptest.DecodeJSON[resdto.BookingResponse](s.T(), rec)
		s.Equal("CONFIRMED", got.Status)
		s.Require().NotNil(got.HistoryID)
		s.Equal(h.ID, *got.HistoryID)
		s.Equal(1, s.countHistories(b.ID))
	})

	s.Run("items list sums every line", func() {
		_, customer := authtest.CreateAndLogin(s.T(), s.DB, s.Router, "a@example.com", string(user.RoleCustomer))
		_, staff := authtest.CreateAndLogin(s.T(), s.DB, s.Router, "agus@example.com", string(user.RoleKaryawan))
		b := s.mustBook(customer, s.day)

		code, h := s.createHistory(staff, b.ID, map[string]any{
			"items": []map[string]any{
				{"service_id": dbtest.ServiceTuneUpID.String()},
				{"sparepart_id": dbtest.SparepartOilID.String(), "quantity": 3},
			},
		})
		s.Require().Equal(http.StatusCreated, code)
		s.True(decimal.NewFromInt(300000).Equal(h.Total), h.Total.String())
		s.Len(h.Items, 2)
	})

	s.Run("second history for the same booking is a conflict and writes nothing", func() {
		_, customer := authtest.CreateAndLogin(s.T(), s.DB, s.Router, "a@example.com", string(user.RoleCustomer))
		_, staff := authtest.CreateAndLogin(s.T(), s.DB, s.Router, "agus@example.com", string(user.RoleKaryawan))
		b := s.mustBook(customer, s.day)

		code, _ := s.createHistory(staff, b.ID, tuneUp())
		s.Require().Equal(http.StatusCreated, code)

		code, _ = s.createHistory(staff, b.ID, tuneUp())
		s.Equal(http.StatusConflict, code)
		s.Equal(1, s.countHistories(b.ID))
	})

	s.Run("cancelled booking cannot get a history", func() {
		_, customer := authtest.CreateAndLogin(s.T(), s.DB, s.Router, "a@example.com", string(user.RoleCustomer))
		_, staff := authtest.CreateAndLogin(s.T(), s.DB, s.Router, "agus@example.com", string(user.RoleKaryawan))
		b := s.mustBook(customer, s.day)
		s.Require().Equal(http.StatusOK, s.cancel(customer, b.ID))

		code, _ := s.createHistory(staff, b.ID, tuneUp())
		s.Equal(http.StatusConflict, code)
		s.Equal(0, s.countHistories(b.ID))
	})

	s.Run("unknown catalog item rolls the booking back to pending", func() {
		_, customer := authtest.CreateAndLogin(s.T(), s.DB, s.Router, "a@example.com", string(user.RoleCustomer))
		_, staff := authtest.CreateAndLogin(s.T(), s.DB, s.Router, "agus@example.com", string(user.RoleKaryawan))
		b := s.mustBook(customer, s.day)

		code, _ := s.createHistory(staff, b.ID, map[string]any{"service_id": uuid.NewString()})
		s.Equal(http.StatusNotFound, code)

		rec := httptest.PerformRequest(s.T(), s.Router, http.MethodGet, bookingsURL+"/"+b.ID.String(), nil, customer)
		got := httptest.DecodeJSON[resdto.BookingResponse](s.T(), rec)
		s.Equal("PENDING", got.Status)
		s.Equal(0, s.countHistories(b.ID))
	})

	s.Run("customer cannot create a history", func() {
		_, customer := authtest.CreateAndLogin(s.T(), s.DB, s.Router, "a@example.com", string(user.RoleCustomer))
		b := s.mustBook(customer, s.day)

		code, _ := s.createHistory(customer, b.ID, tuneUp())
		s.Equal(http.StatusForbidden, code)
	})

	s.Run("invoice renders the recorded lines", func() {
		_, customer := authtest.CreateAndLogin(s.T(), s.DB, s.Router, "a@example.com", string(user.RoleCustomer))
		_, staff := authtest.CreateAndLogin(s.T(), s.DB, s.Router, "agus@example.com", string(user.RoleKaryawan))
		b := s.mustBook(customer, s.day)
		code, h := s.createHistory(staff, b.ID, tuneUp())
		s.Require().Equal(http.StatusCreated, code)

		rec := httptest.PerformRequest(s.T(), s.Router, http.MethodGet, "/api/histories/"+h.ID.String()+"/invoice", nil, customer)
		inv := httptest.DecodeJSON[resdto.InvoiceResponse](s.T(), rec)
		s.Equal(http.StatusOK, rec.Code)
		s.Equal("Rp 150.000", inv.TotalText)
		s.Equal(int(b.QueueNumber), inv.QueueNumber)

		rec = httptest.PerformRequest(s.T(), s.Router, http.MethodGet, "/api/histories/"+h.ID.String()+"/invoice?format=text", nil, customer)
		s.Equal(http.StatusOK, rec.Code)
		s.Contains(rec.Body.String(), "Tune up")
	})
}

func (s *bookingSuite) TestDayScenario() {
	s.Run("two customers, one cancellation, one service", func() {
		_, tokenA := authtest.CreateAndLogin(s.T(), s.DB, s.Router, "a@example.com", string(user.RoleCustomer))
		_, tokenB := authtest.CreateAndLogin(s.T(), s.DB, s.Router, "b@example.com", string(user.RoleCustomer))
		_, staff := authtest.CreateAndLogin(s.T(), s.DB, s.Router, "agus@example.com", string(user.RoleKaryawan))

		a := s.mustBook(tokenA, s.day)
		b := s.mustBook(tokenB, s.day)
		s.Equal(int32(1), a.QueueNumber)
		s.Equal(int32(2), b.QueueNumber)

		s.Require().Equal(http.StatusOK, s.cancel(tokenA, a.ID))

		code, h := s.createHistory(staff, b.ID, tuneUp())
		s.Require().Equal(http.StatusCreated, code)
		s.True(decimal.NewFromInt(150000).Equal(h.Total))

		again := s.mustBook(tokenA, s.day)
		s.Equal(int32(3), again.QueueNumber)

		rec := httptest.PerformRequest(s.T(), s.Router, http.MethodGet, bookingsURL+"/day?date="+s.day, nil, staff)
		day := httptest.DecodeJSON[[]resdto.BookingResponse](s.T(), rec)
		s.Equal(http.StatusOK, rec.Code)

		statuses := map[int32]string{}
		for _, row := range day {
			statuses[row.QueueNumber] = row.Status
		}
		s.Equal(map[int32]string{1: "CANCELLED", 2: "CONFIRMED", 3: "PENDING"}, statuses)
	})
}

func (s *bookingSuite) TestConcurrentAdmissions() {
	s.Run("simultaneous customers get distinct contiguous numbers", func() {
		const customers = 12

		tokens := make([]string, customers)
		for i := range tokens {
			_, tokens[i] = authtest.CreateAndLogin(s.T(), s.DB, s.Router, fmt.Sprintf("rush%d@example.com", i), string(user.RoleCustomer))
		}

		numbers := make([]int32, customers)
		var g errgroup.Group
		for i, token := range tokens {
			g.Go(func() error {
				code, body := s.book(token, s.day)
				if code != http.StatusCreated {
					return fmt.Errorf("customer %d: status %d: %s", i, code, body)
				}
				var b resdto.BookingResponse
				if err := json.Unmarshal(body, &b); err != nil {
					return err
				}
				numbers[i] = b.QueueNumber
				return nil
			})
		}
		s.Require().NoError(g.Wait())

		sort.Slice(numbers, func(i, j int) bool { return numbers[i] < numbers[j] })
		for i, n := range numbers {
			s.Equal(int32(i+1), n)
		}
	})
}
