//go:build e2e

package auth_test

import (
	"net/http"
	"testing"

	"bengkel-service/internal/domain/user"
	"bengkel-service/internal/handler/dto/request"
	resdto "bengkel-service/internal/handler/dto/response"
	"bengkel-service/tests/common/authtest"
	"bengkel-service/tests/common/dbtest"
	"bengkel-service/tests/common/httptest"
	"bengkel-service/tests/e2e"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
)

const (
	registerURL = "/api/auth/register"
	loginURL    = "/api/auth/login"
	logoutURL   = "/api/auth/logout"
	meURL       = "/api/auth/me"
)

type authSuite struct {
	e2e.SharedSuite
	jwt *authtest.JWTHelper
}

func TestAuthSuite(t *testing.T) {
	t.Parallel()
	suite.Run(t, new(authSuite))
}

func (s *authSuite) SetupSuite() {
	s.SharedSuite.SetupSuite()
	s.jwt = authtest.NewJWTHelper(s.Config.JWT)
}

func (s *authSuite) SetupSubTest() {
	s.SharedSuite.SetupSubTest()

	dbtest.CreateTestUser(s.T(), s.DB, "budi@example.com", string(user.RoleCustomer))
	dbtest.CreateTestUser(s.T(), s.DB, "agus@example.com", string(user.RoleKaryawan))
	dbtest.CreateTestUser(s.T(), s.DB, "admin@example.com", string(user.RoleAdmin))
	dbtest.CreateTestUser(s.T(), s.DB, "dormant@example.com", string(user.RoleCustomer))

	_, err := s.DB.Exec(s.T().Context(), "UPDATE users SET is_active = false WHERE email = 'dormant@example.com'")
	s.Require().NoError(err)
}

func (s *authSuite) TestRegister() {
	s.Run("new account is a customer and can log in", func() {
		body := request.RegisterRequest{Name: "Siti Rahma", Email: "siti@example.com", Password: "rahasia123"}

		rec := httptest.PerformRequest(s.T(), s.Router, http.MethodPost, registerURL, body, "")

		var res resdto.UserResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusCreated, &res)
		s.Equal("siti@example.com", res.Email)
		s.Equal(string(user.RoleCustomer), res.Role)
		s.True(res.IsActive)

		token := authtest.LoginUser(s.T(), s.Router, "siti@example.com", "rahasia123")
		s.NotEmpty(token)
	})

	s.Run("email is matched case-insensitively", func() {
		body := request.RegisterRequest{Name: "Budi Lagi", Email: "BUDI@example.com", Password: "password123"}

		rec := httptest.PerformRequest(s.T(), s.Router, http.MethodPost, registerURL, body, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "already registered")
	})

	s.Run("short password is rejected", func() {
		body := request.RegisterRequest{Name: "Siti Rahma", Email: "siti@example.com", Password: "pendek"}

		rec := httptest.PerformRequest(s.T(), s.Router, http.MethodPost, registerURL, body, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "")
	})
}

func (s *authSuite) TestLogin() {
	cases := []struct {
		name           string
		email          string
		password       string
		expectedStatus int
	}{
		{name: "customer", email: "budi@example.com", password: "password123", expectedStatus: http.StatusOK},
		{name: "karyawan", email: "agus@example.com", password: "password123", expectedStatus: http.StatusOK},
		{name: "admin", email: "admin@example.com", password: "password123", expectedStatus: http.StatusOK},
		{name: "unknown email", email: "nobody@example.com", password: "password123", expectedStatus: http.StatusUnauthorized},
		{name: "wrong password", email: "budi@example.com", password: "password321", expectedStatus: http.StatusUnauthorized},
		{name: "inactive account", email: "dormant@example.com", password: "password123", expectedStatus: http.StatusUnauthorized},
		{name: "malformed email", email: "budi-at-example", password: "password123", expectedStatus: http.StatusBadRequest},
	}

	for _, tc := range cases {
		s.Run(tc.name, func() {
			rec := httptest.PerformRequest(s.T(), s.Router, http.MethodPost, loginURL,
				request.LoginRequest{Email: tc.email, Password: tc.password}, "")

			if tc.expectedStatus != http.StatusOK {
				httptest.AssertErrorResponse(s.T(), rec, tc.expectedStatus, "")
				s.Nil(httptest.ExtractCookie(rec, "access_token"))
				return
			}

			var res resdto.LoginResponse
			httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &res)
			s.NotEmpty(res.AccessToken)
			s.Equal(tc.email, res.User.Email)
			s.NotNil(res.User.LastLoginAt)

			c := httptest.ExtractCookie(rec, "access_token")
			s.Require().NotNil(c)
			s.Equal(res.AccessToken, c.Value)
		})
	}
}

func (s *authSuite) TestMe() {
	s.Run("bearer token", func() {
		id, token := authtest.CreateAndLogin(s.T(), s.DB, s.Router, "wati@example.com", string(user.RoleKaryawan))

		rec := httptest.PerformRequest(s.T(), s.Router, http.MethodGet, meURL, nil, token)

		res := httptest.DecodeJSON[resdto.UserResponse](s.T(), rec)
		s.Equal(http.StatusOK, rec.Code)
		s.Equal(id, res.ID)
		s.Equal(string(user.RoleKaryawan), res.Role)
	})

	s.Run("cookie from login", func() {
		rec := httptest.PerformRequest(s.T(), s.Router, http.MethodPost, loginURL,
			request.LoginRequest{Email: "budi@example.com", Password: "password123"}, "")
		s.Require().Equal(http.StatusOK, rec.Code)

		me := httptest.PerformRequestWithCookies(s.T(), s.Router, http.MethodGet, meURL, nil, rec.Result().Cookies(), "")
		s.Equal(http.StatusOK, me.Code)
	})

	s.Run("missing token", func() {
		rec := httptest.PerformRequest(s.T(), s.Router, http.MethodGet, meURL, nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusUnauthorized, "token required")
	})

	s.Run("expired token", func() {
		token := s.jwt.CreateExpiredToken(s.T(), uuid.New(), user.RoleCustomer)

		rec := httptest.PerformRequest(s.T(), s.Router, http.MethodGet, meURL, nil, token)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusUnauthorized, "expired")
	})

	s.Run("token signed for a user deactivated afterwards", func() {
		id, token := authtest.CreateAndLogin(s.T(), s.DB, s.Router, "later@example.com", string(user.RoleCustomer))
		_, err := s.DB.Exec(s.T().Context(), "UPDATE users SET is_active = false WHERE id = $1", id)
		s.Require().NoError(err)

		rec := httptest.PerformRequest(s.T(), s.Router, http.MethodGet, meURL, nil, token)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusUnauthorized, "inactive")
	})

	s.Run("tampered token", func() {
		token := s.jwt.GenerateToken(s.T(), uuid.New(), user.RoleAdmin) + "x"

		rec := httptest.PerformRequest(s.T(), s.Router, http.MethodGet, meURL, nil, token)
		s.Equal(http.StatusUnauthorized, rec.Code)
	})
}

func (s *authSuite) TestLogout() {
	rec := httptest.PerformRequest(s.T(), s.Router, http.MethodPost, loginURL,
		request.LoginRequest{Email: "budi@example.com", Password: "password123"}, "")
	s.Require().Equal(http.StatusOK, rec.Code)

	out := httptest.PerformRequestWithCookies(s.T(), s.Router, http.MethodPost, logoutURL, nil, rec.Result().Cookies(), "")
	s.Equal(http.StatusNoContent, out.Code)

	cleared := httptest.ExtractCookie(out, "access_token")
	s.Require().NotNil(cleared)
	s.Empty(cleared.Value)
	s.Less(cleared.MaxAge, 0)
}

func (s *authSuite) TestRoleGates() {
	s.Run("customer cannot list a day's bookings", func() {
		_, token := authtest.CreateAndLogin(s.T(), s.DB, s.Router, "cust@example.com", string(user.RoleCustomer))

		rec := httptest.PerformRequest(s.T(), s.Router, http.MethodGet, "/api/bookings/day?date=2030-01-02", nil, token)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusForbidden, "")
	})

	s.Run("karyawan cannot manage the catalog", func() {
		_, token := authtest.CreateAndLogin(s.T(), s.DB, s.Router, "staff@example.com", string(user.RoleKaryawan))

		rec := httptest.PerformRequest(s.T(), s.Router, http.MethodPost, "/api/catalog/services",
			map[string]any{"name": "Spooring", "price": "100000"}, token)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusForbidden, "")
	})
}
