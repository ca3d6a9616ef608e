//go:build unit

package api_test

import (
	"errors"
	"net/http"
	"strings"
	"testing"
	"time"

	"bengkel-service/internal/handler/api"
	resdto "bengkel-service/internal/handler/dto/response"
	"bengkel-service/internal/pkg/config"
	"bengkel-service/internal/usecase/commands"
	"bengkel-service/internal/usecase/queries"
	"bengkel-service/tests/common/builder"
	"bengkel-service/tests/common/httptest"
	"bengkel-service/tests/common/testutil"
	commandsmock "bengkel-service/tests/mock/commands"
	queriesmock "bengkel-service/tests/mock/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type AuthHandlerTestSuite struct {
	suite.Suite
	router       *gin.Engine
	mockCtrl     *gomock.Controller
	mockCommands *commandsmock.MockAuthCommands
	mockQueries  *queriesmock.MockUserQueries
	handler      *api.AuthHandler
}

func (s *AuthHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockCommands = commandsmock.NewMockAuthCommands(s.mockCtrl)
	s.mockQueries = queriesmock.NewMockUserQueries(s.mockCtrl)
	s.handler = api.NewAuthHandler(s.mockCommands, s.mockQueries, config.NewTestConfig())

	s.router.POST("/auth/register", s.handler.Register)
	s.router.POST("/auth/login", s.handler.Login)
	s.router.POST("/auth/logout", s.handler.Logout)
	s.router.GET("/auth/me", func(c *gin.Context) {
		// stands in for RequireAuth
		if c.GetHeader("Authorization") != "" {
			c.Set("user_id", uuid.New())
		}
		s.handler.Me(c)
	})
}

func (s *AuthHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestAuthHandlerSuite(t *testing.T) {
	suite.Run(t, new(AuthHandlerTestSuite))
}

type testCaseAuth struct {
	name       string
	mutate     func(m map[string]any)
	expectCode int
}

func (s *AuthHandlerTestSuite) loginResult(view *queries.AuthorizedUserView) *commands.LoginResult {
	u, err := builder.NewUserBuilder().With(func(b *builder.UserBuilder) { b.ID = view.ID }).BuildDomain()
	s.Require().NoError(err)
	return &commands.LoginResult{
		User:        u,
		AccessToken: "test-jwt-token",
		ExpiresAt:   time.Now().Add(time.Hour),
	}
}

func (s *AuthHandlerTestSuite) TestRegister() {
	url := "/auth/register"
	reqBody := builder.NewAuthBuilder().BuildRegisterDTO()
	view := builder.NewUserBuilder().BuildReadModel()

	s.Run("success: returns 201 with the new customer", func() {
		u, err := builder.NewUserBuilder().With(func(b *builder.UserBuilder) { b.ID = view.ID }).BuildDomain()
		s.Require().NoError(err)
		s.mockCommands.EXPECT().Register(gomock.Any(), builder.NewAuthBuilder().BuildRegisterInput()).Return(u, nil)
		s.mockQueries.EXPECT().GetCurrentUser(gomock.Any(), view.ID).Return(view, nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "")

		var res resdto.UserResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusCreated, &res)
		s.Equal(view.Email, res.Email)
		s.Equal("CUSTOMER", res.Role)
	})

	s.Run("error: 400 Bad Request on binding errors", func() {
		cases := []testCaseAuth{
			{name: "missing name", mutate: testutil.Field("name", nil), expectCode: http.StatusBadRequest},
			{name: "one character name", mutate: testutil.Field("name", "B"), expectCode: http.StatusBadRequest},
			{name: "invalid email", mutate: testutil.Field("email", "budi-at-example"), expectCode: http.StatusBadRequest},
			{name: "seven character password", mutate: testutil.Field("password", strings.Repeat("a", 7)), expectCode: http.StatusBadRequest},
		}
		for _, tc := range cases {
			s.Run(tc.name, func() {
				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, testutil.DtoMap(s.T(), reqBody, tc.mutate), "")
				httptest.AssertErrorResponse(s.T(), rec, tc.expectCode, "")
			})
		}
	})

	s.Run("error: taken email is a 400 with its reason", func() {
		s.mockCommands.EXPECT().Register(gomock.Any(), gomock.Any()).Return(nil, commands.ErrEmailTaken)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "already registered")
	})
}

func (s *AuthHandlerTestSuite) TestLogin() {
	url := "/auth/login"
	reqBody := builder.NewAuthBuilder().BuildDTO()
	view := builder.NewUserBuilder().BuildReadModel()

	s.Run("success: returns 200 and sets the access token cookie", func() {
		s.mockCommands.EXPECT().Login(gomock.Any(), builder.NewAuthBuilder().BuildInput()).Return(s.loginResult(view), nil)
		s.mockQueries.EXPECT().GetCurrentUser(gomock.Any(), view.ID).Return(view, nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "")

		var res resdto.LoginResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &res)
		s.Equal("test-jwt-token", res.AccessToken)
		s.Equal(view.Email, res.User.Email)

		c := httptest.ExtractCookie(rec, "access_token")
		s.Require().NotNil(c)
		s.Equal("test-jwt-token", c.Value)
		s.True(c.HttpOnly)
	})

	s.Run("error: 400 Bad Request on validation errors", func() {
		bound := []testCaseAuth{
			{name: "password boundary OK (8 chars)", mutate: testutil.Field("password", "password"), expectCode: http.StatusOK},
			{name: "password boundary invalid (7 chars)", mutate: testutil.Field("password", strings.Repeat("a", 7)), expectCode: http.StatusBadRequest},
			{name: "invalid email", mutate: testutil.Field("email", "invalid-email"), expectCode: http.StatusBadRequest},
		}
		missing := []testCaseAuth{
			{name: "missing field: email", mutate: testutil.Field("email", nil), expectCode: http.StatusBadRequest},
			{name: "missing field: password", mutate: testutil.Field("password", nil), expectCode: http.StatusBadRequest},
		}
		empty := []testCaseAuth{
			{name: "empty email", mutate: testutil.Field("email", ""), expectCode: http.StatusBadRequest},
			{name: "empty password", mutate: testutil.Field("password", ""), expectCode: http.StatusBadRequest},
		}

		for _, group := range [][]testCaseAuth{bound, missing, empty} {
			for _, tc := range group {
				s.Run(tc.name, func() {
					if tc.expectCode == http.StatusOK {
						s.mockCommands.EXPECT().Login(gomock.Any(), gomock.Any()).Return(s.loginResult(view), nil)
						s.mockQueries.EXPECT().GetCurrentUser(gomock.Any(), view.ID).Return(view, nil)
					}
					rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, testutil.DtoMap(s.T(), reqBody, tc.mutate), "")
					if tc.expectCode == http.StatusOK {
						httptest.AssertSuccessResponse(s.T(), rec, tc.expectCode, nil)
					} else {
						httptest.AssertErrorResponse(s.T(), rec, tc.expectCode, "")
					}
				})
			}
		}
	})

	s.Run("error: maps usecase errors to proper statuses", func() {
		cases := []struct {
			name           string
			err            error
			expectedStatus int
			expectedMsg    string
		}{
			{name: "wrong credentials", err: commands.ErrInvalidCredentials, expectedStatus: http.StatusUnauthorized, expectedMsg: "invalid email or password"},
			{name: "inactive account", err: commands.ErrUserInactive, expectedStatus: http.StatusUnauthorized, expectedMsg: "inactive"},
			{name: "infrastructure failure", err: errors.New("connection reset"), expectedStatus: http.StatusInternalServerError, expectedMsg: "Internal server error"},
		}
		for _, tc := range cases {
			s.Run(tc.name, func() {
				s.mockCommands.EXPECT().Login(gomock.Any(), gomock.Any()).Return(nil, tc.err)

				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "")
				httptest.AssertErrorResponse(s.T(), rec, tc.expectedStatus, tc.expectedMsg)
			})
		}
	})
}

func (s *AuthHandlerTestSuite) TestLogout() {
	rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/auth/logout", nil, "")
	s.Equal(http.StatusNoContent, rec.Code)

	c := httptest.ExtractCookie(rec, "access_token")
	s.Require().NotNil(c)
	s.Empty(c.Value)
	s.Less(c.MaxAge, 0)
}

func (s *AuthHandlerTestSuite) TestMe() {
	view := builder.NewUserBuilder().WithRole("KARYAWAN").BuildReadModel()

	s.Run("success: returns the current user", func() {
		s.mockQueries.EXPECT().GetCurrentUser(gomock.Any(), gomock.Any()).Return(view, nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/auth/me", nil, "token")

		res := httptest.DecodeJSON[resdto.UserResponse](s.T(), rec)
		s.Equal(http.StatusOK, rec.Code)
		s.Equal("KARYAWAN", res.Role)
	})

	s.Run("error: 401 without an authenticated caller", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/auth/me", nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusUnauthorized, "Unauthorized")
	})

	s.Run("error: inactive user", func() {
		s.mockQueries.EXPECT().GetCurrentUser(gomock.Any(), gomock.Any()).Return(nil, queries.ErrUserInactive)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/auth/me", nil, "token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusUnauthorized, "inactive")
	})
}
