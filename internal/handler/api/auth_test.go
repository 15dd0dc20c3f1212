//go:build unit

package api_test

import (
	"errors"
	"net/http"
	"strings"
	"testing"

	"turnos-gateway/internal/domain/usuario"
	"turnos-gateway/internal/handler/api"
	resdto "turnos-gateway/internal/handler/dto/response"
	"turnos-gateway/internal/pkg/config"
	"turnos-gateway/internal/pkg/cookie"
	"turnos-gateway/internal/pkg/errs"
	"turnos-gateway/internal/usecase/commands"
	"turnos-gateway/tests/common/builder"
	"turnos-gateway/tests/common/httptest"
	"turnos-gateway/tests/common/testutil"
	commandsmock "turnos-gateway/tests/mock/commands"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type AuthHandlerTestSuite struct {
	suite.Suite
	router       *gin.Engine
	mockCtrl     *gomock.Controller
	mockCommands *commandsmock.MockAuthCommands
	handler      *api.AuthHandler
}

func (s *AuthHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockCommands = commandsmock.NewMockAuthCommands(s.mockCtrl)
	s.handler = api.NewAuthHandler(s.mockCommands, config.NewTestConfig())

	s.router.POST("/auth/login", s.handler.Login)
	s.router.POST("/auth/logout", s.handler.Logout)
	s.router.GET("/auth/me", func(c *gin.Context) {
		// Mock middleware behavior for /auth/me
		if authHeader := c.GetHeader("Authorization"); authHeader != "" {
			c.Set("session", builder.NewSessionBuilder().Build())
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

func (s *AuthHandlerTestSuite) TestLogin() {
	url := "/auth/login"

	reqBody := builder.NewAuthBuilder().BuildDTO()
	sesion := builder.NewSessionBuilder().Build()
	expectedToken := "test-jwt-token"

	s.Run("success: returns 200 OK and sets the session cookie", func() {
		s.mockCommands.EXPECT().Login(gomock.Any(), gomock.Any()).
			Return(&commands.LoginResult{Token: expectedToken, Sesion: sesion}, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "")

		var response resdto.LoginResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Equal(expectedToken, response.AccessToken)
		s.Equal(sesion.Cedula, response.Usuario.Cedula)
		s.Equal(string(sesion.Rol), response.Usuario.Rol)

		sessionCookie := httptest.ExtractCookie(rec, cookie.SessionCookieName)
		s.Require().NotNil(sessionCookie)
		s.Equal(expectedToken, sessionCookie.Value)
	})

	s.Run("error: 400 Bad Request on validation errors", func() {
		bound := []testCaseAuth{
			{name: "password boundary OK (8 chars)", mutate: testutil.Field("password", "abcd1234"), expectCode: http.StatusOK},
			{name: "password boundary invalid (7 chars)", mutate: testutil.Field("password", strings.Repeat("a", 7)), expectCode: http.StatusBadRequest},
		}

		missing := []testCaseAuth{
			{name: "missing field: username (required)", mutate: testutil.Field("username", nil), expectCode: http.StatusBadRequest},
			{name: "missing field: password (required)", mutate: testutil.Field("password", nil), expectCode: http.StatusBadRequest},
		}

		empty := []testCaseAuth{
			{name: "empty username", mutate: testutil.Field("username", ""), expectCode: http.StatusBadRequest},
			{name: "empty password", mutate: testutil.Field("password", ""), expectCode: http.StatusBadRequest},
		}

		allValidationTestCases := [][]testCaseAuth{bound, missing, empty}

		for _, testCaseGroup := range allValidationTestCases {
			for _, tc := range testCaseGroup {
				s.Run(tc.name, func() {
					requestMap := testutil.DtoMap(s.T(), reqBody, tc.mutate)

					if tc.expectCode == http.StatusOK {
						s.mockCommands.EXPECT().Login(gomock.Any(), gomock.Any()).
							Return(&commands.LoginResult{Token: expectedToken, Sesion: sesion}, nil)
					}
					rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, requestMap, "")
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
		testCases := []struct {
			name           string
			commandsError  error
			expectedStatus int
			expectedMsg    string
		}{
			{
				name:           "invalid credentials",
				commandsError:  errs.Mark(errs.New("backend returned 401"), commands.ErrCredencialesInvalidas),
				expectedStatus: http.StatusUnauthorized,
				expectedMsg:    "Invalid username or password",
			},
			{
				name:           "unknown role",
				commandsError:  commands.ErrRolDesconocido,
				expectedStatus: http.StatusForbidden,
				expectedMsg:    "Account has no recognized role",
			},
			{
				name:           "internal server error",
				commandsError:  errors.New("backend unreachable"),
				expectedStatus: http.StatusInternalServerError,
				expectedMsg:    "Internal server error",
			},
		}

		for _, tc := range testCases {
			s.Run(tc.name, func() {
				s.mockCommands.EXPECT().Login(gomock.Any(), gomock.Any()).
					Return(nil, tc.commandsError).Times(1)

				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "")
				httptest.AssertErrorResponse(s.T(), rec, tc.expectedStatus, tc.expectedMsg)
			})
		}
	})
}

func (s *AuthHandlerTestSuite) TestLogout() {
	s.Run("success: returns 204 No Content and clears the cookie", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/auth/logout", nil, "bearer-token")
		s.Equal(http.StatusNoContent, rec.Code)

		sessionCookie := httptest.ExtractCookie(rec, cookie.SessionCookieName)
		s.Require().NotNil(sessionCookie)
		s.Empty(sessionCookie.Value)
	})
}

func (s *AuthHandlerTestSuite) TestMe() {
	url := "/auth/me"

	s.Run("success: returns current session info", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "bearer-token")

		var response resdto.UsuarioInfo
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Equal("1712345678", response.Cedula)
		s.Equal(string(usuario.RolCliente), response.Rol)
	})

	s.Run("error: returns 401 when session missing in context", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusUnauthorized, "User not authenticated")
	})
}
