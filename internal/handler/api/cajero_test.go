//go:build unit

package api_test

import (
	"errors"
	"net/http"
	"testing"
	"time"

	"turnos-gateway/internal/domain/usuario"
	"turnos-gateway/internal/handler/api"
	resdto "turnos-gateway/internal/handler/dto/response"
	"turnos-gateway/internal/pkg/clock"
	"turnos-gateway/internal/pkg/errs"
	"turnos-gateway/internal/usecase/commands"
	"turnos-gateway/internal/usecase/queries"
	"turnos-gateway/tests/common/builder"
	"turnos-gateway/tests/common/httptest"
	"turnos-gateway/tests/common/testutil"
	commandsmock "turnos-gateway/tests/mock/commands"
	queriesmock "turnos-gateway/tests/mock/queries"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type CajeroHandlerTestSuite struct {
	suite.Suite
	router       *gin.Engine
	mockCtrl     *gomock.Controller
	mockCommands *commandsmock.MockCheckoutCommands
	mockQueries  *queriesmock.MockFacturaQueries
	handler      *api.CajeroHandler
}

func (s *CajeroHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockCommands = commandsmock.NewMockCheckoutCommands(s.mockCtrl)
	s.mockQueries = queriesmock.NewMockFacturaQueries(s.mockCtrl)

	loc := time.FixedZone("America/Guayaquil", -5*60*60)
	clk := clock.NewMockClock(time.Date(2025, 6, 15, 14, 0, 0, 0, loc))
	s.handler = api.NewCajeroHandler(s.mockCommands, s.mockQueries, clk, loc)

	// Mock middleware behavior: a bearer header means an authenticated cajero
	withSession := func(c *gin.Context) {
		if c.GetHeader("Authorization") != "" {
			c.Set("session", builder.NewSessionBuilder().WithRol(usuario.RolCajero).Build())
		}
	}
	s.router.POST("/cajero/facturas", withSession, s.handler.CrearFactura)
	s.router.GET("/cajero/facturas", withSession, s.handler.FacturasPorDia)
}

func (s *CajeroHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestCajeroHandlerSuite(t *testing.T) {
	suite.Run(t, new(CajeroHandlerTestSuite))
}

func (s *CajeroHandlerTestSuite) TestCrearFactura() {
	url := "/cajero/facturas"

	reqBody := builder.NewFacturaBuilder().BuildCrearDTO()
	creada := builder.NewFacturaBuilder().Build()

	s.Run("success: returns 201 Created with the backend invoice", func() {
		s.mockCommands.EXPECT().CrearFactura(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(&commands.CheckoutResult{
				Factura:       &creada,
				TotalEstimado: decimal.NewFromFloat(3.00),
			}, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "bearer-token")

		var response resdto.FacturaCreadaResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusCreated, &response)
		s.Equal(creada.Codigo, response.Factura.Codigo)
		s.Equal(creada.CedulaCliente, response.Factura.CedulaCliente)
		s.True(response.TotalEstimado.Equal(decimal.NewFromFloat(3.00)))
	})

	s.Run("error: 400 Bad Request on validation errors", func() {
		testCases := []struct {
			name   string
			mutate func(m map[string]any)
		}{
			{name: "missing cedula_cliente", mutate: testutil.Field("cedula_cliente", nil)},
			{name: "cedula_cliente too short", mutate: testutil.Field("cedula_cliente", "12345")},
			{name: "missing items", mutate: testutil.Field("items", nil)},
			{name: "empty items", mutate: testutil.Field("items", []any{})},
		}

		for _, tc := range testCases {
			s.Run(tc.name, func() {
				requestMap := testutil.DtoMap(s.T(), reqBody, tc.mutate)

				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, requestMap, "bearer-token")
				httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "")
			})
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
				name:           "empty cart",
				commandsError:  errs.Mark(errs.New("no lineas in cart"), errs.ErrCarritoVacio),
				expectedStatus: http.StatusBadRequest,
				expectedMsg:    "Cart is empty",
			},
			{
				name:           "unknown producto",
				commandsError:  errs.Mark(errs.New("producto 99 not in catalog"), errs.ErrProductoNotFound),
				expectedStatus: http.StatusNotFound,
				expectedMsg:    "Unknown producto",
			},
			{
				name:           "invalid cart data",
				commandsError:  errs.Mark(errs.New("cantidad must be positive"), errs.ErrDomainValidation),
				expectedStatus: http.StatusUnprocessableEntity,
				expectedMsg:    "Invalid cart data",
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
				s.mockCommands.EXPECT().CrearFactura(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(nil, tc.commandsError).Times(1)

				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "bearer-token")
				httptest.AssertErrorResponse(s.T(), rec, tc.expectedStatus, tc.expectedMsg)
			})
		}
	})
}

func (s *CajeroHandlerTestSuite) TestFacturasPorDia() {
	url := "/cajero/facturas"

	views := []queries.FacturaView{
		{ID: 7, Codigo: "FAC-0007", CedulaCliente: "1712345678", Cajero: "jperez"},
	}

	s.Run("success: explicit dia is parsed in the gateway timezone", func() {
		s.mockQueries.EXPECT().ListarPorDia(gomock.Any(), gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ any, _ any, dia time.Time) ([]queries.FacturaView, error) {
				s.Equal(2025, dia.Year())
				s.Equal(time.June, dia.Month())
				s.Equal(14, dia.Day())
				s.Equal("America/Guayaquil", dia.Location().String())
				return views, nil
			}).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url+"?dia=2025-06-14", nil, "bearer-token")

		var response []queries.FacturaView
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Require().Len(response, 1)
		s.Equal("FAC-0007", response[0].Codigo)
	})

	s.Run("success: missing dia defaults to today", func() {
		s.mockQueries.EXPECT().ListarPorDia(gomock.Any(), gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ any, _ any, dia time.Time) ([]queries.FacturaView, error) {
				s.Equal(15, dia.Day())
				return views, nil
			}).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "bearer-token")
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, nil)
	})

	s.Run("error: 400 Bad Request on a malformed dia", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url+"?dia=15-06-2025", nil, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid dia format")
	})

	s.Run("error: 403 Forbidden for an insufficient role", func() {
		s.mockQueries.EXPECT().ListarPorDia(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(nil, errs.ErrRolInsuficiente).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusForbidden, "Insufficient permissions")
	})

	s.Run("error: 502 when the backend cannot be read", func() {
		s.mockQueries.EXPECT().ListarPorDia(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(nil, errors.New("backend unreachable")).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadGateway, "Backend unavailable")
	})
}
