//go:build unit

package queries_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"turnos-gateway/internal/domain/turno"
	"turnos-gateway/internal/pkg/clock"
	"turnos-gateway/internal/usecase/queries"
	"turnos-gateway/tests/common/builder"
	queriesmock "turnos-gateway/tests/mock/queries"

	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type TurnoQueriesTestSuite struct {
	suite.Suite
	mockCtrl *gomock.Controller
	mockPort *queriesmock.MockTurnosReadPort
	queries  queries.TurnoQueries
}

func (s *TurnoQueriesTestSuite) SetupTest() {
	s.mockCtrl = gomock.NewController(s.T())
	s.mockPort = queriesmock.NewMockTurnosReadPort(s.mockCtrl)
	clk := clock.NewMockClock(time.Date(2025, 6, 15, 9, 30, 0, 0, time.UTC))
	s.queries = queries.NewTurnoQueries(s.mockPort, clk)
}

func (s *TurnoQueriesTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestTurnoQueriesSuite(t *testing.T) {
	suite.Run(t, new(TurnoQueriesTestSuite))
}

func (s *TurnoQueriesTestSuite) TestEstadoTurno() {
	sess := builder.NewSessionBuilder().Build()
	propio := builder.NewTurnoBuilder().Build()

	s.Run("waiting turno reports its queue position", func() {
		cola := turno.Cola{Turnos: []turno.ResumenTurno{
			{ID: 40, Codigo: "F-040", Servicio: "farmacia"},
			{ID: 41, Codigo: "F-041", Servicio: "consulta"},
			{ID: propio.ID, Codigo: propio.Codigo, Servicio: propio.Servicio},
		}}
		actual := &turno.TurnoActual{ID: 40, Codigo: "F-040", Caja: "caja 1"}

		s.mockPort.EXPECT().TurnoActivoCliente(gomock.Any(), sess.BackendToken, sess.Cedula).
			Return(true, &propio, nil)
		s.mockPort.EXPECT().TurnoActualGlobal(gomock.Any(), sess.BackendToken).
			Return(actual, nil)
		s.mockPort.EXPECT().ColaTurnos(gomock.Any(), sess.BackendToken).
			Return(cola, nil)

		view, err := s.queries.EstadoTurno(context.Background(), sess)

		s.Require().NoError(err)
		s.True(view.TieneTurno)
		s.Equal("en_espera", view.Fase)
		s.Equal(2, view.Posicion)
		s.Require().NotNil(view.Actual)
		s.Equal("F-040", view.Actual.Codigo)
		s.Len(view.Cola, 3)
	})

	s.Run("turno at the front is proximo", func() {
		cola := turno.Cola{Turnos: []turno.ResumenTurno{
			{ID: propio.ID, Codigo: propio.Codigo, Servicio: propio.Servicio},
		}}

		s.mockPort.EXPECT().TurnoActivoCliente(gomock.Any(), sess.BackendToken, sess.Cedula).
			Return(true, &propio, nil)
		s.mockPort.EXPECT().TurnoActualGlobal(gomock.Any(), sess.BackendToken).
			Return(nil, nil)
		s.mockPort.EXPECT().ColaTurnos(gomock.Any(), sess.BackendToken).
			Return(cola, nil)

		view, err := s.queries.EstadoTurno(context.Background(), sess)

		s.Require().NoError(err)
		s.Equal("proximo", view.Fase)
		s.Equal(0, view.Posicion)
	})

	s.Run("being served reports en_atencion", func() {
		servido := builder.NewTurnoBuilder().WithEstado(turno.EstadoEnAtencion).WithCaja("caja 2").Build()

		s.mockPort.EXPECT().TurnoActivoCliente(gomock.Any(), sess.BackendToken, sess.Cedula).
			Return(true, &servido, nil)
		s.mockPort.EXPECT().TurnoActualGlobal(gomock.Any(), sess.BackendToken).
			Return(&turno.TurnoActual{ID: servido.ID, Codigo: servido.Codigo, Caja: "caja 2"}, nil)
		s.mockPort.EXPECT().ColaTurnos(gomock.Any(), sess.BackendToken).
			Return(turno.Cola{}, nil)

		view, err := s.queries.EstadoTurno(context.Background(), sess)

		s.Require().NoError(err)
		s.Equal("en_atencion", view.Fase)
	})

	s.Run("no active turno skips the remaining reads", func() {
		s.mockPort.EXPECT().TurnoActivoCliente(gomock.Any(), sess.BackendToken, sess.Cedula).
			Return(false, nil, nil)

		view, err := s.queries.EstadoTurno(context.Background(), sess)

		s.Require().NoError(err)
		s.False(view.TieneTurno)
		s.Equal("finalizada", view.Fase)
	})

	s.Run("read failure propagates", func() {
		s.mockPort.EXPECT().TurnoActivoCliente(gomock.Any(), sess.BackendToken, sess.Cedula).
			Return(false, nil, errors.New("backend unreachable"))

		_, err := s.queries.EstadoTurno(context.Background(), sess)

		s.Error(err)
	})
}

func (s *TurnoQueriesTestSuite) TestCola() {
	sess := builder.NewSessionBuilder().Build()

	s.Run("entries carry their rank in the queue", func() {
		cola := turno.Cola{Turnos: []turno.ResumenTurno{
			{ID: 40, Codigo: "F-040", Servicio: "farmacia", Prioritario: true},
			{ID: 41, Codigo: "F-041", Servicio: "consulta"},
		}}
		s.mockPort.EXPECT().ColaTurnos(gomock.Any(), sess.BackendToken).
			Return(cola, nil)

		entradas, err := s.queries.Cola(context.Background(), sess)

		s.Require().NoError(err)
		s.Require().Len(entradas, 2)
		s.Equal(0, entradas[0].Posicion)
		s.Equal(1, entradas[1].Posicion)
		s.True(entradas[0].Prioritario)
	})
}
