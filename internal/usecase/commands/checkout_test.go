//go:build unit

package commands_test

import (
	"context"
	"errors"
	"testing"

	"turnos-gateway/internal/infra/backend"
	"turnos-gateway/internal/pkg/errs"
	"turnos-gateway/internal/usecase/commands"
	"turnos-gateway/internal/usecase/queries"
	"turnos-gateway/tests/common/builder"
	commandsmock "turnos-gateway/tests/mock/commands"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func catalogo() []queries.ProductoView {
	return []queries.ProductoView{
		{ID: 1, Nombre: "Paracetamol 500mg", Precio: decimal.NewFromFloat(1.50), Stock: 20},
		{ID: 2, Nombre: "Ibuprofeno 400mg", Precio: decimal.NewFromFloat(2.25), Stock: 8},
	}
}

func TestCrearFactura(t *testing.T) {
	sess := builder.NewSessionBuilder().Build()
	creada := builder.NewFacturaBuilder().Build()

	t.Run("success: prices the cart against the catalog", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		facturas := commandsmock.NewMockFacturasPort(ctrl)
		productos := commandsmock.NewMockProductosPort(ctrl)

		productos.EXPECT().Listar(gomock.Any(), sess.BackendToken).Return(catalogo(), nil)
		facturas.EXPECT().Crear(gomock.Any(), sess.BackendToken, backend.CrearFacturaParams{
			CedulaCliente: "1712345678",
			Items: []backend.ItemFacturaParams{
				{ProductoID: 1, Cantidad: 2},
				{ProductoID: 2, Cantidad: 1},
			},
		}).Return(&creada, nil)

		uc := commands.NewCheckoutCommands(facturas, productos)
		result, err := uc.CrearFactura(context.Background(), sess, commands.CheckoutInput{
			CedulaCliente: "1712345678",
			Lineas: []commands.LineaCarrito{
				{ProductoID: 1, Cantidad: 2},
				{ProductoID: 2, Cantidad: 1},
			},
		})

		require.NoError(t, err)
		require.NotNil(t, result)
		assert.True(t, result.TotalEstimado.Equal(decimal.NewFromFloat(5.25)),
			"estimado %s != 5.25", result.TotalEstimado)
		assert.Equal(t, creada.Codigo, result.Factura.Codigo)
	})

	errCases := []struct {
		name    string
		input   commands.CheckoutInput
		setup   func(productos *commandsmock.MockProductosPort)
		wantErr error
	}{
		{
			name:    "empty cart",
			input:   commands.CheckoutInput{CedulaCliente: "1712345678"},
			wantErr: errs.ErrCarritoVacio,
		},
		{
			name: "non-positive cantidad",
			input: commands.CheckoutInput{
				CedulaCliente: "1712345678",
				Lineas:        []commands.LineaCarrito{{ProductoID: 1, Cantidad: 0}},
			},
			wantErr: errs.ErrDomainValidation,
		},
		{
			name: "unknown producto in cart",
			input: commands.CheckoutInput{
				CedulaCliente: "1712345678",
				Lineas:        []commands.LineaCarrito{{ProductoID: 99, Cantidad: 1}},
			},
			setup: func(productos *commandsmock.MockProductosPort) {
				productos.EXPECT().Listar(gomock.Any(), sess.BackendToken).Return(catalogo(), nil)
			},
			wantErr: errs.ErrProductoNotFound,
		},
	}

	for _, tt := range errCases {
		t.Run("error: "+tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			facturas := commandsmock.NewMockFacturasPort(ctrl)
			productos := commandsmock.NewMockProductosPort(ctrl)
			if tt.setup != nil {
				tt.setup(productos)
			}

			uc := commands.NewCheckoutCommands(facturas, productos)
			_, err := uc.CrearFactura(context.Background(), sess, tt.input)

			require.Error(t, err)
			assert.True(t, errs.Is(err, tt.wantErr), "want sentinel %v in chain of %v", tt.wantErr, err)
		})
	}

	t.Run("error: catalog load failure aborts the checkout", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		facturas := commandsmock.NewMockFacturasPort(ctrl)
		productos := commandsmock.NewMockProductosPort(ctrl)
		productos.EXPECT().Listar(gomock.Any(), sess.BackendToken).
			Return(nil, errors.New("backend unreachable"))

		uc := commands.NewCheckoutCommands(facturas, productos)
		_, err := uc.CrearFactura(context.Background(), sess, commands.CheckoutInput{
			CedulaCliente: "1712345678",
			Lineas:        []commands.LineaCarrito{{ProductoID: 1, Cantidad: 1}},
		})

		require.Error(t, err)
	})
}
