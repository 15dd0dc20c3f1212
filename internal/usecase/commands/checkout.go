package commands

import (
	"context"
	"log/slog"

	"turnos-gateway/internal/domain/factura"
	"turnos-gateway/internal/domain/session"
	"turnos-gateway/internal/infra/backend"
	"turnos-gateway/internal/pkg/errs"
	"turnos-gateway/internal/usecase/queries"

	"github.com/shopspring/decimal"
)

// FacturasPort covers invoice creation.
type FacturasPort interface {
	Crear(ctx context.Context, token string, params backend.CrearFacturaParams) (*factura.Factura, error)
}

// ProductosPort is used to price the cart before submitting it.
type ProductosPort interface {
	Listar(ctx context.Context, token string) ([]queries.ProductoView, error)
}

type LineaCarrito struct {
	ProductoID int64
	Cantidad   int
}

type CheckoutInput struct {
	CedulaCliente string
	TurnoID       *int64
	Lineas        []LineaCarrito
}

type CheckoutResult struct {
	Factura *factura.Factura
	// TotalEstimado is the gateway-side price for display while the backend
	// total remains authoritative.
	TotalEstimado decimal.Decimal
}

type CheckoutCommands interface {
	CrearFactura(ctx context.Context, sess session.Session, input CheckoutInput) (*CheckoutResult, error)
}

type checkoutCommandsImpl struct {
	facturas  FacturasPort
	productos ProductosPort
}

func NewCheckoutCommands(facturas FacturasPort, productos ProductosPort) CheckoutCommands {
	return &checkoutCommandsImpl{facturas: facturas, productos: productos}
}

func (c *checkoutCommandsImpl) CrearFactura(ctx context.Context, sess session.Session, input CheckoutInput) (*CheckoutResult, error) {
	if len(input.Lineas) == 0 {
		return nil, errs.ErrCarritoVacio
	}
	for _, linea := range input.Lineas {
		if linea.Cantidad <= 0 {
			return nil, errs.Mark(errs.New("cantidad must be positive"), errs.ErrDomainValidation)
		}
	}

	estimado, err := c.estimarTotal(ctx, sess, input.Lineas)
	if err != nil {
		return nil, err
	}

	params := backend.CrearFacturaParams{
		CedulaCliente: input.CedulaCliente,
		TurnoID:       input.TurnoID,
	}
	for _, linea := range input.Lineas {
		params.Items = append(params.Items, backend.ItemFacturaParams{
			ProductoID: linea.ProductoID,
			Cantidad:   linea.Cantidad,
		})
	}

	creada, err := c.facturas.Crear(ctx, sess.BackendToken, params)
	if err != nil {
		return nil, errs.Wrap(err, "crear factura failed")
	}

	if !creada.Total.Equal(estimado) {
		// Display prices drifted from the backend catalog; the invoice stands
		slog.Warn("factura total differs from gateway estimate",
			"factura", creada.Codigo, "backend", creada.Total, "estimado", estimado)
	}

	return &CheckoutResult{Factura: creada, TotalEstimado: estimado}, nil
}

func (c *checkoutCommandsImpl) estimarTotal(ctx context.Context, sess session.Session, lineas []LineaCarrito) (decimal.Decimal, error) {
	productos, err := c.productos.Listar(ctx, sess.BackendToken)
	if err != nil {
		return decimal.Zero, errs.Wrap(err, "failed to load productos for pricing")
	}

	precios := make(map[int64]decimal.Decimal, len(productos))
	for _, p := range productos {
		precios[p.ID] = p.Precio
	}

	total := decimal.Zero
	for _, linea := range lineas {
		precio, ok := precios[linea.ProductoID]
		if !ok {
			return decimal.Zero, errs.Mark(errs.New("unknown producto in cart"), errs.ErrProductoNotFound)
		}
		total = total.Add(precio.Mul(decimal.NewFromInt(int64(linea.Cantidad))))
	}
	return total, nil
}
