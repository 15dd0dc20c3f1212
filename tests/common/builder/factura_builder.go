//go:build unit || e2e

package builder

import (
	"github.com/shopspring/decimal"

	"turnos-gateway/internal/domain/factura"
	reqdto "turnos-gateway/internal/handler/dto/request"
)

type FacturaBuilder struct {
	ID            int64
	Codigo        string
	CedulaCliente string
	NombreCliente string
	Cajero        string
	Items         []factura.Item
	Fecha         string
}

func NewFacturaBuilder() *FacturaBuilder {
	return &FacturaBuilder{
		ID:            7,
		Codigo:        "FAC-0007",
		CedulaCliente: "1712345678",
		NombreCliente: "Maria Gonzalez",
		Cajero:        "jperez",
		Items: []factura.Item{
			{
				Producto:       "Paracetamol 500mg",
				Cantidad:       2,
				PrecioUnitario: decimal.NewFromFloat(1.50),
				Subtotal:       decimal.NewFromFloat(3.00),
			},
		},
		Fecha: "2025-06-15T10:00:00",
	}
}

func (b *FacturaBuilder) WithFecha(fecha string) *FacturaBuilder {
	b.Fecha = fecha
	return b
}

func (b *FacturaBuilder) WithCajero(cajero string) *FacturaBuilder {
	b.Cajero = cajero
	return b
}

func (b *FacturaBuilder) Build() factura.Factura {
	total := decimal.Zero
	for _, item := range b.Items {
		total = total.Add(item.Subtotal)
	}
	return factura.Factura{
		ID:            b.ID,
		Codigo:        b.Codigo,
		CedulaCliente: b.CedulaCliente,
		NombreCliente: b.NombreCliente,
		Cajero:        b.Cajero,
		Items:         b.Items,
		Total:         total,
		Fecha:         b.Fecha,
	}
}

func (b *FacturaBuilder) BuildCrearDTO() reqdto.CrearFacturaRequest {
	return reqdto.CrearFacturaRequest{
		CedulaCliente: b.CedulaCliente,
		Items: []reqdto.LineaCarritoRequest{
			{ProductoID: 1, Cantidad: 2},
		},
	}
}
