package backend

import (
	"context"

	"turnos-gateway/internal/domain/factura"
	"turnos-gateway/internal/infra"

	"github.com/shopspring/decimal"
)

// FacturasClient wraps the /facturas endpoints used by the cashier checkout
// and the statistics screens.
type FacturasClient struct {
	c *Client
}

func NewFacturasClient(c *Client) *FacturasClient {
	return &FacturasClient{c: c}
}

type ItemFacturaParams struct {
	ProductoID int64 `json:"producto_id"`
	Cantidad   int   `json:"cantidad"`
}

type CrearFacturaParams struct {
	CedulaCliente string              `json:"cedula_cliente"`
	TurnoID       *int64              `json:"turno_id,omitempty"`
	Items         []ItemFacturaParams `json:"items"`
}

type facturaPayload struct {
	ID            *int64               `json:"id"`
	Codigo        string               `json:"codigo"`
	CedulaCliente string               `json:"cedula_cliente"`
	NombreCliente string               `json:"nombre_cliente"`
	Cajero        string               `json:"cajero"`
	NombreCajero  string               `json:"nombre_cajero"`
	Items         []itemFacturaPayload `json:"items"`
	Total         *decimal.Decimal     `json:"total"`
	Fecha         string               `json:"fecha"`
}

type itemFacturaPayload struct {
	Producto       string           `json:"producto"`
	Cantidad       int              `json:"cantidad"`
	PrecioUnitario *decimal.Decimal `json:"precio_unitario"`
	Subtotal       *decimal.Decimal `json:"subtotal"`
}

func (p facturaPayload) normalizar() (*factura.Factura, error) {
	if p.ID == nil || p.Total == nil {
		return nil, infra.WrapBackendErr(infra.KindBadPayload, "factura payload missing id or total", nil)
	}
	f := &factura.Factura{
		ID:            *p.ID,
		Codigo:        p.Codigo,
		CedulaCliente: p.CedulaCliente,
		NombreCliente: p.NombreCliente,
		Cajero:        firstNonEmpty(p.Cajero, p.NombreCajero),
		Total:         *p.Total,
		Fecha:         p.Fecha,
	}
	for _, it := range p.Items {
		item := factura.Item{Producto: it.Producto, Cantidad: it.Cantidad}
		if it.PrecioUnitario != nil {
			item.PrecioUnitario = *it.PrecioUnitario
		}
		if it.Subtotal != nil {
			item.Subtotal = *it.Subtotal
		}
		f.Items = append(f.Items, item)
	}
	return f, nil
}

func (fc *FacturasClient) Crear(ctx context.Context, token string, params CrearFacturaParams) (*factura.Factura, error) {
	var payload facturaPayload
	if err := fc.c.post(ctx, "/facturas/", token, params, &payload); err != nil {
		return nil, err
	}
	return payload.normalizar()
}

// Listar returns every invoice the backend exposes to this session. Filtering
// by calendar day happens gateway-side because fechas arrive in mixed
// formats (see domain/factura.MatchesDay).
func (fc *FacturasClient) Listar(ctx context.Context, token string) ([]factura.Factura, error) {
	var payloads []facturaPayload
	if err := fc.c.get(ctx, "/facturas/", token, &payloads); err != nil {
		return nil, err
	}

	facturas := make([]factura.Factura, 0, len(payloads))
	for _, p := range payloads {
		f, err := p.normalizar()
		if err != nil {
			return nil, err
		}
		facturas = append(facturas, *f)
	}
	return facturas, nil
}
