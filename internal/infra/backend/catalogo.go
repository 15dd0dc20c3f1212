package backend

import (
	"context"
	"fmt"

	"turnos-gateway/internal/usecase/queries"

	"github.com/shopspring/decimal"
)

// Catalog clients for the admin CRUD screens. The backend emits plain,
// consistently-named JSON for these resources, so no normalization layer is
// needed beyond typed decoding.

type ProductosClient struct {
	c *Client
}

func NewProductosClient(c *Client) *ProductosClient {
	return &ProductosClient{c: c}
}

type ProductoParams struct {
	Nombre      string          `json:"nombre"`
	Descripcion string          `json:"descripcion,omitempty"`
	Precio      decimal.Decimal `json:"precio"`
	Stock       int             `json:"stock"`
}

func (p *ProductosClient) Listar(ctx context.Context, token string) ([]queries.ProductoView, error) {
	var views []queries.ProductoView
	if err := p.c.get(ctx, "/productos/", token, &views); err != nil {
		return nil, err
	}
	return views, nil
}

func (p *ProductosClient) Crear(ctx context.Context, token string, params ProductoParams) (*queries.ProductoView, error) {
	var view queries.ProductoView
	if err := p.c.post(ctx, "/productos/", token, params, &view); err != nil {
		return nil, err
	}
	return &view, nil
}

func (p *ProductosClient) Actualizar(ctx context.Context, token string, id int64, params ProductoParams) (*queries.ProductoView, error) {
	var view queries.ProductoView
	if err := p.c.put(ctx, fmt.Sprintf("/productos/%d/", id), token, params, &view); err != nil {
		return nil, err
	}
	return &view, nil
}

func (p *ProductosClient) Eliminar(ctx context.Context, token string, id int64) error {
	return p.c.delete(ctx, fmt.Sprintf("/productos/%d/", id), token)
}

type ServiciosClient struct {
	c *Client
}

func NewServiciosClient(c *Client) *ServiciosClient {
	return &ServiciosClient{c: c}
}

type ServicioParams struct {
	Nombre      string `json:"nombre"`
	Descripcion string `json:"descripcion,omitempty"`
	Activo      bool   `json:"activo"`
}

func (s *ServiciosClient) Listar(ctx context.Context, token string) ([]queries.ServicioView, error) {
	var views []queries.ServicioView
	if err := s.c.get(ctx, "/servicios/", token, &views); err != nil {
		return nil, err
	}
	return views, nil
}

func (s *ServiciosClient) Crear(ctx context.Context, token string, params ServicioParams) (*queries.ServicioView, error) {
	var view queries.ServicioView
	if err := s.c.post(ctx, "/servicios/", token, params, &view); err != nil {
		return nil, err
	}
	return &view, nil
}

func (s *ServiciosClient) Actualizar(ctx context.Context, token string, id int64, params ServicioParams) (*queries.ServicioView, error) {
	var view queries.ServicioView
	if err := s.c.put(ctx, fmt.Sprintf("/servicios/%d/", id), token, params, &view); err != nil {
		return nil, err
	}
	return &view, nil
}

func (s *ServiciosClient) Eliminar(ctx context.Context, token string, id int64) error {
	return s.c.delete(ctx, fmt.Sprintf("/servicios/%d/", id), token)
}

type CajasClient struct {
	c *Client
}

func NewCajasClient(c *Client) *CajasClient {
	return &CajasClient{c: c}
}

type CajaParams struct {
	Nombre string `json:"nombre"`
	Activa bool   `json:"activa"`
	Cajero string `json:"cajero,omitempty"`
}

func (cc *CajasClient) Listar(ctx context.Context, token string) ([]queries.CajaView, error) {
	var views []queries.CajaView
	if err := cc.c.get(ctx, "/cajas/", token, &views); err != nil {
		return nil, err
	}
	return views, nil
}

func (cc *CajasClient) Crear(ctx context.Context, token string, params CajaParams) (*queries.CajaView, error) {
	var view queries.CajaView
	if err := cc.c.post(ctx, "/cajas/", token, params, &view); err != nil {
		return nil, err
	}
	return &view, nil
}

func (cc *CajasClient) Actualizar(ctx context.Context, token string, id int64, params CajaParams) (*queries.CajaView, error) {
	var view queries.CajaView
	if err := cc.c.put(ctx, fmt.Sprintf("/cajas/%d/", id), token, params, &view); err != nil {
		return nil, err
	}
	return &view, nil
}

func (cc *CajasClient) Eliminar(ctx context.Context, token string, id int64) error {
	return cc.c.delete(ctx, fmt.Sprintf("/cajas/%d/", id), token)
}
