package queries

import (
	"time"

	"github.com/shopspring/decimal"
)

// Read models (DTO for read side)

type UsuarioView struct {
	ID       int64  `json:"id"`
	Cedula   string `json:"cedula"`
	Nombre   string `json:"nombre"`
	Username string `json:"username"`
	Email    string `json:"email,omitempty"`
	Rol      string `json:"rol"`
	Activo   bool   `json:"activo"`
}

type ProductoView struct {
	ID          int64           `json:"id"`
	Nombre      string          `json:"nombre"`
	Descripcion string          `json:"descripcion,omitempty"`
	Precio      decimal.Decimal `json:"precio"`
	Stock       int             `json:"stock"`
}

type ServicioView struct {
	ID          int64  `json:"id"`
	Nombre      string `json:"nombre"`
	Descripcion string `json:"descripcion,omitempty"`
	Activo      bool   `json:"activo"`
}

type CajaView struct {
	ID     int64  `json:"id"`
	Nombre string `json:"nombre"`
	Activa bool   `json:"activa"`
	// Cajero assigned to the register, empty when unstaffed
	Cajero string `json:"cajero,omitempty"`
}

type FacturaView struct {
	ID            int64             `json:"id"`
	Codigo        string            `json:"codigo"`
	CedulaCliente string            `json:"cedula_cliente"`
	NombreCliente string            `json:"nombre_cliente"`
	Cajero        string            `json:"cajero,omitempty"`
	Items         []ItemFacturaView `json:"items"`
	Total         decimal.Decimal   `json:"total"`
	Fecha         string            `json:"fecha"`
}

type ItemFacturaView struct {
	Producto       string          `json:"producto"`
	Cantidad       int             `json:"cantidad"`
	PrecioUnitario decimal.Decimal `json:"precio_unitario"`
	Subtotal       decimal.Decimal `json:"subtotal"`
}

type EstadisticasView struct {
	Dia               time.Time                  `json:"dia"`
	TotalVentas       decimal.Decimal            `json:"total_ventas"`
	NumeroFacturas    int                        `json:"numero_facturas"`
	TurnosAtendidos   int                        `json:"turnos_atendidos"`
	TurnosCancelados  int                        `json:"turnos_cancelados"`
	TurnosPorServicio map[string]int             `json:"turnos_por_servicio,omitempty"`
	VentasPorCajero   map[string]decimal.Decimal `json:"ventas_por_cajero,omitempty"`
}
