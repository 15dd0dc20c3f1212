package request

import "github.com/shopspring/decimal"

type UsuarioRequest struct {
	Cedula   string `json:"cedula" binding:"required,len=10,numeric"`
	Nombre   string `json:"nombre" binding:"required"`
	Email    string `json:"email" binding:"omitempty,email"`
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"omitempty,min=8"`
	Rol      string `json:"rol" binding:"required,oneof=cliente cajero administrador"`
	Activo   bool   `json:"activo"`
}

type ProductoRequest struct {
	Nombre      string          `json:"nombre" binding:"required"`
	Descripcion string          `json:"descripcion"`
	Precio      decimal.Decimal `json:"precio" binding:"required"`
	Stock       int             `json:"stock" binding:"min=0"`
}

// ProductoPatchRequest: absent fields keep their current value.
type ProductoPatchRequest struct {
	Nombre      *string          `json:"nombre,omitempty"`
	Descripcion *string          `json:"descripcion,omitempty"`
	Precio      *decimal.Decimal `json:"precio,omitempty"`
	Stock       *int             `json:"stock,omitempty"`
}

type ServicioRequest struct {
	Nombre      string `json:"nombre" binding:"required"`
	Descripcion string `json:"descripcion"`
	Activo      bool   `json:"activo"`
}

type CajaRequest struct {
	Nombre string `json:"nombre" binding:"required"`
	Activa bool   `json:"activa"`
	Cajero string `json:"cajero"`
}
