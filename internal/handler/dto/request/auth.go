package request

import (
	"turnos-gateway/internal/domain/usuario"
)

type LoginRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required,min=8"`
}

func (r *LoginRequest) ToDomain() (usuario.Credenciales, error) {
	return usuario.NewCredenciales(r.Username, r.Password)
}

type RegistrarClienteRequest struct {
	Cedula   string `json:"cedula" binding:"required,len=10,numeric"`
	Nombre   string `json:"nombre" binding:"required"`
	Email    string `json:"email" binding:"omitempty,email"`
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required,min=8"`
}
