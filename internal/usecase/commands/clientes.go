package commands

import (
	"context"

	"turnos-gateway/internal/domain/usuario"
	"turnos-gateway/internal/infra"
	"turnos-gateway/internal/infra/backend"
	"turnos-gateway/internal/pkg/errs"
	"turnos-gateway/internal/usecase/queries"
)

var ErrCedulaYaRegistrada = errs.New("cedula already registered")

type RegistrarClienteInput struct {
	Cedula   string
	Nombre   string
	Email    string
	Username string
	Password string
}

type ClienteCommands interface {
	Registrar(ctx context.Context, input RegistrarClienteInput) (*queries.UsuarioView, error)
}

type clienteCommandsImpl struct {
	usuarios UsuariosPort
}

func NewClienteCommands(usuarios UsuariosPort) ClienteCommands {
	return &clienteCommandsImpl{usuarios: usuarios}
}

func (c *clienteCommandsImpl) Registrar(ctx context.Context, input RegistrarClienteInput) (*queries.UsuarioView, error) {
	if _, err := usuario.NewCedula(input.Cedula); err != nil {
		return nil, errs.Mark(err, errs.ErrDomainValidation)
	}
	if _, err := usuario.NewCredenciales(input.Username, input.Password); err != nil {
		return nil, errs.Mark(err, errs.ErrDomainValidation)
	}

	view, err := c.usuarios.RegistrarCliente(ctx, backend.RegistrarClienteParams{
		Cedula:   input.Cedula,
		Nombre:   input.Nombre,
		Email:    input.Email,
		Username: input.Username,
		Password: input.Password,
	})
	if err != nil {
		if infra.IsKind(err, infra.KindRejected) {
			return nil, errs.Mark(err, ErrCedulaYaRegistrada)
		}
		return nil, errs.Wrap(err, "client registration failed")
	}
	return view, nil
}
