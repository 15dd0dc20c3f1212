package commands

import (
	"context"

	"turnos-gateway/internal/domain/session"
	"turnos-gateway/internal/domain/usuario"
	"turnos-gateway/internal/infra"
	"turnos-gateway/internal/infra/backend"
	"turnos-gateway/internal/pkg/errs"
	"turnos-gateway/internal/pkg/jwt"
	"turnos-gateway/internal/usecase/queries"
)

var (
	ErrCredencialesInvalidas = errs.New("invalid username or password")
	ErrRolDesconocido        = errs.New("backend returned unknown rol")
	ErrTokenGeneration       = errs.New("token generation failed")
)

// UsuariosPort is the slice of the backend the auth flow needs.
type UsuariosPort interface {
	Login(ctx context.Context, username, password string) (*backend.LoginResult, error)
	RegistrarCliente(ctx context.Context, params backend.RegistrarClienteParams) (*queries.UsuarioView, error)
}

type LoginResult struct {
	Token  string
	Sesion session.Session
}

type AuthCommands interface {
	Login(ctx context.Context, credenciales usuario.Credenciales) (*LoginResult, error)
}

type authCommandsImpl struct {
	usuarios   UsuariosPort
	jwtService *jwt.Service
}

func NewAuthCommands(usuarios UsuariosPort, jwtService *jwt.Service) AuthCommands {
	return &authCommandsImpl{usuarios: usuarios, jwtService: jwtService}
}

// Login exchanges credentials for a backend token and wraps the resulting
// identity into a gateway session JWT. The backend is the authority on
// passwords; the gateway never sees stored hashes.
func (a *authCommandsImpl) Login(ctx context.Context, credenciales usuario.Credenciales) (*LoginResult, error) {
	result, err := a.usuarios.Login(ctx, credenciales.Username(), credenciales.Password())
	if err != nil {
		if infra.IsKind(err, infra.KindUnauthorized) || infra.IsKind(err, infra.KindRejected) {
			return nil, errs.Mark(err, ErrCredencialesInvalidas)
		}
		return nil, errs.Wrap(err, "login request failed")
	}

	rol, err := usuario.NewRol(result.Rol)
	if err != nil {
		return nil, errs.Mark(err, ErrRolDesconocido)
	}

	sess, err := session.New(result.Cedula, result.Nombre, rol, result.Token)
	if err != nil {
		return nil, errs.Wrap(err, "backend login response incomplete")
	}

	token, err := a.jwtService.GenerateToken(sess)
	if err != nil {
		return nil, errs.Mark(err, ErrTokenGeneration)
	}

	return &LoginResult{Token: token, Sesion: sess}, nil
}
