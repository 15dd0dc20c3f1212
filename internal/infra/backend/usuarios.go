package backend

import (
	"context"
	"fmt"

	"turnos-gateway/internal/infra"
	"turnos-gateway/internal/usecase/queries"
)

// UsuariosClient wraps the /usuarios endpoints: login, client self-service
// registration and the admin CRUD.
type UsuariosClient struct {
	c *Client
}

func NewUsuariosClient(c *Client) *UsuariosClient {
	return &UsuariosClient{c: c}
}

// LoginResult carries the backend bearer token plus the identity fields the
// gateway folds into its own session.
type LoginResult struct {
	Token  string
	Cedula string
	Nombre string
	Rol    string
}

func (u *UsuariosClient) Login(ctx context.Context, username, password string) (*LoginResult, error) {
	body := map[string]string{"username": username, "password": password}
	var resp struct {
		Token   string `json:"token"`
		Usuario struct {
			Cedula string `json:"cedula"`
			Nombre string `json:"nombre"`
			Rol    string `json:"rol"`
		} `json:"usuario"`
	}
	if err := u.c.post(ctx, "/usuarios/login/", "", body, &resp); err != nil {
		return nil, err
	}
	if resp.Token == "" {
		return nil, infra.WrapBackendErr(infra.KindBadPayload, "login response missing token", nil)
	}
	return &LoginResult{
		Token:  resp.Token,
		Cedula: resp.Usuario.Cedula,
		Nombre: resp.Usuario.Nombre,
		Rol:    resp.Usuario.Rol,
	}, nil
}

type RegistrarClienteParams struct {
	Cedula   string `json:"cedula"`
	Nombre   string `json:"nombre"`
	Email    string `json:"email,omitempty"`
	Username string `json:"username"`
	Password string `json:"password"`
}

func (u *UsuariosClient) RegistrarCliente(ctx context.Context, params RegistrarClienteParams) (*queries.UsuarioView, error) {
	var view queries.UsuarioView
	if err := u.c.post(ctx, "/usuarios/registrar_cliente/", "", params, &view); err != nil {
		return nil, err
	}
	return &view, nil
}

func (u *UsuariosClient) Listar(ctx context.Context, token string) ([]queries.UsuarioView, error) {
	var views []queries.UsuarioView
	if err := u.c.get(ctx, "/usuarios/", token, &views); err != nil {
		return nil, err
	}
	return views, nil
}

type UsuarioParams struct {
	Cedula   string `json:"cedula"`
	Nombre   string `json:"nombre"`
	Email    string `json:"email,omitempty"`
	Username string `json:"username"`
	Password string `json:"password,omitempty"`
	Rol      string `json:"rol"`
	Activo   bool   `json:"activo"`
}

func (u *UsuariosClient) Crear(ctx context.Context, token string, params UsuarioParams) (*queries.UsuarioView, error) {
	var view queries.UsuarioView
	if err := u.c.post(ctx, "/usuarios/", token, params, &view); err != nil {
		return nil, err
	}
	return &view, nil
}

func (u *UsuariosClient) Actualizar(ctx context.Context, token string, id int64, params UsuarioParams) (*queries.UsuarioView, error) {
	var view queries.UsuarioView
	if err := u.c.put(ctx, fmt.Sprintf("/usuarios/%d/", id), token, params, &view); err != nil {
		return nil, err
	}
	return &view, nil
}

func (u *UsuariosClient) Eliminar(ctx context.Context, token string, id int64) error {
	return u.c.delete(ctx, fmt.Sprintf("/usuarios/%d/", id), token)
}
