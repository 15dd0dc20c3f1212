package usuario

import (
	"errors"
	"regexp"
	"strings"
)

var (
	ErrInvalidCedula   = errors.New("invalid cedula format")
	ErrInvalidRol      = errors.New("invalid rol")
	ErrInvalidPassword = errors.New("password must be at least 8 characters long")
)

type Rol string

const (
	RolCliente       Rol = "cliente"
	RolCajero        Rol = "cajero"
	RolAdministrador Rol = "administrador"
)

func NewRol(s string) (Rol, error) {
	switch Rol(s) {
	case RolCliente, RolCajero, RolAdministrador:
		return Rol(s), nil
	}
	return "", ErrInvalidRol
}

func (r Rol) String() string { return string(r) }

// national id: 10 digits
var cedulaRegex = regexp.MustCompile(`^\d{10}$`)

type Cedula struct {
	value string
}

func NewCedula(s string) (Cedula, error) {
	s = strings.TrimSpace(s)
	if !cedulaRegex.MatchString(s) {
		return Cedula{}, ErrInvalidCedula
	}
	return Cedula{value: s}, nil
}

func (c Cedula) Value() string { return c.value }

type Credenciales struct {
	username string
	password string
}

func NewCredenciales(username, password string) (Credenciales, error) {
	username = strings.TrimSpace(username)
	if username == "" {
		return Credenciales{}, errors.New("username required")
	}
	if len(password) < 8 {
		return Credenciales{}, ErrInvalidPassword
	}
	return Credenciales{username: username, password: password}, nil
}

func (c Credenciales) Username() string { return c.username }
func (c Credenciales) Password() string { return c.password }
