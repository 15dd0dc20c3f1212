package response

import "turnos-gateway/internal/domain/session"

type LoginResponse struct {
	AccessToken string      `json:"access_token"`
	Usuario     UsuarioInfo `json:"usuario"`
}

type UsuarioInfo struct {
	Cedula string `json:"cedula"`
	Nombre string `json:"nombre"`
	Rol    string `json:"rol"`
}

func FromSession(sess session.Session) UsuarioInfo {
	return UsuarioInfo{
		Cedula: sess.Cedula,
		Nombre: sess.Nombre,
		Rol:    sess.Rol.String(),
	}
}
