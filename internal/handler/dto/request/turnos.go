package request

type SolicitarTurnoRequest struct {
	Servicio    string `json:"servicio" binding:"required"`
	Prioritario bool   `json:"prioritario"`
}
