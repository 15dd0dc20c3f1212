package request

type LineaCarritoRequest struct {
	ProductoID int64 `json:"producto_id" binding:"required"`
	Cantidad   int   `json:"cantidad" binding:"required,min=1"`
}

type CrearFacturaRequest struct {
	CedulaCliente string                `json:"cedula_cliente" binding:"required,len=10,numeric"`
	TurnoID       *int64                `json:"turno_id,omitempty"`
	Items         []LineaCarritoRequest `json:"items" binding:"required,min=1,dive"`
}
