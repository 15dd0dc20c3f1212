package errs

import "errors"

// Domain-specific sentinel errors for CQRS usecase layers
var (
	// Session errors
	ErrSesionInvalida  = errors.New("invalid session")
	ErrSesionExpirada  = errors.New("session expired")
	ErrRolInsuficiente = errors.New("insufficient role")

	// Turno errors
	ErrTurnoYaSolicitado = errors.New("client already has an active turno")

	// Backend collaborator errors
	ErrBackendUnavailable = errors.New("backend unavailable")
	ErrBackendRejected    = errors.New("backend rejected request")
	ErrPayloadInvalido    = errors.New("malformed backend payload")
	ErrNoAutorizado       = errors.New("backend authorization failed")

	// Catalog / CRUD errors
	ErrUsuarioNotFound  = errors.New("usuario not found")
	ErrProductoNotFound = errors.New("producto not found")
	ErrServicioNotFound = errors.New("servicio not found")
	ErrCajaNotFound     = errors.New("caja not found")

	// Checkout errors
	ErrCarritoVacio = errors.New("cart is empty")

	// Validation errors
	ErrDomainValidation = errors.New("domain validation error")
)
