package domain

import "errors"

// Errores de dominio (sin dependencias externas).
var (
	ErrNotFound         = errors.New("recurso no encontrado")
	ErrUserNotFound     = errors.New("usuario no encontrado")
	ErrInvalidInput     = errors.New("entrada inválida")
	ErrUnauthorized     = errors.New("no autorizado")
	ErrForbidden        = errors.New("acceso denegado")
	ErrValidation       = errors.New("revisa los campos marcados")
	ErrSubmitInProgress = errors.New("ya hay un guardado en curso")
	ErrSaveFailed       = errors.New("no se pudo guardar el movimiento")
)
