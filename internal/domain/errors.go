package domain

import "errors"

// Errores de dominio (sin dependencias externas).
var (
	ErrNotFound         = errors.New("recurso no encontrado")
	ErrUserNotFound     = errors.New("usuario no encontrado")
	ErrEmployeeNotFound = errors.New("empleado no encontrado")
	ErrInvalidInput     = errors.New("entrada inválida")
	ErrDuplicate        = errors.New("recurso duplicado")
	ErrUnauthorized     = errors.New("no autorizado")
	ErrForbidden        = errors.New("acceso denegado")

	// ErrIndexUnavailable: el índice cargo→área no pudo cargarse. Los consumidores
	// deben distinguir "sin área" de "no se pudo determinar": ante este error la
	// resolución cierra el alcance a SelfOnly, nunca lo amplía.
	ErrIndexUnavailable = errors.New("índice cargo-área no disponible")
)
