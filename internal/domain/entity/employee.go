package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Employee representa un registro de empleado de la organización.
// Position y Location son etiquetas de texto libre heredadas de la planilla;
// PositionID puede estar vacío cuando el dato nunca fue vinculado al catálogo.
type Employee struct {
	ID           string
	Document     string // DNI / carné de extranjería
	Name         string
	Email        string
	Position     string // etiqueta libre del cargo ("SUPERVISOR DE OPERACIONES")
	PositionID   string // vínculo al catálogo de cargos; vacío si no existe
	Location     string // sede asignada ("CHIMBOTE"); puede traer varias separadas por coma
	BusinessUnit string // unidad de negocio ("BEBIDAS")
	Salary       decimal.Decimal
	Status       string // active, inactive, terminated
	HiredAt      time.Time
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
