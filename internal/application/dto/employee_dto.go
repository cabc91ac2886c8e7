package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateEmployeeRequest alta de empleado (solo administración).
type CreateEmployeeRequest struct {
	Document     string          `json:"document"`
	Name         string          `json:"name"`
	Email        string          `json:"email"`
	Position     string          `json:"position"`
	PositionID   string          `json:"position_id"`
	Location     string          `json:"location"`
	BusinessUnit string          `json:"business_unit"`
	Salary       decimal.Decimal `json:"salary"`
	HiredAt      time.Time       `json:"hired_at"`
}

// EmployeeResponse proyección de un empleado para listados y ficha.
type EmployeeResponse struct {
	ID           string          `json:"id"`
	Document     string          `json:"document"`
	Name         string          `json:"name"`
	Email        string          `json:"email,omitempty"`
	Position     string          `json:"position"`
	PositionID   string          `json:"position_id,omitempty"`
	Location     string          `json:"location"`
	BusinessUnit string          `json:"business_unit,omitempty"`
	Salary       decimal.Decimal `json:"salary"`
	Status       string          `json:"status"`
	HiredAt      time.Time       `json:"hired_at"`
}

// EmployeeListResponse página de empleados visibles para el solicitante.
type EmployeeListResponse struct {
	Items []EmployeeResponse `json:"items"`
	Page  PageResponse       `json:"page"`
	// Degraded indica que la resolución de alcance falló cerrada (índice no
	// disponible): la lista muestra solo el registro propio.
	Degraded bool `json:"degraded,omitempty"`
}

// EmployeeCountResponse conteo de empleados visibles.
type EmployeeCountResponse struct {
	Count    int  `json:"count"`
	Degraded bool `json:"degraded,omitempty"`
}
