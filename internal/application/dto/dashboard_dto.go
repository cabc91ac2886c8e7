package dto

import "github.com/shopspring/decimal"

// AreaHeadcountDTO conteo de empleados visibles en un área.
type AreaHeadcountDTO struct {
	AreaID   string `json:"area_id"`
	AreaName string `json:"area_name"`
	Count    int    `json:"count"`
}

// DashboardSummaryDTO resumen del dashboard de RRHH, siempre restringido al
// alcance del solicitante: los mismos empleados que vería en el listado.
type DashboardSummaryDTO struct {
	TotalHeadcount int                `json:"total_headcount"`
	ByArea         []AreaHeadcountDTO `json:"by_area"`
	MonthlyPayroll decimal.Decimal    `json:"monthly_payroll"`
	Scope          string             `json:"scope"` // descripción del predicado aplicado
	Degraded       bool               `json:"degraded,omitempty"`
}
