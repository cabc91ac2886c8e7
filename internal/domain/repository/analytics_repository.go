package repository

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/Rrhh-api/internal/domain/scope"
)

// AreaHeadcountResult fila de conteo de empleados visibles por área.
type AreaHeadcountResult struct {
	AreaID   string
	AreaName string
	Count    int
}

// AnalyticsRepository consultas read-only para el dashboard de RRHH.
// Todas reciben el predicado canónico de visibilidad: el dashboard debe ver
// exactamente el mismo universo de empleados que los listados y reportes.
type AnalyticsRepository interface {
	CountEmployees(ctx context.Context, pred scope.Predicate) (int, error)
	HeadcountByArea(ctx context.Context, pred scope.Predicate) ([]AreaHeadcountResult, error)
	PayrollTotal(ctx context.Context, pred scope.Predicate) (decimal.Decimal, error)
}
