package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/Rrhh-api/internal/domain/repository"
	"github.com/jhoicas/Rrhh-api/internal/domain/scope"
)

var _ repository.AnalyticsRepository = (*AnalyticsRepo)(nil)

// AnalyticsRepo consultas de solo lectura para el dashboard de RRHH.
// Usa buildScopeFilter igual que el directorio: dashboard, listado y reporte
// cuentan el mismo universo de empleados para el mismo predicado.
type AnalyticsRepo struct {
	pool *pgxpool.Pool
}

// NewAnalyticsRepository construye el adaptador de analítica.
func NewAnalyticsRepository(pool *pgxpool.Pool) *AnalyticsRepo {
	return &AnalyticsRepo{pool: pool}
}

// CountEmployees cuenta los empleados visibles para el predicado.
func (r *AnalyticsRepo) CountEmployees(ctx context.Context, pred scope.Predicate) (int, error) {
	where, args := buildScopeFilter(pred)
	query := `SELECT COUNT(*)` + employeeScopeFrom + ` WHERE ` + where
	var n int
	if err := r.pool.QueryRow(ctx, query, args...).Scan(&n); err != nil {
		return 0, fmt.Errorf("analytics.CountEmployees: %w", err)
	}
	return n, nil
}

// HeadcountByArea agrupa los empleados visibles por área efectiva.
// Los empleados sin área resoluble quedan fuera del agrupado (no tienen fila
// en areas); siguen contando en CountEmployees.
func (r *AnalyticsRepo) HeadcountByArea(ctx context.Context, pred scope.Predicate) ([]repository.AreaHeadcountResult, error) {
	where, args := buildScopeFilter(pred)
	query := `
	SELECT a.id, a.name, COUNT(*)` + employeeScopeFrom + `
	JOIN areas a ON a.id = ` + employeeAreaExpr + `
	WHERE ` + where + `
	GROUP BY a.id, a.name
	ORDER BY a.name`

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("analytics.HeadcountByArea: %w", err)
	}
	defer rows.Close()

	var results []repository.AreaHeadcountResult
	for rows.Next() {
		var row repository.AreaHeadcountResult
		if err := rows.Scan(&row.AreaID, &row.AreaName, &row.Count); err != nil {
			return nil, fmt.Errorf("analytics.HeadcountByArea scan: %w", err)
		}
		results = append(results, row)
	}
	return results, rows.Err()
}

// PayrollTotal suma los salarios de los empleados visibles.
func (r *AnalyticsRepo) PayrollTotal(ctx context.Context, pred scope.Predicate) (decimal.Decimal, error) {
	where, args := buildScopeFilter(pred)
	query := `SELECT COALESCE(SUM(e.salary), 0)` + employeeScopeFrom + ` WHERE ` + where
	var total decimal.Decimal
	if err := r.pool.QueryRow(ctx, query, args...).Scan(&total); err != nil {
		return decimal.Zero, fmt.Errorf("analytics.PayrollTotal: %w", err)
	}
	return total, nil
}
