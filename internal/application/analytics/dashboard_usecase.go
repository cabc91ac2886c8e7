// Package analytics contiene los casos de uso del dashboard de RRHH.
package analytics

import (
	"context"
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/Rrhh-api/internal/application/dto"
	"github.com/jhoicas/Rrhh-api/internal/domain/repository"
	"github.com/jhoicas/Rrhh-api/internal/domain/scope"
)

// DashboardUseCase genera el resumen de headcount y planilla del solicitante.
//
// Fuente de datos: AnalyticsRepository (consultas read-only). Todas las
// consultas reciben el mismo predicado: el dashboard cuenta exactamente los
// empleados que el usuario vería en el directorio y en los reportes.
type DashboardUseCase struct {
	analyticsRepo repository.AnalyticsRepository
}

// NewDashboardUseCase construye el caso de uso.
func NewDashboardUseCase(analyticsRepo repository.AnalyticsRepository) *DashboardUseCase {
	return &DashboardUseCase{analyticsRepo: analyticsRepo}
}

// GetSummary construye el DashboardSummaryDTO para el alcance indicado.
//
// Tres llamadas en paralelo:
//  1. CountEmployees   → TotalHeadcount
//  2. HeadcountByArea  → ByArea
//  3. PayrollTotal     → MonthlyPayroll
func (uc *DashboardUseCase) GetSummary(ctx context.Context, pred scope.Predicate) (*dto.DashboardSummaryDTO, error) {
	type countResult struct {
		n   int
		err error
	}
	type areasResult struct {
		rows []repository.AreaHeadcountResult
		err  error
	}
	type payrollResult struct {
		total decimal.Decimal
		err   error
	}

	countCh := make(chan countResult, 1)
	areasCh := make(chan areasResult, 1)
	payrollCh := make(chan payrollResult, 1)

	go func() {
		n, err := uc.analyticsRepo.CountEmployees(ctx, pred)
		countCh <- countResult{n, err}
	}()
	go func() {
		rows, err := uc.analyticsRepo.HeadcountByArea(ctx, pred)
		areasCh <- areasResult{rows, err}
	}()
	go func() {
		total, err := uc.analyticsRepo.PayrollTotal(ctx, pred)
		payrollCh <- payrollResult{total, err}
	}()

	count := <-countCh
	areas := <-areasCh
	payroll := <-payrollCh

	if count.err != nil {
		return nil, fmt.Errorf("dashboard: headcount total: %w", count.err)
	}
	if areas.err != nil {
		return nil, fmt.Errorf("dashboard: headcount por área: %w", areas.err)
	}
	if payroll.err != nil {
		return nil, fmt.Errorf("dashboard: planilla: %w", payroll.err)
	}

	byArea := make([]dto.AreaHeadcountDTO, 0, len(areas.rows))
	for _, r := range areas.rows {
		byArea = append(byArea, dto.AreaHeadcountDTO{
			AreaID:   r.AreaID,
			AreaName: r.AreaName,
			Count:    r.Count,
		})
	}

	return &dto.DashboardSummaryDTO{
		TotalHeadcount: count.n,
		ByArea:         byArea,
		MonthlyPayroll: payroll.total.Round(2),
		Scope:          pred.String(),
	}, nil
}
