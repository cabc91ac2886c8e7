// Package directory contiene los casos de uso del directorio de empleados:
// listados, conteos, ficha individual y filas para exportación de reportes.
// Todos reciben el predicado canónico ya resuelto; aquí no se re-deriva
// ninguna heurística de visibilidad.
package directory

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/jhoicas/Rrhh-api/internal/application/dto"
	"github.com/jhoicas/Rrhh-api/internal/domain"
	"github.com/jhoicas/Rrhh-api/internal/domain/entity"
	"github.com/jhoicas/Rrhh-api/internal/domain/repository"
	"github.com/jhoicas/Rrhh-api/internal/domain/scope"
)

// SnapshotProvider entrega el snapshot vigente del índice cargo→área.
// Lo implementa el servicio de alcance; la interfaz local evita el acople.
type SnapshotProvider interface {
	Snapshot(ctx context.Context) (*scope.PositionAreaIndex, error)
}

// EmployeeUseCase casos de uso del directorio.
type EmployeeUseCase struct {
	repo      repository.EmployeeRepository
	snapshots SnapshotProvider
}

// NewEmployeeUseCase construye el caso de uso.
func NewEmployeeUseCase(repo repository.EmployeeRepository, snapshots SnapshotProvider) *EmployeeUseCase {
	return &EmployeeUseCase{repo: repo, snapshots: snapshots}
}

// List devuelve una página de empleados visibles según el predicado.
func (uc *EmployeeUseCase) List(ctx context.Context, pred scope.Predicate, page dto.PageRequest) (*dto.EmployeeListResponse, error) {
	page.DefaultPage()

	total, err := uc.repo.CountVisible(ctx, pred)
	if err != nil {
		return nil, fmt.Errorf("directory: contar empleados: %w", err)
	}
	items, err := uc.repo.ListVisible(ctx, pred, page.Limit, page.Offset)
	if err != nil {
		return nil, fmt.Errorf("directory: listar empleados: %w", err)
	}

	out := &dto.EmployeeListResponse{
		Items: make([]dto.EmployeeResponse, 0, len(items)),
		Page:  dto.PageResponse{Limit: page.Limit, Offset: page.Offset, Total: total},
	}
	for _, e := range items {
		out.Items = append(out.Items, toEmployeeResponse(e))
	}
	return out, nil
}

// Count devuelve el número de empleados visibles según el predicado.
func (uc *EmployeeUseCase) Count(ctx context.Context, pred scope.Predicate) (*dto.EmployeeCountResponse, error) {
	n, err := uc.repo.CountVisible(ctx, pred)
	if err != nil {
		return nil, fmt.Errorf("directory: contar empleados: %w", err)
	}
	return &dto.EmployeeCountResponse{Count: n}, nil
}

// GetByID devuelve la ficha de un empleado solo si el predicado lo admite.
// La verificación usa el filtro en memoria con el mismo índice que usó la
// resolución; un registro fuera de alcance responde como inexistente para no
// filtrar su existencia.
func (uc *EmployeeUseCase) GetByID(ctx context.Context, pred scope.Predicate, id string) (*dto.EmployeeResponse, error) {
	emp, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("directory: obtener empleado: %w", err)
	}
	if emp == nil {
		return nil, domain.ErrEmployeeNotFound
	}

	idx, err := uc.snapshots.Snapshot(ctx)
	if err != nil {
		return nil, err
	}
	if !scope.FilterFunc(pred, idx)(*emp) {
		return nil, domain.ErrEmployeeNotFound
	}

	out := toEmployeeResponse(emp)
	return &out, nil
}

// Export devuelve todas las filas visibles para exportación de reportes.
// El formato del archivo queda fuera: aquí solo se garantiza que el conjunto
// exportado sea el mismo que cuentan el dashboard y lista el directorio.
func (uc *EmployeeUseCase) Export(ctx context.Context, pred scope.Predicate) ([]dto.EmployeeResponse, error) {
	items, err := uc.repo.ListVisible(ctx, pred, 0, 0) // limit 0 = sin límite
	if err != nil {
		return nil, fmt.Errorf("directory: exportar empleados: %w", err)
	}
	rows := make([]dto.EmployeeResponse, 0, len(items))
	for _, e := range items {
		rows = append(rows, toEmployeeResponse(e))
	}
	return rows, nil
}

// Create registra un empleado (ruta de administración).
func (uc *EmployeeUseCase) Create(ctx context.Context, in dto.CreateEmployeeRequest) (*dto.EmployeeResponse, error) {
	if in.Document == "" || in.Name == "" {
		return nil, domain.ErrInvalidInput
	}
	now := time.Now()
	emp := &entity.Employee{
		ID:           uuid.New().String(),
		Document:     in.Document,
		Name:         in.Name,
		Email:        in.Email,
		Position:     in.Position,
		PositionID:   in.PositionID,
		Location:     in.Location,
		BusinessUnit: in.BusinessUnit,
		Salary:       in.Salary,
		Status:       "active",
		HiredAt:      in.HiredAt,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := uc.repo.Create(ctx, emp); err != nil {
		return nil, err
	}
	out := toEmployeeResponse(emp)
	return &out, nil
}

func toEmployeeResponse(e *entity.Employee) dto.EmployeeResponse {
	return dto.EmployeeResponse{
		ID:           e.ID,
		Document:     e.Document,
		Name:         e.Name,
		Email:        e.Email,
		Position:     e.Position,
		PositionID:   e.PositionID,
		Location:     e.Location,
		BusinessUnit: e.BusinessUnit,
		Salary:       e.Salary,
		Status:       e.Status,
		HiredAt:      e.HiredAt,
	}
}
