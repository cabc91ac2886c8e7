package repository

import (
	"context"

	"github.com/jhoicas/Rrhh-api/internal/domain/entity"
	"github.com/jhoicas/Rrhh-api/internal/domain/scope"
)

// EmployeeRepository define el puerto de persistencia para empleados.
//
// CountVisible y ListVisible reciben el mismo scope.Predicate y deben
// seleccionar el mismo conjunto de registros: la implementación tiene que
// construir el filtro una sola vez y compartirlo entre ambas consultas.
type EmployeeRepository interface {
	Create(ctx context.Context, emp *entity.Employee) error
	GetByID(ctx context.Context, id string) (*entity.Employee, error)
	CountVisible(ctx context.Context, pred scope.Predicate) (int, error)
	ListVisible(ctx context.Context, pred scope.Predicate, limit, offset int) ([]*entity.Employee, error)
}
