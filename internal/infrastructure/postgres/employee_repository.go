package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/jhoicas/Rrhh-api/internal/domain"
	"github.com/jhoicas/Rrhh-api/internal/domain/entity"
	"github.com/jhoicas/Rrhh-api/internal/domain/repository"
	"github.com/jhoicas/Rrhh-api/internal/domain/scope"
)

var _ repository.EmployeeRepository = (*EmployeeRepo)(nil)

// EmployeeRepo implementación del puerto EmployeeRepository sobre PostgreSQL.
// CountVisible y ListVisible construyen el filtro con buildScopeFilter: el
// mismo predicado produce el mismo conjunto de filas en ambas consultas.
type EmployeeRepo struct {
	pool *pgxpool.Pool
}

// NewEmployeeRepository construye el adaptador de persistencia para empleados.
func NewEmployeeRepository(pool *pgxpool.Pool) *EmployeeRepo {
	return &EmployeeRepo{pool: pool}
}

const employeeColumns = `e.id, e.document, e.name, e.email, e.position, COALESCE(e.position_id, ''),
		e.location, e.business_unit, e.salary, e.status, e.hired_at, e.created_at, e.updated_at`

// Create persiste un nuevo empleado.
func (r *EmployeeRepo) Create(ctx context.Context, emp *entity.Employee) error {
	query := `
		INSERT INTO employees (id, document, name, email, position, position_id, location, business_unit,
			salary, status, hired_at, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, NULLIF($6, ''), $7, $8, $9, $10, $11, $12, $13)`
	_, err := r.pool.Exec(ctx, query,
		emp.ID, emp.Document, emp.Name, emp.Email, emp.Position, emp.PositionID, emp.Location,
		emp.BusinessUnit, emp.Salary, emp.Status, emp.HiredAt, emp.CreatedAt, emp.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert employee: %w", err)
	}
	return nil
}

// GetByID obtiene un empleado por ID. Devuelve nil sin error si no existe.
func (r *EmployeeRepo) GetByID(ctx context.Context, id string) (*entity.Employee, error) {
	query := `SELECT ` + employeeColumns + ` FROM employees e WHERE e.id = $1`
	var e entity.Employee
	err := r.pool.QueryRow(ctx, query, id).Scan(
		&e.ID, &e.Document, &e.Name, &e.Email, &e.Position, &e.PositionID,
		&e.Location, &e.BusinessUnit, &e.Salary, &e.Status, &e.HiredAt, &e.CreatedAt, &e.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get employee by id: %w", err)
	}
	return &e, nil
}

// CountVisible cuenta los empleados que admite el predicado.
func (r *EmployeeRepo) CountVisible(ctx context.Context, pred scope.Predicate) (int, error) {
	where, args := buildScopeFilter(pred)
	query := `SELECT COUNT(*)` + employeeScopeFrom + ` WHERE ` + where
	var n int
	if err := r.pool.QueryRow(ctx, query, args...).Scan(&n); err != nil {
		return 0, fmt.Errorf("count visible employees: %w", err)
	}
	return n, nil
}

// ListVisible lista los empleados que admite el predicado, ordenados por
// nombre para paginación estable. limit <= 0 lista sin límite (exportación).
func (r *EmployeeRepo) ListVisible(ctx context.Context, pred scope.Predicate, limit, offset int) ([]*entity.Employee, error) {
	where, args := buildScopeFilter(pred)
	query := `SELECT ` + employeeColumns + employeeScopeFrom + ` WHERE ` + where + ` ORDER BY e.name, e.id`
	if limit > 0 {
		query += ` LIMIT ` + nextArg(args)
		args = append(args, limit)
		query += ` OFFSET ` + nextArg(args)
		args = append(args, offset)
	}

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list visible employees: %w", err)
	}
	defer rows.Close()

	var list []*entity.Employee
	for rows.Next() {
		var e entity.Employee
		if err := rows.Scan(
			&e.ID, &e.Document, &e.Name, &e.Email, &e.Position, &e.PositionID,
			&e.Location, &e.BusinessUnit, &e.Salary, &e.Status, &e.HiredAt, &e.CreatedAt, &e.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan employee: %w", err)
		}
		list = append(list, &e)
	}
	return list, rows.Err()
}
