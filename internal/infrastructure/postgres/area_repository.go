package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/jhoicas/Rrhh-api/internal/domain/entity"
	"github.com/jhoicas/Rrhh-api/internal/domain/repository"
)

var _ repository.AreaRepository = (*AreaRepo)(nil)

// AreaRepo lectura de áreas organizacionales sobre PostgreSQL.
type AreaRepo struct {
	pool *pgxpool.Pool
}

// NewAreaRepository construye el adaptador de áreas.
func NewAreaRepository(pool *pgxpool.Pool) *AreaRepo {
	return &AreaRepo{pool: pool}
}

// List lista todas las áreas ordenadas por nombre.
func (r *AreaRepo) List(ctx context.Context) ([]*entity.Area, error) {
	rows, err := r.pool.Query(ctx, `SELECT id, name FROM areas ORDER BY name`)
	if err != nil {
		return nil, fmt.Errorf("list areas: %w", err)
	}
	defer rows.Close()

	var list []*entity.Area
	for rows.Next() {
		var a entity.Area
		if err := rows.Scan(&a.ID, &a.Name); err != nil {
			return nil, fmt.Errorf("scan area: %w", err)
		}
		list = append(list, &a)
	}
	return list, rows.Err()
}

// GetByID obtiene un área por ID. Devuelve nil sin error si no existe.
func (r *AreaRepo) GetByID(ctx context.Context, id string) (*entity.Area, error) {
	var a entity.Area
	err := r.pool.QueryRow(ctx, `SELECT id, name FROM areas WHERE id = $1`, id).Scan(&a.ID, &a.Name)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get area by id: %w", err)
	}
	return &a, nil
}
